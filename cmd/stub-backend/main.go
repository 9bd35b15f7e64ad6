// Command stub-backend is a local stand-in for the Groq chat
// completions API so the outreach CLI can be exercised end-to-end
// offline. Responses are HARDCODED: a canned well-formed email payload
// by default, or deliberately broken output via ?mode= to exercise the
// fallback path.
//
// Point the CLI at it with:
//
//	GROQ_BASE_URL=http://localhost:8090/v1 GROQ_API_KEY=stub outreach -all
package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type stubChoice struct {
	Index        int            `json:"index"`
	Message      map[string]any `json:"message"`
	FinishReason string         `json:"finish_reason"`
}

type stubCompletion struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"`
	Model   string       `json:"model"`
	Choices []stubChoice `json:"choices"`
}

const cannedEmail = `{
  "internal_reasoning": {"email_type": "Stub", "match_decision": "send", "principle": "Canned response"},
  "email": {
    "subject": "Stubbed subject line for local testing",
    "body": "Hi there,\n\nThis body came from the stub backend. It exists so the pipeline can be exercised without a live API key.\n\nBest regards,\n\nPriya Singh\nGrants Coordinator\nFunding Forward"
  },
  "verification": {"all_data_from_json": true},
  "warnings": []
}`

func main() {
	port := os.Getenv("STUB_PORT")
	if port == "" {
		port = "8090"
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy","service":"outreach-stub-backend","warning":"THIS IS A STUB - responses are hardcoded"}`))
	})

	r.Post("/v1/chat/completions", func(w http.ResponseWriter, req *http.Request) {
		content := cannedEmail
		switch req.URL.Query().Get("mode") {
		case "garbage":
			// Not JSON at all; the CLI must fall back to templates.
			content = "Sorry, I cannot produce JSON today."
		case "fenced":
			content = "```json\n" + cannedEmail + "\n```"
		}

		resp := stubCompletion{
			ID:     "stub-" + time.Now().UTC().Format("150405"),
			Object: "chat.completion",
			Model:  "stub-model",
			Choices: []stubChoice{{
				Message:      map[string]any{"role": "assistant", "content": content},
				FinishReason: "stop",
			}},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	})

	log.Printf("stub backend listening on :%s (hardcoded responses)", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("stub backend failed: %v", err)
	}
}
