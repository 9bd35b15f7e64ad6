package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"

	"github.com/fundingforward/outreach/internal/config"
	"github.com/fundingforward/outreach/internal/pkg/logger"
)

// BedrockBackend generates completions through AWS Bedrock (Claude).
// Prompt traffic stays inside the AWS account — no external API calls.
type BedrockBackend struct {
	client  *bedrockruntime.Client
	modelID string
	region  string
}

type anthropicContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

type anthropicMessage struct {
	Role    string                  `json:"role"`
	Content []anthropicContentBlock `json:"content"`
}

type anthropicRequest struct {
	AnthropicVersion string             `json:"anthropic_version"`
	MaxTokens        int                `json:"max_tokens"`
	System           string             `json:"system,omitempty"`
	Messages         []anthropicMessage `json:"messages"`
	Temperature      float64            `json:"temperature,omitempty"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
	Usage      struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

// NewBedrockBackend builds a Bedrock client using the default AWS
// credential chain.
func NewBedrockBackend(ctx context.Context, cfg config.BedrockConfig) (*BedrockBackend, error) {
	region := cfg.Region
	if region == "" {
		region = os.Getenv("AWS_REGION")
	}
	if region == "" {
		region = "us-east-1"
	}

	awscfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	modelID := cfg.ModelID
	if modelID == "" {
		modelID = "anthropic.claude-3-sonnet-20240229-v1:0"
	}

	b := &BedrockBackend{
		client:  bedrockruntime.NewFromConfig(awscfg),
		modelID: modelID,
		region:  region,
	}
	logger.Info("bedrock backend initialized", "model", modelID, "region", region)
	return b, nil
}

// Name identifies this backend in logs and failure records.
func (b *BedrockBackend) Name() string { return "bedrock" }

// Complete invokes the model once and concatenates the text blocks of
// the reply.
func (b *BedrockBackend) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	request := anthropicRequest{
		AnthropicVersion: "bedrock-2023-05-31",
		MaxTokens:        4096,
		System:           systemPrompt,
		Messages: []anthropicMessage{
			{
				Role:    "user",
				Content: []anthropicContentBlock{{Type: "text", Text: userPrompt}},
			},
		},
		Temperature: 0.7,
	}

	requestBody, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	out, err := b.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(b.modelID),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        requestBody,
	})
	if err != nil {
		return "", fmt.Errorf("bedrock invoke failed: %w", err)
	}

	var response anthropicResponse
	if err := json.Unmarshal(out.Body, &response); err != nil {
		return "", fmt.Errorf("failed to parse bedrock response: %w", err)
	}

	var sb strings.Builder
	for _, block := range response.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("empty completion (stop_reason=%s)", response.StopReason)
	}
	return sb.String(), nil
}
