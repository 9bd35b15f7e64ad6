// Package domain defines the core value types for the outreach engine.
//
// Types in this package are pure values with no behavior beyond accessor
// and validation helpers. They are the shared language between the
// eligibility engine, the content generator, and storage.
//
// Rules for this package:
//   - No imports from other internal/ packages
//   - No http.Request, no context.Context in struct fields
//   - JSON tags are allowed (they're metadata, not behavior)
//   - Pure helper methods are allowed
//   - Constants and enums belong here
package domain
