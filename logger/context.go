package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields are added to every record logged with a context carrying them.
type LogFields struct {
	IssueID   *int
	RequestID string
	Component string // e.g. "civic.controllers.issue"
}

// WithLogFields merges fields into the context, newer non-empty values winning.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	merged := GetLogFields(ctx)
	if fields.IssueID != nil {
		merged.IssueID = fields.IssueID
	}
	if fields.RequestID != "" {
		merged.RequestID = fields.RequestID
	}
	if fields.Component != "" {
		merged.Component = fields.Component
	}
	return context.WithValue(ctx, logFieldsKey, merged)
}

func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

// WithIssueID is shorthand for tagging logs with the issue being handled.
func WithIssueID(ctx context.Context, id int) context.Context {
	return WithLogFields(ctx, LogFields{IssueID: &id})
}
