package appctx

import "context"

type contextKey string

const EventIDContextKey contextKey = "event_id"

// SetEventID adds the correlation ID of the event being handled to the context
func SetEventID(ctx context.Context, eventID string) context.Context {
	return context.WithValue(ctx, EventIDContextKey, eventID)
}

// GetEventID extracts the event correlation ID, or "-" when none is set
func GetEventID(ctx context.Context) string {
	if eventID, ok := ctx.Value(EventIDContextKey).(string); ok && eventID != "" {
		return eventID
	}
	return "-"
}
