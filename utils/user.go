package utils

import (
	"context"

	"suratguide/globals"
)

// UsernameFromContext returns the username middleware.Authenticate stored, or "".
func UsernameFromContext(ctx context.Context) string {
	username, _ := ctx.Value(globals.UsernameKey).(string)
	return username
}
