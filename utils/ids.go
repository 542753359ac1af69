package utils

import "github.com/google/uuid"

// GetUUID returns a random v4 UUID. Itineraries, contact messages and chat replies use it.
func GetUUID() string {
	return uuid.NewString()
}
