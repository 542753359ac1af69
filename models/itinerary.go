package models

import "time"

// SavedItinerary is a trip-planner selection stored for later retrieval.
type SavedItinerary struct {
	ItineraryID   string      `json:"itineraryid" bson:"itineraryid"`
	Name          string      `json:"name" bson:"name"`
	Preferences   Preferences `json:"preferences" bson:"preferences"`
	Selection     []string    `json:"selection" bson:"selection"`
	TotalHours    float64     `json:"total_hours" bson:"total_hours"`
	EstimatedDays int         `json:"estimated_days" bson:"estimated_days"`
	CreatedAt     time.Time   `json:"created_at" bson:"created_at"`
}

// ItineraryView is a saved itinerary with its activities resolved against the
// current planner collection, in selection order.
type ItineraryView struct {
	SavedItinerary
	Activities []ActivityRecord `json:"activities"`
}

// TripSummary is what the itinerary sidebar shows.
type TripSummary struct {
	TotalActivities int       `json:"total_activities"`
	TotalHours      float64   `json:"total_hours"`
	EstimatedDays   int       `json:"estimated_days"`
	TripType        GroupType `json:"trip_type,omitempty"`
}
