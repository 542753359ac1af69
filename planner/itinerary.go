package planner

import (
	"math"

	"suratguide/models"
)

// Summary is the aggregate of a selection.
type Summary struct {
	TotalHours    float64 `json:"total_hours"`
	EstimatedDays int     `json:"estimated_days"`
}

// Aggregate sums the durations of the selected records and estimates the number of
// days at models.HoursPerDay hours a day. Ids that are not in records add nothing.
func Aggregate(sel Selection, records []models.ActivityRecord) Summary {
	if len(sel) == 0 {
		return Summary{}
	}

	hours := make(map[string]float64, len(records))
	for _, rec := range records {
		hours[rec.ID] = rec.Hours
	}

	var total float64
	for _, id := range sel {
		total += hours[id]
	}

	return Summary{
		TotalHours:    total,
		EstimatedDays: int(math.Ceil(total / models.HoursPerDay)),
	}
}

// Resolve returns the selected records in selection order, skipping unknown ids.
func Resolve(sel Selection, records []models.ActivityRecord) []models.ActivityRecord {
	byID := make(map[string]models.ActivityRecord, len(records))
	for _, rec := range records {
		byID[rec.ID] = rec
	}

	out := make([]models.ActivityRecord, 0, len(sel))
	for _, id := range sel {
		if rec, ok := byID[id]; ok {
			out = append(out, rec)
		}
	}
	return out
}

// Summarize builds the trip summary card for a selection.
func Summarize(sel Selection, records []models.ActivityRecord, group models.GroupType) models.TripSummary {
	agg := Aggregate(sel, records)
	return models.TripSummary{
		TotalActivities: len(sel),
		TotalHours:      agg.TotalHours,
		EstimatedDays:   agg.EstimatedDays,
		TripType:        group,
	}
}
