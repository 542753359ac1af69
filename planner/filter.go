// Package planner holds the trip-planner logic: recommending activities for a set of
// preferences and summarising a selection of activities. Everything here is pure.
package planner

import (
	"math"
	"strings"

	"suratguide/models"
)

// Filter returns the records that satisfy every set preference, in input order.
//
// A nil collection means nothing has been loaded and yields nil. For a loaded
// collection the result is never nil, so "no matches" and "not loaded" stay apart.
func Filter(records []models.ActivityRecord, prefs models.Preferences) []models.ActivityRecord {
	if records == nil {
		return nil
	}

	out := make([]models.ActivityRecord, 0, len(records))
	for _, rec := range records {
		if Matches(rec, prefs) {
			out = append(out, rec)
		}
	}
	return out
}

// Matches reports whether a single record passes all predicates of prefs.
func Matches(rec models.ActivityRecord, prefs models.Preferences) bool {
	return matchInterests(rec, prefs.Interests) &&
		matchGroup(rec, prefs.Group) &&
		matchBudget(rec, prefs.Budget) &&
		fitsTrip(rec, prefs.Duration)
}

func matchInterests(rec models.ActivityRecord, interests []string) bool {
	if len(interests) == 0 {
		return true
	}
	for _, tag := range rec.Tags {
		if containsFold(interests, tag) {
			return true
		}
	}
	return false
}

func matchGroup(rec models.ActivityRecord, group models.GroupType) bool {
	if group == "" {
		return true
	}
	return containsFold(rec.BestFor, string(group))
}

// Unknown budget labels select nothing.
func matchBudget(rec models.ActivityRecord, budget models.Budget) bool {
	if budget == "" {
		return true
	}
	tier, ok := budget.CostTier()
	if !ok {
		return false
	}
	return rec.Cost == tier
}

func fitsTrip(rec models.ActivityRecord, d models.TripDuration) bool {
	return rec.Hours <= MaxActivityHours(d)
}

// MaxActivityHours is the longest single activity a trip bucket can hold.
// Uncapped buckets return +Inf.
func MaxActivityHours(d models.TripDuration) float64 {
	days, capped := d.MaxDays()
	if !capped {
		return math.Inf(1)
	}
	return float64(days * models.HoursPerDay)
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
