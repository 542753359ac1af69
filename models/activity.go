package models

import (
	"encoding/json"
	"fmt"
)

// CostTier is the ordered price level of an activity: Free < $ < $$ < $$$.
type CostTier int

const (
	CostFree CostTier = iota
	CostBudget
	CostModerate
	CostLuxury
)

var costTierLabels = [...]string{"Free", "$", "$$", "$$$"}

func (c CostTier) String() string {
	if c < CostFree || c > CostLuxury {
		return fmt.Sprintf("CostTier(%d)", int(c))
	}
	return costTierLabels[c]
}

// ParseCostTier accepts the display labels used by the feeds ("Free", "$" ... "$$$").
// An empty label is read as Free.
func ParseCostTier(label string) (CostTier, bool) {
	switch label {
	case "", "Free", "free", "FREE":
		return CostFree, true
	case "$":
		return CostBudget, true
	case "$$":
		return CostModerate, true
	case "$$$":
		return CostLuxury, true
	}
	return CostFree, false
}

// PriceRange is the THB range shown next to a tier on the activities page.
func (c CostTier) PriceRange() string {
	switch c {
	case CostBudget:
		return "500-1,000 THB"
	case CostModerate:
		return "1,000-2,500 THB"
	case CostLuxury:
		return "2,500+ THB"
	default:
		return "Free"
	}
}

func (c CostTier) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *CostTier) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return fmt.Errorf("cost tier: %w", err)
	}
	tier, ok := ParseCostTier(label)
	if !ok {
		return fmt.Errorf("cost tier: unknown label %q", label)
	}
	*c = tier
	return nil
}

// ActivityRecord is one trip-planner activity. Records are built once from a feed
// and never modified afterwards.
type ActivityRecord struct {
	ID            string   `json:"id" validate:"required"`
	Name          string   `json:"name" validate:"required"`
	Description   string   `json:"description"`
	Image         string   `json:"image"`
	Location      string   `json:"location,omitempty"`
	Category      string   `json:"category"`
	Tags          []string `json:"tags"`
	Cost          CostTier `json:"cost"`
	BestFor       []string `json:"best_for"`
	DurationLabel string   `json:"duration,omitempty"`
	Hours         float64  `json:"time_needed" validate:"gt=0"`
	Rating        float64  `json:"rating" validate:"gte=0,lte=5"`
}

// Tour is an entry of the activities page (guided tours and experiences).
type Tour struct {
	ID          string   `json:"id" validate:"required"`
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Duration    string   `json:"duration"`
	Price       CostTier `json:"price"`
	PriceRange  string   `json:"price_range"`
	Category    string   `json:"category"`
	Image       string   `json:"image"`
	Rating      float64  `json:"rating" validate:"gte=0,lte=5"`
	GroupSize   string   `json:"group_size,omitempty"`
	Includes    []string `json:"includes"`
	BestTime    string   `json:"best_time,omitempty"`
}
