package models

type TripDuration string

const (
	TripShort    TripDuration = "1-2"
	TripMedium   TripDuration = "3-4"
	TripLong     TripDuration = "5-7"
	TripExtended TripDuration = "7+"
)

// HoursPerDay is how many hours of activities fit in one trip day.
const HoursPerDay = 8

// MaxDays returns the day count of the bucket. capped is false for "7+" and for
// unset or unknown buckets, which put no limit on activity length.
func (d TripDuration) MaxDays() (days int, capped bool) {
	switch d {
	case TripShort:
		return 2, true
	case TripMedium:
		return 4, true
	case TripLong:
		return 7, true
	}
	return 0, false
}

type GroupType string

const (
	GroupSolo    GroupType = "solo"
	GroupCouple  GroupType = "couple"
	GroupFamily  GroupType = "family"
	GroupFriends GroupType = "friends"
)

type Budget string

const (
	BudgetLow      Budget = "budget"
	BudgetModerate Budget = "moderate"
	BudgetLuxury   Budget = "luxury"
)

// CostTier maps a budget label to the single tier it selects.
func (b Budget) CostTier() (CostTier, bool) {
	switch b {
	case BudgetLow:
		return CostBudget, true
	case BudgetModerate:
		return CostModerate, true
	case BudgetLuxury:
		return CostLuxury, true
	}
	return CostFree, false
}

// Preferences are the trip-planner answers of one visitor. Zero values mean "not set".
type Preferences struct {
	Duration  TripDuration `json:"trip_duration,omitempty" bson:"trip_duration,omitempty" validate:"omitempty,oneof=1-2 3-4 5-7 7+"`
	Group     GroupType    `json:"group_type,omitempty" bson:"group_type,omitempty" validate:"omitempty,oneof=solo couple family friends"`
	Budget    Budget       `json:"budget,omitempty" bson:"budget,omitempty" validate:"omitempty,oneof=budget moderate luxury"`
	Interests []string     `json:"interests,omitempty" bson:"interests,omitempty" validate:"dive,required,max=64"`
}

// InterestOptions are the interests offered by the trip planner form.
var InterestOptions = []string{"Adventure", "Culture", "Food", "Nature", "Relaxing", "Photography", "Learning"}
