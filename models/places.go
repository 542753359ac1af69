package models

// Destination is an entry of the explore page.
type Destination struct {
	ID          string   `json:"id" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Category    string   `json:"category"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Rating      float64  `json:"rating" validate:"gte=0,lte=5"`
	Duration    string   `json:"duration"`
	Price       CostTier `json:"price"`
	Tags        []string `json:"tags"`
}

// FeaturedPlace is a home page card. The home feed names some columns after the
// spreadsheet headers ("Location", "Attraction Link").
type FeaturedPlace struct {
	ID             string   `json:"id" validate:"required"`
	Name           string   `json:"name" validate:"required"`
	Category       string   `json:"category"`
	Image          string   `json:"image"`
	Description    string   `json:"description"`
	Duration       string   `json:"duration"`
	Location       string   `json:"location,omitempty"`
	AttractionLink string   `json:"attraction_link,omitempty" validate:"omitempty,url"`
	Tags           []string `json:"tags"`
	BestTime       string   `json:"best_time,omitempty"`
}

// TripType is one of the trip styles promoted on the home page.
type TripType struct {
	Name        string `json:"name" yaml:"name"`
	Icon        string `json:"icon" yaml:"icon"`
	Description string `json:"description" yaml:"description"`
}

// HomeStats are the counters of the home page stats section.
type HomeStats struct {
	Destinations    int `json:"destinations"`
	Activities      int `json:"activities"`
	CulturalPlaces  int `json:"cultural_places"`
	FoodExperiences int `json:"food_experiences"`
}

// Categories are the tabs of the explore and activities pages.
var Categories = []string{"All", "Nature", "Food", "Culture", "Activities"}
