package models

type Dish struct {
	ID          string   `json:"id" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	SpiceLevel  string   `json:"spice_level"`
	Price       string   `json:"price"`
	Category    string   `json:"category"`
	Ingredients []string `json:"ingredients"`
	WhereToFind string   `json:"where_to_find"`
}

type Restaurant struct {
	ID          string   `json:"id" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Type        string   `json:"type"`
	Rating      float64  `json:"rating" validate:"gte=0,lte=5"`
	PriceRange  CostTier `json:"price_range"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Specialties []string `json:"specialties"`
	Location    string   `json:"location"`
	Hours       string   `json:"hours"`
	Atmosphere  string   `json:"atmosphere"`
}

type FoodTip struct {
	Title   string `json:"title" yaml:"title"`
	Content string `json:"content" yaml:"content"`
}
