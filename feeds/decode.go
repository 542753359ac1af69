package feeds

import (
	"errors"
	"fmt"

	"suratguide/models"
	"suratguide/utils"
)

var (
	errNotObject   = errors.New("record is not an object")
	errDuplicateID = errors.New("duplicate id")
)

// RecordError describes a feed row that could not be turned into a model.
type RecordError struct {
	Index int
	ID    string
	Err   error
}

func (e *RecordError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("record %d (id %s): %v", e.Index, e.ID, e.Err)
	}
	return fmt.Sprintf("record %d: %v", e.Index, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// decodeAll builds and validates every item. Valid models are returned in feed order
// together with the joined errors of the rejected rows.
func decodeAll[T any](items []any, build func(Record) (T, error), idOf func(T) string) ([]T, error) {
	out := make([]T, 0, len(items))
	seen := make(map[string]bool, len(items))
	var errs []error

	for i, item := range items {
		rec, ok := item.(map[string]any)
		if !ok {
			errs = append(errs, &RecordError{Index: i, Err: errNotObject})
			continue
		}

		id := String(Field(rec, "id", "ID"))
		v, err := build(rec)
		if err != nil {
			errs = append(errs, &RecordError{Index: i, ID: id, Err: err})
			continue
		}
		if err := utils.Validate.Struct(v); err != nil {
			errs = append(errs, &RecordError{Index: i, ID: id, Err: err})
			continue
		}
		if seen[idOf(v)] {
			errs = append(errs, &RecordError{Index: i, ID: id, Err: errDuplicateID})
			continue
		}
		seen[idOf(v)] = true
		out = append(out, v)
	}

	return out, errors.Join(errs...)
}

func costField(rec Record, keys ...string) (models.CostTier, error) {
	label := String(Field(rec, keys...))
	tier, ok := models.ParseCostTier(label)
	if !ok {
		return 0, fmt.Errorf("unknown price tier %q", label)
	}
	return tier, nil
}

func floatField(rec Record, name string, keys ...string) (float64, error) {
	f, err := Float(Field(rec, keys...))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return f, nil
}

// DecodeActivities reads trip-planner activities.
func DecodeActivities(items []any) ([]models.ActivityRecord, error) {
	return decodeAll(items, buildActivity, func(a models.ActivityRecord) string { return a.ID })
}

func buildActivity(rec Record) (models.ActivityRecord, error) {
	cost, err := costField(rec, "cost", "price", "priceRange")
	if err != nil {
		return models.ActivityRecord{}, err
	}
	rating, err := floatField(rec, "rating", "rating")
	if err != nil {
		return models.ActivityRecord{}, err
	}
	label := String(Field(rec, "duration"))
	raw := Field(rec, "timeNeeded", "time_needed", "hours")
	hours, err := floatField(rec, "timeNeeded", "timeNeeded", "time_needed", "hours")
	if err != nil {
		// "Full Day" or "3 Hours" in the hours column, else the duration label
		h, ok := HoursFromLabel(String(raw))
		if !ok {
			h, ok = HoursFromLabel(label)
		}
		if !ok {
			return models.ActivityRecord{}, err
		}
		hours = h
	}
	if hours == 0 {
		hours, _ = HoursFromLabel(label)
	}

	return models.ActivityRecord{
		ID:            String(Field(rec, "id")),
		Name:          String(Field(rec, "name", "title")),
		Description:   String(Field(rec, "description")),
		Image:         ImageOr(Field(rec, "image")),
		Location:      String(Field(rec, "location")),
		Category:      String(Field(rec, "category")),
		Tags:          List(Field(rec, "tags")),
		Cost:          cost,
		BestFor:       List(Field(rec, "bestFor", "best_for", "suitability")),
		DurationLabel: label,
		Hours:         hours,
		Rating:        rating,
	}, nil
}

// DecodeDestinations reads explore page destinations.
func DecodeDestinations(items []any) ([]models.Destination, error) {
	return decodeAll(items, buildDestination, func(d models.Destination) string { return d.ID })
}

func buildDestination(rec Record) (models.Destination, error) {
	price, err := costField(rec, "price", "cost")
	if err != nil {
		return models.Destination{}, err
	}
	rating, err := floatField(rec, "rating", "rating")
	if err != nil {
		return models.Destination{}, err
	}

	return models.Destination{
		ID:          String(Field(rec, "id")),
		Name:        String(Field(rec, "name")),
		Category:    String(Field(rec, "category")),
		Image:       ImageOr(Field(rec, "image")),
		Description: String(Field(rec, "description")),
		Rating:      rating,
		Duration:    String(Field(rec, "duration")),
		Price:       price,
		Tags:        List(Field(rec, "tags")),
	}, nil
}

// DecodeFeatured reads the home page feed.
func DecodeFeatured(items []any) ([]models.FeaturedPlace, error) {
	return decodeAll(items, buildFeatured, func(f models.FeaturedPlace) string { return f.ID })
}

func buildFeatured(rec Record) (models.FeaturedPlace, error) {
	return models.FeaturedPlace{
		ID:             String(Field(rec, "id")),
		Name:           String(Field(rec, "name")),
		Category:       String(Field(rec, "category")),
		Image:          ImageOr(Field(rec, "image")),
		Description:    String(Field(rec, "description")),
		Duration:       String(Field(rec, "duration")),
		Location:       String(Field(rec, "Location", "location")),
		AttractionLink: String(Field(rec, "Attraction Link", "attractionLink", "attraction_link")),
		Tags:           List(Field(rec, "tags")),
		BestTime:       String(Field(rec, "bestTime", "best_time")),
	}, nil
}

// DecodeTours reads activities page tours.
func DecodeTours(items []any) ([]models.Tour, error) {
	return decodeAll(items, buildTour, func(t models.Tour) string { return t.ID })
}

func buildTour(rec Record) (models.Tour, error) {
	price, err := costField(rec, "price", "cost")
	if err != nil {
		return models.Tour{}, err
	}
	rating, err := floatField(rec, "rating", "rating")
	if err != nil {
		return models.Tour{}, err
	}

	return models.Tour{
		ID:          String(Field(rec, "id")),
		Title:       String(Field(rec, "title", "name")),
		Description: String(Field(rec, "description")),
		Location:    String(Field(rec, "location")),
		Duration:    String(Field(rec, "duration")),
		Price:       price,
		PriceRange:  price.PriceRange(),
		Category:    String(Field(rec, "category")),
		Image:       ImageOr(Field(rec, "image")),
		Rating:      rating,
		GroupSize:   String(Field(rec, "groupSize", "group_size")),
		Includes:    List(Field(rec, "includes")),
		BestTime:    String(Field(rec, "bestTime", "best_time")),
	}, nil
}

// DecodeDishes reads food guide dishes.
func DecodeDishes(items []any) ([]models.Dish, error) {
	return decodeAll(items, buildDish, func(d models.Dish) string { return d.ID })
}

func buildDish(rec Record) (models.Dish, error) {
	return models.Dish{
		ID:          String(Field(rec, "id")),
		Name:        String(Field(rec, "name")),
		Description: String(Field(rec, "description")),
		Image:       ImageOr(Field(rec, "image")),
		SpiceLevel:  String(Field(rec, "spiceLevel", "spice_level")),
		Price:       String(Field(rec, "price")),
		Category:    String(Field(rec, "category")),
		Ingredients: List(Field(rec, "ingredients")),
		WhereToFind: String(Field(rec, "whereToFind", "where_to_find")),
	}, nil
}

// DecodeRestaurants reads food guide restaurants.
func DecodeRestaurants(items []any) ([]models.Restaurant, error) {
	return decodeAll(items, buildRestaurant, func(r models.Restaurant) string { return r.ID })
}

func buildRestaurant(rec Record) (models.Restaurant, error) {
	price, err := costField(rec, "priceRange", "price_range", "price")
	if err != nil {
		return models.Restaurant{}, err
	}
	rating, err := floatField(rec, "rating", "rating")
	if err != nil {
		return models.Restaurant{}, err
	}

	return models.Restaurant{
		ID:          String(Field(rec, "id")),
		Name:        String(Field(rec, "name")),
		Type:        String(Field(rec, "type")),
		Rating:      rating,
		PriceRange:  price,
		Image:       ImageOr(Field(rec, "image")),
		Description: String(Field(rec, "description")),
		Specialties: List(Field(rec, "specialties")),
		Location:    String(Field(rec, "location")),
		Hours:       String(Field(rec, "hours")),
		Atmosphere:  String(Field(rec, "atmosphere")),
	}, nil
}
