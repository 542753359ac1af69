package models

import "time"

type InquiryType string

const (
	InquiryGeneral        InquiryType = "general"
	InquiryBooking        InquiryType = "booking"
	InquiryItinerary      InquiryType = "itinerary"
	InquiryTransportation InquiryType = "transportation"
	InquiryAccommodation  InquiryType = "accommodation"
	InquiryActivities     InquiryType = "activities"
	InquiryEmergency      InquiryType = "emergency"
)

// ContactMessage is a submission of the contact form.
type ContactMessage struct {
	MessageID   string      `json:"messageid" bson:"messageid"`
	Name        string      `json:"name" bson:"name" validate:"required,max=120"`
	Email       string      `json:"email" bson:"email" validate:"required,email"`
	Subject     string      `json:"subject" bson:"subject" validate:"required,max=200"`
	Message     string      `json:"message" bson:"message" validate:"required,max=5000"`
	InquiryType InquiryType `json:"inquiryType,omitempty" bson:"inquiry_type,omitempty" validate:"omitempty,oneof=general booking itinerary transportation accommodation activities emergency"`
	CreatedAt   time.Time   `json:"created_at" bson:"created_at"`
}
