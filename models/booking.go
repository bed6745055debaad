package models

// Request types accepted by the notification endpoint
const (
	RequestTypeBooking = "booking"
	RequestTypeQuote   = "quote"
)

// ServiceTypeFleet is the service type value fleet customers submit.
// Fleet requests never carry vehicle details in the notification even
// when the payload includes them.
const ServiceTypeFleet = "custom"

// BookingRequest is the payload of a booking or quote submission
type BookingRequest struct {
	Type          string `json:"type"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Email         string `json:"email,omitempty"`
	VehicleModel  string `json:"vehicleModel,omitempty"`
	PreferredOil  string `json:"preferredOil,omitempty"`
	FilterQuality string `json:"filterQuality,omitempty"`
	ServiceType   string `json:"serviceType"`
	PreferredDate string `json:"preferredDate,omitempty"`
	PreferredTime string `json:"preferredTime,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

// IsQuote reports whether the request asks for a quote rather than a booking.
func (r BookingRequest) IsQuote() bool {
	return r.Type == RequestTypeQuote
}

// IsFleet reports whether the request is for fleet service.
func (r BookingRequest) IsFleet() bool {
	return r.ServiceType == ServiceTypeFleet
}
