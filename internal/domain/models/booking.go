package models

// Booking captures a completed reservation.
type Booking struct {
	ID               int64  `json:"id"`
	BookingReference string `json:"bookingReference"`
	ScheduleID       *int64 `json:"scheduleId,omitempty"`
	UserID           *int64 `json:"userId,omitempty"`
	PassengerCount   int    `json:"passengerCount"`
	TotalPrice       int64  `json:"totalPrice"`
	BookingStatus    string `json:"bookingStatus"`
	PaymentStatus    string `json:"paymentStatus"`
	CreatedAt        string `json:"createdAt,omitempty"`

	SeatLabels []string `json:"seatLabels,omitempty"`
}

// BookingSeat ties one seat label (and, when catalogued, a seat row) to a
// booking.
type BookingSeat struct {
	ID        int64  `json:"id"`
	BookingID int64  `json:"bookingId"`
	SeatID    *int64 `json:"seatId,omitempty"`
	SeatLabel string `json:"seatLabel"`
}

// Profile is the user-facing account row layered over the auth identity.
type Profile struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"fullName,omitempty"`
	Phone     string `json:"phone,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	IsAdmin   bool   `json:"isAdmin"`
}
