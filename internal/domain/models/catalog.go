package models

// Station is a boarding point on the network.
type Station struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
}

// Train is the rolling stock assigned to routes.
type Train struct {
	ID          int64  `json:"id"`
	TrainNumber string `json:"trainNumber"`
	Name        string `json:"name,omitempty"`
	Capacity    int    `json:"capacity"`
}

// Route is a fixed origin/destination/train/time/price template reused
// across many schedules. Origin and destination are always distinct.
type Route struct {
	ID            int64  `json:"id"`
	OriginID      int64  `json:"originId"`
	DestinationID int64  `json:"destinationId"`
	TrainID       int64  `json:"trainId"`
	DepartureTime string `json:"departureTime"`
	ArrivalTime   string `json:"arrivalTime"`
	Duration      string `json:"duration"`
	Price         int64  `json:"price"`

	// Joined display fields; "Unknown" when the referenced row is missing.
	OriginName      string `json:"originName,omitempty"`
	DestinationName string `json:"destinationName,omitempty"`
	TrainNumber     string `json:"trainNumber,omitempty"`
}

// Schedule is one calendar-date instance of a route with its own
// seats-available count.
type Schedule struct {
	ID             int64  `json:"id"`
	RouteID        int64  `json:"routeId"`
	Date           string `json:"date"`
	SeatsAvailable int    `json:"seatsAvailable"`
}
