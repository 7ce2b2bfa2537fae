package models

// SearchCriteria is the validated search form payload.
type SearchCriteria struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
	Passengers  int    `json:"passengers"`
}

// TrainResult is a synthetic search-time offer. It is regenerated on every
// search and never persisted.
type TrainResult struct {
	ID             string `json:"id"`
	TrainNumber    string `json:"trainNumber"`
	Origin         string `json:"origin"`
	Destination    string `json:"destination"`
	DepartureTime  string `json:"departureTime"`
	ArrivalTime    string `json:"arrivalTime"`
	Duration       string `json:"duration"`
	Price          int64  `json:"price"`
	SeatsAvailable int    `json:"seatsAvailable"`
}
