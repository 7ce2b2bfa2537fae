package models

type SeatType string

const (
	SeatWindow   SeatType = "window"
	SeatAisle    SeatType = "aisle"
	SeatPriority SeatType = "priority"
	SeatStandard SeatType = "standard"
)

type SeatPosition string

const (
	PositionLeft   SeatPosition = "left"
	PositionRight  SeatPosition = "right"
	PositionCenter SeatPosition = "center"
)

// Seat is a persisted catalog row tied to a train.
type Seat struct {
	ID         int64        `json:"id"`
	TrainID    int64        `json:"trainId"`
	Coach      string       `json:"coach"`
	SeatNumber string       `json:"seatNumber"`
	SeatType   SeatType     `json:"seatType"`
	Position   SeatPosition `json:"position"`
}

// SeatMapEntry is the ephemeral per-screen seat descriptor. It is generated
// fresh for every seat-selection visit and never written back.
type SeatMapEntry struct {
	ID          string       `json:"id"`
	Coach       string       `json:"coach"`
	Number      string       `json:"number"`
	IsAvailable bool         `json:"isAvailable"`
	IsSelected  bool         `json:"isSelected"`
	Type        SeatType     `json:"type"`
	Position    SeatPosition `json:"position"`
}

// Label renders the seat as reported on confirmation, e.g. "A-3C".
func (s SeatMapEntry) Label() string {
	return s.Coach + "-" + s.Number
}
