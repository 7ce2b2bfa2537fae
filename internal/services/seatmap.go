package services

import (
	"fmt"

	"railbook/internal/domain"
	"railbook/internal/domain/models"
)

const (
	seatMapCoaches = 2
	seatMapRows    = 6
	seatMapPerRow  = 4
	seatMapTotal   = seatMapCoaches * seatMapRows * seatMapPerRow
)

// SeatMap holds the ephemeral per-screen seat grid and the selection state
// machine over it. It lives only inside one booking session visit.
type SeatMap struct {
	Passengers int
	Seats      []models.SeatMapEntry

	// LimitError mirrors the inline error banner: set when selection is
	// rejected, cleared by a deselect or an accepted selection.
	LimitError string

	order []string
}

// NewSeatMap builds the fixed 48-seat catalog (coaches A and B, 6 rows of 4
// in a 2-2 layout) and marks 48-seatsAvailable seats unavailable, sampled
// uniformly without replacement.
func NewSeatMap(rng Source, seatsAvailable, passengers int) *SeatMap {
	if seatsAvailable < 0 {
		seatsAvailable = 0
	}
	if seatsAvailable > seatMapTotal {
		seatsAvailable = seatMapTotal
	}
	if passengers < 1 {
		passengers = 1
	}
	if rng == nil {
		rng = NewRandSource()
	}

	unavailable := map[int]bool{}
	for len(unavailable) < seatMapTotal-seatsAvailable {
		unavailable[rng.Intn(seatMapTotal)+1] = true
	}

	seats := make([]models.SeatMapEntry, 0, seatMapTotal)
	counter := 1
	for _, coach := range []string{"A", "B"} {
		for row := 1; row <= seatMapRows; row++ {
			for col, letter := range []string{"A", "B", "C", "D"} {
				seatType := models.SeatAisle
				position := models.PositionLeft
				if col == 0 || col == 3 {
					seatType = models.SeatWindow
				}
				if col >= 2 {
					position = models.PositionRight
				}
				// Window seats on the first row of each coach are priority.
				if row == 1 && seatType == models.SeatWindow {
					seatType = models.SeatPriority
				}
				seats = append(seats, models.SeatMapEntry{
					ID:          fmt.Sprintf("%s%d%s", coach, row, letter),
					Coach:       coach,
					Number:      fmt.Sprintf("%d%s", row, letter),
					IsAvailable: !unavailable[counter],
					Type:        seatType,
					Position:    position,
				})
				counter++
			}
		}
	}

	return &SeatMap{
		Passengers: passengers,
		Seats:      seats,
	}
}

// SelectedCount reports how many seats are currently selected.
func (m *SeatMap) SelectedCount() int {
	return len(m.order)
}

// SelectedLabels returns the selected seat labels in selection order.
func (m *SeatMap) SelectedLabels() []string {
	out := make([]string, 0, len(m.order))
	for _, id := range m.order {
		if seat := m.find(id); seat != nil {
			out = append(out, seat.Label())
		}
	}
	return out
}

// Toggle flips a seat between selected and unselected. Unavailable seats are
// rejected, as is selecting past the passenger quota; neither changes state.
func (m *SeatMap) Toggle(seatID string) error {
	seat := m.find(seatID)
	if seat == nil {
		return domain.NotFoundError{Resource: "seat"}
	}
	if !seat.IsAvailable {
		return domain.ValidationError{Field: "seat", Msg: "seat " + seat.Label() + " is not available"}
	}

	if seat.IsSelected {
		seat.IsSelected = false
		m.removeFromOrder(seatID)
		m.LimitError = ""
		return nil
	}

	if len(m.order) >= m.Passengers {
		m.LimitError = fmt.Sprintf("you can only select %d %s", m.Passengers, pluralSeat(m.Passengers))
		return domain.ValidationError{Field: "seats", Msg: m.LimitError}
	}

	seat.IsSelected = true
	m.order = append(m.order, seatID)
	m.LimitError = ""
	return nil
}

// Confirm succeeds only when exactly Passengers seats are selected and
// returns their labels in selection order.
func (m *SeatMap) Confirm() ([]string, error) {
	if len(m.order) != m.Passengers {
		m.LimitError = fmt.Sprintf("please select %d %s", m.Passengers, pluralSeat(m.Passengers))
		return nil, domain.ValidationError{Field: "seats", Msg: m.LimitError}
	}
	return m.SelectedLabels(), nil
}

func (m *SeatMap) find(seatID string) *models.SeatMapEntry {
	for i := range m.Seats {
		if m.Seats[i].ID == seatID {
			return &m.Seats[i]
		}
	}
	return nil
}

func (m *SeatMap) removeFromOrder(seatID string) {
	for i, id := range m.order {
		if id == seatID {
			m.order = append(m.order[:i], m.order[i+1:]...)
			return
		}
	}
}

func pluralSeat(n int) string {
	if n == 1 {
		return "seat"
	}
	return "seats"
}
