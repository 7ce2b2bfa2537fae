package services

import (
	"math/rand"
	"testing"

	"railbook/internal/domain"
)

func newTestRand(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

func TestSeatMapUnavailableCountMatchesSeatsAvailable(t *testing.T) {
	for k := 0; k <= seatMapTotal; k++ {
		m := NewSeatMap(newTestRand(int64(k)), k, 1)
		if len(m.Seats) != seatMapTotal {
			t.Fatalf("k=%d: got %d seats, want %d", k, len(m.Seats), seatMapTotal)
		}
		unavailable := 0
		for _, seat := range m.Seats {
			if !seat.IsAvailable {
				unavailable++
			}
		}
		if unavailable != seatMapTotal-k {
			t.Errorf("k=%d: %d unavailable, want %d", k, unavailable, seatMapTotal-k)
		}
	}
}

func TestSeatMapClampsSeatsAvailable(t *testing.T) {
	m := NewSeatMap(newTestRand(1), 100, 1)
	for _, seat := range m.Seats {
		if !seat.IsAvailable {
			t.Fatalf("seat %s unavailable with seatsAvailable above capacity", seat.ID)
		}
	}

	m = NewSeatMap(newTestRand(1), -5, 1)
	for _, seat := range m.Seats {
		if seat.IsAvailable {
			t.Fatalf("seat %s available with negative seatsAvailable", seat.ID)
		}
	}
}

func TestSeatMapLayoutAndPriorityTags(t *testing.T) {
	m := NewSeatMap(newTestRand(1), seatMapTotal, 1)

	byID := map[string]int{}
	for i, seat := range m.Seats {
		byID[seat.ID] = i
	}

	for _, id := range []string{"A1A", "A1D", "B1A", "B1D"} {
		seat := m.Seats[byID[id]]
		if seat.Type != "priority" {
			t.Errorf("seat %s type = %s, want priority", id, seat.Type)
		}
	}
	if seat := m.Seats[byID["A1B"]]; seat.Type != "aisle" {
		t.Errorf("seat A1B type = %s, want aisle", seat.Type)
	}
	if seat := m.Seats[byID["A2A"]]; seat.Type != "window" {
		t.Errorf("seat A2A type = %s, want window", seat.Type)
	}
	if seat := m.Seats[byID["A3C"]]; seat.Position != "right" {
		t.Errorf("seat A3C position = %s, want right", seat.Position)
	}
	if seat := m.Seats[byID["B4B"]]; seat.Position != "left" {
		t.Errorf("seat B4B position = %s, want left", seat.Position)
	}
}

func TestSeatMapSelectionQuota(t *testing.T) {
	m := NewSeatMap(newTestRand(1), seatMapTotal, 2)

	if err := m.Toggle("A1A"); err != nil {
		t.Fatalf("first select: %v", err)
	}
	if err := m.Toggle("A1B"); err != nil {
		t.Fatalf("second select: %v", err)
	}
	if m.SelectedCount() != 2 {
		t.Fatalf("selected count = %d, want 2", m.SelectedCount())
	}

	err := m.Toggle("A2A")
	if err == nil {
		t.Fatal("expected error selecting past the quota")
	}
	if !domain.IsValidation(err) {
		t.Fatalf("quota error type = %T, want ValidationError", err)
	}
	if m.SelectedCount() != 2 {
		t.Fatalf("selection count changed on rejected select: %d", m.SelectedCount())
	}
	if m.LimitError == "" {
		t.Fatal("limit error not surfaced")
	}
}

func TestSeatMapDeselectClearsLimitError(t *testing.T) {
	m := NewSeatMap(newTestRand(1), seatMapTotal, 1)

	if err := m.Toggle("B3C"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := m.Toggle("B3D"); err == nil {
		t.Fatal("expected quota error")
	}

	if err := m.Toggle("B3C"); err != nil {
		t.Fatalf("deselect: %v", err)
	}
	if m.SelectedCount() != 0 {
		t.Fatalf("selected count after deselect = %d, want 0", m.SelectedCount())
	}
	if m.LimitError != "" {
		t.Fatalf("limit error not cleared: %q", m.LimitError)
	}
}

func TestSeatMapToggleUnavailableSeat(t *testing.T) {
	m := NewSeatMap(newTestRand(1), 0, 1)

	err := m.Toggle("A1A")
	if err == nil {
		t.Fatal("expected error toggling an unavailable seat")
	}
	if m.SelectedCount() != 0 {
		t.Fatalf("selection changed on unavailable seat: %d", m.SelectedCount())
	}
}

func TestSeatMapConfirm(t *testing.T) {
	m := NewSeatMap(newTestRand(1), seatMapTotal, 2)

	if _, err := m.Confirm(); err == nil {
		t.Fatal("expected error confirming with no seats selected")
	}

	if err := m.Toggle("B2C"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if _, err := m.Confirm(); err == nil {
		t.Fatal("expected error confirming with too few seats")
	}
	if m.LimitError == "" {
		t.Fatal("confirm error not surfaced")
	}

	if err := m.Toggle("A5A"); err != nil {
		t.Fatalf("select: %v", err)
	}
	labels, err := m.Confirm()
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	want := []string{"B-2C", "A-5A"}
	if len(labels) != len(want) {
		t.Fatalf("labels = %v, want %v", labels, want)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Fatalf("labels = %v, want %v (selection order)", labels, want)
		}
	}
}
