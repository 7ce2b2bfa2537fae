package services

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"railbook/internal/domain"
	"railbook/internal/domain/models"
)

func validCriteria() models.SearchCriteria {
	return models.SearchCriteria{
		Origin:      "Kampala Central",
		Destination: "Jinja",
		Date:        "2026-09-15",
		Passengers:  2,
	}
}

func TestSearchValidation(t *testing.T) {
	svc := SearchService{Rand: newTestRand(1)}

	cases := []struct {
		name   string
		mutate func(*models.SearchCriteria)
	}{
		{"missing origin", func(c *models.SearchCriteria) { c.Origin = "" }},
		{"missing destination", func(c *models.SearchCriteria) { c.Destination = "  " }},
		{"equal stations", func(c *models.SearchCriteria) { c.Destination = c.Origin }},
		{"equal stations ignoring case", func(c *models.SearchCriteria) { c.Destination = strings.ToUpper(c.Origin) }},
		{"missing date", func(c *models.SearchCriteria) { c.Date = "" }},
		{"zero passengers", func(c *models.SearchCriteria) { c.Passengers = 0 }},
		{"too many passengers", func(c *models.SearchCriteria) { c.Passengers = 11 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			criteria := validCriteria()
			tc.mutate(&criteria)
			_, err := svc.Search(criteria)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !domain.IsValidation(err) {
				t.Fatalf("error type = %T, want ValidationError", err)
			}
		})
	}
}

func TestSearchResultShape(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		svc := SearchService{Rand: newTestRand(seed)}
		results, err := svc.Search(validCriteria())
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}

		if len(results) < 3 || len(results) > 6 {
			t.Fatalf("seed %d: %d results, want 3..6", seed, len(results))
		}

		for i, r := range results {
			if r.ID != fmt.Sprintf("TR-%d", i+1) {
				t.Errorf("seed %d: result %d id = %s", seed, i, r.ID)
			}
			if r.TrainNumber != fmt.Sprintf("UGR %d", 1001+i) {
				t.Errorf("seed %d: result %d train number = %s", seed, i, r.TrainNumber)
			}
			if r.Origin != "Kampala Central" || r.Destination != "Jinja" {
				t.Errorf("seed %d: stations not threaded through: %s -> %s", seed, r.Origin, r.Destination)
			}

			hour, minute := splitClock(t, r.DepartureTime)
			if hour < 6 || hour > 19 {
				t.Errorf("seed %d: departure hour %d outside 6..19", seed, hour)
			}
			if minute != 0 && minute != 30 {
				t.Errorf("seed %d: departure minute %d, want 0 or 30", seed, minute)
			}

			if r.Price < 20000 || r.Price > 60000 {
				t.Errorf("seed %d: price %d outside [20000,60000]", seed, r.Price)
			}
			if r.SeatsAvailable < 10 || r.SeatsAvailable > 50 {
				t.Errorf("seed %d: seats %d outside [10,50]", seed, r.SeatsAvailable)
			}
		}
	}
}

func TestSearchArrivalAddsDuration(t *testing.T) {
	// Script: 1 -> count 4 trains; per train the sequence is
	// depHour, depMinute, durHours, durMinutes, price, seats.
	src := &scriptedSource{values: []int{
		1,
		3, 1, 1, 1, 25000, 20, // 9:30 + 2h30 -> 12:00
		0, 0, 0, 0, 20000, 10, // 6:00 + 1h00 -> 7:00
		13, 1, 2, 0, 30000, 15, // 19:30 + 3h00 -> 22:30
		13, 1, 2, 1, 30000, 15, // 19:30 + 3h30 -> 23:00
	}}
	svc := SearchService{Rand: src}

	results, err := svc.Search(validCriteria())
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("got %d results, want 4", len(results))
	}

	wantArrivals := []string{"12:00", "7:00", "22:30", "23:00"}
	wantDurations := []string{"2h 30m", "1h 00m", "3h 00m", "3h 30m"}
	for i, r := range results {
		if r.ArrivalTime != wantArrivals[i] {
			t.Errorf("result %d: arrival %s, want %s (departure %s, duration %s)",
				i, r.ArrivalTime, wantArrivals[i], r.DepartureTime, r.Duration)
		}
		if r.Duration != wantDurations[i] {
			t.Errorf("result %d: duration %s, want %s", i, r.Duration, wantDurations[i])
		}
	}
}

func splitClock(t *testing.T, clock string) (int, int) {
	t.Helper()
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		t.Fatalf("bad clock value %q", clock)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		t.Fatalf("bad hour in %q", clock)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		t.Fatalf("bad minute in %q", clock)
	}
	return hour, minute
}
