package services

import (
	"fmt"
	"strings"
	"time"

	"railbook/internal/domain"
	"railbook/internal/domain/models"
	"railbook/internal/utils"
)

const (
	minPassengers = 1
	maxPassengers = 10
)

// SearchService produces synthetic train offers for an origin/destination
// pair. Results are demo data: random, unrelated between calls, never
// persisted.
type SearchService struct {
	Rand  Source
	Delay time.Duration
}

func (s SearchService) rand() Source {
	if s.Rand != nil {
		return s.Rand
	}
	return NewRandSource()
}

// Validate checks the search form without touching any generator state.
func (s SearchService) Validate(criteria models.SearchCriteria) error {
	origin := utils.NormalizeSpace(criteria.Origin)
	destination := utils.NormalizeSpace(criteria.Destination)

	if origin == "" {
		return domain.ValidationError{Field: "origin", Msg: "please select an origin station"}
	}
	if destination == "" {
		return domain.ValidationError{Field: "destination", Msg: "please select a destination station"}
	}
	if strings.EqualFold(origin, destination) {
		return domain.ValidationError{Field: "destination", Msg: "origin and destination stations cannot be the same"}
	}
	if strings.TrimSpace(criteria.Date) == "" {
		return domain.ValidationError{Field: "date", Msg: "please select a travel date"}
	}
	if criteria.Passengers < minPassengers || criteria.Passengers > maxPassengers {
		return domain.ValidationError{Field: "passengers", Msg: fmt.Sprintf("passengers must be between %d and %d", minPassengers, maxPassengers)}
	}
	return nil
}

// Search validates the criteria, waits the fixed simulated delay, then
// generates 3-6 offers. The delay is a timer, not real work, and cannot be
// cancelled once started.
func (s SearchService) Search(criteria models.SearchCriteria) ([]models.TrainResult, error) {
	if err := s.Validate(criteria); err != nil {
		return nil, err
	}
	if s.Delay > 0 {
		time.Sleep(s.Delay)
	}
	return s.generate(utils.NormalizeSpace(criteria.Origin), utils.NormalizeSpace(criteria.Destination)), nil
}

func (s SearchService) generate(origin, destination string) []models.TrainResult {
	rng := s.rand()

	count := rng.Intn(4) + 3
	results := make([]models.TrainResult, 0, count)

	for i := 1; i <= count; i++ {
		depHour := rng.Intn(14) + 6
		depMinute := rng.Intn(2) * 30

		durHours := rng.Intn(3) + 1
		durMinutes := rng.Intn(2) * 30

		// Arrival wraps at midnight; the demo tracks no day rollover.
		arrTotal := (depHour*60 + depMinute + durHours*60 + durMinutes) % (24 * 60)

		price := int64(rng.Intn(40001) + 20000)
		seats := rng.Intn(41) + 10

		results = append(results, models.TrainResult{
			ID:             fmt.Sprintf("TR-%d", i),
			TrainNumber:    fmt.Sprintf("UGR %d", 1000+i),
			Origin:         origin,
			Destination:    destination,
			DepartureTime:  fmt.Sprintf("%d:%02d", depHour, depMinute),
			ArrivalTime:    fmt.Sprintf("%d:%02d", arrTotal/60, arrTotal%60),
			Duration:       fmt.Sprintf("%dh %02dm", durHours, durMinutes),
			Price:          price,
			SeatsAvailable: seats,
		})
	}

	return results
}
