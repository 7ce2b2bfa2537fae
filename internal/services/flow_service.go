package services

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"railbook/internal/domain"
	"railbook/internal/domain/models"
	"railbook/internal/utils"
)

// BookingFee is the flat fee added on top of unit price x passengers.
const BookingFee int64 = 5000

// Step is the current screen of the booking pipeline.
type Step string

const (
	StepSearch       Step = "search"
	StepResults      Step = "results"
	StepSeats        Step = "seats"
	StepSummary      Step = "summary"
	StepPayment      Step = "payment"
	StepConfirmation Step = "confirmation"
)

// Session holds the state threaded through one booking flow. All mutation
// goes through FlowService transition methods under the session mutex.
type Session struct {
	ID   string
	Step Step

	Criteria *models.SearchCriteria
	Results  []models.TrainResult
	Selected *models.TrainResult
	SeatMap  *SeatMap

	ConfirmedSeats   []string
	TotalPrice       int64
	BookingReference string

	// UserID is set when the caller was authenticated, so the persisted
	// booking can be attributed.
	UserID *int64

	mu sync.Mutex
}

// FlowService drives the booking pipeline:
// search -> results -> seats -> summary -> payment -> confirmation,
// with backward edges seats->results, summary->seats, payment->summary and
// the confirmation->search reset. Illegal edges return
// domain.InvalidTransitionError.
type FlowService struct {
	Store        *SessionStore
	Search       SearchService
	Booking      BookingService
	Rand         Source
	PaymentDelay time.Duration
	RequestID    string
}

func (f FlowService) rand() Source {
	if f.Rand != nil {
		return f.Rand
	}
	return NewRandSource()
}

// SubmitSearch runs the search form. Allowed from the search screen and from
// the results screen (a repeat search); the latest results win, matching the
// unguarded behavior of the original flow.
func (f FlowService) SubmitSearch(sess *Session, criteria models.SearchCriteria) error {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.Step != StepSearch && sess.Step != StepResults {
		return domain.InvalidTransitionError{From: string(sess.Step), Action: "search"}
	}

	results, err := f.Search.Search(criteria)
	if err != nil {
		return err
	}

	c := criteria
	sess.Criteria = &c
	sess.Results = results
	sess.Selected = nil
	sess.SeatMap = nil
	sess.Step = StepResults
	return nil
}

// SelectTrain moves results -> seats, building a fresh seat map for the
// chosen offer.
func (f FlowService) SelectTrain(sess *Session, resultID string) error {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.Step != StepResults {
		return domain.InvalidTransitionError{From: string(sess.Step), Action: "select train"}
	}

	var chosen *models.TrainResult
	for i := range sess.Results {
		if sess.Results[i].ID == resultID {
			chosen = &sess.Results[i]
			break
		}
	}
	if chosen == nil {
		return domain.NotFoundError{Resource: "train result"}
	}

	sess.Selected = chosen
	sess.SeatMap = NewSeatMap(f.rand(), chosen.SeatsAvailable, sess.Criteria.Passengers)
	sess.Step = StepSeats
	return nil
}

// ToggleSeat flips one seat on the seats screen.
func (f FlowService) ToggleSeat(sess *Session, seatID string) error {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.Step != StepSeats {
		return domain.InvalidTransitionError{From: string(sess.Step), Action: "toggle seat"}
	}
	return sess.SeatMap.Toggle(seatID)
}

// ConfirmSeats moves seats -> summary once exactly passengers seats are
// selected.
func (f FlowService) ConfirmSeats(sess *Session) error {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.Step != StepSeats {
		return domain.InvalidTransitionError{From: string(sess.Step), Action: "confirm seats"}
	}

	labels, err := sess.SeatMap.Confirm()
	if err != nil {
		return err
	}

	sess.ConfirmedSeats = labels
	sess.Step = StepSummary
	return nil
}

// BackToResults moves seats -> results, discarding the seat map.
func (f FlowService) BackToResults(sess *Session) error {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.Step != StepSeats {
		return domain.InvalidTransitionError{From: string(sess.Step), Action: "back to results"}
	}

	sess.Selected = nil
	sess.SeatMap = nil
	sess.Step = StepResults
	return nil
}

// BackToSeats moves summary -> seats. The seat screen remounts with a fresh
// map, so prior selections are discarded.
func (f FlowService) BackToSeats(sess *Session) error {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.Step != StepSummary {
		return domain.InvalidTransitionError{From: string(sess.Step), Action: "back to seats"}
	}

	sess.SeatMap = NewSeatMap(f.rand(), sess.Selected.SeatsAvailable, sess.Criteria.Passengers)
	sess.ConfirmedSeats = nil
	sess.Step = StepSeats
	return nil
}

// ConfirmSummary moves summary -> payment and fixes the total:
// unit price x passengers + the flat booking fee.
func (f FlowService) ConfirmSummary(sess *Session) error {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.Step != StepSummary {
		return domain.InvalidTransitionError{From: string(sess.Step), Action: "confirm summary"}
	}

	sess.TotalPrice = sess.Selected.Price*int64(sess.Criteria.Passengers) + BookingFee
	sess.Step = StepPayment
	return nil
}

// BackToSummary moves payment -> summary.
func (f FlowService) BackToSummary(sess *Session) error {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.Step != StepPayment {
		return domain.InvalidTransitionError{From: string(sess.Step), Action: "back to summary"}
	}

	sess.Step = StepSummary
	return nil
}

// Pay simulates payment processing: fixed delay, always succeeds, issues the
// booking reference and persists the booking best-effort. The delay timer
// cannot be cancelled once started.
func (f FlowService) Pay(sess *Session) error {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.Step != StepPayment {
		return domain.InvalidTransitionError{From: string(sess.Step), Action: "pay"}
	}

	if f.PaymentDelay > 0 {
		time.Sleep(f.PaymentDelay)
	}

	sess.BookingReference = fmt.Sprintf("UGR%d", 100000+f.rand().Intn(900000))
	sess.Step = StepConfirmation

	if err := f.Booking.Record(models.Booking{
		BookingReference: sess.BookingReference,
		UserID:           sess.UserID,
		PassengerCount:   sess.Criteria.Passengers,
		TotalPrice:       sess.TotalPrice,
		BookingStatus:    "confirmed",
		PaymentStatus:    "paid",
		SeatLabels:       sess.ConfirmedSeats,
	}); err != nil {
		// Demo flow: the confirmation stands even when the write fails.
		utils.LogEvent(f.RequestID, "flow", "pay",
			"booking persist failed ref="+sess.BookingReference+": "+err.Error())
	}

	utils.LogEvent(f.RequestID, "flow", "pay",
		"ref="+sess.BookingReference+" total="+strconv.FormatInt(sess.TotalPrice, 10))
	return nil
}

// Reset moves confirmation -> search, clearing all ephemeral state.
func (f FlowService) Reset(sess *Session) error {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.Step != StepConfirmation {
		return domain.InvalidTransitionError{From: string(sess.Step), Action: "reset"}
	}

	sess.Criteria = nil
	sess.Results = nil
	sess.Selected = nil
	sess.SeatMap = nil
	sess.ConfirmedSeats = nil
	sess.TotalPrice = 0
	sess.BookingReference = ""
	sess.Step = StepSearch
	return nil
}

// Snapshot renders the session for the HTTP surface without exposing
// internals.
func (f FlowService) Snapshot(sess *Session) map[string]any {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	out := map[string]any{
		"id":   sess.ID,
		"step": sess.Step,
	}
	if sess.Criteria != nil {
		out["criteria"] = sess.Criteria
	}
	if sess.Results != nil {
		out["results"] = sess.Results
	}
	if sess.Selected != nil {
		out["selectedTrain"] = sess.Selected
	}
	if sess.SeatMap != nil {
		out["seats"] = sess.SeatMap.Seats
		out["selectedCount"] = sess.SeatMap.SelectedCount()
		if sess.SeatMap.LimitError != "" {
			out["seatError"] = sess.SeatMap.LimitError
		}
	}
	if len(sess.ConfirmedSeats) > 0 {
		out["confirmedSeats"] = sess.ConfirmedSeats
	}
	if sess.TotalPrice > 0 {
		out["totalPrice"] = sess.TotalPrice
	}
	if sess.BookingReference != "" {
		out["bookingReference"] = sess.BookingReference
	}
	return out
}
