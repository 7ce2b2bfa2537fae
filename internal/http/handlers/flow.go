package handlers

import (
	"net/http"
	"sync"

	intconfig "railbook/internal/config"
	"railbook/internal/domain/models"
	"railbook/internal/http/middleware"
	"railbook/internal/services"

	"github.com/gin-gonic/gin"
)

var (
	flowMu       sync.RWMutex
	flowStore    *services.SessionStore
	flowTemplate services.FlowService
)

// Configure wires the booking-flow services from the environment. Called
// once by the router at startup.
func Configure(env intconfig.Env) {
	flowMu.Lock()
	defer flowMu.Unlock()

	flowStore = services.NewSessionStore()
	flowTemplate = services.FlowService{
		Store: flowStore,
		Search: services.SearchService{
			Rand:  services.NewRandSource(),
			Delay: env.SearchDelay,
		},
		Booking:      services.BookingService{},
		Rand:         services.NewRandSource(),
		PaymentDelay: env.PaymentDelay,
	}
}

func flowService(c *gin.Context) services.FlowService {
	flowMu.RLock()
	svc := flowTemplate
	flowMu.RUnlock()
	svc.RequestID = middleware.GetRequestID(c)
	return svc
}

func sessionFromPath(c *gin.Context) (*services.Session, bool) {
	flowMu.RLock()
	store := flowStore
	flowMu.RUnlock()
	if store == nil {
		respondError(c, http.StatusServiceUnavailable, "not_ready", "booking flow not configured", nil)
		return nil, false
	}
	sess, err := store.Get(c.Param("id"))
	if err != nil {
		respondDomainError(c, err)
		return nil, false
	}
	return sess, true
}

// POST /api/booking-sessions
func CreateBookingSession(c *gin.Context) {
	flowMu.RLock()
	store := flowStore
	flowMu.RUnlock()
	if store == nil {
		respondError(c, http.StatusServiceUnavailable, "not_ready", "booking flow not configured", nil)
		return
	}

	sess := store.Create()
	if user, ok := middleware.CurrentUser(c); ok {
		uid := user.ID
		sess.UserID = &uid
	}

	c.JSON(http.StatusCreated, flowService(c).Snapshot(sess))
}

// GET /api/booking-sessions/:id
func GetBookingSession(c *gin.Context) {
	sess, ok := sessionFromPath(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, flowService(c).Snapshot(sess))
}

// POST /api/booking-sessions/:id/search
func SubmitSearch(c *gin.Context) {
	sess, ok := sessionFromPath(c)
	if !ok {
		return
	}

	var criteria models.SearchCriteria
	if err := c.ShouldBindJSON(&criteria); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_payload", "invalid search payload", err.Error())
		return
	}

	svc := flowService(c)
	if err := svc.SubmitSearch(sess, criteria); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc.Snapshot(sess))
}

type selectTrainRequest struct {
	ResultID string `json:"resultId" binding:"required"`
}

// POST /api/booking-sessions/:id/select-train
func SelectTrain(c *gin.Context) {
	sess, ok := sessionFromPath(c)
	if !ok {
		return
	}

	var req selectTrainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_payload", "resultId is required", nil)
		return
	}

	svc := flowService(c)
	if err := svc.SelectTrain(sess, req.ResultID); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc.Snapshot(sess))
}

type toggleSeatRequest struct {
	SeatID string `json:"seatId" binding:"required"`
}

// POST /api/booking-sessions/:id/seats/toggle
func ToggleSeat(c *gin.Context) {
	sess, ok := sessionFromPath(c)
	if !ok {
		return
	}

	var req toggleSeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_payload", "seatId is required", nil)
		return
	}

	svc := flowService(c)
	if err := svc.ToggleSeat(sess, req.SeatID); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc.Snapshot(sess))
}

// POST /api/booking-sessions/:id/seats/confirm
func ConfirmSeats(c *gin.Context) {
	sess, ok := sessionFromPath(c)
	if !ok {
		return
	}

	svc := flowService(c)
	if err := svc.ConfirmSeats(sess); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc.Snapshot(sess))
}

type stepBackRequest struct {
	To string `json:"to" binding:"required"`
}

// POST /api/booking-sessions/:id/back
func StepBack(c *gin.Context) {
	sess, ok := sessionFromPath(c)
	if !ok {
		return
	}

	var req stepBackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_payload", "target step is required", nil)
		return
	}

	svc := flowService(c)
	var err error
	switch req.To {
	case string(services.StepResults):
		err = svc.BackToResults(sess)
	case string(services.StepSeats):
		err = svc.BackToSeats(sess)
	case string(services.StepSummary):
		err = svc.BackToSummary(sess)
	default:
		respondError(c, http.StatusBadRequest, "invalid_payload", "unknown target step: "+req.To, nil)
		return
	}
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc.Snapshot(sess))
}

// POST /api/booking-sessions/:id/confirm
func ConfirmSummary(c *gin.Context) {
	sess, ok := sessionFromPath(c)
	if !ok {
		return
	}

	svc := flowService(c)
	if err := svc.ConfirmSummary(sess); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc.Snapshot(sess))
}

// POST /api/booking-sessions/:id/pay
func Pay(c *gin.Context) {
	sess, ok := sessionFromPath(c)
	if !ok {
		return
	}

	svc := flowService(c)
	if err := svc.Pay(sess); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc.Snapshot(sess))
}

// POST /api/booking-sessions/:id/reset
func ResetSession(c *gin.Context) {
	sess, ok := sessionFromPath(c)
	if !ok {
		return
	}

	svc := flowService(c)
	if err := svc.Reset(sess); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc.Snapshot(sess))
}
