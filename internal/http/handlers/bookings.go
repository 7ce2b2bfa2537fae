package handlers

import (
	"net/http"
	"strings"

	"railbook/internal/http/middleware"
	"railbook/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/bookings
func GetMyBookings(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	svc := services.BookingService{}
	list, err := svc.ListForUser(user.ID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/bookings/:reference
func GetBookingDetail(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	reference := strings.TrimSpace(c.Param("reference"))
	svc := services.BookingService{}
	b, err := svc.GetByReference(reference)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	// Bookings are visible to their owner and to admins.
	if b.UserID != nil && *b.UserID != user.ID && !user.IsAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "not your booking"})
		return
	}

	c.JSON(http.StatusOK, b)
}

// GET /api/bookings/:reference/ticket
func GetBookingETicketPDF(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	reference := strings.TrimSpace(c.Param("reference"))
	bookingSvc := services.BookingService{}
	b, err := bookingSvc.GetByReference(reference)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	if b.UserID != nil && *b.UserID != user.ID && !user.IsAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "not your booking"})
		return
	}

	docs := services.DocsService{
		Booking:   bookingSvc,
		RequestID: middleware.GetRequestID(c),
	}
	pdf, filename, err := docs.GenerateETicket(reference)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
