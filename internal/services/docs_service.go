package services

import (
	"bytes"
	"fmt"
	"strings"

	"railbook/internal/domain/models"
	"railbook/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders the e-ticket PDF for a booking.
type DocsService struct {
	Booking   BookingService
	RequestID string

	// Loader overrides the booking lookup in tests.
	Loader func(reference string) (models.Booking, error)
}

func (s DocsService) GenerateETicket(reference string) ([]byte, string, error) {
	var (
		b   models.Booking
		err error
	)
	if s.Loader != nil {
		b, err = s.Loader(reference)
	} else {
		b, err = s.Booking.GetByReference(reference)
	}
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_eticket", "reference="+b.BookingReference)
	return buildETicketPDF(b)
}

func buildETicketPDF(b models.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "UGANDA RAILWAYS E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking Reference : %s", safe(b.BookingReference, "-")),
		fmt.Sprintf("Passengers        : %d", b.PassengerCount),
		fmt.Sprintf("Seats             : %s", safe(strings.Join(b.SeatLabels, ", "), "-")),
		fmt.Sprintf("Total Paid        : %s", utils.FormatUGX(b.TotalPrice)),
		fmt.Sprintf("Booking Status    : %s", safe(b.BookingStatus, "-")),
		fmt.Sprintf("Payment Status    : %s", safe(b.PaymentStatus, "-")),
		fmt.Sprintf("Issued            : %s", safe(b.CreatedAt, "-")),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Note: present this e-ticket with a valid ID at boarding. One ticket covers all listed seats.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ETICKET_%s.pdf", safeFilenamePart(b.BookingReference))
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "ticket"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-", ":", "-")
	return replacer.Replace(s)
}
