// Package handler provides HTTP handlers for the appointments feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"repair_backend/internal/feature/appointments/domain/entity"
	"repair_backend/internal/feature/appointments/transport/http/dto"
	"repair_backend/internal/platform/session"
)

// appointmentsPage is where a successful booking redirects the browser.
const appointmentsPage = "/appointments.html"

// dateLayouts are the accepted formats for the appointment date field:
// HTML date input, datetime-local input, and RFC3339.
var dateLayouts = []string{"2006-01-02", "2006-01-02T15:04", time.RFC3339}

// AppointmentsUsecase defines the booking operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AppointmentsUsecase interface {
	// Book persists a new appointment for the given user.
	Book(ctx context.Context, userID uint, phoneModel, issue string, date time.Time) (*entity.Appointment, error)
	// ListByUser returns the user's appointments, newest date first.
	ListByUser(ctx context.Context, userID uint) ([]entity.Appointment, error)
}

// AppointmentHandler handles HTTP requests for booking and listing
// appointments. Both routes sit behind the login-required middleware, so
// the user ID is always present in the gin context.
type AppointmentHandler struct {
	uc AppointmentsUsecase
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(uc AppointmentsUsecase) *AppointmentHandler {
	return &AppointmentHandler{uc: uc}
}

// Book handles POST /appointments.
// - binds the form/JSON body and rejects missing fields with 400
// - rejects unparseable dates with 400
// - store failures answer 500 with a fixed plain-text message
// - success redirects the browser to the appointments page
func (h *AppointmentHandler) Book(c *gin.Context) {
	userID := c.GetUint(session.ContextUserID)

	var req dto.BookAppointmentReq
	if err := c.ShouldBind(&req); err != nil {
		slog.Warn("book appointment validation failed", "error", err, "user_id", userID)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		slog.Warn("book appointment date invalid", "error", err, "user_id", userID, "date", req.Date)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	if _, err := h.uc.Book(c.Request.Context(), userID, req.PhoneModel, req.Issue, date); err != nil {
		slog.Error("failed to book appointment", "error", err, "user_id", userID)
		c.String(http.StatusInternalServerError, "Failed to book appointment")
		return
	}

	slog.Info("appointment booked", "user_id", userID, "phone_model", req.PhoneModel)
	c.Redirect(http.StatusFound, appointmentsPage)
}

// List handles GET /appointments.
// Returns the caller's appointments as a JSON array, newest date first.
// Users with no bookings receive an empty array, never null.
func (h *AppointmentHandler) List(c *gin.Context) {
	userID := c.GetUint(session.ContextUserID)

	appointments, err := h.uc.ListByUser(c.Request.Context(), userID)
	if err != nil {
		slog.Error("failed to fetch appointments", "error", err, "user_id", userID)
		c.String(http.StatusInternalServerError, "Failed to fetch appointments")
		return
	}

	out := make([]dto.AppointmentRes, 0, len(appointments))
	for i := range appointments {
		out = append(out, dto.AppointmentResFromEntity(&appointments[i]))
	}
	c.JSON(http.StatusOK, out)
}

// parseDate tries each accepted layout in order.
func parseDate(value string) (time.Time, error) {
	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
