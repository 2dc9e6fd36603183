package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"parkbay/middleware"
	"parkbay/models"
	"parkbay/services/booking"
)

// BookingHandler exposes the availability engine over HTTP.
type BookingHandler struct {
	Engine booking.AvailabilityEngine
	Logger *zap.Logger
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(engine booking.AvailabilityEngine, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Engine: engine, Logger: logger}
}

// availabilityRequest is the payload for check and create operations. Times
// arrive as "HH:00" labels, matching what the slot listing hands out.
type availabilityRequest struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	Duration  int    `json:"duration" binding:"required"`
}

// parseHourLabel turns "09:00" into 9. Minutes other than 00 are rejected;
// bookings are hour-granular.
func parseHourLabel(label string) (int, bool) {
	parts := strings.SplitN(label, ":", 2)
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	if len(parts) == 2 && parts[1] != "00" {
		return 0, false
	}
	return hour, true
}

// statusForCode maps engine error codes to HTTP statuses.
func statusForCode(code string) int {
	switch code {
	case booking.CodeNotFound:
		return http.StatusNotFound
	case booking.CodeInvalidSchedule:
		return http.StatusUnprocessableEntity
	case booking.CodeUnavailable:
		return http.StatusConflict
	case booking.CodeNotAuthenticated:
		return http.StatusUnauthorized
	case booking.CodePersistence:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (h *BookingHandler) abortWithEngineError(c *gin.Context, err error) {
	if ee, ok := booking.AsEngineError(err); ok {
		c.JSON(statusForCode(ee.Code), gin.H{"error": ee.Message, "code": ee.Code})
		return
	}
	h.Logger.Error("unexpected engine failure", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

// GetAvailableSlotsHandler returns the free "HH:00" labels for a spot and
// date.
func (h *BookingHandler) GetAvailableSlotsHandler(c *gin.Context) {
	spotID := c.Param("id")
	date := c.Query("date")
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter 'date' must be YYYY-MM-DD"})
		return
	}

	slots, err := h.Engine.ListAvailableSlots(c.Request.Context(), spotID, date)
	if err != nil {
		h.abortWithEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"spotId": spotID,
		"date":   date,
		"slots":  slots,
	})
}

// CheckAvailabilityHandler runs the advisory pre-check for a proposed
// booking. The outcome is not a reservation; the create path re-validates.
func (h *BookingHandler) CheckAvailabilityHandler(c *gin.Context) {
	spotID := c.Param("id")

	var req availabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	startHour, ok := parseHourLabel(req.StartTime)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startTime must be an hour label like 09:00"})
		return
	}

	result, err := h.Engine.CheckAvailability(c.Request.Context(), spotID, req.Date, startHour, req.Duration)
	if err != nil {
		h.abortWithEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// createBookingRequest is the create payload; the renter comes from the
// request identity, never the body.
type createBookingRequest struct {
	SpotID    string `json:"spotId" binding:"required"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	Duration  int    `json:"duration" binding:"required"`
}

// CreateBookingHandler commits a booking for the authenticated renter.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	renterID := middleware.CurrentUserID(c)

	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	startHour, ok := parseHourLabel(req.StartTime)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startTime must be an hour label like 09:00"})
		return
	}

	created, err := h.Engine.CreateBooking(c.Request.Context(), renterID, req.SpotID, req.Date, startHour, req.Duration)
	if err != nil {
		h.abortWithEngineError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetBookingHandler returns one booking. Only the renter who made it or the
// owner of the booked spot may read it.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	callerID := middleware.CurrentUserID(c)
	bookingID := c.Param("id")

	found, err := h.Engine.GetBooking(c.Request.Context(), bookingID)
	if err != nil {
		h.abortWithEngineError(c, err)
		return
	}
	if found.RenterID != callerID && found.OwnerID != callerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "booking belongs to another account"})
		return
	}

	c.JSON(http.StatusOK, found)
}

// ListMyBookingsHandler returns all bookings made by the caller.
func (h *BookingHandler) ListMyBookingsHandler(c *gin.Context) {
	renterID := middleware.CurrentUserID(c)

	bookings, err := h.Engine.ListRenterBookings(c.Request.Context(), renterID)
	if err != nil {
		h.abortWithEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
