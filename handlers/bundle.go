// File: parkbay/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Availability endpoints
	GetAvailableSlotsHandler gin.HandlerFunc
	CheckAvailabilityHandler gin.HandlerFunc

	// Booking endpoints
	CreateBookingHandler  gin.HandlerFunc
	GetBookingHandler     gin.HandlerFunc
	ListMyBookingsHandler gin.HandlerFunc
}
