package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"parkbay/config"
	spotRepo "parkbay/database/repository/spot"
	"parkbay/models"
	"parkbay/utils"

	"go.uber.org/zap"
)

const defaultSlotCacheTTL = 30 * time.Second

func slotCacheKey(spotID, date string) string {
	return utils.SlotCachePrefix + spotID + ":" + date
}

func slotCacheTTL() time.Duration {
	if secs := config.AppConfig.SlotCacheTTL; secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return defaultSlotCacheTTL
}

// ListAvailableSlots computes the free hour labels for a spot and date:
// the operating window minus every hour covered by a confirmed booking.
// Advisory only; no weekday or validity-window filtering happens here.
func (se *DefaultAvailabilityEngine) ListAvailableSlots(ctx context.Context, spotID, date string) ([]string, error) {
	logger := utils.GetLogger()

	if se.Cache != nil {
		cached, err := se.Cache.Get(ctx, slotCacheKey(spotID, date)).Result()
		if err == nil {
			var slots []string
			if jsonErr := json.Unmarshal([]byte(cached), &slots); jsonErr == nil {
				return slots, nil
			}
			// Unreadable cache entries fall through to a fresh compute.
		}
	}

	spot, err := se.SpotRepo.GetActiveByID(ctx, spotID)
	if err != nil {
		if errors.Is(err, spotRepo.ErrNotFound) {
			return nil, NewNotFoundError("spot not found")
		}
		return nil, NewPersistenceError(fmt.Sprintf("spot lookup failed: %v", err))
	}

	bookings, err := se.BookingRepo.GetConfirmedBySpotAndDate(ctx, spotID, date)
	if err != nil {
		return nil, NewPersistenceError(fmt.Sprintf("booking lookup failed: %v", err))
	}

	bookedHours := make(map[int]bool)
	for _, b := range bookings {
		for hour := b.StartHour; hour < b.EndHour; hour++ {
			bookedHours[hour] = true
		}
	}

	slots := make([]string, 0)
	for hour := spot.Schedule.StartHour; hour < spot.Schedule.EndHour; hour++ {
		if !bookedHours[hour] {
			slots = append(slots, models.FormatHour(hour))
		}
	}

	if se.Cache != nil {
		if data, jsonErr := json.Marshal(slots); jsonErr == nil {
			if err := se.Cache.Set(ctx, slotCacheKey(spotID, date), data, slotCacheTTL()).Err(); err != nil {
				logger.Warn("failed to cache slot listing",
					zap.String("spotID", spotID), zap.String("date", date), zap.Error(err))
			}
		}
	}

	return slots, nil
}
