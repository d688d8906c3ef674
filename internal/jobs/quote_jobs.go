package jobs

import (
	"context"
	"time"

	"fixwize-backend/internal/logger"
)

// ExpireStaleQuotes marks pending quotes whose validity window has lapsed
// as expired.
func (jr *JobRunner) ExpireStaleQuotes() {
	jr.runWithRecovery("expire-stale-quotes", func() {
		ctx := context.Background()
		count, err := jr.store.QuoteRepository.ExpirePending(ctx, time.Now())
		if err != nil {
			logger.Error("Failed to expire stale quotes", "error", err)
			return
		}
		logger.Info("Expired stale quotes", "count", count)
	})
}

// SendNeededByReminders emails garages whose open requests are needed
// within the next 48 hours.
func (jr *JobRunner) SendNeededByReminders() {
	jr.runWithRecovery("send-needed-by-reminders", func() {
		ctx := context.Background()
		cutoff := time.Now().Add(48 * time.Hour)

		requests, err := jr.store.PartRequestRepository.ListOpenNeededBefore(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to list requests nearing their deadline", "error", err)
			return
		}

		sent := 0
		for _, req := range requests {
			org, err := jr.store.OrganizationRepository.GetByID(ctx, req.OrgID)
			if err != nil || org.Email == "" {
				continue
			}
			if err := jr.emailSvc.SendNeededByReminder(ctx, org.Email, req.GarageName, req.Description, req.NeededBy); err != nil {
				logger.Error("Failed to send reminder", "request_id", req.ID, "error", err)
				continue
			}
			sent++
		}
		logger.Info("Sent needed-by reminders", "count", sent, "due", len(requests))
	})
}
