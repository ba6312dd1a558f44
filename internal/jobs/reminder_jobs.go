package jobs

import (
	"context"

	"gardenhub-backend/internal/domain"
	"gardenhub-backend/internal/logger"
	"gardenhub-backend/internal/service"
	"gardenhub-backend/internal/utils"
)

// SendPickerReminders nudges the pickers of every garden that has
// active orders whose plots have no harvest recorded today.
func (jr *JobRunner) SendPickerReminders() {
	jr.runWithRecovery("SendPickerReminders", func() {
		ctx := context.Background()
		today := utils.DateOf(jr.clk.Today())
		dayStart, dayEnd := utils.DayBounds(jr.clk.Now(), jr.clk.Location())

		// Gardens with at least one active order on a plot not yet
		// picked today, with the count of such plots.
		query := `
			SELECT g.id, g.title, COUNT(DISTINCT o.plot_id)
			FROM gardens g
			JOIN plots p ON p.garden_id = g.id
			JOIN orders o ON o.plot_id = p.id
			WHERE o.canceled = FALSE
			  AND o.start_date <= $1
			  AND o.end_date >= $1
			  AND NOT EXISTS (
			    SELECT 1 FROM picks pk
			    WHERE pk.plot_id = o.plot_id
			      AND pk.created_on >= $2
			      AND pk.created_on < $3
			  )
			GROUP BY g.id, g.title
		`

		rows, err := jr.db.QueryContext(ctx, query, today.String(), dayStart, dayEnd)
		if err != nil {
			logger.Error("Failed to find gardens awaiting picks", "error", err)
			return
		}
		defer rows.Close()

		type pendingGarden struct {
			ID            int32
			Title         string
			UnpickedPlots int
		}
		var pending []pendingGarden
		for rows.Next() {
			var g pendingGarden
			if err := rows.Scan(&g.ID, &g.Title, &g.UnpickedPlots); err != nil {
				logger.Error("Failed to scan pending garden", "error", err)
				continue
			}
			pending = append(pending, g)
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating pending gardens", "error", err)
			return
		}

		reminded := 0
		for _, g := range pending {
			pickers, err := jr.store.ListPickers(ctx, g.ID)
			if err != nil {
				logger.Error("Failed to load pickers for reminder", "garden_id", g.ID, "error", err)
				continue
			}
			for _, picker := range pickers {
				note := &domain.Notification{
					UserID:  picker.ID,
					Title:   "Plots waiting to be picked",
					Message: "Plots in " + g.Title + " have active orders with no harvest recorded today.",
					Attributes: map[string]string{
						"template": service.TemplatePickerReminder,
						"garden":   g.Title,
					},
				}
				if err := jr.store.NotificationRepository.Create(ctx, note); err != nil {
					logger.Error("Failed to store picker reminder", "user_id", picker.ID, "error", err)
				}
				if err := jr.services.Email.SendPickerReminder(ctx, picker.Email, g.Title, g.UnpickedPlots); err != nil {
					logger.Error("Failed to email picker reminder", "user_id", picker.ID, "error", err)
					continue
				}
				reminded++
			}
		}

		logger.Info("Sent picker reminders", "gardens", len(pending), "pickers", reminded)
	})
}
