package service

import (
	"fmt"

	"gardenhub-backend/internal/domain"
)

// Notification template keys. The dispatch functions below decide WHO
// gets WHICH template with WHAT context; actually sending is up to the
// caller.
const (
	TemplatePickerNewOrder  = "picker_new_order"
	TemplateInquirerNewPick = "inquirer_new_pick"
	TemplatePickerReminder  = "picker_reminder"
)

// Recipient pairs a user with the template and context chosen for them.
type Recipient struct {
	User     domain.User
	Template string
	Context  map[string]string
}

// RecipientsForNewOrder targets every picker of the garden the ordered
// plot belongs to.
func RecipientsForNewOrder(order *domain.Order, plot *domain.Plot, garden *domain.Garden, pickers []domain.User) []Recipient {
	recipients := make([]Recipient, 0, len(pickers))
	for _, p := range pickers {
		recipients = append(recipients, Recipient{
			User:     p,
			Template: TemplatePickerNewOrder,
			Context: map[string]string{
				"order_id":     fmt.Sprintf("%d", order.ID),
				"plot_title":   plot.Title,
				"garden_title": garden.Title,
				"start_date":   order.StartDate.String(),
				"end_date":     order.EndDate.String(),
			},
		})
	}
	return recipients
}

// RecipientsForNewPick targets the plot's gardeners plus the requesters
// of the plot's currently active orders, deduplicated. The picker is
// not filtered out; a picker who also gardens the plot hears about
// their own harvest like any other gardener.
func RecipientsForNewPick(pick *domain.Pick, plot *domain.Plot, garden *domain.Garden, gardeners []domain.User, requesters []domain.User) []Recipient {
	seen := make(map[int32]bool)
	var recipients []Recipient
	add := func(u domain.User) {
		if seen[u.ID] {
			return
		}
		seen[u.ID] = true
		recipients = append(recipients, Recipient{
			User:     u,
			Template: TemplateInquirerNewPick,
			Context: map[string]string{
				"pick_id":      fmt.Sprintf("%d", pick.ID),
				"plot_title":   plot.Title,
				"garden_title": garden.Title,
			},
		})
	}
	for _, u := range gardeners {
		add(u)
	}
	for _, u := range requesters {
		add(u)
	}
	return recipients
}
