// Package notify ships the default Notifier adapter: it renders localized
// notification texts and writes them to the process log. Real delivery
// (mail or messaging) is an external collaborator and slots in behind the
// same port.
package notify

import (
	"context"
	"log"

	"venueadmin/internal/domain/entities"
	"venueadmin/internal/ports/output"
	"venueadmin/pkg/money"
)

var _ output.Notifier = (*LogNotifier)(nil)

type LogNotifier struct {
	translator output.T
	locale     string
}

func NewLogNotifier(translator output.T, locale string) *LogNotifier {
	return &LogNotifier{translator: translator, locale: locale}
}

func (n *LogNotifier) PaymentRecorded(ctx context.Context, event *entities.Event, payment *entities.Payment) error {
	msg := n.translator.T(n.locale, "notify.payment_recorded", map[string]any{
		"Amount":  money.Format(payment.Amount, string(event.Currency)),
		"Event":   event.Name,
		"Balance": money.Format(event.RemainingBalance, string(event.Currency)),
	})
	log.Printf("📣 %s", msg)
	return nil
}

func (n *LogNotifier) BalanceReminder(ctx context.Context, event *entities.Event) error {
	msg := n.translator.T(n.locale, "notify.balance_reminder", map[string]any{
		"Event":   event.Name,
		"Date":    event.Date.Format("02/01/2006"),
		"Balance": money.Format(event.RemainingBalance, string(event.Currency)),
	})
	log.Printf("📣 %s", msg)
	return nil
}
