package notify

import (
	"context"
)

// WhatsAppNotifier keeps the warehouse message contract while sending is switched off.
// Credentials are accepted so enabling it later needs no wiring change.
type WhatsAppNotifier struct {
	accountSID string
	from       string
	enabled    bool
}

func NewWhatsAppNotifier(accountSID, from string) *WhatsAppNotifier {
	return &WhatsAppNotifier{accountSID: accountSID, from: from}
}

func (w *WhatsAppNotifier) Name() string {
	return "whatsapp"
}

func (w *WhatsAppNotifier) Enabled() bool {
	return w.enabled
}

// TemplateVariables is the positional variable set of the warehouse template.
func (w *WhatsAppNotifier) TemplateVariables(n OrderNotification) map[string]string {
	return map[string]string{
		"1": n.OrderID,
		"2": n.CustomerName,
		"3": n.CustomerPhone,
		"4": n.CustomerAddress,
		"5": n.ItemsText(),
		"6": n.Total.String(),
		"7": n.PaymentStatus,
		"8": n.DeliveryEstimate,
	}
}

func (w *WhatsAppNotifier) Notify(ctx context.Context, n OrderNotification) error {
	return ErrChannelDisabled
}
