package model

import (
	"time"
)

type CheckoutState string

const (
	CheckoutInitiated           CheckoutState = "INITIATED"
	CheckoutGatewayOrderCreated CheckoutState = "GATEWAY_ORDER_CREATED"
	CheckoutSignatureReceived   CheckoutState = "SIGNATURE_RECEIVED"
	CheckoutVerified            CheckoutState = "VERIFIED"
	CheckoutOrderPersisted      CheckoutState = "ORDER_PERSISTED"
	CheckoutNotified            CheckoutState = "NOTIFIED"
	CheckoutDone                CheckoutState = "DONE"
	CheckoutCancelled           CheckoutState = "CANCELLED"
	CheckoutFailed              CheckoutState = "FAILED"
)

// checkoutTransitions lists the allowed next states. CANCELLED and FAILED are terminal.
var checkoutTransitions = map[CheckoutState][]CheckoutState{
	CheckoutInitiated:           {CheckoutGatewayOrderCreated, CheckoutFailed},
	CheckoutGatewayOrderCreated: {CheckoutSignatureReceived, CheckoutCancelled, CheckoutFailed},
	CheckoutSignatureReceived:   {CheckoutVerified, CheckoutFailed},
	CheckoutVerified:            {CheckoutOrderPersisted, CheckoutFailed},
	CheckoutOrderPersisted:      {CheckoutNotified, CheckoutDone},
	CheckoutNotified:            {CheckoutDone},
}

func (s CheckoutState) CanTransitionTo(next CheckoutState) bool {
	for _, allowed := range checkoutTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s CheckoutState) IsTerminal() bool {
	return s == CheckoutDone || s == CheckoutCancelled || s == CheckoutFailed
}

type GatewayOrder struct {
	ID       string `json:"id"`
	Entity   string `json:"entity,omitempty"`
	Amount   Paise  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status,omitempty"`
}

type CheckoutSession struct {
	ID            string        `json:"id"`
	Scope         string        `json:"scope"`
	State         CheckoutState `json:"state"`
	Draft         OrderDraft    `json:"draft"`
	OrderID       string        `json:"order_id"`
	GatewayOrder  *GatewayOrder `json:"gateway_order,omitempty"`
	PaymentID     string        `json:"payment_id,omitempty"`
	Order         *Order        `json:"order,omitempty"`
	FailureReason string        `json:"failure_reason,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// Summary is the outcome view shown after a checkout.
type CheckoutSummary struct {
	SessionID     string        `json:"session_id"`
	State         CheckoutState `json:"state"`
	Success       bool          `json:"success"`
	OrderID       string        `json:"order_id,omitempty"`
	Amount        Rupees        `json:"amount"`
	DeliveryTime  string        `json:"delivery_time"`
	PaymentStatus string        `json:"payment_status,omitempty"`
	FailureReason string        `json:"failure_reason,omitempty"`
}

func (s *CheckoutSession) Summary() CheckoutSummary {
	summary := CheckoutSummary{
		SessionID:     s.ID,
		State:         s.State,
		Success:       s.State == CheckoutDone || s.State == CheckoutNotified || s.State == CheckoutOrderPersisted,
		OrderID:       s.OrderID,
		Amount:        s.Draft.Total,
		DeliveryTime:  s.Draft.DeliveryTime,
		FailureReason: s.FailureReason,
	}
	if s.Order != nil {
		summary.PaymentStatus = string(s.Order.PaymentStatus)
	}
	return summary
}
