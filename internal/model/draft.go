package model

type DraftSource string

const (
	DraftSourceCart   DraftSource = "cart"
	DraftSourceBuyNow DraftSource = "buy_now"
)

// OrderDraft is the not yet persisted order built from a cart or a buy now selection.
type OrderDraft struct {
	Customer       Address     `json:"customer"`
	Items          []LineItem  `json:"items"`
	Subtotal       Rupees      `json:"subtotal"`
	Discount       Rupees      `json:"discount"`
	DeliveryCharge Rupees      `json:"delivery_charge"`
	FinalAmount    Rupees      `json:"final_amount"`
	Total          Rupees      `json:"total"`
	DeliveryTime   string      `json:"delivery_time"`
	IsGuest        bool        `json:"is_guest"`
	UserID         string      `json:"user_id,omitempty"`
	Source         DraftSource `json:"source"`
}

// PayableAmount is what the gateway is asked to collect, delivery charge included.
func (d OrderDraft) PayableAmount() Paise {
	return d.Total.ToPaise()
}

func (d OrderDraft) OrderItems() []OrderItem {
	items := make([]OrderItem, 0, len(d.Items))
	for _, item := range d.Items {
		price := item.UnitPrice
		if item.IsSample {
			price = 0
		}
		items = append(items, OrderItem{
			Name:  item.ProductName,
			Qty:   item.Quantity,
			Price: price,
		})
	}
	return items
}
