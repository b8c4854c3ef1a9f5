package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type LineItem struct {
	ID          string `json:"id"`
	ProductName string `json:"product_name"`
	Category    string `json:"category"`
	UnitPrice   Rupees `json:"unit_price"`
	Quantity    int    `json:"quantity"`
	IsSample    bool   `json:"is_sample"`
}

// Total is zero for samples regardless of the stored unit price.
func (l LineItem) Total() Rupees {
	if l.IsSample {
		return 0
	}
	return l.UnitPrice * Rupees(l.Quantity)
}

func (l LineItem) sameProduct(other LineItem) bool {
	return l.ProductName == other.ProductName && l.Category == other.Category
}

type Cart struct {
	Scope     string     `json:"scope"`
	Items     []LineItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func NewCart(scope string) *Cart {
	return &Cart{
		Scope: scope,
		Items: []LineItem{},
	}
}

// Add merges into the line with the same product and category, otherwise appends a new line.
// It returns the affected line.
func (c *Cart) Add(item LineItem, quantity int) LineItem {
	if quantity <= 0 {
		quantity = 1
	}
	if item.IsSample {
		item.UnitPrice = 0
	}
	for i := range c.Items {
		if c.Items[i].sameProduct(item) {
			c.Items[i].Quantity += quantity
			c.touch()
			return c.Items[i]
		}
	}

	item.ID = uuid.New().String()
	item.Quantity = quantity
	c.Items = append(c.Items, item)
	c.touch()
	return item
}

func (c *Cart) Remove(id string) bool {
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.touch()
			return true
		}
	}
	return false
}

// UpdateQuantity removes the line when quantity <= 0.
func (c *Cart) UpdateQuantity(id string, quantity int) bool {
	if quantity <= 0 {
		return c.Remove(id)
	}
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items[i].Quantity = quantity
			c.touch()
			return true
		}
	}
	return false
}

func (c *Cart) Clear() {
	c.Items = []LineItem{}
	c.touch()
}

func (c *Cart) Count() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

func (c *Cart) HasFreeSamples() bool {
	for _, item := range c.Items {
		if item.IsSample {
			return true
		}
	}
	return false
}

func (c *Cart) HasPaidItems() bool {
	for _, item := range c.Items {
		if !item.IsSample && item.UnitPrice > 0 {
			return true
		}
	}
	return false
}

func (c *Cart) IsInCart(productName string) bool {
	for _, item := range c.Items {
		if strings.EqualFold(item.ProductName, productName) {
			return true
		}
	}
	return false
}

// Snapshot copies the line items so a draft never shares the cart's backing array.
func (c *Cart) Snapshot() []LineItem {
	items := make([]LineItem, len(c.Items))
	copy(items, c.Items)
	return items
}

func (c *Cart) touch() {
	c.UpdatedAt = time.Now().UTC()
}
