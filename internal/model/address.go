package model

import "fmt"

type Address struct {
	FullName     string `json:"full_name"`
	Phone        string `json:"phone"`
	Email        string `json:"email,omitempty"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
}

// FullAddress is the single line form stored on an order: "line1, line2, city, state - pincode".
func (a Address) FullAddress() string {
	street := a.AddressLine1
	if a.AddressLine2 != "" {
		street += ", " + a.AddressLine2
	}
	return fmt.Sprintf("%s, %s, %s - %s", street, a.City, a.State, a.Pincode)
}

type SavedAddress struct {
	UserID string `json:"user_id"`
	Address
}
