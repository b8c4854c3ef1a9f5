package model

import "fmt"

// Identity is the caller as seen by the storefront. UserID is empty for guests.
type Identity struct {
	UserID  string
	GuestID string
}

func (i Identity) IsAuthenticated() bool {
	return i.UserID != ""
}

// Scope is the storage namespace for per-caller state such as the cart.
func (i Identity) Scope() string {
	if i.UserID != "" {
		return fmt.Sprintf("user:%s", i.UserID)
	}
	return fmt.Sprintf("guest:%s", i.GuestID)
}
