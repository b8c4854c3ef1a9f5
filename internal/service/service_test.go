package service

import (
	"sync"

	"github.com/RoyceAzure/lab/storefront/internal/infra/notify"
	"github.com/RoyceAzure/lab/storefront/internal/model"
)

const testSecret = "test_key_secret"

type recordingDispatcher struct {
	mu     sync.Mutex
	sent   []notify.OrderNotification
	reject bool
}

func (d *recordingDispatcher) Dispatch(n notify.OrderNotification) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.reject {
		return false
	}
	d.sent = append(d.sent, n)
	return true
}

func (d *recordingDispatcher) count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.sent)
}

func validCustomer() model.Address {
	return model.Address{
		FullName:     "Meena Raman",
		Phone:        "9876543210",
		Email:        "meena@example.com",
		AddressLine1: "12 Temple Street",
		City:         "Madurai",
		State:        "Tamil Nadu",
		Pincode:      "625001",
	}
}

func guest() model.Identity {
	return model.Identity{GuestID: "g-1"}
}

func member() model.Identity {
	return model.Identity{UserID: "u-1"}
}
