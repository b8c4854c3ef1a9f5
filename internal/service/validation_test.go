package service

import (
	"testing"

	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/RoyceAzure/lab/storefront/internal/pkg/apperr"
	"github.com/stretchr/testify/require"
)

func TestValidateCustomerFirstFailureWins(t *testing.T) {
	testCases := []struct {
		name          string
		mutate        func(a *model.Address)
		emailRequired bool
		checkAddress  bool
		msg           string
	}{
		{"empty name", func(a *model.Address) { a.FullName = " "; a.Phone = "" }, false, true, "Full name is required"},
		{"bad email", func(a *model.Address) { a.Email = "meena@"; a.Phone = "" }, false, true, "Please enter a valid email address"},
		{"email required for member", func(a *model.Address) { a.Email = "" }, true, true, "Email is required"},
		{"guest may skip email", func(a *model.Address) { a.Email = "" }, false, true, ""},
		{"missing phone", func(a *model.Address) { a.Phone = "" }, false, true, "Phone number is required"},
		{"short phone", func(a *model.Address) { a.Phone = "98765" }, false, true, "Phone number must be exactly 10 digits"},
		{"missing line1", func(a *model.Address) { a.AddressLine1 = ""; a.City = "" }, false, true, "Address Line 1 is required"},
		{"missing city", func(a *model.Address) { a.City = "" }, false, true, "City is required"},
		{"missing state", func(a *model.Address) { a.State = "" }, false, true, "State is required"},
		{"missing pincode", func(a *model.Address) { a.Pincode = "" }, false, true, "Pincode is required"},
		{"bad pincode", func(a *model.Address) { a.Pincode = "62500A" }, false, true, "Pincode must be exactly 6 digits"},
		{"address skipped", func(a *model.Address) { a.AddressLine1 = "" }, false, false, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			customer := validCustomer()
			tc.mutate(&customer)
			err := ValidateCustomer(customer, tc.emailRequired, tc.checkAddress)
			if tc.msg == "" {
				require.NoError(t, err)
				return
			}
			appErr, ok := apperr.As(err)
			require.True(t, ok)
			require.Equal(t, apperr.BadRequestCode, appErr.Code)
			require.Equal(t, tc.msg, appErr.Msg)
		})
	}
}
