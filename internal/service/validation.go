package service

import (
	"regexp"
	"strings"

	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/RoyceAzure/lab/storefront/internal/pkg/apperr"
)

var (
	emailPattern   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern   = regexp.MustCompile(`^[0-9]{10}$`)
	pincodePattern = regexp.MustCompile(`^[0-9]{6}$`)
)

// ValidateCustomer reports the first failing field only.
//
// 參數:
//   - customer: 聯絡資料與地址
//   - emailRequired: 已登入使用者必須填 email, 訪客可省略
//   - checkAddress: 使用已儲存地址時不需再檢查地址欄位
func ValidateCustomer(customer model.Address, emailRequired, checkAddress bool) error {
	if strings.TrimSpace(customer.FullName) == "" {
		return apperr.New(apperr.BadRequestCode, "Full name is required")
	}

	email := strings.TrimSpace(customer.Email)
	if email != "" && !emailPattern.MatchString(email) {
		return apperr.New(apperr.BadRequestCode, "Please enter a valid email address")
	}
	if emailRequired && email == "" {
		return apperr.New(apperr.BadRequestCode, "Email is required")
	}

	phone := strings.TrimSpace(customer.Phone)
	if phone == "" {
		return apperr.New(apperr.BadRequestCode, "Phone number is required")
	}
	if !phonePattern.MatchString(phone) {
		return apperr.New(apperr.BadRequestCode, "Phone number must be exactly 10 digits")
	}

	if !checkAddress {
		return nil
	}
	return validateAddressFields(customer)
}

func validateAddressFields(a model.Address) error {
	if strings.TrimSpace(a.AddressLine1) == "" {
		return apperr.New(apperr.BadRequestCode, "Address Line 1 is required")
	}
	if strings.TrimSpace(a.City) == "" {
		return apperr.New(apperr.BadRequestCode, "City is required")
	}
	if strings.TrimSpace(a.State) == "" {
		return apperr.New(apperr.BadRequestCode, "State is required")
	}
	pincode := strings.TrimSpace(a.Pincode)
	if pincode == "" {
		return apperr.New(apperr.BadRequestCode, "Pincode is required")
	}
	if !pincodePattern.MatchString(pincode) {
		return apperr.New(apperr.BadRequestCode, "Pincode must be exactly 6 digits")
	}
	return nil
}

func trimAddress(a model.Address) model.Address {
	return model.Address{
		FullName:     strings.TrimSpace(a.FullName),
		Phone:        strings.TrimSpace(a.Phone),
		Email:        strings.TrimSpace(a.Email),
		AddressLine1: strings.TrimSpace(a.AddressLine1),
		AddressLine2: strings.TrimSpace(a.AddressLine2),
		City:         strings.TrimSpace(a.City),
		State:        strings.TrimSpace(a.State),
		Pincode:      strings.TrimSpace(a.Pincode),
	}
}
