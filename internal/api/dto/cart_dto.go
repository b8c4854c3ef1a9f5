package dto

import (
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/RoyceAzure/lab/storefront/internal/service"
)

type AddCartItemDTO struct {
	ProductName string       `json:"product_name"`
	Category    string       `json:"category"`
	Price       model.Rupees `json:"price"`
	Quantity    int          `json:"quantity"`
	IsSample    bool         `json:"is_sample"`
}

func (d AddCartItemDTO) ToLineItem() (model.LineItem, int) {
	qty := d.Quantity
	if qty == 0 {
		qty = 1
	}
	return model.LineItem{
		ProductName: d.ProductName,
		Category:    d.Category,
		UnitPrice:   d.Price,
		IsSample:    d.IsSample,
	}, qty
}

type UpdateCartItemDTO struct {
	Quantity int `json:"quantity"`
}

type CartResponse struct {
	Success bool             `json:"success"`
	Cart    service.CartView `json:"cart"`
}

type CartContainsResponse struct {
	Success bool `json:"success"`
	InCart  bool `json:"in_cart"`
}

type AddressDTO struct {
	FullName     string `json:"full_name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
}

func (d AddressDTO) ToModel() model.Address {
	return model.Address{
		FullName:     d.FullName,
		Phone:        d.Phone,
		Email:        d.Email,
		AddressLine1: d.AddressLine1,
		AddressLine2: d.AddressLine2,
		City:         d.City,
		State:        d.State,
		Pincode:      d.Pincode,
	}
}

type AddressResponse struct {
	Success bool                `json:"success"`
	Address *model.SavedAddress `json:"address"`
}
