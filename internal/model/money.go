package model

import "strconv"

// Rupees is a whole rupee amount. Catalog prices, line items and order totals use it.
type Rupees int64

// Paise is the smallest INR subunit. Every amount sent to or read from the payment gateway is Paise.
type Paise int64

func (r Rupees) ToPaise() Paise {
	return Paise(r * 100)
}

func (p Paise) IsPositive() bool {
	return p > 0
}

func (r Rupees) String() string {
	return strconv.FormatInt(int64(r), 10)
}
