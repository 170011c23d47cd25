package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Checkout struct {
	ID                     string
	WebURL                 string
	Ready                  bool
	RequiresShipping       bool
	Email                  string
	Note                   string
	Currency               string
	SubtotalPrice          decimal.Decimal
	TaxPrice               decimal.Decimal
	TotalPrice             decimal.Decimal
	PaymentDue             decimal.Decimal
	LineItems              []CheckoutLineItem
	ShippingAddress        *Address
	ShippingRate           *ShippingRate
	AvailableShippingRates []ShippingRate
	CompletedAt            *time.Time
}

func (c Checkout) Completed() bool {
	return c.CompletedAt != nil
}

type CheckoutLineItem struct {
	ID           string
	Title        string
	VariantID    string
	VariantTitle string
	Quantity     int64
	Price        decimal.Decimal
}

func (l CheckoutLineItem) LinePrice() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(l.Quantity))
}

type Address struct {
	FirstName   string
	LastName    string
	Company     string
	Address1    string
	Address2    string
	City        string
	Province    string
	Zip         string
	Country     string
	CountryCode string
	Phone       string
}

type ShippingRate struct {
	Handle string
	Title  string
	Price  decimal.Decimal
}
