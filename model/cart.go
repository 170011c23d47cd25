package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Cart struct {
	UID          string
	CreatedAt    time.Time
	LastModified *time.Time
	LineItems    []CartLineItem
}

type CartLineItem struct {
	UID                string
	VariantID          string
	ProductID          string
	Title              string
	VariantTitle       string
	Quantity           int64
	Price              decimal.Decimal
	CompareAtPrice     *decimal.Decimal
	SKU                string
	RequiresShipping   bool
	Taxable            bool
	Grams              int64
	FulfillmentService string
	Properties         map[string]string
}

func (l CartLineItem) LinePrice() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(l.Quantity))
}

func (c Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.LineItems {
		total = total.Add(l.LinePrice())
	}
	return total
}

func (c Cart) ItemCount() int64 {
	var count int64
	for _, l := range c.LineItems {
		count += l.Quantity
	}
	return count
}

func (c Cart) RequiresShipping() bool {
	for _, l := range c.LineItems {
		if l.RequiresShipping {
			return true
		}
	}
	return false
}
