package cart

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MarcGrol/shopclient/lib/myerrors"
	"github.com/MarcGrol/shopclient/model"
)

// CartRecord is the stored form of a cart. Amounts are kept as strings so they survive every
// store implementation without loss of precision.
type CartRecord struct {
	UID          string
	CreatedAt    time.Time
	LastModified time.Time
	Lines        []CartLineRecord
}

type CartLineRecord struct {
	UID                string
	VariantID          string
	ProductID          string
	Title              string `datastore:",noindex"`
	VariantTitle       string `datastore:",noindex"`
	Quantity           int64
	Price              string
	CompareAtPrice     string `datastore:",noindex"`
	SKU                string
	RequiresShipping   bool
	Taxable            bool
	Grams              int64
	FulfillmentService string `datastore:",noindex"`
	PropertiesJSON     string `datastore:",noindex"`
}

func cartFromRecord(r CartRecord) (model.Cart, error) {
	cart := model.Cart{
		UID:       r.UID,
		CreatedAt: r.CreatedAt,
		LineItems: []model.CartLineItem{},
	}
	if !r.LastModified.IsZero() {
		lastModified := r.LastModified
		cart.LastModified = &lastModified
	}

	for _, l := range r.Lines {
		lineItem, err := lineItemFromRecord(l)
		if err != nil {
			return model.Cart{}, myerrors.NewInternalError(fmt.Errorf("cart %s: %s", r.UID, err))
		}
		cart.LineItems = append(cart.LineItems, lineItem)
	}

	return cart, nil
}

func lineItemFromRecord(l CartLineRecord) (model.CartLineItem, error) {
	price, err := decimal.NewFromString(l.Price)
	if err != nil {
		return model.CartLineItem{}, fmt.Errorf("invalid price '%s' of line %s: %s", l.Price, l.UID, err)
	}

	lineItem := model.CartLineItem{
		UID:                l.UID,
		VariantID:          l.VariantID,
		ProductID:          l.ProductID,
		Title:              l.Title,
		VariantTitle:       l.VariantTitle,
		Quantity:           l.Quantity,
		Price:              price,
		SKU:                l.SKU,
		RequiresShipping:   l.RequiresShipping,
		Taxable:            l.Taxable,
		Grams:              l.Grams,
		FulfillmentService: l.FulfillmentService,
		Properties:         map[string]string{},
	}

	if l.CompareAtPrice != "" {
		compareAt, err := decimal.NewFromString(l.CompareAtPrice)
		if err != nil {
			return model.CartLineItem{}, fmt.Errorf("invalid compare-at price '%s' of line %s: %s", l.CompareAtPrice, l.UID, err)
		}
		lineItem.CompareAtPrice = &compareAt
	}

	if l.PropertiesJSON != "" {
		err := json.Unmarshal([]byte(l.PropertiesJSON), &lineItem.Properties)
		if err != nil {
			return model.CartLineItem{}, fmt.Errorf("invalid properties of line %s: %s", l.UID, err)
		}
	}

	return lineItem, nil
}

func lineRecordFromItem(l model.CartLineItem) (CartLineRecord, error) {
	record := CartLineRecord{
		UID:                l.UID,
		VariantID:          l.VariantID,
		ProductID:          l.ProductID,
		Title:              l.Title,
		VariantTitle:       l.VariantTitle,
		Quantity:           l.Quantity,
		Price:              l.Price.String(),
		SKU:                l.SKU,
		RequiresShipping:   l.RequiresShipping,
		Taxable:            l.Taxable,
		Grams:              l.Grams,
		FulfillmentService: l.FulfillmentService,
	}
	if l.CompareAtPrice != nil {
		record.CompareAtPrice = l.CompareAtPrice.String()
	}
	if len(l.Properties) > 0 {
		properties, err := json.Marshal(l.Properties)
		if err != nil {
			return CartLineRecord{}, myerrors.NewInternalError(err)
		}
		record.PropertiesJSON = string(properties)
	}
	return record, nil
}
