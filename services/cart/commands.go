package cart

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MarcGrol/shopclient/lib/myerrors"
	"github.com/MarcGrol/shopclient/lib/myevents"
	"github.com/MarcGrol/shopclient/lib/mylog"
	"github.com/MarcGrol/shopclient/model"
)

// LineItemForm is what a shopper submits when putting a product variant into the cart.
type LineItemForm struct {
	VariantID          string            `form:"variantId"`
	ProductID          string            `form:"productId"`
	Title              string            `form:"title"`
	VariantTitle       string            `form:"variantTitle"`
	Quantity           int64             `form:"quantity"`
	Price              string            `form:"price"`
	CompareAtPrice     string            `form:"compareAtPrice"`
	SKU                string            `form:"sku"`
	RequiresShipping   bool              `form:"requiresShipping"`
	Taxable            bool              `form:"taxable"`
	Grams              int64             `form:"grams"`
	FulfillmentService string            `form:"fulfillmentService"`
	Properties         map[string]string `form:"properties"`
}

func (f LineItemForm) toLineItem() (model.CartLineItem, error) {
	if strings.TrimSpace(f.VariantID) == "" {
		return model.CartLineItem{}, myerrors.NewInvalidArgumentErrorf("variantId can't be empty")
	}
	if f.Quantity <= 0 {
		return model.CartLineItem{}, myerrors.NewInvalidArgumentErrorf("quantity must be positive, got %d", f.Quantity)
	}
	if strings.TrimSpace(f.Price) == "" {
		return model.CartLineItem{}, myerrors.NewInvalidArgumentErrorf("price can't be empty")
	}
	price, err := decimal.NewFromString(f.Price)
	if err != nil {
		return model.CartLineItem{}, myerrors.NewInvalidArgumentErrorf("invalid price '%s'", f.Price)
	}

	lineItem := model.CartLineItem{
		VariantID:          f.VariantID,
		ProductID:          f.ProductID,
		Title:              f.Title,
		VariantTitle:       f.VariantTitle,
		Quantity:           f.Quantity,
		Price:              price,
		SKU:                f.SKU,
		RequiresShipping:   f.RequiresShipping,
		Taxable:            f.Taxable,
		Grams:              f.Grams,
		FulfillmentService: f.FulfillmentService,
		Properties:         map[string]string{},
	}
	maps.Copy(lineItem.Properties, f.Properties)

	if f.CompareAtPrice != "" {
		compareAt, err := decimal.NewFromString(f.CompareAtPrice)
		if err != nil {
			return model.CartLineItem{}, myerrors.NewInvalidArgumentErrorf("invalid compareAtPrice '%s'", f.CompareAtPrice)
		}
		lineItem.CompareAtPrice = &compareAt
	}

	return lineItem, nil
}

func (s *service) createCart(c context.Context) (model.Cart, error) {
	cartUID := s.uuider.Create()
	record := CartRecord{
		UID:       cartUID,
		CreatedAt: s.nower.Now(),
		Lines:     []CartLineRecord{},
	}

	s.logger.Log(c, cartUID, mylog.SeverityInfo, "Creating new cart with uid %s", cartUID)

	err := s.cartStore.RunInTransaction(c, func(c context.Context) error {
		err := s.cartStore.Put(c, cartUID, record)
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		err = s.publisher.Publish(c, TopicName, CartCreated{CartUID: cartUID})
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return model.Cart{}, err
	}

	return cartFromRecord(record)
}

func (s *service) getCart(c context.Context, cartUID string) (model.Cart, error) {
	s.logger.Log(c, cartUID, mylog.SeverityInfo, "Fetch cart with uid %s", cartUID)

	record, err := s.fetch(c, cartUID)
	if err != nil {
		return model.Cart{}, err
	}

	return cartFromRecord(record)
}

// addLineItem merges the quantity into an existing line for the same variant with the same properties.
func (s *service) addLineItem(c context.Context, cartUID string, form LineItemForm) (model.Cart, error) {
	lineItem, err := form.toLineItem()
	if err != nil {
		return model.Cart{}, err
	}
	lineItem.UID = s.uuider.Create()

	s.logger.Log(c, cartUID, mylog.SeverityInfo, "Add %d x variant %s to cart %s", lineItem.Quantity, lineItem.VariantID, cartUID)

	return s.modify(c, cartUID, func(cart *model.Cart) (myevents.Event, error) {
		event := LineItemAdded{
			CartUID:   cartUID,
			LineUID:   lineItem.UID,
			VariantID: lineItem.VariantID,
			Quantity:  lineItem.Quantity,
		}
		for idx, existing := range cart.LineItems {
			if existing.VariantID == lineItem.VariantID && maps.Equal(existing.Properties, lineItem.Properties) {
				cart.LineItems[idx].Quantity += lineItem.Quantity
				event.LineUID = existing.UID
				return event, nil
			}
		}
		cart.LineItems = append(cart.LineItems, lineItem)
		return event, nil
	})
}

func (s *service) removeLineItem(c context.Context, cartUID string, lineUID string) (model.Cart, error) {
	s.logger.Log(c, cartUID, mylog.SeverityInfo, "Remove line %s from cart %s", lineUID, cartUID)

	return s.modify(c, cartUID, func(cart *model.Cart) (myevents.Event, error) {
		idx := slices.IndexFunc(cart.LineItems, func(l model.CartLineItem) bool {
			return l.UID == lineUID
		})
		if idx < 0 {
			return nil, myerrors.NewNotFoundError(fmt.Errorf("line with uid %s not found in cart %s", lineUID, cartUID))
		}
		event := LineItemRemoved{
			CartUID:   cartUID,
			LineUID:   lineUID,
			VariantID: cart.LineItems[idx].VariantID,
		}
		cart.LineItems = slices.Delete(cart.LineItems, idx, idx+1)
		return event, nil
	})
}

func (s *service) clearCart(c context.Context, cartUID string) (model.Cart, error) {
	s.logger.Log(c, cartUID, mylog.SeverityInfo, "Clear cart %s", cartUID)

	return s.modify(c, cartUID, func(cart *model.Cart) (myevents.Event, error) {
		cart.LineItems = []model.CartLineItem{}
		return CartCleared{CartUID: cartUID}, nil
	})
}

func (s *service) fetch(c context.Context, cartUID string) (CartRecord, error) {
	record, found, err := s.cartStore.Get(c, cartUID)
	if err != nil {
		return CartRecord{}, myerrors.NewInternalError(err)
	}
	if !found {
		return CartRecord{}, myerrors.NewNotFoundError(fmt.Errorf("cart with uid %s not found", cartUID))
	}
	return record, nil
}

// modify applies f to the stored cart and publishes the event f returns, all within a single transaction.
func (s *service) modify(c context.Context, cartUID string, f func(cart *model.Cart) (myevents.Event, error)) (model.Cart, error) {
	now := s.nower.Now()

	var cart model.Cart
	err := s.cartStore.RunInTransaction(c, func(c context.Context) error {
		record, err := s.fetch(c, cartUID)
		if err != nil {
			return err
		}

		cart, err = cartFromRecord(record)
		if err != nil {
			return err
		}

		event, err := f(&cart)
		if err != nil {
			return err
		}
		cart.LastModified = &now

		updated := CartRecord{
			UID:          cart.UID,
			CreatedAt:    cart.CreatedAt,
			LastModified: now,
			Lines:        []CartLineRecord{},
		}
		for _, l := range cart.LineItems {
			line, err := lineRecordFromItem(l)
			if err != nil {
				return err
			}
			updated.Lines = append(updated.Lines, line)
		}

		err = s.cartStore.Put(c, cartUID, updated)
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		err = s.publisher.Publish(c, TopicName, event)
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return model.Cart{}, err
	}

	return cart, nil
}
