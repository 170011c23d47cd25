package interactor

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MarcGrol/shopclient/lib/myerrors"
	"github.com/MarcGrol/shopclient/model"
	"github.com/MarcGrol/shopclient/services/storefront"
)

func convertToCheckout(checkoutID string) func(storefront.CheckoutByIDData) (model.Checkout, error) {
	return func(data storefront.CheckoutByIDData) (model.Checkout, error) {
		node := data.Node
		if node == nil {
			return model.Checkout{}, myerrors.NewNotFoundError(fmt.Errorf("checkout with id %s not found", checkoutID))
		}

		checkout := model.Checkout{
			ID:               node.ID,
			WebURL:           node.WebURL,
			Ready:            node.Ready,
			RequiresShipping: node.RequiresShipping,
			Email:            node.Email,
			Note:             node.Note,
			Currency:         node.CurrencyCode,
			LineItems:        []model.CheckoutLineItem{},
		}

		var err error
		checkout.SubtotalPrice, err = parseMoney("subtotalPrice", node.SubtotalPrice)
		if err != nil {
			return model.Checkout{}, err
		}
		checkout.TaxPrice, err = parseMoney("totalTax", node.TotalTax)
		if err != nil {
			return model.Checkout{}, err
		}
		checkout.TotalPrice, err = parseMoney("totalPrice", node.TotalPrice)
		if err != nil {
			return model.Checkout{}, err
		}
		checkout.PaymentDue, err = parseMoney("paymentDue", node.PaymentDue)
		if err != nil {
			return model.Checkout{}, err
		}
		checkout.CompletedAt, err = parseOptionalTime("completedAt", node.CompletedAt)
		if err != nil {
			return model.Checkout{}, err
		}

		for _, edge := range node.LineItems.Edges {
			lineItem, err := convertToCheckoutLineItem(edge.Node)
			if err != nil {
				return model.Checkout{}, err
			}
			checkout.LineItems = append(checkout.LineItems, lineItem)
		}

		if node.ShippingAddress != nil {
			checkout.ShippingAddress = convertToAddress(*node.ShippingAddress)
		}

		if node.ShippingLine != nil {
			rate, err := convertToShippingRate(*node.ShippingLine)
			if err != nil {
				return model.Checkout{}, err
			}
			checkout.ShippingRate = &rate
		}

		if node.AvailableShippingRates != nil && node.AvailableShippingRates.Ready {
			for _, r := range node.AvailableShippingRates.ShippingRates {
				rate, err := convertToShippingRate(r)
				if err != nil {
					return model.Checkout{}, err
				}
				checkout.AvailableShippingRates = append(checkout.AvailableShippingRates, rate)
			}
		}

		return checkout, nil
	}
}

func convertToCheckoutLineItem(node storefront.CheckoutLineItem) (model.CheckoutLineItem, error) {
	lineItem := model.CheckoutLineItem{
		ID:       node.ID,
		Title:    node.Title,
		Quantity: node.Quantity,
		Price:    decimal.Zero,
	}

	// the variant is null when it was deleted after being added to the checkout
	if node.Variant != nil {
		price, err := parseMoney("lineItem.variant.price", node.Variant.Price)
		if err != nil {
			return model.CheckoutLineItem{}, err
		}
		lineItem.VariantID = node.Variant.ID
		lineItem.VariantTitle = node.Variant.Title
		lineItem.Price = price
	}

	return lineItem, nil
}

func convertToAddress(a storefront.MailingAddress) *model.Address {
	return &model.Address{
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		Company:     a.Company,
		Address1:    a.Address1,
		Address2:    a.Address2,
		City:        a.City,
		Province:    a.Province,
		Zip:         a.Zip,
		Country:     a.Country,
		CountryCode: a.CountryCode,
		Phone:       a.Phone,
	}
}

func convertToShippingRate(r storefront.ShippingRate) (model.ShippingRate, error) {
	price, err := parseMoney("shippingRate.price", r.Price)
	if err != nil {
		return model.ShippingRate{}, err
	}
	return model.ShippingRate{
		Handle: r.Handle,
		Title:  r.Title,
		Price:  price,
	}, nil
}

func convertToProduct(productID string) func(storefront.ProductByIDData) (model.Product, error) {
	return func(data storefront.ProductByIDData) (model.Product, error) {
		node := data.Node
		if node == nil {
			return model.Product{}, myerrors.NewNotFoundError(fmt.Errorf("product with id %s not found", productID))
		}

		product := model.Product{
			ID:          node.ID,
			Title:       node.Title,
			Handle:      node.Handle,
			BodyHTML:    node.DescriptionHTML,
			Vendor:      node.Vendor,
			ProductType: node.ProductType,
			Tags:        model.NewTagSet(node.Tags...),
			Available:   node.AvailableForSale,
			Images:      []model.Image{},
			Variants:    []model.ProductVariant{},
			Options:     []model.Option{},
		}

		var err error
		product.CreatedAt, err = parseTime("createdAt", node.CreatedAt)
		if err != nil {
			return model.Product{}, err
		}
		product.UpdatedAt, err = parseTime("updatedAt", node.UpdatedAt)
		if err != nil {
			return model.Product{}, err
		}
		product.PublishedAt, err = parseOptionalTime("publishedAt", node.PublishedAt)
		if err != nil {
			return model.Product{}, err
		}
		product.Published = product.PublishedAt != nil

		optionIDs := map[string]string{}
		for idx, o := range node.Options {
			optionIDs[o.Name] = o.ID
			product.Options = append(product.Options, model.Option{
				ID:        o.ID,
				Name:      o.Name,
				Position:  idx + 1,
				ProductID: node.ID,
				Values:    o.Values,
			})
		}

		for idx, edge := range node.Images.Edges {
			product.Images = append(product.Images, model.Image{
				ID:        edge.Node.ID,
				Src:       edge.Node.URL,
				AltText:   edge.Node.AltText,
				Position:  idx + 1,
				ProductID: node.ID,
			})
		}

		for idx, edge := range node.Variants.Edges {
			variant, err := convertToVariant(edge.Node, idx+1, node, optionIDs)
			if err != nil {
				return model.Product{}, err
			}
			product.Variants = append(product.Variants, variant)
			linkImageToVariant(product.Images, edge.Node)
		}

		return product, nil
	}
}

func convertToVariant(v storefront.VariantNode, position int, product *storefront.ProductNode, optionIDs map[string]string) (model.ProductVariant, error) {
	price, err := parseMoney("variant.price", v.Price)
	if err != nil {
		return model.ProductVariant{}, err
	}

	variant := model.ProductVariant{
		ID:               v.ID,
		Title:            v.Title,
		Price:            price,
		Grams:            toGrams(v.Weight, v.WeightUnit),
		SKU:              v.SKU,
		RequiresShipping: v.RequiresShipping,
		Position:         position,
		ProductID:        product.ID,
		ProductTitle:     product.Title,
		Available:        v.AvailableForSale,
		OptionValues:     []model.OptionValue{},
	}

	if v.CompareAtPrice != nil {
		compareAt, err := parseMoney("variant.compareAtPrice", *v.CompareAtPrice)
		if err != nil {
			return model.ProductVariant{}, err
		}
		variant.CompareAtPrice = &compareAt
	}

	if v.Image != nil {
		variant.ImageURL = v.Image.URL
	}

	for _, so := range v.SelectedOptions {
		variant.OptionValues = append(variant.OptionValues, model.OptionValue{
			OptionID:  optionIDs[so.Name],
			Name:      so.Name,
			Value:     so.Value,
			VariantID: v.ID,
		})
	}

	return variant, nil
}

func linkImageToVariant(images []model.Image, v storefront.VariantNode) {
	if v.Image == nil {
		return
	}
	for idx := range images {
		if images[idx].ID == v.Image.ID {
			images[idx].VariantIDs = append(images[idx].VariantIDs, v.ID)
		}
	}
}

var gramsPerUnit = map[string]float64{
	"GRAMS":     1,
	"KILOGRAMS": 1000,
	"OUNCES":    28.349523125,
	"POUNDS":    453.59237,
}

func toGrams(weight float64, unit string) int64 {
	factor, found := gramsPerUnit[unit]
	if !found {
		factor = 1
	}
	return int64(math.Round(weight * factor))
}

func convertToCollection(collectionID string) func(storefront.CollectionByIDData) (model.Collection, error) {
	return func(data storefront.CollectionByIDData) (model.Collection, error) {
		node := data.Node
		if node == nil {
			return model.Collection{}, myerrors.NewNotFoundError(fmt.Errorf("collection with id %s not found", collectionID))
		}

		updatedAt, err := parseTime("updatedAt", node.UpdatedAt)
		if err != nil {
			return model.Collection{}, err
		}

		collection := model.Collection{
			ID:              node.ID,
			Title:           node.Title,
			HTMLDescription: node.DescriptionHTML,
			Handle:          node.Handle,
			UpdatedAt:       updatedAt,
		}
		if node.Image != nil {
			collection.Image = model.NewCollectionImage(node.Image.URL, node.Image.AltText)
		}

		return collection, nil
	}
}

func convertToShop(data storefront.ShopData) (model.Shop, error) {
	shop := data.Shop
	return model.Shop{
		Name:             shop.Name,
		Country:          shop.PaymentSettings.CountryCode,
		Currency:         shop.PaymentSettings.CurrencyCode,
		Domain:           shop.PrimaryDomain.Host,
		URL:              shop.PrimaryDomain.URL,
		Description:      shop.Description,
		ShipsToCountries: shop.ShipsToCountries,
		MoneyFormat:      shop.MoneyFormat,
	}, nil
}

func parseMoney(field string, m storefront.MoneyV2) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(m.Amount)
	if err != nil {
		return decimal.Zero, myerrors.NewContractViolationError(fmt.Errorf("invalid amount '%s' for %s: %s", m.Amount, field, err))
	}
	return amount, nil
}

func parseTime(field string, value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, myerrors.NewContractViolationError(fmt.Errorf("invalid timestamp '%s' for %s: %s", value, field, err))
	}
	return t, nil
}

func parseOptionalTime(field string, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := parseTime(field, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
