package interactor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/shopclient/lib/myasync"
	"github.com/MarcGrol/shopclient/lib/myerrors"
	"github.com/MarcGrol/shopclient/lib/mygraphql"
	"github.com/MarcGrol/shopclient/model"
	"github.com/MarcGrol/shopclient/services/storefront"
)

const exampleCheckoutID = "gid://shopify/Checkout/123"

func exampleCheckoutData(checkoutID string) *storefront.CheckoutByIDData {
	return &storefront.CheckoutByIDData{
		Node: &storefront.CheckoutNode{
			ID:               checkoutID,
			WebURL:           "https://evas-shop.myshopify.com/1/checkouts/123",
			Ready:            true,
			RequiresShipping: true,
			Email:            "eva@example.com",
			CurrencyCode:     "EUR",
			SubtotalPrice:    storefront.MoneyV2{Amount: "61.0", CurrencyCode: "EUR"},
			TotalTax:         storefront.MoneyV2{Amount: "10.59", CurrencyCode: "EUR"},
			TotalPrice:       storefront.MoneyV2{Amount: "66.95", CurrencyCode: "EUR"},
			PaymentDue:       storefront.MoneyV2{Amount: "66.95", CurrencyCode: "EUR"},
			LineItems: storefront.CheckoutLineItems{
				Edges: []storefront.CheckoutLineItemEdge{
					{Node: storefront.CheckoutLineItem{
						ID:       "gid://shopify/CheckoutLineItem/1",
						Title:    "Tennis balls",
						Quantity: 6,
						Variant: &storefront.CheckoutVariant{
							ID:    "gid://shopify/ProductVariant/11",
							Title: "Yellow",
							Price: storefront.MoneyV2{Amount: "10.0", CurrencyCode: "EUR"},
						},
					}},
					{Node: storefront.CheckoutLineItem{
						ID:       "gid://shopify/CheckoutLineItem/2",
						Title:    "Wristband",
						Quantity: 1,
					}},
				},
			},
			ShippingAddress: &storefront.MailingAddress{
				FirstName:   "Eva",
				LastName:    "Jansen",
				City:        "De Bilt",
				CountryCode: "NL",
			},
			ShippingLine: &storefront.ShippingRate{
				Handle: "shopify-Standard-5.95",
				Title:  "Standard",
				Price:  storefront.MoneyV2{Amount: "5.95", CurrencyCode: "EUR"},
			},
			AvailableShippingRates: &storefront.AvailableShippingRates{
				Ready: true,
				ShippingRates: []storefront.ShippingRate{
					{Handle: "shopify-Standard-5.95", Title: "Standard", Price: storefront.MoneyV2{Amount: "5.95"}},
					{Handle: "shopify-Express-12.50", Title: "Express", Price: storefront.MoneyV2{Amount: "12.50"}},
				},
			},
		},
	}
}

func TestCheckoutByIDInteractor(t *testing.T) {

	t.Run("Checkout found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		sut, repository := setupCheckout(ctrl)

		// given
		call := respondWith(exampleCheckoutData(exampleCheckoutID))
		repository.EXPECT().Checkout(storefront.NewCheckoutByIDQuery(exampleCheckoutID)).Return(call)

		// when
		single, err := sut.Execute(context.TODO(), exampleCheckoutID)
		assert.NoError(t, err)
		c, cancel := awaitContext()
		defer cancel()
		checkout, err := single.Await(c)

		// then
		assert.NoError(t, err)
		assert.Equal(t, exampleCheckoutID, checkout.ID)
		assert.True(t, checkout.Ready)
		assert.Equal(t, "EUR", checkout.Currency)
		assert.True(t, decimal.RequireFromString("66.95").Equal(checkout.TotalPrice))
		assert.True(t, decimal.RequireFromString("10.59").Equal(checkout.TaxPrice))
		assert.Len(t, checkout.LineItems, 2)
		assert.Equal(t, "gid://shopify/ProductVariant/11", checkout.LineItems[0].VariantID)
		assert.Equal(t, "60.00", checkout.LineItems[0].LinePrice().StringFixed(2))
		assert.Equal(t, "", checkout.LineItems[1].VariantID)
		assert.True(t, decimal.Zero.Equal(checkout.LineItems[1].Price))
		assert.Equal(t, "De Bilt", checkout.ShippingAddress.City)
		assert.Equal(t, "Standard", checkout.ShippingRate.Title)
		assert.Len(t, checkout.AvailableShippingRates, 2)
		assert.False(t, checkout.Completed())
		assert.Equal(t, int32(1), call.executed.Load())
	})

	t.Run("Blank checkout id", func(t *testing.T) {
		for _, checkoutID := range []string{"", " ", "\t\n"} {
			ctrl := gomock.NewController(t)

			// setup
			sut, _ := setupCheckout(ctrl)

			// when
			single, err := sut.Execute(context.TODO(), checkoutID)

			// then
			assert.Nil(t, single)
			assert.Equal(t, myerrors.KindInvalidArgument, myerrors.GetKind(err))
			assert.Equal(t, "checkoutId can't be empty", err.Error())

			ctrl.Finish()
		}
	})

	t.Run("Remote errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		sut, repository := setupCheckout(ctrl)

		// given
		repository.EXPECT().Checkout(gomock.Any()).Return(respondWith(exampleCheckoutData(exampleCheckoutID),
			mygraphql.Error{Message: "Not found"},
			mygraphql.Error{Message: "Expired"},
		))

		// when
		_, err := awaitCheckout(t, sut, exampleCheckoutID)

		// then
		assert.Equal(t, myerrors.KindRemoteFailure, myerrors.GetKind(err))
		assert.Equal(t, "Not found\nExpired", err.Error())
	})

	t.Run("Transport failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		sut, repository := setupCheckout(ctrl)

		// given
		transportErr := myerrors.NewTransportError(errors.New("connection refused"))
		repository.EXPECT().Checkout(gomock.Any()).Return(failWith[storefront.CheckoutByIDData](transportErr))

		// when
		_, err := awaitCheckout(t, sut, exampleCheckoutID)

		// then
		assert.Equal(t, transportErr, err)
	})

	t.Run("Unknown checkout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		sut, repository := setupCheckout(ctrl)

		// given
		repository.EXPECT().Checkout(gomock.Any()).Return(respondWith(&storefront.CheckoutByIDData{}))

		// when
		_, err := awaitCheckout(t, sut, exampleCheckoutID)

		// then
		assert.Equal(t, myerrors.KindNotFound, myerrors.GetKind(err))
	})

	t.Run("No data and no errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		sut, repository := setupCheckout(ctrl)

		// given
		repository.EXPECT().Checkout(gomock.Any()).Return(respondWith[storefront.CheckoutByIDData](nil))

		// when
		_, err := awaitCheckout(t, sut, exampleCheckoutID)

		// then
		assert.Equal(t, myerrors.KindContractViolation, myerrors.GetKind(err))
	})

	t.Run("Malformed amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		sut, repository := setupCheckout(ctrl)

		// given
		data := exampleCheckoutData(exampleCheckoutID)
		data.Node.TotalPrice.Amount = "sixty"
		repository.EXPECT().Checkout(gomock.Any()).Return(respondWith(data))

		// when
		_, err := awaitCheckout(t, sut, exampleCheckoutID)

		// then
		assert.Equal(t, myerrors.KindContractViolation, myerrors.GetKind(err))
	})

	t.Run("Completed checkout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		sut, repository := setupCheckout(ctrl)

		// given
		data := exampleCheckoutData(exampleCheckoutID)
		data.Node.CompletedAt = "2017-03-21T14:35:12Z"
		repository.EXPECT().Checkout(gomock.Any()).Return(respondWith(data))

		// when
		checkout, err := awaitCheckout(t, sut, exampleCheckoutID)

		// then
		assert.NoError(t, err)
		assert.True(t, checkout.Completed())
	})

	t.Run("Cancel before completion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		sut, repository := setupCheckout(ctrl)

		// given
		call := respondWith(exampleCheckoutData(exampleCheckoutID)).blocking()
		repository.EXPECT().Checkout(gomock.Any()).Return(call)

		// when
		single, err := sut.Execute(context.TODO(), exampleCheckoutID)
		assert.NoError(t, err)
		<-call.started
		single.Cancel()

		// then
		c, cancel := awaitContext()
		defer cancel()
		_, err = single.Await(c)
		assert.Equal(t, myasync.ErrCancelled, err)
		assert.Equal(t, int32(1), call.cancelled.Load())
	})

	t.Run("Cancel after completion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		sut, repository := setupCheckout(ctrl)

		// given
		call := respondWith(exampleCheckoutData(exampleCheckoutID))
		repository.EXPECT().Checkout(gomock.Any()).Return(call)

		// when
		single, err := sut.Execute(context.TODO(), exampleCheckoutID)
		assert.NoError(t, err)
		c, cancel := awaitContext()
		defer cancel()
		_, err = single.Await(c)
		assert.NoError(t, err)
		single.Cancel()

		// then
		checkout, err := single.Await(c)
		assert.NoError(t, err)
		assert.Equal(t, exampleCheckoutID, checkout.ID)
		assert.Equal(t, int32(0), call.cancelled.Load())
	})

	t.Run("Concurrent executions are independent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		sut, repository := setupCheckout(ctrl)

		// given
		const count = 20
		repository.EXPECT().Checkout(gomock.Any()).DoAndReturn(func(query storefront.CheckoutByIDQuery) myasync.RemoteCall[mygraphql.Response[storefront.CheckoutByIDData]] {
			if query.ID() == "gid://shopify/Checkout/13" {
				return respondWith[storefront.CheckoutByIDData](nil, mygraphql.Error{Message: "Checkout 13 expired"})
			}
			return respondWith(exampleCheckoutData(query.ID()))
		}).Times(count)

		// when
		wg := sync.WaitGroup{}
		for i := 0; i < count; i++ {
			wg.Add(1)
			go func(checkoutID string) {
				defer wg.Done()

				checkout, err := awaitCheckout(t, sut, checkoutID)

				// then
				if checkoutID == "gid://shopify/Checkout/13" {
					assert.EqualError(t, err, "Checkout 13 expired")
					return
				}
				assert.NoError(t, err)
				assert.Equal(t, checkoutID, checkout.ID)
			}(fmt.Sprintf("gid://shopify/Checkout/%d", i))
		}
		wg.Wait()
	})
}

func setupCheckout(ctrl *gomock.Controller) (*CheckoutByIDInteractor, *storefront.MockRepository) {
	repository := storefront.NewMockRepository(ctrl)
	return NewCheckoutByIDInteractor(repository), repository
}

func awaitCheckout(t *testing.T, sut *CheckoutByIDInteractor, checkoutID string) (model.Checkout, error) {
	single, err := sut.Execute(context.TODO(), checkoutID)
	assert.NoError(t, err)

	c, cancel := awaitContext()
	defer cancel()
	return single.Await(c)
}
