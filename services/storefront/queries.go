package storefront

import (
	"github.com/MarcGrol/shopclient/lib/mygraphql"
)

const checkoutByIDDocument = `query CheckoutByID($id: ID!) {
  node(id: $id) {
    ... on Checkout {
      id
      webUrl
      ready
      requiresShipping
      email
      note
      currencyCode
      completedAt
      subtotalPriceV2 { amount currencyCode }
      totalTaxV2 { amount currencyCode }
      totalPriceV2 { amount currencyCode }
      paymentDueV2 { amount currencyCode }
      lineItems(first: 250) {
        edges {
          node {
            id
            title
            quantity
            variant { id title priceV2 { amount currencyCode } }
          }
        }
      }
      shippingAddress {
        firstName lastName company address1 address2 city province zip country countryCodeV2 phone
      }
      shippingLine { handle title priceV2 { amount currencyCode } }
      availableShippingRates {
        ready
        shippingRates { handle title priceV2 { amount currencyCode } }
      }
    }
  }
}`

const productByIDDocument = `query ProductByID($id: ID!) {
  node(id: $id) {
    ... on Product {
      id
      title
      handle
      descriptionHtml
      vendor
      productType
      createdAt
      updatedAt
      publishedAt
      availableForSale
      tags
      options { id name values }
      images(first: 250) { edges { node { id url altText } } }
      variants(first: 250) {
        edges {
          node {
            id
            title
            sku
            availableForSale
            requiresShipping
            weight
            weightUnit
            priceV2 { amount currencyCode }
            compareAtPriceV2 { amount currencyCode }
            selectedOptions { name value }
            image { id url altText }
          }
        }
      }
    }
  }
}`

const collectionByIDDocument = `query CollectionByID($id: ID!) {
  node(id: $id) {
    ... on Collection {
      id
      title
      handle
      descriptionHtml
      updatedAt
      image { url altText }
    }
  }
}`

const shopDocument = `query Shop {
  shop {
    name
    description
    moneyFormat
    shipsToCountries
    primaryDomain { host url }
    paymentSettings { currencyCode countryCode }
  }
}`

// CheckoutByIDQuery requests a single checkout. Immutable once created.
type CheckoutByIDQuery struct {
	id string
}

func NewCheckoutByIDQuery(checkoutID string) CheckoutByIDQuery {
	return CheckoutByIDQuery{id: checkoutID}
}

func (q CheckoutByIDQuery) ID() string {
	return q.id
}

func (q CheckoutByIDQuery) Request() mygraphql.Request {
	return nodeRequest("CheckoutByID", checkoutByIDDocument, q.id)
}

type ProductByIDQuery struct {
	id string
}

func NewProductByIDQuery(productID string) ProductByIDQuery {
	return ProductByIDQuery{id: productID}
}

func (q ProductByIDQuery) ID() string {
	return q.id
}

func (q ProductByIDQuery) Request() mygraphql.Request {
	return nodeRequest("ProductByID", productByIDDocument, q.id)
}

type CollectionByIDQuery struct {
	id string
}

func NewCollectionByIDQuery(collectionID string) CollectionByIDQuery {
	return CollectionByIDQuery{id: collectionID}
}

func (q CollectionByIDQuery) ID() string {
	return q.id
}

func (q CollectionByIDQuery) Request() mygraphql.Request {
	return nodeRequest("CollectionByID", collectionByIDDocument, q.id)
}

type ShopQuery struct{}

func NewShopQuery() ShopQuery {
	return ShopQuery{}
}

func (q ShopQuery) Request() mygraphql.Request {
	return mygraphql.Request{
		Query:         shopDocument,
		OperationName: "Shop",
	}
}

func nodeRequest(operationName string, document string, id string) mygraphql.Request {
	return mygraphql.Request{
		Query:         document,
		OperationName: operationName,
		Variables:     map[string]any{"id": id},
	}
}
