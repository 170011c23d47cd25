package storefront

// The types below mirror the json returned by the Storefront API. Nullable scalars that carry
// no meaning when absent are plain strings; absent objects are pointers.

type MoneyV2 struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

type CheckoutByIDData struct {
	Node *CheckoutNode `json:"node"`
}

type CheckoutNode struct {
	ID                     string                  `json:"id"`
	WebURL                 string                  `json:"webUrl"`
	Ready                  bool                    `json:"ready"`
	RequiresShipping       bool                    `json:"requiresShipping"`
	Email                  string                  `json:"email"`
	Note                   string                  `json:"note"`
	CurrencyCode           string                  `json:"currencyCode"`
	CompletedAt            string                  `json:"completedAt"`
	SubtotalPrice          MoneyV2                 `json:"subtotalPriceV2"`
	TotalTax               MoneyV2                 `json:"totalTaxV2"`
	TotalPrice             MoneyV2                 `json:"totalPriceV2"`
	PaymentDue             MoneyV2                 `json:"paymentDueV2"`
	LineItems              CheckoutLineItems       `json:"lineItems"`
	ShippingAddress        *MailingAddress         `json:"shippingAddress"`
	ShippingLine           *ShippingRate           `json:"shippingLine"`
	AvailableShippingRates *AvailableShippingRates `json:"availableShippingRates"`
}

type CheckoutLineItems struct {
	Edges []CheckoutLineItemEdge `json:"edges"`
}

type CheckoutLineItemEdge struct {
	Node CheckoutLineItem `json:"node"`
}

type CheckoutLineItem struct {
	ID       string           `json:"id"`
	Title    string           `json:"title"`
	Quantity int64            `json:"quantity"`
	Variant  *CheckoutVariant `json:"variant"`
}

type CheckoutVariant struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Price MoneyV2 `json:"priceV2"`
}

type MailingAddress struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Company     string `json:"company"`
	Address1    string `json:"address1"`
	Address2    string `json:"address2"`
	City        string `json:"city"`
	Province    string `json:"province"`
	Zip         string `json:"zip"`
	Country     string `json:"country"`
	CountryCode string `json:"countryCodeV2"`
	Phone       string `json:"phone"`
}

type ShippingRate struct {
	Handle string  `json:"handle"`
	Title  string  `json:"title"`
	Price  MoneyV2 `json:"priceV2"`
}

type AvailableShippingRates struct {
	Ready         bool           `json:"ready"`
	ShippingRates []ShippingRate `json:"shippingRates"`
}

type ProductByIDData struct {
	Node *ProductNode `json:"node"`
}

type ProductNode struct {
	ID               string            `json:"id"`
	Title            string            `json:"title"`
	Handle           string            `json:"handle"`
	DescriptionHTML  string            `json:"descriptionHtml"`
	Vendor           string            `json:"vendor"`
	ProductType      string            `json:"productType"`
	CreatedAt        string            `json:"createdAt"`
	UpdatedAt        string            `json:"updatedAt"`
	PublishedAt      string            `json:"publishedAt"`
	AvailableForSale bool              `json:"availableForSale"`
	Tags             []string          `json:"tags"`
	Options          []ProductOption   `json:"options"`
	Images           ImageConnection   `json:"images"`
	Variants         VariantConnection `json:"variants"`
}

type ProductOption struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

type ImageConnection struct {
	Edges []ImageEdge `json:"edges"`
}

type ImageEdge struct {
	Node ImageNode `json:"node"`
}

type ImageNode struct {
	ID      string `json:"id"`
	URL     string `json:"url"`
	AltText string `json:"altText"`
}

type VariantConnection struct {
	Edges []VariantEdge `json:"edges"`
}

type VariantEdge struct {
	Node VariantNode `json:"node"`
}

type VariantNode struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	SKU              string           `json:"sku"`
	AvailableForSale bool             `json:"availableForSale"`
	RequiresShipping bool             `json:"requiresShipping"`
	Weight           float64          `json:"weight"`
	WeightUnit       string           `json:"weightUnit"`
	Price            MoneyV2          `json:"priceV2"`
	CompareAtPrice   *MoneyV2         `json:"compareAtPriceV2"`
	SelectedOptions  []SelectedOption `json:"selectedOptions"`
	Image            *ImageNode       `json:"image"`
}

type SelectedOption struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type CollectionByIDData struct {
	Node *CollectionNode `json:"node"`
}

type CollectionNode struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Handle          string     `json:"handle"`
	DescriptionHTML string     `json:"descriptionHtml"`
	UpdatedAt       string     `json:"updatedAt"`
	Image           *ImageNode `json:"image"`
}

type ShopData struct {
	Shop ShopNode `json:"shop"`
}

type ShopNode struct {
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	MoneyFormat      string          `json:"moneyFormat"`
	ShipsToCountries []string        `json:"shipsToCountries"`
	PrimaryDomain    Domain          `json:"primaryDomain"`
	PaymentSettings  PaymentSettings `json:"paymentSettings"`
}

type Domain struct {
	Host string `json:"host"`
	URL  string `json:"url"`
}

type PaymentSettings struct {
	CurrencyCode string `json:"currencyCode"`
	CountryCode  string `json:"countryCode"`
}
