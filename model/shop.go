// Package model holds the typed storefront entities the application works with,
// decoupled from how they travel over the wire or are stored.
package model

type Shop struct {
	Name                   string
	City                   string
	Province               string
	Country                string
	ContactEmail           string
	Currency               string
	Domain                 string
	URL                    string
	MyshopifyDomain        string
	Description            string
	ShipsToCountries       []string
	MoneyFormat            string
	PublishedProductsCount int64
}

func (s Shop) ShipsTo(countryCode string) bool {
	for _, c := range s.ShipsToCountries {
		if c == countryCode {
			return true
		}
	}
	return false
}
