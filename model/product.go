package model

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          string
	Title       string
	Handle      string
	BodyHTML    string
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Vendor      string
	ProductType string
	Images      []Image
	Variants    []ProductVariant
	Options     []Option
	Tags        []string
	Available   bool
	Published   bool
}

func (p Product) HasTag(tag string) bool {
	_, found := slices.BinarySearch(p.Tags, tag)
	return found
}

func (p Product) Variant(variantID string) (ProductVariant, bool) {
	for _, v := range p.Variants {
		if v.ID == variantID {
			return v, true
		}
	}
	return ProductVariant{}, false
}

type ProductVariant struct {
	ID               string
	Title            string
	Price            decimal.Decimal
	CompareAtPrice   *decimal.Decimal
	OptionValues     []OptionValue
	Grams            int64
	SKU              string
	RequiresShipping bool
	Taxable          bool
	Position         int
	ProductID        string
	ProductTitle     string
	Available        bool
	ImageURL         string
}

func (v ProductVariant) OnSale() bool {
	return v.CompareAtPrice != nil && v.CompareAtPrice.GreaterThan(v.Price)
}

type Option struct {
	ID        string
	Name      string
	Position  int
	ProductID string
	Values    []string
}

type OptionValue struct {
	OptionID  string
	Name      string
	Value     string
	VariantID string
}

type Image struct {
	ID         string
	Src        string
	AltText    string
	Position   int
	ProductID  string
	VariantIDs []string
}

// NewTagSet sorts and deduplicates tags; empty tags are dropped.
func NewTagSet(tags ...string) []string {
	set := make([]string, 0, len(tags))
	for _, t := range tags {
		if t != "" {
			set = append(set, t)
		}
	}
	slices.Sort(set)
	return slices.Compact(set)
}
