package model

import "time"

type Collection struct {
	ID              string
	Title           string
	HTMLDescription string
	Handle          string
	UpdatedAt       time.Time
	Image           *CollectionImage
}

type CollectionImage struct {
	Src     string
	AltText string
}

// NewCollectionImage returns nil when there is no image source.
func NewCollectionImage(src string, altText string) *CollectionImage {
	if src == "" {
		return nil
	}
	return &CollectionImage{
		Src:     src,
		AltText: altText,
	}
}
