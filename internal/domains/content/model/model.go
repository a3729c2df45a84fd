package model

import "nutricoach/shared/model"

const (
	TestimonialTableName  = "testimonials"
	TestimonialEntityName = "testimonial"

	FieldID         = "id"
	FieldClientName = "client_name"
	FieldQuote      = "quote"
	FieldImageURL   = "image_url"
	FieldSortOrder  = "sort_order"
	FieldActive     = "active"
)

// Testimonial is a client quote shown on the marketing site, optionally with a
// photo stored in S3.
type Testimonial struct {
	ID         string `db:"id"`
	ClientName string `db:"client_name"`
	Quote      string `db:"quote"`
	ImageURL   string `db:"image_url"`
	SortOrder  int    `db:"sort_order"`
	Active     bool   `db:"active"`
	model.Metadata
}
