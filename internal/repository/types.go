package repository

// ProductListFilter filters the product listing.
type ProductListFilter struct {
	Page         int
	PageSize     int
	CategoryID   uint
	CategorySlug string
	Size         string
	Search       string
	OnlyActive   bool
	WithCategory bool
}

// TrackingEventListFilter filters tracking event listings.
type TrackingEventListFilter struct {
	Page      int
	PageSize  int
	CartToken string
	EventType string
}
