package domain

// SortKey is the stable query vocabulary for sort-capable listings.
// Backends translate it into their native order-by parameter.
type SortKey string

const (
	SortDefault     SortKey = ""
	SortPrice       SortKey = "PRICE"
	SortBestSelling SortKey = "BEST_SELLING"
	SortCreatedAt   SortKey = "CREATED_AT"
)

// ProductQuery is the normalized catalog filter. Page is 1-based.
// Reverse=true requests ascending backend order, Reverse=false
// descending; the inversion is part of the existing contract.
type ProductQuery struct {
	Page     int
	PerPage  int
	Search   string
	Category string
	Tag      string
	SortKey  SortKey
	Reverse  bool
	MinPrice string
	MaxPrice string
}

const DefaultPageSize = 12

// Normalize fills the page defaults without touching filter fields.
func (q ProductQuery) Normalize() ProductQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 {
		q.PerPage = DefaultPageSize
	}
	return q
}

// PageInfo describes one page of a result sequence. EndCursor is an
// opaque continuation token; callers must not compute it themselves.
type PageInfo struct {
	HasNextPage     bool
	HasPreviousPage bool
	EndCursor       string
}

// ProductPage is one page of a product listing.
type ProductPage struct {
	Products []Product
	PageInfo PageInfo
}
