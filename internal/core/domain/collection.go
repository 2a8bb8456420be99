package domain

// Collection is a category facade over products. Slug is the filter
// key accepted by catalog queries.
type Collection struct {
	CollectionID int
	Name         string
	Slug         string
	Description  string
	Image        *Image
	Count        int
}

// Path is the derived navigation link for the collection listing.
func (c Collection) Path() string {
	return "/products?category=" + c.Slug
}
