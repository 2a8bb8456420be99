package domain

type (
	// Product is a read-only catalog entity. Slug is unique and used
	// for detail lookups.
	Product struct {
		ProductID        int
		Name             string
		Slug             string
		Permalink        string
		DateCreated      string
		Description      string
		ShortDescription string
		SKU              string
		Price            string
		RegularPrice     string
		SalePrice        string
		OnSale           bool
		Purchasable      bool
		Featured         bool
		TotalSales       int
		StockStatus      string
		StockQuantity    int
		ManageStock      bool
		AverageRating    string
		RatingCount      int
		Categories       []ProductCategory
		Tags             []ProductTag
		Images           []Image
		RelatedIDs       []int
		UpsellIDs        []int
		CrossSellIDs     []int
	}

	ProductCategory struct {
		CategoryID int
		Name       string
		Slug       string
	}

	ProductTag struct {
		TagID int
		Name  string
		Slug  string
	}

	Image struct {
		ImageID int
		Src     string
		Name    string
		Alt     string
	}
)
