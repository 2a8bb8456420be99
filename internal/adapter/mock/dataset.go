package mock

import "github.com/niksmo/storefront/internal/core/domain"

var (
	apparel = domain.ProductCategory{
		CategoryID: 1, Name: "Apparel", Slug: "apparel",
	}
	accessories = domain.ProductCategory{
		CategoryID: 2, Name: "Accessories", Slug: "accessories",
	}
	homeGoods = domain.ProductCategory{
		CategoryID: 3, Name: "Home Goods", Slug: "home-goods",
	}

	tagNew     = domain.ProductTag{TagID: 10, Name: "New", Slug: "new"}
	tagClassic = domain.ProductTag{TagID: 11, Name: "Classic", Slug: "classic"}
)

// catalog returns a fresh copy of the mock dataset.
func catalog() []domain.Product {
	return []domain.Product{
		{
			ProductID:     42,
			Name:          "Canvas Tote Bag",
			Slug:          "canvas-tote-bag",
			Permalink:     "/products/canvas-tote-bag",
			DateCreated:   "2024-03-18T10:00:00",
			Description:   "Heavy-duty canvas tote with reinforced straps.",
			SKU:           "TOTE-042",
			Price:         "24.00",
			RegularPrice:  "24.00",
			Purchasable:   true,
			TotalSales:    310,
			StockStatus:   "instock",
			StockQuantity: 120,
			ManageStock:   true,
			Categories:    []domain.ProductCategory{accessories},
			Tags:          []domain.ProductTag{tagClassic},
			RelatedIDs:    []int{43, 44},
		},
		{
			ProductID:     43,
			Name:          "Organic Cotton Tee",
			Slug:          "organic-cotton-tee",
			Permalink:     "/products/organic-cotton-tee",
			DateCreated:   "2024-06-02T09:30:00",
			Description:   "Midweight organic cotton t-shirt.",
			SKU:           "TEE-043",
			Price:         "32.00",
			RegularPrice:  "36.00",
			SalePrice:     "32.00",
			OnSale:        true,
			Purchasable:   true,
			TotalSales:    540,
			StockStatus:   "instock",
			StockQuantity: 85,
			ManageStock:   true,
			Categories:    []domain.ProductCategory{apparel},
			Tags:          []domain.ProductTag{tagNew},
			RelatedIDs:    []int{44, 45},
		},
		{
			ProductID:     44,
			Name:          "Wool Beanie",
			Slug:          "wool-beanie",
			Permalink:     "/products/wool-beanie",
			DateCreated:   "2023-11-20T14:15:00",
			Description:   "Merino wool rib-knit beanie.",
			SKU:           "BEANIE-044",
			Price:         "18.50",
			RegularPrice:  "18.50",
			Purchasable:   true,
			TotalSales:    720,
			StockStatus:   "instock",
			StockQuantity: 200,
			ManageStock:   true,
			Categories:    []domain.ProductCategory{apparel, accessories},
			Tags:          []domain.ProductTag{tagClassic},
		},
		{
			ProductID:     45,
			Name:          "Enamel Mug",
			Slug:          "enamel-mug",
			Permalink:     "/products/enamel-mug",
			DateCreated:   "2024-01-09T08:00:00",
			Description:   "12oz enamel camping mug.",
			SKU:           "MUG-045",
			Price:         "14.00",
			RegularPrice:  "14.00",
			Purchasable:   true,
			TotalSales:    150,
			StockStatus:   "instock",
			StockQuantity: 64,
			ManageStock:   true,
			Categories:    []domain.ProductCategory{homeGoods},
		},
		{
			ProductID:     46,
			Name:          "Linen Throw Blanket",
			Slug:          "linen-throw-blanket",
			Permalink:     "/products/linen-throw-blanket",
			DateCreated:   "2024-07-28T16:45:00",
			Description:   "Stonewashed linen throw, 130x170cm.",
			SKU:           "THROW-046",
			Price:         "89.00",
			RegularPrice:  "89.00",
			Purchasable:   true,
			TotalSales:    45,
			StockStatus:   "instock",
			StockQuantity: 18,
			ManageStock:   true,
			Categories:    []domain.ProductCategory{homeGoods},
			Tags:          []domain.ProductTag{tagNew},
		},
		{
			ProductID:    47,
			Name:         "Leather Card Holder",
			Slug:         "leather-card-holder",
			Permalink:    "/products/leather-card-holder",
			DateCreated:  "2023-09-05T11:20:00",
			Description:  "Vegetable-tanned leather card holder.",
			SKU:          "CARD-047",
			Price:        "38.00",
			RegularPrice: "38.00",
			Purchasable:  true,
			TotalSales:   410,
			StockStatus:  "outofstock",
			Categories:   []domain.ProductCategory{accessories},
			Tags:         []domain.ProductTag{tagClassic},
			RelatedIDs:   []int{42},
		},
	}
}
