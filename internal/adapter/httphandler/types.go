package httphandler

import "github.com/niksmo/storefront/internal/core/domain"

type (
	Cart struct {
		Items         []CartItem `json:"items"`
		Totals        CartTotals `json:"totals"`
		ItemCount     int        `json:"item_count"`
		NeedsPayment  bool       `json:"needs_payment"`
		NeedsShipping bool       `json:"needs_shipping"`
	}

	CartTotals struct {
		TotalItems     string `json:"total_items"`
		TotalTax       string `json:"total_tax"`
		TotalDiscount  string `json:"total_discount"`
		TotalShipping  string `json:"total_shipping"`
		TotalPrice     string `json:"total_price"`
		CurrencyCode   string `json:"currency_code"`
		CurrencySymbol string `json:"currency_symbol"`
	}

	CartItem struct {
		Key       string      `json:"key"`
		ID        int         `json:"id"`
		Quantity  int         `json:"quantity"`
		Name      string      `json:"name"`
		SKU       string      `json:"sku"`
		Permalink string      `json:"permalink"`
		Images    []Image     `json:"images"`
		Variation []Variation `json:"variation"`
		Prices    ItemPrices  `json:"prices"`
		Totals    ItemTotals  `json:"totals"`
	}

	Variation struct {
		Attribute string `json:"attribute"`
		Value     string `json:"value"`
	}

	ItemPrices struct {
		Price        string `json:"price"`
		RegularPrice string `json:"regular_price"`
		SalePrice    string `json:"sale_price"`
	}

	ItemTotals struct {
		LineSubtotal string `json:"line_subtotal"`
		LineTotal    string `json:"line_total"`
	}

	Image struct {
		ID   int    `json:"id"`
		Src  string `json:"src"`
		Name string `json:"name"`
		Alt  string `json:"alt"`
	}

	Product struct {
		ID               int     `json:"id"`
		Name             string  `json:"name"`
		Slug             string  `json:"slug"`
		Permalink        string  `json:"permalink"`
		DateCreated      string  `json:"date_created"`
		Description      string  `json:"description"`
		ShortDescription string  `json:"short_description"`
		SKU              string  `json:"sku"`
		Price            string  `json:"price"`
		RegularPrice     string  `json:"regular_price"`
		SalePrice        string  `json:"sale_price"`
		OnSale           bool    `json:"on_sale"`
		Purchasable      bool    `json:"purchasable"`
		StockStatus      string  `json:"stock_status"`
		AverageRating    string  `json:"average_rating"`
		RatingCount      int     `json:"rating_count"`
		Images           []Image `json:"images"`
		RelatedIDs       []int   `json:"related_ids"`
	}

	Collection struct {
		ID          int    `json:"id"`
		Name        string `json:"name"`
		Slug        string `json:"slug"`
		Description string `json:"description"`
		Image       *Image `json:"image"`
		Count       int    `json:"count"`
		Path        string `json:"path"`
	}

	PageInfo struct {
		HasNextPage     bool   `json:"hasNextPage"`
		HasPreviousPage bool   `json:"hasPreviousPage"`
		EndCursor       string `json:"endCursor"`
	}

	ProductList struct {
		Products []Product `json:"products"`
		PageInfo PageInfo  `json:"pageInfo"`
	}

	AddItemRequest struct {
		ID        int         `json:"id"`
		Quantity  int         `json:"quantity"`
		Variation []Variation `json:"variation"`
	}

	RemoveItemRequest struct {
		Key string `json:"key"`
	}

	UpdateItemRequest struct {
		Key      string `json:"key"`
		Quantity int    `json:"quantity"`
	}

	View struct {
		Layout string `json:"layout"`
	}
)

func cartFromDomain(c domain.Cart) Cart {
	out := Cart{
		Items: make([]CartItem, len(c.Items)),
		Totals: CartTotals{
			TotalItems:     c.Totals.TotalItems,
			TotalTax:       c.Totals.TotalTax,
			TotalDiscount:  c.Totals.TotalDiscount,
			TotalShipping:  c.Totals.TotalShipping,
			TotalPrice:     c.Totals.TotalPrice,
			CurrencyCode:   c.Totals.CurrencyCode,
			CurrencySymbol: c.Totals.CurrencySymbol,
		},
		ItemCount:     c.ItemCount,
		NeedsPayment:  c.NeedsPayment,
		NeedsShipping: c.NeedsShipping,
	}
	for i, item := range c.Items {
		out.Items[i] = cartItemFromDomain(item)
	}
	return out
}

func cartItemFromDomain(item domain.CartItem) CartItem {
	out := CartItem{
		Key:       item.Key,
		ID:        item.ProductID,
		Quantity:  item.Quantity,
		Name:      item.Name,
		SKU:       item.SKU,
		Permalink: item.Permalink,
		Images:    imagesFromDomain(item.Images),
		Prices: ItemPrices{
			Price:        item.Prices.Price,
			RegularPrice: item.Prices.RegularPrice,
			SalePrice:    item.Prices.SalePrice,
		},
		Totals: ItemTotals{
			LineSubtotal: item.Totals.LineSubtotal,
			LineTotal:    item.Totals.LineTotal,
		},
	}
	out.Variation = make([]Variation, len(item.Variation))
	for i, v := range item.Variation {
		out.Variation[i] = Variation{Attribute: v.Attribute, Value: v.Value}
	}
	return out
}

func productFromDomain(p domain.Product) Product {
	return Product{
		ID:               p.ProductID,
		Name:             p.Name,
		Slug:             p.Slug,
		Permalink:        p.Permalink,
		DateCreated:      p.DateCreated,
		Description:      p.Description,
		ShortDescription: p.ShortDescription,
		SKU:              p.SKU,
		Price:            p.Price,
		RegularPrice:     p.RegularPrice,
		SalePrice:        p.SalePrice,
		OnSale:           p.OnSale,
		Purchasable:      p.Purchasable,
		StockStatus:      p.StockStatus,
		AverageRating:    p.AverageRating,
		RatingCount:      p.RatingCount,
		Images:           imagesFromDomain(p.Images),
		RelatedIDs:       p.RelatedIDs,
	}
}

func productListFromDomain(page domain.ProductPage) ProductList {
	out := ProductList{
		Products: make([]Product, len(page.Products)),
		PageInfo: PageInfo{
			HasNextPage:     page.PageInfo.HasNextPage,
			HasPreviousPage: page.PageInfo.HasPreviousPage,
			EndCursor:       page.PageInfo.EndCursor,
		},
	}
	for i, p := range page.Products {
		out.Products[i] = productFromDomain(p)
	}
	return out
}

func collectionFromDomain(c domain.Collection) Collection {
	out := Collection{
		ID:          c.CollectionID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Count:       c.Count,
		Path:        c.Path(),
	}
	if c.Image != nil {
		img := imageFromDomain(*c.Image)
		out.Image = &img
	}
	return out
}

func imageFromDomain(img domain.Image) Image {
	return Image{ID: img.ImageID, Src: img.Src, Name: img.Name, Alt: img.Alt}
}

func imagesFromDomain(imgs []domain.Image) []Image {
	out := make([]Image, len(imgs))
	for i, img := range imgs {
		out[i] = imageFromDomain(img)
	}
	return out
}
