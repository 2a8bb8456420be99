package woocommerce

import "github.com/niksmo/storefront/internal/core/domain"

type (
	cartPayload struct {
		Items         []cartItemPayload `json:"items"`
		Totals        cartTotalsPayload `json:"totals"`
		ItemCount     int               `json:"items_count"`
		NeedsPayment  bool              `json:"needs_payment"`
		NeedsShipping bool              `json:"needs_shipping"`
	}

	cartTotalsPayload struct {
		TotalItems     string `json:"total_items"`
		TotalTax       string `json:"total_tax"`
		TotalDiscount  string `json:"total_discount"`
		TotalShipping  string `json:"total_shipping"`
		TotalPrice     string `json:"total_price"`
		CurrencyCode   string `json:"currency_code"`
		CurrencySymbol string `json:"currency_symbol"`
	}

	cartItemPayload struct {
		Key               string             `json:"key"`
		ID                int                `json:"id"`
		Quantity          int                `json:"quantity"`
		Name              string             `json:"name"`
		SKU               string             `json:"sku"`
		Permalink         string             `json:"permalink"`
		Images            []imagePayload     `json:"images"`
		Variation         []variationPayload `json:"variation"`
		Prices            itemPricesPayload  `json:"prices"`
		Totals            itemTotalsPayload  `json:"totals"`
		SoldIndividually  bool               `json:"sold_individually"`
		BackordersAllowed bool               `json:"backorders_allowed"`
	}

	variationPayload struct {
		Attribute string `json:"attribute"`
		Value     string `json:"value"`
	}

	itemPricesPayload struct {
		Price        string `json:"price"`
		RegularPrice string `json:"regular_price"`
		SalePrice    string `json:"sale_price"`
	}

	itemTotalsPayload struct {
		LineSubtotal string `json:"line_subtotal"`
		LineTotal    string `json:"line_total"`
	}

	imagePayload struct {
		ID   int    `json:"id"`
		Src  string `json:"src"`
		Name string `json:"name"`
		Alt  string `json:"alt"`
	}

	productPayload struct {
		ID               int            `json:"id"`
		Name             string         `json:"name"`
		Slug             string         `json:"slug"`
		Permalink        string         `json:"permalink"`
		DateCreated      string         `json:"date_created"`
		Description      string         `json:"description"`
		ShortDescription string         `json:"short_description"`
		SKU              string         `json:"sku"`
		Price            string         `json:"price"`
		RegularPrice     string         `json:"regular_price"`
		SalePrice        string         `json:"sale_price"`
		OnSale           bool           `json:"on_sale"`
		Purchasable      bool           `json:"purchasable"`
		Featured         bool           `json:"featured"`
		TotalSales       int            `json:"total_sales"`
		StockStatus      string         `json:"stock_status"`
		StockQuantity    int            `json:"stock_quantity"`
		ManageStock      bool           `json:"manage_stock"`
		AverageRating    string         `json:"average_rating"`
		RatingCount      int            `json:"rating_count"`
		Categories       []categoryRef  `json:"categories"`
		Tags             []tagRef       `json:"tags"`
		Images           []imagePayload `json:"images"`
		RelatedIDs       []int          `json:"related_ids"`
		UpsellIDs        []int          `json:"upsell_ids"`
		CrossSellIDs     []int          `json:"cross_sell_ids"`
	}

	categoryRef struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
		Slug string `json:"slug"`
	}

	tagRef struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
		Slug string `json:"slug"`
	}

	categoryPayload struct {
		ID          int           `json:"id"`
		Name        string        `json:"name"`
		Slug        string        `json:"slug"`
		Description string        `json:"description"`
		Image       *imagePayload `json:"image"`
		Count       int           `json:"count"`
	}
)

func (p cartPayload) toDomain() domain.Cart {
	c := domain.Cart{
		Items: make([]domain.CartItem, len(p.Items)),
		Totals: domain.CartTotals{
			TotalItems:     p.Totals.TotalItems,
			TotalTax:       p.Totals.TotalTax,
			TotalDiscount:  p.Totals.TotalDiscount,
			TotalShipping:  p.Totals.TotalShipping,
			TotalPrice:     p.Totals.TotalPrice,
			CurrencyCode:   p.Totals.CurrencyCode,
			CurrencySymbol: p.Totals.CurrencySymbol,
		},
		ItemCount:     p.ItemCount,
		NeedsPayment:  p.NeedsPayment,
		NeedsShipping: p.NeedsShipping,
	}
	for i, item := range p.Items {
		c.Items[i] = item.toDomain()
	}
	return c
}

func (p cartItemPayload) toDomain() domain.CartItem {
	item := domain.CartItem{
		Key:       p.Key,
		ProductID: p.ID,
		Quantity:  p.Quantity,
		Name:      p.Name,
		SKU:       p.SKU,
		Permalink: p.Permalink,
		Images:    imagesToDomain(p.Images),
		Prices: domain.ItemPrices{
			Price:        p.Prices.Price,
			RegularPrice: p.Prices.RegularPrice,
			SalePrice:    p.Prices.SalePrice,
		},
		Totals: domain.ItemTotals{
			LineSubtotal: p.Totals.LineSubtotal,
			LineTotal:    p.Totals.LineTotal,
		},
		SoldIndividually:  p.SoldIndividually,
		BackordersAllowed: p.BackordersAllowed,
	}
	item.Variation = make([]domain.ItemVariation, len(p.Variation))
	for i, v := range p.Variation {
		item.Variation[i] = domain.ItemVariation{
			Attribute: v.Attribute,
			Value:     v.Value,
		}
	}
	return item
}

func (p productPayload) toDomain() domain.Product {
	v := domain.Product{
		ProductID:        p.ID,
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
		Featured:         p.Featured,
		TotalSales:       p.TotalSales,
		StockStatus:      p.StockStatus,
		StockQuantity:    p.StockQuantity,
		ManageStock:      p.ManageStock,
		AverageRating:    p.AverageRating,
		RatingCount:      p.RatingCount,
		Images:           imagesToDomain(p.Images),
		RelatedIDs:       p.RelatedIDs,
		UpsellIDs:        p.UpsellIDs,
		CrossSellIDs:     p.CrossSellIDs,
	}
	v.Categories = make([]domain.ProductCategory, len(p.Categories))
	for i, c := range p.Categories {
		v.Categories[i] = domain.ProductCategory{
			CategoryID: c.ID,
			Name:       c.Name,
			Slug:       c.Slug,
		}
	}
	v.Tags = make([]domain.ProductTag, len(p.Tags))
	for i, t := range p.Tags {
		v.Tags[i] = domain.ProductTag{TagID: t.ID, Name: t.Name, Slug: t.Slug}
	}
	return v
}

func (p categoryPayload) toDomain() domain.Collection {
	c := domain.Collection{
		CollectionID: p.ID,
		Name:         p.Name,
		Slug:         p.Slug,
		Description:  p.Description,
		Count:        p.Count,
	}
	if p.Image != nil {
		img := p.Image.toDomain()
		c.Image = &img
	}
	return c
}

func (p imagePayload) toDomain() domain.Image {
	return domain.Image{ImageID: p.ID, Src: p.Src, Name: p.Name, Alt: p.Alt}
}

func imagesToDomain(ps []imagePayload) []domain.Image {
	imgs := make([]domain.Image, len(ps))
	for i, p := range ps {
		imgs[i] = p.toDomain()
	}
	return imgs
}
