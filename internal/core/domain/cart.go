package domain

type (
	// Cart is the authoritative session cart snapshot.
	//
	// Snapshots are replaced wholesale after every successful mutation,
	// never edited in place. ItemCount equals the sum of item quantities
	// only for carts produced by the backend.
	Cart struct {
		Items         []CartItem
		Totals        CartTotals
		ItemCount     int
		NeedsPayment  bool
		NeedsShipping bool
	}

	// CartTotals carries aggregate amounts as decimal strings in the
	// currency's minor unit, as computed by the backend.
	CartTotals struct {
		TotalItems     string
		TotalTax       string
		TotalDiscount  string
		TotalShipping  string
		TotalPrice     string
		CurrencyCode   string
		CurrencySymbol string
	}

	// CartItem is one cart line. Key identifies the line, not the
	// product: the same product forms distinct lines per variation.
	CartItem struct {
		Key               string
		ProductID         int
		Quantity          int
		Name              string
		SKU               string
		Permalink         string
		Images            []Image
		Variation         []ItemVariation
		Prices            ItemPrices
		Totals            ItemTotals
		SoldIndividually  bool
		BackordersAllowed bool
	}

	ItemVariation struct {
		Attribute string
		Value     string
	}

	// ItemPrices is the per-unit pricing frozen by the backend at the
	// time the line was computed.
	ItemPrices struct {
		Price        string
		RegularPrice string
		SalePrice    string
	}

	ItemTotals struct {
		LineSubtotal string
		LineTotal    string
	}
)

// EmptyCart is the defined fallback value for an unreachable backend:
// all totals zero, no items, both capability flags off.
func EmptyCart() Cart {
	return Cart{
		Items: []CartItem{},
		Totals: CartTotals{
			TotalItems:     "0",
			TotalTax:       "0",
			TotalDiscount:  "0",
			TotalShipping:  "0",
			TotalPrice:     "0",
			CurrencyCode:   "USD",
			CurrencySymbol: "$",
		},
		ItemCount:     0,
		NeedsPayment:  false,
		NeedsShipping: false,
	}
}
