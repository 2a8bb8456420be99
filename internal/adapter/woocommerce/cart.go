package woocommerce

import (
	"context"
	"fmt"

	"github.com/niksmo/storefront/internal/core/domain"
)

// Cart fetches the authoritative session cart snapshot.
func (c *Client) Cart(ctx context.Context) (domain.Cart, error) {
	const op = "Client.Cart"

	var p cartPayload
	if _, err := c.getJSON(ctx, storeAPIPath+"/cart", nil, false, &p); err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}
	return p.toDomain(), nil
}

// AddItem sends the add mutation. The acknowledgement body is
// discarded: the store always re-fetches the cart afterwards.
func (c *Client) AddItem(
	ctx context.Context,
	productID, quantity int,
	variation []domain.ItemVariation,
) error {
	const op = "Client.AddItem"

	body := map[string]any{
		"id":       productID,
		"quantity": quantity,
	}
	if len(variation) > 0 {
		vs := make([]variationPayload, len(variation))
		for i, v := range variation {
			vs[i] = variationPayload{Attribute: v.Attribute, Value: v.Value}
		}
		body["variation"] = vs
	}

	if err := c.postJSON(ctx, storeAPIPath+"/cart/add-item", body); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (c *Client) RemoveItem(ctx context.Context, itemKey string) error {
	const op = "Client.RemoveItem"

	body := map[string]any{"key": itemKey}
	if err := c.postJSON(ctx, storeAPIPath+"/cart/remove-item", body); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (c *Client) UpdateItem(
	ctx context.Context, itemKey string, quantity int,
) error {
	const op = "Client.UpdateItem"

	body := map[string]any{"key": itemKey, "quantity": quantity}
	if err := c.postJSON(ctx, storeAPIPath+"/cart/update-item", body); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
