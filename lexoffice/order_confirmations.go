package lexoffice

import (
	"context"
	"fmt"

	"github.com/pinpt/lexoffice/sdk"
)

// ErrInvalidDeeplinkKind is returned by Deeplink for kinds other than view or edit
var ErrInvalidDeeplinkKind = fmt.Errorf("invalid deeplink type, allowed values: %q, %q", viewDeeplink, editDeeplink)

// OrderConfirmations manages order confirmations
type OrderConfirmations struct {
	*resource
}

var (
	_ Creator        = (*OrderConfirmations)(nil)
	_ Pursuer        = (*OrderConfirmations)(nil)
	_ Finder         = (*OrderConfirmations)(nil)
	_ Renderer       = (*OrderConfirmations)(nil)
	_ ViewDeeplinker = (*OrderConfirmations)(nil)
	_ EditDeeplinker = (*OrderConfirmations)(nil)
)

// Create an order confirmation. They are always created in draft state.
func (m *OrderConfirmations) Create(ctx context.Context, order interface{}) sdk.Result {
	return m.create(ctx, order, false)
}

// Pursue creates an order confirmation from a quotation
func (m *OrderConfirmations) Pursue(ctx context.Context, precedingID string, order interface{}) sdk.Result {
	return m.pursue(ctx, precedingID, order, false)
}

// Find an order confirmation
func (m *OrderConfirmations) Find(ctx context.Context, id string) sdk.Result {
	return m.find(ctx, id)
}

// RenderDocument renders the order confirmation PDF
func (m *OrderConfirmations) RenderDocument(ctx context.Context, id string) sdk.Result {
	return m.render(ctx, id)
}

// ViewDeeplink to the order confirmation
func (m *OrderConfirmations) ViewDeeplink(id string) string {
	return m.deeplink(viewDeeplink, id)
}

// EditDeeplink to the order confirmation
func (m *OrderConfirmations) EditDeeplink(id string) string {
	return m.deeplink(editDeeplink, id)
}

// Deeplink returns the link of the given kind, which must be "view" or "edit"
func (m *OrderConfirmations) Deeplink(id, kind string) (string, error) {
	switch kind {
	case viewDeeplink, editDeeplink:
		return m.deeplink(kind, id), nil
	}
	return "", ErrInvalidDeeplinkKind
}
