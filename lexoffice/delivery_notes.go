package lexoffice

import (
	"context"

	"github.com/pinpt/lexoffice/sdk"
)

// DeliveryNotes manages delivery notes
type DeliveryNotes struct {
	*resource
}

var (
	_ FinalizingCreator = (*DeliveryNotes)(nil)
	_ Pursuer           = (*DeliveryNotes)(nil)
	_ Finder            = (*DeliveryNotes)(nil)
	_ Renderer          = (*DeliveryNotes)(nil)
	_ ViewDeeplinker    = (*DeliveryNotes)(nil)
	_ EditDeeplinker    = (*DeliveryNotes)(nil)
)

// Create a delivery note
func (m *DeliveryNotes) Create(ctx context.Context, note interface{}, finalize bool) sdk.Result {
	return m.create(ctx, note, finalize)
}

// Pursue creates a delivery note from a preceding sales voucher. Delivery
// notes cannot be finalized this way.
func (m *DeliveryNotes) Pursue(ctx context.Context, precedingID string, note interface{}) sdk.Result {
	return m.pursue(ctx, precedingID, note, false)
}

// Find a delivery note
func (m *DeliveryNotes) Find(ctx context.Context, id string) sdk.Result {
	return m.find(ctx, id)
}

// RenderDocument renders the delivery note PDF
func (m *DeliveryNotes) RenderDocument(ctx context.Context, id string) sdk.Result {
	return m.render(ctx, id)
}

// ViewDeeplink to the delivery note
func (m *DeliveryNotes) ViewDeeplink(id string) string {
	return m.deeplink(viewDeeplink, id)
}

// EditDeeplink to the delivery note
func (m *DeliveryNotes) EditDeeplink(id string) string {
	return m.deeplink(editDeeplink, id)
}
