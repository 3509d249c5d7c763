package lexoffice

import (
	"context"

	"github.com/pinpt/lexoffice/sdk"
)

// Dunnings manages payment reminders. A dunning always follows an invoice.
type Dunnings struct {
	*resource
}

var (
	_ Pursuer        = (*Dunnings)(nil)
	_ Finder         = (*Dunnings)(nil)
	_ Renderer       = (*Dunnings)(nil)
	_ ViewDeeplinker = (*Dunnings)(nil)
	_ EditDeeplinker = (*Dunnings)(nil)
)

// Create a dunning for the invoice precedingID, same request as Pursue
func (m *Dunnings) Create(ctx context.Context, dunning interface{}, precedingID string) sdk.Result {
	return m.Pursue(ctx, precedingID, dunning)
}

// Pursue creates a dunning for the invoice precedingID
func (m *Dunnings) Pursue(ctx context.Context, precedingID string, dunning interface{}) sdk.Result {
	return m.pursue(ctx, precedingID, dunning, false)
}

// Find a dunning
func (m *Dunnings) Find(ctx context.Context, id string) sdk.Result {
	return m.find(ctx, id)
}

// RenderDocument renders the dunning PDF
func (m *Dunnings) RenderDocument(ctx context.Context, id string) sdk.Result {
	return m.render(ctx, id)
}

// ViewDeeplink to the dunning
func (m *Dunnings) ViewDeeplink(id string) string {
	return m.deeplink(viewDeeplink, id)
}

// EditDeeplink to the dunning
func (m *Dunnings) EditDeeplink(id string) string {
	return m.deeplink(editDeeplink, id)
}
