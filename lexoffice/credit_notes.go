package lexoffice

import (
	"context"

	"github.com/pinpt/lexoffice/sdk"
)

// CreditNotes manages credit notes
type CreditNotes struct {
	*resource
}

var (
	_ FinalizingCreator = (*CreditNotes)(nil)
	_ FinalizingPursuer = (*CreditNotes)(nil)
	_ Finder            = (*CreditNotes)(nil)
	_ Renderer          = (*CreditNotes)(nil)
	_ ViewDeeplinker    = (*CreditNotes)(nil)
	_ EditDeeplinker    = (*CreditNotes)(nil)
)

func (m *CreditNotes) Create(ctx context.Context, note interface{}, finalize bool) sdk.Result {
	return m.create(ctx, note, finalize)
}

// Pursue creates a credit note referring to an invoice
func (m *CreditNotes) Pursue(ctx context.Context, precedingID string, note interface{}, finalize bool) sdk.Result {
	return m.pursue(ctx, precedingID, note, finalize)
}

func (m *CreditNotes) Find(ctx context.Context, id string) sdk.Result {
	return m.find(ctx, id)
}

func (m *CreditNotes) RenderDocument(ctx context.Context, id string) sdk.Result {
	return m.render(ctx, id)
}

func (m *CreditNotes) ViewDeeplink(id string) string {
	return m.deeplink(viewDeeplink, id)
}

func (m *CreditNotes) EditDeeplink(id string) string {
	return m.deeplink(editDeeplink, id)
}
