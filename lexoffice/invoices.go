package lexoffice

import (
	"context"

	"github.com/pinpt/lexoffice/sdk"
)

// Invoices manages sales invoices
type Invoices struct {
	*resource
}

var (
	_ FinalizingCreator = (*Invoices)(nil)
	_ FinalizingPursuer = (*Invoices)(nil)
	_ Finder            = (*Invoices)(nil)
	_ Renderer          = (*Invoices)(nil)
	_ ViewDeeplinker    = (*Invoices)(nil)
	_ EditDeeplinker    = (*Invoices)(nil)
)

// Create an invoice, in draft state unless finalize is set
func (m *Invoices) Create(ctx context.Context, invoice interface{}, finalize bool) sdk.Result {
	return m.create(ctx, invoice, finalize)
}

// Pursue creates an invoice linked to the preceding sales voucher
func (m *Invoices) Pursue(ctx context.Context, precedingID string, invoice interface{}, finalize bool) sdk.Result {
	return m.pursue(ctx, precedingID, invoice, finalize)
}

// Find an invoice by id
func (m *Invoices) Find(ctx context.Context, id string) sdk.Result {
	return m.find(ctx, id)
}

// RenderDocument renders the invoice PDF and returns its documentFileId
func (m *Invoices) RenderDocument(ctx context.Context, id string) sdk.Result {
	return m.render(ctx, id)
}

// ViewDeeplink returns the browser link to the invoice
func (m *Invoices) ViewDeeplink(id string) string {
	return m.deeplink(viewDeeplink, id)
}

// EditDeeplink returns the browser link to edit the invoice
func (m *Invoices) EditDeeplink(id string) string {
	return m.deeplink(editDeeplink, id)
}
