package lexoffice

import (
	"context"

	"github.com/pinpt/lexoffice/sdk"
)

// DownPaymentInvoices is read only, they are created in the web app
type DownPaymentInvoices struct {
	*resource
}

var (
	_ Finder         = (*DownPaymentInvoices)(nil)
	_ ViewDeeplinker = (*DownPaymentInvoices)(nil)
	_ EditDeeplinker = (*DownPaymentInvoices)(nil)
)

// down payment invoices are opened through the invoice permalinks
func newDownPaymentInvoices(b *builder) *DownPaymentInvoices {
	r := newResource(b, "down-payment-invoices")
	r.permalink = "invoices"
	return &DownPaymentInvoices{r}
}

// Find a down payment invoice
func (m *DownPaymentInvoices) Find(ctx context.Context, id string) sdk.Result {
	return m.find(ctx, id)
}

// ViewDeeplink to the down payment invoice
func (m *DownPaymentInvoices) ViewDeeplink(id string) string {
	return m.deeplink(viewDeeplink, id)
}

// EditDeeplink to the down payment invoice
func (m *DownPaymentInvoices) EditDeeplink(id string) string {
	return m.deeplink(editDeeplink, id)
}
