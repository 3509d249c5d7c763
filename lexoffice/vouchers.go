package lexoffice

import (
	"context"
	"net/http"

	"github.com/pinpt/lexoffice/sdk"
)

// Vouchers manages bookkeeping vouchers
type Vouchers struct {
	*resource
}

var (
	_ Creator        = (*Vouchers)(nil)
	_ Finder         = (*Vouchers)(nil)
	_ Updater        = (*Vouchers)(nil)
	_ FilteredLister = (*Vouchers)(nil)
	_ ViewDeeplinker = (*Vouchers)(nil)
	_ EditDeeplinker = (*Vouchers)(nil)
)

// Create a voucher
func (m *Vouchers) Create(ctx context.Context, voucher interface{}) sdk.Result {
	return m.create(ctx, voucher, false)
}

// Find a voucher
func (m *Vouchers) Find(ctx context.Context, id string) sdk.Result {
	return m.find(ctx, id)
}

// Update a voucher. The vouchers endpoint takes updates as POST.
func (m *Vouchers) Update(ctx context.Context, id string, voucher interface{}) sdk.Result {
	return m.update(ctx, http.MethodPost, id, voucher)
}

// All vouchers matching filters, e.g. Filters{"voucherNumber": "123-456"}
func (m *Vouchers) All(ctx context.Context, filters Filters) sdk.Result {
	return m.all(ctx, filters)
}

// ViewDeeplink to the voucher
func (m *Vouchers) ViewDeeplink(id string) string {
	return m.deeplink(viewDeeplink, id)
}

// EditDeeplink to the voucher
func (m *Vouchers) EditDeeplink(id string) string {
	return m.deeplink(editDeeplink, id)
}

// UploadFile attaches the local file at filename to the voucher
func (m *Vouchers) UploadFile(ctx context.Context, voucherID, fileType, filename string) sdk.Result {
	return m.upload(ctx, m.endpoint(voucherID, "files"), filename, fileType)
}
