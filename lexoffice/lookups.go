package lexoffice

import (
	"context"
	"net/http"

	"github.com/pinpt/lexoffice/sdk"
)

// Countries lists the countries known to the API with their tax classification
type Countries struct {
	*resource
}

// All countries
func (m *Countries) All(ctx context.Context) sdk.Result {
	return m.all(ctx, nil)
}

// PaymentConditions lists the configured payment conditions
type PaymentConditions struct {
	*resource
}

// All payment conditions
func (m *PaymentConditions) All(ctx context.Context) sdk.Result {
	return m.all(ctx, nil)
}

// PostingCategories lists the bookkeeping categories usable on vouchers
type PostingCategories struct {
	*resource
}

// All posting categories
func (m *PostingCategories) All(ctx context.Context) sdk.Result {
	return m.all(ctx, nil)
}

// PrintLayouts lists the document print layouts
type PrintLayouts struct {
	*resource
}

// All print layouts
func (m *PrintLayouts) All(ctx context.Context) sdk.Result {
	return m.all(ctx, nil)
}

var (
	_ Lister = (*Countries)(nil)
	_ Lister = (*PaymentConditions)(nil)
	_ Lister = (*PostingCategories)(nil)
	_ Lister = (*PrintLayouts)(nil)
)

// Profile returns details of the connected organization
type Profile struct {
	*resource
}

// Get the profile
func (m *Profile) Get(ctx context.Context) sdk.Result {
	return m.exchange(ctx, http.MethodGet, m.endpoint(), nil, nil)
}

// Payments returns the payment status of vouchers
type Payments struct {
	*resource
}

var _ Finder = (*Payments)(nil)

// Find the payments of the voucher with voucherID
func (m *Payments) Find(ctx context.Context, voucherID string) sdk.Result {
	return m.find(ctx, voucherID)
}
