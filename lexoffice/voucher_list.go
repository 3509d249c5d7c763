package lexoffice

import (
	"context"

	"github.com/pinpt/lexoffice/sdk"
)

// VoucherList lists every kind of voucher. The API requires the
// voucherType and voucherStatus filters.
type VoucherList struct {
	*resource
}

var _ FilteredLister = (*VoucherList)(nil)

func (m *VoucherList) All(ctx context.Context, filters Filters) sdk.Result {
	return m.all(ctx, filters)
}
