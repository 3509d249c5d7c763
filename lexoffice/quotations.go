package lexoffice

import (
	"context"

	"github.com/pinpt/lexoffice/sdk"
)

// Quotations manages quotations, the first step of a sales voucher chain
type Quotations struct {
	*resource
}

var (
	_ FinalizingCreator = (*Quotations)(nil)
	_ Finder            = (*Quotations)(nil)
	_ Renderer          = (*Quotations)(nil)
	_ ViewDeeplinker    = (*Quotations)(nil)
	_ EditDeeplinker    = (*Quotations)(nil)
)

func (m *Quotations) Create(ctx context.Context, quotation interface{}, finalize bool) sdk.Result {
	return m.create(ctx, quotation, finalize)
}

func (m *Quotations) Find(ctx context.Context, id string) sdk.Result {
	return m.find(ctx, id)
}

func (m *Quotations) RenderDocument(ctx context.Context, id string) sdk.Result {
	return m.render(ctx, id)
}

func (m *Quotations) ViewDeeplink(id string) string {
	return m.deeplink(viewDeeplink, id)
}

func (m *Quotations) EditDeeplink(id string) string {
	return m.deeplink(editDeeplink, id)
}
