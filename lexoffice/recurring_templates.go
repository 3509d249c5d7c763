package lexoffice

import (
	"context"

	"github.com/pinpt/lexoffice/sdk"
)

// RecurringTemplates exposes the templates of recurring invoices
type RecurringTemplates struct {
	*resource
}

var (
	_ Finder         = (*RecurringTemplates)(nil)
	_ FilteredLister = (*RecurringTemplates)(nil)
	_ EditDeeplinker = (*RecurringTemplates)(nil)
)

func (m *RecurringTemplates) Find(ctx context.Context, id string) sdk.Result {
	return m.find(ctx, id)
}

// All takes the paging and sorting parameters, e.g. page, size and sort
func (m *RecurringTemplates) All(ctx context.Context, filters Filters) sdk.Result {
	return m.all(ctx, filters)
}

func (m *RecurringTemplates) EditDeeplink(id string) string {
	return m.deeplink(editDeeplink, id)
}
