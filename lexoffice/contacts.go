package lexoffice

import (
	"context"
	"net/http"

	"github.com/pinpt/lexoffice/sdk"
)

// Contacts manages customers and vendors
type Contacts struct {
	*resource
}

var (
	_ Creator        = (*Contacts)(nil)
	_ Finder         = (*Contacts)(nil)
	_ Updater        = (*Contacts)(nil)
	_ Deleter        = (*Contacts)(nil)
	_ FilteredLister = (*Contacts)(nil)
)

func (m *Contacts) Create(ctx context.Context, contact interface{}) sdk.Result {
	return m.create(ctx, contact, false)
}

func (m *Contacts) Find(ctx context.Context, id string) sdk.Result {
	return m.find(ctx, id)
}

func (m *Contacts) Update(ctx context.Context, id string, contact interface{}) sdk.Result {
	return m.update(ctx, http.MethodPut, id, contact)
}

// Delete returns whatever body the API answers with
func (m *Contacts) Delete(ctx context.Context, id string) sdk.Result {
	return m.remove(ctx, id, "")
}

// All filters by email, name, number, customer or vendor
func (m *Contacts) All(ctx context.Context, filters Filters) sdk.Result {
	return m.all(ctx, filters)
}
