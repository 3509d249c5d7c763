package lexoffice

import (
	"context"
	"net/http"

	"github.com/pinpt/lexoffice/sdk"
)

// ArticleDeleted is returned as data after a successful article delete
const ArticleDeleted = "Article deleted successfully."

// Articles manages the articles endpoint
type Articles struct {
	*resource
}

var (
	_ Creator        = (*Articles)(nil)
	_ Finder         = (*Articles)(nil)
	_ Updater        = (*Articles)(nil)
	_ Deleter        = (*Articles)(nil)
	_ FilteredLister = (*Articles)(nil)
)

// Create a new article
func (m *Articles) Create(ctx context.Context, article interface{}) sdk.Result {
	return m.create(ctx, article, false)
}

// Find an article by id
func (m *Articles) Find(ctx context.Context, id string) sdk.Result {
	return m.find(ctx, id)
}

// Update an article. The payload must carry the current version.
func (m *Articles) Update(ctx context.Context, id string, article interface{}) sdk.Result {
	return m.update(ctx, http.MethodPut, id, article)
}

// Delete an article
func (m *Articles) Delete(ctx context.Context, id string) sdk.Result {
	return m.remove(ctx, id, ArticleDeleted)
}

// All lists articles, e.g. Filters{"type": "PRODUCT"}
func (m *Articles) All(ctx context.Context, filters Filters) sdk.Result {
	return m.all(ctx, filters)
}
