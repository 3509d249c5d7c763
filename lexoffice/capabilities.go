package lexoffice

import (
	"context"

	"github.com/pinpt/lexoffice/sdk"
)

// Creator creates a resource from payload
type Creator interface {
	Create(ctx context.Context, payload interface{}) sdk.Result
}

// FinalizingCreator creates a document, optionally leaving draft state immediately
type FinalizingCreator interface {
	Create(ctx context.Context, payload interface{}, finalize bool) sdk.Result
}

// Finder fetches a single resource by id
type Finder interface {
	Find(ctx context.Context, id string) sdk.Result
}

// Updater replaces a resource by id
type Updater interface {
	Update(ctx context.Context, id string, payload interface{}) sdk.Result
}

// Deleter deletes a resource by id
type Deleter interface {
	Delete(ctx context.Context, id string) sdk.Result
}

// Lister lists a resource that takes no filters
type Lister interface {
	All(ctx context.Context) sdk.Result
}

// FilteredLister lists a resource passing filters as the query string
type FilteredLister interface {
	All(ctx context.Context, filters Filters) sdk.Result
}

// Renderer triggers rendering of a document and returns its file id
type Renderer interface {
	RenderDocument(ctx context.Context, id string) sdk.Result
}

// Pursuer creates a document following a preceding sales voucher
type Pursuer interface {
	Pursue(ctx context.Context, precedingID string, payload interface{}) sdk.Result
}

// FinalizingPursuer is a Pursuer that can also finalize the new document
type FinalizingPursuer interface {
	Pursue(ctx context.Context, precedingID string, payload interface{}, finalize bool) sdk.Result
}

// ViewDeeplinker builds a browser link to the read-only view
type ViewDeeplinker interface {
	ViewDeeplink(id string) string
}

// EditDeeplinker builds a browser link to the edit view
type EditDeeplinker interface {
	EditDeeplink(id string) string
}
