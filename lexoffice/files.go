package lexoffice

import (
	"context"

	"github.com/pinpt/lexoffice/sdk"
)

// Files uploads and downloads documents
type Files struct {
	*resource
}

var _ ViewDeeplinker = (*Files)(nil)

// Upload the local file at filename, fileType is usually "voucher"
func (m *Files) Upload(ctx context.Context, filename, fileType string) sdk.Result {
	return m.upload(ctx, m.endpoint(), filename, fileType)
}

// Download returns the file content as []byte data. An empty accept asks for any type.
func (m *Files) Download(ctx context.Context, id, accept string) sdk.Result {
	return m.download(ctx, id, accept)
}

// ViewDeeplink to the file
func (m *Files) ViewDeeplink(id string) string {
	return m.deeplink(viewDeeplink, id)
}
