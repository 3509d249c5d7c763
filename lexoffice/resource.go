package lexoffice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/mailru/easyjson"
	"github.com/pinpt/go-common/v10/fileutil"
	"github.com/pinpt/lexoffice/sdk"
)

// MsgFileNotFound is the error message returned when an upload path does not exist
const MsgFileNotFound = "File does not exist at the provided path."

// Filters are passed as query parameters to list endpoints
type Filters map[string]string

// Values returns the filters as url.Values
func (f Filters) Values() url.Values {
	if len(f) == 0 {
		return nil
	}
	v := make(url.Values, len(f))
	for k, val := range f {
		v.Set(k, val)
	}
	return v
}

// resource binds the shared transport to one API path
type resource struct {
	path      string
	permalink string
	baseURI   string
	client    sdk.HTTPClient
	logger    sdk.Logger
	stats     sdk.Stats
}

func newResource(b *builder, path string) *resource {
	r := &resource{
		path:      path,
		permalink: path,
		baseURI:   b.baseURI,
		client:    b.client,
		logger:    sdk.LogWith(b.logger, "resource", path),
	}
	if b.stats != nil {
		r.stats = sdk.PrefixStats(b.stats, path)
	}
	return r
}

func (r *resource) endpoint(parts ...string) string {
	return sdk.JoinURL(append([]string{r.path}, parts...)...)
}

func encode(payload interface{}) ([]byte, error) {
	if m, ok := payload.(easyjson.Marshaler); ok {
		return easyjson.Marshal(m)
	}
	return json.Marshal(payload)
}

func (r *resource) send(ctx context.Context, method, endpoint string, body io.Reader, query url.Values, out interface{}, extra ...sdk.WithHTTPOption) error {
	opts := []sdk.WithHTTPOption{sdk.WithContext(ctx), sdk.WithEndpoint(endpoint)}
	if len(query) > 0 {
		opts = append(opts, sdk.WithGetQueryParameters(query))
	}
	opts = append(opts, extra...)
	sdk.LogDebug(r.logger, "sending request", "method", method, "endpoint", endpoint)
	var err error
	switch method {
	case http.MethodGet:
		_, err = r.client.Get(out, opts...)
	case http.MethodPost:
		_, err = r.client.Post(body, out, opts...)
	case http.MethodPut:
		_, err = r.client.Put(body, out, opts...)
	case http.MethodDelete:
		_, err = r.client.Delete(out, opts...)
	default:
		err = fmt.Errorf("unsupported method: %s", method)
	}
	return err
}

func (r *resource) finish(res sdk.Result, method, endpoint string) sdk.Result {
	if !res.Success {
		sdk.LogDebug(r.logger, "request failed", "method", method, "endpoint", endpoint, "status", res.StatusCode(), "err", res.Message())
	}
	sdk.RecordResult(r.stats, res)
	return res
}

// exchange sends payload (when not a GET or DELETE) and returns the decoded response
func (r *resource) exchange(ctx context.Context, method, endpoint string, payload interface{}, query url.Values) sdk.Result {
	var body io.Reader
	if method == http.MethodPost || method == http.MethodPut {
		buf, err := encode(payload)
		if err != nil {
			return r.finish(sdk.Failure(fmt.Sprintf("error encoding payload: %s", err)), method, endpoint)
		}
		body = bytes.NewReader(buf)
	}
	return r.finish(sdk.Envelope(func() (interface{}, error) {
		var out interface{}
		if err := r.send(ctx, method, endpoint, body, query, &out); err != nil {
			return nil, err
		}
		return out, nil
	}), method, endpoint)
}

func finalizeQuery(finalize bool) url.Values {
	if finalize {
		return url.Values{"finalize": {"true"}}
	}
	return nil
}

func (r *resource) create(ctx context.Context, payload interface{}, finalize bool) sdk.Result {
	return r.exchange(ctx, http.MethodPost, r.endpoint(), payload, finalizeQuery(finalize))
}

func (r *resource) find(ctx context.Context, id string) sdk.Result {
	return r.exchange(ctx, http.MethodGet, r.endpoint(id), nil, nil)
}

func (r *resource) update(ctx context.Context, method, id string, payload interface{}) sdk.Result {
	return r.exchange(ctx, method, r.endpoint(id), payload, nil)
}

func (r *resource) all(ctx context.Context, filters Filters) sdk.Result {
	return r.exchange(ctx, http.MethodGet, r.endpoint(), nil, filters.Values())
}

func (r *resource) render(ctx context.Context, id string) sdk.Result {
	return r.exchange(ctx, http.MethodGet, r.endpoint(id, "document"), nil, nil)
}

func (r *resource) pursue(ctx context.Context, precedingID string, payload interface{}, finalize bool) sdk.Result {
	query := url.Values{"precedingSalesVoucherId": {precedingID}}
	if finalize {
		query.Set("finalize", "true")
	}
	return r.exchange(ctx, http.MethodPost, r.endpoint(), payload, query)
}

// remove deletes id, a non-empty message replaces whatever the API returned
func (r *resource) remove(ctx context.Context, id, message string) sdk.Result {
	if message == "" {
		return r.exchange(ctx, http.MethodDelete, r.endpoint(id), nil, nil)
	}
	endpoint := r.endpoint(id)
	return r.finish(sdk.Envelope(func() (interface{}, error) {
		if err := r.send(ctx, http.MethodDelete, endpoint, nil, nil, nil); err != nil {
			return nil, err
		}
		return message, nil
	}), http.MethodDelete, endpoint)
}

func multipartBody(filename, fileType string) (*bytes.Buffer, string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, "", fmt.Errorf("error reading %s: %w", filename, err)
	}
	if err := w.WriteField("type", fileType); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

// upload posts filename as a multipart form to endpoint
func (r *resource) upload(ctx context.Context, endpoint, filename, fileType string) sdk.Result {
	if !fileutil.FileExists(filename) {
		sdk.LogWarn(r.logger, "upload file not found", "file", filename)
		return r.finish(sdk.Failure(MsgFileNotFound), http.MethodPost, endpoint)
	}
	body, contentType, err := multipartBody(filename, fileType)
	if err != nil {
		return r.finish(sdk.Failure(err.Error()), http.MethodPost, endpoint)
	}
	return r.finish(sdk.Envelope(func() (interface{}, error) {
		var out interface{}
		if err := r.send(ctx, http.MethodPost, endpoint, body, nil, &out, sdk.WithContentType(contentType)); err != nil {
			return nil, err
		}
		return out, nil
	}), http.MethodPost, endpoint)
}

func (r *resource) download(ctx context.Context, id, accept string) sdk.Result {
	if accept == "" {
		accept = "*/*"
	}
	endpoint := r.endpoint(id)
	return r.finish(sdk.Envelope(func() (interface{}, error) {
		raw := []byte{}
		if err := r.send(ctx, http.MethodGet, endpoint, nil, nil, &raw, sdk.WithHTTPHeader("Accept", accept)); err != nil {
			return nil, err
		}
		return raw, nil
	}), http.MethodGet, endpoint)
}

const (
	viewDeeplink = "view"
	editDeeplink = "edit"
)

func (r *resource) deeplink(kind, id string) string {
	return r.baseURI + "permalink/" + r.permalink + "/" + kind + "/" + id
}

// Path returns the API path the manager is bound to
func (r *resource) Path() string {
	return r.path
}
