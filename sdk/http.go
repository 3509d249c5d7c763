package sdk

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// HTTPOptions is a holder for options
type HTTPOptions struct {
	Request   *http.Request
	Response  *HTTPResponse // only set in the response case or nil in the request case
	Transport http.RoundTripper
}

// WithHTTPOption is an option for setting details on the request
type WithHTTPOption func(opt *HTTPOptions) error

// HTTPClientManager is an interface for creating HTTP clients
type HTTPClientManager interface {
	// New is for creating a new HTTP client instance that can be reused
	New(url string, headers map[string]string) HTTPClient
}

// HTTPError is returned if the error is a non-200 status code
type HTTPError struct {
	StatusCode int
	Body       io.Reader
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP Error: %d", e.StatusCode)
}

// IsHTTPError returns true if an error is a HTTP error
func IsHTTPError(err error) (bool, int, io.Reader) {
	if e, ok := err.(*HTTPError); ok {
		return true, e.StatusCode, e.Body
	}
	return false, 0, nil
}

// DecodeError is returned when a 2xx response body could not be decoded
type DecodeError struct {
	StatusCode int
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("error decoding response body (%d): %s", e.StatusCode, e.Err)
}

// Unwrap returns the underlying decode error
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// HTTPResponse is a struct returned by the HTTPClient
type HTTPResponse struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// HTTPClient is an interface to a HTTP client
type HTTPClient interface {
	// Get will call a HTTP GET method and set the result to out
	Get(out interface{}, options ...WithHTTPOption) (*HTTPResponse, error)
	// Post will call a HTTP POST method passing the data and set the result to out
	Post(data io.Reader, out interface{}, options ...WithHTTPOption) (*HTTPResponse, error)
	// Put will call a HTTP PUT method passing the data and set the result to out
	Put(data io.Reader, out interface{}, options ...WithHTTPOption) (*HTTPResponse, error)
	// Patch will call a HTTP PATCH method passing the data and set the result to out
	Patch(data io.Reader, out interface{}, options ...WithHTTPOption) (*HTTPResponse, error)
	// Delete will call a HTTP DELETE method and set the result to out
	Delete(out interface{}, options ...WithHTTPOption) (*HTTPResponse, error)
}

// WithHTTPHeader will add a specific header to an outgoing request
func WithHTTPHeader(key, value string) WithHTTPOption {
	return func(opt *HTTPOptions) error {
		if opt.Response == nil {
			opt.Request.Header.Set(key, value)
		}
		return nil
	}
}

// WithEndpoint will add to the url path
func WithEndpoint(value string) WithHTTPOption {
	return func(opt *HTTPOptions) error {
		if opt.Response == nil {
			opt.Request.URL.Path = JoinURL("/", opt.Request.URL.Path, value)
			opt.Request.URL.RawPath = ""
		}
		return nil
	}
}

// WithContentType will set the Content-Type header
func WithContentType(value string) WithHTTPOption {
	return func(opt *HTTPOptions) error {
		if opt.Response == nil {
			opt.Request.Header.Set("Content-Type", value)
		}
		return nil
	}
}

// WithAuthorization will set the Authorization header
func WithAuthorization(value string) WithHTTPOption {
	return func(opt *HTTPOptions) error {
		if opt.Response == nil {
			opt.Request.Header.Set("Authorization", value)
		}
		return nil
	}
}

// WithBearerToken will set a Bearer Authorization header
func WithBearerToken(token string) WithHTTPOption {
	return WithAuthorization("Bearer " + token)
}

// WithGetQueryParameters will allow the query parameters to be overriden
func WithGetQueryParameters(variables url.Values) WithHTTPOption {
	return func(opt *HTTPOptions) error {
		if opt.Response == nil {
			q := opt.Request.URL.Query()
			for k, v := range variables {
				q[k] = v
			}
			opt.Request.URL.RawQuery = q.Encode()
		}
		return nil
	}
}

// WithContext will bind the outgoing request to ctx
func WithContext(ctx context.Context) WithHTTPOption {
	return func(opt *HTTPOptions) error {
		if opt.Response == nil && ctx != nil {
			opt.Request = opt.Request.WithContext(ctx)
		}
		return nil
	}
}
