package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/mailru/easyjson"
	"github.com/pinpt/lexoffice/sdk"
)

// UserAgent is sent on every request unless overridden
const UserAgent = "lexoffice-go"

type client struct {
	url     string
	headers map[string]string
	cl      *http.Client
}

var _ sdk.HTTPClient = (*client)(nil)

func (c *client) exec(opt *sdk.HTTPOptions, out interface{}, options ...sdk.WithHTTPOption) (*sdk.HTTPResponse, error) {
	cl := *c.cl
	cl.Transport = opt.Transport // options may swap the transport per call
	resp, err := cl.Do(opt.Request)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	res := &sdk.HTTPResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
	}
	opt.Response = res
	for _, o := range options {
		if o != nil {
			if err := o(opt); err != nil {
				return nil, err
			}
		}
	}
	opt.Response = nil
	// no content means there's no body
	if resp.StatusCode == http.StatusNoContent {
		return res, nil
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return nil, fmt.Errorf("error copying response body: %w", err)
	}
	res.Body = buf.Bytes()
	if resp.StatusCode > 299 {
		return res, &sdk.HTTPError{
			StatusCode: resp.StatusCode,
			Body:       bytes.NewReader(res.Body),
		}
	}
	if out == nil || len(res.Body) == 0 {
		return res, nil
	}
	if raw, ok := out.(*[]byte); ok {
		*raw = res.Body
		return res, nil
	}
	if i, ok := out.(easyjson.Unmarshaler); ok {
		if err := easyjson.Unmarshal(res.Body, i); err != nil {
			return res, &sdk.DecodeError{StatusCode: resp.StatusCode, Err: err}
		}
		return res, nil
	}
	if err := json.Unmarshal(res.Body, out); err != nil {
		return res, &sdk.DecodeError{StatusCode: resp.StatusCode, Err: err}
	}
	return res, nil
}

func (c *client) makeRequest(req *http.Request, transport http.RoundTripper, options ...sdk.WithHTTPOption) (*sdk.HTTPOptions, error) {
	if transport == nil {
		transport = http.DefaultTransport
	}
	opts := &sdk.HTTPOptions{
		Request:   req,
		Transport: transport,
	}
	opts.Request.Header.Set("Accept", "application/json")
	opts.Request.Header.Set("Content-Type", "application/json")
	opts.Request.Header.Set("User-Agent", UserAgent)
	for k, v := range c.headers {
		opts.Request.Header.Set(k, v)
	}
	for _, opt := range options {
		if opt != nil {
			if err := opt(opts); err != nil {
				return nil, err
			}
		}
	}
	return opts, nil
}

func (c *client) do(method string, data io.Reader, out interface{}, options ...sdk.WithHTTPOption) (*sdk.HTTPResponse, error) {
	req, err := http.NewRequest(method, c.url, data)
	if err != nil {
		return nil, err
	}
	httpreq, err := c.makeRequest(req, c.cl.Transport, options...)
	if err != nil {
		return nil, err
	}
	return c.exec(httpreq, out, options...)
}

// Get will call a HTTP GET method and set the result to out
func (c *client) Get(out interface{}, options ...sdk.WithHTTPOption) (*sdk.HTTPResponse, error) {
	return c.do(http.MethodGet, nil, out, options...)
}

// Post will call a HTTP POST method passing the data and set the result to out
func (c *client) Post(data io.Reader, out interface{}, options ...sdk.WithHTTPOption) (*sdk.HTTPResponse, error) {
	return c.do(http.MethodPost, data, out, options...)
}

// Put will call a HTTP PUT method passing the data and set the result to out
func (c *client) Put(data io.Reader, out interface{}, options ...sdk.WithHTTPOption) (*sdk.HTTPResponse, error) {
	return c.do(http.MethodPut, data, out, options...)
}

// Patch will call a HTTP PATCH method passing the data and set the result to out
func (c *client) Patch(data io.Reader, out interface{}, options ...sdk.WithHTTPOption) (*sdk.HTTPResponse, error) {
	return c.do(http.MethodPatch, data, out, options...)
}

// Delete will call a HTTP DELETE method and set the result to out
func (c *client) Delete(out interface{}, options ...sdk.WithHTTPOption) (*sdk.HTTPResponse, error) {
	return c.do(http.MethodDelete, nil, out, options...)
}

type manager struct {
	transport http.RoundTripper
}

var _ sdk.HTTPClientManager = (*manager)(nil)

// New is for creating a new HTTP client instance that can be reused
func (m *manager) New(url string, headers map[string]string) sdk.HTTPClient {
	return &client{
		url:     url,
		headers: headers,
		cl:      &http.Client{Transport: m.transport},
	}
}

// New returns a new HTTPClientManager, a nil transport uses http.DefaultTransport
func New(transport http.RoundTripper) sdk.HTTPClientManager {
	return &manager{transport}
}
