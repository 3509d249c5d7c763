package lexoffice

import (
	"bytes"
	"context"
	"io/ioutil"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/pinpt/lexoffice/sdk"
	"github.com/stretchr/testify/assert"
)

func TestArticles(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	ts := newTestServer(http.StatusOK, `{"id":"abc","resourceUri":"https://api.lexoffice.io/v1/articles/abc"}`)
	defer ts.Close()
	c := ts.client(t)

	r := c.Articles.Create(ctx, map[string]interface{}{"title": "Lexware buchhaltung Premium"})
	ok(assert, r)
	assert.Equal("abc", r.Data.(map[string]interface{})["id"])
	req := ts.last()
	assert.Equal(http.MethodPost, req.Method)
	assert.Equal("/v1/articles", req.Path)
	assert.Empty(req.Query)
	assert.Equal("application/json", req.ContentType)
	assert.JSONEq(`{"title":"Lexware buchhaltung Premium"}`, string(req.Body))

	ok(assert, c.Articles.Find(ctx, "abc"))
	assert.Equal(http.MethodGet, ts.last().Method)
	assert.Equal("/v1/articles/abc", ts.last().Path)

	ok(assert, c.Articles.Update(ctx, "abc", map[string]interface{}{"version": 1}))
	assert.Equal(http.MethodPut, ts.last().Method)
	assert.Equal("/v1/articles/abc", ts.last().Path)
	assert.JSONEq(`{"version":1}`, string(ts.last().Body))

	r = c.Articles.Delete(ctx, "abc")
	ok(assert, r)
	assert.Equal(ArticleDeleted, r.Data)
	assert.Equal(http.MethodDelete, ts.last().Method)
	assert.Equal("/v1/articles/abc", ts.last().Path)

	ok(assert, c.Articles.All(ctx, Filters{"type": "PRODUCT"}))
	assert.Equal("/v1/articles", ts.last().Path)
	assert.Equal("type=PRODUCT", ts.last().Query)

	ok(assert, c.Articles.All(ctx, nil))
	assert.Empty(ts.last().Query)
	ok(assert, c.Articles.All(ctx, Filters{}))
	assert.Empty(ts.last().Query)
}

func TestContacts(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	ts := newTestServer(http.StatusOK, `{"id":"c1","version":0}`)
	defer ts.Close()
	c := ts.client(t)

	ok(assert, c.Contacts.Create(ctx, map[string]interface{}{"roles": map[string]interface{}{"customer": map[string]interface{}{}}}))
	assert.Equal(http.MethodPost, ts.last().Method)
	assert.Equal("/v1/contacts", ts.last().Path)

	ok(assert, c.Contacts.Update(ctx, "c1", map[string]interface{}{"version": 0}))
	assert.Equal(http.MethodPut, ts.last().Method)
	assert.Equal("/v1/contacts/c1", ts.last().Path)

	r := c.Contacts.Delete(ctx, "c1")
	ok(assert, r)
	assert.Equal(map[string]interface{}{"id": "c1", "version": float64(0)}, r.Data)

	ok(assert, c.Contacts.All(ctx, Filters{"email": "a b@example.com", "customer": "true"}))
	q, err := url.ParseQuery(ts.last().Query)
	assert.NoError(err)
	assert.Equal("a b@example.com", q.Get("email"))
	assert.Equal("true", q.Get("customer"))
	assert.Equal("customer=true&email=a+b%40example.com", ts.last().Query)
}

func TestSalesDocumentsCreateFinalize(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	ts := newTestServer(http.StatusOK, `{"id":"doc"}`)
	defer ts.Close()
	c := ts.client(t)

	creators := map[string]FinalizingCreator{
		"/v1/invoices":       c.Invoices,
		"/v1/credit-notes":   c.CreditNotes,
		"/v1/delivery-notes": c.DeliveryNotes,
		"/v1/quotations":     c.Quotations,
	}
	for path, creator := range creators {
		ok(assert, creator.Create(ctx, map[string]interface{}{}, true))
		assert.Equal(http.MethodPost, ts.last().Method, path)
		assert.Equal(path, ts.last().Path)
		assert.Equal("finalize=true", ts.last().Query, path)

		ok(assert, creator.Create(ctx, map[string]interface{}{}, false))
		assert.Empty(ts.last().Query, path)
	}

	ok(assert, c.OrderConfirmations.Create(ctx, map[string]interface{}{}))
	assert.Equal("/v1/order-confirmations", ts.last().Path)
	assert.Empty(ts.last().Query)

	ok(assert, c.EventSubscriptions.Create(ctx, EventSubscription{EventType: "invoice.created", CallbackURL: "https://example.com/hook"}))
	assert.Equal("/v1/event-subscriptions", ts.last().Path)
	assert.Equal(`{"eventType":"invoice.created","callbackUrl":"https://example.com/hook"}`, string(ts.last().Body))

	ok(assert, c.Vouchers.Create(ctx, map[string]interface{}{"type": "salesinvoice"}))
	assert.Equal(http.MethodPost, ts.last().Method)
	assert.Equal("/v1/vouchers", ts.last().Path)
}

func TestPursue(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	ts := newTestServer(http.StatusOK, `{"id":"next"}`)
	defer ts.Close()
	c := ts.client(t)

	ok(assert, c.Invoices.Pursue(ctx, "prev", map[string]interface{}{"a": 1}, true))
	req := ts.last()
	assert.Equal(http.MethodPost, req.Method)
	assert.Equal("/v1/invoices", req.Path)
	q, _ := url.ParseQuery(req.Query)
	assert.Equal("prev", q.Get("precedingSalesVoucherId"))
	assert.Equal("true", q.Get("finalize"))
	assert.JSONEq(`{"a":1}`, string(req.Body))

	ok(assert, c.CreditNotes.Pursue(ctx, "inv", map[string]interface{}{}, false))
	assert.Equal("/v1/credit-notes", ts.last().Path)
	assert.Equal("precedingSalesVoucherId=inv", ts.last().Query)

	pursuers := map[string]Pursuer{
		"/v1/delivery-notes":      c.DeliveryNotes,
		"/v1/order-confirmations": c.OrderConfirmations,
		"/v1/dunnings":            c.Dunnings,
	}
	for path, p := range pursuers {
		ok(assert, p.Pursue(ctx, "q1", map[string]interface{}{}))
		assert.Equal(http.MethodPost, ts.last().Method, path)
		assert.Equal(path, ts.last().Path)
		assert.Equal("precedingSalesVoucherId=q1", ts.last().Query, path)
	}

	ok(assert, c.Dunnings.Create(ctx, map[string]interface{}{"title": "Mahnung"}, "inv-1"))
	assert.Equal("/v1/dunnings", ts.last().Path)
	assert.Equal("precedingSalesVoucherId=inv-1", ts.last().Query)
	assert.JSONEq(`{"title":"Mahnung"}`, string(ts.last().Body))
}

func TestRenderDocument(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	ts := newTestServer(http.StatusOK, `{"documentFileId":"file-1"}`)
	defer ts.Close()
	c := ts.client(t)
	renderers := map[string]Renderer{
		"/v1/invoices/x/document":            c.Invoices,
		"/v1/credit-notes/x/document":        c.CreditNotes,
		"/v1/delivery-notes/x/document":      c.DeliveryNotes,
		"/v1/dunnings/x/document":            c.Dunnings,
		"/v1/order-confirmations/x/document": c.OrderConfirmations,
		"/v1/quotations/x/document":          c.Quotations,
	}
	for path, renderer := range renderers {
		r := renderer.RenderDocument(ctx, "x")
		ok(assert, r)
		assert.Equal(http.MethodGet, ts.last().Method)
		assert.Equal(path, ts.last().Path)
		assert.Equal("file-1", r.Data.(map[string]interface{})["documentFileId"])
	}
}

func TestFinders(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	ts := newTestServer(http.StatusOK, `{"id":"x"}`)
	defer ts.Close()
	c := ts.client(t)
	finders := map[string]Finder{
		"/v1/articles/x":              c.Articles,
		"/v1/contacts/x":              c.Contacts,
		"/v1/credit-notes/x":          c.CreditNotes,
		"/v1/delivery-notes/x":        c.DeliveryNotes,
		"/v1/down-payment-invoices/x": c.DownPaymentInvoices,
		"/v1/dunnings/x":              c.Dunnings,
		"/v1/event-subscriptions/x":   c.EventSubscriptions,
		"/v1/invoices/x":              c.Invoices,
		"/v1/order-confirmations/x":   c.OrderConfirmations,
		"/v1/payments/x":              c.Payments,
		"/v1/quotations/x":            c.Quotations,
		"/v1/recurring-templates/x":   c.RecurringTemplates,
		"/v1/vouchers/x":              c.Vouchers,
	}
	for path, finder := range finders {
		ok(assert, finder.Find(ctx, "x"))
		assert.Equal(http.MethodGet, ts.last().Method)
		assert.Equal(path, ts.last().Path)
	}
}

func TestListers(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	ts := newTestServer(http.StatusOK, `[]`)
	defer ts.Close()
	c := ts.client(t)
	listers := map[string]Lister{
		"/v1/countries":           c.Countries,
		"/v1/event-subscriptions": c.EventSubscriptions,
		"/v1/payment-conditions":  c.PaymentConditions,
		"/v1/posting-categories":  c.PostingCategories,
		"/v1/print-layouts":       c.PrintLayouts,
	}
	for path, lister := range listers {
		r := lister.All(ctx)
		ok(assert, r)
		assert.Equal([]interface{}{}, r.Data)
		assert.Equal(path, ts.last().Path)
		assert.Empty(ts.last().Query)
	}

	ok(assert, c.RecurringTemplates.All(ctx, Filters{"page": "0", "size": "25", "sort": "createdDate,DESC"}))
	assert.Equal("/v1/recurring-templates", ts.last().Path)
	assert.Equal("page=0&size=25&sort=createdDate%2CDESC", ts.last().Query)

	ok(assert, c.VoucherList.All(ctx, Filters{"voucherType": "invoice", "voucherStatus": "open"}))
	assert.Equal("/v1/voucherlist", ts.last().Path)
	assert.Equal("voucherStatus=open&voucherType=invoice", ts.last().Query)

	ok(assert, c.Vouchers.All(ctx, Filters{"voucherNumber": "123-456"}))
	assert.Equal("/v1/vouchers", ts.last().Path)
	assert.Equal("voucherNumber=123-456", ts.last().Query)
}

func TestEventSubscriptionsDelete(t *testing.T) {
	assert := assert.New(t)
	ts := newTestServer(http.StatusNoContent, "")
	defer ts.Close()
	r := ts.client(t).EventSubscriptions.Delete(context.Background(), "sub")
	ok(assert, r)
	assert.Equal(EventSubscriptionDeleted, r.Data)
	assert.Equal(http.MethodDelete, ts.last().Method)
	assert.Equal("/v1/event-subscriptions/sub", ts.last().Path)
}

func TestVouchersUpdateUsesPost(t *testing.T) {
	assert := assert.New(t)
	ts := newTestServer(http.StatusOK, `{"id":"v1","version":2}`)
	defer ts.Close()
	id := uuid.New().String()
	r := ts.client(t).Vouchers.Update(context.Background(), id, map[string]interface{}{"version": 1})
	ok(assert, r)
	assert.Equal(http.MethodPost, ts.last().Method)
	assert.Equal("/v1/vouchers/"+id, ts.last().Path)
	assert.JSONEq(`{"version":1}`, string(ts.last().Body))
}

func TestUploadMissingFile(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	ts := newTestServer(http.StatusOK, `{}`)
	defer ts.Close()
	c := ts.client(t)
	missing := filepath.Join(os.TempDir(), "lexoffice-does-not-exist.pdf")
	for _, r := range []sdk.Result{
		c.Files.Upload(ctx, missing, "voucher"),
		c.Vouchers.UploadFile(ctx, "v1", "voucher", missing),
	} {
		assert.False(r.Success)
		assert.Nil(r.Data)
		assert.Nil(r.Status)
		assert.Equal(MsgFileNotFound, r.Message())
	}
	assert.Equal(0, ts.count())
}

func readMultipart(t *testing.T, req recorded) map[string]*multipartPart {
	mediaType, params, err := mime.ParseMediaType(req.ContentType)
	if err != nil {
		t.Fatal(err)
	}
	if mediaType != "multipart/form-data" {
		t.Fatalf("unexpected content type %s", mediaType)
	}
	parts := make(map[string]*multipartPart)
	mr := multipart.NewReader(bytes.NewReader(req.Body), params["boundary"])
	for {
		p, err := mr.NextPart()
		if err != nil {
			break
		}
		buf, _ := ioutil.ReadAll(p)
		parts[p.FormName()] = &multipartPart{filename: p.FileName(), content: string(buf)}
	}
	return parts
}

type multipartPart struct {
	filename string
	content  string
}

func TestUpload(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	dir, err := ioutil.TempDir("", "lexoffice")
	assert.NoError(err)
	defer os.RemoveAll(dir)
	fn := filepath.Join(dir, "receipt.pdf")
	assert.NoError(ioutil.WriteFile(fn, []byte("%PDF-1.4 receipt"), 0644))

	ts := newTestServer(http.StatusAccepted, `{"id":"file-1"}`)
	defer ts.Close()
	c := ts.client(t)

	r := c.Files.Upload(ctx, fn, "voucher")
	ok(assert, r)
	assert.Equal("file-1", r.Data.(map[string]interface{})["id"])
	req := ts.last()
	assert.Equal(http.MethodPost, req.Method)
	assert.Equal("/v1/files", req.Path)
	parts := readMultipart(t, req)
	assert.Len(parts, 2)
	assert.Equal("receipt.pdf", parts["file"].filename)
	assert.Equal("%PDF-1.4 receipt", parts["file"].content)
	assert.Equal("voucher", parts["type"].content)

	ok(assert, c.Vouchers.UploadFile(ctx, "v1", "voucher", fn))
	req = ts.last()
	assert.Equal(http.MethodPost, req.Method)
	assert.Equal("/v1/vouchers/v1/files", req.Path)
	parts = readMultipart(t, req)
	assert.Equal("receipt.pdf", parts["file"].filename)
	assert.Equal("voucher", parts["type"].content)
}

func TestDownload(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	ts := newTestServer(http.StatusOK, "")
	ts.respondWith(http.StatusOK, "%PDF-1.4 binary", "application/pdf")
	defer ts.Close()
	c := ts.client(t)

	r := c.Files.Download(ctx, "file-1", "")
	ok(assert, r)
	assert.Equal([]byte("%PDF-1.4 binary"), r.Bytes())
	assert.Equal(http.MethodGet, ts.last().Method)
	assert.Equal("/v1/files/file-1", ts.last().Path)
	assert.Equal("*/*", ts.last().Accept)

	r = c.Files.Download(ctx, "file-1", "application/pdf")
	ok(assert, r)
	assert.Equal("application/pdf", ts.last().Accept)
}

func TestDownloadNotFound(t *testing.T) {
	assert := assert.New(t)
	ts := newTestServer(http.StatusNotFound, `{"message":"File not found"}`)
	defer ts.Close()
	r := ts.client(t).Files.Download(context.Background(), "nope", "")
	assert.False(r.Success)
	assert.Nil(r.Data)
	assert.Equal(404, r.StatusCode())
	assert.Equal("File not found", r.Message())
}

func TestDeeplinks(t *testing.T) {
	assert := assert.New(t)
	c, err := New(sdk.NewConfig(map[string]interface{}{"base_uri": "https://api.example.com/", "api_token": "t"}))
	assert.NoError(err)

	assert.Equal("https://api.example.com/permalink/invoices/view/X", c.Invoices.ViewDeeplink("X"))
	assert.Equal("https://api.example.com/permalink/invoices/edit/X", c.Invoices.EditDeeplink("X"))
	assert.Equal("https://api.example.com/permalink/credit-notes/view/X", c.CreditNotes.ViewDeeplink("X"))
	assert.Equal("https://api.example.com/permalink/credit-notes/edit/X", c.CreditNotes.EditDeeplink("X"))
	assert.Equal("https://api.example.com/permalink/delivery-notes/view/X", c.DeliveryNotes.ViewDeeplink("X"))
	assert.Equal("https://api.example.com/permalink/delivery-notes/edit/X", c.DeliveryNotes.EditDeeplink("X"))
	assert.Equal("https://api.example.com/permalink/invoices/view/X", c.DownPaymentInvoices.ViewDeeplink("X"))
	assert.Equal("https://api.example.com/permalink/invoices/edit/X", c.DownPaymentInvoices.EditDeeplink("X"))
	assert.Equal("https://api.example.com/permalink/dunnings/view/X", c.Dunnings.ViewDeeplink("X"))
	assert.Equal("https://api.example.com/permalink/dunnings/edit/X", c.Dunnings.EditDeeplink("X"))
	assert.Equal("https://api.example.com/permalink/files/view/X", c.Files.ViewDeeplink("X"))
	assert.Equal("https://api.example.com/permalink/order-confirmations/view/X", c.OrderConfirmations.ViewDeeplink("X"))
	assert.Equal("https://api.example.com/permalink/order-confirmations/edit/X", c.OrderConfirmations.EditDeeplink("X"))
	assert.Equal("https://api.example.com/permalink/quotations/view/X", c.Quotations.ViewDeeplink("X"))
	assert.Equal("https://api.example.com/permalink/quotations/edit/X", c.Quotations.EditDeeplink("X"))
	assert.Equal("https://api.example.com/permalink/recurring-templates/edit/X", c.RecurringTemplates.EditDeeplink("X"))
	assert.Equal("https://api.example.com/permalink/vouchers/view/X", c.Vouchers.ViewDeeplink("X"))
	assert.Equal("https://api.example.com/permalink/vouchers/edit/X", c.Vouchers.EditDeeplink("X"))
}

func TestOrderConfirmationDeeplink(t *testing.T) {
	assert := assert.New(t)
	c, err := New(sdk.NewConfig(map[string]interface{}{"base_uri": "https://api.example.com/", "api_token": "t"}))
	assert.NoError(err)
	link, err := c.OrderConfirmations.Deeplink("X", "view")
	assert.NoError(err)
	assert.Equal("https://api.example.com/permalink/order-confirmations/view/X", link)
	link, err = c.OrderConfirmations.Deeplink("X", "edit")
	assert.NoError(err)
	assert.Equal("https://api.example.com/permalink/order-confirmations/edit/X", link)
	link, err = c.OrderConfirmations.Deeplink("X", "delete")
	assert.Equal(ErrInvalidDeeplinkKind, err)
	assert.Empty(link)
}

func TestCapabilities(t *testing.T) {
	assert := assert.New(t)
	c, err := New(sdk.NewConfig(map[string]interface{}{"api_token": "t"}))
	assert.NoError(err)
	var m interface{} = c.Countries
	_, isCreator := m.(Creator)
	assert.False(isCreator)
	m = c.RecurringTemplates
	_, isViewer := m.(ViewDeeplinker)
	assert.False(isViewer)
	m = c.Contacts
	_, isDeleter := m.(Deleter)
	assert.True(isDeleter)
	assert.Equal("contacts", c.Contacts.Path())
}
