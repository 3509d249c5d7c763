package lexoffice

import (
	"fmt"
	"net/http"
	"sort"

	ihttp "github.com/pinpt/lexoffice/internal/http"
	"github.com/pinpt/lexoffice/sdk"
)

// Registry keys, one per manager
const (
	KeyArticles            = "lexoffice-article"
	KeyContacts            = "lexoffice-contact"
	KeyCountries           = "lexoffice-country"
	KeyCreditNotes         = "lexoffice-credit-note"
	KeyDeliveryNotes       = "lexoffice-delivery-note"
	KeyDownPaymentInvoices = "lexoffice-down-payment-invoice"
	KeyDunnings            = "lexoffice-dunning"
	KeyEventSubscriptions  = "lexoffice-event-subscription"
	KeyFiles               = "lexoffice-file"
	KeyInvoices            = "lexoffice-invoice"
	KeyOrderConfirmations  = "lexoffice-order-confirmation"
	KeyPaymentConditions   = "lexoffice-payment-condition"
	KeyPayments            = "lexoffice-payment"
	KeyPostingCategories   = "lexoffice-posting-category"
	KeyPrintLayouts        = "lexoffice-print-layout"
	KeyProfile             = "lexoffice-profile"
	KeyQuotations          = "lexoffice-quotation"
	KeyRecurringTemplates  = "lexoffice-recurring-template"
	KeyVoucherList         = "lexoffice-voucher-list"
	KeyVouchers            = "lexoffice-voucher"
)

// Option customizes a Client
type Option func(o *builder)

type builder struct {
	baseURI   string
	client    sdk.HTTPClient
	logger    sdk.Logger
	stats     sdk.Stats
	transport http.RoundTripper
}

// WithLogger sets the logger used for request logging
func WithLogger(logger sdk.Logger) Option {
	return func(o *builder) {
		o.logger = logger
	}
}

// WithTransport sets the round tripper used for every request
func WithTransport(transport http.RoundTripper) Option {
	return func(o *builder) {
		o.transport = transport
	}
}

// WithStats records call counters per resource into stats
func WithStats(stats sdk.Stats) Option {
	return func(o *builder) {
		o.stats = stats
	}
}

// Client holds every resource manager over one shared transport
type Client struct {
	Articles            *Articles
	Contacts            *Contacts
	Countries           *Countries
	CreditNotes         *CreditNotes
	DeliveryNotes       *DeliveryNotes
	DownPaymentInvoices *DownPaymentInvoices
	Dunnings            *Dunnings
	EventSubscriptions  *EventSubscriptions
	Files               *Files
	Invoices            *Invoices
	OrderConfirmations  *OrderConfirmations
	PaymentConditions   *PaymentConditions
	Payments            *Payments
	PostingCategories   *PostingCategories
	PrintLayouts        *PrintLayouts
	Profile             *Profile
	Quotations          *Quotations
	RecurringTemplates  *RecurringTemplates
	VoucherList         *VoucherList
	Vouchers            *Vouchers

	managers map[string]interface{}
}

// New returns a Client for the API described by config
func New(config sdk.Config, opts ...Option) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("error validating config: %w", err)
	}
	b := &builder{
		baseURI: config.BaseURI,
		logger:  sdk.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.client = ihttp.New(b.transport).New(config.BaseURI, map[string]string{
		"Authorization": "Bearer " + config.APIToken,
	})
	c := &Client{
		Articles:            &Articles{newResource(b, "articles")},
		Contacts:            &Contacts{newResource(b, "contacts")},
		Countries:           &Countries{newResource(b, "countries")},
		CreditNotes:         &CreditNotes{newResource(b, "credit-notes")},
		DeliveryNotes:       &DeliveryNotes{newResource(b, "delivery-notes")},
		DownPaymentInvoices: newDownPaymentInvoices(b),
		Dunnings:            &Dunnings{newResource(b, "dunnings")},
		EventSubscriptions:  &EventSubscriptions{newResource(b, "event-subscriptions")},
		Files:               &Files{newResource(b, "files")},
		Invoices:            &Invoices{newResource(b, "invoices")},
		OrderConfirmations:  &OrderConfirmations{newResource(b, "order-confirmations")},
		PaymentConditions:   &PaymentConditions{newResource(b, "payment-conditions")},
		Payments:            &Payments{newResource(b, "payments")},
		PostingCategories:   &PostingCategories{newResource(b, "posting-categories")},
		PrintLayouts:        &PrintLayouts{newResource(b, "print-layouts")},
		Profile:             &Profile{newResource(b, "profile")},
		Quotations:          &Quotations{newResource(b, "quotations")},
		RecurringTemplates:  &RecurringTemplates{newResource(b, "recurring-templates")},
		VoucherList:         &VoucherList{newResource(b, "voucherlist")},
		Vouchers:            &Vouchers{newResource(b, "vouchers")},
	}
	c.managers = map[string]interface{}{
		KeyArticles:            c.Articles,
		KeyContacts:            c.Contacts,
		KeyCountries:           c.Countries,
		KeyCreditNotes:         c.CreditNotes,
		KeyDeliveryNotes:       c.DeliveryNotes,
		KeyDownPaymentInvoices: c.DownPaymentInvoices,
		KeyDunnings:            c.Dunnings,
		KeyEventSubscriptions:  c.EventSubscriptions,
		KeyFiles:               c.Files,
		KeyInvoices:            c.Invoices,
		KeyOrderConfirmations:  c.OrderConfirmations,
		KeyPaymentConditions:   c.PaymentConditions,
		KeyPayments:            c.Payments,
		KeyPostingCategories:   c.PostingCategories,
		KeyPrintLayouts:        c.PrintLayouts,
		KeyProfile:             c.Profile,
		KeyQuotations:          c.Quotations,
		KeyRecurringTemplates:  c.RecurringTemplates,
		KeyVoucherList:         c.VoucherList,
		KeyVouchers:            c.Vouchers,
	}
	sdk.LogDebug(b.logger, "created lexoffice client", "base_uri", config.BaseURI, "managers", len(c.managers))
	return c, nil
}

// Manager returns the manager registered under key
func (c *Client) Manager(key string) (interface{}, bool) {
	m, ok := c.managers[key]
	return m, ok
}

// Keys returns every registered key sorted
func (c *Client) Keys() []string {
	keys := make([]string, 0, len(c.managers))
	for k := range c.managers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
