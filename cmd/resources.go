package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pinpt/go-common/v10/log"
	"github.com/pinpt/lexoffice/lexoffice"
	"github.com/pinpt/lexoffice/sdk"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

// resourceDef binds a command name to a registry key. proto is a zero value
// of the manager used to find its capabilities before a client exists.
type resourceDef struct {
	name  string
	key   string
	short string
	proto interface{}
}

var resourceDefs = []resourceDef{
	{"articles", lexoffice.KeyArticles, "manage articles", &lexoffice.Articles{}},
	{"contacts", lexoffice.KeyContacts, "manage contacts", &lexoffice.Contacts{}},
	{"countries", lexoffice.KeyCountries, "list countries", &lexoffice.Countries{}},
	{"credit-notes", lexoffice.KeyCreditNotes, "manage credit notes", &lexoffice.CreditNotes{}},
	{"delivery-notes", lexoffice.KeyDeliveryNotes, "manage delivery notes", &lexoffice.DeliveryNotes{}},
	{"down-payment-invoices", lexoffice.KeyDownPaymentInvoices, "read down payment invoices", &lexoffice.DownPaymentInvoices{}},
	{"dunnings", lexoffice.KeyDunnings, "manage dunnings", &lexoffice.Dunnings{}},
	{"event-subscriptions", lexoffice.KeyEventSubscriptions, "manage webhook subscriptions", &lexoffice.EventSubscriptions{}},
	{"files", lexoffice.KeyFiles, "upload and download files", &lexoffice.Files{}},
	{"invoices", lexoffice.KeyInvoices, "manage invoices", &lexoffice.Invoices{}},
	{"order-confirmations", lexoffice.KeyOrderConfirmations, "manage order confirmations", &lexoffice.OrderConfirmations{}},
	{"payment-conditions", lexoffice.KeyPaymentConditions, "list payment conditions", &lexoffice.PaymentConditions{}},
	{"payments", lexoffice.KeyPayments, "read voucher payments", &lexoffice.Payments{}},
	{"posting-categories", lexoffice.KeyPostingCategories, "list posting categories", &lexoffice.PostingCategories{}},
	{"print-layouts", lexoffice.KeyPrintLayouts, "list print layouts", &lexoffice.PrintLayouts{}},
	{"profile", lexoffice.KeyProfile, "read the organization profile", &lexoffice.Profile{}},
	{"quotations", lexoffice.KeyQuotations, "manage quotations", &lexoffice.Quotations{}},
	{"recurring-templates", lexoffice.KeyRecurringTemplates, "read recurring templates", &lexoffice.RecurringTemplates{}},
	{"voucherlist", lexoffice.KeyVoucherList, "list vouchers of every type", &lexoffice.VoucherList{}},
	{"vouchers", lexoffice.KeyVouchers, "manage bookkeeping vouchers", &lexoffice.Vouchers{}},
}

type action func(ctx context.Context, cmd *cobra.Command, m interface{}, args []string) (sdk.Result, error)

func newClient(cmd *cobra.Command, logger sdk.Logger) (*lexoffice.Client, sdk.Stats, error) {
	cfg, err := resolveConfig(cmd.Flags())
	if err != nil {
		return nil, nil, err
	}
	opts := []lexoffice.Option{lexoffice.WithLogger(logger)}
	var stats sdk.Stats
	if ok, _ := cmd.Flags().GetBool("stats"); ok {
		stats = sdk.NewStats()
		opts = append(opts, lexoffice.WithStats(stats))
	}
	client, err := lexoffice.New(cfg, opts...)
	if err != nil {
		return nil, nil, err
	}
	return client, stats, nil
}

func run(def resourceDef, fn action) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		logger := log.NewCommandLogger(cmd)
		client, stats, err := newClient(cmd, logger)
		if err != nil {
			log.Fatal(logger, "error creating client", "err", err)
		}
		m, _ := client.Manager(def.key)
		r, err := fn(context.Background(), cmd, m, args)
		if err != nil {
			log.Fatal(logger, "error running command", "resource", def.name, "err", err)
		}
		code := writeResult(os.Stdout, os.Stderr, r, isTerminal(os.Stdout))
		writeStats(os.Stderr, stats)
		logger.Close()
		os.Exit(code)
	}
}

func payloadFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("file", "f", "", "the JSON payload file, - for stdin")
}

func payloadFrom(cmd *cobra.Command) (interface{}, error) {
	fn, _ := cmd.Flags().GetString("file")
	return readPayload(fn, os.Stdin)
}

// capabilityVerbs are the verbs built from the capability interfaces
func capabilityVerbs(proto interface{}) []string {
	var v []string
	if _, ok := proto.(lexoffice.Finder); ok {
		v = append(v, "get")
	}
	switch proto.(type) {
	case lexoffice.Lister, lexoffice.FilteredLister:
		v = append(v, "list")
	}
	switch proto.(type) {
	case lexoffice.Creator, lexoffice.FinalizingCreator:
		v = append(v, "create")
	}
	if _, ok := proto.(lexoffice.Updater); ok {
		v = append(v, "update")
	}
	if _, ok := proto.(lexoffice.Deleter); ok {
		v = append(v, "delete")
	}
	if _, ok := proto.(lexoffice.Renderer); ok {
		v = append(v, "render")
	}
	switch proto.(type) {
	case lexoffice.Pursuer, lexoffice.FinalizingPursuer:
		v = append(v, "pursue")
	}
	switch proto.(type) {
	case lexoffice.ViewDeeplinker, lexoffice.EditDeeplinker:
		v = append(v, "deeplink")
	}
	return v
}

func verbs(proto interface{}) []string {
	v := capabilityVerbs(proto)
	switch proto.(type) {
	case *lexoffice.Files:
		v = append(v, "upload", "download")
	case *lexoffice.Vouchers:
		v = append(v, "upload")
	case *lexoffice.Profile:
		v = append(v, "get")
	}
	return v
}

func getCmd(def resourceDef) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "fetch one by id",
		Args:  cobra.ExactArgs(1),
		Run: run(def, func(ctx context.Context, cmd *cobra.Command, m interface{}, args []string) (sdk.Result, error) {
			return m.(lexoffice.Finder).Find(ctx, args[0]), nil
		}),
	}
}

func listCmd(def resourceDef) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "list all",
		Args:  cobra.NoArgs,
		Run: run(def, func(ctx context.Context, cmd *cobra.Command, m interface{}, args []string) (sdk.Result, error) {
			vals, _ := cmd.Flags().GetStringArray("filter")
			filters, err := parseFilters(vals)
			if err != nil {
				return sdk.Result{}, err
			}
			switch l := m.(type) {
			case lexoffice.FilteredLister:
				return l.All(ctx, filters), nil
			case lexoffice.Lister:
				if len(filters) > 0 {
					return sdk.Result{}, fmt.Errorf("%s does not take filters", def.name)
				}
				return l.All(ctx), nil
			}
			return sdk.Result{}, fmt.Errorf("%s cannot be listed", def.name)
		}),
	}
	if _, ok := def.proto.(lexoffice.FilteredLister); ok {
		cmd.Flags().StringArray("filter", nil, "a key=value filter, may be repeated")
	}
	return cmd
}

func createCmd(def resourceDef) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "create from a JSON payload",
		Run: run(def, func(ctx context.Context, cmd *cobra.Command, m interface{}, args []string) (sdk.Result, error) {
			payload, err := payloadFrom(cmd)
			if err != nil {
				return sdk.Result{}, err
			}
			switch c := m.(type) {
			case lexoffice.FinalizingCreator:
				finalize, _ := cmd.Flags().GetBool("finalize")
				return c.Create(ctx, payload, finalize), nil
			case lexoffice.Creator:
				return c.Create(ctx, payload), nil
			}
			return sdk.Result{}, fmt.Errorf("%s cannot be created", def.name)
		}),
	}
	payloadFlag(cmd)
	if _, ok := def.proto.(lexoffice.FinalizingCreator); ok {
		cmd.Flags().Bool("finalize", false, "finalize the document instead of saving a draft")
	}
	return cmd
}

func updateCmd(def resourceDef) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "update from a JSON payload",
		Args:  cobra.ExactArgs(1),
		Run: run(def, func(ctx context.Context, cmd *cobra.Command, m interface{}, args []string) (sdk.Result, error) {
			payload, err := payloadFrom(cmd)
			if err != nil {
				return sdk.Result{}, err
			}
			return m.(lexoffice.Updater).Update(ctx, args[0], payload), nil
		}),
	}
	payloadFlag(cmd)
	return cmd
}

func deleteCmd(def resourceDef) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "delete by id",
		Args:  cobra.ExactArgs(1),
		Run: run(def, func(ctx context.Context, cmd *cobra.Command, m interface{}, args []string) (sdk.Result, error) {
			return m.(lexoffice.Deleter).Delete(ctx, args[0]), nil
		}),
	}
}

func renderCmd(def resourceDef) *cobra.Command {
	return &cobra.Command{
		Use:   "render <id>",
		Short: "render the document and print its file id",
		Args:  cobra.ExactArgs(1),
		Run: run(def, func(ctx context.Context, cmd *cobra.Command, m interface{}, args []string) (sdk.Result, error) {
			return m.(lexoffice.Renderer).RenderDocument(ctx, args[0]), nil
		}),
	}
}

func pursueCmd(def resourceDef) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pursue <precedingSalesVoucherId>",
		Short: "create following a preceding sales voucher",
		Args:  cobra.ExactArgs(1),
		Run: run(def, func(ctx context.Context, cmd *cobra.Command, m interface{}, args []string) (sdk.Result, error) {
			payload, err := payloadFrom(cmd)
			if err != nil {
				return sdk.Result{}, err
			}
			switch p := m.(type) {
			case lexoffice.FinalizingPursuer:
				finalize, _ := cmd.Flags().GetBool("finalize")
				return p.Pursue(ctx, args[0], payload, finalize), nil
			case lexoffice.Pursuer:
				return p.Pursue(ctx, args[0], payload), nil
			}
			return sdk.Result{}, fmt.Errorf("%s cannot be pursued", def.name)
		}),
	}
	payloadFlag(cmd)
	if _, ok := def.proto.(lexoffice.FinalizingPursuer); ok {
		cmd.Flags().Bool("finalize", false, "finalize the new document")
	}
	return cmd
}

// deeplink formats a link for m, edit selects the edit view
func deeplink(m interface{}, id string, edit bool) (string, error) {
	if edit {
		if d, ok := m.(lexoffice.EditDeeplinker); ok {
			return d.EditDeeplink(id), nil
		}
		return "", fmt.Errorf("no edit deeplink available")
	}
	if d, ok := m.(lexoffice.ViewDeeplinker); ok {
		return d.ViewDeeplink(id), nil
	}
	if d, ok := m.(lexoffice.EditDeeplinker); ok {
		return d.EditDeeplink(id), nil
	}
	return "", fmt.Errorf("no deeplink available")
}

func deeplinkCmd(def resourceDef) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deeplink <id>",
		Short: "print the link to open it in the web app",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			logger := log.NewCommandLogger(cmd)
			defer logger.Close()
			client, _, err := newClient(cmd, logger)
			if err != nil {
				log.Fatal(logger, "error creating client", "err", err)
			}
			m, _ := client.Manager(def.key)
			edit, _ := cmd.Flags().GetBool("edit")
			link, err := deeplink(m, args[0], edit)
			if err != nil {
				log.Fatal(logger, "error building deeplink", "resource", def.name, "err", err)
			}
			fmt.Println(link)
			if open, _ := cmd.Flags().GetBool("open"); open {
				if err := browser.OpenURL(link); err != nil {
					log.Fatal(logger, "error opening url", "err", err)
				}
			}
		},
	}
	cmd.Flags().Bool("edit", false, "link to the edit view")
	cmd.Flags().Bool("open", false, "open the link in the browser")
	return cmd
}

func filesUploadCmd(def resourceDef) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upload <path>",
		Short: "upload a local file",
		Args:  cobra.ExactArgs(1),
		Run: run(def, func(ctx context.Context, cmd *cobra.Command, m interface{}, args []string) (sdk.Result, error) {
			fileType, _ := cmd.Flags().GetString("type")
			return m.(*lexoffice.Files).Upload(ctx, args[0], fileType), nil
		}),
	}
	cmd.Flags().String("type", "voucher", "the file type")
	return cmd
}

func filesDownloadCmd(def resourceDef) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "download <id>",
		Short: "download a file",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			logger := log.NewCommandLogger(cmd)
			client, stats, err := newClient(cmd, logger)
			if err != nil {
				log.Fatal(logger, "error creating client", "err", err)
			}
			accept, _ := cmd.Flags().GetString("accept")
			out, _ := cmd.Flags().GetString("output")
			r := client.Files.Download(context.Background(), args[0], accept)
			code := writeDownload(os.Stdout, os.Stderr, r, out)
			writeStats(os.Stderr, stats)
			logger.Close()
			os.Exit(code)
		},
	}
	cmd.Flags().String("accept", "*/*", "the Accept header to send")
	cmd.Flags().StringP("output", "o", "", "write to file instead of stdout")
	return cmd
}

func vouchersUploadCmd(def resourceDef) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upload <voucherId> <path>",
		Short: "attach a local file to a voucher",
		Args:  cobra.ExactArgs(2),
		Run: run(def, func(ctx context.Context, cmd *cobra.Command, m interface{}, args []string) (sdk.Result, error) {
			fileType, _ := cmd.Flags().GetString("type")
			return m.(*lexoffice.Vouchers).UploadFile(ctx, args[0], fileType, args[1]), nil
		}),
	}
	cmd.Flags().String("type", "voucher", "the file type")
	return cmd
}

func profileGetCmd(def resourceDef) *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "fetch the profile",
		Args:  cobra.NoArgs,
		Run: run(def, func(ctx context.Context, cmd *cobra.Command, m interface{}, args []string) (sdk.Result, error) {
			return m.(*lexoffice.Profile).Get(ctx), nil
		}),
	}
}

var builders = map[string]func(resourceDef) *cobra.Command{
	"get":      getCmd,
	"list":     listCmd,
	"create":   createCmd,
	"update":   updateCmd,
	"delete":   deleteCmd,
	"render":   renderCmd,
	"pursue":   pursueCmd,
	"deeplink": deeplinkCmd,
}

func resourceCommand(def resourceDef) *cobra.Command {
	cmd := &cobra.Command{
		Use:   def.name,
		Short: def.short,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}
	switch def.proto.(type) {
	case *lexoffice.Files:
		cmd.AddCommand(filesUploadCmd(def), filesDownloadCmd(def))
	case *lexoffice.Vouchers:
		cmd.AddCommand(vouchersUploadCmd(def))
	case *lexoffice.Profile:
		cmd.AddCommand(profileGetCmd(def))
	}
	for _, verb := range capabilityVerbs(def.proto) {
		cmd.AddCommand(builders[verb](def))
	}
	return cmd
}

var resourcesCmd = &cobra.Command{
	Use:   "resources",
	Short: "list the available resources, their registry keys and commands",
	Run: func(cmd *cobra.Command, args []string) {
		defs := make([]resourceDef, len(resourceDefs))
		copy(defs, resourceDefs)
		sort.Slice(defs, func(i, j int) bool { return defs[i].key < defs[j].key })
		for _, def := range defs {
			fmt.Printf("%-32s %-24s %s\n", def.key, def.name, strings.Join(verbs(def.proto), ", "))
		}
	},
}

func init() {
	for _, def := range resourceDefs {
		rootCmd.AddCommand(resourceCommand(def))
	}
	rootCmd.AddCommand(resourcesCmd)
}
