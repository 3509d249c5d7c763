package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	pjson "github.com/pinpt/go-common/v10/json"
	"github.com/pinpt/lexoffice/lexoffice"
	"github.com/pinpt/lexoffice/sdk"
)

// parseFilters turns repeated key=value flags into filters
func parseFilters(vals []string) (lexoffice.Filters, error) {
	filters := make(lexoffice.Filters)
	for _, val := range vals {
		tok := strings.SplitN(val, "=", 2)
		if len(tok) != 2 || tok[0] == "" {
			return nil, fmt.Errorf("invalid filter %q, expected key=value", val)
		}
		filters[tok[0]] = tok[1]
	}
	return filters, nil
}

// readPayload decodes the JSON document in fn, "-" reads stdin
func readPayload(fn string, stdin io.Reader) (interface{}, error) {
	var r io.Reader
	switch fn {
	case "":
		return nil, fmt.Errorf("missing payload, use --file")
	case "-":
		r = stdin
	default:
		of, err := os.Open(fn)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", fn, err)
		}
		defer of.Close()
		r = of
	}
	var payload interface{}
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return nil, fmt.Errorf("error decoding payload: %w", err)
	}
	return payload, nil
}

func formatResult(r sdk.Result, pretty bool) (string, error) {
	if !pretty {
		return pjson.Stringify(r), nil
	}
	buf, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

func statusLine(r sdk.Result) string {
	if r.Success {
		return color.GreenString("success")
	}
	if r.Status == nil {
		return color.RedString("failed: %s", r.Message())
	}
	return color.RedString("failed (%d): %s", *r.Status, r.Message())
}

// writeResult prints r and returns the process exit code
func writeResult(stdout, stderr io.Writer, r sdk.Result, pretty bool) int {
	fmt.Fprintln(stderr, statusLine(r))
	out, err := formatResult(r, pretty)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	fmt.Fprintln(stdout, out)
	if !r.Success {
		return 1
	}
	return 0
}

// writeDownload writes the raw bytes of a successful download to fn or stdout
func writeDownload(stdout, stderr io.Writer, r sdk.Result, fn string) int {
	if !r.Success {
		return writeResult(stdout, stderr, r, false)
	}
	if fn == "" || fn == "-" {
		stdout.Write(r.Bytes())
		return 0
	}
	if err := ioutil.WriteFile(fn, r.Bytes(), 0644); err != nil {
		fmt.Fprintln(stderr, color.RedString("error writing %s: %s", fn, err))
		return 1
	}
	fmt.Fprintln(stderr, statusLine(r), fn)
	return 0
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func writeStats(stderr io.Writer, stats sdk.Stats) {
	if stats == nil {
		return
	}
	val, err := stats.String()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return
	}
	fmt.Fprintln(stderr, color.CyanString("stats: %s", val))
}
