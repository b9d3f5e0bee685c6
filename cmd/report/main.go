// Command report prints the dashboard for one selection as markdown or JSON.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"

	"payment-insights-go/internal/config"
	"payment-insights-go/internal/export"
	"payment-insights-go/internal/filter"
	"payment-insights-go/internal/processor"
	"payment-insights-go/internal/report"
	"payment-insights-go/internal/source"
	"payment-insights-go/internal/types"
)

type options struct {
	platform  string
	frequency string
	format    string
	input     string
	url       string
	catalog   string
	out       string
}

func main() {
	_ = godotenv.Load()

	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	opts.fillFrom(cfg)

	if err := run(cfg, opts); err != nil {
		fmt.Fprintln(os.Stderr, "report:", err)
		os.Exit(1)
	}
}

// parseFlags reads the command line without touching the environment, so
// -h works even when the configuration is broken.
func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("report", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.platform, "platform", filter.All, "platform selector")
	fs.StringVar(&o.frequency, "frequency", filter.All, "frequency selector")
	fs.StringVar(&o.format, "format", "markdown", "output format: markdown, json, csv or xlsx")
	fs.StringVar(&o.input, "input", "", "survey export (.csv or .xlsx) (default $DATASET_PATH)")
	fs.StringVar(&o.url, "url", "", "download the export from this URL instead (default $DATASET_URL)")
	fs.StringVar(&o.catalog, "catalog", "", "catalog YAML (default $CATALOG_PATH)")
	fs.StringVar(&o.out, "out", "", "write to this file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return o, nil
}

// fillFrom applies environment defaults to flags left empty.
func (o *options) fillFrom(cfg *config.Config) {
	if o.input == "" {
		o.input = cfg.DatasetPath
	}
	if o.url == "" {
		o.url = cfg.DatasetURL
	}
	if o.catalog == "" {
		o.catalog = cfg.CatalogPath
	}
}

func run(cfg *config.Config, o options) error {
	catalog, err := config.LoadCatalog(o.catalog)
	if err != nil {
		return err
	}
	sel := filter.Selection{Platform: o.platform, Frequency: o.frequency}
	if err := sel.Validate(); err != nil {
		return err
	}
	render, err := renderer(o.format)
	if err != nil {
		return err
	}
	table, err := source.Open(context.Background(), o.input, o.url, cfg.DatasetFetchTimeout)
	if err != nil {
		return err
	}
	d := processor.Build(table, sel, catalog)

	if o.out == "" {
		return render(os.Stdout, d)
	}
	return writeFile(o.out, func(w io.Writer) error { return render(w, d) })
}

func renderer(format string) (func(io.Writer, types.Dashboard) error, error) {
	switch format {
	case "markdown", "md":
		return report.WriteMarkdown, nil
	case "json":
		return func(w io.Writer, d types.Dashboard) error {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(d)
		}, nil
	case "csv":
		return export.WriteDashboardCSV, nil
	case "xlsx":
		return export.WriteDashboardXLSX, nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// create opens the -out file; replaced in tests.
var create = func(name string) (io.WriteCloser, error) {
	return os.Create(name)
}

// writeFile renders into name. A failed close means the file may be
// incomplete, so it is reported like a write error.
func writeFile(name string, render func(io.Writer) error) (err error) {
	f, err := create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", name, cerr)
		}
	}()
	return render(f)
}
