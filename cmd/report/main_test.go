package main

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payment-insights-go/internal/config"
	"payment-insights-go/internal/surveytest"
)

type failingCloser struct {
	bytes.Buffer
}

func (failingCloser) Close() error { return errors.New("disk full") }

func TestParseFlagsHelpNeedsNoConfig(t *testing.T) {
	t.Setenv("CACHE_TTL", "soon")
	var stderr bytes.Buffer
	_, err := parseFlags([]string{"-h"}, &stderr)
	assert.ErrorIs(t, err, flag.ErrHelp)
	assert.Contains(t, stderr.String(), "$DATASET_PATH")
}

func TestParseFlagsRejectsUnknownFlag(t *testing.T) {
	_, err := parseFlags([]string{"-nope"}, io.Discard)
	assert.Error(t, err)
}

func TestFillFromKeepsExplicitFlags(t *testing.T) {
	cfg := &config.Config{DatasetPath: "env.csv", DatasetURL: "https://example.com/x.csv", CatalogPath: "env.yaml"}

	o, err := parseFlags([]string{"-input", "flag.csv"}, io.Discard)
	require.NoError(t, err)
	o.fillFrom(cfg)
	assert.Equal(t, "flag.csv", o.input)
	assert.Equal(t, "https://example.com/x.csv", o.url)
	assert.Equal(t, "env.yaml", o.catalog)
	assert.Equal(t, "markdown", o.format)
}

func TestWriteFileReportsCloseError(t *testing.T) {
	orig := create
	t.Cleanup(func() { create = orig })
	create = func(string) (io.WriteCloser, error) { return &failingCloser{}, nil }

	err := writeFile("report.md", func(w io.Writer) error {
		_, err := io.WriteString(w, "# report\n")
		return err
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "close report.md")
	assert.Contains(t, err.Error(), "disk full")
}

func TestWriteFileKeepsRenderError(t *testing.T) {
	orig := create
	t.Cleanup(func() { create = orig })
	create = func(string) (io.WriteCloser, error) { return &failingCloser{}, nil }

	err := writeFile("report.md", func(io.Writer) error { return errors.New("render failed") })
	assert.EqualError(t, err, "render failed")
}

func TestRunWritesOutputFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "survey.csv")
	require.NoError(t, os.WriteFile(input, surveytest.CSV(surveytest.Sample()), 0o644))
	out := filepath.Join(dir, "report.md")

	o := options{platform: "ALL", frequency: "ALL", format: "md", input: input, out: out}
	require.NoError(t, run(&config.Config{}, o))

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "# Digital Payment Platforms Survey\n"))
}

func TestRunRejectsUnknownFormat(t *testing.T) {
	o := options{format: "pdf", input: "missing.csv"}
	err := run(&config.Config{}, o)
	assert.ErrorContains(t, err, `unknown format "pdf"`)
}
