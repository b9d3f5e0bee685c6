package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payment-insights-go/internal/surveytest"
	"payment-insights-go/internal/types"
)

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeTemp(t, "survey.csv", surveytest.CSV(surveytest.Sample()))

	table, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, table.Len())
	assert.Equal(t, path, table.Source())
	assert.Len(t, table.Fingerprint(), 12)

	first := table.At(0)
	assert.Equal(t, "Easypaisa;JazzCash", first.PlatformsUsed)
	assert.Equal(t, "Very satisfied", first.Satisfaction)
	assert.Equal(t, "Easypaisa Wallet", table.At(3).PrimaryWallet)
}

func TestLoadXLSX(t *testing.T) {
	raw, err := surveytest.XLSX(surveytest.Sample())
	require.NoError(t, err)
	path := writeTemp(t, "survey.xlsx", raw)

	table, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, table.Len())
	assert.Equal(t, "JazzCash App", table.At(4).PrimaryWallet)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadColumnMismatch(t *testing.T) {
	raw := []byte("Timestamp,Username,Platforms\n2024,a,Easypaisa\n")
	_, err := LoadBytes("short.csv", raw)
	assert.ErrorIs(t, err, ErrSchemaMismatch)
}

func TestLoadEmptyFile(t *testing.T) {
	_, err := LoadBytes("empty.csv", nil)
	assert.ErrorIs(t, err, ErrNoRows)
}

func TestLoadHeaderOnly(t *testing.T) {
	table, err := LoadBytes("header.csv", surveytest.CSV(nil))
	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
}

func TestLoadStripsBOM(t *testing.T) {
	raw := append([]byte("\xef\xbb\xbf"), surveytest.CSV(surveytest.Sample()[:1])...)
	table, err := LoadBytes("bom.csv", raw)
	require.NoError(t, err)
	assert.Equal(t, "2024/05/01 10:00:00", table.At(0).Timestamp)
}

func TestFingerprintStable(t *testing.T) {
	raw := surveytest.CSV(surveytest.Sample())
	a, err := LoadBytes("a.csv", raw)
	require.NoError(t, err)
	b, err := LoadBytes("b.csv", raw)
	require.NoError(t, err)
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.True(t, strings.HasPrefix(Fingerprint(raw), a.Fingerprint()))
	assert.NotEqual(t, a.Fingerprint(), Fingerprint([]byte("other")))
	assert.Equal(t, types.FieldCount, len(surveytest.Header))
}
