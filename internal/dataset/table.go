package dataset

import (
	"crypto/sha256"
	"encoding/hex"

	"payment-insights-go/internal/types"
)

// Table is an immutable, ordered set of survey responses. Filtering builds a
// new Table; nothing mutates one after construction.
type Table struct {
	source      string
	fingerprint string
	rows        []types.Response
}

// NewTable copies rows into a new Table.
func NewTable(source string, rows []types.Response) *Table {
	cp := make([]types.Response, len(rows))
	copy(cp, rows)
	return &Table{source: source, rows: cp}
}

// Derive builds a view of t holding the rows that keep returns true for.
// The view inherits the source and fingerprint of t.
func (t *Table) Derive(keep func(types.Response) bool) *Table {
	out := &Table{source: t.Source(), fingerprint: t.Fingerprint()}
	for _, r := range t.all() {
		if keep(r) {
			out.rows = append(out.rows, r)
		}
	}
	return out
}

// Len is the number of rows. A nil table is empty.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

// At returns row i.
func (t *Table) At(i int) types.Response {
	return t.rows[i]
}

// Rows returns a copy of the rows.
func (t *Table) Rows() []types.Response {
	all := t.all()
	cp := make([]types.Response, len(all))
	copy(cp, all)
	return cp
}

// Each visits the rows in order.
func (t *Table) Each(fn func(int, types.Response)) {
	for i, r := range t.all() {
		fn(i, r)
	}
}

// Values returns the value of f for every row, blanks included.
func (t *Table) Values(f types.Field) []string {
	all := t.all()
	out := make([]string, len(all))
	for i, r := range all {
		out[i] = r.Value(f)
	}
	return out
}

func (t *Table) Source() string {
	if t == nil {
		return ""
	}
	return t.source
}

// Fingerprint identifies the raw bytes the table was loaded from.
func (t *Table) Fingerprint() string {
	if t == nil {
		return ""
	}
	return t.fingerprint
}

func (t *Table) all() []types.Response {
	if t == nil {
		return nil
	}
	return t.rows
}

// Fingerprint hashes raw dataset bytes into a short, stable id.
func Fingerprint(raw []byte) string {
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])[:12]
}
