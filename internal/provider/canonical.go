// Package provider defines the shapes every data provider normalizes into.
// Providers hand back tabular results (a header row plus value rows); the
// roster and career pipelines read them through Row's coercing accessors so
// malformed provider values never surface as errors.
package provider

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// Failure reasons. Callers distinguish them with errors.Is.
var (
	// ErrNoData means the provider answered but had nothing for the query.
	ErrNoData = errors.New("no data")
	// ErrUnavailable means the provider could not be reached or answered
	// with something unusable (non-200, undecodable, breaker open).
	ErrUnavailable = errors.New("provider unavailable")
	// ErrInvalidInput means the query was rejected before any provider call.
	ErrInvalidInput = errors.New("invalid input")
)

// Unavailable wraps err so that errors.Is(err, ErrUnavailable) holds.
func Unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, ErrUnavailable, err)
}

// NoData returns an ErrNoData error annotated with the query.
func NoData(op string) error {
	return fmt.Errorf("%s: %w", op, ErrNoData)
}

// --------------------------------------------------------------------------
// Tables
// --------------------------------------------------------------------------

// Table is one tabular provider result set.
type Table struct {
	Name    string
	Headers []string
	Rows    [][]interface{}

	index map[string]int
}

// NewTable builds a table and its header index.
func NewTable(name string, headers []string, rows [][]interface{}) *Table {
	t := &Table{Name: name, Headers: headers, Rows: rows}
	t.buildIndex()
	return t
}

func (t *Table) buildIndex() {
	t.index = make(map[string]int, len(t.Headers))
	for i, h := range t.Headers {
		if _, dup := t.index[h]; !dup {
			t.index[h] = i
		}
	}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Has reports whether the table carries a column.
func (t *Table) Has(column string) bool {
	if t.index == nil {
		t.buildIndex()
	}
	_, ok := t.index[column]
	return ok
}

// Row returns a view of row i.
func (t *Table) Row(i int) Row {
	if t.index == nil {
		t.buildIndex()
	}
	return Row{table: t, values: t.Rows[i]}
}

// Each calls fn for every row in order.
func (t *Table) Each(fn func(Row)) {
	for i := 0; i < t.Len(); i++ {
		fn(t.Row(i))
	}
}

// Row is a header-indexed view over one table row.
type Row struct {
	table  *Table
	values []interface{}
}

// Get returns the raw value of a column, or nil when the column is missing
// or the row is short.
func (r Row) Get(column string) interface{} {
	i, ok := r.table.index[column]
	if !ok || i >= len(r.values) {
		return nil
	}
	return r.values[i]
}

// First returns the first column among columns that holds a usable string.
func (r Row) First(columns ...string) string {
	for _, c := range columns {
		if s := String(r.Get(c), ""); s != "" {
			return s
		}
	}
	return ""
}

func (r Row) Float(column string, decimals int) float64 { return Float(r.Get(column), decimals) }
func (r Row) Int(column string) int                     { return Int(r.Get(column)) }
func (r Row) String(column, def string) string          { return String(r.Get(column), def) }

// ID reads a provider identifier column. Numeric IDs are rendered without a
// fractional part ("201939", never "201939.0").
func (r Row) ID(column string) PlayerID {
	v := r.Get(column)
	if f, ok := v.(float64); ok {
		return PlayerID(strconv.FormatInt(int64(f), 10))
	}
	return PlayerID(String(v, ""))
}

// --------------------------------------------------------------------------
// Player identifiers
// --------------------------------------------------------------------------

// PlayerID is a provider-assigned player key. Basketball IDs are integers,
// football IDs are gsis strings ("00-0033873"). The JSON form keeps that
// distinction: all-digit IDs encode as numbers, everything else as strings.
type PlayerID string

func (id PlayerID) String() string { return string(id) }

// Int returns the numeric form of the ID, or 0 if it is not numeric.
func (id PlayerID) Int() int {
	n, _ := strconv.Atoi(string(id))
	return n
}

func (id PlayerID) MarshalJSON() ([]byte, error) {
	if isDigits(string(id)) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id *PlayerID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = PlayerID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("player id: %w", err)
	}
	if i, err := n.Int64(); err == nil {
		*id = PlayerID(strconv.FormatInt(i, 10))
		return nil
	}
	*id = PlayerID(n.String())
	return nil
}

func isDigits(s string) bool {
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
