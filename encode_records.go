package teller

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// The record file is tabular: one header row naming the columns, then one
// row per account, semicolon-separated. The statement column holds the
// rendered entries joined by newlines; the csv quoting keeps them in one
// cell.

const recordSeparator = ';'

// Column names, in the canonical persisted order.
const (
	colOwner                = "Owner"
	colIdentifier           = "Identifier"
	colPassword             = "Password"
	colBalance              = "Balance"
	colPerWithdrawalLimit   = "PerWithdrawalLimit"
	colWithdrawalCount      = "WithdrawalCount"
	colWithdrawalCountLimit = "WithdrawalCountLimit"
	colStatement            = "Statement"
	colBranch               = "Branch"
	colAccountNumber        = "AccountNumber"
)

var recordColumns = []string{
	colOwner, colIdentifier, colPassword, colBalance, colPerWithdrawalLimit,
	colWithdrawalCount, colWithdrawalCountLimit, colStatement, colBranch,
	colAccountNumber,
}

// DecodeRecords reads the whole record collection from r.
//
// Decoding is explicit and per-field: a column missing from the header is
// backfilled with its default, but a present value that fails to decode is
// reported as a *RecordCorrupt. In strict mode the first corruption rejects
// the whole collection; in tolerant mode the field falls back to its
// default and decoding continues, returning the collection along with the
// corruptions joined into one error.
func DecodeRecords(r io.Reader, strict bool) ([]Account, error) {
	cr := csv.NewReader(r)
	cr.Comma = recordSeparator
	cr.FieldsPerRecord = -1 // columns are resolved by header name

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("could not read record file: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	// Resolve the column layout from the header row.
	index := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		index[strings.TrimSpace(name)] = i
	}
	field := func(row []string, name string) (string, bool) {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return "", false
		}
		return row[i], true
	}

	var records []Account
	var corruptions error
	for n, row := range rows[1:] {
		a := NewAccount("", "", "")
		corrupt := func(name, value string, err error) error {
			return &RecordCorrupt{Row: n + 1, Field: name, Value: value, Err: err}
		}

		if v, ok := field(row, colOwner); ok {
			a.Owner = v
		}
		if v, ok := field(row, colIdentifier); ok {
			a.Identifier = NormalizeIdentifier(v)
		}
		if v, ok := field(row, colPassword); ok {
			a.Password = strings.TrimSpace(v)
		}
		if v, ok := field(row, colBranch); ok && v != "" {
			a.Branch = v
		}
		if v, ok := field(row, colAccountNumber); ok {
			a.AccountNumber = strings.TrimSpace(v)
		}
		if v, ok := field(row, colStatement); ok && v != "" {
			for _, line := range strings.Split(v, "\n") {
				a.Statement = append(a.Statement, ParseEntry(line))
			}
		}

		if v, ok := field(row, colBalance); ok && v != "" {
			if d, err := decimal.NewFromString(strings.TrimSpace(v)); err == nil {
				a.Balance = M(d, DefaultCurrency)
			} else if strict {
				return nil, corrupt(colBalance, v, err)
			} else {
				a.Balance = BRL(0)
				corruptions = errors.Join(corruptions, corrupt(colBalance, v, err))
			}
		}
		if v, ok := field(row, colPerWithdrawalLimit); ok && v != "" {
			if d, err := decimal.NewFromString(strings.TrimSpace(v)); err == nil {
				a.PerWithdrawalLimit = M(d, DefaultCurrency)
			} else if strict {
				return nil, corrupt(colPerWithdrawalLimit, v, err)
			} else {
				a.PerWithdrawalLimit = DefaultPerWithdrawalLimit()
				corruptions = errors.Join(corruptions, corrupt(colPerWithdrawalLimit, v, err))
			}
		}
		if v, ok := field(row, colWithdrawalCount); ok && v != "" {
			if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				a.WithdrawalCount = i
			} else if strict {
				return nil, corrupt(colWithdrawalCount, v, err)
			} else {
				a.WithdrawalCount = 0
				corruptions = errors.Join(corruptions, corrupt(colWithdrawalCount, v, err))
			}
		}
		if v, ok := field(row, colWithdrawalCountLimit); ok && v != "" {
			if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				a.WithdrawalCountLimit = i
			} else if strict {
				return nil, corrupt(colWithdrawalCountLimit, v, err)
			} else {
				a.WithdrawalCountLimit = DefaultWithdrawalCountLimit
				corruptions = errors.Join(corruptions, corrupt(colWithdrawalCountLimit, v, err))
			}
		}

		records = append(records, a)
	}
	return records, corruptions
}

// EncodeRecords writes the whole record collection to w in the canonical
// column order, header row first.
func EncodeRecords(w io.Writer, records []Account) error {
	cw := csv.NewWriter(w)
	cw.Comma = recordSeparator

	if err := cw.Write(recordColumns); err != nil {
		return fmt.Errorf("could not write record header: %w", err)
	}
	for i := range records {
		a := &records[i]
		lines := make([]string, len(a.Statement))
		for j, e := range a.Statement {
			lines[j] = e.String()
		}
		row := []string{
			a.Owner,
			a.Identifier,
			a.Password,
			a.Balance.Fixed(),
			a.PerWithdrawalLimit.Fixed(),
			strconv.Itoa(a.WithdrawalCount),
			strconv.Itoa(a.WithdrawalCountLimit),
			strings.Join(lines, "\n"),
			a.Branch,
			a.AccountNumber,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("could not write record %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
