// Package csvio implements the external collaborators of the ledger: the
// CSV record source and the CSV snapshot sink.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rvcosta/txledger/internal/domain"
)

// RecordError describes a single malformed input row. The stream itself is
// still readable; callers may skip the row and keep going.
type RecordError struct {
	Line int
	Err  error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record on line %d: %v", e.Line, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// Reader yields well-typed events from a CSV stream with the header
// "type, client, tx, amount". The amount column may be omitted or empty on
// dispute-family rows, and fields are whitespace-trimmed.
type Reader struct {
	csv        *csv.Reader
	line       int
	skipHeader bool
}

// NewReader creates a Reader over r. The first row is treated as a header
// and discarded.
func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // dispute-family rows may omit the amount column
	cr.TrimLeadingSpace = true
	return &Reader{csv: cr, skipHeader: true}
}

// Next returns the next event. It returns io.EOF when the stream is
// exhausted and a *RecordError for rows that cannot be converted; the
// Reader stays usable after a *RecordError.
func (r *Reader) Next() (domain.Event, error) {
	for {
		row, err := r.csv.Read()
		if errors.Is(err, io.EOF) {
			return domain.Event{}, io.EOF
		}
		r.line++
		if err != nil {
			return domain.Event{}, &RecordError{Line: r.line, Err: err}
		}
		if r.skipHeader {
			r.skipHeader = false
			continue
		}
		return r.parse(row)
	}
}

func (r *Reader) parse(row []string) (domain.Event, error) {
	if len(row) < 3 {
		return domain.Event{}, r.recordErr(fmt.Errorf("want at least 3 fields, got %d", len(row)))
	}

	typ := domain.EventType(strings.TrimSpace(row[0]))
	switch typ {
	case domain.EventDeposit, domain.EventWithdrawal,
		domain.EventDispute, domain.EventResolve, domain.EventChargeback:
	default:
		return domain.Event{}, r.recordErr(fmt.Errorf("unknown type %q", row[0]))
	}

	client, err := strconv.ParseUint(strings.TrimSpace(row[1]), 10, 16)
	if err != nil {
		return domain.Event{}, r.recordErr(fmt.Errorf("client: %w", err))
	}
	tx, err := strconv.ParseUint(strings.TrimSpace(row[2]), 10, 32)
	if err != nil {
		return domain.Event{}, r.recordErr(fmt.Errorf("tx: %w", err))
	}

	e := domain.Event{
		Type:   typ,
		Client: domain.ClientID(client),
		Tx:     domain.TxID(tx),
	}

	if typ.FundMoving() {
		if len(row) < 4 || strings.TrimSpace(row[3]) == "" {
			return domain.Event{}, r.recordErr(fmt.Errorf("%s requires an amount", typ))
		}
		amount, err := domain.ParseAmount(strings.TrimSpace(row[3]))
		if err != nil {
			return domain.Event{}, r.recordErr(fmt.Errorf("amount: %w", err))
		}
		e.Amount = amount
	}

	return e, nil
}

func (r *Reader) recordErr(err error) *RecordError {
	return &RecordError{Line: r.line, Err: err}
}
