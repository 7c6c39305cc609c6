// Package service orchestrates a full run: record source → ledger engine.
package service

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rvcosta/txledger/internal/csvio"
	"github.com/rvcosta/txledger/internal/domain"
	"github.com/rvcosta/txledger/internal/engine"
)

// RecordSource yields events in arrival order. Implementations return
// io.EOF at end of stream and *csvio.RecordError for rows that are
// malformed but skippable.
type RecordSource interface {
	Next() (domain.Event, error)
}

// Summary reports how a run disposed of its input records.
type Summary struct {
	Applied   int64
	Rejected  int64
	Malformed int64
}

// Processor drives the ledger engine over a record source.
type Processor struct {
	ledger *engine.Ledger
	log    *slog.Logger
	strict bool
}

// NewProcessor creates a Processor. With strict set, the first malformed
// record aborts the run instead of being skipped.
func NewProcessor(ledger *engine.Ledger, logger *slog.Logger, strict bool) *Processor {
	return &Processor{
		ledger: ledger,
		log:    logger,
		strict: strict,
	}
}

// Run folds the record source into the ledger, one event at a time, in
// arrival order. Engine rejections never abort the run; malformed rows are
// skipped and counted unless strict mode is on. There is no cancellation
// at this layer: the run either completes the input or fails on a source
// error.
func (p *Processor) Run(src RecordSource) (Summary, error) {
	var sum Summary
	for {
		event, err := src.Next()
		if errors.Is(err, io.EOF) {
			return sum, nil
		}
		var recErr *csvio.RecordError
		if errors.As(err, &recErr) {
			sum.Malformed++
			if p.strict {
				return sum, fmt.Errorf("strict mode: %w", recErr)
			}
			p.log.Warn("skipping malformed record",
				slog.Int("line", recErr.Line),
				slog.String("error", recErr.Err.Error()),
			)
			continue
		}
		if err != nil {
			return sum, err
		}

		if err := p.ledger.Apply(event); err != nil {
			sum.Rejected++
			continue
		}
		sum.Applied++
	}
}
