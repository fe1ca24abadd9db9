// Package csvintake loads order files into the system. Each record carries
// exactly four comma-separated fields: user name, preferred restaurant,
// alternate restaurant, menu item name. There is no header row.
package csvintake

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"os"

	"grouporders/internal/core/application/usecases/commands"
	"grouporders/internal/pkg/errs"

	"github.com/google/uuid"
)

// fieldsPerRecord is the fixed shape of an intake record.
const fieldsPerRecord = 4

// orderSubmitter processes one intake record.
// Satisfied by commands.SubmitOrderCommandHandler.
type orderSubmitter interface {
	Handle(ctx context.Context, cmd commands.SubmitOrderCommand) error
}

// Summary reports the outcome of one import.
type Summary struct {
	// Submitted counts records that produced an order.
	Submitted int

	// Skipped counts well-formed records whose restaurant or menu item could
	// not be resolved.
	Skipped int

	// Malformed counts records that could not form a submit command: wrong
	// field count, or a blank preferred restaurant or menu item name.
	Malformed int
}

// Loader reads an order file and submits each record through the intake
// command. Resolution failures and malformed records are reported and
// skipped; only storage failures abort the import.
type Loader struct {
	submitter orderSubmitter
	logger    *slog.Logger
}

// NewLoader creates a loader submitting records through the given handler.
func NewLoader(submitter orderSubmitter, logger *slog.Logger) *Loader {
	return &Loader{
		submitter: submitter,
		logger:    logger.With("component", "csv_intake"),
	}
}

// LoadFile opens the file at path and loads it.
func (l *Loader) LoadFile(ctx context.Context, path string) (Summary, error) {
	file, err := os.Open(path)
	if err != nil {
		return Summary{}, err
	}
	defer file.Close()

	return l.Load(ctx, file)
}

// Load reads comma-separated records from r and submits each one.
// Each import gets a batch id so the log lines of one file can be correlated.
func (l *Loader) Load(ctx context.Context, r io.Reader) (Summary, error) {
	logger := l.logger.With("batch_id", uuid.NewString())

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = fieldsPerRecord

	var summary Summary
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				summary.Malformed++
				logger.WarnContext(ctx, "Malformed record skipped",
					"line", parseErr.Line, "error", err)
				continue
			}
			return summary, err
		}

		cmd, err := commands.NewSubmitOrderCommand(record[0], record[1], record[2], record[3])
		if err != nil {
			summary.Malformed++
			logger.WarnContext(ctx, "Invalid record skipped", "error", err)
			continue
		}

		err = l.submitter.Handle(ctx, cmd)
		switch {
		case err == nil:
			summary.Submitted++
		case errors.Is(err, errs.ErrObjectNotFound):
			summary.Skipped++
			logger.WarnContext(ctx, "Record skipped, name could not be resolved", "error", err)
		default:
			return summary, err
		}
	}

	logger.InfoContext(ctx, "Import finished",
		"submitted", summary.Submitted,
		"skipped", summary.Skipped,
		"malformed", summary.Malformed,
	)
	return summary, nil
}
