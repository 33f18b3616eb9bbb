package loader

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/umalmyha/churn/internal/model"
	"github.com/umalmyha/churn/internal/repository"
)

const (
	DefaultSplitAt       = 353
	DefaultBatchSize     = 100
	DefaultProgressEvery = 50
	firstDataset         = 1
	secondDataset        = 2
)

// Options tunes bulk upload. SplitAt is 1-based data row starting second dataset.
type Options struct {
	SplitAt       int
	BatchSize     int
	ProgressEvery int
	SkipInvalid   bool
}

func (o Options) withDefaults() Options {
	if o.SplitAt <= 0 {
		o.SplitAt = DefaultSplitAt
	}

	if o.BatchSize <= 0 {
		o.BatchSize = DefaultBatchSize
	}

	if o.ProgressEvery <= 0 {
		o.ProgressEvery = DefaultProgressEvery
	}
	return o
}

// Report summarizes finished upload
type Report struct {
	Read    int
	Stored  int64
	Skipped int
}

// RowErr reports malformed dataset row
type RowErr struct {
	Row int
	err error
}

func (e *RowErr) Error() string {
	return fmt.Sprintf("row %d is invalid - %s", e.Row, e.err.Error())
}

func (e *RowErr) Unwrap() error {
	return e.err
}

// Load reads dataset from r and writes customers to sink in batches.
// Rows get dataset id 1 until SplitAt and 2 from SplitAt onwards. Upload is not idempotent.
func Load(ctx context.Context, r io.Reader, sink repository.CustomerImporter, opts Options, logger logrus.FieldLogger) (*Report, error) {
	opts = opts.withDefaults()

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	columns, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("dataset is empty")
		}
		return nil, fmt.Errorf("failed to read dataset header - %w", err)
	}

	h, err := newHeader(columns)
	if err != nil {
		return nil, err
	}

	report := &Report{}
	batch := make([]*model.ImportedCustomer, 0, opts.BatchSize)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}

		stored, err := sink.ImportBatch(ctx, batch)
		if err != nil {
			return fmt.Errorf("failed to store batch ending at row %d - %w", report.Read, err)
		}
		report.Stored += stored
		batch = make([]*model.ImportedCustomer, 0, opts.BatchSize)
		return nil
	}

	datasetID := firstDataset
	for i := 1; ; i++ {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		var parseErr *csv.ParseError
		if err != nil && !errors.As(err, &parseErr) {
			return report, fmt.Errorf("failed to read dataset - %w", err)
		}

		if i == opts.SplitAt {
			datasetID = secondDataset
		}
		report.Read = i

		var c *model.ImportedCustomer
		if err == nil {
			c, err = h.normalize(row)
		}

		if err != nil {
			rowErr := &RowErr{Row: i, err: err}
			if !opts.SkipInvalid {
				return report, rowErr
			}

			report.Skipped++
			logger.WithField("row", i).Warnf("skipping invalid row - %s", err.Error())
			continue
		}

		c.DatasetID = datasetID
		batch = append(batch, c)

		if len(batch) == opts.BatchSize {
			if err := flush(); err != nil {
				return report, err
			}
		}

		if i%opts.ProgressEvery == 0 {
			logger.Infof("processed %d records...", i)
		}
	}

	if err := flush(); err != nil {
		return report, err
	}

	logger.WithFields(logrus.Fields{
		"read":    report.Read,
		"stored":  report.Stored,
		"skipped": report.Skipped,
	}).Info("upload complete")
	return report, nil
}
