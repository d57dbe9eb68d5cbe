package report

import (
	"bytes"
	"context"
	"io"

	"golang.org/x/sync/semaphore"

	"synthml/internal"
	apperrors "synthml/internal/errors"
	"synthml/internal/testkit"
)

// DefaultConcurrency bounds simultaneous workbook builds when no limit is
// configured.
const DefaultConcurrency = 4

// Observer receives export outcomes. *metrics.Recorder satisfies it.
type Observer interface {
	ReportExported(result string)
	ReportStarted()
	ReportFinished()
}

// Result labels passed to Observer.ReportExported.
const (
	resultOK       = "ok"
	resultError    = "error"
	resultRejected = "rejected"
)

// Exporter builds data-quality workbooks with a weighted semaphore capping
// how many run at once.
type Exporter struct {
	kit      *testkit.TestKit
	sem      *semaphore.Weighted
	observer Observer
	logger   *internal.Logger
}

// NewExporter creates an exporter. observer may be nil.
func NewExporter(kit *testkit.TestKit, concurrency int64, observer Observer, logger *internal.Logger) *Exporter {
	if concurrency < 1 {
		concurrency = DefaultConcurrency
	}
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Exporter{
		kit:      kit,
		sem:      semaphore.NewWeighted(concurrency),
		observer: observer,
		logger:   logger.With("component", "report"),
	}
}

// Export waits for a build slot, then writes the workbook to w. If ctx ends
// while waiting the error carries the UNAVAILABLE code.
func (e *Exporter) Export(ctx context.Context, w io.Writer) error {
	if err := e.sem.Acquire(ctx, 1); err != nil {
		e.record(resultRejected)
		e.logger.Warn("report export rejected: %v", err)
		return apperrors.Unavailable("report export capacity exhausted", err)
	}
	defer e.sem.Release(1)

	if e.observer != nil {
		e.observer.ReportStarted()
		defer e.observer.ReportFinished()
	}

	f, err := BuildDataQualityReport(e.kit.DataQuality())
	if err != nil {
		e.record(resultError)
		return apperrors.Wrap(err, "build data quality report")
	}
	defer f.Close()

	// Encode fully before touching w.
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		e.record(resultError)
		return apperrors.Wrap(err, "encode data quality report")
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		e.record(resultError)
		return apperrors.Wrap(err, "write data quality report")
	}

	e.record(resultOK)
	e.logger.Debug("report exported (%d bytes)", buf.Len())
	return nil
}

func (e *Exporter) record(result string) {
	if e.observer != nil {
		e.observer.ReportExported(result)
	}
}
