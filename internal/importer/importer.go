package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/metadata-tools/rdfsync/internal/itemlog"
	"github.com/metadata-tools/rdfsync/pkg/model"
	"github.com/metadata-tools/rdfsync/pkg/rdf"
	"github.com/metadata-tools/rdfsync/pkg/sync"
)

// Reserved column names in the import file
const (
	ColumnURI   = "URI"
	ColumnIndex = "INDEX"
)

// Repository is the external collaborator holding the linked-data resources
type Repository interface {
	FetchGraph(ctx context.Context, uri string) (*rdf.Graph, error)
	SubmitPatch(ctx context.Context, uri, update string) error
}

// CompletionLog records resolved items across runs
type CompletionLog interface {
	Completed(uri string) (bool, error)
	Record(entry itemlog.Entry) error
}

// Options controls one import run
type Options struct {
	// Model names the registered model descriptor to import against
	Model string

	// Limit truncates processing after this many rows; 0 means no limit
	Limit int

	// Resume skips rows whose URI already resolved in an earlier run
	Resume bool
}

// Result reports the aggregate counts of a run
type Result struct {
	RunID     string
	Total     int
	Updated   int
	Unchanged int
	Failed    int
	Skipped   int
}

// Importer drives row-by-row reconciliation of an import file against the
// repository. Rows are processed sequentially; each row's state is owned by
// the importer for the row's lifetime and discarded before the next row.
type Importer struct {
	repo   Repository
	cl     CompletionLog // may be nil
	logger *slog.Logger
}

// New creates an importer. The completion log is optional.
func New(repo Repository, cl CompletionLog, logger *slog.Logger) *Importer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Importer{
		repo:   repo,
		cl:     cl,
		logger: logger,
	}
}

// Run reads rows from r and reconciles each against the repository
func (im *Importer) Run(ctx context.Context, r io.Reader, opts Options) (*Result, error) {
	descriptor, err := model.Lookup(opts.Model)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}

	columns, err := mapColumns(header, descriptor)
	if err != nil {
		return nil, err
	}

	result := &Result{RunID: uuid.NewString()}
	logger := im.logger.With(slog.String("run_id", result.RunID), slog.String("model", opts.Model))
	logger.Info("Starting import")

	rowNumber := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", rowNumber+1, err)
		}

		rowNumber++
		if opts.Limit > 0 && rowNumber > opts.Limit {
			logger.Info("Stopping after limit", slog.Int("limit", opts.Limit))
			break
		}

		row := make(map[string]string, len(header))
		for name, idx := range columns {
			row[name] = record[idx]
		}
		uri := row[ColumnURI]

		if opts.Resume && im.cl != nil {
			done, err := im.cl.Completed(uri)
			if err != nil {
				return nil, fmt.Errorf("failed to check completion log: %w", err)
			}
			if done {
				logger.Debug("Skipping completed item", slog.String("uri", uri))
				result.Skipped++
				continue
			}
		}

		status, err := im.processRow(ctx, descriptor, row, uri)
		result.Total++
		switch {
		case err != nil:
			logger.Error("Row failed",
				slog.Int("row", rowNumber),
				slog.String("uri", uri),
				slog.String("error", err.Error()))
			result.Failed++
			im.record(logger, itemlog.Entry{
				URI:       uri,
				Status:    itemlog.StatusFailed,
				Timestamp: time.Now().UTC(),
				Detail:    err.Error(),
			})
		case status == itemlog.StatusUpdated:
			result.Updated++
			im.record(logger, itemlog.Entry{URI: uri, Status: status, Timestamp: time.Now().UTC()})
		default:
			logger.Info("No changes found", slog.String("uri", uri))
			result.Unchanged++
			im.record(logger, itemlog.Entry{URI: uri, Status: status, Timestamp: time.Now().UTC()})
		}
	}

	logger.Info("Import finished",
		slog.Int("total", result.Total),
		slog.Int("updated", result.Updated),
		slog.Int("unchanged", result.Unchanged),
		slog.Int("failed", result.Failed),
		slog.Int("skipped", result.Skipped))

	return result, nil
}

// processRow runs one row through fetch, index, diff, and update.
// Failures abort only this row. In-memory mutations are applied only after
// the row's update has been accepted (or the row turned out unchanged).
func (im *Importer) processRow(ctx context.Context, descriptor *model.Descriptor, row map[string]string, uri string) (itemlog.Status, error) {
	graph, err := im.repo.FetchGraph(ctx, uri)
	if err != nil {
		return itemlog.StatusFailed, err
	}

	resource := descriptor.FromGraph(graph, rdf.NewNamedNode(uri))

	index, err := sync.BuildIndex(row[ColumnIndex], resource)
	if err != nil {
		return itemlog.StatusFailed, err
	}

	differ := sync.NewDiffer(resource, index)
	for _, field := range descriptor.Fields {
		if err := differ.DiffField(field, row[field.Header]); err != nil {
			return itemlog.StatusFailed, err
		}
	}

	delta := differ.Delta()
	delta.Cancel()

	if delta.Empty() {
		differ.Plan().Apply()
		return itemlog.StatusUnchanged, nil
	}

	update := sync.BuildUpdate(delta)
	im.logger.Debug("Sending update", slog.String("uri", uri), slog.String("update", update))
	if err := im.repo.SubmitPatch(ctx, uri, update); err != nil {
		return itemlog.StatusFailed, err
	}

	differ.Plan().Apply()
	return itemlog.StatusUpdated, nil
}

// record writes to the completion log when one is configured
func (im *Importer) record(logger *slog.Logger, entry itemlog.Entry) {
	if im.cl == nil {
		return
	}
	if err := im.cl.Record(entry); err != nil {
		logger.Warn("Failed to record item", slog.String("uri", entry.URI), slog.String("error", err.Error()))
	}
}

// mapColumns resolves the header row into column positions, requiring the
// reserved columns and every mapped field header
func mapColumns(header []string, descriptor *model.Descriptor) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}

	if _, ok := columns[ColumnURI]; !ok {
		return nil, fmt.Errorf("import file is missing required column %q", ColumnURI)
	}
	if _, ok := columns[ColumnIndex]; !ok {
		return nil, fmt.Errorf("import file is missing required column %q", ColumnIndex)
	}
	for _, field := range descriptor.Fields {
		if _, ok := columns[field.Header]; !ok {
			return nil, fmt.Errorf("import file is missing mapped column %q", field.Header)
		}
	}

	return columns, nil
}
