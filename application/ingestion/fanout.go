package ingestion

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ecovista-backend/application/ports"
	"ecovista-backend/domain"
	apperrors "ecovista-backend/pkg/errors"
)

// Row is one flat input record, one article mention per row
type Row struct {
	PublicationDate string
	Headline        string
	SourceName      string
	Author          string
	URL             string
	CoverageLevel   string
	TagLabel        string
	LocationLabel   string
}

// RowError records why a row was skipped or partially written
type RowError struct {
	Line int
	Err  error
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Result summarizes one ingestion run
type Result struct {
	Processed int
	Skipped   int
	Errors    []RowError
}

// tagEntry pairs a source label with its fixed tag id. Order matters: the
// full mapping is upserted per row, and with "Río" and "Agua" sharing id 2
// the last write wins, so iteration must be deterministic.
type tagEntry struct {
	Label string
	ID    string
}

var tagMapping = []tagEntry{
	{"Basureros", "1"},
	{"Río", "2"},
	{"Agua", "2"},
	{"Plantas de tratamiento", "3"},
}

// TagIDFor resolves a source label to its fixed tag id. Unknown labels get
// the empty placeholder id, matching the historical import behavior.
func TagIDFor(label string) string {
	for _, e := range tagMapping {
		if e.Label == label {
			return e.ID
		}
	}
	return ""
}

// run holds the identity caches for a single ingestion invocation. A fresh
// run is allocated per IngestRows call so identities never leak between
// unrelated batches.
type run struct {
	actorIDs        map[string]string // author name -> actor id
	locationIDs     map[string]string // location label -> location id
	locationCounter int
}

func newRun() *run {
	return &run{
		actorIDs:        make(map[string]string),
		locationIDs:     make(map[string]string),
		locationCounter: 1,
	}
}

func (r *run) actorIDFor(author string) string {
	if id, ok := r.actorIDs[author]; ok {
		return id
	}
	id := uuid.New().String()
	r.actorIDs[author] = id
	return id
}

func (r *run) locationIDFor(label string) string {
	if id, ok := r.locationIDs[label]; ok {
		return id
	}
	id := strconv.Itoa(r.locationCounter)
	r.locationCounter++
	r.locationIDs[label] = id
	return id
}

// Ingestor performs the multi-entity write fan-out for bulk imports
type Ingestor struct {
	articles  ports.ArticleRepository
	actors    ports.ActorRepository
	tags      ports.TagRepository
	locations ports.LocationRepository
	logger    *zap.Logger
}

// NewIngestor creates an Ingestor
func NewIngestor(
	articles ports.ArticleRepository,
	actors ports.ActorRepository,
	tags ports.TagRepository,
	locations ports.LocationRepository,
	logger *zap.Logger,
) *Ingestor {
	return &Ingestor{
		articles:  articles,
		actors:    actors,
		tags:      tags,
		locations: locations,
		logger:    logger,
	}
}

// IngestRows processes rows strictly sequentially. A row that fails
// validation is skipped; a row whose writes fail partway keeps its earlier
// writes (no rollback) and loses the rest. Neither aborts the batch.
func (ing *Ingestor) IngestRows(ctx context.Context, rows []Row) Result {
	st := newRun()
	res := Result{}

	for i, row := range rows {
		line := i + 1
		if err := validateRow(row); err != nil {
			ing.logger.Warn("Skipping invalid row",
				zap.Int("line", line),
				zap.Error(err),
			)
			res.Skipped++
			res.Errors = append(res.Errors, RowError{Line: line, Err: err})
			continue
		}

		if err := ing.ingestRow(ctx, st, row); err != nil {
			ing.logger.Error("Row fan-out aborted",
				zap.Int("line", line),
				zap.String("url", row.URL),
				zap.Error(err),
			)
			res.Errors = append(res.Errors, RowError{Line: line, Err: err})
			continue
		}
		res.Processed++
	}

	ing.logger.Info("Ingestion run finished",
		zap.Int("processed", res.Processed),
		zap.Int("skipped", res.Skipped),
		zap.Int("errors", len(res.Errors)),
	)
	return res
}

func validateRow(row Row) error {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"publicationDate", row.PublicationDate},
		{"headline", row.Headline},
		{"name", row.SourceName},
		{"author", row.Author},
		{"url", row.URL},
		{"coverageLevel", row.CoverageLevel},
		{"tags", row.TagLabel},
		{"location", row.LocationLabel},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return apperrors.NewValidationError("missing required fields: " + strings.Join(missing, ", "))
	}
	return nil
}

// ingestRow performs steps 2-9 of the fan-out for one validated row. The
// first failed write ends the row; earlier writes stay.
func (ing *Ingestor) ingestRow(ctx context.Context, st *run, row Row) error {
	articleID := uuid.New().String()
	tagID := TagIDFor(row.TagLabel)
	actorID := st.actorIDFor(row.Author)
	locationID := st.locationIDFor(row.LocationLabel)

	article := &domain.Article{
		ID:              articleID,
		PublicationDate: row.PublicationDate,
		SourceName:      row.SourceName,
		Paywall:         true,
		Headline:        row.Headline,
		URL:             row.URL,
		Author:          row.Author,
		CoverageLevel:   row.CoverageLevel,
		ActorIDs:        []string{actorID},
		TagIDs:          []string{tagID},
		LocationID:      locationID,
	}
	if err := ing.articles.Put(ctx, article); err != nil {
		return fmt.Errorf("write article: %w", err)
	}

	if err := ing.upsertActor(ctx, actorID, row, tagID, articleID); err != nil {
		return fmt.Errorf("upsert actor: %w", err)
	}

	for _, entry := range tagMapping {
		if err := ing.tags.Put(ctx, &domain.Tag{ID: entry.ID, Name: entry.Label}); err != nil {
			return fmt.Errorf("upsert tag %s: %w", entry.ID, err)
		}
	}

	if err := ing.upsertLocation(ctx, locationID, row, articleID); err != nil {
		return fmt.Errorf("upsert location: %w", err)
	}
	return nil
}

// upsertActor creates the actor on first mention with the article id as the
// sole back-reference, and unions the id in afterwards. The store may hold
// the actor from an earlier batch, so absence is always re-checked against
// the table, never just the run cache.
func (ing *Ingestor) upsertActor(ctx context.Context, actorID string, row Row, tagID, articleID string) error {
	existing, err := ing.actors.GetByID(ctx, actorID)
	if err != nil && !apperrors.IsNotFound(err) {
		return err
	}

	if existing == nil {
		return ing.actors.Create(ctx, &domain.Actor{
			ID:         actorID,
			Name:       row.Author,
			TagID:      tagID,
			ArticleIDs: []string{articleID},
		})
	}
	return ing.actors.AddArticleRefs(ctx, actorID, articleID)
}

// upsertLocation mirrors the original import tool: a new location is first
// written with its name only, then the article reference is merged in a
// second step.
func (ing *Ingestor) upsertLocation(ctx context.Context, locationID string, row Row, articleID string) error {
	existing, err := ing.locations.GetByID(ctx, locationID)
	if err != nil && !apperrors.IsNotFound(err) {
		return err
	}

	if existing == nil {
		loc := &domain.Location{ID: locationID, Name: row.LocationLabel}
		if err := ing.locations.Create(ctx, loc); err != nil {
			return err
		}
	}
	return ing.locations.AddArticleRefs(ctx, locationID, articleID)
}
