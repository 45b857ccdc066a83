package migrate

import (
	"context"
	"log/slog"
	"strings"

	"roomie/internal/infra/firestore"

	"github.com/google/uuid"
)

// idNamespace seeds the deterministic UUIDs derived from Firestore document
// IDs. It must never change once a migration has run, or re-runs stop being
// idempotent.
var idNamespace = uuid.MustParse("8d7a6f7e-1f48-4c85-9e4a-2b9c1c6a5d0f")

// Collection pairs a Firestore collection with its destination table.
type Collection struct {
	Name  string
	Table string
}

// Collections lists every migrated collection in dependency order: households
// first, then everything that references them.
var Collections = []Collection{
	{Name: "households", Table: "households"},
	{Name: "rentPayments", Table: "rent_payments"},
	{Name: "bills", Table: "bills"},
	{Name: "chores", Table: "chores"},
	{Name: "choreCompletions", Table: "chore_completions"},
	{Name: "sensors", Table: "sensors"},
	{Name: "nudges", Table: "nudges"},
	{Name: "chatMessages", Table: "chat_messages"},
	{Name: "notifications", Table: "notifications"},
	{Name: "coachSessions", Table: "coach_sessions"},
}

// DocumentSource reads whole collections from the legacy store.
type DocumentSource interface {
	ReadAll(ctx context.Context, collection string) ([]firestore.Document, error)
}

// TableWriter upserts mapped rows into the destination. Upserting by primary
// key is what makes re-running a migration safe.
type TableWriter interface {
	Upsert(ctx context.Context, table string, id uuid.UUID, row map[string]any) error
}

// CollectionResult is the outcome of migrating one collection.
type CollectionResult struct {
	Collection string
	Migrated   int
	Err        error
}

// Summary tallies a whole migration run.
type Summary struct {
	Results []CollectionResult
}

// Migrated returns the total number of upserted documents.
func (s *Summary) Migrated() int {
	total := 0
	for _, r := range s.Results {
		total += r.Migrated
	}

	return total
}

// Failed returns the number of collections that did not migrate cleanly.
func (s *Summary) Failed() int {
	failed := 0
	for _, r := range s.Results {
		if r.Err != nil {
			failed++
		}
	}

	return failed
}

// OK reports whether every collection migrated without error.
func (s *Summary) OK() bool {
	return s.Failed() == 0
}

// Migrator copies every collection from the legacy store into PostgreSQL.
type Migrator struct {
	source DocumentSource
	writer TableWriter
	logger *slog.Logger
}

// NewMigrator is the constructor for Migrator.
func NewMigrator(source DocumentSource, writer TableWriter, logger *slog.Logger) *Migrator {
	return &Migrator{
		source: source,
		writer: writer,
		logger: logger,
	}
}

// Run migrates all collections. A failing collection is logged and counted,
// and the run continues with the next one; the summary carries the tally.
func (m *Migrator) Run(ctx context.Context) *Summary {
	summary := &Summary{Results: make([]CollectionResult, 0, len(Collections))}

	for _, collection := range Collections {
		result := m.migrateCollection(ctx, collection)
		if result.Err != nil {
			m.logger.Error("collection migration failed",
				slog.String("collection", collection.Name),
				slog.Any("error", result.Err),
			)
		} else {
			m.logger.Info("collection migrated",
				slog.String("collection", collection.Name),
				slog.Int("documents", result.Migrated),
			)
		}

		summary.Results = append(summary.Results, result)
	}

	return summary
}

func (m *Migrator) migrateCollection(ctx context.Context, collection Collection) CollectionResult {
	result := CollectionResult{Collection: collection.Name}

	docs, err := m.source.ReadAll(ctx, collection.Name)
	if err != nil {
		result.Err = err

		return result
	}

	for _, doc := range docs {
		row := MapKeys(doc.Data)
		id := DeterministicID(doc.ID)
		row["id"] = id
		normalizeReferences(row)

		if err := m.writer.Upsert(ctx, collection.Table, id, row); err != nil {
			result.Err = err

			return result
		}
		result.Migrated++
	}

	return result
}

// DeterministicID maps a Firestore document ID to a stable UUID. IDs that
// already parse as UUIDs pass through unchanged so a re-exported dataset keeps
// its keys.
func DeterministicID(docID string) uuid.UUID {
	if parsed, err := uuid.Parse(docID); err == nil {
		return parsed
	}

	return uuid.NewSHA1(idNamespace, []byte(docID))
}

// idSliceColumns are jsonb columns holding lists of user references.
var idSliceColumns = map[string]bool{
	"member_ids":   true,
	"target_users": true,
	"participants": true,
	"split_among":  true,
}

// idColumns are uuid reference columns whose names do not end in "_id".
var idColumns = map[string]bool{
	"assigned_to": true,
	"assigned_by": true,
	"verified_by": true,
	"paid_by":     true,
}

// normalizeReferences rewrites document-ID reference columns with the same
// deterministic mapping applied to primary keys, so foreign references stay
// consistent across collections.
func normalizeReferences(row map[string]any) {
	for key, value := range row {
		switch {
		case (key != "id" && strings.HasSuffix(key, "_id")) || idColumns[key]:
			if s, ok := value.(string); ok && s != "" {
				row[key] = DeterministicID(s)
			}
		case idSliceColumns[key]:
			items, ok := value.([]any)
			if !ok {
				continue
			}
			mapped := make([]any, len(items))
			for i, item := range items {
				if s, ok := item.(string); ok && s != "" {
					mapped[i] = DeterministicID(s)
				} else {
					mapped[i] = item
				}
			}
			row[key] = mapped
		}
	}
}
