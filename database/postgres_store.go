package database

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"regexp"
	"time"

	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/rpupo63/portfolio-backend/errs"
)

// documentRow is the row shape of every collection table.
type documentRow struct {
	ID  string         `gorm:"column:id;type:text;primaryKey"`
	Doc datatypes.JSON `gorm:"column:doc;type:jsonb;not null"`
}

var fieldNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// PostgresStore stores each collection as a table of JSONB documents keyed by
// their string id.
type PostgresStore struct {
	db *gorm.DB
}

// OpenPostgres connects to the database at dsn and checks the connection.
func OpenPostgres(dsn string) (*PostgresStore, error) {
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt:            false,
		SkipDefaultTransaction: true,
		Logger:                 newLogger,
	})
	if err != nil {
		return nil, errs.NewStoreError("connect", "database", err)
	}

	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		return nil, errs.NewStoreError("test connection", "database", err)
	}

	return NewPostgresStore(db), nil
}

func NewPostgresStore(db *gorm.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) InsertOne(ctx context.Context, collection string, doc any) (string, error) {
	row, err := newRow(doc)
	if err != nil {
		return "", errs.NewStoreError("encode document", collection, err)
	}
	if err := s.db.WithContext(ctx).Table(collection).Create(&row).Error; err != nil {
		return "", errs.NewStoreError("insert document", collection, err)
	}
	return row.ID, nil
}

// InsertMany writes docs in batches. It is not atomic: a failure part-way
// leaves the earlier batches in place.
func (s *PostgresStore) InsertMany(ctx context.Context, collection string, docs []any) (int, error) {
	if len(docs) == 0 {
		return 0, nil
	}
	rows := make([]documentRow, 0, len(docs))
	for _, doc := range docs {
		row, err := newRow(doc)
		if err != nil {
			return 0, errs.NewStoreError("encode document", collection, err)
		}
		rows = append(rows, row)
	}
	tx := s.db.WithContext(ctx).Table(collection).CreateInBatches(rows, 100)
	if tx.Error != nil {
		return int(tx.RowsAffected), errs.NewStoreError("insert documents", collection, tx.Error)
	}
	return int(tx.RowsAffected), nil
}

func (s *PostgresStore) FindOne(ctx context.Context, collection string, filter Filter) (Document, error) {
	q, err := s.where(ctx, collection, filter)
	if err != nil {
		return nil, errs.NewStoreError("encode filter", collection, err)
	}
	var rows []documentRow
	if err := q.Limit(1).Find(&rows).Error; err != nil {
		return nil, errs.NewStoreError("find document", collection, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return Document(rows[0].Doc), nil
}

func (s *PostgresStore) FindMany(ctx context.Context, collection string, filter Filter, opts FindOptions) ([]Document, error) {
	q, err := s.where(ctx, collection, filter)
	if err != nil {
		return nil, errs.NewStoreError("encode filter", collection, err)
	}
	if opts.SortKey != "" {
		dir := "ASC"
		if opts.SortDir == Descending {
			dir = "DESC"
		}
		q = q.Order(clause.OrderBy{Expression: clause.Expr{
			SQL:                "(doc ->> ?)::timestamptz " + dir,
			Vars:               []any{opts.SortKey},
			WithoutParentheses: true,
		}})
	}

	var rows []documentRow
	if err := q.Limit(opts.limit()).Find(&rows).Error; err != nil {
		return nil, errs.NewStoreError("find documents", collection, err)
	}
	out := make([]Document, 0, len(rows))
	for _, row := range rows {
		out = append(out, Document(row.Doc))
	}
	return out, nil
}

// UpdateOne merges fields into the top level of the first matching document.
func (s *PostgresStore) UpdateOne(ctx context.Context, collection string, filter Filter, fields map[string]any) (int64, error) {
	sub, err := s.where(ctx, collection, filter)
	if err != nil {
		return 0, errs.NewStoreError("encode filter", collection, err)
	}
	patch, err := json.Marshal(fields)
	if err != nil {
		return 0, errs.NewStoreError("encode update", collection, err)
	}
	if fields == nil {
		patch = []byte("{}")
	}

	tx := s.db.WithContext(ctx).Table(collection).
		Where("id = (?)", sub.Select("id").Limit(1)).
		Update("doc", gorm.Expr("doc || ?::jsonb", string(patch)))
	if tx.Error != nil {
		return 0, errs.NewStoreError("update document", collection, tx.Error)
	}
	return tx.RowsAffected, nil
}

func (s *PostgresStore) DeleteOne(ctx context.Context, collection string, filter Filter) (int64, error) {
	sub, err := s.where(ctx, collection, filter)
	if err != nil {
		return 0, errs.NewStoreError("encode filter", collection, err)
	}
	tx := s.db.WithContext(ctx).Table(collection).
		Where("id = (?)", sub.Select("id").Limit(1)).
		Delete(&documentRow{})
	if tx.Error != nil {
		return 0, errs.NewStoreError("delete document", collection, tx.Error)
	}
	return tx.RowsAffected, nil
}

func (s *PostgresStore) CountDocuments(ctx context.Context, collection string, filter Filter) (int64, error) {
	q, err := s.where(ctx, collection, filter)
	if err != nil {
		return 0, errs.NewStoreError("encode filter", collection, err)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return 0, errs.NewStoreError("count documents", collection, err)
	}
	return n, nil
}

func (s *PostgresStore) EnsureCollection(ctx context.Context, collection string) error {
	err := s.db.WithContext(ctx).Exec(
		"CREATE TABLE IF NOT EXISTS ? (id text PRIMARY KEY, doc jsonb NOT NULL)",
		clause.Table{Name: collection},
	).Error
	if err != nil {
		return errs.NewStoreError("create collection", collection, err)
	}
	return nil
}

// EnsureIndex creates an expression index on doc->>field.
func (s *PostgresStore) EnsureIndex(ctx context.Context, collection, field string) error {
	if !fieldNamePattern.MatchString(field) {
		return errs.NewStoreError("create index", collection, fmt.Errorf("invalid field name %q", field))
	}
	if err := s.EnsureCollection(ctx, collection); err != nil {
		return err
	}
	indexName := fmt.Sprintf("idx_%s_%s", collection, field)
	err := s.db.WithContext(ctx).Exec(
		fmt.Sprintf("CREATE INDEX IF NOT EXISTS ? ON ? ((doc ->> '%s'))", field),
		clause.Table{Name: indexName},
		clause.Table{Name: collection},
	).Error
	if err != nil {
		return errs.NewStoreError("create index", collection, err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// where builds the query for filter. The id field uses the primary key; the
// remaining fields use JSONB containment.
func (s *PostgresStore) where(ctx context.Context, collection string, filter Filter) (*gorm.DB, error) {
	q := s.db.WithContext(ctx).Table(collection)
	rest := make(map[string]any, len(filter))
	for k, v := range filter {
		if k == "id" {
			q = q.Where("id = ?", v)
			continue
		}
		rest[k] = v
	}
	if len(rest) > 0 {
		raw, err := json.Marshal(rest)
		if err != nil {
			return nil, err
		}
		q = q.Where("doc @> ?::jsonb", string(raw))
	}
	return q, nil
}

func newRow(doc any) (documentRow, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return documentRow{}, err
	}
	id, err := documentID(raw)
	if err != nil {
		return documentRow{}, err
	}
	if id == "" {
		return documentRow{}, errMissingID
	}
	return documentRow{ID: id, Doc: datatypes.JSON(raw)}, nil
}
