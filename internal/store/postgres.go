package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// documentRow is the single physical table backing every logical collection.
// Document fields live in a jsonb column so the store stays schemaless.
type documentRow struct {
	ID         string `gorm:"primaryKey;size:36"`
	Collection string `gorm:"size:50;index;not null"`
	Data       []byte `gorm:"type:jsonb;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (documentRow) TableName() string { return "documents" }

type PostgresStore struct {
	db *gorm.DB
}

func NewPostgresStore(db *gorm.DB) (*PostgresStore, error) {
	if err := db.AutoMigrate(&documentRow{}); err != nil {
		return nil, fmt.Errorf("migrate documents: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Insert(ctx context.Context, collection string, fields Fields) (string, error) {
	data, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}

	row := documentRow{
		ID:         uuid.NewString(),
		Collection: collection,
		Data:       data,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return "", pgError("insert", err)
	}
	return row.ID, nil
}

func (s *PostgresStore) Get(ctx context.Context, collection, id string) (*Document, error) {
	var row documentRow
	err := s.db.WithContext(ctx).
		Where("id = ? AND collection = ?", id, collection).
		First(&row).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, pgError("get", err)
	}
	return decodeRow(row)
}

func (s *PostgresStore) ListAll(ctx context.Context, collection string) ([]Document, error) {
	var rows []documentRow
	err := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		Find(&rows).Error
	if err != nil {
		return nil, pgError("list", err)
	}
	return decodeRows(rows)
}

func (s *PostgresStore) ListWhere(ctx context.Context, collection, field string, value any, order ...OrderBy) ([]Document, error) {
	q := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		Where("data ->> ? = ?", field, fmt.Sprint(value))

	// Order fields come from the repositories, never from request input.
	for _, o := range order {
		dir := "ASC"
		if o.Desc {
			dir = "DESC"
		}
		q = q.Order(fmt.Sprintf("data ->> '%s' %s", o.Field, dir))
	}

	var rows []documentRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, pgError("list", err)
	}
	return decodeRows(rows)
}

// Update merges the patch into the stored jsonb. Keys absent from the patch
// are left untouched, which the repository layer depends on.
func (s *PostgresStore) Update(ctx context.Context, collection, id string, fields Fields) error {
	patch, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("encode patch: %w", err)
	}

	res := s.db.WithContext(ctx).
		Model(&documentRow{}).
		Where("id = ? AND collection = ?", id, collection).
		Update("data", gorm.Expr("data || ?::jsonb", string(patch)))
	if res.Error != nil {
		return pgError("update", res.Error)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, collection, id string) error {
	err := s.db.WithContext(ctx).
		Where("id = ? AND collection = ?", id, collection).
		Delete(&documentRow{}).Error
	if err != nil {
		return pgError("delete", err)
	}
	return nil
}

func decodeRow(row documentRow) (*Document, error) {
	var fields Fields
	if err := json.Unmarshal(row.Data, &fields); err != nil {
		return nil, fmt.Errorf("decode document %s: %w", row.ID, err)
	}
	return &Document{ID: row.ID, Fields: fields}, nil
}

func decodeRows(rows []documentRow) ([]Document, error) {
	docs := make([]Document, 0, len(rows))
	for _, row := range rows {
		doc, err := decodeRow(row)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *doc)
	}
	return docs, nil
}

// pgError keeps the Postgres error class visible in the wrapped message so
// quota/permission failures are distinguishable from plain network ones.
func pgError(op string, err error) error {
	var pge *pgconn.PgError
	if errors.As(err, &pge) {
		return fmt.Errorf("%s: %s (SQLSTATE %s): %w", op, pge.Message, pge.Code, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

var _ Store = (*PostgresStore)(nil)
