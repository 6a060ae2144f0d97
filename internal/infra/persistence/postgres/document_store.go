package postgres

import (
	"context"
	"time"

	"menumaster/internal/domain/lifecycle"
	"menumaster/internal/domain/repository"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DocumentModel is one row of the documents table.
type DocumentModel struct {
	Key       string         `gorm:"column:key;primaryKey;type:varchar(64)"`
	Body      datatypes.JSON `gorm:"column:body;type:jsonb;not null"`
	UpdatedAt time.Time      `gorm:"column:updated_at;not null"`
}

func (DocumentModel) TableName() string {
	return "documents"
}

type documentStore struct {
	db *gorm.DB
}

// StoreParams defines the required parameters
type StoreParams struct {
	fx.In
	fx.Lifecycle

	DB *gorm.DB
}

// NewDocumentStore migrates the documents table on start.
func NewDocumentStore(params StoreParams) repository.DocumentStore {
	store := &documentStore{db: params.DB}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return store.Migrate(ctx)
		},
	})

	return store
}

// Migrate creates or updates the documents table.
func (s *documentStore) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&DocumentModel{}); err != nil {
		return errors.Wrap(err, "failed to migrate documents table")
	}

	return nil
}

func (s *documentStore) Get(ctx context.Context, key string) ([]byte, error) {
	var record DocumentModel
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrDocumentNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read document %s", key)
	}

	return record.Body, nil
}

func (s *documentStore) Put(ctx context.Context, key string, body []byte) error {
	return upsertDocument(s.db.WithContext(ctx), key, body)
}

// PutBatch writes all documents in one database transaction.
func (s *documentStore) PutBatch(ctx context.Context, docs map[string][]byte) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for key, body := range docs {
			if err := upsertDocument(tx, key, body); err != nil {
				return err
			}
		}

		return nil
	})
}

// Close is a no-op; the connection pool is closed by the database lifecycle hook.
func (s *documentStore) Close() error {
	return nil
}

func upsertDocument(db *gorm.DB, key string, body []byte) error {
	record := DocumentModel{
		Key:       key,
		Body:      datatypes.JSON(body),
		UpdatedAt: time.Now(),
	}

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"body", "updated_at"}),
	}).Create(&record).Error
	if isNotNullConstraintViolation(err) {
		return errors.Wrapf(err, "document %s has an empty body", key)
	}

	return errors.Wrapf(err, "failed to write document %s", key)
}
