// Package blob stores documents as objects in a gocloud.dev bucket (mem://, file://, gs://, s3://).
package blob

import (
	"cmp"
	"context"
	"log/slog"
	"maps"
	"slices"

	"menumaster/config"
	"menumaster/internal/domain/repository"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

const (
	contentType = "application/json"
	keySuffix   = ".json"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type documentStore struct {
	bucket *blob.Bucket
}

// New opens the configured bucket and closes it when the app stops.
func New(params Params) (repository.DocumentStore, error) {
	store, err := Open(context.Background(), params.Config.Storage.BucketURL)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Document bucket opened", slog.String("url", params.Config.Storage.BucketURL))

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}

// Open opens a bucket by URL.
func Open(ctx context.Context, url string) (repository.DocumentStore, error) {
	bucket, err := blob.OpenBucket(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", url)
	}

	return &documentStore{bucket: bucket}, nil
}

func (s *documentStore) Get(ctx context.Context, key string) ([]byte, error) {
	body, err := s.bucket.ReadAll(ctx, key+keySuffix)
	if gcerrors.Code(err) == gcerrors.NotFound {
		return nil, repository.ErrDocumentNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read object %s", key)
	}

	return body, nil
}

func (s *documentStore) Put(ctx context.Context, key string, body []byte) error {
	err := s.bucket.WriteAll(ctx, key+keySuffix, body, &blob.WriterOptions{ContentType: contentType})

	return errors.Wrapf(err, "failed to write object %s", key)
}

// PutBatch writes objects one by one in batchOrder. Buckets have no multi-object transactions,
// so a failure stops the batch before the session documents are touched.
func (s *documentStore) PutBatch(ctx context.Context, docs map[string][]byte) error {
	for _, key := range batchOrder(docs) {
		if err := s.Put(ctx, key, docs[key]); err != nil {
			return err
		}
	}

	return nil
}

// batchOrder sorts keys with the session documents last.
func batchOrder(docs map[string][]byte) []string {
	keys := slices.Sorted(maps.Keys(docs))
	slices.SortStableFunc(keys, func(a, b string) int {
		return cmp.Compare(sessionRank(a), sessionRank(b))
	})

	return keys
}

func sessionRank(key string) int {
	switch key {
	case repository.DocActiveUserSession, repository.DocAdminSession:
		return 1
	default:
		return 0
	}
}

func (s *documentStore) Close() error {
	return errors.WithStack(s.bucket.Close())
}
