package repository

import (
	"context"
	"errors"
)

// ErrDocumentNotFound is returned by DocumentStore.Get for a key that was never written.
var ErrDocumentNotFound = errors.New("document not found")

// Document keys. Each holds the JSON encoding of one collection or singleton.
const (
	DocUsers             = "users"
	DocAdmins            = "admins"
	DocActiveUserSession = "active-user-session"
	DocAdminSession      = "active-admin-session"
	DocProducts          = "products"
	DocCompletedOrders   = "completed-orders"
	DocMonthlyReports    = "monthly-reports"
	DocStoreSettings     = "store-settings"
)

// DocumentStore is a key-value store of whole JSON documents. Writes replace the full value.
type DocumentStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, body []byte) error
	// PutBatch writes several documents. Backends with transactions apply them atomically.
	PutBatch(ctx context.Context, docs map[string][]byte) error
	Close() error
}
