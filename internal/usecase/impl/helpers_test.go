package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"menumaster/config"
	"menumaster/internal/domain/constants"
	"menumaster/internal/domain/repository"
	"menumaster/internal/infra/auth"
	"menumaster/internal/infra/clock"
	"menumaster/internal/infra/persistence/blob"
	"menumaster/internal/infra/persistence/document"

	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(loginField string) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			PasswordHashing: constants.PasswordHashingPlain,
			UserLoginField:  loginField,
		},
	}
}

// newTestTxManager returns a transaction manager over a fresh in-memory bucket.
func newTestTxManager(t *testing.T) repository.TransactionManager {
	t.Helper()

	store, err := blob.Open(context.Background(), "mem://")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return document.NewTransactionManager(document.Params{
		Store:  store,
		Logger: newDiscardLogger(),
	})
}

func newTestClock() *clock.Fixed {
	return &clock.Fixed{
		At:  time.Date(2024, time.March, 15, 12, 30, 0, 0, time.UTC),
		Loc: time.UTC,
	}
}

func newAccountServices(t *testing.T, txManager repository.TransactionManager) (*accountService, *adminService) {
	t.Helper()

	hasher := auth.NewPlainHasher()
	logger := newDiscardLogger()

	account := NewAccountService(AccountServiceParams{
		TxManager: txManager,
		Hasher:    hasher,
		Config:    newTestConfig(constants.UserLoginFieldName),
		Logger:    logger,
	}).(*accountService)
	admin := NewAdminService(AdminServiceParams{
		TxManager: txManager,
		Hasher:    hasher,
		Logger:    logger,
	}).(*adminService)

	return account, admin
}

func strPtr(s string) *string {
	return &s
}
