// Package document implements the repositories on top of a repository.DocumentStore.
// Every repository call goes through a unit of work that caches decoded documents
// and stages writes until the transaction commits.
package document

import (
	"context"
	"log/slog"
	"sync"

	"menumaster/internal/domain/entity"
	"menumaster/internal/domain/repository"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In

	Store  repository.DocumentStore
	Logger *slog.Logger
}

// documentTransactionManager implements the domain's TransactionManager interface.
// The live cart is process memory only; each transaction works on a clone.
type documentTransactionManager struct {
	mu     sync.Mutex
	store  repository.DocumentStore
	logger *slog.Logger
	cart   *entity.Cart
}

// NewTransactionManager is the constructor for documentTransactionManager.
func NewTransactionManager(params Params) repository.TransactionManager {
	return &documentTransactionManager{
		store:  params.Store,
		logger: params.Logger,
		cart:   entity.NewCart(),
	}
}

// Execute runs fn inside one serialized unit of work.
func (tm *documentTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	uow := newUnitOfWork(tm.store, tm.logger, tm.cart.Clone())

	if err := fn(uow); err != nil {
		return err
	}

	if err := uow.commit(ctx); err != nil {
		return errors.Wrap(err, "failed to commit unit of work")
	}

	tm.cart = uow.cart

	return nil
}
