package document

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"menumaster/internal/domain/entity"
	"menumaster/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	mu           sync.Mutex
	docs         map[string][]byte
	putBatchErr  error
	putBatchSeen int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{docs: make(map[string][]byte)}
}

func (s *memoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	body, ok := s.docs[key]
	if !ok {
		return nil, repository.ErrDocumentNotFound
	}

	return body, nil
}

func (s *memoryStore) Put(_ context.Context, key string, body []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.docs[key] = body

	return nil
}

func (s *memoryStore) PutBatch(_ context.Context, docs map[string][]byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.putBatchSeen++
	if s.putBatchErr != nil {
		return s.putBatchErr
	}
	for key, body := range docs {
		s.docs[key] = body
	}

	return nil
}

func (s *memoryStore) Close() error { return nil }

func newTestManager(store repository.DocumentStore) repository.TransactionManager {
	return NewTransactionManager(Params{
		Store:  store,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestExecute_CommitsStagedWrites(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	tm := newTestManager(store)

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.UserRepo().Create(ctx, &entity.User{ID: "user_1", Login: "ana", Name: "Ana"})
	})
	require.NoError(t, err)
	assert.Contains(t, string(store.docs[repository.DocUsers]), `"login":"ana"`)

	err = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		user, err := f.UserRepo().FindByID(ctx, "user_1")
		require.NoError(t, err)
		assert.Equal(t, "Ana", user.Name)

		return nil
	})
	require.NoError(t, err)
}

func TestExecute_ErrorDiscardsWrites(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	tm := newTestManager(store)
	boom := errors.New("boom")

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		require.NoError(t, f.UserRepo().Create(ctx, &entity.User{ID: "user_1"}))
		f.CartRepo().Cart(ctx).Add(entity.Product{ID: "1", Price: decimal.NewFromInt(5)})

		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.NotContains(t, store.docs, repository.DocUsers)
	assert.Zero(t, store.putBatchSeen)

	err = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		assert.True(t, f.CartRepo().Cart(ctx).IsEmpty())

		return nil
	})
	require.NoError(t, err)
}

func TestExecute_CartSurvivesAcrossTransactions(t *testing.T) {
	ctx := context.Background()
	tm := newTestManager(newMemoryStore())

	require.NoError(t, tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		cart := f.CartRepo().Cart(ctx)
		cart.Add(entity.Product{ID: "1", Price: decimal.NewFromInt(5)})
		cart.Add(entity.Product{ID: "1", Price: decimal.NewFromInt(5)})

		return nil
	}))

	require.NoError(t, tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		cart := f.CartRepo().Cart(ctx)
		require.Len(t, cart.Items(), 1)
		assert.True(t, cart.Total().Equal(decimal.NewFromInt(10)))

		return nil
	}))
}

func TestExecute_CommitFailureKeepsCart(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	store.putBatchErr = errors.New("disk full")
	tm := newTestManager(store)

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		f.CartRepo().Cart(ctx).Add(entity.Product{ID: "1", Price: decimal.NewFromInt(5)})

		return f.SessionRepo().SetAdminActive(ctx, true)
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	store.putBatchErr = nil
	require.NoError(t, tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		assert.True(t, f.CartRepo().Cart(ctx).IsEmpty())

		return nil
	}))
}

func TestLoad_MissingProductsSeedsStarterCatalog(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	tm := newTestManager(store)

	require.NoError(t, tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		products, err := f.ProductRepo().List(ctx)
		require.NoError(t, err)
		assert.Len(t, products, 10)
		assert.Equal(t, "Hambúrguer Clássico", products[0].Name)

		return nil
	}))
	assert.Contains(t, store.docs, repository.DocProducts)
}

func TestLoad_CorruptDocumentIsReset(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	store.docs[repository.DocUsers] = []byte(`{not json`)
	store.docs[repository.DocCompletedOrders] = []byte(`[{"id":""}]`)
	tm := newTestManager(store)

	require.Error(t, tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		users, err := f.UserRepo().List(ctx)
		require.NoError(t, err)
		assert.Empty(t, users)

		orders, err := f.OrderRepo().List(ctx)
		require.NoError(t, err)
		assert.Empty(t, orders)

		return errors.New("abort")
	}))

	assert.JSONEq(t, `[]`, string(store.docs[repository.DocUsers]))
	assert.JSONEq(t, `[]`, string(store.docs[repository.DocCompletedOrders]))
}

func TestRepositories_RoundTrip(t *testing.T) {
	ctx := context.Background()
	tm := newTestManager(newMemoryStore())
	createdAt := time.UnixMilli(1_700_000_000_000)

	require.NoError(t, tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		order := entity.NewCompletedOrder("order_abc", createdAt, []entity.OrderItem{
			{Product: entity.Product{ID: "1", Name: "X", Price: decimal.RequireFromString("2.50")}, Quantity: 2},
		}, "user_1")
		require.NoError(t, f.OrderRepo().Append(ctx, order))

		require.NoError(t, f.ReportRepo().Insert(ctx, &entity.DailyReport{Date: "2024-05-02", Total: decimal.NewFromInt(3)}))
		require.NoError(t, f.ReportRepo().Insert(ctx, &entity.DailyReport{Date: "2024-05-01", Total: decimal.NewFromInt(1)}))

		require.NoError(t, f.SettingsRepo().Save(ctx, &entity.StoreSettings{Address: "Rua A", PostalCode: "01001-000", Number: "10"}))
		require.NoError(t, f.SessionRepo().SetActiveUser(ctx, &entity.User{ID: "user_1", Name: "Ana"}))

		return nil
	}))

	require.NoError(t, tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		order, err := f.OrderRepo().FindByID(ctx, "order_abc")
		require.NoError(t, err)
		assert.True(t, order.Total.Equal(decimal.NewFromInt(5)))
		assert.True(t, order.CreatedAt.Equal(createdAt))
		assert.Equal(t, "user_1", order.UserID)

		_, err = f.OrderRepo().FindByID(ctx, "order_missing")
		assert.ErrorIs(t, err, repository.ErrOrderNotFound)

		reports, err := f.ReportRepo().List(ctx)
		require.NoError(t, err)
		require.Len(t, reports, 2)
		assert.Equal(t, "2024-05-01", reports[0].Date)

		missing, err := f.ReportRepo().FindByDate(ctx, "2024-05-03")
		require.NoError(t, err)
		assert.Nil(t, missing)

		settings, err := f.SettingsRepo().Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, "01001-000", settings.PostalCode)

		active, err := f.SessionRepo().ActiveUser(ctx)
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.Equal(t, "Ana", active.Name)

		return f.SessionRepo().ClearActiveUser(ctx)
	}))

	require.NoError(t, tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		active, err := f.SessionRepo().ActiveUser(ctx)
		require.NoError(t, err)
		assert.Nil(t, active)

		return nil
	}))
}

func TestProductRepository_UpdateKeepsPosition(t *testing.T) {
	ctx := context.Background()
	tm := newTestManager(newMemoryStore())

	require.NoError(t, tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		repo := f.ProductRepo()
		product, err := repo.FindByID(ctx, "3")
		require.NoError(t, err)
		product.Name = "Salada da Casa"
		require.NoError(t, repo.Update(ctx, product))
		require.NoError(t, repo.Delete(ctx, "1"))
		assert.ErrorIs(t, repo.Delete(ctx, "1"), repository.ErrProductNotFound)

		products, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, products, 9)
		assert.Equal(t, "Salada da Casa", products[1].Name)

		return nil
	}))
}
