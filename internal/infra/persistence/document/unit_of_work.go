package document

import (
	"context"
	"encoding/json"
	"log/slog"

	"menumaster/internal/domain/entity"
	"menumaster/internal/domain/repository"

	"github.com/pkg/errors"
)

// unitOfWork implements repository.RepositoryFactory for a single transaction.
type unitOfWork struct {
	store  repository.DocumentStore
	logger *slog.Logger
	docs   map[string]any
	dirty  map[string]bool
	cart   *entity.Cart
}

func newUnitOfWork(store repository.DocumentStore, logger *slog.Logger, cart *entity.Cart) *unitOfWork {
	return &unitOfWork{
		store:  store,
		logger: logger,
		docs:   make(map[string]any),
		dirty:  make(map[string]bool),
		cart:   cart,
	}
}

func (u *unitOfWork) UserRepo() repository.UserRepository         { return &userRepository{uow: u} }
func (u *unitOfWork) AdminRepo() repository.AdminRepository       { return &adminRepository{uow: u} }
func (u *unitOfWork) SessionRepo() repository.SessionRepository   { return &sessionRepository{uow: u} }
func (u *unitOfWork) ProductRepo() repository.ProductRepository   { return &productRepository{uow: u} }
func (u *unitOfWork) CartRepo() repository.CartRepository         { return &cartRepository{uow: u} }
func (u *unitOfWork) OrderRepo() repository.OrderRepository       { return &orderRepository{uow: u} }
func (u *unitOfWork) ReportRepo() repository.ReportRepository     { return &reportRepository{uow: u} }
func (u *unitOfWork) SettingsRepo() repository.SettingsRepository { return &settingsRepository{uow: u} }

// docSpec describes how one named document is decoded and defaulted.
type docSpec[T any] struct {
	key string
	// newDefault builds the value used when the document is missing or corrupt.
	newDefault func() T
	// persistDefault stages the default when the document is missing.
	persistDefault bool
	// valid rejects values that decode but do not have the expected shape.
	valid func(T) bool
}

// load returns the document value, decoding it once per unit of work.
// A corrupt document is logged, reset to its default in the store and replaced in memory.
func load[T any](ctx context.Context, u *unitOfWork, spec docSpec[T]) (T, error) {
	if cached, ok := u.docs[spec.key]; ok {
		return cached.(T), nil
	}

	body, err := u.store.Get(ctx, spec.key)
	if errors.Is(err, repository.ErrDocumentNotFound) {
		value := spec.newDefault()
		u.docs[spec.key] = value
		if spec.persistDefault {
			u.dirty[spec.key] = true
		}

		return value, nil
	}
	if err != nil {
		var zero T

		return zero, errors.Wrapf(err, "failed to read document %s", spec.key)
	}

	var value T
	decodeErr := json.Unmarshal(body, &value)
	if decodeErr == nil && spec.valid != nil && !spec.valid(value) {
		decodeErr = errors.New("unexpected document shape")
	}
	if decodeErr != nil {
		value = spec.newDefault()
		if healErr := u.heal(ctx, spec.key, value, decodeErr); healErr != nil {
			return value, healErr
		}
	}

	u.docs[spec.key] = value

	return value, nil
}

// stage replaces the document value; it is written on commit.
func stage[T any](u *unitOfWork, spec docSpec[T], value T) {
	u.docs[spec.key] = value
	u.dirty[spec.key] = true
}

func (u *unitOfWork) heal(ctx context.Context, key string, value any, cause error) error {
	u.logger.Warn("Corrupt document reset to default",
		slog.String("key", key),
		slog.Any("error", cause),
	)

	body, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "failed to encode default for %s", key)
	}

	if err := u.store.Put(ctx, key, body); err != nil {
		return errors.Wrapf(err, "failed to reset document %s", key)
	}

	return nil
}

func (u *unitOfWork) commit(ctx context.Context) error {
	if len(u.dirty) == 0 {
		return nil
	}

	batch := make(map[string][]byte, len(u.dirty))
	for key := range u.dirty {
		body, err := json.Marshal(u.docs[key])
		if err != nil {
			return errors.Wrapf(err, "failed to encode document %s", key)
		}
		batch[key] = body
	}

	return errors.WithStack(u.store.PutBatch(ctx, batch))
}
