package document

import (
	"context"
	"slices"

	"menumaster/internal/domain/entity"
	"menumaster/internal/domain/repository"
	"menumaster/internal/infra/persistence/model"
)

type userRepository struct {
	uow *unitOfWork
}

func (r *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	users, err := load(ctx, r.uow, usersDoc)
	if err != nil {
		return nil, err
	}

	result := make([]*entity.User, 0, len(users))
	for _, user := range users {
		result = append(result, user.ToEntity())
	}

	return result, nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	users, err := load(ctx, r.uow, usersDoc)
	if err != nil {
		return nil, err
	}

	idx := slices.IndexFunc(users, func(m model.UserModel) bool { return m.ID == id })
	if idx < 0 {
		return nil, repository.ErrUserNotFound
	}

	return users[idx].ToEntity(), nil
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	users, err := load(ctx, r.uow, usersDoc)
	if err != nil {
		return err
	}

	stage(r.uow, usersDoc, append(slices.Clip(users), model.FromUser(user)))

	return nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	users, err := load(ctx, r.uow, usersDoc)
	if err != nil {
		return err
	}

	idx := slices.IndexFunc(users, func(m model.UserModel) bool { return m.ID == user.ID })
	if idx < 0 {
		return repository.ErrUserNotFound
	}

	updated := slices.Clone(users)
	updated[idx] = model.FromUser(user)
	stage(r.uow, usersDoc, updated)

	return nil
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	users, err := load(ctx, r.uow, usersDoc)
	if err != nil {
		return err
	}

	idx := slices.IndexFunc(users, func(m model.UserModel) bool { return m.ID == id })
	if idx < 0 {
		return repository.ErrUserNotFound
	}

	stage(r.uow, usersDoc, slices.Delete(slices.Clone(users), idx, idx+1))

	return nil
}

type adminRepository struct {
	uow *unitOfWork
}

func (r *adminRepository) List(ctx context.Context) ([]*entity.Admin, error) {
	admins, err := load(ctx, r.uow, adminsDoc)
	if err != nil {
		return nil, err
	}

	result := make([]*entity.Admin, 0, len(admins))
	for _, admin := range admins {
		result = append(result, admin.ToEntity())
	}

	return result, nil
}

func (r *adminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	admins, err := load(ctx, r.uow, adminsDoc)
	if err != nil {
		return err
	}

	stage(r.uow, adminsDoc, append(slices.Clip(admins), model.FromAdmin(admin)))

	return nil
}

type sessionRepository struct {
	uow *unitOfWork
}

func (r *sessionRepository) ActiveUser(ctx context.Context) (*entity.User, error) {
	active, err := load(ctx, r.uow, activeUserDoc)
	if err != nil || active == nil {
		return nil, err
	}

	return active.ToEntity(), nil
}

func (r *sessionRepository) SetActiveUser(_ context.Context, user *entity.User) error {
	snapshot := model.FromUser(user)
	stage(r.uow, activeUserDoc, &snapshot)

	return nil
}

func (r *sessionRepository) ClearActiveUser(_ context.Context) error {
	stage(r.uow, activeUserDoc, nil)

	return nil
}

func (r *sessionRepository) IsAdminActive(ctx context.Context) (bool, error) {
	return load(ctx, r.uow, adminSessionDoc)
}

func (r *sessionRepository) SetAdminActive(_ context.Context, active bool) error {
	stage(r.uow, adminSessionDoc, active)

	return nil
}
