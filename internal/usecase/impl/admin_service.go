package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "menumaster/internal/delivery/context"
	"menumaster/internal/domain/constants"
	"menumaster/internal/domain/entity"
	domainerrors "menumaster/internal/domain/errors"
	"menumaster/internal/domain/repository"
	"menumaster/internal/domain/service"
	"menumaster/internal/usecase"
	"menumaster/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type adminService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager: params.TxManager,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignupAdmin appends a new administrator.
func (srv *adminService) SignupAdmin(ctx context.Context, login, password string) (*entity.Admin, error) {
	login = strings.TrimSpace(login)
	password = strings.TrimSpace(password)
	if login == "" || password == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("login e senha são obrigatórios"), "admin signup rejected")
	}

	var admin *entity.Admin
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		adminRepo := repoFactory.AdminRepo()

		admins, err := adminRepo.List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list admins")
		}
		if findAdmin(admins, login) != nil {
			return domainerrors.ErrAdminLoginTaken
		}

		hashed, err := srv.hasher.Hash(password)
		if err != nil {
			return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}

		admin = &entity.Admin{ID: util.NewID("admin"), Login: login, Password: hashed}

		return errors.Wrap(adminRepo.Create(ctx, admin), "failed to create admin")
	})
	if err != nil {
		srv.log(ctx).Warn("Admin signup failed", slog.String("login", login), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to sign up admin")
	}

	srv.log(ctx).Info("Admin signed up", slog.String("adminID", admin.ID))

	return admin, nil
}

// LoginAdmin sets the admin session and ends any customer session.
func (srv *adminService) LoginAdmin(ctx context.Context, login, password string) error {
	attempt := strings.TrimSpace(password)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		admins, err := repoFactory.AdminRepo().List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list admins")
		}

		admin := findAdmin(admins, login)
		if admin == nil || !srv.hasher.Check(attempt, admin.Password) {
			return domainerrors.ErrInvalidCredentials
		}

		sessionRepo := repoFactory.SessionRepo()
		if err := sessionRepo.SetAdminActive(ctx, true); err != nil {
			return errors.Wrap(err, "failed to set admin session")
		}

		return errors.Wrap(sessionRepo.ClearActiveUser(ctx), "failed to clear user session")
	})
	if err != nil {
		srv.log(ctx).Warn("Admin login failed", slog.Any("error", err))

		return errors.Wrap(err, "failed to log in admin")
	}

	srv.log(ctx).Info("Admin logged in")

	return nil
}

// LogoutAdmin clears the admin session flag.
func (srv *adminService) LogoutAdmin(ctx context.Context) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.SessionRepo().SetAdminActive(ctx, false)
	})

	return errors.Wrap(err, "failed to log out admin")
}

// EnsureDefaultAdmin seeds the default administrator into an empty admin list.
func (srv *adminService) EnsureDefaultAdmin(ctx context.Context) error {
	seeded := false
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		adminRepo := repoFactory.AdminRepo()

		admins, err := adminRepo.List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list admins")
		}
		if len(admins) > 0 {
			return nil
		}

		hashed, err := srv.hasher.Hash(constants.DefaultAdminPassword)
		if err != nil {
			return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}
		seeded = true

		return adminRepo.Create(ctx, &entity.Admin{
			ID:       constants.DefaultAdminID,
			Login:    constants.DefaultAdminLogin,
			Password: hashed,
		})
	})
	if err != nil {
		return errors.Wrap(err, "failed to seed default admin")
	}

	if seeded {
		srv.log(ctx).Info("Default admin seeded", slog.String("login", constants.DefaultAdminLogin))
	}

	return nil
}

func findAdmin(admins []*entity.Admin, login string) *entity.Admin {
	key := util.NormalizeKey(login)
	if key == "" {
		return nil
	}

	for _, admin := range admins {
		if util.NormalizeKey(admin.Login) == key {
			return admin
		}
	}

	return nil
}
