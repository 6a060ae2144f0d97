// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"menumaster/config"
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

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager  repository.TransactionManager
	hasher     service.PasswordHasher
	loginField string
	logger     *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Hasher    service.PasswordHasher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	loginField := constants.UserLoginFieldName
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.UserLoginField == constants.UserLoginFieldLogin {
		loginField = constants.UserLoginFieldLogin
	}

	return &accountService{
		txManager:  params.TxManager,
		hasher:     params.Hasher,
		loginField: loginField,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignupUser validates and appends a new customer. It does not log the customer in.
func (srv *accountService) SignupUser(ctx context.Context, input *usecase.SignupUserInput) (*entity.User, error) {
	newUser := &entity.User{
		Login:       strings.TrimSpace(input.Login),
		Name:        strings.TrimSpace(input.Name),
		Email:       strings.TrimSpace(input.Email),
		NationalID:  strings.TrimSpace(input.NationalID),
		Address:     strings.TrimSpace(input.Address),
		PostalCode:  strings.TrimSpace(input.PostalCode),
		HouseNumber: strings.TrimSpace(input.HouseNumber),
		Phone:       strings.TrimSpace(input.Phone),
	}
	password := strings.TrimSpace(input.Password)

	if missing := missingFields(map[string]string{
		"login":    newUser.Login,
		"name":     newUser.Name,
		"email":    newUser.Email,
		"password": password,
	}); len(missing) > 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("campos obrigatórios: "+strings.Join(missing, ", ")), "signup rejected")
	}

	srv.log(ctx).Info("Starting user signup", slog.String("login", newUser.Login))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		users, err := userRepo.List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list users")
		}

		if err := checkUserUniqueness(users, "", newUser.Login, newUser.Email, newUser.NationalID); err != nil {
			return err
		}

		hashed, err := srv.hasher.Hash(password)
		if err != nil {
			return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}

		newUser.ID = util.NewID("user")
		newUser.Password = hashed

		return errors.Wrap(userRepo.Create(ctx, newUser), "failed to create user")
	})
	if err != nil {
		srv.log(ctx).Warn("User signup failed", slog.String("login", newUser.Login), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to sign up user")
	}

	srv.log(ctx).Info("User signed up", slog.String("userID", newUser.ID))

	return newUser, nil
}

// LoginUser starts a customer session and ends any admin session.
func (srv *accountService) LoginUser(ctx context.Context, identifier, password string) (*entity.User, error) {
	key := util.NormalizeKey(identifier)
	attempt := strings.TrimSpace(password)

	var loggedIn *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		users, err := repoFactory.UserRepo().List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list users")
		}

		var found *entity.User
		for _, user := range users {
			if util.NormalizeKey(srv.loginKey(user)) == key {
				found = user

				break
			}
		}

		if found == nil || key == "" || !srv.hasher.Check(attempt, found.Password) {
			return domainerrors.ErrInvalidCredentials
		}

		sessionRepo := repoFactory.SessionRepo()
		if err := sessionRepo.SetActiveUser(ctx, found); err != nil {
			return errors.Wrap(err, "failed to set active user")
		}
		if err := sessionRepo.SetAdminActive(ctx, false); err != nil {
			return errors.Wrap(err, "failed to clear admin session")
		}

		loggedIn = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("User login failed", slog.String("field", srv.loginField), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to log in user")
	}

	srv.log(ctx).Info("User logged in", slog.String("userID", loggedIn.ID))

	return loggedIn, nil
}

func (srv *accountService) loginKey(user *entity.User) string {
	if srv.loginField == constants.UserLoginFieldLogin {
		return user.Login
	}

	return user.Name
}

// LogoutUser clears the customer session unconditionally.
func (srv *accountService) LogoutUser(ctx context.Context) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.SessionRepo().ClearActiveUser(ctx)
	})

	return errors.Wrap(err, "failed to log out user")
}

// UpdateUser applies one update variant. A rejected update changes nothing.
func (srv *accountService) UpdateUser(ctx context.Context, userID string, update usecase.UserUpdate) (*entity.User, error) {
	srv.log(ctx).Info("Updating user", slog.String("userID", userID), slog.String("kind", updateKind(update)))

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrapf(domainerrors.ErrUserNotFound, "user %s", userID)
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		users, err := userRepo.List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list users")
		}

		if err := srv.applyUpdate(user, users, update); err != nil {
			return err
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user")
		}

		return srv.refreshSession(ctx, repoFactory.SessionRepo(), user)
	})
	if err != nil {
		srv.log(ctx).Warn("User update failed", slog.String("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update user")
	}

	updated, err = srv.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (srv *accountService) applyUpdate(user *entity.User, users []*entity.User, update usecase.UserUpdate) error {
	switch u := update.(type) {
	case usecase.ProfileUpdate:
		return applyProfile(user, users, &u.Profile)

	case *usecase.ProfileUpdate:
		return applyProfile(user, users, &u.Profile)

	case usecase.PasswordChange:
		return srv.applyPasswordChange(user, users, &u)

	case *usecase.PasswordChange:
		return srv.applyPasswordChange(user, users, u)

	case usecase.AdminPasswordReset:
		return srv.applyAdminReset(user, users, &u)

	case *usecase.AdminPasswordReset:
		return srv.applyAdminReset(user, users, u)

	case usecase.SelfServiceReset:
		return srv.setPassword(user, u.NewPassword)

	case *usecase.SelfServiceReset:
		return srv.setPassword(user, u.NewPassword)

	default:
		return errors.Wrap(domainerrors.ErrValidationFailed, "unsupported user update")
	}
}

func (srv *accountService) applyPasswordChange(user *entity.User, users []*entity.User, change *usecase.PasswordChange) error {
	current := strings.TrimSpace(change.CurrentPassword)
	if current == "" || !srv.hasher.Check(current, user.Password) {
		return domainerrors.ErrIncorrectPassword
	}

	if err := applyProfile(user, users, &change.Profile); err != nil {
		return err
	}

	return srv.setPassword(user, change.NewPassword)
}

func (srv *accountService) applyAdminReset(user *entity.User, users []*entity.User, reset *usecase.AdminPasswordReset) error {
	if reset.Profile != nil {
		if err := applyProfile(user, users, reset.Profile); err != nil {
			return err
		}
	}

	return srv.setPassword(user, reset.NewPassword)
}

func (srv *accountService) setPassword(user *entity.User, newPassword string) error {
	trimmed := strings.TrimSpace(newPassword)
	if trimmed == "" {
		return domainerrors.ErrValidationFailed.WithDetails("a nova senha não pode ser vazia")
	}

	hashed, err := srv.hasher.Hash(trimmed)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}
	user.Password = hashed

	return nil
}

func (srv *accountService) refreshSession(ctx context.Context, sessionRepo repository.SessionRepository, user *entity.User) error {
	active, err := sessionRepo.ActiveUser(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to read active session")
	}
	if active == nil || active.ID != user.ID {
		return nil
	}

	return errors.Wrap(sessionRepo.SetActiveUser(ctx, user), "failed to refresh active session")
}

// DeleteUser removes the user and ends its session. Its orders are kept.
func (srv *accountService) DeleteUser(ctx context.Context, userID string) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		err := repoFactory.UserRepo().Delete(ctx, userID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrapf(domainerrors.ErrUserNotFound, "user %s", userID)
		}
		if err != nil {
			return errors.Wrap(err, "failed to delete user")
		}

		sessionRepo := repoFactory.SessionRepo()
		active, err := sessionRepo.ActiveUser(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to read active session")
		}
		if active != nil && active.ID == userID {
			return errors.Wrap(sessionRepo.ClearActiveUser(ctx), "failed to clear active session")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("User deleted", slog.String("userID", userID))

	return nil
}

// VerifyIdentity returns the id of the user whose name and phone digits match.
func (srv *accountService) VerifyIdentity(ctx context.Context, name, phone string) (string, error) {
	nameKey := util.NormalizeKey(name)
	phoneDigits := util.DigitsOnly(phone)
	if nameKey == "" || phoneDigits == "" {
		return "", errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("nome e telefone são obrigatórios"), "identity check rejected")
	}

	users, err := srv.ListUsers(ctx)
	if err != nil {
		return "", err
	}

	for _, user := range users {
		if util.NormalizeKey(user.Name) == nameKey && util.DigitsOnly(user.Phone) == phoneDigits {
			return user.ID, nil
		}
	}

	return "", errors.Wrap(domainerrors.ErrIdentityNotVerified, "identity check failed")
}

// ListUsers returns every customer in signup order.
func (srv *accountService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	var users []*entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		users, err = repoFactory.UserRepo().List(ctx)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// GetUser returns one customer.
func (srv *accountService) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		user, err = repoFactory.UserRepo().FindByID(ctx, userID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrapf(domainerrors.ErrUserNotFound, "user %s", userID)
		}

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user")
	}

	return user, nil
}

// CurrentSession reports who holds the single active session. A stored user wins over the admin flag.
func (srv *accountService) CurrentSession(ctx context.Context) (entity.Session, error) {
	session := entity.Session{Kind: entity.SessionAnonymous}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.SessionRepo()

		user, err := sessionRepo.ActiveUser(ctx)
		if err != nil {
			return err
		}
		if user != nil {
			session = entity.Session{Kind: entity.SessionUser, User: user}

			return nil
		}

		isAdmin, err := sessionRepo.IsAdminActive(ctx)
		if err != nil {
			return err
		}
		if isAdmin {
			session.Kind = entity.SessionAdmin
		}

		return nil
	})
	if err != nil {
		return entity.Session{}, errors.Wrap(err, "failed to read session")
	}

	return session, nil
}

// ReconcileSessions runs at startup. Stored data holding both sessions keeps the user and
// logs the admin out.
func (srv *accountService) ReconcileSessions(ctx context.Context) error {
	cleared := false
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.SessionRepo()

		user, err := sessionRepo.ActiveUser(ctx)
		if err != nil || user == nil {
			return err
		}
		isAdmin, err := sessionRepo.IsAdminActive(ctx)
		if err != nil || !isAdmin {
			return err
		}
		cleared = true

		return sessionRepo.SetAdminActive(ctx, false)
	})
	if err != nil {
		return errors.Wrap(err, "failed to reconcile sessions")
	}

	if cleared {
		srv.log(ctx).Warn("Both sessions were stored, admin session cleared")
	}

	return nil
}

// applyProfile trims and validates the profile fields, then copies them onto user.
func applyProfile(user *entity.User, users []*entity.User, profile *usecase.ProfileInput) error {
	login := user.Login
	if profile.Login != nil {
		login = strings.TrimSpace(*profile.Login)
	}
	nationalID := user.NationalID
	if profile.NationalID != nil {
		nationalID = strings.TrimSpace(*profile.NationalID)
	}
	name := strings.TrimSpace(profile.Name)
	email := strings.TrimSpace(profile.Email)

	if missing := missingFields(map[string]string{"login": login, "name": name, "email": email}); len(missing) > 0 {
		return domainerrors.ErrValidationFailed.WithDetails("campos obrigatórios: " + strings.Join(missing, ", "))
	}

	// Only changed values are checked, against the other users.
	changedLogin, changedEmail, changedNationalID := "", "", ""
	if util.NormalizeKey(login) != util.NormalizeKey(user.Login) {
		changedLogin = login
	}
	if util.NormalizeKey(email) != util.NormalizeKey(user.Email) {
		changedEmail = email
	}
	if util.NormalizeKey(nationalID) != util.NormalizeKey(user.NationalID) {
		changedNationalID = nationalID
	}
	if err := checkUserUniqueness(users, user.ID, changedLogin, changedEmail, changedNationalID); err != nil {
		return err
	}

	user.Login = login
	user.Name = name
	user.Email = email
	user.NationalID = nationalID
	user.Address = strings.TrimSpace(profile.Address)
	user.PostalCode = strings.TrimSpace(profile.PostalCode)
	user.HouseNumber = strings.TrimSpace(profile.HouseNumber)
	user.Phone = strings.TrimSpace(profile.Phone)

	return nil
}

// checkUserUniqueness compares non-empty values, trimmed and case-insensitive, against every user but excludeID.
func checkUserUniqueness(users []*entity.User, excludeID, login, email, nationalID string) error {
	loginKey := util.NormalizeKey(login)
	emailKey := util.NormalizeKey(email)
	nationalIDKey := util.NormalizeKey(nationalID)

	for _, other := range users {
		if other.ID == excludeID {
			continue
		}
		if loginKey != "" && util.NormalizeKey(other.Login) == loginKey {
			return domainerrors.ErrLoginTaken
		}
		if emailKey != "" && util.NormalizeKey(other.Email) == emailKey {
			return domainerrors.ErrEmailTaken
		}
		if nationalIDKey != "" && util.NormalizeKey(other.NationalID) == nationalIDKey {
			return domainerrors.ErrNationalIDTaken
		}
	}

	return nil
}

// missingFields returns the sorted names whose values are empty.
func missingFields(fields map[string]string) []string {
	var missing []string
	for name, value := range fields {
		if value == "" {
			missing = append(missing, name)
		}
	}
	slices.Sort(missing)

	return missing
}

func updateKind(update usecase.UserUpdate) string {
	switch update.(type) {
	case usecase.ProfileUpdate, *usecase.ProfileUpdate:
		return "profile"
	case usecase.PasswordChange, *usecase.PasswordChange:
		return "password_change"
	case usecase.AdminPasswordReset, *usecase.AdminPasswordReset:
		return "admin_reset"
	case usecase.SelfServiceReset, *usecase.SelfServiceReset:
		return "self_service_reset"
	default:
		return "unknown"
	}
}
