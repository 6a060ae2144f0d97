package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	deliverycontext "menumaster/internal/delivery/context"
	"menumaster/internal/domain/constants"
	"menumaster/internal/domain/entity"
	domainerrors "menumaster/internal/domain/errors"
	"menumaster/internal/domain/repository"
	"menumaster/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type catalogService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *catalogService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	var products []*entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		products, err = repoFactory.ProductRepo().List(ctx)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

func (srv *catalogService) GetProduct(ctx context.Context, productID string) (*entity.Product, error) {
	var product *entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		product, err = findProduct(ctx, repoFactory.ProductRepo(), productID)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get product")
	}

	return product, nil
}

// FilterProducts keeps catalog order.
func (srv *catalogService) FilterProducts(ctx context.Context, filter usecase.ProductFilter) ([]*entity.Product, error) {
	products, err := srv.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(strings.TrimSpace(filter.Term))
	category := strings.TrimSpace(filter.Category)

	matched := make([]*entity.Product, 0, len(products))
	for _, product := range products {
		if category != "" && category != constants.AllCategories && product.Category != category {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(product.Name), term) &&
			!strings.Contains(strings.ToLower(product.Description), term) {
			continue
		}
		matched = append(matched, product)
	}

	return matched, nil
}

func (srv *catalogService) Categories(ctx context.Context) ([]string, error) {
	products, err := srv.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	var categories []string
	for _, product := range products {
		if product.Category != "" && !slices.Contains(categories, product.Category) {
			categories = append(categories, product.Category)
		}
	}
	slices.Sort(categories)

	return append([]string{constants.AllCategories}, categories...), nil
}

func (srv *catalogService) AddProduct(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	if err := validateProduct(product); err != nil {
		return nil, errors.Wrap(err, "product rejected")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		_, err := productRepo.FindByID(ctx, product.ID)
		if err == nil {
			return errors.Wrapf(domainerrors.ErrProductExists, "product %s", product.ID)
		}
		if !errors.Is(err, repository.ErrProductNotFound) {
			return errors.Wrap(err, "failed to look up product")
		}

		return errors.Wrap(productRepo.Create(ctx, product), "failed to create product")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to add product")
	}

	srv.log(ctx).Info("Product added", slog.String("productID", product.ID))

	return product, nil
}

func (srv *catalogService) UpdateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		if _, err := findProduct(ctx, productRepo, product.ID); err != nil {
			return err
		}
		if err := validateProduct(product); err != nil {
			return err
		}

		return errors.Wrap(productRepo.Update(ctx, product), "failed to update product")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	srv.log(ctx).Info("Product updated", slog.String("productID", product.ID))

	return product, nil
}

func (srv *catalogService) DeleteProduct(ctx context.Context, productID string) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		err := repoFactory.ProductRepo().Delete(ctx, productID)
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.Wrapf(domainerrors.ErrProductNotFound, "product %s", productID)
		}
		if err != nil {
			return errors.Wrap(err, "failed to delete product")
		}

		repoFactory.CartRepo().Cart(ctx).Remove(productID)

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.String("productID", productID))

	return nil
}

func findProduct(ctx context.Context, productRepo repository.ProductRepository, productID string) (*entity.Product, error) {
	product, err := productRepo.FindByID(ctx, productID)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, errors.Wrapf(domainerrors.ErrProductNotFound, "product %s", productID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// validateProduct trims the text fields in place and checks the required ones.
func validateProduct(product *entity.Product) error {
	if product == nil {
		return domainerrors.ErrValidationFailed.WithDetails("produto ausente")
	}

	product.ID = strings.TrimSpace(product.ID)
	product.Name = strings.TrimSpace(product.Name)
	product.Description = strings.TrimSpace(product.Description)
	product.Category = strings.TrimSpace(product.Category)
	product.ImageURL = strings.TrimSpace(product.ImageURL)

	if missing := product.MissingFields(); len(missing) > 0 {
		return domainerrors.ErrValidationFailed.WithDetails("campos inválidos: " + strings.Join(missing, ", "))
	}

	return nil
}
