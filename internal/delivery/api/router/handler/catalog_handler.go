package handler

import (
	"log/slog"
	"net/http"

	"menumaster/internal/delivery/api/response"
	"menumaster/internal/domain/entity"
	"menumaster/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves the product catalog
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ProductRequest represents the admin product form. Price accepts a JSON number or string.
type ProductRequest struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	ImageURL    string          `json:"imageUrl"`
}

func (r *ProductRequest) toEntity() *entity.Product {
	return &entity.Product{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Category:    r.Category,
		ImageURL:    r.ImageURL,
	}
}

// ListProducts filters by the q and category query parameters.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	products, err := h.catalogUC.FilterProducts(c.Request().Context(), usecase.ProductFilter{
		Term:     c.QueryParam("q"),
		Category: c.QueryParam("category"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newProductResponses(products))
}

func (h *CatalogHandler) GetProduct(c echo.Context) error {
	product, err := h.catalogUC.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newProductResponse(product))
}

func (h *CatalogHandler) Categories(c echo.Context) error {
	categories, err := h.catalogUC.Categories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, categories)
}

func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados do produto inválidos")
	}

	product, err := h.catalogUC.AddProduct(c.Request().Context(), req.toEntity())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newProductResponse(product))
}

// UpdateProduct takes the id from the path.
func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados do produto inválidos")
	}

	product := req.toEntity()
	product.ID = c.Param("id")

	updated, err := h.catalogUC.UpdateProduct(c.Request().Context(), product)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newProductResponse(updated))
}

func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	if err := h.catalogUC.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
