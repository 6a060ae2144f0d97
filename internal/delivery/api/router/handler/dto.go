package handler

import (
	"time"

	"menumaster/internal/domain/entity"
	"menumaster/internal/usecase"

	"github.com/shopspring/decimal"
)

// Money amounts are rendered with two decimals, e.g. "25.50".
func money(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// UserResponse is a customer without its credential.
type UserResponse struct {
	ID          string `json:"id"`
	Login       string `json:"login"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	NationalID  string `json:"cpf,omitempty"`
	Address     string `json:"address,omitempty"`
	PostalCode  string `json:"cep,omitempty"`
	HouseNumber string `json:"houseNumber,omitempty"`
	Phone       string `json:"phone,omitempty"`
}

func newUserResponse(user *entity.User) *UserResponse {
	if user == nil {
		return nil
	}

	return &UserResponse{
		ID:          user.ID,
		Login:       user.Login,
		Name:        user.Name,
		Email:       user.Email,
		NationalID:  user.NationalID,
		Address:     user.Address,
		PostalCode:  user.PostalCode,
		HouseNumber: user.HouseNumber,
		Phone:       user.Phone,
	}
}

func newUserResponses(users []*entity.User) []*UserResponse {
	result := make([]*UserResponse, 0, len(users))
	for _, user := range users {
		result = append(result, newUserResponse(user))
	}

	return result
}

// SessionResponse reports who holds the active session.
type SessionResponse struct {
	Kind string        `json:"kind"`
	User *UserResponse `json:"user,omitempty"`
}

type ProductResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Category    string `json:"category"`
	ImageURL    string `json:"imageUrl"`
}

func newProductResponse(product *entity.Product) *ProductResponse {
	return &ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       money(product.Price),
		Category:    product.Category,
		ImageURL:    product.ImageURL,
	}
}

func newProductResponses(products []*entity.Product) []*ProductResponse {
	result := make([]*ProductResponse, 0, len(products))
	for _, product := range products {
		result = append(result, newProductResponse(product))
	}

	return result
}

type CartItemResponse struct {
	Product  *ProductResponse `json:"product"`
	Quantity int              `json:"quantity"`
	Subtotal string           `json:"subtotal"`
}

type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total string             `json:"total"`
}

func newCartResponse(view *usecase.CartView) *CartResponse {
	items := make([]CartItemResponse, 0, len(view.Items))
	for _, line := range view.Items {
		items = append(items, CartItemResponse{
			Product:  newProductResponse(&line.Product),
			Quantity: line.Quantity,
			Subtotal: money(line.Subtotal()),
		})
	}

	return &CartResponse{Items: items, Total: money(view.Total)}
}

type OrderItemResponse struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	Quantity  int    `json:"quantity"`
}

type OrderResponse struct {
	ID        string              `json:"id"`
	ShortCode string              `json:"shortCode"`
	CreatedAt time.Time           `json:"timestamp"`
	Items     []OrderItemResponse `json:"items"`
	Total     string              `json:"total"`
	UserID    string              `json:"userId,omitempty"`
}

func newOrderResponse(order *entity.CompletedOrder) *OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     money(item.Price),
			Quantity:  item.Quantity,
		})
	}

	return &OrderResponse{
		ID:        order.ID,
		ShortCode: order.ShortCode(),
		CreatedAt: order.CreatedAt,
		Items:     items,
		Total:     money(order.Total),
		UserID:    order.UserID,
	}
}

func newOrderResponses(orders []*entity.CompletedOrder) []*OrderResponse {
	result := make([]*OrderResponse, 0, len(orders))
	for _, order := range orders {
		result = append(result, newOrderResponse(order))
	}

	return result
}

type ReportResponse struct {
	Date  string `json:"date"`
	Total string `json:"total"`
}

func newReportResponse(report *entity.DailyReport) *ReportResponse {
	if report == nil {
		return nil
	}

	return &ReportResponse{Date: report.Date, Total: money(report.Total)}
}

type SettingsResponse struct {
	Address    string `json:"address"`
	PostalCode string `json:"cep"`
	Number     string `json:"number"`
}

func newSettingsResponse(settings *entity.StoreSettings) *SettingsResponse {
	return &SettingsResponse{
		Address:    settings.Address,
		PostalCode: settings.PostalCode,
		Number:     settings.Number,
	}
}

// ProfileRequest is the editable profile, shared by the customer and admin forms.
type ProfileRequest struct {
	Login       *string `json:"login"`
	Name        string  `json:"name" validate:"notblank"`
	Email       string  `json:"email" validate:"notblank"`
	NationalID  *string `json:"cpf"`
	Address     string  `json:"address"`
	PostalCode  string  `json:"cep"`
	HouseNumber string  `json:"houseNumber"`
	Phone       string  `json:"phone"`
}

func (r *ProfileRequest) toInput() usecase.ProfileInput {
	return usecase.ProfileInput{
		Login:       r.Login,
		Name:        r.Name,
		Email:       r.Email,
		NationalID:  r.NationalID,
		Address:     r.Address,
		PostalCode:  r.PostalCode,
		HouseNumber: r.HouseNumber,
		Phone:       r.Phone,
	}
}
