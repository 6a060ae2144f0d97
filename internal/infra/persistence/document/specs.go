package document

import (
	"menumaster/internal/domain/repository"
	"menumaster/internal/infra/persistence/model"
)

var (
	usersDoc = docSpec[[]model.UserModel]{
		key:        repository.DocUsers,
		newDefault: func() []model.UserModel { return []model.UserModel{} },
		valid: func(users []model.UserModel) bool {
			for _, user := range users {
				if user.ID == "" {
					return false
				}
			}

			return true
		},
	}

	adminsDoc = docSpec[[]model.AdminModel]{
		key:        repository.DocAdmins,
		newDefault: func() []model.AdminModel { return []model.AdminModel{} },
	}

	activeUserDoc = docSpec[*model.UserModel]{
		key:        repository.DocActiveUserSession,
		newDefault: func() *model.UserModel { return nil },
	}

	adminSessionDoc = docSpec[bool]{
		key:        repository.DocAdminSession,
		newDefault: func() bool { return false },
	}

	productsDoc = docSpec[[]model.ProductModel]{
		key:            repository.DocProducts,
		newDefault:     model.StarterCatalog,
		persistDefault: true,
		valid: func(products []model.ProductModel) bool {
			for _, product := range products {
				if product.ID == "" || product.Name == "" {
					return false
				}
			}

			return true
		},
	}

	ordersDoc = docSpec[[]model.CompletedOrderModel]{
		key:        repository.DocCompletedOrders,
		newDefault: func() []model.CompletedOrderModel { return []model.CompletedOrderModel{} },
		valid: func(orders []model.CompletedOrderModel) bool {
			for _, order := range orders {
				if order.ID == "" || order.Timestamp == 0 || order.Items == nil {
					return false
				}
			}

			return true
		},
	}

	reportsDoc = docSpec[[]model.DailyReportModel]{
		key:        repository.DocMonthlyReports,
		newDefault: func() []model.DailyReportModel { return []model.DailyReportModel{} },
		valid: func(reports []model.DailyReportModel) bool {
			for _, report := range reports {
				if report.Date == "" {
					return false
				}
			}

			return true
		},
	}

	settingsDoc = docSpec[*model.StoreSettingsModel]{
		key:        repository.DocStoreSettings,
		newDefault: func() *model.StoreSettingsModel { return nil },
	}
)
