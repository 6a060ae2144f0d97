package repository

import "context"

// TransactionManager defines the interface for running an operation as one unit of work.
// This allows the use case layer to stay independent of the document store backend.
type TransactionManager interface {
	// Execute runs fn with repositories bound to one unit of work.
	// If fn returns an error nothing is written. Otherwise every staged change is persisted together.
	// Calls are serialized.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances that are bound to a specific unit of work.
type RepositoryFactory interface {
	UserRepo() UserRepository
	AdminRepo() AdminRepository
	SessionRepo() SessionRepository
	ProductRepo() ProductRepository
	CartRepo() CartRepository
	OrderRepo() OrderRepository
	ReportRepo() ReportRepository
	SettingsRepo() SettingsRepository
}
