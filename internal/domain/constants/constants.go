package constants

// Deployment environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Document store drivers
const (
	StorageDriverBlob     = "blob"
	StorageDriverPostgres = "postgres"
	StorageDriverMongo    = "mongo"
)

// Password hashing schemes
const (
	PasswordHashingPlain  = "plain"
	PasswordHashingBcrypt = "bcrypt"
)

// User login lookup fields
const (
	UserLoginFieldName  = "name"
	UserLoginFieldLogin = "login"
)

// AllCategories is the synthetic category that matches every product.
const AllCategories = "Todos"

// DefaultAdmin seed values
const (
	DefaultAdminID       = "admin_default"
	DefaultAdminLogin    = "admin"
	DefaultAdminPassword = "0000"
)
