package contextkeys

type ContextKey string

const (
	// DBContextKey carries the *gorm.DB handle (connection pool or an open
	// transaction) through gin's context. Integration tests inject a
	// transaction under this key so every request in a test shares it.
	DBContextKey ContextKey = "db"
)
