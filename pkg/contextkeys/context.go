package contextkeys

// ContextKey is the type for values placed in request contexts by
// middleware. A named type avoids collisions with other packages.
type ContextKey string

const (
	// DBContextKey carries the *gorm.DB handle (pool in production,
	// a transaction in tests) for the current request.
	DBContextKey ContextKey = "db"
)
