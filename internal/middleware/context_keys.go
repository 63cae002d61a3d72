package middleware

// contextKey is the type for values this package stores in contexts.
// Using a custom type prevents collisions.
type contextKey string

// loggerKey is the key used to store the logger in the Gin and request contexts.
const loggerKey = contextKey("logger")
