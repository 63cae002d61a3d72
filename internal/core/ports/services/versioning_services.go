package services

// VersioningSvc picks a response shape for a discriminator value.
type VersioningSvc interface {
	// Resolve returns the response body for version, or an error matching apperrors.ErrValidation.
	Resolve(version string) (any, error)
	// Versions lists the accepted discriminator values in ascending order.
	Versions() []string
}
