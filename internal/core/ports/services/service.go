package services

// ServiceContainer holds instances of the application services.
// Each binary fills only the fields it serves; handlers are registered for non-nil fields.
type ServiceContainer struct {
	ExchangeRate ExchangeRateSvcFacade
	SampleAPI    SampleAPISvc

	// Conversion uses the direct HTTP transport, ConversionAlt the typed client.
	Conversion    ConversionSvc
	ConversionAlt ConversionSvc

	Versioning VersioningSvc
	User       UserSvcFacade
}
