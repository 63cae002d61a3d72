package services

import (
	portsrepo "github.com/SscSPs/currency_microservices/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_microservices/internal/core/ports/services"
)

// NewServiceContainer wires the repository-backed services. Services that need outbound
// transports (conversion, sample API) are added by the binary that owns those transports.
func NewServiceContainer(repos portsrepo.RepositoryProvider, instanceID string) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{
		Versioning: NewVersioningService(),
	}
	if repos.ExchangeRateRepo != nil {
		container.ExchangeRate = NewExchangeRateService(repos.ExchangeRateRepo, instanceID)
	}
	if repos.UserRepo != nil {
		container.User = NewUserService(repos.UserRepo)
	}
	return container
}
