package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/SscSPs/currency_microservices/internal/apperrors"
	"github.com/SscSPs/currency_microservices/internal/core/domain"
	portssvc "github.com/SscSPs/currency_microservices/internal/core/ports/services"
)

// VersioningService maps a version discriminator to the response shape of that version.
type VersioningService struct {
	shapes map[string]func() any
}

var _ portssvc.VersioningSvc = (*VersioningService)(nil)

// NewVersioningService creates the dispatch table for the person resource.
func NewVersioningService() *VersioningService {
	return &VersioningService{
		shapes: map[string]func() any{
			"1": func() any { return domain.PersonV1{Name: "Bob Charlie"} },
			"2": func() any {
				return domain.PersonV2{Name: domain.Name{FirstName: "Bob", LastName: "Charlie"}}
			},
		},
	}
}

// Resolve returns a fresh response body for version.
func (s *VersioningService) Resolve(version string) (any, error) {
	build, ok := s.shapes[strings.TrimSpace(version)]
	if !ok {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unsupported version %q, expected one of %s",
			version, strings.Join(s.Versions(), ", ")))
	}
	return build(), nil
}

func (s *VersioningService) Versions() []string {
	versions := make([]string, 0, len(s.shapes))
	for v := range s.shapes {
		versions = append(versions, v)
	}
	sort.Strings(versions)
	return versions
}
