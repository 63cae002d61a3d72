package services_test

import (
	"testing"

	"github.com/SscSPs/currency_microservices/internal/apperrors"
	"github.com/SscSPs/currency_microservices/internal/core/domain"
	"github.com/SscSPs/currency_microservices/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersioningService_Resolve(t *testing.T) {
	svc := services.NewVersioningService()

	tests := []struct {
		name    string
		version string
		want    any
		wantErr bool
	}{
		{name: "v1 flat name", version: "1", want: domain.PersonV1{Name: "Bob Charlie"}},
		{name: "v2 structured name", version: "2", want: domain.PersonV2{Name: domain.Name{FirstName: "Bob", LastName: "Charlie"}}},
		{name: "surrounding space", version: " 2 ", want: domain.PersonV2{Name: domain.Name{FirstName: "Bob", LastName: "Charlie"}}},
		{name: "unknown", version: "3", wantErr: true},
		{name: "empty", version: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Resolve(tt.version)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVersioningService_Versions(t *testing.T) {
	assert.Equal(t, []string{"1", "2"}, services.NewVersioningService().Versions())
}
