package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GDOmega/pointercrate/internal/config"
)

func TestValidateSubmission(t *testing.T) {
	Setup(&config.Config{ListSize: 75, ExtendedListSize: 150, StatsCacheTTL: 60})

	tests := []struct {
		name        string
		progress    int
		position    int
		requirement int
		wantErr     error
	}{
		{
			name:     "record valide sur la liste principale",
			progress: 60, position: 10, requirement: 50,
		},
		{
			name:     "100% sur la liste étendue",
			progress: 100, position: 120, requirement: 100,
		},
		{
			name:     "la liste legacy refuse toute soumission",
			progress: 100, position: 200, requirement: 100,
			wantErr: errSubmitLegacy,
		},
		{
			name:     "la liste étendue refuse un progrès partiel",
			progress: 99, position: 120, requirement: 50,
			wantErr: errNon100Extended,
		},
		{
			name:     "le progrès ne peut pas dépasser 100",
			progress: 101, position: 10, requirement: 50,
			wantErr: errProgressTooHigh,
		},
		{
			name:     "position exactement au seuil principal",
			progress: 60, position: 75, requirement: 50,
		},
		{
			name:     "position exactement au seuil étendu",
			progress: 100, position: 150, requirement: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSubmission(tt.progress, tt.position, tt.requirement)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	t.Run("progrès sous le requirement du démon", func(t *testing.T) {
		err := validateSubmission(40, 10, 50)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "at least 50")
	})
}
