package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	model "github.com/GDOmega/pointercrate/internal/models"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestValidatePatchDemon(t *testing.T) {
	tests := []struct {
		name    string
		patch   model.PatchDemon
		wantErr bool
	}{
		{
			name:  "patch vide",
			patch: model.PatchDemon{},
		},
		{
			name: "tous les champs valides",
			patch: model.PatchDemon{
				Name:        strPtr("Bloodbath"),
				Position:    intPtr(3),
				Requirement: intPtr(85),
				Video:       strPtr("https://youtube.com/watch?v=abc"),
				Verifier:    strPtr("Riot"),
				Publisher:   strPtr("Pennutoh"),
			},
		},
		{
			name:    "nom vide refusé",
			patch:   model.PatchDemon{Name: strPtr("   ")},
			wantErr: true,
		},
		{
			name:    "position nulle refusée",
			patch:   model.PatchDemon{Position: intPtr(0)},
			wantErr: true,
		},
		{
			name:    "requirement au-delà de 100",
			patch:   model.PatchDemon{Requirement: intPtr(101)},
			wantErr: true,
		},
		{
			name:    "requirement négatif",
			patch:   model.PatchDemon{Requirement: intPtr(-1)},
			wantErr: true,
		},
		{
			name:    "vidéo hors hébergeurs acceptés",
			patch:   model.PatchDemon{Video: strPtr("https://example.com/video")},
			wantErr: true,
		},
		{
			name:    "vérificateur vide refusé",
			patch:   model.PatchDemon{Verifier: strPtr("")},
			wantErr: true,
		},
		{
			name:    "éditeur vide refusé",
			patch:   model.PatchDemon{Publisher: strPtr("")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePatchDemon(&tt.patch)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
