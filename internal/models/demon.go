package model

import (
	"database/sql"
)

type Demon struct {
	ID          int            `json:"id"`
	Name        string         `json:"name"`
	Position    int            `json:"position"`
	Requirement int            `json:"requirement"` // progrès minimum pour soumettre un record
	Video       sql.NullString `json:"video,omitempty"`
	Verifier    string         `json:"verifier"`
	Publisher   string         `json:"publisher"`
}

// MinimalDemon est la forme réduite utilisée dans les listes et les résumés
type MinimalDemon struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Position int    `json:"position"`
}

// PatchDemon est le corps d'une modification de démon. Seuls les champs
// présents sont appliqués.
type PatchDemon struct {
	Name        *string `json:"name,omitempty"`
	Position    *int    `json:"position,omitempty"`
	Requirement *int    `json:"requirement,omitempty"`
	Video       *string `json:"video,omitempty"`
	Verifier    *string `json:"verifier,omitempty"`
	Publisher   *string `json:"publisher,omitempty"`
}
