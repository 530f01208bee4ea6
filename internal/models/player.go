package model

import (
	"database/sql"
)

type Player struct {
	ID          int            `json:"id"`
	Name        string         `json:"name"`
	Banned      bool           `json:"banned"`
	Nationality sql.NullString `json:"nationality,omitempty"` // code ISO du pays
}
