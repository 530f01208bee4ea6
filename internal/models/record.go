package model

import (
	"database/sql"
	"time"
)

// Statuts possibles d'un record
const (
	RecordSubmitted = "SUBMITTED"
	RecordApproved  = "APPROVED"
	RecordRejected  = "REJECTED"
)

type Record struct {
	ID        int            `json:"id"`
	Progress  int            `json:"progress"`
	Video     sql.NullString `json:"video,omitempty"`
	Status    string         `json:"status"`
	Player    string         `json:"player"`
	Demon     string         `json:"demon"`
	Position  int            `json:"position"`
	Submitter int            `json:"-"`
	CreatedAt time.Time      `json:"createdAt"`
}

// Submission est le corps de la requête de soumission d'un record
type Submission struct {
	Progress   int     `json:"progress"`
	Player     string  `json:"player"`
	Demon      string  `json:"demon"`
	Video      *string `json:"video,omitempty"`
	VerifyOnly bool    `json:"verifyOnly,omitempty"` // valider sans insérer
}

// Submitter identifie l'adresse IP ayant soumis des records
type Submitter struct {
	ID     int    `json:"id"`
	IP     string `json:"-"`
	Banned bool   `json:"banned"`
}
