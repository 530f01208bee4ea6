package model

import (
	"time"
)

// User est un compte du site (membres de l'équipe de la liste inclus)
type User struct {
	MemberID       int       `json:"memberId"`
	Name           string    `json:"name"`
	PasswordHash   string    `json:"-"`
	ListTeamMember bool      `json:"listTeamMember"`
	CreatedAt      time.Time `json:"createdAt"`
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
