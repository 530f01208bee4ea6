package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/GDOmega/pointercrate/internal/database"
	"github.com/GDOmega/pointercrate/internal/logger"
	"github.com/GDOmega/pointercrate/internal/middleware"
	model "github.com/GDOmega/pointercrate/internal/models"
	"github.com/GDOmega/pointercrate/internal/scanner"
	"github.com/GDOmega/pointercrate/internal/utils"
)

// Login vérifie le mot de passe et délivre un token d'accès
func Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" || req.Password == "" {
		utils.ErrorSimple(w, http.StatusBadRequest, "name and password are required")
		return
	}

	ctx := r.Context()

	row := database.DB.QueryRow(ctx, `
		SELECT member_id, name, password_hash, list_team_member, created_at
		FROM members
		WHERE name = $1
	`, req.Name)

	user, err := scanner.ScanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		utils.ErrorSimple(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not fetch user", err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token := uuid.NewString()
	if _, err := database.DB.Exec(ctx, `
		INSERT INTO access_tokens (token, member_id) VALUES ($1, $2)
	`, token, user.MemberID); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create access token", err)
		return
	}

	logger.Info("User %s logged in", user.Name)

	utils.Success(w, model.LoginResponse{Token: token, User: *user})
}

// Logout invalide le token de la session courante
func Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.GetTokenFromContext(r.Context())
	if !ok {
		utils.ErrorSimple(w, http.StatusUnauthorized, "missing token")
		return
	}

	if _, err := database.DB.Exec(r.Context(), `
		DELETE FROM access_tokens WHERE token = $1
	`, token); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not invalidate token", err)
		return
	}

	utils.Message(w, "logged out")
}
