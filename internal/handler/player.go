package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5"

	"github.com/GDOmega/pointercrate/internal/database"
	model "github.com/GDOmega/pointercrate/internal/models"
	"github.com/GDOmega/pointercrate/internal/scanner"
	"github.com/GDOmega/pointercrate/internal/utils"
)

// GetPlayers récupère la liste des joueurs
func GetPlayers(w http.ResponseWriter, r *http.Request) {
	limit := parseLimit(r, 50)

	ctx := context.Background()

	rows, err := database.DB.Query(ctx, `
		SELECT id, name, banned, nationality
		FROM players
		ORDER BY name
		LIMIT $1
	`, limit)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query players", err)
		return
	}
	defer rows.Close()

	var players []model.Player
	for rows.Next() {
		player, err := scanner.ScanPlayer(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan player row", err)
			return
		}
		players = append(players, *player)
	}

	utils.Success(w, players)
}

// GetPlayerByName récupère un joueur par son nom
func GetPlayerByName(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	name := vars["name"]

	ctx := r.Context()

	row := database.DB.QueryRow(ctx, `
		SELECT id, name, banned, nationality
		FROM players
		WHERE LOWER(name) = LOWER($1)
	`, name)

	player, err := scanner.ScanPlayer(row)
	if errors.Is(err, pgx.ErrNoRows) {
		utils.ErrorSimple(w, http.StatusNotFound, "player not found")
		return
	}
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not fetch player", err)
		return
	}

	utils.Success(w, player)
}

// getOrCreatePlayer retourne le joueur portant ce nom, en le créant s'il
// n'existe pas encore
func getOrCreatePlayer(ctx context.Context, name string) (*model.Player, error) {
	row := database.DB.QueryRow(ctx, `
		SELECT id, name, banned, nationality
		FROM players
		WHERE LOWER(name) = LOWER($1)
	`, name)

	player, err := scanner.ScanPlayer(row)
	if errors.Is(err, pgx.ErrNoRows) {
		row = database.DB.QueryRow(ctx, `
			INSERT INTO players (name) VALUES ($1)
			RETURNING id, name, banned, nationality
		`, name)
		return scanner.ScanPlayer(row)
	}
	if err != nil {
		return nil, err
	}

	return player, nil
}
