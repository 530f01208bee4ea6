package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5"

	"github.com/GDOmega/pointercrate/internal/database"
	"github.com/GDOmega/pointercrate/internal/logger"
	"github.com/GDOmega/pointercrate/internal/middleware"
	model "github.com/GDOmega/pointercrate/internal/models"
	"github.com/GDOmega/pointercrate/internal/scanner"
	"github.com/GDOmega/pointercrate/internal/utils"
)

const demonColumns = `
	d.id, d.name, d.position, d.requirement, d.video,
	verifier.name, publisher.name
`

const demonJoins = `
	FROM demons d
	INNER JOIN players verifier ON d.verifier = verifier.id
	INNER JOIN players publisher ON d.publisher = publisher.id
`

// GetDemons récupère la liste des démons triée par position
func GetDemons(w http.ResponseWriter, r *http.Request) {
	afterStr := r.URL.Query().Get("after")

	after := 0
	if afterStr != "" {
		if a, err := strconv.Atoi(afterStr); err == nil && a > 0 {
			after = a
		}
	}

	limit := parseLimit(r, 50)

	ctx := context.Background()

	rows, err := database.DB.Query(ctx, `
		SELECT `+demonColumns+demonJoins+`
		WHERE d.position > $1
		ORDER BY d.position
		LIMIT $2
	`, after, limit)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query demons", err)
		return
	}
	defer rows.Close()

	var demons []model.Demon
	for rows.Next() {
		demon, err := scanner.ScanDemon(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan demon row", err)
			return
		}
		demons = append(demons, *demon)
	}

	utils.Success(w, demons)
}

// GetDemonByPosition récupère un démon par sa position dans la liste
func GetDemonByPosition(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	position, err := strconv.Atoi(vars["position"])
	if err != nil || position < 1 {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid position")
		return
	}

	ctx := r.Context()

	row := database.DB.QueryRow(ctx, `
		SELECT `+demonColumns+demonJoins+`
		WHERE d.position = $1
	`, position)

	demon, err := scanner.ScanDemon(row)
	if errors.Is(err, pgx.ErrNoRows) {
		utils.ErrorSimple(w, http.StatusNotFound, "demon not found")
		return
	}
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not fetch demon", err)
		return
	}

	utils.Success(w, demon)
}

// getDemonByName retourne un démon par son nom, pgx.ErrNoRows s'il n'existe pas
func getDemonByName(ctx context.Context, name string) (*model.Demon, error) {
	row := database.DB.QueryRow(ctx, `
		SELECT `+demonColumns+demonJoins+`
		WHERE LOWER(d.name) = LOWER($1)
	`, name)

	return scanner.ScanDemon(row)
}

// validatePatchDemon vérifie les champs présents d'une modification
func validatePatchDemon(patch *model.PatchDemon) error {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return errors.New("name cannot be empty")
	}
	if patch.Position != nil && *patch.Position < 1 {
		return errors.New("position must be at least 1")
	}
	if patch.Requirement != nil && (*patch.Requirement < 0 || *patch.Requirement > 100) {
		return errors.New("requirement must be between 0 and 100")
	}
	if patch.Video != nil {
		if err := validateVideo(*patch.Video); err != nil {
			return err
		}
	}
	if patch.Verifier != nil && strings.TrimSpace(*patch.Verifier) == "" {
		return errors.New("verifier cannot be empty")
	}
	if patch.Publisher != nil && strings.TrimSpace(*patch.Publisher) == "" {
		return errors.New("publisher cannot be empty")
	}
	return nil
}

// UpdateDemon modifie un démon de la liste (réservé à l'équipe de la liste).
// Un changement de position décale les autres démons dans la même transaction.
func UpdateDemon(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok || !user.ListTeamMember {
		utils.ErrorSimple(w, http.StatusForbidden, "list team membership required")
		return
	}

	vars := mux.Vars(r)
	position, err := strconv.Atoi(vars["position"])
	if err != nil || position < 1 {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid position")
		return
	}

	var patch model.PatchDemon
	if err := utils.DecodeJSON(r, &patch); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := validatePatchDemon(&patch); err != nil {
		utils.ErrorSimple(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	ctx := r.Context()

	var demonID, currentPosition int
	var demonName string
	err = database.DB.QueryRow(ctx, `
		SELECT id, name, position FROM demons WHERE position = $1
	`, position).Scan(&demonID, &demonName, &currentPosition)
	if errors.Is(err, pgx.ErrNoRows) {
		utils.ErrorSimple(w, http.StatusNotFound, "demon not found")
		return
	}
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not fetch demon", err)
		return
	}

	// La position cible doit rester dans la liste
	if patch.Position != nil {
		var maxPosition int
		if err := database.DB.QueryRow(ctx, `SELECT COUNT(*) FROM demons`).Scan(&maxPosition); err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not count demons", err)
			return
		}
		if *patch.Position > maxPosition {
			utils.ErrorSimple(w, http.StatusUnprocessableEntity, "position exceeds list length")
			return
		}
	}

	// Résoudre vérificateur et éditeur avant la transaction, créés au besoin
	var verifierID, publisherID *int
	if patch.Verifier != nil {
		player, err := getOrCreatePlayer(ctx, *patch.Verifier)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not resolve verifier", err)
			return
		}
		verifierID = &player.ID
	}
	if patch.Publisher != nil {
		player, err := getOrCreatePlayer(ctx, *patch.Publisher)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not resolve publisher", err)
			return
		}
		publisherID = &player.ID
	}

	logger.Info("Patching demon %s (position %d)", demonName, currentPosition)

	tx, err := database.DB.Begin(ctx)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not start transaction", err)
		return
	}
	defer tx.Rollback(ctx)

	if patch.Position != nil && *patch.Position != currentPosition {
		target := *patch.Position

		// Sortir le démon de la séquence avant de décaler les autres
		if _, err := tx.Exec(ctx, `UPDATE demons SET position = -1 WHERE id = $1`, demonID); err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not move demon", err)
			return
		}

		if target < currentPosition {
			_, err = tx.Exec(ctx, `
				UPDATE demons SET position = position + 1
				WHERE position >= $1 AND position < $2
			`, target, currentPosition)
		} else {
			_, err = tx.Exec(ctx, `
				UPDATE demons SET position = position - 1
				WHERE position > $1 AND position <= $2
			`, currentPosition, target)
		}
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not shift demons", err)
			return
		}

		if _, err := tx.Exec(ctx, `UPDATE demons SET position = $1 WHERE id = $2`, target, demonID); err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not move demon", err)
			return
		}
	}

	_, err = tx.Exec(ctx, `
		UPDATE demons SET
			name = COALESCE($1, name),
			requirement = COALESCE($2, requirement),
			video = COALESCE($3, video),
			verifier = COALESCE($4, verifier),
			publisher = COALESCE($5, publisher)
		WHERE id = $6
	`, patch.Name, patch.Requirement, patch.Video, verifierID, publisherID, demonID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not update demon", err)
		return
	}

	if err := tx.Commit(ctx); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not commit update", err)
		return
	}

	// Les positions ont pu changer, les statistiques en cache sont périmées
	statsCache.Flush()

	row := database.DB.QueryRow(ctx, `
		SELECT `+demonColumns+demonJoins+`
		WHERE d.id = $1
	`, demonID)

	demon, err := scanner.ScanDemon(row)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not fetch updated demon", err)
		return
	}

	utils.Success(w, demon)
}
