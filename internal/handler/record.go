package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5"

	"github.com/GDOmega/pointercrate/internal/database"
	"github.com/GDOmega/pointercrate/internal/logger"
	"github.com/GDOmega/pointercrate/internal/middleware"
	model "github.com/GDOmega/pointercrate/internal/models"
	"github.com/GDOmega/pointercrate/internal/scanner"
	"github.com/GDOmega/pointercrate/internal/utils"
)

// Erreurs de validation d'une soumission
var (
	errSubmitLegacy    = errors.New("legacy demons do not accept records")
	errNon100Extended  = errors.New("extended list demons only accept 100% records")
	errProgressTooHigh = errors.New("progress cannot exceed 100")
)

// validateSubmission applique les règles de la liste à une soumission :
// pas de record sur la liste legacy, 100% obligatoire sur la liste étendue,
// progrès entre le requirement du démon et 100
func validateSubmission(progress, position, requirement int) error {
	if position > cfg.ExtendedListSize {
		return errSubmitLegacy
	}
	if position > cfg.ListSize && progress != 100 {
		return errNon100Extended
	}
	if progress > 100 {
		return errProgressTooHigh
	}
	if progress < requirement {
		return fmt.Errorf("progress must be at least %d", requirement)
	}
	return nil
}

// SubmitRecord traite la soumission d'un record
func SubmitRecord(w http.ResponseWriter, r *http.Request) {
	var submission model.Submission
	if err := utils.DecodeJSON(r, &submission); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if submission.Player == "" || submission.Demon == "" {
		utils.ErrorSimple(w, http.StatusBadRequest, "player and demon are required")
		return
	}

	if submission.Video != nil {
		if err := validateVideo(*submission.Video); err != nil {
			utils.ErrorSimple(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
	}

	ctx := r.Context()

	// Le submitter est identifié par son IP, créé au premier envoi
	submitter, err := getOrCreateSubmitter(ctx, utils.GetIP(r))
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not resolve submitter", err)
		return
	}
	if submitter.Banned {
		utils.ErrorSimple(w, http.StatusForbidden, "you are banned from submitting records")
		return
	}

	demon, err := getDemonByName(ctx, submission.Demon)
	if errors.Is(err, pgx.ErrNoRows) {
		utils.ErrorSimple(w, http.StatusNotFound, "demon not found")
		return
	}
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not fetch demon", err)
		return
	}

	// Le joueur est créé s'il n'existe pas encore
	player, err := getOrCreatePlayer(ctx, submission.Player)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not resolve player", err)
		return
	}
	if player.Banned {
		utils.ErrorSimple(w, http.StatusForbidden, "this player is banned from the list")
		return
	}

	if err := validateSubmission(submission.Progress, demon.Position, demon.Requirement); err != nil {
		utils.ErrorSimple(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	// Doublon : un record existant rejeté ou de progrès supérieur ou égal
	// bloque la soumission, un record soumis de progrès inférieur est remplacé
	existing, err := getRecordByPlayerAndDemon(ctx, player.ID, demon.ID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		utils.Error(w, http.StatusInternalServerError, "could not check for duplicates", err)
		return
	}

	if existing != nil {
		if existing.Status == model.RecordRejected || existing.Progress >= submission.Progress {
			utils.ErrorSimple(w, http.StatusConflict,
				fmt.Sprintf("a record with status %s already exists for this player", existing.Status))
			return
		}

		if submission.VerifyOnly {
			utils.Success(w, nil)
			return
		}

		if existing.Status == model.RecordSubmitted {
			logger.Debug("Replacing submitted record %d with higher progress", existing.ID)

			if _, err := database.DB.Exec(ctx, `DELETE FROM records WHERE id = $1`, existing.ID); err != nil {
				utils.Error(w, http.StatusInternalServerError, "could not replace record", err)
				return
			}
		}
	} else if submission.VerifyOnly {
		utils.Success(w, nil)
		return
	}

	var recordID int
	err = database.DB.QueryRow(ctx, `
		INSERT INTO records (progress, video, status, player_id, submitter_id, demon_id)
		VALUES ($1, $2, 'SUBMITTED', $3, $4, $5)
		RETURNING id
	`, submission.Progress, submission.Video, player.ID, submitter.ID, demon.ID).Scan(&recordID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not insert record", err)
		return
	}

	logger.Success("New record %d submitted: %s %d%% on %s", recordID, player.Name, submission.Progress, demon.Name)

	record := model.Record{
		ID:       recordID,
		Progress: submission.Progress,
		Status:   model.RecordSubmitted,
		Player:   player.Name,
		Demon:    demon.Name,
		Position: demon.Position,
	}
	if submission.Video != nil {
		record.Video = utils.StringToNullString(*submission.Video)
	}

	utils.JSON(w, http.StatusCreated, utils.APIResponse{Success: true, Data: record})
}

// GetRecordById récupère un record par son identifiant
func GetRecordById(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid record id")
		return
	}

	ctx := r.Context()

	row := database.DB.QueryRow(ctx, `
		SELECT r.id, r.progress, r.video, r.status, p.name, d.name, d.position, r.submitter_id, r.created_at
		FROM records r
		INNER JOIN players p ON r.player_id = p.id
		INNER JOIN demons d ON r.demon_id = d.id
		WHERE r.id = $1
	`, id)

	record, err := scanner.ScanRecord(row)
	if errors.Is(err, pgx.ErrNoRows) {
		utils.ErrorSimple(w, http.StatusNotFound, "record not found")
		return
	}
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not fetch record", err)
		return
	}

	utils.Success(w, record)
}

// DeleteRecord supprime un record (réservé à l'équipe de la liste)
func DeleteRecord(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok || !user.ListTeamMember {
		utils.ErrorSimple(w, http.StatusForbidden, "list team membership required")
		return
	}

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid record id")
		return
	}

	tag, err := database.DB.Exec(r.Context(), `DELETE FROM records WHERE id = $1`, id)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not delete record", err)
		return
	}
	if tag.RowsAffected() == 0 {
		utils.ErrorSimple(w, http.StatusNotFound, "record not found")
		return
	}

	logger.Warning("Record %d deleted by %s", id, user.Name)

	utils.Message(w, "record deleted")
}

func getOrCreateSubmitter(ctx context.Context, ip string) (*model.Submitter, error) {
	var submitter model.Submitter
	submitter.IP = ip

	err := database.DB.QueryRow(ctx, `
		SELECT submitter_id, banned FROM submitters WHERE ip_address = $1
	`, ip).Scan(&submitter.ID, &submitter.Banned)
	if errors.Is(err, pgx.ErrNoRows) {
		err = database.DB.QueryRow(ctx, `
			INSERT INTO submitters (ip_address) VALUES ($1) RETURNING submitter_id
		`, ip).Scan(&submitter.ID)
	}
	if err != nil {
		return nil, err
	}

	return &submitter, nil
}

func getRecordByPlayerAndDemon(ctx context.Context, playerID, demonID int) (*model.Record, error) {
	row := database.DB.QueryRow(ctx, `
		SELECT r.id, r.progress, r.video, r.status, p.name, d.name, d.position, r.submitter_id, r.created_at
		FROM records r
		INNER JOIN players p ON r.player_id = p.id
		INNER JOIN demons d ON r.demon_id = d.id
		WHERE r.player_id = $1 AND r.demon_id = $2
	`, playerID, demonID)

	record, err := scanner.ScanRecord(row)
	if err != nil {
		return nil, err
	}
	return record, nil
}
