package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5"

	"github.com/GDOmega/pointercrate/internal/database"
	model "github.com/GDOmega/pointercrate/internal/models"
	"github.com/GDOmega/pointercrate/internal/scanner"
	"github.com/GDOmega/pointercrate/internal/stats"
	"github.com/GDOmega/pointercrate/internal/utils"
)

// Score d'une nation : somme des points pondérés par la position, sur les
// records approuvés à 100% et les vérifications de ses joueurs
const nationScoresCTE = `
	WITH completion_points AS (
		SELECT p.nationality AS country_code,
			ROUND(100.0 / d.position, 2) AS points
		FROM records r
		INNER JOIN players p ON r.player_id = p.id
		INNER JOIN demons d ON r.demon_id = d.id
		WHERE r.status = 'APPROVED'
			AND r.progress = 100
			AND p.nationality IS NOT NULL
		UNION ALL
		SELECT p.nationality AS country_code,
			ROUND(100.0 / d.position, 2) AS points
		FROM demons d
		INNER JOIN players p ON d.verifier = p.id
		WHERE p.nationality IS NOT NULL
	),
	nation_scores AS (
		SELECT cp.country_code,
			SUM(cp.points) AS score
		FROM completion_points cp
		GROUP BY cp.country_code
	),
	ranked_nations AS (
		SELECT ns.country_code,
			ns.score,
			ROW_NUMBER() OVER (ORDER BY ns.score DESC) AS rank
		FROM nation_scores ns
	)
`

// GetNations récupère le classement des nations
func GetNations(w http.ResponseWriter, r *http.Request) {
	limit := parseLimit(r, 50)

	ctx := context.Background()

	rows, err := database.DB.Query(ctx, nationScoresCTE+`
		SELECT n.nation, rn.country_code, rn.rank, rn.score
		FROM ranked_nations rn
		INNER JOIN nationalities n ON rn.country_code = n.iso_country_code
		ORDER BY rn.rank
		LIMIT $1
	`, limit)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query nation leaderboard", err)
		return
	}
	defer rows.Close()

	var nations []model.Nation
	for rows.Next() {
		var nation model.Nation
		if err := rows.Scan(&nation.Name, &nation.CountryCode, &nation.Rank, &nation.Score); err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan nation row", err)
			return
		}
		nations = append(nations, nation)
	}

	utils.Success(w, nations)
}

// GetNationStats récupère les statistiques complètes d'une nation : métadonnées,
// résumé (joueurs distincts, démon le plus dur, complétions par palier) et les
// quatre séquences triées affichées par la vue nation
func GetNationStats(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	countryCode := strings.ToUpper(vars["countryCode"])

	// Statistiques encore en cache ?
	if cached, found := statsCache.Get(countryCode); found {
		utils.Success(w, cached)
		return
	}

	ctx := r.Context()

	nation, err := fetchNation(ctx, countryCode)
	if errors.Is(err, pgx.ErrNoRows) {
		utils.ErrorSimple(w, http.StatusNotFound, "nation not found")
		return
	}
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not fetch nation", err)
		return
	}

	records, err := fetchNationRecords(ctx, countryCode)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not fetch nation records", err)
		return
	}

	verified, err := fetchNationVerifications(ctx, countryCode, "verifier")
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not fetch verified demons", err)
		return
	}

	published, err := fetchNationVerifications(ctx, countryCode, "publisher")
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not fetch published demons", err)
		return
	}

	created, err := fetchNationCreations(ctx, countryCode)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not fetch created demons", err)
		return
	}

	unbeaten, err := fetchUnbeatenDemons(ctx, countryCode)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not fetch unbeaten demons", err)
		return
	}

	// Classification pure : résumé + partition, puis les séquences triées
	summary := stats.Classify(records, verified, cfg.ListSize, cfg.ExtendedListSize)
	beaten, inProgress := stats.Partition(records)

	result := &model.NationStats{
		Nation: *nation,
		Summary: model.NationSummary{
			PlayerCount: summary.PlayerCount(),
			Hardest:     summary.Hardest,
			MainBeaten:  summary.MainBeaten,
			Extended:    summary.Extended,
			Legacy:      summary.Legacy,
		},
		Unbeaten:   stats.SortedUnbeaten(unbeaten),
		Beaten:     stats.SortedBeaten(beaten),
		InProgress: stats.SortedInProgress(inProgress),
		Created:    stats.SortedCreated(created),
		Verified:   verified,
		Published:  published,
	}

	statsCache.Set(countryCode, result)

	utils.Success(w, result)
}

// GetNationRank récupère le rang d'une nation dans le classement
func GetNationRank(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	countryCode := strings.ToUpper(vars["countryCode"])

	ctx := r.Context()

	var rank, totalNations int
	var score float64

	err := database.DB.QueryRow(ctx, nationScoresCTE+`,
		total_count AS (
			SELECT COUNT(*) AS total FROM ranked_nations
		)
		SELECT COALESCE(rn.rank, (SELECT total FROM total_count) + 1) AS rank,
			COALESCE(rn.score, 0) AS score,
			(SELECT total FROM total_count) AS total_nations
		FROM (SELECT $1::text AS code) target
		LEFT JOIN ranked_nations rn ON rn.country_code = target.code
	`, countryCode).Scan(&rank, &score, &totalNations)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not fetch nation rank", err)
		return
	}

	utils.Success(w, map[string]interface{}{
		"countryCode":  countryCode,
		"rank":         rank,
		"score":        score,
		"totalNations": totalNations,
	})
}

func fetchNation(ctx context.Context, countryCode string) (*model.Nation, error) {
	var nation model.Nation

	err := database.DB.QueryRow(ctx, nationScoresCTE+`
		SELECT n.nation, n.iso_country_code,
			COALESCE(rn.rank, 0), COALESCE(rn.score, 0)
		FROM nationalities n
		LEFT JOIN ranked_nations rn ON rn.country_code = n.iso_country_code
		WHERE n.iso_country_code = $1
	`, countryCode).Scan(&nation.Name, &nation.CountryCode, &nation.Rank, &nation.Score)
	if err != nil {
		return nil, err
	}

	return &nation, nil
}

// fetchNationRecords regroupe les records approuvés de la nation par démon et
// par progrès, avec la liste des joueurs concernés
func fetchNationRecords(ctx context.Context, countryCode string) ([]model.NationRecord, error) {
	rows, err := database.DB.Query(ctx, `
		SELECT d.id, d.name, d.position, r.progress,
			ARRAY_AGG(p.name ORDER BY p.name)
		FROM records r
		INNER JOIN players p ON r.player_id = p.id
		INNER JOIN demons d ON r.demon_id = d.id
		WHERE r.status = 'APPROVED'
			AND p.nationality = $1
		GROUP BY d.id, d.name, d.position, r.progress
		ORDER BY d.position
	`, countryCode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.NationRecord
	for rows.Next() {
		record, err := scanner.ScanNationRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}

	return records, rows.Err()
}

// fetchNationVerifications liste les démons vérifiés ou publiés par un joueur
// de la nation. column vaut "verifier" ou "publisher".
func fetchNationVerifications(ctx context.Context, countryCode, column string) ([]model.NationVerification, error) {
	rows, err := database.DB.Query(ctx, `
		SELECT d.id, d.name, d.position, p.name
		FROM demons d
		INNER JOIN players p ON d.`+column+` = p.id
		WHERE p.nationality = $1
		ORDER BY d.position
	`, countryCode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var verifications []model.NationVerification
	for rows.Next() {
		verification, err := scanner.ScanNationVerification(rows)
		if err != nil {
			return nil, err
		}
		verifications = append(verifications, *verification)
	}

	return verifications, rows.Err()
}

func fetchNationCreations(ctx context.Context, countryCode string) ([]model.NationCreation, error) {
	rows, err := database.DB.Query(ctx, `
		SELECT d.id, d.name, d.position,
			ARRAY_AGG(p.name ORDER BY p.name)
		FROM creators c
		INNER JOIN demons d ON c.demon_id = d.id
		INNER JOIN players p ON c.creator_id = p.id
		WHERE p.nationality = $1
		GROUP BY d.id, d.name, d.position
		ORDER BY d.position
	`, countryCode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var creations []model.NationCreation
	for rows.Next() {
		creation, err := scanner.ScanNationCreation(rows)
		if err != nil {
			return nil, err
		}
		creations = append(creations, *creation)
	}

	return creations, rows.Err()
}

// fetchUnbeatenDemons liste les démons de la liste (principale + étendue) sans
// aucun record à 100% ni vérification de la nation
func fetchUnbeatenDemons(ctx context.Context, countryCode string) ([]model.UnbeatenDemon, error) {
	rows, err := database.DB.Query(ctx, `
		SELECT d.id, d.name, d.position
		FROM demons d
		WHERE d.position <= $2
			AND NOT EXISTS (
				SELECT 1
				FROM records r
				INNER JOIN players p ON r.player_id = p.id
				WHERE r.demon_id = d.id
					AND r.status = 'APPROVED'
					AND r.progress = 100
					AND p.nationality = $1
			)
			AND NOT EXISTS (
				SELECT 1
				FROM players p
				WHERE p.id = d.verifier
					AND p.nationality = $1
			)
		ORDER BY d.position
	`, countryCode, cfg.ExtendedListSize)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var unbeaten []model.UnbeatenDemon
	for rows.Next() {
		demon, err := scanner.ScanUnbeatenDemon(rows)
		if err != nil {
			return nil, err
		}
		unbeaten = append(unbeaten, *demon)
	}

	return unbeaten, rows.Err()
}
