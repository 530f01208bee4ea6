package stats

import (
	"sort"

	model "github.com/GDOmega/pointercrate/internal/models"
)

// Summary est le résultat de la classification des records d'une nation.
// Players contient l'ensemble des joueurs distincts ayant contribué.
type Summary struct {
	Players    map[string]struct{}
	Hardest    *model.MinimalDemon
	MainBeaten int
	Extended   int
	Legacy     int
}

// PlayerCount retourne le nombre de joueurs distincts
func (s *Summary) PlayerCount() int {
	return len(s.Players)
}

// Classify calcule le résumé d'une nation à partir de ses records et de ses
// vérifications. Les seuils découpent la liste en trois paliers :
// position <= listSize (liste principale), <= extendedListSize (liste
// étendue), au-delà (legacy).
//
// Une vérification dont le démon figure déjà parmi les records complétés
// n'est pas comptée une deuxième fois. Une vérification sur la liste
// principale sans record correspondant compte comme un démon complété.
func Classify(records []model.NationRecord, verifications []model.NationVerification, listSize, extendedListSize int) Summary {
	summary := Summary{
		Players: make(map[string]struct{}),
	}

	beatenIDs := make(map[int]struct{})
	beatenCount := 0
	extendedFromBeaten := 0
	legacyFromBeaten := 0

	for i := range records {
		record := &records[i]

		for _, player := range record.Players {
			summary.Players[player] = struct{}{}
		}

		if record.Progress != 100 {
			continue
		}

		// Le démon le plus dur : position minimale parmi les records complétés
		// et les vérifications, premier rencontré en cas d'égalité
		if summary.Hardest == nil || record.Position < summary.Hardest.Position {
			summary.Hardest = &model.MinimalDemon{
				ID:       record.ID,
				Name:     record.Demon,
				Position: record.Position,
			}
		}

		beatenIDs[record.ID] = struct{}{}
		beatenCount++

		switch {
		case record.Position > extendedListSize:
			legacyFromBeaten++
		case record.Position > listSize:
			extendedFromBeaten++
		}
	}

	summary.MainBeaten = beatenCount - extendedFromBeaten - legacyFromBeaten
	summary.Extended = extendedFromBeaten
	summary.Legacy = legacyFromBeaten

	for i := range verifications {
		verification := &verifications[i]

		summary.Players[verification.Player] = struct{}{}

		if summary.Hardest == nil || verification.Position < summary.Hardest.Position {
			summary.Hardest = &model.MinimalDemon{
				ID:       verification.ID,
				Name:     verification.Demon,
				Position: verification.Position,
			}
		}

		// Déjà compté via un record complété
		if _, counted := beatenIDs[verification.ID]; counted {
			continue
		}

		switch {
		case verification.Position > extendedListSize:
			summary.Legacy++
		case verification.Position > listSize:
			summary.Extended++
		default:
			summary.MainBeaten++
		}
	}

	return summary
}

// Partition sépare les records complétés (progress == 100) des records en
// cours, en conservant l'ordre relatif d'origine. Les tranches retournées
// sont neuves : l'entrée n'est jamais modifiée.
func Partition(records []model.NationRecord) (beaten, inProgress []model.NationRecord) {
	for _, record := range records {
		if record.Progress == 100 {
			beaten = append(beaten, record)
		} else {
			inProgress = append(inProgress, record)
		}
	}
	return beaten, inProgress
}

// SortedBeaten retourne les records triés par nom de démon (ordre croissant)
func SortedBeaten(records []model.NationRecord) []model.NationRecord {
	sorted := make([]model.NationRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Demon < sorted[j].Demon
	})
	return sorted
}

// SortedInProgress retourne les records triés par progrès décroissant.
// Le tri est stable : à progrès égal l'ordre d'entrée est conservé.
func SortedInProgress(records []model.NationRecord) []model.NationRecord {
	sorted := make([]model.NationRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Progress > sorted[j].Progress
	})
	return sorted
}

// SortedUnbeaten retourne les démons invaincus triés par nom croissant
func SortedUnbeaten(demons []model.UnbeatenDemon) []model.UnbeatenDemon {
	sorted := make([]model.UnbeatenDemon, len(demons))
	copy(sorted, demons)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})
	return sorted
}

// SortedCreated retourne les créations triées par nom de démon croissant
func SortedCreated(creations []model.NationCreation) []model.NationCreation {
	sorted := make([]model.NationCreation, len(creations))
	copy(sorted, creations)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Demon < sorted[j].Demon
	})
	return sorted
}
