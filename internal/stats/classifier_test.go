package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "github.com/GDOmega/pointercrate/internal/models"
)

func record(id int, demon string, position, progress int, players ...string) model.NationRecord {
	return model.NationRecord{ID: id, Demon: demon, Position: position, Progress: progress, Players: players}
}

func TestClassify(t *testing.T) {
	t.Run("entrées vides", func(t *testing.T) {
		summary := Classify(nil, nil, 75, 150)

		assert.Equal(t, 0, summary.PlayerCount())
		assert.Nil(t, summary.Hardest)
		assert.Equal(t, 0, summary.MainBeaten)
		assert.Equal(t, 0, summary.Extended)
		assert.Equal(t, 0, summary.Legacy)
	})

	t.Run("classement par paliers", func(t *testing.T) {
		records := []model.NationRecord{
			record(1, "A", 5, 100, "x"),
			record(2, "B", 150, 100, "y"),
		}

		summary := Classify(records, nil, 100, 150)

		assert.Equal(t, 1, summary.MainBeaten)
		assert.Equal(t, 1, summary.Extended)
		assert.Equal(t, 0, summary.Legacy)
		require.NotNil(t, summary.Hardest)
		assert.Equal(t, "A", summary.Hardest.Name)
		assert.Equal(t, 5, summary.Hardest.Position)
		assert.Equal(t, 1, summary.Hardest.ID)
	})

	t.Run("palier legacy", func(t *testing.T) {
		records := []model.NationRecord{
			record(1, "A", 200, 100, "x"),
		}

		summary := Classify(records, nil, 75, 150)

		assert.Equal(t, 0, summary.MainBeaten)
		assert.Equal(t, 0, summary.Extended)
		assert.Equal(t, 1, summary.Legacy)
	})

	t.Run("les joueurs distincts fusionnent records et vérifications", func(t *testing.T) {
		records := []model.NationRecord{
			record(1, "A", 5, 100, "x", "y"),
			record(2, "B", 10, 40, "y", "z"),
		}
		verifications := []model.NationVerification{
			{ID: 3, Demon: "C", Position: 3, Player: "w"},
			{ID: 1, Demon: "A", Position: 5, Player: "x"},
		}

		summary := Classify(records, verifications, 75, 150)

		assert.Equal(t, 4, summary.PlayerCount())
		for _, name := range []string{"x", "y", "z", "w"} {
			assert.Contains(t, summary.Players, name)
		}
	})

	t.Run("un record en cours ne compte pas comme complété", func(t *testing.T) {
		records := []model.NationRecord{
			record(1, "A", 1, 99, "x"),
			record(2, "B", 50, 100, "y"),
		}

		summary := Classify(records, nil, 75, 150)

		assert.Equal(t, 1, summary.MainBeaten)
		require.NotNil(t, summary.Hardest)
		// Le plus dur se calcule sur les records complétés, pas en cours
		assert.Equal(t, "B", summary.Hardest.Name)
	})

	t.Run("une vérification déjà complétée n'est pas comptée deux fois", func(t *testing.T) {
		records := []model.NationRecord{
			record(1, "A", 5, 100, "x"),
		}
		verifications := []model.NationVerification{
			{ID: 1, Demon: "A", Position: 5, Player: "x"},
		}

		summary := Classify(records, verifications, 75, 150)

		assert.Equal(t, 1, summary.MainBeaten)
		assert.Equal(t, 0, summary.Extended)
		assert.Equal(t, 0, summary.Legacy)
	})

	t.Run("une vérification sans record compte comme complétion", func(t *testing.T) {
		verifications := []model.NationVerification{
			{ID: 1, Demon: "A", Position: 5, Player: "x"},
			{ID: 2, Demon: "B", Position: 100, Player: "y"},
			{ID: 3, Demon: "C", Position: 300, Player: "z"},
		}

		summary := Classify(nil, verifications, 75, 150)

		assert.Equal(t, 1, summary.MainBeaten)
		assert.Equal(t, 1, summary.Extended)
		assert.Equal(t, 1, summary.Legacy)
		require.NotNil(t, summary.Hardest)
		assert.Equal(t, "A", summary.Hardest.Name)
	})

	t.Run("la vérification peut fournir le démon le plus dur", func(t *testing.T) {
		records := []model.NationRecord{
			record(1, "A", 10, 100, "x"),
		}
		verifications := []model.NationVerification{
			{ID: 2, Demon: "B", Position: 2, Player: "y"},
		}

		summary := Classify(records, verifications, 75, 150)

		require.NotNil(t, summary.Hardest)
		assert.Equal(t, "B", summary.Hardest.Name)
		assert.Equal(t, 2, summary.Hardest.Position)
	})
}

// Invariant : mainBeaten + extended + legacy == complétés + vérifications non
// déjà comptées
func TestClassifyCountIdentity(t *testing.T) {
	records := []model.NationRecord{
		record(1, "A", 5, 100, "x"),
		record(2, "B", 80, 100, "y"),
		record(3, "C", 200, 100, "z"),
		record(4, "D", 10, 55, "x"),
	}
	verifications := []model.NationVerification{
		{ID: 1, Demon: "A", Position: 5, Player: "x"},   // déjà compté
		{ID: 5, Demon: "E", Position: 60, Player: "w"},  // non compté
		{ID: 6, Demon: "F", Position: 160, Player: "v"}, // non compté
	}

	summary := Classify(records, verifications, 75, 150)

	beaten, _ := Partition(records)
	assert.Equal(t, len(beaten)+2, summary.MainBeaten+summary.Extended+summary.Legacy)
}

func TestPartition(t *testing.T) {
	records := []model.NationRecord{
		record(1, "A", 5, 100, "x"),
		record(2, "B", 10, 60, "y"),
		record(3, "C", 15, 100, "z"),
		record(4, "D", 20, 30, "w"),
	}

	beaten, inProgress := Partition(records)

	// La partition conserve tous les records et l'ordre relatif
	require.Equal(t, len(records), len(beaten)+len(inProgress))
	require.Len(t, beaten, 2)
	assert.Equal(t, "A", beaten[0].Demon)
	assert.Equal(t, "C", beaten[1].Demon)
	require.Len(t, inProgress, 2)
	assert.Equal(t, "B", inProgress[0].Demon)
	assert.Equal(t, "D", inProgress[1].Demon)
}

func TestSortedInProgress(t *testing.T) {
	records := []model.NationRecord{
		record(1, "A", 5, 40, "x"),
		record(2, "B", 10, 90, "y"),
		record(3, "C", 15, 90, "z"),
	}

	sorted := SortedInProgress(records)

	// Progrès décroissant, ordre d'entrée conservé pour les deux 90
	require.Len(t, sorted, 3)
	assert.Equal(t, "B", sorted[0].Demon)
	assert.Equal(t, "C", sorted[1].Demon)
	assert.Equal(t, "A", sorted[2].Demon)

	// L'entrée n'est pas réordonnée
	assert.Equal(t, 40, records[0].Progress)
	assert.Equal(t, "A", records[0].Demon)
}

func TestSortedBeaten(t *testing.T) {
	records := []model.NationRecord{
		record(1, "Zodiac", 20, 100, "x"),
		record(2, "Bloodbath", 40, 100, "y"),
		record(3, "Cadrega City", 90, 100, "z"),
	}

	sorted := SortedBeaten(records)

	assert.Equal(t, "Bloodbath", sorted[0].Demon)
	assert.Equal(t, "Cadrega City", sorted[1].Demon)
	assert.Equal(t, "Zodiac", sorted[2].Demon)
	assert.Equal(t, "Zodiac", records[0].Demon)
}

func TestSortedUnbeaten(t *testing.T) {
	demons := []model.UnbeatenDemon{
		{ID: 1, Name: "Tartarus", Position: 1},
		{ID: 2, Name: "Acheron", Position: 2},
	}

	sorted := SortedUnbeaten(demons)

	assert.Equal(t, "Acheron", sorted[0].Name)
	assert.Equal(t, "Tartarus", sorted[1].Name)
}

func TestSortedCreated(t *testing.T) {
	creations := []model.NationCreation{
		{ID: 1, Demon: "Sonic Wave", Position: 30, Players: []string{"x"}},
		{ID: 2, Demon: "Deadlocked", Position: 80, Players: []string{"y"}},
	}

	sorted := SortedCreated(creations)

	assert.Equal(t, "Deadlocked", sorted[0].Demon)
	assert.Equal(t, "Sonic Wave", sorted[1].Demon)
}

// Trier une séquence déjà triée redonne la même séquence
func TestSortIdempotence(t *testing.T) {
	records := []model.NationRecord{
		record(1, "A", 5, 90, "x"),
		record(2, "B", 10, 90, "y"),
		record(3, "C", 15, 40, "z"),
	}

	once := SortedInProgress(records)
	twice := SortedInProgress(once)

	assert.Equal(t, once, twice)
}
