package model

// Nation représente un pays dans le classement des nations
type Nation struct {
	Name        string  `json:"nation"`
	CountryCode string  `json:"country_code"`
	Rank        int     `json:"rank"`
	Score       float64 `json:"score"`
}

// NationRecord est un record (complété ou en cours) attribué à une nation.
// Players contient tous les joueurs de la nation ayant ce progrès sur ce démon.
type NationRecord struct {
	ID       int      `json:"id"`
	Demon    string   `json:"demon"`
	Position int      `json:"position"`
	Progress int      `json:"progress"` // 0-100, 100 = complété
	Players  []string `json:"players"`
}

// NationVerification est un démon vérifié (ou publié) par un joueur de la nation
type NationVerification struct {
	ID       int    `json:"id"`
	Demon    string `json:"demon"`
	Position int    `json:"position"`
	Player   string `json:"player"`
}

// NationCreation est un démon créé par un ou plusieurs joueurs de la nation
type NationCreation struct {
	ID       int      `json:"id"`
	Demon    string   `json:"demon"`
	Position int      `json:"position"`
	Players  []string `json:"players"`
}

// UnbeatenDemon est un démon de la liste sans aucun record à 100% de la nation
type UnbeatenDemon struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Position int    `json:"position"`
}

// NationSummary est le résumé dérivé affiché en tête de la vue nation
type NationSummary struct {
	PlayerCount int           `json:"playerCount"`
	Hardest     *MinimalDemon `json:"hardest,omitempty"`
	MainBeaten  int           `json:"mainBeaten"`
	Extended    int           `json:"extended"`
	Legacy      int           `json:"legacy"`
}

// NationStats est le payload complet de la vue statistiques d'une nation
type NationStats struct {
	Nation     Nation               `json:"nation"`
	Summary    NationSummary        `json:"summary"`
	Unbeaten   []UnbeatenDemon      `json:"unbeaten"`
	Beaten     []NationRecord       `json:"beaten"`
	InProgress []NationRecord       `json:"inProgress"`
	Created    []NationCreation     `json:"created"`
	Verified   []NationVerification `json:"verified"`
	Published  []NationVerification `json:"published"`
}
