package handler

import (
	"net/http"

	"github.com/GDOmega/pointercrate/internal/utils"
)

// RootHandler affiche toutes les routes disponibles de l'API
func RootHandler(w http.ResponseWriter, r *http.Request) {
	routes := map[string]interface{}{
		"name":    "Pointercrate API",
		"version": "1.0.0",
		"status":  "running",
		"routes": map[string]interface{}{
			"nations": []map[string]string{
				{"method": "GET", "path": "/nations", "description": "Classement des nations"},
				{"method": "GET", "path": "/nations/{countryCode}", "description": "Statistiques complètes d'une nation"},
				{"method": "GET", "path": "/nations/{countryCode}/rank", "description": "Rang d'une nation dans le classement"},
			},
			"demons": []map[string]string{
				{"method": "GET", "path": "/demons", "description": "Liste des démons par position"},
				{"method": "GET", "path": "/demons/{position}", "description": "Récupérer un démon par position"},
				{"method": "PATCH", "path": "/demons/{position}", "description": "Modifier un démon (équipe de la liste)"},
			},
			"records": []map[string]string{
				{"method": "POST", "path": "/records", "description": "Soumettre un record"},
				{"method": "GET", "path": "/records/{id}", "description": "Récupérer un record par ID"},
				{"method": "DELETE", "path": "/records/{id}", "description": "Supprimer un record (équipe de la liste)"},
			},
			"players": []map[string]string{
				{"method": "GET", "path": "/players", "description": "Liste des joueurs"},
				{"method": "GET", "path": "/players/{name}", "description": "Récupérer un joueur par nom"},
			},
			"auth": []map[string]string{
				{"method": "POST", "path": "/auth/login", "description": "Connexion"},
				{"method": "POST", "path": "/auth/logout", "description": "Déconnexion"},
			},
		},
	}

	utils.JSON(w, http.StatusOK, routes)
}
