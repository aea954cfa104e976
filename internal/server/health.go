package server

import "net/http"

func (s *Service) handleWelcome(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{
		"message": "Bienvenue sur l'API de gestion de dons de sang !",
	})
}

func (s *Service) handleDBTest(w http.ResponseWriter, r *http.Request) {
	if err := s.db.Ping(r.Context()); err != nil {
		s.logger.WithError(err).Error("database unreachable")
		s.respondError(w, http.StatusInternalServerError, "Erreur de connexion à la base de données: "+err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]string{
		"message": "Connexion à la base de données réussie !",
	})
}
