package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/alexedwards/flow"
)

func (s *Service) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if payload == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.WithError(err).Error("failed to encode response")
	}
}

// respondError mirrors the {"detail": "..."} error body the frontend
// expects.
func (s *Service) respondError(w http.ResponseWriter, status int, detail string) {
	s.respondJSON(w, status, map[string]string{"detail": detail})
}

func (s *Service) unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	s.respondError(w, http.StatusUnauthorized, "Non autorisé: Seuls les administrateurs peuvent effectuer cette action.")
}

func (s *Service) storeError(w http.ResponseWriter, err error) {
	s.logger.WithError(err).Error("store operation failed")
	s.respondError(w, http.StatusInternalServerError, "Erreur de la base de données: "+err.Error())
}

func (s *Service) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.respondError(w, http.StatusUnprocessableEntity, "Corps de requête invalide: "+err.Error())
		return false
	}

	return true
}

func (s *Service) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := flow.Param(r.Context(), "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		s.respondError(w, http.StatusUnprocessableEntity, "Identifiant invalide")
		return 0, false
	}

	return id, true
}

// listParams reads skip/limit query parameters, defaulting to 0/100.
// Unparseable values fall back to the defaults.
func listParams(r *http.Request) (int, int) {
	skip, limit := 0, 100

	if raw := r.URL.Query().Get("skip"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			skip = v
		}
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			limit = v
		}
	}

	return skip, limit
}
