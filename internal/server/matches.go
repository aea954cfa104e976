package server

import (
	"errors"
	"net/http"

	"dondusang/pkg/types"
)

func (s *Service) handleCreateMatch(w http.ResponseWriter, r *http.Request) {
	identity, ok := s.identityFromContext(r.Context())
	if !ok {
		s.unauthorized(w)
		return
	}

	var payload types.CreateMatch
	if !s.decodeJSON(w, r, &payload) {
		return
	}

	if payload.OfferID == 0 || payload.RequestID == 0 {
		s.respondError(w, http.StatusUnprocessableEntity, "Champs obligatoires manquants: id_proposition_don, id_demande_don")
		return
	}

	match := &types.Match{
		OfferID:    payload.OfferID,
		RequestID:  payload.RequestID,
		AdminID:    identity.UserID,
		Status:     payload.Status,
		AdminNotes: payload.AdminNotes,
	}

	err := s.matches.Create(r.Context(), match)
	if err != nil {
		switch {
		case errors.Is(err, types.ErrOfferNotFound):
			s.respondError(w, http.StatusNotFound, "Proposition de don non trouvée")
		case errors.Is(err, types.ErrRequestNotFound):
			s.respondError(w, http.StatusNotFound, "Demande de don non trouvée")
		case errors.Is(err, types.ErrOfferAlreadyMatched):
			s.respondError(w, http.StatusBadRequest, "Cette proposition de don est déjà affectée.")
		default:
			s.storeError(w, err)
		}
		return
	}

	s.respondJSON(w, http.StatusCreated, match)
}

func (s *Service) handleListMatches(w http.ResponseWriter, r *http.Request) {
	skip, limit := listParams(r)

	matches, err := s.matches.Matches(r.Context(), skip, limit)
	if err != nil {
		s.storeError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, matches)
}

func (s *Service) handleGetMatch(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	match, err := s.matches.Match(r.Context(), id)
	if err != nil {
		if errors.Is(err, types.ErrMatchNotFound) {
			s.respondError(w, http.StatusNotFound, "Affectation de don non trouvée")
			return
		}
		s.storeError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, match)
}

func (s *Service) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.stats.Stats(r.Context())
	if err != nil {
		s.storeError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, stats)
}
