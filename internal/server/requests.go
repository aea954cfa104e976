package server

import (
	"errors"
	"net/http"

	"dondusang/pkg/types"
)

func (s *Service) handleCreateRequest(w http.ResponseWriter, r *http.Request) {
	var payload types.CreateDonationRequest
	if !s.decodeJSON(w, r, &payload) {
		return
	}

	if payload.UserID == 0 || payload.BloodGroupID == 0 || payload.VolumeML == 0 || payload.Description == "" {
		s.respondError(w, http.StatusUnprocessableEntity, "Champs obligatoires manquants: id_utilisateur, id_groupe_sanguin_requis, quantite_demandee_ml, description")
		return
	}

	request := &types.DonationRequest{
		UserID:       payload.UserID,
		BloodGroupID: payload.BloodGroupID,
		VolumeML:     payload.VolumeML,
		Location:     payload.Location,
		Urgency:      payload.Urgency,
		Status:       payload.Status,
		Description:  payload.Description,
	}

	err := s.requests.Create(r.Context(), request)
	if err != nil {
		switch {
		case errors.Is(err, types.ErrUserNotFound):
			s.respondError(w, http.StatusNotFound, "Utilisateur associé à la demande non trouvé")
		case errors.Is(err, types.ErrBloodGroupNotFound):
			s.respondError(w, http.StatusNotFound, "Groupe sanguin requis non trouvé")
		default:
			s.storeError(w, err)
		}
		return
	}

	s.respondJSON(w, http.StatusCreated, request)
}

func (s *Service) handleListRequests(w http.ResponseWriter, r *http.Request) {
	skip, limit := listParams(r)

	requests, err := s.requests.Requests(r.Context(), skip, limit)
	if err != nil {
		s.storeError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, requests)
}

func (s *Service) handleGetRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	request, err := s.requests.Request(r.Context(), id)
	if err != nil {
		if errors.Is(err, types.ErrRequestNotFound) {
			s.respondError(w, http.StatusNotFound, "Demande de don non trouvée")
			return
		}
		s.storeError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, request)
}
