package server

import (
	"errors"
	"net/http"

	"dondusang/pkg/types"
)

func (s *Service) handleCreateBloodGroup(w http.ResponseWriter, r *http.Request) {
	var payload types.CreateBloodGroup
	if !s.decodeJSON(w, r, &payload) {
		return
	}

	if payload.Name == "" {
		s.respondError(w, http.StatusUnprocessableEntity, "Champ obligatoire manquant: nom_groupe")
		return
	}

	group := &types.BloodGroup{Name: payload.Name}

	err := s.bloodGroups.Create(r.Context(), group)
	if err != nil {
		if errors.Is(err, types.ErrBloodGroupExists) {
			s.respondError(w, http.StatusBadRequest, "Groupe sanguin existe déjà")
			return
		}
		s.storeError(w, err)
		return
	}

	s.respondJSON(w, http.StatusCreated, group)
}

func (s *Service) handleListBloodGroups(w http.ResponseWriter, r *http.Request) {
	skip, limit := listParams(r)

	groups, err := s.bloodGroups.BloodGroups(r.Context(), skip, limit)
	if err != nil {
		s.storeError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, groups)
}

func (s *Service) handleGetBloodGroup(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	group, err := s.bloodGroups.BloodGroup(r.Context(), id)
	if err != nil {
		if errors.Is(err, types.ErrBloodGroupNotFound) {
			s.respondError(w, http.StatusNotFound, "Groupe sanguin non trouvé")
			return
		}
		s.storeError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, group)
}
