package server

import (
	"errors"
	"net/http"

	"dondusang/internal/auth"
	"dondusang/pkg/types"
)

func (s *Service) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var payload types.CreateUser
	if !s.decodeJSON(w, r, &payload) {
		return
	}

	if payload.FamilyName == "" || payload.GivenName == "" || payload.Email == "" || payload.Password == "" {
		s.respondError(w, http.StatusUnprocessableEntity, "Champs obligatoires manquants: nom, prenom, email, mot_de_passe")
		return
	}

	hash, err := auth.HashPassword(payload.Password)
	if err != nil {
		s.logger.WithError(err).Error("failed to hash password")
		s.respondError(w, http.StatusInternalServerError, "Erreur interne du serveur")
		return
	}

	user := &types.User{
		FamilyName:   payload.FamilyName,
		GivenName:    payload.GivenName,
		Email:        payload.Email,
		PasswordHash: hash,
		Role:         payload.Role,
		Address:      payload.Address,
		City:         payload.City,
		Phone:        payload.Phone,
		BirthDate:    payload.BirthDate,
		Gender:       payload.Gender,
		BloodGroupID: payload.BloodGroupID,
	}

	err = s.users.Create(r.Context(), user)
	if err != nil {
		switch {
		case errors.Is(err, types.ErrEmailExists):
			s.respondError(w, http.StatusBadRequest, "Email déjà enregistré")
		case errors.Is(err, types.ErrBloodGroupNotFound):
			s.respondError(w, http.StatusNotFound, "Groupe sanguin non trouvé")
		default:
			s.storeError(w, err)
		}
		return
	}

	s.respondJSON(w, http.StatusCreated, user)
}

func (s *Service) handleListUsers(w http.ResponseWriter, r *http.Request) {
	skip, limit := listParams(r)

	users, err := s.users.Users(r.Context(), skip, limit)
	if err != nil {
		s.storeError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, users)
}

func (s *Service) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	user, err := s.users.User(r.Context(), id)
	if err != nil {
		if errors.Is(err, types.ErrUserNotFound) {
			s.respondError(w, http.StatusNotFound, "Utilisateur non trouvé")
			return
		}
		s.storeError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, user)
}
