package server

import (
	"errors"
	"net/http"

	"dondusang/pkg/types"
)

func (s *Service) handleCreateOffer(w http.ResponseWriter, r *http.Request) {
	var payload types.CreateDonationOffer
	if !s.decodeJSON(w, r, &payload) {
		return
	}

	if payload.UserID == 0 {
		s.respondError(w, http.StatusUnprocessableEntity, "Champ obligatoire manquant: id_utilisateur")
		return
	}

	offer := &types.DonationOffer{
		UserID:      payload.UserID,
		AvailableAt: payload.AvailableAt,
		Location:    payload.Location,
		Status:      payload.Status,
		Notes:       payload.Notes,
	}

	err := s.offers.Create(r.Context(), offer)
	if err != nil {
		if errors.Is(err, types.ErrUserNotFound) {
			s.respondError(w, http.StatusNotFound, "Utilisateur associé à la proposition non trouvé")
			return
		}
		s.storeError(w, err)
		return
	}

	s.respondJSON(w, http.StatusCreated, offer)
}

func (s *Service) handleListOffers(w http.ResponseWriter, r *http.Request) {
	skip, limit := listParams(r)

	offers, err := s.offers.Offers(r.Context(), skip, limit)
	if err != nil {
		s.storeError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, offers)
}

func (s *Service) handleGetOffer(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	offer, err := s.offers.Offer(r.Context(), id)
	if err != nil {
		if errors.Is(err, types.ErrOfferNotFound) {
			s.respondError(w, http.StatusNotFound, "Proposition de don non trouvée")
			return
		}
		s.storeError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, offer)
}
