package server

import (
	"errors"
	"net/http"

	"dondusang/internal/auth"
	"dondusang/pkg/types"
)

// loginForm follows the OAuth2 password grant shape: form-encoded
// username/password, where username carries the email.
type loginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func (s *Service) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.respondError(w, http.StatusUnprocessableEntity, "Corps de requête invalide: "+err.Error())
		return
	}

	var credentials loginForm
	if err := decoder.Decode(&credentials, r.PostForm); err != nil {
		s.respondError(w, http.StatusUnprocessableEntity, "Corps de requête invalide: "+err.Error())
		return
	}

	if credentials.Username == "" || credentials.Password == "" {
		s.respondError(w, http.StatusUnprocessableEntity, "Champs obligatoires manquants: username, mot_de_passe")
		return
	}

	user, err := s.users.UserByEmail(r.Context(), credentials.Username)
	if err != nil {
		if errors.Is(err, types.ErrUserNotFound) {
			s.invalidCredentials(w)
			return
		}
		s.storeError(w, err)
		return
	}

	if !auth.VerifyPassword(credentials.Password, user.PasswordHash) {
		s.invalidCredentials(w)
		return
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		s.logger.WithError(err).Error("failed to issue token")
		s.respondError(w, http.StatusInternalServerError, "Erreur interne du serveur")
		return
	}

	s.respondJSON(w, http.StatusOK, types.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

func (s *Service) invalidCredentials(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	s.respondError(w, http.StatusUnauthorized, "Identifiants incorrects")
}
