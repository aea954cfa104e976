package types

// Stats is the fixed-shape counter payload served to the administrator.
type Stats struct {
	TotalUsers      int64 `json:"total_utilisateurs"`
	NormalUsers     int64 `json:"utilisateurs_normaux"`
	AdminUsers      int64 `json:"administrateurs"`
	TotalOffers     int64 `json:"total_propositions_don"`
	PendingOffers   int64 `json:"propositions_en_attente"`
	MatchedOffers   int64 `json:"propositions_affectees"`
	TotalRequests   int64 `json:"total_demandes_don"`
	PendingRequests int64 `json:"demandes_en_attente"`
	MatchedRequests int64 `json:"demandes_affectees"`
	TotalMatches    int64 `json:"total_affectations"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
