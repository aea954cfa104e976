package types

import "time"

type MatchStatus string

const MatchStatusInProgress MatchStatus = "in progress"

// Match links one donation offer to one donation request. An offer can be
// matched at most once; the unique constraint on id_proposition_don backs
// that up under concurrent creates.
type Match struct {
	ID         int64       `db:"id" json:"id"`
	OfferID    int64       `db:"id_proposition_don" json:"id_proposition_don"`
	RequestID  int64       `db:"id_demande_don" json:"id_demande_don"`
	AdminID    int64       `db:"id_administrateur" json:"id_administrateur"`
	MatchedAt  time.Time   `db:"date_affectation" json:"date_affectation"`
	Status     MatchStatus `db:"statut_affectation" json:"statut_affectation"`
	AdminNotes *string     `db:"notes_administrateur" json:"notes_administrateur"`
}

// CreateMatch carries the admin's payload. The administrator id comes from
// the verified token, never from the body.
type CreateMatch struct {
	OfferID    int64       `json:"id_proposition_don"`
	RequestID  int64       `json:"id_demande_don"`
	Status     MatchStatus `json:"statut_affectation"`
	AdminNotes *string     `json:"notes_administrateur"`
}
