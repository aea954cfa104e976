package types

import "time"

// DonationStatus tracks an offer or request through its lifecycle. The only
// transition is pending -> matched, performed by match creation.
type DonationStatus string

const (
	DonationStatusPending DonationStatus = "pending"
	DonationStatusMatched DonationStatus = "matched"
)

type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

type DonationOffer struct {
	ID          int64          `db:"id" json:"id"`
	UserID      int64          `db:"id_utilisateur" json:"id_utilisateur"`
	OfferedAt   time.Time      `db:"date_proposition" json:"date_proposition"`
	AvailableAt *time.Time     `db:"disponibilite_date_heure" json:"disponibilite_date_heure"`
	Location    *string        `db:"localisation_proposition" json:"localisation_proposition"`
	Status      DonationStatus `db:"statut" json:"statut"`
	Notes       *string        `db:"notes" json:"notes"`
}

type CreateDonationOffer struct {
	UserID      int64          `json:"id_utilisateur"`
	AvailableAt *time.Time     `json:"disponibilite_date_heure"`
	Location    *string        `json:"localisation_proposition"`
	Status      DonationStatus `json:"statut"`
	Notes       *string        `json:"notes"`
}

type DonationRequest struct {
	ID           int64          `db:"id" json:"id"`
	UserID       int64          `db:"id_utilisateur" json:"id_utilisateur"`
	BloodGroupID int64          `db:"id_groupe_sanguin_requis" json:"id_groupe_sanguin_requis"`
	VolumeML     int            `db:"quantite_demandee_ml" json:"quantite_demandee_ml"`
	RequestedAt  time.Time      `db:"date_demande" json:"date_demande"`
	Location     *string        `db:"localisation_demande" json:"localisation_demande"`
	Urgency      Urgency        `db:"urgence" json:"urgence"`
	Status       DonationStatus `db:"statut" json:"statut"`
	Description  string         `db:"description" json:"description"`
}

type CreateDonationRequest struct {
	UserID       int64          `json:"id_utilisateur"`
	BloodGroupID int64          `json:"id_groupe_sanguin_requis"`
	VolumeML     int            `json:"quantite_demandee_ml"`
	Location     *string        `json:"localisation_demande"`
	Urgency      Urgency        `json:"urgence"`
	Status       DonationStatus `json:"statut"`
	Description  string         `json:"description"`
}
