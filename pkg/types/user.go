package types

type UserRole string

const (
	UserRoleNormal UserRole = "normal"
	UserRoleAdmin  UserRole = "admin"
)

type User struct {
	ID           int64    `db:"id" json:"id"`
	FamilyName   string   `db:"nom" json:"nom"`
	GivenName    string   `db:"prenom" json:"prenom"`
	Email        string   `db:"email" json:"email"`
	PasswordHash string   `db:"mot_de_passe_hache" json:"-"`
	Role         UserRole `db:"role" json:"role"`
	Address      *string  `db:"adresse" json:"adresse"`
	City         *string  `db:"ville" json:"ville"`
	Phone        *string  `db:"telephone" json:"telephone"`
	BirthDate    *Date    `db:"date_naissance" json:"date_naissance"`
	Gender       *string  `db:"genre" json:"genre"`
	BloodGroupID *int64   `db:"id_groupe_sanguin" json:"id_groupe_sanguin"`
}

// CreateUser is the registration payload. The plaintext password never
// reaches the store layer; handlers hash it first.
type CreateUser struct {
	FamilyName   string   `json:"nom"`
	GivenName    string   `json:"prenom"`
	Email        string   `json:"email"`
	Password     string   `json:"mot_de_passe"`
	Role         UserRole `json:"role"`
	Address      *string  `json:"adresse"`
	City         *string  `json:"ville"`
	Phone        *string  `json:"telephone"`
	BirthDate    *Date    `json:"date_naissance"`
	Gender       *string  `json:"genre"`
	BloodGroupID *int64   `json:"id_groupe_sanguin"`
}
