package types

type BloodGroup struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"nom_groupe" json:"nom_groupe"`
}

type CreateBloodGroup struct {
	Name string `json:"nom_groupe"`
}
