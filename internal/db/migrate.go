package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Foreign key constraints are named so the store layer can map violations
// back to the missing entity.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS groupes_sanguins (
		id BIGSERIAL PRIMARY KEY,
		nom_groupe VARCHAR(5) NOT NULL,
		CONSTRAINT uq_groupes_sanguins_nom_groupe UNIQUE (nom_groupe)
	)`,
	`CREATE TABLE IF NOT EXISTS utilisateurs (
		id BIGSERIAL PRIMARY KEY,
		nom VARCHAR(255) NOT NULL,
		prenom VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		mot_de_passe_hache VARCHAR(255) NOT NULL,
		role VARCHAR(50) NOT NULL DEFAULT 'normal',
		adresse VARCHAR(255),
		ville VARCHAR(100),
		telephone VARCHAR(20),
		date_naissance DATE,
		genre VARCHAR(10),
		id_groupe_sanguin BIGINT,
		CONSTRAINT uq_utilisateurs_email UNIQUE (email),
		CONSTRAINT fk_utilisateurs_groupe_sanguin
			FOREIGN KEY (id_groupe_sanguin) REFERENCES groupes_sanguins (id)
	)`,
	`CREATE TABLE IF NOT EXISTS propositions_don (
		id BIGSERIAL PRIMARY KEY,
		id_utilisateur BIGINT NOT NULL,
		date_proposition TIMESTAMPTZ NOT NULL,
		disponibilite_date_heure TIMESTAMPTZ,
		localisation_proposition VARCHAR(255),
		statut VARCHAR(50) NOT NULL DEFAULT 'pending',
		notes TEXT,
		CONSTRAINT fk_propositions_don_utilisateur
			FOREIGN KEY (id_utilisateur) REFERENCES utilisateurs (id)
	)`,
	`CREATE TABLE IF NOT EXISTS demandes_don (
		id BIGSERIAL PRIMARY KEY,
		id_utilisateur BIGINT NOT NULL,
		id_groupe_sanguin_requis BIGINT NOT NULL,
		quantite_demandee_ml INTEGER NOT NULL,
		date_demande TIMESTAMPTZ NOT NULL,
		localisation_demande VARCHAR(255),
		urgence VARCHAR(50) NOT NULL DEFAULT 'medium',
		statut VARCHAR(50) NOT NULL DEFAULT 'pending',
		description TEXT NOT NULL,
		CONSTRAINT fk_demandes_don_utilisateur
			FOREIGN KEY (id_utilisateur) REFERENCES utilisateurs (id),
		CONSTRAINT fk_demandes_don_groupe_sanguin
			FOREIGN KEY (id_groupe_sanguin_requis) REFERENCES groupes_sanguins (id)
	)`,
	`CREATE TABLE IF NOT EXISTS affectations_don (
		id BIGSERIAL PRIMARY KEY,
		id_proposition_don BIGINT NOT NULL,
		id_demande_don BIGINT NOT NULL,
		id_administrateur BIGINT NOT NULL,
		date_affectation TIMESTAMPTZ NOT NULL,
		statut_affectation VARCHAR(50) NOT NULL DEFAULT 'in progress',
		notes_administrateur TEXT,
		CONSTRAINT uq_affectations_don_proposition UNIQUE (id_proposition_don),
		CONSTRAINT fk_affectations_don_proposition
			FOREIGN KEY (id_proposition_don) REFERENCES propositions_don (id),
		CONSTRAINT fk_affectations_don_demande
			FOREIGN KEY (id_demande_don) REFERENCES demandes_don (id),
		CONSTRAINT fk_affectations_don_administrateur
			FOREIGN KEY (id_administrateur) REFERENCES utilisateurs (id)
	)`,
}

// Migrate creates the five entity tables when they do not exist yet. There is
// no versioned migration tooling; the schema is fixed.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement: %w", err)
		}
	}

	return nil
}
