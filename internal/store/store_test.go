package store

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestListWindow(t *testing.T) {
	cases := []struct {
		name       string
		skip       int
		limit      int
		wantOffset uint64
		wantLimit  uint64
	}{
		{name: "defaults untouched", skip: 0, limit: 100, wantOffset: 0, wantLimit: 100},
		{name: "explicit window", skip: 10, limit: 5, wantOffset: 10, wantLimit: 5},
		{name: "negative skip", skip: -3, limit: 20, wantOffset: 0, wantLimit: 20},
		{name: "negative limit", skip: 2, limit: -1, wantOffset: 2, wantLimit: 100},
		{name: "both negative", skip: -1, limit: -1, wantOffset: 0, wantLimit: 100},
		{name: "zero limit kept", skip: 0, limit: 0, wantOffset: 0, wantLimit: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			offset, limit := listWindow(tc.skip, tc.limit)
			assert.Equal(t, tc.wantOffset, offset)
			assert.Equal(t, tc.wantLimit, limit)
		})
	}
}

func TestViolatedConstraint(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "uq_utilisateurs_email"}
	assert.Equal(t, "uq_utilisateurs_email", violatedConstraint(unique))

	fk := &pgconn.PgError{Code: "23503", ConstraintName: "fk_propositions_don_utilisateur"}
	assert.Equal(t, "fk_propositions_don_utilisateur", violatedConstraint(fk))

	// wrapped errors are unwrapped
	wrapped := errors.Join(errors.New("exec failed"), unique)
	assert.Equal(t, "uq_utilisateurs_email", violatedConstraint(wrapped))

	otherPg := &pgconn.PgError{Code: "42703", ConstraintName: "irrelevant"}
	assert.Equal(t, "", violatedConstraint(otherPg))

	assert.Equal(t, "", violatedConstraint(errors.New("plain error")))
	assert.Equal(t, "", violatedConstraint(nil))
}
