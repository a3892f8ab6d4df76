package pgrepo

import (
	"errors"
	"testing"

	"github.com/fsdevblog/umbrella-ledger/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestConvertErr(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: domain.ErrRecordNotFound},
		{name: "unique", err: &pgconn.PgError{Code: "23505"}, want: domain.ErrDuplicateKey},
		{name: "foreign key", err: &pgconn.PgError{Code: "23503"}, want: domain.ErrRecordNotFound},
		{name: "serialization", err: &pgconn.PgError{Code: "40001"}, want: domain.ErrConflict},
		{name: "deadlock", err: &pgconn.PgError{Code: "40P01"}, want: domain.ErrConflict},
		{name: "other pg", err: &pgconn.PgError{Code: "22003"}, want: domain.ErrUnknown},
		{name: "plain", err: errors.New("conn reset"), want: domain.ErrUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := convertErr(tc.err, "account %d", 1)
			assert.ErrorIs(t, err, tc.want)
			assert.Contains(t, err.Error(), "[repository/account 1]")
		})
	}

	assert.NoError(t, convertErr(nil, "noop"))
}
