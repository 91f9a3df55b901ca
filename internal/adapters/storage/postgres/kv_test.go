package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petcare-landing/internal/ports/kv"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestKVStore_Get(t *testing.T) {
	mock := newMock(t)
	s := NewKVStore(mock)

	mock.ExpectQuery(regexp.QuoteMeta(getSlotSQL)).
		WithArgs("petcare_user").
		WillReturnRows(pgxmock.NewRows([]string{"value"}).AddRow(`{"id":"u-1"}`))

	v, err := s.Get(context.Background(), "petcare_user")
	require.NoError(t, err)
	assert.Equal(t, `{"id":"u-1"}`, v)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKVStore_Get_NoRowsIsNotFound(t *testing.T) {
	mock := newMock(t)
	s := NewKVStore(mock)

	mock.ExpectQuery(regexp.QuoteMeta(getSlotSQL)).
		WithArgs("petcare_pets").
		WillReturnError(pgx.ErrNoRows)

	_, err := s.Get(context.Background(), "petcare_pets")
	assert.ErrorIs(t, err, kv.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKVStore_Get_PropagatesDriverError(t *testing.T) {
	mock := newMock(t)
	s := NewKVStore(mock)

	boom := errors.New("connection reset")
	mock.ExpectQuery(regexp.QuoteMeta(getSlotSQL)).
		WithArgs("petcare_pets").
		WillReturnError(boom)

	_, err := s.Get(context.Background(), "petcare_pets")
	assert.ErrorIs(t, err, boom)
}

func TestKVStore_SetAndRemove(t *testing.T) {
	mock := newMock(t)
	s := NewKVStore(mock)

	mock.ExpectExec(regexp.QuoteMeta(upsertSlotSQL)).
		WithArgs("petcare_pets", `[]`).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(regexp.QuoteMeta(deleteSlotSQL)).
		WithArgs("petcare_pets").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, s.Set(context.Background(), "petcare_pets", `[]`))
	require.NoError(t, s.Remove(context.Background(), "petcare_pets"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKVStore_EnsureSchema(t *testing.T) {
	mock := newMock(t)
	s := NewKVStore(mock)

	mock.ExpectExec(regexp.QuoteMeta(createSlotsTableSQL)).
		WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))

	require.NoError(t, s.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
