package db

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepository(t *testing.T) (FactorRepository, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return NewFactorRepository(conn), mock
}

func TestFindAll(t *testing.T) {
	repo, mock := newMockRepository(t)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "dimension", "src_unit", "dest_unit", "value", "abs_error", "created_at"}).
		AddRow(1, "L", "ft", "m", 0.3048, 0.0, now).
		AddRow(2, "L", "mi", "m", 1609.344, 0.0, now)

	mock.ExpectQuery("SELECT (.+) FROM factors$").WillReturnRows(rows)

	factors, err := repo.FindAll()
	assert.NoError(t, err)
	assert.Len(t, factors, 2)
	assert.Equal(t, "mi", factors[1].SrcUnit)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFind(t *testing.T) {
	repo, mock := newMockRepository(t)

	rows := sqlmock.NewRows([]string{"id", "dimension", "src_unit", "dest_unit", "value", "abs_error", "created_at"}).
		AddRow(7, "LT-1", "kn", "m*s-1", 0.514444, 1e-12, time.Now())

	mock.ExpectQuery("SELECT (.+) FROM factors WHERE dimension = \\? AND src_unit = \\? AND dest_unit = \\?").
		WithArgs("LT-1", "kn", "m*s-1").
		WillReturnRows(rows)

	f, err := repo.Find("LT-1", "kn", "m*s-1")
	assert.NoError(t, err)
	assert.Equal(t, int64(7), f.ID)
	assert.InDelta(t, 0.514444, f.Value, 1e-9)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSave(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec("INSERT OR REPLACE INTO factors").
		WithArgs("M", "lb", "g", 453.59237, 0.0).
		WillReturnResult(sqlmock.NewResult(3, 1))

	id, err := repo.Save(&Factor{
		Dimension: "M",
		SrcUnit:   "lb",
		DestUnit:  "g",
		Value:     453.59237,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(3), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec("DELETE FROM factors WHERE id = \\?").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(3))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPurgeDimension(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec("DELETE FROM factors WHERE dimension = \\?").
		WithArgs("L").
		WillReturnResult(sqlmock.NewResult(0, 2))

	assert.NoError(t, repo.PurgeDimension("L"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
