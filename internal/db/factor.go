package db

import (
	"database/sql"
	"time"
)

// Factor represents a discovered conversion factor in the factors table.
// Factors are keyed by canonical dimension code plus prefix-free source and
// destination unit expressions.
type Factor struct {
	ID        int64     `db:"id"`
	Dimension string    `db:"dimension"`
	SrcUnit   string    `db:"src_unit"`
	DestUnit  string    `db:"dest_unit"`
	Value     float64   `db:"value"`
	AbsError  float64   `db:"abs_error"`
	CreatedAt time.Time `db:"created_at"`
}

// FactorRepository defines the interface for factor cache data access.
type FactorRepository interface {
	FindAll() ([]Factor, error)
	FindByDimension(dimension string) ([]Factor, error)
	Find(dimension, srcUnit, destUnit string) (Factor, error)
	Save(f *Factor) (int64, error)
	Delete(id int64) error
	PurgeDimension(dimension string) error
}

// SQLFactorRepository implements FactorRepository with a SQL database.
type SQLFactorRepository struct {
	db *sql.DB
}

// NewFactorRepository creates a new SQL-based factor repository.
func NewFactorRepository(db *sql.DB) FactorRepository {
	return &SQLFactorRepository{db: db}
}

const factorColumns = "id, dimension, src_unit, dest_unit, value, abs_error, created_at"

// FindAll retrieves all cached factors.
func (r *SQLFactorRepository) FindAll() ([]Factor, error) {
	rows, err := r.db.Query("SELECT " + factorColumns + " FROM factors")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return scanFactors(rows)
}

// FindByDimension retrieves all cached factors for one dimension.
func (r *SQLFactorRepository) FindByDimension(dimension string) ([]Factor, error) {
	rows, err := r.db.Query("SELECT "+factorColumns+" FROM factors WHERE dimension = ?", dimension)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return scanFactors(rows)
}

// Find retrieves a single cached factor.
func (r *SQLFactorRepository) Find(dimension, srcUnit, destUnit string) (Factor, error) {
	row := r.db.QueryRow(
		"SELECT "+factorColumns+" FROM factors WHERE dimension = ? AND src_unit = ? AND dest_unit = ?",
		dimension, srcUnit, destUnit,
	)

	var f Factor
	err := row.Scan(&f.ID, &f.Dimension, &f.SrcUnit, &f.DestUnit, &f.Value, &f.AbsError, &f.CreatedAt)
	return f, err
}

// Save inserts a factor, replacing any existing row for the same key.
func (r *SQLFactorRepository) Save(f *Factor) (int64, error) {
	result, err := r.db.Exec(
		"INSERT OR REPLACE INTO factors (dimension, src_unit, dest_unit, value, abs_error) VALUES (?, ?, ?, ?, ?)",
		f.Dimension, f.SrcUnit, f.DestUnit, f.Value, f.AbsError,
	)
	if err != nil {
		return 0, err
	}

	return result.LastInsertId()
}

// Delete removes a factor from the cache.
func (r *SQLFactorRepository) Delete(id int64) error {
	_, err := r.db.Exec("DELETE FROM factors WHERE id = ?", id)
	return err
}

// PurgeDimension removes every cached factor for one dimension.
func (r *SQLFactorRepository) PurgeDimension(dimension string) error {
	_, err := r.db.Exec("DELETE FROM factors WHERE dimension = ?", dimension)
	return err
}

func scanFactors(rows *sql.Rows) ([]Factor, error) {
	var factors []Factor
	for rows.Next() {
		var f Factor
		if err := rows.Scan(&f.ID, &f.Dimension, &f.SrcUnit, &f.DestUnit, &f.Value, &f.AbsError, &f.CreatedAt); err != nil {
			return nil, err
		}
		factors = append(factors, f)
	}
	return factors, rows.Err()
}
