package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/autolux-api/internal/domain"
	"github.com/jhoicas/autolux-api/internal/domain/entity"
	"github.com/jhoicas/autolux-api/internal/domain/repository"
)

var _ repository.BrandRepository = (*BrandRepo)(nil)

// BrandRepo implementación del puerto BrandRepository sobre PostgreSQL (usable con pool o tx).
type BrandRepo struct {
	q Querier
}

// NewBrandRepository construye el adaptador de persistencia para marcas. Pasar pool o tx (Querier).
func NewBrandRepository(q Querier) *BrandRepo {
	return &BrandRepo{q: q}
}

// Create persiste una nueva marca. Devuelve ErrDuplicate si el nombre ya
// existe (índice único sobre lower(name)).
func (r *BrandRepo) Create(brand *entity.Brand) error {
	query := `
		INSERT INTO brands (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		brand.ID, brand.Name, brand.CreatedAt, brand.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert brand: %w", err)
	}
	return nil
}

// GetByID obtiene una marca por ID. Devuelve nil si no existe.
func (r *BrandRepo) GetByID(id string) (*entity.Brand, error) {
	return r.scanOne(`
		SELECT id, name, created_at, updated_at
		FROM brands WHERE id = $1`, id)
}

// GetByName obtiene una marca por nombre sin distinguir mayúsculas. Devuelve nil si no existe.
func (r *BrandRepo) GetByName(name string) (*entity.Brand, error) {
	return r.scanOne(`
		SELECT id, name, created_at, updated_at
		FROM brands WHERE lower(name) = lower($1)`, name)
}

func (r *BrandRepo) scanOne(query string, arg any) (*entity.Brand, error) {
	var b entity.Brand
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&b.ID, &b.Name, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get brand: %w", err)
	}
	return &b, nil
}

// List lista todas las marcas ordenadas por nombre.
func (r *BrandRepo) List() ([]*entity.Brand, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM brands ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	defer rows.Close()
	var list []*entity.Brand
	for rows.Next() {
		var b entity.Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan brand: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// Update actualiza una marca. Devuelve ErrDuplicate si el nuevo nombre choca
// con otra marca.
func (r *BrandRepo) Update(brand *entity.Brand) error {
	query := `
		UPDATE brands SET name = $2, updated_at = $3
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, brand.ID, brand.Name, brand.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update brand: %w", err)
	}
	return nil
}

// Delete elimina una marca por ID. Devuelve ErrNotFound si no existe y
// ErrBrandHasCars si la FK de cars la referencia (ON DELETE RESTRICT).
func (r *BrandRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM brands WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrBrandHasCars
		}
		return fmt.Errorf("delete brand: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ResolveOrCreate devuelve la marca con ese nombre, creándola si no existe.
// El INSERT usa ON CONFLICT sobre lower(name) para que dos creaciones
// concurrentes con el mismo nombre terminen en una sola fila.
func (r *BrandRepo) ResolveOrCreate(name string) (*entity.Brand, error) {
	existing, err := r.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	query := `
		INSERT INTO brands (id, name, created_at, updated_at)
		VALUES ($1, $2, now(), now())
		ON CONFLICT (lower(name)) DO NOTHING`
	if _, err := r.q.Exec(context.Background(), query, newBrandID(), name); err != nil {
		return nil, fmt.Errorf("resolve brand: %w", err)
	}
	// Releer: cubre tanto el insert propio como el de una carrera perdida.
	brand, err := r.GetByName(name)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, fmt.Errorf("resolve brand: %q no quedó persistida", name)
	}
	return brand, nil
}
