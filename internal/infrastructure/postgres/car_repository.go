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

var _ repository.CarRepository = (*CarRepo)(nil)

// CarRepo implementación del puerto CarRepository sobre PostgreSQL (usable con pool o tx).
// Todas las lecturas traen el nombre de la marca con JOIN.
type CarRepo struct {
	q Querier
}

// NewCarRepository construye el adaptador de persistencia para autos. Pasar pool o tx (Querier).
func NewCarRepository(q Querier) *CarRepo {
	return &CarRepo{q: q}
}

const carColumns = `
	c.id, c.model, c.year, c.price, c.mileage, c.color, c.is_sold,
	c.brand_id, b.name, c.created_at, c.updated_at`

// Create persiste un nuevo auto. La FK garantiza que brand_id exista.
func (r *CarRepo) Create(car *entity.Car) error {
	query := `
		INSERT INTO cars (id, model, year, price, mileage, color, is_sold, brand_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		car.ID, car.Model, car.Year, car.Price, car.Mileage, car.Color, car.IsSold,
		car.BrandID, car.CreatedAt, car.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrBrandNotFound
		}
		return fmt.Errorf("insert car: %w", err)
	}
	return nil
}

// GetByID obtiene un auto por ID con su marca. Devuelve nil si no existe.
func (r *CarRepo) GetByID(id string) (*entity.Car, error) {
	query := `
		SELECT ` + carColumns + `
		FROM cars c JOIN brands b ON b.id = c.brand_id
		WHERE c.id = $1`
	var c entity.Car
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Model, &c.Year, &c.Price, &c.Mileage, &c.Color, &c.IsSold,
		&c.BrandID, &c.BrandName, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get car: %w", err)
	}
	return &c, nil
}

// List lista todos los autos en el orden natural del store.
func (r *CarRepo) List() ([]*entity.Car, error) {
	query := `
		SELECT ` + carColumns + `
		FROM cars c JOIN brands b ON b.id = c.brand_id`
	return r.queryMany(query)
}

// ListByBrand lista los autos de una marca.
func (r *CarRepo) ListByBrand(brandID string) ([]*entity.Car, error) {
	query := `
		SELECT ` + carColumns + `
		FROM cars c JOIN brands b ON b.id = c.brand_id
		WHERE c.brand_id = $1`
	return r.queryMany(query, brandID)
}

// Search arma el WHERE solo con los filtros presentes: substring sensible a
// mayúsculas para model/brand/color (LIKE), igualdad exacta para el resto.
// Sin filtros devuelve todos los autos.
func (r *CarRepo) Search(filter repository.CarFilter) ([]*entity.Car, error) {
	query := `
		SELECT ` + carColumns + `
		FROM cars c JOIN brands b ON b.id = c.brand_id`
	var conds []string
	var args []any
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if filter.Model != "" {
		add("c.model LIKE '%%' || $%d || '%%'", filter.Model)
	}
	if filter.BrandName != "" {
		add("b.name LIKE '%%' || $%d || '%%'", filter.BrandName)
	}
	if filter.Year != nil {
		add("c.year = $%d", *filter.Year)
	}
	if filter.Price != nil {
		add("c.price = $%d", *filter.Price)
	}
	if filter.Mileage != nil {
		add("c.mileage = $%d", *filter.Mileage)
	}
	if filter.Color != "" {
		add("c.color LIKE '%%' || $%d || '%%'", filter.Color)
	}
	if filter.IsSold != nil {
		add("c.is_sold = $%d", *filter.IsSold)
	}
	for i, cond := range conds {
		if i == 0 {
			query += "\n\t\tWHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	return r.queryMany(query, args...)
}

// Update sobreescribe todos los atributos escalares y la vinculación de marca.
func (r *CarRepo) Update(car *entity.Car) error {
	query := `
		UPDATE cars SET model = $2, year = $3, price = $4, mileage = $5, color = $6, is_sold = $7, brand_id = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		car.ID, car.Model, car.Year, car.Price, car.Mileage, car.Color, car.IsSold,
		car.BrandID, car.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrBrandNotFound
		}
		return fmt.Errorf("update car: %w", err)
	}
	return nil
}

// Delete elimina un auto por ID. Devuelve ErrNotFound si no existe.
func (r *CarRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM cars WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete car: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CarRepo) queryMany(query string, args ...any) ([]*entity.Car, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cars: %w", err)
	}
	defer rows.Close()
	var list []*entity.Car
	for rows.Next() {
		var c entity.Car
		if err := rows.Scan(&c.ID, &c.Model, &c.Year, &c.Price, &c.Mileage, &c.Color, &c.IsSold,
			&c.BrandID, &c.BrandName, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan car: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
