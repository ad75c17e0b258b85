// Package testutil provee repositorios en memoria para tests de use cases y
// handlers, con la misma semántica de errores que los adaptadores PostgreSQL.
package testutil

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/autolux-api/internal/domain"
	"github.com/jhoicas/autolux-api/internal/domain/entity"
	"github.com/jhoicas/autolux-api/internal/domain/repository"
)

// FakeUserRepo implementación en memoria de repository.UserRepository.
type FakeUserRepo struct {
	Users []*entity.User
}

var _ repository.UserRepository = (*FakeUserRepo)(nil)

func (r *FakeUserRepo) Create(user *entity.User) error {
	for _, u := range r.Users {
		if u.Username == user.Username {
			return domain.ErrUsernameTaken
		}
	}
	clone := *user
	r.Users = append(r.Users, &clone)
	return nil
}

func (r *FakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.Users {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *FakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.Users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *FakeUserRepo) Update(user *entity.User) error {
	for i, u := range r.Users {
		if u.ID == user.ID {
			clone := *user
			r.Users[i] = &clone
			return nil
		}
	}
	return nil
}

// FakeBrandRepo implementación en memoria de repository.BrandRepository.
// Cars permite aplicar la restricción de borrado (FK RESTRICT).
type FakeBrandRepo struct {
	Brands []*entity.Brand
	Cars   *FakeCarRepo
}

var _ repository.BrandRepository = (*FakeBrandRepo)(nil)

func (r *FakeBrandRepo) Create(brand *entity.Brand) error {
	for _, b := range r.Brands {
		if strings.EqualFold(b.Name, brand.Name) {
			return domain.ErrDuplicate
		}
	}
	clone := *brand
	r.Brands = append(r.Brands, &clone)
	return nil
}

func (r *FakeBrandRepo) GetByID(id string) (*entity.Brand, error) {
	for _, b := range r.Brands {
		if b.ID == id {
			clone := *b
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *FakeBrandRepo) GetByName(name string) (*entity.Brand, error) {
	for _, b := range r.Brands {
		if strings.EqualFold(b.Name, name) {
			clone := *b
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *FakeBrandRepo) List() ([]*entity.Brand, error) {
	out := make([]*entity.Brand, 0, len(r.Brands))
	for _, b := range r.Brands {
		clone := *b
		out = append(out, &clone)
	}
	return out, nil
}

func (r *FakeBrandRepo) Update(brand *entity.Brand) error {
	for _, b := range r.Brands {
		if b.ID != brand.ID && strings.EqualFold(b.Name, brand.Name) {
			return domain.ErrDuplicate
		}
	}
	for i, b := range r.Brands {
		if b.ID == brand.ID {
			clone := *brand
			r.Brands[i] = &clone
			return nil
		}
	}
	return nil
}

func (r *FakeBrandRepo) Delete(id string) error {
	if r.Cars != nil {
		for _, c := range r.Cars.CarsList {
			if c.BrandID == id {
				return domain.ErrBrandHasCars
			}
		}
	}
	for i, b := range r.Brands {
		if b.ID == id {
			r.Brands = append(r.Brands[:i], r.Brands[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *FakeBrandRepo) ResolveOrCreate(name string) (*entity.Brand, error) {
	if existing, _ := r.GetByName(name); existing != nil {
		return existing, nil
	}
	brand := &entity.Brand{ID: uuid.New().String(), Name: name}
	if err := r.Create(brand); err != nil {
		return nil, err
	}
	return brand, nil
}

// FakeCarRepo implementación en memoria de repository.CarRepository.
type FakeCarRepo struct {
	CarsList []*entity.Car
}

var _ repository.CarRepository = (*FakeCarRepo)(nil)

func (r *FakeCarRepo) Create(car *entity.Car) error {
	clone := *car
	r.CarsList = append(r.CarsList, &clone)
	return nil
}

func (r *FakeCarRepo) GetByID(id string) (*entity.Car, error) {
	for _, c := range r.CarsList {
		if c.ID == id {
			clone := *c
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *FakeCarRepo) List() ([]*entity.Car, error) {
	out := make([]*entity.Car, 0, len(r.CarsList))
	for _, c := range r.CarsList {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *FakeCarRepo) ListByBrand(brandID string) ([]*entity.Car, error) {
	var out []*entity.Car
	for _, c := range r.CarsList {
		if c.BrandID == brandID {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *FakeCarRepo) Search(filter repository.CarFilter) ([]*entity.Car, error) {
	var out []*entity.Car
	for _, c := range r.CarsList {
		if filter.Model != "" && !strings.Contains(c.Model, filter.Model) {
			continue
		}
		if filter.BrandName != "" && !strings.Contains(c.BrandName, filter.BrandName) {
			continue
		}
		if filter.Year != nil && c.Year != *filter.Year {
			continue
		}
		if filter.Price != nil && !c.Price.Equal(*filter.Price) {
			continue
		}
		if filter.Mileage != nil && c.Mileage != *filter.Mileage {
			continue
		}
		if filter.Color != "" && !strings.Contains(c.Color, filter.Color) {
			continue
		}
		if filter.IsSold != nil && c.IsSold != *filter.IsSold {
			continue
		}
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *FakeCarRepo) Update(car *entity.Car) error {
	for i, c := range r.CarsList {
		if c.ID == car.ID {
			clone := *car
			r.CarsList[i] = &clone
			return nil
		}
	}
	return nil
}

func (r *FakeCarRepo) Delete(id string) error {
	for i, c := range r.CarsList {
		if c.ID == id {
			r.CarsList = append(r.CarsList[:i], r.CarsList[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// FakeTxRunner ejecuta el callback directo sobre los fakes (sin transacción real).
type FakeTxRunner struct {
	Brands *FakeBrandRepo
	Cars   *FakeCarRepo
}

func (r *FakeTxRunner) Run(ctx context.Context, fn func(brands repository.BrandRepository, cars repository.CarRepository) error) error {
	return fn(r.Brands, r.Cars)
}
