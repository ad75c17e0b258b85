package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/autolux-api/internal/application/dto"
	"github.com/jhoicas/autolux-api/internal/application/usecase"
	"github.com/jhoicas/autolux-api/internal/domain"
	"github.com/jhoicas/autolux-api/internal/testutil"
)

// carRequest arma un request de auto con marca por ID o por nombre.
func carRequest(model, brandID, brandName string) dto.CreateCarRequest {
	return dto.CreateCarRequest{
		Model:     model,
		Year:      2020,
		Price:     decimal.NewFromInt(15000),
		Mileage:   42000,
		Color:     "Red",
		BrandID:   brandID,
		BrandName: brandName,
	}
}

func newCarEnv() (*usecase.CarUseCase, *testutil.FakeBrandRepo, *testutil.FakeCarRepo) {
	cars := &testutil.FakeCarRepo{}
	brands := &testutil.FakeBrandRepo{Cars: cars}
	tx := &testutil.FakeTxRunner{Brands: brands, Cars: cars}
	return usecase.NewCarUseCase(cars, tx), brands, cars
}

func TestCarCreate_PorBrandNameCreaLaMarcaUnaSolaVez(t *testing.T) {
	carUC, brands, cars := newCarEnv()

	first, err := carUC.Create(carRequest("Corolla", "", "Toyota"))
	require.NoError(t, err)
	assert.Equal(t, "Toyota", first.BrandName)
	require.Len(t, brands.Brands, 1, "la marca se crea implícitamente")

	second, err := carUC.Create(carRequest("Yaris", "", "Toyota"))
	require.NoError(t, err)
	assert.Len(t, brands.Brands, 1, "el mismo nombre no produce dos marcas")
	assert.Equal(t, first.BrandID, second.BrandID)
	assert.Len(t, cars.CarsList, 2)
}

func TestCarCreate_BrandIDInexistente(t *testing.T) {
	carUC, _, cars := newCarEnv()
	_, err := carUC.Create(carRequest("Corolla", "no-existe", ""))
	assert.ErrorIs(t, err, domain.ErrBrandNotFound)
	assert.Empty(t, cars.CarsList, "no se escribe nada si la marca no resuelve")
}

func TestCarCreate_SinMarca(t *testing.T) {
	carUC, _, _ := newCarEnv()
	_, err := carUC.Create(carRequest("Corolla", "", ""))
	assert.ErrorIs(t, err, domain.ErrMissingBrand)
}

func TestCarUpdate_ResuelveLaMarcaIgualQueCreate(t *testing.T) {
	carUC, brands, _ := newCarEnv()

	created, err := carUC.Create(carRequest("Corolla", "", "Toyota"))
	require.NoError(t, err)

	// Por nombre: update también resuelve-o-crea (misma regla que create).
	out, err := carUC.Update(created.ID, carRequest("Corolla", "", "Honda"))
	require.NoError(t, err)
	assert.Equal(t, "Honda", out.BrandName)
	assert.Len(t, brands.Brands, 2)

	// Sin marca en el request: se conserva la vinculación actual.
	out, err = carUC.Update(created.ID, carRequest("Corolla GT", "", ""))
	require.NoError(t, err)
	assert.Equal(t, "Honda", out.BrandName)
	assert.Equal(t, "Corolla GT", out.Model)
}

func TestCarUpdate_NoExiste(t *testing.T) {
	carUC, _, _ := newCarEnv()
	out, err := carUC.Update("no-existe", carRequest("X", "", "Toyota"))
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestCarDelete_NoExiste(t *testing.T) {
	carUC, _, cars := newCarEnv()
	err := carUC.Delete("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, cars.CarsList)
}

func TestCarSearch_SinFiltrosDevuelveTodo(t *testing.T) {
	carUC, _, _ := newCarEnv()
	_, err := carUC.Create(carRequest("Corolla", "", "Toyota"))
	require.NoError(t, err)
	_, err = carUC.Create(carRequest("Civic", "", "Honda"))
	require.NoError(t, err)

	out, err := carUC.Search(dto.SearchCarsRequest{})
	require.NoError(t, err)
	assert.Len(t, out, 2, "filtro vacío devuelve cada auto exactamente una vez")
}

func TestCarSearch_CombinaFiltrosConAND(t *testing.T) {
	carUC, _, _ := newCarEnv()

	red2020 := carRequest("Corolla", "", "Toyota") // Year 2020, Color Red
	require.NoError(t, createOK(t, carUC, red2020))

	blue2020 := carRequest("Civic", "", "Honda")
	blue2020.Color = "Blue"
	require.NoError(t, createOK(t, carUC, blue2020))

	red2018 := carRequest("Golf", "", "VW")
	red2018.Year = 2018
	require.NoError(t, createOK(t, carUC, red2018))

	year := 2020
	out, err := carUC.Search(dto.SearchCarsRequest{Year: &year, Color: "Red"})
	require.NoError(t, err)
	require.Len(t, out, 1, "solo el auto que cumple ambos predicados")
	assert.Equal(t, "Corolla", out[0].Model)

	// Substring sensible a mayúsculas: "red" no matchea "Red".
	out, err = carUC.Search(dto.SearchCarsRequest{Color: "red"})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCarSearch_PorMarcaYPrecio(t *testing.T) {
	carUC, _, _ := newCarEnv()

	corolla := carRequest("Corolla", "", "Toyota")
	require.NoError(t, createOK(t, carUC, corolla))
	civic := carRequest("Civic", "", "Honda")
	civic.Price = decimal.NewFromInt(22000)
	require.NoError(t, createOK(t, carUC, civic))

	out, err := carUC.Search(dto.SearchCarsRequest{Brand: "Toyo"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Toyota", out[0].BrandName)

	price := decimal.NewFromInt(22000)
	out, err = carUC.Search(dto.SearchCarsRequest{Price: &price})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Civic", out[0].Model)
}

func createOK(t *testing.T, uc *usecase.CarUseCase, in dto.CreateCarRequest) error {
	t.Helper()
	_, err := uc.Create(in)
	return err
}
