package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/autolux-api/internal/application/auth"
	"github.com/jhoicas/autolux-api/internal/application/usecase"
	"github.com/jhoicas/autolux-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/autolux-api/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC  *auth.AuthUseCase
	BrandUC *usecase.BrandUseCase
	CarUC   *usecase.CarUseCase
	JWT     pkgjwt.Config
}

// Router registra las rutas de la API. Todo /api/brands y /api/cars requiere
// token válido; las mutaciones requieren además rol admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público salvo change-password)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/change-password", AuthMiddleware(deps.JWT), authHandler.ChangePassword)

	admin := RequireRole(entity.RoleAdmin)

	// Brands (protegido)
	brands := api.Group("/brands", AuthMiddleware(deps.JWT))
	brandHandler := NewBrandHandler(deps.BrandUC)
	brands.Get("/", brandHandler.List)
	brands.Post("/", admin, brandHandler.Create)
	brands.Get("/:id", brandHandler.GetByID)
	brands.Put("/:id", admin, brandHandler.Update)
	brands.Delete("/:id", admin, brandHandler.Delete)

	// Cars (protegido). /search va antes de /:id para que no lo capture el parámetro.
	cars := api.Group("/cars", AuthMiddleware(deps.JWT))
	carHandler := NewCarHandler(deps.CarUC)
	cars.Get("/", carHandler.List)
	cars.Get("/search", carHandler.Search)
	cars.Post("/", admin, carHandler.Create)
	cars.Get("/:id", carHandler.GetByID)
	cars.Put("/:id", admin, carHandler.Update)
	cars.Delete("/:id", admin, carHandler.Delete)
}
