package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/nuvemshop-descriptions/internal/application/catalog"
	"github.com/jhoicas/nuvemshop-descriptions/internal/application/installation"
	"github.com/jhoicas/nuvemshop-descriptions/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InstallUC     *installation.InstallUseCase
	DescriptionUC *usecase.DescriptionUseCase
	SyncUC        *catalog.SyncUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Instalación de la app Nuvemshop (público: lo llama la plataforma)
	installHandler := NewInstallHandler(deps.InstallUC)
	api.Get("/ns/install", installHandler.Install)

	descHandler := NewDescriptionHandler(deps.DescriptionUC)
	catHandler := NewCategoryHandler(deps.SyncUC)

	// Descripciones locales: lecturas públicas, mutaciones con el JWT del panel
	descriptions := api.Group("/descriptions")
	descriptions.Get("/", descHandler.Index)
	descriptions.Get("/categories", catHandler.List)
	descriptions.Post("/", AuthMiddleware(deps.JWTSecret), descHandler.Store)
	descriptions.Get("/category/:categoryId", descHandler.GetByCategory)
	descriptions.Get("/:id", descHandler.Show)
	descriptions.Put("/:id", AuthMiddleware(deps.JWTSecret), descHandler.Update)
	descriptions.Delete("/:id", AuthMiddleware(deps.JWTSecret), descHandler.Destroy)

	// Categorías remotas: Nuvemshop como fuente de verdad
	categories := api.Group("/categories")
	categories.Get("/:categoryId/description", catHandler.Get)
	categories.Put("/:categoryId/description", AuthMiddleware(deps.JWTSecret), catHandler.SetDescription)
	categories.Delete("/:categoryId/description", AuthMiddleware(deps.JWTSecret), catHandler.ClearDescription)

	// Rutas públicas para consumir descripciones (frontend o widgets)
	public := app.Group("/public")
	publicHandler := NewPublicHandler(deps.DescriptionUC)
	public.Get("/descriptions/:categoryId", publicHandler.GetByCategory)
	public.Get("/descriptions", publicHandler.ListAll)
}
