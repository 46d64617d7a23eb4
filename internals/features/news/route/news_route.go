package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"markazy_backend/internals/constants"
	"markazy_backend/internals/features/news/controller"
	authStore "markazy_backend/internals/features/users/auth/store"
	"markazy_backend/internals/helpers/oss"
	authMiddleware "markazy_backend/internals/middlewares/auth"
)

func NewsRoutes(api fiber.Router, db *gorm.DB, tokens authStore.TokenStore, images oss.ImageStorage) {
	ctrl := controller.NewNewsController(db, images)

	public := api.Group("/news")
	public.Get("/", ctrl.GetAll)
	public.Get("/search", ctrl.Search)
	public.Get("/:id", ctrl.GetOne)

	protected := api.Group("/news",
		authMiddleware.AuthMiddleware(tokens),
		authMiddleware.OnlyRole(constants.RoleNews, constants.RoleError(constants.RoleNews, "news")),
	)
	protected.Post("/", ctrl.Create)
	protected.Put("/:id", ctrl.Update)
	protected.Delete("/:id", ctrl.Delete)
}
