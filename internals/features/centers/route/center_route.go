package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"markazy_backend/internals/constants"
	"markazy_backend/internals/features/centers/controller"
	authStore "markazy_backend/internals/features/users/auth/store"
	"markazy_backend/internals/helpers/oss"
	authMiddleware "markazy_backend/internals/middlewares/auth"
)

// CenterRoutes mounts /centers. Reads are public; mutations need the
// centers editor role.
func CenterRoutes(api fiber.Router, db *gorm.DB, tokens authStore.TokenStore, images oss.ImageStorage) {
	ctrl := controller.NewCenterController(db, images)

	public := api.Group("/centers")
	public.Get("/", ctrl.GetAll)
	public.Get("/stats", ctrl.Stats)
	public.Get("/:id", ctrl.GetByID)

	protected := api.Group("/centers",
		authMiddleware.AuthMiddleware(tokens),
		authMiddleware.OnlyRole(constants.RoleCenters, constants.RoleError(constants.RoleCenters, "youth centers")),
	)
	protected.Post("/", ctrl.Create)
	protected.Put("/:id/activities", ctrl.ReplaceActivities)
	protected.Post("/:id/activities/:type", ctrl.AddActivity)
	protected.Delete("/:id/activities/:type", ctrl.RemoveActivities)
	protected.Patch("/:id/membership", ctrl.PatchMembership)
	protected.Put("/:id", ctrl.Update)
	protected.Delete("/:id", ctrl.Delete)
}
