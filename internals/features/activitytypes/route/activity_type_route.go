package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"markazy_backend/internals/constants"
	"markazy_backend/internals/features/activitytypes/controller"
	authStore "markazy_backend/internals/features/users/auth/store"
	authMiddleware "markazy_backend/internals/middlewares/auth"
)

// ActivityTypeRoutes mounts the three name registries under a shared
// /activity-types prefix. Reads are public, mutations are for the
// centers editor.
func ActivityTypeRoutes(api fiber.Router, db *gorm.DB, tokens authStore.TokenStore) {
	ctrl := controller.NewActivityTypeController(db)

	public := api.Group("/activity-types")
	public.Get("/", ctrl.GetAll)
	public.Get("/search", ctrl.SearchAll)
	public.Get("/stats", ctrl.Stats)
	public.Get("/:type", ctrl.GetByType)
	public.Get("/:type/:id", ctrl.GetByID)

	protected := api.Group("/activity-types",
		authMiddleware.AuthMiddleware(tokens),
		authMiddleware.OnlyRole(constants.RoleCenters, constants.RoleError(constants.RoleCenters, "activity types")),
	)
	protected.Post("/:type/bulk", ctrl.BulkCreate)
	protected.Post("/:type", ctrl.Create)
	protected.Put("/:type/:id", ctrl.Update)
	protected.Delete("/:type/:id", ctrl.Delete)
}
