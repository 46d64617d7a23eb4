package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"markazy_backend/internals/constants"
	"markazy_backend/internals/features/activities/controller"
	authStore "markazy_backend/internals/features/users/auth/store"
	authMiddleware "markazy_backend/internals/middlewares/auth"
)

// ActivityRoutes mounts /activities (public events). Reads are public,
// mutations need the activities editor role.
func ActivityRoutes(api fiber.Router, db *gorm.DB, tokens authStore.TokenStore) {
	ctrl := controller.NewActivityController(db)

	public := api.Group("/activities")
	public.Get("/", ctrl.GetAll)
	public.Get("/upcoming", ctrl.GetUpcoming)
	public.Get("/stats", ctrl.Stats)
	public.Get("/status/:status", ctrl.GetByStatus)
	public.Get("/:id", ctrl.GetOne)

	protected := api.Group("/activities",
		authMiddleware.AuthMiddleware(tokens),
		authMiddleware.OnlyRole(constants.RoleActivities, constants.RoleError(constants.RoleActivities, "activities")),
	)
	protected.Post("/", ctrl.Create)
	protected.Patch("/:id/status", ctrl.UpdateStatus)
	protected.Put("/:id", ctrl.Update)
	protected.Delete("/:id", ctrl.Delete)
}
