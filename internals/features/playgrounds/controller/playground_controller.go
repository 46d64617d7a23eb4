package controller

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"markazy_backend/internals/features/playgrounds/dto"
	"markazy_backend/internals/features/playgrounds/model"
	helper "markazy_backend/internals/helpers"
)

type PlaygroundController struct {
	DB *gorm.DB
}

func NewPlaygroundController(db *gorm.DB) *PlaygroundController {
	return &PlaygroundController{DB: db}
}

// db scopes queries to the request context so a client disconnect or
// the server-wide timeout cancels in-flight queries.
func (ctrl *PlaygroundController) db(c *fiber.Ctx) *gorm.DB {
	return ctrl.DB.WithContext(c.UserContext())
}

// =============================
// 📄 Listing & lookup
// =============================

func (ctrl *PlaygroundController) GetAll(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, helper.DefaultPerPage)
	query := ctrl.db(c).Model(&model.PlaygroundModel{})

	if name := strings.TrimSpace(c.Query("name")); name != "" {
		query = query.Where("playground_name ILIKE ?", "%"+name+"%")
	}
	if location := strings.TrimSpace(c.Query("location")); location != "" {
		query = query.Where("playground_location ILIKE ?", "%"+location+"%")
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		query = query.Where("playground_name ILIKE ? OR playground_location ILIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.JsonServerError(c, "Failed to count playgrounds", err)
	}
	var rows []model.PlaygroundModel
	if err := query.
		Order("playground_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonServerError(c, "Failed to fetch playgrounds", err)
	}

	items := dto.ToPlaygroundResponses(rows)
	return helper.JsonList(c, "Playgrounds fetched successfully", "playgrounds",
		items, helper.BuildPagination(total, p, len(items)))
}

func (ctrl *PlaygroundController) GetByID(c *fiber.Ctx) error {
	ground, ferr := ctrl.findPlayground(c)
	if ground == nil {
		return ferr
	}
	return helper.JsonOK(c, "Playground fetched successfully", dto.ToPlaygroundResponse(*ground))
}

// =============================
// ✏️ Mutations
// =============================

func (ctrl *PlaygroundController) Create(c *fiber.Ctx) error {
	var req dto.CreatePlaygroundRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if errs := helper.ValidateStruct(req); len(errs) > 0 {
		return helper.JsonErrorWithErrors(c, fiber.StatusBadRequest, "Validation failed", errs)
	}

	clash, err := ctrl.pairExists(c, req.Name, req.Location, uuid.Nil)
	if err != nil {
		return helper.JsonServerError(c, "Failed to check playground", err)
	}
	if clash {
		return helper.JsonErrorFields(c, fiber.StatusConflict,
			"Playground with this name and location already exists",
			fiber.Map{"name": req.Name, "location": req.Location})
	}

	ground := model.PlaygroundModel{
		PlaygroundName:     req.Name,
		PlaygroundLocation: req.Location,
		PlaygroundContact:  req.Contact,
	}
	if err := ctrl.db(c).Create(&ground).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonErrorFields(c, fiber.StatusConflict,
				"Playground with this name and location already exists",
				fiber.Map{"name": req.Name, "location": req.Location})
		}
		return helper.JsonServerError(c, "Failed to create playground", err)
	}
	return helper.JsonCreated(c, "Playground created successfully", dto.ToPlaygroundResponse(ground))
}

func (ctrl *PlaygroundController) Update(c *fiber.Ctx) error {
	ground, ferr := ctrl.findPlayground(c)
	if ground == nil {
		return ferr
	}

	var req dto.UpdatePlaygroundRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := helper.ValidateStruct(req); len(errs) > 0 {
		return helper.JsonErrorWithErrors(c, fiber.StatusBadRequest, "Validation failed", errs)
	}

	name := ground.PlaygroundName
	location := ground.PlaygroundLocation
	if req.Name != nil {
		name = strings.TrimSpace(*req.Name)
	}
	if req.Location != nil {
		location = strings.TrimSpace(*req.Location)
	}
	if req.Name != nil || req.Location != nil {
		clash, err := ctrl.pairExists(c, name, location, ground.PlaygroundID)
		if err != nil {
			return helper.JsonServerError(c, "Failed to check playground", err)
		}
		if clash {
			return helper.JsonErrorFields(c, fiber.StatusConflict,
				"Playground with this name and location already exists",
				fiber.Map{"name": name, "location": location})
		}
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["playground_name"] = name
	}
	if req.Location != nil {
		updates["playground_location"] = location
	}
	if req.Contact != nil {
		contact := strings.TrimSpace(*req.Contact)
		if contact == "" {
			contact = model.DefaultContact
		}
		updates["playground_contact"] = contact
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	if err := ctrl.db(c).Model(ground).Updates(updates).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Playground with this name and location already exists")
		}
		return helper.JsonServerError(c, "Failed to update playground", err)
	}
	var fresh model.PlaygroundModel
	if err := ctrl.db(c).First(&fresh, "playground_id = ?", ground.PlaygroundID).Error; err != nil {
		return helper.JsonServerError(c, "Failed to reload playground", err)
	}
	return helper.JsonUpdated(c, "Playground updated successfully", dto.ToPlaygroundResponse(fresh))
}

func (ctrl *PlaygroundController) Delete(c *fiber.Ctx) error {
	ground, ferr := ctrl.findPlayground(c)
	if ground == nil {
		return ferr
	}
	if err := ctrl.db(c).Delete(ground).Error; err != nil {
		return helper.JsonServerError(c, "Failed to delete playground", err)
	}
	return helper.JsonDeleted(c, "Playground deleted successfully", fiber.Map{"id": ground.PlaygroundID})
}

// BulkCreate collects per-item validation errors and skips duplicate
// (name, location) pairs in-batch and against stored rows.
func (ctrl *PlaygroundController) BulkCreate(c *fiber.Ctx) error {
	var req dto.BulkCreatePlaygroundRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if len(req.Playgrounds) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "playgrounds must contain at least one entry")
	}

	itemErrors := make([]fiber.Map, 0)
	duplicates := make([]fiber.Map, 0)
	inserted := make([]dto.PlaygroundResponse, 0)
	seen := make(map[string]struct{}, len(req.Playgrounds))

	for i, item := range req.Playgrounds {
		item.Normalize()
		if errs := helper.ValidateStruct(item); len(errs) > 0 {
			itemErrors = append(itemErrors, fiber.Map{"index": i, "name": item.Name, "errors": errs})
			continue
		}

		key := dto.PairKey(item.Name, item.Location)
		if _, dup := seen[key]; dup {
			duplicates = append(duplicates, fiber.Map{"name": item.Name, "location": item.Location})
			continue
		}
		seen[key] = struct{}{}

		clash, err := ctrl.pairExists(c, item.Name, item.Location, uuid.Nil)
		if err != nil {
			return helper.JsonServerError(c, "Failed to check playground", err)
		}
		if clash {
			duplicates = append(duplicates, fiber.Map{"name": item.Name, "location": item.Location})
			continue
		}

		ground := model.PlaygroundModel{
			PlaygroundName:     item.Name,
			PlaygroundLocation: item.Location,
			PlaygroundContact:  item.Contact,
		}
		if err := ctrl.db(c).Create(&ground).Error; err != nil {
			if helper.IsDuplicateKey(err) {
				duplicates = append(duplicates, fiber.Map{"name": item.Name, "location": item.Location})
				continue
			}
			return helper.JsonServerError(c, "Failed to create playground", err)
		}
		inserted = append(inserted, dto.ToPlaygroundResponse(ground))
	}

	status := fiber.StatusCreated
	if len(inserted) == 0 {
		status = fiber.StatusConflict
	}
	return c.Status(status).JSON(fiber.Map{
		"success":        len(inserted) > 0,
		"message":        fmt.Sprintf("%d playgrounds created, %d duplicates, %d invalid", len(inserted), len(duplicates), len(itemErrors)),
		"inserted_count": len(inserted),
		"inserted":       inserted,
		"duplicates":     duplicates,
		"errors":         itemErrors,
	})
}

// =============================
// 📊 Stats
// =============================

func (ctrl *PlaygroundController) Stats(c *fiber.Ctx) error {
	var total int64
	if err := ctrl.db(c).Model(&model.PlaygroundModel{}).Count(&total).Error; err != nil {
		return helper.JsonServerError(c, "Failed to count playgrounds", err)
	}

	type locationRow struct {
		Location string `json:"location"`
		Count    int64  `json:"count"`
	}
	var topLocations []locationRow
	if err := ctrl.db(c).Raw(`
		SELECT playground_location AS location, COUNT(*) AS count
		FROM playgrounds
		GROUP BY playground_location
		ORDER BY count DESC, location ASC
		LIMIT 10`).Scan(&topLocations).Error; err != nil {
		return helper.JsonServerError(c, "Failed to group playgrounds by location", err)
	}

	var recent []model.PlaygroundModel
	if err := ctrl.db(c).Model(&model.PlaygroundModel{}).
		Order("playground_created_at DESC").
		Limit(5).
		Find(&recent).Error; err != nil {
		return helper.JsonServerError(c, "Failed to fetch recent playgrounds", err)
	}

	return helper.JsonOK(c, "Playground stats fetched successfully", fiber.Map{
		"total":         total,
		"top_locations": topLocations,
		"most_recent":   dto.ToPlaygroundResponses(recent),
	})
}

// =============================
// 🧰 Internal helpers
// =============================

func (ctrl *PlaygroundController) findPlayground(c *fiber.Ctx) (*model.PlaygroundModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Invalid playground id")
	}
	var ground model.PlaygroundModel
	if err := ctrl.db(c).First(&ground, "playground_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Playground not found")
		}
		return nil, helper.JsonServerError(c, "Failed to fetch playground", err)
	}
	return &ground, nil
}

// pairExists checks the case-insensitive (name, location) natural key,
// optionally excluding one row during updates.
func (ctrl *PlaygroundController) pairExists(c *fiber.Ctx, name, location string, exclude uuid.UUID) (bool, error) {
	query := ctrl.db(c).Model(&model.PlaygroundModel{}).
		Where("LOWER(playground_name) = LOWER(?) AND LOWER(playground_location) = LOWER(?)", name, location)
	if exclude != uuid.Nil {
		query = query.Where("playground_id <> ?", exclude)
	}
	var n int64
	if err := query.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
