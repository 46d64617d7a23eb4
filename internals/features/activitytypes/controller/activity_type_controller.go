package controller

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"markazy_backend/internals/features/activitytypes/dto"
	"markazy_backend/internals/features/activitytypes/model"
	helper "markazy_backend/internals/helpers"
)

type ActivityTypeController struct {
	DB *gorm.DB
}

func NewActivityTypeController(db *gorm.DB) *ActivityTypeController {
	return &ActivityTypeController{DB: db}
}

// db scopes queries to the request context so a client disconnect or
// the server-wide timeout cancels in-flight queries.
func (ctrl *ActivityTypeController) db(c *fiber.Ctx) *gorm.DB {
	return ctrl.DB.WithContext(c.UserContext())
}

const registryDefaultLimit = 50

func (ctrl *ActivityTypeController) resolveRegistry(c *fiber.Ctx) (model.Registry, bool) {
	reg, ok := model.RegistryFor(c.Params("type"))
	if !ok {
		_ = helper.JsonError(c, fiber.StatusBadRequest,
			"Invalid activity type. Allowed values: "+strings.Join(model.RegistryTags(), ", "))
		return model.Registry{}, false
	}
	return reg, true
}

// =============================
// 📄 Listing & lookup
// =============================

// GetByType lists one registry with optional ?search= name filter.
func (ctrl *ActivityTypeController) GetByType(c *fiber.Ctx) error {
	reg, ok := ctrl.resolveRegistry(c)
	if !ok {
		return nil
	}

	p := helper.ResolvePaging(c, registryDefaultLimit)
	query := ctrl.db(c).Table(reg.Table)
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		query = query.Where("activity_type_name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.JsonServerError(c, "Failed to count "+reg.TypeLabel+" activities", err)
	}

	var rows []model.ActivityTypeModel
	if err := query.
		Order("activity_type_name ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonServerError(c, "Failed to fetch "+reg.TypeLabel+" activities", err)
	}

	items := dto.ToActivityTypeResponses(rows, reg.Tag)
	return helper.JsonList(c, reg.TypeLabel+" activities fetched successfully", "activities",
		items, helper.BuildPagination(total, p, len(items)))
}

// GetAll returns the three registries in one payload with per-type totals.
func (ctrl *ActivityTypeController) GetAll(c *fiber.Ctx) error {
	lists := fiber.Map{}
	counts := fiber.Map{}
	var total int64

	for _, reg := range model.AllRegistries() {
		var rows []model.ActivityTypeModel
		if err := ctrl.db(c).Table(reg.Table).
			Order("activity_type_name ASC").
			Find(&rows).Error; err != nil {
			return helper.JsonServerError(c, "Failed to fetch "+reg.TypeLabel+" activities", err)
		}
		lists[reg.Tag] = dto.ToActivityTypeResponses(rows, reg.Tag)
		counts[reg.Tag+"_count"] = len(rows)
		total += int64(len(rows))
	}

	payload := fiber.Map{
		"success": true,
		"message": "Activity types fetched successfully",
		"total":   total,
	}
	for k, v := range lists {
		payload[k] = v
	}
	for k, v := range counts {
		payload[k] = v
	}
	return c.Status(fiber.StatusOK).JSON(payload)
}

func (ctrl *ActivityTypeController) GetByID(c *fiber.Ctx) error {
	reg, ok := ctrl.resolveRegistry(c)
	if !ok {
		return nil
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid activity id")
	}

	var row model.ActivityTypeModel
	if err := ctrl.db(c).Table(reg.Table).
		Where("activity_type_id = ?", id).
		First(&row).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Activity not found")
		}
		return helper.JsonServerError(c, "Failed to fetch activity", err)
	}
	return helper.JsonOK(c, "Activity fetched successfully", dto.ToActivityTypeResponse(row, reg.Tag))
}

// SearchAll matches ?q= against all three registries and tags each hit.
func (ctrl *ActivityTypeController) SearchAll(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query parameter q is required")
	}

	results := make([]dto.ActivityTypeResponse, 0)
	for _, reg := range model.AllRegistries() {
		var rows []model.ActivityTypeModel
		if err := ctrl.db(c).Table(reg.Table).
			Where("activity_type_name ILIKE ?", "%"+q+"%").
			Order("activity_type_name ASC").
			Find(&rows).Error; err != nil {
			return helper.JsonServerError(c, "Failed to search activities", err)
		}
		results = append(results, dto.ToActivityTypeResponses(rows, reg.Tag)...)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":    true,
		"message":    "Search completed successfully",
		"count":      len(results),
		"activities": results,
	})
}

// =============================
// ✏️ Mutations
// =============================

func (ctrl *ActivityTypeController) Create(c *fiber.Ctx) error {
	reg, ok := ctrl.resolveRegistry(c)
	if !ok {
		return nil
	}

	var req dto.CreateActivityTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Name = dto.NormalizeName(req.Name)
	if errs := helper.ValidateStruct(req); len(errs) > 0 {
		return helper.JsonErrorWithErrors(c, fiber.StatusBadRequest, "Validation failed", errs)
	}

	var existing int64
	if err := ctrl.db(c).Table(reg.Table).
		Where("LOWER(activity_type_name) = LOWER(?)", req.Name).
		Count(&existing).Error; err != nil {
		return helper.JsonServerError(c, "Failed to check activity name", err)
	}
	if existing > 0 {
		return helper.JsonErrorFields(c, fiber.StatusConflict,
			"Activity with this name already exists", fiber.Map{"name": req.Name})
	}

	row := model.ActivityTypeModel{ActivityTypeName: req.Name}
	if err := ctrl.db(c).Table(reg.Table).Create(&row).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonErrorFields(c, fiber.StatusConflict,
				"Activity with this name already exists", fiber.Map{"name": req.Name})
		}
		return helper.JsonServerError(c, "Failed to create activity", err)
	}
	return helper.JsonCreated(c, "Activity created successfully", dto.ToActivityTypeResponse(row, reg.Tag))
}

func (ctrl *ActivityTypeController) Update(c *fiber.Ctx) error {
	reg, ok := ctrl.resolveRegistry(c)
	if !ok {
		return nil
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid activity id")
	}

	var req dto.UpdateActivityTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Name = dto.NormalizeName(req.Name)
	if errs := helper.ValidateStruct(req); len(errs) > 0 {
		return helper.JsonErrorWithErrors(c, fiber.StatusBadRequest, "Validation failed", errs)
	}

	var row model.ActivityTypeModel
	if err := ctrl.db(c).Table(reg.Table).
		Where("activity_type_id = ?", id).
		First(&row).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Activity not found")
		}
		return helper.JsonServerError(c, "Failed to fetch activity", err)
	}

	var clash int64
	if err := ctrl.db(c).Table(reg.Table).
		Where("LOWER(activity_type_name) = LOWER(?) AND activity_type_id <> ?", req.Name, id).
		Count(&clash).Error; err != nil {
		return helper.JsonServerError(c, "Failed to check activity name", err)
	}
	if clash > 0 {
		return helper.JsonErrorFields(c, fiber.StatusConflict,
			"Activity with this name already exists", fiber.Map{"name": req.Name})
	}

	if err := ctrl.db(c).Table(reg.Table).
		Where("activity_type_id = ?", id).
		Updates(map[string]any{"activity_type_name": req.Name}).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonErrorFields(c, fiber.StatusConflict,
				"Activity with this name already exists", fiber.Map{"name": req.Name})
		}
		return helper.JsonServerError(c, "Failed to update activity", err)
	}
	row.ActivityTypeName = req.Name
	return helper.JsonUpdated(c, "Activity updated successfully", dto.ToActivityTypeResponse(row, reg.Tag))
}

// Delete removes a registry entry unless any youth center still holds a
// reference to it. A blocked delete answers 409 with the holder count.
func (ctrl *ActivityTypeController) Delete(c *fiber.Ctx) error {
	reg, ok := ctrl.resolveRegistry(c)
	if !ok {
		return nil
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid activity id")
	}

	var row model.ActivityTypeModel
	if err := ctrl.db(c).Table(reg.Table).
		Where("activity_type_id = ?", id).
		First(&row).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Activity not found")
		}
		return helper.JsonServerError(c, "Failed to fetch activity", err)
	}

	var holders int64
	if err := ctrl.db(c).Table("youth_centers").
		Where(fmt.Sprintf("? = ANY(%s)", reg.CenterColumn), id).
		Count(&holders).Error; err != nil {
		return helper.JsonServerError(c, "Failed to check activity references", err)
	}
	if holders > 0 {
		return helper.JsonErrorFields(c, fiber.StatusConflict,
			fmt.Sprintf("Cannot delete activity: it is referenced by %d youth center(s)", holders),
			fiber.Map{"centers_count": holders})
	}

	if err := ctrl.db(c).Table(reg.Table).
		Where("activity_type_id = ?", id).
		Delete(&model.ActivityTypeModel{}).Error; err != nil {
		return helper.JsonServerError(c, "Failed to delete activity", err)
	}
	return helper.JsonDeleted(c, "Activity deleted successfully", fiber.Map{"id": id})
}

// BulkCreate inserts many names at once. Duplicates, both in-batch and
// against existing rows, are reported as skipped rather than failing the
// whole request.
func (ctrl *ActivityTypeController) BulkCreate(c *fiber.Ctx) error {
	reg, ok := ctrl.resolveRegistry(c)
	if !ok {
		return nil
	}

	var req dto.BulkCreateActivityTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := helper.ValidateStruct(req); len(errs) > 0 {
		return helper.JsonErrorWithErrors(c, fiber.StatusBadRequest, "Validation failed", errs)
	}

	names := dto.DedupeNames(req.Names)
	if len(names) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No valid activity names provided")
	}

	inserted := make([]dto.ActivityTypeResponse, 0, len(names))
	skipped := make([]string, 0)
	for _, name := range names {
		var existing int64
		if err := ctrl.db(c).Table(reg.Table).
			Where("LOWER(activity_type_name) = LOWER(?)", name).
			Count(&existing).Error; err != nil {
			return helper.JsonServerError(c, "Failed to check activity name", err)
		}
		if existing > 0 {
			skipped = append(skipped, name)
			continue
		}
		row := model.ActivityTypeModel{ActivityTypeName: name}
		if err := ctrl.db(c).Table(reg.Table).Create(&row).Error; err != nil {
			if helper.IsDuplicateKey(err) {
				skipped = append(skipped, name)
				continue
			}
			return helper.JsonServerError(c, "Failed to create activity", err)
		}
		inserted = append(inserted, dto.ToActivityTypeResponse(row, reg.Tag))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":        true,
		"message":        fmt.Sprintf("%d activities created, %d skipped", len(inserted), len(skipped)),
		"inserted_count": len(inserted),
		"skipped_count":  len(skipped),
		"inserted":       inserted,
		"skipped":        skipped,
	})
}

// =============================
// 📊 Stats
// =============================

type popularActivityRow struct {
	Name         string `json:"name"`
	CentersCount int64  `json:"centers_count"`
}

// Stats reports registry sizes plus the five most referenced names per
// registry, counted across youth center reference lists.
func (ctrl *ActivityTypeController) Stats(c *fiber.Ctx) error {
	stats := fiber.Map{}
	var total int64

	for _, reg := range model.AllRegistries() {
		var count int64
		if err := ctrl.db(c).Table(reg.Table).Count(&count).Error; err != nil {
			return helper.JsonServerError(c, "Failed to count "+reg.TypeLabel+" activities", err)
		}

		var popular []popularActivityRow
		query := fmt.Sprintf(`
			SELECT a.activity_type_name AS name, COUNT(c.center_id) AS centers_count
			FROM %s a
			JOIN youth_centers c ON a.activity_type_id = ANY(c.%s)
			GROUP BY a.activity_type_name
			ORDER BY centers_count DESC, name ASC
			LIMIT 5`, reg.Table, reg.CenterColumn)
		if err := ctrl.db(c).Raw(query).Scan(&popular).Error; err != nil {
			return helper.JsonServerError(c, "Failed to rank "+reg.TypeLabel+" activities", err)
		}

		stats[reg.Tag] = fiber.Map{
			"count":        count,
			"most_popular": popular,
		}
		total += count
	}

	stats["total"] = total
	return helper.JsonOK(c, "Activity type stats fetched successfully", stats)
}
