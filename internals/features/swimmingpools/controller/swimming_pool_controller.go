package controller

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"markazy_backend/internals/features/swimmingpools/dto"
	"markazy_backend/internals/features/swimmingpools/model"
	helper "markazy_backend/internals/helpers"
)

type SwimmingPoolController struct {
	DB *gorm.DB
}

func NewSwimmingPoolController(db *gorm.DB) *SwimmingPoolController {
	return &SwimmingPoolController{DB: db}
}

// db scopes queries to the request context so a client disconnect or
// the server-wide timeout cancels in-flight queries.
func (ctrl *SwimmingPoolController) db(c *fiber.Ctx) *gorm.DB {
	return ctrl.DB.WithContext(c.UserContext())
}

// =============================
// 📄 Listing & lookup
// =============================

func (ctrl *SwimmingPoolController) GetAll(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, helper.DefaultPerPage)
	query := ctrl.db(c).Model(&model.SwimmingPoolModel{})

	if area := strings.TrimSpace(c.Query("area")); area != "" {
		query = query.Where("pool_area ILIKE ?", "%"+area+"%")
	}
	if center := strings.TrimSpace(c.Query("youth_center")); center != "" {
		query = query.Where("pool_youth_center ILIKE ?", "%"+center+"%")
	}
	if poolType := strings.TrimSpace(c.Query("pool_type")); poolType != "" {
		query = query.Where("pool_type ILIKE ?", "%"+poolType+"%")
	}
	if from := strings.TrimSpace(c.Query("year_from")); from != "" {
		year, err := strconv.Atoi(from)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "year_from must be a number")
		}
		query = query.Where("pool_established_year >= ?", year)
	}
	if to := strings.TrimSpace(c.Query("year_to")); to != "" {
		year, err := strconv.Atoi(to)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "year_to must be a number")
		}
		query = query.Where("pool_established_year <= ?", year)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.JsonServerError(c, "Failed to count swimming pools", err)
	}
	var rows []model.SwimmingPoolModel
	if err := query.
		Order("pool_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonServerError(c, "Failed to fetch swimming pools", err)
	}

	items := dto.ToSwimmingPoolResponses(rows)
	return helper.JsonList(c, "Swimming pools fetched successfully", "pools",
		items, helper.BuildPagination(total, p, len(items)))
}

func (ctrl *SwimmingPoolController) GetByID(c *fiber.Ctx) error {
	pool, ferr := ctrl.findPool(c)
	if pool == nil {
		return ferr
	}
	return helper.JsonOK(c, "Swimming pool fetched successfully", dto.ToSwimmingPoolResponse(*pool))
}

// =============================
// ✏️ Mutations
// =============================

func (ctrl *SwimmingPoolController) Create(c *fiber.Ctx) error {
	var req dto.CreateSwimmingPoolRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	errs := helper.ValidateStruct(req)
	if err := dto.CheckYear(req.EstablishedYear, time.Now()); err != nil {
		errs = append(errs, err.Error())
	}
	if len(errs) > 0 {
		return helper.JsonErrorWithErrors(c, fiber.StatusBadRequest, "Validation failed", errs)
	}

	clash, err := ctrl.pairExists(c, req.Area, req.YouthCenter, uuid.Nil)
	if err != nil {
		return helper.JsonServerError(c, "Failed to check swimming pool", err)
	}
	if clash {
		return helper.JsonErrorFields(c, fiber.StatusConflict,
			"Swimming pool for this area and youth center already exists",
			fiber.Map{"area": req.Area, "youth_center": req.YouthCenter})
	}

	pool := model.SwimmingPoolModel{
		PoolArea:            req.Area,
		PoolYouthCenter:     req.YouthCenter,
		PoolType:            req.PoolType,
		PoolEstablishedYear: req.EstablishedYear,
		PoolLanesCount:      req.LanesCount,
	}
	if err := ctrl.db(c).Create(&pool).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonErrorFields(c, fiber.StatusConflict,
				"Swimming pool for this area and youth center already exists",
				fiber.Map{"area": req.Area, "youth_center": req.YouthCenter})
		}
		return helper.JsonServerError(c, "Failed to create swimming pool", err)
	}
	return helper.JsonCreated(c, "Swimming pool created successfully", dto.ToSwimmingPoolResponse(pool))
}

func (ctrl *SwimmingPoolController) Update(c *fiber.Ctx) error {
	pool, ferr := ctrl.findPool(c)
	if pool == nil {
		return ferr
	}

	var req dto.UpdateSwimmingPoolRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	errs := helper.ValidateStruct(req)
	if err := dto.CheckYear(req.EstablishedYear, time.Now()); err != nil {
		errs = append(errs, err.Error())
	}
	if len(errs) > 0 {
		return helper.JsonErrorWithErrors(c, fiber.StatusBadRequest, "Validation failed", errs)
	}

	area := pool.PoolArea
	center := pool.PoolYouthCenter
	if req.Area != nil {
		area = strings.TrimSpace(*req.Area)
	}
	if req.YouthCenter != nil {
		center = strings.TrimSpace(*req.YouthCenter)
	}
	if req.Area != nil || req.YouthCenter != nil {
		clash, err := ctrl.pairExists(c, area, center, pool.PoolID)
		if err != nil {
			return helper.JsonServerError(c, "Failed to check swimming pool", err)
		}
		if clash {
			return helper.JsonErrorFields(c, fiber.StatusConflict,
				"Swimming pool for this area and youth center already exists",
				fiber.Map{"area": area, "youth_center": center})
		}
	}

	updates := map[string]any{}
	if req.Area != nil {
		updates["pool_area"] = area
	}
	if req.YouthCenter != nil {
		updates["pool_youth_center"] = center
	}
	if req.PoolType != nil {
		updates["pool_type"] = strings.TrimSpace(*req.PoolType)
	}
	if req.EstablishedYear != nil {
		updates["pool_established_year"] = *req.EstablishedYear
	}
	if req.LanesCount != nil {
		lanes := *req.LanesCount
		if lanes < 0 {
			lanes = 0
		}
		updates["pool_lanes_count"] = lanes
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	if err := ctrl.db(c).Model(pool).Updates(updates).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Swimming pool for this area and youth center already exists")
		}
		return helper.JsonServerError(c, "Failed to update swimming pool", err)
	}
	var fresh model.SwimmingPoolModel
	if err := ctrl.db(c).First(&fresh, "pool_id = ?", pool.PoolID).Error; err != nil {
		return helper.JsonServerError(c, "Failed to reload swimming pool", err)
	}
	return helper.JsonUpdated(c, "Swimming pool updated successfully", dto.ToSwimmingPoolResponse(fresh))
}

func (ctrl *SwimmingPoolController) Delete(c *fiber.Ctx) error {
	pool, ferr := ctrl.findPool(c)
	if pool == nil {
		return ferr
	}
	if err := ctrl.db(c).Delete(pool).Error; err != nil {
		return helper.JsonServerError(c, "Failed to delete swimming pool", err)
	}
	return helper.JsonDeleted(c, "Swimming pool deleted successfully", fiber.Map{"id": pool.PoolID})
}

// BulkCreate accepts at most 50 pools per request; the rest of the
// bulk protocol matches the other registries.
func (ctrl *SwimmingPoolController) BulkCreate(c *fiber.Ctx) error {
	var req dto.BulkCreateSwimmingPoolRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if len(req.Pools) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "pools must contain at least one entry")
	}
	if len(req.Pools) > dto.BulkMax {
		return helper.JsonError(c, fiber.StatusBadRequest,
			fmt.Sprintf("pools must contain at most %d entries", dto.BulkMax))
	}

	itemErrors := make([]fiber.Map, 0)
	duplicates := make([]fiber.Map, 0)
	inserted := make([]dto.SwimmingPoolResponse, 0)
	seen := make(map[string]struct{}, len(req.Pools))
	now := time.Now()

	for i, item := range req.Pools {
		item.Normalize()
		errs := helper.ValidateStruct(item)
		if err := dto.CheckYear(item.EstablishedYear, now); err != nil {
			errs = append(errs, err.Error())
		}
		if len(errs) > 0 {
			itemErrors = append(itemErrors, fiber.Map{"index": i, "area": item.Area, "errors": errs})
			continue
		}

		key := dto.PairKey(item.Area, item.YouthCenter)
		if _, dup := seen[key]; dup {
			duplicates = append(duplicates, fiber.Map{"area": item.Area, "youth_center": item.YouthCenter})
			continue
		}
		seen[key] = struct{}{}

		clash, err := ctrl.pairExists(c, item.Area, item.YouthCenter, uuid.Nil)
		if err != nil {
			return helper.JsonServerError(c, "Failed to check swimming pool", err)
		}
		if clash {
			duplicates = append(duplicates, fiber.Map{"area": item.Area, "youth_center": item.YouthCenter})
			continue
		}

		pool := model.SwimmingPoolModel{
			PoolArea:            item.Area,
			PoolYouthCenter:     item.YouthCenter,
			PoolType:            item.PoolType,
			PoolEstablishedYear: item.EstablishedYear,
			PoolLanesCount:      item.LanesCount,
		}
		if err := ctrl.db(c).Create(&pool).Error; err != nil {
			if helper.IsDuplicateKey(err) {
				duplicates = append(duplicates, fiber.Map{"area": item.Area, "youth_center": item.YouthCenter})
				continue
			}
			return helper.JsonServerError(c, "Failed to create swimming pool", err)
		}
		inserted = append(inserted, dto.ToSwimmingPoolResponse(pool))
	}

	status := fiber.StatusCreated
	if len(inserted) == 0 {
		status = fiber.StatusConflict
	}
	return c.Status(status).JSON(fiber.Map{
		"success":        len(inserted) > 0,
		"message":        fmt.Sprintf("%d swimming pools created, %d duplicates, %d invalid", len(inserted), len(duplicates), len(itemErrors)),
		"inserted_count": len(inserted),
		"inserted":       inserted,
		"duplicates":     duplicates,
		"errors":         itemErrors,
	})
}

// =============================
// 📊 Stats
// =============================

func (ctrl *SwimmingPoolController) Stats(c *fiber.Ctx) error {
	type lanesRow struct {
		Total      int64    `json:"total"`
		TotalLanes int64    `json:"total_lanes"`
		AvgLanes   *float64 `json:"avg_lanes"`
	}
	var lanes lanesRow
	if err := ctrl.db(c).Raw(`
		SELECT
			COUNT(*) AS total,
			COALESCE(SUM(pool_lanes_count), 0) AS total_lanes,
			AVG(pool_lanes_count) AS avg_lanes
		FROM swimming_pools`).Scan(&lanes).Error; err != nil {
		return helper.JsonServerError(c, "Failed to compute pool stats", err)
	}

	type groupRow struct {
		Key   string `json:"key"`
		Count int64  `json:"count"`
	}
	var byArea []groupRow
	if err := ctrl.db(c).Raw(`
		SELECT pool_area AS key, COUNT(*) AS count
		FROM swimming_pools GROUP BY pool_area ORDER BY count DESC`).
		Scan(&byArea).Error; err != nil {
		return helper.JsonServerError(c, "Failed to group pools by area", err)
	}
	var byType []groupRow
	if err := ctrl.db(c).Raw(`
		SELECT pool_type AS key, COUNT(*) AS count
		FROM swimming_pools WHERE pool_type <> ''
		GROUP BY pool_type ORDER BY count DESC`).
		Scan(&byType).Error; err != nil {
		return helper.JsonServerError(c, "Failed to group pools by type", err)
	}

	type yearRow struct {
		Year  int   `json:"year"`
		Count int64 `json:"count"`
	}
	var byYear []yearRow
	if err := ctrl.db(c).Raw(`
		SELECT pool_established_year AS year, COUNT(*) AS count
		FROM swimming_pools
		WHERE pool_established_year IS NOT NULL
		GROUP BY pool_established_year
		ORDER BY count DESC, year DESC
		LIMIT 10`).Scan(&byYear).Error; err != nil {
		return helper.JsonServerError(c, "Failed to group pools by year", err)
	}

	var recent []model.SwimmingPoolModel
	if err := ctrl.db(c).Model(&model.SwimmingPoolModel{}).
		Order("pool_created_at DESC").
		Limit(5).
		Find(&recent).Error; err != nil {
		return helper.JsonServerError(c, "Failed to fetch recent pools", err)
	}

	return helper.JsonOK(c, "Swimming pool stats fetched successfully", fiber.Map{
		"total":       lanes.Total,
		"total_lanes": lanes.TotalLanes,
		"avg_lanes":   lanes.AvgLanes,
		"by_area":     byArea,
		"by_type":     byType,
		"by_year":     byYear,
		"most_recent": dto.ToSwimmingPoolResponses(recent),
	})
}

// =============================
// 🧰 Internal helpers
// =============================

func (ctrl *SwimmingPoolController) findPool(c *fiber.Ctx) (*model.SwimmingPoolModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Invalid swimming pool id")
	}
	var pool model.SwimmingPoolModel
	if err := ctrl.db(c).First(&pool, "pool_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Swimming pool not found")
		}
		return nil, helper.JsonServerError(c, "Failed to fetch swimming pool", err)
	}
	return &pool, nil
}

func (ctrl *SwimmingPoolController) pairExists(c *fiber.Ctx, area, youthCenter string, exclude uuid.UUID) (bool, error) {
	query := ctrl.db(c).Model(&model.SwimmingPoolModel{}).
		Where("LOWER(pool_area) = LOWER(?) AND LOWER(pool_youth_center) = LOWER(?)", area, youthCenter)
	if exclude != uuid.Nil {
		query = query.Where("pool_id <> ?", exclude)
	}
	var n int64
	if err := query.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
