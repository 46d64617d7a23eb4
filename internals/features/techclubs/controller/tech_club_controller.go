package controller

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"markazy_backend/internals/features/techclubs/dto"
	"markazy_backend/internals/features/techclubs/model"
	helper "markazy_backend/internals/helpers"
)

type TechClubController struct {
	DB *gorm.DB
}

func NewTechClubController(db *gorm.DB) *TechClubController {
	return &TechClubController{DB: db}
}

// db scopes queries to the request context so a client disconnect or
// the server-wide timeout cancels in-flight queries.
func (ctrl *TechClubController) db(c *fiber.Ctx) *gorm.DB {
	return ctrl.DB.WithContext(c.UserContext())
}

// =============================
// 📄 Listing & lookup
// =============================

func (ctrl *TechClubController) GetAll(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, helper.DefaultPerPage)
	query := ctrl.db(c).Model(&model.TechClubModel{})

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		query = query.Where("tech_club_name ILIKE ? OR tech_club_address ILIKE ?", like, like)
	}
	if active := strings.TrimSpace(c.Query("is_active")); active != "" {
		b, err := strconv.ParseBool(active)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "is_active must be true or false")
		}
		query = query.Where("tech_club_is_active = ?", b)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.JsonServerError(c, "Failed to count tech clubs", err)
	}
	var rows []model.TechClubModel
	if err := query.
		Order("tech_club_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonServerError(c, "Failed to fetch tech clubs", err)
	}

	items := dto.ToTechClubResponses(rows)
	return helper.JsonList(c, "Tech clubs fetched successfully", "clubs",
		items, helper.BuildPagination(total, p, len(items)))
}

func (ctrl *TechClubController) GetByID(c *fiber.Ctx) error {
	club, ferr := ctrl.findClub(c)
	if club == nil {
		return ferr
	}
	return helper.JsonOK(c, "Tech club fetched successfully", dto.ToTechClubResponse(*club))
}

// =============================
// ✏️ Mutations
// =============================

func (ctrl *TechClubController) Create(c *fiber.Ctx) error {
	var req dto.CreateTechClubRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if errs := helper.ValidateStruct(req); len(errs) > 0 {
		return helper.JsonErrorWithErrors(c, fiber.StatusBadRequest, "Validation failed", errs)
	}

	var clash int64
	if err := ctrl.db(c).Model(&model.TechClubModel{}).
		Where("LOWER(tech_club_name) = LOWER(?)", req.Name).
		Count(&clash).Error; err != nil {
		return helper.JsonServerError(c, "Failed to check club name", err)
	}
	if clash > 0 {
		return helper.JsonErrorFields(c, fiber.StatusConflict,
			"Tech club with this name already exists", fiber.Map{"name": req.Name})
	}

	club := clubFromRequest(req)
	if err := ctrl.db(c).Create(&club).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonErrorFields(c, fiber.StatusConflict,
				"Tech club with this name already exists", fiber.Map{"name": req.Name})
		}
		return helper.JsonServerError(c, "Failed to create tech club", err)
	}
	return helper.JsonCreated(c, "Tech club created successfully", dto.ToTechClubResponse(club))
}

func (ctrl *TechClubController) Update(c *fiber.Ctx) error {
	club, ferr := ctrl.findClub(c)
	if club == nil {
		return ferr
	}

	var req dto.UpdateTechClubRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := helper.ValidateStruct(req); len(errs) > 0 {
		return helper.JsonErrorWithErrors(c, fiber.StatusBadRequest, "Validation failed", errs)
	}

	updates := map[string]any{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		var clash int64
		if err := ctrl.db(c).Model(&model.TechClubModel{}).
			Where("LOWER(tech_club_name) = LOWER(?) AND tech_club_id <> ?", name, club.TechClubID).
			Count(&clash).Error; err != nil {
			return helper.JsonServerError(c, "Failed to check club name", err)
		}
		if clash > 0 {
			return helper.JsonErrorFields(c, fiber.StatusConflict,
				"Tech club with this name already exists", fiber.Map{"name": name})
		}
		updates["tech_club_name"] = name
	}
	if req.Phone != nil {
		updates["tech_club_phone"] = strings.TrimSpace(*req.Phone)
	}
	if req.Address != nil {
		updates["tech_club_address"] = strings.TrimSpace(*req.Address)
	}
	if req.Location != nil {
		updates["tech_club_location"] = strings.TrimSpace(*req.Location)
	}
	if req.ClubsCount != nil {
		updates["tech_club_clubs_count"] = dto.ClampNonNegative(*req.ClubsCount)
	}
	if req.Computers != nil {
		updates["tech_club_computers"] = dto.ClampNonNegative(*req.Computers)
	}
	if req.IsActive != nil {
		updates["tech_club_is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	if err := ctrl.db(c).Model(club).Updates(updates).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Tech club with this name already exists")
		}
		return helper.JsonServerError(c, "Failed to update tech club", err)
	}
	var fresh model.TechClubModel
	if err := ctrl.db(c).First(&fresh, "tech_club_id = ?", club.TechClubID).Error; err != nil {
		return helper.JsonServerError(c, "Failed to reload tech club", err)
	}
	return helper.JsonUpdated(c, "Tech club updated successfully", dto.ToTechClubResponse(fresh))
}

func (ctrl *TechClubController) Delete(c *fiber.Ctx) error {
	club, ferr := ctrl.findClub(c)
	if club == nil {
		return ferr
	}
	if err := ctrl.db(c).Delete(club).Error; err != nil {
		return helper.JsonServerError(c, "Failed to delete tech club", err)
	}
	return helper.JsonDeleted(c, "Tech club deleted successfully", fiber.Map{"id": club.TechClubID})
}

// BulkCreate inserts many clubs. Per-item validation errors and
// duplicates (in-batch and against stored clubs) are collected, not
// short-circuited; only the surviving subset is inserted.
func (ctrl *TechClubController) BulkCreate(c *fiber.Ctx) error {
	var req dto.BulkCreateTechClubRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if len(req.Clubs) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "clubs must contain at least one entry")
	}

	itemErrors := make([]fiber.Map, 0)
	existingClubs := make([]string, 0)
	inserted := make([]dto.TechClubResponse, 0)
	seen := make(map[string]struct{}, len(req.Clubs))

	for i, item := range req.Clubs {
		item.Normalize()
		if errs := helper.ValidateStruct(item); len(errs) > 0 {
			itemErrors = append(itemErrors, fiber.Map{"index": i, "name": item.Name, "errors": errs})
			continue
		}

		key := strings.ToLower(item.Name)
		if _, dup := seen[key]; dup {
			existingClubs = append(existingClubs, item.Name)
			continue
		}
		seen[key] = struct{}{}

		var clash int64
		if err := ctrl.db(c).Model(&model.TechClubModel{}).
			Where("LOWER(tech_club_name) = LOWER(?)", item.Name).
			Count(&clash).Error; err != nil {
			return helper.JsonServerError(c, "Failed to check club name", err)
		}
		if clash > 0 {
			existingClubs = append(existingClubs, item.Name)
			continue
		}

		club := clubFromRequest(item)
		if err := ctrl.db(c).Create(&club).Error; err != nil {
			if helper.IsDuplicateKey(err) {
				existingClubs = append(existingClubs, item.Name)
				continue
			}
			return helper.JsonServerError(c, "Failed to create tech club", err)
		}
		inserted = append(inserted, dto.ToTechClubResponse(club))
	}

	status := fiber.StatusCreated
	if len(inserted) == 0 {
		status = fiber.StatusConflict
	}
	return c.Status(status).JSON(fiber.Map{
		"success":        len(inserted) > 0,
		"message":        fmt.Sprintf("%d tech clubs created, %d duplicates, %d invalid", len(inserted), len(existingClubs), len(itemErrors)),
		"inserted_count": len(inserted),
		"inserted":       inserted,
		"existing_clubs": existingClubs,
		"errors":         itemErrors,
	})
}

// =============================
// 📊 Stats
// =============================

func (ctrl *TechClubController) Stats(c *fiber.Ctx) error {
	type statsRow struct {
		Total          int64    `json:"total"`
		Active         int64    `json:"active"`
		TotalClubs     int64    `json:"total_clubs"`
		TotalComputers int64    `json:"total_computers"`
		AvgComputers   *float64 `json:"avg_computers"`
	}
	var row statsRow
	if err := ctrl.db(c).Raw(`
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE tech_club_is_active) AS active,
			COALESCE(SUM(tech_club_clubs_count), 0) AS total_clubs,
			COALESCE(SUM(tech_club_computers), 0) AS total_computers,
			AVG(tech_club_computers) AS avg_computers
		FROM tech_clubs`).Scan(&row).Error; err != nil {
		return helper.JsonServerError(c, "Failed to compute tech club stats", err)
	}

	return helper.JsonOK(c, "Tech club stats fetched successfully", fiber.Map{
		"total":              row.Total,
		"active":             row.Active,
		"inactive":           row.Total - row.Active,
		"total_clubs":        row.TotalClubs,
		"total_computers":    row.TotalComputers,
		"avg_computers":      row.AvgComputers,
		"computers_per_club": dto.ComputersPerClub(int(row.TotalComputers), int(row.TotalClubs)),
	})
}

// =============================
// 🧰 Internal helpers
// =============================

func (ctrl *TechClubController) findClub(c *fiber.Ctx) (*model.TechClubModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Invalid tech club id")
	}
	var club model.TechClubModel
	if err := ctrl.db(c).First(&club, "tech_club_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Tech club not found")
		}
		return nil, helper.JsonServerError(c, "Failed to fetch tech club", err)
	}
	return &club, nil
}

func clubFromRequest(req dto.CreateTechClubRequest) model.TechClubModel {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return model.TechClubModel{
		TechClubName:       req.Name,
		TechClubPhone:      req.Phone,
		TechClubAddress:    req.Address,
		TechClubLocation:   req.Location,
		TechClubClubsCount: req.ClubsCount,
		TechClubComputers:  req.Computers,
		TechClubIsActive:   active,
	}
}
