package controller

import (
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"markazy_backend/internals/features/activities/dto"
	"markazy_backend/internals/features/activities/model"
	helper "markazy_backend/internals/helpers"
)

type ActivityController struct {
	DB *gorm.DB
}

func NewActivityController(db *gorm.DB) *ActivityController {
	return &ActivityController{DB: db}
}

// db scopes queries to the request context so a client disconnect or
// the server-wide timeout cancels in-flight queries.
func (ctrl *ActivityController) db(c *fiber.Ctx) *gorm.DB {
	return ctrl.DB.WithContext(c.UserContext())
}

// =============================
// 📄 Listing & lookup
// =============================

// GetAll lists events with substring, enum, and date-range filters.
// Enum filters outside the permitted values answer 400 listing them.
func (ctrl *ActivityController) GetAll(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, helper.DefaultPerPage)
	query := ctrl.db(c).Model(&model.ActivityModel{})

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		query = query.Where(
			"activity_project_name ILIKE ? OR activity_coordinator_name ILIKE ? OR activity_location ILIKE ?",
			like, like, like,
		)
	}
	if location := strings.TrimSpace(c.Query("location")); location != "" {
		query = query.Where("activity_location ILIKE ?", "%"+location+"%")
	}
	if gender := strings.TrimSpace(c.Query("gender")); gender != "" {
		if !model.IsValidGender(gender) {
			return helper.JsonError(c, fiber.StatusBadRequest,
				"Invalid gender. Allowed values: "+strings.Join(model.Genders, ", "))
		}
		query = query.Where("activity_gender = ?", gender)
	}
	if accessType := strings.TrimSpace(c.Query("access_type")); accessType != "" {
		if !model.IsValidAccessType(accessType) {
			return helper.JsonError(c, fiber.StatusBadRequest,
				"Invalid access_type. Allowed values: "+strings.Join(model.AccessTypes, ", "))
		}
		query = query.Where("activity_access_type = ?", accessType)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		if !model.IsValidStatus(status) {
			return helper.JsonError(c, fiber.StatusBadRequest,
				"Invalid status. Allowed values: "+strings.Join(model.Statuses, ", "))
		}
		query = query.Where("activity_status = ?", status)
	}
	if from := strings.TrimSpace(c.Query("date_from")); from != "" {
		d, err := dto.ParseDate(from)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "date_from must be in YYYY-MM-DD format")
		}
		query = query.Where("activity_date >= ?", d)
	}
	if to := strings.TrimSpace(c.Query("date_to")); to != "" {
		d, err := dto.ParseDate(to)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "date_to must be in YYYY-MM-DD format")
		}
		query = query.Where("activity_date <= ?", d)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.JsonServerError(c, "Failed to count activities", err)
	}

	var rows []model.ActivityModel
	if err := query.
		Order("activity_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonServerError(c, "Failed to fetch activities", err)
	}

	items := dto.ToActivityResponses(rows)
	return helper.JsonList(c, "Activities fetched successfully", "activities",
		items, helper.BuildPagination(total, p, len(items)))
}

// GetUpcoming returns the next events: today or later and not
// cancelled, soonest first.
func (ctrl *ActivityController) GetUpcoming(c *fiber.Ctx) error {
	p := helper.NormalizePaging("", strings.TrimSpace(c.Query("limit")), helper.DefaultPerPage)

	var rows []model.ActivityModel
	if err := ctrl.db(c).Model(&model.ActivityModel{}).
		Where("activity_date >= ? AND activity_status <> ?",
			dto.TruncateToDay(time.Now().UTC()), model.StatusCancelled).
		Order("activity_date ASC, activity_time ASC").
		Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonServerError(c, "Failed to fetch upcoming activities", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":    true,
		"message":    "Upcoming activities fetched successfully",
		"count":      len(rows),
		"activities": dto.ToActivityResponses(rows),
	})
}

// GetByStatus lists events in one lifecycle state.
func (ctrl *ActivityController) GetByStatus(c *fiber.Ctx) error {
	status := c.Params("status")
	if decoded, err := decodeParam(status); err == nil {
		status = decoded
	}
	if !model.IsValidStatus(status) {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"Invalid status. Allowed values: "+strings.Join(model.Statuses, ", "))
	}

	p := helper.ResolvePaging(c, helper.DefaultPerPage)
	query := ctrl.db(c).Model(&model.ActivityModel{}).Where("activity_status = ?", status)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.JsonServerError(c, "Failed to count activities", err)
	}
	var rows []model.ActivityModel
	if err := query.
		Order("activity_date ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonServerError(c, "Failed to fetch activities", err)
	}

	items := dto.ToActivityResponses(rows)
	return helper.JsonList(c, "Activities fetched successfully", "activities",
		items, helper.BuildPagination(total, p, len(items)))
}

// GetOne resolves by id when the param parses as a uuid, by slug
// otherwise.
func (ctrl *ActivityController) GetOne(c *fiber.Ctx) error {
	activity, err := ctrl.findByIDOrSlug(c)
	if activity == nil {
		return err
	}
	return helper.JsonOK(c, "Activity fetched successfully", dto.ToActivityResponse(*activity))
}

// =============================
// ✏️ Mutations
// =============================

func (ctrl *ActivityController) Create(c *fiber.Ctx) error {
	var req dto.CreateActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.ProjectName = strings.TrimSpace(req.ProjectName)
	req.CoordinatorName = strings.TrimSpace(req.CoordinatorName)
	req.PhoneNumber = strings.TrimSpace(req.PhoneNumber)

	errs := helper.ValidateStruct(req)
	errs = append(errs, req.CheckCreate(time.Now())...)
	if len(errs) > 0 {
		return helper.JsonErrorWithErrors(c, fiber.StatusBadRequest, "Validation failed", errs)
	}

	var clash int64
	if err := ctrl.db(c).Model(&model.ActivityModel{}).
		Where("LOWER(activity_project_name) = LOWER(?)", req.ProjectName).
		Count(&clash).Error; err != nil {
		return helper.JsonServerError(c, "Failed to check project name", err)
	}
	if clash > 0 {
		return helper.JsonErrorFields(c, fiber.StatusConflict,
			"Activity with this project name already exists", fiber.Map{"project_name": req.ProjectName})
	}

	slug := helper.GenerateSlug(req.ProjectName, "activity")
	slug, err := helper.EnsureUniqueSlug(ctrl.db(c), "activities", "activity_slug", slug)
	if err != nil {
		return helper.JsonServerError(c, "Failed to derive slug", err)
	}

	date, _ := dto.ParseDate(req.Date)
	status := req.Status
	if status == "" {
		status = model.StatusScheduled
	}

	activity := model.ActivityModel{
		ActivityProjectName:       req.ProjectName,
		ActivitySlug:              slug,
		ActivityCoordinatorName:   req.CoordinatorName,
		ActivityPhoneNumber:       req.PhoneNumber,
		ActivityLocation:          strings.TrimSpace(req.Location),
		ActivityDate:              date,
		ActivityTime:              req.Time,
		ActivityDaysCount:         req.DaysCount,
		ActivityParticipantsCount: req.ParticipantsCount,
		ActivityTargetAgeMin:      *req.TargetAgeMin,
		ActivityTargetAgeMax:      *req.TargetAgeMax,
		ActivityGender:            req.Gender,
		ActivityAccessType:        req.AccessType,
		ActivityNotes:             strings.TrimSpace(req.Notes),
		ActivityStatus:            status,
	}
	if err := ctrl.db(c).Create(&activity).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonErrorFields(c, fiber.StatusConflict,
				"Activity with this project name already exists", fiber.Map{"project_name": req.ProjectName})
		}
		return helper.JsonServerError(c, "Failed to create activity", err)
	}
	return helper.JsonCreated(c, "Activity created successfully", dto.ToActivityResponse(activity))
}

func (ctrl *ActivityController) Update(c *fiber.Ctx) error {
	activity, ferr := ctrl.findByIDOrSlug(c)
	if activity == nil {
		return ferr
	}

	var req dto.UpdateActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	errs := helper.ValidateStruct(req)
	errs = append(errs, req.CheckUpdate(*activity)...)
	if len(errs) > 0 {
		return helper.JsonErrorWithErrors(c, fiber.StatusBadRequest, "Validation failed", errs)
	}

	updates := map[string]any{}
	if req.ProjectName != nil {
		name := strings.TrimSpace(*req.ProjectName)
		var clash int64
		if err := ctrl.db(c).Model(&model.ActivityModel{}).
			Where("LOWER(activity_project_name) = LOWER(?) AND activity_id <> ?", name, activity.ActivityID).
			Count(&clash).Error; err != nil {
			return helper.JsonServerError(c, "Failed to check project name", err)
		}
		if clash > 0 {
			return helper.JsonErrorFields(c, fiber.StatusConflict,
				"Activity with this project name already exists", fiber.Map{"project_name": name})
		}
		updates["activity_project_name"] = name

		// Renames re-derive the slug; the row's own slug is not a collision.
		slug := helper.GenerateSlug(name, "activity")
		slug, err := helper.EnsureUniqueSlugExcept(ctrl.db(c), "activities", "activity_slug", slug, "activity_id", activity.ActivityID)
		if err != nil {
			return helper.JsonServerError(c, "Failed to derive slug", err)
		}
		updates["activity_slug"] = slug
	}
	if req.CoordinatorName != nil {
		updates["activity_coordinator_name"] = strings.TrimSpace(*req.CoordinatorName)
	}
	if req.PhoneNumber != nil {
		updates["activity_phone_number"] = strings.TrimSpace(*req.PhoneNumber)
	}
	if req.Location != nil {
		updates["activity_location"] = strings.TrimSpace(*req.Location)
	}
	if req.Date != nil {
		d, _ := dto.ParseDate(*req.Date)
		updates["activity_date"] = d
	}
	if req.Time != nil {
		updates["activity_time"] = *req.Time
	}
	if req.DaysCount != nil {
		updates["activity_days_count"] = *req.DaysCount
	}
	if req.ParticipantsCount != nil {
		updates["activity_participants_count"] = *req.ParticipantsCount
	}
	if req.TargetAgeMin != nil {
		updates["activity_target_age_min"] = *req.TargetAgeMin
	}
	if req.TargetAgeMax != nil {
		updates["activity_target_age_max"] = *req.TargetAgeMax
	}
	if req.Gender != nil {
		updates["activity_gender"] = *req.Gender
	}
	if req.AccessType != nil {
		updates["activity_access_type"] = *req.AccessType
	}
	if req.Notes != nil {
		updates["activity_notes"] = strings.TrimSpace(*req.Notes)
	}
	if req.Status != nil {
		updates["activity_status"] = *req.Status
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	if err := ctrl.db(c).Model(activity).Updates(updates).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Activity with this project name already exists")
		}
		return helper.JsonServerError(c, "Failed to update activity", err)
	}
	var fresh model.ActivityModel
	if err := ctrl.db(c).First(&fresh, "activity_id = ?", activity.ActivityID).Error; err != nil {
		return helper.JsonServerError(c, "Failed to reload activity", err)
	}
	return helper.JsonUpdated(c, "Activity updated successfully", dto.ToActivityResponse(fresh))
}

// UpdateStatus moves the event between scheduled, ongoing and cancelled.
func (ctrl *ActivityController) UpdateStatus(c *fiber.Ctx) error {
	activity, ferr := ctrl.findByIDOrSlug(c)
	if activity == nil {
		return ferr
	}

	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if !model.IsValidStatus(req.Status) {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"Invalid status. Allowed values: "+strings.Join(model.Statuses, ", "))
	}

	if err := ctrl.db(c).Model(activity).
		Update("activity_status", req.Status).Error; err != nil {
		return helper.JsonServerError(c, "Failed to update status", err)
	}
	activity.ActivityStatus = req.Status
	return helper.JsonUpdated(c, "Activity status updated successfully", dto.ToActivityResponse(*activity))
}

func (ctrl *ActivityController) Delete(c *fiber.Ctx) error {
	activity, ferr := ctrl.findByIDOrSlug(c)
	if activity == nil {
		return ferr
	}
	if err := ctrl.db(c).Delete(activity).Error; err != nil {
		return helper.JsonServerError(c, "Failed to delete activity", err)
	}
	return helper.JsonDeleted(c, "Activity deleted successfully", fiber.Map{"id": activity.ActivityID})
}

// =============================
// 📊 Stats
// =============================

func (ctrl *ActivityController) Stats(c *fiber.Ctx) error {
	var total int64
	if err := ctrl.db(c).Model(&model.ActivityModel{}).Count(&total).Error; err != nil {
		return helper.JsonServerError(c, "Failed to count activities", err)
	}

	byStatus := fiber.Map{}
	for _, status := range model.Statuses {
		var n int64
		if err := ctrl.db(c).Model(&model.ActivityModel{}).
			Where("activity_status = ?", status).
			Count(&n).Error; err != nil {
			return helper.JsonServerError(c, "Failed to count activities by status", err)
		}
		byStatus[status] = n
	}

	type groupRow struct {
		Key   string `json:"key"`
		Count int64  `json:"count"`
	}
	var byGender []groupRow
	if err := ctrl.db(c).Raw(`
		SELECT activity_gender AS key, COUNT(*) AS count
		FROM activities GROUP BY activity_gender ORDER BY count DESC`).
		Scan(&byGender).Error; err != nil {
		return helper.JsonServerError(c, "Failed to group activities by gender", err)
	}
	var byAccess []groupRow
	if err := ctrl.db(c).Raw(`
		SELECT activity_access_type AS key, COUNT(*) AS count
		FROM activities GROUP BY activity_access_type ORDER BY count DESC`).
		Scan(&byAccess).Error; err != nil {
		return helper.JsonServerError(c, "Failed to group activities by access type", err)
	}

	var upcoming int64
	if err := ctrl.db(c).Model(&model.ActivityModel{}).
		Where("activity_date >= ? AND activity_status <> ?",
			dto.TruncateToDay(time.Now().UTC()), model.StatusCancelled).
		Count(&upcoming).Error; err != nil {
		return helper.JsonServerError(c, "Failed to count upcoming activities", err)
	}

	return helper.JsonOK(c, "Activity stats fetched successfully", fiber.Map{
		"total":          total,
		"upcoming":       upcoming,
		"by_status":      byStatus,
		"by_gender":      byGender,
		"by_access_type": byAccess,
	})
}

// =============================
// 🧰 Internal helpers
// =============================

func (ctrl *ActivityController) findByIDOrSlug(c *fiber.Ctx) (*model.ActivityModel, error) {
	raw := c.Params("id")
	var activity model.ActivityModel
	var err error
	if id, perr := uuid.Parse(raw); perr == nil {
		err = ctrl.db(c).First(&activity, "activity_id = ?", id).Error
	} else {
		slug := raw
		if decoded, derr := decodeParam(raw); derr == nil {
			slug = decoded
		}
		err = ctrl.db(c).First(&activity, "activity_slug = ?", slug).Error
	}
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Activity not found")
		}
		return nil, helper.JsonServerError(c, "Failed to fetch activity", err)
	}
	return &activity, nil
}

// decodeParam percent-decodes a path segment. Arabic slugs and statuses
// arrive percent-encoded.
func decodeParam(raw string) (string, error) {
	return url.PathUnescape(raw)
}
