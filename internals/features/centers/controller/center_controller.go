package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"markazy_backend/internals/constants"
	actModel "markazy_backend/internals/features/activitytypes/model"
	"markazy_backend/internals/features/centers/dto"
	"markazy_backend/internals/features/centers/model"
	helper "markazy_backend/internals/helpers"
	"markazy_backend/internals/helpers/oss"
)

type CenterController struct {
	DB     *gorm.DB
	Images oss.ImageStorage // nil when object storage is not configured
}

func NewCenterController(db *gorm.DB, images oss.ImageStorage) *CenterController {
	return &CenterController{DB: db, Images: images}
}

// db scopes queries to the request context so a client disconnect or
// the server-wide timeout cancels in-flight queries.
func (ctrl *CenterController) db(c *fiber.Ctx) *gorm.DB {
	return ctrl.DB.WithContext(c.UserContext())
}

// =============================
// 📄 Listing & lookup
// =============================

// GetAll lists centers with the full filter set: substring filters,
// the validated macro-region filter, registry reference filters and a
// membership price range.
func (ctrl *CenterController) GetAll(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, helper.DefaultPerPage)
	query := ctrl.db(c).Model(&model.CenterModel{})

	if name := strings.TrimSpace(c.Query("name")); name != "" {
		query = query.Where("center_name ILIKE ?", "%"+name+"%")
	}
	if region := strings.TrimSpace(c.Query("region")); region != "" {
		query = query.Where("center_region ILIKE ?", "%"+region+"%")
	}
	if phone := strings.TrimSpace(c.Query("phone")); phone != "" {
		query = query.Where("center_phone ILIKE ?", "%"+phone+"%")
	}
	if area := strings.TrimSpace(c.Query("location_area")); area != "" {
		if !constants.IsValidLocationArea(area) {
			return helper.JsonError(c, fiber.StatusBadRequest,
				"Invalid location_area. Allowed values: "+strings.Join(constants.LocationAreas, ", "))
		}
		query = query.Where("center_location_area = ?", area)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		query = query.Where(
			"center_name ILIKE ? OR center_address ILIKE ? OR center_region ILIKE ?",
			like, like, like,
		)
	}

	for _, reg := range actModel.AllRegistries() {
		param := strings.TrimSuffix(reg.Tag, "s") + "_activity" // sport_activity etc.
		if reg.Tag == "sports" {
			param = "sports_activity"
		}
		raw := strings.TrimSpace(c.Query(param))
		if raw == "" {
			continue
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid "+param+" id")
		}
		query = query.Where(fmt.Sprintf("? = ANY(%s)", reg.CenterColumn), id)
	}

	if minPrice := strings.TrimSpace(c.Query("min_price")); minPrice != "" {
		v, err := strconv.ParseFloat(minPrice, 64)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "min_price must be a number")
		}
		query = query.Where("(center_membership->>'first_time_price')::numeric >= ?", v)
	}
	if maxPrice := strings.TrimSpace(c.Query("max_price")); maxPrice != "" {
		v, err := strconv.ParseFloat(maxPrice, 64)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "max_price must be a number")
		}
		query = query.Where("(center_membership->>'first_time_price')::numeric <= ?", v)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.JsonServerError(c, "Failed to count centers", err)
	}

	var rows []model.CenterModel
	if err := query.
		Order("center_name ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonServerError(c, "Failed to fetch centers", err)
	}

	items := dto.ToCenterResponses(rows)
	return helper.JsonList(c, "Centers fetched successfully", "centers",
		items, helper.BuildPagination(total, p, len(items)))
}

// GetByID returns one center with its reference ids resolved to
// registry names.
func (ctrl *CenterController) GetByID(c *fiber.Ctx) error {
	center, err := ctrl.findCenter(c)
	if center == nil {
		return err
	}

	detail := dto.CenterDetailResponse{CenterResponse: dto.ToCenterResponse(*center)}
	refLists := map[string][]string{
		"sports": center.CenterSportsActivities,
		"social": center.CenterSocialActivities,
		"art":    center.CenterArtActivities,
	}
	for _, reg := range actModel.AllRegistries() {
		refs, err := ctrl.resolveRefs(c, reg, refLists[reg.Tag])
		if err != nil {
			return helper.JsonServerError(c, "Failed to resolve center activities", err)
		}
		switch reg.Tag {
		case "sports":
			detail.SportsActivityDetails = refs
		case "social":
			detail.SocialActivityDetails = refs
		case "art":
			detail.ArtActivityDetails = refs
		}
	}

	return helper.JsonOK(c, "Center fetched successfully", detail)
}

// =============================
// ✏️ Create / update / delete
// =============================

func (ctrl *CenterController) Create(c *fiber.Ctx) error {
	var req dto.CreateCenterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Name = strings.TrimSpace(req.Name)
	if errs := helper.ValidateStruct(req); len(errs) > 0 {
		return helper.JsonErrorWithErrors(c, fiber.StatusBadRequest, "Validation failed", errs)
	}
	if req.LocationArea != "" && !constants.IsValidLocationArea(req.LocationArea) {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"Invalid location_area. Allowed values: "+strings.Join(constants.LocationAreas, ", "))
	}

	var existing int64
	if err := ctrl.db(c).Model(&model.CenterModel{}).
		Where("LOWER(center_name) = LOWER(?)", req.Name).
		Count(&existing).Error; err != nil {
		return helper.JsonServerError(c, "Failed to check center name", err)
	}
	if existing > 0 {
		return helper.JsonErrorFields(c, fiber.StatusConflict,
			"Center with this name already exists", fiber.Map{"name": req.Name})
	}

	lists := map[string][]string{
		"sports": req.SportsActivities,
		"social": req.SocialActivities,
		"art":    req.ArtActivities,
	}
	if ok := ctrl.verifyAllRefs(c, lists); !ok {
		return nil
	}

	membership := dto.Membership{}
	if req.Membership != nil {
		if errs := helper.ValidateStruct(*req.Membership); len(errs) > 0 {
			return helper.JsonErrorWithErrors(c, fiber.StatusBadRequest, "Validation failed", errs)
		}
		membership = dto.MergeMembership(membership, *req.Membership)
	}
	rawMembership, err := json.Marshal(membership)
	if err != nil {
		return helper.JsonServerError(c, "Failed to encode membership", err)
	}

	center := model.CenterModel{
		CenterName:             req.Name,
		CenterPhone:            strings.TrimSpace(req.Phone),
		CenterAddress:          strings.TrimSpace(req.Address),
		CenterFacebookLink:     strings.TrimSpace(req.FacebookLink),
		CenterLocation:         strings.TrimSpace(req.Location),
		CenterLocationArea:     req.LocationArea,
		CenterRegion:           strings.TrimSpace(req.Region),
		CenterImageURL:         strings.TrimSpace(req.ImageURL),
		CenterSportsActivities: pq.StringArray(dedupeIDs(req.SportsActivities)),
		CenterSocialActivities: pq.StringArray(dedupeIDs(req.SocialActivities)),
		CenterArtActivities:    pq.StringArray(dedupeIDs(req.ArtActivities)),
		CenterMembership:       rawMembership,
	}
	if err := ctrl.db(c).Create(&center).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonErrorFields(c, fiber.StatusConflict,
				"Center with this name already exists", fiber.Map{"name": req.Name})
		}
		return helper.JsonServerError(c, "Failed to create center", err)
	}
	return helper.JsonCreated(c, "Center created successfully", dto.ToCenterResponse(center))
}

func (ctrl *CenterController) Update(c *fiber.Ctx) error {
	center, err := ctrl.findCenter(c)
	if center == nil {
		return err
	}

	var req dto.UpdateCenterRequest
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
		if err := ctrl.db(c).Model(&model.CenterModel{}).
			Where("LOWER(center_name) = LOWER(?) AND center_id <> ?", name, center.CenterID).
			Count(&clash).Error; err != nil {
			return helper.JsonServerError(c, "Failed to check center name", err)
		}
		if clash > 0 {
			return helper.JsonErrorFields(c, fiber.StatusConflict,
				"Center with this name already exists", fiber.Map{"name": name})
		}
		updates["center_name"] = name
	}
	if req.Phone != nil {
		updates["center_phone"] = strings.TrimSpace(*req.Phone)
	}
	if req.Address != nil {
		updates["center_address"] = strings.TrimSpace(*req.Address)
	}
	if req.FacebookLink != nil {
		updates["center_facebook_link"] = strings.TrimSpace(*req.FacebookLink)
	}
	if req.Location != nil {
		updates["center_location"] = strings.TrimSpace(*req.Location)
	}
	if req.LocationArea != nil {
		if *req.LocationArea != "" && !constants.IsValidLocationArea(*req.LocationArea) {
			return helper.JsonError(c, fiber.StatusBadRequest,
				"Invalid location_area. Allowed values: "+strings.Join(constants.LocationAreas, ", "))
		}
		updates["center_location_area"] = *req.LocationArea
	}
	if req.Region != nil {
		updates["center_region"] = strings.TrimSpace(*req.Region)
	}
	if req.ImageURL != nil {
		updates["center_image_url"] = strings.TrimSpace(*req.ImageURL)
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	if err := ctrl.db(c).Model(center).Updates(updates).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Center with this name already exists")
		}
		return helper.JsonServerError(c, "Failed to update center", err)
	}

	var fresh model.CenterModel
	if err := ctrl.db(c).First(&fresh, "center_id = ?", center.CenterID).Error; err != nil {
		return helper.JsonServerError(c, "Failed to reload center", err)
	}
	return helper.JsonUpdated(c, "Center updated successfully", dto.ToCenterResponse(fresh))
}

// Delete removes the center row first, then best-effort removes the
// stored image. Image deletion is idempotent so a retry cannot fail.
func (ctrl *CenterController) Delete(c *fiber.Ctx) error {
	center, err := ctrl.findCenter(c)
	if center == nil {
		return err
	}

	if err := ctrl.db(c).Delete(center).Error; err != nil {
		return helper.JsonServerError(c, "Failed to delete center", err)
	}
	if ctrl.Images != nil && center.CenterImageKey != "" {
		if err := ctrl.Images.Delete(center.CenterImageKey); err != nil {
			// Orphaned object, not a failed request.
			log.Printf("⚠️ center image cleanup failed (%s): %v", center.CenterImageKey, err)
		}
	}
	return helper.JsonDeleted(c, "Center deleted successfully", fiber.Map{"id": center.CenterID})
}

// =============================
// 🔗 Reference-list protocols
// =============================

// ReplaceActivities overwrites whole reference lists. Every incoming id
// must exist in its registry or the whole request is rejected.
func (ctrl *CenterController) ReplaceActivities(c *fiber.Ctx) error {
	center, err := ctrl.findCenter(c)
	if center == nil {
		return err
	}

	var req dto.ReplaceActivitiesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Sports == nil && req.Social == nil && req.Art == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "At least one of sports, social, art must be provided")
	}

	lists := map[string][]string{}
	if req.Sports != nil {
		lists["sports"] = *req.Sports
	}
	if req.Social != nil {
		lists["social"] = *req.Social
	}
	if req.Art != nil {
		lists["art"] = *req.Art
	}
	if ok := ctrl.verifyAllRefs(c, lists); !ok {
		return nil
	}

	updates := map[string]any{}
	if req.Sports != nil {
		updates["center_sports_activities"] = pq.StringArray(dedupeIDs(*req.Sports))
	}
	if req.Social != nil {
		updates["center_social_activities"] = pq.StringArray(dedupeIDs(*req.Social))
	}
	if req.Art != nil {
		updates["center_art_activities"] = pq.StringArray(dedupeIDs(*req.Art))
	}
	if err := ctrl.db(c).Model(center).Updates(updates).Error; err != nil {
		return helper.JsonServerError(c, "Failed to update center activities", err)
	}

	var fresh model.CenterModel
	if err := ctrl.db(c).First(&fresh, "center_id = ?", center.CenterID).Error; err != nil {
		return helper.JsonServerError(c, "Failed to reload center", err)
	}
	return helper.JsonUpdated(c, "Center activities updated successfully", dto.ToCenterResponse(fresh))
}

// AddActivity appends one registry id to the named list. Re-adding an
// id that is already present is a 400, not a silent no-op.
func (ctrl *CenterController) AddActivity(c *fiber.Ctx) error {
	reg, ok := actModel.RegistryFor(c.Params("type"))
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"Invalid activity type. Allowed values: "+strings.Join(actModel.RegistryTags(), ", "))
	}
	center, err := ctrl.findCenter(c)
	if center == nil {
		return err
	}

	var req dto.AddActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := helper.ValidateStruct(req); len(errs) > 0 {
		return helper.JsonErrorWithErrors(c, fiber.StatusBadRequest, "Validation failed", errs)
	}

	var exists int64
	if err := ctrl.db(c).Table(reg.Table).
		Where("activity_type_id = ?", req.ActivityID).
		Count(&exists).Error; err != nil {
		return helper.JsonServerError(c, "Failed to check activity", err)
	}
	if exists == 0 {
		return helper.JsonErrorFields(c, fiber.StatusNotFound,
			"Activity not found in "+reg.TypeLabel+" registry", fiber.Map{"activity_id": req.ActivityID})
	}

	current := ctrl.listFor(center, reg.Tag)
	for _, id := range current {
		if id == req.ActivityID {
			return helper.JsonErrorFields(c, fiber.StatusBadRequest,
				"Activity is already attached to this center", fiber.Map{"activity_id": req.ActivityID})
		}
	}

	next := append(append([]string{}, current...), req.ActivityID)
	if err := ctrl.db(c).Model(center).
		Update(reg.CenterColumn, pq.StringArray(next)).Error; err != nil {
		return helper.JsonServerError(c, "Failed to attach activity", err)
	}
	return helper.JsonUpdated(c, "Activity attached successfully", fiber.Map{
		"center_id":   center.CenterID,
		"type":        reg.Tag,
		"activity_id": req.ActivityID,
		"total":       len(next),
	})
}

// RemoveActivities detaches the given registry ids. Ids that were never
// attached are ignored; only the actually-removed count is reported.
func (ctrl *CenterController) RemoveActivities(c *fiber.Ctx) error {
	reg, ok := actModel.RegistryFor(c.Params("type"))
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"Invalid activity type. Allowed values: "+strings.Join(actModel.RegistryTags(), ", "))
	}
	center, err := ctrl.findCenter(c)
	if center == nil {
		return err
	}

	var req dto.RemoveActivitiesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := helper.ValidateStruct(req); len(errs) > 0 {
		return helper.JsonErrorWithErrors(c, fiber.StatusBadRequest, "Validation failed", errs)
	}

	drop := make(map[string]struct{}, len(req.ActivityIDs))
	for _, id := range req.ActivityIDs {
		drop[id] = struct{}{}
	}

	current := ctrl.listFor(center, reg.Tag)
	next := make([]string, 0, len(current))
	removed := 0
	for _, id := range current {
		if _, hit := drop[id]; hit {
			removed++
			continue
		}
		next = append(next, id)
	}

	if removed > 0 {
		if err := ctrl.db(c).Model(center).
			Update(reg.CenterColumn, pq.StringArray(next)).Error; err != nil {
			return helper.JsonServerError(c, "Failed to detach activities", err)
		}
	}
	return helper.JsonUpdated(c, "Activities detached successfully", fiber.Map{
		"center_id":     center.CenterID,
		"type":          reg.Tag,
		"removed_count": removed,
		"total":         len(next),
	})
}

// =============================
// 🧾 Membership
// =============================

// PatchMembership merges the named fields into the stored membership
// sub-record, preserving every sibling field.
func (ctrl *CenterController) PatchMembership(c *fiber.Ctx) error {
	center, err := ctrl.findCenter(c)
	if center == nil {
		return err
	}

	var patch dto.MembershipPatch
	if err := c.BodyParser(&patch); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := helper.ValidateStruct(patch); len(errs) > 0 {
		return helper.JsonErrorWithErrors(c, fiber.StatusBadRequest, "Validation failed", errs)
	}

	current, err2 := dto.DecodeMembership(center.CenterMembership)
	if err2 != nil {
		return helper.JsonServerError(c, "Failed to read membership", err2)
	}
	merged := dto.MergeMembership(current, patch)
	raw, err2 := json.Marshal(merged)
	if err2 != nil {
		return helper.JsonServerError(c, "Failed to encode membership", err2)
	}

	if err := ctrl.db(c).Model(center).
		Update("center_membership", raw).Error; err != nil {
		return helper.JsonServerError(c, "Failed to update membership", err)
	}
	return helper.JsonUpdated(c, "Membership updated successfully", merged)
}

// =============================
// 📊 Stats
// =============================

type popularSportRow struct {
	Name         string `json:"name"`
	CentersCount int64  `json:"centers_count"`
}

func (ctrl *CenterController) Stats(c *fiber.Ctx) error {
	db := ctrl.db(c).Model(&model.CenterModel{})

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.JsonServerError(c, "Failed to count centers", err)
	}

	type areaRow struct {
		Area  string `json:"area"`
		Count int64  `json:"count"`
	}
	var byArea []areaRow
	if err := ctrl.db(c).Raw(`
		SELECT center_location_area AS area, COUNT(*) AS count
		FROM youth_centers
		WHERE center_location_area <> ''
		GROUP BY center_location_area
		ORDER BY count DESC`).Scan(&byArea).Error; err != nil {
		return helper.JsonServerError(c, "Failed to group centers by area", err)
	}

	type contactRow struct {
		WithPhone    int64 `json:"with_phone"`
		WithFacebook int64 `json:"with_facebook"`
		WithLocation int64 `json:"with_location"`
	}
	var contact contactRow
	if err := ctrl.db(c).Raw(`
		SELECT
			COUNT(*) FILTER (WHERE center_phone <> '') AS with_phone,
			COUNT(*) FILTER (WHERE center_facebook_link <> '') AS with_facebook,
			COUNT(*) FILTER (WHERE center_location <> '') AS with_location
		FROM youth_centers`).Scan(&contact).Error; err != nil {
		return helper.JsonServerError(c, "Failed to compute contact stats", err)
	}

	type refRow struct {
		WithSports int64 `json:"with_sports"`
		WithSocial int64 `json:"with_social"`
		WithArt    int64 `json:"with_art"`
	}
	var refs refRow
	if err := ctrl.db(c).Raw(`
		SELECT
			COUNT(*) FILTER (WHERE cardinality(center_sports_activities) > 0) AS with_sports,
			COUNT(*) FILTER (WHERE cardinality(center_social_activities) > 0) AS with_social,
			COUNT(*) FILTER (WHERE cardinality(center_art_activities) > 0) AS with_art
		FROM youth_centers`).Scan(&refs).Error; err != nil {
		return helper.JsonServerError(c, "Failed to compute activity stats", err)
	}

	type priceRow struct {
		AvgFirstTime *float64 `json:"avg_first_time"`
		MinFirstTime *float64 `json:"min_first_time"`
		MaxFirstTime *float64 `json:"max_first_time"`
		AvgRenewal   *float64 `json:"avg_renewal"`
	}
	var prices priceRow
	if err := ctrl.db(c).Raw(`
		SELECT
			AVG((center_membership->>'first_time_price')::numeric) AS avg_first_time,
			MIN((center_membership->>'first_time_price')::numeric) AS min_first_time,
			MAX((center_membership->>'first_time_price')::numeric) AS max_first_time,
			AVG((center_membership->>'renewal_price')::numeric) AS avg_renewal
		FROM youth_centers
		WHERE center_membership->>'first_time_price' IS NOT NULL`).Scan(&prices).Error; err != nil {
		return helper.JsonServerError(c, "Failed to compute membership prices", err)
	}

	var popularSports []popularSportRow
	if err := ctrl.db(c).Raw(`
		SELECT a.activity_type_name AS name, COUNT(c.center_id) AS centers_count
		FROM sport_activities a
		JOIN youth_centers c ON a.activity_type_id = ANY(c.center_sports_activities)
		GROUP BY a.activity_type_name
		ORDER BY centers_count DESC, name ASC
		LIMIT 5`).Scan(&popularSports).Error; err != nil {
		return helper.JsonServerError(c, "Failed to rank sports activities", err)
	}

	return helper.JsonOK(c, "Center stats fetched successfully", fiber.Map{
		"total":               total,
		"by_location_area":    byArea,
		"contact_info":        contact,
		"with_activities":     refs,
		"membership_prices":   prices,
		"most_popular_sports": popularSports,
	})
}

// =============================
// 🧰 Internal helpers
// =============================

// findCenter loads the center from the :id param. On failure the error
// response is already written; the caller checks for a nil center and
// returns the write result.
func (ctrl *CenterController) findCenter(c *fiber.Ctx) (*model.CenterModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Invalid center id")
	}
	var center model.CenterModel
	if err := ctrl.db(c).First(&center, "center_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Center not found")
		}
		return nil, helper.JsonServerError(c, "Failed to fetch center", err)
	}
	return &center, nil
}

func (ctrl *CenterController) listFor(center *model.CenterModel, tag string) []string {
	switch tag {
	case "sports":
		return center.CenterSportsActivities
	case "social":
		return center.CenterSocialActivities
	default:
		return center.CenterArtActivities
	}
}

// verifyAllRefs checks every id of every provided list against its
// registry. On any malformed or missing id it writes the rejection
// (naming the ids per sub-list) and returns false.
func (ctrl *CenterController) verifyAllRefs(c *fiber.Ctx, lists map[string][]string) bool {
	invalid := fiber.Map{}
	missing := fiber.Map{}

	for _, reg := range actModel.AllRegistries() {
		ids, ok := lists[reg.Tag]
		if !ok || len(ids) == 0 {
			continue
		}

		badShape := make([]string, 0)
		parsed := make([]string, 0, len(ids))
		for _, raw := range ids {
			if _, err := uuid.Parse(raw); err != nil {
				badShape = append(badShape, raw)
				continue
			}
			parsed = append(parsed, raw)
		}
		if len(badShape) > 0 {
			invalid[reg.Tag] = badShape
			continue
		}

		var found []string
		if err := ctrl.db(c).Table(reg.Table).
			Where("activity_type_id = ANY(?::uuid[])", pq.Array(parsed)).
			Pluck("activity_type_id", &found).Error; err != nil {
			_ = helper.JsonServerError(c, "Failed to verify activity references", err)
			return false
		}
		foundSet := make(map[string]struct{}, len(found))
		for _, id := range found {
			foundSet[id] = struct{}{}
		}
		gone := make([]string, 0)
		for _, id := range parsed {
			if _, ok := foundSet[id]; !ok {
				gone = append(gone, id)
			}
		}
		if len(gone) > 0 {
			missing[reg.Tag] = gone
		}
	}

	if len(invalid) > 0 {
		_ = helper.JsonErrorFields(c, fiber.StatusBadRequest,
			"Some activity ids are malformed", fiber.Map{"invalid_ids": invalid})
		return false
	}
	if len(missing) > 0 {
		_ = helper.JsonErrorFields(c, fiber.StatusConflict,
			"Some activity ids do not exist", fiber.Map{"missing_ids": missing})
		return false
	}
	return true
}

func (ctrl *CenterController) resolveRefs(c *fiber.Ctx, reg actModel.Registry, ids []string) ([]dto.ActivityRef, error) {
	refs := make([]dto.ActivityRef, 0, len(ids))
	if len(ids) == 0 {
		return refs, nil
	}
	var rows []actModel.ActivityTypeModel
	if err := ctrl.db(c).Table(reg.Table).
		Where("activity_type_id = ANY(?::uuid[])", pq.Array(ids)).
		Order("activity_type_name ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		refs = append(refs, dto.ActivityRef{ID: row.ActivityTypeID, Name: row.ActivityTypeName})
	}
	return refs, nil
}

// dedupeIDs keeps first occurrence order while dropping repeats.
func dedupeIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
