package controller

import (
	"log"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"markazy_backend/internals/features/news/dto"
	"markazy_backend/internals/features/news/model"
	helper "markazy_backend/internals/helpers"
	"markazy_backend/internals/helpers/oss"
)

type NewsController struct {
	DB     *gorm.DB
	Images oss.ImageStorage // nil when object storage is not configured
}

func NewNewsController(db *gorm.DB, images oss.ImageStorage) *NewsController {
	return &NewsController{DB: db, Images: images}
}

// db scopes queries to the request context so a client disconnect or
// the server-wide timeout cancels in-flight queries.
func (ctrl *NewsController) db(c *fiber.Ctx) *gorm.DB {
	return ctrl.DB.WithContext(c.UserContext())
}

// =============================
// 📄 Listing & lookup
// =============================

// GetAll lists active articles, newest first.
func (ctrl *NewsController) GetAll(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, helper.DefaultPerPage)
	query := ctrl.db(c).Model(&model.NewsModel{}).Where("news_is_active = ?", true)

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		query = query.Where("news_title ILIKE ? OR news_content ILIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.JsonServerError(c, "Failed to count news", err)
	}
	var rows []model.NewsModel
	if err := query.
		Order("news_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonServerError(c, "Failed to fetch news", err)
	}

	items := dto.ToNewsResponses(rows)
	return helper.JsonList(c, "News fetched successfully", "articles",
		items, helper.BuildPagination(total, p, len(items)))
}

// Search matches ?q= against active articles.
func (ctrl *NewsController) Search(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query parameter q is required")
	}

	like := "%" + q + "%"
	var rows []model.NewsModel
	if err := ctrl.db(c).Model(&model.NewsModel{}).
		Where("news_is_active = ?", true).
		Where("news_title ILIKE ? OR news_content ILIKE ?", like, like).
		Order("news_created_at DESC").
		Limit(helper.MaxPerPage).
		Find(&rows).Error; err != nil {
		return helper.JsonServerError(c, "Failed to search news", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":  true,
		"message":  "Search completed successfully",
		"count":    len(rows),
		"articles": dto.ToNewsResponses(rows),
	})
}

// GetOne resolves an article by id or slug. Soft-deleted articles are
// not served here.
func (ctrl *NewsController) GetOne(c *fiber.Ctx) error {
	article, ferr := ctrl.findNews(c, true)
	if article == nil {
		return ferr
	}
	return helper.JsonOK(c, "News fetched successfully", dto.ToNewsResponse(*article))
}

// =============================
// ✏️ Mutations
// =============================

// Create accepts JSON or multipart form data. A multipart "image" file
// is pushed to object storage and its URL stored on the article.
func (ctrl *NewsController) Create(c *fiber.Ctx) error {
	var req dto.CreateNewsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Content = strings.TrimSpace(req.Content)
	req.SocialLink = strings.TrimSpace(req.SocialLink)

	errs := helper.ValidateStruct(req)
	if !dto.IsValidSocialLink(req.SocialLink) {
		errs = append(errs, "social_link must start with http:// or https://")
	}
	if len(errs) > 0 {
		return helper.JsonErrorWithErrors(c, fiber.StatusBadRequest, "Validation failed", errs)
	}

	slug := helper.GenerateSlug(req.Title, "news")
	slug, err := helper.EnsureUniqueSlug(ctrl.db(c), "news", "news_slug", slug)
	if err != nil {
		return helper.JsonServerError(c, "Failed to derive slug", err)
	}

	imageURL := strings.TrimSpace(req.ImageURL)
	imageKey := ""
	if file, ferr := c.FormFile("image"); ferr == nil && file != nil {
		if ctrl.Images == nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Image upload is not configured")
		}
		src, oerr := file.Open()
		if oerr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Failed to read uploaded image")
		}
		defer src.Close()
		uploadedURL, uploadedKey, uerr := ctrl.Images.Upload("news", file.Filename, src)
		if uerr != nil {
			return helper.JsonServerError(c, "Failed to store image", uerr)
		}
		imageURL, imageKey = uploadedURL, uploadedKey
	}

	article := model.NewsModel{
		NewsTitle:      req.Title,
		NewsSlug:       slug,
		NewsContent:    req.Content,
		NewsImageURL:   imageURL,
		NewsImageKey:   imageKey,
		NewsSocialLink: req.SocialLink,
		NewsIsActive:   true,
	}
	if err := ctrl.db(c).Create(&article).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonErrorFields(c, fiber.StatusConflict,
				"News with this title already exists", fiber.Map{"title": req.Title})
		}
		return helper.JsonServerError(c, "Failed to create news", err)
	}
	return helper.JsonCreated(c, "News created successfully", dto.ToNewsResponse(article))
}

func (ctrl *NewsController) Update(c *fiber.Ctx) error {
	article, ferr := ctrl.findNews(c, false)
	if article == nil {
		return ferr
	}

	var req dto.UpdateNewsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	errs := helper.ValidateStruct(req)
	if req.SocialLink != nil && !dto.IsValidSocialLink(strings.TrimSpace(*req.SocialLink)) {
		errs = append(errs, "social_link must start with http:// or https://")
	}
	if len(errs) > 0 {
		return helper.JsonErrorWithErrors(c, fiber.StatusBadRequest, "Validation failed", errs)
	}

	updates := map[string]any{}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		updates["news_title"] = title

		slug := helper.GenerateSlug(title, "news")
		slug, err := helper.EnsureUniqueSlugExcept(ctrl.db(c), "news", "news_slug", slug, "news_id", article.NewsID)
		if err != nil {
			return helper.JsonServerError(c, "Failed to derive slug", err)
		}
		updates["news_slug"] = slug
	}
	if req.Content != nil {
		updates["news_content"] = strings.TrimSpace(*req.Content)
	}
	if req.ImageURL != nil {
		updates["news_image_url"] = strings.TrimSpace(*req.ImageURL)
	}
	if req.SocialLink != nil {
		updates["news_social_link"] = strings.TrimSpace(*req.SocialLink)
	}
	if req.IsActive != nil {
		updates["news_is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	if err := ctrl.db(c).Model(article).Updates(updates).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "News with this title already exists")
		}
		return helper.JsonServerError(c, "Failed to update news", err)
	}
	var fresh model.NewsModel
	if err := ctrl.db(c).First(&fresh, "news_id = ?", article.NewsID).Error; err != nil {
		return helper.JsonServerError(c, "Failed to reload news", err)
	}
	return helper.JsonUpdated(c, "News updated successfully", dto.ToNewsResponse(fresh))
}

// Delete is soft by default. ?permanent=true removes the row and then
// best-effort deletes the stored image.
func (ctrl *NewsController) Delete(c *fiber.Ctx) error {
	article, ferr := ctrl.findNews(c, false)
	if article == nil {
		return ferr
	}

	if c.Query("permanent") != "true" {
		if err := ctrl.db(c).Model(article).
			Update("news_is_active", false).Error; err != nil {
			return helper.JsonServerError(c, "Failed to delete news", err)
		}
		return helper.JsonDeleted(c, "News deactivated successfully", fiber.Map{
			"id":        article.NewsID,
			"permanent": false,
		})
	}

	if err := ctrl.db(c).Delete(article).Error; err != nil {
		return helper.JsonServerError(c, "Failed to delete news", err)
	}
	if ctrl.Images != nil && article.NewsImageKey != "" {
		if err := ctrl.Images.Delete(article.NewsImageKey); err != nil {
			log.Printf("⚠️ news image cleanup failed (%s): %v", article.NewsImageKey, err)
		}
	}
	return helper.JsonDeleted(c, "News deleted permanently", fiber.Map{
		"id":        article.NewsID,
		"permanent": true,
	})
}

// =============================
// 🧰 Internal helpers
// =============================

// findNews resolves by id or slug. activeOnly hides soft-deleted rows
// from the public read path.
func (ctrl *NewsController) findNews(c *fiber.Ctx, activeOnly bool) (*model.NewsModel, error) {
	raw := c.Params("id")
	query := ctrl.db(c).Model(&model.NewsModel{})
	if activeOnly {
		query = query.Where("news_is_active = ?", true)
	}

	var article model.NewsModel
	var err error
	if id, perr := uuid.Parse(raw); perr == nil {
		err = query.First(&article, "news_id = ?", id).Error
	} else {
		slug := raw
		if decoded, derr := url.PathUnescape(raw); derr == nil {
			slug = decoded
		}
		err = query.First(&article, "news_slug = ?", slug).Error
	}
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "News not found")
		}
		return nil, helper.JsonServerError(c, "Failed to fetch news", err)
	}
	return &article, nil
}
