package handlers

import (
	"mime/multipart"

	"github.com/justifyman/alansar/internal/catalog/app"
	"github.com/justifyman/alansar/internal/catalog/domain"
	errprocess "github.com/justifyman/alansar/pkg/err"
	"github.com/justifyman/alansar/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AdminHandler 處理目錄維護後台的 HTTP 請求
type AdminHandler struct {
	CatalogUseCase app.CatalogUseCase
}

// NewAdminHandler 建立新的 AdminHandler
func NewAdminHandler(catalogUseCase app.CatalogUseCase) *AdminHandler {
	return &AdminHandler{
		CatalogUseCase: catalogUseCase,
	}
}

// openCatalogMedia 轉成目錄 usecase 用的媒體串流，caller 負責 Close
func openCatalogMedia(fh *multipart.FileHeader) (*domain.MediaFile, multipart.File, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, nil, err
	}
	return &domain.MediaFile{
		FileName:    fh.Filename,
		Size:        fh.Size,
		ContentType: fh.Header.Get("Content-Type"),
		Content:     f,
	}, f, nil
}

// CreateCategory 新增分類
// @Summary 新增分類
// @Description 建立分類並排在既有分類之後
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body string true "分類名稱"
// @Success 200 {object} string "新增成功"
// @Failure 400 {object} string "請求錯誤"
// @Router /admin/categories [post]
func (h *AdminHandler) CreateCategory(c *fiber.Ctx) error {
	type request struct {
		Name string `json:"name"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
	}

	category, err := h.CatalogUseCase.CreateCategory(c.Context(), req.Name)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"category": category})
}

// DeleteCategory 刪除分類
// @Summary 刪除分類
// @Description 分類底下還有影片時拒絕刪除
// @Tags Admin
// @Produce json
// @Param id path string true "分類 ID"
// @Success 200 {object} string "刪除成功"
// @Failure 404 {object} string "找不到分類"
// @Failure 409 {object} string "分類仍被影片引用"
// @Router /admin/categories/{id} [delete]
func (h *AdminHandler) DeleteCategory(c *fiber.Ctx) error {
	id := c.Params("id")
	logger.Log.Info("DeleteCategory", zap.String("id", id))

	if err := h.CatalogUseCase.DeleteCategory(c.Context(), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"msg": "delete success"})
}

// ListVideos 列出全部目錄影片
// @Summary 列出全部目錄影片
// @Tags Admin
// @Produce json
// @Success 200 {object} string "影片清單"
// @Failure 500 {object} string "伺服器錯誤"
// @Router /admin/videos [get]
func (h *AdminHandler) ListVideos(c *fiber.Ctx) error {
	videos, err := h.CatalogUseCase.ListVideos(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"videos": videos})
}

// CreateVideo 管理端直接新增影片
// @Summary 管理端直接新增影片
// @Description 上傳影片與縮圖後直接進目錄，不走審核流程
// @Tags Admin
// @Accept mpfd
// @Produce json
// @Param title formData string true "影片標題"
// @Param description formData string false "影片描述"
// @Param category_id formData string true "分類 ID"
// @Param video formData file true "影片檔"
// @Param thumbnail formData file true "縮圖檔"
// @Success 200 {object} string "新增成功"
// @Failure 400 {object} string "請求錯誤"
// @Router /admin/videos [post]
func (h *AdminHandler) CreateVideo(c *fiber.Ctx) error {
	req := domain.CreateVideoReq{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		CategoryID:  c.FormValue("category_id"),
	}

	videoFH, err := c.FormFile("video")
	if err != nil {
		return fail(c, errprocess.Setf(errprocess.ErrValidation, "video file is required"))
	}
	thumbFH, err := c.FormFile("thumbnail")
	if err != nil {
		return fail(c, errprocess.Setf(errprocess.ErrValidation, "thumbnail file is required"))
	}

	video, vf, err := openCatalogMedia(videoFH)
	if err != nil {
		return fail(c, err)
	}
	defer vf.Close()
	thumb, tf, err := openCatalogMedia(thumbFH)
	if err != nil {
		return fail(c, err)
	}
	defer tf.Close()

	req.VideoFile = video
	req.ThumbnailFile = thumb

	created, err := h.CatalogUseCase.CreateVideo(c.Context(), req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"video": created})
}

// UpdateVideo 管理端更新影片
// @Summary 管理端更新影片
// @Description 只更新有帶的欄位，未帶新檔案時保留原本媒體
// @Tags Admin
// @Accept mpfd
// @Produce json
// @Param id path string true "影片 ID"
// @Success 200 {object} string "更新成功"
// @Failure 404 {object} string "找不到影片"
// @Router /admin/videos/{id} [patch]
func (h *AdminHandler) UpdateVideo(c *fiber.Ctx) error {
	id := c.Params("id")

	var req domain.UpdateVideoReq
	if v := c.FormValue("title"); v != "" {
		req.Title = &v
	}
	if v := c.FormValue("description"); v != "" {
		req.Description = &v
	}
	if v := c.FormValue("category_id"); v != "" {
		req.CategoryID = &v
	}

	if fh, err := c.FormFile("video"); err == nil {
		m, f, err := openCatalogMedia(fh)
		if err != nil {
			return fail(c, err)
		}
		defer f.Close()
		req.VideoFile = m
	}
	if fh, err := c.FormFile("thumbnail"); err == nil {
		m, f, err := openCatalogMedia(fh)
		if err != nil {
			return fail(c, err)
		}
		defer f.Close()
		req.ThumbnailFile = m
	}

	if err := h.CatalogUseCase.UpdateVideo(c.Context(), id, req); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"msg": "update success"})
}

// DeleteVideo 刪除目錄影片
// @Summary 刪除目錄影片
// @Tags Admin
// @Produce json
// @Param id path string true "影片 ID"
// @Success 200 {object} string "刪除成功"
// @Failure 404 {object} string "找不到影片"
// @Router /admin/videos/{id} [delete]
func (h *AdminHandler) DeleteVideo(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.CatalogUseCase.DeleteVideo(c.Context(), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"msg": "delete success"})
}

// CreateAnnouncement 新增公告
// @Summary 新增公告
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body string true "公告標題與內容"
// @Success 200 {object} string "新增成功"
// @Failure 400 {object} string "請求錯誤"
// @Router /admin/announcements [post]
func (h *AdminHandler) CreateAnnouncement(c *fiber.Ctx) error {
	type request struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
	}

	announcement, err := h.CatalogUseCase.CreateAnnouncement(c.Context(), req.Title, req.Content)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"announcement": announcement})
}

// UpdateAnnouncement 更新公告
// @Summary 更新公告
// @Description 只更新有帶的欄位
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "公告 ID"
// @Success 200 {object} string "更新成功"
// @Failure 404 {object} string "找不到公告"
// @Router /admin/announcements/{id} [patch]
func (h *AdminHandler) UpdateAnnouncement(c *fiber.Ctx) error {
	type request struct {
		Title    *string `json:"title"`
		Content  *string `json:"content"`
		Position *int    `json:"position"`
	}

	id := c.Params("id")
	var req request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
	}

	patch := domain.AnnouncementPatch{
		Title:    req.Title,
		Content:  req.Content,
		Position: req.Position,
	}
	if err := h.CatalogUseCase.UpdateAnnouncement(c.Context(), id, patch); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"msg": "update success"})
}

// DeleteAnnouncement 刪除公告
// @Summary 刪除公告
// @Tags Admin
// @Produce json
// @Param id path string true "公告 ID"
// @Success 200 {object} string "刪除成功"
// @Failure 404 {object} string "找不到公告"
// @Router /admin/announcements/{id} [delete]
func (h *AdminHandler) DeleteAnnouncement(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.CatalogUseCase.DeleteAnnouncement(c.Context(), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"msg": "delete success"})
}

// UpdateHero 更新首頁橫幅
// @Summary 更新首頁橫幅
// @Description 只更新有帶的欄位，背景圖與影片未帶新檔時保留原本的 URL
// @Tags Admin
// @Accept mpfd
// @Produce json
// @Success 200 {object} string "更新成功"
// @Failure 500 {object} string "伺服器錯誤"
// @Router /admin/hero [patch]
func (h *AdminHandler) UpdateHero(c *fiber.Ctx) error {
	var req domain.UpdateHeroReq
	if v := c.FormValue("title"); v != "" {
		req.Title = &v
	}
	if v := c.FormValue("description"); v != "" {
		req.Description = &v
	}

	if fh, err := c.FormFile("background"); err == nil {
		m, f, err := openCatalogMedia(fh)
		if err != nil {
			return fail(c, err)
		}
		defer f.Close()
		req.BackgroundFile = m
	}
	if fh, err := c.FormFile("video"); err == nil {
		m, f, err := openCatalogMedia(fh)
		if err != nil {
			return fail(c, err)
		}
		defer f.Close()
		req.VideoFile = m
	}

	if err := h.CatalogUseCase.UpdateHero(c.Context(), req); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"msg": "update success"})
}
