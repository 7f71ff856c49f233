package handlers

import (
	"github.com/justifyman/alansar/internal/catalog/app"
	"github.com/justifyman/alansar/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CatalogHandler 處理訪客目錄瀏覽的 HTTP 請求
type CatalogHandler struct {
	CatalogUseCase app.CatalogUseCase
}

// NewCatalogHandler 建立新的 CatalogHandler
func NewCatalogHandler(catalogUseCase app.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{
		CatalogUseCase: catalogUseCase,
	}
}

// ListCatalog 取得目錄列
// @Summary 取得目錄列
// @Description 依分類排序回傳目錄列，可用 q 做標題搜尋
// @Tags Catalog
// @Produce json
// @Param q query string false "標題關鍵字"
// @Success 200 {object} string "目錄列"
// @Failure 500 {object} string "伺服器錯誤"
// @Router /catalog [get]
func (h *CatalogHandler) ListCatalog(c *fiber.Ctx) error {
	query := c.Query("q")
	logger.Log.Debug("ListCatalog", zap.String("q", query))

	rows, err := h.CatalogUseCase.ListCatalog(c.Context(), query)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"rows": rows})
}

// ListCategories 取得分類清單
// @Summary 取得分類清單
// @Tags Catalog
// @Produce json
// @Success 200 {object} string "分類清單"
// @Failure 500 {object} string "伺服器錯誤"
// @Router /categories [get]
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.CatalogUseCase.ListCategories(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"categories": categories})
}

// ListAnnouncements 取得公告
// @Summary 取得公告
// @Description 依排序位置回傳所有公告
// @Tags Catalog
// @Produce json
// @Success 200 {object} string "公告清單"
// @Failure 500 {object} string "伺服器錯誤"
// @Router /announcements [get]
func (h *CatalogHandler) ListAnnouncements(c *fiber.Ctx) error {
	announcements, err := h.CatalogUseCase.ListAnnouncements(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"announcements": announcements})
}

// GetHero 取得首頁橫幅
// @Summary 取得首頁橫幅
// @Tags Catalog
// @Produce json
// @Success 200 {object} string "橫幅內容"
// @Failure 404 {object} string "尚未設定橫幅"
// @Router /hero [get]
func (h *CatalogHandler) GetHero(c *fiber.Ctx) error {
	hero, err := h.CatalogUseCase.GetHero(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"hero": hero})
}
