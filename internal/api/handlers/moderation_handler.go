package handlers

import (
	"fmt"

	"github.com/justifyman/alansar/internal/moderation/app"
	"github.com/justifyman/alansar/internal/moderation/domain"
	"github.com/justifyman/alansar/pkg/logger"
	"github.com/justifyman/alansar/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ModerationHandler 處理審核後台的 HTTP 請求
type ModerationHandler struct {
	ModerationUseCase app.ModerationUseCase
}

// NewModerationHandler 建立新的 ModerationHandler
func NewModerationHandler(moderationUseCase app.ModerationUseCase) *ModerationHandler {
	return &ModerationHandler{
		ModerationUseCase: moderationUseCase,
	}
}

func adminID(c *fiber.Ctx) (string, error) {
	id, ok := c.Locals(middlewares.TokenMemberID).(string)
	if !ok {
		return "", fmt.Errorf("c.Locals(%s) is nill", middlewares.TokenMemberID)
	}
	return id, nil
}

// ListPending 列出待審核投稿
// @Summary 列出待審核投稿
// @Description 依建立時間舊到新回傳所有 pending 投稿
// @Tags Moderation
// @Produce json
// @Success 200 {object} string "待審清單"
// @Failure 500 {object} string "伺服器錯誤"
// @Router /moderation/pending [get]
func (h *ModerationHandler) ListPending(c *fiber.Ctx) error {
	subs, err := h.ModerationUseCase.ListPending(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"submissions": subs})
}

// Approve 核准投稿
// @Summary 核准投稿
// @Description 指定分類後把投稿發佈到目錄，重複核准不會產生第二支影片
// @Tags Moderation
// @Accept json
// @Produce json
// @Param id path string true "投稿 ID"
// @Param request body string true "分類 ID"
// @Success 200 {object} string "核准成功"
// @Failure 400 {object} string "未指定分類"
// @Failure 404 {object} string "找不到投稿"
// @Failure 409 {object} string "投稿已被處理"
// @Router /moderation/{id}/approve [post]
func (h *ModerationHandler) Approve(c *fiber.Ctx) error {
	type request struct {
		CategoryID string `json:"category_id"`
	}

	id := c.Params("id")
	var req request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
	}

	admin, err := adminID(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	logger.Log.Info("Approve", zap.String("submission_id", id), zap.String("category_id", req.CategoryID), zap.String("admin_id", admin))

	video, err := h.ModerationUseCase.Approve(c.Context(), id, req.CategoryID, admin)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"msg": "approve success", "video": video})
}

// Reject 退回投稿
// @Summary 退回投稿
// @Tags Moderation
// @Produce json
// @Param id path string true "投稿 ID"
// @Success 200 {object} string "退回成功"
// @Failure 404 {object} string "找不到投稿"
// @Failure 409 {object} string "投稿已被處理"
// @Router /moderation/{id}/reject [post]
func (h *ModerationHandler) Reject(c *fiber.Ctx) error {
	id := c.Params("id")

	admin, err := adminID(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	logger.Log.Info("Reject", zap.String("submission_id", id), zap.String("admin_id", admin))

	if err := h.ModerationUseCase.Reject(c.Context(), id, admin); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"msg": "reject success"})
}

// Edit 編輯投稿文字欄位
// @Summary 編輯投稿文字欄位
// @Description 只改標題與描述，不動狀態，也不回寫已發佈的影片
// @Tags Moderation
// @Accept json
// @Produce json
// @Param id path string true "投稿 ID"
// @Param request body string true "標題與描述"
// @Success 200 {object} string "更新成功"
// @Failure 404 {object} string "找不到投稿"
// @Router /moderation/{id} [patch]
func (h *ModerationHandler) Edit(c *fiber.Ctx) error {
	type request struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
	}

	id := c.Params("id")
	var req request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
	}

	admin, err := adminID(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	patch := domain.SubmissionPatch{
		Title:       req.Title,
		Description: req.Description,
	}
	if err := h.ModerationUseCase.Edit(c.Context(), id, patch, admin); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"msg": "edit success"})
}

// AuditTrail 查詢投稿的審核紀錄
// @Summary 查詢投稿的審核紀錄
// @Tags Moderation
// @Produce json
// @Param id path string true "投稿 ID"
// @Success 200 {object} string "審核紀錄"
// @Failure 500 {object} string "伺服器錯誤"
// @Router /moderation/{id}/audit [get]
func (h *ModerationHandler) AuditTrail(c *fiber.Ctx) error {
	id := c.Params("id")
	entries, err := h.ModerationUseCase.AuditTrail(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"audit": entries})
}
