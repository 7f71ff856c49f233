package handlers

import (
	"fmt"

	"github.com/justifyman/alansar/internal/member/app"
	"github.com/justifyman/alansar/pkg/logger"
	"github.com/justifyman/alansar/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// MemberHandler 處理使用者相關的 HTTP 請求
type MemberHandler struct {
	MemberUseCase app.MemberUseCase
}

// NewMemberHandler 建立新的 MemberHandler
func NewMemberHandler(memberUseCase app.MemberUseCase) *MemberHandler {
	return &MemberHandler{
		MemberUseCase: memberUseCase,
	}
}

// Register 註冊新使用者
// @Summary 註冊新使用者
// @Description 處理使用者註冊請求
// @Tags Members
// @Accept json
// @Produce json
// @Success 200 {object} string "註冊成功"
// @Failure 400 {object} string "請求錯誤"
// @Failure 500 {object} string "伺服器錯誤"
// @Router /member/register [post]
func (h *MemberHandler) Register(c *fiber.Ctx) error {
	type request struct {
		Email    string `json:"email"`
		Username string `json:"username"`
		Password string `json:"password"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
	}

	logger.Log.Debug("Register request", zap.String("email", req.Email))

	if err := h.MemberUseCase.Register(c.Context(), req.Email, req.Username, req.Password); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "register success"})
}

// Login 使用者登入
// @Summary 使用者登入
// @Description 使用者透過信箱和密碼登入
// @Tags Members
// @Accept json
// @Produce json
// @Success 200 {object} string "登入成功"
// @Failure 400 {object} string "請求錯誤"
// @Failure 401 {object} string "登入失敗"
// @Router /member/login [post]
func (h *MemberHandler) Login(c *fiber.Ctx) error {
	type request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
	}

	logger.Log.Debug("Login", zap.String("Email", req.Email))

	token, err := h.MemberUseCase.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"token": token, "message": "login success"})
}

// Logout 使用者登出
// @Summary 使用者登出
// @Description 註銷使用者會話
// @Tags Members
// @Accept json
// @Produce json
// @Param auth query string false "使用者 token"
// @Success 200 {object} string "登出成功"
// @Failure 500 {object} string "伺服器錯誤"
// @Router /member/logout [post]
func (h *MemberHandler) Logout(c *fiber.Ctx) error {
	token := c.Query(middlewares.QueryToken)
	if token == "" {
		token = c.Cookies(middlewares.CookieToken)
	}
	if token == "" {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("query(%s) is nill", middlewares.QueryToken)})
	}

	if err := h.MemberUseCase.Logout(c.Context(), token); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "logout success"})
}
