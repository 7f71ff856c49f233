package handlers

import (
	"fmt"
	"mime/multipart"

	"github.com/justifyman/alansar/internal/moderation/app"
	"github.com/justifyman/alansar/internal/moderation/domain"
	errprocess "github.com/justifyman/alansar/pkg/err"
	"github.com/justifyman/alansar/pkg/logger"
	"github.com/justifyman/alansar/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// UploadHandler 處理使用者投稿的 HTTP 請求
type UploadHandler struct {
	UploadUseCase app.UploadUseCase
}

// NewUploadHandler 建立新的 UploadHandler
func NewUploadHandler(uploadUseCase app.UploadUseCase) *UploadHandler {
	return &UploadHandler{
		UploadUseCase: uploadUseCase,
	}
}

// openMediaFile 轉成 usecase 用的媒體串流，caller 負責 Close
func openMediaFile(fh *multipart.FileHeader) (*domain.MediaFile, multipart.File, error) {
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

// Submit 使用者投稿影片
// @Summary 使用者投稿影片
// @Description 接收影片與縮圖，建立待審核的投稿
// @Tags Uploads
// @Accept mpfd
// @Produce json
// @Param title formData string true "影片標題"
// @Param description formData string false "影片描述"
// @Param video formData file true "影片檔"
// @Param thumbnail formData file true "縮圖檔"
// @Success 200 {object} string "投稿成功，等待審核"
// @Failure 400 {object} string "請求錯誤"
// @Failure 500 {object} string "伺服器錯誤"
// @Router /uploads [post]
func (h *UploadHandler) Submit(c *fiber.Ctx) error {
	userID, ok := c.Locals(middlewares.TokenMemberID).(string)
	if !ok {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("c.Locals(%s) is nill", middlewares.TokenMemberID)})
	}

	req := domain.SubmitReq{
		UserID:      userID,
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
	}

	videoFH, err := c.FormFile("video")
	if err != nil {
		return fail(c, errprocess.Setf(errprocess.ErrValidation, "video file is required"))
	}
	thumbFH, err := c.FormFile("thumbnail")
	if err != nil {
		return fail(c, errprocess.Setf(errprocess.ErrValidation, "thumbnail file is required"))
	}

	video, vf, err := openMediaFile(videoFH)
	if err != nil {
		return fail(c, err)
	}
	defer vf.Close()
	thumb, tf, err := openMediaFile(thumbFH)
	if err != nil {
		return fail(c, err)
	}
	defer tf.Close()

	req.VideoFile = video
	req.ThumbnailFile = thumb

	logger.Log.Debug("Submit", zap.String("user_id", userID), zap.String("title", req.Title))

	sub, err := h.UploadUseCase.Submit(c.Context(), req)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"msg":        "投稿成功，等待審核",
		"submission": sub,
	})
}

// ListMine 列出自己的投稿
// @Summary 列出自己的投稿
// @Description 依建立時間新到舊回傳目前使用者的投稿與狀態
// @Tags Uploads
// @Produce json
// @Success 200 {object} string "投稿清單"
// @Failure 500 {object} string "伺服器錯誤"
// @Router /uploads [get]
func (h *UploadHandler) ListMine(c *fiber.Ctx) error {
	userID, ok := c.Locals(middlewares.TokenMemberID).(string)
	if !ok {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("c.Locals(%s) is nill", middlewares.TokenMemberID)})
	}

	subs, err := h.UploadUseCase.ListByUser(c.Context(), userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"submissions": subs})
}
