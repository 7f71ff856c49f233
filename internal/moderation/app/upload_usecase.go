package app

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/justifyman/alansar/internal/moderation/domain"
	"github.com/justifyman/alansar/internal/moderation/repository"
	"github.com/justifyman/alansar/pkg/database"
	errprocess "github.com/justifyman/alansar/pkg/err"
)

// UploadUseCase 這裡封裝了使用者投稿的應用服務
type UploadUseCase interface {
	Submit(ctx context.Context, req domain.SubmitReq) (*domain.Submission, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Submission, error)
}

// UploadBuckets 使用者投稿媒體的 bucket 名稱
type UploadBuckets struct {
	Video     string
	Thumbnail string
}

type uploadUseCase struct {
	submissionRepo repository.SubmissionRepo
	blobStore      database.BlobStoreRepo
	buckets        UploadBuckets
}

// NewUploadUseCase 建立一個新的 UploadUseCase
func NewUploadUseCase(submissionRepo repository.SubmissionRepo,
	blobStore database.BlobStoreRepo,
	buckets UploadBuckets,
) UploadUseCase {
	return &uploadUseCase{
		submissionRepo: submissionRepo,
		blobStore:      blobStore,
		buckets:        buckets,
	}
}

// Submit 接收投稿：兩個檔案都齊才動手，先傳影片再傳縮圖，最後寫入
// pending 記錄。中途失敗直接把錯誤包成 ErrUpload 丟回去，已上傳的
// blob 不做補償刪除（孤兒檔案由離線清理處理）
func (u *uploadUseCase) Submit(ctx context.Context, req domain.SubmitReq) (*domain.Submission, error) {
	if req.UserID == "" || req.Title == "" {
		return nil, errprocess.Setf(errprocess.ErrValidation, "userID[%s] title[%s] 必填欄位缺失", req.UserID, req.Title)
	}
	if req.VideoFile == nil || req.ThumbnailFile == nil {
		return nil, errprocess.Setf(errprocess.ErrValidation, "userID[%s] 影片與縮圖檔案都必須提供", req.UserID)
	}

	videoURL, err := u.storeMedia(ctx, u.buckets.Video, req.UserID, req.VideoFile)
	if err != nil {
		return nil, errprocess.Wrap(errprocess.ErrUpload, err, fmt.Sprintf("userID[%s] 上傳投稿影片失敗", req.UserID))
	}

	thumbnailURL, err := u.storeMedia(ctx, u.buckets.Thumbnail, req.UserID, req.ThumbnailFile)
	if err != nil {
		return nil, errprocess.Wrap(errprocess.ErrUpload, err, fmt.Sprintf("userID[%s] 上傳投稿縮圖失敗", req.UserID))
	}

	submission := domain.Submission{
		UserID:       req.UserID,
		Title:        req.Title,
		Description:  req.Description,
		VideoURL:     videoURL,
		ThumbnailURL: thumbnailURL,
		Status:       domain.SubmissionPending,
	}
	if err := u.submissionRepo.Create(&submission); err != nil {
		return nil, errprocess.Wrap(errprocess.ErrUpload, err, fmt.Sprintf("userID[%s] 建立投稿記錄失敗", req.UserID))
	}

	return &submission, nil
}

// ListByUser 投稿者自己的投稿歷史與目前狀態
func (u *uploadUseCase) ListByUser(ctx context.Context, userID string) ([]domain.Submission, error) {
	return u.submissionRepo.ListByUser(userID)
}

// storeMedia 按 userID 分目錄存放，檔名帶時間戳與亂數避免衝突
func (u *uploadUseCase) storeMedia(ctx context.Context, bucket, userID string, file *domain.MediaFile) (string, error) {
	ext := filepath.Ext(file.FileName)
	objectName := fmt.Sprintf("%s/%d-%s%s", userID, time.Now().UnixNano(), uuid.New().String(), ext)

	if err := u.blobStore.Upload(ctx, bucket, objectName, file.Content, file.Size, file.ContentType); err != nil {
		return "", err
	}

	return u.blobStore.PublicURL(bucket, objectName), nil
}
