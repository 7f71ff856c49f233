package app

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/justifyman/alansar/internal/catalog/domain"
	"github.com/justifyman/alansar/internal/catalog/repository"
	"github.com/justifyman/alansar/pkg/database"
	errprocess "github.com/justifyman/alansar/pkg/err"
)

// CatalogUseCase 這裡封裝了目錄瀏覽與管理端策展的應用服務
type CatalogUseCase interface {
	ListCatalog(ctx context.Context, query string) ([]domain.CategoryRow, error)

	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, name string) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	ListVideos(ctx context.Context) ([]domain.Video, error)
	CreateVideo(ctx context.Context, req domain.CreateVideoReq) (*domain.Video, error)
	UpdateVideo(ctx context.Context, id string, req domain.UpdateVideoReq) error
	DeleteVideo(ctx context.Context, id string) error

	ListAnnouncements(ctx context.Context) ([]domain.Announcement, error)
	CreateAnnouncement(ctx context.Context, title, content string) (*domain.Announcement, error)
	UpdateAnnouncement(ctx context.Context, id string, patch domain.AnnouncementPatch) error
	DeleteAnnouncement(ctx context.Context, id string) error

	GetHero(ctx context.Context) (*domain.Hero, error)
	UpdateHero(ctx context.Context, req domain.UpdateHeroReq) error
}

// CatalogBuckets 管理端媒體的 bucket 名稱
type CatalogBuckets struct {
	Video     string
	Thumbnail string
}

type catalogUseCase struct {
	categoryRepo     repository.CategoryRepo
	videoRepo        repository.VideoRepo
	announcementRepo repository.AnnouncementRepo
	heroRepo         repository.HeroRepo
	blobStore        database.BlobStoreRepo
	buckets          CatalogBuckets
}

// NewCatalogUseCase 建立一個新的 CatalogUseCase
func NewCatalogUseCase(categoryRepo repository.CategoryRepo,
	videoRepo repository.VideoRepo,
	announcementRepo repository.AnnouncementRepo,
	heroRepo repository.HeroRepo,
	blobStore database.BlobStoreRepo,
	buckets CatalogBuckets,
) CatalogUseCase {
	return &catalogUseCase{
		categoryRepo:     categoryRepo,
		videoRepo:        videoRepo,
		announcementRepo: announcementRepo,
		heroRepo:         heroRepo,
		blobStore:        blobStore,
		buckets:          buckets,
	}
}

// ListCatalog 取全部分類與影片後做純投影，資料還沒進來時回空列表而不是錯誤
func (u *catalogUseCase) ListCatalog(ctx context.Context, query string) ([]domain.CategoryRow, error) {
	categories, err := u.categoryRepo.ListOrdered()
	if err != nil {
		return nil, errprocess.Set(fmt.Sprintf("query[%s] 讀取分類失敗 : %v", query, err))
	}

	videos, err := u.videoRepo.ListAll()
	if err != nil {
		return nil, errprocess.Set(fmt.Sprintf("query[%s] 讀取影片失敗 : %v", query, err))
	}

	return BuildRows(categories, videos, query), nil
}

// ListCategories list categories by position
func (u *catalogUseCase) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return u.categoryRepo.ListOrdered()
}

// CreateCategory 新分類排在最後面（position = 現有數量）
func (u *catalogUseCase) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	if name == "" {
		return nil, errprocess.Setf(errprocess.ErrValidation, "category name is required")
	}

	count, err := u.categoryRepo.Count()
	if err != nil {
		return nil, errprocess.Set(fmt.Sprintf("統計分類數量失敗 : %v", err))
	}

	category := domain.Category{
		Name:     name,
		Position: int(count),
	}
	if err := u.categoryRepo.Create(&category); err != nil {
		return nil, errprocess.Set(fmt.Sprintf("name[%s] 建立分類失敗 : %v", name, err))
	}

	return &category, nil
}

// DeleteCategory 還有影片引用時拒絕刪除，維持參照完整性
func (u *catalogUseCase) DeleteCategory(ctx context.Context, id string) error {
	if _, err := u.categoryRepo.GetByID(id); err != nil {
		return err
	}

	count, err := u.videoRepo.CountByCategory(id)
	if err != nil {
		return errprocess.Set(fmt.Sprintf("categoryID[%s] 統計引用影片失敗 : %v", id, err))
	}
	if count > 0 {
		return errprocess.Setf(errprocess.ErrConflict, "categoryID[%s] 還有 %d 支影片引用，不能刪除", id, count)
	}

	return u.categoryRepo.Delete(id)
}

// ListVideos list all catalog videos
func (u *catalogUseCase) ListVideos(ctx context.Context) ([]domain.Video, error) {
	return u.videoRepo.ListAll()
}

// CreateVideo 管理端直接新增目錄影片，影片與縮圖檔都要有
func (u *catalogUseCase) CreateVideo(ctx context.Context, req domain.CreateVideoReq) (*domain.Video, error) {
	if req.VideoFile == nil || req.ThumbnailFile == nil {
		return nil, errprocess.Setf(errprocess.ErrValidation, "title[%s] 影片與縮圖檔案都必須提供", req.Title)
	}

	videoURL, err := u.storeMedia(ctx, u.buckets.Video, req.VideoFile)
	if err != nil {
		return nil, errprocess.Wrap(errprocess.ErrUpload, err, fmt.Sprintf("title[%s] 上傳影片檔失敗", req.Title))
	}

	thumbnailURL, err := u.storeMedia(ctx, u.buckets.Thumbnail, req.ThumbnailFile)
	if err != nil {
		return nil, errprocess.Wrap(errprocess.ErrUpload, err, fmt.Sprintf("title[%s] 上傳縮圖檔失敗", req.Title))
	}

	video := domain.Video{
		Title:        req.Title,
		Description:  req.Description,
		VideoURL:     videoURL,
		ThumbnailURL: thumbnailURL,
	}
	if req.CategoryID != "" {
		categoryID := req.CategoryID
		video.CategoryID = &categoryID
	}

	if err := u.videoRepo.Create(&video); err != nil {
		return nil, errprocess.Wrap(errprocess.ErrUpload, err, fmt.Sprintf("title[%s] 資料庫建立影片失敗", req.Title))
	}

	return &video, nil
}

// UpdateVideo 部分更新，沒帶新檔案時保留原本的媒體 URL
func (u *catalogUseCase) UpdateVideo(ctx context.Context, id string, req domain.UpdateVideoReq) error {
	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.CategoryID != nil {
		fields["category_id"] = *req.CategoryID
	}

	if req.VideoFile != nil {
		videoURL, err := u.storeMedia(ctx, u.buckets.Video, req.VideoFile)
		if err != nil {
			return errprocess.Wrap(errprocess.ErrUpload, err, fmt.Sprintf("videoID[%s] 上傳影片檔失敗", id))
		}
		fields["video_url"] = videoURL
	}
	if req.ThumbnailFile != nil {
		thumbnailURL, err := u.storeMedia(ctx, u.buckets.Thumbnail, req.ThumbnailFile)
		if err != nil {
			return errprocess.Wrap(errprocess.ErrUpload, err, fmt.Sprintf("videoID[%s] 上傳縮圖檔失敗", id))
		}
		fields["thumbnail_url"] = thumbnailURL
	}

	if len(fields) == 0 {
		return nil
	}

	return u.videoRepo.UpdateFields(id, fields)
}

// DeleteVideo delete catalog video by id
func (u *catalogUseCase) DeleteVideo(ctx context.Context, id string) error {
	return u.videoRepo.Delete(id)
}

// ListAnnouncements list announcements by position
func (u *catalogUseCase) ListAnnouncements(ctx context.Context) ([]domain.Announcement, error) {
	return u.announcementRepo.ListOrdered()
}

// CreateAnnouncement 新公告排在最後面
func (u *catalogUseCase) CreateAnnouncement(ctx context.Context, title, content string) (*domain.Announcement, error) {
	if title == "" || content == "" {
		return nil, errprocess.Setf(errprocess.ErrValidation, "announcement title and content are required")
	}

	existing, err := u.announcementRepo.ListOrdered()
	if err != nil {
		return nil, errprocess.Set(fmt.Sprintf("讀取公告失敗 : %v", err))
	}

	announcement := domain.Announcement{
		Title:    title,
		Content:  content,
		Position: len(existing),
	}
	if err := u.announcementRepo.Create(&announcement); err != nil {
		return nil, errprocess.Set(fmt.Sprintf("title[%s] 建立公告失敗 : %v", title, err))
	}

	return &announcement, nil
}

// UpdateAnnouncement announcement partial update
func (u *catalogUseCase) UpdateAnnouncement(ctx context.Context, id string, patch domain.AnnouncementPatch) error {
	fields := map[string]interface{}{}
	if patch.Title != nil {
		fields["title"] = *patch.Title
	}
	if patch.Content != nil {
		fields["content"] = *patch.Content
	}
	if patch.Position != nil {
		fields["position"] = *patch.Position
	}

	if len(fields) == 0 {
		return nil
	}

	return u.announcementRepo.UpdateFields(id, fields)
}

// DeleteAnnouncement delete announcement by id
func (u *catalogUseCase) DeleteAnnouncement(ctx context.Context, id string) error {
	return u.announcementRepo.Delete(id)
}

// GetHero get hero banner
func (u *catalogUseCase) GetHero(ctx context.Context) (*domain.Hero, error) {
	return u.heroRepo.Get()
}

// UpdateHero 橫幅部分更新，未帶新檔案時沿用原本的媒體 URL
func (u *catalogUseCase) UpdateHero(ctx context.Context, req domain.UpdateHeroReq) error {
	hero, err := u.heroRepo.Get()
	if err != nil {
		return err
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}

	if req.BackgroundFile != nil {
		backgroundURL, err := u.storeMedia(ctx, u.buckets.Thumbnail, req.BackgroundFile)
		if err != nil {
			return errprocess.Wrap(errprocess.ErrUpload, err, fmt.Sprintf("heroID[%s] 上傳背景圖失敗", hero.ID))
		}
		fields["background_image_url"] = backgroundURL
	}
	if req.VideoFile != nil {
		videoURL, err := u.storeMedia(ctx, u.buckets.Video, req.VideoFile)
		if err != nil {
			return errprocess.Wrap(errprocess.ErrUpload, err, fmt.Sprintf("heroID[%s] 上傳影片檔失敗", hero.ID))
		}
		fields["video_url"] = videoURL
	}

	if len(fields) == 0 {
		return nil
	}

	return u.heroRepo.UpdateFields(hero.ID, fields)
}

// storeMedia 存進 blob store 並回傳公開 URL，檔名帶時間戳避免衝突
func (u *catalogUseCase) storeMedia(ctx context.Context, bucket string, file *domain.MediaFile) (string, error) {
	ext := filepath.Ext(file.FileName)
	objectName := fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), uuid.New().String(), ext)

	if err := u.blobStore.Upload(ctx, bucket, objectName, file.Content, file.Size, file.ContentType); err != nil {
		return "", err
	}

	return u.blobStore.PublicURL(bucket, objectName), nil
}
