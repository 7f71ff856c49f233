package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/justifyman/alansar/internal/catalog/domain"
	errprocess "github.com/justifyman/alansar/pkg/err"
	"github.com/justifyman/alansar/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCatalogUseCaseForTest(categoryRepo *MockCategoryRepo,
	videoRepo *MockVideoRepo,
	announcementRepo *MockAnnouncementRepo,
	heroRepo *MockHeroRepo,
	blobStore *MockBlobStore,
) CatalogUseCase {
	return NewCatalogUseCase(categoryRepo, videoRepo, announcementRepo, heroRepo, blobStore, CatalogBuckets{
		Video:     "videos",
		Thumbnail: "thumbnails",
	})
}

func TestCatalogUseCase_ListCatalog(t *testing.T) {
	ctx := context.Background()
	logger.SetNewNop()

	// **情境 1: 分類與影片組成目錄列**
	t.Run("組成目錄列", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepo)
		videoRepo := new(MockVideoRepo)
		uc := newCatalogUseCaseForTest(categoryRepo, videoRepo, new(MockAnnouncementRepo), new(MockHeroRepo), new(MockBlobStore))

		categoryRepo.On("ListOrdered").Return([]domain.Category{
			{ID: "cat-1", Name: "Action", Position: 0},
		}, nil).Once()
		videoRepo.On("ListAll").Return([]domain.Video{
			{ID: "v-1", Title: "Desert Trail", CategoryID: strPtr("cat-1")},
		}, nil).Once()

		rows, err := uc.ListCatalog(ctx, "")

		assert.NoError(t, err)
		assert.Len(t, rows, 1)
		assert.Equal(t, "Desert Trail", rows[0].Videos[0].Title)
		categoryRepo.AssertExpectations(t)
		videoRepo.AssertExpectations(t)
	})

	// **情境 2: 讀取分類失敗**
	t.Run("讀取分類失敗", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepo)
		videoRepo := new(MockVideoRepo)
		uc := newCatalogUseCaseForTest(categoryRepo, videoRepo, new(MockAnnouncementRepo), new(MockHeroRepo), new(MockBlobStore))

		categoryRepo.On("ListOrdered").Return(nil, errors.New("db error")).Once()

		_, err := uc.ListCatalog(ctx, "")

		assert.Error(t, err)
		categoryRepo.AssertExpectations(t)
	})

	// **情境 3: 還沒有任何資料時回空列表**
	t.Run("無資料回空列表", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepo)
		videoRepo := new(MockVideoRepo)
		uc := newCatalogUseCaseForTest(categoryRepo, videoRepo, new(MockAnnouncementRepo), new(MockHeroRepo), new(MockBlobStore))

		categoryRepo.On("ListOrdered").Return([]domain.Category{}, nil).Once()
		videoRepo.On("ListAll").Return([]domain.Video{}, nil).Once()

		rows, err := uc.ListCatalog(ctx, "anything")

		assert.NoError(t, err)
		assert.NotNil(t, rows)
		assert.Empty(t, rows)
	})
}

func TestCatalogUseCase_CreateCategory(t *testing.T) {
	ctx := context.Background()
	logger.SetNewNop()

	// **情境 1: 新分類排在最後面**
	t.Run("新分類排最後", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepo)
		uc := newCatalogUseCaseForTest(categoryRepo, new(MockVideoRepo), new(MockAnnouncementRepo), new(MockHeroRepo), new(MockBlobStore))

		categoryRepo.On("Count").Return(int64(3), nil).Once()
		categoryRepo.On("Create", mock.MatchedBy(func(c *domain.Category) bool {
			return c.Name == "Music" && c.Position == 3
		})).Return(nil).Once()

		category, err := uc.CreateCategory(ctx, "Music")

		assert.NoError(t, err)
		assert.Equal(t, 3, category.Position)
		categoryRepo.AssertExpectations(t)
	})

	// **情境 2: 名稱必填**
	t.Run("名稱必填", func(t *testing.T) {
		uc := newCatalogUseCaseForTest(new(MockCategoryRepo), new(MockVideoRepo), new(MockAnnouncementRepo), new(MockHeroRepo), new(MockBlobStore))

		_, err := uc.CreateCategory(ctx, "")

		assert.Error(t, err)
		assert.True(t, errors.Is(err, errprocess.ErrValidation))
	})
}

func TestCatalogUseCase_DeleteCategory(t *testing.T) {
	ctx := context.Background()
	logger.SetNewNop()

	// **情境 1: 沒有影片引用時可刪除**
	t.Run("無引用可刪除", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepo)
		videoRepo := new(MockVideoRepo)
		uc := newCatalogUseCaseForTest(categoryRepo, videoRepo, new(MockAnnouncementRepo), new(MockHeroRepo), new(MockBlobStore))

		categoryRepo.On("GetByID", "cat-1").Return(&domain.Category{ID: "cat-1"}, nil).Once()
		videoRepo.On("CountByCategory", "cat-1").Return(int64(0), nil).Once()
		categoryRepo.On("Delete", "cat-1").Return(nil).Once()

		err := uc.DeleteCategory(ctx, "cat-1")

		assert.NoError(t, err)
		categoryRepo.AssertExpectations(t)
	})

	// **情境 2: 還有影片引用時拒絕刪除**
	t.Run("有引用拒絕刪除", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepo)
		videoRepo := new(MockVideoRepo)
		uc := newCatalogUseCaseForTest(categoryRepo, videoRepo, new(MockAnnouncementRepo), new(MockHeroRepo), new(MockBlobStore))

		categoryRepo.On("GetByID", "cat-1").Return(&domain.Category{ID: "cat-1"}, nil).Once()
		videoRepo.On("CountByCategory", "cat-1").Return(int64(2), nil).Once()

		err := uc.DeleteCategory(ctx, "cat-1")

		assert.Error(t, err)
		assert.True(t, errors.Is(err, errprocess.ErrConflict))
		categoryRepo.AssertNotCalled(t, "Delete", "cat-1")
	})

	// **情境 3: 分類不存在**
	t.Run("分類不存在", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepo)
		uc := newCatalogUseCaseForTest(categoryRepo, new(MockVideoRepo), new(MockAnnouncementRepo), new(MockHeroRepo), new(MockBlobStore))

		categoryRepo.On("GetByID", "missing").Return(nil, errprocess.ErrNotFound).Once()

		err := uc.DeleteCategory(ctx, "missing")

		assert.Error(t, err)
		assert.True(t, errors.Is(err, errprocess.ErrNotFound))
	})
}

func TestCatalogUseCase_CreateVideo(t *testing.T) {
	ctx := context.Background()
	logger.SetNewNop()

	newMedia := func(name string) *domain.MediaFile {
		return &domain.MediaFile{
			FileName:    name,
			Size:        4,
			ContentType: "video/mp4",
			Content:     strings.NewReader("data"),
		}
	}

	// **情境 1: 上傳兩個檔案後寫入目錄**
	t.Run("上傳成功寫入目錄", func(t *testing.T) {
		videoRepo := new(MockVideoRepo)
		blobStore := new(MockBlobStore)
		uc := newCatalogUseCaseForTest(new(MockCategoryRepo), videoRepo, new(MockAnnouncementRepo), new(MockHeroRepo), blobStore)

		blobStore.On("Upload", ctx, "videos", mock.Anything, mock.Anything, int64(4), "video/mp4").Return(nil).Once()
		blobStore.On("PublicURL", "videos", mock.Anything).Return("http://blob/videos/a.mp4").Once()
		blobStore.On("Upload", ctx, "thumbnails", mock.Anything, mock.Anything, int64(4), "video/mp4").Return(nil).Once()
		blobStore.On("PublicURL", "thumbnails", mock.Anything).Return("http://blob/thumbnails/a.jpg").Once()
		videoRepo.On("Create", mock.MatchedBy(func(v *domain.Video) bool {
			return v.Title == "Clip" && v.VideoURL == "http://blob/videos/a.mp4" && v.CategoryID != nil && *v.CategoryID == "cat-1"
		})).Return(nil).Once()

		video, err := uc.CreateVideo(ctx, domain.CreateVideoReq{
			Title:         "Clip",
			CategoryID:    "cat-1",
			VideoFile:     newMedia("a.mp4"),
			ThumbnailFile: newMedia("a.jpg"),
		})

		assert.NoError(t, err)
		assert.Equal(t, "http://blob/thumbnails/a.jpg", video.ThumbnailURL)
		videoRepo.AssertExpectations(t)
		blobStore.AssertExpectations(t)
	})

	// **情境 2: 缺檔案直接擋下**
	t.Run("缺檔案擋下", func(t *testing.T) {
		blobStore := new(MockBlobStore)
		uc := newCatalogUseCaseForTest(new(MockCategoryRepo), new(MockVideoRepo), new(MockAnnouncementRepo), new(MockHeroRepo), blobStore)

		_, err := uc.CreateVideo(ctx, domain.CreateVideoReq{Title: "Clip", VideoFile: newMedia("a.mp4")})

		assert.Error(t, err)
		assert.True(t, errors.Is(err, errprocess.ErrValidation))
		blobStore.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	// **情境 3: blob 上傳失敗回傳 ErrUpload**
	t.Run("上傳失敗", func(t *testing.T) {
		blobStore := new(MockBlobStore)
		uc := newCatalogUseCaseForTest(new(MockCategoryRepo), new(MockVideoRepo), new(MockAnnouncementRepo), new(MockHeroRepo), blobStore)

		blobStore.On("Upload", ctx, "videos", mock.Anything, mock.Anything, int64(4), "video/mp4").Return(errors.New("minio down")).Once()

		_, err := uc.CreateVideo(ctx, domain.CreateVideoReq{
			Title:         "Clip",
			VideoFile:     newMedia("a.mp4"),
			ThumbnailFile: newMedia("a.jpg"),
		})

		assert.Error(t, err)
		assert.True(t, errors.Is(err, errprocess.ErrUpload))
	})
}

func TestCatalogUseCase_Announcements(t *testing.T) {
	ctx := context.Background()
	logger.SetNewNop()

	// **情境 1: 新公告排在最後面**
	t.Run("新公告排最後", func(t *testing.T) {
		announcementRepo := new(MockAnnouncementRepo)
		uc := newCatalogUseCaseForTest(new(MockCategoryRepo), new(MockVideoRepo), announcementRepo, new(MockHeroRepo), new(MockBlobStore))

		announcementRepo.On("ListOrdered").Return([]domain.Announcement{{ID: "a-1"}, {ID: "a-2"}}, nil).Once()
		announcementRepo.On("Create", mock.MatchedBy(func(a *domain.Announcement) bool {
			return a.Position == 2
		})).Return(nil).Once()

		announcement, err := uc.CreateAnnouncement(ctx, "維護公告", "週五凌晨維護")

		assert.NoError(t, err)
		assert.Equal(t, 2, announcement.Position)
		announcementRepo.AssertExpectations(t)
	})

	// **情境 2: 標題與內容必填**
	t.Run("標題內容必填", func(t *testing.T) {
		uc := newCatalogUseCaseForTest(new(MockCategoryRepo), new(MockVideoRepo), new(MockAnnouncementRepo), new(MockHeroRepo), new(MockBlobStore))

		_, err := uc.CreateAnnouncement(ctx, "", "內容")

		assert.Error(t, err)
		assert.True(t, errors.Is(err, errprocess.ErrValidation))
	})

	// **情境 3: 部分更新只帶有值的欄位**
	t.Run("部分更新", func(t *testing.T) {
		announcementRepo := new(MockAnnouncementRepo)
		uc := newCatalogUseCaseForTest(new(MockCategoryRepo), new(MockVideoRepo), announcementRepo, new(MockHeroRepo), new(MockBlobStore))

		title := "新標題"
		announcementRepo.On("UpdateFields", "a-1", map[string]interface{}{"title": title}).Return(nil).Once()

		err := uc.UpdateAnnouncement(ctx, "a-1", domain.AnnouncementPatch{Title: &title})

		assert.NoError(t, err)
		announcementRepo.AssertExpectations(t)
	})
}

func TestCatalogUseCase_UpdateHero(t *testing.T) {
	ctx := context.Background()
	logger.SetNewNop()

	// **情境 1: 只更新文字欄位時不動媒體 URL**
	t.Run("只更新文字", func(t *testing.T) {
		heroRepo := new(MockHeroRepo)
		blobStore := new(MockBlobStore)
		uc := newCatalogUseCaseForTest(new(MockCategoryRepo), new(MockVideoRepo), new(MockAnnouncementRepo), heroRepo, blobStore)

		heroRepo.On("Get").Return(&domain.Hero{ID: "hero-1"}, nil).Once()
		title := "精選"
		heroRepo.On("UpdateFields", "hero-1", map[string]interface{}{"title": title}).Return(nil).Once()

		err := uc.UpdateHero(ctx, domain.UpdateHeroReq{Title: &title})

		assert.NoError(t, err)
		heroRepo.AssertExpectations(t)
		blobStore.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	// **情境 2: 帶新背景圖時換掉 URL**
	t.Run("更新背景圖", func(t *testing.T) {
		heroRepo := new(MockHeroRepo)
		blobStore := new(MockBlobStore)
		uc := newCatalogUseCaseForTest(new(MockCategoryRepo), new(MockVideoRepo), new(MockAnnouncementRepo), heroRepo, blobStore)

		heroRepo.On("Get").Return(&domain.Hero{ID: "hero-1"}, nil).Once()
		blobStore.On("Upload", ctx, "thumbnails", mock.Anything, mock.Anything, int64(3), "image/png").Return(nil).Once()
		blobStore.On("PublicURL", "thumbnails", mock.Anything).Return("http://blob/thumbnails/bg.png").Once()
		heroRepo.On("UpdateFields", "hero-1", map[string]interface{}{"background_image_url": "http://blob/thumbnails/bg.png"}).Return(nil).Once()

		err := uc.UpdateHero(ctx, domain.UpdateHeroReq{
			BackgroundFile: &domain.MediaFile{
				FileName:    "bg.png",
				Size:        3,
				ContentType: "image/png",
				Content:     strings.NewReader("png"),
			},
		})

		assert.NoError(t, err)
		heroRepo.AssertExpectations(t)
		blobStore.AssertExpectations(t)
	})
}
