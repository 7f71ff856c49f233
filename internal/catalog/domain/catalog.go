package domain

import (
	"io"
	"time"
)

// Category 目錄分類，首頁的每一列，按 Position 升序排列
type Category struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	Name      string    `json:"name"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

// Video 公開目錄的影片。CategoryID 為空時不會出現在任何分類列
type Video struct {
	ID           string    `gorm:"primaryKey;type:uuid" json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	CategoryID   *string   `gorm:"type:uuid" json:"category_id"`
	VideoURL     string    `json:"video_url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	CreatedAt    time.Time `json:"created_at"`
}

// Announcement 公告，按 Position 升序排列，無狀態機
type Announcement struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Hero 首頁橫幅，整個站只有一筆
type Hero struct {
	ID                 string    `gorm:"primaryKey;type:uuid" json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	BackgroundImageURL string    `json:"background_image_url"`
	VideoURL           *string   `json:"video_url"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// CategoryRow 目錄投影的一列：一個分類加上它底下符合搜尋的影片
type CategoryRow struct {
	Category Category `json:"category"`
	Videos   []Video  `json:"videos"`
}

// MediaFile 上傳檔案的串流與中繼資料
type MediaFile struct {
	FileName    string
	Size        int64
	ContentType string
	Content     io.Reader
}

// CreateVideoReq 管理端新增目錄影片
type CreateVideoReq struct {
	Title         string
	Description   string
	CategoryID    string
	VideoFile     *MediaFile
	ThumbnailFile *MediaFile
}

// UpdateVideoReq 管理端部分更新目錄影片，nil 欄位不變
type UpdateVideoReq struct {
	Title         *string
	Description   *string
	CategoryID    *string
	VideoFile     *MediaFile
	ThumbnailFile *MediaFile
}

// AnnouncementPatch 公告部分更新，nil 欄位不變
type AnnouncementPatch struct {
	Title    *string
	Content  *string
	Position *int
}

// UpdateHeroReq 橫幅部分更新，未帶新檔案時保留原本的 URL
type UpdateHeroReq struct {
	Title          *string
	Description    *string
	BackgroundFile *MediaFile
	VideoFile      *MediaFile
}
