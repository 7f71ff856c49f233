package app

import (
	"strings"

	"github.com/justifyman/alansar/internal/catalog/domain"
)

// BuildRows 把全部影片與分類投影成首頁的分類列
// 純函數：分類按傳入順序（呼叫端負責 position 排序），每列只收
// category_id 相符且標題含搜尋字（不分大小寫）的影片；query 為空不過濾。
// 沒有影片的分類列整列省略；category_id 為空的影片不出現在任何列。
func BuildRows(categories []domain.Category, videos []domain.Video, query string) []domain.CategoryRow {
	q := strings.ToLower(query)

	rows := make([]domain.CategoryRow, 0, len(categories))
	for _, c := range categories {
		var matched []domain.Video
		for _, v := range videos {
			if v.CategoryID == nil || *v.CategoryID != c.ID {
				continue
			}
			if q != "" && !strings.Contains(strings.ToLower(v.Title), q) {
				continue
			}
			matched = append(matched, v)
		}
		if len(matched) == 0 {
			continue
		}
		rows = append(rows, domain.CategoryRow{Category: c, Videos: matched})
	}

	return rows
}

// FilterVideos 依標題過濾影片，與 BuildRows 用同一個比對規則
func FilterVideos(videos []domain.Video, query string) []domain.Video {
	if query == "" {
		return videos
	}
	q := strings.ToLower(query)

	filtered := make([]domain.Video, 0, len(videos))
	for _, v := range videos {
		if strings.Contains(strings.ToLower(v.Title), q) {
			filtered = append(filtered, v)
		}
	}
	return filtered
}
