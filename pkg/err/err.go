package errprocess

import (
	"errors"
	"fmt"

	"github.com/justifyman/alansar/pkg/logger"
)

// 審核/目錄核心的錯誤分類，caller 可用 errors.Is 判斷
var (
	// ErrValidation 缺少必要輸入，任何副作用發生之前就擋下
	ErrValidation = errors.New("validation error")
	// ErrMissingCategory 核准時未指定有效分類
	ErrMissingCategory = errors.New("missing category")
	// ErrUpload blob 或資料寫入失敗，包裹底層原因
	ErrUpload = errors.New("upload error")
	// ErrNotFound 目標 id 不存在，由 record store 傳播
	ErrNotFound = errors.New("not found")
	// ErrConflict 狀態已被其他操作改變（樂觀鎖失敗、刪除被引用的分類）
	ErrConflict = errors.New("conflict")
)

// Set set err info
func Set(errMsg string) error {
	logger.Log.Error(errMsg)
	return errors.New(errMsg)
}

// Setf 記錄日誌並回傳帶分類的錯誤，kind 需為上面的 sentinel
func Setf(kind error, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	logger.Log.Error(msg)
	return fmt.Errorf("%w: %s", kind, msg)
}

// Wrap 記錄日誌並把底層 cause 包進分類，errors.Is 對 kind 和 cause 都成立
func Wrap(kind error, cause error, msg string) error {
	logger.Log.Error(fmt.Sprintf("%s : %v", msg, cause))
	return fmt.Errorf("%w: %s: %w", kind, msg, cause)
}
