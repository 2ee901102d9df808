package workbook

import (
	"errors"
	"sync"
	"time"

	"salesboard/internal/model"
)

// ErrNoWorkbook 尚未上传任何工作簿
var ErrNoWorkbook = errors.New("no workbook loaded")

// Holder 当前生效的工作簿快照
// 上传成功后整体替换，读路径拿到的永远是不可变快照
type Holder struct {
	mu       sync.RWMutex
	current  *model.Workbook
	loadedAt time.Time
}

// NewHolder 创建空的快照持有者
func NewHolder() *Holder {
	return &Holder{}
}

// Set 替换当前快照
func (h *Holder) Set(wb *model.Workbook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.current = wb
	h.loadedAt = time.Now()
}

// Get 获取当前快照
func (h *Holder) Get() (*model.Workbook, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.current == nil {
		return nil, ErrNoWorkbook
	}
	return h.current, nil
}

// Loaded 是否已有快照
func (h *Holder) Loaded() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current != nil
}

// LoadedAt 当前快照的装载时间
func (h *Holder) LoadedAt() time.Time {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.loadedAt
}

// Clear 清空快照
func (h *Holder) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.current = nil
	h.loadedAt = time.Time{}
}
