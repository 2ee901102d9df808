package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"salesboard/internal/model"
	"salesboard/internal/store"
)

// StatusResponse 系统状态响应
type StatusResponse struct {
	Initialized    bool              `json:"initialized"`    // 是否已有可用工作簿
	Filename       string            `json:"filename"`       // 当前工作簿文件名
	LoadedAt       string            `json:"loadedAt"`       // 快照装载时间
	Sheets         []model.SheetInfo `json:"sheets"`         // 工作表概要
	LastUploadID   string            `json:"lastUploadId"`   // 最近一次成功上传
	LastUploadTime string            `json:"lastUploadTime"` // 最近一次成功上传时间
}

// GetStatus 获取系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	resp := StatusResponse{}

	if wb, err := h.holder.Get(); err == nil {
		resp.Initialized = true
		resp.Filename = wb.Filename
		resp.LoadedAt = h.holder.LoadedAt().Format("2006-01-02 15:04:05")
		resp.Sheets = wb.SheetInfos()
	}

	last, err := h.store.LatestSuccessfulUpload()
	if err == nil {
		resp.LastUploadID = last.ID
		resp.LastUploadTime = last.UploadedAt.Format("2006-01-02 15:04:05")
	} else if !errors.Is(err, store.ErrUploadNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}
