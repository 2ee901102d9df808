package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"salesboard/internal/store"
)

// Upload 上传工作簿并替换当前快照
// POST /api/upload (multipart, 字段名 file)
func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "未找到上传文件"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "读取上传文件失败"})
		return
	}
	defer file.Close()

	result, err := h.coordinator.Import(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		// 结构校验失败属于请求方可修复的问题
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListUploads 上传历史
// GET /api/uploads?limit=50
func (h *Handler) ListUploads(c *gin.Context) {
	uploads, err := h.store.ListUploads(parseQueryInt(c, "limit"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"uploads": uploads})
}

// DeleteUpload 删除上传记录（不影响当前快照）
// DELETE /api/uploads/:id
func (h *Handler) DeleteUpload(c *gin.Context) {
	if err := h.store.DeleteUpload(c.Param("id")); err != nil {
		if errors.Is(err, store.ErrUploadNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "上传记录不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
