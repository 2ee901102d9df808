package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"salesboard/internal/model"
	"salesboard/internal/store"
)

// ListCategories 产品类别目录
// GET /api/categories
func (h *Handler) ListCategories(c *gin.Context) {
	cats, err := h.store.ListCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": cats})
}

// CategoryRequest 类别创建/重命名请求体
type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateCategory 登记类别（幂等：同名返回现有记录）
// POST /api/categories
func (h *Handler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "类别名称不能为空"})
		return
	}
	id, err := h.store.EnsureCategory(req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "name": req.Name})
}

// UpdateCategory 重命名类别
// PATCH /api/categories/:id
func (h *Handler) UpdateCategory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的类别 ID"})
		return
	}
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "类别名称不能为空"})
		return
	}
	if err := h.store.UpdateCategory(id, req.Name); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "类别不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "name": req.Name})
}

// DeleteCategory 删除类别及其下产品
// DELETE /api/categories/:id
func (h *Handler) DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的类别 ID"})
		return
	}
	if err := h.store.DeleteCategory(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "类别不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// ListProducts 产品目录
// GET /api/products?categoryId=1
func (h *Handler) ListProducts(c *gin.Context) {
	var categoryID int64
	if v := c.Query("categoryId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "无效的类别 ID"})
			return
		}
		categoryID = id
	}

	products, err := h.store.ListProducts(categoryID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// ProductRequest 产品创建/更新请求体
type ProductRequest struct {
	Category    string `json:"category" binding:"required"`
	Name        string `json:"name" binding:"required"`
	SubCategory string `json:"subCategory"`
	TypeOfSales string `json:"typeOfSales"`
}

// CreateProduct 登记产品，类别不存在时一并登记
// POST /api/products
func (h *Handler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "类别与产品名称不能为空"})
		return
	}
	catID, err := h.store.EnsureCategory(req.Category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	id, err := h.store.EnsureProduct(catID, req.Name, req.SubCategory, req.TypeOfSales)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, model.Product{
		ID:          id,
		CategoryID:  catID,
		Name:        req.Name,
		SubCategory: req.SubCategory,
		TypeOfSales: req.TypeOfSales,
	})
}

// UpdateProduct 更新产品属性，可同时改类别
// PATCH /api/products/:id
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的产品 ID"})
		return
	}
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "类别与产品名称不能为空"})
		return
	}
	catID, err := h.store.EnsureCategory(req.Category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	p := model.Product{
		ID:          id,
		CategoryID:  catID,
		Name:        req.Name,
		SubCategory: req.SubCategory,
		TypeOfSales: req.TypeOfSales,
	}
	if err := h.store.UpdateProduct(p); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "产品不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// DeleteProduct 删除产品
// DELETE /api/products/:id
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的产品 ID"})
		return
	}
	if err := h.store.DeleteProduct(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "产品不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
