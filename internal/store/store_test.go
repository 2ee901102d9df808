package store

import (
	"errors"
	"path/filepath"
	"testing"

	"salesboard/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// TestUploadLifecycle 上传记录：登记 → 标记成功 → 查询
func TestUploadLifecycle(t *testing.T) {
	s := newTestStore(t)

	if err := s.InsertUpload("u1", "report.xlsx"); err != nil {
		t.Fatalf("InsertUpload: %v", err)
	}

	u, err := s.GetUpload("u1")
	if err != nil {
		t.Fatalf("GetUpload: %v", err)
	}
	if u.Successful || u.Filename != "report.xlsx" {
		t.Errorf("u = %+v", u)
	}

	sheets := []string{"Data", "Production Data"}
	periods := []string{"July 2025", "August 2025"}
	if err := s.MarkUploadSuccess("u1", sheets, periods); err != nil {
		t.Fatalf("MarkUploadSuccess: %v", err)
	}

	u, err = s.GetUpload("u1")
	if err != nil {
		t.Fatalf("GetUpload: %v", err)
	}
	if !u.Successful || len(u.SheetsProcessed) != 2 || len(u.Periods) != 2 {
		t.Errorf("u = %+v", u)
	}
	if u.Periods[0] != "July 2025" {
		t.Errorf("Periods = %v", u.Periods)
	}
}

// TestUploadError 失败记录保留错误信息
func TestUploadError(t *testing.T) {
	s := newTestStore(t)

	if err := s.InsertUpload("u1", "bad.xlsx"); err != nil {
		t.Fatalf("InsertUpload: %v", err)
	}
	if err := s.MarkUploadError("u1", "missing sheets"); err != nil {
		t.Fatalf("MarkUploadError: %v", err)
	}

	u, _ := s.GetUpload("u1")
	if u.Successful || u.ErrorMessage != "missing sheets" {
		t.Errorf("u = %+v", u)
	}

	// 失败的上传不算最近一次成功
	if _, err := s.LatestSuccessfulUpload(); !errors.Is(err, ErrUploadNotFound) {
		t.Errorf("err = %v, want ErrUploadNotFound", err)
	}
}

// TestListUploads 历史按时间倒序
func TestListUploads(t *testing.T) {
	s := newTestStore(t)

	for _, id := range []string{"u1", "u2", "u3"} {
		if err := s.InsertUpload(id, id+".xlsx"); err != nil {
			t.Fatalf("InsertUpload(%s): %v", id, err)
		}
	}

	list, err := s.ListUploads(10)
	if err != nil {
		t.Fatalf("ListUploads: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("len(list) = %d, want 3", len(list))
	}
	// 同一时刻插入时按 id 倒序兜底
	if list[0].ID != "u3" {
		t.Errorf("list[0] = %+v", list[0])
	}

	if err := s.DeleteUpload("u2"); err != nil {
		t.Fatalf("DeleteUpload: %v", err)
	}
	if _, err := s.GetUpload("u2"); !errors.Is(err, ErrUploadNotFound) {
		t.Errorf("err = %v, want ErrUploadNotFound", err)
	}
}

// TestCatalog 类别与产品的登记和去重
func TestCatalog(t *testing.T) {
	s := newTestStore(t)

	id1, err := s.EnsureCategory("Water")
	if err != nil {
		t.Fatalf("EnsureCategory: %v", err)
	}
	id2, err := s.EnsureCategory("Water")
	if err != nil {
		t.Fatalf("EnsureCategory(重复): %v", err)
	}
	if id1 != id2 {
		t.Errorf("重复登记应返回同一 ID: %d != %d", id1, id2)
	}

	pid, err := s.EnsureProduct(id1, "Aqua 500ml", "Still", "Retail")
	if err != nil {
		t.Fatalf("EnsureProduct: %v", err)
	}
	// 重复登记刷新属性
	pid2, err := s.EnsureProduct(id1, "Aqua 500ml", "Sparkling", "Wholesale")
	if err != nil {
		t.Fatalf("EnsureProduct(重复): %v", err)
	}
	if pid != pid2 {
		t.Errorf("pid %d != %d", pid, pid2)
	}

	products, err := s.ListProducts(id1)
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if len(products) != 1 || products[0].SubCategory != "Sparkling" {
		t.Errorf("products = %+v", products)
	}

	cats, err := s.ListCategories()
	if err != nil {
		t.Fatalf("ListCategories: %v", err)
	}
	if len(cats) != 1 || cats[0].Name != "Water" {
		t.Errorf("cats = %+v", cats)
	}

	// 删类别时连带删产品
	if err := s.DeleteCategory(id1); err != nil {
		t.Fatalf("DeleteCategory: %v", err)
	}
	products, _ = s.ListProducts(0)
	if len(products) != 0 {
		t.Errorf("products = %+v, want empty", products)
	}
}

// TestCatalogUpdate 重命名类别与更新产品属性
func TestCatalogUpdate(t *testing.T) {
	s := newTestStore(t)

	catID, err := s.EnsureCategory("Water")
	if err != nil {
		t.Fatalf("EnsureCategory: %v", err)
	}
	pid, err := s.EnsureProduct(catID, "Aqua 500ml", "Still", "Retail")
	if err != nil {
		t.Fatalf("EnsureProduct: %v", err)
	}

	if err := s.UpdateCategory(catID, "Mineral Water"); err != nil {
		t.Fatalf("UpdateCategory: %v", err)
	}
	cats, _ := s.ListCategories()
	if len(cats) != 1 || cats[0].Name != "Mineral Water" {
		t.Errorf("cats = %+v", cats)
	}

	p := model.Product{
		ID:          pid,
		CategoryID:  catID,
		Name:        "Aqua 1L",
		SubCategory: "Sparkling",
		TypeOfSales: "Wholesale",
	}
	if err := s.UpdateProduct(p); err != nil {
		t.Fatalf("UpdateProduct: %v", err)
	}
	products, _ := s.ListProducts(catID)
	if len(products) != 1 || products[0].Name != "Aqua 1L" || products[0].TypeOfSales != "Wholesale" {
		t.Errorf("products = %+v", products)
	}

	if err := s.UpdateCategory(9999, "Ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateCategory(不存在) = %v, want ErrNotFound", err)
	}
	p.ID = 9999
	if err := s.UpdateProduct(p); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateProduct(不存在) = %v, want ErrNotFound", err)
	}
}
