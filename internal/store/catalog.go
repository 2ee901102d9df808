package store

import (
	"database/sql"
	"errors"

	"salesboard/internal/model"
)

// ErrNotFound 目录记录不存在
var ErrNotFound = errors.New("record not found")

// EnsureCategory 按名称登记类别，已存在则返回现有 ID
func (s *Store) EnsureCategory(name string) (int64, error) {
	var id int64
	err := s.db.QueryRow(`SELECT id FROM product_categories WHERE name = ?`, name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}

	res, err := s.db.Exec(`INSERT INTO product_categories (name) VALUES (?)`, name)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListCategories 全部类别，按名称排序
func (s *Store) ListCategories() ([]model.Category, error) {
	rows, err := s.db.Query(`SELECT id, name FROM product_categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// UpdateCategory 重命名类别
func (s *Store) UpdateCategory(id int64, name string) error {
	res, err := s.db.Exec(`UPDATE product_categories SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteCategory 删除类别及其下产品
func (s *Store) DeleteCategory(id int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM products WHERE category_id = ?`, id); err != nil {
		return err
	}
	res, err := tx.Exec(`DELETE FROM product_categories WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return tx.Commit()
}

// EnsureProduct 按 (类别, 名称) 登记产品，已存在则刷新属性
func (s *Store) EnsureProduct(categoryID int64, name, subCategory, typeOfSales string) (int64, error) {
	var id int64
	err := s.db.QueryRow(
		`SELECT id FROM products WHERE category_id = ? AND name = ?`, categoryID, name,
	).Scan(&id)
	if err == nil {
		_, err = s.db.Exec(
			`UPDATE products SET sub_category = ?, type_of_sales = ? WHERE id = ?`,
			subCategory, typeOfSales, id,
		)
		return id, err
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}

	res, err := s.db.Exec(
		`INSERT INTO products (category_id, name, sub_category, type_of_sales) VALUES (?, ?, ?, ?)`,
		categoryID, name, subCategory, typeOfSales,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListProducts 产品列表，categoryID 为 0 表示全部
func (s *Store) ListProducts(categoryID int64) ([]model.Product, error) {
	query := `SELECT id, category_id, name, sub_category, type_of_sales FROM products ORDER BY name`
	args := []any{}
	if categoryID > 0 {
		query = `SELECT id, category_id, name, sub_category, type_of_sales FROM products WHERE category_id = ? ORDER BY name`
		args = append(args, categoryID)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.CategoryID, &p.Name, &p.SubCategory, &p.TypeOfSales); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// UpdateProduct 更新产品属性
func (s *Store) UpdateProduct(p model.Product) error {
	res, err := s.db.Exec(
		`UPDATE products SET category_id = ?, name = ?, sub_category = ?, type_of_sales = ? WHERE id = ?`,
		p.CategoryID, p.Name, p.SubCategory, p.TypeOfSales, p.ID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteProduct 删除产品
func (s *Store) DeleteProduct(id int64) error {
	res, err := s.db.Exec(`DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
