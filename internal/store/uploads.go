package store

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"salesboard/internal/model"
)

// ErrUploadNotFound 上传记录不存在
var ErrUploadNotFound = errors.New("upload not found")

// 列表字段在 SQLite 里按逗号拼接存储
func joinList(items []string) string {
	return strings.Join(items, ",")
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// InsertUpload 登记一次新上传（初始为未成功状态）
func (s *Store) InsertUpload(id, filename string) error {
	_, err := s.db.Exec(
		`INSERT INTO file_uploads (id, filename, uploaded_at) VALUES (?, ?, ?)`,
		id, filename, time.Now().UTC(),
	)
	return err
}

// MarkUploadSuccess 标记上传成功，记录处理过的表和期间
func (s *Store) MarkUploadSuccess(id string, sheets, periods []string) error {
	res, err := s.db.Exec(
		`UPDATE file_uploads SET successful = 1, sheets_processed = ?, periods = ?, error_message = '' WHERE id = ?`,
		joinList(sheets), joinList(periods), id,
	)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

// MarkUploadError 标记上传失败并记录原因
func (s *Store) MarkUploadError(id, message string) error {
	res, err := s.db.Exec(
		`UPDATE file_uploads SET successful = 0, error_message = ? WHERE id = ?`,
		message, id,
	)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrUploadNotFound
	}
	return nil
}

// GetUpload 获取单条上传记录
func (s *Store) GetUpload(id string) (*model.Upload, error) {
	row := s.db.QueryRow(
		`SELECT id, filename, uploaded_at, sheets_processed, periods, successful, error_message
		 FROM file_uploads WHERE id = ?`, id,
	)
	u, err := scanUpload(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUploadNotFound
	}
	return u, err
}

// ListUploads 上传历史，按时间倒序
func (s *Store) ListUploads(limit int) ([]*model.Upload, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(
		`SELECT id, filename, uploaded_at, sheets_processed, periods, successful, error_message
		 FROM file_uploads ORDER BY uploaded_at DESC, id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Upload
	for rows.Next() {
		u, err := scanUpload(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// LatestSuccessfulUpload 最近一次成功上传，没有则返回 ErrUploadNotFound
func (s *Store) LatestSuccessfulUpload() (*model.Upload, error) {
	row := s.db.QueryRow(
		`SELECT id, filename, uploaded_at, sheets_processed, periods, successful, error_message
		 FROM file_uploads WHERE successful = 1 ORDER BY uploaded_at DESC, id DESC LIMIT 1`,
	)
	u, err := scanUpload(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUploadNotFound
	}
	return u, err
}

// DeleteUpload 删除上传记录
func (s *Store) DeleteUpload(id string) error {
	res, err := s.db.Exec(`DELETE FROM file_uploads WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUpload(r rowScanner) (*model.Upload, error) {
	var u model.Upload
	var sheets, periods string
	var successful int
	if err := r.Scan(&u.ID, &u.Filename, &u.UploadedAt, &sheets, &periods, &successful, &u.ErrorMessage); err != nil {
		return nil, err
	}
	u.SheetsProcessed = splitList(sheets)
	u.Periods = splitList(periods)
	u.Successful = successful != 0
	return &u, nil
}
