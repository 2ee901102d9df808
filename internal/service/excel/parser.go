package excel

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"

	"salesboard/internal/model"
)

// Parser Excel解析器
type Parser struct {
	file   *excelize.File
	fileID string
}

// NewParser 创建解析器
func NewParser() *Parser {
	return &Parser{
		fileID: uuid.New().String(),
	}
}

// LoadFile 加载Excel文件
func (p *Parser) LoadFile(reader io.Reader) error {
	file, err := excelize.OpenReader(reader)
	if err != nil {
		return fmt.Errorf("failed to open excel: %w", err)
	}
	p.file = file
	return nil
}

// GetFileID 获取文件ID
func (p *Parser) GetFileID() string {
	return p.fileID
}

// GetSheets 获取工作表列表
func (p *Parser) GetSheets() ([]model.SheetInfo, error) {
	if p.file == nil {
		return nil, errors.New("no file loaded")
	}

	sheets := p.file.GetSheetList()
	result := make([]model.SheetInfo, 0, len(sheets))

	for _, name := range sheets {
		rows, err := p.file.GetRows(name)
		if err != nil {
			continue
		}
		result = append(result, model.SheetInfo{
			Name:     name,
			RowCount: len(rows),
		})
	}

	return result, nil
}

// Materialize 把工作簿整体读入内存快照
// 所有表并发读取；单表读取失败会整体失败，结构校验由调用方负责
func (p *Parser) Materialize(ctx context.Context, filename string) (*model.Workbook, error) {
	if p.file == nil {
		return nil, errors.New("no file loaded")
	}

	names := p.file.GetSheetList()
	wb := &model.Workbook{
		FileID:   p.fileID,
		Filename: filename,
		Sheets:   make(map[string]*model.Sheet, len(names)),
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for _, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rows, err := p.file.GetRows(name)
			if err != nil {
				return fmt.Errorf("read sheet %q: %w", name, err)
			}

			sheet := &model.Sheet{Name: name}
			if len(rows) > 0 {
				sheet.Header = rows[0]
				sheet.Rows = rows[1:]
			}

			mu.Lock()
			wb.Sheets[name] = sheet
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return wb, nil
}

// Close 关闭文件
func (p *Parser) Close() error {
	if p.file != nil {
		return p.file.Close()
	}
	return nil
}
