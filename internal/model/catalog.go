package model

import "time"

// Category 产品类别（目录表，随上传数据自动登记）
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Product 产品
type Product struct {
	ID          int64  `json:"id"`
	CategoryID  int64  `json:"categoryId"`
	Name        string `json:"name"`
	SubCategory string `json:"subCategory,omitempty"`
	TypeOfSales string `json:"typeOfSales,omitempty"`
}

// Upload 一次上传记录
type Upload struct {
	ID              string    `json:"id"`
	Filename        string    `json:"filename"`
	UploadedAt      time.Time `json:"uploadedAt"`
	SheetsProcessed []string  `json:"sheetsProcessed"`
	Periods         []string  `json:"periods"`
	Successful      bool      `json:"successful"`
	ErrorMessage    string    `json:"errorMessage,omitempty"`
}
