package models

import "time"

// RefreshPageCheckID 單列旗標的主鍵
const RefreshPageCheckID = 1

// RefreshPageCheck 儀表板重新載入旗標
type RefreshPageCheck struct {
	ID        int        `gorm:"column:ID;primaryKey" json:"-"`
	RefreshYN string     `gorm:"column:REFRESHYN;type:char(1);default:N" json:"REFRESHYN"`
	UpdateAt  *time.Time `gorm:"column:UPDATE_AT" json:"UPDATE_AT,omitempty"`
}

// TableName 對應既有資料表
func (RefreshPageCheck) TableName() string {
	return "REFRESHPAGECHECK"
}

// CaptchaSession 登入驗證碼
type CaptchaSession struct {
	SessionID string    `gorm:"column:SESSIONID;primaryKey;type:varchar(64)"`
	Code      string    `gorm:"column:CODE;type:varchar(10)"`
	CreateAt  time.Time `gorm:"column:CREATE_AT;index"`
}

// TableName 對應既有資料表
func (CaptchaSession) TableName() string {
	return "CAPTCHASESSION"
}
