package models

import "time"

// AlertStatus 異常事件狀態碼
type AlertStatus string

const (
	StatusOpen       AlertStatus = "01" // 未處理
	StatusInProgress AlertStatus = "02" // 處理中
	StatusClosed     AlertStatus = "03" // 已結案
)

// 統計用的虛擬狀態
const (
	BucketTotal   = "total"
	BucketOverdue = "overdue"
)

// StatusOrder 狀態統計的固定排序
var StatusOrder = []string{BucketTotal, string(StatusOpen), string(StatusInProgress), string(StatusClosed), BucketOverdue}

var statusNames = map[string]string{
	BucketTotal:              "總數",
	string(StatusOpen):       "未處理",
	string(StatusInProgress): "處理中",
	string(StatusClosed):     "已結案",
	BucketOverdue:            "逾期未結案",
}

// Valid 是否為合法狀態碼
func (s AlertStatus) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusClosed:
		return true
	}
	return false
}

// StatusName 狀態或統計分類的顯示名稱
func StatusName(code string) string {
	return statusNames[code]
}

// EventAlert 異常事件
type EventAlert struct {
	AlertNo     int64       `gorm:"column:ALERTNO;primaryKey;autoIncrement" json:"ALERTNO"`
	CamArea     string      `gorm:"column:CAMAREA;type:varchar(20);index:idx_event_cam" json:"CAMAREA"`
	CamID       string      `gorm:"column:CAMID;type:varchar(20);index:idx_event_cam" json:"CAMID"`
	AlertCode   string      `gorm:"column:ALERTCODE;type:varchar(20);index" json:"ALERTCODE"`
	AlertTime   time.Time   `gorm:"column:ALERTTIME;index" json:"ALERTTIME"`
	AlertStatus AlertStatus `gorm:"column:ALERTSTATUS;type:char(2);default:01;index" json:"ALERTSTATUS"`
	PassNa      string      `gorm:"column:PASS_NA;type:varchar(50)" json:"PASS_NA"`
	Memo        string      `gorm:"column:MEMO;type:varchar(500)" json:"MEMO"`
	ImgURL      string      `gorm:"column:IMGURL;type:varchar(300)" json:"IMGURL"`
	Audit
}

// TableName 對應既有資料表
func (EventAlert) TableName() string {
	return "EVENTALERT"
}
