package models

// AlertType 異常類別
type AlertType struct {
	AlertCode string `gorm:"column:ALERTCODE;primaryKey;type:varchar(20)" json:"ALERTCODE"`
	AlertName string `gorm:"column:ALERTNAME;type:varchar(50)" json:"ALERTNAME"`
	Color     string `gorm:"column:COLOR;type:varchar(20)" json:"COLOR"`
	SortNo    int    `gorm:"column:SORTNO" json:"SORTNO"`
	DisplayYN string `gorm:"column:DISPLAYYN;type:char(1);default:Y" json:"DISPLAYYN"`
	Audit
}

// TableName 對應既有資料表
func (AlertType) TableName() string {
	return "ALERTTYPE"
}

// 通知對象類型
const (
	NotifyTypePerson = "1" // 人員
	NotifyTypeDept   = "2" // 部門
)

// NotifyTypeName 通知對象類型名稱
func NotifyTypeName(t string) string {
	switch t {
	case NotifyTypePerson:
		return "人員"
	case NotifyTypeDept:
		return "部門"
	}
	return ""
}

// AlertNotifySet 異常類別的通知對象
type AlertNotifySet struct {
	AlertCode  string `gorm:"column:ALERTCODE;primaryKey;type:varchar(20)" json:"ALERTCODE"`
	NotifyType string `gorm:"column:NOTIFYTYPE;primaryKey;type:varchar(2)" json:"NOTIFYTYPE"`
	NotifyID   string `gorm:"column:NOTIFYID;primaryKey;type:varchar(20)" json:"NOTIFYID"`
	Audit
}

// TableName 對應既有資料表
func (AlertNotifySet) TableName() string {
	return "ALERTNOTIFYSET"
}
