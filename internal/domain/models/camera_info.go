package models

// CameraInfo 攝影機基本資料
type CameraInfo struct {
	CamArea     string `gorm:"column:CAMAREA;primaryKey;type:varchar(20)" json:"CAMAREA"`
	CamID       string `gorm:"column:CAMID;primaryKey;type:varchar(20)" json:"CAMID"`
	CamName     string `gorm:"column:CAMNAME;type:varchar(100)" json:"CAMNAME"`
	CamLocation string `gorm:"column:CAMLOCATION;type:varchar(50);index" json:"CAMLOCATION"`
	DisplayYN   string `gorm:"column:DISPLAYYN;type:char(1);default:Y" json:"DISPLAYYN"`
	ImgURL      string `gorm:"column:IMGURL;type:varchar(300)" json:"IMGURL"`
	VideoURL    string `gorm:"column:VIDEOURL;type:varchar(300)" json:"VIDEOURL"`
	RtspURL     string `gorm:"column:RTSPURL;type:varchar(300)" json:"RTSPURL"`
	Color       string `gorm:"column:COLOR;type:varchar(20)" json:"COLOR"`
	SortNo      int    `gorm:"column:SORTNO" json:"SORTNO"`
	Audit
}

// TableName 對應既有資料表
func (CameraInfo) TableName() string {
	return "CAMERAINFO"
}
