package services

import (
	"context"

	"factory-monitor-service/internal/infrastructure/database"
)

// 下拉選單共用的參考資料

// Option 代碼與名稱
type Option struct {
	Code  string `json:"CODE" gorm:"column:CODE"`
	Name  string `json:"NAME" gorm:"column:NAME"`
	Color string `json:"COLOR,omitempty" gorm:"column:COLOR"`
}

// CameraOption 攝影機選項
type CameraOption struct {
	CamArea     string `json:"CAMAREA" gorm:"column:CAMAREA"`
	CamID       string `json:"CAMID" gorm:"column:CAMID"`
	CamName     string `json:"CAMNAME" gorm:"column:CAMNAME"`
	CamLocation string `json:"CAMLOCATION" gorm:"column:CAMLOCATION"`
}

func listLocations(ctx context.Context, h *database.Helper) ([]string, error) {
	var rows []struct {
		CamLocation string `gorm:"column:CAMLOCATION"`
	}
	if err := h.Query(ctx, &rows,
		"SELECT DISTINCT CAMLOCATION FROM CAMERAINFO WHERE DISPLAYYN = 'Y' ORDER BY CAMLOCATION", nil); err != nil {
		return nil, err
	}
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.CamLocation)
	}
	return out, nil
}

func listAlertTypeOptions(ctx context.Context, h *database.Helper) ([]Option, error) {
	rows := make([]Option, 0)
	err := h.Query(ctx, &rows,
		"SELECT ALERTCODE AS CODE, ALERTNAME AS NAME, COLOR FROM ALERTTYPE WHERE DISPLAYYN = 'Y' ORDER BY SORTNO, ALERTCODE", nil)
	return rows, err
}

func listCameras(ctx context.Context, h *database.Helper) ([]CameraOption, error) {
	rows := make([]CameraOption, 0)
	err := h.Query(ctx, &rows,
		"SELECT CAMAREA, CAMID, CAMNAME, CAMLOCATION FROM CAMERAINFO WHERE DISPLAYYN = 'Y' ORDER BY SORTNO, CAMAREA, CAMID", nil)
	return rows, err
}
