package master

import (
	"context"
	"regexp"
	"testing"

	"factory-monitor-service/internal/domain/models"
	"factory-monitor-service/internal/infrastructure/database"
	"factory-monitor-service/internal/test/mockdb"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cameraTemplate = "SELECT * FROM CAMERAINFO A WHERE 1=1 ORDER BY A.SORTNO"

type cameraFilter struct {
	Location string `master:"A.CAMLOCATION,camlocation"`
	Name     string `master:"A.CAMNAME,camname,like"`
	Skip     string
	Status   string `master:"A.STATUS,status,<>"`
}

func TestBuildEmptyFilterKeepsTemplate(t *testing.T) {
	q := New(cameraTemplate).Apply(
		Eq("A.CAMLOCATION", "camlocation", ""),
		Like("A.CAMNAME", "camname", ""),
		In("A.CAMID", "camids", nil),
		Filter(cameraFilter{}),
		Filter((*cameraFilter)(nil)),
	)

	sql, params, ok := q.Build()
	assert.True(t, ok)
	assert.Equal(t, cameraTemplate, sql)
	assert.Empty(t, params)
	assert.Equal(t, "", q.Suffix())
}

func TestBuildBindsValues(t *testing.T) {
	injection := "A' OR '1'='1"
	q := New(cameraTemplate).Apply(
		Eq("A.CAMLOCATION", "camlocation", injection),
		NotEq("A.DISPLAYYN", "displayyn", "N"),
	)

	sql, params, ok := q.Build()
	require.True(t, ok)
	assert.Equal(t, "SELECT * FROM CAMERAINFO A WHERE 1=1 AND A.CAMLOCATION = @camlocation AND A.DISPLAYYN <> @displayyn ORDER BY A.SORTNO", sql)
	assert.NotContains(t, sql, injection)
	assert.Equal(t, injection, params["camlocation"])
	assert.Equal(t, "N", params["displayyn"])
}

func TestBuildFromTaggedFilter(t *testing.T) {
	sql, params, ok := New(cameraTemplate).Apply(Filter(&cameraFilter{
		Location: "A",
		Name:     "gate",
		Skip:     "ignored",
		Status:   "X",
	})).Build()

	require.True(t, ok)
	assert.Contains(t, sql, "WHERE 1=1 AND A.CAMLOCATION = @camlocation AND A.CAMNAME LIKE @camname AND A.STATUS <> @status ORDER BY")
	assert.Equal(t, "%gate%", params["camname"])
	assert.NotContains(t, params, "Skip")
	assert.Len(t, params, 3)
}

func TestBuildMissingMarkerRunsUnfiltered(t *testing.T) {
	template := "SELECT * FROM CAMERAINFO"
	q := New(template).Apply(Eq("CAMLOCATION", "camlocation", "A"))

	sql, _, ok := q.Build()
	assert.False(t, ok)
	assert.Equal(t, template, sql)
}

func TestCustomMarker(t *testing.T) {
	sql, _, ok := New("SELECT * FROM T WHERE 2=2").
		WithMarker("2=2").
		Apply(Gte("T.D", "d", 5)).
		Build()
	require.True(t, ok)
	assert.Equal(t, "SELECT * FROM T WHERE 2=2 AND T.D >= @d", sql)
}

func TestWhenAndRaw(t *testing.T) {
	sql, params, _ := New(cameraTemplate).Apply(
		When(false, Raw("A.X IS NULL", nil)),
		When(true, Raw("A.Y IS NULL", nil)),
		Lt("A.T", "t", 3),
	).Build()
	assert.Contains(t, sql, "1=1 AND A.Y IS NULL AND A.T < @t ORDER BY")
	assert.Equal(t, 3, params["t"])
}

func TestPageSQL(t *testing.T) {
	q := New("SELECT * FROM EVENTALERT A WHERE 1=1").Apply(Eq("A.ALERTCODE", "alertcode", "FIRE"))

	countSQL, _, _ := q.CountSQL()
	assert.Equal(t, "SELECT COUNT(1) FROM (SELECT * FROM EVENTALERT A WHERE 1=1 AND A.ALERTCODE = @alertcode) T_COUNT", countSQL)

	pageSQL, params, _ := q.PageSQL(3, 20)
	assert.True(t, regexp.MustCompile(`LIMIT @page_limit OFFSET @page_offset$`).MatchString(pageSQL))
	assert.Equal(t, 20, params["page_limit"])
	assert.Equal(t, 40, params["page_offset"])

	// PageSQL 不會改動後續 Build 的結果
	sql, params, _ := q.Build()
	assert.NotContains(t, sql, "LIMIT")
	assert.NotContains(t, params, "page_limit")
}

type cameraRow struct {
	CamID   string `gorm:"column:CAMID"`
	CamName string `gorm:"column:CAMNAME"`
}

func TestFindExecutesWithBoundArgs(t *testing.T) {
	db, mock := mockdb.New(t)
	h := database.NewHelper(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM CAMERAINFO A WHERE 1=1 AND A.CAMLOCATION = ? ORDER BY A.SORTNO")).
		WithArgs("A").
		WillReturnRows(sqlmock.NewRows([]string{"CAMID", "CAMNAME"}).
			AddRow("C01", "大門").
			AddRow("C02", "倉庫"))

	rows, err := Find[cameraRow](context.Background(), h, New(cameraTemplate).Apply(Eq("A.CAMLOCATION", "camlocation", "A")))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "倉庫", rows[1].CamName)
}

func TestPageSkipsRowQueryWhenEmpty(t *testing.T) {
	db, mock := mockdb.New(t)
	h := database.NewHelper(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(1) FROM (SELECT * FROM CAMERAINFO A WHERE 1=1 ORDER BY A.SORTNO) T_COUNT")).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(0))

	page, err := Page[cameraRow](context.Background(), h, New(cameraTemplate), models.PaginationQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 0, page.Total)
	assert.Equal(t, 1, page.PageNum)
	assert.Equal(t, 20, page.PageSize)
	assert.Empty(t, page.Rows)
}

func TestPageReturnsRows(t *testing.T) {
	db, mock := mockdb.New(t)
	h := database.NewHelper(db)

	mock.ExpectQuery(`SELECT COUNT\(1\) FROM`).
		WithArgs("A").
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(3))
	mock.ExpectQuery(regexp.QuoteMeta("LIMIT ? OFFSET ?")).
		WithArgs("A", 2, 2).
		WillReturnRows(sqlmock.NewRows([]string{"CAMID", "CAMNAME"}).AddRow("C03", "後門"))

	page, err := Page[cameraRow](context.Background(), h,
		New(cameraTemplate).Apply(Eq("A.CAMLOCATION", "camlocation", "A")),
		models.PaginationQuery{PageNum: 2, PageSize: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, page.Total)
	require.Len(t, page.Rows, 1)
	assert.Equal(t, "C03", page.Rows[0].CamID)
}
