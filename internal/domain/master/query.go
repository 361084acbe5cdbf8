// Package master 組合查詢條件：在基礎 SQL 範本的 1=1 標記後面依序附加
// AND 條件，所有值一律以 @name 具名參數綁定。
package master

import (
	"reflect"
	"strings"
	"time"

	"factory-monitor-service/internal/infrastructure/database"
)

// DefaultMarker 範本中的條件標記
const DefaultMarker = "1=1"

// Query 基礎範本加上依序套用的條件
type Query struct {
	template string
	marker   string
	clauses  []string
	params   database.Params
}

// Predicate 條件產生函式，值為空時不附加任何條件
type Predicate func(q *Query)

// New 以範本建立查詢
func New(template string) *Query {
	return &Query{
		template: template,
		marker:   DefaultMarker,
		params:   database.Params{},
	}
}

// WithMarker 更換條件標記
func (q *Query) WithMarker(marker string) *Query {
	q.marker = marker
	return q
}

// Apply 依序套用條件
func (q *Query) Apply(preds ...Predicate) *Query {
	for _, p := range preds {
		if p != nil {
			p(q)
		}
	}
	return q
}

// Where 直接附加一段條件
func (q *Query) Where(clause string, params database.Params) *Query {
	q.clauses = append(q.clauses, clause)
	for k, v := range params {
		q.params[k] = v
	}
	return q
}

// Bind 綁定範本本身用到的參數，不附加條件
func (q *Query) Bind(params database.Params) *Query {
	for k, v := range params {
		q.params[k] = v
	}
	return q
}

// Suffix 附加在標記後的條件字串，沒有條件時為空字串
func (q *Query) Suffix() string {
	if len(q.clauses) == 0 {
		return ""
	}
	return " AND " + strings.Join(q.clauses, " AND ")
}

// Params 目前綁定的參數副本
func (q *Query) Params() database.Params {
	out := make(database.Params, len(q.params))
	for k, v := range q.params {
		out[k] = v
	}
	return out
}

// HasMarker 範本是否含有條件標記
func (q *Query) HasMarker() bool {
	return strings.Contains(q.template, q.marker)
}

// Build 以 marker+suffix 取代範本中的標記。
// 範本沒有標記時原樣回傳 (不套用任何條件)，ok 為 false。
func (q *Query) Build() (sql string, params database.Params, ok bool) {
	if !q.HasMarker() {
		return q.template, q.Params(), false
	}
	suffix := q.Suffix()
	if suffix == "" {
		return q.template, q.Params(), true
	}
	return strings.ReplaceAll(q.template, q.marker, q.marker+suffix), q.Params(), true
}

// CountSQL 計算總筆數的查詢
func (q *Query) CountSQL() (string, database.Params, bool) {
	sql, params, ok := q.Build()
	return "SELECT COUNT(1) FROM (" + sql + ") T_COUNT", params, ok
}

// PageSQL 分頁查詢，pageNum 由 1 起算
func (q *Query) PageSQL(pageNum, pageSize int) (string, database.Params, bool) {
	sql, params, ok := q.Build()
	params["page_limit"] = pageSize
	params["page_offset"] = (pageNum - 1) * pageSize
	return sql + " LIMIT @page_limit OFFSET @page_offset", params, ok
}

func compare(op, column, param string, value interface{}) Predicate {
	return func(q *Query) {
		if isEmpty(value) {
			return
		}
		q.Where(column+" "+op+" @"+param, database.Params{param: value})
	}
}

// Eq column = @param
func Eq(column, param string, value interface{}) Predicate {
	return compare("=", column, param, value)
}

// NotEq column <> @param
func NotEq(column, param string, value interface{}) Predicate {
	return compare("<>", column, param, value)
}

// Gte column >= @param
func Gte(column, param string, value interface{}) Predicate {
	return compare(">=", column, param, value)
}

// Lt column < @param
func Lt(column, param string, value interface{}) Predicate {
	return compare("<", column, param, value)
}

// Like column LIKE @param，值前後加上 %
func Like(column, param, value string) Predicate {
	return func(q *Query) {
		if value == "" {
			return
		}
		q.Where(column+" LIKE @"+param, database.Params{param: "%" + value + "%"})
	}
}

// In column IN @param
func In(column, param string, values []string) Predicate {
	return func(q *Query) {
		if len(values) == 0 {
			return
		}
		q.Where(column+" IN @"+param, database.Params{param: values})
	}
}

// Raw 一律附加的條件
func Raw(clause string, params database.Params) Predicate {
	return func(q *Query) {
		q.Where(clause, params)
	}
}

// When cond 成立時才套用 p
func When(cond bool, p Predicate) Predicate {
	if !cond {
		return nil
	}
	return p
}

// Filter 依 struct 欄位的 master tag 產生條件，格式 `master:"欄位,參數[,運算子]"`，
// 運算子可為 =、<>、>=、<、like，預設 =。
func Filter(filter interface{}) Predicate {
	return func(q *Query) {
		rv := reflect.ValueOf(filter)
		for rv.Kind() == reflect.Ptr {
			if rv.IsNil() {
				return
			}
			rv = rv.Elem()
		}
		if rv.Kind() != reflect.Struct {
			return
		}
		rt := rv.Type()
		for i := 0; i < rt.NumField(); i++ {
			tag := rt.Field(i).Tag.Get("master")
			if tag == "" || tag == "-" || !rt.Field(i).IsExported() {
				continue
			}
			parts := strings.Split(tag, ",")
			if len(parts) < 2 {
				continue
			}
			op := "="
			if len(parts) > 2 {
				op = strings.ToLower(strings.TrimSpace(parts[2]))
			}
			column, param := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
			value := rv.Field(i).Interface()
			switch op {
			case "like":
				s, _ := value.(string)
				Like(column, param, s)(q)
			case "=", "<>", ">=", "<":
				compare(op, column, param, value)(q)
			}
		}
	}
}

func isEmpty(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case *string:
		return v == nil || *v == ""
	case time.Time:
		return v.IsZero()
	case *time.Time:
		return v == nil || v.IsZero()
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	case reflect.Slice, reflect.Map:
		return rv.Len() == 0
	}
	return false
}
