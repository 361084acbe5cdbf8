package models

import "time"

// Person 人員帳號 (SYSPASMI)，同時作為通知對象
type Person struct {
	PassID        string     `gorm:"column:PASS_ID;primaryKey;type:varchar(20)" json:"PASS_ID"`
	PassNa        string     `gorm:"column:PASS_NA;type:varchar(50)" json:"PASS_NA"`
	PassPwd       string     `gorm:"column:PASS_PWD;type:varchar(100)" json:"-"`
	DeptNo        string     `gorm:"column:DEPT_NO;type:varchar(20);index" json:"DEPT_NO"`
	DeptNa        string     `gorm:"column:DEPT_NA;type:varchar(50)" json:"DEPT_NA"`
	Email         string     `gorm:"column:EMAIL;type:varchar(100)" json:"EMAIL"`
	Status        string     `gorm:"column:STATUS;type:char(1);default:Y" json:"STATUS"`
	AccessToken   string     `gorm:"column:ACCESS_TOKEN;type:text" json:"-"`
	RefreshToken  string     `gorm:"column:REFRESH_TOKEN;type:varchar(100)" json:"-"`
	RefreshExpire *time.Time `gorm:"column:REFRESH_EXPIRE" json:"-"`
	Audit
}

// TableName 對應既有資料表
func (Person) TableName() string {
	return "SYSPASMI"
}
