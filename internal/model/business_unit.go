package model

import "time"

type BusinessUnit struct {
	Id          int64     `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Code        string    `json:"code" gorm:"column:code;size:32;not null;uniqueIndex"`
	Name        string    `json:"name" gorm:"column:name;size:200;not null"`
	Description string    `json:"description" gorm:"column:description;type:text"`
	CostCenter  string    `json:"cost_center" gorm:"column:cost_center;size:64"`
	IsActive    bool      `json:"is_active" gorm:"column:is_active;not null"`
	CreateTime  time.Time `json:"create_time" gorm:"column:gmt_create;autoCreateTime"`
	UpdateTime  time.Time `json:"update_time" gorm:"column:gmt_modified;autoUpdateTime"`
}

func (BusinessUnit) TableName() string {
	return "business_unit"
}
