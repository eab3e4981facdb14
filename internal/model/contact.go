package model

import "time"

type Contact struct {
	Id             int64     `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Name           string    `json:"name" gorm:"column:name;size:200;not null"`
	Email          string    `json:"email" gorm:"column:email;size:200;not null;uniqueIndex"`
	Phone          string    `json:"phone" gorm:"column:phone;size:50"`
	Title          string    `json:"title" gorm:"column:title;size:100"`
	BusinessUnitID *int64    `json:"business_unit_id" gorm:"column:business_unit_id;index"`
	IsActive       bool      `json:"is_active" gorm:"column:is_active;not null"`
	CreateTime     time.Time `json:"create_time" gorm:"column:gmt_create;autoCreateTime"`
	UpdateTime     time.Time `json:"update_time" gorm:"column:gmt_modified;autoUpdateTime"`
}

func (Contact) TableName() string {
	return "contact"
}
