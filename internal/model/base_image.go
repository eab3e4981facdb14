package model

import "time"

// BaseImage 会话主机基础镜像（Marketplace 或 Compute Gallery）
type BaseImage struct {
	Id          int64     `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"column:name;size:200;not null;uniqueIndex"`
	Publisher   string    `json:"publisher" gorm:"column:publisher;size:200"`
	Offer       string    `json:"offer" gorm:"column:offer;size:200"`
	Sku         string    `json:"sku" gorm:"column:sku;size:200"`
	Version     string    `json:"version" gorm:"column:version;size:64"`
	OsType      string    `json:"os_type" gorm:"column:os_type;size:32"`
	Description string    `json:"description" gorm:"column:description;type:text"`
	IsActive    bool      `json:"is_active" gorm:"column:is_active;not null"`
	CreateTime  time.Time `json:"create_time" gorm:"column:gmt_create;autoCreateTime"`
	UpdateTime  time.Time `json:"update_time" gorm:"column:gmt_modified;autoUpdateTime"`
}

func (BaseImage) TableName() string {
	return "base_image"
}
