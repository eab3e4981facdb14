package model

import "time"

// Application 可安装到会话主机上的软件包
type Application struct {
	Id             int64     `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Name           string    `json:"name" gorm:"column:name;size:200;not null"`
	PackageName    string    `json:"package_name" gorm:"column:package_name;size:200;not null;uniqueIndex"`
	Version        string    `json:"version" gorm:"column:version;size:64"`
	Publisher      string    `json:"publisher" gorm:"column:publisher;size:200"`
	Description    string    `json:"description" gorm:"column:description;type:text"`
	InstallCommand string    `json:"install_command" gorm:"column:install_command;type:text"`
	IsActive       bool      `json:"is_active" gorm:"column:is_active;not null"`
	CreateTime     time.Time `json:"create_time" gorm:"column:gmt_create;autoCreateTime"`
	UpdateTime     time.Time `json:"update_time" gorm:"column:gmt_modified;autoUpdateTime"`
}

func (Application) TableName() string {
	return "application"
}
