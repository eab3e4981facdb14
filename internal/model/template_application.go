package model

import "time"

type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "PENDING"
	ApprovalStatusApproved ApprovalStatus = "APPROVED"
	ApprovalStatusDenied   ApprovalStatus = "DENIED"
)

// TemplateApplication 模板与应用的关联，install_order 在同一模板内唯一
type TemplateApplication struct {
	Id              int64          `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	TemplateID      int64          `json:"template_id" gorm:"column:template_id;not null;uniqueIndex:uk_template_app;uniqueIndex:uk_template_order"`
	ApplicationID   int64          `json:"application_id" gorm:"column:application_id;not null;uniqueIndex:uk_template_app;index"`
	InstallOrder    int            `json:"install_order" gorm:"column:install_order;not null;uniqueIndex:uk_template_order"`
	ApprovalStatus  ApprovalStatus `json:"approval_status" gorm:"column:approval_status;size:32;not null;default:'PENDING'"`
	OverrideVersion string         `json:"override_version" gorm:"column:override_version;size:64"`
	OverrideCommand string         `json:"override_command" gorm:"column:override_command;type:text"`
	Notes           string         `json:"notes" gorm:"column:notes;type:text"`
	CreatedById     string         `json:"created_by_id" gorm:"column:created_by_id;size:64"`
	CreateTime      time.Time      `json:"create_time" gorm:"column:gmt_create;autoCreateTime"`
	UpdateTime      time.Time      `json:"update_time" gorm:"column:gmt_modified;autoUpdateTime"`

	Application *Application `json:"application,omitempty" gorm:"foreignKey:ApplicationID"`
}

func (TemplateApplication) TableName() string {
	return "template_application"
}
