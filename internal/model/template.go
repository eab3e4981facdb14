package model

import (
	"time"

	"gorm.io/datatypes"
)

// TemplateStatus 模板生命周期状态
type TemplateStatus string

const (
	TemplateStatusDraft      TemplateStatus = "DRAFT"
	TemplateStatusInReview   TemplateStatus = "IN_REVIEW"
	TemplateStatusApproved   TemplateStatus = "APPROVED"
	TemplateStatusDeployed   TemplateStatus = "DEPLOYED"
	TemplateStatusDeprecated TemplateStatus = "DEPRECATED"
)

// TemplateStatuses 全部状态，按生命周期顺序
var TemplateStatuses = []TemplateStatus{
	TemplateStatusDraft,
	TemplateStatusInReview,
	TemplateStatusApproved,
	TemplateStatusDeployed,
	TemplateStatusDeprecated,
}

func (s TemplateStatus) Valid() bool {
	for _, v := range TemplateStatuses {
		if v == s {
			return true
		}
	}
	return false
}

type Environment string

const (
	EnvironmentPilot       Environment = "PILOT"
	EnvironmentDevelopment Environment = "DEVELOPMENT"
	EnvironmentStaging     Environment = "STAGING"
	EnvironmentProduction  Environment = "PRODUCTION"
)

type HostPoolType string

const (
	HostPoolTypePooled   HostPoolType = "POOLED"
	HostPoolTypePersonal HostPoolType = "PERSONAL"
)

type LoadBalancerType string

const (
	LoadBalancerBreadthFirst LoadBalancerType = "BREADTH_FIRST"
	LoadBalancerDepthFirst   LoadBalancerType = "DEPTH_FIRST"
	LoadBalancerPersistent   LoadBalancerType = "PERSISTENT"
)

// Template AVD 主机池配置模板
type Template struct {
	Id          int64          `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Name        string         `json:"name" gorm:"column:name;size:200;not null;uniqueIndex"`
	Description string         `json:"description" gorm:"column:description;type:text"`
	Status      TemplateStatus `json:"status" gorm:"column:status;size:32;not null;default:'DRAFT';index"`
	Environment Environment    `json:"environment" gorm:"column:environment;size:32;not null;index"`

	// 生命周期时间，只写一次，不清空
	RequestDate    *time.Time `json:"request_date" gorm:"column:request_date"`
	ApprovedDate   *time.Time `json:"approved_date" gorm:"column:approved_date"`
	DeployedDate   *time.Time `json:"deployed_date" gorm:"column:deployed_date"`
	DeprecatedDate *time.Time `json:"deprecated_date" gorm:"column:deprecated_date"`

	BusinessUnitID int64  `json:"business_unit_id" gorm:"column:business_unit_id;not null;index"`
	ContactID      *int64 `json:"contact_id" gorm:"column:contact_id;index"`
	ContactName    string `json:"contact_name" gorm:"column:contact_name;size:200"`
	ContactEmail   string `json:"contact_email" gorm:"column:contact_email;size:200"`
	ContactPhone   string `json:"contact_phone" gorm:"column:contact_phone;size:50"`

	NamingPrefix     string                      `json:"naming_prefix" gorm:"column:naming_prefix;size:32"`
	NamingPattern    string                      `json:"naming_pattern" gorm:"column:naming_pattern;size:200"`
	HostPoolType     HostPoolType                `json:"host_pool_type" gorm:"column:host_pool_type;size:32"`
	LoadBalancerType LoadBalancerType            `json:"load_balancer_type" gorm:"column:load_balancer_type;size:32"`
	MaxSessionLimit  int                         `json:"max_session_limit" gorm:"column:max_session_limit;default:0"`
	Regions          datatypes.JSONSlice[string] `json:"regions" gorm:"column:regions"`
	PrimaryRegion    string                      `json:"primary_region" gorm:"column:primary_region;size:64"`
	BaseImageID      *int64                      `json:"base_image_id" gorm:"column:base_image_id;index"`
	Tags             *Payload                    `json:"tags" gorm:"column:tags"`

	CreatedById string    `json:"created_by_id" gorm:"column:created_by_id;size:64"`
	UpdatedById string    `json:"updated_by_id" gorm:"column:updated_by_id;size:64"`
	CreateTime  time.Time `json:"create_time" gorm:"column:gmt_create;autoCreateTime"`
	UpdateTime  time.Time `json:"update_time" gorm:"column:gmt_modified;autoUpdateTime"`
}

func (Template) TableName() string {
	return "template"
}

// HasRegion 判断区域是否在模板区域列表中
func (t *Template) HasRegion(region string) bool {
	for _, r := range t.Regions {
		if r == region {
			return true
		}
	}
	return false
}
