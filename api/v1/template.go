package v1

import (
	"time"

	"avdportal/internal/model"
)

// CreateTemplateRequest 创建模板请求，状态固定为 DRAFT
type CreateTemplateRequest struct {
	Name             string         `json:"name" binding:"required,max=200" example:"finance-pooled-weu"`
	Description      string         `json:"description" example:"Finance pooled desktops"`
	Environment      string         `json:"environment" binding:"required,oneof=PILOT DEVELOPMENT STAGING PRODUCTION" example:"PILOT"`
	BusinessUnitID   int64          `json:"business_unit_id" binding:"required,min=1" example:"1"`
	ContactID        *int64         `json:"contact_id,omitempty" binding:"omitempty,min=1"`
	ContactName      string         `json:"contact_name" binding:"max=200"`
	ContactEmail     string         `json:"contact_email" binding:"omitempty,email"`
	ContactPhone     string         `json:"contact_phone" binding:"max=50"`
	NamingPrefix     string         `json:"naming_prefix" binding:"max=32" example:"FINWEU"`
	NamingPattern    string         `json:"naming_pattern" binding:"max=200" example:"{prefix}-{index}"`
	HostPoolType     string         `json:"host_pool_type" binding:"omitempty,oneof=POOLED PERSONAL" example:"POOLED"`
	LoadBalancerType string         `json:"load_balancer_type" binding:"omitempty,oneof=BREADTH_FIRST DEPTH_FIRST PERSISTENT" example:"BREADTH_FIRST"`
	MaxSessionLimit  int            `json:"max_session_limit" binding:"min=0,max=999999" example:"10"`
	Regions          []string       `json:"regions" binding:"required,min=1,unique,dive,required" example:"westeurope,northeurope"`
	PrimaryRegion    string         `json:"primary_region" binding:"required,primary_in_regions" example:"westeurope"`
	BaseImageID      *int64         `json:"base_image_id,omitempty" binding:"omitempty,min=1"`
	Tags             *model.Payload `json:"tags,omitempty" swaggertype:"object"`
}

// UpdateTemplateRequest 部分更新；status 只能通过状态接口修改
type UpdateTemplateRequest struct {
	Name             *string        `json:"name,omitempty" binding:"omitempty,min=1,max=200"`
	Description      *string        `json:"description,omitempty"`
	Status           *string        `json:"status,omitempty"`
	Environment      *string        `json:"environment,omitempty" binding:"omitempty,oneof=PILOT DEVELOPMENT STAGING PRODUCTION"`
	BusinessUnitID   *int64         `json:"business_unit_id,omitempty" binding:"omitempty,min=1"`
	ContactID        *int64         `json:"contact_id,omitempty" binding:"omitnil,min=0"` // 0 解除关联
	ContactName      *string        `json:"contact_name,omitempty" binding:"omitempty,max=200"`
	ContactEmail     *string        `json:"contact_email,omitempty" binding:"omitempty,email"`
	ContactPhone     *string        `json:"contact_phone,omitempty" binding:"omitempty,max=50"`
	NamingPrefix     *string        `json:"naming_prefix,omitempty" binding:"omitempty,max=32"`
	NamingPattern    *string        `json:"naming_pattern,omitempty" binding:"omitempty,max=200"`
	HostPoolType     *string        `json:"host_pool_type,omitempty" binding:"omitempty,oneof=POOLED PERSONAL"`
	LoadBalancerType *string        `json:"load_balancer_type,omitempty" binding:"omitempty,oneof=BREADTH_FIRST DEPTH_FIRST PERSISTENT"`
	MaxSessionLimit  *int           `json:"max_session_limit,omitempty" binding:"omitempty,min=0,max=999999"`
	Regions          []string       `json:"regions,omitempty" binding:"omitempty,min=1,unique,dive,required"`
	PrimaryRegion    *string        `json:"primary_region,omitempty" binding:"omitempty,min=1"`
	BaseImageID      *int64         `json:"base_image_id,omitempty" binding:"omitnil,min=0"` // 0 解除关联
	Tags             *model.Payload `json:"tags,omitempty" swaggertype:"object"`
}

// UpdateTemplateStatusRequest 状态流转请求
type UpdateTemplateStatusRequest struct {
	Status  string `json:"status" binding:"required,oneof=DRAFT IN_REVIEW APPROVED DEPLOYED DEPRECATED" example:"IN_REVIEW"`
	Comment string `json:"comment" binding:"max=2000" example:"ready for review"`
}

type ListTemplateRequest struct {
	Page           int    `form:"page" example:"1"`
	PageSize       int    `form:"page_size" binding:"omitempty,max=100" example:"10"`
	Status         string `form:"status" binding:"omitempty,oneof=DRAFT IN_REVIEW APPROVED DEPLOYED DEPRECATED"`
	Environment    string `form:"environment" binding:"omitempty,oneof=PILOT DEVELOPMENT STAGING PRODUCTION"`
	BusinessUnitID int64  `form:"business_unit_id"`
	Keyword        string `form:"keyword"`
}

type ListTemplateResponse struct {
	Response
	Data ListTemplateResponseData
}

type ListTemplateResponseData struct {
	Total int64          `json:"total"`
	List  []TemplateItem `json:"list"`
}

type TemplateItem struct {
	Id               int64      `json:"id"`
	Name             string     `json:"name"`
	Status           string     `json:"status"`
	Environment      string     `json:"environment"`
	BusinessUnitID   int64      `json:"business_unit_id"`
	BusinessUnitName string     `json:"business_unit_name"` // 从关联表查询填充
	PrimaryRegion    string     `json:"primary_region"`
	RequestDate      *time.Time `json:"request_date"`
	UpdateTime       time.Time  `json:"update_time"`
}

type GetTemplateResponse struct {
	Response
	Data TemplateDetail
}

type TemplateDetail struct {
	Id                 int64                     `json:"id"`
	Name               string                    `json:"name"`
	Description        string                    `json:"description"`
	Status             string                    `json:"status"`
	Environment        string                    `json:"environment"`
	RequestDate        *time.Time                `json:"request_date"`
	ApprovedDate       *time.Time                `json:"approved_date"`
	DeployedDate       *time.Time                `json:"deployed_date"`
	DeprecatedDate     *time.Time                `json:"deprecated_date"`
	BusinessUnitID     int64                     `json:"business_unit_id"`
	BusinessUnitName   string                    `json:"business_unit_name"`
	ContactID          *int64                    `json:"contact_id"`
	ContactName        string                    `json:"contact_name"`
	ContactEmail       string                    `json:"contact_email"`
	ContactPhone       string                    `json:"contact_phone"`
	NamingPrefix       string                    `json:"naming_prefix"`
	NamingPattern      string                    `json:"naming_pattern"`
	HostPoolType       string                    `json:"host_pool_type"`
	LoadBalancerType   string                    `json:"load_balancer_type"`
	MaxSessionLimit    int                       `json:"max_session_limit"`
	Regions            []string                  `json:"regions"`
	PrimaryRegion      string                    `json:"primary_region"`
	BaseImageID        *int64                    `json:"base_image_id"`
	BaseImageName      string                    `json:"base_image_name"`
	Tags               *model.Payload            `json:"tags" swaggertype:"object"`
	Applications       []TemplateApplicationItem `json:"applications"`
	AllowedTransitions []string                  `json:"allowed_transitions"`
	CreatedById        string                    `json:"created_by_id"`
	UpdatedById        string                    `json:"updated_by_id"`
	CreateTime         time.Time                 `json:"create_time"`
	UpdateTime         time.Time                 `json:"update_time"`
}

type ListTransitionsResponseData struct {
	Status             string   `json:"status"`
	AllowedTransitions []string `json:"allowed_transitions"`
}

// ListTemplateHistoryResponseData 模板变更日志，按时间倒序
type ListTemplateHistoryResponseData struct {
	TemplateID int64                   `json:"template_id"`
	Total      int64                   `json:"total"`
	List       []model.TemplateHistory `json:"list"`
}

type ListTemplateHistoryResponse struct {
	Response
	Data ListTemplateHistoryResponseData
}
