package v1

import "time"

type AttachApplicationRequest struct {
	ApplicationID   int64  `json:"application_id" binding:"required,min=1" example:"3"`
	InstallOrder    *int   `json:"install_order,omitempty" binding:"omitempty,min=1" example:"1"` // 为空时追加到末尾
	ApprovalStatus  string `json:"approval_status" binding:"omitempty,oneof=PENDING APPROVED DENIED" example:"PENDING"`
	OverrideVersion string `json:"override_version" binding:"max=64"`
	OverrideCommand string `json:"override_command"`
	Notes           string `json:"notes"`
}

type UpdateTemplateApplicationRequest struct {
	ApprovalStatus  *string `json:"approval_status,omitempty" binding:"omitempty,oneof=PENDING APPROVED DENIED"`
	OverrideVersion *string `json:"override_version,omitempty" binding:"omitempty,max=64"`
	OverrideCommand *string `json:"override_command,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

// ReorderApplicationsRequest application_ids 的顺序即新的安装顺序
type ReorderApplicationsRequest struct {
	ApplicationIDs []int64 `json:"application_ids" binding:"required,min=1,unique,dive,min=1" example:"3,1,2"`
}

type TemplateApplicationItem struct {
	Id              int64     `json:"id"`
	TemplateID      int64     `json:"template_id"`
	ApplicationID   int64     `json:"application_id"`
	ApplicationName string    `json:"application_name"`
	PackageName     string    `json:"package_name"`
	Version         string    `json:"version"`
	InstallOrder    int       `json:"install_order"`
	ApprovalStatus  string    `json:"approval_status"`
	OverrideVersion string    `json:"override_version"`
	OverrideCommand string    `json:"override_command"`
	Notes           string    `json:"notes"`
	CreateTime      time.Time `json:"create_time"`
}

type ListTemplateApplicationsResponseData struct {
	TemplateID int64                     `json:"template_id"`
	Total      int64                     `json:"total"`
	List       []TemplateApplicationItem `json:"list"`
}

type ListTemplateApplicationsResponse struct {
	Response
	Data ListTemplateApplicationsResponseData
}
