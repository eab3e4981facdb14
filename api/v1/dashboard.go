package v1

import "time"

type DashboardOverviewRequest struct {
	BusinessUnitID int64 `form:"business_unit_id" binding:"omitempty,min=1"` // 为空统计全部
}

type DashboardOverviewData struct {
	BusinessUnitID int64                     `json:"business_unit_id,omitempty"`
	Templates      DashboardTemplateSummary  `json:"templates"`
	Applications   DashboardApprovalSummary  `json:"applications"`
	MasterData     DashboardMasterDataCounts `json:"master_data"`
}

// DashboardTemplateSummary by_status 始终包含全部状态，没有模板的状态计 0
type DashboardTemplateSummary struct {
	Total          int64            `json:"total"`
	ByStatus       map[string]int64 `json:"by_status"`
	ByEnvironment  map[string]int64 `json:"by_environment"`
	AwaitingReview int64            `json:"awaiting_review"`
	Active         int64            `json:"active"` // APPROVED + DEPLOYED
}

type DashboardApprovalSummary struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Denied   int64 `json:"denied"`
}

type DashboardMasterDataCounts struct {
	BusinessUnits       int64 `json:"business_units"`
	ActiveBusinessUnits int64 `json:"active_business_units"`
	Contacts            int64 `json:"contacts"`
	Applications        int64 `json:"applications"`
	ActiveApplications  int64 `json:"active_applications"`
	BaseImages          int64 `json:"base_images"`
}

type DashboardOverviewResponse struct {
	Response
	Data DashboardOverviewData
}

type DashboardOperationsRequest struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=50" example:"10"`
}

type DashboardOperationsData struct {
	Counts map[string]int64 `json:"counts"` // 按动作统计
	Items  []OperationItem  `json:"items"`
}

type OperationItem struct {
	Action     string    `json:"action"`
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id"`
	EntityName string    `json:"entity_name"`
	AdminName  string    `json:"admin_name"`
	CreateTime time.Time `json:"create_time"`
}

type DashboardOperationsResponse struct {
	Response
	Data DashboardOperationsData
}
