package v1

import "avdportal/internal/model"

// 主数据（业务单元、联系人、应用、基础镜像）API 定义

type ListMasterDataRequest struct {
	Page     int    `form:"page" example:"1"`
	PageSize int    `form:"page_size" binding:"omitempty,max=100" example:"10"`
	Keyword  string `form:"keyword"`
	IsActive *bool  `form:"is_active"`
}

type CreateBusinessUnitRequest struct {
	Code        string `json:"code" binding:"required,max=32" example:"FIN"`
	Name        string `json:"name" binding:"required,max=200" example:"Finance"`
	Description string `json:"description"`
	CostCenter  string `json:"cost_center" binding:"max=64"`
	IsActive    *bool  `json:"is_active,omitempty"`
}

type UpdateBusinessUnitRequest struct {
	Code        *string `json:"code,omitempty" binding:"omitempty,min=1,max=32"`
	Name        *string `json:"name,omitempty" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty"`
	CostCenter  *string `json:"cost_center,omitempty" binding:"omitempty,max=64"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

type ListBusinessUnitResponseData struct {
	Total int64                `json:"total"`
	List  []model.BusinessUnit `json:"list"`
}

type CreateContactRequest struct {
	Name           string `json:"name" binding:"required,max=200" example:"Jane Doe"`
	Email          string `json:"email" binding:"required,email" example:"jane@example.com"`
	Phone          string `json:"phone" binding:"max=50"`
	Title          string `json:"title" binding:"max=100"`
	BusinessUnitID *int64 `json:"business_unit_id,omitempty" binding:"omitempty,min=1"`
	IsActive       *bool  `json:"is_active,omitempty"`
}

type UpdateContactRequest struct {
	Name           *string `json:"name,omitempty" binding:"omitempty,min=1,max=200"`
	Email          *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone          *string `json:"phone,omitempty" binding:"omitempty,max=50"`
	Title          *string `json:"title,omitempty" binding:"omitempty,max=100"`
	BusinessUnitID *int64  `json:"business_unit_id,omitempty" binding:"omitempty,min=1"`
	IsActive       *bool   `json:"is_active,omitempty"`
}

type ListContactResponseData struct {
	Total int64           `json:"total"`
	List  []model.Contact `json:"list"`
}

type CreateApplicationRequest struct {
	Name           string `json:"name" binding:"required,max=200" example:"Microsoft Teams"`
	PackageName    string `json:"package_name" binding:"required,max=200" example:"Microsoft.Teams"`
	Version        string `json:"version" binding:"max=64" example:"24.1"`
	Publisher      string `json:"publisher" binding:"max=200"`
	Description    string `json:"description"`
	InstallCommand string `json:"install_command"`
	IsActive       *bool  `json:"is_active,omitempty"`
}

type UpdateApplicationRequest struct {
	Name           *string `json:"name,omitempty" binding:"omitempty,min=1,max=200"`
	PackageName    *string `json:"package_name,omitempty" binding:"omitempty,min=1,max=200"`
	Version        *string `json:"version,omitempty" binding:"omitempty,max=64"`
	Publisher      *string `json:"publisher,omitempty" binding:"omitempty,max=200"`
	Description    *string `json:"description,omitempty"`
	InstallCommand *string `json:"install_command,omitempty"`
	IsActive       *bool   `json:"is_active,omitempty"`
}

type ListApplicationResponseData struct {
	Total int64               `json:"total"`
	List  []model.Application `json:"list"`
}

type CreateBaseImageRequest struct {
	Name        string `json:"name" binding:"required,max=200" example:"win11-23h2-avd"`
	Publisher   string `json:"publisher" binding:"max=200" example:"MicrosoftWindowsDesktop"`
	Offer       string `json:"offer" binding:"max=200" example:"windows-11"`
	Sku         string `json:"sku" binding:"max=200" example:"win11-23h2-avd"`
	Version     string `json:"version" binding:"max=64" example:"latest"`
	OsType      string `json:"os_type" binding:"omitempty,oneof=Windows Linux" example:"Windows"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active,omitempty"`
}

type UpdateBaseImageRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,min=1,max=200"`
	Publisher   *string `json:"publisher,omitempty" binding:"omitempty,max=200"`
	Offer       *string `json:"offer,omitempty" binding:"omitempty,max=200"`
	Sku         *string `json:"sku,omitempty" binding:"omitempty,max=200"`
	Version     *string `json:"version,omitempty" binding:"omitempty,max=64"`
	OsType      *string `json:"os_type,omitempty" binding:"omitempty,oneof=Windows Linux"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

type ListBaseImageResponseData struct {
	Total int64             `json:"total"`
	List  []model.BaseImage `json:"list"`
}

// CreatedResponseData 创建接口返回新记录 ID
type CreatedResponseData struct {
	Id int64 `json:"id"`
}
