package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// 审计动作，非封闭集合
const (
	AuditActionLogin  = "LOGIN"
	AuditActionLogout = "LOGOUT"
)

// 审计实体类型
const (
	EntityTypeTemplate            = "TEMPLATE"
	EntityTypeTemplateApplication = "TEMPLATE_APPLICATION"
	EntityTypeApplication         = "APPLICATION"
	EntityTypeBusinessUnit        = "BUSINESS_UNIT"
	EntityTypeContact             = "CONTACT"
	EntityTypeBaseImage           = "BASE_IMAGE"
	EntityTypeUser                = "USER"
)

// AuditAction 拼出 <ENTITY>_<VERB>，如 TEMPLATE_CREATED
func AuditAction(entityType, verb string) string {
	return entityType + "_" + verb
}

// AuditLog 全局审计日志，只追加；entity_id 不建外键，实体删除后记录仍保留
type AuditLog struct {
	Id         string    `json:"id" gorm:"column:id;primaryKey;size:36"`
	AdminID    string    `json:"admin_id" gorm:"column:admin_id;size:64;not null;index"`
	AdminName  string    `json:"admin_name" gorm:"column:admin_name;size:100"`
	Action     string    `json:"action" gorm:"column:action;size:64;not null;index"`
	EntityType string    `json:"entity_type,omitempty" gorm:"column:entity_type;size:64;index:idx_audit_entity,priority:1"`
	EntityID   string    `json:"entity_id,omitempty" gorm:"column:entity_id;size:64;index:idx_audit_entity,priority:2"`
	EntityName string    `json:"entity_name,omitempty" gorm:"column:entity_name;size:200"`
	Details    *Payload  `json:"details,omitempty" gorm:"column:details"`
	OldValue   *Payload  `json:"old_value,omitempty" gorm:"column:old_value"`
	NewValue   *Payload  `json:"new_value,omitempty" gorm:"column:new_value"`
	IPAddress  string    `json:"ip_address,omitempty" gorm:"column:ip_address;size:64"`
	UserAgent  string    `json:"user_agent,omitempty" gorm:"column:user_agent;size:500"`
	CreateTime time.Time `json:"create_time" gorm:"column:gmt_create;not null;index"`
}

func (AuditLog) TableName() string {
	return "audit_log"
}

func (a *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if a.Id == "" {
		a.Id = uuid.NewString()
	}
	return nil
}
