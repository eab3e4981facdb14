package model

import "time"

// HistoryAction 模板变更日志动作，封闭集合
type HistoryAction string

const (
	HistoryActionCreated       HistoryAction = "CREATED"
	HistoryActionUpdated       HistoryAction = "UPDATED"
	HistoryActionStatusChanged HistoryAction = "STATUS_CHANGED"
	HistoryActionAppAdded      HistoryAction = "APP_ADDED"
	HistoryActionAppRemoved    HistoryAction = "APP_REMOVED"
)

func (a HistoryAction) Valid() bool {
	switch a {
	case HistoryActionCreated, HistoryActionUpdated, HistoryActionStatusChanged,
		HistoryActionAppAdded, HistoryActionAppRemoved:
		return true
	}
	return false
}

// TemplateHistory 模板变更日志，只追加
type TemplateHistory struct {
	Id         int64           `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	TemplateID int64           `json:"template_id" gorm:"column:template_id;not null;index:idx_history_template_time,priority:1"`
	Action     HistoryAction   `json:"action" gorm:"column:action;size:32;not null"`
	OldStatus  *TemplateStatus `json:"old_status,omitempty" gorm:"column:old_status;size:32"`
	NewStatus  *TemplateStatus `json:"new_status,omitempty" gorm:"column:new_status;size:32"`
	Changes    *Payload        `json:"changes,omitempty" gorm:"column:changes"`
	Comment    string          `json:"comment,omitempty" gorm:"column:comment;type:text"`
	UserID     string          `json:"user_id" gorm:"column:user_id;size:64"`
	UserName   string          `json:"user_name" gorm:"column:user_name;size:100"`
	CreateTime time.Time       `json:"create_time" gorm:"column:gmt_create;not null;index:idx_history_template_time,priority:2"`
}

func (TemplateHistory) TableName() string {
	return "template_history"
}
