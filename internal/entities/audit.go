package entities

import "time"

type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionUpdate AuditAction = "update"
	AuditActionDelete AuditAction = "delete"
)

type AuditStatus string

const (
	AuditStatusSuccess AuditStatus = "success"
	AuditStatusFailed  AuditStatus = "failed"
)

// AuditEvent records one catalog mutation.
type AuditEvent struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	Action      AuditAction `gorm:"index;size:20" json:"action"`
	EntityType  string      `gorm:"index;size:50" json:"entity_type"` // "author" or "book"
	EntityID    string      `gorm:"index;size:64" json:"entity_id"`
	Description string      `gorm:"size:500" json:"description"`
	Metadata    string      `gorm:"type:text" json:"metadata,omitempty"` // JSON for extra data
	RequestID   string      `gorm:"size:64" json:"request_id,omitempty"`
	IPAddress   string      `gorm:"size:45" json:"ip_address,omitempty"`
	UserAgent   string      `gorm:"size:500" json:"user_agent,omitempty"`
	Status      AuditStatus `gorm:"size:20" json:"status"`
	ErrorMsg    string      `gorm:"size:500" json:"error_msg,omitempty"`
	CreatedAt   time.Time   `gorm:"index" json:"created_at"`
}

func (AuditEvent) TableName() string {
	return "audit_events"
}
