package activity

import (
	"time"
)

// CertificateActivity is one append-only entry in a certificate's trail.
// ID is the lifecycle event id, which makes replays harmless.
type CertificateActivity struct {
	ID            string    `gorm:"column:id;type:uuid;primaryKey"`
	CertificateID string    `gorm:"column:certificate_id;type:uuid;not null;index:idx_activity_certificate"`
	CompanyID     string    `gorm:"column:company_id;type:uuid;not null;index"`
	ActorID       string    `gorm:"column:actor_id;type:uuid"`
	OwnerID       string    `gorm:"column:owner_id;type:uuid"`
	EventType     string    `gorm:"column:event_type;type:varchar(50);not null"`
	Summary       string    `gorm:"column:summary;type:text"`
	OccurredAt    time.Time `gorm:"column:occurred_at;not null;index:idx_activity_certificate"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (CertificateActivity) TableName() string {
	return "certificate_activities"
}

type ActivityResponse struct {
	ID         string    `json:"id"`
	EventType  string    `json:"eventType"`
	ActorID    string    `json:"actorId"`
	Summary    string    `json:"summary,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}
