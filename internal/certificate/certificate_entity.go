package certificate

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusStarted    Status = "started"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusOther      Status = "other"
)

// NormalizeStatus folds case, spaces and underscores, so "In Progress" and
// "IN_PROGRESS" both become in-progress. Empty input stays empty.
func NormalizeStatus(raw string) (Status, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.NewReplacer(" ", "-", "_", "-").Replace(s)
	switch Status(s) {
	case "":
		return "", true
	case StatusStarted, StatusInProgress, StatusCompleted, StatusOther:
		return Status(s), true
	default:
		return "", false
	}
}

type Certificate struct {
	ID              uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID          uuid.UUID  `gorm:"column:user_id;type:uuid;not null;index"`
	CompanyID       uuid.UUID  `gorm:"column:company_id;type:uuid;not null;index"`
	CourseName      string     `gorm:"column:course_name;type:varchar(255);not null"`
	CourseLink      string     `gorm:"column:course_link;type:text"`
	Organization    string     `gorm:"column:organization;type:varchar(255);not null"`
	CertificateName string     `gorm:"column:certificate_name;type:varchar(255)"`
	Level           string     `gorm:"column:level;type:varchar(100)"`
	Category        string     `gorm:"column:category;type:varchar(100)"`
	Status          Status     `gorm:"column:status;type:varchar(20)"`
	StartDate       *time.Time `gorm:"column:start_date;type:date"`
	EndDate         *time.Time `gorm:"column:end_date;type:date"`
	Demo            string     `gorm:"column:demo;type:text"`
	ProofKey        string     `gorm:"column:proof_key;type:text"`
	CreatedAt       time.Time  `gorm:"column:created_at;autoCreateTime;index"`
	UpdatedAt       time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (Certificate) TableName() string {
	return "certificates"
}
