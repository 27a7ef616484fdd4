package events

import (
	"time"

	"github.com/google/uuid"
)

const CertificateLifecycleTopic = "certtrack.certificate.lifecycle.v1"

const AggregateCertificate = "certificate"

const (
	CertificateCreated = "certificate.created"
	CertificateUpdated = "certificate.updated"
	CertificateDeleted = "certificate.deleted"
)

// CertificateLifecycleEvent is published for every certificate write.
// OwnerID is the certificate's user, ActorID the user who made the change.
type CertificateLifecycleEvent struct {
	EventID       string    `json:"event_id"`
	EventType     string    `json:"event_type"`
	CertificateID string    `json:"certificate_id"`
	CompanyID     string    `json:"company_id"`
	OwnerID       string    `json:"owner_id"`
	ActorID       string    `json:"actor_id"`
	CourseName    string    `json:"course_name"`
	Status        string    `json:"status"`
	OccurredAt    time.Time `json:"occurred_at"`
}

func NewCertificateLifecycleEvent(eventType, certificateID, companyID, ownerID, actorID string) CertificateLifecycleEvent {
	return CertificateLifecycleEvent{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		CertificateID: certificateID,
		CompanyID:     companyID,
		OwnerID:       ownerID,
		ActorID:       actorID,
		OccurredAt:    time.Now().UTC(),
	}
}

func IsCertificateEvent(eventType string) bool {
	switch eventType {
	case CertificateCreated, CertificateUpdated, CertificateDeleted:
		return true
	default:
		return false
	}
}
