package certificate

import (
	"strings"
	"time"

	certerrors "go-certtrack/internal/certificate/errors"
)

const dateLayout = "2006-01-02"

// CreateCertificateRequest carries no company id; it always comes from the session.
// UserID is honoured only for admins.
type CreateCertificateRequest struct {
	CourseName      string `json:"courseName" binding:"max=255"`
	CourseLink      string `json:"courseLink" binding:"omitempty,url"`
	Organization    string `json:"organization" binding:"max=255"`
	CertificateName string `json:"certificateName" binding:"max=255"`
	Level           string `json:"level" binding:"max=100"`
	Category        string `json:"category" binding:"max=100"`
	Status          string `json:"status"`
	StartDate       string `json:"startDate"`
	EndDate         string `json:"endDate"`
	Demo            string `json:"demo"`
	UserID          string `json:"userId"`
}

// UpdateCertificateRequest is a patch: nil fields are left unchanged.
type UpdateCertificateRequest struct {
	CourseName      *string `json:"courseName" binding:"omitempty,max=255"`
	CourseLink      *string `json:"courseLink"`
	Organization    *string `json:"organization" binding:"omitempty,max=255"`
	CertificateName *string `json:"certificateName" binding:"omitempty,max=255"`
	Level           *string `json:"level" binding:"omitempty,max=100"`
	Category        *string `json:"category" binding:"omitempty,max=100"`
	Status          *string `json:"status"`
	StartDate       *string `json:"startDate"`
	EndDate         *string `json:"endDate"`
	Demo            *string `json:"demo"`
	UserID          *string `json:"userId"`
}

type CertificateResponse struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	OwnerName       string    `json:"ownerName,omitempty"`
	CompanyID       string    `json:"companyId"`
	CourseName      string    `json:"courseName"`
	CourseLink      string    `json:"courseLink,omitempty"`
	Organization    string    `json:"organization"`
	CertificateName string    `json:"certificateName,omitempty"`
	Level           string    `json:"level,omitempty"`
	Category        string    `json:"category,omitempty"`
	Status          string    `json:"status,omitempty"`
	StartDate       string    `json:"startDate,omitempty"`
	EndDate         string    `json:"endDate,omitempty"`
	Demo            string    `json:"demo,omitempty"`
	HasProof        bool      `json:"hasProof"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type ProofUploadRequest struct {
	FileName    string `json:"fileName" binding:"required,max=255"`
	ContentType string `json:"contentType" binding:"required"`
}

type ProofUploadResponse struct {
	UploadURL string `json:"uploadUrl"`
	Key       string `json:"key"`
}

type ProofURLResponse struct {
	URL string `json:"url"`
}

// parseDate accepts YYYY-MM-DD or RFC3339. Empty input means no date.
func parseDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(dateLayout, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, certerrors.ErrInvalidDate
	}
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &d, nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func mapToResponse(c Certificate) CertificateResponse {
	return CertificateResponse{
		ID:              c.ID.String(),
		UserID:          c.UserID.String(),
		CompanyID:       c.CompanyID.String(),
		CourseName:      c.CourseName,
		CourseLink:      c.CourseLink,
		Organization:    c.Organization,
		CertificateName: c.CertificateName,
		Level:           c.Level,
		Category:        c.Category,
		Status:          string(c.Status),
		StartDate:       formatDate(c.StartDate),
		EndDate:         formatDate(c.EndDate),
		Demo:            c.Demo,
		HasProof:        c.ProofKey != "",
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func mapToListResponse(certs []Certificate) []CertificateResponse {
	resp := make([]CertificateResponse, len(certs))
	for i, c := range certs {
		resp[i] = mapToResponse(c)
	}
	return resp
}
