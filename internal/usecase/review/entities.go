package review

import (
	"time"

	"bursary-portal/internal/domain/access"
)

type ReviewInput struct {
	ApplicationID string
	Principal     *access.Principal
}

// ReviewDTO reports one decision. ReviewedBy and ReviewedAt are logged, not stored;
// Message is the acknowledgement shown to the reviewer.
type ReviewDTO struct {
	ApplicationID string    `json:"application_id"`
	FullName      string    `json:"full_name"`
	Status        string    `json:"status"`
	ReviewedBy    string    `json:"reviewed_by"`
	ReviewedAt    time.Time `json:"reviewed_at"`
	Message       string    `json:"message"`
}
