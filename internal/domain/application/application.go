package application

import (
	"strings"
	"time"
)

type Status string

const (
	StatusApplied            Status = "APPLIED"
	StatusUnderReview        Status = "UNDER_REVIEW"
	StatusShortlisted        Status = "SHORTLISTED"
	StatusInterviewScheduled Status = "INTERVIEW_SCHEDULED"
	StatusRejected           Status = "REJECTED"
	StatusHired              Status = "HIRED"
)

// ParseStatus normalizes a user-supplied status value; spaces and dashes are
// accepted in place of underscores.
func ParseStatus(value string) (Status, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	normalized = strings.NewReplacer(" ", "_", "-", "_").Replace(normalized)
	switch Status(normalized) {
	case StatusApplied, StatusUnderReview, StatusShortlisted, StatusInterviewScheduled, StatusRejected, StatusHired:
		return Status(normalized), true
	default:
		return "", false
	}
}

// Human renders a status for notification text: the stored value with the
// underscore turned into a space ("UNDER REVIEW").
func (s Status) Human() string {
	return strings.Replace(string(s), "_", " ", 1)
}

type Mode string

const (
	ModeOnline  Mode = "ONLINE"
	ModeOffline Mode = "OFFLINE"
)

// ParseMode normalizes a user-supplied interview mode.
func ParseMode(value string) (Mode, bool) {
	switch Mode(strings.ToUpper(strings.TrimSpace(value))) {
	case ModeOnline:
		return ModeOnline, true
	case ModeOffline:
		return ModeOffline, true
	default:
		return "", false
	}
}

// Interview holds scheduling details. Rescheduling overwrites the record;
// there is no history.
type Interview struct {
	ID            string `json:"id"`
	ApplicationID string `json:"applicationId"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Mode          Mode   `json:"mode"`
	LocationLink  string `json:"locationLink"`
	Name          string `json:"name"`
	Notes         string `json:"notes"`
}

// Application links one candidate to one job posting. CandidateName and
// JobTitle are snapshots taken at creation and do not track later edits to
// the source records.
type Application struct {
	ID            string     `json:"id"`
	JobID         string     `json:"jobId"`
	CandidateID   string     `json:"candidateId"`
	Status        Status     `json:"status"`
	AppliedDate   time.Time  `json:"appliedDate"`
	CandidateName string     `json:"candidateName"`
	JobTitle      string     `json:"jobTitle"`
	Interview     *Interview `json:"interviewDetails,omitempty"`
}
