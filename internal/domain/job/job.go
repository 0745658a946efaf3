package job

import (
	"strings"
	"time"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
	StatusRejected Status = "REJECTED"
	StatusDeleted  Status = "DELETED"
)

// ParseStatus normalizes a user-supplied status value.
func ParseStatus(value string) (Status, bool) {
	switch Status(strings.ToUpper(strings.TrimSpace(value))) {
	case StatusPending:
		return StatusPending, true
	case StatusActive:
		return StatusActive, true
	case StatusInactive:
		return StatusInactive, true
	case StatusRejected:
		return StatusRejected, true
	case StatusDeleted:
		return StatusDeleted, true
	default:
		return "", false
	}
}

// Human renders a status the way notifications word it ("active", "rejected").
func (s Status) Human() string {
	return strings.ToLower(string(s))
}

type Job struct {
	ID          string    `json:"id"`
	EmployerID  string    `json:"employerId"`
	CompanyName string    `json:"companyName"`
	CompanyLogo string    `json:"companyLogo,omitempty"`
	Title       string    `json:"title"`
	Location    string    `json:"location"`
	Salary      string    `json:"salary"`
	Skills      []string  `json:"skills"`
	Description string    `json:"description"`
	PostedAt    time.Time `json:"postedAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Type        string    `json:"type"`
	Status      Status    `json:"status"`
}

// Draft carries the fields an employer fills in when posting. Unset fields
// get the store's defaults.
type Draft struct {
	Title       string
	Location    string
	Salary      string
	Skills      []string
	Description string
	Type        string
}

// Patch carries a partial posting update; nil fields are left untouched.
type Patch struct {
	Title       *string   `json:"title,omitempty"`
	Location    *string   `json:"location,omitempty"`
	Salary      *string   `json:"salary,omitempty"`
	Skills      *[]string `json:"skills,omitempty"`
	Description *string   `json:"description,omitempty"`
	Type        *string   `json:"type,omitempty"`
	Status      *Status   `json:"status,omitempty"`
}

// Apply merges the patch into the job. The updated timestamp is the
// caller's business.
func (p Patch) Apply(j *Job) {
	if p.Title != nil {
		j.Title = *p.Title
	}
	if p.Location != nil {
		j.Location = *p.Location
	}
	if p.Salary != nil {
		j.Salary = *p.Salary
	}
	if p.Skills != nil {
		j.Skills = *p.Skills
	}
	if p.Description != nil {
		j.Description = *p.Description
	}
	if p.Type != nil {
		j.Type = *p.Type
	}
	if p.Status != nil {
		j.Status = *p.Status
	}
}
