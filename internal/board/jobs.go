package board

import (
	"context"
	"fmt"
	"time"

	"jobdesk/internal/common"
	"jobdesk/internal/domain/account"
	"jobdesk/internal/domain/job"
)

const (
	defaultLocation = "Remote"
	defaultSalary   = "Competitive"
	defaultJobType  = "Full-time"
)

// CreateJob posts a new listing owned by the session account. Unset draft
// fields get defaults, company branding is copied from the owner's profile,
// and the posting goes straight to Active.
func (s *Store) CreateJob(ctx context.Context, draft job.Draft) (*job.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil, common.NewError(common.CodeUnauthorized, "no active session", nil)
	}
	if s.session.Role == account.RoleCandidate {
		return nil, common.NewError(common.CodeUnauthorized, "candidates cannot post jobs", nil)
	}

	companyName := s.session.CompanyName
	if companyName == "" {
		companyName = s.session.Name
	}
	if companyName == "" {
		companyName = "Anonymous Company"
	}
	if draft.Location == "" {
		draft.Location = defaultLocation
	}
	if draft.Salary == "" {
		draft.Salary = defaultSalary
	}
	if draft.Type == "" {
		draft.Type = defaultJobType
	}
	if draft.Skills == nil {
		draft.Skills = []string{}
	}

	now := time.Now().UTC()
	created := job.Job{
		ID:          common.NewID(),
		EmployerID:  s.session.ID,
		CompanyName: companyName,
		CompanyLogo: s.session.CompanyLogo,
		Title:       draft.Title,
		Location:    draft.Location,
		Salary:      draft.Salary,
		Skills:      draft.Skills,
		Description: draft.Description,
		PostedAt:    now,
		UpdatedAt:   now,
		Type:        draft.Type,
		Status:      job.StatusActive,
	}
	s.jobs = append([]job.Job{created}, s.jobs...)
	if err := s.persistJobs(ctx); err != nil {
		return nil, err
	}
	s.logInfo(fmt.Sprintf("job posted id=%s employer=%s", created.ID, created.EmployerID))
	return &created, nil
}

// UpdateJob merges the patch into the posting and refreshes its updated
// timestamp. Only the owner or an admin may update. When an admin changes
// the status, the owner is notified.
func (s *Store) UpdateJob(ctx context.Context, jobID string, patch job.Patch) (*job.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, err := s.findJob(jobID)
	if err != nil {
		return nil, err
	}
	if err := s.requireOwnerOrAdmin(s.jobs[idx]); err != nil {
		return nil, err
	}

	current := &s.jobs[idx]
	ownerID := current.EmployerID
	title := current.Title
	patch.Apply(current)
	current.UpdatedAt = time.Now().UTC()

	notified := false
	if patch.Status != nil && s.session.Role == account.RoleAdmin {
		s.appendNotification(ownerID, fmt.Sprintf("Your job %q is now %s.", title, patch.Status.Human()))
		notified = true
	}
	if err := s.persistJobs(ctx); err != nil {
		return nil, err
	}
	if notified {
		if err := s.persistNotifications(ctx); err != nil {
			return nil, err
		}
	}
	out := *current
	return &out, nil
}

// DeleteJob soft-deletes the posting: the status flips to Deleted and the
// record stays in storage forever. Same ownership rule as UpdateJob.
func (s *Store) DeleteJob(ctx context.Context, jobID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, err := s.findJob(jobID)
	if err != nil {
		return err
	}
	if err := s.requireOwnerOrAdmin(s.jobs[idx]); err != nil {
		return err
	}
	s.jobs[idx].Status = job.StatusDeleted
	s.jobs[idx].UpdatedAt = time.Now().UTC()
	if err := s.persistJobs(ctx); err != nil {
		return err
	}
	s.logInfo(fmt.Sprintf("job deleted id=%s", jobID))
	return nil
}

// Jobs returns the listings, most recent first, excluding soft-deleted
// postings.
func (s *Store) Jobs() []job.Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]job.Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		if j.Status != job.StatusDeleted {
			out = append(out, j)
		}
	}
	return out
}

// Job looks a posting up by id, soft-deleted ones included.
func (s *Store) Job(jobID string) (*job.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx, err := s.findJob(jobID)
	if err != nil {
		return nil, err
	}
	out := s.jobs[idx]
	return &out, nil
}

// JobsByEmployer returns the non-deleted postings owned by the account.
func (s *Store) JobsByEmployer(employerID string) []job.Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []job.Job
	for _, j := range s.jobs {
		if j.EmployerID == employerID && j.Status != job.StatusDeleted {
			out = append(out, j)
		}
	}
	return out
}

// IsOwnerOrAdmin reports whether the session account may manage the posting.
func (s *Store) IsOwnerOrAdmin(j job.Job) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ownerOrAdmin(j)
}

func (s *Store) ownerOrAdmin(j job.Job) bool {
	if s.session == nil {
		return false
	}
	return s.session.Role == account.RoleAdmin || j.EmployerID == s.session.ID
}

func (s *Store) requireOwnerOrAdmin(j job.Job) error {
	if s.session == nil {
		return common.NewError(common.CodeUnauthorized, "no active session", nil)
	}
	if !s.ownerOrAdmin(j) {
		return common.NewError(common.CodeForbidden, "job belongs to another employer", nil)
	}
	return nil
}

func (s *Store) findJob(jobID string) (int, error) {
	for i := range s.jobs {
		if s.jobs[i].ID == jobID {
			return i, nil
		}
	}
	return 0, common.NewError(common.CodeNotFound, "job not found", nil)
}
