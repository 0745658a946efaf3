package board

import (
	"context"
	"fmt"
	"time"

	"jobdesk/internal/common"
	"jobdesk/internal/domain/account"
	"jobdesk/internal/domain/application"
	"jobdesk/internal/domain/job"
)

// Apply records the session candidate's application to an Active posting.
// The candidate's name and the job title are snapshotted onto the record at
// creation; re-applying to the same posting is a conflict. The posting's
// owner is notified.
func (s *Store) Apply(ctx context.Context, jobID string) (*application.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil, common.NewError(common.CodeUnauthorized, "no active session", nil)
	}
	if s.session.Role != account.RoleCandidate {
		return nil, common.NewError(common.CodeUnauthorized, "only candidates can apply", nil)
	}

	idx, err := s.findJob(jobID)
	if err != nil {
		return nil, err
	}
	target := s.jobs[idx]
	if target.Status != job.StatusActive {
		return nil, common.NewError(common.CodeValidation, "job is not accepting applications", nil)
	}
	for _, a := range s.applications {
		if a.JobID == jobID && a.CandidateID == s.session.ID {
			return nil, common.NewError(common.CodeConflict, "already applied to this job", nil)
		}
	}

	created := application.Application{
		ID:            common.NewID(),
		JobID:         jobID,
		CandidateID:   s.session.ID,
		Status:        application.StatusApplied,
		AppliedDate:   time.Now().UTC(),
		CandidateName: s.session.Name,
		JobTitle:      target.Title,
	}
	s.applications = append(s.applications, created)
	s.appendNotification(target.EmployerID, fmt.Sprintf("New application from %s for %s", created.CandidateName, target.Title))

	if err := s.persistApplications(ctx); err != nil {
		return nil, err
	}
	if err := s.persistNotifications(ctx); err != nil {
		return nil, err
	}
	s.logInfo(fmt.Sprintf("application created id=%s job=%s", created.ID, jobID))
	return &created, nil
}

// SetApplicationStatus updates the pipeline status. The actor must own the
// parent posting or be an admin; the candidate is notified with the status
// rendered human-readable.
func (s *Store) SetApplicationStatus(ctx context.Context, applicationID string, status application.Status) (*application.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, err := s.resolveApplication(applicationID)
	if err != nil {
		return nil, err
	}
	if _, ok := application.ParseStatus(string(status)); !ok {
		return nil, common.NewValidationError("invalid application status", map[string]string{
			"status": "status must be applied, under_review, shortlisted, interview_scheduled, rejected, or hired",
		})
	}

	app := &s.applications[idx]
	app.Status = status
	s.appendNotification(app.CandidateID, fmt.Sprintf("Your application status for %s changed to %s", app.JobTitle, status.Human()))

	if err := s.persistApplications(ctx); err != nil {
		return nil, err
	}
	if err := s.persistNotifications(ctx); err != nil {
		return nil, err
	}
	out := *app
	return &out, nil
}

// ScheduleInterview attaches (or overwrites) the interview record and moves
// the application to Interview Scheduled. Same authorization as
// SetApplicationStatus; the candidate is notified with date, time and mode.
func (s *Store) ScheduleInterview(ctx context.Context, applicationID string, details application.Interview) (*application.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, err := s.resolveApplication(applicationID)
	if err != nil {
		return nil, err
	}
	if details.ID == "" {
		details.ID = common.NewID()
	}
	details.ApplicationID = applicationID

	app := &s.applications[idx]
	app.Status = application.StatusInterviewScheduled
	app.Interview = &details
	s.appendNotification(app.CandidateID, fmt.Sprintf("Your interview for %s is scheduled on %s at %s via %s",
		app.JobTitle, details.Date, details.Time, details.Mode))

	if err := s.persistApplications(ctx); err != nil {
		return nil, err
	}
	if err := s.persistNotifications(ctx); err != nil {
		return nil, err
	}
	out := *app
	return &out, nil
}

// resolveApplication finds the application, resolves its parent posting and
// enforces the owner-or-admin rule. Callers hold the lock.
func (s *Store) resolveApplication(applicationID string) (int, error) {
	for i := range s.applications {
		if s.applications[i].ID != applicationID {
			continue
		}
		jobIdx, err := s.findJob(s.applications[i].JobID)
		if err != nil {
			return 0, err
		}
		if err := s.requireOwnerOrAdmin(s.jobs[jobIdx]); err != nil {
			return 0, err
		}
		return i, nil
	}
	return 0, common.NewError(common.CodeNotFound, "application not found", nil)
}

// Applications returns a copy of every application record.
func (s *Store) Applications() []application.Application {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]application.Application, len(s.applications))
	copy(out, s.applications)
	return out
}

// ApplicationsForJob returns applications to one posting.
func (s *Store) ApplicationsForJob(jobID string) []application.Application {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []application.Application
	for _, a := range s.applications {
		if a.JobID == jobID {
			out = append(out, a)
		}
	}
	return out
}

// ApplicationsForCandidate returns one candidate's applications.
func (s *Store) ApplicationsForCandidate(candidateID string) []application.Application {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []application.Application
	for _, a := range s.applications {
		if a.CandidateID == candidateID {
			out = append(out, a)
		}
	}
	return out
}

// HasApplied reports whether the session account already applied to the
// posting.
func (s *Store) HasApplied(jobID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return false
	}
	for _, a := range s.applications {
		if a.JobID == jobID && a.CandidateID == s.session.ID {
			return true
		}
	}
	return false
}
