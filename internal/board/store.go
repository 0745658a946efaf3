// Package board holds the job-board domain state: accounts, postings,
// applications and notifications, plus the current session account. Every
// successful mutation rewrites the affected collection snapshots wholesale,
// so reloading the snapshots reproduces the exact state.
package board

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"jobdesk/internal/common"
	"jobdesk/internal/domain/account"
	"jobdesk/internal/domain/application"
	"jobdesk/internal/domain/job"
	"jobdesk/internal/domain/notification"
	"jobdesk/internal/storage"
)

// Snapshot keys. One key per collection, plus a per-account draft key while
// a profile edit is in progress.
const (
	keyAccounts      = "jobdesk_accounts"
	keySession       = "jobdesk_session"
	keyJobs          = "jobdesk_jobs"
	keyApplications  = "jobdesk_applications"
	keyNotifications = "jobdesk_notifications"

	draftKeyPrefix = "jobdesk_profile_draft_"
)

type Logger interface {
	Info(msg string)
	Error(msg string)
}

type Options struct {
	// AdminEmail and AdminPassword form the override credential: a login
	// with this pair always succeeds and yields a synthetic admin session
	// that has no record in the accounts collection.
	AdminEmail    string
	AdminPassword string
	Logger        Logger
}

type Store struct {
	mu    sync.Mutex
	snaps storage.Snapshots

	adminEmail    string
	adminPassword string
	logger        Logger

	accounts      []account.Account
	session       *account.Account
	jobs          []job.Job
	applications  []application.Application
	notifications []notification.Notification
}

// New loads all collections from the snapshot store. An absent jobs key
// seeds the initial listings; every other absent key starts empty.
func New(ctx context.Context, snaps storage.Snapshots, opts Options) (*Store, error) {
	s := &Store{
		snaps:         snaps,
		adminEmail:    opts.AdminEmail,
		adminPassword: opts.AdminPassword,
		logger:        opts.Logger,
	}
	if err := loadInto(ctx, snaps, keyAccounts, &s.accounts); err != nil {
		return nil, err
	}
	if err := loadInto(ctx, snaps, keyApplications, &s.applications); err != nil {
		return nil, err
	}
	if err := loadInto(ctx, snaps, keyNotifications, &s.notifications); err != nil {
		return nil, err
	}

	raw, err := snaps.Load(ctx, keySession)
	if err == nil && len(raw) > 0 {
		var sess account.Account
		if err := json.Unmarshal(raw, &sess); err != nil {
			return nil, common.NewError(common.CodeInternal, "corrupt session snapshot", err)
		}
		if sess.ID != "" {
			s.session = &sess
		}
	} else if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, common.NewError(common.CodeInternal, "failed to load session snapshot", err)
	}

	raw, err = snaps.Load(ctx, keyJobs)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		s.jobs = seedJobs()
		if err := s.persistJobs(ctx); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, common.NewError(common.CodeInternal, "failed to load jobs snapshot", err)
	default:
		if err := json.Unmarshal(raw, &s.jobs); err != nil {
			return nil, common.NewError(common.CodeInternal, "corrupt jobs snapshot", err)
		}
	}
	return s, nil
}

func loadInto(ctx context.Context, snaps storage.Snapshots, key string, target any) error {
	raw, err := snaps.Load(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return common.NewError(common.CodeInternal, fmt.Sprintf("failed to load %s snapshot", key), err)
	}
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return common.NewError(common.CodeInternal, fmt.Sprintf("corrupt %s snapshot", key), err)
	}
	return nil
}

// seedJobs mirrors the listings a fresh install starts with.
func seedJobs() []job.Job {
	now := time.Now().UTC()
	return []job.Job{
		{
			ID:          "1",
			EmployerID:  "e1",
			CompanyName: "TechCorp",
			Title:       "Senior React Developer",
			Location:    "Remote, India",
			Salary:      "₹20L - ₹30L",
			Skills:      []string{"React", "TypeScript", "Tailwind"},
			Description: "Expert React dev needed for exciting new project.",
			PostedAt:    now,
			UpdatedAt:   now,
			Type:        "Full-time",
			Status:      job.StatusActive,
		},
		{
			ID:          "2",
			EmployerID:  "e2",
			CompanyName: "FinStream",
			Title:       "Backend Engineer",
			Location:    "Bangalore, KA",
			Salary:      "₹15L - ₹25L",
			Skills:      []string{"Node.js", "PostgreSQL"},
			Description: "Join our fintech backend team.",
			PostedAt:    now,
			UpdatedAt:   now,
			Type:        "Full-time",
			Status:      job.StatusActive,
		},
	}
}

func (s *Store) persist(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return common.NewError(common.CodeInternal, fmt.Sprintf("failed to encode %s snapshot", key), err)
	}
	if err := s.snaps.Save(ctx, key, raw); err != nil {
		s.logError(fmt.Sprintf("snapshot save failed key=%s: %v", key, err))
		return common.NewError(common.CodeInternal, fmt.Sprintf("failed to save %s snapshot", key), err)
	}
	return nil
}

func (s *Store) persistAccounts(ctx context.Context) error {
	return s.persist(ctx, keyAccounts, s.accounts)
}

func (s *Store) persistSession(ctx context.Context) error {
	if s.session == nil {
		if err := s.snaps.Delete(ctx, keySession); err != nil {
			return common.NewError(common.CodeInternal, "failed to clear session snapshot", err)
		}
		return nil
	}
	return s.persist(ctx, keySession, s.session)
}

func (s *Store) persistJobs(ctx context.Context) error {
	return s.persist(ctx, keyJobs, s.jobs)
}

func (s *Store) persistApplications(ctx context.Context) error {
	return s.persist(ctx, keyApplications, s.applications)
}

func (s *Store) persistNotifications(ctx context.Context) error {
	return s.persist(ctx, keyNotifications, s.notifications)
}

func (s *Store) logInfo(msg string) {
	if s.logger != nil {
		s.logger.Info(msg)
	}
}

func (s *Store) logError(msg string) {
	if s.logger != nil {
		s.logger.Error(msg)
	}
}
