package board

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobdesk/internal/common"
	"jobdesk/internal/domain/job"
)

func TestCreateJobDefaultsAndOrdering(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	registerEmployer(t, s, "PostCo", "post@co.example")
	created, err := s.CreateJob(ctx, job.Draft{Title: "Gopher"})
	require.NoError(t, err)

	assert.Equal(t, "Remote", created.Location)
	assert.Equal(t, "Competitive", created.Salary)
	assert.Equal(t, "Full-time", created.Type)
	assert.Equal(t, job.StatusActive, created.Status)
	assert.Equal(t, "PostCo", created.CompanyName)

	// most recent first
	jobs := s.Jobs()
	require.Len(t, jobs, 3)
	assert.Equal(t, created.ID, jobs[0].ID)
}

func TestCreateJobRefusesCandidatesAndAnonymous(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateJob(ctx, job.Draft{Title: "Gopher"})
	assert.True(t, common.Is(err, common.CodeUnauthorized))

	registerCandidate(t, s, "Asha", "asha@example.com")
	_, err = s.CreateJob(ctx, job.Draft{Title: "Gopher"})
	assert.True(t, common.Is(err, common.CodeUnauthorized))
	assert.Len(t, s.Jobs(), 2)
}

func TestUpdateJobRequiresOwnerOrAdmin(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	registerEmployer(t, s, "PostCo", "post@co.example")
	created, err := s.CreateJob(ctx, job.Draft{Title: "Gopher"})
	require.NoError(t, err)

	// a different employer may not touch it
	registerEmployer(t, s, "OtherCo", "other@co.example")
	title := "Stolen"
	_, err = s.UpdateJob(ctx, created.ID, job.Patch{Title: &title})
	require.Error(t, err)
	assert.True(t, common.Is(err, common.CodeForbidden))

	unchanged, err := s.Job(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Gopher", unchanged.Title)

	// the admin override may
	_, err = s.Authenticate(ctx, testAdminEmail, testAdminPassword)
	require.NoError(t, err)
	updated, err := s.UpdateJob(ctx, created.ID, job.Patch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Stolen", updated.Title)
}

func TestUpdateJobByOwnerMerges(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	registerEmployer(t, s, "PostCo", "post@co.example")
	created, err := s.CreateJob(ctx, job.Draft{Title: "Gopher", Salary: "Good"})
	require.NoError(t, err)

	salary := "Better"
	status := job.StatusInactive
	updated, err := s.UpdateJob(ctx, created.ID, job.Patch{Salary: &salary, Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "Better", updated.Salary)
	assert.Equal(t, "Gopher", updated.Title)
	assert.Equal(t, job.StatusInactive, updated.Status)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt) || updated.UpdatedAt.Equal(created.UpdatedAt))

	// the owner changing status notifies nobody
	assert.Empty(t, s.NotificationsFor(created.EmployerID))
}

func TestAdminStatusChangeNotifiesOwner(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	registerEmployer(t, s, "PostCo", "post@co.example")
	created, err := s.CreateJob(ctx, job.Draft{Title: "Gopher"})
	require.NoError(t, err)

	_, err = s.Authenticate(ctx, testAdminEmail, testAdminPassword)
	require.NoError(t, err)
	status := job.StatusInactive
	_, err = s.UpdateJob(ctx, created.ID, job.Patch{Status: &status})
	require.NoError(t, err)

	notifs := s.NotificationsFor(created.EmployerID)
	require.Len(t, notifs, 1)
	assert.Equal(t, `Your job "Gopher" is now inactive.`, notifs[0].Message)
	assert.False(t, notifs[0].Read)
}

func TestDeleteJobIsSoft(t *testing.T) {
	s, snaps := newTestStore(t)
	ctx := context.Background()

	registerEmployer(t, s, "PostCo", "post@co.example")
	created, err := s.CreateJob(ctx, job.Draft{Title: "Gopher"})
	require.NoError(t, err)

	require.NoError(t, s.DeleteJob(ctx, created.ID))

	// excluded from listings
	for _, j := range s.Jobs() {
		assert.NotEqual(t, created.ID, j.ID)
	}
	// but the record is retained, status flipped
	kept, err := s.Job(created.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusDeleted, kept.Status)

	// and it survives a reload
	again := reopen(t, snaps)
	kept, err = again.Job(created.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusDeleted, kept.Status)
}

func TestDeleteJobRequiresOwnership(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	registerEmployer(t, s, "OtherCo", "other@co.example")
	err := s.DeleteJob(ctx, "1") // seeded job owned by e1
	require.Error(t, err)
	assert.True(t, common.Is(err, common.CodeForbidden))

	kept, err := s.Job("1")
	require.NoError(t, err)
	assert.Equal(t, job.StatusActive, kept.Status)
}

func TestUpdateJobNotFound(t *testing.T) {
	s, _ := newTestStore(t)
	registerEmployer(t, s, "PostCo", "post@co.example")
	title := "x"
	_, err := s.UpdateJob(context.Background(), "missing", job.Patch{Title: &title})
	assert.True(t, common.Is(err, common.CodeNotFound))
}
