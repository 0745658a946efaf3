package board

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobdesk/internal/common"
	"jobdesk/internal/domain/account"
)

func TestRegisterSetsSession(t *testing.T) {
	s, _ := newTestStore(t)

	acc, err := s.Register(context.Background(), "Asha", "Asha@Example.COM", "pass1234", account.RoleCandidate)
	require.NoError(t, err)

	assert.Equal(t, "asha@example.com", acc.Email)
	assert.Equal(t, account.RoleCandidate, acc.Role)
	assert.Empty(t, acc.PasswordHash)

	sess := s.Session()
	require.NotNil(t, sess)
	assert.Equal(t, acc.ID, sess.ID)
	assert.Empty(t, sess.PasswordHash)
}

func TestRegisterRefusesDuplicateEmail(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.Register(ctx, "Asha", "asha@example.com", "pass1234", account.RoleCandidate)
	require.NoError(t, err)

	// same email, any casing, any password
	_, err = s.Register(ctx, "Impostor", "ASHA@example.com", "other-pass", account.RoleEmployer)
	require.Error(t, err)
	assert.True(t, common.Is(err, common.CodeConflict))
	assert.Len(t, s.Accounts(), 1)
}

func TestRegisterValidatesInput(t *testing.T) {
	s, _ := newTestStore(t)
	_, err := s.Register(context.Background(), "", "", "", account.Role("WIZARD"))
	require.Error(t, err)
	assert.True(t, common.Is(err, common.CodeValidation))

	var appErr *common.Error
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Fields, "name")
	assert.Contains(t, appErr.Fields, "email")
	assert.Contains(t, appErr.Fields, "password")
	assert.Contains(t, appErr.Fields, "role")
}

func TestAuthenticateStoredAccount(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	registerCandidate(t, s, "Asha", "asha@example.com")
	require.NoError(t, s.Logout(ctx))
	require.Nil(t, s.Session())

	acc, err := s.Authenticate(ctx, "ASHA@EXAMPLE.COM", "pass1234")
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", acc.Email)
	assert.Empty(t, acc.PasswordHash)

	_, err = s.Authenticate(ctx, "asha@example.com", "wrong")
	require.Error(t, err)
	assert.True(t, common.Is(err, common.CodeUnauthorized))

	_, err = s.Authenticate(ctx, "nobody@example.com", "pass1234")
	assert.True(t, common.Is(err, common.CodeUnauthorized))
}

func TestAdminOverrideAlwaysSucceeds(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	// works against a completely empty accounts collection
	admin, err := s.Authenticate(ctx, testAdminEmail, testAdminPassword)
	require.NoError(t, err)
	assert.Equal(t, account.RoleAdmin, admin.Role)

	// the synthetic admin never appears among registered accounts
	assert.Empty(t, s.Accounts())

	// and still works after accounts exist
	registerCandidate(t, s, "Asha", "asha@example.com")
	admin, err = s.Authenticate(ctx, testAdminEmail, testAdminPassword)
	require.NoError(t, err)
	assert.Equal(t, account.RoleAdmin, admin.Role)
}

func TestUpdateAccountMergesSessionAndRecord(t *testing.T) {
	s, snaps := newTestStore(t)
	ctx := context.Background()

	registerCandidate(t, s, "Asha", "asha@example.com")
	bio := "Backend engineer."
	skills := []string{"Go", "SQL"}
	_, err := s.UpdateAccount(ctx, account.Patch{Bio: &bio, Skills: &skills})
	require.NoError(t, err)

	sess := s.Session()
	assert.Equal(t, bio, sess.Bio)
	assert.Equal(t, skills, sess.Skills)

	accounts := s.Accounts()
	require.Len(t, accounts, 1)
	assert.Equal(t, bio, accounts[0].Bio)

	// survives a reload
	again := reopen(t, snaps)
	assert.Equal(t, bio, again.Session().Bio)
}

func TestUpdateAccountRequiresSession(t *testing.T) {
	s, _ := newTestStore(t)
	name := "Nobody"
	_, err := s.UpdateAccount(context.Background(), account.Patch{Name: &name})
	require.Error(t, err)
	assert.True(t, common.Is(err, common.CodeUnauthorized))
}

func TestProfileDraftLifecycle(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	registerCandidate(t, s, "Asha", "asha@example.com")

	draft, err := s.ProfileDraft(ctx)
	require.NoError(t, err)
	assert.Nil(t, draft)

	bio := "Draft bio"
	require.NoError(t, s.SaveProfileDraft(ctx, account.Patch{Bio: &bio}))

	draft, err = s.ProfileDraft(ctx)
	require.NoError(t, err)
	require.NotNil(t, draft)
	assert.Equal(t, "Draft bio", *draft.Bio)

	// saving the profile drops the draft
	_, err = s.UpdateAccount(ctx, account.Patch{Bio: &bio})
	require.NoError(t, err)
	draft, err = s.ProfileDraft(ctx)
	require.NoError(t, err)
	assert.Nil(t, draft)

	// so does an explicit discard
	require.NoError(t, s.SaveProfileDraft(ctx, account.Patch{Bio: &bio}))
	require.NoError(t, s.DiscardProfileDraft(ctx))
	draft, err = s.ProfileDraft(ctx)
	require.NoError(t, err)
	assert.Nil(t, draft)
}

func TestLogoutClearsPersistedSession(t *testing.T) {
	s, snaps := newTestStore(t)
	ctx := context.Background()

	registerCandidate(t, s, "Asha", "asha@example.com")
	require.NoError(t, s.Logout(ctx))

	again := reopen(t, snaps)
	assert.Nil(t, again.Session())
}
