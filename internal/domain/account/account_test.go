package account

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	got, ok := ParseRole("candidate")
	assert.True(t, ok)
	assert.Equal(t, RoleCandidate, got)

	got, ok = ParseRole(" EMPLOYER ")
	assert.True(t, ok)
	assert.Equal(t, RoleEmployer, got)

	_, ok = ParseRole("recruiter")
	assert.False(t, ok)
}

func TestWithoutCredential(t *testing.T) {
	a := Account{ID: "a1", Email: "asha@example.com", PasswordHash: "$2a$hash"}
	stripped := a.WithoutCredential()
	assert.Empty(t, stripped.PasswordHash)
	assert.Equal(t, "a1", stripped.ID)
	// the original is untouched
	assert.Equal(t, "$2a$hash", a.PasswordHash)
}

func TestPatchAppliesOnlySetFields(t *testing.T) {
	a := Account{Name: "Asha", Bio: "old", Skills: []string{"Go"}}

	bio := "new"
	Patch{Bio: &bio}.Apply(&a)

	assert.Equal(t, "Asha", a.Name)
	assert.Equal(t, "new", a.Bio)
	assert.Equal(t, []string{"Go"}, a.Skills)
}

func TestPatchJSONRoundTrip(t *testing.T) {
	bio := "draft"
	skills := []string{"Go", "SQL"}
	raw, err := json.Marshal(Patch{Bio: &bio, Skills: &skills})
	require.NoError(t, err)

	var got Patch
	require.NoError(t, json.Unmarshal(raw, &got))
	require.NotNil(t, got.Bio)
	assert.Equal(t, "draft", *got.Bio)
	require.NotNil(t, got.Skills)
	assert.Equal(t, skills, *got.Skills)
	assert.Nil(t, got.Name)
}
