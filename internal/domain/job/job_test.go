package job

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	got, ok := ParseStatus("active")
	assert.True(t, ok)
	assert.Equal(t, StatusActive, got)

	got, ok = ParseStatus(" PENDING ")
	assert.True(t, ok)
	assert.Equal(t, StatusPending, got)

	_, ok = ParseStatus("archived")
	assert.False(t, ok)
}

func TestStatusHuman(t *testing.T) {
	assert.Equal(t, "active", StatusActive.Human())
	assert.Equal(t, "rejected", StatusRejected.Human())
}

func TestPatchAppliesOnlySetFields(t *testing.T) {
	j := Job{Title: "Gopher", Salary: "Good", Status: StatusActive}

	salary := "Better"
	status := StatusInactive
	Patch{Salary: &salary, Status: &status}.Apply(&j)

	assert.Equal(t, "Gopher", j.Title)
	assert.Equal(t, "Better", j.Salary)
	assert.Equal(t, StatusInactive, j.Status)
}
