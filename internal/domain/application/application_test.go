package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	cases := map[string]Status{
		"applied":             StatusApplied,
		"UNDER_REVIEW":        StatusUnderReview,
		"under review":        StatusUnderReview,
		"under-review":        StatusUnderReview,
		" shortlisted ":       StatusShortlisted,
		"interview_scheduled": StatusInterviewScheduled,
		"rejected":            StatusRejected,
		"hired":               StatusHired,
	}
	for input, want := range cases {
		got, ok := ParseStatus(input)
		assert.True(t, ok, input)
		assert.Equal(t, want, got)
	}

	_, ok := ParseStatus("ghosted")
	assert.False(t, ok)
	_, ok = ParseStatus("")
	assert.False(t, ok)
}

func TestStatusHuman(t *testing.T) {
	assert.Equal(t, "UNDER REVIEW", StatusUnderReview.Human())
	assert.Equal(t, "INTERVIEW SCHEDULED", StatusInterviewScheduled.Human())
	assert.Equal(t, "APPLIED", StatusApplied.Human())
}

func TestParseMode(t *testing.T) {
	got, ok := ParseMode("online")
	assert.True(t, ok)
	assert.Equal(t, ModeOnline, got)

	got, ok = ParseMode(" OFFLINE ")
	assert.True(t, ok)
	assert.Equal(t, ModeOffline, got)

	_, ok = ParseMode("hybrid")
	assert.False(t, ok)
}
