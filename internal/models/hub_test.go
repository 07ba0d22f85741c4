package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    Status
		wantErr bool
	}{
		{"NEW", StatusNew, false},
		{" active ", StatusActive, false},
		{"Suspended", StatusSuspended, false},
		{"", "", true},
		{"DELETED", "", true},
	}
	for _, tt := range tests {
		got, err := ParseStatus(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrUnknownStatus, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestStatusPresentation(t *testing.T) {
	assert.Equal(t, []Status{StatusNew, StatusActive, StatusSuspended}, AllStatuses())

	assert.Equal(t, "orange", StatusNew.Color())
	assert.Equal(t, "green", StatusActive.Color())
	assert.Equal(t, "red", StatusSuspended.Color())

	assert.Equal(t, "New", StatusNew.Label())
	assert.Equal(t, "Active", StatusActive.Label())
	assert.Equal(t, "Suspended", StatusSuspended.Label())
}

func TestNewHub(t *testing.T) {
	now := time.UnixMilli(1681146337664)
	h := NewHub(now)

	assert.Equal(t, StatusNew, h.Status)
	assert.Equal(t, "1681146337664", h.StatusDate)
	assert.Len(t, h.SerialNo, 36)

	ts, err := h.StatusTime()
	require.NoError(t, err)
	assert.True(t, ts.Equal(now))
}

func TestWithStatus(t *testing.T) {
	h := Hub{SerialNo: "x", Status: StatusActive, StatusDate: "100"}
	now := time.UnixMilli(200)

	changed := h.WithStatus(StatusSuspended, now)
	assert.Equal(t, Hub{SerialNo: "x", Status: StatusSuspended, StatusDate: "200"}, changed)

	same := h.WithStatus(StatusActive, now)
	assert.Equal(t, h, same, "statusDate must not move without a status change")

	assert.Equal(t, Hub{SerialNo: "x", Status: StatusActive, StatusDate: "100"}, h)
}

func TestStatusTimeInvalid(t *testing.T) {
	_, err := Hub{StatusDate: "yesterday"}.StatusTime()
	assert.Error(t, err)
}
