package hubui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"hubboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatStatusDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1681146337664", "4/10/2023 / 5:05:37 PM"},
		{"0", "1/1/1970 / 12:00:00 AM"},
		{"1681113600000", "4/10/2023 / 8:00:00 AM"},
		{"not-a-number", "not-a-number"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatStatusDate(tt.in, time.UTC), tt.in)
	}
}

func TestFormatStatusDateLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	assert.Equal(t, "4/10/2023 / 8:05:37 PM", FormatStatusDate("1681146337664", loc))
}

func renderString(t *testing.T, hubs []models.Hub, mode Mode) string {
	t.Helper()
	r, err := NewRenderer(time.UTC)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, hubs, mode))
	return buf.String()
}

var renderHubs = []models.Hub{
	{SerialNo: "serial-new", Status: models.StatusNew, StatusDate: "1681146337664"},
	{SerialNo: "serial-active", Status: models.StatusActive, StatusDate: "1681145337664"},
	{SerialNo: "serial-suspended", Status: models.StatusSuspended, StatusDate: "1681144337664"},
}

func TestRenderBrowsing(t *testing.T) {
	page := renderString(t, renderHubs, Browsing{})

	assert.Contains(t, page, "Add hub")
	assert.NotContains(t, page, "Edit hub id:")
	assert.Equal(t, 3, strings.Count(page, "Edit hub</button>"))
	assert.Contains(t, page, `action="/ui/hubs/serial-active/edit"`)
	assert.Contains(t, page, "status-green")
	assert.Contains(t, page, "status-red")
	assert.Contains(t, page, "status-orange")
	assert.Contains(t, page, "4/10/2023 / 5:05:37 PM")

	// карточки в порядке последовательности
	assert.Less(t, strings.Index(page, "serial-new"), strings.Index(page, "serial-active"))
	assert.Less(t, strings.Index(page, "serial-active"), strings.Index(page, "serial-suspended"))
}

func TestRenderEditing(t *testing.T) {
	orig := renderHubs[1]
	cand := orig.WithStatus(models.StatusSuspended, time.UnixMilli(1700000000000))
	page := renderString(t, renderHubs, Editing{Original: orig, Candidate: cand})

	assert.Contains(t, page, "Edit hub id: serial-active")
	assert.NotContains(t, page, "Edit hub</button>", "edit triggers are hidden while editing")
	assert.Contains(t, page, `<option value="SUSPENDED" selected>Suspended</option>`)
	assert.Contains(t, page, `<option value="NEW">New</option>`)
	assert.Contains(t, page, `<option value="ACTIVE">Active</option>`)
	assert.Contains(t, page, ">Save</button>")
	assert.Contains(t, page, ">Cancel</button>")
	// карточка показывает сохранённый статус, а не кандидата
	assert.Contains(t, page, "4/10/2023 / 4:48:57 PM")
}

func TestRenderEscapes(t *testing.T) {
	page := renderString(t, []models.Hub{{SerialNo: "<script>", Status: models.StatusNew, StatusDate: "0"}}, Browsing{})
	assert.NotContains(t, page, "<span><script></span>")
	assert.Contains(t, page, "&lt;script&gt;")
}
