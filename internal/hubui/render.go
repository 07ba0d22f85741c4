package hubui

import (
	"embed"
	"html/template"
	"io"
	"strconv"
	"time"

	"hubboard/internal/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	dateLayout = "1/2/2006"
	timeLayout = "3:04:05 PM"
)

// FormatStatusDate renders epoch milliseconds as "M/D/YYYY / h:mm:ss PM" in
// loc. Values that are not a number come back unchanged.
func FormatStatusDate(statusDate string, loc *time.Location) string {
	ms, err := strconv.ParseInt(statusDate, 10, 64)
	if err != nil {
		return statusDate
	}
	if loc == nil {
		loc = time.Local
	}
	t := time.UnixMilli(ms).In(loc)
	return t.Format(dateLayout) + " / " + t.Format(timeLayout)
}

type cardView struct {
	SerialNo string
	Status   string
	Color    string
	Date     string
}

type optionView struct {
	Value    string
	Label    string
	Selected bool
}

type editView struct {
	SerialNo string
	Options  []optionView
}

type pageView struct {
	Editing bool
	Edit    editView
	Cards   []cardView
}

type Renderer struct {
	tpl *template.Template
	loc *time.Location
}

func NewRenderer(loc *time.Location) (*Renderer, error) {
	tpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	if loc == nil {
		loc = time.Local
	}
	return &Renderer{tpl: tpl, loc: loc}, nil
}

// Render writes the board page for one snapshot of a session.
func (r *Renderer) Render(w io.Writer, hubs []models.Hub, mode Mode) error {
	return r.tpl.ExecuteTemplate(w, "board.html", r.view(hubs, mode))
}

func (r *Renderer) view(hubs []models.Hub, mode Mode) pageView {
	v := pageView{Cards: make([]cardView, 0, len(hubs))}
	for _, h := range hubs {
		v.Cards = append(v.Cards, cardView{
			SerialNo: h.SerialNo,
			Status:   string(h.Status),
			Color:    h.Status.Color(),
			Date:     FormatStatusDate(h.StatusDate, r.loc),
		})
	}
	if ed, ok := mode.(Editing); ok {
		v.Editing = true
		v.Edit.SerialNo = ed.Candidate.SerialNo
		for _, st := range models.AllStatuses() {
			v.Edit.Options = append(v.Edit.Options, optionView{
				Value:    string(st),
				Label:    st.Label(),
				Selected: st == ed.Candidate.Status,
			})
		}
	}
	return v
}
