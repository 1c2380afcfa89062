package templates

import (
	"io"
	"text/template"

	"mission-service/internal/domain/entity"
	"mission-service/pkg/utils"

	"github.com/fatih/color"
)

// MissionPage is the data rendered by the mission list template
type MissionPage struct {
	Missions []entity.Mission
	Page     int
	HasPrev  bool
	HasNext  bool
	Total    int
}

const missionCardTemplate = `{{define "card"}}{{bold .Name}}  [{{status .Status}}]
  ID:          {{.ID}}
  Destination: {{.Destination}}
  Launch Date: {{date .LaunchDate}}
  Spacecraft:  {{.SpaceCraft}}
{{end}}`

const missionPageTemplate = `{{range .Missions}}{{template "card" .}}
{{else}}No missions found.
{{end}}{{if .HasPrev}}< Previous  {{end}}Page {{.Page}} ({{.Total}} missions){{if .HasNext}}  Next >{{end}}
`

var (
	statusColors = map[string]*color.Color{
		entity.MissionStatusPlanned:    color.New(color.FgBlue),
		entity.MissionStatusInProgress: color.New(color.FgYellow),
		entity.MissionStatusCompleted:  color.New(color.FgGreen),
	}
	otherStatusColor = color.New(color.FgRed)

	funcs = template.FuncMap{
		"bold":   color.New(color.Bold).SprintFunc(),
		"status": StatusLabel,
		"date":   utils.FormatLaunchDate,
	}

	cardTmpl = template.Must(template.New("mission").Funcs(funcs).Parse(missionCardTemplate))
	pageTmpl = template.Must(template.Must(cardTmpl.Clone()).New("page").Parse(missionPageTemplate))
)

// StatusLabel colours a status the way the site's badges do: Planned blue,
// In Progress yellow, Completed green, anything else red.
func StatusLabel(status string) string {
	c, ok := statusColors[status]
	if !ok {
		c = otherStatusColor
	}
	return c.Sprint(status)
}

// RenderMission writes a single mission card
func RenderMission(w io.Writer, m entity.Mission) error {
	return cardTmpl.ExecuteTemplate(w, "card", m)
}

// RenderPage writes one page of mission cards followed by the pager line
func RenderPage(w io.Writer, page MissionPage) error {
	return pageTmpl.ExecuteTemplate(w, "page", page)
}
