// Package report exports the analyzed timeline as a standalone HTML
// document next to the snapshots it was derived from.
package report

import (
	"bytes"
	"html/template"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/natuzuta/the-finals-active-watcher/internal/activity"
	"github.com/natuzuta/the-finals-active-watcher/internal/display"
)

// ReportFile is the report filename within the snapshot directory
const ReportFile = "activity_report.html"

type rowView struct {
	Timestamp string
	Rank      string
	Score     string
	Cashouts  string
	Status    string
}

type sessionView struct {
	Index    int
	Start    string
	End      string
	Score    string
	Cashouts string
}

type reportView struct {
	PlayerName   string
	GeneratedAt  string
	Rows         []rowView
	Sessions     []sessionView
	SessionCount int
	ScoreTotal   string
	CashoutTotal string
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Player Activity Report - {{.PlayerName}}</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 4px 10px; text-align: left; }
.summary { margin-top: 1.5em; }
</style>
</head>
<body>
<h1>Player Activity Report</h1>
<p>Player: <strong>{{.PlayerName}}</strong> &middot; generated {{.GeneratedAt}}</p>
<table class="timeline">
<thead>
<tr><th>Timestamp</th><th>Rank</th><th>RankScore</th><th>Cashouts</th><th>Status</th></tr>
</thead>
<tbody>
{{range .Rows}}<tr><td>{{.Timestamp}}</td><td>{{.Rank}}</td><td>{{.Score}}</td><td>{{.Cashouts}}</td><td>{{.Status}}</td></tr>
{{end}}</tbody>
</table>
<div class="summary">
<h2>Activity summary</h2>
<p>Detected play sessions: <span id="session-count">{{.SessionCount}}</span></p>
{{if .Sessions}}<ul>
{{range .Sessions}}<li>[{{.Index}}] {{.Start}} - {{.End}}: RankScore {{.Score}}, Cashouts {{.Cashouts}}</li>
{{end}}</ul>
<p id="session-total">Total: RankScore {{.ScoreTotal}} | Cashouts {{.CashoutTotal}}</p>
{{else}}<p>No play activity detected.</p>
{{end}}</div>
</body>
</html>
`))

// WriteHTML renders the timeline into dir and returns the report path.
// The write goes through a temp file and rename, as with snapshots.
func WriteHTML(dir string, timeline activity.Timeline) (string, error) {
	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, buildView(timeline)); err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	filename := filepath.Join(dir, ReportFile)
	tempFile := filename + ".tmp"
	if err := os.WriteFile(tempFile, buf.Bytes(), 0644); err != nil {
		return "", err
	}
	if err := os.Rename(tempFile, filename); err != nil {
		os.Remove(tempFile)
		return "", err
	}

	return filename, nil
}

func buildView(timeline activity.Timeline) reportView {
	playerName := timeline.PlayerName
	if playerName == "" {
		playerName = "Unknown"
	}

	view := reportView{
		PlayerName:   playerName,
		GeneratedAt:  time.Now().Format("2006/01/02 15:04:05"),
		SessionCount: len(timeline.Sessions),
	}

	for _, row := range timeline.Rows {
		rank := "N/A"
		if row.Rank != nil {
			rank = "#" + strconv.Itoa(*row.Rank)
		}
		score := display.FormatNumber(row.RankScore)
		if row.ScoreDiff != 0 {
			score += " (" + display.Signed(row.ScoreDiff) + ")"
		}
		cashouts := display.FormatNumber(row.Cashouts)
		if row.CashoutDiff != 0 {
			cashouts += " (" + display.Signed(row.CashoutDiff) + ")"
		}
		view.Rows = append(view.Rows, rowView{
			Timestamp: display.FormatTimestamp(row.Timestamp),
			Rank:      rank,
			Score:     score,
			Cashouts:  cashouts,
			Status:    row.Status,
		})
	}

	for i, session := range timeline.Sessions {
		view.Sessions = append(view.Sessions, sessionView{
			Index:    i + 1,
			Start:    display.FormatTimestamp(session.Start),
			End:      display.FormatTimestamp(session.End),
			Score:    display.Signed(session.ScoreDiff),
			Cashouts: display.Signed(session.CashoutDiff),
		})
	}

	scoreTotal, cashoutTotal := timeline.Totals()
	view.ScoreTotal = display.Signed(scoreTotal)
	view.CashoutTotal = display.Signed(cashoutTotal)

	return view
}
