// Package activity reconstructs a play timeline from a sequence of
// leaderboard snapshots. A change in rank score or cashouts between two
// consecutive snapshots marks the interval as an active play session.
package activity

import (
	"log"
	"path/filepath"
	"sort"

	"github.com/natuzuta/the-finals-active-watcher/internal/snapshot"
)

// Row classification labels
const (
	StatusFirst    = "[START] First"
	StatusActive   = "[ACTIVE] Playing"
	StatusNoChange = "[--] No change"
)

// Sample is the per-snapshot view of the tracked player. Nil fields mean
// the corresponding leaderboard section was absent or had no match.
type Sample struct {
	Timestamp     string
	Filename      string
	PlayerName    string
	Rank          *int
	RankScore     *int
	Cashouts      *int
	WorldTourRank *int
}

// Extract pulls the tracked player's numbers out of a snapshot. The first
// entry of each section is taken to be the tracked player; if the keyword
// matches several players their data is mixed silently.
func Extract(snap snapshot.Snapshot) Sample {
	sample := Sample{Timestamp: snap.Timestamp}

	if ranked := snap.RankedLeaderboard; ranked != nil && len(ranked.Data) > 0 {
		player := ranked.Data[0]
		sample.PlayerName = player.Name
		sample.Rank = intPtr(player.Rank)
		sample.RankScore = intPtr(player.RankScore)
	}

	if worldTour := snap.WorldTour; worldTour != nil && len(worldTour.Data) > 0 {
		player := worldTour.Data[0]
		sample.Cashouts = intPtr(player.Cashouts)
		sample.WorldTourRank = intPtr(player.Rank)
	}

	return sample
}

// CollectSamples loads each snapshot file and extracts its sample.
// Unreadable or unparseable files are logged and skipped; the remaining
// files still form a valid timeline.
func CollectSamples(files []string) []Sample {
	var samples []Sample
	for _, file := range files {
		snap, err := snapshot.Load(file)
		if err != nil {
			log.Printf("⚠️ Skipping unreadable snapshot %s: %v", file, err)
			continue
		}
		sample := Extract(snap)
		sample.Filename = filepath.Base(file)
		samples = append(samples, sample)
	}
	return samples
}

// Row is one classified timeline entry. ScoreDiff and CashoutDiff are zero
// when either side of the comparison was unavailable.
type Row struct {
	Sample
	ScoreDiff   int
	CashoutDiff int
	Status      string
}

// Session is an inferred play period bounded by two snapshot timestamps
type Session struct {
	Start       string
	End         string
	ScoreDiff   int
	CashoutDiff int
}

// Timeline is the full classified history for one tracked player
type Timeline struct {
	PlayerName string
	Rows       []Row
	Sessions   []Session
}

// BuildTimeline sorts samples by timestamp and classifies each consecutive
// pair as an active session or no change. The first sample is always the
// first observation.
func BuildTimeline(samples []Sample) Timeline {
	sorted := make([]Sample, len(samples))
	copy(sorted, samples)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp < sorted[j].Timestamp
	})

	var timeline Timeline
	if len(sorted) > 0 {
		timeline.PlayerName = sorted[0].PlayerName
	}

	var prev *Sample
	for i := range sorted {
		sample := sorted[i]
		row := Row{Sample: sample, Status: StatusFirst}

		if prev != nil {
			row.ScoreDiff = diff(sample.RankScore, prev.RankScore)
			row.CashoutDiff = diff(sample.Cashouts, prev.Cashouts)

			if row.ScoreDiff != 0 || row.CashoutDiff != 0 {
				row.Status = StatusActive
				timeline.Sessions = append(timeline.Sessions, Session{
					Start:       prev.Timestamp,
					End:         sample.Timestamp,
					ScoreDiff:   row.ScoreDiff,
					CashoutDiff: row.CashoutDiff,
				})
			} else {
				row.Status = StatusNoChange
			}
		}

		timeline.Rows = append(timeline.Rows, row)
		prev = &sorted[i]
	}

	return timeline
}

// Totals sums the deltas across all detected sessions
func (t Timeline) Totals() (scoreTotal, cashoutTotal int) {
	for _, session := range t.Sessions {
		scoreTotal += session.ScoreDiff
		cashoutTotal += session.CashoutDiff
	}
	return scoreTotal, cashoutTotal
}

// First returns the earliest row of the timeline
func (t Timeline) First() (Row, bool) {
	if len(t.Rows) == 0 {
		return Row{}, false
	}
	return t.Rows[0], true
}

// Last returns the latest row of the timeline
func (t Timeline) Last() (Row, bool) {
	if len(t.Rows) == 0 {
		return Row{}, false
	}
	return t.Rows[len(t.Rows)-1], true
}

// diff returns current minus previous, or zero when either is unavailable
func diff(current, previous *int) int {
	if current == nil || previous == nil {
		return 0
	}
	return *current - *previous
}

func intPtr(v int) *int {
	return &v
}
