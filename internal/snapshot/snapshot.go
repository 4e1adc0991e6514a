// Package snapshot persists timestamped leaderboard captures as plain JSON
// files. Snapshots are write-once and never mutated; two runs starting
// within the same second produce the same filename and the later one wins.
package snapshot

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/natuzuta/the-finals-active-watcher/internal/api"
)

const filePattern = "result_*.json"

// Snapshot is one timestamped capture of a player's leaderboard standing.
// A failed endpoint fetch is stored as null for that section.
type Snapshot struct {
	Keyword           string                 `json:"keyword"`
	Timestamp         string                 `json:"timestamp"`
	Season            string                 `json:"season"`
	RankedLeaderboard *api.RankedResponse    `json:"ranked_leaderboard"`
	WorldTour         *api.WorldTourResponse `json:"world_tour"`

	createdAt time.Time
}

// New builds a snapshot stamped with the current local time
func New(keyword, season string, ranked *api.RankedResponse, worldTour *api.WorldTourResponse) Snapshot {
	now := time.Now()
	return Snapshot{
		Keyword:           keyword,
		Timestamp:         now.Format(time.RFC3339),
		Season:            season,
		RankedLeaderboard: ranked,
		WorldTour:         worldTour,
		createdAt:         now,
	}
}

// fileStamp returns the filename timestamp suffix for this snapshot
func (s Snapshot) fileStamp() string {
	t := s.createdAt
	if t.IsZero() {
		if parsed, err := time.Parse(time.RFC3339, s.Timestamp); err == nil {
			t = parsed
		} else {
			t = time.Now()
		}
	}
	return t.Format("20060102_150405")
}

// Save writes the snapshot to dir as result_YYYYMMDD_HHMMSS.json and
// returns the file path. The write goes through a temp file and rename so
// a crash never leaves a half-written snapshot behind. Non-ASCII player
// names are stored literally, not escaped.
func Save(dir string, snap Snapshot) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	filename := filepath.Join(dir, "result_"+snap.fileStamp()+".json")
	tempFile := filename + ".tmp"

	file, err := os.Create(tempFile)
	if err != nil {
		return "", err
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(snap); err != nil {
		file.Close()
		os.Remove(tempFile)
		return "", err
	}
	if err := file.Close(); err != nil {
		os.Remove(tempFile)
		return "", err
	}

	if err := os.Rename(tempFile, filename); err != nil {
		os.Remove(tempFile)
		return "", err
	}

	return filename, nil
}

// Load reads one snapshot file
func Load(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, err
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// Discover lists all snapshot files in dir sorted by filename. The fixed
// timestamp suffix makes lexicographic order chronological order.
func Discover(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, filePattern))
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
