package snapshot

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// FetchLog stores the timing information for fetch runs
type FetchLog struct {
	LastFetchStart time.Time `json:"last_fetch_start"`
	LastFetchEnd   time.Time `json:"last_fetch_end"`
}

// Tracker persists fetch timing next to the snapshots
type Tracker struct {
	filePath string
}

// NewTracker creates a tracker that stores timing in
// dir/fetch_timestamps.json
func NewTracker(dir string) *Tracker {
	return &Tracker{
		filePath: filepath.Join(dir, "fetch_timestamps.json"),
	}
}

// Load reads the last recorded fetch timing from file. A missing file
// yields zero timestamps, not an error.
func (t *Tracker) Load() (FetchLog, error) {
	var fetchLog FetchLog

	data, err := os.ReadFile(t.filePath)
	if err != nil {
		return fetchLog, nil
	}

	err = json.Unmarshal(data, &fetchLog)
	return fetchLog, err
}

// MarkStart records when a fetch run started
func (t *Tracker) MarkStart() error {
	fetchLog, _ := t.Load()
	fetchLog.LastFetchStart = time.Now()
	return t.save(fetchLog)
}

// MarkEnd records when a fetch run completed
func (t *Tracker) MarkEnd() error {
	fetchLog, _ := t.Load()
	fetchLog.LastFetchEnd = time.Now()
	return t.save(fetchLog)
}

// save persists the fetch log to file
func (t *Tracker) save(fetchLog FetchLog) error {
	if err := os.MkdirAll(filepath.Dir(t.filePath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(fetchLog, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(t.filePath, data, 0644)
}
