package snapshot

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/natuzuta/the-finals-active-watcher/internal/api"
)

func sampleSnapshot() Snapshot {
	return New("sangwoo", "s9",
		&api.RankedResponse{
			Count: 1,
			Data: []api.RankedEntry{
				{Rank: 42, Name: "sangwoo猫", League: "Diamond 1", RankScore: 31337, Change: 12, ClubTag: "FIN"},
			},
		},
		&api.WorldTourResponse{
			Count: 1,
			Data: []api.WorldTourEntry{
				{Rank: 7, Name: "sangwoo猫", Cashouts: 1500000},
			},
		})
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	snap := sampleSnapshot()

	path, err := Save(dir, snap)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	pattern := regexp.MustCompile(`^result_\d{8}_\d{6}\.json$`)
	if !pattern.MatchString(filepath.Base(path)) {
		t.Fatalf("unexpected filename: %s", filepath.Base(path))
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Keyword != snap.Keyword || loaded.Timestamp != snap.Timestamp || loaded.Season != snap.Season {
		t.Fatalf("metadata mismatch: %+v vs %+v", loaded, snap)
	}
	if loaded.RankedLeaderboard == nil || loaded.WorldTour == nil {
		t.Fatal("sections lost in round trip")
	}
	if loaded.RankedLeaderboard.Data[0] != snap.RankedLeaderboard.Data[0] {
		t.Fatalf("ranked entry mismatch: %+v", loaded.RankedLeaderboard.Data[0])
	}
	if loaded.WorldTour.Data[0] != snap.WorldTour.Data[0] {
		t.Fatalf("world tour entry mismatch: %+v", loaded.WorldTour.Data[0])
	}
}

func TestSave_PreservesNonASCIILiterally(t *testing.T) {
	dir := t.TempDir()

	path, err := Save(dir, sampleSnapshot())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if !strings.Contains(string(raw), "sangwoo猫") {
		t.Fatal("non-ASCII name was escaped in the snapshot file")
	}
	if !strings.Contains(string(raw), "\n  \"keyword\"") {
		t.Fatal("snapshot is not indented")
	}
}

func TestSave_AbsentSectionsAreNull(t *testing.T) {
	dir := t.TempDir()

	path, err := Save(dir, New("sangwoo", "s9", nil, nil))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if !strings.Contains(string(raw), `"ranked_leaderboard": null`) {
		t.Fatalf("expected null ranked section, got:\n%s", raw)
	}
	if !strings.Contains(string(raw), `"world_tour": null`) {
		t.Fatalf("expected null world tour section, got:\n%s", raw)
	}
}

func TestDiscover_SortedAndFiltered(t *testing.T) {
	dir := t.TempDir()

	names := []string{
		"result_20250102_120000.json",
		"result_20250101_080000.json",
		"result_20250103_233000.json",
		"notes.txt",
		"other.json",
	}
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0644); err != nil {
			t.Fatalf("write failed: %v", err)
		}
	}

	files, err := Discover(dir)
	if err != nil {
		t.Fatalf("discover failed: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("expected 3 snapshot files, got %d", len(files))
	}

	want := []string{
		"result_20250101_080000.json",
		"result_20250102_120000.json",
		"result_20250103_233000.json",
	}
	for i, file := range files {
		if filepath.Base(file) != want[i] {
			t.Fatalf("wrong order at %d: %s", i, filepath.Base(file))
		}
	}
}

func TestDiscover_EmptyDir(t *testing.T) {
	files, err := Discover(t.TempDir())
	if err != nil {
		t.Fatalf("discover failed: %v", err)
	}
	if len(files) != 0 {
		t.Fatalf("expected no files, got %d", len(files))
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "result_20250101_000000.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestTracker_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	tracker := NewTracker(dir)

	if err := tracker.MarkStart(); err != nil {
		t.Fatalf("mark start failed: %v", err)
	}
	if err := tracker.MarkEnd(); err != nil {
		t.Fatalf("mark end failed: %v", err)
	}

	fetchLog, err := tracker.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if fetchLog.LastFetchStart.IsZero() || fetchLog.LastFetchEnd.IsZero() {
		t.Fatalf("timestamps not recorded: %+v", fetchLog)
	}
	if fetchLog.LastFetchEnd.Before(fetchLog.LastFetchStart) {
		t.Fatalf("end before start: %+v", fetchLog)
	}
}

func TestTracker_MissingFileIsNotAnError(t *testing.T) {
	fetchLog, err := NewTracker(t.TempDir()).Load()
	if err != nil {
		t.Fatalf("expected nil error for missing file, got: %v", err)
	}
	if !fetchLog.LastFetchStart.IsZero() {
		t.Fatalf("expected zero timestamps, got %+v", fetchLog)
	}
}
