package main

import (
	"log"
	"strings"

	"github.com/natuzuta/the-finals-active-watcher/internal/api"
	"github.com/natuzuta/the-finals-active-watcher/internal/config"
	"github.com/natuzuta/the-finals-active-watcher/internal/display"
	"github.com/natuzuta/the-finals-active-watcher/internal/snapshot"
)

func main() {
	log.Println("🎮 THE FINALS player watcher")

	cfg := config.Load()
	log.Printf("Season: %s | Platform: %s", strings.ToUpper(cfg.Season), cfg.Platform)

	if cfg.Keyword == "" {
		log.Println("❌ No search keyword configured")
		log.Println("Set FINALS_KEYWORD in .env or the environment and run again")
		return
	}

	log.Printf("🔍 Searching for '%s'...", cfg.Keyword)

	tracker := snapshot.NewTracker(cfg.OutputDir)
	if err := tracker.MarkStart(); err != nil {
		log.Printf("⚠️ Could not record fetch start: %v", err)
	}

	client := api.NewClient(cfg.BaseURL, cfg.Season, cfg.Platform, cfg.RequestTimeout)

	// Each endpoint is fetched independently; a failure on one side still
	// leaves the other in the snapshot.
	ranked, err := client.SearchRanked(cfg.Keyword)
	if err != nil {
		log.Printf("⚠️ Ranked leaderboard request failed: %v", err)
		ranked = nil
	} else {
		display.PrintRanked(ranked, cfg.Keyword)
	}

	worldTour, err := client.SearchWorldTour(cfg.Keyword)
	if err != nil {
		log.Printf("⚠️ World tour request failed: %v", err)
		worldTour = nil
	} else {
		display.PrintWorldTour(worldTour, cfg.Keyword)
	}

	snap := snapshot.New(cfg.Keyword, cfg.Season, ranked, worldTour)
	path, err := snapshot.Save(cfg.OutputDir, snap)
	if err != nil {
		log.Printf("⚠️ Could not save snapshot: %v", err)
	} else {
		log.Printf("📁 Snapshot saved: %s", path)
	}

	if err := tracker.MarkEnd(); err != nil {
		log.Printf("⚠️ Could not record fetch end: %v", err)
	}

	log.Println("✅ Search complete")
}
