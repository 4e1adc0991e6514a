package main

import (
	"fmt"
	"log"

	"github.com/natuzuta/the-finals-active-watcher/internal/activity"
	"github.com/natuzuta/the-finals-active-watcher/internal/config"
	"github.com/natuzuta/the-finals-active-watcher/internal/display"
	"github.com/natuzuta/the-finals-active-watcher/internal/report"
	"github.com/natuzuta/the-finals-active-watcher/internal/snapshot"
)

func main() {
	cfg := config.Load()

	files, err := snapshot.Discover(cfg.OutputDir)
	if err != nil {
		log.Printf("⚠️ Could not list snapshot files: %v", err)
		return
	}
	if len(files) == 0 {
		fmt.Println("No snapshot files found.")
		return
	}

	fmt.Println("================================================================================")
	fmt.Println("[GAME] THE FINALS - Player Activity Analysis")
	fmt.Println("================================================================================")
	fmt.Printf("Files to analyze: %d\n\n", len(files))

	samples := activity.CollectSamples(files)
	if len(samples) == 0 {
		fmt.Println("No valid snapshot data.")
		return
	}

	timeline := activity.BuildTimeline(samples)
	display.PrintTimeline(timeline)
	display.PrintSummary(timeline)

	if path, err := report.WriteHTML(cfg.OutputDir, timeline); err != nil {
		log.Printf("⚠️ Could not write HTML report: %v", err)
	} else {
		log.Printf("📄 HTML report: %s", path)
	}
}
