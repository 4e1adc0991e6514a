// Package display renders fetch results and activity timelines to the
// console.
package display

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/natuzuta/the-finals-active-watcher/internal/activity"
	"github.com/natuzuta/the-finals-active-watcher/internal/api"
)

// PrintRanked prints every ranked leaderboard match for the keyword
func PrintRanked(response *api.RankedResponse, keyword string) {
	fmt.Println()
	printDivider("=", 60)
	fmt.Printf("🏆 Ranked leaderboard results (keyword: '%s')\n", keyword)
	printDivider("=", 60)

	if response.Count == 0 {
		fmt.Printf("No players found containing '%s'.\n", keyword)
		return
	}

	fmt.Printf("Players found: %d\n", response.Count)
	printDivider("-", 60)

	for _, player := range response.Data {
		fmt.Printf("  #%d (%s) | %s%s\n", player.Rank, FormatChange(player.Change), clubPrefix(player.ClubTag), player.Name)
		fmt.Printf("       League: %s | Rank score: %s\n", player.League, groupDigits(player.RankScore))
		fmt.Println()
	}
}

// PrintWorldTour prints every world tour match for the keyword
func PrintWorldTour(response *api.WorldTourResponse, keyword string) {
	fmt.Println()
	printDivider("=", 60)
	fmt.Printf("🌍 World tour results (keyword: '%s')\n", keyword)
	printDivider("=", 60)

	if response.Count == 0 {
		fmt.Printf("No players found containing '%s'.\n", keyword)
		return
	}

	fmt.Printf("Players found: %d\n", response.Count)
	printDivider("-", 60)

	for _, player := range response.Data {
		fmt.Printf("  #%d | %s%s\n", player.Rank, clubPrefix(player.ClubTag), player.Name)
		fmt.Printf("       Cashouts: %s\n", FormatCashout(player.Cashouts))
		fmt.Println()
	}
}

// PrintTimeline prints the per-snapshot history table
func PrintTimeline(timeline activity.Timeline) {
	playerName := timeline.PlayerName
	if playerName == "" {
		playerName = "Unknown"
	}
	fmt.Printf("Player: %s\n", playerName)
	printDivider("-", 80)

	fmt.Println("\n[DATA] History and changes:")
	fmt.Println()
	fmt.Printf("%-22s | %8s | %12s | %18s | %-15s\n", "Timestamp", "Rank", "RankScore", "Cashouts", "Status")
	printDivider("-", 90)

	for _, row := range timeline.Rows {
		rankStr := "N/A"
		if row.Rank != nil {
			rankStr = "#" + strconv.Itoa(*row.Rank)
		}

		scoreStr := FormatNumber(row.RankScore)
		if row.ScoreDiff != 0 {
			scoreStr += " (" + Signed(row.ScoreDiff) + ")"
		}

		cashoutStr := FormatNumber(row.Cashouts)
		if row.CashoutDiff != 0 {
			cashoutStr += " (" + Signed(row.CashoutDiff) + ")"
		}

		fmt.Printf("%-22s | %8s | %12s | %18s | %-15s\n",
			FormatTimestamp(row.Timestamp), rankStr, scoreStr, cashoutStr, row.Status)
	}
}

// PrintSummary prints detected sessions, their aggregate deltas and the
// overall first-vs-last comparison
func PrintSummary(timeline activity.Timeline) {
	fmt.Println()
	printDivider("=", 80)
	fmt.Println("[SUMMARY] Activity summary")
	printDivider("=", 80)

	if len(timeline.Sessions) > 0 {
		fmt.Printf("\nDetected play sessions: %d\n\n", len(timeline.Sessions))

		for i, session := range timeline.Sessions {
			fmt.Printf("  [%d] %s - %s\n", i+1, FormatTimestamp(session.Start), FormatTimestamp(session.End))
			fmt.Printf("      RankScore: %s | Cashouts: %s\n", Signed(session.ScoreDiff), Signed(session.CashoutDiff))
			fmt.Println()
		}

		printDivider("-", 80)
		scoreTotal, cashoutTotal := timeline.Totals()
		fmt.Printf("Total: RankScore %s | Cashouts %s\n", Signed(scoreTotal), Signed(cashoutTotal))
	} else {
		fmt.Println("\nNo play activity detected.")
	}

	first, ok := timeline.First()
	if !ok {
		return
	}
	last, _ := timeline.Last()

	fmt.Println()
	printDivider("-", 80)
	fmt.Println("[TOTAL] Overall changes:")
	fmt.Printf("  Period: %s - %s\n", FormatTimestamp(first.Timestamp), FormatTimestamp(last.Timestamp))

	if first.RankScore != nil && last.RankScore != nil {
		delta := *last.RankScore - *first.RankScore
		fmt.Printf("  RankScore: %s -> %s (%s)\n", groupDigits(*first.RankScore), groupDigits(*last.RankScore), Signed(delta))
	}

	if first.Cashouts != nil && last.Cashouts != nil {
		delta := *last.Cashouts - *first.Cashouts
		fmt.Printf("  Cashouts: %s -> %s (%s)\n", FormatCashout(*first.Cashouts), FormatCashout(*last.Cashouts), SignedCurrency(delta))
	}

	fmt.Println()
	printDivider("=", 80)
}

// clubPrefix renders the bracketed club tag prefix, empty when untagged
func clubPrefix(clubTag string) string {
	if clubTag == "" {
		return ""
	}
	return "[" + clubTag + "] "
}

func printDivider(char string, width int) {
	fmt.Println(strings.Repeat(char, width))
}
