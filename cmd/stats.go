package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/explainthis/internal/explain"
	"github.com/abhisek/explainthis/internal/progress"
	"github.com/abhisek/explainthis/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, lib, err := openLibrary(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		stats := progress.Compute(lib.All())

		if stats.TotalConcepts == 0 {
			fmt.Println("No activity yet. Explain something first: explainthis explain <question>")
			return nil
		}

		fmt.Println(theme.Title.Render("Learning Progress"))
		fmt.Println(strings.Repeat("─", 48))
		fmt.Printf("Concepts explored:  %d\n", stats.TotalConcepts)
		fmt.Printf("Saved:              %d\n", stats.SavedCount)
		if stats.FavoriteLevel != "" {
			fmt.Printf("Favorite level:     %s\n", theme.LevelBadge(string(stats.FavoriteLevel)))
		}

		fmt.Println()
		fmt.Println(theme.SectionHeader.Render("By Level"))
		for _, lvl := range explain.Levels() {
			count := stats.ByLevel[lvl]
			if count == 0 {
				continue
			}
			bar := strings.Repeat("█", count)
			fmt.Printf("%-14s %s %d\n", theme.LevelBadge(string(lvl)), bar, count)
		}

		if len(stats.RecentActivity) > 0 {
			fmt.Println()
			fmt.Println(theme.SectionHeader.Render("Recent Activity"))
			for _, rec := range stats.RecentActivity {
				fmt.Printf("%s  %s  %s\n",
					theme.Subtitle.Render(rec.Timestamp.Local().Format("2006-01-02 15:04")),
					theme.LevelBadge(string(rec.Level)),
					rec.Concept,
				)
			}
		}
		return nil
	},
}
