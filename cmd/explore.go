package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/explainthis/internal/explore"
	"github.com/abhisek/explainthis/internal/ui/theme"
)

var exploreCmd = &cobra.Command{
	Use:   "explore [category]",
	Short: "Browse starter concepts by category",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			cat, ok := explore.Find(args[0])
			if !ok {
				var ids []string
				for _, c := range explore.Categories() {
					ids = append(ids, c.ID)
				}
				return fmt.Errorf("unknown category %q (available: %s)", args[0], strings.Join(ids, ", "))
			}
			fmt.Printf("%s %s\n", cat.Icon, theme.Title.Render(cat.Name))
			for _, concept := range cat.Concepts {
				fmt.Printf("  • %s\n", concept)
			}
			fmt.Println()
			fmt.Println(theme.Hint.Render("Try: explainthis explain \"what is " + cat.Concepts[0] + "\""))
			return nil
		}

		fmt.Println(theme.Title.Render("Explore Concepts"))
		fmt.Println()
		for _, cat := range explore.Categories() {
			fmt.Printf("%s %s %s\n",
				cat.Icon,
				theme.Body.Render(cat.Name),
				theme.Hint.Render("("+cat.ID+", "+fmt.Sprint(len(cat.Concepts))+" concepts)"),
			)
		}
		fmt.Println()
		fmt.Println(theme.Hint.Render("Show a category: explainthis explore <id>"))
		return nil
	},
}
