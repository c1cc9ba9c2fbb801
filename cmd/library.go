package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/explainthis/internal/library"
	"github.com/abhisek/explainthis/internal/store"
	"github.com/abhisek/explainthis/internal/ui/theme"
)

var libraryCmd = &cobra.Command{
	Use:     "library",
	Aliases: []string{"lib"},
	Short:   "Manage saved explanations",
}

var libraryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved explanations",
	RunE: func(cmd *cobra.Command, args []string) error {
		search, _ := cmd.Flags().GetString("search")
		sortFlag, _ := cmd.Flags().GetString("sort")

		sortKey, err := library.ParseSortKey(sortFlag)
		if err != nil {
			return err
		}

		st, lib, err := openLibrary(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		records := lib.Query(search, sortKey)
		if len(records) == 0 {
			if search != "" {
				fmt.Printf("No saved explanations match %q.\n", search)
			} else {
				fmt.Println("Your library is empty. Save one with: explainthis explain <question> --save")
			}
			return nil
		}

		for _, rec := range records {
			fmt.Printf("%s  %s  %s\n",
				theme.Subtitle.Render(rec.Timestamp.Local().Format("2006-01-02")),
				theme.LevelBadge(string(rec.Level)),
				theme.Title.Render(rec.Concept),
			)
			fmt.Printf("   %s\n", theme.Hint.Render("id: "+rec.ID))
		}
		fmt.Printf("\n%d saved\n", len(records))
		return nil
	},
}

var libraryViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show a saved explanation in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, lib, err := openLibrary(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		rec, ok := lib.Get(args[0])
		if !ok {
			return fmt.Errorf("no saved explanation with id %q", args[0])
		}
		printExplanation(&rec)
		return nil
	},
}

var libraryDeleteCmd = &cobra.Command{
	Use:   "delete <id> [id...]",
	Short: "Delete saved explanations by id",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, lib, err := openLibrary(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		before := lib.Len()
		if err := lib.DeleteMany(cmdContext(cmd), args); err != nil {
			return fmt.Errorf("delete: %w", err)
		}
		removed := before - lib.Len()
		if removed == 0 {
			fmt.Println("Nothing matched; library unchanged.")
			return nil
		}
		fmt.Printf("Deleted %d explanation(s).\n", removed)
		return nil
	},
}

var libraryExportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export the library to a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, lib, err := openLibrary(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := lib.Export(args[0]); err != nil {
			return err
		}
		fmt.Printf("Exported %d explanation(s) to %s\n", lib.Len(), args[0])
		return nil
	},
}

var libraryImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Merge explanations from an exported JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, lib, err := openLibrary(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		res, err := lib.Import(cmdContext(cmd), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Imported %d explanation(s), skipped %d duplicate(s).\n", res.Added, res.Skipped)
		return nil
	},
}

// openLibrary opens the store and loads the library on top of it. The
// caller closes the returned store.
func openLibrary(cmd *cobra.Command) (*store.Store, *library.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	lib, err := library.Open(cmdContext(cmd), st.KVRepo())
	if err != nil {
		st.Close()
		return nil, nil, err
	}
	return st, lib, nil
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func init() {
	libraryListCmd.Flags().StringP("search", "s", "", "Filter by concept, explanation text or level")
	libraryListCmd.Flags().String("sort", "newest", "Sort order: newest, oldest, az, za")

	libraryCmd.AddCommand(libraryListCmd)
	libraryCmd.AddCommand(libraryViewCmd)
	libraryCmd.AddCommand(libraryDeleteCmd)
	libraryCmd.AddCommand(libraryExportCmd)
	libraryCmd.AddCommand(libraryImportCmd)
}
