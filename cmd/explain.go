package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/explainthis/internal/explain"
	"github.com/abhisek/explainthis/internal/library"
	"github.com/abhisek/explainthis/internal/llm"
	"github.com/abhisek/explainthis/internal/store"
	"github.com/abhisek/explainthis/internal/ui/theme"
)

var explainCmd = &cobra.Command{
	Use:   "explain <question>",
	Short: "Explain a concept at the chosen level",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runExplain,
}

func init() {
	explainCmd.Flags().Bool("save", false, "Save the explanation to the library")
}

func runExplain(cmd *cobra.Command, args []string) error {
	question := strings.TrimSpace(strings.Join(args, " "))
	if question == "" {
		return fmt.Errorf("nothing to explain")
	}

	levelFlag, _ := cmd.Flags().GetString("level")
	level, err := explain.ParseLevel(levelFlag)
	if err != nil {
		return err
	}
	save, _ := cmd.Flags().GetBool("save")

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer st.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		var missing *llm.ErrMissingCredential
		if errors.As(err, &missing) {
			return fmt.Errorf("%w\n\nSet %s and try again.", err, missing.EnvVar)
		}
		return err
	}

	svc := explain.NewService(provider, explain.DefaultConfig())

	fmt.Println(theme.Hint.Render("Thinking..."))
	rec, err := svc.Explain(ctx, question, level)
	if err != nil {
		return err
	}

	printExplanation(rec)

	if save {
		lib, err := library.Open(ctx, st.KVRepo())
		if err != nil {
			return err
		}
		alreadySaved, err := lib.Save(ctx, *rec)
		if err != nil {
			return fmt.Errorf("save to library: %w", err)
		}
		if alreadySaved {
			fmt.Println(theme.Hint.Render("Already in your library."))
		} else {
			fmt.Println(theme.SuccessText.Render("✓ Saved to library (" + rec.ID + ")"))
		}
	} else {
		fmt.Println(theme.Hint.Render("Tip: add --save to keep this explanation."))
	}

	return nil
}

func printExplanation(rec *explain.Explanation) {
	var b strings.Builder

	b.WriteString(theme.Title.Render(rec.Concept))
	b.WriteString("  ")
	b.WriteString(theme.LevelBadge(string(rec.Level)))
	b.WriteString("\n")

	section := func(header, body string) {
		if body == "" {
			return
		}
		b.WriteString("\n")
		b.WriteString(theme.SectionHeader.Render(header))
		b.WriteString("\n")
		b.WriteString(theme.Body.Render(body))
		b.WriteString("\n")
	}

	section(explain.HeaderSimple, rec.Body.Simple)
	section(explain.HeaderAnalogy, rec.Body.Analogy)
	section(explain.HeaderExample, rec.Body.Example)
	section(explain.HeaderWhyItMatters, rec.Body.WhyItMatters)

	if len(rec.Body.RelatedConcepts) > 0 {
		b.WriteString("\n")
		b.WriteString(theme.SectionHeader.Render(explain.HeaderRelated))
		b.WriteString("\n")
		b.WriteString(theme.Subtitle.Render(strings.Join(rec.Body.RelatedConcepts, " · ")))
		b.WriteString("\n")
	}

	fmt.Println(theme.Card.Render(b.String()))
}
