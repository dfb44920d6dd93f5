package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresAll   bool
	flagScoresClear bool
	flagDump        bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show the run history",
	Long: `Display the best runs for a variant, or a summary of every variant
with --all.

Examples:
  flappy scores
  flappy scores classic --limit 20
  flappy scores --all
  flappy scores lives --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List the variants",
	Long: `List the playable variants, or print the default configuration
with --dump as a starting point for --config.

Examples:
  flappy variants
  flappy variants --dump > flappy.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		if flagDump {
			_, err := out.Write(config.DefaultYAML())
			return err
		}
		printVariants(out)
		return nil
	},
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Summarize every variant")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the variant's history")
	variantsCmd.Flags().BoolVar(&flagDump, "dump", false, "Print the default config YAML")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := openStore(true)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if flagScoresAll {
		stats, err := store.GetAllStats()
		if err != nil {
			return err
		}
		printStats(out, stats)
		return nil
	}

	v, err := resolveVariant(args)
	if err != nil {
		return err
	}

	if flagScoresClear {
		if err := store.ClearScores(string(v)); err != nil {
			return err
		}
		logger.Info("history cleared", "variant", v)
		return nil
	}

	runs, err := store.TopScores(string(v), flagScoresLimit)
	if err != nil {
		return err
	}
	printRuns(out, v, runs)
	return nil
}

func printRuns(w io.Writer, v config.Variant, runs []storage.Run) {
	title := string(v)
	if info, ok := v.Info(); ok {
		title = info.Title
	}
	fmt.Fprintf(w, "High Scores - %s\n\n", title)

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'flappy play %s' to set the first score!\n", v)
		return
	}

	fmt.Fprintf(w, "  %-4s  %-6s  %-7s  %-20s  %s\n", "Rank", "Score", "Frames", "Seed", "Date")
	fmt.Fprintf(w, "  %-4s  %-6s  %-7s  %-20s  %s\n", "----", "-----", "------", "----", "----")
	for i, r := range runs {
		fmt.Fprintf(w, "  %-4d  %-6d  %-7d  %-20d  %s\n",
			i+1, r.Score, r.Frames, r.Seed, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Fprintf(w, "\nBest: %d\n", runs[0].Score)
}

func printStats(w io.Writer, stats map[string]*storage.VariantStats) {
	if len(stats) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		return
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Fprintf(w, "  %-10s  %-5s  %-5s  %-7s  %s\n", "Variant", "Runs", "Best", "Average", "Last played")
	for _, id := range ids {
		s := stats[id]
		fmt.Fprintf(w, "  %-10s  %-5d  %-5d  %-7.1f  %s\n",
			id, s.Runs, s.HighScore, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
}

func printVariants(w io.Writer) {
	fmt.Fprintln(w, "Available variants:")
	fmt.Fprintln(w)
	for _, info := range config.Variants() {
		marker := " "
		if info.ID == config.DefaultVariant {
			marker = "*"
		}
		fmt.Fprintf(w, " %s %-10s %-10s %s\n", marker, info.ID, info.Title, info.Description)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Play with: flappy play <variant>   (* default)\n")
	fmt.Fprintf(w, "Config: %s, or --config <file>\n", config.LocalConfigPath)
}
