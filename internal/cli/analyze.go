package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/stickercube"
	"github.com/SeamusWaldron/stickercube/internal/analysis"
	"github.com/SeamusWaldron/stickercube/internal/storage"
)

var (
	analyzeJSON  bool
	analyzeMoves string
	analyzeAll   bool
	analyzeLimit int
	analyzeMinN  int
	analyzeMaxN  int
	analyzeTopK  int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [id|name|last]",
	Short: "Analyze a move history",
	Long: `Analyze the move history of a saved snapshot, or of a scramble given with
--moves. The report covers wasted moves, repeated sequences, known
algorithms and the phases reached along the way.

With --all, repeated sequences are mined across the most recent snapshots.

Examples:
  stickercube analyze last
  stickercube analyze --moves "R U R' U' R U R' U'"
  stickercube analyze --all --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the report as JSON")
	analyzeCmd.Flags().StringVar(&analyzeMoves, "moves", "", "Analyze this scramble from a solved cube instead of a snapshot")
	analyzeCmd.Flags().BoolVar(&analyzeAll, "all", false, "Mine repeated sequences across recent snapshots")
	analyzeCmd.Flags().IntVar(&analyzeLimit, "limit", 50, "Number of recent snapshots for --all")
	analyzeCmd.Flags().IntVar(&analyzeMinN, "min-n", 2, "Shortest repeated sequence to report")
	analyzeCmd.Flags().IntVar(&analyzeMaxN, "max-n", 8, "Longest repeated sequence to report")
	analyzeCmd.Flags().IntVar(&analyzeTopK, "top", 3, "Sequences kept per length")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if analyzeMinN < 1 || analyzeMaxN < analyzeMinN {
		return fmt.Errorf("invalid sequence lengths: --min-n %d --max-n %d", analyzeMinN, analyzeMaxN)
	}
	if analyzeAll {
		return runAnalyzeAll(cmd)
	}

	start, moves, err := analyzeInput(args)
	if err != nil {
		return err
	}

	report := analysis.Analyze(start, moves, analyzeMinN, analyzeMaxN, analyzeTopK)
	logger.Debug("analyzed", "moves", len(moves), "matches", len(report.Algorithms.Matches))

	out := cmd.OutOrStdout()
	if analyzeJSON {
		return writeJSON(out, report)
	}
	printReport(out, report)
	return nil
}

// analyzeInput returns the starting cube and moves to analyze.
func analyzeInput(args []string) (stickercube.Cube, []stickercube.Move, error) {
	if analyzeMoves != "" {
		moves, err := parseScramble([]string{analyzeMoves})
		return stickercube.New(), moves, err
	}

	ref := ""
	if len(args) > 0 {
		ref = args[0]
	}

	db, err := openDB()
	if err != nil {
		return stickercube.Cube{}, nil, err
	}
	defer db.Close()

	s, err := resolveSnapshot(storage.NewSnapshotRepository(db), ref)
	if err != nil {
		return stickercube.Cube{}, nil, err
	}
	final, err := s.Cube()
	if err != nil {
		return stickercube.Cube{}, nil, err
	}
	return analysis.StartOf(final, s.State.Moves), s.State.Moves, nil
}

func runAnalyzeAll(cmd *cobra.Command) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	snapshots, err := storage.NewSnapshotRepository(db).List(analyzeLimit)
	if err != nil {
		return err
	}

	moveRepo := storage.NewMoveRepository(db)
	reports := make(map[string]*analysis.NGramReport, len(snapshots))
	for _, s := range snapshots {
		records, err := moveRepo.GetBySnapshot(s.SnapshotID)
		if err != nil {
			return err
		}
		moves, err := storage.ToMoves(records)
		if err != nil {
			return err
		}
		reports[s.SnapshotID] = analysis.MineNGrams(moves, analyzeMinN, analyzeMaxN, analyzeTopK)
	}
	merged := analysis.MergeNGramReports(reports, analyzeTopK)
	logger.Debug("mined snapshots", "count", len(snapshots))

	out := cmd.OutOrStdout()
	if analyzeJSON {
		return writeJSON(out, merged)
	}
	fmt.Fprintf(out, "Snapshots: %d\n\n", len(snapshots))
	printNGrams(out, merged)
	return nil
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

func printReport(w io.Writer, r *analysis.Report) {
	s := r.Summary
	fmt.Fprintf(w, "Moves:      %d (simplified %d, efficiency %.0f%%)\n", s.TotalMoves, s.SimplifiedMoves, s.Efficiency*100)
	fmt.Fprintf(w, "Phase:      %s\n", s.Phase)
	if s.MostUsedAxis != "" {
		fmt.Fprintf(w, "Most used:  %s (%d)\n", s.MostUsedAxis, s.AxisCounts[s.MostUsedAxis])
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Phase timeline:")
	for _, m := range s.PhaseTimeline {
		fmt.Fprintf(w, "  %4d  %s\n", m.AfterMoves, m.DisplayName)
	}
	fmt.Fprintln(w)

	rep := r.Repetitions
	fmt.Fprintf(w, "Wasted moves: %d (%d cancellations, %d merges, %d back-and-forth runs)\n",
		rep.TotalWastedMoves, len(rep.ImmediateCancellations), len(rep.MergeOpportunities), len(rep.BackAndForthPatterns))
	fmt.Fprintln(w)

	if len(r.Algorithms.Matches) > 0 {
		fmt.Fprintln(w, "Algorithms:")
		names := make([]string, 0, len(r.Algorithms.Counts))
		for name := range r.Algorithms.Counts {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(w, "  %-14s x%d\n", name, r.Algorithms.Counts[name])
		}
		fmt.Fprintln(w)
	}

	printNGrams(w, r.NGrams)

	if len(r.Suggestions) > 0 {
		fmt.Fprintln(w, "Suggestions:")
		for _, hint := range r.Suggestions {
			fmt.Fprintf(w, "  - %s\n", hint)
		}
	}
}

func printNGrams(w io.Writer, r *analysis.NGramReport) {
	if len(r.TopNGrams) == 0 {
		fmt.Fprintln(w, "No repeated sequences.")
		fmt.Fprintln(w)
		return
	}

	lengths := make([]int, 0, len(r.TopNGrams))
	for n := range r.TopNGrams {
		lengths = append(lengths, n)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(lengths)))

	fmt.Fprintln(w, "Repeated sequences:")
	for _, n := range lengths {
		for _, ng := range r.TopNGrams[n] {
			fmt.Fprintf(w, "  n=%-2d %-30s x%d\n", n, strings.Join(ng.Sequence, " "), ng.Count)
		}
	}
	fmt.Fprintln(w)
}
