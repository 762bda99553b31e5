package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/stickercube"
	"github.com/SeamusWaldron/stickercube/internal/notation"
	"github.com/SeamusWaldron/stickercube/internal/render"
	"github.com/SeamusWaldron/stickercube/internal/snapshot"
)

var (
	applyJSON  bool
	applyFrom  string
	applyColor bool
)

var applyCmd = &cobra.Command{
	Use:   "apply [notation...]",
	Short: "Apply a scramble and print the cube",
	Long: `Apply a scramble to a solved cube (or a saved state) and print the result
as an unfolded net.

Examples:
  stickercube apply "R U R' U'"
  stickercube apply "F R U R' U' F'" --json
  stickercube apply x y --from state.json.zst`,
	RunE: runApply,
}

var parseCmd = &cobra.Command{
	Use:   "parse [notation...]",
	Short: "List the moves in a scramble",
	RunE:  runParse,
}

var simplifyCmd = &cobra.Command{
	Use:   "simplify [notation...]",
	Short: "Merge and cancel adjacent moves on the same axis",
	RunE:  runSimplify,
}

func init() {
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(simplifyCmd)

	applyCmd.Flags().BoolVar(&applyJSON, "json", false, "Print the resulting state as JSON")
	applyCmd.Flags().StringVar(&applyFrom, "from", "", "Start from a state file instead of a solved cube")
	applyCmd.Flags().BoolVar(&applyColor, "color", false, "Force a colored net even when not writing to a terminal")
}

// startState returns the cube and history to build on.
func startState(path string) (stickercube.Cube, []stickercube.Move, error) {
	if path == "" {
		return stickercube.New(), nil, nil
	}
	s, err := snapshot.Read(path)
	if err != nil {
		return stickercube.Cube{}, nil, err
	}
	c, err := s.Cube()
	if err != nil {
		return stickercube.Cube{}, nil, err
	}
	return c, s.Moves, nil
}

func runApply(cmd *cobra.Command, args []string) error {
	moves, err := parseScramble(args)
	if err != nil {
		return err
	}

	c, history, err := startState(applyFrom)
	if err != nil {
		return err
	}
	c = c.ApplyMoves(moves...)
	logger.Debug("applied scramble", "moves", len(moves), "solved", c.IsSolved())

	out := cmd.OutOrStdout()
	if applyJSON {
		data, err := snapshot.Marshal(stickercube.NewState(c, append(history, moves...)))
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprint(out, render.Net(c.Layout(), applyColor || isTerminal(out)))
	if c.IsSolved() {
		fmt.Fprintln(out, "Solved: yes")
	} else {
		fmt.Fprintln(out, "Solved: no")
	}
	fmt.Fprintf(out, "Phase:  %s\n", c.Phase().DisplayName())
	return nil
}

func runParse(cmd *cobra.Command, args []string) error {
	moves, err := parseScramble(args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, m := range moves {
		fmt.Fprintf(out, "%3d  %-4s %-8s %s\n", i+1, m.Notation(), m.Axis.Kind(), notation.Describe(m))
	}
	fmt.Fprintf(out, "Total: %d moves\n", len(moves))
	return nil
}

func runSimplify(cmd *cobra.Command, args []string) error {
	moves, err := parseScramble(args)
	if err != nil {
		return err
	}

	simplified := notation.Simplify(moves)
	logger.Debug("simplified", "before", len(moves), "after", len(simplified))
	fmt.Fprintln(cmd.OutOrStdout(), stickercube.FormatMoves(simplified))
	return nil
}
