package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/stickercube"
	"github.com/SeamusWaldron/stickercube/internal/render"
	"github.com/SeamusWaldron/stickercube/internal/storage"
)

var (
	saveFrom  string
	listLimit int
)

var snapshotCmd = &cobra.Command{
	Use:     "snapshot",
	Aliases: []string{"snap"},
	Short:   "Manage saved cube states",
	Long:    `Save, inspect, list and delete cube states in the snapshot database.`,
}

var snapshotSaveCmd = &cobra.Command{
	Use:   "save <name> [notation...]",
	Short: "Apply a scramble and save the result",
	Long: `Apply a scramble to a solved cube (or a state file) and save the result
with its move history.

Examples:
  stickercube snapshot save practice "R U R' U'"
  stickercube snapshot save resume --from state.json "F2"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSnapshotSave,
}

var snapshotAppendCmd = &cobra.Command{
	Use:   "append <id|name|last> <notation...>",
	Short: "Apply more moves to a saved state",
	Long: `Apply moves to a saved state and store the result in place, extending
its move history.

Examples:
  stickercube snapshot append practice "U R U' R'"`,
	Args: cobra.MinimumNArgs(2),
	RunE: runSnapshotAppend,
}

var snapshotShowCmd = &cobra.Command{
	Use:   "show [id|name|last]",
	Short: "Show a saved state",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSnapshotShow,
}

var snapshotListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved states, newest first",
	RunE:  runSnapshotList,
}

var snapshotDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved state and its moves",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnapshotDelete,
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
	snapshotCmd.AddCommand(snapshotSaveCmd)
	snapshotCmd.AddCommand(snapshotAppendCmd)
	snapshotCmd.AddCommand(snapshotShowCmd)
	snapshotCmd.AddCommand(snapshotListCmd)
	snapshotCmd.AddCommand(snapshotDeleteCmd)

	snapshotSaveCmd.Flags().StringVar(&saveFrom, "from", "", "Start from a state file instead of a solved cube")
	snapshotListCmd.Flags().IntVarP(&listLimit, "limit", "n", 20, "Maximum number of snapshots")
}

// resolveSnapshot finds a snapshot by ID or name. An empty ref or "last"
// selects the most recent one.
func resolveSnapshot(repo *storage.SnapshotRepository, ref string) (*storage.Snapshot, error) {
	if ref == "" || ref == "last" {
		s, err := repo.GetLast()
		if err != nil {
			return nil, err
		}
		if s == nil {
			return nil, fmt.Errorf("no snapshots found")
		}
		return s, nil
	}

	s, err := repo.Get(ref)
	if err != nil {
		return nil, err
	}
	if s == nil {
		s, err = repo.GetByName(ref)
		if err != nil {
			return nil, err
		}
	}
	if s == nil {
		return nil, fmt.Errorf("snapshot %q not found", ref)
	}
	return s, nil
}

func runSnapshotSave(cmd *cobra.Command, args []string) error {
	name := args[0]
	moves, err := parseScramble(args[1:])
	if err != nil {
		return err
	}

	c, history, err := startState(saveFrom)
	if err != nil {
		return err
	}
	c = c.ApplyMoves(moves...)

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSnapshotRepository(db)
	id, err := repo.Create(name, stickercube.FormatMoves(moves), stickercube.NewState(c, append(history, moves...)))
	if err != nil {
		return err
	}

	logger.Debug("snapshot saved", "id", id, "name", name, "moves", len(moves))
	fmt.Fprintln(cmd.OutOrStdout(), id)
	return nil
}

func runSnapshotAppend(cmd *cobra.Command, args []string) error {
	moves, err := parseScramble(args[1:])
	if err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSnapshotRepository(db)
	s, err := resolveSnapshot(repo, args[0])
	if err != nil {
		return err
	}
	updated, err := repo.Append(s.SnapshotID, moves)
	if err != nil {
		return err
	}

	logger.Debug("snapshot updated", "id", s.SnapshotID, "appended", len(moves))
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d moves\n", updated.Name, len(updated.State.Moves))
	return nil
}

func runSnapshotShow(cmd *cobra.Command, args []string) error {
	ref := ""
	if len(args) > 0 {
		ref = args[0]
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	s, err := resolveSnapshot(storage.NewSnapshotRepository(db), ref)
	if err != nil {
		return err
	}
	c, err := s.Cube()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	styled := isTerminal(out)
	title := fmt.Sprintf("%s (%s)", s.Name, s.SnapshotID)
	if styled {
		title = titleStyle.Render(title)
	}
	fmt.Fprintln(out, title)
	fmt.Fprintf(out, "Created:  %s\n", s.CreatedAt.Local().Format(time.RFC3339))
	if s.ScrambleText != nil {
		fmt.Fprintf(out, "Scramble: %s\n", *s.ScrambleText)
	}
	fmt.Fprintf(out, "Moves:    %d\n", len(s.State.Moves))
	if c.IsSolved() {
		fmt.Fprintln(out, "Solved:   yes")
	} else {
		fmt.Fprintln(out, "Solved:   no")
	}
	fmt.Fprintf(out, "Phase:    %s\n", c.Phase().DisplayName())
	fmt.Fprintln(out)
	fmt.Fprint(out, render.Net(c.Layout(), styled))
	return nil
}

func runSnapshotList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	snapshots, err := storage.NewSnapshotRepository(db).List(listLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(snapshots) == 0 {
		fmt.Fprintln(out, "No snapshots found. Save one with: stickercube snapshot save <name> [notation]")
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "NAME", "CREATED", "MOVES", "SOLVED")
	for _, s := range snapshots {
		solved := "no"
		if s.Solved {
			solved = "yes"
		}
		t.Row(
			s.SnapshotID[:8],
			s.Name,
			s.CreatedAt.Local().Format("2006-01-02 15:04"),
			strconv.Itoa(len(s.State.Moves)),
			solved,
		)
	}
	fmt.Fprintln(out, t.Render())
	return nil
}

func runSnapshotDelete(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSnapshotRepository(db)
	s, err := resolveSnapshot(repo, args[0])
	if err != nil {
		return err
	}
	if _, err := repo.Delete(s.SnapshotID); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s (%s)\n", s.Name, s.SnapshotID)
	return nil
}
