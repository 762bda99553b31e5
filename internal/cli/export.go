package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/stickercube"
	"github.com/SeamusWaldron/stickercube/internal/snapshot"
	"github.com/SeamusWaldron/stickercube/internal/storage"
)

var (
	exportOutput string
	importName   string
)

var exportCmd = &cobra.Command{
	Use:   "export [id|name|last]",
	Short: "Export a saved state to a file",
	Long: `Export a saved state as JSON. Files ending in .zst are zstd-compressed.

Examples:
  stickercube export last -o state.json
  stickercube export practice -o practice.json.zst`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a state file into the snapshot database",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)

	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (required)")
	exportCmd.MarkFlagRequired("output")
	importCmd.Flags().StringVar(&importName, "name", "", "Snapshot name (default: file name)")
}

func runExport(cmd *cobra.Command, args []string) error {
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
	if err := snapshot.Write(exportOutput, s.State); err != nil {
		return err
	}

	logger.Info("exported", "snapshot", s.SnapshotID, "path", exportOutput, "compressed", snapshot.IsCompressed(exportOutput))
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	path := args[0]
	state, err := snapshot.Read(path)
	if err != nil {
		return fmt.Errorf("failed to import %s: %w", path, err)
	}

	name := importName
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), snapshot.CompressedExt)
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	id, err := storage.NewSnapshotRepository(db).Create(name, stickercube.FormatMoves(state.Moves), state)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), id)
	return nil
}
