package main

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"coachcore/internal/snapshot"
)

var (
	exportOut       string
	exportToArchive bool
	importFile      string
	importArchive   string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all collections to a snapshot document",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		if exportToArchive {
			st, err := a.archiveStore(cmd)
			if err != nil {
				return err
			}
			info, err := snapshot.ExportToArchive(cmd.Context(), a.guard, st)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Archived snapshot: %s (%d bytes)\n", info.Key, info.Size)
			return nil
		}

		data, err := snapshot.Export(cmd.Context(), a.guard)
		if err != nil {
			return err
		}
		out := exportOut
		if out == "" {
			out = fmt.Sprintf("coachcore-%s.json", time.Now().Format("20060102-150405"))
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported snapshot: %s\n", out)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Restore collections from a snapshot document",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()
		stores := a.openStores(cmd)

		var res snapshot.ImportResult
		switch {
		case importArchive != "":
			st, err := a.archiveStore(cmd)
			if err != nil {
				return err
			}
			res, err = snapshot.ImportFromArchive(cmd.Context(), a.guard, a.emitter, st, importArchive)
			if err != nil {
				return reportImportError(err)
			}
		case importFile != "":
			data, err := os.ReadFile(importFile)
			if err != nil {
				return fmt.Errorf("backup file unreadable: %w", err)
			}
			res, err = snapshot.Import(cmd.Context(), a.guard, a.emitter, data)
			if err != nil {
				return reportImportError(err)
			}
		default:
			return fmt.Errorf("--file or --archive is required")
		}

		// the stores were loaded before the restore; re-read so this
		// process reflects the imported state
		stores.Reload(cmd.Context())

		keys := make([]string, 0, len(res.Counts))
		for key := range res.Counts {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d\n", key, res.Counts[key])
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Restored %d entries across %d collections (%d skipped as null)\n",
			res.Total(), len(res.Counts), len(res.Skipped))
		fmt.Fprintf(cmd.OutOrStdout(), "Now holding %d students, %d exercises, %d meals, %d supplements\n",
			len(stores.Students.Items()), len(stores.Exercises.Items()),
			len(stores.Meals.Items()), len(stores.Supplements.Items()))
		return nil
	},
}

// reportImportError keeps the user-facing distinction between an unreadable
// file and a readable file that is not a backup.
func reportImportError(err error) error {
	if errors.Is(err, snapshot.ErrNotABackup) {
		return fmt.Errorf("file is readable but not a valid backup: %w", err)
	}
	return err
}

var archivesCmd = &cobra.Command{
	Use:   "archives",
	Short: "List snapshot archives",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		st, err := a.archiveStore(cmd)
		if err != nil {
			return err
		}
		infos, err := snapshot.ListArchives(cmd.Context(), st)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "KEY\tSIZE\tMODIFIED")
		for _, info := range infos {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%s\n", info.Key, info.Size, info.LastModified.Format(time.RFC3339))
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file path")
	exportCmd.Flags().BoolVar(&exportToArchive, "archive", false, "Store the snapshot in the configured archive store")
	importCmd.Flags().StringVar(&importFile, "file", "", "Snapshot document to restore")
	importCmd.Flags().StringVar(&importArchive, "archive", "", "Archive key to restore")
	rootCmd.AddCommand(exportCmd, importCmd, archivesCmd)
}
