package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func backupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export or restore the whole database",
	}

	cmd.AddCommand(exportBackupCmd())
	cmd.AddCommand(restoreBackupCmd())
	cmd.AddCommand(clearBackupCmd())

	return cmd
}

func clearBackupCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every collection",
		Long: `Remove all stored collections, including members, transactions, loans
and the session. Export first; this cannot be undone.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return fmt.Errorf("refusing to clear without --yes")
			}

			ctx := cmd.Context()
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.ClearAll(ctx); err != nil {
				return fmt.Errorf("failed to clear: %w", err)
			}
			fmt.Println("All collections cleared")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm deletion")
	return cmd
}

func exportBackupCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every collection as a single JSON blob",
		Long: `Bundle the raw stored value of every collection into one JSON object.
The values are passed through untouched, so a later restore writes back
exactly what was exported.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			blob, err := store.ExportAll(ctx)
			if err != nil {
				return fmt.Errorf("failed to export: %w", err)
			}

			if outPath == "" {
				fmt.Println(blob)
				return nil
			}
			if err := os.WriteFile(outPath, []byte(blob), 0600); err != nil {
				return fmt.Errorf("failed to write backup file: %w", err)
			}
			fmt.Printf("Wrote backup to %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default: stdout)")
	return cmd
}

func restoreBackupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <file>",
		Short: "Restore collections from an exported blob",
		Long: `Overwrite every recognized collection with the contents of the blob.
Unrecognized keys are ignored; a blob carrying none of the known keys is
rejected and the database is left untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			blob, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read backup file: %w", err)
			}

			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.RestoreAll(ctx, string(blob)); err != nil {
				return err
			}
			fmt.Println("Restore complete")
			return nil
		},
	}
}
