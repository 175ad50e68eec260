package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"orghub/internal/backup"
	"orghub/internal/model"
)

func membersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "members",
		Short: "Manage organization members",
	}

	cmd.AddCommand(listMembersCmd())
	cmd.AddCommand(addMemberCmd())
	cmd.AddCommand(rmMemberCmd())
	cmd.AddCommand(importMembersCmd())
	cmd.AddCommand(exportMembersCmd())

	return cmd
}

func listMembersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all members",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, data, err := openData(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			members := data.Members()
			if len(members) == 0 {
				fmt.Println("No members yet. Use 'orghub members add' to create one.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()
			fmt.Fprintln(w, "ID\tName\tPhone\tPosition\tStatus\tJoined")
			for _, m := range members {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					m.ID, m.Name, m.PrimaryPhone, m.Position, m.Status, m.JoinDate)
			}
			return nil
		},
	}
}

func addMemberCmd() *cobra.Command {
	var (
		phone    string
		position string
		status   string
		address  string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, data, err := openData(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			member, err := data.AddMember(ctx, model.Member{
				Name:         args[0],
				PrimaryPhone: phone,
				Address:      address,
				Position:     model.NormalizeOrgPosition(position),
				Status:       model.NormalizeMemberStatus(status),
			})
			if err != nil {
				return fmt.Errorf("failed to add member: %w", err)
			}

			fmt.Printf("Added member %s (%s)\n", member.Name, member.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&phone, "phone", "", "primary phone number")
	cmd.Flags().StringVar(&position, "position", "member", "org position (member, patron, chairperson, secretary, treasurer, auditor, committee_member, applicant)")
	cmd.Flags().StringVar(&status, "status", "active", "member status (active, inactive, applicant)")
	cmd.Flags().StringVar(&address, "address", "", "address")
	return cmd
}

func rmMemberCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a member",
		Long: `Delete a member record. Transactions, loans and groups that reference
the member are left untouched; history is never cascaded.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, data, err := openData(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := data.RemoveMember(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to delete member: %w", err)
			}
			fmt.Printf("Deleted member %s\n", args[0])
			return nil
		},
	}
}

func importMembersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a member backup envelope",
		Long: `Merge a versioned member backup into the collection. Rows are matched
by ID (last write wins) and normalized on the way in: phone numbers are split
and cleaned, dates rewritten as DD/MM/YYYY, legacy field names folded into
the canonical shape.`,
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

			count, err := backup.ImportMembers(ctx, store, string(blob))
			if err != nil {
				return fmt.Errorf("failed to import members: %w", err)
			}
			fmt.Printf("Imported %d members\n", count)
			return nil
		},
	}
}

func exportMembersCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export members as a backup envelope",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, data, err := openData(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			blob, err := backup.ExportMembers(data.Members())
			if err != nil {
				return err
			}

			if outPath == "" {
				fmt.Println(blob)
				return nil
			}
			if err := os.WriteFile(outPath, []byte(blob), 0600); err != nil {
				return fmt.Errorf("failed to write backup file: %w", err)
			}
			fmt.Printf("Wrote member backup to %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default: stdout)")
	return cmd
}
