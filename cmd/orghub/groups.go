package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"orghub/internal/model"
)

func groupsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "groups",
		Short: "Manage member groups",
	}

	cmd.AddCommand(listGroupsCmd())
	cmd.AddCommand(addGroupCmd())
	cmd.AddCommand(rmGroupCmd())

	return cmd
}

func listGroupsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all groups",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, data, err := openData(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			groups := data.Groups()
			if len(groups) == 0 {
				fmt.Println("No groups yet. Use 'orghub groups add' to create one.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()
			fmt.Fprintln(w, "ID\tName\tMembers\tDescription")
			for _, g := range groups {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", g.ID, g.Name, len(g.MemberIDs), g.Description)
			}
			return nil
		},
	}
}

func addGroupCmd() *cobra.Command {
	var (
		desc    string
		color   string
		members []string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, data, err := openData(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			group, err := data.AddGroup(ctx, model.Group{
				Name:        args[0],
				Description: desc,
				Color:       color,
				MemberIDs:   members,
			})
			if err != nil {
				return fmt.Errorf("failed to add group: %w", err)
			}
			fmt.Printf("Added group %s (%s)\n", group.Name, group.ID)
			if len(members) > 0 {
				fmt.Printf("Members: %s\n", strings.Join(members, ", "))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&desc, "description", "", "group description")
	cmd.Flags().StringVar(&color, "color", "", "group color")
	cmd.Flags().StringSliceVar(&members, "member", nil, "member ID to include (repeatable)")
	return cmd
}

func rmGroupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, data, err := openData(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := data.RemoveGroup(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to delete group: %w", err)
			}
			fmt.Printf("Deleted group %s\n", args[0])
			return nil
		},
	}
}
