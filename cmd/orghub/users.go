package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"orghub/internal/access"
	"orghub/internal/auth"
	"orghub/internal/common"
	"orghub/internal/model"
)

func usersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage local user accounts",
	}

	cmd.AddCommand(listUsersCmd())
	cmd.AddCommand(addUserCmd())

	return cmd
}

func listUsersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List user accounts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, data, err := openData(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()
			fmt.Fprintln(w, "ID\tName\tRole\tMember\tActive")
			for _, u := range data.Users() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\n",
					u.ID, u.DisplayName, u.SystemRole, u.MemberID, u.IsActive)
			}
			return nil
		},
	}
}

func addUserCmd() *cobra.Command {
	var (
		role     string
		memberID string
		position string
	)

	cmd := &cobra.Command{
		Use:   "add <display-name>",
		Short: "Add a local user account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, data, err := openData(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			user, err := data.AddUser(ctx, model.UserAccount{
				DisplayName: args[0],
				SystemRole:  model.SystemRole(role),
				MemberID:    memberID,
				Position:    model.NormalizeOrgPosition(position),
				IsActive:    true,
			})
			if err != nil {
				return fmt.Errorf("failed to add user: %w", err)
			}
			fmt.Printf("Added user %s (%s)\n", user.DisplayName, user.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", string(model.RoleOrgUser), "system role (admin, org_user)")
	cmd.Flags().StringVar(&memberID, "member", "", "linked member ID")
	cmd.Flags().StringVar(&position, "position", "", "org position override")
	return cmd
}

func loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <user-id>",
		Short: "Sign in as a local user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, data, err := openData(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			user, err := auth.New(store, data).SignIn(ctx, args[0])
			if errors.Is(err, common.ErrUnknownUser) {
				return common.NewUserError(
					fmt.Sprintf("no user account %s; run 'orghub users list' to see accounts", args[0]), err)
			}
			if err != nil {
				return err
			}
			fmt.Printf("Signed in as %s (%s)\n", user.DisplayName, user.SystemRole)
			return nil
		},
	}
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the current session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, data, err := openData(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := auth.New(store, data).SignOut(ctx); err != nil {
				return err
			}
			fmt.Println("Signed out")
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session and its permissions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, data, err := openData(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			manager := auth.New(store, data)
			user, ok, err := manager.CurrentUser(ctx)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("Not signed in")
				return nil
			}

			profile := manager.ProfileFor(user)
			fmt.Printf("%s (%s)\n", user.DisplayName, user.SystemRole)
			if profile.OrgPosition != "" {
				fmt.Printf("Position: %s\n", profile.OrgPosition)
			}

			granted := []access.Permission{}
			for _, p := range []access.Permission{
				access.SystemManage, access.UsersManage, access.UsersView,
				access.MembersViewAll, access.MembersManage, access.MembersViewSelf,
				access.MembersApply, access.FinanceViewAll, access.FinanceManage,
				access.FinanceViewSelf, access.ReportsViewAll, access.EventsManage,
				access.EventsViewPublic, access.AnnouncementsManage, access.AnnouncementsViewPublic,
			} {
				if access.CanAccess(profile, p) {
					granted = append(granted, p)
				}
			}
			fmt.Println("Permissions:")
			for _, p := range granted {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}
}
