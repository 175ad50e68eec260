package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"orghub/internal/model"
)

func eventsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Manage organization events and attendance",
	}

	cmd.AddCommand(listEventsCmd())
	cmd.AddCommand(addEventCmd())
	cmd.AddCommand(rmEventCmd())
	cmd.AddCommand(attendCmd())

	return cmd
}

func listEventsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all events",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, data, err := openData(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			events := data.Events()
			if len(events) == 0 {
				fmt.Println("No events yet. Use 'orghub events add' to create one.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()
			fmt.Fprintln(w, "ID\tTitle\tDate\tLocation\tPresent")
			for _, e := range events {
				present := 0
				for _, r := range data.EventAttendance(e.ID) {
					if r.Present {
						present++
					}
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", e.ID, e.Title, e.Date, e.Location, present)
			}
			return nil
		},
	}
}

func addEventCmd() *cobra.Command {
	var (
		date     string
		timeOf   string
		location string
		desc     string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a new event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, data, err := openData(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			event, err := data.AddEvent(ctx, model.OrgEvent{
				Title:       args[0],
				Description: desc,
				Date:        date,
				Time:        timeOf,
				Location:    location,
			})
			if err != nil {
				return fmt.Errorf("failed to add event: %w", err)
			}
			fmt.Printf("Added event %s (%s)\n", event.Title, event.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "event date")
	cmd.Flags().StringVar(&timeOf, "time", "", "event time")
	cmd.Flags().StringVar(&location, "location", "", "event location")
	cmd.Flags().StringVar(&desc, "description", "", "event description")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}

func rmEventCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete an event and its attendance records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, data, err := openData(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := data.RemoveEvent(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to delete event: %w", err)
			}
			fmt.Printf("Deleted event %s\n", args[0])
			return nil
		},
	}
}

func attendCmd() *cobra.Command {
	var absent bool

	cmd := &cobra.Command{
		Use:   "attend <event-id> <member-id>",
		Short: "Mark a member's attendance at an event",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, data, err := openData(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			record, err := data.MarkAttendance(ctx, args[0], args[1], !absent)
			if err != nil {
				return fmt.Errorf("failed to mark attendance: %w", err)
			}
			state := "present"
			if !record.Present {
				state = "absent"
			}
			fmt.Printf("Marked member %s %s at event %s\n", args[1], state, args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&absent, "absent", false, "mark the member absent instead of present")
	return cmd
}
