package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "View or change account settings",
	}

	cmd.AddCommand(showSettingsCmd())
	cmd.AddCommand(setSettingsCmd())

	return cmd
}

func showSettingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show account settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, data, err := openData(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			s := data.AccountSettings()
			if s.OrgName != "" {
				fmt.Printf("Organization: %s\n", s.OrgName)
			}
			fmt.Printf("Currency:     %s\n", s.Currency)
			fmt.Printf("Opening cash: %s\n", s.OpeningBalanceCash)
			fmt.Printf("Opening bank: %s\n", s.OpeningBalanceBank)
			fmt.Printf("As of:        %s\n", s.AsOfDate.Format("2006-01-02"))
			return nil
		},
	}
}

func setSettingsCmd() *cobra.Command {
	var (
		orgName  string
		currency string
		cash     string
		bank     string
		asOf     string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update account settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, data, err := openData(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			settings := data.AccountSettings()
			if orgName != "" {
				settings.OrgName = orgName
			}
			if currency != "" {
				settings.Currency = currency
			}
			if cash != "" {
				amount, err := parseAmount(cash)
				if err != nil {
					return err
				}
				settings.OpeningBalanceCash = amount
			}
			if bank != "" {
				amount, err := parseAmount(bank)
				if err != nil {
					return err
				}
				settings.OpeningBalanceBank = amount
			}
			if asOf != "" {
				date, err := time.Parse("2006-01-02", asOf)
				if err != nil {
					return fmt.Errorf("invalid as-of date %q: %w", asOf, err)
				}
				settings.AsOfDate = date
			}
			if settings.AsOfDate.IsZero() {
				settings.AsOfDate = time.Now()
			}

			if err := data.UpdateAccountSettings(ctx, settings); err != nil {
				return fmt.Errorf("failed to save settings: %w", err)
			}
			fmt.Println("Settings saved")
			return nil
		},
	}

	cmd.Flags().StringVar(&orgName, "org-name", "", "organization name")
	cmd.Flags().StringVar(&currency, "currency", "", "currency code")
	cmd.Flags().StringVar(&cash, "opening-cash", "", "opening cash balance")
	cmd.Flags().StringVar(&bank, "opening-bank", "", "opening bank balance")
	cmd.Flags().StringVar(&asOf, "as-of", "", "opening balance as-of date (YYYY-MM-DD)")
	return cmd
}
