package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"orghub/internal/backup"
	"orghub/internal/model"
)

func txnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "txn",
		Short: "Manage financial transactions",
	}

	cmd.AddCommand(listTxnsCmd())
	cmd.AddCommand(addTxnCmd())
	cmd.AddCommand(rmTxnCmd())
	cmd.AddCommand(importTxnsCmd())
	cmd.AddCommand(exportTxnsCmd())

	return cmd
}

func listTxnsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all transactions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, data, err := openData(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			txns := data.Transactions()
			if len(txns) == 0 {
				fmt.Println("No transactions yet. Use 'orghub txn add' to record one.")
				return nil
			}

			currency := data.AccountSettings().Currency
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()
			fmt.Fprintln(w, "ID\tDate\tType\tCategory\tAmount\tMethod\tReceipt")
			for _, t := range txns {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s %s\t%s\t%s\n",
					t.ID, t.Date.Format("2006-01-02"), t.Type, t.Category,
					t.Amount, currency, t.Method, t.ReceiptNumber)
			}
			return nil
		},
	}
}

func addTxnCmd() *cobra.Command {
	var (
		txnType  string
		category string
		method   string
		date     string
		memberID string
		desc     string
	)

	cmd := &cobra.Command{
		Use:   "add <amount>",
		Short: "Record a transaction",
		Long: `Record an income, expense or transfer. The category must belong to the
transaction type's set; transfers use bank_deposit (cash into bank) or
bank_withdrawal (bank into cash).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			txnDate, err := parseDateFlag(date)
			if err != nil {
				return err
			}

			store, data, err := openData(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			txn, err := data.AddTransaction(ctx, model.Transaction{
				Type:        model.TransactionType(txnType),
				Category:    model.TransactionCategory(category),
				Amount:      amount,
				Method:      model.PaymentMethod(method),
				Date:        txnDate,
				MemberID:    memberID,
				Description: desc,
			})
			if err != nil {
				return fmt.Errorf("failed to record transaction: %w", err)
			}
			fmt.Printf("Recorded %s %s (%s), receipt %s\n", txn.Type, txn.Amount, txn.ID, txn.ReceiptNumber)
			return nil
		},
	}

	cmd.Flags().StringVar(&txnType, "type", "income", "transaction type (income, expense, transfer)")
	cmd.Flags().StringVar(&category, "category", "", "transaction category")
	cmd.Flags().StringVar(&method, "method", "cash", "payment method (cash, bank)")
	cmd.Flags().StringVar(&date, "date", "", "transaction date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&memberID, "member", "", "member ID the transaction relates to")
	cmd.Flags().StringVar(&desc, "description", "", "free-text notes")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func rmTxnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, data, err := openData(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := data.RemoveTransaction(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to delete transaction: %w", err)
			}
			fmt.Printf("Deleted transaction %s\n", args[0])
			return nil
		},
	}
}

func importTxnsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a transaction backup envelope",
		Args:  cobra.ExactArgs(1),
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

			count, err := backup.ImportTransactions(ctx, store, string(blob))
			if err != nil {
				return fmt.Errorf("failed to import transactions: %w", err)
			}
			fmt.Printf("Imported %d transactions\n", count)
			return nil
		},
	}
}

func exportTxnsCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export transactions as a backup envelope",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, data, err := openData(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			blob, err := backup.ExportTransactions(data.Transactions())
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
			fmt.Printf("Wrote transaction backup to %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default: stdout)")
	return cmd
}

func balanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show cash, bank and total balances",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, data, err := openData(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			currency := data.AccountSettings().Currency
			fmt.Printf("Cash:  %s %s\n", data.CashBalance(), currency)
			fmt.Printf("Bank:  %s %s\n", data.BankBalance(), currency)
			fmt.Printf("Total: %s %s\n", data.TotalBalance(), currency)
			return nil
		},
	}
}
