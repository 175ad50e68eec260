package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"orghub/internal/model"
)

func loansCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "loan",
		Short: "Manage member loans",
	}

	cmd.AddCommand(listLoansCmd())
	cmd.AddCommand(addLoanCmd())
	cmd.AddCommand(showLoanCmd())
	cmd.AddCommand(repayLoanCmd())

	return cmd
}

func listLoansCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all loans with their outstanding balances",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, data, err := openData(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			loans := data.Loans()
			if len(loans) == 0 {
				fmt.Println("No loans yet. Use 'orghub loan add' to issue one.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()
			fmt.Fprintln(w, "ID\tMember\tPrincipal\tRate\tIssued\tStatus\tOutstanding")
			for _, l := range loans {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s%%\t%s\t%s\t%s\n",
					l.ID, l.MemberID, l.Principal, l.MonthlyRate,
					l.IssueDate.Format("2006-01-02"), l.Status, data.LoanOutstanding(l.ID))
			}
			return nil
		},
	}
}

func addLoanCmd() *cobra.Command {
	var (
		memberID string
		rate     string
		date     string
		desc     string
		method   string
		disburse bool
	)

	cmd := &cobra.Command{
		Use:   "add <principal>",
		Short: "Issue a loan to a member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			principal, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			monthlyRate, err := parseAmount(rate)
			if err != nil {
				return err
			}
			issueDate, err := parseDateFlag(date)
			if err != nil {
				return err
			}

			store, data, err := openData(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			loan, err := data.AddLoan(ctx, model.Loan{
				MemberID:    memberID,
				Principal:   principal,
				MonthlyRate: monthlyRate,
				IssueDate:   issueDate,
				Description: desc,
			})
			if err != nil {
				return fmt.Errorf("failed to issue loan: %w", err)
			}
			fmt.Printf("Issued loan %s to member %s: %s at %s%% monthly\n",
				loan.ID, loan.MemberID, loan.Principal, loan.MonthlyRate)

			if disburse {
				txn, err := data.AddTransaction(ctx, model.Transaction{
					Type:        model.TypeExpense,
					Category:    model.CategoryLoanIssued,
					Amount:      principal,
					Method:      model.PaymentMethod(method),
					Date:        issueDate,
					MemberID:    memberID,
					LoanID:      loan.ID,
					Description: "Loan disbursement",
				})
				if err != nil {
					return fmt.Errorf("loan issued but disbursement transaction failed: %w", err)
				}
				fmt.Printf("Recorded disbursement %s, receipt %s\n", txn.ID, txn.ReceiptNumber)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&memberID, "member", "", "borrowing member ID")
	cmd.Flags().StringVar(&rate, "rate", "0", "monthly interest rate in percent")
	cmd.Flags().StringVar(&date, "date", "", "issue date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&desc, "description", "", "loan description")
	cmd.Flags().StringVar(&method, "method", "cash", "disbursement payment method (cash, bank)")
	cmd.Flags().BoolVar(&disburse, "disburse", false, "also record the loan_issued expense transaction")
	_ = cmd.MarkFlagRequired("member")
	return cmd
}

func showLoanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a loan's derived balances",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, data, err := openData(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			loan, ok := data.LoanByID(args[0])
			if !ok {
				return fmt.Errorf("loan %s not found", args[0])
			}

			currency := data.AccountSettings().Currency
			fmt.Printf("Loan %s (member %s)\n", loan.ID, loan.MemberID)
			fmt.Printf("Principal:    %s %s\n", loan.Principal, currency)
			fmt.Printf("Rate:         %s%% monthly\n", loan.MonthlyRate)
			fmt.Printf("Issued:       %s\n", loan.IssueDate.Format("2006-01-02"))
			fmt.Printf("Status:       %s\n", loan.Status)
			fmt.Printf("Disbursed:    %s %s\n", data.LoanDisbursed(loan.ID), currency)
			fmt.Printf("Repaid:       %s %s\n", data.LoanRepaid(loan.ID), currency)
			fmt.Printf("Outstanding:  %s %s\n", data.LoanOutstanding(loan.ID), currency)
			fmt.Printf("Interest due: %s %s\n", data.LoanInterestDue(loan.ID), currency)
			return nil
		},
	}
}

func repayLoanCmd() *cobra.Command {
	var (
		method string
		date   string
	)

	cmd := &cobra.Command{
		Use:   "repay <id> <amount>",
		Short: "Record a loan repayment",
		Long: `Record a repayment against a loan. When the repayment clears the
outstanding balance the loan is marked paid; that transition is one-way.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			repayDate, err := parseDateFlag(date)
			if err != nil {
				return err
			}

			store, data, err := openData(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			txn, err := data.RecordLoanRepayment(ctx, args[0], amount, model.PaymentMethod(method), repayDate)
			if err != nil {
				return fmt.Errorf("failed to record repayment: %w", err)
			}

			fmt.Printf("Recorded repayment %s, receipt %s\n", txn.ID, txn.ReceiptNumber)
			fmt.Printf("Outstanding now: %s\n", data.LoanOutstanding(args[0]))
			return nil
		},
	}

	cmd.Flags().StringVar(&method, "method", "cash", "payment method (cash, bank)")
	cmd.Flags().StringVar(&date, "date", "", "repayment date (YYYY-MM-DD, default today)")
	return cmd
}
