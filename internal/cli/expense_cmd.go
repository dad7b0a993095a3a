package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/plusplan/plusplan/internal/cli/formatter"
	"github.com/plusplan/plusplan/internal/domain"
)

func newExpenseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expense",
		Short: "Record and review spending",
	}

	cmd.AddCommand(
		newExpenseAddCmd(app),
		newExpenseListCmd(app),
	)

	return cmd
}

func newExpenseAddCmd(app *App) *cobra.Command {
	var category, description, date string
	var amount int

	cmd := &cobra.Command{
		Use:   "add PROJECT",
		Short: "Record an expense against a budget category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}

			e := &domain.Expense{
				ProjectID:   projectID,
				Category:    domain.BudgetCategory(category),
				Amount:      amount,
				Description: description,
			}
			if date != "" {
				incurred, err := time.Parse("2006-01-02", date)
				if err != nil {
					return fmt.Errorf("invalid date %q: %w", date, err)
				}
				e.IncurredOn = incurred
			}

			if err := app.Expenses.Add(ctx, e); err != nil {
				return err
			}
			fmt.Printf("Recorded %s against %s\n", formatter.Euro(e.Amount), e.Category)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Budget category (travel, food, ...)")
	cmd.Flags().IntVar(&amount, "amount", 0, "Amount in whole euro")
	cmd.Flags().StringVar(&description, "desc", "", "What the money was spent on")
	cmd.Flags().StringVar(&date, "date", "", "Date incurred (YYYY-MM-DD, default today)")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newExpenseListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list PROJECT",
		Short: "List a project's expenses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			expenses, err := app.Expenses.ListByProject(ctx, projectID)
			if err != nil {
				return err
			}
			if len(expenses) == 0 {
				fmt.Println("No expenses recorded.")
				return nil
			}

			headers := []string{"DATE", "CATEGORY", "AMOUNT", "DESCRIPTION"}
			rows := make([][]string, 0, len(expenses))
			total := 0
			for _, e := range expenses {
				rows = append(rows, []string{
					e.IncurredOn.Format("2006-01-02"),
					string(e.Category),
					formatter.Euro(e.Amount),
					e.Description,
				})
				total += e.Amount
			}
			fmt.Printf("%s\n%s %s\n", formatter.RenderTable(headers, rows),
				formatter.Bold("Total:"), formatter.Euro(total))
			return nil
		},
	}
}
