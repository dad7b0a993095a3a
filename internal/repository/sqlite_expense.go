package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/plusplan/plusplan/internal/db"
	"github.com/plusplan/plusplan/internal/domain"
)

// SQLiteExpenseRepo implements ExpenseRepo using a SQLite database.
type SQLiteExpenseRepo struct {
	db db.DBTX
}

// NewSQLiteExpenseRepo creates a new SQLiteExpenseRepo.
func NewSQLiteExpenseRepo(conn db.DBTX) *SQLiteExpenseRepo {
	return &SQLiteExpenseRepo{db: conn}
}

func (r *SQLiteExpenseRepo) Create(ctx context.Context, e *domain.Expense) error {
	query := `INSERT INTO expenses (id, project_id, category, amount, description, incurred_on, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.ProjectID,
		string(e.Category),
		e.Amount,
		e.Description,
		e.IncurredOn.Format(dateLayout),
		e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting expense: %w", err)
	}
	return nil
}

func (r *SQLiteExpenseRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Expense, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, project_id, category, amount, description, incurred_on, created_at
		FROM expenses WHERE project_id = ? ORDER BY incurred_on, created_at`, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*domain.Expense
	for rows.Next() {
		var e domain.Expense
		var categoryStr, incurredOnStr, createdAtStr string
		if err := rows.Scan(&e.ID, &e.ProjectID, &categoryStr, &e.Amount, &e.Description, &incurredOnStr, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning expense: %w", err)
		}
		e.Category = domain.BudgetCategory(categoryStr)
		e.IncurredOn, err = time.Parse(dateLayout, incurredOnStr)
		if err != nil {
			return nil, fmt.Errorf("parsing incurred_on: %w", err)
		}
		e.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing expense created_at: %w", err)
		}
		expenses = append(expenses, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating expenses: %w", err)
	}
	return expenses, nil
}

func (r *SQLiteExpenseRepo) TotalsByCategory(ctx context.Context, projectID string) (map[domain.BudgetCategory]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT category, SUM(amount) FROM expenses WHERE project_id = ? GROUP BY category`, projectID)
	if err != nil {
		return nil, fmt.Errorf("totalling expenses: %w", err)
	}
	defer rows.Close()

	totals := map[domain.BudgetCategory]int{}
	for rows.Next() {
		var category string
		var total int
		if err := rows.Scan(&category, &total); err != nil {
			return nil, fmt.Errorf("scanning expense total: %w", err)
		}
		totals[domain.BudgetCategory(category)] = total
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating expense totals: %w", err)
	}
	return totals, nil
}

func (r *SQLiteExpenseRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting expense: %w", err)
	}
	return nil
}
