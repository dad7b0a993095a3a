package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/plusplan/plusplan/internal/db"
	"github.com/plusplan/plusplan/internal/domain"
)

// SQLiteAllocationRepo implements AllocationRepo using a SQLite database.
// Each project keeps at most one allocation; saving replaces the previous
// run. Save issues several statements, so callers that need the replace to
// be all-or-nothing construct the repo over a transaction.
type SQLiteAllocationRepo struct {
	db db.DBTX
}

// NewSQLiteAllocationRepo creates a new SQLiteAllocationRepo.
func NewSQLiteAllocationRepo(conn db.DBTX) *SQLiteAllocationRepo {
	return &SQLiteAllocationRepo{db: conn}
}

// Justifications are stored newline-joined; they never contain newlines
// themselves.
const justificationSep = "\n"

func (r *SQLiteAllocationRepo) Save(ctx context.Context, a *domain.BudgetAllocation) error {
	query := `INSERT INTO allocations (project_id, total, justifications, computed_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(project_id) DO UPDATE SET
			total = excluded.total,
			justifications = excluded.justifications,
			computed_at = excluded.computed_at`
	_, err := r.db.ExecContext(ctx, query,
		a.ProjectID,
		a.Total,
		strings.Join(a.Justifications, justificationSep),
		a.ComputedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving allocation: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM allocation_lines WHERE project_id = ?`, a.ProjectID); err != nil {
		return fmt.Errorf("clearing allocation lines: %w", err)
	}
	for _, category := range domain.BudgetCategories {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO allocation_lines (project_id, category, amount) VALUES (?, ?, ?)`,
			a.ProjectID, string(category), a.Amounts[category],
		)
		if err != nil {
			return fmt.Errorf("inserting allocation line %s: %w", category, err)
		}
	}
	return nil
}

func (r *SQLiteAllocationRepo) Get(ctx context.Context, projectID string) (*domain.BudgetAllocation, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT total, justifications, computed_at FROM allocations WHERE project_id = ?`, projectID)

	a := domain.BudgetAllocation{ProjectID: projectID, Amounts: map[domain.BudgetCategory]int{}}
	var justifications, computedAtStr string
	err := row.Scan(&a.Total, &justifications, &computedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("allocation: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning allocation: %w", err)
	}
	if justifications != "" {
		a.Justifications = strings.Split(justifications, justificationSep)
	}
	a.ComputedAt, err = time.Parse(time.RFC3339, computedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing computed_at: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT category, amount FROM allocation_lines WHERE project_id = ?`, projectID)
	if err != nil {
		return nil, fmt.Errorf("loading allocation lines: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var category string
		var amount int
		if err := rows.Scan(&category, &amount); err != nil {
			return nil, fmt.Errorf("scanning allocation line: %w", err)
		}
		a.Amounts[domain.BudgetCategory(category)] = amount
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating allocation lines: %w", err)
	}
	return &a, nil
}
