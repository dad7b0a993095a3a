package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/plusplan/plusplan/internal/db"
	"github.com/plusplan/plusplan/internal/domain"
)

// SQLiteActivityRepo implements ActivityRepo using a SQLite database.
type SQLiteActivityRepo struct {
	db db.DBTX
}

// NewSQLiteActivityRepo creates a new SQLiteActivityRepo.
func NewSQLiteActivityRepo(conn db.DBTX) *SQLiteActivityRepo {
	return &SQLiteActivityRepo{db: conn}
}

func (r *SQLiteActivityRepo) Create(ctx context.Context, a *domain.Activity) error {
	query := `INSERT INTO activities (id, project_id, name, type, outdoor, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.ProjectID,
		a.Name,
		string(a.Type),
		boolToInt(a.Outdoor),
		a.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting activity: %w", err)
	}
	return nil
}

func (r *SQLiteActivityRepo) ListByProject(ctx context.Context, projectID string) ([]domain.Activity, error) {
	return scanActivities(ctx, r.db, projectID)
}

func (r *SQLiteActivityRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM activities WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting activity: %w", err)
	}
	return nil
}

// scanActivities loads a project's activities in insertion order. Shared with
// the project repo's aggregate loading.
func scanActivities(ctx context.Context, conn db.DBTX, projectID string) ([]domain.Activity, error) {
	rows, err := conn.QueryContext(ctx,
		`SELECT id, project_id, name, type, outdoor, created_at
		FROM activities WHERE project_id = ? ORDER BY created_at, id`, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}
	defer rows.Close()

	var activities []domain.Activity
	for rows.Next() {
		var a domain.Activity
		var typeStr, createdAtStr string
		var outdoor int
		if err := rows.Scan(&a.ID, &a.ProjectID, &a.Name, &typeStr, &outdoor, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning activity: %w", err)
		}
		a.Type = domain.ActivityType(typeStr)
		a.Outdoor = intToBool(outdoor)
		a.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing activity created_at: %w", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activities: %w", err)
	}
	return activities, nil
}
