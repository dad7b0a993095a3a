package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/plusplan/plusplan/internal/db"
	"github.com/plusplan/plusplan/internal/domain"
)

// SQLiteProjectRepo implements ProjectRepo using a SQLite database.
type SQLiteProjectRepo struct {
	db db.DBTX
}

// NewSQLiteProjectRepo creates a new SQLiteProjectRepo.
func NewSQLiteProjectRepo(conn db.DBTX) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: conn}
}

const dateLayout = "2006-01-02"

const projectColumns = `id, short_id, name, destination, destination_city, destination_country,
	start_date, duration_days, total_budget, green_travel, public_event, food_prepared,
	status, archived_at, created_at, updated_at`

func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	query := `INSERT INTO projects (` + projectColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	var startDate interface{}
	if !p.StartDate.IsZero() {
		startDate = p.StartDate.Format(dateLayout)
	}
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.ShortID,
		p.Name,
		p.Destination,
		p.DestinationCity,
		p.DestinationCountry,
		startDate,
		p.DurationDays,
		p.TotalBudget,
		boolToInt(p.GreenTravel),
		boolToInt(p.PublicEvent),
		boolToInt(p.FoodPrepared),
		string(p.Status),
		nullableTimeToString(p.ArchivedAt, time.RFC3339),
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}

	return r.SetParticipants(ctx, p.ID, p.Participants)
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	p, err := r.scanProject(row)
	if err != nil {
		return nil, err
	}
	return r.loadAggregate(ctx, p)
}

func (r *SQLiteProjectRepo) GetByShortID(ctx context.Context, shortID string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE UPPER(short_id) = UPPER(?)`
	row := r.db.QueryRowContext(ctx, query, shortID)
	p, err := r.scanProject(row)
	if err != nil {
		return nil, err
	}
	return r.loadAggregate(ctx, p)
}

func (r *SQLiteProjectRepo) List(ctx context.Context, includeArchived bool) ([]*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects`
	if !includeArchived {
		query += ` WHERE archived_at IS NULL`
	}
	query += ` ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		p, err := r.scanProjectFromRows(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}

	for _, p := range projects {
		if _, err := r.loadAggregate(ctx, p); err != nil {
			return nil, err
		}
	}
	return projects, nil
}

func (r *SQLiteProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	query := `UPDATE projects SET short_id = ?, name = ?, destination = ?, destination_city = ?,
		destination_country = ?, start_date = ?, duration_days = ?, total_budget = ?,
		green_travel = ?, public_event = ?, food_prepared = ?, status = ?, updated_at = ?
		WHERE id = ?`
	var startDate interface{}
	if !p.StartDate.IsZero() {
		startDate = p.StartDate.Format(dateLayout)
	}
	_, err := r.db.ExecContext(ctx, query,
		p.ShortID,
		p.Name,
		p.Destination,
		p.DestinationCity,
		p.DestinationCountry,
		startDate,
		p.DurationDays,
		p.TotalBudget,
		boolToInt(p.GreenTravel),
		boolToInt(p.PublicEvent),
		boolToInt(p.FoodPrepared),
		string(p.Status),
		p.UpdatedAt.Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}
	return nil
}

// SetParticipants replaces the project's participant group wholesale.
func (r *SQLiteProjectRepo) SetParticipants(ctx context.Context, projectID string, group domain.ParticipantGroup) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM participant_groups WHERE project_id = ?`, projectID); err != nil {
		return fmt.Errorf("clearing participant groups: %w", err)
	}
	for _, country := range group.Countries() {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO participant_groups (project_id, country, count) VALUES (?, ?, ?)`,
			projectID, country, group[country],
		)
		if err != nil {
			return fmt.Errorf("inserting participant group %s: %w", country, err)
		}
	}
	return nil
}

func (r *SQLiteProjectRepo) Archive(ctx context.Context, id string) error {
	now := nowUTC()
	query := `UPDATE projects SET status = 'archived', archived_at = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, now, now, id)
	if err != nil {
		return fmt.Errorf("archiving project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) Unarchive(ctx context.Context, id string) error {
	now := nowUTC()
	query := `UPDATE projects SET status = 'active', archived_at = NULL, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, now, id)
	if err != nil {
		return fmt.Errorf("unarchiving project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM projects WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	return nil
}

// loadAggregate attaches participant groups and activities to p.
func (r *SQLiteProjectRepo) loadAggregate(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	group := domain.ParticipantGroup{}
	rows, err := r.db.QueryContext(ctx,
		`SELECT country, count FROM participant_groups WHERE project_id = ? ORDER BY country`, p.ID)
	if err != nil {
		return nil, fmt.Errorf("loading participant groups: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var country string
		var count int
		if err := rows.Scan(&country, &count); err != nil {
			return nil, fmt.Errorf("scanning participant group: %w", err)
		}
		group[country] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating participant groups: %w", err)
	}
	p.Participants = group

	activities, err := scanActivities(ctx, r.db, p.ID)
	if err != nil {
		return nil, err
	}
	p.Activities = activities
	return p, nil
}

func (r *SQLiteProjectRepo) scanProject(row *sql.Row) (*domain.Project, error) {
	p, err := scanProjectColumns(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("project: %w", ErrNotFound)
	}
	return p, err
}

func (r *SQLiteProjectRepo) scanProjectFromRows(rows *sql.Rows) (*domain.Project, error) {
	return scanProjectColumns(rows.Scan)
}

// scanProjectColumns scans the projectColumns select list via the given Scan func.
func scanProjectColumns(scan func(dest ...any) error) (*domain.Project, error) {
	var p domain.Project
	var createdAtStr, updatedAtStr, statusStr string
	var startDateStr, archivedAtStr sql.NullString
	var greenTravel, publicEvent, foodPrepared int

	err := scan(
		&p.ID, &p.ShortID, &p.Name, &p.Destination, &p.DestinationCity, &p.DestinationCountry,
		&startDateStr, &p.DurationDays, &p.TotalBudget,
		&greenTravel, &publicEvent, &foodPrepared,
		&statusStr, &archivedAtStr, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	p.Status = domain.ProjectStatus(statusStr)
	p.GreenTravel = intToBool(greenTravel)
	p.PublicEvent = intToBool(publicEvent)
	p.FoodPrepared = intToBool(foodPrepared)

	if start := parseNullableTime(startDateStr, dateLayout); start != nil {
		p.StartDate = *start
	}
	p.ArchivedAt = parseNullableTime(archivedAtStr, time.RFC3339)

	var parseErr error
	p.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	p.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &p, nil
}
