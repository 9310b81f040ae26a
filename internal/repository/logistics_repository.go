package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/analog-mfg/factory-ops-api/internal/models"
)

// LogisticsRepository provides database access for module requests and their
// tracking logs.
type LogisticsRepository struct {
	db *sqlx.DB
}

// NewLogisticsRepository creates a new instance of LogisticsRepository.
func NewLogisticsRepository(db *sqlx.DB) *LogisticsRepository {
	return &LogisticsRepository{db: db}
}

// CreateWithTracking inserts a module request and its paired tracking log in
// one transaction. The tracking log's LogID is set to the new request's ID
// before the second insert.
func (r *LogisticsRepository) CreateWithTracking(ctx context.Context, req *models.ModuleRequest, log *models.TrackingLog) error {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	if req.CreatedAt.IsZero() {
		req.CreatedAt = time.Now().UTC()
	}
	log.LogID = req.ID

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin logistics tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	const insertRequest = `INSERT INTO module_requests (id, module, requested_by, description, recipient, request_date, quantity, status, created_at)
		VALUES (:id, :module, :requested_by, :description, :recipient, :request_date, :quantity, :status, :created_at)`
	if _, err := tx.NamedExecContext(ctx, insertRequest, req); err != nil {
		return fmt.Errorf("insert module request: %w", err)
	}

	const insertLog = `INSERT INTO tracking_logs (log_id, module, status, updated_by, updated_at)
		VALUES (:log_id, :module, :status, :updated_by, :updated_at)`
	if _, err := tx.NamedExecContext(ctx, insertLog, log); err != nil {
		return fmt.Errorf("insert tracking log: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit logistics tx: %w", err)
	}
	return nil
}

// List returns all module requests, newest first.
func (r *LogisticsRepository) List(ctx context.Context) ([]models.ModuleRequest, error) {
	const query = `SELECT id, module, requested_by, description, recipient, request_date, quantity, status, created_at FROM module_requests ORDER BY created_at DESC`
	var requests []models.ModuleRequest
	if err := r.db.SelectContext(ctx, &requests, query); err != nil {
		return nil, fmt.Errorf("list module requests: %w", err)
	}
	return requests, nil
}

// ListTracking returns all tracking logs, most recently updated first.
func (r *LogisticsRepository) ListTracking(ctx context.Context) ([]models.TrackingLog, error) {
	const query = `SELECT log_id, module, status, updated_by, updated_at FROM tracking_logs ORDER BY updated_at DESC`
	var logs []models.TrackingLog
	if err := r.db.SelectContext(ctx, &logs, query); err != nil {
		return nil, fmt.Errorf("list tracking logs: %w", err)
	}
	return logs, nil
}

// UpdateTrackingStatus sets the status and timestamp of one tracking log and
// reports how many rows matched.
func (r *LogisticsRepository) UpdateTrackingStatus(ctx context.Context, logID, status string, ts time.Time) (int64, error) {
	const query = `UPDATE tracking_logs SET status = $2, updated_at = $3 WHERE log_id = $1`
	result, err := r.db.ExecContext(ctx, query, logID, status, ts)
	if err != nil {
		return 0, fmt.Errorf("update tracking status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("tracking rows affected: %w", err)
	}
	return affected, nil
}

// CountByRecipient groups module requests by recipient.
func (r *LogisticsRepository) CountByRecipient(ctx context.Context) ([]models.GroupCount, error) {
	const query = `SELECT recipient AS key, COUNT(*) AS count FROM module_requests GROUP BY recipient`
	var counts []models.GroupCount
	if err := r.db.SelectContext(ctx, &counts, query); err != nil {
		return nil, fmt.Errorf("count requests by recipient: %w", err)
	}
	return counts, nil
}

// CountByModule groups module requests by module code, highest count first.
func (r *LogisticsRepository) CountByModule(ctx context.Context) ([]models.GroupCount, error) {
	const query = `SELECT module AS key, COUNT(*) AS count FROM module_requests GROUP BY module ORDER BY count DESC`
	var counts []models.GroupCount
	if err := r.db.SelectContext(ctx, &counts, query); err != nil {
		return nil, fmt.Errorf("count requests by module: %w", err)
	}
	return counts, nil
}

// CountByStatus groups module requests by status.
func (r *LogisticsRepository) CountByStatus(ctx context.Context) ([]models.GroupCount, error) {
	const query = `SELECT status AS key, COUNT(*) AS count FROM module_requests GROUP BY status`
	var counts []models.GroupCount
	if err := r.db.SelectContext(ctx, &counts, query); err != nil {
		return nil, fmt.Errorf("count requests by status: %w", err)
	}
	return counts, nil
}
