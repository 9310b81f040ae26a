package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/analog-mfg/factory-ops-api/internal/models"
)

// WorkOrderRepository provides database access for work orders.
type WorkOrderRepository struct {
	db *sqlx.DB
}

// NewWorkOrderRepository creates a new instance of WorkOrderRepository.
func NewWorkOrderRepository(db *sqlx.DB) *WorkOrderRepository {
	return &WorkOrderRepository{db: db}
}

// Create inserts a new work order and reports whether the store acknowledged
// the write.
func (r *WorkOrderRepository) Create(ctx context.Context, order *models.WorkOrder) (int64, error) {
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	const query = `INSERT INTO work_orders (id, module, created_by, description, assigned_to, created_date, due_date, priority, quantity, status)
		VALUES (:id, :module, :created_by, :description, :assigned_to, :created_date, :due_date, :priority, :quantity, :status)`
	result, err := r.db.NamedExecContext(ctx, query, order)
	if err != nil {
		return 0, fmt.Errorf("create work order: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("work order rows affected: %w", err)
	}
	return affected, nil
}

// List returns all work orders, most recently created first.
func (r *WorkOrderRepository) List(ctx context.Context) ([]models.WorkOrder, error) {
	const query = `SELECT id, module, created_by, description, assigned_to, created_date, due_date, priority, quantity, status, updated_at FROM work_orders ORDER BY created_date DESC`
	var orders []models.WorkOrder
	if err := r.db.SelectContext(ctx, &orders, query); err != nil {
		return nil, fmt.Errorf("list work orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus sets the status of one work order and reports how many rows
// matched.
func (r *WorkOrderRepository) UpdateStatus(ctx context.Context, id, status string, ts time.Time) (int64, error) {
	const query = `UPDATE work_orders SET status = $2, updated_at = $3 WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id, status, ts)
	if err != nil {
		return 0, fmt.Errorf("update work order status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("work order rows affected: %w", err)
	}
	return affected, nil
}
