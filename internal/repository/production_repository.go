package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/analog-mfg/factory-ops-api/internal/models"
)

// ProductionRepository provides database access for production records.
type ProductionRepository struct {
	db *sqlx.DB
}

// NewProductionRepository creates a new instance of ProductionRepository.
func NewProductionRepository(db *sqlx.DB) *ProductionRepository {
	return &ProductionRepository{db: db}
}

// Create inserts a new production record.
func (r *ProductionRepository) Create(ctx context.Context, record *models.ProductionRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO production_records (id, work_order_id, date_requested, fulfilled_by, date_fulfilled, produced_qty, order_fulfilled, order_on_time, created_at)
		VALUES (:id, :work_order_id, :date_requested, :fulfilled_by, :date_fulfilled, :produced_qty, :order_fulfilled, :order_on_time, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, record); err != nil {
		return fmt.Errorf("create production record: %w", err)
	}
	return nil
}

// List returns all production records, newest first.
func (r *ProductionRepository) List(ctx context.Context) ([]models.ProductionRecord, error) {
	const query = `SELECT id, work_order_id, date_requested, fulfilled_by, date_fulfilled, produced_qty, order_fulfilled, order_on_time, created_at FROM production_records ORDER BY created_at DESC`
	var records []models.ProductionRecord
	if err := r.db.SelectContext(ctx, &records, query); err != nil {
		return nil, fmt.Errorf("list production records: %w", err)
	}
	return records, nil
}

// Update replaces the mutable fields of a production record and reports how
// many rows matched.
func (r *ProductionRepository) Update(ctx context.Context, record *models.ProductionRecord) (int64, error) {
	const query = `UPDATE production_records SET work_order_id = :work_order_id, date_requested = :date_requested, fulfilled_by = :fulfilled_by, date_fulfilled = :date_fulfilled, produced_qty = :produced_qty, order_fulfilled = :order_fulfilled, order_on_time = :order_on_time WHERE id = :id`
	result, err := r.db.NamedExecContext(ctx, query, record)
	if err != nil {
		return 0, fmt.Errorf("update production record: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("production rows affected: %w", err)
	}
	return affected, nil
}

// Delete removes a production record by id. Deleting a missing id is not an
// error.
func (r *ProductionRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM production_records WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete production record: %w", err)
	}
	return nil
}
