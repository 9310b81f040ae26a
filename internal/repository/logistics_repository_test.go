package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/analog-mfg/factory-ops-api/internal/models"
)

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	sqlxdb := sqlx.NewDb(db, "sqlmock")
	return sqlxdb, mock, func() {
		db.Close()
	}
}

func TestCreateWithTrackingCommitsBothInserts(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewLogisticsRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO module_requests").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO tracking_logs").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	req := &models.ModuleRequest{
		Module:      "AX-400",
		RequestedBy: "dana@factory.test",
		Recipient:   "Assembly Line 2",
		RequestDate: time.Now(),
		Quantity:    25,
		Status:      models.StatusPending,
	}
	log := &models.TrackingLog{
		Module:    "AX-400",
		Status:    models.StatusPending,
		UpdatedBy: "dana@factory.test",
		UpdatedAt: time.Now(),
	}

	err := repo.CreateWithTracking(context.Background(), req, log)
	require.NoError(t, err)
	assert.NotEmpty(t, req.ID)
	assert.Equal(t, req.ID, log.LogID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWithTrackingRollsBackOnSecondInsert(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewLogisticsRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO module_requests").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO tracking_logs").WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := repo.CreateWithTracking(context.Background(), &models.ModuleRequest{
		Module: "AX-400", RequestedBy: "x", Recipient: "y", RequestDate: time.Now(), Quantity: 1, Status: models.StatusPending,
	}, &models.TrackingLog{Module: "AX-400", Status: models.StatusPending, UpdatedBy: "x", UpdatedAt: time.Now()})
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListModuleRequests(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewLogisticsRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "module", "requested_by", "description", "recipient", "request_date", "quantity", "status", "created_at"}).
		AddRow("r1", "AX-400", "dana", "", "Line 2", now, 25, models.StatusPending, now)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, module, requested_by, description, recipient, request_date, quantity, status, created_at FROM module_requests ORDER BY created_at DESC")).
		WillReturnRows(rows)

	requests, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, "AX-400", requests[0].Module)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTrackingStatusReportsAffectedRows(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewLogisticsRepository(db)

	ts := time.Now()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE tracking_logs SET status = $2, updated_at = $3 WHERE log_id = $1")).
		WithArgs("log-1", models.StatusInTransit, ts).
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.UpdateTrackingStatus(context.Background(), "log-1", models.StatusInTransit, ts)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountByModuleOrdersByCountDesc(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewLogisticsRepository(db)

	rows := sqlmock.NewRows([]string{"key", "count"}).
		AddRow("AX-400", 7).
		AddRow("AX-200", 2)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT module AS key, COUNT(*) AS count FROM module_requests GROUP BY module ORDER BY count DESC")).
		WillReturnRows(rows)

	counts, err := repo.CountByModule(context.Background())
	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, "AX-400", counts[0].Key)
	assert.Equal(t, 7, counts[0].Count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountByStatus(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewLogisticsRepository(db)

	rows := sqlmock.NewRows([]string{"key", "count"}).
		AddRow(models.StatusPending, 5).
		AddRow(models.StatusCompleted, 3)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT status AS key, COUNT(*) AS count FROM module_requests GROUP BY status")).
		WillReturnRows(rows)

	counts, err := repo.CountByStatus(context.Background())
	require.NoError(t, err)
	assert.Len(t, counts, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}
