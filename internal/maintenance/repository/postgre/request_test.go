package postgre

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	repo "tenant-maintenance-assistant/internal/maintenance/repository"
	"tenant-maintenance-assistant/internal/model"
	"tenant-maintenance-assistant/pkg/log"
)

func newMockRepo(t *testing.T) (repo.Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(db, log.NewNop()), mock
}

var scope = model.Scope{TenantID: "tenant-1", PropertyID: "prop-1"}

func TestCreateRequest(t *testing.T) {
	opt := repo.CreateRequestOptions{
		ID:                "3f1c9a52-5d7e-4c7e-9f64-2f7b8f1f0a11",
		TenantName:        "Jane Doe",
		UnitNumber:        "4B",
		ContactInfo:       "jane@example.com",
		Title:             "Plumbing Issue",
		Description:       "Water is pouring from the ceiling",
		RequestType:       model.SpecialtyPlumbing,
		Priority:          model.PriorityUrgent,
		PermissionToEnter: true,
		Notes:             "Initial triage: Plumbing work, Urgent priority. Permission to enter: Yes.",
	}

	t.Run("success", func(t *testing.T) {
		r, mock := newMockRepo(t)
		now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO maintenance_requests")).
			WithArgs(opt.ID, "tenant-1", "prop-1", "Jane Doe", "4B", "jane@example.com",
				"Plumbing Issue", opt.Description, "Plumbing", "Urgent", "", true, opt.Notes).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

		rec, err := r.CreateRequest(context.Background(), scope, opt)
		require.NoError(t, err)
		assert.Equal(t, opt.ID, rec.ID)
		assert.Equal(t, model.StatusNew, rec.Status)
		assert.Equal(t, "tenant-1", rec.TenantID)
		assert.Equal(t, now, rec.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db error", func(t *testing.T) {
		r, mock := newMockRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO maintenance_requests")).
			WillReturnError(errors.New("duplicate key"))

		_, err := r.CreateRequest(context.Background(), scope, opt)
		assert.ErrorIs(t, err, repo.ErrFailedToInsert)
	})
}

func TestGetRequest(t *testing.T) {
	columns := []string{
		"id", "tenant_id", "property_id", "tenant_name", "unit_number", "contact_info",
		"title", "description", "request_type", "priority", "status",
		"assigned_to", "assigned_vendor_email",
		"media_url", "permission_to_enter", "notes", "created_at", "updated_at",
	}
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		r, mock := newMockRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM maintenance_requests")).
			WithArgs("req-1", "tenant-1").
			WillReturnRows(sqlmock.NewRows(columns).AddRow(
				"req-1", "tenant-1", "prop-1", "Jane Doe", "4B", "555-0100",
				"HVAC Issue", "No heat", "HVAC", "High", "Scheduled",
				"Cool Air Co", "cool@example.com",
				"", false, "notes", now, now,
			))

		rec, err := r.GetRequest(context.Background(), scope, "req-1")
		require.NoError(t, err)
		assert.Equal(t, model.SpecialtyHVAC, rec.RequestType)
		assert.Equal(t, model.PriorityHigh, rec.Priority)
		assert.Equal(t, model.StatusScheduled, rec.Status)
		assert.Equal(t, "Cool Air Co", rec.AssignedTo)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		r, mock := newMockRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM maintenance_requests")).
			WithArgs("missing", "tenant-1").
			WillReturnRows(sqlmock.NewRows(columns))

		rec, err := r.GetRequest(context.Background(), scope, "missing")
		require.NoError(t, err)
		assert.Empty(t, rec.ID)
	})

	t.Run("db error", func(t *testing.T) {
		r, mock := newMockRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM maintenance_requests")).
			WillReturnError(errors.New("connection refused"))

		_, err := r.GetRequest(context.Background(), scope, "req-1")
		assert.ErrorIs(t, err, repo.ErrFailedToGet)
	})
}
