package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spatialid/adjuststatus/internal/diag"
	"github.com/spatialid/adjuststatus/internal/logging"
	"github.com/spatialid/adjuststatus/internal/model"
)

const insertOperation = "AdjustmentStore.Insert"

// Conn is satisfied by *sql.DB, *sql.Conn and *sql.Tx. Commit semantics
// belong to whichever the caller passes in.
type Conn interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// StatementError reports a failed INSERT together with the statement rendered
// with its bound values.
type StatementError struct {
	Statement string
	Err       error
}

func (e *StatementError) Error() string {
	return fmt.Sprintf("execute %s: %v", e.Statement, e.Err)
}

func (e *StatementError) Unwrap() error {
	return e.Err
}

type AdjustmentStore struct {
	conn   Conn
	driver string
	msgs   *logging.Messages
	now    func() time.Time
	insert string
}

func NewAdjustmentStore(conn Conn, driver string, msgs *logging.Messages) *AdjustmentStore {
	return &AdjustmentStore{
		conn:   conn,
		driver: driver,
		msgs:   msgs,
		now:    func() time.Time { return time.Now().UTC() },
		insert: `INSERT INTO facility_data_adjustment_management (` + adjustmentCols + `) VALUES (` + placeholders(driver, 7) + `)`,
	}
}

const adjustmentCols = `zip_file_name, infra_company_id, process_start_date, process_end_date, adjust_status, adjust_message, created_at`

// Insert writes rec as one new row. created_at is always the current time;
// rec.CreatedAt is ignored. Calling Insert twice writes two rows.
func (s *AdjustmentStore) Insert(ctx context.Context, rec model.StatusRecord) error {
	args := []any{
		rec.ZipFileName,
		rec.InfraCompanyID,
		nullTime(rec.ProcessStartDate),
		nullTime(rec.ProcessEndDate),
		string(rec.AdjustStatus),
		rec.AdjustMessage,
		s.now(),
	}
	stmt := renderStatement(s.insert, args)

	if _, err := s.conn.ExecContext(ctx, s.insert, args...); err != nil {
		serr := &StatementError{Statement: stmt, Err: errors.WithStack(err)}
		s.msgs.Emit(ctx, logging.MsgStatementFailed, insertOperation, stmt, diag.Render(serr.Err))
		return serr
	}

	s.msgs.Emit(ctx, logging.MsgStatementExecuted, insertOperation, stmt)
	return nil
}

// ListByZipFile returns the rows recorded for zipFileName, oldest first.
func (s *AdjustmentStore) ListByZipFile(ctx context.Context, zipFileName string) ([]model.StatusRecord, error) {
	rows, err := s.conn.QueryContext(ctx,
		`SELECT `+adjustmentCols+` FROM facility_data_adjustment_management WHERE zip_file_name = `+bindvar(s.driver, 1)+` ORDER BY created_at ASC`,
		zipFileName,
	)
	if err != nil {
		return nil, fmt.Errorf("list adjustment status: %w", err)
	}
	defer rows.Close()

	var records []model.StatusRecord
	for rows.Next() {
		r, err := scanStatusRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan adjustment status: %w", err)
		}
		records = append(records, *r)
	}
	return records, rows.Err()
}

func scanStatusRecord(scanner interface{ Scan(...any) error }) (*model.StatusRecord, error) {
	var r model.StatusRecord
	var start, end sql.NullTime
	var status string
	var message sql.NullString

	err := scanner.Scan(
		&r.ZipFileName, &r.InfraCompanyID, &start, &end,
		&status, &message, &r.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	r.AdjustStatus = model.AdjustStatus(status)
	r.AdjustMessage = message.String
	if start.Valid {
		r.ProcessStartDate = &start.Time
	}
	if end.Valid {
		r.ProcessEndDate = &end.Time
	}
	return &r, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
