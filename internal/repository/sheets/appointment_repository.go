package sheets

import (
	"context"
	"errors"
	"fmt"
	"time"

	"askmedix-be/internal/entity"
	"askmedix-be/internal/repository/contract"
	"askmedix-be/internal/repository/specification"

	"github.com/google/uuid"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Row layout, header in row 1:
//   A: id | B: full_name | C: email | D: phone | E: scheduled_at | F: status | G: cancel_token | H: created_at
const (
	firstDataRow    = 2
	statusColumn    = "F"
	timestampLayout = "2006-01-02 15:04:05"
)

var ErrUnsupportedSpecification = errors.New("specification not supported by the sheets repository")

// AppointmentRepository stores appointments as rows of a Google Sheet.
// Drop-in alternative to the postgres repository for deployments without
// a database. Filtering happens in memory after reading the sheet, so it
// only supports the specifications the appointment flows actually use.
type AppointmentRepository struct {
	service       *sheets.Service
	spreadsheetId string
	sheetName     string
}

func NewAppointmentRepository(ctx context.Context, credentialsFile, spreadsheetId, sheetName string) (contract.AppointmentRepository, error) {
	service, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &AppointmentRepository{
		service:       service,
		spreadsheetId: spreadsheetId,
		sheetName:     sheetName,
	}, nil
}

func (r *AppointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	if appointment.Id == uuid.Nil {
		appointment.Id = uuid.New()
	}
	if appointment.CreatedAt.IsZero() {
		appointment.CreatedAt = time.Now()
	}

	row := []interface{}{
		appointment.Id.String(),
		appointment.FullName,
		appointment.Email,
		appointment.Phone,
		appointment.ScheduledAt.Format(timestampLayout),
		appointment.Status,
		appointment.CancelToken,
		appointment.CreatedAt.Format(timestampLayout),
	}
	valueRange := &sheets.ValueRange{Values: [][]interface{}{row}}

	_, err := r.service.Spreadsheets.Values.
		Append(r.spreadsheetId, r.dataRange(), valueRange).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append appointment row: %w", err)
	}
	return nil
}

func (r *AppointmentRepository) Update(ctx context.Context, appointment *entity.Appointment) error {
	rows, err := r.readRows(ctx)
	if err != nil {
		return err
	}
	for i, row := range rows {
		if rowValue(row, 0) != appointment.Id.String() {
			continue
		}
		values := []interface{}{
			appointment.Id.String(),
			appointment.FullName,
			appointment.Email,
			appointment.Phone,
			appointment.ScheduledAt.Format(timestampLayout),
			appointment.Status,
			appointment.CancelToken,
			appointment.CreatedAt.Format(timestampLayout),
		}
		return r.writeRange(ctx, fmt.Sprintf("%s!A%d:H%d", r.sheetName, firstDataRow+i, firstDataRow+i), values)
	}
	return fmt.Errorf("appointment %s not found in sheet", appointment.Id)
}

func (r *AppointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Rows are never removed; cancellation is a status change.
	return errors.New("delete is not supported by the sheets repository")
}

func (r *AppointmentRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Appointment, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all[0], nil
}

func (r *AppointmentRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Appointment, error) {
	rows, err := r.readRows(ctx)
	if err != nil {
		return nil, err
	}

	var appointments []*entity.Appointment
	for _, row := range rows {
		appointment := r.rowToEntity(row)
		if appointment == nil {
			continue
		}
		matched, err := matches(appointment, specs...)
		if err != nil {
			return nil, err
		}
		if matched {
			appointments = append(appointments, appointment)
		}
	}
	return appointments, nil
}

func (r *AppointmentRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil {
		return 0, err
	}
	return int64(len(all)), nil
}

func (r *AppointmentRepository) FindByCancelToken(ctx context.Context, token string) (*entity.Appointment, error) {
	return r.FindOne(ctx, specification.ByCancelToken{Token: token})
}

func (r *AppointmentRepository) UpdateStatusByToken(ctx context.Context, token string, status string) (int64, error) {
	rows, err := r.readRows(ctx)
	if err != nil {
		return 0, err
	}

	var affected int64
	for i, row := range rows {
		if rowValue(row, 6) != token {
			continue
		}
		cell := fmt.Sprintf("%s!%s%d", r.sheetName, statusColumn, firstDataRow+i)
		if err := r.writeRange(ctx, cell, []interface{}{status}); err != nil {
			return affected, err
		}
		affected++
	}
	return affected, nil
}

func (r *AppointmentRepository) dataRange() string {
	return fmt.Sprintf("%s!A%d:H", r.sheetName, firstDataRow)
}

func (r *AppointmentRepository) readRows(ctx context.Context) ([][]interface{}, error) {
	resp, err := r.service.Spreadsheets.Values.
		Get(r.spreadsheetId, r.dataRange()).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read appointment rows: %w", err)
	}
	return resp.Values, nil
}

func (r *AppointmentRepository) writeRange(ctx context.Context, writeRange string, values []interface{}) error {
	valueRange := &sheets.ValueRange{Values: [][]interface{}{values}}
	_, err := r.service.Spreadsheets.Values.
		Update(r.spreadsheetId, writeRange, valueRange).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to update range %s: %w", writeRange, err)
	}
	return nil
}

func (r *AppointmentRepository) rowToEntity(row []interface{}) *entity.Appointment {
	id, err := uuid.Parse(rowValue(row, 0))
	if err != nil {
		return nil
	}
	scheduledAt, _ := time.Parse(timestampLayout, rowValue(row, 4))
	createdAt, _ := time.Parse(timestampLayout, rowValue(row, 7))
	return &entity.Appointment{
		Id:          id,
		FullName:    rowValue(row, 1),
		Email:       rowValue(row, 2),
		Phone:       rowValue(row, 3),
		ScheduledAt: scheduledAt,
		Status:      rowValue(row, 5),
		CancelToken: rowValue(row, 6),
		CreatedAt:   createdAt,
	}
}

func rowValue(row []interface{}, index int) string {
	if index >= len(row) {
		return ""
	}
	value, ok := row[index].(string)
	if !ok {
		return fmt.Sprintf("%v", row[index])
	}
	return value
}

func matches(appointment *entity.Appointment, specs ...specification.Specification) (bool, error) {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByCancelToken:
			if appointment.CancelToken != s.Token {
				return false, nil
			}
		case specification.ByStatus:
			if appointment.Status != s.Status {
				return false, nil
			}
		case specification.ByID:
			if appointment.Id != s.ID {
				return false, nil
			}
		default:
			return false, fmt.Errorf("%w: %T", ErrUnsupportedSpecification, spec)
		}
	}
	return true, nil
}
