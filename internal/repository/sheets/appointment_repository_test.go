package sheets

import (
	"errors"
	"testing"

	"askmedix-be/internal/entity"
	"askmedix-be/internal/repository/specification"

	"github.com/google/uuid"
)

func TestRowToEntity(t *testing.T) {
	repo := &AppointmentRepository{sheetName: "Sheet1"}
	id := uuid.New()

	row := []interface{}{
		id.String(), "Jane Doe", "jane@example.com", "+254700000001",
		"2026-09-15 14:30:00", "scheduled", "tok-1", "2026-09-01 09:00:00",
	}
	appointment := repo.rowToEntity(row)
	if appointment == nil {
		t.Fatal("expected an entity")
	}
	if appointment.Id != id {
		t.Errorf("id = %v", appointment.Id)
	}
	if appointment.ScheduledAt.Format("2006-01-02 15:04") != "2026-09-15 14:30" {
		t.Errorf("scheduledAt = %v", appointment.ScheduledAt)
	}
	if appointment.CancelToken != "tok-1" {
		t.Errorf("token = %q", appointment.CancelToken)
	}
}

func TestRowToEntitySkipsCorruptRows(t *testing.T) {
	repo := &AppointmentRepository{}
	if repo.rowToEntity([]interface{}{"not-a-uuid", "x"}) != nil {
		t.Error("rows without a parseable id must be skipped")
	}
}

func TestRowValueHandlesShortRows(t *testing.T) {
	// Sheets drops trailing empty cells from returned rows
	row := []interface{}{"a", "b"}
	if got := rowValue(row, 5); got != "" {
		t.Errorf("rowValue past the end = %q, want empty", got)
	}
}

func TestMatches(t *testing.T) {
	appointment := &entity.Appointment{
		Id:          uuid.New(),
		Status:      "scheduled",
		CancelToken: "tok-9",
	}

	tests := []struct {
		name string
		spec specification.Specification
		want bool
	}{
		{"token match", specification.ByCancelToken{Token: "tok-9"}, true},
		{"token mismatch", specification.ByCancelToken{Token: "other"}, false},
		{"status match", specification.ByStatus{Status: "scheduled"}, true},
		{"status mismatch", specification.ByStatus{Status: "CANCELLED"}, false},
		{"id match", specification.ByID{ID: appointment.Id}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := matches(appointment, tt.spec)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatchesRejectsUnsupportedSpecification(t *testing.T) {
	_, err := matches(&entity.Appointment{}, specification.Pagination{Limit: 10})
	if !errors.Is(err, ErrUnsupportedSpecification) {
		t.Errorf("expected ErrUnsupportedSpecification, got %v", err)
	}
}
