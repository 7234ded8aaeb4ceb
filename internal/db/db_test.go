package db

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })
	return New(sqlx.NewDb(mockDB, "mysql")), mock
}

func TestInsertBookingReturnsGeneratedID(t *testing.T) {
	d, mock := newMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bookings")).
		WithArgs("Jane Cruz", "jane@example.com", "+63 917 000 0000",
			"2026-10-02", "2026-10-05", "2", "1", "7", "Filipino").
		WillReturnResult(sqlmock.NewResult(42, 1))

	id, err := d.InsertBooking(context.Background(), Booking{
		Name:        "Jane Cruz",
		Email:       "jane@example.com",
		Contact:     "+63 917 000 0000",
		Arrival:     "2026-10-02",
		Departure:   "2026-10-05",
		Adults:      "2",
		Kids:        "1",
		KidAges:     "7",
		Nationality: "Filipino",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertBookingPassesStoreErrorThrough(t *testing.T) {
	d, mock := newMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bookings")).
		WillReturnError(errors.New("connect ETIMEDOUT"))

	_, err := d.InsertBooking(context.Background(), Booking{Name: "Jane Cruz"})
	require.Error(t, err)
	assert.EqualError(t, err, "connect ETIMEDOUT")
	assert.False(t, errors.Is(err, ErrDuplicate))
}

func TestInsertAttendeeReturnsGeneratedID(t *testing.T) {
	d, mock := newMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO attendees")).
		WithArgs("A", "a@x.com", "2024", "555").
		WillReturnResult(sqlmock.NewResult(1, 1))

	id, err := d.InsertAttendee(context.Background(), Attendee{
		Name: "A", Email: "a@x.com", Batch: "2024", Phone: "555",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertAttendeeClassifiesDuplicateKey(t *testing.T) {
	d, mock := newMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO attendees")).
		WillReturnError(&mysql.MySQLError{
			Number:  1062,
			Message: "Duplicate entry 'a@x.com' for key 'attendees.email'",
		})

	_, err := d.InsertAttendee(context.Background(), Attendee{
		Name: "A", Email: "a@x.com", Batch: "2024",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestClassifyLeavesOtherMySQLErrorsAlone(t *testing.T) {
	src := &mysql.MySQLError{Number: 1146, Message: "Table 'homestay.attendees' doesn't exist"}
	err := classify(src)
	assert.False(t, errors.Is(err, ErrDuplicate))
	assert.Equal(t, src, err)
}
