// Package export dumps a generated snapshot into PostgreSQL for ad-hoc querying.
// The service never reads the exported tables back.
package export

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"

	"github.com/yigit/unidash/internal/app/models"
	"github.com/yigit/unidash/internal/db"
)

// batchSize bounds the rows per INSERT so statements stay under the 65535
// bind-parameter limit of the wire protocol
const batchSize = 500

// Execer runs one statement. pgx.Tx satisfies it.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Statement is a rendered SQL statement with its arguments
type Statement struct {
	SQL  string
	Args []interface{}
}

// Exporter writes snapshots
type Exporter struct {
	sb     squirrel.StatementBuilderType
	logger zerolog.Logger
}

// NewExporter creates an exporter using PostgreSQL placeholders
func NewExporter(logger zerolog.Logger) *Exporter {
	return &Exporter{
		sb:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		logger: logger,
	}
}

// Export replaces the exported tables with ds in one transaction
func (e *Exporter) Export(ctx context.Context, database *db.PostgresDB, ds *models.Dataset) error {
	statements, err := e.Statements(ds)
	if err != nil {
		return err
	}

	return database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return e.Write(ctx, tx, statements)
	})
}

// Write executes statements in order
func (e *Exporter) Write(ctx context.Context, exec Execer, statements []Statement) error {
	for i, stmt := range statements {
		if _, err := exec.Exec(ctx, stmt.SQL, stmt.Args...); err != nil {
			return fmt.Errorf("export statement %d failed: %w", i, err)
		}
	}
	e.logger.Info().Int("statements", len(statements)).Msg("Snapshot exported")
	return nil
}

// Statements renders the full export of ds: clearing the tables, then inserting in
// foreign-key order
func (e *Exporter) Statements(ds *models.Dataset) ([]Statement, error) {
	statements := []Statement{{
		SQL: "TRUNCATE TABLE course_schedule, enrollments, payments, courses, announcements, users",
	}}

	builders := make([]squirrel.InsertBuilder, 0)
	builders = append(builders, e.userInserts(ds.Accounts())...)
	builders = append(builders, e.courseInserts(ds.Courses)...)
	builders = append(builders, e.scheduleInserts(ds.Courses)...)
	builders = append(builders, e.enrollmentInserts(ds.Enrollments)...)
	builders = append(builders, e.paymentInserts(ds.Payments)...)
	builders = append(builders, e.announcementInserts(ds.Announcements)...)

	for _, b := range builders {
		sql, args, err := b.ToSql()
		if err != nil {
			return nil, fmt.Errorf("failed to build export statement: %w", err)
		}
		statements = append(statements, Statement{SQL: sql, Args: args})
	}
	return statements, nil
}

// batched starts a new builder every batchSize rows
func batched[T any](rows []T, start func() squirrel.InsertBuilder, values func(squirrel.InsertBuilder, T) squirrel.InsertBuilder) []squirrel.InsertBuilder {
	var out []squirrel.InsertBuilder
	for i := 0; i < len(rows); i += batchSize {
		end := i + batchSize
		if end > len(rows) {
			end = len(rows)
		}
		b := start()
		for _, row := range rows[i:end] {
			b = values(b, row)
		}
		out = append(out, b)
	}
	return out
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func (e *Exporter) userInserts(accounts []models.Account) []squirrel.InsertBuilder {
	start := func() squirrel.InsertBuilder {
		return e.sb.Insert("users").Columns(
			"id", "email", "first_name", "last_name", "role", "department", "phone",
			"email_verified", "phone_verified", "created_at",
			"student_id", "program", "year", "semester", "gpa", "credits_earned", "credits_required",
			"staff_id", "title", "specialization",
		)
	}

	return batched(accounts, start, func(b squirrel.InsertBuilder, account models.Account) squirrel.InsertBuilder {
		u := account.Base()
		// student columns, then staff columns
		var studentID, program, year, semester, gpa, earned, required interface{}
		var staffID, title, specialization interface{}

		switch a := account.(type) {
		case *models.Student:
			studentID, program, year, semester = a.StudentID, a.Program, a.Year, a.Semester
			gpa, earned, required = a.GPA, a.CreditsEarned, a.CreditsRequired
		case *models.Lecturer:
			staffID, title, specialization = a.StaffID, a.Title, a.Specialization
		case *models.Admin:
			staffID = a.StaffID
		case *models.FinanceOfficer:
			staffID = a.StaffID
		}

		return b.Values(
			u.ID, u.Email, u.FirstName, u.LastName, string(u.Role), nullable(u.Department), nullable(u.Phone),
			u.EmailVerified, u.PhoneVerified, u.CreatedAt,
			studentID, program, year, semester, gpa, earned, required,
			staffID, title, specialization,
		)
	})
}

func (e *Exporter) courseInserts(courses []*models.Course) []squirrel.InsertBuilder {
	start := func() squirrel.InsertBuilder {
		return e.sb.Insert("courses").Columns(
			"id", "code", "name", "department", "credits", "capacity", "enrolled", "waitlisted",
			"lecturer_id", "lecturer_name",
		)
	}

	return batched(courses, start, func(b squirrel.InsertBuilder, c *models.Course) squirrel.InsertBuilder {
		return b.Values(c.ID, c.Code, c.Name, c.Department, c.Credits, c.Capacity, c.Enrolled, c.Waitlisted,
			nullable(c.LecturerID), nullable(c.LecturerName))
	})
}

type scheduleRow struct {
	courseID string
	position int
	slot     models.ScheduleSlot
}

func (e *Exporter) scheduleInserts(courses []*models.Course) []squirrel.InsertBuilder {
	var rows []scheduleRow
	for _, c := range courses {
		for i, slot := range c.Schedule {
			rows = append(rows, scheduleRow{courseID: c.ID, position: i, slot: slot})
		}
	}

	start := func() squirrel.InsertBuilder {
		return e.sb.Insert("course_schedule").Columns("course_id", "position", "day", "time_slot", "room", "building")
	}

	return batched(rows, start, func(b squirrel.InsertBuilder, r scheduleRow) squirrel.InsertBuilder {
		return b.Values(r.courseID, r.position, r.slot.Day, r.slot.Time, r.slot.Room, r.slot.Building)
	})
}

func (e *Exporter) enrollmentInserts(enrollments []*models.Enrollment) []squirrel.InsertBuilder {
	start := func() squirrel.InsertBuilder {
		return e.sb.Insert("enrollments").Columns(
			"id", "student_id", "course_id", "semester", "status", "grade", "grade_points", "enrolled_at",
		)
	}

	return batched(enrollments, start, func(b squirrel.InsertBuilder, en *models.Enrollment) squirrel.InsertBuilder {
		var points interface{}
		if en.GradePoints != nil {
			points = *en.GradePoints
		}
		return b.Values(en.ID, en.StudentID, en.CourseID, en.Semester, string(en.Status), nullable(en.Grade), points, en.EnrolledAt)
	})
}

func (e *Exporter) paymentInserts(payments []*models.Payment) []squirrel.InsertBuilder {
	start := func() squirrel.InsertBuilder {
		return e.sb.Insert("payments").Columns(
			"id", "student_id", "amount", "type", "status", "provider", "mobile_number",
			"transaction_ref", "created_at", "completed_at",
		)
	}

	return batched(payments, start, func(b squirrel.InsertBuilder, p *models.Payment) squirrel.InsertBuilder {
		return b.Values(p.ID, p.StudentID, p.Amount, string(p.Type), string(p.Status), p.Provider,
			nullable(p.MobileNumber), nullable(p.TransactionRef), p.CreatedAt, p.CompletedAt)
	})
}

func (e *Exporter) announcementInserts(announcements []*models.Announcement) []squirrel.InsertBuilder {
	start := func() squirrel.InsertBuilder {
		return e.sb.Insert("announcements").Columns(
			"id", "title", "content", "type", "priority", "target_audience", "author", "created_at",
		)
	}

	return batched(announcements, start, func(b squirrel.InsertBuilder, a *models.Announcement) squirrel.InsertBuilder {
		return b.Values(a.ID, a.Title, a.Content, string(a.Type), string(a.Priority), string(a.TargetAudience), a.Author, a.CreatedAt)
	})
}
