package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yigit/unidash/internal/app/models"
	"github.com/yigit/unidash/internal/app/models/dto"
	"github.com/yigit/unidash/internal/client"
	"github.com/yigit/unidash/internal/pkg/websocket"
	"github.com/yigit/unidash/internal/ui"
)

var pageFlags = []cli.Flag{
	&cli.IntFlag{Name: "page", Value: 1, Usage: "page number"},
	&cli.IntFlag{Name: "limit", Usage: "items per page (server default when unset)"},
}

var studentFlag = &cli.StringFlag{Name: "student", Usage: "student id (defaults to the signed-in student)"}

func commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "login",
			Usage: "sign in",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "email", Required: true},
				&cli.StringFlag{Name: "password", Required: true, EnvVars: []string{"UNIDASH_PASSWORD"}},
			},
			Action: login,
		},
		{Name: "logout", Usage: "sign out", Action: logout},
		{Name: "students", Usage: "list students", Flags: pageFlags, Action: listStudents},
		{Name: "student", Usage: "show a student", ArgsUsage: "<id>", Action: showStudent},
		{Name: "courses", Usage: "list courses", Flags: pageFlags, Action: listCourses},
		{Name: "course", Usage: "show a course", ArgsUsage: "<id>", Action: showCourse},
		{Name: "enroll", Usage: "enroll in a course", ArgsUsage: "<course-id>", Flags: []cli.Flag{studentFlag}, Action: enroll},
		{Name: "drop", Usage: "drop a course", ArgsUsage: "<course-id>", Flags: []cli.Flag{studentFlag}, Action: drop},
		{
			Name:  "enrollments",
			Usage: "list enrollments of a student or a course",
			Flags: []cli.Flag{
				studentFlag,
				&cli.StringFlag{Name: "course", Usage: "course id"},
			},
			Action: listEnrollments,
		},
		{Name: "announcements", Usage: "list announcements", Flags: pageFlags, Action: listAnnouncements},
		{
			Name:  "pay",
			Usage: "pay fees with mobile money",
			Flags: []cli.Flag{
				studentFlag,
				&cli.Float64Flag{Name: "amount", Required: true},
				&cli.StringFlag{Name: "type", Value: string(models.PaymentTuition), Usage: "tuition, accommodation, library, registration or other"},
				&cli.StringFlag{Name: "mobile", Usage: "10 digit mobile number"},
				&cli.StringFlag{Name: "provider", Value: models.ProviderMTN},
				&cli.DurationFlag{Name: "refresh", Value: 3 * time.Second, Usage: "wait this long and show the updated statement, 0 to skip"},
			},
			Action: pay,
		},
		{Name: "payment", Usage: "show a payment's status", ArgsUsage: "<id>", Action: showPayment},
		{Name: "statement", Usage: "show a financial statement", Flags: []cli.Flag{studentFlag}, Action: showStatement},
		{Name: "menu", Usage: "show the navigation menu", Action: showMenu},
		{Name: "watch", Usage: "print live notifications until interrupted", Action: watch},
		{
			Name:      "sidebar",
			Usage:     "show or change the sidebar preference",
			ArgsUsage: "[open|close|toggle]",
			Action:    sidebar,
		},
	}
}

func requireArg(c *cli.Context, name string) (string, error) {
	if c.NArg() < 1 {
		return "", fmt.Errorf("missing %s", name)
	}
	return c.Args().First(), nil
}

func login(c *cli.Context) error {
	s := current(c)
	ctx, cancel := commandContext(c)
	defer cancel()

	result, err := s.client.Login(ctx, strings.TrimSpace(c.String("email")), c.String("password"))
	if err != nil {
		return s.fail("Login failed", err)
	}

	user := result.User.Base()
	if err := s.kv.Set(userIDKey, user.ID); err != nil {
		return err
	}
	if err := s.kv.Set(userRoleKey, string(user.Role)); err != nil {
		return err
	}

	s.toast(ui.ToastInput{Title: "Welcome back", Message: fmt.Sprintf("Signed in as %s (%s)", user.Name, user.Role), Type: ui.TypeSuccess})
	return nil
}

func logout(c *cli.Context) error {
	s := current(c)
	if err := s.client.Logout(); err != nil {
		return err
	}
	_ = s.kv.Remove(userIDKey)
	_ = s.kv.Remove(userRoleKey)
	s.toast(ui.ToastInput{Title: "Signed out", Type: ui.TypeInfo})
	return nil
}

func listStudents(c *cli.Context) error {
	s := current(c)
	ctx, cancel := commandContext(c)
	defer cancel()

	students, page, err := s.client.Students(ctx, c.Int("page"), c.Int("limit"))
	if err != nil {
		return s.fail("Could not load students", err)
	}
	printStudents(s.out, students)
	printPage(s.out, page)
	return nil
}

func showStudent(c *cli.Context) error {
	s := current(c)
	id, err := requireArg(c, "student id")
	if err != nil {
		return err
	}
	ctx, cancel := commandContext(c)
	defer cancel()

	student, err := s.client.Student(ctx, id)
	if err != nil {
		return s.fail("Could not load student", err)
	}
	printStudent(s.out, student)
	return nil
}

func listCourses(c *cli.Context) error {
	s := current(c)
	ctx, cancel := commandContext(c)
	defer cancel()

	courses, page, err := s.client.Courses(ctx, c.Int("page"), c.Int("limit"))
	if err != nil {
		return s.fail("Could not load courses", err)
	}
	printCourses(s.out, courses)
	printPage(s.out, page)
	return nil
}

func showCourse(c *cli.Context) error {
	s := current(c)
	id, err := requireArg(c, "course id")
	if err != nil {
		return err
	}
	ctx, cancel := commandContext(c)
	defer cancel()

	course, err := s.client.Course(ctx, id)
	if err != nil {
		return s.fail("Could not load course", err)
	}
	printCourse(s.out, course)
	return nil
}

func enroll(c *cli.Context) error {
	s := current(c)
	courseID, err := requireArg(c, "course id")
	if err != nil {
		return err
	}
	ctx, cancel := commandContext(c)
	defer cancel()

	enrollment, err := s.client.Enroll(ctx, courseID, c.String("student"))
	if err != nil {
		return s.fail("Enrollment failed", err)
	}
	s.toast(ui.ToastInput{
		Title:   "Enrolled",
		Message: fmt.Sprintf("%s %s (%s)", enrollment.Course.Code, enrollment.Course.Name, enrollment.Semester),
		Type:    ui.TypeSuccess,
	})
	return nil
}

func drop(c *cli.Context) error {
	s := current(c)
	courseID, err := requireArg(c, "course id")
	if err != nil {
		return err
	}
	ctx, cancel := commandContext(c)
	defer cancel()

	message, err := s.client.Drop(ctx, courseID, c.String("student"))
	if err != nil {
		return s.fail("Could not drop course", err)
	}
	s.toast(ui.ToastInput{Title: "Course dropped", Message: message, Type: ui.TypeSuccess})
	return nil
}

func listEnrollments(c *cli.Context) error {
	s := current(c)
	ctx, cancel := commandContext(c)
	defer cancel()

	var (
		enrollments []models.Enrollment
		err         error
	)
	if courseID := c.String("course"); courseID != "" {
		enrollments, err = s.client.CourseEnrollments(ctx, courseID)
	} else {
		var studentID string
		if studentID, err = s.studentID(c); err != nil {
			return err
		}
		enrollments, err = s.client.StudentEnrollments(ctx, studentID)
	}
	if err != nil {
		return s.fail("Could not load enrollments", err)
	}
	printEnrollments(s.out, enrollments)
	return nil
}

func listAnnouncements(c *cli.Context) error {
	s := current(c)
	ctx, cancel := commandContext(c)
	defer cancel()

	announcements, page, err := s.client.Announcements(ctx, c.Int("page"), c.Int("limit"))
	if err != nil {
		return s.fail("Could not load announcements", err)
	}
	printAnnouncements(s.out, announcements)
	printPage(s.out, page)
	return nil
}

func pay(c *cli.Context) error {
	s := current(c)
	ctx, cancel := commandContext(c)
	defer cancel()

	payment, err := s.client.InitiatePayment(ctx, dto.InitiatePaymentRequest{
		StudentID:    c.String("student"),
		Amount:       c.Float64("amount"),
		Type:         models.PaymentType(c.String("type")),
		MobileNumber: c.String("mobile"),
		Provider:     c.String("provider"),
	})
	if err != nil {
		return s.fail("Payment failed", err)
	}

	s.toast(ui.ToastInput{
		Title:   "Payment initiated",
		Message: fmt.Sprintf("Approve the %s prompt on your phone. Reference %s", payment.Provider, payment.ID),
		Type:    ui.TypeInfo,
	})
	printPayment(s.out, payment)

	delay := c.Duration("refresh")
	if delay <= 0 {
		return nil
	}
	return refreshStatement(ctx, s, payment.StudentID, delay)
}

// refreshStatement shows the student's statement after delay. The refresh is
// dropped if ctx ends first.
func refreshStatement(ctx context.Context, s *session, studentID string, delay time.Duration) error {
	type result struct {
		statement *models.FinancialStatement
		err       error
	}
	done := make(chan result, 1)

	timer := time.AfterFunc(delay, func() {
		st, err := s.client.Statement(ctx, studentID)
		done <- result{statement: st, err: err}
	})
	defer timer.Stop()

	select {
	case <-ctx.Done():
		s.logger.Debug().Str("studentID", studentID).Msg("Statement refresh cancelled")
		return nil
	case r := <-done:
		if r.err != nil {
			if errors.Is(r.err, context.Canceled) {
				return nil
			}
			return s.fail("Could not refresh statement", r.err)
		}
		printStatement(s.out, r.statement)
		return nil
	}
}

func showPayment(c *cli.Context) error {
	s := current(c)
	id, err := requireArg(c, "payment id")
	if err != nil {
		return err
	}
	ctx, cancel := commandContext(c)
	defer cancel()

	payment, err := s.client.Payment(ctx, id)
	if err != nil {
		return s.fail("Could not load payment", err)
	}
	printPayment(s.out, payment)
	return nil
}

func showStatement(c *cli.Context) error {
	s := current(c)
	studentID, err := s.studentID(c)
	if err != nil {
		return err
	}
	ctx, cancel := commandContext(c)
	defer cancel()

	statement, err := s.client.Statement(ctx, studentID)
	if err != nil {
		return s.fail("Could not load statement", err)
	}
	printStatement(s.out, statement)
	return nil
}

func showMenu(c *cli.Context) error {
	s := current(c)
	ctx, cancel := commandContext(c)
	defer cancel()

	items, err := s.client.Menu(ctx)
	if err != nil {
		return s.fail("Could not load menu", err)
	}
	printMenu(s.out, items)
	return nil
}

func watch(c *cli.Context) error {
	s := current(c)
	ctx, cancel := commandContext(c)
	defer cancel()

	err := s.client.Notifications(ctx, func(n websocket.Notification) {
		s.ui.Notify(n.Title, n.Message, ui.MessageType(n.Type))
		fmt.Fprintf(s.out, "%s [%s] %s: %s (%d unread)\n",
			n.CreatedAt.Local().Format("15:04:05"), n.Type, n.Title, n.Message, s.ui.State().UnreadCount())
	})
	if errors.Is(err, client.ErrNotSignedIn) {
		return errors.New("not signed in, run `unidash login` first")
	}
	if err != nil {
		return s.fail("Notifications unavailable", err)
	}
	return nil
}

func sidebar(c *cli.Context) error {
	s := current(c)

	switch c.Args().First() {
	case "":
	case "open":
		s.ui.Dispatch(ui.SetSidebar{Open: true})
	case "close":
		s.ui.Dispatch(ui.SetSidebar{Open: false})
	case "toggle":
		s.ui.Dispatch(ui.ToggleSidebar{})
	default:
		return fmt.Errorf("unknown sidebar action %q", c.Args().First())
	}

	if s.ui.State().SidebarOpen {
		fmt.Fprintln(s.out, "sidebar: open")
	} else {
		fmt.Fprintln(s.out, "sidebar: closed")
	}
	return nil
}
