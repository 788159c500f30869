package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/yigit/unidash/internal/app/models"
)

func table(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
}

func money(amount float64) string {
	return fmt.Sprintf("GH₵ %.2f", amount)
}

func printPage(out io.Writer, p models.Pagination) {
	fmt.Fprintf(out, "page %d of %d (%d total)\n", p.Page, p.TotalPages, p.Total)
}

func printStudents(out io.Writer, students []models.Student) {
	w := table(out)
	fmt.Fprintln(w, "ID\tSTUDENT ID\tNAME\tPROGRAM\tYEAR\tGPA")
	for _, s := range students {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%.2f\n", s.ID, s.StudentID, s.Name, s.Program, s.Year, s.GPA)
	}
	w.Flush()
}

func printStudent(out io.Writer, s *models.Student) {
	w := table(out)
	fmt.Fprintf(w, "Name\t%s\n", s.Name)
	fmt.Fprintf(w, "Email\t%s\n", s.Email)
	fmt.Fprintf(w, "Student ID\t%s\n", s.StudentID)
	fmt.Fprintf(w, "Program\t%s\n", s.Program)
	fmt.Fprintf(w, "Year / Semester\t%d / %d\n", s.Year, s.Semester)
	fmt.Fprintf(w, "GPA\t%.2f\n", s.GPA)
	fmt.Fprintf(w, "Credits\t%d of %d\n", s.CreditsEarned, s.CreditsRequired)
	w.Flush()
}

func printCourses(out io.Writer, courses []models.Course) {
	w := table(out)
	fmt.Fprintln(w, "ID\tCODE\tNAME\tCREDITS\tSEATS\tLECTURER")
	for _, c := range courses {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d/%d\t%s\n", c.ID, c.Code, c.Name, c.Credits, c.Enrolled, c.Capacity, c.LecturerName)
	}
	w.Flush()
}

func printCourse(out io.Writer, c *models.Course) {
	w := table(out)
	fmt.Fprintf(w, "Course\t%s %s\n", c.Code, c.Name)
	fmt.Fprintf(w, "Department\t%s\n", c.Department)
	fmt.Fprintf(w, "Lecturer\t%s\n", c.LecturerName)
	fmt.Fprintf(w, "Credits\t%d\n", c.Credits)
	fmt.Fprintf(w, "Seats\t%d of %d taken, %d waitlisted\n", c.Enrolled, c.Capacity, c.Waitlisted)
	for _, slot := range c.Schedule {
		fmt.Fprintf(w, "Schedule\t%s %s, %s, %s\n", slot.Day, slot.Time, slot.Room, slot.Building)
	}
	w.Flush()
}

func printEnrollments(out io.Writer, enrollments []models.Enrollment) {
	w := table(out)
	fmt.Fprintln(w, "ID\tSTUDENT\tCOURSE\tSEMESTER\tSTATUS\tGRADE")
	for _, e := range enrollments {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", e.ID, e.StudentID, e.Course.Code, e.Semester, e.Status, e.Grade)
	}
	w.Flush()
}

func printAnnouncements(out io.Writer, announcements []models.Announcement) {
	for _, a := range announcements {
		fmt.Fprintf(out, "[%s] %s (%s, %s)\n", strings.ToUpper(string(a.Priority)), a.Title, a.Type, a.CreatedAt.Format("2 Jan 2006"))
		fmt.Fprintf(out, "    %s\n", a.Content)
	}
}

func printPayment(out io.Writer, p *models.Payment) {
	fmt.Fprintf(out, "%s  %s  %s  %s  %s\n", p.ID, p.Type, money(p.Amount), p.Provider, p.Status)
}

func printStatement(out io.Writer, st *models.FinancialStatement) {
	w := table(out)
	fmt.Fprintln(w, "FEE\tAMOUNT\tSTATUS")
	for _, item := range st.Breakdown {
		fmt.Fprintf(w, "%s\t%s\t%s\n", item.Name, money(item.Amount), item.Status)
	}
	fmt.Fprintf(w, "Total fees\t%s\t\n", money(st.TotalFees))
	fmt.Fprintf(w, "Paid\t%s\t\n", money(st.TotalPaid))
	fmt.Fprintf(w, "Balance\t%s\t\n", money(st.Balance))
	w.Flush()
}

func printMenu(out io.Writer, items []models.MenuItem) {
	w := table(out)
	for _, item := range items {
		fmt.Fprintf(w, "%s\t%s\n", item.Label, item.Path)
	}
	w.Flush()
}
