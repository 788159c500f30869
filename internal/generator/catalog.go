package generator

import "github.com/yigit/unidash/internal/app/models"

var firstNames = []string{
	"Kwame", "Ama", "Kofi", "Akosua", "Yaw", "Abena", "Kwabena", "Efua", "Kojo", "Adwoa",
	"Kwesi", "Esi", "Emmanuel", "Grace", "Samuel", "Mercy", "Daniel", "Patience", "Isaac", "Gifty",
}

var lastNames = []string{
	"Mensah", "Owusu", "Boateng", "Asante", "Osei", "Appiah", "Agyeman", "Darko",
	"Amoah", "Ofori", "Addo", "Tetteh", "Quaye", "Annan", "Frimpong", "Opoku",
}

// phonePrefixes are the network prefixes synthetic numbers start with.
var phonePrefixes = []string{"024", "054", "020", "027"}

type department struct {
	Name         string
	Abbreviation string
	Program      string
}

var departments = []department{
	{Name: "Computer Science", Abbreviation: "CS", Program: "BSc Computer Science"},
	{Name: "Mathematics", Abbreviation: "MATH", Program: "BSc Mathematics"},
	{Name: "Business Administration", Abbreviation: "BUS", Program: "BSc Business Administration"},
	{Name: "Electrical Engineering", Abbreviation: "EE", Program: "BSc Electrical Engineering"},
	{Name: "Economics", Abbreviation: "ECON", Program: "BA Economics"},
	{Name: "Physics", Abbreviation: "PHY", Program: "BSc Physics"},
}

func departmentByName(name string) department {
	for _, d := range departments {
		if d.Name == name {
			return d
		}
	}
	return department{Name: name, Abbreviation: "GEN"}
}

var lecturerTitles = []string{"Dr.", "Prof.", "Mr.", "Mrs."}

var specializations = []string{
	"Distributed Systems", "Machine Learning", "Applied Statistics", "Number Theory",
	"Corporate Finance", "Marketing Strategy", "Power Systems", "Signal Processing",
	"Development Economics", "Econometrics", "Quantum Mechanics", "Astrophysics",
}

type courseTemplate struct {
	Name       string
	Department string
	Level      int
}

// courseCatalog bounds how many courses can be generated.
var courseCatalog = []courseTemplate{
	{Name: "Introduction to Programming", Department: "Computer Science", Level: 1},
	{Name: "Data Structures and Algorithms", Department: "Computer Science", Level: 2},
	{Name: "Database Systems", Department: "Computer Science", Level: 2},
	{Name: "Operating Systems", Department: "Computer Science", Level: 3},
	{Name: "Computer Networks", Department: "Computer Science", Level: 3},
	{Name: "Software Engineering", Department: "Computer Science", Level: 4},
	{Name: "Calculus I", Department: "Mathematics", Level: 1},
	{Name: "Linear Algebra", Department: "Mathematics", Level: 2},
	{Name: "Probability and Statistics", Department: "Mathematics", Level: 2},
	{Name: "Real Analysis", Department: "Mathematics", Level: 3},
	{Name: "Principles of Management", Department: "Business Administration", Level: 1},
	{Name: "Financial Accounting", Department: "Business Administration", Level: 2},
	{Name: "Marketing Management", Department: "Business Administration", Level: 3},
	{Name: "Circuit Theory", Department: "Electrical Engineering", Level: 1},
	{Name: "Digital Electronics", Department: "Electrical Engineering", Level: 2},
	{Name: "Control Systems", Department: "Electrical Engineering", Level: 3},
	{Name: "Principles of Microeconomics", Department: "Economics", Level: 1},
	{Name: "Macroeconomic Theory", Department: "Economics", Level: 2},
	{Name: "Mechanics and Thermodynamics", Department: "Physics", Level: 1},
	{Name: "Electromagnetism", Department: "Physics", Level: 2},
	{Name: "Quantum Physics", Department: "Physics", Level: 3},
	{Name: "Research Methods", Department: "Economics", Level: 4},
}

var weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

var timeSlots = []string{"08:00 - 10:00", "10:00 - 12:00", "13:00 - 15:00", "15:00 - 17:00"}

var buildings = []string{"Science Block", "Engineering Complex", "Business School", "Main Auditorium", "Lecture Hall A"}

var creditValues = []int{2, 3, 4}

type amountRange struct{ Min, Max int }

// paymentAmounts are the inclusive amount ranges drawn for each payment type.
var paymentAmounts = map[models.PaymentType]amountRange{
	models.PaymentTuition:       {Min: 3000, Max: 12000},
	models.PaymentAccommodation: {Min: 1500, Max: 5000},
	models.PaymentLibrary:       {Min: 100, Max: 1000},
	models.PaymentRegistration:  {Min: 500, Max: 2000},
	models.PaymentOther:         {Min: 50, Max: 500},
}

type announcementTemplate struct {
	Title    string
	Content  string
	Audience models.Audience
	Author   string
}

// announcementCatalog bounds how many announcements can be generated.
var announcementCatalog = []announcementTemplate{
	{
		Title:    "Course Registration Now Open",
		Content:  "Registration for the new semester is open. Confirm your courses before the deadline to avoid late fees.",
		Audience: models.AudienceStudents,
		Author:   "Office of the Registrar",
	},
	{
		Title:    "Registration Deadline Extended",
		Content:  "The deadline for course registration has been extended by one week.",
		Audience: models.AudienceAll,
		Author:   "Office of the Registrar",
	},
	{
		Title:    "Fee Payment Reminder",
		Content:  "Students with outstanding balances should settle their fees through mobile money before mid-semester.",
		Audience: models.AudienceStudents,
		Author:   "Finance Office",
	},
	{
		Title:    "Mid-Semester Examination Timetable",
		Content:  "The mid-semester examination timetable has been published on the notice boards and portal.",
		Audience: models.AudienceAll,
		Author:   "Examinations Unit",
	},
	{
		Title:    "Library Opening Hours Extended",
		Content:  "The main library will remain open until midnight during the examination period.",
		Audience: models.AudienceAll,
		Author:   "University Library",
	},
	{
		Title:    "Faculty Board Meeting",
		Content:  "All lecturers are invited to the faculty board meeting on Friday at 2 pm in the Main Auditorium.",
		Audience: models.AudienceLecturers,
		Author:   "Dean's Office",
	},
	{
		Title:    "Career Fair",
		Content:  "Meet employers from banking, telecoms and technology at the annual career fair.",
		Audience: models.AudienceStudents,
		Author:   "Careers Service",
	},
	{
		Title:    "Grade Submission Deadline",
		Content:  "Final grades for all courses must be submitted through the portal by the end of the month.",
		Audience: models.AudienceLecturers,
		Author:   "Examinations Unit",
	},
	{
		Title:    "Scholarship Applications",
		Content:  "Applications for the merit scholarship are open to continuing students with a GPA of 3.5 and above.",
		Audience: models.AudienceStudents,
		Author:   "Finance Office",
	},
	{
		Title:    "Campus Network Maintenance",
		Content:  "The campus network will be unavailable on Saturday from 6 am to 10 am for scheduled maintenance.",
		Audience: models.AudienceAll,
		Author:   "ICT Directorate",
	},
}

var announcementTypes = []models.AnnouncementType{
	models.AnnouncementGeneral, models.AnnouncementAcademic, models.AnnouncementFinancial, models.AnnouncementEvent,
}

var priorities = []models.Priority{models.PriorityLow, models.PriorityMedium, models.PriorityHigh}

// CurrentSemester labels enrollments generated for the running term.
const CurrentSemester = "2024/2025 Semester 1"

// CreditsRequired is the number of credits needed to graduate.
const CreditsRequired = 120
