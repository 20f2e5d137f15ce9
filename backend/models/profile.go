package models

// StudentInfo holds the identity fields read from the Students sheet.
type StudentInfo struct {
	Name        string `json:"name"`
	Class       string `json:"class"`
	AdmissionNo string `json:"admissionNo"`
	RollNo      string `json:"rollNo"`
	DOB         string `json:"dob"`
	Contact     string `json:"contact"`
	PhotoURL    string `json:"photoUrl"`
}

// SubjectRecord is one subject's progress entry. Only subjects with
// progress > 0 are materialized.
type SubjectRecord struct {
	Subject  string  `json:"subject"`
	Progress float64 `json:"progress"`
	Grade    string  `json:"grade"`
}

type Activity struct {
	Subject     string `json:"subject"`
	Activity    string `json:"activity"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type Assignment struct {
	Subject      string `json:"subject"`
	Name         string `json:"name"`
	AssignedDate string `json:"assignedDate"`
	DueDate      string `json:"dueDate"`
	Status       string `json:"status"`
	Remarks      string `json:"remarks"`
}

type Test struct {
	Subject       string  `json:"subject"`
	Name          string  `json:"name"`
	Date          string  `json:"date"`
	MaxMarks      float64 `json:"maxMarks"`
	MarksObtained float64 `json:"marksObtained"`
	Percentage    float64 `json:"percentage"`
	Grade         string  `json:"grade"`
}

// RecentTest is the compact view of a Test used for the newest-first
// top-5 list, with marks collapsed to an "X/Y" string.
type RecentTest struct {
	Subject    string  `json:"subject"`
	Name       string  `json:"name"`
	Date       string  `json:"date"`
	Marks      string  `json:"marks"`
	Percentage float64 `json:"percentage"`
	Grade      string  `json:"grade"`
}

type Correction struct {
	Subject      string `json:"subject"`
	CopyType     string `json:"copyType"`
	Date         string `json:"date"`
	Improvements string `json:"improvements"`
	Remarks      string `json:"remarks"`
}

// AttendanceDay is one calendar day inside a month bucket. After calendar
// reconstruction there is exactly one entry per day of the month.
type AttendanceDay struct {
	DayOfMonth  int    `json:"dayOfMonth"`
	IsSchoolDay bool   `json:"isSchoolDay"`
	Status      string `json:"status"`
	IsHoliday   bool   `json:"isHoliday"`
	DayName     string `json:"dayName,omitempty"`
	TimeStatus  string `json:"timeStatus"`
}

// AttendanceMonth aggregates one (month, year) bucket. TotalDays,
// DaysPresent and DaysAbsent count school days only.
type AttendanceMonth struct {
	Month       int             `json:"month"`
	Year        int             `json:"year"`
	TotalDays   int             `json:"totalDays"`
	DaysPresent int             `json:"daysPresent"`
	DaysAbsent  int             `json:"daysAbsent"`
	Percentage  string          `json:"percentage"`
	Days        []AttendanceDay `json:"days"`
}

type AttendanceTotals struct {
	TotalDays   int    `json:"totalDays"`
	DaysPresent int    `json:"daysPresent"`
	DaysAbsent  int    `json:"daysAbsent"`
	Percentage  string `json:"percentage"`
}

type AttendanceSummary struct {
	YearToDate   AttendanceTotals  `json:"yearToDate"`
	Months       []AttendanceMonth `json:"months"`
	AcademicYear string            `json:"academicYear"`
}

type Summary struct {
	TotalSubjects        int    `json:"totalSubjects"`
	CompletedAssignments int    `json:"completedAssignments"`
	PendingAssignments   int    `json:"pendingAssignments"`
	AttendancePercentage string `json:"attendancePercentage"`
}

// StudentProfile is the composite document returned for one student.
// It is built fresh per request and never persisted.
type StudentProfile struct {
	StudentInfo       StudentInfo       `json:"studentInfo"`
	SubjectProgress   []SubjectRecord   `json:"subjectProgress"`
	RecentTests       []RecentTest      `json:"recentTests"`
	SubjectActivities []Activity        `json:"subjectActivities"`
	Assignments       []Assignment      `json:"assignments"`
	Tests             []Test            `json:"tests"`
	Corrections       []Correction      `json:"corrections"`
	Attendance        AttendanceSummary `json:"attendance"`
	Summary           Summary           `json:"summary"`
}
