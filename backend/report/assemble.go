package report

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"studentportal/backend/models"
)

// Sheet positions in the fixed fetch order.
const (
	SheetStudents = iota
	SheetSubjects
	SheetActivities
	SheetAssignments
	SheetTests
	SheetCorrections
	SheetAttendance
	sheetCount
)

// SheetConfig names one fetched range and declares its layout.
type SheetConfig struct {
	Name  string
	Shape Shape
}

// Sheets is the per-sheet configuration: Students is the one vertical
// sheet, everything else is row-per-student.
var Sheets = [sheetCount]SheetConfig{
	SheetStudents:    {Name: "Students", Shape: Vertical},
	SheetSubjects:    {Name: "Subjects", Shape: Horizontal},
	SheetActivities:  {Name: "Activities", Shape: Horizontal},
	SheetAssignments: {Name: "Assignments", Shape: Horizontal},
	SheetTests:       {Name: "Tests", Shape: Horizontal},
	SheetCorrections: {Name: "Corrections", Shape: Horizontal},
	SheetAttendance:  {Name: "Attendance", Shape: Horizontal},
}

// SheetRanges returns the range names to fetch, in order.
func SheetRanges() []string {
	ranges := make([]string, sheetCount)
	for i, s := range Sheets {
		ranges[i] = s.Name
	}
	return ranges
}

// Record kind declarations: the ordered field matchers cover the vertical
// layout, the suffixes the horizontal one.
var (
	activitySpec = RecordSpec{
		Kind:    "activity",
		Primary: Field{Name: "activity", Match: Contains("activity")},
		Fields: []Field{
			{Name: "date", Match: Contains("date"), Suffix: "_date"},
			{Name: "description", Match: Contains("desc"), Suffix: "_description"},
			{Name: "status", Match: Contains("status"), Suffix: "_status"},
		},
	}

	assignmentSpec = RecordSpec{
		Kind:    "assignment",
		Primary: Field{Name: "name", Match: ContainsExcept("name", "father", "mother")},
		Fields: []Field{
			{Name: "assigned", Match: Contains("assigned"), Suffix: "_assigned"},
			{Name: "due", Match: Contains("due"), Suffix: "_due"},
			{Name: "status", Match: Contains("status"), Suffix: "_status"},
			{Name: "remarks", Match: Contains("remark"), Suffix: "_remarks"},
		},
	}

	testSpec = RecordSpec{
		Kind:    "test",
		Primary: Field{Name: "name", Match: ContainsExcept("name", "father", "mother")},
		Fields: []Field{
			{Name: "date", Match: Contains("date"), Suffix: "_date"},
			{Name: "maxmarks", Match: Contains("max"), Suffix: "_maxmarks"},
			{Name: "marks", Match: ContainsExcept("marks", "max"), Suffix: "_marks"},
			{Name: "grade", Match: Contains("grade"), Suffix: "_grade"},
		},
	}

	correctionSpec = RecordSpec{
		Kind:    "correction",
		Primary: Field{Name: "copytype", Match: Contains("copy")},
		Fields: []Field{
			{Name: "date", Match: Contains("date"), Suffix: "_date"},
			{Name: "improvements", Match: Contains("improve"), Suffix: "_improvements"},
			{Name: "remarks", Match: Contains("remark"), Suffix: "_remarks"},
		},
	}
)

// recentTestCount is how many newest tests the profile surfaces.
const recentTestCount = 5

// BuildProfile reshapes the fetched tables into one student's profile.
// Only two conditions are fatal: an unknown student and a Students sheet
// without a key column. Everything else degrades to sparse-but-valid.
func BuildProfile(tables []Table, key string) (*models.StudentProfile, error) {
	students := tableAt(tables, SheetStudents)
	infoRow, err := FindRow(students, key)
	if err != nil {
		return nil, err
	}

	// Lists start empty, not nil, so a sparse profile still serializes
	// with [] for every sequence.
	profile := &models.StudentProfile{
		StudentInfo:       decodeStudentInfo(students.Headers(), infoRow),
		SubjectProgress:   []models.SubjectRecord{},
		SubjectActivities: []models.Activity{},
		Assignments:       []models.Assignment{},
		Tests:             []models.Test{},
		Corrections:       []models.Correction{},
	}
	profile.SubjectProgress = append(profile.SubjectProgress, decodeSubjects(tableAt(tables, SheetSubjects), key)...)

	for _, rec := range decodeSheet(tables, SheetActivities, key, activitySpec) {
		profile.SubjectActivities = append(profile.SubjectActivities, models.Activity{
			Subject:     rec["subject"],
			Activity:    rec["activity"],
			Date:        rec["date"],
			Description: rec["description"],
			Status:      rec["status"],
		})
	}

	for _, rec := range decodeSheet(tables, SheetAssignments, key, assignmentSpec) {
		profile.Assignments = append(profile.Assignments, models.Assignment{
			Subject:      rec["subject"],
			Name:         rec["name"],
			AssignedDate: rec["assigned"],
			DueDate:      rec["due"],
			Status:       rec["status"],
			Remarks:      rec["remarks"],
		})
	}

	for _, rec := range decodeSheet(tables, SheetTests, key, testSpec) {
		maxMarks := parseNumber(rec["maxmarks"])
		marks := parseNumber(rec["marks"])
		percentage := 0.0
		if maxMarks > 0 {
			percentage = round1(marks / maxMarks * 100)
		}
		profile.Tests = append(profile.Tests, models.Test{
			Subject:       rec["subject"],
			Name:          rec["name"],
			Date:          rec["date"],
			MaxMarks:      maxMarks,
			MarksObtained: marks,
			Percentage:    percentage,
			Grade:         rec["grade"],
		})
	}

	for _, rec := range decodeSheet(tables, SheetCorrections, key, correctionSpec) {
		profile.Corrections = append(profile.Corrections, models.Correction{
			Subject:      rec["subject"],
			CopyType:     rec["copytype"],
			Date:         rec["date"],
			Improvements: rec["improvements"],
			Remarks:      rec["remarks"],
		})
	}

	profile.RecentTests = recentTests(profile.Tests)
	profile.Attendance = decodeAttendance(tableAt(tables, SheetAttendance), key)
	profile.Summary = buildSummary(profile)

	return profile, nil
}

// tableAt tolerates short or nil fetch results: a missing table is an
// empty one.
func tableAt(tables []Table, i int) Table {
	if i < 0 || i >= len(tables) {
		return nil
	}
	return tables[i]
}

func decodeSheet(tables []Table, sheet int, key string, spec RecordSpec) []Record {
	return DecodeRecords(tableAt(tables, sheet), key, Sheets[sheet].Shape, spec)
}

// decodeStudentInfo resolves identity columns on the Students sheet.
// Unresolved columns yield empty fields, never an error.
func decodeStudentInfo(headers, row []string) models.StudentInfo {
	pick := func(matchers ...Matcher) string {
		return cell(row, FindColumnAny(headers, matchers...))
	}
	return models.StudentInfo{
		Name:        pick(ContainsExcept("name", "father", "mother")),
		Class:       pick(Contains("class")),
		AdmissionNo: pick(Contains("admission")),
		RollNo:      pick(Contains("roll")),
		DOB:         pick(Exact("dob"), Contains("dob"), Contains("birth")),
		Contact:     pick(Contains("contact"), Contains("phone")),
		PhotoURL:    pick(Contains("photo")),
	}
}

// decodeSubjects reads the fixed-suffix progress/grade groups, keeping
// only subjects with progress > 0.
func decodeSubjects(t Table, key string) []models.SubjectRecord {
	row := studentRow(t, key)
	if row == nil {
		return nil
	}

	var subjects []models.SubjectRecord
	for _, g := range DecodeSuffixGroups(t.Headers(), row, "_progress", positiveNumber, "_grade") {
		subjects = append(subjects, models.SubjectRecord{
			Subject:  g.Label,
			Progress: parseNumber(g.Values["_progress"]),
			Grade:    g.Values["_grade"],
		})
	}
	return subjects
}

// decodeAttendance picks the calendar model when the sheet carries
// date-named columns, else the per-month summary model.
func decodeAttendance(t Table, key string) models.AttendanceSummary {
	empty := models.AttendanceSummary{
		Months:       []models.AttendanceMonth{},
		AcademicYear: defaultAcademicYear,
	}
	empty.YearToDate.Percentage = formatPercent(0, 0)

	row := studentRow(t, key)
	if row == nil {
		return empty
	}

	headers := t.Headers()
	if HasDateHeaders(headers) {
		return BuildAttendance(headers, row)
	}
	return BuildMonthlyAttendance(headers, row, time.Now())
}

// recentTests returns the newest tests first, at most recentTestCount.
// Undated tests sort last; equal dates keep their sheet order.
func recentTests(tests []models.Test) []models.RecentTest {
	ordered := make([]models.Test, len(tests))
	copy(ordered, tests)
	sort.SliceStable(ordered, func(i, j int) bool {
		di, oki := parseSortDate(ordered[i].Date)
		dj, okj := parseSortDate(ordered[j].Date)
		if oki != okj {
			return oki
		}
		return di.After(dj)
	})

	if len(ordered) > recentTestCount {
		ordered = ordered[:recentTestCount]
	}

	recent := make([]models.RecentTest, len(ordered))
	for i, t := range ordered {
		recent[i] = models.RecentTest{
			Subject:    t.Subject,
			Name:       t.Name,
			Date:       t.Date,
			Marks:      formatNumber(t.MarksObtained) + "/" + formatNumber(t.MaxMarks),
			Percentage: t.Percentage,
			Grade:      t.Grade,
		}
	}
	return recent
}

func buildSummary(p *models.StudentProfile) models.Summary {
	s := models.Summary{TotalSubjects: len(p.SubjectProgress)}

	for _, a := range p.Assignments {
		switch strings.ToLower(strings.TrimSpace(a.Status)) {
		case "complete":
			s.CompletedAssignments++
		case "pending":
			s.PendingAssignments++
		}
	}

	if len(p.Attendance.Months) == 0 {
		s.AttendancePercentage = "0.0%"
		return s
	}
	var sum float64
	for _, m := range p.Attendance.Months {
		v, _ := strconv.ParseFloat(m.Percentage, 64)
		sum += v
	}
	s.AttendancePercentage = formatFixed1(sum/float64(len(p.Attendance.Months))) + "%"
	return s
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}

func formatFixed1(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// formatNumber renders a marks value without a trailing ".0" so the
// "X/Y" display reads like the sheet.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
