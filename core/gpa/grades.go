package gpa

// Grade symbols
const (
	GradeA      = "A"
	GradeAMinus = "A-"
	GradeBPlus  = "B+"
	GradeB      = "B"
	GradeBMinus = "B-"
	GradeCPlus  = "C+"
	GradeC      = "C"
	GradeCMinus = "C-"
	GradeDPlus  = "D+"
	GradeD      = "D"
	GradeF      = "F"

	// DefaultGrade is the grade preselected on a new course row.
	DefaultGrade = GradeA
)

// GradePoint is one entry of the grade scale.
type GradePoint struct {
	Grade  string  `json:"grade"`
	Points float64 `json:"points"`
}

var (
	// scale in canonical order: best to worst
	scale = [...]GradePoint{
		{GradeA, 4.0},
		{GradeAMinus, 3.7},
		{GradeBPlus, 3.3},
		{GradeB, 3.0},
		{GradeBMinus, 2.7},
		{GradeCPlus, 2.3},
		{GradeC, 2.0},
		{GradeCMinus, 1.7},
		{GradeDPlus, 1.3},
		{GradeD, 1.0},
		{GradeF, 0.0},
	}

	gradePoints = func() map[string]float64 {
		m := make(map[string]float64, len(scale))
		for _, gp := range scale {
			m[gp.Grade] = gp.Points
		}
		return m
	}()
)

// Grades returns a copy of the grade scale, best grade first.
func Grades() []GradePoint {
	grades := make([]GradePoint, len(scale))
	copy(grades, scale[:])
	return grades
}

// Points returns the grade points of the given grade symbol.
// The lookup is exact: "a" or " A" are not grades.
func Points(grade string) (float64, bool) {
	pts, ok := gradePoints[grade]
	return pts, ok
}

func IsGrade(grade string) bool {
	_, ok := gradePoints[grade]
	return ok
}
