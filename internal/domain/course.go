package domain

import "strings"

// CourseRecord is the catalog view of a single course or requirement
// placeholder.
type CourseRecord struct {
	Code        string
	Title       string
	Credits     int
	Description string
	Offered     []Term
	Level       int
	Placeholder bool
}

func (c CourseRecord) OfferedIn(t Term) bool {
	for _, o := range c.Offered {
		if o == t {
			return true
		}
	}
	return false
}

// Department returns the subject prefix ("CS" for "CS 25100"). Placeholders
// have no department.
func (c CourseRecord) Department() string {
	if c.Placeholder {
		return ""
	}
	return CourseDepartment(c.Code)
}

func (c CourseRecord) IsCS() bool {
	return c.Department() == "CS"
}

// LimitedOffering reports a course that runs in only one of Fall or Spring.
func (c CourseRecord) LimitedOffering() bool {
	return c.OfferedIn(TermFall) != c.OfferedIn(TermSpring)
}

// CourseDepartment splits a normalized code on its first space.
func CourseDepartment(code string) string {
	dept, _, ok := strings.Cut(code, " ")
	if !ok {
		return ""
	}
	return dept
}

// CourseLevel derives 1..4 from the first digit of the course number.
// Graduate numbers clamp to 4; codes without a number are level 0.
func CourseLevel(code string) int {
	_, num, ok := strings.Cut(code, " ")
	if !ok || num == "" || num[0] < '0' || num[0] > '9' {
		return 0
	}
	level := int(num[0] - '0')
	switch {
	case level < 1:
		return 1
	case level > 4:
		return 4
	}
	return level
}

// PrereqTerm is one conjunct of a prerequisite expression; any listed course
// satisfies it.
type PrereqTerm struct {
	AnyOf []string
}

func (t PrereqTerm) SatisfiedBy(have func(code string) bool) bool {
	for _, c := range t.AnyOf {
		if have(c) {
			return true
		}
	}
	return false
}

func (t PrereqTerm) String() string {
	return strings.Join(t.AnyOf, " or ")
}
