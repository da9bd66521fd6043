package domain

// RequirementGroup is one named bucket of outstanding courses.
type RequirementGroup struct {
	Key     string   `json:"key"`
	Label   string   `json:"label"`
	Courses []string `json:"courses"`
}

// RequirementSet keeps groups in catalog order.
type RequirementSet []RequirementGroup

// Courses flattens the set, keeping first-seen order and dropping duplicates.
func (s RequirementSet) Courses() []string {
	seen := make(map[string]bool)
	var out []string
	for _, g := range s {
		for _, c := range g.Courses {
			if seen[c] {
				continue
			}
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

func (s RequirementSet) Empty() bool {
	for _, g := range s {
		if len(g.Courses) > 0 {
			return false
		}
	}
	return true
}

// Filter keeps only courses accepted by keep, dropping groups that end up
// empty.
func (s RequirementSet) Filter(keep func(code string) bool) RequirementSet {
	var out RequirementSet
	for _, g := range s {
		var courses []string
		for _, c := range g.Courses {
			if keep(c) {
				courses = append(courses, c)
			}
		}
		if len(courses) == 0 {
			continue
		}
		out = append(out, RequirementGroup{Key: g.Key, Label: g.Label, Courses: courses})
	}
	return out
}

type CategoryKind string

const (
	CategoryRequired CategoryKind = "required"
	CategoryChoice   CategoryKind = "choice"
	CategorySlots    CategoryKind = "slots"
)

// RequirementCategory is a catalog definition of one requirement bucket.
// Required categories list their courses; choice categories pick Choose of
// Options; slot categories list generated placeholder codes that completed
// courses from the SatisfiedBy departments can fill ("*" accepts any).
type RequirementCategory struct {
	Key         string
	Label       string
	Kind        CategoryKind
	Courses     []string
	Choose      int
	Options     []ChoiceOption
	SatisfiedBy []string
	Track       bool
}

func (c RequirementCategory) AcceptsForSlot(code string) bool {
	dept := CourseDepartment(code)
	for _, s := range c.SatisfiedBy {
		if s == "*" || s == dept {
			return true
		}
	}
	return false
}

func (c RequirementCategory) OptionCodes() []string {
	out := make([]string, 0, len(c.Options))
	for _, o := range c.Options {
		out = append(out, o.Code)
	}
	return out
}

// HardPair flags a combination of courses that is demanding in one semester.
type HardPair struct {
	Courses []string
	Message string
}
