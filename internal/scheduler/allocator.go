package scheduler

import (
	"fmt"

	"github.com/boilerai/boilerplan/internal/domain"
)

// SemesterLimits bound one semester's allocation.
type SemesterLimits struct {
	MaxCredits   int
	MinCredits   int
	MaxCSCourses int
}

type BlockerCode string

const (
	BlockerCreditCeiling BlockerCode = "CREDIT_CEILING"
	BlockerCSCap         BlockerCode = "CS_COURSE_CAP"
)

// Blocker records why an available course was left for a later semester.
type Blocker struct {
	Code       BlockerCode
	CourseCode string
	Message    string
}

// Allocation is the set of courses placed into one semester.
type Allocation struct {
	Courses      []domain.ScheduledCourse
	TotalCredits int
	CSCredits    int
	CSCourses    int
}

func (a *Allocation) add(c domain.CourseRecord, filler bool) {
	a.Courses = append(a.Courses, domain.ScheduledCourse{
		Code:    c.Code,
		Title:   c.Title,
		Credits: c.Credits,
		Filler:  filler,
	})
	a.TotalCredits += c.Credits
	if c.IsCS() {
		a.CSCredits += c.Credits
		a.CSCourses++
	}
}

// AllocateSemester walks sorted candidates and takes each one that fits
// under the credit ceiling and the CS course cap. If the result is below
// the credit floor, fillers are appended in rotation until the floor is
// reached or the next filler would break the ceiling.
func AllocateSemester(
	candidates []ScoredCandidate,
	limits SemesterLimits,
	fillers []domain.CourseRecord,
) (Allocation, []Blocker) {
	var alloc Allocation
	var blockers []Blocker

	for _, c := range candidates {
		course := c.Input.Course
		if alloc.TotalCredits+course.Credits > limits.MaxCredits {
			blockers = append(blockers, Blocker{
				Code:       BlockerCreditCeiling,
				CourseCode: course.Code,
				Message:    fmt.Sprintf("Would exceed %d credits", limits.MaxCredits),
			})
			continue
		}
		if course.IsCS() && alloc.CSCourses >= limits.MaxCSCourses {
			blockers = append(blockers, Blocker{
				Code:       BlockerCSCap,
				CourseCode: course.Code,
				Message:    fmt.Sprintf("Already %d CS courses this semester", alloc.CSCourses),
			})
			continue
		}
		alloc.add(course, false)
	}

	for i := 0; alloc.TotalCredits < limits.MinCredits && len(fillers) > 0; i++ {
		f := fillers[i%len(fillers)]
		if f.Credits <= 0 || alloc.TotalCredits+f.Credits > limits.MaxCredits {
			break
		}
		alloc.add(f, true)
	}

	return alloc, blockers
}
