package importer

import (
	"strings"
	"time"

	"github.com/boilerai/boilerplan/internal/catalog"
	"github.com/boilerai/boilerplan/internal/domain"
	"github.com/google/uuid"
)

// ImportedStudent is a converted roster entry ready for persistence. Seq is
// left zero for the caller to allocate.
type ImportedStudent struct {
	Student    *domain.Student
	Selections domain.SelectedChoices
}

// Convert transforms a validated RosterSchema into domain objects. Call
// ValidateRosterSchema first; Convert assumes the schema is valid.
func Convert(schema *RosterSchema, tracks TrackResolver) []ImportedStudent {
	now := time.Now().UTC()
	out := make([]ImportedStudent, 0, len(schema.Students))

	for _, s := range schema.Students {
		major, _ := domain.ParseMajor(s.Major)
		term, _ := domain.ParseTerm(s.Term)

		profile := domain.StudentProfile{
			Major:            major,
			CompletedCourses: catalog.NormalizeCodes(s.Completed),
			CurrentYear:      s.Year,
			CurrentTerm:      term,
			SummerCourses:    s.Summer,
			CreditLoad:       domain.LoadStandard,
			GraduationGoal:   domain.GoalFourYear,
		}
		if s.Track != "" {
			profile.Track, _ = tracks.ResolveTrack(major, s.Track)
		}
		if s.CreditLoad != "" {
			profile.CreditLoad, _ = domain.ParseCreditLoad(s.CreditLoad)
		}
		if s.GraduationGoal != "" {
			profile.GraduationGoal, _ = domain.ParseGraduationGoal(s.GraduationGoal)
		}

		var selections domain.SelectedChoices
		if len(s.Selections) > 0 {
			selections = make(domain.SelectedChoices, len(s.Selections))
			for key, codes := range s.Selections {
				selections[strings.TrimSpace(key)] = catalog.NormalizeCodes(codes)
			}
		}

		out = append(out, ImportedStudent{
			Student: &domain.Student{
				ID:        uuid.New().String(),
				Name:      strings.TrimSpace(s.Name),
				Profile:   profile,
				CreatedAt: now,
				UpdatedAt: now,
			},
			Selections: selections,
		})
	}
	return out
}
