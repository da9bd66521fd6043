package importer

import (
	"fmt"
	"strings"

	"github.com/boilerai/boilerplan/internal/catalog"
	"github.com/boilerai/boilerplan/internal/domain"
)

// TrackResolver maps a track name or alias to its canonical name.
type TrackResolver interface {
	ResolveTrack(major domain.Major, name string) (string, bool)
}

// ValidateRosterSchema checks every student before anything is converted.
// Returns a slice of all validation errors found.
func ValidateRosterSchema(schema *RosterSchema, tracks TrackResolver) []error {
	var errs []error

	if len(schema.Students) == 0 {
		errs = append(errs, fmt.Errorf("students: at least one student is required"))
	}

	names := make(map[string]bool)
	for i, s := range schema.Students {
		errs = append(errs, validateStudent(i, s, tracks)...)

		key := strings.ToLower(strings.TrimSpace(s.Name))
		if key != "" && names[key] {
			errs = append(errs, fmt.Errorf("students[%d].name %q is duplicated", i, s.Name))
		}
		names[key] = true
	}
	return errs
}

func validateStudent(i int, s StudentImport, tracks TrackResolver) []error {
	var errs []error
	prefix := fmt.Sprintf("students[%d]", i)

	if strings.TrimSpace(s.Name) == "" {
		errs = append(errs, fmt.Errorf("%s.name is required", prefix))
	}

	major, err := domain.ParseMajor(s.Major)
	if err != nil {
		errs = append(errs, fmt.Errorf("%s.major: %w", prefix, err))
	}
	if s.Track != "" && err == nil {
		if _, ok := tracks.ResolveTrack(major, s.Track); !ok {
			errs = append(errs, fmt.Errorf("%s.track: unknown track %q for %s", prefix, s.Track, major.DisplayName()))
		}
	}

	if s.Year < 1 || s.Year > 4 {
		errs = append(errs, fmt.Errorf("%s.year must be between 1 and 4, got %d", prefix, s.Year))
	}
	if _, err := domain.ParseTerm(s.Term); err != nil {
		errs = append(errs, fmt.Errorf("%s.term: %w", prefix, err))
	}
	if s.CreditLoad != "" {
		if _, err := domain.ParseCreditLoad(s.CreditLoad); err != nil {
			errs = append(errs, fmt.Errorf("%s.credit_load: %w", prefix, err))
		}
	}
	if s.GraduationGoal != "" {
		if _, err := domain.ParseGraduationGoal(s.GraduationGoal); err != nil {
			errs = append(errs, fmt.Errorf("%s.graduation_goal: %w", prefix, err))
		}
	}

	for j, code := range s.Completed {
		if catalog.NormalizeCode(code) == "" {
			errs = append(errs, fmt.Errorf("%s.completed[%d] is blank", prefix, j))
		}
	}
	for key, codes := range s.Selections {
		if key == domain.TrackChoiceKey {
			errs = append(errs, fmt.Errorf("%s.selections: use the track field instead of %q", prefix, key))
			continue
		}
		if len(catalog.NormalizeCodes(codes)) == 0 {
			errs = append(errs, fmt.Errorf("%s.selections.%s: at least one course code is required", prefix, key))
		}
	}
	return errs
}
