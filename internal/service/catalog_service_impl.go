package service

import (
	"context"
	"fmt"

	"github.com/boilerai/boilerplan/internal/catalog"
	"github.com/boilerai/boilerplan/internal/domain"
)

type catalogService struct {
	catalog *catalog.Catalog
}

func NewCatalogService(cat *catalog.Catalog) CatalogService {
	return &catalogService{catalog: cat}
}

func (s *catalogService) ListMajors(ctx context.Context) []domain.Major {
	return s.catalog.Majors()
}

func (s *catalogService) ListCourses(ctx context.Context, dept string) []domain.CourseRecord {
	return s.catalog.Courses(dept)
}

func (s *catalogService) GetCourse(ctx context.Context, code string) (*CourseDetail, error) {
	normalized := catalog.NormalizeCode(code)
	if !s.catalog.Known(normalized) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCourse, code)
	}
	return &CourseDetail{
		Course:        s.catalog.Course(normalized),
		Prerequisites: s.catalog.Prerequisites(normalized),
		Chain:         s.catalog.PrerequisiteChain(normalized),
		Unlocks:       s.catalog.Unlocks(normalized),
		Tree:          s.prereqTree(normalized),
	}, nil
}

func (s *catalogService) prereqTree(code string) []PrereqLine {
	var lines []PrereqLine
	expanded := map[string]bool{code: true}

	var walk func(code string, depth int)
	walk = func(code string, depth int) {
		terms := s.catalog.Prerequisites(code)
		for i, t := range terms {
			first := t.AnyOf[0]
			lines = append(lines, PrereqLine{
				Codes: t.AnyOf,
				Depth: depth,
				Last:  i == len(terms)-1,
				Note:  offeringNote(s.catalog.Course(first)),
			})
			if expanded[first] {
				continue
			}
			expanded[first] = true
			walk(first, depth+1)
		}
	}
	walk(code, 0)
	return lines
}

// offeringNote flags courses that run in only one regular term.
func offeringNote(c domain.CourseRecord) string {
	if !c.LimitedOffering() {
		return ""
	}
	if c.OfferedIn(domain.TermFall) {
		return "Fall only"
	}
	return "Spring only"
}

func (s *catalogService) ListTracks(ctx context.Context, major string) ([]domain.ChoiceOption, error) {
	m, err := domain.ParseMajor(major)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", catalog.ErrUnknownMajor, major)
	}
	return s.catalog.TrackOptions(m), nil
}
