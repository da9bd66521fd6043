package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/boilerai/boilerplan/internal/domain"
)

// validateCatalogFile checks the decoded catalog before it is indexed.
// Returns a slice of all validation errors found.
func validateCatalogFile(f *catalogFile) []error {
	var errs []error

	known := make(map[string]bool, len(f.Courses))
	for i, c := range f.Courses {
		errs = append(errs, validateCourse(i, c, known)...)
	}
	for i, c := range f.Courses {
		for _, term := range parsePrereqs(c.Prereqs) {
			for _, code := range term.AnyOf {
				if !known[code] {
					errs = append(errs, fmt.Errorf("courses[%d] %s: prerequisite %q is not in the catalog", i, c.Code, code))
				}
			}
		}
	}
	errs = append(errs, validatePrereqCycles(f.Courses)...)

	for i, hp := range f.HardPairs {
		if len(hp.Courses) < 2 {
			errs = append(errs, fmt.Errorf("hard_pairs[%d]: needs at least two courses", i))
		}
		if hp.Message == "" {
			errs = append(errs, fmt.Errorf("hard_pairs[%d].message is required", i))
		}
	}

	if len(f.Fillers) == 0 {
		errs = append(errs, fmt.Errorf("fillers: at least one filler elective is required"))
	}

	if len(f.Majors) == 0 {
		errs = append(errs, fmt.Errorf("majors: at least one major is required"))
	}
	for i, m := range f.Majors {
		errs = append(errs, validateMajor(i, m, known)...)
	}

	return errs
}

func validateCourse(i int, c courseSpec, known map[string]bool) []error {
	var errs []error
	prefix := fmt.Sprintf("courses[%d]", i)

	switch {
	case c.Code == "":
		errs = append(errs, fmt.Errorf("%s.code is required", prefix))
	case NormalizeCode(c.Code) != c.Code:
		errs = append(errs, fmt.Errorf("%s.code %q is not canonical (expected %q)", prefix, c.Code, NormalizeCode(c.Code)))
	case known[c.Code]:
		errs = append(errs, fmt.Errorf("%s.code %q is duplicated", prefix, c.Code))
	}
	if c.Code != "" {
		known[c.Code] = true
	}

	if c.Title == "" {
		errs = append(errs, fmt.Errorf("%s %s: title is required", prefix, c.Code))
	}
	if c.Credits <= 0 {
		errs = append(errs, fmt.Errorf("%s %s: credits must be > 0", prefix, c.Code))
	}
	for _, o := range c.Offered {
		if _, err := domain.ParseTerm(o); err != nil {
			errs = append(errs, fmt.Errorf("%s %s: offered: %w", prefix, c.Code, err))
		}
	}
	return errs
}

func validateMajor(i int, m majorSpec, known map[string]bool) []error {
	var errs []error
	prefix := fmt.Sprintf("majors[%d]", i)

	if _, err := domain.ParseMajor(m.Key); err != nil {
		errs = append(errs, fmt.Errorf("%s.key: %w", prefix, err))
	}
	if m.Name == "" {
		errs = append(errs, fmt.Errorf("%s.name is required", prefix))
	}
	for _, code := range m.Foundation {
		if !known[code] {
			errs = append(errs, fmt.Errorf("%s.foundation: %q is not in the catalog", prefix, code))
		}
	}

	includes := 0
	for j, c := range m.Categories {
		if c.Include != "" {
			if c.Include != includeTrack {
				errs = append(errs, fmt.Errorf("%s.categories[%d].include: unknown value %q", prefix, j, c.Include))
			}
			includes++
			continue
		}
		errs = append(errs, validateCategory(fmt.Sprintf("%s.categories[%d]", prefix, j), c, known)...)
	}
	if len(m.Tracks) > 0 && includes != 1 {
		errs = append(errs, fmt.Errorf("%s: majors with tracks need exactly one include: track entry", prefix))
	}
	if len(m.Tracks) == 0 && includes > 0 {
		errs = append(errs, fmt.Errorf("%s: include: track without any tracks", prefix))
	}

	names := make(map[string]bool)
	for j, t := range m.Tracks {
		tp := fmt.Sprintf("%s.tracks[%d]", prefix, j)
		if t.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", tp))
		}
		// Only clashes across tracks are errors.
		own := make(map[string]bool)
		for _, alias := range append([]string{t.Name}, t.Aliases...) {
			key := trackKey(alias)
			if own[key] {
				continue
			}
			own[key] = true
			if names[key] {
				errs = append(errs, fmt.Errorf("%s: track name or alias %q is duplicated", tp, alias))
			}
		}
		for key := range own {
			names[key] = true
		}
		for k, c := range t.Categories {
			if c.Include != "" {
				errs = append(errs, fmt.Errorf("%s.categories[%d]: include is only valid on major categories", tp, k))
				continue
			}
			errs = append(errs, validateCategory(fmt.Sprintf("%s.categories[%d]", tp, k), c, known)...)
		}
	}
	return errs
}

func validateCategory(prefix string, c categorySpec, known map[string]bool) []error {
	var errs []error
	if c.Key == "" {
		errs = append(errs, fmt.Errorf("%s.key is required", prefix))
	}
	if c.Key == domain.TrackChoiceKey {
		errs = append(errs, fmt.Errorf("%s.key %q is reserved", prefix, c.Key))
	}

	kinds := 0
	if len(c.Courses) > 0 {
		kinds++
		for _, code := range c.Courses {
			if !known[code] {
				errs = append(errs, fmt.Errorf("%s.courses: %q is not in the catalog", prefix, code))
			}
		}
	}
	if len(c.Options) > 0 {
		kinds++
		if c.Choose < 1 || c.Choose > len(c.Options) {
			errs = append(errs, fmt.Errorf("%s.choose must be between 1 and %d, got %d", prefix, len(c.Options), c.Choose))
		}
		for _, o := range c.Options {
			if !known[o.Code] {
				errs = append(errs, fmt.Errorf("%s.options: %q is not in the catalog", prefix, o.Code))
			}
			if o.Title == "" {
				errs = append(errs, fmt.Errorf("%s.options: %q needs a title", prefix, o.Code))
			}
		}
	}
	if c.Slots > 0 || c.SlotPrefix != "" {
		kinds++
		if c.Slots <= 0 || c.SlotPrefix == "" {
			errs = append(errs, fmt.Errorf("%s: slot categories need both slot_prefix and slots > 0", prefix))
		}
		if len(c.SatisfiedBy) == 0 {
			errs = append(errs, fmt.Errorf("%s.satisfied_by is required for slot categories", prefix))
		}
	}
	if kinds != 1 {
		errs = append(errs, fmt.Errorf("%s: must define exactly one of courses, options or slots", prefix))
	}
	return errs
}

// validatePrereqCycles reports every course that sits on a prerequisite
// cycle. A cycle would make the course permanently unschedulable.
func validatePrereqCycles(courses []courseSpec) []error {
	graph := make(map[string][]string, len(courses))
	for _, c := range courses {
		for _, term := range parsePrereqs(c.Prereqs) {
			graph[c.Code] = append(graph[c.Code], term.AnyOf...)
		}
	}

	const (
		unvisited = iota
		inProgress
		done
	)
	state := make(map[string]int, len(graph))
	onCycle := make(map[string]bool)
	var stack []string

	var visit func(code string)
	visit = func(code string) {
		state[code] = inProgress
		stack = append(stack, code)
		for _, next := range graph[code] {
			switch state[next] {
			case unvisited:
				visit(next)
			case inProgress:
				for i := len(stack) - 1; i >= 0; i-- {
					onCycle[stack[i]] = true
					if stack[i] == next {
						break
					}
				}
			}
		}
		stack = stack[:len(stack)-1]
		state[code] = done
	}

	for _, c := range courses {
		if state[c.Code] == unvisited {
			visit(c.Code)
		}
	}
	if len(onCycle) == 0 {
		return nil
	}

	codes := make([]string, 0, len(onCycle))
	for code := range onCycle {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return []error{fmt.Errorf("prerequisite cycle involving %s", strings.Join(codes, ", "))}
}
