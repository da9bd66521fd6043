package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/boilerai/boilerplan/internal/domain"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

var (
	ErrUnknownMajor = errors.New("unknown major")
	ErrUnknownTrack = errors.New("unknown track")
)

const placeholderCredits = 3

// Catalog is the read-only reference data the planner consults: course
// records, prerequisites, offering calendar and per-major requirements.
// A loaded Catalog is never mutated and is safe for concurrent use.
type Catalog struct {
	courses   map[string]domain.CourseRecord
	order     []string
	prereqs   map[string][]domain.PrereqTerm
	majors    map[domain.Major]*majorDef
	fillers   []domain.CourseRecord
	hardPairs []domain.HardPair
}

type majorDef struct {
	name       string
	foundation []string
	before     []domain.RequirementCategory
	after      []domain.RequirementCategory
	tracks     []trackDef
}

type trackDef struct {
	name        string
	aliases     []string
	description string
	bestFor     []string
	categories  []domain.RequirementCategory
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Load(embeddedCatalog)
	})
	return defaultCatalog, defaultErr
}

// Open loads the catalog at path, or the embedded catalog when path is empty.
func Open(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	cat, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", path, err)
	}
	return cat, nil
}

// Load decodes and validates a YAML catalog. All validation problems are
// reported together.
func Load(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	if errs := validateCatalogFile(&f); len(errs) > 0 {
		return nil, fmt.Errorf("invalid catalog: %w", errors.Join(errs...))
	}
	return build(&f), nil
}

func build(f *catalogFile) *Catalog {
	c := &Catalog{
		courses: make(map[string]domain.CourseRecord, len(f.Courses)),
		prereqs: make(map[string][]domain.PrereqTerm),
		majors:  make(map[domain.Major]*majorDef, len(f.Majors)),
	}

	for _, spec := range f.Courses {
		offered := parseTerms(spec.Offered)
		if len(offered) == 0 {
			offered = []domain.Term{domain.TermFall, domain.TermSpring}
		}
		c.courses[spec.Code] = domain.CourseRecord{
			Code:        spec.Code,
			Title:       spec.Title,
			Credits:     spec.Credits,
			Description: spec.Description,
			Offered:     offered,
			Level:       domain.CourseLevel(spec.Code),
		}
		c.order = append(c.order, spec.Code)
		if terms := parsePrereqs(spec.Prereqs); len(terms) > 0 {
			c.prereqs[spec.Code] = terms
		}
	}

	for _, name := range f.Fillers {
		c.fillers = append(c.fillers, placeholderRecord(name, placeholderCredits))
	}
	for _, hp := range f.HardPairs {
		c.hardPairs = append(c.hardPairs, domain.HardPair{
			Courses: NormalizeCodes(hp.Courses),
			Message: hp.Message,
		})
	}

	for _, ms := range f.Majors {
		major, _ := domain.ParseMajor(ms.Key)
		def := &majorDef{name: ms.Name, foundation: NormalizeCodes(ms.Foundation)}
		seenInclude := false
		for _, cs := range ms.Categories {
			if cs.Include == includeTrack {
				seenInclude = true
				continue
			}
			cat := c.category(cs, false)
			if seenInclude {
				def.after = append(def.after, cat)
			} else {
				def.before = append(def.before, cat)
			}
		}
		for _, ts := range ms.Tracks {
			td := trackDef{
				name:        ts.Name,
				aliases:     ts.Aliases,
				description: ts.Description,
				bestFor:     ts.BestFor,
			}
			for _, cs := range ts.Categories {
				td.categories = append(td.categories, c.category(cs, true))
			}
			def.tracks = append(def.tracks, td)
		}
		c.majors[major] = def
	}
	return c
}

// category converts a category spec, registering placeholder records for
// slot categories as a side effect.
func (c *Catalog) category(cs categorySpec, track bool) domain.RequirementCategory {
	cat := domain.RequirementCategory{
		Key:   cs.Key,
		Label: cs.Label,
		Track: track,
	}
	switch {
	case len(cs.Options) > 0:
		cat.Kind = domain.CategoryChoice
		cat.Choose = cs.Choose
		for _, o := range cs.Options {
			cat.Options = append(cat.Options, domain.ChoiceOption{
				Code:        NormalizeCode(o.Code),
				Title:       o.Title,
				Description: o.Description,
				BestFor:     o.BestFor,
			})
		}
	case cs.Slots > 0:
		cat.Kind = domain.CategorySlots
		cat.SatisfiedBy = cs.SatisfiedBy
		credits := cs.SlotCredits
		if credits <= 0 {
			credits = placeholderCredits
		}
		for i := 1; i <= cs.Slots; i++ {
			code := fmt.Sprintf("%s %d", cs.SlotPrefix, i)
			if _, ok := c.courses[code]; !ok {
				c.courses[code] = placeholderRecord(code, credits)
			}
			cat.Courses = append(cat.Courses, code)
		}
	default:
		cat.Kind = domain.CategoryRequired
		cat.Courses = NormalizeCodes(cs.Courses)
	}
	return cat
}

func placeholderRecord(code string, credits int) domain.CourseRecord {
	return domain.CourseRecord{
		Code:        code,
		Title:       code,
		Credits:     credits,
		Offered:     []domain.Term{domain.TermFall, domain.TermSpring, domain.TermSummer},
		Placeholder: true,
	}
}

// Course returns the record for code. Codes missing from the catalog get a
// default 3-credit Fall/Spring record so planning never stalls on them.
func (c *Catalog) Course(code string) domain.CourseRecord {
	if rec, ok := c.courses[code]; ok {
		return rec
	}
	return domain.CourseRecord{
		Code:    code,
		Title:   code,
		Credits: 3,
		Offered: []domain.Term{domain.TermFall, domain.TermSpring},
		Level:   domain.CourseLevel(code),
	}
}

// Known reports whether code is a catalog course (placeholders excluded).
func (c *Catalog) Known(code string) bool {
	rec, ok := c.courses[code]
	return ok && !rec.Placeholder
}

func (c *Catalog) Prerequisites(code string) []domain.PrereqTerm {
	terms := c.prereqs[code]
	if len(terms) == 0 {
		return nil
	}
	out := make([]domain.PrereqTerm, len(terms))
	for i, t := range terms {
		out[i] = domain.PrereqTerm{AnyOf: append([]string(nil), t.AnyOf...)}
	}
	return out
}

// PrerequisiteChain lists every course reachable through prerequisites of
// code, nearest first. The walk keeps a visited set so malformed data cannot
// loop forever.
func (c *Catalog) PrerequisiteChain(code string) []string {
	visited := map[string]bool{code: true}
	var out []string
	queue := []string{code}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, term := range c.prereqs[cur] {
			for _, p := range term.AnyOf {
				if visited[p] {
					continue
				}
				visited[p] = true
				out = append(out, p)
				queue = append(queue, p)
			}
		}
	}
	return out
}

// Unlocks lists catalog courses that name code in any prerequisite term,
// in declaration order.
func (c *Catalog) Unlocks(code string) []string {
	var out []string
	for _, other := range c.order {
		for _, term := range c.prereqs[other] {
			if term.SatisfiedBy(func(p string) bool { return p == code }) {
				out = append(out, other)
				break
			}
		}
	}
	return out
}

func (c *Catalog) IsOffered(code string, term domain.Term) bool {
	return c.Course(code).OfferedIn(term)
}

// Courses lists catalog courses in declaration order, optionally limited to
// one department.
func (c *Catalog) Courses(dept string) []domain.CourseRecord {
	dept = strings.ToUpper(strings.TrimSpace(dept))
	var out []domain.CourseRecord
	for _, code := range c.order {
		rec := c.courses[code]
		if dept != "" && rec.Department() != dept {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func (c *Catalog) Majors() []domain.Major {
	out := make([]domain.Major, 0, len(c.majors))
	for _, m := range domain.ValidMajors {
		if _, ok := c.majors[m]; ok {
			out = append(out, m)
		}
	}
	return out
}

func (c *Catalog) HasTracks(major domain.Major) bool {
	def, ok := c.majors[major]
	return ok && len(def.tracks) > 0
}

// ResolveTrack maps a user-supplied track name or alias to its canonical
// name.
func (c *Catalog) ResolveTrack(major domain.Major, name string) (string, bool) {
	def, ok := c.majors[major]
	if !ok {
		return "", false
	}
	td, ok := def.track(name)
	if !ok {
		return "", false
	}
	return td.name, true
}

// TrackOptions describes the tracks of a major as choice options.
func (c *Catalog) TrackOptions(major domain.Major) []domain.ChoiceOption {
	def, ok := c.majors[major]
	if !ok {
		return nil
	}
	out := make([]domain.ChoiceOption, 0, len(def.tracks))
	for _, t := range def.tracks {
		out = append(out, domain.ChoiceOption{
			Code:        t.name,
			Title:       t.name,
			Description: t.description,
			BestFor:     t.bestFor,
		})
	}
	return out
}

// Categories returns the requirement categories for major and track in
// catalog order. Majors with tracks require a resolvable track.
func (c *Catalog) Categories(major domain.Major, track string) ([]domain.RequirementCategory, error) {
	def, ok := c.majors[major]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMajor, major)
	}
	out := append([]domain.RequirementCategory(nil), def.before...)
	if len(def.tracks) > 0 {
		td, ok := def.track(track)
		if !ok {
			return nil, fmt.Errorf("%w: %q for %s", ErrUnknownTrack, track, def.name)
		}
		out = append(out, td.categories...)
	}
	return append(out, def.after...), nil
}

func (c *Catalog) Foundation(major domain.Major) []string {
	def, ok := c.majors[major]
	if !ok {
		return nil
	}
	return append([]string(nil), def.foundation...)
}

func (c *Catalog) IsFoundation(major domain.Major, code string) bool {
	def, ok := c.majors[major]
	if !ok {
		return false
	}
	for _, f := range def.foundation {
		if f == code {
			return true
		}
	}
	return false
}

// IsTrackCourse reports whether code is required by, or an option of, one of
// the track's own categories.
func (c *Catalog) IsTrackCourse(major domain.Major, track string, code string) bool {
	def, ok := c.majors[major]
	if !ok {
		return false
	}
	td, ok := def.track(track)
	if !ok {
		return false
	}
	for _, cat := range td.categories {
		for _, cc := range cat.Courses {
			if cc == code {
				return true
			}
		}
		for _, o := range cat.Options {
			if o.Code == code {
				return true
			}
		}
	}
	return false
}

func (c *Catalog) HardPairs() []domain.HardPair {
	return append([]domain.HardPair(nil), c.hardPairs...)
}

func (c *Catalog) Fillers() []domain.CourseRecord {
	return append([]domain.CourseRecord(nil), c.fillers...)
}

func (m *majorDef) track(name string) (trackDef, bool) {
	key := trackKey(name)
	if key == "" {
		return trackDef{}, false
	}
	for _, t := range m.tracks {
		if trackKey(t.name) == key {
			return t, true
		}
		for _, a := range t.aliases {
			if trackKey(a) == key {
				return t, true
			}
		}
	}
	return trackDef{}, false
}

func trackKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("-", " ", "_", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

func parseTerms(raw []string) []domain.Term {
	var out []domain.Term
	for _, r := range raw {
		if t, err := domain.ParseTerm(r); err == nil {
			out = append(out, t)
		}
	}
	return out
}

// parsePrereqs turns ["CS 18200", "CS 25100 | CS 25300"] into AND terms of
// OR alternatives.
func parsePrereqs(raw []string) []domain.PrereqTerm {
	var out []domain.PrereqTerm
	for _, r := range raw {
		var alts []string
		for _, part := range strings.Split(r, "|") {
			if code := NormalizeCode(part); code != "" {
				alts = append(alts, code)
			}
		}
		if len(alts) > 0 {
			out = append(out, domain.PrereqTerm{AnyOf: alts})
		}
	}
	return out
}
