package planner

import (
	"errors"
	"fmt"

	"github.com/boilerai/boilerplan/internal/catalog"
	"github.com/boilerai/boilerplan/internal/domain"
	"github.com/boilerai/boilerplan/internal/scheduler"
)

const (
	pendingGraduationDate = "Pending Course Selections"
	unknownGraduationDate = "To be determined"
)

// Catalog is the read-only course and requirement reference the planner
// works against.
type Catalog interface {
	Course(code string) domain.CourseRecord
	Prerequisites(code string) []domain.PrereqTerm
	IsOffered(code string, term domain.Term) bool
	Categories(major domain.Major, track string) ([]domain.RequirementCategory, error)
	TrackOptions(major domain.Major) []domain.ChoiceOption
	ResolveTrack(major domain.Major, name string) (string, bool)
	IsFoundation(major domain.Major, code string) bool
	IsTrackCourse(major domain.Major, track, code string) bool
	HardPairs() []domain.HardPair
	Fillers() []domain.CourseRecord
}

// Policy is the set of thresholds used for building and scoring plans.
type Policy = scheduler.Policy

type CreditLimits = scheduler.CreditLimits

func DefaultPolicy() Policy {
	return scheduler.DefaultPolicy()
}

// Planner generates graduation plans. It holds no mutable state, so one
// Planner may serve concurrent callers.
type Planner struct {
	catalog Catalog
	policy  Policy
}

type Option func(*Planner)

func WithPolicy(p Policy) Option {
	return func(pl *Planner) {
		pl.policy = p
	}
}

func New(cat Catalog, opts ...Option) *Planner {
	p := &Planner{
		catalog: cat,
		policy:  DefaultPolicy(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Planner) Policy() Policy {
	return p.policy
}

// CreatePlan builds a plan for profile. When any requirement choice is still
// open the returned plan carries a ChoiceRequest and no schedules; call again
// with the student's selections merged into selected.
func (p *Planner) CreatePlan(profile domain.StudentProfile, selected domain.SelectedChoices) (*domain.GraduationPlan, error) {
	profile, err := p.prepareProfile(profile)
	if err != nil {
		return nil, err
	}
	selected = normalizeSelected(selected)

	track, trackErr := p.effectiveTrack(profile, selected)
	plan := &domain.GraduationPlan{
		Major:            profile.Major,
		Track:            track,
		CompletedCourses: profile.CompletedCourses,
	}

	if trackErr != nil {
		if !errors.Is(trackErr, ErrTrackUnresolved) {
			return nil, trackErr
		}
		plan.ChoiceRequest = domain.ChoiceRequest{domain.TrackChoiceKey: p.trackChoice(profile.Major)}
		markPending(plan)
		return plan, nil
	}

	req, err := p.evaluate(profile, track, selected)
	if err != nil {
		return nil, err
	}
	plan.Outstanding = req.outstanding
	if len(req.pending) > 0 {
		plan.ChoiceRequest = req.pending
		markPending(plan)
		return plan, nil
	}

	built := p.buildSchedules(profile, track, req.outstanding.Courses())
	plan.Schedules = built.schedules
	plan.TotalSemesters = len(built.schedules)
	plan.RemainingRequirements = req.outstanding.Filter(func(code string) bool {
		return !built.planned[code]
	})

	unscheduled := 0
	for _, code := range plan.RemainingRequirements.Courses() {
		unscheduled += p.catalog.Course(code).Credits
	}
	risk := p.policy.ComputeRisk(scheduler.RiskInput{
		Schedules:          plan.Schedules,
		Goal:               profile.GraduationGoal,
		UnscheduledCredits: unscheduled,
		RegularCeiling:     p.policy.RegularCeiling(profile.CreditLoad),
	})
	plan.SuccessProbability = risk.SuccessProbability
	plan.Risk = risk.Level
	plan.Warnings = risk.Warnings
	plan.Recommendations = risk.Recommendations
	plan.GraduationDate = graduationDate(plan.Schedules)
	plan.CustomizationNotes = customizationNotes(profile, track, plan.Schedules)
	return plan, nil
}

// CalculateRequirements returns the courses profile still needs, grouped by
// requirement category. Selected choice options count as requirements; open
// choices contribute nothing until they are made.
func (p *Planner) CalculateRequirements(profile domain.StudentProfile, selected domain.SelectedChoices) (domain.RequirementSet, error) {
	profile, err := p.prepareProfile(profile)
	if err != nil {
		return nil, err
	}
	selected = normalizeSelected(selected)
	track, err := p.effectiveTrack(profile, selected)
	if err != nil {
		return nil, err
	}
	req, err := p.evaluate(profile, track, selected)
	if err != nil {
		return nil, err
	}
	return req.outstanding, nil
}

// ResolveChoicesNeeded lists every requirement choice that is still open for
// profile given selected. The map is empty when nothing is pending.
func (p *Planner) ResolveChoicesNeeded(profile domain.StudentProfile, selected domain.SelectedChoices) (domain.ChoiceRequest, error) {
	profile, err := p.prepareProfile(profile)
	if err != nil {
		return nil, err
	}
	selected = normalizeSelected(selected)
	track, err := p.effectiveTrack(profile, selected)
	if errors.Is(err, ErrTrackUnresolved) {
		return domain.ChoiceRequest{domain.TrackChoiceKey: p.trackChoice(profile.Major)}, nil
	}
	if err != nil {
		return nil, err
	}
	req, err := p.evaluate(profile, track, selected)
	if err != nil {
		return nil, err
	}
	if req.pending == nil {
		return domain.ChoiceRequest{}, nil
	}
	return req.pending, nil
}

func (p *Planner) prepareProfile(profile domain.StudentProfile) (domain.StudentProfile, error) {
	profile = profile.WithDefaults()
	if err := profile.Validate(); err != nil {
		return profile, err
	}
	profile.CompletedCourses = catalog.NormalizeCodes(profile.CompletedCourses)
	return profile, nil
}

// effectiveTrack resolves the track from a track selection first, then the
// profile. Majors without tracks always resolve to "".
func (p *Planner) effectiveTrack(profile domain.StudentProfile, selected domain.SelectedChoices) (string, error) {
	if len(p.catalog.TrackOptions(profile.Major)) == 0 {
		if _, err := p.catalog.Categories(profile.Major, ""); err != nil {
			return "", fmt.Errorf("%w: %v", ErrConfiguration, err)
		}
		return "", nil
	}
	if picks := selected[domain.TrackChoiceKey]; len(picks) > 0 {
		if name, ok := p.catalog.ResolveTrack(profile.Major, picks[0]); ok {
			return name, nil
		}
	}
	if name, ok := p.catalog.ResolveTrack(profile.Major, profile.Track); ok {
		return name, nil
	}
	return "", ErrTrackUnresolved
}

func (p *Planner) trackChoice(major domain.Major) domain.Choice {
	return domain.Choice{
		Key:             domain.TrackChoiceKey,
		Category:        fmt.Sprintf("%s Track Selection", major.DisplayName()),
		RequirementType: requirementType(1),
		Options:         p.catalog.TrackOptions(major),
		Choose:          1,
		Order:           -1,
	}
}

func markPending(plan *domain.GraduationPlan) {
	plan.GraduationDate = pendingGraduationDate
	plan.SuccessProbability = 0
	plan.Schedules = nil
	plan.Recommendations = []string{"Make the pending course selections to generate a complete plan"}
}

func graduationDate(schedules []domain.CourseSchedule) string {
	if len(schedules) == 0 {
		return unknownGraduationDate
	}
	return schedules[len(schedules)-1].Label()
}

// normalizeSelected canonicalizes selected course codes. Track selections
// are names, not codes, and pass through trimmed.
func normalizeSelected(selected domain.SelectedChoices) domain.SelectedChoices {
	out := make(domain.SelectedChoices, len(selected))
	for key, codes := range selected {
		if key == domain.TrackChoiceKey {
			out[key] = append([]string(nil), codes...)
			continue
		}
		out[key] = catalog.NormalizeCodes(codes)
	}
	return out
}

func requirementType(n int) string {
	return fmt.Sprintf("choose %d", n)
}
