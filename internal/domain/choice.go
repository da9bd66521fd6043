package domain

import "sort"

// TrackChoiceKey asks a CS student to pick a track before anything else can
// be planned. Its option codes are track names.
const TrackChoiceKey = "track"

type ChoiceOption struct {
	Code        string   `json:"code"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	BestFor     []string `json:"best_for,omitempty"`
}

// Choice is one unresolved decision: pick Choose of Options.
type Choice struct {
	Key             string         `json:"key"`
	Category        string         `json:"category"`
	RequirementType string         `json:"requirement_type"`
	Options         []ChoiceOption `json:"options"`
	Choose          int            `json:"choose"`
	Order           int            `json:"order"`
}

func (c Choice) HasOption(code string) bool {
	for _, o := range c.Options {
		if o.Code == code {
			return true
		}
	}
	return false
}

// ChoiceRequest maps choice keys to pending choices.
type ChoiceRequest map[string]Choice

// Sorted returns the choices in catalog order.
func (r ChoiceRequest) Sorted() []Choice {
	out := make([]Choice, 0, len(r))
	for _, c := range r {
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// SelectedChoices maps choice keys to the course codes a student picked.
type SelectedChoices map[string][]string

// Merge returns a new map where entries from other replace same-key entries.
func (s SelectedChoices) Merge(other SelectedChoices) SelectedChoices {
	out := make(SelectedChoices, len(s)+len(other))
	for k, v := range s {
		out[k] = append([]string(nil), v...)
	}
	for k, v := range other {
		out[k] = append([]string(nil), v...)
	}
	return out
}
