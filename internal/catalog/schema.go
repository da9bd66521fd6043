package catalog

// catalogFile mirrors catalog.yaml.
type catalogFile struct {
	Version   int            `yaml:"version"`
	Fillers   []string       `yaml:"fillers"`
	HardPairs []hardPairSpec `yaml:"hard_pairs"`
	Courses   []courseSpec   `yaml:"courses"`
	Majors    []majorSpec    `yaml:"majors"`
}

type hardPairSpec struct {
	Courses []string `yaml:"courses"`
	Message string   `yaml:"message"`
}

type courseSpec struct {
	Code        string   `yaml:"code"`
	Title       string   `yaml:"title"`
	Credits     int      `yaml:"credits"`
	Description string   `yaml:"description"`
	Offered     []string `yaml:"offered"`
	Prereqs     []string `yaml:"prereqs"`
}

type majorSpec struct {
	Key        string         `yaml:"key"`
	Name       string         `yaml:"name"`
	Foundation []string       `yaml:"foundation"`
	Categories []categorySpec `yaml:"categories"`
	Tracks     []trackSpec    `yaml:"tracks"`
}

type trackSpec struct {
	Name        string         `yaml:"name"`
	Aliases     []string       `yaml:"aliases"`
	Description string         `yaml:"description"`
	BestFor     []string       `yaml:"best_for"`
	Categories  []categorySpec `yaml:"categories"`
}

// categorySpec is one of: a required list (courses), a choice (choose +
// options), a slot block (slot_prefix + slots) or the track insertion point
// (include: track).
type categorySpec struct {
	Include     string       `yaml:"include"`
	Key         string       `yaml:"key"`
	Label       string       `yaml:"label"`
	Courses     []string     `yaml:"courses"`
	Choose      int          `yaml:"choose"`
	Options     []optionSpec `yaml:"options"`
	SlotPrefix  string       `yaml:"slot_prefix"`
	Slots       int          `yaml:"slots"`
	SlotCredits int          `yaml:"slot_credits"`
	SatisfiedBy []string     `yaml:"satisfied_by"`
}

type optionSpec struct {
	Code        string   `yaml:"code"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	BestFor     []string `yaml:"best_for"`
}

const includeTrack = "track"
