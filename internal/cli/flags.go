package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/boilerai/boilerplan/internal/domain"
	"github.com/spf13/pflag"
)

// selectionFlag collects repeated --set key=CODE[,CODE] values.
type selectionFlag struct {
	values domain.SelectedChoices
}

var _ pflag.Value = (*selectionFlag)(nil)

func (f *selectionFlag) Set(raw string) error {
	key, codes, ok := strings.Cut(raw, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("expected key=CODE[,CODE], got %q", raw)
	}
	var picks []string
	for _, c := range strings.Split(codes, ",") {
		if c = strings.TrimSpace(c); c != "" {
			picks = append(picks, c)
		}
	}
	if len(picks) == 0 {
		return fmt.Errorf("no codes given for %q", key)
	}
	if f.values == nil {
		f.values = make(domain.SelectedChoices)
	}
	f.values[key] = append(f.values[key], picks...)
	return nil
}

func (f *selectionFlag) String() string {
	keys := make([]string, 0, len(f.values))
	for k := range f.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+strings.Join(f.values[k], ","))
	}
	return strings.Join(parts, " ")
}

func (f *selectionFlag) Type() string {
	return "key=codes"
}

// optionalBoolFlag distinguishes "not given" from an explicit false.
type optionalBoolFlag struct {
	value *bool
}

var _ pflag.Value = (*optionalBoolFlag)(nil)

func (f *optionalBoolFlag) Set(raw string) error {
	v, err := strconv.ParseBool(raw)
	if err != nil {
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case "yes", "y":
			v = true
		case "no", "n":
			v = false
		default:
			return fmt.Errorf("expected yes or no, got %q", raw)
		}
	}
	f.value = &v
	return nil
}

func (f *optionalBoolFlag) String() string {
	if f.value == nil {
		return ""
	}
	return strconv.FormatBool(*f.value)
}

func (f *optionalBoolFlag) Type() string {
	return "bool"
}

// addOptionalBool registers a flag that may be given bare (--summer) or
// with a value (--summer=no).
func addOptionalBool(fs *pflag.FlagSet, target *optionalBoolFlag, name, usage string) {
	fs.VarPF(target, name, "", usage).NoOptDefVal = "true"
}

// outputFormat is the --output flag shared by commands that can emit
// machine-readable results.
type outputFormat string

const (
	outputText outputFormat = "text"
	outputJSON outputFormat = "json"
	outputYAML outputFormat = "yaml"
)

var _ pflag.Value = (*outputFormat)(nil)

func (o *outputFormat) Set(raw string) error {
	switch v := outputFormat(strings.ToLower(strings.TrimSpace(raw))); v {
	case outputText, outputJSON, outputYAML:
		*o = v
		return nil
	}
	return fmt.Errorf("unknown output format %q (want text, json or yaml)", raw)
}

func (o *outputFormat) String() string {
	if *o == "" {
		return string(outputText)
	}
	return string(*o)
}

func (o *outputFormat) Type() string {
	return "format"
}

func addOutputFlag(fs *pflag.FlagSet, target *outputFormat) {
	*target = outputText
	fs.VarP(target, "output", "o", "output format: text, json or yaml")
}
