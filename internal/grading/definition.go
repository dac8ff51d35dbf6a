package grading

import (
	"fmt"
	"strings"
)

// Kind names a preset boundary table, or Custom for a private copy.
type Kind int

const (
	KindIHK Kind = iota
	KindTechniker
	KindLinear
	KindCustom
)

// Boundary is the minimum share of max points needed for Grade.
type Boundary struct {
	Grade      Grade   `json:"grade" toml:"grade"`
	Percentage float64 `json:"percentage" toml:"percentage"`
}

// Table holds one boundary per grade, best first.
type Table [GradeCount]Boundary

var (
	ihkTable = Table{
		{VeryGood, 0.92}, {Good, 0.81}, {Satisfactory, 0.67},
		{Sufficient, 0.50}, {Poor, 0.30}, {Fail, 0.0},
	}
	technikerTable = Table{
		{VeryGood, 0.85}, {Good, 0.70}, {Satisfactory, 0.55},
		{Sufficient, 0.40}, {Poor, 0.20}, {Fail, 0.0},
	}
	linearTable = Table{
		{VeryGood, 0.87}, {Good, 0.60}, {Satisfactory, 0.47},
		{Sufficient, 0.30}, {Poor, 0.17}, {Fail, 0.0},
	}
)

// StandardKinds are the presets in key-binding order.
func StandardKinds() []Kind { return []Kind{KindIHK, KindTechniker, KindLinear} }

// Text is the upper-case label shown in the UI; "UNKNOWN" for other values.
func (k Kind) Text() string {
	switch k {
	case KindIHK:
		return "IHK"
	case KindTechniker:
		return "TECHNIKER"
	case KindLinear:
		return "LINEAR"
	case KindCustom:
		return "CUSTOM"
	}
	return "UNKNOWN"
}

// KeyBinding is the single-letter shortcut that selects k.
func (k Kind) KeyBinding() string {
	switch k {
	case KindIHK:
		return "I"
	case KindTechniker:
		return "T"
	case KindLinear:
		return "L"
	case KindCustom:
		return "C"
	}
	return ""
}

// String is the lower-case name used in config files and JSON.
func (k Kind) String() string { return strings.ToLower(k.Text()) }

// MarshalText encodes k by name, so JSON and TOML carry "ihk", not 0.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// ParseKind accepts a kind name or its key binding, case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ihk", "i":
		return KindIHK, nil
	case "techniker", "t":
		return KindTechniker, nil
	case "linear", "l":
		return KindLinear, nil
	case "custom", "c":
		return KindCustom, nil
	}
	return 0, fmt.Errorf("unknown scale kind %q", s)
}

// Definition is either a standard preset or a custom table.
// The zero value is the IHK preset.
type Definition struct {
	kind   Kind
	custom Table
}

// Standard returns the preset definition for k. KindCustom yields a custom
// copy of the IHK table so a fresh custom scale starts from something sane.
func Standard(k Kind) Definition {
	if k == KindCustom {
		return Custom(ihkTable)
	}
	return Definition{kind: k}
}

// Custom wraps t as a custom definition.
func Custom(t Table) Definition {
	return Definition{kind: KindCustom, custom: t}
}

func (d Definition) Kind() Kind { return d.kind }

func (d Definition) IsCustom() bool { return d.kind == KindCustom }

// Values returns the percentage table for the definition.
func (d Definition) Values() Table {
	switch d.kind {
	case KindTechniker:
		return technikerTable
	case KindLinear:
		return linearTable
	case KindCustom:
		return d.custom
	default:
		return ihkTable
	}
}

// ToCustom snapshots the current percentages into a custom definition.
func (d Definition) ToCustom() Definition {
	return Custom(d.Values())
}

// Change overwrites entry index with value clamped to [0,1]. Only custom
// definitions change; out-of-range indices are ignored.
func (d *Definition) Change(index int, value float64) {
	if !d.IsCustom() || index < 0 || index >= GradeCount {
		return
	}
	d.custom[index].Percentage = clamp(value, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
