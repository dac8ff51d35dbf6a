package grading_test

import (
	"testing"

	"github.com/mind-engage/gradescale/internal/grading"
)

func TestGradeFromNumber(t *testing.T) {
	for n := 1; n <= 6; n++ {
		g, err := grading.GradeFromNumber(n)
		if err != nil || g.Number() != n {
			t.Fatalf("GradeFromNumber(%d) = %v, %v", n, g, err)
		}
	}
	for _, n := range []int{0, 7, -1} {
		if _, err := grading.GradeFromNumber(n); err == nil {
			t.Fatalf("GradeFromNumber(%d): expected error", n)
		}
	}
}

func TestGradeNeighbours(t *testing.T) {
	if _, ok := grading.VeryGood.NextBetter(); ok {
		t.Fatalf("VeryGood has no better grade")
	}
	if _, ok := grading.Fail.NextWorse(); ok {
		t.Fatalf("Fail has no worse grade")
	}
	if g, ok := grading.Satisfactory.NextBetter(); !ok || g != grading.Good {
		t.Fatalf("Satisfactory.NextBetter = %v, %v", g, ok)
	}
	if g, ok := grading.Satisfactory.NextWorse(); !ok || g != grading.Sufficient {
		t.Fatalf("Satisfactory.NextWorse = %v, %v", g, ok)
	}
	if grading.Poor.Label() != "Poor" {
		t.Fatalf("label = %q", grading.Poor.Label())
	}
}

func TestToCustomIsIdempotent(t *testing.T) {
	for _, k := range grading.StandardKinds() {
		once := grading.Standard(k).ToCustom()
		twice := once.ToCustom()
		if !once.IsCustom() || !twice.IsCustom() {
			t.Fatalf("%s: ToCustom did not produce a custom definition", k)
		}
		if once.Values() != twice.Values() {
			t.Fatalf("%s: ToCustom twice changed values", k)
		}
		if once.Values() != grading.Standard(k).Values() {
			t.Fatalf("%s: snapshot differs from preset", k)
		}
	}
}

func TestChange(t *testing.T) {
	std := grading.Standard(grading.KindIHK)
	std.Change(0, 0.5)
	if std.Values()[0].Percentage != 0.92 {
		t.Fatalf("standard definition changed")
	}

	c := std.ToCustom()
	c.Change(0, 0.95)
	c.Change(1, 1.7)
	c.Change(2, -2)
	c.Change(6, 0.1)
	c.Change(-1, 0.1)
	v := c.Values()
	if v[0].Percentage != 0.95 || v[1].Percentage != 1 || v[2].Percentage != 0 {
		t.Fatalf("unexpected values %+v", v)
	}
	if v[3].Percentage != 0.5 {
		t.Fatalf("untouched entry changed: %+v", v[3])
	}
}

func TestParseKind(t *testing.T) {
	tests := map[string]grading.Kind{
		"ihk": grading.KindIHK, "IHK": grading.KindIHK, "T": grading.KindTechniker,
		"linear": grading.KindLinear, " custom ": grading.KindCustom,
	}
	for in, want := range tests {
		got, err := grading.ParseKind(in)
		if err != nil || got != want {
			t.Errorf("ParseKind(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := grading.ParseKind("curve"); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}

func TestGradeAndKindText(t *testing.T) {
	if got := grading.Grade(9).Label(); got != "Unknown" {
		t.Fatalf("invalid label = %q", got)
	}
	if grading.Grade(0).Valid() || !grading.Fail.Valid() {
		t.Fatalf("Valid wrong at the edges")
	}
	if grading.Satisfactory.String() != "3" || grading.Satisfactory.Number() != 3 {
		t.Fatalf("satisfactory = %s/%d", grading.Satisfactory, grading.Satisfactory.Number())
	}
	keys := ""
	for _, k := range append(grading.StandardKinds(), grading.KindCustom) {
		keys += k.KeyBinding()
		b, err := k.MarshalText()
		if err != nil || string(b) != k.String() {
			t.Fatalf("MarshalText(%s) = %q, %v", k.Text(), b, err)
		}
	}
	if keys != "ITLC" {
		t.Fatalf("key bindings = %q", keys)
	}
	if grading.Kind(42).Text() != "UNKNOWN" {
		t.Fatalf("unknown kind text = %q", grading.Kind(42).Text())
	}
}
