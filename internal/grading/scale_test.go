package grading_test

import (
	"errors"
	"math"
	"testing"

	"github.com/mind-engage/gradescale/internal/grading"
)

func mustScale(t *testing.T, def grading.Definition, max float64) *grading.Scale {
	t.Helper()
	s, err := grading.NewScale(def, max)
	if err != nil {
		t.Fatalf("NewScale(%s, %v): %v", def.Kind(), max, err)
	}
	return s
}

func threshold(t *testing.T, s *grading.Scale, g grading.Grade) float64 {
	t.Helper()
	v, err := s.Threshold(g)
	if err != nil {
		t.Fatalf("Threshold(%s): %v", g, err)
	}
	return v
}

func TestNewScale_RejectsNonPositiveMax(t *testing.T) {
	for _, max := range []float64{0, -1, math.NaN()} {
		if _, err := grading.NewScale(grading.Standard(grading.KindIHK), max); !errors.Is(err, grading.ErrInvalidPoints) {
			t.Fatalf("max=%v: expected ErrInvalidPoints, got %v", max, err)
		}
	}
}

func TestRecompute_StandardScalesAreMonotonic(t *testing.T) {
	for _, k := range grading.StandardKinds() {
		for _, max := range []float64{1, 7, 33, 100, 250} {
			s := mustScale(t, grading.Standard(k), max)
			prev := math.Inf(1)
			for _, g := range grading.Grades() {
				v := threshold(t, s, g)
				if v > prev {
					t.Fatalf("%s/%v: threshold for %s (%v) exceeds better grade (%v)", k, max, g, v, prev)
				}
				prev = v
			}
			if v := threshold(t, s, grading.Fail); v != 0 {
				t.Fatalf("%s/%v: fail threshold = %v, want 0", k, max, v)
			}
		}
	}
}

func TestIHKThresholdsAt100(t *testing.T) {
	s := mustScale(t, grading.Standard(grading.KindIHK), 100)
	want := map[grading.Grade]float64{
		grading.VeryGood: 92, grading.Good: 81, grading.Satisfactory: 67,
		grading.Sufficient: 50, grading.Poor: 30, grading.Fail: 0,
	}
	got := s.Thresholds()
	for g, w := range want {
		if got[g] != w {
			t.Errorf("threshold[%s] = %v, want %v", g, got[g], w)
		}
	}
}

func TestGradeForPoints(t *testing.T) {
	s := mustScale(t, grading.Standard(grading.KindIHK), 100)
	tests := []struct {
		points float64
		want   grading.Grade
		ok     bool
	}{
		{100, grading.VeryGood, true},
		{95, grading.VeryGood, true},
		{92, grading.Good, true}, // equal to threshold falls to next worse grade
		{81, grading.Satisfactory, true},
		{67.5, grading.Satisfactory, true},
		{50, grading.Poor, true},
		{0.5, grading.Fail, true},
		{0, 0, false},
		{-3, 0, false},
	}
	for _, tt := range tests {
		got, ok := s.GradeForPoints(tt.points)
		if ok != tt.ok || got != tt.want {
			t.Errorf("GradeForPoints(%v) = (%v, %v), want (%v, %v)", tt.points, got, ok, tt.want, tt.ok)
		}
	}
}

func TestGradeForPoints_MaxIsBestGrade(t *testing.T) {
	for _, k := range grading.StandardKinds() {
		for _, max := range []float64{1, 12, 100, 999} {
			s := mustScale(t, grading.Standard(k), max)
			if g, ok := s.GradeForPoints(max); !ok || g != grading.VeryGood {
				t.Fatalf("%s/%v: GradeForPoints(max) = %v, %v", k, max, g, ok)
			}
		}
	}
}

func TestPercentageRoundTrip(t *testing.T) {
	for _, k := range grading.StandardKinds() {
		for _, max := range []float64{100, 200, 250} {
			s := mustScale(t, grading.Standard(k), max)
			for _, b := range grading.Standard(k).Values() {
				got := grading.PercentageForPoints(threshold(t, s, b.Grade), max)
				if math.Abs(got-b.Percentage) > 0.01+1e-9 {
					t.Errorf("%s/%v grade %s: pct %v, want ~%v", k, max, b.Grade, got, b.Percentage)
				}
			}
		}
	}
}

func TestIncrementThreshold_PromotesToCustom(t *testing.T) {
	s := mustScale(t, grading.Standard(grading.KindIHK), 100)
	if err := s.IncrementThreshold(grading.Satisfactory); err != nil {
		t.Fatalf("IncrementThreshold: %v", err)
	}
	if got := threshold(t, s, grading.Satisfactory); got != 68 {
		t.Fatalf("satisfactory threshold = %v, want 68", got)
	}
	if !s.Definition().IsCustom() {
		t.Fatalf("expected scale to be custom after edit")
	}
	if threshold(t, s, grading.VeryGood) != 92 || threshold(t, s, grading.Good) != 81 {
		t.Fatalf("better grades changed: %v", s.Thresholds())
	}
	// the preset itself is untouched
	if p := grading.Standard(grading.KindIHK).Values()[2].Percentage; p != 0.67 {
		t.Fatalf("IHK preset mutated: %v", p)
	}
}

func TestDecrementThreshold_AlwaysPromotes(t *testing.T) {
	for _, k := range grading.StandardKinds() {
		s := mustScale(t, grading.Standard(k), 100)
		if err := s.DecrementThreshold(grading.Fail); err != nil {
			t.Fatalf("%s: %v", k, err)
		}
		if !s.Definition().IsCustom() {
			t.Fatalf("%s: expected custom after decrement", k)
		}
		if v := threshold(t, s, grading.Fail); v != 0 {
			t.Fatalf("%s: fail threshold moved to %v", k, v)
		}
	}
}

func TestUpdateThreshold_KeepsOrder(t *testing.T) {
	s := mustScale(t, grading.Standard(grading.KindIHK), 100)
	for i := 0; i < 30; i++ {
		_ = s.IncrementThreshold(grading.Good)
	}
	if v := threshold(t, s, grading.Good); v != 92 {
		t.Fatalf("good threshold = %v, want capped at 92", v)
	}
	for i := 0; i < 30; i++ {
		_ = s.IncrementThreshold(grading.VeryGood)
	}
	if v := threshold(t, s, grading.VeryGood); v != 100 {
		t.Fatalf("very good threshold = %v, want capped at max points", v)
	}
}

func TestUpdateThreshold_UnknownGrade(t *testing.T) {
	s := mustScale(t, grading.Standard(grading.KindIHK), 100)
	if err := s.IncrementThreshold(grading.Grade(9)); !errors.Is(err, grading.ErrUnknownGrade) {
		t.Fatalf("expected ErrUnknownGrade, got %v", err)
	}
	if s.Definition().IsCustom() {
		t.Fatalf("failed edit must not promote the scale")
	}
}

func TestThresholdEditSurvivesMaxPointsChange(t *testing.T) {
	s := mustScale(t, grading.Standard(grading.KindIHK), 100)
	_ = s.IncrementThreshold(grading.Satisfactory)
	if err := s.SetMaxPoints(200); err != nil {
		t.Fatalf("SetMaxPoints: %v", err)
	}
	if v := threshold(t, s, grading.Satisfactory); v != 136 {
		t.Fatalf("satisfactory threshold = %v, want 136", v)
	}
}

func TestSetMaxPoints_InvalidLeavesStateUnchanged(t *testing.T) {
	s := mustScale(t, grading.Standard(grading.KindTechniker), 60)
	before := s.Thresholds()
	if err := s.SetMaxPoints(0); !errors.Is(err, grading.ErrInvalidPoints) {
		t.Fatalf("expected ErrInvalidPoints, got %v", err)
	}
	if s.MaxPoints() != 60 {
		t.Fatalf("max points changed to %v", s.MaxPoints())
	}
	for g, v := range s.Thresholds() {
		if before[g] != v {
			t.Fatalf("threshold %s changed %v -> %v", g, before[g], v)
		}
	}
}

func TestHalfPoints(t *testing.T) {
	s := mustScale(t, grading.Standard(grading.KindIHK), 100)
	s.ToggleHalfPoints()
	if !s.HalfPoints() {
		t.Fatalf("expected half points on")
	}
	if err := s.IncrementThreshold(grading.Satisfactory); err != nil {
		t.Fatal(err)
	}
	if v := threshold(t, s, grading.Satisfactory); v != 67.5 {
		t.Fatalf("satisfactory = %v, want 67.5", v)
	}
	if err := s.DecrementThreshold(grading.Satisfactory); err != nil {
		t.Fatal(err)
	}
	if v := threshold(t, s, grading.Satisfactory); v != 67 {
		t.Fatalf("satisfactory = %v, want 67", v)
	}
}

func TestHalfPoints_ToggleKeepsEditedMinimums(t *testing.T) {
	s := mustScale(t, grading.Standard(grading.KindIHK), 100)
	s.ToggleHalfPoints()
	if err := s.IncrementThreshold(grading.Satisfactory); err != nil {
		t.Fatal(err)
	}
	s.ToggleHalfPoints()
	if v := threshold(t, s, grading.Satisfactory); v != 67.5 {
		t.Fatalf("after toggling off: satisfactory = %v, want 67.5", v)
	}
	s.ToggleHalfPoints()
	if v := threshold(t, s, grading.Satisfactory); v != 67.5 {
		t.Fatalf("after toggling on again: satisfactory = %v, want 67.5", v)
	}
	if v := threshold(t, s, grading.Good); v != 81 {
		t.Fatalf("untouched good threshold moved to %v", v)
	}
}

func TestHalfPoints_SameMaxPointsKeepsEdit(t *testing.T) {
	s := mustScale(t, grading.Standard(grading.KindIHK), 100)
	s.ToggleHalfPoints()
	if err := s.DecrementThreshold(grading.Satisfactory); err != nil {
		t.Fatal(err)
	}
	if err := s.SetMaxPoints(100); err != nil {
		t.Fatal(err)
	}
	if v := threshold(t, s, grading.Satisfactory); v != 66.5 {
		t.Fatalf("satisfactory = %v, want 66.5", v)
	}
	if err := s.SetMaxPoints(200); err != nil {
		t.Fatal(err)
	}
	if v := threshold(t, s, grading.Satisfactory); v != 133 {
		t.Fatalf("satisfactory at 200 = %v, want 133", v)
	}
}

func TestRows(t *testing.T) {
	s := mustScale(t, grading.Standard(grading.KindIHK), 100)
	rows := s.Rows()
	want := [grading.GradeCount]grading.DisplayRow{
		{grading.VeryGood, 92, 100, 0.92},
		{grading.Good, 81, 91, 0.81},
		{grading.Satisfactory, 67, 80, 0.67},
		{grading.Sufficient, 50, 66, 0.5},
		{grading.Poor, 30, 49, 0.3},
		{grading.Fail, 0, 29, 0},
	}
	if rows != want {
		t.Fatalf("rows = %+v\nwant %+v", rows, want)
	}

	s.ToggleHalfPoints()
	rows = s.Rows()
	if rows[1].Max != 91.5 || rows[5].Max != 29.5 {
		t.Fatalf("half-point maxima wrong: %+v", rows)
	}
	if rows[0].Max != 100 {
		t.Fatalf("best band must end at max points, got %v", rows[0].Max)
	}
}

func TestChangeDefinition(t *testing.T) {
	s := mustScale(t, grading.Standard(grading.KindIHK), 100)
	s.ChangeDefinition(grading.Standard(grading.KindLinear))
	if v := threshold(t, s, grading.Good); v != 60 {
		t.Fatalf("linear good = %v, want 60", v)
	}
	if s.Kind() != grading.KindLinear {
		t.Fatalf("kind = %s", s.Kind())
	}
}
