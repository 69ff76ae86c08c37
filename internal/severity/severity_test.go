package severity

import (
	"errors"
	"testing"
)

func TestFromScoreThresholds(t *testing.T) {
	cases := []struct {
		score int
		want  Level
	}{
		{0, Medium},
		{60, Medium},
		{80, Medium},
		{81, High},
		{88, High},
		{90, High},
		{91, Critical},
		{95, Critical},
		{100, Critical},
	}
	for _, tc := range cases {
		got, err := FromScore(tc.score)
		if err != nil {
			t.Fatalf("FromScore(%d) returned error: %v", tc.score, err)
		}
		if got != tc.want {
			t.Fatalf("FromScore(%d) = %s, want %s", tc.score, got, tc.want)
		}
	}
}

func TestFromScoreRejectsOutOfRange(t *testing.T) {
	for _, score := range []int{-1, 101, 250} {
		_, err := FromScore(score)
		if err == nil {
			t.Fatalf("FromScore(%d) should fail", score)
		}
		var invalid *InvalidScoreError
		if !errors.As(err, &invalid) {
			t.Fatalf("FromScore(%d) error %v is not InvalidScoreError", score, err)
		}
		if invalid.Score != score {
			t.Fatalf("error carries score %d, want %d", invalid.Score, score)
		}
	}
}

func TestFromScoreDeterministic(t *testing.T) {
	for score := 0; score <= 100; score++ {
		first, err := FromScore(score)
		if err != nil {
			t.Fatalf("FromScore(%d): %v", score, err)
		}
		if first != Medium && first != High && first != Critical {
			t.Fatalf("FromScore(%d) = %s, outside score-path levels", score, first)
		}
		second, _ := FromScore(score)
		if first != second {
			t.Fatalf("FromScore(%d) not deterministic: %s vs %s", score, first, second)
		}
	}
}

func TestFromLabel(t *testing.T) {
	cases := map[string]Level{
		"low":      Low,
		"medium":   Medium,
		"high":     High,
		"critical": Critical,
	}
	for label, want := range cases {
		got, err := FromLabel(label)
		if err != nil {
			t.Fatalf("FromLabel(%q): %v", label, err)
		}
		if got != want {
			t.Fatalf("FromLabel(%q) = %s, want %s", label, got, want)
		}
		if got.Label() != label {
			t.Fatalf("Level(%s).Label() = %q, want %q", got, got.Label(), label)
		}
	}
	if _, err := FromLabel("severe"); err == nil {
		t.Fatalf("FromLabel should reject unknown labels")
	}
}

func TestCategoryAndTier(t *testing.T) {
	if Critical.Category() != "Critical" || Critical.Tier() != "danger" {
		t.Fatalf("unexpected critical rendering: %s/%s", Critical.Category(), Critical.Tier())
	}
	if High.Category() != "High" || High.Tier() != "warn" {
		t.Fatalf("unexpected high rendering: %s/%s", High.Category(), High.Tier())
	}
	if Medium.Category() != "Medium" || Medium.Tier() != "ok" {
		t.Fatalf("unexpected medium rendering: %s/%s", Medium.Category(), Medium.Tier())
	}
	if Low.Tier() != "ok" {
		t.Fatalf("low should share the ok tier, got %s", Low.Tier())
	}
}
