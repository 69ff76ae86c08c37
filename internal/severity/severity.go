// Package severity classifies anomaly records into discrete risk levels.
//
// Two classification paths exist and are kept distinct on purpose: numeric
// risk scores map onto Medium/High/Critical (no Low tier), while pre-labeled
// records use the full low/medium/high/critical scale directly. Both paths
// produce the same Level type so every view renders identical strings for
// the same semantic severity.
package severity

import "fmt"

// Level is a discrete severity bucket.
type Level int

const (
	Low Level = iota + 1
	Medium
	High
	Critical
)

// Score thresholds for the numeric path. Bounds are exclusive upward:
// a score of exactly 90 is High, exactly 80 is Medium.
const (
	criticalAbove = 90
	highAbove     = 80
)

// InvalidScoreError reports a risk score outside the [0,100] contract.
type InvalidScoreError struct {
	Score int
}

func (e *InvalidScoreError) Error() string {
	return fmt.Sprintf("risk score %d outside valid range [0,100]", e.Score)
}

// FromScore classifies a numeric risk score.
func FromScore(score int) (Level, error) {
	if score < 0 || score > 100 {
		return 0, &InvalidScoreError{Score: score}
	}
	switch {
	case score > criticalAbove:
		return Critical, nil
	case score > highAbove:
		return High, nil
	default:
		return Medium, nil
	}
}

// FromLabel classifies a qualitative severity label. Labels bypass the
// numeric thresholds entirely.
func FromLabel(label string) (Level, error) {
	switch label {
	case "low":
		return Low, nil
	case "medium":
		return Medium, nil
	case "high":
		return High, nil
	case "critical":
		return Critical, nil
	default:
		return 0, fmt.Errorf("unknown severity label %q", label)
	}
}

// Category returns the analyst-facing display string.
func (l Level) Category() string {
	switch l {
	case Low:
		return "Low"
	case Medium:
		return "Medium"
	case High:
		return "High"
	case Critical:
		return "Critical"
	default:
		return "Unknown"
	}
}

// Label returns the lowercase form used in dataset documents and exports.
func (l Level) Label() string {
	switch l {
	case Low:
		return "low"
	case Medium:
		return "medium"
	case High:
		return "high"
	case Critical:
		return "critical"
	default:
		return "unknown"
	}
}

// Tier returns the style token the rendering layer keys badge colors on.
func (l Level) Tier() string {
	switch l {
	case Critical:
		return "danger"
	case High:
		return "warn"
	default:
		return "ok"
	}
}

func (l Level) String() string {
	return l.Category()
}
