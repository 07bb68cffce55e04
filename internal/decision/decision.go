// Package decision maps the scoring service's recommendation to display semantics.
package decision

// Decision is the categorical recommendation returned by the screening service.
type Decision string

const (
	Accept Decision = "accept"
	Maybe  Decision = "maybe"
	Reject Decision = "reject"
)

// Known reports whether d is one of accept, maybe or reject.
func (d Decision) Known() bool {
	switch d {
	case Accept, Maybe, Reject:
		return true
	default:
		return false
	}
}

// Severity orders decisions for display.
type Severity int

const (
	Unknown Severity = iota
	Negative
	Neutral
	Positive
)

func (s Severity) String() string {
	switch s {
	case Positive:
		return "positive"
	case Neutral:
		return "neutral"
	case Negative:
		return "negative"
	default:
		return "unknown"
	}
}

type Presentation struct {
	Severity Severity
	Label    string
}

// Present is total: values outside the known set map to Unknown.
func Present(d Decision) Presentation {
	switch d {
	case Accept:
		return Presentation{Severity: Positive, Label: "Approved"}
	case Maybe:
		return Presentation{Severity: Neutral, Label: "Review"}
	case Reject:
		return Presentation{Severity: Negative, Label: "Declined"}
	default:
		return Presentation{Severity: Unknown, Label: "Unknown"}
	}
}
