package screening

import (
	"fmt"
	"math"

	"github.com/mitchellh/mapstructure"

	"github.com/MohammedMusharraf11/NaukriGraph/internal/decision"
)

// Result is the structured outcome of a successful screening. It is never
// modified after it is received.
type Result struct {
	CandidateEmail    string            `json:"candidate_email"`
	ExperienceLevel   string            `json:"experience_level"`
	SkillMatchPercent int               `json:"skill_match"`
	Decision          decision.Decision `json:"decision"`
}

type rawResult struct {
	CandidateEmail  string  `mapstructure:"candidate_email"`
	ExperienceLevel string  `mapstructure:"experience_level"`
	SkillMatch      float64 `mapstructure:"skill_match"`
	Decision        string  `mapstructure:"decision"`
}

// decodeResult converts the loosely typed data payload. The service may send a
// null email or a fractional skill match; both are normalised here.
func decodeResult(data map[string]any) (*Result, error) {
	var raw rawResult

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &raw,
	})
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(data); err != nil {
		return nil, fmt.Errorf("decode result: %w", err)
	}

	return &Result{
		CandidateEmail:    raw.CandidateEmail,
		ExperienceLevel:   raw.ExperienceLevel,
		SkillMatchPercent: clampPercent(raw.SkillMatch),
		Decision:          decision.Decision(raw.Decision),
	}, nil
}

func clampPercent(v float64) int {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 100 {
		return 100
	}
	return int(math.Round(v))
}

// Presentation derives the display label and severity of the decision.
func (r *Result) Presentation() decision.Presentation {
	return decision.Present(r.Decision)
}

// MailtoURI builds the reply link for the candidate.
func (r *Result) MailtoURI() (string, error) {
	return decision.MailtoURI(r.CandidateEmail, r.Decision)
}
