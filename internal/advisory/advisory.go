// Package advisory wraps the external text-generation service consulted for
// bounded numeric/categorical enrichment. The capability is best-effort: every
// caller validates its output strictly and degrades to a neutral value on any
// failure, so the engine never depends on it for correctness.
package advisory

import (
	"context"
	"strconv"
	"strings"

	"github.com/habitloop/adherence-engine/internal/domain"
	"github.com/tidwall/gjson"
)

// Client is the narrow generation contract. Implementations must respect the
// context deadline; callers wrap every call in a hard timeout.
type Client interface {
	// Generate produces free text for the given prompt.
	Generate(ctx context.Context, prompt string) (string, error)
}

// ParseBoundedFloat parses text as a single float within [min, max]. It
// tolerates surrounding prose by taking the first numeric token. Returns
// false when no number can be extracted or when the number falls outside the
// bounds; out-of-range advisory output is discarded, not clamped.
func ParseBoundedFloat(text string, min, max float64) (float64, bool) {
	for _, field := range strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == '\n' || r == '\t' || r == ',' || r == ':'
	}) {
		token := strings.Trim(field, "`*\"'()[]")
		v, err := strconv.ParseFloat(token, 64)
		if err != nil {
			continue
		}
		if v < min || v > max {
			return 0, false
		}
		return v, true
	}
	return 0, false
}

// ParseTagList parses comma- or newline-separated trigger tags and keeps only
// tags from the closed vocabulary. Unknown tags are discarded, never
// propagated: unvalidated external text must not reach internal enums.
func ParseTagList(text string) []domain.Trigger {
	var tags []domain.Trigger
	seen := make(map[domain.Trigger]bool)

	for _, part := range strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == '\n'
	}) {
		tag := domain.Trigger(strings.ToLower(strings.Trim(part, " \t`*\"'.-")))
		if !tag.Valid() || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags
}

// ParseCandidateList parses a small JSON array of intervention proposals.
// Entries whose type is outside the fixed catalogue are discarded; priorities
// are clamped to [1, 10]. Any other shape yields an empty list.
func ParseCandidateList(text string) []domain.InterventionCandidate {
	// Models wrap JSON in fences often enough that stripping is cheaper than
	// re-prompting.
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	parsed := gjson.Parse(text)
	if !parsed.IsArray() {
		return nil
	}

	var candidates []domain.InterventionCandidate
	seen := make(map[domain.InterventionType]bool)
	for _, item := range parsed.Array() {
		typ := domain.InterventionType(strings.ToLower(strings.TrimSpace(item.Get("type").String())))
		if !typ.Valid() || seen[typ] {
			continue
		}

		priority := int(item.Get("priority").Int())
		if priority < 1 {
			priority = 1
		}
		if priority > 10 {
			priority = 10
		}

		reasoning := strings.TrimSpace(item.Get("reasoning").String())
		if reasoning == "" {
			reasoning = "Suggested by advisory analysis"
		}

		seen[typ] = true
		candidates = append(candidates, domain.InterventionCandidate{
			Type:      typ,
			Reasoning: reasoning,
			Priority:  priority,
		})
	}
	return candidates
}
