package analysis

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	"policymind/internal/domain"
)

var fencedBlock = regexp.MustCompile("(?is)```(?:json)?\\s*(.*?)```")

type providerPayload struct {
	Title         *string `json:"title"`
	Summary       string  `json:"summary"`
	ActionItems   []any   `json:"actionItems"`
	NotifiedTeams []any   `json:"notifiedTeams"`
	RiskLevel     string  `json:"riskLevel"`
}

// parseResponse accepts raw JSON or JSON inside a ``` fence.
func parseResponse(raw, defaultTitle string) (domain.Analysis, error) {
	body := extractJSONBlock(raw)
	if body == "" {
		return domain.Analysis{}, errors.New("empty response")
	}
	var p providerPayload
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		return domain.Analysis{}, err
	}
	if strings.TrimSpace(p.Summary) == "" {
		return domain.Analysis{}, errors.New("summary missing")
	}
	if p.ActionItems == nil || p.NotifiedTeams == nil {
		return domain.Analysis{}, errors.New("actionItems and notifiedTeams must be arrays")
	}

	title := defaultTitle
	if p.Title != nil && strings.TrimSpace(*p.Title) != "" {
		title = strings.TrimSpace(*p.Title)
	}
	return domain.Analysis{
		Title:         title,
		Summary:       strings.TrimSpace(p.Summary),
		ActionItems:   nonEmptyStrings(p.ActionItems),
		NotifiedTeams: nonEmptyStrings(p.NotifiedTeams),
		RiskLevel:     domain.ParseRiskLevel(p.RiskLevel),
	}, nil
}

func extractJSONBlock(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "```") {
		if m := fencedBlock.FindStringSubmatch(trimmed); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return trimmed
}

func nonEmptyStrings(in []any) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			out = append(out, strings.TrimSpace(s))
		}
	}
	return out
}
