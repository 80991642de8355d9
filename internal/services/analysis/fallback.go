package analysis

import (
	"strings"

	"policymind/internal/domain"
)

const (
	summaryTokens      = 80
	maxDerivedItems    = 3
	genericActionItem  = "Assign an owner to review this mandate."
	genericSummaryTail = "New EU mandate uploaded."
)

// fallback is the deterministic analysis. Risk is always MEDIUM.
func fallback(req request) domain.Analysis {
	excerpt := strings.Join(firstN(strings.Fields(req.Excerpt), summaryTokens), " ")
	if excerpt == "" {
		excerpt = genericSummaryTail
	}

	var actions []string
	for _, p := range firstN(req.Policies, maxDerivedItems) {
		owner := strings.TrimSpace(p.OwnerTeam)
		if owner == "" {
			owner = "policy owner"
		}
		area := strings.TrimSpace(p.Area)
		if area == "" {
			area = "policy"
		}
		actions = append(actions, "Review "+area+" controls with "+owner+".")
	}
	if len(actions) == 0 {
		actions = []string{genericActionItem}
	}

	labels := make([]string, 0, len(req.Policies))
	for _, p := range req.Policies {
		label := strings.TrimSpace(p.OwnerTeam)
		if label == "" {
			label = strings.TrimSpace(p.Area)
		}
		labels = append(labels, label)
	}
	teams := firstN(dedupeNonEmpty(labels), maxDerivedItems)
	if len(teams) == 0 {
		teams = firstN(dedupeNonEmpty(req.Sectors), maxDerivedItems)
	}

	return domain.Analysis{
		Title:         req.Title,
		Summary:       req.CompanyName + " monitoring highlights: " + excerpt,
		ActionItems:   actions,
		NotifiedTeams: teams,
		RiskLevel:     domain.RiskMedium,
	}
}

func firstN[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// dedupeNonEmpty trims, drops blanks and keeps the first occurrence.
func dedupeNonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
