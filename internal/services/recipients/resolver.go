// Package recipients decides who receives a briefing notification.
package recipients

import (
	"regexp"
	"strings"

	"policymind/internal/domain"
)

var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsEmail reports whether s looks like an address. It is a shape check only.
func IsEmail(s string) bool { return emailShape.MatchString(s) }

// ParseList splits a comma-separated address list, trimming and dropping blanks.
func ParseList(csv string) []string {
	var out []string
	for _, part := range strings.Split(csv, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Resolve returns owner contacts matched to the notified teams, then the
// configured addresses, then the caller's own email, deduplicated in that order.
func Resolve(notifiedTeams []string, snapshots []domain.PolicySnapshot, callerEmail string, configured []string) []string {
	merged := MatchOwnerContacts(notifiedTeams, snapshots)
	merged = append(merged, configured...)
	if e := strings.TrimSpace(callerEmail); e != "" {
		merged = append(merged, e)
	}
	return dedupe(merged)
}

// MatchOwnerContacts selects snapshot owner contacts whose area or owner team
// overlaps a notified team by substring in either direction. With no teams,
// every valid contact matches.
func MatchOwnerContacts(notifiedTeams []string, snapshots []domain.PolicySnapshot) []string {
	if len(snapshots) == 0 {
		return nil
	}
	var targets []string
	for _, team := range notifiedTeams {
		if t := strings.ToLower(strings.TrimSpace(team)); t != "" {
			targets = append(targets, t)
		}
	}

	var out []string
	for _, s := range snapshots {
		contact := strings.TrimSpace(s.OwnerContact)
		if !IsEmail(contact) {
			continue
		}
		if len(targets) == 0 || matchesAny(s, targets) {
			out = append(out, contact)
		}
	}
	return out
}

func matchesAny(s domain.PolicySnapshot, targets []string) bool {
	area := strings.ToLower(strings.TrimSpace(s.Area))
	owner := strings.ToLower(strings.TrimSpace(s.OwnerTeam))
	for _, t := range targets {
		if overlaps(area, t) || overlaps(owner, t) {
			return true
		}
	}
	return false
}

func overlaps(label, target string) bool {
	return label != "" && (strings.Contains(label, target) || strings.Contains(target, label))
}

func dedupe(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
