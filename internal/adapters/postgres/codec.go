package postgres

import (
	"encoding/json"

	"policymind/internal/domain"
)

// Stored JSON columns are read leniently: anything that is not an array
// decodes to an empty one, and malformed entries are skipped.

func decodeStringArray(raw []byte) []string {
	var items []any
	if err := json.Unmarshal(raw, &items); err != nil {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func decodePolicySnapshots(raw []byte) []domain.PolicySnapshot {
	var items []any
	if err := json.Unmarshal(raw, &items); err != nil {
		return []domain.PolicySnapshot{}
	}
	out := make([]domain.PolicySnapshot, 0, len(items))
	for _, it := range items {
		obj, ok := it.(map[string]any)
		if !ok {
			continue
		}
		area, okArea := obj["area"].(string)
		maturity, okMaturity := obj["maturity"].(string)
		owner, okOwner := obj["ownerTeam"].(string)
		if !okArea || !okMaturity || !okOwner {
			continue
		}
		contact, _ := obj["ownerContact"].(string)
		out = append(out, domain.PolicySnapshot{
			Area:         area,
			Maturity:     domain.ParsePolicyMaturity(maturity),
			OwnerTeam:    owner,
			OwnerContact: contact,
		})
	}
	return out
}

// encodeJSON returns v as JSON text, writing nil slices as [].
func encodeJSON[T any](v []T) (string, error) {
	if v == nil {
		v = []T{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
