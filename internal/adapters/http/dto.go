package httpadapter

import (
	"strings"
	"time"

	api "policymind/internal/api"
	"policymind/internal/domain"
	"policymind/internal/services/notifications"
)

func toInsight(b domain.Briefing) api.Insight {
	out := api.Insight{
		Id:            b.ID,
		Title:         b.Title,
		Summary:       b.Summary,
		ActionItems:   nonNil(b.ActionItems),
		NotifiedTeams: nonNil(b.NotifiedTeams),
		RiskLevel:     string(domain.ParseRiskLevel(string(b.RiskLevel))),
		Status:        string(b.Status),
		CreatedAt:     wireTime(b.CreatedAt),
		UpdatedAt:     wireTime(b.UpdatedAt),
	}
	if b.ArchivedAt != nil {
		at := wireTime(*b.ArchivedAt)
		out.ArchivedAt = &at
	}
	return out
}

func toInsights(bs []domain.Briefing) api.ListInsights200JSONResponse {
	out := make(api.ListInsights200JSONResponse, 0, len(bs))
	for _, b := range bs {
		out = append(out, toInsight(b))
	}
	return out
}

// wireTime renders timestamps in UTC at millisecond precision.
func wireTime(t time.Time) time.Time { return t.UTC().Truncate(time.Millisecond) }

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// toUpdate validates a PATCH body. A blank status counts as absent.
func toUpdate(req *api.UpdateInsightRequest) (domain.BriefingUpdate, error) {
	var u domain.BriefingUpdate
	if req.Status != nil && strings.TrimSpace(*req.Status) != "" {
		st, err := domain.ParseStatus(*req.Status)
		if err != nil {
			return u, err
		}
		u.Status = &st
	}
	u.Unarchive = req.Unarchive != nil && *req.Unarchive
	return u, u.Validate()
}

func toReceipt(r notifications.Receipt) api.NotificationReceipt {
	out := api.NotificationReceipt{
		Channel:    r.Channel,
		Recipients: nonNil(r.Recipients),
		Subject:    r.Subject,
		MessageId:  r.MessageID,
		Transport:  r.Transport,
	}
	if r.PreviewURL != "" {
		out.PreviewUrl = &r.PreviewURL
	}
	return out
}

// fromProfile maps a submitted profile. updatedAt is server-owned and not
// accepted from callers.
func fromProfile(p *api.OnboardingProfile) domain.CompanyProfile {
	snapshots := make([]domain.PolicySnapshot, 0, len(p.PolicySnapshots))
	for _, ps := range p.PolicySnapshots {
		s := domain.PolicySnapshot{
			Area:      ps.Area,
			Maturity:  domain.PolicyMaturity(ps.Maturity),
			OwnerTeam: ps.OwnerTeam,
		}
		if ps.OwnerContact != nil {
			s.OwnerContact = *ps.OwnerContact
		}
		snapshots = append(snapshots, s)
	}
	return domain.CompanyProfile{
		CompanyName:         p.CompanyName,
		HQCountry:           p.HqCountry,
		EmployeeCount:       p.EmployeeCount,
		Sectors:             p.Sectors,
		RegulatorFeeds:      p.RegulatorFeeds,
		PolicySnapshots:     snapshots,
		RiskStance:          domain.RiskStance(p.RiskStance),
		NotificationChannel: domain.NotificationChannel(p.NotificationChannel),
		SummaryFocus:        domain.SummaryCadence(p.SummaryFocus),
	}
}

func toProfile(p domain.CompanyProfile) api.OnboardingProfile {
	snapshots := make([]api.PolicySnapshot, 0, len(p.PolicySnapshots))
	for _, ps := range p.PolicySnapshots {
		s := api.PolicySnapshot{Area: ps.Area, Maturity: string(ps.Maturity), OwnerTeam: ps.OwnerTeam}
		if ps.OwnerContact != "" {
			contact := ps.OwnerContact
			s.OwnerContact = &contact
		}
		snapshots = append(snapshots, s)
	}
	out := api.OnboardingProfile{
		CompanyName:         p.CompanyName,
		HqCountry:           p.HQCountry,
		EmployeeCount:       p.EmployeeCount,
		Sectors:             nonNil(p.Sectors),
		RegulatorFeeds:      nonNil(p.RegulatorFeeds),
		PolicySnapshots:     snapshots,
		RiskStance:          string(p.RiskStance),
		NotificationChannel: string(p.NotificationChannel),
		SummaryFocus:        string(p.SummaryFocus),
	}
	if !p.UpdatedAt.IsZero() {
		at := wireTime(p.UpdatedAt)
		out.UpdatedAt = &at
	}
	return out
}
