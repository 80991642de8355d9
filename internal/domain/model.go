package domain

import "time"

// Core domain models used internally. The HTTP adapter owns the wire shapes;
// keep these decoupled where helpful.

// Identity is the caller as reported by the identity provider.
type Identity struct {
	Subject string
	Email   string
	Name    string
	Picture string
}

type Company struct {
	ID              string
	Name            string
	CreatedByUserID string
	CreatedAt       time.Time
}

type Membership struct {
	UserID    string
	CompanyID string
	Role      MemberRole
	Status    MemberStatus
	CreatedAt time.Time
}

type MemberRole string

const (
	RoleOwner  MemberRole = "OWNER"
	RoleMember MemberRole = "MEMBER"
)

type MemberStatus string

const MemberActive MemberStatus = "ACTIVE"

// PolicySnapshot records how mature one compliance area is and who owns it.
type PolicySnapshot struct {
	Area         string         `json:"area"`
	Maturity     PolicyMaturity `json:"maturity"`
	OwnerTeam    string         `json:"ownerTeam"`
	OwnerContact string         `json:"ownerContact"`
}

type PolicyMaturity string

const (
	MaturityNone      PolicyMaturity = "none"
	MaturityDraft     PolicyMaturity = "draft"
	MaturityApproved  PolicyMaturity = "approved"
	MaturityMonitored PolicyMaturity = "monitored"
)

// ParsePolicyMaturity maps unknown values to MaturityNone.
func ParsePolicyMaturity(s string) PolicyMaturity {
	switch m := PolicyMaturity(s); m {
	case MaturityNone, MaturityDraft, MaturityApproved, MaturityMonitored:
		return m
	}
	return MaturityNone
}

// DefaultPolicyAreas are the areas a new profile starts with.
var DefaultPolicyAreas = []string{
	"Data Privacy",
	"Financial Crime",
	"Labor & HR",
	"Environment",
}

// SeedPolicySnapshots returns one draft snapshot per default area, with no
// owner assigned yet.
func SeedPolicySnapshots() []PolicySnapshot {
	out := make([]PolicySnapshot, 0, len(DefaultPolicyAreas))
	for _, area := range DefaultPolicyAreas {
		out = append(out, PolicySnapshot{Area: area, Maturity: MaturityDraft})
	}
	return out
}

// DraftProfile is the starting point offered to a caller who has not
// onboarded yet.
func DraftProfile() CompanyProfile {
	return CompanyProfile{
		Sectors:             []string{},
		RegulatorFeeds:      []string{"EUR-Lex", "European Commission"},
		PolicySnapshots:     SeedPolicySnapshots(),
		RiskStance:          StanceBalanced,
		NotificationChannel: ChannelSlack,
		SummaryFocus:        CadenceWeekly,
	}
}

// CompanyProfile is the onboarding configuration of one company.
type CompanyProfile struct {
	CompanyName         string              `json:"companyName"`
	HQCountry           string              `json:"hqCountry"`
	EmployeeCount       string              `json:"employeeCount"`
	Sectors             []string            `json:"sectors"`
	RegulatorFeeds      []string            `json:"regulatorFeeds"`
	PolicySnapshots     []PolicySnapshot    `json:"policySnapshots"`
	RiskStance          RiskStance          `json:"riskStance"`
	NotificationChannel NotificationChannel `json:"notificationChannel"`
	SummaryFocus        SummaryCadence      `json:"summaryFocus"`
	UpdatedAt           time.Time           `json:"updatedAt"`
}

// CompanyContext is the slice of a profile the analysis engine consumes.
type CompanyContext struct {
	CompanyName string
	Sectors     []string
	Policies    []PolicySnapshot
}

func (p CompanyProfile) Context() CompanyContext {
	return CompanyContext{CompanyName: p.CompanyName, Sectors: p.Sectors, Policies: p.PolicySnapshots}
}

// Analysis is the structured content derived from one regulation document.
type Analysis struct {
	Title         string
	Summary       string
	ActionItems   []string
	NotifiedTeams []string
	RiskLevel     RiskLevel
}

// Briefing is the persisted analysis of one uploaded document.
type Briefing struct {
	ID            string
	CompanyID     string
	Title         string
	Summary       string
	ActionItems   []string
	NotifiedTeams []string
	RiskLevel     RiskLevel
	Status        Status
	ArchivedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (b Briefing) Archived() bool { return b.ArchivedAt != nil }
