package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"policymind/internal/domain"
)

const profileColumns = `c.name, c.hq_country, c.employee_count_band, c.sectors, c.regulator_feeds, c.policy_snapshots,
        c.risk_stance, c.notification_channel, c.summary_cadence, c.updated_at`

// MembershipRepository
func (db *DB) EarliestMembership(ctx context.Context, userID string) (domain.Membership, bool, error) {
	var m domain.Membership
	var role, status string
	err := db.Pool.QueryRow(ctx, `
        SELECT user_id, company_id, role, status, created_at
        FROM company_members
        WHERE user_id = $1
        ORDER BY created_at ASC
        LIMIT 1
    `, userID).Scan(&m.UserID, &m.CompanyID, &role, &status, &m.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return m, false, nil
	}
	if err != nil {
		return m, false, fmt.Errorf("lookup membership: %w", err)
	}
	m.Role = domain.MemberRole(role)
	m.Status = domain.MemberStatus(status)
	return m, true, nil
}

// ProfileRepository

// Upsert runs the user upsert, membership lookup and company write in one
// transaction. The row lock taken by the user upsert serializes concurrent
// onboarding submissions from the same caller, so at most one company is created.
func (db *DB) Upsert(ctx context.Context, caller domain.Identity, p domain.CompanyProfile, now time.Time) (out domain.CompanyProfile, err error) {
	sectors, err := encodeJSON(p.Sectors)
	if err != nil {
		return out, err
	}
	feeds, err := encodeJSON(p.RegulatorFeeds)
	if err != nil {
		return out, err
	}
	snapshots, err := encodeJSON(p.PolicySnapshots)
	if err != nil {
		return out, err
	}
	stance, _ := domain.RiskStances.Code(p.RiskStance)
	channel, _ := domain.NotificationChannels.Code(p.NotificationChannel)
	cadence, _ := domain.SummaryCadences.Code(p.SummaryFocus)

	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return out, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, `
        INSERT INTO users (id, email, name, picture)
        VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''))
        ON CONFLICT (id) DO UPDATE SET
            email = COALESCE(EXCLUDED.email, users.email),
            name = COALESCE(EXCLUDED.name, users.name),
            picture = COALESCE(EXCLUDED.picture, users.picture),
            updated_at = now()
    `, caller.Subject, caller.Email, caller.Name, caller.Picture); err != nil {
		return out, fmt.Errorf("upsert user: %w", err)
	}

	var companyID string
	err = tx.QueryRow(ctx, `
        SELECT company_id FROM company_members
        WHERE user_id = $1
        ORDER BY created_at ASC
        LIMIT 1
    `, caller.Subject).Scan(&companyID)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		companyID = uuid.NewString()
		if _, err = tx.Exec(ctx, `
            INSERT INTO companies (id, name, hq_country, employee_count_band, sectors, regulator_feeds, policy_snapshots,
                risk_stance, notification_channel, summary_cadence, onboarding_completed_at, created_by_user_id, created_at, updated_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $11, $11)
        `, companyID, p.CompanyName, p.HQCountry, p.EmployeeCount, sectors, feeds, snapshots,
			stance, channel, cadence, now, caller.Subject); err != nil {
			return out, fmt.Errorf("create company: %w", err)
		}
		if _, err = tx.Exec(ctx, `
            INSERT INTO company_members (company_id, user_id, role, status, created_at)
            VALUES ($1, $2, $3, $4, $5)
        `, companyID, caller.Subject, string(domain.RoleOwner), string(domain.MemberActive), now); err != nil {
			return out, fmt.Errorf("create membership: %w", err)
		}
	case err != nil:
		return out, fmt.Errorf("lookup membership: %w", err)
	default:
		if _, err = tx.Exec(ctx, `
            UPDATE companies SET
                name = $2, hq_country = $3, employee_count_band = $4,
                sectors = $5, regulator_feeds = $6, policy_snapshots = $7,
                risk_stance = $8, notification_channel = $9, summary_cadence = $10,
                onboarding_completed_at = $11, updated_at = $11
            WHERE id = $1
        `, companyID, p.CompanyName, p.HQCountry, p.EmployeeCount, sectors, feeds, snapshots,
			stance, channel, cadence, now); err != nil {
			return out, fmt.Errorf("update company: %w", err)
		}
	}

	out = p
	out.UpdatedAt = now
	return out, nil
}

func (db *DB) GetByUser(ctx context.Context, userID string) (domain.CompanyProfile, bool, error) {
	return scanProfile(db.Pool.QueryRow(ctx, `
        SELECT `+profileColumns+`
        FROM company_members m
        JOIN companies c ON c.id = m.company_id
        WHERE m.user_id = $1
        ORDER BY m.created_at ASC
        LIMIT 1
    `, userID))
}

func (db *DB) GetByCompany(ctx context.Context, companyID string) (domain.CompanyProfile, bool, error) {
	return scanProfile(db.Pool.QueryRow(ctx, `SELECT `+profileColumns+` FROM companies c WHERE c.id = $1`, companyID))
}

func scanProfile(row pgx.Row) (domain.CompanyProfile, bool, error) {
	var (
		p                         domain.CompanyProfile
		sectors, feeds, snapshots []byte
		stance, channel, cadence  string
	)
	err := row.Scan(&p.CompanyName, &p.HQCountry, &p.EmployeeCount, &sectors, &feeds, &snapshots,
		&stance, &channel, &cadence, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return p, false, nil
	}
	if err != nil {
		return p, false, fmt.Errorf("scan profile: %w", err)
	}
	p.Sectors = decodeStringArray(sectors)
	p.RegulatorFeeds = decodeStringArray(feeds)
	p.PolicySnapshots = decodePolicySnapshots(snapshots)
	p.RiskStance = domain.RiskStances.Decode(stance)
	p.NotificationChannel = domain.NotificationChannels.Decode(channel)
	p.SummaryFocus = domain.SummaryCadences.Decode(cadence)
	return p, true, nil
}
