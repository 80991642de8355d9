package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"policymind/internal/domain"
)

const briefingColumns = `id, company_id, title, summary, action_items, notified_teams, risk_level, status, archived_at, created_at, updated_at`

func (db *DB) Insert(ctx context.Context, b domain.Briefing) error {
	actions, err := encodeJSON(b.ActionItems)
	if err != nil {
		return err
	}
	teams, err := encodeJSON(b.NotifiedTeams)
	if err != nil {
		return err
	}
	_, err = db.Pool.Exec(ctx, `
        INSERT INTO regulation_insights (`+briefingColumns+`)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `, b.ID, b.CompanyID, b.Title, b.Summary, actions, teams, string(b.RiskLevel), string(b.Status), b.ArchivedAt, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert briefing: %w", err)
	}
	return nil
}

// Get matches id and company in one predicate so a foreign id is
// indistinguishable from a missing one.
func (db *DB) Get(ctx context.Context, id, companyID string) (domain.Briefing, error) {
	row := db.Pool.QueryRow(ctx, `SELECT `+briefingColumns+` FROM regulation_insights WHERE id = $1 AND company_id = $2`, id, companyID)
	return scanBriefing(row)
}

// Mutate locks the row, applies fn and writes status and archive fields back.
func (db *DB) Mutate(ctx context.Context, id, companyID string, fn func(*domain.Briefing) error) (out domain.Briefing, err error) {
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

	b, err := scanBriefing(tx.QueryRow(ctx, `
        SELECT `+briefingColumns+` FROM regulation_insights
        WHERE id = $1 AND company_id = $2
        FOR UPDATE
    `, id, companyID))
	if err != nil {
		return out, err
	}
	if err = fn(&b); err != nil {
		return out, err
	}
	if _, err = tx.Exec(ctx, `
        UPDATE regulation_insights SET status = $3, archived_at = $4, updated_at = $5
        WHERE id = $1 AND company_id = $2
    `, id, companyID, string(b.Status), b.ArchivedAt, b.UpdatedAt); err != nil {
		return out, fmt.Errorf("update briefing: %w", err)
	}
	return b, nil
}

func (db *DB) Delete(ctx context.Context, id, companyID string) error {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM regulation_insights WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("delete briefing: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (db *DB) List(ctx context.Context, companyID string, archived bool) ([]domain.Briefing, error) {
	query := `SELECT ` + briefingColumns + ` FROM regulation_insights WHERE company_id = $1 AND archived_at IS NULL ORDER BY created_at DESC`
	if archived {
		query = `SELECT ` + briefingColumns + ` FROM regulation_insights WHERE company_id = $1 AND archived_at IS NOT NULL ORDER BY archived_at DESC`
	}
	rows, err := db.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list briefings: %w", err)
	}
	defer rows.Close()

	out := []domain.Briefing{}
	for rows.Next() {
		b, err := scanBriefing(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func scanBriefing(row pgx.Row) (domain.Briefing, error) {
	var (
		b              domain.Briefing
		actions, teams []byte
		risk, status   string
		archivedAt     *time.Time
	)
	err := row.Scan(&b.ID, &b.CompanyID, &b.Title, &b.Summary, &actions, &teams, &risk, &status, &archivedAt, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Briefing{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Briefing{}, fmt.Errorf("scan briefing: %w", err)
	}
	b.ActionItems = decodeStringArray(actions)
	b.NotifiedTeams = decodeStringArray(teams)
	b.RiskLevel = domain.ParseRiskLevel(risk)
	b.Status = decodeStatus(status)
	b.ArchivedAt = archivedAt
	return b, nil
}

// decodeStatus keeps unknown stored values from breaking reads.
func decodeStatus(s string) domain.Status {
	st, err := domain.ParseStatus(s)
	if err != nil {
		return domain.StatusNew
	}
	return st
}
