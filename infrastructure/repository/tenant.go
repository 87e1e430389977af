package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/adscope/keyword-guardian-api/infrastructure/database/postgres"
	"github.com/adscope/keyword-guardian-api/internal/domain"
)

const (
	tenantsTable           = "tenants t"
	thresholdSettingsTable = "threshold_settings"
)

type TenantRepository interface {
	GetTenantByID(tenantID string) (*domain.Tenant, error)
	GetTenantByWorkspaceID(workspaceID string) (*domain.Tenant, error)
	ListActiveTenants() ([]*domain.Tenant, error)
	SaveOrUpdate(tenant *domain.Tenant) error
	DeactivateTenant(tenantID string) error
	GetThresholdSettings(tenantID string) (*domain.ThresholdSettings, error)
	SaveThresholdSettings(settings *domain.ThresholdSettings) error
}

type tenantRepository struct {
	conn *postgres.Connection
}

func NewTenantRepository(conn *postgres.Connection) TenantRepository {
	return &tenantRepository{
		conn: conn,
	}
}

func (r *tenantRepository) GetTenantByID(tenantID string) (*domain.Tenant, error) {
	return r.getTenant(squirrel.Eq{"t.id": tenantID})
}

func (r *tenantRepository) GetTenantByWorkspaceID(workspaceID string) (*domain.Tenant, error) {
	return r.getTenant(squirrel.Eq{"t.workspace_id": workspaceID})
}

func (r *tenantRepository) getTenant(whereClause map[string]interface{}) (*domain.Tenant, error) {
	tenantSQL, tenantArgs, err := squirrel.
		Select("t.id, t.workspace_id, t.name, t.ads_customer_id, t.slack_channel_id, t.timezone, t.status, t.created_at").
		From(tenantsTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(tenantSQL, tenantArgs...)

	tenant := &domain.Tenant{}
	if err := row.Scan(
		&tenant.ID,
		&tenant.WorkspaceID,
		&tenant.Name,
		&tenant.AdsCustomerID,
		&tenant.SlackChannelID,
		&tenant.Timezone,
		&tenant.Status,
		&tenant.CreatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return tenant, nil
}

func (r *tenantRepository) ListActiveTenants() ([]*domain.Tenant, error) {
	tenantsSQL, tenantsArgs, err := squirrel.
		Select("t.id, t.workspace_id, t.name, t.ads_customer_id, t.slack_channel_id, t.timezone, t.status, t.created_at").
		From(tenantsTable).
		Where(squirrel.Eq{"t.status": domain.TenantStatusActive}).
		OrderBy("t.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(tenantsSQL, tenantsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	tenants := make([]*domain.Tenant, 0)

	for rows.Next() {
		tenant := &domain.Tenant{}
		if err := rows.Scan(
			&tenant.ID,
			&tenant.WorkspaceID,
			&tenant.Name,
			&tenant.AdsCustomerID,
			&tenant.SlackChannelID,
			&tenant.Timezone,
			&tenant.Status,
			&tenant.CreatedAt,
		); err != nil {
			return nil, err
		}

		tenants = append(tenants, tenant)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return tenants, nil
}

func (r *tenantRepository) SaveOrUpdate(tenant *domain.Tenant) error {
	query := squirrel.StatementBuilder.
		Insert("tenants").
		Columns("id", "workspace_id", "name", "ads_customer_id", "slack_channel_id", "timezone", "status", "created_at").
		Values(
			tenant.ID,
			tenant.WorkspaceID,
			tenant.Name,
			tenant.AdsCustomerID,
			tenant.SlackChannelID,
			tenant.Timezone,
			tenant.Status,
			tenant.CreatedAt,
		).
		Suffix(`
			ON CONFLICT (workspace_id) DO UPDATE SET
				name = EXCLUDED.name,
				ads_customer_id = EXCLUDED.ads_customer_id,
				slack_channel_id = EXCLUDED.slack_channel_id,
				timezone = EXCLUDED.timezone,
				status = EXCLUDED.status
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// DeactivateTenant desativa o tenant. Tenants nunca são removidos
// fisicamente.
func (r *tenantRepository) DeactivateTenant(tenantID string) error {
	if tenantID == "" {
		return errors.New("tenantID is required")
	}

	sqlQuery, args, err := squirrel.
		Update("tenants").
		Set("status", domain.TenantStatusInactive).
		Where(squirrel.Eq{"id": tenantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.New("tenant not found")
	}

	return nil
}

func (r *tenantRepository) GetThresholdSettings(tenantID string) (*domain.ThresholdSettings, error) {
	settingsSQL, settingsArgs, err := squirrel.
		Select("tenant_id, min_cost_micros, min_clicks, min_impressions, max_conversions, max_ctr, lookback_days, approval_ttl_hours, ignore_cooldown_hours").
		From(thresholdSettingsTable).
		Where(squirrel.Eq{"tenant_id": tenantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(settingsSQL, settingsArgs...)

	settings := &domain.ThresholdSettings{}
	if err := row.Scan(
		&settings.TenantID,
		&settings.MinCostMicros,
		&settings.MinClicks,
		&settings.MinImpressions,
		&settings.MaxConversions,
		&settings.MaxCTR,
		&settings.LookbackDays,
		&settings.ApprovalTTLHours,
		&settings.IgnoreCooldownHours,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return settings, nil
}

func (r *tenantRepository) SaveThresholdSettings(settings *domain.ThresholdSettings) error {
	query := squirrel.StatementBuilder.
		Insert("threshold_settings").
		Columns("tenant_id", "min_cost_micros", "min_clicks", "min_impressions", "max_conversions", "max_ctr", "lookback_days", "approval_ttl_hours", "ignore_cooldown_hours").
		Values(
			settings.TenantID,
			settings.MinCostMicros,
			settings.MinClicks,
			settings.MinImpressions,
			settings.MaxConversions,
			settings.MaxCTR,
			settings.LookbackDays,
			settings.ApprovalTTLHours,
			settings.IgnoreCooldownHours,
		).
		Suffix(`
			ON CONFLICT (tenant_id) DO UPDATE SET
				min_cost_micros = EXCLUDED.min_cost_micros,
				min_clicks = EXCLUDED.min_clicks,
				min_impressions = EXCLUDED.min_impressions,
				max_conversions = EXCLUDED.max_conversions,
				max_ctr = EXCLUDED.max_ctr,
				lookback_days = EXCLUDED.lookback_days,
				approval_ttl_hours = EXCLUDED.approval_ttl_hours,
				ignore_cooldown_hours = EXCLUDED.ignore_cooldown_hours
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}
