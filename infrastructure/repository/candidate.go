package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/adscope/keyword-guardian-api/infrastructure/database/postgres"
	"github.com/adscope/keyword-guardian-api/internal/domain"
)

const candidatesTable = "keyword_candidates k"

type CandidateRepository interface {
	Save(candidate *domain.KeywordCandidate) error
	GetByID(candidateID string) (*domain.KeywordCandidate, error)
	HasUndecidedRequest(tenantID, accountID, searchTerm, campaignID string) (bool, error)
	RecentlyIgnoredTerms(tenantID string, since time.Time) (map[string]struct{}, error)
}

type candidateRepository struct {
	conn *postgres.Connection
}

func NewCandidateRepository(conn *postgres.Connection) CandidateRepository {
	return &candidateRepository{
		conn: conn,
	}
}

func (r *candidateRepository) Save(candidate *domain.KeywordCandidate) error {
	query := squirrel.StatementBuilder.
		Insert("keyword_candidates").
		Columns(
			"id", "tenant_id", "account_id", "search_term", "campaign_id", "campaign_name",
			"ad_group_id", "impressions", "clicks", "cost_micros", "conversions", "reason",
			"explanation", "detected_at",
		).
		Values(
			candidate.ID,
			candidate.TenantID,
			candidate.AccountID,
			candidate.SearchTerm,
			candidate.CampaignID,
			candidate.CampaignName,
			candidate.AdGroupID,
			candidate.Impressions,
			candidate.Clicks,
			candidate.CostMicros,
			candidate.Conversions,
			candidate.Reason,
			candidate.Explanation,
			candidate.DetectedAt,
		).
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

func (r *candidateRepository) GetByID(candidateID string) (*domain.KeywordCandidate, error) {
	candidateSQL, candidateArgs, err := squirrel.
		Select("k.id, k.tenant_id, k.account_id, k.search_term, k.campaign_id, k.campaign_name, k.ad_group_id, k.impressions, k.clicks, k.cost_micros, k.conversions, k.reason, k.explanation, k.detected_at").
		From(candidatesTable).
		Where(squirrel.Eq{"k.id": candidateID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(candidateSQL, candidateArgs...)

	candidate := &domain.KeywordCandidate{}
	if err := row.Scan(
		&candidate.ID,
		&candidate.TenantID,
		&candidate.AccountID,
		&candidate.SearchTerm,
		&candidate.CampaignID,
		&candidate.CampaignName,
		&candidate.AdGroupID,
		&candidate.Impressions,
		&candidate.Clicks,
		&candidate.CostMicros,
		&candidate.Conversions,
		&candidate.Reason,
		&candidate.Explanation,
		&candidate.DetectedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return candidate, nil
}

// HasUndecidedRequest verifica se já existe uma solicitação PENDING para um
// candidato equivalente (mesmo tenant, conta, termo e campanha). A
// re-detecção nunca cria uma solicitação viva duplicada enquanto outra
// estiver em aberto.
func (r *candidateRepository) HasUndecidedRequest(tenantID, accountID, searchTerm, campaignID string) (bool, error) {
	existsSQL, existsArgs, err := squirrel.
		Select("1").
		From(candidatesTable).
		Join("approval_requests ar ON ar.candidate_id = k.id").
		Where(squirrel.Eq{
			"k.tenant_id":   tenantID,
			"k.account_id":  accountID,
			"k.search_term": searchTerm,
			"k.campaign_id": campaignID,
			"ar.status":     domain.ApprovalStatusPending,
		}).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, err
	}

	var one int
	if err := r.conn.QueryRow(existsSQL, existsArgs...).Scan(&one); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// RecentlyIgnoredTerms retorna os termos de pesquisa cujo pedido foi
// rejeitado depois do instante dado, para que a detecção não reabra um termo
// que um humano acabou de descartar.
func (r *candidateRepository) RecentlyIgnoredTerms(tenantID string, since time.Time) (map[string]struct{}, error) {
	ignoredSQL, ignoredArgs, err := squirrel.
		Select("k.search_term").
		From(candidatesTable).
		Join("approval_requests ar ON ar.candidate_id = k.id").
		Where(squirrel.Eq{
			"k.tenant_id": tenantID,
			"ar.status":   domain.ApprovalStatusRejected,
		}).
		Where(squirrel.Gt{"ar.decided_at": since}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(ignoredSQL, ignoredArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return make(map[string]struct{}), nil
		}
		return nil, err
	}
	defer rows.Close()

	ignored := make(map[string]struct{})

	for rows.Next() {
		var term string
		if err := rows.Scan(&term); err != nil {
			return nil, err
		}
		ignored[term] = struct{}{}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return ignored, nil
}
