package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/adscope/keyword-guardian-api/infrastructure/database/postgres"
	"github.com/adscope/keyword-guardian-api/internal/domain"
)

const approvalsTable = "approval_requests ar"

type ApprovalRepository interface {
	Create(request *domain.ApprovalRequest) error
	GetByID(requestID string) (*domain.ApprovalRequest, error)
	UpdateStatusCAS(requestID string, from, to domain.ApprovalStatus, change *domain.ApprovalStatusChange) (bool, error)
	SetMessageTS(requestID, messageTS string) error
	ListExpiredPending(now time.Time) ([]*domain.ApprovalRequest, error)
	ListByTenant(tenantID string, status *domain.ApprovalStatus, limit uint64) ([]*domain.ApprovalRequest, error)
}

type approvalRepository struct {
	conn *postgres.Connection
}

func NewApprovalRepository(conn *postgres.Connection) ApprovalRepository {
	return &approvalRepository{
		conn: conn,
	}
}

const approvalColumns = "ar.id, ar.tenant_id, ar.candidate_id, ar.action_type, ar.action_payload, ar.status, ar.slack_message_ts, ar.created_at, ar.expires_at, ar.decided_at, ar.decided_by, ar.comment, ar.executed_at, ar.result"

func (r *approvalRepository) Create(request *domain.ApprovalRequest) error {
	query := squirrel.StatementBuilder.
		Insert("approval_requests").
		Columns(
			"id", "tenant_id", "candidate_id", "action_type", "action_payload",
			"status", "slack_message_ts", "created_at", "expires_at",
		).
		Values(
			request.ID,
			request.TenantID,
			request.CandidateID,
			request.ActionType,
			request.ActionPayload,
			request.Status,
			request.SlackMessageTS,
			request.CreatedAt,
			request.ExpiresAt,
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

func (r *approvalRepository) GetByID(requestID string) (*domain.ApprovalRequest, error) {
	requestSQL, requestArgs, err := squirrel.
		Select(approvalColumns).
		From(approvalsTable).
		Where(squirrel.Eq{"ar.id": requestID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(requestSQL, requestArgs...)

	request, err := deserializeApproval(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return request, nil
}

// UpdateStatusCAS aplica a transição de status com compare-and-set: o UPDATE
// só commita se o status da linha ainda for o estado anterior esperado no
// momento da escrita. Retorna false quando outro worker venceu a corrida:
// o perdedor nunca sobrescreve silenciosamente. Nenhum lock em processo
// basta porque os workers rodam em processos independentes.
func (r *approvalRepository) UpdateStatusCAS(requestID string, from, to domain.ApprovalStatus, change *domain.ApprovalStatusChange) (bool, error) {
	queryBuilder := squirrel.
		Update("approval_requests").
		Set("status", to).
		Where(squirrel.Eq{"id": requestID, "status": from}).
		PlaceholderFormat(squirrel.Dollar)

	if change != nil {
		if change.DecidedAt != nil {
			queryBuilder = queryBuilder.Set("decided_at", *change.DecidedAt)
		}

		if change.DecidedBy != nil {
			queryBuilder = queryBuilder.Set("decided_by", *change.DecidedBy)
		}

		if change.Comment != nil {
			queryBuilder = queryBuilder.Set("comment", *change.Comment)
		}

		if change.ExecutedAt != nil {
			queryBuilder = queryBuilder.Set("executed_at", *change.ExecutedAt)
		}

		if change.Result != nil {
			resultJSON, err := json.Marshal(change.Result)
			if err != nil {
				return false, fmt.Errorf("failed to serialize execution result: %w", err)
			}
			queryBuilder = queryBuilder.Set("result", resultJSON)
		}
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return false, fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return false, fmt.Errorf("failed to execute query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("error getting rows affected: %w", err)
	}

	return rowsAffected == 1, nil
}

func (r *approvalRepository) SetMessageTS(requestID, messageTS string) error {
	sqlQuery, args, err := squirrel.
		Update("approval_requests").
		Set("slack_message_ts", messageTS).
		Where(squirrel.Eq{"id": requestID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// ListExpiredPending retorna as solicitações PENDING cujo prazo já passou.
func (r *approvalRepository) ListExpiredPending(now time.Time) ([]*domain.ApprovalRequest, error) {
	requestsSQL, requestsArgs, err := squirrel.
		Select(approvalColumns).
		From(approvalsTable).
		Where(squirrel.Eq{"ar.status": domain.ApprovalStatusPending}).
		Where(squirrel.Lt{"ar.expires_at": now}).
		OrderBy("ar.expires_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	return r.queryApprovals(requestsSQL, requestsArgs)
}

func (r *approvalRepository) ListByTenant(tenantID string, status *domain.ApprovalStatus, limit uint64) ([]*domain.ApprovalRequest, error) {
	queryBuilder := squirrel.
		Select(approvalColumns).
		From(approvalsTable).
		Where(squirrel.Eq{"ar.tenant_id": tenantID}).
		OrderBy("ar.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if status != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"ar.status": *status})
	}

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(limit)
	}

	requestsSQL, requestsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	return r.queryApprovals(requestsSQL, requestsArgs)
}

func (r *approvalRepository) queryApprovals(requestsSQL string, requestsArgs []interface{}) ([]*domain.ApprovalRequest, error) {
	rows, err := r.conn.Query(requestsSQL, requestsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	requests := make([]*domain.ApprovalRequest, 0)

	for rows.Next() {
		request, err := deserializeApproval(rows)
		if err != nil {
			return nil, err
		}

		requests = append(requests, request)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return requests, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func deserializeApproval(row rowScanner) (*domain.ApprovalRequest, error) {
	request := &domain.ApprovalRequest{}
	var resultJSON []byte

	if err := row.Scan(
		&request.ID,
		&request.TenantID,
		&request.CandidateID,
		&request.ActionType,
		&request.ActionPayload,
		&request.Status,
		&request.SlackMessageTS,
		&request.CreatedAt,
		&request.ExpiresAt,
		&request.DecidedAt,
		&request.DecidedBy,
		&request.Comment,
		&request.ExecutedAt,
		&resultJSON,
	); err != nil {
		return nil, err
	}

	if len(resultJSON) > 0 {
		result := &domain.ExecutionResult{}
		if err := json.Unmarshal(resultJSON, result); err != nil {
			return nil, fmt.Errorf("failed to deserialize execution result: %w", err)
		}
		request.Result = result
	}

	return request, nil
}
