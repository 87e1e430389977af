package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/adscope/keyword-guardian-api/infrastructure/database/postgres"
	"github.com/adscope/keyword-guardian-api/internal/domain"
)

const auditTable = "audit_entries ae"

type AuditRepository interface {
	Append(entry *domain.AuditEntry) error
	ListByResource(resourceID string) ([]*domain.AuditEntry, error)
}

type auditRepository struct {
	conn *postgres.Connection
}

func NewAuditRepository(conn *postgres.Connection) AuditRepository {
	return &auditRepository{
		conn: conn,
	}
}

// Append grava um registro de auditoria. A tabela é append-only: não existem
// operações de atualização ou remoção neste repositório.
func (r *auditRepository) Append(entry *domain.AuditEntry) error {
	query := squirrel.StatementBuilder.
		Insert("audit_entries").
		Columns("id", "tenant_id", "actor", "action", "resource_id", "detail", "created_at").
		Values(
			entry.ID,
			entry.TenantID,
			entry.Actor,
			entry.Action,
			entry.ResourceID,
			entry.Detail,
			entry.CreatedAt,
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

// ListByResource retorna as entradas de um recurso na ordem de commit das
// transições.
func (r *auditRepository) ListByResource(resourceID string) ([]*domain.AuditEntry, error) {
	entriesSQL, entriesArgs, err := squirrel.
		Select("ae.id, ae.tenant_id, ae.actor, ae.action, ae.resource_id, ae.detail, ae.created_at").
		From(auditTable).
		Where(squirrel.Eq{"ae.resource_id": resourceID}).
		OrderBy("ae.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(entriesSQL, entriesArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	entries := make([]*domain.AuditEntry, 0)

	for rows.Next() {
		entry := &domain.AuditEntry{}
		if err := rows.Scan(
			&entry.ID,
			&entry.TenantID,
			&entry.Actor,
			&entry.Action,
			&entry.ResourceID,
			&entry.Detail,
			&entry.CreatedAt,
		); err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return entries, nil
}
