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

const credentialsTable = "encrypted_credentials c"

type CredentialRepository interface {
	GetActiveCredential(tenantID string, provider domain.CredentialProvider) (*domain.EncryptedCredential, error)
	SaveOrReplace(cred *domain.EncryptedCredential) error
}

type credentialRepository struct {
	conn *postgres.Connection
}

func NewCredentialRepository(conn *postgres.Connection) CredentialRepository {
	return &credentialRepository{
		conn: conn,
	}
}

// GetActiveCredential busca a credencial ativa do par (tenant, provider).
// Existe no máximo uma; retorna nil quando o tenant ainda não completou o
// OAuth do provedor.
func (r *credentialRepository) GetActiveCredential(tenantID string, provider domain.CredentialProvider) (*domain.EncryptedCredential, error) {
	credSQL, credArgs, err := squirrel.
		Select("c.id, c.tenant_id, c.provider, c.secret_ciphertext, c.dek_ciphertext, c.scopes, c.expires_at, c.created_at, c.updated_at").
		From(credentialsTable).
		Where(squirrel.Eq{"c.tenant_id": tenantID, "c.provider": provider}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(credSQL, credArgs...)

	cred := &domain.EncryptedCredential{}
	var scopes pq.StringArray

	if err := row.Scan(
		&cred.ID,
		&cred.TenantID,
		&cred.Provider,
		&cred.SecretCiphertext,
		&cred.DEKCiphertext,
		&scopes,
		&cred.ExpiresAt,
		&cred.CreatedAt,
		&cred.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	cred.Scopes = scopes

	return cred, nil
}

// SaveOrReplace insere a credencial ou, na rotação, substitui os dois
// ciphertexts (segredo e DEK) atomicamente em um único UPDATE, nunca um
// campo de cada vez.
func (r *credentialRepository) SaveOrReplace(cred *domain.EncryptedCredential) error {
	query := squirrel.StatementBuilder.
		Insert("encrypted_credentials").
		Columns("id", "tenant_id", "provider", "secret_ciphertext", "dek_ciphertext", "scopes", "expires_at", "created_at", "updated_at").
		Values(
			cred.ID,
			cred.TenantID,
			cred.Provider,
			cred.SecretCiphertext,
			cred.DEKCiphertext,
			pq.StringArray(cred.Scopes),
			cred.ExpiresAt,
			cred.CreatedAt,
			time.Now().UTC(),
		).
		Suffix(`
			ON CONFLICT (tenant_id, provider) DO UPDATE SET
				secret_ciphertext = EXCLUDED.secret_ciphertext,
				dek_ciphertext = EXCLUDED.dek_ciphertext,
				scopes = EXCLUDED.scopes,
				expires_at = EXCLUDED.expires_at,
				updated_at = EXCLUDED.updated_at
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
