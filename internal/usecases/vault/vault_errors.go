package vault

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto do cofre de credenciais
var (
	// Erros de configuração da chave mestre
	ErrMissingMasterKey = errors.New("chave mestre do cofre não configurada")
	ErrInvalidMasterKey = errors.New("chave mestre do cofre inválida")

	// Erros de operação
	ErrEncryption  = errors.New("erro ao cifrar credencial")
	ErrDecryption  = errors.New("falha de integridade ao decifrar credencial")
	ErrEmptySecret = errors.New("segredo vazio não pode ser armazenado")
)

// VaultError é um erro com contexto adicional para o cofre. Uma falha de
// decifragem (KEK errada ou rotacionada, ciphertext corrompido, adulteração)
// é uma condição visível ao operador e nunca deve ser engolida.
type VaultError struct {
	Err      error  // Erro base
	TenantID string // Tenant envolvido (quando aplicável)
	Provider string // Provedor envolvido (quando aplicável)
	Details  string // Detalhes adicionais
}

// Error implementa a interface error
func (e *VaultError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *VaultError) Unwrap() error {
	return e.Err
}

// NewVaultError cria um novo VaultError
func NewVaultError(baseErr error, tenantID, provider, details string) *VaultError {
	return &VaultError{
		Err:      baseErr,
		TenantID: tenantID,
		Provider: provider,
		Details:  details,
	}
}

// IsDecryptionError verifica se o erro é uma falha de integridade do cofre
func IsDecryptionError(err error) bool {
	return errors.Is(err, ErrDecryption)
}
