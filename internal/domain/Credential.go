package domain

import (
	"time"
)

type CredentialProvider string

const (
	CredentialProviderGoogleAds CredentialProvider = "google_ads"
	CredentialProviderSlack     CredentialProvider = "slack"
)

// EncryptedCredential é uma credencial de provedor externo selada com
// criptografia de envelope: o segredo é cifrado com uma DEK aleatória e a
// DEK é cifrada com a KEK mestre do processo. O texto plano nunca é
// persistido nem logado. Existe no máximo uma credencial ativa por
// (tenant, provider); rotação substitui os dois ciphertexts atomicamente.
type EncryptedCredential struct {
	ID               string             `json:"id"`
	TenantID         string             `json:"tenant_id"`
	Provider         CredentialProvider `json:"provider"`
	SecretCiphertext []byte             `json:"-"`
	DEKCiphertext    []byte             `json:"-"`
	Scopes           []string           `json:"scopes"`
	ExpiresAt        *time.Time         `json:"expires_at"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

func (c *EncryptedCredential) Expired(now time.Time) bool {
	return c.ExpiresAt != nil && now.After(*c.ExpiresAt)
}
