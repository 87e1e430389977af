package vault

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adscope/keyword-guardian-api/internal/config"
	"github.com/adscope/keyword-guardian-api/internal/domain"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	key := bytes.Repeat([]byte{0x42}, 32)
	svc, err := NewService(&config.Config{
		Vault: config.Vault{MasterKey: base64.StdEncoding.EncodeToString(key)},
	})
	require.NoError(t, err)

	return svc
}

func TestService_StoreAndOpen(t *testing.T) {
	svc := newTestService(t)

	secret := []byte("ya29.a0AfH6SMB-refresh-token")

	cred, err := svc.Store("tenant-1", domain.CredentialProviderGoogleAds, secret)
	require.NoError(t, err)

	assert.NotEmpty(t, cred.ID)
	assert.Equal(t, "tenant-1", cred.TenantID)
	assert.NotContains(t, string(cred.SecretCiphertext), string(secret))
	assert.NotContains(t, string(cred.DEKCiphertext), string(secret))

	plaintext, err := svc.Open(cred)
	require.NoError(t, err)
	assert.Equal(t, secret, plaintext)
}

func TestService_StoreProducesFreshCiphertexts(t *testing.T) {
	svc := newTestService(t)

	secret := []byte("mesmo segredo duas vezes")

	first, err := svc.Store("tenant-1", domain.CredentialProviderSlack, secret)
	require.NoError(t, err)

	second, err := svc.Store("tenant-1", domain.CredentialProviderSlack, secret)
	require.NoError(t, err)

	// DEK e nonce novos a cada chamada: os pares de ciphertext nunca repetem
	assert.NotEqual(t, first.SecretCiphertext, second.SecretCiphertext)
	assert.NotEqual(t, first.DEKCiphertext, second.DEKCiphertext)
}

func TestService_OpenRejectsTamperedCiphertext(t *testing.T) {
	svc := newTestService(t)

	cred, err := svc.Store("tenant-1", domain.CredentialProviderGoogleAds, []byte("segredo"))
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(c *domain.EncryptedCredential)
	}{
		{
			name: "ciphertext do segredo adulterado",
			mutate: func(c *domain.EncryptedCredential) {
				c.SecretCiphertext[len(c.SecretCiphertext)-1] ^= 0xFF
			},
		},
		{
			name: "ciphertext da DEK adulterado",
			mutate: func(c *domain.EncryptedCredential) {
				c.DEKCiphertext[len(c.DEKCiphertext)-1] ^= 0xFF
			},
		},
		{
			name: "ciphertext truncado",
			mutate: func(c *domain.EncryptedCredential) {
				c.SecretCiphertext = c.SecretCiphertext[:4]
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			copied := *cred
			copied.SecretCiphertext = append([]byte(nil), cred.SecretCiphertext...)
			copied.DEKCiphertext = append([]byte(nil), cred.DEKCiphertext...)

			tt.mutate(&copied)

			_, err := svc.Open(&copied)
			require.Error(t, err)
			assert.True(t, IsDecryptionError(err))
		})
	}
}

func TestService_OpenFailsWithRotatedKEK(t *testing.T) {
	svc := newTestService(t)

	cred, err := svc.Store("tenant-1", domain.CredentialProviderGoogleAds, []byte("segredo"))
	require.NoError(t, err)

	otherKey := bytes.Repeat([]byte{0x99}, 32)
	rotated, err := NewService(&config.Config{
		Vault: config.Vault{MasterKey: base64.StdEncoding.EncodeToString(otherKey)},
	})
	require.NoError(t, err)

	// Credenciais seladas sob a KEK antiga falham de forma visível
	_, err = rotated.Open(cred)
	require.Error(t, err)
	assert.True(t, IsDecryptionError(err))
}

func TestService_PassphraseDerivedKey(t *testing.T) {
	cfg := &config.Config{
		Vault: config.Vault{
			MasterPassphrase: "correto cavalo bateria grampo",
			MasterKeySalt:    "keyword-guardian",
		},
	}

	svc, err := NewService(cfg)
	require.NoError(t, err)

	cred, err := svc.Store("tenant-1", domain.CredentialProviderGoogleAds, []byte("segredo"))
	require.NoError(t, err)

	// Mesma passphrase e salt derivam a mesma KEK em outro processo
	svc2, err := NewService(cfg)
	require.NoError(t, err)

	plaintext, err := svc2.Open(cred)
	require.NoError(t, err)
	assert.Equal(t, []byte("segredo"), plaintext)
}

func TestNewService_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Vault
	}{
		{name: "sem chave configurada", cfg: config.Vault{}},
		{name: "base64 inválido", cfg: config.Vault{MasterKey: "%%%"}},
		{name: "tamanho errado", cfg: config.Vault{MasterKey: base64.StdEncoding.EncodeToString([]byte("curta"))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewService(&config.Config{Vault: tt.cfg})
			require.Error(t, err)
		})
	}
}

func TestService_StoreRejectsEmptySecret(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Store("tenant-1", domain.CredentialProviderGoogleAds, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptySecret)
}
