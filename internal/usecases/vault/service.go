package vault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/scrypt"

	"github.com/adscope/keyword-guardian-api/internal/config"
	"github.com/adscope/keyword-guardian-api/internal/domain"
)

const kekSize = 32 // AES-256

// Sealer sela e abre credenciais de provedores externos usando criptografia
// de envelope: cada segredo é cifrado com uma DEK aleatória (AES-256-GCM) e
// a DEK é cifrada com a KEK mestre do processo. Um comprometimento do banco
// de dados sozinho não revela texto plano.
type Sealer interface {
	Store(tenantID string, provider domain.CredentialProvider, plaintext []byte) (*domain.EncryptedCredential, error)
	Open(cred *domain.EncryptedCredential) ([]byte, error)
}

type Service struct {
	kek []byte
}

// NewService monta o cofre a partir da configuração. A KEK pode vir em
// base64 (32 bytes) ou ser derivada de uma passphrase via scrypt.
func NewService(cfg *config.Config) (*Service, error) {
	kek, err := masterKey(cfg.Vault)
	if err != nil {
		return nil, err
	}

	return &Service{kek: kek}, nil
}

func masterKey(cfg config.Vault) ([]byte, error) {
	if cfg.MasterKey != "" {
		key, err := base64.StdEncoding.DecodeString(cfg.MasterKey)
		if err != nil {
			return nil, NewVaultError(ErrInvalidMasterKey, "", "", "VAULT_MASTER_KEY não é base64 válido")
		}

		if len(key) != kekSize {
			return nil, NewVaultError(ErrInvalidMasterKey, "", "", "VAULT_MASTER_KEY deve ter 32 bytes")
		}

		return key, nil
	}

	if cfg.MasterPassphrase != "" {
		key, err := scrypt.Key([]byte(cfg.MasterPassphrase), []byte(cfg.MasterKeySalt), 1<<15, 8, 1, kekSize)
		if err != nil {
			return nil, NewVaultError(ErrInvalidMasterKey, "", "", err.Error())
		}

		return key, nil
	}

	return nil, ErrMissingMasterKey
}

// Store sela o segredo do tenant. Cada chamada gera uma DEK e nonces novos,
// então duas chamadas com o mesmo texto plano produzem ciphertexts
// diferentes: propriedade exigida, não detalhe de implementação.
func (s *Service) Store(tenantID string, provider domain.CredentialProvider, plaintext []byte) (*domain.EncryptedCredential, error) {
	if len(plaintext) == 0 {
		return nil, NewVaultError(ErrEmptySecret, tenantID, string(provider), "")
	}

	dek := make([]byte, kekSize)
	if _, err := io.ReadFull(rand.Reader, dek); err != nil {
		return nil, NewVaultError(ErrEncryption, tenantID, string(provider), err.Error())
	}

	secretCiphertext, err := seal(dek, plaintext)
	if err != nil {
		return nil, NewVaultError(ErrEncryption, tenantID, string(provider), err.Error())
	}

	dekCiphertext, err := seal(s.kek, dek)
	if err != nil {
		return nil, NewVaultError(ErrEncryption, tenantID, string(provider), err.Error())
	}

	now := time.Now().UTC()
	return &domain.EncryptedCredential{
		ID:               uuid.NewString(),
		TenantID:         tenantID,
		Provider:         provider,
		SecretCiphertext: secretCiphertext,
		DEKCiphertext:    dekCiphertext,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// Open decifra a credencial. Qualquer falha de autenticação (KEK errada ou
// rotacionada, ciphertext corrompido, adulteração) resulta em ErrDecryption;
// nunca retorna lixo silenciosamente.
func (s *Service) Open(cred *domain.EncryptedCredential) ([]byte, error) {
	dek, err := open(s.kek, cred.DEKCiphertext)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"tenant_id": cred.TenantID,
			"provider":  cred.Provider,
		}).Error("Falha ao decifrar a DEK: KEK errada ou ciphertext adulterado")
		return nil, NewVaultError(ErrDecryption, cred.TenantID, string(cred.Provider), "falha na camada da DEK")
	}

	plaintext, err := open(dek, cred.SecretCiphertext)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"tenant_id": cred.TenantID,
			"provider":  cred.Provider,
		}).Error("Falha ao decifrar o segredo: ciphertext adulterado")
		return nil, NewVaultError(ErrDecryption, cred.TenantID, string(cred.Provider), "falha na camada do segredo")
	}

	return plaintext, nil
}

// seal cifra com AES-256-GCM e prefixa o nonce ao ciphertext.
func seal(key, plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

func open(key, sealed []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	if len(sealed) < gcm.NonceSize() {
		return nil, ErrDecryption
	}

	nonce, ciphertext := sealed[:gcm.NonceSize()], sealed[gcm.NonceSize():]

	return gcm.Open(nil, nonce, ciphertext, nil)
}
