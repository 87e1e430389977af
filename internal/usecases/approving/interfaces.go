package approving

import (
	"context"
	"time"

	"github.com/adscope/keyword-guardian-api/internal/domain"
)

// Detector executa a detecção de termos ineficientes por tenant
type Detector interface {
	// Detect consulta as métricas da conta de anúncios do tenant, avalia os
	// limiares e abre solicitações de aprovação para os termos ineficientes
	Detect(ctx context.Context, tenantID string) (*DetectionSummary, error)
}

// Decider registra a decisão humana sobre uma solicitação pendente
type Decider interface {
	// Decide aprova ou rejeita uma solicitação pendente. Aprovação executa a
	// ação na conta externa exatamente uma vez
	Decide(ctx context.Context, requestID, actorID string, approved bool, comment string) (*domain.ApprovalRequest, error)
}

// Sweeper expira solicitações pendentes cujo prazo venceu
type Sweeper interface {
	// SweepExpirations marca como EXPIRED as pendências vencidas e retorna
	// quantas transicionaram nesta varredura
	SweepExpirations(ctx context.Context) (int, error)
}

// Approver é a interface completa do motor de workflow
type Approver interface {
	Detector
	Decider
	Sweeper

	// GetRequest retorna uma solicitação pelo ID
	GetRequest(requestID string) (*domain.ApprovalRequest, error)

	// ListRequests retorna as solicitações do tenant, opcionalmente filtradas por status
	ListRequests(tenantID string, status *domain.ApprovalStatus, limit uint64) ([]*domain.ApprovalRequest, error)

	// StoreCredential sela e persiste a credencial de um provedor externo do tenant
	StoreCredential(ctx context.Context, tenantID string, provider domain.CredentialProvider, secret []byte, scopes []string, expiresAt *time.Time) error

	// AuditTrail retorna o histórico de auditoria de um recurso
	AuditTrail(resourceID string) ([]*domain.AuditEntry, error)
}

// DetectionSummary resume uma execução de detecção
type DetectionSummary struct {
	TenantID  string `json:"tenant_id"`
	Evaluated int    `json:"evaluated"`
	Detected  int    `json:"detected"`
	Skipped   int    `json:"skipped"`
	Notified  int    `json:"notified"`
}
