package domain

import (
	"time"
)

// AuditActorSystem é o ator usado em transições disparadas pelo próprio
// sistema (detecção, varredura de expiração).
const AuditActorSystem = "system"

type AuditAction string

const (
	AuditActionCandidateDetected AuditAction = "CANDIDATE_DETECTED"
	AuditActionRequestCreated    AuditAction = "REQUEST_CREATED"
	AuditActionRequestApproved   AuditAction = "REQUEST_APPROVED"
	AuditActionRequestRejected   AuditAction = "REQUEST_REJECTED"
	AuditActionRequestExpired    AuditAction = "REQUEST_EXPIRED"
	AuditActionRequestExecuted   AuditAction = "REQUEST_EXECUTED"
	AuditActionExecutionFailed   AuditAction = "EXECUTION_FAILED"
	AuditActionCredentialStored  AuditAction = "CREDENTIAL_STORED"
	AuditActionCredentialRotated AuditAction = "CREDENTIAL_ROTATED"
)

// AuditEntry é o registro append-only de cada transição de estado. Nunca é
// alterado nem removido: o log de auditoria sozinho deve permitir
// reconstruir o histórico do sistema.
type AuditEntry struct {
	ID         string      `json:"id"`
	TenantID   string      `json:"tenant_id"`
	Actor      string      `json:"actor"`
	Action     AuditAction `json:"action"`
	ResourceID string      `json:"resource_id"`
	Detail     []byte      `json:"detail"`
	CreatedAt  time.Time   `json:"created_at"`
}
