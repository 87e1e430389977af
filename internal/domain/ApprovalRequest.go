package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

type ApprovalStatus string

const (
	ApprovalStatusPending         ApprovalStatus = "PENDING"
	ApprovalStatusApproved        ApprovalStatus = "APPROVED"
	ApprovalStatusRejected        ApprovalStatus = "REJECTED"
	ApprovalStatusExpired         ApprovalStatus = "EXPIRED"
	ApprovalStatusExecuted        ApprovalStatus = "EXECUTED"
	ApprovalStatusExecutionFailed ApprovalStatus = "EXECUTION_FAILED"
)

// Terminal indica se o status encerra a máquina de estados. PENDING é o
// único estado não terminal; APPROVED é transitório dentro da própria
// operação de decisão.
func (s ApprovalStatus) Terminal() bool {
	switch s {
	case ApprovalStatusRejected, ApprovalStatusExpired, ApprovalStatusExecuted, ApprovalStatusExecutionFailed:
		return true
	}
	return false
}

type ActionType string

const (
	ActionTypeAddNegativeKeyword ActionType = "add_negative_keyword"
	ActionTypePauseKeyword       ActionType = "pause_keyword"
)

// ActionPayload é a variante etiquetada que descreve a mutação a executar
// na conta externa. O formato é determinado pelo ActionType e validado na
// criação da solicitação, não no momento da execução.
type ActionPayload struct {
	KeywordText string `json:"keyword_text"`
	CampaignID  string `json:"campaign_id"`
	AdGroupID   string `json:"ad_group_id,omitempty"`
	MatchType   string `json:"match_type,omitempty"`
}

// Validate verifica o payload contra o tipo de ação declarado.
func (p *ActionPayload) Validate(actionType ActionType) error {
	if p.KeywordText == "" {
		return errors.New("keyword_text é obrigatório")
	}

	switch actionType {
	case ActionTypeAddNegativeKeyword:
		if p.CampaignID == "" {
			return errors.New("campaign_id é obrigatório para add_negative_keyword")
		}
	case ActionTypePauseKeyword:
		if p.AdGroupID == "" {
			return errors.New("ad_group_id é obrigatório para pause_keyword")
		}
	default:
		return fmt.Errorf("tipo de ação desconhecido: %s", actionType)
	}

	return nil
}

func (p *ActionPayload) Serialize() ([]byte, error) {
	return json.Marshal(p)
}

func DeserializeActionPayload(raw []byte) (*ActionPayload, error) {
	payload := &ActionPayload{}
	if err := json.Unmarshal(raw, payload); err != nil {
		return nil, fmt.Errorf("payload de ação inválido: %w", err)
	}
	return payload, nil
}

// ExecutionResult registra o desfecho da mutação externa.
type ExecutionResult struct {
	Success        bool   `json:"success"`
	IdempotencyKey string `json:"idempotency_key"`
	Detail         string `json:"detail,omitempty"`
}

// ApprovalRequest é a unidade de workflow: liga um candidato detectado à
// decisão humana e à execução exatamente-uma-vez da ação aprovada.
type ApprovalRequest struct {
	ID             string           `json:"id"`
	TenantID       string           `json:"tenant_id"`
	CandidateID    string           `json:"candidate_id"`
	ActionType     ActionType       `json:"action_type"`
	ActionPayload  []byte           `json:"-"`
	Status         ApprovalStatus   `json:"status"`
	SlackMessageTS *string          `json:"slack_message_ts"`
	CreatedAt      time.Time        `json:"created_at"`
	ExpiresAt      time.Time        `json:"expires_at"`
	DecidedAt      *time.Time       `json:"decided_at"`
	DecidedBy      *string          `json:"decided_by"`
	Comment        *string          `json:"comment"`
	ExecutedAt     *time.Time       `json:"executed_at"`
	Result         *ExecutionResult `json:"result"`
}

// ExpiredAt informa se a solicitação já passou do prazo no instante dado.
// Uma decisão só é válida estritamente antes de expires_at.
func (r *ApprovalRequest) ExpiredAt(now time.Time) bool {
	return now.After(r.ExpiresAt)
}

// ApprovalStatusChange são os campos gravados junto com uma transição de
// status. Só é aplicada se o compare-and-set do status commitar.
type ApprovalStatusChange struct {
	DecidedAt  *time.Time       `json:"decided_at"`
	DecidedBy  *string          `json:"decided_by"`
	Comment    *string          `json:"comment"`
	ExecutedAt *time.Time       `json:"executed_at"`
	Result     *ExecutionResult `json:"result"`
}
