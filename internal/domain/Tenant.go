package domain

import (
	"time"
)

type TenantStatus string

const (
	TenantStatusActive   TenantStatus = "ACTIVE"
	TenantStatusInactive TenantStatus = "INACTIVE"
)

// Tenant representa um workspace (organização) atendido pela plataforma.
// Tenants nunca são removidos fisicamente, apenas desativados.
type Tenant struct {
	ID             string       `json:"id"`
	WorkspaceID    string       `json:"workspace_id"`
	Name           string       `json:"name"`
	AdsCustomerID  string       `json:"ads_customer_id"`
	SlackChannelID string       `json:"slack_channel_id"`
	Timezone       string       `json:"timezone"`
	Status         TenantStatus `json:"status"`
	CreatedAt      time.Time    `json:"created_at"`
}

func (t *Tenant) IsActive() bool {
	return t != nil && t.Status == TenantStatusActive
}

// ThresholdSettings é a política de detecção configurada por tenant.
// Sempre passada explicitamente para as operações de detecção e decisão,
// nunca lida de uma constante global: tenants diferentes podem ter
// políticas diferentes no mesmo processo.
type ThresholdSettings struct {
	TenantID            string  `json:"tenant_id"`
	MinCostMicros       int64   `json:"min_cost_micros"`
	MinClicks           int     `json:"min_clicks"`
	MinImpressions      int     `json:"min_impressions"`
	MaxConversions      float64 `json:"max_conversions"`
	MaxCTR              float64 `json:"max_ctr"`
	LookbackDays        int     `json:"lookback_days"`
	ApprovalTTLHours    int     `json:"approval_ttl_hours"`
	IgnoreCooldownHours int     `json:"ignore_cooldown_hours"`
}

// DefaultThresholdSettings retorna a política padrão usada quando o tenant
// ainda não configurou a sua.
func DefaultThresholdSettings(tenantID string) *ThresholdSettings {
	return &ThresholdSettings{
		TenantID:            tenantID,
		MinCostMicros:       10_000_000, // 10 unidades de moeda
		MinClicks:           5,
		MinImpressions:      100,
		MaxConversions:      0,
		MaxCTR:              0.01,
		LookbackDays:        7,
		ApprovalTTLHours:    24,
		IgnoreCooldownHours: 24,
	}
}

func (s *ThresholdSettings) ApprovalTTL() time.Duration {
	return time.Duration(s.ApprovalTTLHours) * time.Hour
}

func (s *ThresholdSettings) IgnoreCooldown() time.Duration {
	return time.Duration(s.IgnoreCooldownHours) * time.Hour
}
