package domain

import (
	"time"
)

type DetectionReason string

const (
	DetectionReasonZeroConversions DetectionReason = "ZERO_CONVERSIONS"
	DetectionReasonLowCTR          DetectionReason = "LOW_CTR"
	DetectionReasonHighSpend       DetectionReason = "HIGH_SPEND"
)

// KeywordCandidate é um termo de pesquisa detectado como ineficiente na
// janela de observação. Imutável após a criação: execuções posteriores de
// detecção criam novos candidatos em vez de alterar os existentes.
type KeywordCandidate struct {
	ID           string          `json:"id"`
	TenantID     string          `json:"tenant_id"`
	AccountID    string          `json:"account_id"`
	SearchTerm   string          `json:"search_term"`
	CampaignID   string          `json:"campaign_id"`
	CampaignName string          `json:"campaign_name"`
	AdGroupID    string          `json:"ad_group_id"`
	Impressions  int             `json:"impressions"`
	Clicks       int             `json:"clicks"`
	CostMicros   int64           `json:"cost_micros"`
	Conversions  float64         `json:"conversions"`
	Reason       DetectionReason `json:"reason"`
	Explanation  *string         `json:"explanation"`
	DetectedAt   time.Time       `json:"detected_at"`
}

// CTR calcula a taxa de cliques observada do candidato.
func (k *KeywordCandidate) CTR() float64 {
	if k.Impressions == 0 {
		return 0
	}
	return float64(k.Clicks) / float64(k.Impressions)
}

// SearchTermMetrics é uma linha de métricas retornada pela plataforma de
// anúncios para a janela consultada.
type SearchTermMetrics struct {
	SearchTerm   string  `json:"search_term"`
	CampaignID   string  `json:"campaign_id"`
	CampaignName string  `json:"campaign_name"`
	AdGroupID    string  `json:"ad_group_id"`
	Impressions  int     `json:"impressions"`
	Clicks       int     `json:"clicks"`
	CostMicros   int64   `json:"cost_micros"`
	Conversions  float64 `json:"conversions"`
}

// MetricsWindow é o intervalo de datas consultado na plataforma de anúncios.
type MetricsWindow struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}
