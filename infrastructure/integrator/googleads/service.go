package googleads

import (
	"context"
	"strconv"

	"github.com/sirupsen/logrus"

	adsdomain "github.com/adscope/keyword-guardian-api/infrastructure/integrator/googleads/domain"
	"github.com/adscope/keyword-guardian-api/infrastructure/integrator/googleads/googleadsclient"
	"github.com/adscope/keyword-guardian-api/internal/config"
	"github.com/adscope/keyword-guardian-api/internal/domain"
)

// GoogleAdsIntegrator é o cliente da plataforma de anúncios consumido pelo
// motor de workflow. O token de acesso chega por chamada, decifrado do
// cofre no momento do uso; o integrador nunca retém texto plano entre
// chamadas.
type GoogleAdsIntegrator interface {
	GetSearchTerms(ctx context.Context, accessToken, accountID string, window domain.MetricsWindow) ([]*domain.SearchTermMetrics, error)
	ApplyExclusion(ctx context.Context, accessToken, accountID string, payload *domain.ActionPayload, idempotencyKey string) (*domain.ExecutionResult, error)
	PauseKeyword(ctx context.Context, accessToken, accountID string, payload *domain.ActionPayload) (*domain.ExecutionResult, error)
}

type Integrator struct {
	cfg    *config.Config
	Client googleadsclient.Client
}

func New(cfg *config.Config, client googleadsclient.Client) *Integrator {
	return &Integrator{
		cfg:    cfg,
		Client: client,
	}
}

// GetSearchTerms busca as métricas de termos de pesquisa da janela
// informada.
func (s *Integrator) GetSearchTerms(ctx context.Context, accessToken, accountID string, window domain.MetricsWindow) ([]*domain.SearchTermMetrics, error) {
	rows, err := s.Client.SearchStream(ctx, accessToken, accountID, googleadsclient.SearchTermQuery(window))
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("googleads: falha ao buscar termos de pesquisa")
		return nil, err
	}

	terms := make([]*domain.SearchTermMetrics, 0, len(rows))
	for _, row := range rows {
		terms = append(terms, factorySearchTermMetrics(row))
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"terms":      len(terms),
	}).Debug("googleads: termos de pesquisa recuperados")

	return terms, nil
}

// ApplyExclusion adiciona a palavra-chave negativa na campanha. A chamada é
// idempotente via check-before-mutate: se o termo já consta como negativo
// na campanha, uma repetição com a mesma chave não duplica o efeito.
func (s *Integrator) ApplyExclusion(ctx context.Context, accessToken, accountID string, payload *domain.ActionPayload, idempotencyKey string) (*domain.ExecutionResult, error) {
	existing, err := s.Client.ListNegativeKeywords(ctx, accessToken, accountID, payload.CampaignID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id":  accountID,
			"campaign_id": payload.CampaignID,
			"error":       err.Error(),
		}).Error("googleads: falha ao listar palavras-chave negativas existentes")
		return nil, err
	}

	if _, ok := existing[payload.KeywordText]; ok {
		logrus.WithFields(logrus.Fields{
			"account_id":      accountID,
			"campaign_id":     payload.CampaignID,
			"idempotency_key": idempotencyKey,
		}).Info("googleads: palavra-chave negativa já existente, efeito não duplicado")

		return &domain.ExecutionResult{
			Success:        true,
			IdempotencyKey: idempotencyKey,
			Detail:         "negative keyword already present",
		}, nil
	}

	resp, err := s.Client.MutateNegativeKeyword(ctx, accessToken, accountID, adsdomain.NegativeCriterion{
		CampaignID:  payload.CampaignID,
		KeywordText: payload.KeywordText,
		MatchType:   payload.MatchType,
	})
	if err != nil {
		return nil, err
	}

	detail := ""
	if len(resp.Results) > 0 {
		detail = resp.Results[0].ResourceName
	}

	return &domain.ExecutionResult{
		Success:        true,
		IdempotencyKey: idempotencyKey,
		Detail:         detail,
	}, nil
}

// PauseKeyword pausa o critério de palavra-chave no grupo de anúncios.
func (s *Integrator) PauseKeyword(ctx context.Context, accessToken, accountID string, payload *domain.ActionPayload) (*domain.ExecutionResult, error) {
	if err := s.Client.PauseAdGroupKeyword(ctx, accessToken, accountID, payload.AdGroupID, payload.KeywordText); err != nil {
		return nil, err
	}

	return &domain.ExecutionResult{Success: true}, nil
}

func factorySearchTermMetrics(row adsdomain.SearchTermRow) *domain.SearchTermMetrics {
	impressions, _ := strconv.Atoi(row.Metrics.Impressions)
	clicks, _ := strconv.Atoi(row.Metrics.Clicks)
	costMicros, _ := strconv.ParseInt(row.Metrics.CostMicros, 10, 64)

	return &domain.SearchTermMetrics{
		SearchTerm:   row.SearchTermView.SearchTerm,
		CampaignID:   row.Campaign.ID,
		CampaignName: row.Campaign.Name,
		AdGroupID:    row.AdGroup.ID,
		Impressions:  impressions,
		Clicks:       clicks,
		CostMicros:   costMicros,
		Conversions:  row.Metrics.Conversions,
	}
}
