package googleadsclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	adsdomain "github.com/adscope/keyword-guardian-api/infrastructure/integrator/googleads/domain"
	"github.com/adscope/keyword-guardian-api/internal/config"
	"github.com/adscope/keyword-guardian-api/internal/domain"
)

type Client interface {
	SearchStream(ctx context.Context, accessToken, customerID, query string) ([]adsdomain.SearchTermRow, error)
	MutateNegativeKeyword(ctx context.Context, accessToken, customerID string, criterion adsdomain.NegativeCriterion) (*adsdomain.MutateResponse, error)
	ListNegativeKeywords(ctx context.Context, accessToken, customerID, campaignID string) (map[string]struct{}, error)
	PauseAdGroupKeyword(ctx context.Context, accessToken, customerID, adGroupID, keywordText string) error
}

type GoogleAdsClient struct {
	httpClient *http.Client
	cfg        *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &GoogleAdsClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		cfg: cfg,
	}
}

// SearchStream executa uma consulta GAQL na conta informada. O access token
// vem decifrado do cofre no momento do uso e não é retido pelo cliente.
func (c *GoogleAdsClient) SearchStream(ctx context.Context, accessToken, customerID, query string) ([]adsdomain.SearchTermRow, error) {
	endpoint := fmt.Sprintf("%s/customers/%s/googleAds:search", c.cfg.GoogleAds.URL, customerID)

	payload, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return nil, err
	}

	body, err := c.doRequest(ctx, http.MethodPost, endpoint, accessToken, payload)
	if err != nil {
		return nil, err
	}

	var response adsdomain.SearchStreamResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON da resposta do Google Ads")
		return nil, err
	}

	return response.Results, nil
}

// MutateNegativeKeyword adiciona a palavra-chave negativa na campanha.
func (c *GoogleAdsClient) MutateNegativeKeyword(ctx context.Context, accessToken, customerID string, criterion adsdomain.NegativeCriterion) (*adsdomain.MutateResponse, error) {
	endpoint := fmt.Sprintf("%s/customers/%s/campaignCriteria:mutate", c.cfg.GoogleAds.URL, customerID)

	matchType := criterion.MatchType
	if matchType == "" {
		matchType = "EXACT"
	}

	payload, err := json.Marshal(map[string]interface{}{
		"operations": []map[string]interface{}{
			{
				"create": map[string]interface{}{
					"campaign": fmt.Sprintf("customers/%s/campaigns/%s", customerID, criterion.CampaignID),
					"negative": true,
					"keyword": map[string]string{
						"text":      criterion.KeywordText,
						"matchType": matchType,
					},
				},
			},
		},
	})
	if err != nil {
		return nil, err
	}

	body, err := c.doRequest(ctx, http.MethodPost, endpoint, accessToken, payload)
	if err != nil {
		return nil, err
	}

	var response adsdomain.MutateResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON da resposta de mutação")
		return nil, err
	}

	return &response, nil
}

// ListNegativeKeywords retorna os textos das palavras-chave negativas já
// presentes na campanha, para o check-before-mutate da idempotência.
func (c *GoogleAdsClient) ListNegativeKeywords(ctx context.Context, accessToken, customerID, campaignID string) (map[string]struct{}, error) {
	query := fmt.Sprintf(`
		SELECT campaign_criterion.keyword.text
		FROM campaign_criterion
		WHERE campaign_criterion.negative = TRUE
		AND campaign.id = %s`, campaignID)

	endpoint := fmt.Sprintf("%s/customers/%s/googleAds:search", c.cfg.GoogleAds.URL, customerID)

	payload, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return nil, err
	}

	body, err := c.doRequest(ctx, http.MethodPost, endpoint, accessToken, payload)
	if err != nil {
		return nil, err
	}

	var response struct {
		Results []struct {
			CampaignCriterion struct {
				Keyword struct {
					Text string `json:"text"`
				} `json:"keyword"`
			} `json:"campaignCriterion"`
		} `json:"results"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, err
	}

	keywords := make(map[string]struct{}, len(response.Results))
	for _, result := range response.Results {
		keywords[result.CampaignCriterion.Keyword.Text] = struct{}{}
	}

	return keywords, nil
}

// PauseAdGroupKeyword pausa o critério de palavra-chave do grupo de anúncios.
func (c *GoogleAdsClient) PauseAdGroupKeyword(ctx context.Context, accessToken, customerID, adGroupID, keywordText string) error {
	query := fmt.Sprintf(`
		SELECT ad_group_criterion.resource_name
		FROM ad_group_criterion
		WHERE ad_group.id = %s
		AND ad_group_criterion.keyword.text = '%s'`, adGroupID, keywordText)

	endpoint := fmt.Sprintf("%s/customers/%s/googleAds:search", c.cfg.GoogleAds.URL, customerID)

	payload, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return err
	}

	body, err := c.doRequest(ctx, http.MethodPost, endpoint, accessToken, payload)
	if err != nil {
		return err
	}

	var response struct {
		Results []struct {
			AdGroupCriterion struct {
				ResourceName string `json:"resourceName"`
			} `json:"adGroupCriterion"`
		} `json:"results"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return err
	}

	if len(response.Results) == 0 {
		return fmt.Errorf("critério não encontrado para o termo %q no grupo %s", keywordText, adGroupID)
	}

	mutateEndpoint := fmt.Sprintf("%s/customers/%s/adGroupCriteria:mutate", c.cfg.GoogleAds.URL, customerID)

	mutatePayload, err := json.Marshal(map[string]interface{}{
		"operations": []map[string]interface{}{
			{
				"update": map[string]interface{}{
					"resourceName": response.Results[0].AdGroupCriterion.ResourceName,
					"status":       "PAUSED",
				},
				"updateMask": "status",
			},
		},
	})
	if err != nil {
		return err
	}

	_, err = c.doRequest(ctx, http.MethodPost, mutateEndpoint, accessToken, mutatePayload)
	return err
}

func (c *GoogleAdsClient) doRequest(ctx context.Context, method, endpoint, accessToken string, payload []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewReader(payload))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("developer-token", c.cfg.GoogleAds.DeveloperToken)
	if c.cfg.GoogleAds.LoginCustomer != "" {
		req.Header.Set("login-customer-id", c.cfg.GoogleAds.LoginCustomer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &adsdomain.APIError{}
		if err := json.Unmarshal(body, apiErr); err == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("google ads API error (%d %s): %s", apiErr.Error.Code, apiErr.Error.Status, apiErr.Error.Message)
		}
		return nil, fmt.Errorf("google ads API error: status %s", resp.Status)
	}

	return body, nil
}

// SearchTermQuery monta a consulta GAQL do relatório de termos de pesquisa
// para a janela informada.
func SearchTermQuery(window domain.MetricsWindow) string {
	return fmt.Sprintf(`
		SELECT
			search_term_view.search_term,
			campaign.id,
			campaign.name,
			ad_group.id,
			metrics.impressions,
			metrics.clicks,
			metrics.cost_micros,
			metrics.conversions
		FROM search_term_view
		WHERE segments.date BETWEEN '%s' AND '%s'`,
		window.StartDate.Format(time.DateOnly),
		window.EndDate.Format(time.DateOnly),
	)
}
