package slackclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	slackdomain "github.com/adscope/keyword-guardian-api/infrastructure/integrator/slack/domain"
	"github.com/adscope/keyword-guardian-api/internal/config"
)

type Client interface {
	PostMessage(ctx context.Context, botToken string, req slackdomain.PostMessageRequest) (*slackdomain.APIResponse, error)
	UpdateMessage(ctx context.Context, botToken string, req slackdomain.UpdateMessageRequest) (*slackdomain.APIResponse, error)
}

type SlackClient struct {
	httpClient *http.Client
	cfg        *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &SlackClient{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		cfg: cfg,
	}
}

func (c *SlackClient) PostMessage(ctx context.Context, botToken string, req slackdomain.PostMessageRequest) (*slackdomain.APIResponse, error) {
	return c.call(ctx, botToken, "chat.postMessage", req)
}

func (c *SlackClient) UpdateMessage(ctx context.Context, botToken string, req slackdomain.UpdateMessageRequest) (*slackdomain.APIResponse, error) {
	return c.call(ctx, botToken, "chat.update", req)
}

func (c *SlackClient) call(ctx context.Context, botToken, method string, payload interface{}) (*slackdomain.APIResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/%s", c.cfg.Slack.BaseURL, method)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Authorization", "Bearer "+botToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	apiResp := &slackdomain.APIResponse{}
	if err := json.Unmarshal(respBody, apiResp); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON da resposta do Slack")
		return nil, err
	}

	if !apiResp.OK {
		return nil, fmt.Errorf("slack API error: %s", apiResp.Error)
	}

	return apiResp, nil
}
