package slack

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	slackdomain "github.com/adscope/keyword-guardian-api/infrastructure/integrator/slack/domain"
	"github.com/adscope/keyword-guardian-api/infrastructure/integrator/slack/slackclient"
	"github.com/adscope/keyword-guardian-api/internal/config"
	"github.com/adscope/keyword-guardian-api/internal/domain"
	"github.com/adscope/keyword-guardian-api/pkg/utils"
)

const (
	ActionIDApprove = "approval_approve"
	ActionIDReject  = "approval_reject"
)

// SlackIntegrator é a camada de mensageria consumida pelo motor de
// workflow. Para o motor tudo aqui é fire-and-forget: uma falha de
// notificação nunca bloqueia nem desfaz uma transição de estado: a máquina
// de estados é a autoridade, a mensagem é só uma visão.
type SlackIntegrator interface {
	PostDecisionPrompt(ctx context.Context, botToken, channel string, candidate *domain.KeywordCandidate, requestID string) (string, error)
	UpdateMessage(ctx context.Context, botToken, channel, messageTS, text string) error
}

type Integrator struct {
	cfg    *config.Config
	Client slackclient.Client
}

func New(cfg *config.Config, client slackclient.Client) *Integrator {
	return &Integrator{
		cfg:    cfg,
		Client: client,
	}
}

// PostDecisionPrompt publica o alerta com os botões de aprovação e retorna
// o timestamp da mensagem para atualizações posteriores.
func (s *Integrator) PostDecisionPrompt(ctx context.Context, botToken, channel string, candidate *domain.KeywordCandidate, requestID string) (string, error) {
	resp, err := s.Client.PostMessage(ctx, botToken, slackdomain.PostMessageRequest{
		Channel: channel,
		Text:    fmt.Sprintf("Termo ineficiente detectado: %q", candidate.SearchTerm),
		Blocks:  buildDecisionBlocks(candidate, requestID),
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"channel":    channel,
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("slack: falha ao publicar alerta de decisão")
		return "", err
	}

	return resp.TS, nil
}

// UpdateMessage atualiza a mensagem original depois de uma decisão ou
// expiração. Best-effort: o erro é retornado apenas para registro.
func (s *Integrator) UpdateMessage(ctx context.Context, botToken, channel, messageTS, text string) error {
	_, err := s.Client.UpdateMessage(ctx, botToken, slackdomain.UpdateMessageRequest{
		Channel: channel,
		TS:      messageTS,
		Text:    text,
		Blocks: []slackdomain.Block{
			{
				Type: "section",
				Text: &slackdomain.Text{Type: "mrkdwn", Text: text},
			},
		},
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"channel": channel,
			"ts":      messageTS,
			"error":   err.Error(),
		}).Warn("slack: falha ao atualizar mensagem de decisão")
	}

	return err
}

func buildDecisionBlocks(candidate *domain.KeywordCandidate, requestID string) []slackdomain.Block {
	cost := utils.RoundWithTwoDecimalPlace(float64(candidate.CostMicros) / 1_000_000)

	return []slackdomain.Block{
		{
			Type: "section",
			Text: &slackdomain.Text{
				Type: "mrkdwn",
				Text: fmt.Sprintf(":warning: *Termo de pesquisa ineficiente detectado*\n*Termo:* %q\n*Campanha:* %s", candidate.SearchTerm, candidate.CampaignName),
			},
		},
		{
			Type: "section",
			Fields: []*slackdomain.Text{
				{Type: "mrkdwn", Text: fmt.Sprintf("*Custo:*\n%.2f", cost)},
				{Type: "mrkdwn", Text: fmt.Sprintf("*Cliques:*\n%d", candidate.Clicks)},
				{Type: "mrkdwn", Text: fmt.Sprintf("*Impressões:*\n%d", candidate.Impressions)},
				{Type: "mrkdwn", Text: fmt.Sprintf("*Conversões:*\n%.1f", candidate.Conversions)},
			},
		},
		{
			Type: "actions",
			Elements: []*slackdomain.Button{
				{
					Type:     "button",
					Text:     &slackdomain.Text{Type: "plain_text", Text: "Excluir termo"},
					Style:    "primary",
					ActionID: ActionIDApprove,
					Value:    requestID,
				},
				{
					Type:     "button",
					Text:     &slackdomain.Text{Type: "plain_text", Text: "Ignorar"},
					Style:    "danger",
					ActionID: ActionIDReject,
					Value:    requestID,
				},
			},
		},
	}
}
