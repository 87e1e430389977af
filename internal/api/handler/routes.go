package handler

import (
	"net/http"

	"github.com/adscope/keyword-guardian-api/internal/api/handler/router"
	"github.com/adscope/keyword-guardian-api/internal/config"
	"github.com/adscope/keyword-guardian-api/internal/usecases/approving"
	"github.com/adscope/keyword-guardian-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Approvals(service approving.Approver) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/approvals",
			Method:      http.MethodGet,
			Handler:     ListApprovals(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/approvals/:id",
			Method:      http.MethodGet,
			Handler:     GetApproval(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/approvals/:id/decision",
			Method:      http.MethodPost,
			Handler:     DecideApproval(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/approvals/:id/audit",
			Method:      http.MethodGet,
			Handler:     GetApprovalAudit(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Detections(service approving.Approver) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/detections/:tenantID/trigger",
			Method:      http.MethodPost,
			Handler:     TriggerDetection(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Credentials(service approving.Approver) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/tenants/:id/credentials/:provider",
			Method:      http.MethodPut,
			Handler:     StoreCredential(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func SlackWebhook(service approving.Approver, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/slack/interactions",
			Method:  http.MethodPost,
			Handler: SlackInteractions(service, cfg),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
