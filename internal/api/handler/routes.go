package handler

import (
	"net/http"

	"github.com/vfg2006/empresas-dashboard/internal/api/handler/router"
	"github.com/vfg2006/empresas-dashboard/internal/usecases/authenticating"
	"github.com/vfg2006/empresas-dashboard/internal/usecases/dashboarding"
	"github.com/vfg2006/empresas-dashboard/pkg/middleware"
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

func UI() []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: DashboardPage(),
		},
	}
}

func Dashboard(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/dashboard/options",
			Method:  http.MethodGet,
			Handler: GetDashboardOptions(service),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func Exports(exports ExportScheduler, authService authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/exports/run",
			Method:      http.MethodPost,
			Handler:     RunExport(exports),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireOperator(authService)},
		},
		{
			Path:        "/v1/exports/status",
			Method:      http.MethodGet,
			Handler:     GetExportStatus(exports),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireOperator(authService)},
		},
	}
}
