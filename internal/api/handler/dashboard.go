package handler

import (
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/empresas-dashboard/internal/domain"
	"github.com/vfg2006/empresas-dashboard/internal/usecases/dashboarding"
	"github.com/vfg2006/empresas-dashboard/pkg/apiErrors"
	"github.com/vfg2006/empresas-dashboard/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Parâmetros de consulta do dashboard
const (
	paramSector       = "sector"
	paramMunicipality = "municipality"
	paramSalesMin     = "sales_min"
	paramSalesMax     = "sales_max"
	paramSortBy       = "sort_by"
	paramSortDir      = "sort_dir"
	paramPage         = "page"
	filterPrefix      = "filter["
	filterSuffix      = "]"
)

// GetDashboard recalcula KPIs, gráficos e tabela para os filtros da query string
func GetDashboard(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, query, err := parseDashboardQuery(r.URL.Query())
		if err != nil {
			logger.WithError(err).Warn("Parâmetros do dashboard inválidos")
			handleDashboardError(w, err)
			return
		}

		view, err := service.Render(filters, query)
		if err != nil {
			logger.WithError(err).Warn("Erro ao renderizar dashboard")
			handleDashboardError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"dataset_filtered": view.FilteredCount,
			"table_page":       view.Table.Page,
		}).Debug("Dashboard renderizado")

		writeJSON(w, http.StatusOK, view)
	}
}

// GetDashboardOptions retorna os valores disponíveis para os controles de filtro
func GetDashboardOptions(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		options := service.Options()
		if options == nil {
			apiErrors.WriteError(w, apiErrors.ErrDatasetNotReady, "Dataset não carregado", nil)
			return
		}

		writeJSON(w, http.StatusOK, options)
	}
}

// parseDashboardQuery converte a query string no estado de filtros e na consulta da tabela
func parseDashboardQuery(values url.Values) (domain.FilterState, domain.TableQuery, error) {
	filters := domain.FilterState{
		Sector: strings.TrimSpace(values.Get(paramSector)),
	}

	for _, municipality := range values[paramMunicipality] {
		if municipality = strings.TrimSpace(municipality); municipality != "" {
			filters.Municipalities = append(filters.Municipalities, municipality)
		}
	}

	salesRange, err := parseSalesRange(values.Get(paramSalesMin), values.Get(paramSalesMax))
	if err != nil {
		return filters, domain.TableQuery{}, err
	}
	filters.SalesRange = salesRange

	query := domain.TableQuery{
		SortBy:  strings.TrimSpace(values.Get(paramSortBy)),
		SortDir: strings.ToLower(strings.TrimSpace(values.Get(paramSortDir))),
	}

	if raw := strings.TrimSpace(values.Get(paramPage)); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return filters, query, dashboarding.NewQueryError(dashboarding.ErrInvalidPage, apiErrors.ErrInvalidFormat, "page deve ser um inteiro")
		}
		query.Page = page
	}

	for key, terms := range values {
		if !strings.HasPrefix(key, filterPrefix) || !strings.HasSuffix(key, filterSuffix) || len(terms) == 0 {
			continue
		}
		column := strings.TrimSuffix(strings.TrimPrefix(key, filterPrefix), filterSuffix)
		if query.Filters == nil {
			query.Filters = make(map[string]string)
		}
		query.Filters[column] = terms[0]
	}

	return filters, query, nil
}

func parseSalesRange(rawMin, rawMax string) (*domain.SalesRange, error) {
	rawMin, rawMax = strings.TrimSpace(rawMin), strings.TrimSpace(rawMax)
	if rawMin == "" && rawMax == "" {
		return nil, nil
	}
	if rawMin == "" || rawMax == "" {
		return nil, dashboarding.NewQueryError(dashboarding.ErrInvalidSalesRange, apiErrors.ErrMissingRequiredData, "sales_min e sales_max devem ser informados juntos")
	}

	minValue, err := strconv.ParseFloat(rawMin, 64)
	if err != nil {
		return nil, dashboarding.NewQueryError(dashboarding.ErrInvalidSalesRange, apiErrors.ErrInvalidFormat, "sales_min não é numérico")
	}
	maxValue, err := strconv.ParseFloat(rawMax, 64)
	if err != nil {
		return nil, dashboarding.NewQueryError(dashboarding.ErrInvalidSalesRange, apiErrors.ErrInvalidFormat, "sales_max não é numérico")
	}

	// ParseFloat aceita "NaN" e "Inf", que nenhuma venda satisfaz
	if !isFinite(minValue) || !isFinite(maxValue) {
		return nil, dashboarding.NewQueryError(dashboarding.ErrInvalidSalesRange, apiErrors.ErrInvalidFormat, "sales_min e sales_max devem ser números finitos")
	}

	return &domain.SalesRange{Min: minValue, Max: maxValue}, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// handleDashboardError traduz erros de validação no código da API
func handleDashboardError(w http.ResponseWriter, err error) {
	var queryErr *dashboarding.QueryError
	if errors.As(err, &queryErr) {
		apiErrors.WriteError(w, queryErr.Code, queryErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao renderizar o dashboard", nil)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Error("Erro ao enviar resposta")
	}
}
