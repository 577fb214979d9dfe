package handler

import (
	_ "embed"
	"net/http"

	"github.com/sirupsen/logrus"
)

//go:embed static/index.html
var indexPage []byte

// DashboardPage entrega a página única que consome a API e desenha os gráficos com Plotly
func DashboardPage() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := w.Write(indexPage); err != nil {
			logrus.WithError(err).Warn("error writing dashboard page")
		}
	})
}
