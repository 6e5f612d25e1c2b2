package handlers

import (
	"fmt"
	"net/http"

	"github.com/douglasmeneses/NeuroScan-app/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

type ChartsHandler struct {
	log *zap.Logger
}

func NewChartsHandler(log *zap.Logger) *ChartsHandler {
	return &ChartsHandler{log: log}
}

// ShowDashboard renders the review dashboard as a single HTML page: answer
// duration over time plus clicks and steps per answer.
func (h *ChartsHandler) ShowDashboard(c *gin.Context) {
	graficos, err := repository.GetGraficosRespostas(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to load chart data", zap.Error(err))
		c.String(http.StatusInternalServerError, "Failed to load dashboard data")
		return
	}

	page := components.NewPage()
	page.SetPageTitle("NeuroScan Dashboard")
	page.AddCharts(
		generateDuracaoChart(graficos.Duracao),
		generateContagemChart("Cliques por Resposta", graficos.Cliques),
		generateContagemChart("Passos por Resposta", graficos.Passos),
	)

	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := page.Render(c.Writer); err != nil {
		h.log.Error("Failed to render dashboard page", zap.Error(err))
	}
}

func generateDuracaoChart(data []repository.GraficoPonto) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Duração por Resposta",
			Subtitle: "segundos",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "time",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:  "value",
			Scale: opts.Bool(true),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider"}),
	)

	items := make([]opts.LineData, 0, len(data))
	for _, point := range data {
		items = append(items, opts.LineData{Value: []interface{}{point.Timestamp, point.Valor}})
	}

	line.AddSeries("Duração (s)", items).SetSeriesOptions(charts.WithLineStyleOpts(opts.LineStyle{Width: 2}))
	return line
}

func generateContagemChart(title string, data []repository.GraficoPonto) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	labels := make([]string, 0, len(data))
	items := make([]opts.BarData, 0, len(data))
	for _, point := range data {
		labels = append(labels, fmt.Sprintf("%s P%d", point.Usuario, point.Pergunta))
		items = append(items, opts.BarData{Value: point.Valor})
	}

	bar.SetXAxis(labels).AddSeries(title, items)
	return bar
}
