package ui

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"synthml/domain/badge"
	"synthml/domain/chart"
	"synthml/internal/render"
	"synthml/ui/templates/fragments"
)

func (s *Server) handleMarketing(c *gin.Context) {
	site := s.kit.Marketing()
	s.renderTemplate(c, fragments.Marketing, marketingView{
		Page: s.newPage(c, site.Title, ""),
		Site: site,
	})
}

func (s *Server) handleDashboardRedirect(c *gin.Context) {
	c.Redirect(http.StatusFound, "/dashboard/data-quality")
}

func (s *Server) handleOverview(c *gin.Context) {
	ov := s.kit.Overview()
	quality, ok := s.inlineChart(c, render.ChartQualityMetrics)
	if !ok {
		return
	}
	privacy, ok := s.inlineChart(c, render.ChartPrivacyRadar)
	if !ok {
		return
	}
	s.renderTemplate(c, fragments.Overview, overviewView{
		Page:         s.newPage(c, "Dashboard Overview", "overview"),
		Metrics:      metricCards(ov.Metrics),
		Activity:     ov.Activity,
		QuickActions: ov.QuickActions,
		QualityBars:  s.renderer.QualityMetrics(),
		QualityChart: quality,
		PrivacyChart: privacy,
		Radar:        s.renderer.PrivacyRadar(),
	})
}

func (s *Server) handleDataQuality(c *gin.Context) {
	dq := s.kit.DataQuality()

	// Unknown status values fall back to showing every test.
	status, err := badge.ParseTestStatus(c.Query("status"))
	if err != nil {
		status = ""
	}

	timeline, err := s.renderer.Timeline()
	if err != nil {
		s.respondError(c, err)
		return
	}
	charts := map[string]template.HTML{}
	for _, name := range []string{render.ChartTimeline, render.ChartDistribution, render.ChartOutliers} {
		svg, ok := s.inlineChart(c, name)
		if !ok {
			return
		}
		charts[name] = svg
	}

	s.renderTemplate(c, fragments.DataQuality, dataQualityView{
		Page:          s.newPage(c, "Data Quality Testing", "data-quality"),
		Summary:       dq.Summary,
		PassRate:      chart.PassRate(dq.Summary.TestsPassed, dq.Summary.TestsRun),
		ScoreClass:    chart.ScoreTone(dq.Summary.OverallScore).TextClass(),
		Filters:       s.statusFilters(status),
		Tests:         s.kit.TestsByStatus(status),
		Completeness:  chart.BuildCompleteness(dq.Completeness),
		Timeline:      timeline,
		TimelineChart: charts[render.ChartTimeline],
		Distribution:  s.renderer.Distribution(),
		DistChart:     charts[render.ChartDistribution],
		Scatter:       s.renderer.Scatter(),
		ScatterChart:  charts[render.ChartOutliers],
		Correlation:   s.renderer.Correlation(),
		ReportHref:    "/dashboard/data-quality/report.xlsx",
		ChartNames:    render.Names(),
	})
}

func (s *Server) statusFilters(active badge.TestStatus) []StatusFilter {
	filters := []StatusFilter{{
		Label:  "All Tests",
		Count:  len(s.kit.TestsByStatus("")),
		Active: active == "",
		Href:   "/dashboard/data-quality",
	}}
	for _, st := range []badge.TestStatus{badge.TestFailed, badge.TestWarning, badge.TestPassed} {
		filters = append(filters, StatusFilter{
			Value:  st,
			Label:  st.Badge().Label,
			Count:  len(s.kit.TestsByStatus(st)),
			Active: active == st,
			Href:   "/dashboard/data-quality?status=" + string(st),
		})
	}
	return filters
}

func (s *Server) handleDataSources(c *gin.Context) {
	s.renderTemplate(c, fragments.DataSources, dataSourcesView{
		Page:        s.newPage(c, "Data Sources", "data-sources"),
		DataSources: s.kit.DataSources(),
	})
}

func (s *Server) handleModels(c *gin.Context) {
	byType := s.kit.ModelsByType()
	var groups []ModelGroup
	for _, t := range badge.ModelTypes() {
		if models := byType[t]; len(models) > 0 {
			groups = append(groups, ModelGroup{Type: t, Badge: t.Badge(), Models: models})
		}
	}
	s.renderTemplate(c, fragments.Models, modelsView{
		Page:   s.newPage(c, "Synthetic Models", "models"),
		Groups: groups,
		Total:  len(s.kit.Models().Models),
	})
}

func (s *Server) handleModelNew(c *gin.Context) {
	form := s.kit.Models().Form
	s.renderTemplate(c, fragments.ModelNew, modelNewView{
		Page:        s.newPage(c, "Create New Model", "models"),
		Form:        form,
		Algorithms:  groupOptions(form.Algorithms),
		DataSources: groupOptions(form.DataSources),
	})
}

func (s *Server) handleMonitoring(c *gin.Context) {
	mon := s.kit.Monitoring()
	resources, ok := s.inlineChart(c, render.ChartResources)
	if !ok {
		return
	}
	usage := make([]chart.UsageBar, len(mon.Usage))
	for i, u := range mon.Usage {
		usage[i] = chart.BuildUsageBar(u.Label, u.Current, u.Max, u.Unit)
	}
	s.renderTemplate(c, fragments.Monitoring, monitoringView{
		Page:          s.newPage(c, "Monitoring", "monitoring"),
		Metrics:       metricCards(mon.Metrics),
		Usage:         usage,
		ActiveJobs:    mon.ActiveJobs,
		CompletedJobs: mon.CompletedJobs,
		ResourceChart: resources,
	})
}

func (s *Server) handleExports(c *gin.Context) {
	s.renderTemplate(c, fragments.Exports, exportsView{
		Page:    s.newPage(c, "Exports & Integration", "exports"),
		Exports: s.kit.Exports(),
	})
}

func (s *Server) handleTeam(c *gin.Context) {
	team := s.kit.Team()
	s.renderTemplate(c, fragments.Team, teamView{
		Page:        s.newPage(c, "Team Management", "team"),
		Team:        team,
		SeatPercent: chart.Percent(float64(team.SeatsUsed), float64(team.SeatsTotal)),
	})
}

func (s *Server) handleSettings(c *gin.Context) {
	s.renderTemplate(c, fragments.Settings, settingsView{
		Page:     s.newPage(c, "Settings", "settings"),
		Settings: s.kit.Settings(),
	})
}

// inlineChart renders an SVG fragment for embedding in a page. On failure
// the error response is already written.
func (s *Server) inlineChart(c *gin.Context, name string) (template.HTML, bool) {
	svg, err := s.renderer.Inline(name)
	if err != nil {
		s.respondError(c, err)
		return "", false
	}
	// Renderer output escapes all text content.
	return template.HTML(svg), true
}
