package ui

import (
	"html/template"

	"github.com/gin-gonic/gin"

	"synthml/domain/badge"
	"synthml/domain/chart"
	"synthml/domain/theme"
	"synthml/internal/testkit"
	"synthml/ui/middleware"
)

// NavItem is one sidebar link.
type NavItem struct {
	Key   string
	Label string
	Href  string
	Icon  string
}

var dashboardNav = []NavItem{
	{"overview", "Overview", "/dashboard/overview", "home"},
	{"data-sources", "Data Sources", "/dashboard/data-sources", "database"},
	{"models", "Models", "/dashboard/models", "cpu"},
	{"data-quality", "Data Quality", "/dashboard/data-quality", "check"},
	{"monitoring", "Monitoring", "/dashboard/monitoring", "activity"},
	{"exports", "Exports", "/dashboard/exports", "download"},
	{"team", "Team", "/dashboard/team", "users"},
	{"settings", "Settings", "/dashboard/settings", "settings"},
}

// ThemeOption is an entry of the theme picker.
type ThemeOption struct {
	Value    theme.Theme
	Label    string
	Selected bool
}

// Page carries what every template needs: title, navigation and theme.
type Page struct {
	Title  string
	Active string
	Path   string
	Theme  theme.Theme
	Dark   bool
	Themes []ThemeOption
	Nav    []NavItem
}

func (s *Server) newPage(c *gin.Context, title, active string) Page {
	current := middleware.Theme(c)
	opts := make([]ThemeOption, 0, len(theme.All()))
	for _, t := range theme.All() {
		opts = append(opts, ThemeOption{Value: t, Label: t.Label(), Selected: t == current})
	}
	return Page{
		Title:  title,
		Active: active,
		Path:   c.Request.URL.Path,
		Theme:  current,
		Dark:   middleware.Dark(c),
		Themes: opts,
		Nav:    dashboardNav,
	}
}

type marketingView struct {
	Page
	Site testkit.Marketing
}

// MetricCardView is a metric card with its change direction resolved.
type MetricCardView struct {
	testkit.MetricCard
	Positive bool
}

func metricCards(cards []testkit.MetricCard) []MetricCardView {
	out := make([]MetricCardView, len(cards))
	for i, c := range cards {
		out[i] = MetricCardView{MetricCard: c, Positive: chart.IsPositiveChange(c.Change)}
	}
	return out
}

type overviewView struct {
	Page
	Metrics      []MetricCardView
	Activity     []testkit.Activity
	QuickActions []testkit.QuickAction
	QualityBars  []chart.MetricBar
	QualityChart template.HTML
	PrivacyChart template.HTML
	Radar        chart.Radar
}

// StatusFilter is a tab above the test result cards.
type StatusFilter struct {
	Value  badge.TestStatus
	Label  string
	Count  int
	Active bool
	Href   string
}

type dataQualityView struct {
	Page
	Summary       testkit.QualitySummary
	PassRate      int
	ScoreClass    string
	Filters       []StatusFilter
	Tests         []testkit.TestResult
	Completeness  []chart.CompletenessBar
	Timeline      chart.Timeline
	TimelineChart template.HTML
	Distribution  chart.DistributionComparison
	DistChart     template.HTML
	Scatter       chart.Scatter
	ScatterChart  template.HTML
	Correlation   chart.CorrelationGrid
	ReportHref    string
	ChartNames    []string
}

type dataSourcesView struct {
	Page
	testkit.DataSources
}

// ModelGroup is the models of one type, in declaration order of types.
type ModelGroup struct {
	Type   badge.ModelType
	Badge  badge.Badge
	Models []testkit.Model
}

type modelsView struct {
	Page
	Groups []ModelGroup
	Total  int
}

// OptionGroup is an <optgroup> of a select box.
type OptionGroup struct {
	Label   string
	Options []testkit.Option
}

type modelNewView struct {
	Page
	Form        testkit.ModelForm
	Algorithms  []OptionGroup
	DataSources []OptionGroup
}

type monitoringView struct {
	Page
	Metrics       []MetricCardView
	Usage         []chart.UsageBar
	ActiveJobs    []testkit.Job
	CompletedJobs []testkit.Job
	ResourceChart template.HTML
}

type exportsView struct {
	Page
	testkit.Exports
}

type teamView struct {
	Page
	testkit.Team
	SeatPercent float64
}

type settingsView struct {
	Page
	testkit.Settings
}

// groupOptions keeps groups in first-seen order.
func groupOptions(opts []testkit.Option) []OptionGroup {
	var groups []OptionGroup
	index := map[string]int{}
	for _, o := range opts {
		i, ok := index[o.Group]
		if !ok {
			i = len(groups)
			index[o.Group] = i
			groups = append(groups, OptionGroup{Label: o.Group})
		}
		groups[i].Options = append(groups[i].Options, o)
	}
	return groups
}

// ChartCard frames an inline chart.
type ChartCard struct {
	Title   string
	Caption string
	Chart   template.HTML
	Footer  string
}
