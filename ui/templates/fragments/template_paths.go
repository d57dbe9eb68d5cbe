// Package fragments provides template path constants for organized template management
package fragments

// Page templates
const (
	Marketing   = "marketing.html"
	Overview    = "dashboard/overview.html"
	DataQuality = "dashboard/data_quality.html"
	DataSources = "dashboard/data_sources.html"
	Models      = "dashboard/models.html"
	ModelNew    = "dashboard/model_new.html"
	Monitoring  = "dashboard/monitoring.html"
	Exports     = "dashboard/exports.html"
	Settings    = "dashboard/settings.html"
	Team        = "dashboard/team.html"
)

// Layout templates
const (
	Head          = "layout/head.html"
	Foot          = "layout/foot.html"
	DashboardHead = "layout/dashboard_head.html"
	DashboardFoot = "layout/dashboard_foot.html"
	Sidebar       = "layout/sidebar.html"
	ThemeToggle   = "layout/theme_toggle.html"
)

// Component templates
const (
	MetricCard      = "components/metric_card.html"
	StatusBadge     = "components/status_badge.html"
	TestResultCard  = "components/test_result_card.html"
	UsageBar        = "components/usage_bar.html"
	CompletenessBar = "components/completeness_bar.html"
	ChartCard       = "components/chart_card.html"
)

// GetAllTemplatePaths returns all template paths for registration
func GetAllTemplatePaths() []string {
	return []string{
		// Pages
		Marketing,
		Overview,
		DataQuality,
		DataSources,
		Models,
		ModelNew,
		Monitoring,
		Exports,
		Settings,
		Team,

		// Layout
		Head,
		Foot,
		DashboardHead,
		DashboardFoot,
		Sidebar,
		ThemeToggle,

		// Components
		MetricCard,
		StatusBadge,
		TestResultCard,
		UsageBar,
		CompletenessBar,
		ChartCard,
	}
}

// PageTemplates returns the templates served as full pages.
func PageTemplates() []string {
	return GetAllTemplatePaths()[:10]
}
