package testkit

import (
	"synthml/domain/badge"
	"synthml/domain/chart"
)

// MetricCard is a headline number with its change since the last period.
type MetricCard struct {
	Title       string `yaml:"title" json:"title"`
	Value       string `yaml:"value" json:"value"`
	Change      string `yaml:"change" json:"change"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Icon        string `yaml:"icon,omitempty" json:"icon,omitempty"`
}

// Option is a select box entry.
type Option struct {
	Value       string `yaml:"value" json:"value"`
	Label       string `yaml:"label" json:"label"`
	Group       string `yaml:"group,omitempty" json:"group,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Marketing is the landing page copy.
type Marketing struct {
	Title      string        `yaml:"title"`
	Banner     string        `yaml:"banner"`
	Nav        []Link        `yaml:"nav"`
	Hero       Hero          `yaml:"hero"`
	Features   []Feature     `yaml:"features"`
	Steps      []Step        `yaml:"steps"`
	Highlights []string      `yaml:"highlights"`
	Plans      []PricingPlan `yaml:"plans"`
	Footer     Footer        `yaml:"footer"`
}

type Link struct {
	Label string `yaml:"label" json:"label"`
	Href  string `yaml:"href" json:"href"`
}

type Hero struct {
	Highlight    string `yaml:"highlight"`
	Title        string `yaml:"title"`
	Subtitle     string `yaml:"subtitle"`
	PrimaryCTA   string `yaml:"primaryCta"`
	SecondaryCTA string `yaml:"secondaryCta"`
	SocialProof  string `yaml:"socialProof"`
	Image        string `yaml:"image"`
	ImageAlt     string `yaml:"imageAlt"`
}

type Feature struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
}

type Step struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type PricingPlan struct {
	Name        string   `yaml:"name"`
	Price       string   `yaml:"price"`
	Period      string   `yaml:"period"`
	Description string   `yaml:"description"`
	Features    []string `yaml:"features"`
	CTA         string   `yaml:"cta"`
	Popular     bool     `yaml:"popular"`
}

type Footer struct {
	Tagline   string        `yaml:"tagline"`
	Columns   []FooterGroup `yaml:"columns"`
	Copyright string        `yaml:"copyright"`
}

type FooterGroup struct {
	Title string `yaml:"title"`
	Links []Link `yaml:"links"`
}

// Overview is the dashboard landing page.
type Overview struct {
	Metrics        []MetricCard        `yaml:"metrics" json:"metrics"`
	Activity       []Activity          `yaml:"activity" json:"activity"`
	QuickActions   []QuickAction       `yaml:"quickActions" json:"quickActions"`
	QualityMetrics []chart.MetricPoint `yaml:"qualityMetrics" json:"qualityMetrics"`
	PrivacyRisks   []chart.RiskMetric  `yaml:"privacyRisks" json:"privacyRisks"`
}

type Activity struct {
	Title  string               `yaml:"title" json:"title"`
	Time   string               `yaml:"time" json:"time"`
	Status badge.ActivityStatus `yaml:"status" json:"status"`
	User   string               `yaml:"user" json:"user"`
}

type QuickAction struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Href        string `yaml:"href" json:"href"`
	Icon        string `yaml:"icon" json:"icon"`
}

// DataQuality is everything on the data-quality page.
type DataQuality struct {
	Summary      QualitySummary          `yaml:"summary" json:"summary"`
	Tests        []TestResult            `yaml:"tests" json:"tests"`
	Completeness []chart.CompletenessRow `yaml:"completeness" json:"completeness"`
	Distribution Distribution            `yaml:"distribution" json:"distribution"`
	Correlation  chart.CorrelationMatrix `yaml:"correlation" json:"correlation"`
	Timeline     []chart.TimelinePoint   `yaml:"timeline" json:"timeline"`
	Outliers     OutlierSet              `yaml:"outliers" json:"outliers"`
}

type QualitySummary struct {
	DatasetName    string  `yaml:"datasetName" json:"datasetName"`
	OverallScore   float64 `yaml:"overallScore" json:"overallScore"`
	TestsRun       int     `yaml:"testsRun" json:"testsRun"`
	TestsPassed    int     `yaml:"testsPassed" json:"testsPassed"`
	TestsFailed    int     `yaml:"testsFailed" json:"testsFailed"`
	TestsWarning   int     `yaml:"testsWarning" json:"testsWarning"`
	LastRun        string  `yaml:"lastRun" json:"lastRun"`
	ColumnsCount   int     `yaml:"columnsCount" json:"columnsCount"`
	RowsCount      int     `yaml:"rowsCount" json:"rowsCount"`
	AverageRuntime string  `yaml:"averageRuntime" json:"averageRuntime"`
}

// TestResult is one data-quality check. Score is optional.
type TestResult struct {
	TestName        string           `yaml:"testName" json:"testName"`
	Status          badge.TestStatus `yaml:"status" json:"status"`
	Description     string           `yaml:"description,omitempty" json:"description,omitempty"`
	AffectedColumns []string         `yaml:"affectedColumns,omitempty" json:"affectedColumns,omitempty"`
	Score           *float64         `yaml:"score,omitempty" json:"score,omitempty"`
	Runtime         string           `yaml:"runtime,omitempty" json:"runtime,omitempty"`
}

type Distribution struct {
	Column    string                  `yaml:"column" json:"column"`
	Original  []chart.DistributionBin `yaml:"original" json:"original"`
	Synthetic []chart.DistributionBin `yaml:"synthetic" json:"synthetic"`
}

// OutlierSet holds the axis labels from fixtures and points from the
// seeded generator.
type OutlierSet struct {
	XLabel string               `yaml:"xLabel" json:"xLabel"`
	YLabel string               `yaml:"yLabel" json:"yLabel"`
	Fixed  []chart.OutlierPoint `yaml:"fixed" json:"-"`
	Points []chart.OutlierPoint `yaml:"-" json:"points"`
}

// DataSources is the connections page.
type DataSources struct {
	Sources    []DataSource `yaml:"sources" json:"sources"`
	Connectors []Connector  `yaml:"connectors" json:"connectors"`
}

type DataSource struct {
	ID       int                `yaml:"id" json:"id"`
	Name     string             `yaml:"name" json:"name"`
	Type     string             `yaml:"type" json:"type"`
	Tables   int                `yaml:"tables" json:"tables"`
	LastSync string             `yaml:"lastSync" json:"lastSync"`
	Status   badge.SourceStatus `yaml:"status" json:"status"`
}

type Connector struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Icon        string `yaml:"icon" json:"icon"`
	Href        string `yaml:"href" json:"href"`
}

// Models is the model catalogue plus the creation form.
type Models struct {
	Models []Model   `yaml:"models" json:"models"`
	Form   ModelForm `yaml:"form" json:"form"`
}

type Model struct {
	ID          string            `yaml:"id" json:"id"`
	Name        string            `yaml:"name" json:"name"`
	Type        badge.ModelType   `yaml:"type" json:"type"`
	Status      badge.ModelStatus `yaml:"status" json:"status"`
	Description string            `yaml:"description" json:"description"`
	Accuracy    float64           `yaml:"accuracy" json:"accuracy"`
	Privacy     float64           `yaml:"privacy" json:"privacy"`
	LastUpdated string            `yaml:"lastUpdated" json:"lastUpdated"`
	DataSources []string          `yaml:"dataSources" json:"dataSources"`
}

type ModelForm struct {
	Algorithms  []Option       `yaml:"algorithms" json:"algorithms"`
	DataSources []Option       `yaml:"dataSources" json:"dataSources"`
	Tables      []Option       `yaml:"tables" json:"tables"`
	Columns     []ColumnConfig `yaml:"columns" json:"columns"`
	Treatments  []string       `yaml:"treatments" json:"treatments"`
	Privacy     []string       `yaml:"privacyLevels" json:"privacyLevels"`
	Fidelity    []Option       `yaml:"fidelity" json:"fidelity"`
	Epsilon     float64        `yaml:"epsilon" json:"epsilon"`
	Epochs      int            `yaml:"epochs" json:"epochs"`
	BatchSize   int            `yaml:"batchSize" json:"batchSize"`
}

type ColumnConfig struct {
	Name      string `yaml:"name" json:"name"`
	Type      string `yaml:"type" json:"type"`
	Treatment string `yaml:"treatment" json:"treatment"`
	Privacy   string `yaml:"privacy" json:"privacy"`
	Include   bool   `yaml:"include" json:"include"`
}

// Monitoring is the job and resource page.
type Monitoring struct {
	Metrics       []MetricCard           `yaml:"metrics" json:"metrics"`
	ActiveJobs    []Job                  `yaml:"activeJobs" json:"activeJobs"`
	CompletedJobs []Job                  `yaml:"completedJobs" json:"completedJobs"`
	Usage         []Usage                `yaml:"usage" json:"usage"`
	Resources     []chart.ResourceSample `yaml:"resources" json:"resources"`
}

type Job struct {
	ID            string          `yaml:"id" json:"id"`
	Name          string          `yaml:"name" json:"name"`
	Model         string          `yaml:"model" json:"model"`
	Status        badge.JobStatus `yaml:"status" json:"status"`
	Progress      float64         `yaml:"progress" json:"progress"`
	StartTime     string          `yaml:"startTime" json:"startTime"`
	EndTime       string          `yaml:"endTime" json:"endTime"`
	Duration      string          `yaml:"duration,omitempty" json:"duration,omitempty"`
	User          string          `yaml:"user" json:"user"`
	RowsGenerated string          `yaml:"rowsGenerated" json:"rowsGenerated"`
	DataSizeGB    string          `yaml:"dataSizeGB,omitempty" json:"dataSizeGB,omitempty"`
}

type Usage struct {
	Label   string  `yaml:"label" json:"label"`
	Current float64 `yaml:"current" json:"current"`
	Max     float64 `yaml:"max" json:"max"`
	Unit    string  `yaml:"unit" json:"unit"`
}

// Exports is the exports and integrations page.
type Exports struct {
	Recent    []Export          `yaml:"recent" json:"recent"`
	Scheduled []ScheduledExport `yaml:"scheduled" json:"scheduled"`
}

type Export struct {
	ID        string             `yaml:"id" json:"id"`
	Name      string             `yaml:"name" json:"name"`
	JobID     string             `yaml:"jobId" json:"jobId"`
	Type      badge.ExportType   `yaml:"type" json:"type"`
	Status    badge.ExportStatus `yaml:"status" json:"status"`
	CreatedAt string             `yaml:"createdAt" json:"createdAt"`
	User      string             `yaml:"user" json:"user"`
	Size      string             `yaml:"size" json:"size"`
	Records   string             `yaml:"records" json:"records"`
}

type ScheduledExport struct {
	ID          string           `yaml:"id" json:"id"`
	Name        string           `yaml:"name" json:"name"`
	Type        badge.ExportType `yaml:"type" json:"type"`
	Destination string           `yaml:"destination" json:"destination"`
	Frequency   string           `yaml:"frequency" json:"frequency"`
	NextRun     string           `yaml:"nextRun" json:"nextRun"`
	LastRun     string           `yaml:"lastRun" json:"lastRun"`
}

// Team is the members and permissions page.
type Team struct {
	Plan        string            `yaml:"plan" json:"plan"`
	SeatsUsed   int               `yaml:"seatsUsed" json:"seatsUsed"`
	SeatsTotal  int               `yaml:"seatsTotal" json:"seatsTotal"`
	Members     []Member          `yaml:"members" json:"members"`
	Roles       []Option          `yaml:"roles" json:"roles"`
	DefaultRole string            `yaml:"defaultRole" json:"defaultRole"`
	Permissions []PermissionGroup `yaml:"permissions" json:"permissions"`
	AuditLog    []AuditEntry      `yaml:"auditLog" json:"auditLog"`
}

type Member struct {
	Name       string             `yaml:"name" json:"name"`
	Email      string             `yaml:"email" json:"email"`
	Role       string             `yaml:"role" json:"role"`
	Status     badge.MemberStatus `yaml:"status" json:"status"`
	LastActive string             `yaml:"lastActive" json:"lastActive"`
}

type PermissionGroup struct {
	Title       string   `yaml:"title" json:"title"`
	Permissions []string `yaml:"permissions" json:"permissions"`
}

type AuditEntry struct {
	Action string `yaml:"action" json:"action"`
	User   string `yaml:"user" json:"user"`
	By     string `yaml:"by" json:"by"`
	Date   string `yaml:"date" json:"date"`
}

// Settings is the account settings page.
type Settings struct {
	Tabs          []string       `yaml:"tabs" json:"tabs"`
	Account       Account        `yaml:"account" json:"account"`
	APIKeys       []APIKey       `yaml:"apiKeys" json:"apiKeys"`
	DefaultPages  []Option       `yaml:"defaultPages" json:"defaultPages"`
	DefaultPage   string         `yaml:"defaultPage" json:"defaultPage"`
	Notifications []Notification `yaml:"notifications" json:"notifications"`
	Security      []Notification `yaml:"security" json:"security"`
}

type Account struct {
	Email   string `yaml:"email" json:"email"`
	Name    string `yaml:"name" json:"name"`
	Company string `yaml:"company" json:"company"`
	Role    string `yaml:"role" json:"role"`
}

type APIKey struct {
	Name    string `yaml:"name" json:"name"`
	Created string `yaml:"created" json:"created"`
	Masked  string `yaml:"masked" json:"masked"`
}

type Notification struct {
	Label       string `yaml:"label" json:"label"`
	Description string `yaml:"description" json:"description"`
	Enabled     bool   `yaml:"enabled" json:"enabled"`
}
