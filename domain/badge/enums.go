package badge

// TestStatus is the outcome of a data-quality test.
type TestStatus string

const (
	TestPassed  TestStatus = "passed"
	TestFailed  TestStatus = "failed"
	TestWarning TestStatus = "warning"
	TestRunning TestStatus = "running"
)

func TestStatuses() []TestStatus {
	return []TestStatus{TestPassed, TestFailed, TestWarning, TestRunning}
}

func ParseTestStatus(s string) (TestStatus, error) { return parse("test status", s, TestStatuses()) }

func (s TestStatus) Badge() Badge {
	switch s {
	case TestPassed:
		return Badge{Label: "Passed", Class: classGreen}
	case TestFailed:
		return Badge{Label: "Failed", Class: classRed}
	case TestWarning:
		return Badge{Label: "Warning", Class: classYellow}
	case TestRunning:
		return Badge{Label: "Running", Class: classBlue}
	}
	panic(unmapped("test status", string(s)))
}

// Icon names the glyph drawn on the test result card.
func (s TestStatus) Icon() string {
	switch s {
	case TestPassed:
		return "check-circle"
	case TestFailed:
		return "x-circle"
	case TestWarning:
		return "alert-triangle"
	case TestRunning:
		return "loader"
	}
	panic(unmapped("test status", string(s)))
}

// ActivityStatus is the state of an entry in the overview activity feed.
type ActivityStatus string

const (
	ActivityCompleted ActivityStatus = "completed"
	ActivityRunning   ActivityStatus = "running"
	ActivityFailed    ActivityStatus = "failed"
)

func ActivityStatuses() []ActivityStatus {
	return []ActivityStatus{ActivityCompleted, ActivityRunning, ActivityFailed}
}

func ParseActivityStatus(s string) (ActivityStatus, error) {
	return parse("activity status", s, ActivityStatuses())
}

func (s ActivityStatus) Badge() Badge {
	switch s {
	case ActivityCompleted:
		return Badge{Label: "Completed", Class: classGreen}
	case ActivityRunning:
		return Badge{Label: "Running", Class: classBlue}
	case ActivityFailed:
		return Badge{Label: "Failed", Class: classRed}
	}
	panic(unmapped("activity status", string(s)))
}

// SourceStatus is the connection state of a data source.
type SourceStatus string

const (
	SourceConnected    SourceStatus = "connected"
	SourceDisconnected SourceStatus = "disconnected"
	SourceError        SourceStatus = "error"
)

func SourceStatuses() []SourceStatus {
	return []SourceStatus{SourceConnected, SourceDisconnected, SourceError}
}

func ParseSourceStatus(s string) (SourceStatus, error) {
	return parse("source status", s, SourceStatuses())
}

func (s SourceStatus) Badge() Badge {
	switch s {
	case SourceConnected:
		return Badge{Label: "Connected", Class: classGreen}
	case SourceDisconnected:
		return Badge{Label: "Disconnected", Class: classGray}
	case SourceError:
		return Badge{Label: "Error", Class: classRed}
	}
	panic(unmapped("source status", string(s)))
}

// ModelStatus is the lifecycle stage of a generator model.
type ModelStatus string

const (
	ModelActive   ModelStatus = "active"
	ModelTraining ModelStatus = "training"
	ModelDraft    ModelStatus = "draft"
	ModelArchived ModelStatus = "archived"
)

func ModelStatuses() []ModelStatus {
	return []ModelStatus{ModelActive, ModelTraining, ModelDraft, ModelArchived}
}

func ParseModelStatus(s string) (ModelStatus, error) {
	return parse("model status", s, ModelStatuses())
}

func (s ModelStatus) Badge() Badge {
	switch s {
	case ModelActive:
		return Badge{Label: "Active", Class: classGreen}
	case ModelTraining:
		return Badge{Label: "Training", Class: classBlue}
	case ModelDraft:
		return Badge{Label: "Draft", Class: classYellow}
	case ModelArchived:
		return Badge{Label: "Archived", Class: classGray}
	}
	panic(unmapped("model status", string(s)))
}

// ModelType is the kind of data a model synthesises.
type ModelType string

const (
	ModelTabular    ModelType = "tabular"
	ModelTimeSeries ModelType = "time-series"
	ModelText       ModelType = "text"
	ModelImage      ModelType = "image"
)

func ModelTypes() []ModelType {
	return []ModelType{ModelTabular, ModelTimeSeries, ModelText, ModelImage}
}

func ParseModelType(s string) (ModelType, error) { return parse("model type", s, ModelTypes()) }

func (t ModelType) Badge() Badge {
	switch t {
	case ModelTabular:
		return Badge{Label: "Tabular", Class: classPurple}
	case ModelTimeSeries:
		return Badge{Label: "Time-series", Class: classIndigo}
	case ModelText:
		return Badge{Label: "Text", Class: classBlue}
	case ModelImage:
		return Badge{Label: "Image", Class: classEmerald}
	}
	panic(unmapped("model type", string(t)))
}

// JobStatus is the state of a generation job.
type JobStatus string

const (
	JobCompleted JobStatus = "completed"
	JobRunning   JobStatus = "running"
	JobFailed    JobStatus = "failed"
	JobQueued    JobStatus = "queued"
	JobCanceled  JobStatus = "canceled"
)

func JobStatuses() []JobStatus {
	return []JobStatus{JobCompleted, JobRunning, JobFailed, JobQueued, JobCanceled}
}

func ParseJobStatus(s string) (JobStatus, error) { return parse("job status", s, JobStatuses()) }

func (s JobStatus) Badge() Badge {
	switch s {
	case JobCompleted:
		return Badge{Label: "Completed", Class: classGreen}
	case JobRunning:
		return Badge{Label: "Running", Class: classBlue}
	case JobFailed:
		return Badge{Label: "Failed", Class: classRed}
	case JobQueued:
		return Badge{Label: "Queued", Class: classYellow}
	case JobCanceled:
		return Badge{Label: "Canceled", Class: classGray}
	}
	panic(unmapped("job status", string(s)))
}

// ExportType is the destination format of an export.
type ExportType string

const (
	ExportCSV     ExportType = "csv"
	ExportJSON    ExportType = "json"
	ExportParquet ExportType = "parquet"
	ExportSQL     ExportType = "sql"
	ExportAPI     ExportType = "api"
	ExportCustom  ExportType = "custom"
)

func ExportTypes() []ExportType {
	return []ExportType{ExportCSV, ExportJSON, ExportParquet, ExportSQL, ExportAPI, ExportCustom}
}

func ParseExportType(s string) (ExportType, error) { return parse("export type", s, ExportTypes()) }

func (t ExportType) Badge() Badge {
	switch t {
	case ExportCSV:
		return Badge{Label: "CSV", Class: classEmerald}
	case ExportJSON:
		return Badge{Label: "JSON", Class: classBlue}
	case ExportParquet:
		return Badge{Label: "Parquet", Class: classPurple}
	case ExportSQL:
		return Badge{Label: "SQL", Class: classIndigo}
	case ExportAPI:
		return Badge{Label: "API", Class: classAmber}
	case ExportCustom:
		return Badge{Label: "Custom", Class: classGray}
	}
	panic(unmapped("export type", string(t)))
}

// ExportStatus is the state of an export run.
type ExportStatus string

const (
	ExportCompleted ExportStatus = "completed"
	ExportRunning   ExportStatus = "running"
	ExportFailed    ExportStatus = "failed"
	ExportScheduled ExportStatus = "scheduled"
)

func ExportStatuses() []ExportStatus {
	return []ExportStatus{ExportCompleted, ExportRunning, ExportFailed, ExportScheduled}
}

func ParseExportStatus(s string) (ExportStatus, error) {
	return parse("export status", s, ExportStatuses())
}

func (s ExportStatus) Badge() Badge {
	switch s {
	case ExportCompleted:
		return Badge{Label: "Completed", Class: classGreen}
	case ExportRunning:
		return Badge{Label: "Running", Class: classBlue}
	case ExportFailed:
		return Badge{Label: "Failed", Class: classRed}
	case ExportScheduled:
		return Badge{Label: "Scheduled", Class: classYellow}
	}
	panic(unmapped("export status", string(s)))
}

// MemberStatus is a team member's account state.
type MemberStatus string

const (
	MemberActive   MemberStatus = "active"
	MemberInvited  MemberStatus = "invited"
	MemberInactive MemberStatus = "inactive"
)

func MemberStatuses() []MemberStatus {
	return []MemberStatus{MemberActive, MemberInvited, MemberInactive}
}

func ParseMemberStatus(s string) (MemberStatus, error) {
	return parse("member status", s, MemberStatuses())
}

func (s MemberStatus) Badge() Badge {
	switch s {
	case MemberActive:
		return Badge{Label: "Active", Class: classGreen}
	case MemberInvited:
		return Badge{Label: "Invited", Class: classYellow}
	case MemberInactive:
		return Badge{Label: "Inactive", Class: classGray}
	}
	panic(unmapped("member status", string(s)))
}
