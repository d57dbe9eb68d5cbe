package badge

// Entry is one row of the badge catalog.
type Entry struct {
	Enum  string `json:"enum"`
	Value string `json:"value"`
	Badge Badge  `json:"badge"`
}

// Catalog lists every enum value with its badge, for the CLI and tests.
func Catalog() []Entry {
	var out []Entry
	add := func(enum, value string, b Badge) {
		out = append(out, Entry{Enum: enum, Value: value, Badge: b})
	}
	for _, v := range TestStatuses() {
		add("test_status", string(v), v.Badge())
	}
	for _, v := range ActivityStatuses() {
		add("activity_status", string(v), v.Badge())
	}
	for _, v := range SourceStatuses() {
		add("source_status", string(v), v.Badge())
	}
	for _, v := range ModelStatuses() {
		add("model_status", string(v), v.Badge())
	}
	for _, v := range ModelTypes() {
		add("model_type", string(v), v.Badge())
	}
	for _, v := range JobStatuses() {
		add("job_status", string(v), v.Badge())
	}
	for _, v := range ExportTypes() {
		add("export_type", string(v), v.Badge())
	}
	for _, v := range ExportStatuses() {
		add("export_status", string(v), v.Badge())
	}
	for _, v := range MemberStatuses() {
		add("member_status", string(v), v.Badge())
	}
	return out
}
