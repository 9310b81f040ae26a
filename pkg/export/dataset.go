package export

// Dataset defines tabular export content.
type Dataset struct {
	Headers []string
	Rows    []map[string]string
}

// Section pairs a dataset with its display heading.
type Section struct {
	Title string
	Data  Dataset
}

// Report is a titled sequence of tabular sections.
type Report struct {
	Title    string
	Sections []Section
}
