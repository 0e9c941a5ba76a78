package genre

// Seed describes a genre created when the taxonomy is empty.
type Seed struct {
	Name        string
	Description string
}

// Defaults are installed on first start.
var Defaults = []Seed{
	{Name: "Fiction", Description: "Novels and short stories."},
	{Name: "Non-Fiction", Description: "Essays, reportage and reference works."},
	{Name: "Science Fiction", Description: "Speculative stories about science and the future."},
	{Name: "Romance"},
	{Name: "Mystery"},
	{Name: "Biography"},
}

// SampleFallback is what the sample-data generator installs when no genres exist.
var SampleFallback = []Seed{
	{Name: "Fantasy"},
	{Name: "Horror"},
	{Name: "Science Fiction"},
	{Name: "Romance"},
}
