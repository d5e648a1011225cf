package output

// CleanOutput is the machine-readable payload for clean and check runs.
type CleanOutput struct {
	Files   []CleanFileResult `json:"files"`
	Summary CleanSummary      `json:"summary"`
}

// CleanFileResult reports the outcome for a single input.
type CleanFileResult struct {
	Path     string         `json:"path"`
	Changed  bool           `json:"changed"`
	Written  bool           `json:"written"`
	Error    string         `json:"error,omitempty"`
	Warnings []CleanWarning `json:"warnings,omitempty"`
}

// CleanWarning describes one character that could not be mapped.
type CleanWarning struct {
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Char    string `json:"char"`
	Name    string `json:"name"`
	Context string `json:"context,omitempty"`
}

// CleanSummary aggregates counts across a run.
type CleanSummary struct {
	Files    int `json:"files"`
	Changed  int `json:"changed"`
	Written  int `json:"written"`
	Unmapped int `json:"unmapped"`
	Errors   int `json:"errors"`
}

// TableOutput is the machine-readable form of a substitution table.
type TableOutput struct {
	Mode     string       `json:"mode"`
	Fallback string       `json:"fallback"`
	Entries  []TableEntry `json:"entries"`
}

// TableEntry is one row of a table listing.
type TableEntry struct {
	Code        string `json:"code"`
	Char        string `json:"char"`
	Name        string `json:"name"`
	Replacement string `json:"replacement"`
}

// VersionInfo is the machine-readable version payload.
type VersionInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
}
