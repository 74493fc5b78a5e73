package types

// GeneratorConfig holds settings for an index-generation run.
type GeneratorConfig struct {
	// Root is the directory tree to generate index files for (default ".").
	Root string `json:"root" yaml:"root"`

	// OutputName is the filename written into each visited directory
	// (default "index.md").
	OutputName string `json:"output_name" yaml:"output_name"`

	// ScriptURL is the Stan Playground embed script included at the top of
	// every embed-style index document.
	ScriptURL string `json:"script_url" yaml:"script_url"`

	// ExcludeDirs lists directory names that are never visited, in addition
	// to hidden directories (names starting with "."). Defaults to
	// node_modules, __pycache__, .git, _site.
	ExcludeDirs []string `json:"exclude_dirs" yaml:"exclude_dirs"`

	// GuardHeading is the literal heading the root README.md must begin
	// with before any file is written. Empty disables the guard.
	GuardHeading string `json:"guard_heading" yaml:"guard_heading"`

	// RespectGitignore additionally skips directories matched by a
	// root-level .gitignore file.
	RespectGitignore bool `json:"respect_gitignore" yaml:"respect_gitignore"`

	// ReportPath, when set, is where the YAML run report is saved.
	ReportPath string `json:"report_path,omitempty" yaml:"report_path,omitempty"`

	// HistoryDB, when set, is the SQLite database recording completed runs.
	HistoryDB string `json:"history_db,omitempty" yaml:"history_db,omitempty"`
}

// Defaults for GeneratorConfig fields left unset.
const (
	DefaultOutputName   = "index.md"
	DefaultScriptURL    = "https://stan-playground.flatironinstitute.org/stan-playground-embed.js"
	DefaultGuardHeading = "# Stan Playground"
)

// DefaultExcludeDirs returns the fixed denylist of build and cache
// directories.
func DefaultExcludeDirs() []string {
	return []string{"node_modules", "__pycache__", ".git", "_site"}
}

// ApplyDefaults fills zero-valued fields with their defaults.
func (c *GeneratorConfig) ApplyDefaults() {
	if c.Root == "" {
		c.Root = "."
	}
	if c.OutputName == "" {
		c.OutputName = DefaultOutputName
	}
	if c.ScriptURL == "" {
		c.ScriptURL = DefaultScriptURL
	}
	if c.ExcludeDirs == nil {
		c.ExcludeDirs = DefaultExcludeDirs()
	}
}
