package manifest

// Manifest is a batch of files to stage.
type Manifest struct {
	MinVersion string  `yaml:"min_version,omitempty" json:"min_version,omitempty"`
	Files      []Entry `yaml:"files" json:"files"`
}

// Entry describes one file. Exactly one of Content, Source or Empty is set.
type Entry struct {
	Name    string  `yaml:"name,omitempty" json:"name,omitempty"`
	Area    string  `yaml:"area,omitempty" json:"area,omitempty"`
	Unique  *bool   `yaml:"unique,omitempty" json:"unique,omitempty"`
	Content *string `yaml:"content,omitempty" json:"content,omitempty"`
	Source  string  `yaml:"source,omitempty" json:"source,omitempty"`
	Empty   bool    `yaml:"empty,omitempty" json:"empty,omitempty"`
}

// Area values.
const (
	AreaSession   = "session"
	AreaPermanent = "permanent"
)

// Action records what Apply did for an entry.
type Action string

const (
	ActionCreated    Action = "created"    // empty file created
	ActionWritten    Action = "written"    // file created with inline content
	ActionImported   Action = "imported"   // external file copied into the session area
	ActionRecognized Action = "recognized" // source already lived in a managed area
)

// Result is the outcome of one applied entry.
type Result struct {
	Index  int    `json:"index"`
	Action Action `json:"action"`
	Area   string `json:"area"`
	Path   string `json:"path"` // absolute path of the staged file
}
