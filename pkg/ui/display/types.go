// Package display defines the results commands hand to a renderer
package display

// Field is one labelled value within a result
type Field struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Value is the result of a command that produces a single string, such as
// normalize or join.
type Value struct {
	Command string `json:"command" yaml:"command"`
	Input   string `json:"input,omitempty" yaml:"input,omitempty"`
	Value   string `json:"value" yaml:"value"`
}

// Message reports the outcome of a command without a value, such as write
// or mkdir.
type Message struct {
	Command string `json:"command" yaml:"command"`
	Path    string `json:"path,omitempty" yaml:"path,omitempty"`
	Message string `json:"message" yaml:"message"`
}

// PathReport describes a path in every form crosspath knows about
type PathReport struct {
	Input     string `json:"input" yaml:"input"`
	Canonical string `json:"canonical" yaml:"canonical"`
	Posix     string `json:"posix" yaml:"posix"`
	Windows   string `json:"windows" yaml:"windows"`
	Current   string `json:"current" yaml:"current"`
	Absolute  bool   `json:"absolute" yaml:"absolute"`

	FileName  string `json:"fileName,omitempty" yaml:"fileName,omitempty"`
	FileStem  string `json:"fileStem,omitempty" yaml:"fileStem,omitempty"`
	Extension string `json:"extension,omitempty" yaml:"extension,omitempty"`
	Parent    string `json:"parent,omitempty" yaml:"parent,omitempty"`

	Exists bool `json:"exists" yaml:"exists"`
	IsFile bool `json:"isFile" yaml:"isFile"`
	IsDir  bool `json:"isDir" yaml:"isDir"`
}

// Fields returns the report as ordered key/value pairs. Empty optional
// values are left out.
func (r *PathReport) Fields() []Field {
	fields := []Field{
		{"input", r.Input},
		{"canonical", r.Canonical},
		{"posix", r.Posix},
		{"windows", r.Windows},
		{"current", r.Current},
		{"absolute", yesNo(r.Absolute)},
	}
	for _, f := range []Field{
		{"file name", r.FileName},
		{"file stem", r.FileStem},
		{"extension", r.Extension},
		{"parent", r.Parent},
	} {
		if f.Value != "" {
			fields = append(fields, f)
		}
	}
	return append(fields,
		Field{"exists", yesNo(r.Exists)},
		Field{"file", yesNo(r.IsFile)},
		Field{"directory", yesNo(r.IsDir)},
	)
}

// Bookmark is a named path from the configuration
type Bookmark struct {
	Name   string `json:"name" yaml:"name"`
	Path   string `json:"path" yaml:"path"`
	Native string `json:"native" yaml:"native"`
}

// BookmarkList is the result of listing bookmarks
type BookmarkList struct {
	Bookmarks []Bookmark `json:"bookmarks" yaml:"bookmarks"`
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
