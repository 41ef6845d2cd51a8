// Package scanner walks a project tree and collects the metadata that
// detection, classification, and prompt assembly operate on.
package scanner

// ProjectFile is one filesystem entry discovered during a scan.
type ProjectFile struct {
	// Path is the absolute filesystem path of the entry.
	Path string `json:"path"`

	// RelPath is the path relative to the scan root, using forward slashes.
	RelPath string `json:"rel_path"`

	// Name is the base name of the entry.
	Name string `json:"name"`

	// Ext is the lowercased extension including the leading dot ("" for none).
	Ext string `json:"ext"`

	// IsDir indicates whether the entry is a directory.
	IsDir bool `json:"is_dir"`
}

// ProjectInfo is the aggregate result of one scan. ConfigFiles and
// SourceFiles are subsets of Files derived by static name/extension
// matching; they are never mutated independently.
type ProjectInfo struct {
	// Name is the display name, taken from the manifest when present and
	// falling back to the root directory name.
	Name string `json:"name"`

	// Root is the absolute path of the scanned directory.
	Root string `json:"root"`

	// Files is the full list of discovered entries.
	Files []ProjectFile `json:"files"`

	// Manifest is the parsed package manifest, or nil when absent or
	// unparseable.
	Manifest *Manifest `json:"manifest,omitempty"`

	// HasReadme indicates whether a README.md exists at the root.
	HasReadme bool `json:"has_readme"`

	// ReadmeContent is the existing README text ("" when absent).
	ReadmeContent string `json:"-"`

	// ConfigFiles is the subset of Files recognized as configuration files.
	ConfigFiles []ProjectFile `json:"config_files"`

	// SourceFiles is the subset of Files recognized as source code.
	SourceFiles []ProjectFile `json:"source_files"`

	// FileCount is the number of non-directory entries in Files.
	FileCount int `json:"file_count"`
}

// Manifest is a Node-style package descriptor. Fields that can take more
// than one JSON shape (bin, exports, workspaces) are kept loose and
// accessed through helpers.
type Manifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Description     string            `json:"description"`
	License         string            `json:"license"`
	Private         bool              `json:"private"`
	Main            string            `json:"main"`
	Types           string            `json:"types"`
	Module          string            `json:"module"`
	Exports         any               `json:"exports"`
	Bin             any               `json:"bin"`
	Keywords        []string          `json:"keywords"`
	Scripts         map[string]string `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
	Workspaces      any               `json:"workspaces"`
}

// HasDependency reports whether name appears in dependencies or
// devDependencies.
func (m *Manifest) HasDependency(name string) bool {
	if m == nil {
		return false
	}
	if _, ok := m.Dependencies[name]; ok {
		return true
	}
	_, ok := m.DevDependencies[name]
	return ok
}

// HasDevDependency reports whether name appears in devDependencies only.
func (m *Manifest) HasDevDependency(name string) bool {
	if m == nil {
		return false
	}
	_, ok := m.DevDependencies[name]
	return ok
}

// HasWorkspaces reports whether the manifest declares a workspaces field
// (npm/yarn array form or yarn object form).
func (m *Manifest) HasWorkspaces() bool {
	if m == nil || m.Workspaces == nil {
		return false
	}
	switch w := m.Workspaces.(type) {
	case []any:
		return len(w) > 0
	case map[string]any:
		return len(w) > 0
	}
	return false
}

// HasBin reports whether the manifest declares an executable entry point.
func (m *Manifest) HasBin() bool {
	if m == nil || m.Bin == nil {
		return false
	}
	switch b := m.Bin.(type) {
	case string:
		return b != ""
	case map[string]any:
		return len(b) > 0
	}
	return false
}

// HasExports reports whether the manifest declares an exports map or string.
func (m *Manifest) HasExports() bool {
	if m == nil || m.Exports == nil {
		return false
	}
	switch e := m.Exports.(type) {
	case string:
		return e != ""
	case map[string]any:
		return len(e) > 0
	}
	return false
}

// HasFile reports whether any non-directory entry has the given base name.
func (p *ProjectInfo) HasFile(name string) bool {
	for _, f := range p.Files {
		if !f.IsDir && f.Name == name {
			return true
		}
	}
	return false
}

// HasDir reports whether any directory entry has the given base name.
func (p *ProjectInfo) HasDir(name string) bool {
	for _, f := range p.Files {
		if f.IsDir && f.Name == name {
			return true
		}
	}
	return false
}

// HasExt reports whether any non-directory entry has the given lowercased
// extension (including the leading dot).
func (p *ProjectInfo) HasExt(ext string) bool {
	for _, f := range p.Files {
		if !f.IsDir && f.Ext == ext {
			return true
		}
	}
	return false
}

// HasFilePrefix reports whether any non-directory entry's base name starts
// with the given prefix.
func (p *ProjectInfo) HasFilePrefix(prefix string) bool {
	for _, f := range p.Files {
		if !f.IsDir && len(f.Name) >= len(prefix) && f.Name[:len(prefix)] == prefix {
			return true
		}
	}
	return false
}

// TopLevelDirs returns the names of directories directly under the root,
// in discovery order.
func (p *ProjectInfo) TopLevelDirs() []string {
	var dirs []string
	for _, f := range p.Files {
		if f.IsDir && f.RelPath == f.Name {
			dirs = append(dirs, f.Name)
		}
	}
	return dirs
}
