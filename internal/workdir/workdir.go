// Package workdir locates the alertkit project for a working directory and
// the state files kept under its .alertkit directory.
package workdir

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/marcus/alertkit/internal/config"
)

const (
	rootFile = ".alertkit-root"
	stateDir = ".alertkit"
)

// Source records how a project root was found.
type Source int

const (
	SourceCwd Source = iota
	SourceRootFile
	SourceStateDir
	SourceGit
)

func (s Source) String() string {
	switch s {
	case SourceRootFile:
		return "root-file"
	case SourceStateDir:
		return "state-dir"
	case SourceGit:
		return "git"
	default:
		return "cwd"
	}
}

// MarshalText encodes the source by name.
func (s Source) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Project is the directory alertkit keeps its state under.
type Project struct {
	Root   string `json:"root"`
	Source Source `json:"source"`
}

// Paths are the files a project uses, after config overrides.
type Paths struct {
	Config  string `json:"config"`
	Journal string `json:"journal"`
	Log     string `json:"log"`
	Theme   string `json:"theme,omitempty"`
}

// Find walks up from dir looking for a .alertkit-root redirect or a
// .alertkit directory, nearest first. Without either it settles on the git
// top level, then on dir itself.
func Find(dir string) Project {
	if dir == "" {
		return Project{}
	}
	dir = filepath.Clean(dir)

	for d := dir; ; {
		if target, ok := readRoot(d); ok {
			return Project{Root: target, Source: SourceRootFile}
		}
		if hasStateDir(d) {
			return Project{Root: d, Source: SourceStateDir}
		}
		parent := filepath.Dir(d)
		if parent == d {
			break
		}
		d = parent
	}

	if top, err := gitTopLevel(dir); err == nil && top != "" {
		return Project{Root: filepath.Clean(top), Source: SourceGit}
	}
	return Project{Root: dir, Source: SourceCwd}
}

// StateDir is the project's .alertkit directory.
func (p Project) StateDir() string {
	return config.Dir(p.Root)
}

// Paths resolves cfg's file settings against the project root.
func (p Project) Paths(cfg *config.Config) Paths {
	if cfg == nil {
		cfg = &config.Config{}
	}
	return Paths{
		Config:  config.File(p.Root),
		Journal: cfg.JournalFile(p.Root),
		Log:     cfg.Log(p.Root),
		Theme:   cfg.Theme(p.Root),
	}
}

func readRoot(dir string) (string, bool) {
	content, err := os.ReadFile(filepath.Join(dir, rootFile))
	if err != nil {
		return "", false
	}
	target := strings.TrimSpace(string(content))
	if target == "" {
		return "", false
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(dir, target)
	}
	return filepath.Clean(target), true
}

func hasStateDir(dir string) bool {
	fi, err := os.Stat(filepath.Join(dir, stateDir))
	return err == nil && fi.IsDir()
}

func gitTopLevel(dir string) (string, error) {
	out, err := exec.Command("git", "-C", dir, "rev-parse", "--show-toplevel").Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
