package scanner

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fjglira/opml2org/internal/domain"
)

// Source is an OPML file found under a scan root.
type Source struct {
	Root string // Directory the scan started from
	Path string // Path to the file, joined with Root
	Rel  string // Path relative to Root
}

// Scanner discovers OPML files in a directory tree.
type Scanner interface {
	Scan(rootDir string, includes, excludes []string) ([]Source, error)
}

// FileScanner implements Scanner using filepath.WalkDir.
type FileScanner struct {
	Recursive bool
}

// NewScanner creates a new FileScanner.
func NewScanner(recursive bool) *FileScanner {
	return &FileScanner{Recursive: recursive}
}

// Scan walks rootDir and returns the files matching any include pattern and
// no exclude pattern, sorted by relative path.
func (s *FileScanner) Scan(rootDir string, includes, excludes []string) ([]Source, error) {
	var sources []Source

	err := filepath.WalkDir(rootDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, relErr := filepath.Rel(rootDir, path)
		if relErr != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if rel == "." {
				return nil
			}
			if !s.Recursive || matchAny(rel, excludes) || matchAny(rel+"/", excludes) {
				return filepath.SkipDir
			}
			return nil
		}

		if matchAny(rel, excludes) || !matchAny(rel, includes) {
			return nil
		}
		sources = append(sources, Source{Root: rootDir, Path: path, Rel: rel})
		return nil
	})

	if err != nil {
		return nil, domain.NewError("scan", rootDir, 0, "failed to scan directory", err)
	}

	sort.Slice(sources, func(i, j int) bool { return sources[i].Rel < sources[j].Rel })
	return sources, nil
}

func matchAny(rel string, patterns []string) bool {
	for _, p := range patterns {
		if matchGlob(rel, p) {
			return true
		}
	}
	return false
}

// matchGlob matches a slash-separated relative path against a glob pattern.
// "**" matches any number of path segments. Patterns without a slash are
// matched against the base name too.
func matchGlob(rel, pattern string) bool {
	if prefix, suffix, ok := strings.Cut(pattern, "**"); ok {
		prefix = strings.TrimSuffix(prefix, "/")
		suffix = strings.TrimPrefix(suffix, "/")

		if prefix != "" {
			if rel != prefix && !strings.HasPrefix(rel, prefix+"/") {
				return false
			}
			rel = strings.TrimPrefix(strings.TrimPrefix(rel, prefix), "/")
		}
		if suffix == "" {
			return true
		}

		parts := strings.Split(rel, "/")
		for i := range parts {
			if matchGlob(strings.Join(parts[i:], "/"), suffix) {
				return true
			}
		}
		return false
	}

	if matched, _ := filepath.Match(pattern, rel); matched {
		return true
	}
	if !strings.Contains(pattern, "/") {
		matched, _ := filepath.Match(pattern, baseName(rel))
		return matched
	}
	return false
}

func baseName(rel string) string {
	if i := strings.LastIndex(rel, "/"); i >= 0 {
		return rel[i+1:]
	}
	return rel
}
