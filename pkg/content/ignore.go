// Package content turns markdown folders into nav forests.
// This file handles the .treelineignore file and automatic .gitignore
// management for the .treeline state directory.
package content

import (
	"bufio"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// IgnoreFileName is looked up at the scan root.
const IgnoreFileName = ".treelineignore"

// StateDirName holds treeline's per-project state (nav-state.json etc).
const StateDirName = ".treeline"

// Ignore is a parsed .treelineignore: one pattern per line, blank lines and
// '#' comments skipped. A pattern ending in '/' matches directories by name
// or relative path; any other pattern matches a file's base name or relative
// path exactly.
type Ignore struct {
	dirs  map[string]bool
	files map[string]bool
}

// LoadIgnore reads dir's ignore file. A missing file yields an empty
// matcher; scanning proceeds without ignores.
func LoadIgnore(dir string) *Ignore {
	ig := &Ignore{dirs: make(map[string]bool), files: make(map[string]bool)}
	f, err := os.Open(filepath.Join(dir, IgnoreFileName))
	if err != nil {
		return ig
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if d, ok := strings.CutSuffix(line, "/"); ok {
			ig.dirs[d] = true
		} else {
			ig.files[line] = true
		}
	}
	return ig
}

// Match reports whether the entry at rel (slash-separated, relative to the
// scan root) should be skipped.
func (ig *Ignore) Match(rel string, isDir bool) bool {
	base := path.Base(rel)
	if isDir {
		return ig.dirs[base] || ig.dirs[rel]
	}
	return ig.files[base] || ig.files[rel]
}

// EnsureStateIgnored ensures the .treeline/ state directory is listed in the
// project's .gitignore so per-user navigation state stays out of version
// control. Idempotent: existing entries in any common spelling are detected
// and the file is left alone.
func EnsureStateIgnored(projectDir string) error {
	if projectDir == "" {
		var err error
		projectDir, err = os.Getwd()
		if err != nil {
			return err
		}
	}
	gitignorePath := filepath.Join(projectDir, ".gitignore")

	present, err := stateDirListed(gitignorePath)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	if present {
		return nil
	}
	return appendIgnoreEntry(gitignorePath, StateDirName+"/")
}

// stateDirListed checks whether .treeline is already covered, accepting
// .treeline, .treeline/, .treeline/* and .treeline/**.
func stateDirListed(gitignorePath string) (bool, error) {
	f, err := os.Open(gitignorePath)
	if err != nil {
		return false, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case StateDirName, StateDirName + "/", StateDirName + "/*", StateDirName + "/**":
			return true, nil
		}
	}
	return false, scanner.Err()
}

// appendIgnoreEntry appends entry to the .gitignore file, creating it when
// missing and keeping a blank-line separator from existing content.
func appendIgnoreEntry(gitignorePath, entry string) error {
	content, err := os.ReadFile(gitignorePath)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	f, err := os.OpenFile(gitignorePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	var toWrite string
	if len(content) > 0 {
		if content[len(content)-1] != '\n' {
			toWrite = "\n"
		}
		toWrite += "\n"
	}
	toWrite += "# treeline local navigation state\n" + entry + "\n"

	_, err = f.WriteString(toWrite)
	return err
}
