package lang

import (
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// HomeFunc returns the absolute path of the current user's home directory.
type HomeFunc func() (string, error)

// AbsPath is a normalized absolute file path: a list of directory names
// below the root and a file name.
//
// Dirs never contains "", "." or "..", and Name is never "", "." or "..".
// Two AbsPaths name the same file iff they are [AbsPath.Equal].
type AbsPath struct {
	Dirs []string
	Name string
}

// ParseAbsPath parses text as an absolute path. The text must start with
// '/' or with the segment "~", which expands to the directory returned by
// home.
func ParseAbsPath(text string, home HomeFunc) (AbsPath, error) {
	seg := strings.Split(text, "/")

	var dirs []string

	switch seg[0] {
	case "":
		if text == "" {
			return AbsPath{}, ErrExpectAbsolute.With(slog.String("path", text))
		}

	case "~":
		var err error
		if dirs, err = homeDirs(home); err != nil {
			return AbsPath{}, err
		}

	default:
		return AbsPath{}, ErrExpectAbsolute.With(slog.String("path", text))
	}

	return build(dirs, seg[1:], text)
}

// Join resolves the relative path rel against the directory containing p.
func (p AbsPath) Join(rel string) (AbsPath, error) {
	if rel == "" || strings.HasPrefix(rel, "/") {
		return AbsPath{}, ErrExpectRelative.With(slog.String("path", rel))
	}

	return build(slices.Clone(p.Dirs), strings.Split(rel, "/"), rel)
}

// Resolve interprets text as an absolute path if it starts with '/' or '~'
// and as a path relative to the directory containing p otherwise.
func (p AbsPath) Resolve(text string, home HomeFunc) (AbsPath, error) {
	if strings.HasPrefix(text, "/") || strings.HasPrefix(text, "~") {
		return ParseAbsPath(text, home)
	}

	return p.Join(text)
}

// Dir returns the directory containing p, always with a leading '/'.
func (p AbsPath) Dir() string {
	return "/" + strings.Join(p.Dirs, "/")
}

// String returns p as "/d1/.../dn/name".
func (p AbsPath) String() string {
	if len(p.Dirs) == 0 {
		return "/" + p.Name
	}

	return "/" + strings.Join(p.Dirs, "/") + "/" + p.Name
}

// Equal reports whether p and q name the same file.
func (p AbsPath) Equal(q AbsPath) bool {
	return p.Name == q.Name && slices.Equal(p.Dirs, q.Dirs)
}

// IsZero reports whether p is the zero AbsPath.
func (p AbsPath) IsZero() bool { return p.Name == "" && len(p.Dirs) == 0 }

// LogValue implements slog.LogValuer.
func (p AbsPath) LogValue() slog.Value { return slog.StringValue(p.String()) }

// Canonical returns the absolute, symlink-free path of the named file in
// the host file system.
func Canonical(name string) (AbsPath, error) {
	abs, err := filepath.Abs(name)
	if err != nil {
		return AbsPath{}, ErrNoSuchFile.With(slog.String("path", name)).Wrap(err)
	}

	if abs, err = filepath.EvalSymlinks(abs); err != nil {
		return AbsPath{}, ErrNoSuchFile.With(slog.String("path", name)).Wrap(err)
	}

	return ParseAbsPath(filepath.ToSlash(abs), nil)
}

// WorkPath returns the path of a virtual file named name in the current
// working directory. It anchors sources that do not come from a file, such
// as standard input, so that their relative includes resolve.
func WorkPath(name string) (AbsPath, error) {
	wd, err := os.Getwd()
	if err != nil {
		return AbsPath{}, ErrNoSuchFile.With(slog.String("path", name)).Wrap(err)
	}

	return ParseAbsPath(strings.TrimSuffix(filepath.ToSlash(wd), "/")+"/"+name, nil)
}

// build walks seg on top of dirs and takes the last segment as file name.
func build(dirs, seg []string, text string) (AbsPath, error) {
	if len(seg) == 0 || !validName(seg[len(seg)-1]) {
		return AbsPath{}, ErrFileName.With(slog.String("path", text))
	}

	return AbsPath{
		Dirs: walk(dirs, seg[:len(seg)-1]),
		Name: seg[len(seg)-1],
	}, nil
}

// walk applies each directory segment to dirs: empty and "." segments are
// skipped, ".." removes the last directory (a no-op at the root).
func walk(dirs, seg []string) []string {
	for _, s := range seg {
		switch s {
		case "", ".":
		case "..":
			if len(dirs) > 0 {
				dirs = dirs[:len(dirs)-1]
			}
		default:
			dirs = append(dirs, s)
		}
	}

	return dirs
}

func validName(name string) bool {
	return name != "" && name != "." && name != ".."
}

func homeDirs(home HomeFunc) ([]string, error) {
	if home == nil {
		return nil, ErrNoHomeDir
	}

	dir, err := home()
	if err != nil {
		return nil, ErrNoHomeDir.Wrap(err)
	}

	dir = filepath.ToSlash(dir)
	if !strings.HasPrefix(dir, "/") {
		return nil, ErrNoHomeDir.With(slog.String("home", dir))
	}

	return walk(nil, strings.Split(dir, "/")), nil
}
