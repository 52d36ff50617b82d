package pkg

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestIdentity(t *testing.T) {
	if Name != "defiro" {
		t.Errorf("Name = %q", Name)
	}

	if Description == "" {
		t.Error("Description is empty")
	}

	if !strings.HasPrefix(Extension, ".") {
		t.Errorf("Extension = %q", Extension)
	}
}

func TestVersion(t *testing.T) {
	buf, err := os.ReadFile("VERSION")
	if err != nil {
		t.Fatalf("failed to read VERSION file: %v", err)
	}

	if want := strings.TrimSpace(string(buf)); Version() != want {
		t.Errorf("Version() = %q, want %q", Version(), want)
	}

	if strings.ContainsAny(Version(), " \n") {
		t.Errorf("Version() is not trimmed: %q", Version())
	}
}

func TestAuthor(t *testing.T) {
	if len(Author) == 0 {
		t.Fatal("expected at least one author")
	}

	for i, author := range Author {
		if author.Name == "" && author.Email == "" {
			t.Errorf("Author[%d] must define at least Name or Email", i)
		}
	}
}

func TestConfigPath(t *testing.T) {
	if got := ConfigPath(); got != ConfigDir() {
		t.Errorf("ConfigPath() = %q, want %q", got, ConfigDir())
	}

	want := filepath.Join(ConfigDir(), "config.yaml")
	if got := ConfigPath("config.yaml"); got != want {
		t.Errorf("ConfigPath(config.yaml) = %q, want %q", got, want)
	}

	if filepath.Base(ConfigDir()) != Prefix() || filepath.Base(CacheDir()) != Prefix() {
		t.Errorf("directories %q, %q do not end in %q", ConfigDir(), CacheDir(), Prefix())
	}
}
