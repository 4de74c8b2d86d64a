package layout

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/handiism/musica-packotron/internal/model"
)

func TestCreate(t *testing.T) {
	out := t.TempDir()

	root, err := Create(out, "Test Pack")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if want := filepath.Join(out, "Test Pack"); root != want {
		t.Errorf("Create() = %q, want %q", root, want)
	}
	if !filepath.IsAbs(root) {
		t.Errorf("Create() = %q, want absolute path", root)
	}

	for _, rel := range []string{
		"assets/musica/lang",
		"assets/musica/sounds/records",
		"assets/musica/textures/items",
	} {
		info, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel)))
		if err != nil || !info.IsDir() {
			t.Errorf("%s missing: %v", rel, err)
		}
	}
}

func TestCreate_AlreadyExists(t *testing.T) {
	out := t.TempDir()
	existing := filepath.Join(out, "Test Pack")
	if err := os.Mkdir(existing, 0755); err != nil {
		t.Fatal(err)
	}
	marker := filepath.Join(existing, "keep.txt")
	if err := os.WriteFile(marker, []byte("keep"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Create(out, "Test Pack")
	if !errors.Is(err, model.ErrAlreadyExists) {
		t.Fatalf("Create() error = %v, want ErrAlreadyExists", err)
	}
	if _, err := os.Stat(marker); err != nil {
		t.Errorf("existing content was touched: %v", err)
	}
	if _, err := os.Stat(filepath.Join(existing, "assets")); !os.IsNotExist(err) {
		t.Error("Create() must not add the skeleton to an existing directory")
	}
}

func TestCreate_MissingOutputRoot(t *testing.T) {
	out := filepath.Join(t.TempDir(), "does", "not", "exist")
	if _, err := Create(out, "Pack"); !errors.Is(err, model.ErrInvalidOutput) {
		t.Errorf("Create() error = %v, want ErrInvalidOutput", err)
	}
}

func TestPathHelpers(t *testing.T) {
	root := filepath.FromSlash("/out/Pack")
	tests := map[string]string{
		NamespaceDir(root): "/out/Pack/assets/musica",
		LangDir(root):      "/out/Pack/assets/musica/lang",
		RecordsDir(root):   "/out/Pack/assets/musica/sounds/records",
		ItemsDir(root):     "/out/Pack/assets/musica/textures/items",
	}
	for got, want := range tests {
		if got != filepath.FromSlash(want) {
			t.Errorf("got %q, want %q", got, want)
		}
	}
}
