package componentfile

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/AntonioJCosta/aliasmap/internal/core/domain/component"
)

// manageTestFile writes content to dir/name and returns the path.
func manageTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file %s: %v", path, err)
	}
	return path
}

func TestNewFileRepository(t *testing.T) {
	tests := []struct {
		name              string
		path              string
		wantErr           bool
		wantErrorContains string
	}{
		{name: "yaml", path: "/tmp/c.yaml"},
		{name: "yml", path: "/tmp/c.yml"},
		{name: "toml upper case extension", path: "/tmp/c.TOML"},
		{name: "empty path", path: "", wantErr: true, wantErrorContains: "cannot be empty"},
		{name: "unknown extension", path: "/tmp/c.json", wantErr: true, wantErrorContains: `unsupported component file extension ".json"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, err := NewFileRepository(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewFileRepository(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if tt.wantErr {
				if !strings.Contains(err.Error(), tt.wantErrorContains) {
					t.Errorf("NewFileRepository(%q) error = %q, want error containing %q", tt.path, err.Error(), tt.wantErrorContains)
				}
				return
			}
			if _, ok := repo.(*FileRepository); !ok {
				t.Errorf("NewFileRepository() did not return a *FileRepository, got %T", repo)
			}
		})
	}
}

func TestFileRepository_LoadComponents(t *testing.T) {
	validYAML := `
components:
  - name: kubectl
    aliases: [k, kc]
    command: kubectl
    description: Kubernetes CLI
  - name: terraform
    aliases:
      - tf
`
	validTOML := `
[[components]]
name = "kubectl"
aliases = ["k", "kc"]
command = "kubectl"
description = "Kubernetes CLI"

[[components]]
name = "terraform"
aliases = ["tf"]
`
	want := []component.Component{
		{Name: "kubectl", Aliases: []string{"k", "kc"}, Command: "kubectl", Description: "Kubernetes CLI"},
		{Name: "terraform", Aliases: []string{"tf"}},
	}

	tests := []struct {
		name                string
		filename            string
		content             *string // nil means the file is not created
		want                []component.Component
		wantErr             bool
		wantErrorMsgSnippet string
	}{
		{name: "missing file", filename: "missing.yaml", want: []component.Component{}},
		{name: "empty file", filename: "empty.yaml", content: ptr(""), want: []component.Component{}},
		{name: "only comments", filename: "comments.yaml", content: ptr("# nothing yet\n"), want: []component.Component{}},
		{name: "null list", filename: "null.yaml", content: ptr("components:\n"), want: []component.Component{}},
		{name: "valid yaml", filename: "c.yaml", content: ptr(validYAML), want: want},
		{name: "valid toml", filename: "c.toml", content: ptr(validTOML), want: want},
		{
			name:                "yaml unknown field",
			filename:            "bad.yaml",
			content:             ptr("components:\n  - name: x\n    alias: y\n"),
			wantErr:             true,
			wantErrorMsgSnippet: "failed to parse component file",
		},
		{
			name:                "toml unknown field",
			filename:            "bad.toml",
			content:             ptr("[[components]]\nname = \"x\"\nalias = \"y\"\n"),
			wantErr:             true,
			wantErrorMsgSnippet: "unknown fields: components.alias",
		},
		{
			name:                "yaml wrong structure",
			filename:            "list.yaml",
			content:             ptr("- name: x\n"),
			wantErr:             true,
			wantErrorMsgSnippet: "failed to parse component file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, tt.filename)
			if tt.content != nil {
				path = manageTestFile(t, dir, tt.filename, *tt.content)
			}
			repo, err := NewFileRepository(path)
			if err != nil {
				t.Fatalf("NewFileRepository() failed unexpectedly: %v", err)
			}

			got, err := repo.LoadComponents()
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadComponents() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !strings.Contains(err.Error(), tt.wantErrorMsgSnippet) {
					t.Errorf("LoadComponents() error = %q, want error to contain %q", err.Error(), tt.wantErrorMsgSnippet)
				}
				if got != nil {
					t.Errorf("LoadComponents() expected nil components on error, got %#v", got)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("LoadComponents() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestFileRepository_SaveComponents(t *testing.T) {
	components := []component.Component{
		{Name: "zeta", Aliases: []string{"z"}, Command: "echo zeta"},
		{Name: "alpha", Description: "first letter"},
	}

	for _, filename := range []string{"components.yaml", "components.toml"} {
		t.Run(filename, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", filename)
			repo, err := NewFileRepository(path)
			if err != nil {
				t.Fatalf("NewFileRepository() failed unexpectedly: %v", err)
			}

			if err := repo.SaveComponents(components); err != nil {
				t.Fatalf("SaveComponents() error = %v", err)
			}
			got, err := repo.LoadComponents()
			if err != nil {
				t.Fatalf("LoadComponents() after save error = %v", err)
			}
			if !reflect.DeepEqual(got, components) {
				t.Errorf("LoadComponents() after save = %#v, want %#v", got, components)
			}

			info, err := os.Stat(path)
			if err != nil {
				t.Fatalf("Stat(%s) error = %v", path, err)
			}
			if perm := info.Mode().Perm(); perm != 0644 {
				t.Errorf("file mode = %v, want 0644", perm)
			}
		})
	}
}

func TestFileRepository_SaveEmptyThenLoad(t *testing.T) {
	repo, err := NewFileRepository(filepath.Join(t.TempDir(), "c.yaml"))
	if err != nil {
		t.Fatalf("NewFileRepository() failed unexpectedly: %v", err)
	}
	if err := repo.SaveComponents(nil); err != nil {
		t.Fatalf("SaveComponents(nil) error = %v", err)
	}
	got, err := repo.LoadComponents()
	if err != nil {
		t.Fatalf("LoadComponents() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("LoadComponents() = %#v, want empty", got)
	}
}

func ptr(s string) *string {
	return &s
}
