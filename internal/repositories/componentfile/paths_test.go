package componentfile

import (
	"os/user"
	"path/filepath"
	"testing"
)

func TestResolvePath(t *testing.T) {
	currentUser, err := user.Current()
	if err != nil {
		t.Fatalf("Failed to get current user for test setup: %v", err)
	}

	tests := []struct {
		name     string
		explicit string
		env      string
		want     string
	}{
		{name: "explicit wins", explicit: "/x/flag.toml", env: "/x/env.yaml", want: "/x/flag.toml"},
		{name: "environment", env: "/x/env.yaml", want: "/x/env.yaml"},
		{name: "default", want: filepath.Join(currentUser.HomeDir, ".aliasmap", "components.yaml")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvFile, tt.env)
			got, err := ResolvePath(tt.explicit)
			if err != nil {
				t.Fatalf("ResolvePath(%q) error = %v", tt.explicit, err)
			}
			if got != tt.want {
				t.Errorf("ResolvePath(%q) = %q, want %q", tt.explicit, got, tt.want)
			}
		})
	}
}

func TestToUserFriendlyPath(t *testing.T) {
	currentUser, err := user.Current()
	if err != nil {
		t.Fatalf("Failed to get current user for test setup: %v", err)
	}
	home := currentUser.HomeDir

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "home itself", in: home, want: "~"},
		{name: "inside home", in: filepath.Join(home, ".aliasmap", "components.yaml"), want: filepath.Join("~", ".aliasmap", "components.yaml")},
		{name: "sibling with common prefix", in: home + "x/file", want: home + "x/file"},
		{name: "outside home", in: "/definitely/elsewhere", want: "/definitely/elsewhere"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toUserFriendlyPath(tt.in); got != tt.want {
				t.Errorf("toUserFriendlyPath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
