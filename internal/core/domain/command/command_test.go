package command

import "testing"

func TestAnalysis_Initials(t *testing.T) {
	tests := []struct {
		name     string
		analysis Analysis
		want     string
	}{
		{name: "empty executable", analysis: Analysis{}, want: ""},
		{name: "executable only", analysis: Analysis{Executable: "Make"}, want: "m"},
		{
			name:     "flags are skipped",
			analysis: Analysis{Executable: "kubectl", Args: []string{"get", "-n", "kube-system", "pods", ""}},
			want:     "kgkp",
		},
		{
			name:     "non-ASCII first letters",
			analysis: Analysis{Executable: "Über", Args: []string{"Écrire", "ñame"}},
			want:     "üéñ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.analysis.Initials(); got != tt.want {
				t.Errorf("Initials() = %q, want %q", got, tt.want)
			}
		})
	}
}
