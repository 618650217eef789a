package octopus

import "testing"

// TestProductCode verifies leftmost-match extraction from tariff codes.
func TestProductCode(t *testing.T) {
	tests := []struct {
		name       string
		tariffCode string
		want       string
	}{
		{
			name:       "two segment product",
			tariffCode: "E-1R-AGILE-FLEX-22-11-25-B",
			want:       "AGILE-FLEX-22-11-25",
		},
		{
			name:       "single segment product matches from register marker",
			tariffCode: "E-1R-VAR-22-11-01",
			want:       "R-VAR-22-11-01",
		},
		{
			name:       "gas tariff",
			tariffCode: "G-1R-VAR-22-11-01-A",
			want:       "R-VAR-22-11-01",
		},
		{
			name:       "bare product code",
			tariffCode: "AGILE-FLEX-22-11-25",
			want:       "AGILE-FLEX-22-11-25",
		},
		{
			name:       "no date suffix",
			tariffCode: "E-1R-FIXED",
			want:       "",
		},
		{
			name:       "lowercase never matches",
			tariffCode: "e-1r-var-22-11-01",
			want:       "",
		},
		{
			name:       "empty input",
			tariffCode: "",
			want:       "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ProductCode(tt.tariffCode); got != tt.want {
				t.Errorf("ProductCode(%q) = %q, want %q", tt.tariffCode, got, tt.want)
			}
		})
	}
}
