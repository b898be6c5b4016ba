package manifest

import "testing"

func TestCheckVersion(t *testing.T) {
	tests := []struct {
		constraint string
		version    string
		wantErr    bool
	}{
		{"", "0.0.1", false},
		{">=0.1.0", "0.2.0", false},
		{">=0.1.0", "v0.2.0", false},
		{">=0.1.0", "0.0.9", true},
		{"^1.2", "1.9.0", false},
		{"^1.2", "2.0.0", true},
		{">=9.0.0", "dev", false},
		{">=9.0.0", "", false},
		{"not a constraint", "1.0.0", true},
		{">=1.0.0", "garbage", true},
	}
	for _, tt := range tests {
		t.Run(tt.constraint+"@"+tt.version, func(t *testing.T) {
			err := CheckVersion(&Manifest{MinVersion: tt.constraint}, tt.version)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckVersion(%q, %q) error = %v, wantErr %v", tt.constraint, tt.version, err, tt.wantErr)
			}
		})
	}
}
