package manifest

import (
	"path/filepath"
	"testing"
)

func testPath(name string) string {
	return filepath.Join("testdata", name)
}

func TestValidateFile_Valid(t *testing.T) {
	result, err := ValidateFile(testPath("valid.yaml"))
	if err != nil {
		t.Fatalf("ValidateFile error: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid, got %d issues:", len(result.Issues))
		for _, issue := range result.Issues {
			t.Errorf("  path=%s keyword=%s message=%s", issue.Path, issue.Keyword, issue.Message)
		}
	}
}

func TestValidateFile_Invalid(t *testing.T) {
	invalidFiles := []struct {
		file string
		desc string
	}{
		{"invalid-no-files.yaml", "missing required files list"},
		{"invalid-bad-area.yaml", "area outside enum"},
		{"invalid-name-with-slash.yaml", "name violates pattern"},
		{"invalid-content-and-source.yaml", "content and source together"},
		{"invalid-unknown-field.yaml", "additional property"},
	}

	for _, tt := range invalidFiles {
		t.Run(tt.file, func(t *testing.T) {
			result, err := ValidateFile(testPath(tt.file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) unexpected error: %v", tt.file, err)
			}
			if result.Valid {
				t.Errorf("expected invalid (%s), got valid", tt.desc)
			}
			if len(result.Issues) == 0 {
				t.Errorf("expected at least one issue for %s", tt.desc)
			}
		})
	}
}

func TestValidate_IssuePaths(t *testing.T) {
	result, err := Validate([]byte("files:\n  - name: a.txt\n    area: scratch\n    content: x\n"))
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, issue := range result.Issues {
		if issue.Path == "/files/0/area" && issue.Keyword == "enum" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected enum issue at /files/0/area, got %+v", result.Issues)
	}
}

func TestValidate_MalformedYAML(t *testing.T) {
	if _, err := Validate([]byte("files: [unclosed")); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidateFile_Missing(t *testing.T) {
	if _, err := ValidateFile(testPath("does-not-exist.yaml")); err == nil {
		t.Error("expected read error")
	}
}

func TestDeduplicateIssues(t *testing.T) {
	issues := []ValidationIssue{
		{Path: "/files/0", Keyword: "required", Message: "missing name"},
		{Path: "/files/0", Keyword: "required", Message: "missing name"},
		{Path: "/files/1", Keyword: "required", Message: "missing name"},
	}
	if got := deduplicateIssues(issues); len(got) != 2 {
		t.Errorf("deduplicateIssues returned %d issues, want 2", len(got))
	}
}
