package version

import "testing"

func TestVersionDefaultValue(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
	// GitCommit и BuildDate опциональны и могут быть пустыми
	_ = GitCommit
	_ = BuildDate
}
