package domain

import "testing"

func TestCategory_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		category Category
		want     bool
	}{
		{CategoryDSA, true},
		{CategoryWeb, true},
		{CategoryComputerScience, true},
		{CategoryOther, true},
		{Category("ComputerScience"), false},
		{Category("dsa"), false},
		{Category(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			t.Parallel()
			if got := tt.category.IsValid(); got != tt.want {
				t.Errorf("Category(%q).IsValid() = %v, want %v", tt.category, got, tt.want)
			}
		})
	}
}

func TestParseCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		want   Category
		wantOK bool
	}{
		{"DSA", CategoryDSA, true},
		{"dsa", CategoryDSA, true},
		{"Web", CategoryWeb, true},
		{"CS", CategoryComputerScience, true},
		{"computer-science", CategoryComputerScience, true},
		{"Computer Science", CategoryComputerScience, true},
		{" other ", CategoryOther, true},
		{"math", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseCategory(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParseCategory(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestStatus_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status Status
		want   bool
	}{
		{StatusNotStarted, true},
		{StatusInProgress, true},
		{StatusCompleted, true},
		{Status("NotStarted"), false},
		{Status(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			t.Parallel()
			if got := tt.status.IsValid(); got != tt.want {
				t.Errorf("Status(%q).IsValid() = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestParseStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		want   Status
		wantOK bool
	}{
		{"Not started", StatusNotStarted, true},
		{"not-started", StatusNotStarted, true},
		{"in_progress", StatusInProgress, true},
		{"In progress", StatusInProgress, true},
		{"COMPLETED", StatusCompleted, true},
		{"done", StatusCompleted, true},
		{"paused", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseStatus(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParseStatus(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestStatus_String(t *testing.T) {
	t.Parallel()
	if got := StatusInProgress.String(); got != "In progress" {
		t.Errorf("got %q, want %q", got, "In progress")
	}
}
