package deps

import "testing"

func TestParseRequirementForms(t *testing.T) {
	tests := []struct {
		input string
		kind  requirementKind
	}{
		{"", kindAny},
		{"*", kindAny},
		{"any", kindAny},
		{"1.2.3", kindExact},
		{"=1.2.3", kindExact},
		{">=1.2.3", kindMinimum},
		{"^1.2.3", kindCompatible},
		{"~1.2.3", kindApproximate},
		{">1.0.0, <2.0.0", kindCustom},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			req, err := ParseRequirement(tt.input)
			if err != nil {
				t.Fatalf("ParseRequirement(%q): %v", tt.input, err)
			}
			if req.kind != tt.kind {
				t.Errorf("kind = %d, want %d", req.kind, tt.kind)
			}
		})
	}

	if _, err := ParseRequirement("not a version"); err == nil {
		t.Error("expected error for garbage input")
	}
}

func TestSatisfies(t *testing.T) {
	tests := []struct {
		version     string
		requirement string
		want        bool
	}{
		{"1.2.3", "*", true},
		{"1.2.3", "", true},
		{"1.2.3", "=1.2.3", true},
		{"1.2.4", "=1.2.3", false},
		{"1.2.3", ">=1.2.3", true},
		{"1.2.2", ">=1.2.3", false},
		{"2.0.0", ">=1.2.3", true},
		{"1.2.3", "^1.0.0", true},
		{"1.9.9", "^1.2.3", true},
		{"2.0.0", "^1.2.3", false},
		{"1.2.2", "^1.2.3", false},
		{"1.2.9", "~1.2.3", true},
		{"1.3.0", "~1.2.3", false},
		{"1.2.2", "~1.2.3", false},
		{"1.5.0", ">1.0.0, <2.0.0", true},
		{"2.0.0", ">1.0.0, <2.0.0", false},
		// versions tolerate a leading v
		{"v18.17.0", ">=16.0.0", true},
	}
	for _, tt := range tests {
		t.Run(tt.version+" vs "+tt.requirement, func(t *testing.T) {
			got, err := Satisfies(tt.version, tt.requirement)
			if err != nil {
				t.Fatalf("Satisfies: %v", err)
			}
			if got != tt.want {
				t.Errorf("Satisfies(%q, %q) = %v, want %v", tt.version, tt.requirement, got, tt.want)
			}
		})
	}

	if _, err := Satisfies("garbage", "*"); err == nil {
		t.Error("expected error for unparseable version")
	}
}

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.2.3", "1.2.3", 0},
		{"1.2.3", "1.2.4", -1},
		{"2.0.0", "1.9.9", 1},
		{"v1.0.0", "1.0.0", 0},
	}
	for _, tt := range tests {
		got, err := CompareVersions(tt.a, tt.b)
		if err != nil {
			t.Fatalf("CompareVersions(%q, %q): %v", tt.a, tt.b, err)
		}
		if got != tt.want {
			t.Errorf("CompareVersions(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestRequirementString(t *testing.T) {
	req, err := ParseRequirement(">=1.2.3")
	if err != nil {
		t.Fatal(err)
	}
	if req.String() != ">=1.2.3" {
		t.Errorf("String() = %q", req.String())
	}

	var zero Requirement
	if zero.String() != "*" {
		t.Errorf("zero value String() = %q, want *", zero.String())
	}
	if v, _ := ParseVersion("9.9.9"); !zero.Matches(v) {
		t.Error("zero requirement should match any version")
	}
}
