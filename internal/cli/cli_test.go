package cli

import (
	"testing"
	"time"
)

func TestParseStartDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid date", input: "2026-09-01"},
		{name: "empty means today", input: ""},
		{name: "wrong order", input: "01-09-2026", wantErr: true},
		{name: "not a date", input: "next tuesday", wantErr: true},
		{name: "impossible day", input: "2026-02-30", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseStartDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseStartDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got.IsZero() {
				t.Errorf("parseStartDate(%q) returned zero time", tt.input)
			}
			if got.Hour() != 0 || got.Minute() != 0 {
				t.Errorf("start date should be midnight, got %v", got)
			}
		})
	}
}

func TestParseStartDateExact(t *testing.T) {
	got, err := parseStartDate("2026-09-01")
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("parseStartDate = %v, want %v", got, want)
	}
}

func TestRootCmdFlagDefaults(t *testing.T) {
	cmd := NewRootCmd()

	if got, _ := cmd.Flags().GetString("keyword"); got != "steak" {
		t.Errorf("keyword default = %q, want steak", got)
	}
	if got, _ := cmd.Flags().GetInt("days"); got != 14 {
		t.Errorf("days default = %d, want 14", got)
	}
	if got, _ := cmd.Flags().GetString("start"); got != "" {
		t.Errorf("start default = %q, want empty", got)
	}
	if got, _ := cmd.Flags().GetString("format"); got != "text" {
		t.Errorf("format default = %q, want text", got)
	}
}
