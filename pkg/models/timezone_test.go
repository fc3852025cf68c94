package models_test

import (
	"testing"

	"github.com/CobSammich/nba-scores-cli/pkg/models"
)

func TestParseTimezone(t *testing.T) {
	tests := []struct {
		input   string
		want    models.Timezone
		wantErr bool
	}{
		{"pacific", models.TimezonePacific, false},
		{"PST", models.TimezonePacific, false},
		{" mt ", models.TimezoneMountain, false},
		{"Central", models.TimezoneCentral, false},
		{"et", models.TimezoneEastern, false},
		{"hawaii", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := models.ParseTimezone(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTimezone(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseTimezone(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTimezone_Slots(t *testing.T) {
	want := map[models.Timezone]int{
		models.TimezonePacific:  0,
		models.TimezoneMountain: 1,
		models.TimezoneCentral:  2,
		models.TimezoneEastern:  3,
	}
	for tz, slot := range want {
		if tz.Slot() != slot {
			t.Errorf("%s.Slot() = %d, want %d", tz, tz.Slot(), slot)
		}
		if !tz.Valid() {
			t.Errorf("%s.Valid() = false", tz)
		}
		if slot >= models.TimezoneSlots {
			t.Errorf("%s slot %d out of range", tz, slot)
		}
	}

	if models.Timezone(4).Valid() || models.Timezone(-1).Valid() {
		t.Error("out-of-range timezones should not be valid")
	}
}

func TestTimezone_Text(t *testing.T) {
	text, err := models.TimezoneCentral.MarshalText()
	if err != nil || string(text) != "central" {
		t.Errorf("MarshalText() = %q, %v", text, err)
	}

	if _, err := models.Timezone(7).MarshalText(); err == nil {
		t.Error("MarshalText() of an invalid zone should fail")
	}

	var tz models.Timezone
	if err := tz.UnmarshalText([]byte("MST")); err != nil || tz != models.TimezoneMountain {
		t.Errorf("UnmarshalText(MST) = %v, %v", tz, err)
	}
}
