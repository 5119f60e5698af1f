package schedule

import (
	"testing"
	"time"

	"github.com/mmanuelaprado/pradoagenda-sub000/internal/httperr"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Interval != 30 {
		t.Fatalf("expected default interval 30, got %d", cfg.Interval)
	}
	if cfg.Days[time.Sunday].Active {
		t.Fatalf("expected sunday inactive")
	}
	if !cfg.Days[time.Saturday].Active || cfg.Days[time.Saturday].Shifts[1].Active {
		t.Fatalf("expected saturday active with morning shift only")
	}
	for wd := time.Monday; wd <= time.Friday; wd++ {
		day := cfg.Days[wd]
		if !day.Active || !day.Shifts[0].Active || !day.Shifts[1].Active {
			t.Fatalf("expected %s fully active", wd)
		}
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected default config to validate, got %v", err)
	}
}

func TestSetInterval(t *testing.T) {
	cfg := DefaultConfig()

	for _, minutes := range []int{15, 30, 45, 60} {
		out, err := SetInterval(cfg, minutes)
		if err != nil {
			t.Fatalf("expected interval %d to be accepted, got %v", minutes, err)
		}
		if out.Interval != minutes {
			t.Fatalf("expected interval %d, got %d", minutes, out.Interval)
		}
	}

	for _, minutes := range []int{0, 10, 20, 90, -15} {
		_, err := SetInterval(cfg, minutes)
		if !httperr.IsBusiness(err, "invalid_interval") {
			t.Fatalf("expected invalid_interval for %d, got %v", minutes, err)
		}
	}
}

func TestSetDay(t *testing.T) {
	cfg := DefaultConfig()
	inactive := false

	out, err := SetDay(cfg, time.Monday, DayPatch{Active: &inactive})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Days[time.Monday].Active {
		t.Fatalf("expected monday inactive after patch")
	}

	// A configuração original não pode ser alterada.
	if !cfg.Days[time.Monday].Active {
		t.Fatalf("expected original config untouched")
	}

	if _, err := SetDay(cfg, time.Weekday(7), DayPatch{}); !httperr.IsBusiness(err, "invalid_weekday") {
		t.Fatalf("expected invalid_weekday, got %v", err)
	}
}

func TestSetShift(t *testing.T) {
	cfg := DefaultConfig()
	newStart := "08:00"

	out, err := SetShift(cfg, time.Monday, 0, ShiftPatch{Start: &newStart})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Days[time.Monday].Shifts[0].Start != "08:00" {
		t.Fatalf("expected start 08:00, got %s", out.Days[time.Monday].Shifts[0].Start)
	}
	if cfg.Days[time.Monday].Shifts[0].Start != "09:00" {
		t.Fatalf("expected original config untouched")
	}

	if _, err := SetShift(cfg, time.Monday, 2, ShiftPatch{}); !httperr.IsBusiness(err, "invalid_shift_index") {
		t.Fatalf("expected invalid_shift_index, got %v", err)
	}

	badStart := "14:00"
	if _, err := SetShift(cfg, time.Monday, 0, ShiftPatch{Start: &badStart}); !httperr.IsBusiness(err, "invalid_shift") {
		t.Fatalf("expected invalid_shift for start after end, got %v", err)
	}

	malformed := "9h30"
	if _, err := SetShift(cfg, time.Monday, 0, ShiftPatch{Start: &malformed}); !httperr.IsBusiness(err, "invalid_shift") {
		t.Fatalf("expected invalid_shift for malformed time, got %v", err)
	}

	// Turno inativo pode ficar com horário malformado sem erro.
	off := false
	out, err = SetShift(cfg, time.Sunday, 0, ShiftPatch{Start: &malformed, Active: &off})
	if err != nil {
		t.Fatalf("expected inactive shift to skip validation, got %v", err)
	}
	if out.Days[time.Sunday].Shifts[0].Active {
		t.Fatalf("expected shift inactive")
	}
}

func TestValidate_RejectsBadInterval(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Interval = 25

	if err := Validate(cfg); !httperr.IsBusiness(err, "invalid_interval") {
		t.Fatalf("expected invalid_interval, got %v", err)
	}
}

func TestValidate_RejectsMisplacedWeekday(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Days[time.Monday].Weekday = time.Friday

	if err := Validate(cfg); !httperr.IsBusiness(err, "invalid_weekday") {
		t.Fatalf("expected invalid_weekday, got %v", err)
	}
}
