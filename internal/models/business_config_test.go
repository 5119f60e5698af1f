package models

import (
	"testing"
	"time"

	"github.com/mmanuelaprado/pradoagenda-sub000/internal/domain/schedule"
)

func TestExpedienteRoundTrip(t *testing.T) {
	want := schedule.DefaultConfig()
	want.Interval = 45
	want.Days[time.Wednesday].Active = false
	want.Days[time.Friday].Shifts[1] = schedule.Shift{Start: "14:00", End: "20:00", Active: true}

	var row BusinessConfig
	row.ApplyDomain(want)

	// Persistência: serializa para JSONB e lê de volta.
	raw, err := row.Expediente.Value()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	restored := BusinessConfig{Interval: row.Interval}
	if err := restored.Expediente.Scan(raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := restored.ToDomain()
	if got != want {
		t.Fatalf("round trip mismatch:\nwant %+v\ngot  %+v", want, got)
	}
}

func TestToDomain_EmptyExpediente(t *testing.T) {
	row := BusinessConfig{Interval: 30}

	cfg := row.ToDomain()
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		day := cfg.Days[wd]
		if day.Weekday != wd {
			t.Fatalf("expected weekday %s at index %d, got %s", wd, wd, day.Weekday)
		}
		if day.Active {
			t.Fatalf("expected %s inactive without persisted expediente", wd)
		}
	}
}

func TestToDomain_IgnoresOutOfRangeWeekday(t *testing.T) {
	row := BusinessConfig{
		Interval: 30,
		Expediente: ExpedienteDoc{
			{Weekday: 9, Active: true, Shifts: []ShiftDoc{{Start: "09:00", End: "12:00", Active: true}}},
			{Weekday: 1, Active: true, Shifts: []ShiftDoc{{Start: "09:00", End: "12:00", Active: true}}},
		},
	}

	cfg := row.ToDomain()
	if !cfg.Days[time.Monday].Active {
		t.Fatalf("expected monday active")
	}
	for wd := time.Tuesday; wd <= time.Saturday; wd++ {
		if cfg.Days[wd].Active {
			t.Fatalf("expected %s inactive", wd)
		}
	}
}
