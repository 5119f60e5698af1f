package schedule

import (
	"reflect"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// Segunda-feira de referência, bem no futuro em relação a "now" dos testes.
var monday = date(2030, time.June, 3)

func TestSlots_DefaultDayInterval60(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Interval = 60

	got := Slots(monday, date(2030, time.June, 1), cfg, NewDateSet())

	want := []string{"09:00", "10:00", "11:00", "13:00", "14:00", "15:00", "16:00", "17:00"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSlots_LastSlotMayOverrunShiftEnd(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Interval = 45
	cfg.Days[time.Monday].Shifts[0] = Shift{Start: "09:00", End: "10:30", Active: true}
	cfg.Days[time.Monday].Shifts[1].Active = false

	got := Slots(monday, date(2030, time.June, 1), cfg, NewDateSet())

	// 09:45 entra mesmo com 09:45+45min passando das 10:30.
	want := []string{"09:00", "09:45"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSlots_PastDateIsEmpty(t *testing.T) {
	cfg := DefaultConfig()

	got := Slots(monday, date(2030, time.June, 4), cfg, NewDateSet())
	if len(got) != 0 {
		t.Fatalf("expected no slots for past date, got %v", got)
	}
}

func TestSlots_TodayIsNotPast(t *testing.T) {
	cfg := DefaultConfig()

	// "now" às 23h do mesmo dia: compara só a data, o dia ainda conta.
	now := time.Date(2030, time.June, 3, 23, 0, 0, 0, time.Local)
	got := Slots(monday, now, cfg, NewDateSet())
	if len(got) == 0 {
		t.Fatalf("expected slots for today, got none")
	}
}

func TestSlots_BlockedDateIsEmpty(t *testing.T) {
	cfg := DefaultConfig()
	blocked := NewDateSet(monday)

	got := Slots(monday, date(2030, time.June, 1), cfg, blocked)
	if len(got) != 0 {
		t.Fatalf("expected no slots for blocked date, got %v", got)
	}
}

func TestSlots_InactiveDayIsEmpty(t *testing.T) {
	cfg := DefaultConfig()

	sunday := date(2030, time.June, 2)
	got := Slots(sunday, date(2030, time.June, 1), cfg, NewDateSet())
	if len(got) != 0 {
		t.Fatalf("expected no slots on inactive day, got %v", got)
	}
}

func TestSlots_InactiveShiftIsSkipped(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Days[time.Monday].Shifts[1].Active = false

	got := Slots(monday, date(2030, time.June, 1), cfg, NewDateSet())

	want := []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSlots_Saturday(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Interval = 60

	saturday := date(2030, time.June, 8)
	got := Slots(saturday, date(2030, time.June, 1), cfg, NewDateSet())

	want := []string{"09:00", "10:00", "11:00"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestExcludeBooked(t *testing.T) {
	slots := []string{"09:00", "09:30", "10:00", "10:30"}

	got := ExcludeBooked(slots, []string{"09:30", "10:30"})
	want := []string{"09:00", "10:00"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	got = ExcludeBooked(slots, nil)
	if !reflect.DeepEqual(got, slots) {
		t.Fatalf("expected unchanged slots, got %v", got)
	}
}

func TestDateSet_IgnoresTimeOfDay(t *testing.T) {
	set := NewDateSet(time.Date(2030, time.June, 3, 15, 45, 0, 0, time.Local))

	if !set.Contains(monday) {
		t.Fatalf("expected midnight of same day to be contained")
	}
	if set.Contains(date(2030, time.June, 4)) {
		t.Fatalf("expected next day not to be contained")
	}
}
