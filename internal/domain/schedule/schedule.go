package schedule

import (
	"fmt"
	"time"

	"github.com/mmanuelaprado/pradoagenda-sub000/internal/httperr"
)

// ===============================
// Weekly schedule (expediente)
// ===============================

// Shift é uma janela contígua de atendimento dentro de um dia.
// Horários no formato "HH:MM" (relógio local).
type Shift struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Active bool   `json:"active"`
}

// DayExpediente configura um dia da semana: ativo ou não, sempre dois turnos.
type DayExpediente struct {
	Weekday time.Weekday `json:"weekday"`
	Active  bool         `json:"active"`
	Shifts  [2]Shift     `json:"shifts"`
}

// WeeklyConfig é o expediente semanal completo mais o intervalo entre slots.
// Days é indexado por time.Weekday (0 = domingo .. 6 = sábado).
type WeeklyConfig struct {
	Interval int              `json:"interval"`
	Days     [7]DayExpediente `json:"days"`
}

var allowedIntervals = map[int]bool{15: true, 30: true, 45: true, 60: true}

// DefaultConfig retorna o expediente criado no cadastro do profissional:
// seg–sex com dois turnos, sábado apenas manhã, domingo fechado.
func DefaultConfig() WeeklyConfig {
	cfg := WeeklyConfig{Interval: 30}

	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		day := DayExpediente{
			Weekday: wd,
			Shifts: [2]Shift{
				{Start: "09:00", End: "12:00", Active: true},
				{Start: "13:00", End: "18:00", Active: true},
			},
		}

		switch wd {
		case time.Sunday:
			day.Active = false
			day.Shifts[0].Active = false
			day.Shifts[1].Active = false
		case time.Saturday:
			day.Active = true
			day.Shifts[1].Active = false
		default:
			day.Active = true
		}

		cfg.Days[wd] = day
	}

	return cfg
}

// ===============================
// Validated mutators
// ===============================

// DayPatch aplica alteração parcial a um dia inteiro.
type DayPatch struct {
	Active *bool `json:"active"`
}

// ShiftPatch aplica alteração parcial a um turno.
type ShiftPatch struct {
	Start  *string `json:"start"`
	End    *string `json:"end"`
	Active *bool   `json:"active"`
}

// SetInterval retorna uma nova configuração com o intervalo alterado.
// Só aceita 15, 30, 45 ou 60 minutos.
func SetInterval(cfg WeeklyConfig, minutes int) (WeeklyConfig, error) {
	if !allowedIntervals[minutes] {
		return cfg, httperr.ErrBusiness("invalid_interval")
	}
	cfg.Interval = minutes
	return cfg, nil
}

// SetDay aplica um patch a um dia e retorna a nova configuração.
func SetDay(cfg WeeklyConfig, weekday time.Weekday, patch DayPatch) (WeeklyConfig, error) {
	if weekday < time.Sunday || weekday > time.Saturday {
		return cfg, httperr.ErrBusiness("invalid_weekday")
	}

	day := cfg.Days[weekday]
	if patch.Active != nil {
		day.Active = *patch.Active
	}

	cfg.Days[weekday] = day
	return cfg, nil
}

// SetShift aplica um patch a um turno de um dia e retorna a nova configuração.
// O turno resultante precisa continuar válido (início antes do fim quando ativo).
func SetShift(cfg WeeklyConfig, weekday time.Weekday, shiftIndex int, patch ShiftPatch) (WeeklyConfig, error) {
	if weekday < time.Sunday || weekday > time.Saturday {
		return cfg, httperr.ErrBusiness("invalid_weekday")
	}
	if shiftIndex < 0 || shiftIndex > 1 {
		return cfg, httperr.ErrBusiness("invalid_shift_index")
	}

	day := cfg.Days[weekday]
	shift := day.Shifts[shiftIndex]

	if patch.Start != nil {
		shift.Start = *patch.Start
	}
	if patch.End != nil {
		shift.End = *patch.End
	}
	if patch.Active != nil {
		shift.Active = *patch.Active
	}

	if err := validateShift(shift); err != nil {
		return cfg, err
	}

	day.Shifts[shiftIndex] = shift
	cfg.Days[weekday] = day
	return cfg, nil
}

// Validate confere a configuração inteira: intervalo permitido e turnos
// ativos bem formados em todos os dias.
func Validate(cfg WeeklyConfig) error {
	if !allowedIntervals[cfg.Interval] {
		return httperr.ErrBusiness("invalid_interval")
	}
	for wd := range cfg.Days {
		if cfg.Days[wd].Weekday != time.Weekday(wd) {
			return httperr.ErrBusiness("invalid_weekday")
		}
		for _, s := range cfg.Days[wd].Shifts {
			if err := validateShift(s); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateShift(s Shift) error {
	if !s.Active {
		return nil
	}

	start, err := minuteOfDay(s.Start)
	if err != nil {
		return httperr.ErrBusiness("invalid_shift")
	}
	end, err := minuteOfDay(s.End)
	if err != nil {
		return httperr.ErrBusiness("invalid_shift")
	}
	if start >= end {
		return httperr.ErrBusiness("invalid_shift")
	}
	return nil
}

func minuteOfDay(hm string) (int, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", hm, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}
