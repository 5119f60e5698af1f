package schedule

import (
	"fmt"
	"time"
)

// ===============================
// Blocked dates
// ===============================

// DateSet é o conjunto de datas bloqueadas (feriados, folgas).
// A comparação é só pela data do calendário, hora ignorada.
type DateSet struct {
	days map[string]bool
}

func NewDateSet(dates ...time.Time) DateSet {
	set := DateSet{days: make(map[string]bool, len(dates))}
	for _, d := range dates {
		set.days[dayKey(d)] = true
	}
	return set
}

func (s DateSet) Contains(date time.Time) bool {
	return s.days[dayKey(date)]
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// ===============================
// Slot generation
// ===============================

// Slots gera os horários de início possíveis para a data, em ordem, no
// formato "HH:MM". Recalculado a cada chamada, nunca cacheado.
//
// Regras:
//   - data anterior a hoje (comparação só de data): vazio
//   - data bloqueada: vazio
//   - dia da semana inativo: vazio
//   - cada turno ativo é percorrido de start até end em passos de Interval;
//     um slot entra enquanto seu início for menor que o fim do turno, mesmo
//     que início+intervalo ultrapasse o fim
//
// Horários já ocupados por agendamentos NÃO são removidos aqui; quem quiser
// esse filtro usa ExcludeBooked por cima.
func Slots(date time.Time, now time.Time, cfg WeeklyConfig, blocked DateSet) []string {
	if dayKey(date) < dayKey(now) {
		return []string{}
	}

	if blocked.Contains(date) {
		return []string{}
	}

	day := cfg.Days[date.Weekday()]
	if !day.Active {
		return []string{}
	}

	slots := []string{}
	for _, shift := range day.Shifts {
		if !shift.Active {
			continue
		}

		start, err := minuteOfDay(shift.Start)
		if err != nil {
			continue
		}
		end, err := minuteOfDay(shift.End)
		if err != nil {
			continue
		}

		for m := start; m < end; m += cfg.Interval {
			slots = append(slots, fmt.Sprintf("%02d:%02d", m/60, m%60))
		}
	}

	return slots
}

// ExcludeBooked remove dos slots os horários já tomados. Capacidade opcional:
// o gerador em si não faz esse cruzamento (ver Slots).
func ExcludeBooked(slots []string, taken []string) []string {
	if len(taken) == 0 {
		return slots
	}

	busy := make(map[string]bool, len(taken))
	for _, t := range taken {
		busy[t] = true
	}

	out := make([]string, 0, len(slots))
	for _, s := range slots {
		if !busy[s] {
			out = append(out, s)
		}
	}
	return out
}
