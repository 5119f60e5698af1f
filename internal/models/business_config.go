package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mmanuelaprado/pradoagenda-sub000/internal/domain/schedule"
)

// BusinessConfig é a linha única de configuração por profissional.
type BusinessConfig struct {
	ID             uint `gorm:"primaryKey" json:"id"`
	ProfessionalID uint `gorm:"uniqueIndex" json:"professional_id"`

	Interval   int    `gorm:"default:30" json:"interval"`
	ThemeColor string `gorm:"size:7;default:'#1f2937'" json:"theme_color"`

	Expediente ExpedienteDoc `gorm:"type:jsonb" json:"expediente"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ===============================
// Expediente persistido (JSONB)
// ===============================

// ShiftDoc e DayDoc são o formato gravado no banco (snake_case). A tradução
// de/para o tipo de domínio fica concentrada aqui.
type ShiftDoc struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Active bool   `json:"active"`
}

type DayDoc struct {
	Weekday int      `json:"weekday"`
	Active  bool     `json:"active"`
	Shifts  []ShiftDoc `json:"shifts"`
}

type ExpedienteDoc []DayDoc

func (e ExpedienteDoc) Value() (driver.Value, error) {
	return json.Marshal(e)
}

func (e *ExpedienteDoc) Scan(value any) error {
	if value == nil {
		*e = nil
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("expediente: unsupported scan type %T", value)
	}

	return json.Unmarshal(raw, e)
}

// ===============================
// Domain mapping
// ===============================

func ExpedienteFromDomain(cfg schedule.WeeklyConfig) ExpedienteDoc {
	doc := make(ExpedienteDoc, 0, len(cfg.Days))
	for _, day := range cfg.Days {
		shifts := make([]ShiftDoc, 0, len(day.Shifts))
		for _, s := range day.Shifts {
			shifts = append(shifts, ShiftDoc{Start: s.Start, End: s.End, Active: s.Active})
		}
		doc = append(doc, DayDoc{
			Weekday: int(day.Weekday),
			Active:  day.Active,
			Shifts:  shifts,
		})
	}
	return doc
}

// ToDomain reconstrói a configuração semanal a partir da linha persistida.
// Dias ausentes ficam inativos com o dia da semana correto.
func (c *BusinessConfig) ToDomain() schedule.WeeklyConfig {
	cfg := schedule.WeeklyConfig{Interval: c.Interval}

	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		cfg.Days[wd] = schedule.DayExpediente{Weekday: wd}
	}

	for _, day := range c.Expediente {
		if day.Weekday < 0 || day.Weekday > 6 {
			continue
		}
		entry := schedule.DayExpediente{
			Weekday: time.Weekday(day.Weekday),
			Active:  day.Active,
		}
		for i := 0; i < len(day.Shifts) && i < 2; i++ {
			entry.Shifts[i] = schedule.Shift{
				Start:  day.Shifts[i].Start,
				End:    day.Shifts[i].End,
				Active: day.Shifts[i].Active,
			}
		}
		cfg.Days[day.Weekday] = entry
	}

	return cfg
}

// ApplyDomain grava a configuração de domínio na linha persistida.
func (c *BusinessConfig) ApplyDomain(cfg schedule.WeeklyConfig) {
	c.Interval = cfg.Interval
	c.Expediente = ExpedienteFromDomain(cfg)
}
