package utils

import (
	"fmt"
	"time"
)

// PeriodWindow возвращает включительные границы окна (день, неделя ISO или
// календарный месяц), содержащего указанную дату. Неизвестный период — ошибка
// валидации, окно не вычисляется.
func PeriodWindow(period string, date time.Time) (time.Time, time.Time, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	switch period {
	case "day":
		return day, day, nil
	case "week":
		// Неделя начинается с понедельника
		offset := (int(day.Weekday()) + 6) % 7
		start := day.AddDate(0, 0, -offset)
		return start, start.AddDate(0, 0, 6), nil
	case "month":
		start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, -1), nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("неподдерживаемый период: %s", period)
	}
}
