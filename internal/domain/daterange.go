package domain

import "time"

// DateRange календарный диапазон дат, включительный с обеих сторон
// Компонент времени не учитывается, сравнения ведутся только по датам
type DateRange struct {
	From time.Time
	To   time.Time
}

// NewDateRange создает диапазон, обнуляя компонент времени обеих границ
func NewDateRange(from, to time.Time) DateRange {
	return DateRange{From: DateOnly(from), To: DateOnly(to)}
}

// IsValid возвращает true, если границы заданы и From <= To
func (r DateRange) IsValid() bool {
	return !r.From.IsZero() && !r.To.IsZero() && !r.From.After(r.To)
}

// Overlaps возвращает true, если диапазоны пересекаются
// Границы включительные: диапазоны, встречающиеся в один день, пересекаются
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.From.After(other.To) && !r.To.Before(other.From)
}

// ExtendEnd возвращает диапазон с концом, сдвинутым на days дней вперед
// Начало не меняется
func (r DateRange) ExtendEnd(days int) DateRange {
	return DateRange{From: r.From, To: r.To.AddDate(0, 0, days)}
}

// Days возвращает количество дней в диапазоне (включительно)
func (r DateRange) Days() int {
	return int(r.To.Sub(r.From).Hours()/24) + 1
}

// DateOnly обнуляет компонент времени, оставляя только календарную дату
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
