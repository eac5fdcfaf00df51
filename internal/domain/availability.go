package domain

// FirstConflict возвращает первое блокирующее бронирование, чье эффективное
// окно занятости (диапазон аренды + bufferDays после конца) пересекается
// с кандидатом, или nil, если конфликтов нет
//
// Неблокирующие бронирования (returned, cancelled) пропускаются
func FirstConflict(candidate DateRange, reservations []*Reservation, bufferDays int) *Reservation {
	for _, r := range reservations {
		if !r.IsBlocking() {
			continue
		}
		if r.BlockedRange(bufferDays).Overlaps(candidate) {
			return r
		}
	}
	return nil
}

// MergeBlockedRanges возвращает отсортированный список занятых окон
// (с учетом буфера), слитых там, где окна пересекаются или соприкасаются
// Используется для календарных подсказок на клиенте
func MergeBlockedRanges(reservations []*Reservation, bufferDays int) []DateRange {
	blocked := make([]DateRange, 0, len(reservations))
	for _, r := range reservations {
		if !r.IsBlocking() {
			continue
		}
		blocked = append(blocked, r.BlockedRange(bufferDays))
	}

	if len(blocked) == 0 {
		return blocked
	}

	sortRangesByFrom(blocked)

	merged := make([]DateRange, 0, len(blocked))
	current := blocked[0]

	for _, r := range blocked[1:] {
		// Соприкасающиеся окна (следующее начинается на следующий день) тоже сливаем
		if !r.From.After(current.To.AddDate(0, 0, 1)) {
			if r.To.After(current.To) {
				current.To = r.To
			}
			continue
		}
		merged = append(merged, current)
		current = r
	}

	return append(merged, current)
}

func sortRangesByFrom(ranges []DateRange) {
	for i := 1; i < len(ranges); i++ {
		for j := i; j > 0 && ranges[j].From.Before(ranges[j-1].From); j-- {
			ranges[j], ranges[j-1] = ranges[j-1], ranges[j]
		}
	}
}
