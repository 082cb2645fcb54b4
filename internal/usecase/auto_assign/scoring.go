package auto_assign

import (
	"sort"

	"github.com/m04kA/DWS-ScheduleService/internal/domain"
)

// Веса скоринга кандидатов
const (
	scoreSectorMatch    = 10 // сектор слота совпал с предпочтением собаки
	scoreSectorFlexible = 5  // сектор не задан хотя бы с одной стороны
	scorePreferredDay   = 5  // день входит в предпочтения (или предпочтений нет)
	scoreOtherDay       = -2 // день вне предпочтений
	scoreTimeMatch      = 3  // блок совпал с предпочтением по времени суток
)

// candidate слот-кандидат с вычисленным скором
type candidate struct {
	slot  *domain.EffectiveSlotView
	score int
}

// scoreSlot вычисляет скор слота для рутины собаки
func scoreSlot(routine *domain.DogRoutine, slot *domain.EffectiveSlotView) int {
	score := 0

	dogSector := routine.SectorOrEmpty()
	switch {
	case dogSector != "" && slot.Sector == dogSector:
		score += scoreSectorMatch
	case dogSector == "" || slot.Sector == "":
		score += scoreSectorFlexible
	}

	if routine.PrefersDay(slot.Day) {
		score += scorePreferredDay
	} else {
		score += scoreOtherDay
	}

	if routine.PreferredTime.Matches(slot.Block) {
		score += scoreTimeMatch
	}

	return score
}

// rankCandidates отбирает и ранжирует слоты-кандидаты для собаки:
// коллективный, не заблокирован, есть свободное место, собаки там еще нет
// Сортировка стабильная: при равном скоре сохраняется порядок день - блок
func rankCandidates(view *domain.WeekView, routine *domain.DogRoutine, dogID int64) []candidate {
	var candidates []candidate
	for i := range view.Slots {
		slot := &view.Slots[i]
		if slot.WalkType != domain.WalkCollective || slot.Blocked || slot.IsFull() || slot.HasDog(dogID) {
			continue
		}
		candidates = append(candidates, candidate{slot: slot, score: scoreSlot(routine, slot)})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	return candidates
}

// pickNext выбирает следующего кандидата жадно в порядке скора,
// предпочитая еще не занятые дни; только когда новых дней не осталось,
// допускается второй слот в уже занятый день
func pickNext(candidates []candidate, picked []bool, usedDays map[domain.Weekday]bool) int {
	for i, c := range candidates {
		if !picked[i] && !usedDays[c.slot.Day] {
			return i
		}
	}
	for i := range candidates {
		if !picked[i] {
			return i
		}
	}
	return -1
}
