// Package status owns the project lifecycle rules: which status moves are
// legal and what side effects (timestamps, counters) go with them. Functions
// here are pure; callers persist the returned project themselves.
package status

import (
	"errors"
	"time"

	"github.com/iamsonghee/photo-selection/internal/models"
)

// 고객 확정 취소 최대 횟수 (정책 상수)
const CustomerCancelMax = 3

var (
	ErrInvalidState        = errors.New("현재 상태에서는 처리할 수 없습니다")
	ErrIncompleteSelection = errors.New("필요 장수만큼 선택되지 않았습니다")
	ErrCancelLimitExceeded = errors.New("확정 취소 가능 횟수를 초과했습니다")
	ErrInvalidCount        = errors.New("필요 장수가 올바르지 않습니다")
)

// 상태 전환 규칙
// - preparing → selecting: 사진 업로드 완료 후
// - selecting → confirmed: 고객 최종확정
// - confirmed → editing:   작가 보정 시작
// - confirmed → selecting: 고객 확정 취소 (제한 횟수 내)
var allowed = map[models.ProjectStatus][]models.ProjectStatus{
	models.StatusPreparing: {models.StatusSelecting},
	models.StatusSelecting: {models.StatusConfirmed},
	models.StatusConfirmed: {models.StatusEditing, models.StatusSelecting},
	models.StatusEditing:   {},
}

func CanTransition(from, to models.ProjectStatus) bool {
	for _, next := range allowed[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ApplyConfirm validates the customer's final confirmation. selectedCount is
// Y recomputed from the selections table; it must equal RequiredCount exactly.
func ApplyConfirm(p models.Project, selectedCount int) (models.Project, error) {
	if p.Status != models.StatusSelecting {
		return p, ErrInvalidState
	}
	if selectedCount != p.RequiredCount {
		return p, ErrIncompleteSelection
	}
	now := time.Now()
	p.Status = models.StatusConfirmed
	p.ConfirmedAt = &now
	return p, nil
}

// ApplyCancelConfirmation moves a confirmed project back to selecting.
// ConfirmedAt은 직전 확정 이력이므로 지우지 않는다.
func ApplyCancelConfirmation(p models.Project) (models.Project, error) {
	if p.Status != models.StatusConfirmed {
		return p, ErrInvalidState
	}
	if p.CustomerCancelCount >= CustomerCancelMax {
		return p, ErrCancelLimitExceeded
	}
	p.Status = models.StatusSelecting
	p.CustomerCancelCount++
	return p, nil
}

// ApplyStartEditing locks the selection; editing has no outgoing transition.
func ApplyStartEditing(p models.Project) (models.Project, error) {
	if p.Status != models.StatusConfirmed {
		return p, ErrInvalidState
	}
	p.Status = models.StatusEditing
	return p, nil
}

// ApplyRequiredCountChange updates N. newN은 1 이상이며 업로드된 사진 수(M)
// 미만으로 내릴 수 없다. 상태와 무관하게 허용된다.
func ApplyRequiredCountChange(p models.Project, newN int) (models.Project, error) {
	if newN < 1 {
		return p, ErrInvalidCount
	}
	if newN < p.PhotoCount {
		return p, ErrInvalidCount
	}
	p.RequiredCount = newN
	return p, nil
}
