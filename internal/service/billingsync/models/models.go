package models

import (
	"time"

	"github.com/m04kA/DWS-ScheduleService/internal/domain"
	"github.com/m04kA/DWS-ScheduleService/pkg/types"
)

// SyncResult результат синхронизации одного назначения
// AlreadySynced=true означает, что строка с этим натуральным ключом уже была
// в леджере и повторная вставка не выполнялась
type SyncResult struct {
	AssignmentID  int64                  `json:"assignmentId"`
	Created       bool                   `json:"created"`
	AlreadySynced bool                   `json:"alreadySynced"`
	Record        *domain.BillableRecord `json:"record"`
}

// SyncItem результат одного элемента недельного батча
// Ошибка элемента не прерывает батч; она фиксируется в Error
type SyncItem struct {
	AssignmentID  int64   `json:"assignmentId"`
	SlotID        string  `json:"slotId"`
	DogID         int64   `json:"dogId"`
	Created       bool    `json:"created"`
	AlreadySynced bool    `json:"alreadySynced"`
	Error         *string `json:"error,omitempty"`
}

// WeekSyncResult сводка недельной синхронизации
type WeekSyncResult struct {
	Year          int        `json:"year"`
	Week          int        `json:"week"`
	Total         int        `json:"total"`
	Created       int        `json:"created"`
	AlreadySynced int        `json:"alreadySynced"`
	Failed        int        `json:"failed"`
	Items         []SyncItem `json:"items"`
}

// UnsyncedItem завершенное назначение без строки в леджере
type UnsyncedItem struct {
	AssignmentID int64            `json:"assignmentId"`
	DogID        int64            `json:"dogId"`
	SlotID       string           `json:"slotId"`
	ServiceDate  time.Time        `json:"serviceDate"`
	StartTime    types.TimeString `json:"startTime"`
}

// UnsyncedResult список завершенных, но не синхронизированных назначений недели
type UnsyncedResult struct {
	Year  int            `json:"year"`
	Week  int            `json:"week"`
	Items []UnsyncedItem `json:"items"`
}
