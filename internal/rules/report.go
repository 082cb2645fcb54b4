// Package rules is the stateless capacity and conflict validator of the
// scheduling engine. Every check takes materialized week views plus a proposed
// mutation and returns a structured report; business violations are data,
// never Go errors, so callers can render remediation UIs without string parsing
package rules

// Severity of a reported finding
type Severity string

const (
	// SeverityViolation blocks the operation (hard business rule)
	SeverityViolation Severity = "violation"
	// SeverityWarning lets the operation proceed but flags it for human review
	SeverityWarning Severity = "warning"
	// SeverityInfo is purely advisory
	SeverityInfo Severity = "info"
)

// Code is a stable machine-readable finding code
type Code string

const (
	CodeInvalidSlotID        Code = "INVALID_SLOT_ID"
	CodeInvalidWeek          Code = "INVALID_WEEK"
	CodeSlotBlocked          Code = "SLOT_BLOCKED"
	CodeGroupFull            Code = "GROUP_FULL"
	CodeDogAlreadyInGroup    Code = "DOG_ALREADY_IN_GROUP"
	CodeWeeklyCapExceeded    Code = "WEEKLY_CAP_EXCEEDED"
	CodeRoutineQuotaExceeded Code = "ROUTINE_QUOTA_EXCEEDED"
	CodeSectorMismatch       Code = "SECTOR_MISMATCH"
	CodeConsecutiveBlocks    Code = "CONSECUTIVE_BLOCKS"
	CodeIndividualCapacity   Code = "INDIVIDUAL_CAPACITY"
	CodeCapacityOutOfRange   Code = "CAPACITY_OUT_OF_RANGE"
	CodeSlotOverbooked       Code = "SLOT_OVERBOOKED"
	CodeBlockedNotEmpty      Code = "BLOCKED_SLOT_NOT_EMPTY"
	CodeNearCapacity         Code = "NEAR_CAPACITY"
)

// Finding is one reported rule outcome with enough structured context to
// build a remediation UI
type Finding struct {
	Code        Code                   `json:"code"`
	Severity    Severity               `json:"severity"`
	Message     string                 `json:"message"`
	Context     map[string]interface{} `json:"context,omitempty"`
	Suggestions []string               `json:"suggestions,omitempty"`
}

// Report groups findings of one validation run by severity
// All rules contribute to the same report; evaluation never short-circuits
type Report struct {
	Violations []Finding `json:"violations"`
	Warnings   []Finding `json:"warnings"`
	Infos      []Finding `json:"infos"`
}

// HasViolations returns true if the proposed mutation must be refused
func (r *Report) HasViolations() bool {
	return len(r.Violations) > 0
}

// IsClean returns true if nothing at all was flagged
func (r *Report) IsClean() bool {
	return len(r.Violations) == 0 && len(r.Warnings) == 0 && len(r.Infos) == 0
}

// Merge appends every finding of other into r
func (r *Report) Merge(other Report) {
	r.Violations = append(r.Violations, other.Violations...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.Infos = append(r.Infos, other.Infos...)
}

func (r *Report) add(f Finding) {
	switch f.Severity {
	case SeverityViolation:
		r.Violations = append(r.Violations, f)
	case SeverityWarning:
		r.Warnings = append(r.Warnings, f)
	default:
		r.Infos = append(r.Infos, f)
	}
}

func violation(code Code, message string, ctx map[string]interface{}, suggestions ...string) Finding {
	return Finding{Code: code, Severity: SeverityViolation, Message: message, Context: ctx, Suggestions: suggestions}
}

func warning(code Code, message string, ctx map[string]interface{}, suggestions ...string) Finding {
	return Finding{Code: code, Severity: SeverityWarning, Message: message, Context: ctx, Suggestions: suggestions}
}

func info(code Code, message string, ctx map[string]interface{}) Finding {
	return Finding{Code: code, Severity: SeverityInfo, Message: message, Context: ctx}
}
