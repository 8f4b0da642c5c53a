// Package fixtures generates the synthetic accounting rows written into the
// fixture workbook. Foreign-key-like fields such as account numbers are drawn
// from the same pool but never checked against it.
package fixtures

type Account struct {
	Number         int
	Name           string
	CurrentBalance float64
	Department     string
}

type Staff struct {
	ID         int
	Name       string
	Department string
	Email      string
}

type Allocation struct {
	ID            int
	AccountNumber int
	Amount        float64
	Type          string
	DateAllocated string
}

type Note struct {
	ID            int
	AccountNumber int
	Type          string
	Text          string
	CreatedBy     string
	CreatedDate   string
}

type NoteType struct {
	ID          int
	Name        string
	Description string
}

type ConfigSetting struct {
	Name        string
	Value       string
	Description string
}

type ValueRange struct {
	ID   int
	Name string
	Min  int
	Max  int
}

type ReconciliationIssue struct {
	ID            int
	AccountNumber int
	Description   string
	Severity      string
	DateFound     string
	Status        string
}

// SyncQueueEntry, SyncLogEntry and RangeOverride tables ship empty; the
// types document their columns for whatever fills them later.
type SyncQueueEntry struct {
	QueueID    int
	NoteID     int
	Operation  string
	Status     string
	QueuedDate string
}

type SyncLogEntry struct {
	LogID     int
	NoteID    int
	Operation string
	Result    string
	SyncDate  string
}

type RangeOverride struct {
	OverrideID    int
	AccountNumber int
	RangeOverride string
	Reason        string
	EffectiveDate string
}

type DigitMapEntry struct {
	MapID         int
	DigitPosition int
	Meaning       string
	ValidValues   string
}

// Dataset is one complete generation run.
type Dataset struct {
	Seed           uint64
	Window         DateWindow
	Accounts       []Account
	Staff          []Staff
	Allocations    []Allocation
	Notes          []Note
	NoteTypes      []NoteType
	Config         []ConfigSetting
	Ranges         []ValueRange
	Issues         []ReconciliationIssue
	SyncQueue      []SyncQueueEntry
	SyncLog        []SyncLogEntry
	RangeOverrides []RangeOverride
	DigitMap       []DigitMapEntry
}
