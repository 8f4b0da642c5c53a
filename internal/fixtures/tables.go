package fixtures

import "strconv"

// Table is one named, header-first block of rows ready to be written to a sheet.
type Table struct {
	Name    string
	Sheet   string
	Columns []string
	Rows    [][]any
	// AmountColumns are zero-based indexes of currency columns.
	AmountColumns []int
}

var (
	AccountColumns    = []string{"Account_Number", "Account_Name", "Current_Balance", "Department"}
	StaffColumns      = []string{"Staff_ID", "Name", "Department", "Email"}
	AllocationColumns = []string{"Allocation_ID", "Account_Number", "Amount", "Type", "Date_Allocated"}
	NoteColumns       = []string{"Note_ID", "Account_Number", "Note_Type", "Note_Text", "Created_By", "Created_Date"}
	NoteTypeColumns   = []string{"Type_ID", "Type_Name", "Description"}
	ConfigColumns     = []string{"Setting_Name", "Setting_Value", "Description"}
	RangeColumns      = []string{"Range_ID", "Range_Name", "Min_Value", "Max_Value"}
	IssueColumns      = []string{"Issue_ID", "Account_Number", "Issue_Description", "Severity", "Date_Found", "Status"}
	SyncQueueColumns  = []string{"Queue_ID", "Note_ID", "Operation", "Status", "Queued_Date"}
	SyncLogColumns    = []string{"Log_ID", "Note_ID", "Operation", "Result", "Sync_Date"}
	OverrideColumns   = []string{"Override_ID", "Account_Number", "Range_Override", "Reason", "Effective_Date"}
	DigitMapColumns   = []string{"Map_ID", "Digit_Position", "Meaning", "Valid_Values"}
)

// TableNames lists every table in sheet order.
var TableNames = []string{
	"tblAccounts_Current",
	"tblStaff",
	"tblAllocations",
	"tblNotes",
	"tblNoteTypes",
	"tblConfig",
	"tblRanges_Default",
	"tblReconIssues",
	"tblNoteSyncQueue",
	"tblNoteSyncLog",
	"tblRangeOverrides",
	"tblDigitMap",
}

// Tables lays the dataset out as twelve tables on Sheet1..Sheet12.
func (ds *Dataset) Tables() []Table {
	tables := []Table{
		{Columns: AccountColumns, AmountColumns: []int{2}, Rows: rowsOf(ds.Accounts, func(a Account) []any {
			return []any{a.Number, a.Name, a.CurrentBalance, a.Department}
		})},
		{Columns: StaffColumns, Rows: rowsOf(ds.Staff, func(s Staff) []any {
			return []any{s.ID, s.Name, s.Department, s.Email}
		})},
		{Columns: AllocationColumns, AmountColumns: []int{2}, Rows: rowsOf(ds.Allocations, func(a Allocation) []any {
			return []any{a.ID, a.AccountNumber, a.Amount, a.Type, a.DateAllocated}
		})},
		{Columns: NoteColumns, Rows: rowsOf(ds.Notes, func(n Note) []any {
			return []any{n.ID, n.AccountNumber, n.Type, n.Text, n.CreatedBy, n.CreatedDate}
		})},
		{Columns: NoteTypeColumns, Rows: rowsOf(ds.NoteTypes, func(n NoteType) []any {
			return []any{n.ID, n.Name, n.Description}
		})},
		{Columns: ConfigColumns, Rows: rowsOf(ds.Config, func(c ConfigSetting) []any {
			return []any{c.Name, c.Value, c.Description}
		})},
		{Columns: RangeColumns, Rows: rowsOf(ds.Ranges, func(r ValueRange) []any {
			return []any{r.ID, r.Name, r.Min, r.Max}
		})},
		{Columns: IssueColumns, Rows: rowsOf(ds.Issues, func(i ReconciliationIssue) []any {
			return []any{i.ID, i.AccountNumber, i.Description, i.Severity, i.DateFound, i.Status}
		})},
		{Columns: SyncQueueColumns, Rows: rowsOf(ds.SyncQueue, func(q SyncQueueEntry) []any {
			return []any{q.QueueID, q.NoteID, q.Operation, q.Status, q.QueuedDate}
		})},
		{Columns: SyncLogColumns, Rows: rowsOf(ds.SyncLog, func(l SyncLogEntry) []any {
			return []any{l.LogID, l.NoteID, l.Operation, l.Result, l.SyncDate}
		})},
		{Columns: OverrideColumns, Rows: rowsOf(ds.RangeOverrides, func(o RangeOverride) []any {
			return []any{o.OverrideID, o.AccountNumber, o.RangeOverride, o.Reason, o.EffectiveDate}
		})},
		{Columns: DigitMapColumns, Rows: rowsOf(ds.DigitMap, func(d DigitMapEntry) []any {
			return []any{d.MapID, d.DigitPosition, d.Meaning, d.ValidValues}
		})},
	}

	for i := range tables {
		tables[i].Name = TableNames[i]
		tables[i].Sheet = SheetName(i)
		// A table needs at least one body row to be valid.
		if len(tables[i].Rows) == 0 {
			tables[i].Rows = [][]any{blankRow(len(tables[i].Columns))}
		}
	}
	return tables
}

// SheetName returns "Sheet<n>" for the zero-based table index.
func SheetName(index int) string {
	return "Sheet" + strconv.Itoa(index+1)
}

func rowsOf[T any](items []T, row func(T) []any) [][]any {
	rows := make([][]any, 0, len(items))
	for _, item := range items {
		rows = append(rows, row(item))
	}
	return rows
}

func blankRow(width int) []any {
	row := make([]any, width)
	for i := range row {
		row[i] = ""
	}
	return row
}
