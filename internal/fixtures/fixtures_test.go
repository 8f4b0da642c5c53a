package fixtures

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultParams() Params {
	return Params{
		AccountCount:    20,
		AllocationCount: 30,
		NoteCount:       20,
		IssueCount:      5,
		Window: DateWindow{
			Start:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			SpanDays: 41,
		},
	}
}

func TestGeneratorIntBetweenIsInclusive(t *testing.T) {
	g := NewGenerator(7)
	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		v := g.IntBetween(0, 3)
		require.GreaterOrEqual(t, v, 0)
		require.LessOrEqual(t, v, 3)
		seen[v] = true
	}
	assert.Len(t, seen, 4)
}

func TestGeneratorAmountRoundsToCents(t *testing.T) {
	g := NewGenerator(11)
	for i := 0; i < 500; i++ {
		v := g.Amount(100, 10000)
		require.GreaterOrEqual(t, v, 100.0)
		require.LessOrEqual(t, v, 10000.0)
		assert.InDelta(t, v, float64(int64(v*100+0.5))/100, 1e-9)
	}
}

func TestNewGeneratorZeroSeedPicksOne(t *testing.T) {
	assert.NotZero(t, NewGenerator(0).Seed())
	assert.Equal(t, uint64(99), NewGenerator(99).Seed())
}

func TestDateWindow(t *testing.T) {
	w := defaultParams().Window
	assert.Equal(t, "2026-02-11", w.End().Format(DateLayout))
	assert.True(t, w.Contains("2026-01-01"))
	assert.True(t, w.Contains("2026-02-11"))
	assert.False(t, w.Contains("2025-12-31"))
	assert.False(t, w.Contains("2026-02-12"))
	assert.False(t, w.Contains("not a date"))
}

func TestGenerateRowCounts(t *testing.T) {
	ds, err := Generate(NewGenerator(1), defaultParams())
	require.NoError(t, err)

	assert.Len(t, ds.Accounts, 20)
	assert.Len(t, ds.Staff, 5)
	assert.Len(t, ds.Allocations, 30)
	assert.Len(t, ds.Notes, 20)
	assert.Len(t, ds.NoteTypes, 4)
	assert.Len(t, ds.Config, 4)
	assert.Len(t, ds.Ranges, 4)
	assert.Len(t, ds.Issues, 5)
	assert.Empty(t, ds.SyncQueue)
	assert.Empty(t, ds.SyncLog)
	assert.Empty(t, ds.RangeOverrides)
	assert.Len(t, ds.DigitMap, 7)
}

func TestGenerateValuesInRange(t *testing.T) {
	p := defaultParams()
	ds, err := Generate(NewGenerator(2), p)
	require.NoError(t, err)

	pool := map[int]bool{}
	for _, a := range ds.Accounts {
		assert.GreaterOrEqual(t, a.Number, MinAccountNumber)
		assert.LessOrEqual(t, a.Number, MaxAccountNumber)
		assert.GreaterOrEqual(t, a.CurrentBalance, 1000.0)
		assert.LessOrEqual(t, a.CurrentBalance, 100000.0)
		assert.Contains(t, Departments, a.Department)
		pool[a.Number] = true
	}

	for _, a := range ds.Allocations {
		assert.True(t, pool[a.AccountNumber])
		assert.Contains(t, AllocationTypes, a.Type)
		assert.True(t, p.Window.Contains(a.DateAllocated), a.DateAllocated)
	}
	for _, n := range ds.Notes {
		assert.True(t, pool[n.AccountNumber])
		assert.Contains(t, NoteTypeNames, n.Type)
		assert.Contains(t, StaffNames, n.CreatedBy)
		assert.True(t, p.Window.Contains(n.CreatedDate), n.CreatedDate)
	}
	for _, i := range ds.Issues {
		assert.True(t, pool[i.AccountNumber])
		assert.Contains(t, Severities, i.Severity)
		assert.Equal(t, "Open", i.Status)
		assert.True(t, p.Window.Contains(i.DateFound), i.DateFound)
	}
}

func TestGenerateFixedFields(t *testing.T) {
	ds, err := Generate(NewGenerator(3), defaultParams())
	require.NoError(t, err)

	assert.Equal(t, "alice.johnson@company.com", ds.Staff[0].Email)
	assert.Equal(t, 5, ds.Staff[4].ID)
	assert.Equal(t, "Type for Reconciliation notes", ds.NoteTypes[2].Description)
	assert.Equal(t, "Test note 1", ds.Notes[0].Text)
	assert.Equal(t, ConfigSetting{"Default_Currency", "USD", "Currency for all amounts"}, ds.Config[3])
	assert.Equal(t, ValueRange{4, "Premium", 100001, 999999}, ds.Ranges[3])
	assert.Equal(t, DigitMapEntry{1, 1, "Company Code", "1-9"}, ds.DigitMap[0])
}

func TestGenerateIsReproducible(t *testing.T) {
	a, err := Generate(NewGenerator(42), defaultParams())
	require.NoError(t, err)
	b, err := Generate(NewGenerator(42), defaultParams())
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := Generate(NewGenerator(43), defaultParams())
	require.NoError(t, err)
	assert.NotEqual(t, a.Accounts, c.Accounts)
}

func TestGenerateRejectsBadParams(t *testing.T) {
	p := defaultParams()
	p.AccountCount = 0
	_, err := Generate(NewGenerator(1), p)
	assert.Error(t, err)

	p = defaultParams()
	p.NoteCount = -1
	_, err = Generate(NewGenerator(1), p)
	assert.Error(t, err)
}

func TestTablesLayout(t *testing.T) {
	ds, err := Generate(NewGenerator(4), defaultParams())
	require.NoError(t, err)

	tables := ds.Tables()
	require.Len(t, tables, 12)

	for i, table := range tables {
		assert.Equal(t, TableNames[i], table.Name)
		assert.Equal(t, SheetName(i), table.Sheet)
		for _, row := range table.Rows {
			assert.Len(t, row, len(table.Columns), table.Name)
		}
	}

	assert.Equal(t, "Sheet12", tables[11].Sheet)
	assert.Equal(t, NoteColumns, tables[3].Columns)
	assert.Len(t, tables[0].Rows, 20)
	assert.Len(t, tables[2].Rows, 30)

	// Empty tables carry one blank row.
	for _, i := range []int{8, 9, 10} {
		require.Len(t, tables[i].Rows, 1, tables[i].Name)
		for _, v := range tables[i].Rows[0] {
			assert.Equal(t, "", v)
		}
	}
}

func TestSummarize(t *testing.T) {
	ds, err := Generate(NewGenerator(5), defaultParams())
	require.NoError(t, err)

	s := Summarize(ds, ds.Tables())
	assert.Equal(t, uint64(5), s.Seed)
	assert.Equal(t, 20, s.Accounts)
	require.Len(t, s.Tables, 12)
	assert.Equal(t, TableCount{Name: "tblReconIssues", Rows: 5}, s.Tables[7])
}
