package fixtures

import (
	"fmt"
	"strings"
)

var (
	StaffNames      = []string{"Alice Johnson", "Bob Smith", "Carol Williams", "David Brown", "Emma Davis"}
	Departments     = []string{"Accounting", "Operations", "Finance", "Admin"}
	AllocationTypes = []string{"Direct", "Indirect", "Overhead", "Adjustment"}
	NoteTypeNames   = []string{"Comment", "Alert", "Reconciliation", "Internal"}
	Severities      = []string{"Low", "Medium", "High"}
)

var configSettings = []ConfigSetting{
	{"Fiscal_Year_Start", "2026-01-01", "Start of fiscal year"},
	{"Fiscal_Year_End", "2026-12-31", "End of fiscal year"},
	{"Reconciliation_Frequency", "Monthly", "How often reconciliation runs"},
	{"Default_Currency", "USD", "Currency for all amounts"},
}

var defaultRanges = []ValueRange{
	{1, "Small", 0, 1000},
	{2, "Medium", 1001, 10000},
	{3, "Large", 10001, 100000},
	{4, "Premium", 100001, 999999},
}

var digitMap = []DigitMapEntry{
	{1, 1, "Company Code", "1-9"},
	{2, 2, "Department", "0-9"},
	{3, 3, "SubDept", "0-9"},
	{4, 4, "Cost Center", "0-9"},
	{5, 5, "Account Type", "0-9"},
	{6, 6, "Reserved", "0-9"},
	{7, 7, "Sequence", "0-9"},
}

// Params are the row counts and date window for one run.
type Params struct {
	AccountCount    int
	AllocationCount int
	NoteCount       int
	IssueCount      int
	Window          DateWindow
}

func (p Params) Validate() error {
	if p.AccountCount < 1 {
		return fmt.Errorf("account count must be at least 1, got %d", p.AccountCount)
	}
	if p.AllocationCount < 0 || p.NoteCount < 0 || p.IssueCount < 0 {
		return fmt.Errorf("row counts must not be negative")
	}
	if p.Window.SpanDays < 0 {
		return fmt.Errorf("date span must not be negative, got %d", p.Window.SpanDays)
	}
	return nil
}

// Generate builds every table for one run.
func Generate(g *Generator, p Params) (*Dataset, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	accounts := g.AccountNumbers(p.AccountCount)
	ds := &Dataset{
		Seed:     g.Seed(),
		Window:   p.Window,
		Config:   append([]ConfigSetting(nil), configSettings...),
		Ranges:   append([]ValueRange(nil), defaultRanges...),
		DigitMap: append([]DigitMapEntry(nil), digitMap...),
	}

	for _, number := range accounts {
		ds.Accounts = append(ds.Accounts, Account{
			Number:         number,
			Name:           fmt.Sprintf("Account_%d", number),
			CurrentBalance: g.Amount(1000, 100000),
			Department:     g.Choice(Departments),
		})
	}

	for i, name := range StaffNames {
		ds.Staff = append(ds.Staff, Staff{
			ID:         i + 1,
			Name:       name,
			Department: g.Choice(Departments),
			Email:      staffEmail(name),
		})
	}

	for id := 1; id <= p.AllocationCount; id++ {
		ds.Allocations = append(ds.Allocations, Allocation{
			ID:            id,
			AccountNumber: g.AccountChoice(accounts),
			Amount:        g.Amount(100, 10000),
			Type:          g.Choice(AllocationTypes),
			DateAllocated: g.Date(p.Window),
		})
	}

	for id := 1; id <= p.NoteCount; id++ {
		ds.Notes = append(ds.Notes, Note{
			ID:            id,
			AccountNumber: g.AccountChoice(accounts),
			Type:          g.Choice(NoteTypeNames),
			Text:          fmt.Sprintf("Test note %d", id),
			CreatedBy:     g.Choice(StaffNames),
			CreatedDate:   g.Date(p.Window),
		})
	}

	for i, name := range NoteTypeNames {
		ds.NoteTypes = append(ds.NoteTypes, NoteType{
			ID:          i + 1,
			Name:        name,
			Description: fmt.Sprintf("Type for %s notes", name),
		})
	}

	for id := 1; id <= p.IssueCount; id++ {
		ds.Issues = append(ds.Issues, ReconciliationIssue{
			ID:            id,
			AccountNumber: g.AccountChoice(accounts),
			Description:   fmt.Sprintf("Reconciliation issue %d", id),
			Severity:      g.Choice(Severities),
			DateFound:     g.Date(p.Window),
			Status:        "Open",
		})
	}

	return ds, nil
}

func staffEmail(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", ".") + "@company.com"
}
