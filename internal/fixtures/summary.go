package fixtures

// Summary is what a populate run reports back.
type Summary struct {
	Seed       uint64
	RunID      string
	OutputPath string
	Accounts   int
	Tables     []TableCount
}

type TableCount struct {
	Name string
	Rows int
}

func Summarize(ds *Dataset, tables []Table) *Summary {
	s := &Summary{
		Seed:     ds.Seed,
		Accounts: len(ds.Accounts),
	}
	for _, t := range tables {
		s.Tables = append(s.Tables, TableCount{Name: t.Name, Rows: len(t.Rows)})
	}
	return s
}
