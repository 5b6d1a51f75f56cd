package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntriesFromTable(t *testing.T) {
	table := Table{
		Headers: []string{"Данс", "Дансны нэр", "Огноо", "Дебет", "Кредит", "Гүйлгээний утга", "Бүртгэсэн хэрэглэгч"},
		Rows: [][]string{
			{"1101", "Cash", "2024-03-05", "1,500.00", "", "Opening deposit", "bat"},
			{"5101", "Sales", "2024-03-05", "", "1,500.00", "Opening deposit", "bat"},
			{"6201", "Rent", "bad date", "(700)", "", "March rent", "dorj"},
			{"", "", "", "", "", "", ""},
		},
	}

	gl, err := EntriesFromTable(table)
	require.NoError(t, err)

	require.Len(t, gl.Entries, 3, "blank row dropped")
	assert.True(t, gl.Has(FieldAccount))
	assert.True(t, gl.Has(FieldDebit))
	assert.True(t, gl.Has(FieldUser))
	assert.False(t, gl.Has(FieldCurrency))

	// transaction and absolute are synthesized from debit and credit
	assert.Equal(t, DerivedColumn, gl.Columns[FieldTransaction])
	assert.Equal(t, DerivedColumn, gl.Columns[FieldAbsolute])

	first := gl.Entries[0]
	assert.Equal(t, "1101", first.Account)
	assert.Equal(t, "Cash", first.AccountName)
	assert.True(t, first.HasDate)
	assert.Equal(t, 1500.0, first.Debit.Or(0))
	assert.False(t, first.Credit.Valid)
	assert.Equal(t, 1500.0, first.Transaction.Or(0))
	assert.Equal(t, 1500.0, first.Absolute.Or(0))
	assert.Equal(t, "bat", first.User)

	second := gl.Entries[1]
	assert.Equal(t, -1500.0, second.Transaction.Or(0))
	assert.Equal(t, 1500.0, second.Absolute.Or(0))

	third := gl.Entries[2]
	assert.False(t, third.HasDate, "unparseable date stays unset")
	assert.Equal(t, -700.0, third.Debit.Or(0))
	assert.Equal(t, -700.0, third.Transaction.Or(0))
	assert.Equal(t, 700.0, third.Absolute.Or(0))
}

func TestEntriesFromTable_TransactionColumn(t *testing.T) {
	table := Table{
		Headers: []string{"Данс", "Гүйлгээний дүн"},
		Rows: [][]string{
			{"1101", "232,999,999"},
			{"2201", "(45.5)"},
		},
	}

	gl, err := EntriesFromTable(table)
	require.NoError(t, err)
	require.Len(t, gl.Entries, 2)

	// the raw cell is preserved for digit-run scans
	assert.Equal(t, "232,999,999", gl.Entries[0].RawTransaction)
	assert.Equal(t, 232999999.0, gl.Entries[0].Transaction.Or(0))
	assert.Equal(t, -45.5, gl.Entries[1].Transaction.Or(0))
	assert.Equal(t, 45.5, gl.Entries[1].Absolute.Or(0))
}

func TestEntriesFromTable_NoAmountColumns(t *testing.T) {
	table := Table{
		Headers: []string{"Данс", "Огноо", "Гүйлгээний утга"},
		Rows:    [][]string{{"1101", "2024-01-01", "note"}},
	}

	_, err := EntriesFromTable(table)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no usable amount column")
}

func TestEntriesFromTable_RaggedRows(t *testing.T) {
	table := Table{
		Headers: []string{"Данс", "Дебет", "Кредит"},
		Rows: [][]string{
			{"1101", "100"},
			{"2201"},
		},
	}

	gl, err := EntriesFromTable(table)
	require.NoError(t, err)
	require.Len(t, gl.Entries, 2)
	assert.Equal(t, 100.0, gl.Entries[0].Debit.Or(0))
	assert.False(t, gl.Entries[1].Debit.Valid)
	assert.False(t, gl.Entries[1].Transaction.Valid)
}

func TestTrialBalanceFromTable(t *testing.T) {
	table := Table{
		Headers: []string{"Данс", "Эхний үлдэгдэл", "Эцсийн үлдэгдэл"},
		Rows: [][]string{
			{"1101", "1,000", "2,500"},
			{"5101", "", "(1,500)"},
			{"", "", ""},
		},
	}

	tb, err := TrialBalanceFromTable(table)
	require.NoError(t, err)

	require.Len(t, tb, 2)
	assert.Equal(t, "1101", tb[0].Account)
	assert.Equal(t, 1000.0, tb[0].Opening.Or(0))
	assert.Equal(t, 2500.0, tb[0].Closing.Or(0))
	assert.False(t, tb[1].Opening.Valid)
	assert.Equal(t, -1500.0, tb[1].Closing.Or(0))
}

func TestTrialBalanceFromTable_YearHeaders(t *testing.T) {
	// some exports label balance columns with the bare years
	table := Table{
		Headers: []string{"Данс", "2023", "2024"},
		Rows:    [][]string{{"1101", "10", "25"}},
	}

	tb, err := TrialBalanceFromTable(table)
	require.NoError(t, err)
	require.Len(t, tb, 1)
	assert.Equal(t, 10.0, tb[0].Opening.Or(0))
	assert.Equal(t, 25.0, tb[0].Closing.Or(0))
}

func TestTrialBalanceFromTable_MissingAccount(t *testing.T) {
	table := Table{
		Headers: []string{"Opening", "Closing"},
		Rows:    [][]string{{"1", "2"}},
	}

	_, err := TrialBalanceFromTable(table)
	assert.Error(t, err)
}

func TestLedger_NilSafety(t *testing.T) {
	var gl *Ledger
	assert.True(t, gl.Empty())
	assert.False(t, gl.Has(FieldAccount))
}
