package jet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jetaudit/internal/ledger"
)

func TestNetToZero(t *testing.T) {
	gl := testLedger(allFields,
		// account 501 nets to exactly zero and must be excluded
		ledger.Entry{Account: "501", Debit: ledger.N(100)},
		ledger.Entry{Account: "501", Credit: ledger.N(100)},
		ledger.Entry{Account: "101", Debit: ledger.N(250)},
		ledger.Entry{Account: "201", Credit: ledger.N(30)},
	)

	got, err := NetToZero(gl)
	require.NoError(t, err)

	require.Len(t, got.Rows, 2)
	assert.Equal(t, []any{"101", 250.0}, got.Rows[0])
	assert.Equal(t, []any{"201", -30.0}, got.Rows[1])
}

func TestNetToZero_ExactComparison(t *testing.T) {
	// a tiny residual is still a nonzero net, no tolerance applies
	gl := testLedger(allFields,
		ledger.Entry{Account: "301", Debit: ledger.N(100.01)},
		ledger.Entry{Account: "301", Credit: ledger.N(100)},
	)

	got, err := NetToZero(gl)
	require.NoError(t, err)
	require.Len(t, got.Rows, 1)
	assert.Equal(t, "301", got.Rows[0][0])
	assert.InDelta(t, 0.01, got.Rows[0][1].(float64), 1e-9)
}

func TestNetToZero_MissingAmountsCountAsZero(t *testing.T) {
	gl := testLedger(allFields,
		ledger.Entry{Account: "401", Debit: ledger.N(50)},
		ledger.Entry{Account: "401"}, // no amounts at all
	)

	got, err := NetToZero(gl)
	require.NoError(t, err)
	require.Len(t, got.Rows, 1)
	assert.Equal(t, []any{"401", 50.0}, got.Rows[0])
}

func TestNetToZero_EmptyLedger(t *testing.T) {
	got, err := NetToZero(nil)
	require.NoError(t, err)
	assert.True(t, got.Empty())
	assert.Equal(t, TableNetToZero, got.Name)
}
