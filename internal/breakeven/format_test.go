package breakeven

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableFormatter_Format(t *testing.T) {
	result, err := newTestSolver().Solve(context.Background(), raise(GoalNetRaise, 500))
	require.NoError(t, err)

	out := (&TableFormatter{}).Format(result)
	assert.Contains(t, out, "RAISE ANALYSIS - STANDARD SECTOR")
	assert.Contains(t, out, "+918")
	assert.Contains(t, out, "Cost per extra lei net: 1.88")
	assert.Contains(t, out, "Status: OK")
}

func TestTableFormatter_FormatMultiSector(t *testing.T) {
	result, err := newTestSolver().SolveAllSectors(context.Background(), raise(GoalNetRaise, 500))
	require.NoError(t, err)

	out := (&TableFormatter{}).FormatMultiSector(result)
	assert.Contains(t, out, "Construction *")
	assert.Contains(t, out, "RECOMMENDATIONS")
}

func TestTableFormatter_Helpers(t *testing.T) {
	tf := &TableFormatter{}
	assert.Equal(t, "NOT MET", tf.formatStatus(false))
	assert.Equal(t, "+", tf.deltaSymbol(lei(1)))
	assert.Equal(t, "", tf.deltaSymbol(lei(-1)))
	assert.Equal(t, "Constr...", tf.truncate("Construction", 9))
}

func TestJSONFormatter(t *testing.T) {
	result, err := newTestSolver().Solve(context.Background(), raise(GoalCostBudget, 1000))
	require.NoError(t, err)

	out, err := (&JSONFormatter{Pretty: true}).Format(result)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "cost", decoded["goal"])
	assert.Equal(t, "532", decoded["net_increase"])

	multi, err := newTestSolver().SolveAllSectors(context.Background(), raise(GoalCostBudget, 1000))
	require.NoError(t, err)
	out, err = (&JSONFormatter{}).FormatMultiSector(multi)
	require.NoError(t, err)
	assert.Contains(t, out, `"recommendations"`)
}
