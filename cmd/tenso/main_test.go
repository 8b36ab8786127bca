package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tenso-ml/tenso/internal/optim"
)

func TestParseWidths(t *testing.T) {
	widths, err := parseWidths("32, 16")
	require.NoError(t, err)
	assert.Equal(t, []int{32, 16}, widths)

	widths, err = parseWidths("")
	require.NoError(t, err)
	assert.Empty(t, widths)

	_, err = parseWidths("8,x")
	assert.Error(t, err)
	_, err = parseWidths("0")
	assert.Error(t, err)
}

func TestRunXOR(t *testing.T) {
	require.NoError(t, runXOR([]string{"-epochs", "20", "-report", "0"}))
	assert.Error(t, runXOR([]string{"-hidden", "0"}))
}

func TestRunMNIST_RequiresFiles(t *testing.T) {
	assert.Error(t, runMNIST(nil))
	assert.Error(t, runMNIST([]string{"-images", "missing", "-labels", "missing"}))
}

func TestNewRule(t *testing.T) {
	rule, err := newRule("sgd", 0.1, 0.9)
	require.NoError(t, err)
	assert.IsType(t, &optim.SGD{}, rule)

	rule, err = newRule("adam", 0.01, 0)
	require.NoError(t, err)
	assert.IsType(t, &optim.Adam{}, rule)

	_, err = newRule("sgd", 0.1, 1.5)
	assert.Error(t, err)
	_, err = newRule("rmsprop", 0.1, 0)
	assert.Error(t, err)
}
