package oracle_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sorawee/isaforge/oracle"
)

func TestNewDriverRejectsEmptyCommand(t *testing.T) {
	_, err := oracle.NewDriver(nil)
	assert.ErrorIs(t, err, oracle.ErrEmptyCommand)
}

func TestNewDriverSplitsCommandAndArgs(t *testing.T) {
	d, err := oracle.NewDriver([]string{"racket", "-tm", "check.rkt"})
	require.NoError(t, err)
	assert.Equal(t, "racket", d.Command)
	assert.Equal(t, []string{"-tm", "check.rkt"}, d.Args)
}

func TestValidateAcceptsOnZeroExit(t *testing.T) {
	driver := oracle.Driver{Command: "true"}
	verdict, err := driver.Validate(context.Background(), "(bvand x y)", map[string]int{"x": 8, "y": 8})
	require.NoError(t, err)
	assert.True(t, verdict.Accepted)
}

func TestValidateRejectsOnNonzeroExit(t *testing.T) {
	driver := oracle.Driver{Command: "false"}
	verdict, err := driver.Validate(context.Background(), "(bvand x y)", nil)
	require.NoError(t, err)
	assert.False(t, verdict.Accepted)
}

func TestValidateReturnsErrorWhenCommandMissing(t *testing.T) {
	driver := oracle.Driver{Command: "isaforge-oracle-does-not-exist"}
	_, err := driver.Validate(context.Background(), "x", nil)
	assert.Error(t, err)
}
