package main

import (
	"bytes"
	"testing"

	"github.com/e11jah/bst"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestScenario(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, out, "from pre-order [5 3 1 2 4 8 6 7 9]\npre-order: [5 3 1 2 4 8 6 7 9]\n")
	assert.Contains(t, out, "balanced from [2 4 7 8 1 5 6 3 9]\npre-order: [5 3 2 1 4 8 7 6 9]\n")
	assert.Contains(t, out, "size: 9 height: 4\n")
}

func TestScenarioInOrder(t *testing.T) {
	out, err := execute(t, "--order", "in")
	require.NoError(t, err)
	assert.Equal(t, 2, bytes.Count([]byte(out), []byte("in-order: [1 2 3 4 5 6 7 8 9]")))
}

func TestBuildCommands(t *testing.T) {
	dataSet := []struct {
		args     []string
		expected string
	}{
		{[]string{"balanced", "-o", "level", "3", "1", "2"}, "level-order: [2 1 3]\n"},
		{[]string{"preorder", "--order", "post", "2", "1", "3"}, "post-order: [1 3 2]\n"},
		{[]string{"insert", "1", "2", "3"}, "pre-order: [1 2 3]\nsize: 3 height: 3\n"},
		{[]string{"balanced"}, "pre-order: []\nsize: 0 height: 0\n"},
	}

	for _, d := range dataSet {
		out, err := execute(t, d.args...)
		require.NoError(t, err, d.args)
		assert.Contains(t, out, d.expected, d.args)
	}
}

func TestBuildCommandErrors(t *testing.T) {
	_, err := execute(t, "preorder", "3", "1", "2", "2")
	assert.ErrorIs(t, err, bst.ErrDuplicateKey)

	_, err = execute(t, "preorder", "5", "8", "3")
	assert.ErrorIs(t, err, bst.ErrBadShape)

	_, err = execute(t, "insert", "4", "4")
	assert.ErrorIs(t, err, bst.ErrDuplicateKey)

	_, err = execute(t, "balanced", "--order", "zigzag", "1")
	assert.ErrorIs(t, err, bst.ErrUnknownOrder)

	_, err = execute(t, "balanced", "one")
	assert.Error(t, err)
}

func TestRenderShape(t *testing.T) {
	tree := bst.New[int, string]()
	assert.Contains(t, renderShape(tree), "∅")

	require.NoError(t, tree.BuildFromPreorder([]int{5, 3, 1, 2, 4, 8, 6, 7, 9}))
	shape := renderShape(tree)
	for _, k := range []string{"5", "3", "1", "2", "4", "8", "6", "7", "9"} {
		assert.Contains(t, shape, k)
	}
	// 1 and 6 have no left child
	assert.Equal(t, 2, bytes.Count([]byte(shape), []byte("∅")))

	out, err := execute(t, "insert", "--shape", "2", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "2\n")
	assert.Contains(t, out, "1\n")
	assert.Contains(t, out, "∅")
}
