package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// vmTestCase is a chainable end-to-end test case: build one with vmTest,
// narrow it down with withX, assert on it with expectX, then run it. Each
// withX/expectX returns a new value rather than mutating in place, so a
// base case can be reused as the root of several variations.
type vmTestCase struct {
	name       string
	opts       []VMOption
	input      string
	wantOutput string
	wantStack  []int32
	expectErr  error
}

func vmTest(name string) vmTestCase { return vmTestCase{name: name} }

func (vmt vmTestCase) withInput(input string) vmTestCase {
	vmt.input = input
	return vmt
}

func (vmt vmTestCase) withOptions(opts ...VMOption) vmTestCase {
	vmt.opts = append(append([]VMOption(nil), vmt.opts...), opts...)
	return vmt
}

func (vmt vmTestCase) expectOutput(output string) vmTestCase {
	vmt.wantOutput = output
	return vmt
}

func (vmt vmTestCase) expectStack(values ...int32) vmTestCase {
	vmt.wantStack = values
	return vmt
}

func (vmt vmTestCase) expectError(err error) vmTestCase {
	vmt.expectErr = err
	return vmt
}

func (vmt vmTestCase) run(t *testing.T) {
	t.Helper()
	t.Run(vmt.name, func(t *testing.T) {
		var buf bytes.Buffer
		opts := append([]VMOption{WithInput(strings.NewReader(vmt.input)), WithOutput(&buf)}, vmt.opts...)
		vm := New(opts...)
		err := vm.Run(context.Background())

		if vmt.expectErr != nil {
			require.Error(t, err)
			assert.Equal(t, vmt.expectErr.Error(), err.Error())
		} else {
			require.NoError(t, err)
		}

		assert.Equal(t, vmt.wantOutput, buf.String())

		for i := len(vmt.wantStack) - 1; i >= 0; i-- {
			assert.Equal(t, vmt.wantStack[i], vm.popData())
		}
	})
}
