package parser

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPython_FunctionsAndClasses(t *testing.T) {
	p := NewPythonParser()

	code := `
import os
from collections import defaultdict

def top_level():
    return 1

class Worker:
    def run(self):
        pass

square = lambda x: x * x
`
	res, err := p.Parse(context.Background(), []byte(code))
	require.NoError(t, err)

	require.Len(t, res.Functions, 3)
	assert.Equal(t, "top_level", res.Functions[0].Name)
	assert.Equal(t, "run", res.Functions[1].Name)
	assert.Equal(t, "square", res.Functions[2].Name)

	require.Len(t, res.Classes, 1)
	assert.Equal(t, "Worker", res.Classes[0].Name)

	var modules []string
	for _, imp := range res.Imports {
		modules = append(modules, imp.Module)
	}
	assert.Contains(t, modules, "os")
	assert.Contains(t, modules, "collections")
}

func TestPython_Complexity(t *testing.T) {
	p := NewPythonParser()

	tests := []struct {
		name string
		code string
		want uint32
	}{
		{
			name: "straight line",
			code: "def f():\n    return 1\n",
			want: 1,
		},
		{
			name: "if elif else",
			code: "def f(x):\n    if x > 0:\n        return 1\n    elif x < 0:\n        return -1\n    else:\n        return 0\n",
			want: 3,
		},
		{
			name: "boolean operators",
			code: "def f(a, b, c):\n    return a and b or c\n",
			want: 3,
		},
		{
			name: "for with except",
			code: "def f(xs):\n    try:\n        for x in xs:\n            pass\n    except ValueError:\n        pass\n",
			want: 3,
		},
		{
			name: "conditional expression",
			code: "def f(x):\n    return 1 if x else 0\n",
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := p.Parse(context.Background(), []byte(tt.code))
			require.NoError(t, err)
			require.Len(t, res.Functions, 1)
			assert.Equal(t, tt.want, res.Functions[0].Complexity)
		})
	}
}

func TestPython_LambdaYieldsSingleEntry(t *testing.T) {
	p := NewPythonParser()

	res, err := p.Parse(context.Background(), []byte("square = lambda x: x * x\n"))
	require.NoError(t, err)

	// The lambda keyword token shares its type string with the lambda
	// node; only the construct itself is an entry.
	require.Len(t, res.Functions, 1)
	assert.Equal(t, "square", res.Functions[0].Name)
}

func TestPython_IndentationErrorsTolerated(t *testing.T) {
	p := NewPythonParser()

	code := "def ok():\n    return 1\n\ndef broken(:\n"
	res, err := p.Parse(context.Background(), []byte(code))
	require.NoError(t, err)
	require.NotEmpty(t, res.Functions)
	assert.Equal(t, "ok", res.Functions[0].Name)
}
