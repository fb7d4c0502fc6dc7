package parser

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRust_FunctionsStructsTraits(t *testing.T) {
	p := NewRustParser()

	code := `
use std::collections::HashMap;

struct Cache {
    entries: HashMap<String, String>,
}

trait Store {
    fn get(&self, key: &str) -> Option<String>;
}

fn build() -> Cache {
    Cache { entries: HashMap::new() }
}

impl Store for Cache {
    fn get(&self, key: &str) -> Option<String> {
        self.entries.get(key).cloned()
    }
}
`
	res, err := p.Parse(context.Background(), []byte(code))
	require.NoError(t, err)

	// The trait declares a signature, build and the impl define bodies.
	require.Len(t, res.Functions, 3)
	assert.Equal(t, "get", res.Functions[0].Name)
	assert.Equal(t, uint32(1), res.Functions[0].Complexity)
	assert.Equal(t, "build", res.Functions[1].Name)
	assert.Equal(t, "get", res.Functions[2].Name)

	require.Len(t, res.Classes, 2)
	assert.Equal(t, "Cache", res.Classes[0].Name)
	assert.Equal(t, "Store", res.Classes[1].Name)

	require.Len(t, res.Imports, 1)
	assert.Equal(t, "std::collections::HashMap", res.Imports[0].Module)
}

func TestRust_Closures(t *testing.T) {
	p := NewRustParser()

	code := `
fn main() {
    let double = |x: i32| x * 2;
    let _ = double(2);
}
`
	res, err := p.Parse(context.Background(), []byte(code))
	require.NoError(t, err)

	require.Len(t, res.Functions, 2)
	assert.Equal(t, "main", res.Functions[0].Name)
	assert.Equal(t, "double", res.Functions[1].Name)
}

func TestRust_Complexity(t *testing.T) {
	p := NewRustParser()

	tests := []struct {
		name string
		code string
		want uint32
	}{
		{
			name: "straight line",
			code: "fn f() -> i32 { 1 }\n",
			want: 1,
		},
		{
			name: "if and while",
			code: "fn f(mut x: i32) -> i32 {\n    while x > 10 {\n        if x % 2 == 0 {\n            x -= 2;\n        }\n        x -= 1;\n    }\n    x\n}\n",
			want: 3,
		},
		{
			name: "match",
			code: "fn f(x: i32) -> &'static str {\n    match x {\n        0 => \"zero\",\n        _ => \"other\",\n    }\n}\n",
			want: 2,
		},
		{
			name: "short circuit",
			code: "fn f(a: bool, b: bool) -> bool { a && b }\n",
			want: 2,
		},
		{
			name: "loop",
			code: "fn f() {\n    loop {\n        break;\n    }\n}\n",
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
