package cfg_test

import (
	"testing"

	"github.com/jlrickert/itemcfg/pkg/cfg"
	"github.com/stretchr/testify/require"
)

func TestGetValue(t *testing.T) {
	t.Parallel()
	const data = `foo = 1; count = 42; bar = "x";`

	tests := []struct {
		name   string
		data   string
		key    string
		typ    cfg.ValueType
		want   string
		wantOK bool
	}{
		{name: "number in the middle", data: data, key: "count", typ: cfg.TypeNumber, want: "42", wantOK: true},
		{name: "number at start", data: data, key: "foo", typ: cfg.TypeNumber, want: "1", wantOK: true},
		{name: "string", data: data, key: "bar", typ: cfg.TypeString, want: "x", wantOK: true},
		{name: "absent number", data: data, key: "missing", typ: cfg.TypeNumber},
		{name: "absent string", data: data, key: "missing", typ: cfg.TypeString},
		{name: "wrong type is absent", data: data, key: "bar", typ: cfg.TypeNumber},
		{name: "number with suffix", data: "size = 10k;", key: "size", typ: cfg.TypeNumber, want: "10", wantOK: true},
		{name: "loose whitespace", data: "\n\t title\t=   \"Hello World\"  ;\n", key: "title", typ: cfg.TypeString, want: "Hello World", wantOK: true},
		{name: "empty string", data: `title = "";`, key: "title", typ: cfg.TypeString, want: "", wantOK: true},
		{name: "needs terminator", data: `title = "x"`, key: "title", typ: cfg.TypeString},
		{name: "no partial key match", data: `modid = 7; id = 3;`, key: "id", typ: cfg.TypeNumber, want: "3", wantOK: true},
		{name: "key inside another key", data: `modid = 7;`, key: "id", typ: cfg.TypeNumber},
		{name: "first match wins", data: `a = "one"; a = "two";`, key: "a", typ: cfg.TypeString, want: "one", wantOK: true},
		{name: "key order does not matter", data: "b = \"2\";\na = \"1\";", key: "a", typ: cfg.TypeString, want: "1", wantOK: true},
		{name: "key is not a pattern", data: `axb = "x"; a.b = "dot";`, key: "a.b", typ: cfg.TypeString, want: "dot", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok, err := cfg.GetValue(tt.data, tt.key, tt.typ)
			require.NoError(t, err)
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestGetValue_UnsupportedType(t *testing.T) {
	t.Parallel()
	_, _, err := cfg.GetValue(`a = 1;`, "a", cfg.ValueType("bool"))
	require.ErrorIs(t, err, cfg.ErrUnsupportedType)
	require.Contains(t, err.Error(), `"bool"`)
}
