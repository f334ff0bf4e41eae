package crosspath

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/crosspath/pkg/errors"
)

func TestPathBasics(t *testing.T) {
	var zero Path
	assert.True(t, zero.IsEmpty())
	assert.Equal(t, "", zero.String())

	p := MustNew(`a\b`)
	assert.False(t, p.IsEmpty())
	assert.True(t, p.Equal(MustNew("a/b")))
	assert.False(t, p.Equal(MustNew("a/c")))
}

func TestPathIsAbsolute(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"/etc", true},
		{"~", true},
		{"~/x", true},
		{`c:\x`, true},
		{"/tmp/x", true},
		{"x/y", false},
		{"~x", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, MustNew(tt.raw).IsAbsolute())
		})
	}
}

func TestPathComponents(t *testing.T) {
	assert.Equal(t, []string{"mnt", "c", "x"}, MustNew(`c:\x\`).Components())
	assert.Equal(t, []string{"~", "docs"}, MustNew("~/docs").Components())
	assert.Empty(t, MustNew("/").Components())
	assert.Empty(t, Path{}.Components())
}

type document struct {
	Source Path `json:"source" yaml:"source"`
}

func TestPathText(t *testing.T) {
	data, err := json.Marshal(document{Source: MustNew(`c:\src`)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"source":"/mnt/c/src"}`, string(data))

	var doc document
	require.NoError(t, json.Unmarshal([]byte(`{"source":"~\\notes"}`), &doc))
	assert.Equal(t, "~/notes", doc.Source.String())

	err = json.Unmarshal([]byte(`{"source":"bad|path"}`), &doc)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidCharacter))
}

func TestPathYAML(t *testing.T) {
	var doc document
	require.NoError(t, yaml.Unmarshal([]byte("source: D:\\data\n"), &doc))
	assert.Equal(t, "/mnt/d/data", doc.Source.String())

	out, err := yaml.Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t, "source: /mnt/d/data\n", string(out))
}
