package interaction

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinePrompter_ConsecutiveAnswers(t *testing.T) {
	var out bytes.Buffer
	p := NewLinePrompter(strings.NewReader("x\n r \ns"), &out)

	for _, want := range []string{"x", "r", "s"} {
		got, err := p.Prompt("Skip this file, or replace it?", "[s/r]: ")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := p.Prompt("Skip this file, or replace it?", "[s/r]: ")
	assert.ErrorIs(t, err, io.EOF)

	assert.Equal(t, 4, strings.Count(out.String(), "Skip this file, or replace it? [s/r]: "))
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) { return 0, errors.New("closed") }

func TestLinePrompter_ReadError(t *testing.T) {
	p := NewLinePrompter(brokenReader{}, io.Discard)

	_, err := p.Prompt("q", "> ")
	require.Error(t, err)
	assert.Equal(t, "read answer: closed", err.Error())
}

func TestHuhPrompter_UsesRunner(t *testing.T) {
	orig := runInputPrompt
	t.Cleanup(func() { runInputPrompt = orig })

	var gotTitle, gotMarker string
	runInputPrompt = func(title, marker string, input *string) error {
		gotTitle = title
		gotMarker = marker
		*input = " r "
		return nil
	}

	got, err := HuhPrompter{}.Prompt("Skip this file, or replace it?", "[s/r]: ")
	require.NoError(t, err)
	assert.Equal(t, "r", got)
	assert.Equal(t, "Skip this file, or replace it?", gotTitle)
	assert.Equal(t, "[s/r]: ", gotMarker)
}

func TestHuhPrompter_WrapsError(t *testing.T) {
	orig := runInputPrompt
	t.Cleanup(func() { runInputPrompt = orig })
	runInputPrompt = func(string, string, *string) error {
		return errors.New("tty unavailable")
	}

	_, err := HuhPrompter{}.Prompt("q", "> ")
	assert.EqualError(t, err, "prompt input: tty unavailable")
}

func TestNew(t *testing.T) {
	assert.IsType(t, HuhPrompter{}, New(nil, nil, true))
	assert.IsType(t, &LinePrompter{}, New(strings.NewReader(""), io.Discard, false))
}
