package prompt

import (
	"testing"

	"github.com/arthur-debert/figart/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScripted(t *testing.T) {
	s := &Scripted{Answers: []string{"12", "Hello"}}

	first, err := s.Ask("Choose a font")
	require.NoError(t, err)
	second, err := s.Ask("Enter text")
	require.NoError(t, err)
	_, err = s.Ask("one more")

	assert.Equal(t, "12", first)
	assert.Equal(t, "Hello", second)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPrompt))
	assert.Equal(t, []string{"Choose a font", "Enter text", "one more"}, s.Asked)
}

func TestTerminalImplementsPrompter(t *testing.T) {
	var _ Prompter = Terminal{}
	var _ Prompter = &Scripted{}
}
