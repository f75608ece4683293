package external

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatformCommand(t *testing.T) {
	assert.Equal(t, []string{"open"}, platformCommand("darwin"))
	assert.Equal(t, []string{"rundll32", "url.dll,FileProtocolHandler"}, platformCommand("windows"))
	assert.Equal(t, []string{"xdg-open"}, platformCommand("freebsd"))
}

func TestOpenStartsConfiguredCommand(t *testing.T) {
	o, err := NewCommandOpener("firefox --new-tab")
	require.NoError(t, err)
	var name string
	var args []string
	o.lookPath = func(file string) (string, error) { return "/usr/bin/" + file, nil }
	o.start = func(n string, a ...string) error {
		name, args = n, a
		return nil
	}

	require.NoError(t, o.Open("https://example.com"))
	assert.Equal(t, "/usr/bin/firefox", name)
	assert.Equal(t, []string{"--new-tab", "https://example.com"}, args)
}

func TestOpenWithoutHandler(t *testing.T) {
	o := NewPlatformOpener()
	o.lookPath = func(string) (string, error) { return "", errors.New("executable file not found in $PATH") }
	o.start = func(string, ...string) error {
		t.Fatal("must not start anything")
		return nil
	}

	err := o.Open("https://example.com")
	assert.ErrorIs(t, err, ErrNoHandler)

	assert.ErrorIs(t, o.Open(""), ErrNoHandler)
}

func TestOpenStartFailure(t *testing.T) {
	o, err := NewCommandOpener("xdg-open")
	require.NoError(t, err)
	o.lookPath = func(file string) (string, error) { return file, nil }
	o.start = func(string, ...string) error { return errors.New("exec format error") }

	err = o.Open("https://example.com")
	assert.ErrorIs(t, err, ErrNoHandler)
	assert.Contains(t, err.Error(), "exec format error")
}

func TestCommandOpenerQuoting(t *testing.T) {
	o, err := NewCommandOpener(`"/Applications/My Browser.app/Contents/MacOS/browser" --profile 'work stuff'`)
	require.NoError(t, err)
	var name string
	var args []string
	o.lookPath = func(file string) (string, error) { return file, nil }
	o.start = func(n string, a ...string) error {
		name, args = n, a
		return nil
	}

	require.NoError(t, o.Open("https://example.com"))
	assert.Equal(t, "/Applications/My Browser.app/Contents/MacOS/browser", name)
	assert.Equal(t, []string{"--profile", "work stuff", "https://example.com"}, args)
}

func TestCommandOpenerDefaultsAndErrors(t *testing.T) {
	o, err := NewCommandOpener("  ")
	require.NoError(t, err)
	assert.Equal(t, NewPlatformOpener().command, o.command)

	_, err = NewCommandOpener(`browser "unterminated`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid external_opener")
}
