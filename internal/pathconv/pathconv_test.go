package pathconv

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sverrirab/gitwrap/internal/matchcache"
	"github.com/sverrirab/gitwrap/internal/shellexec"
	"github.com/sverrirab/gitwrap/internal/testutil"
)

var discard = log.New(io.Discard)

func TestToLinux(t *testing.T) {
	wsl := &testutil.FakeWSL{
		Linux: map[string]string{
			`C:\repo`:        "/mnt/c/repo",
			`C:\My Docs\a.c`: "/mnt/c/My Docs/a.c",
		},
	}
	conv := NewConverter(wsl, discard)

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain", input: `C:\repo`, want: "/mnt/c/repo"},
		{name: "spaces", input: `C:\My Docs\a.c`, want: "/mnt/c/My Docs/a.c"},
		{name: "helper fails", input: `Z:\nowhere`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := conv.ToLinux(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.input, conv.ToLinuxOrKeep(tt.input))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToWindows(t *testing.T) {
	wsl := &testutil.FakeWSL{
		Windows: map[string]string{"/mnt/c/repo/src": `C:\repo\src`},
	}
	conv := NewConverter(wsl, discard)

	got, err := conv.ToWindows("/mnt/c/repo/src")
	require.NoError(t, err)
	assert.Equal(t, `C:\repo\src`, got)

	_, err = conv.ToWindows("/nope")
	assert.Error(t, err)
	assert.Equal(t, "fallback", conv.ToWindowsOrKeep("/nope", "fallback"))
}

func TestRoundTrip(t *testing.T) {
	wsl := &testutil.FakeWSL{
		Linux:   map[string]string{`C:\repo\file.txt`: "/mnt/c/repo/file.txt"},
		Windows: map[string]string{"/mnt/c/repo/file.txt": `C:\repo\file.txt`},
	}
	conv := NewConverter(wsl, discard)

	lnx, err := conv.ToLinux(`C:\repo\file.txt`)
	require.NoError(t, err)
	win, err := conv.ToWindows(lnx)
	require.NoError(t, err)
	assert.Equal(t, `C:\repo\file.txt`, win)
}

type scripted struct {
	res   shellexec.Result
	calls int
}

func (s *scripted) Run(...string) shellexec.Result {
	s.calls++
	return s.res
}

func TestConverterEmptyOutput(t *testing.T) {
	conv := NewConverter(&scripted{res: shellexec.Result{}}, discard)

	_, err := conv.ToWindows("/x")
	assert.True(t, errors.Is(err, errEmptyPath))
}

func TestConverterMissingShell(t *testing.T) {
	conv := NewConverter(&testutil.FakeWSL{Missing: true}, discard)

	_, err := conv.ToLinux(`C:\repo`)
	assert.True(t, errors.Is(err, shellexec.ErrShellNotFound))
}

func TestMatch(t *testing.T) {
	wsl := &testutil.FakeWSL{
		Entries: []string{"My Documents", "My Documents file", "src"},
	}
	m := NewMatcher(wsl, nil, discard)

	matches, ok := m.Match("My Doc")
	require.True(t, ok)
	assert.Equal(t, []string{"My Documents", "My Documents file"}, matches)

	matches, ok = m.Match("src")
	require.True(t, ok)
	assert.Equal(t, []string{"src"}, matches)

	matches, ok = m.Match("modified:")
	assert.False(t, ok)
	assert.Nil(t, matches)

	assert.Equal(t, 3, wsl.Spawns())
}

func TestMatchEmptyCandidateIssuesNoQuery(t *testing.T) {
	wsl := &testutil.FakeWSL{Entries: []string{"a"}}
	m := NewMatcher(wsl, nil, discard)

	_, ok := m.Match("")
	assert.False(t, ok)
	assert.Zero(t, wsl.Spawns())
}

func TestMatchListingFailure(t *testing.T) {
	wsl := &testutil.FakeWSL{
		Entries:    []string{"src"},
		ListStatus: map[string]int{"src": 1},
	}
	m := NewMatcher(wsl, nil, discard)

	_, ok := m.Match("src")
	assert.False(t, ok)
}

func TestMatchBlankListingIsNoMatch(t *testing.T) {
	run := &scripted{res: shellexec.Result{Lines: []string{"", "  "}}}
	m := NewMatcher(run, nil, discard)

	_, ok := m.Match("x")
	assert.False(t, ok)
}

func TestMatchCache(t *testing.T) {
	wsl := &testutil.FakeWSL{Entries: []string{"src"}}
	cache := matchcache.New()
	m := NewMatcher(wsl, cache, discard)

	for i := 0; i < 3; i++ {
		_, ok := m.Match("src")
		assert.True(t, ok)
		_, ok = m.Match("nope")
		assert.False(t, ok)
	}
	assert.Equal(t, 2, wsl.Spawns())
	assert.Equal(t, 2, cache.Len())
}

func TestMatchDashPrefixedName(t *testing.T) {
	wsl := &testutil.FakeWSL{Entries: []string{"-n", "notes"}}
	m := NewMatcher(wsl, nil, discard)

	matches, ok := m.Match("-n")
	require.True(t, ok)
	assert.Equal(t, []string{"-n"}, matches)
	assert.Equal(t, []string{`ls -QAd -- "-n"*`}, wsl.Calls)
}
