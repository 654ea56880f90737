package git

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeExecutor struct {
	name      string
	email     string
	err       error
	nameCalls int
}

func (f *fakeExecutor) UserName() (string, error) {
	f.nameCalls++
	return f.name, f.err
}

func (f *fakeExecutor) UserEmail() (string, error) {
	return f.email, f.err
}

func TestTrailer_FormatsIdentity(t *testing.T) {
	p := NewSignOffProvider(&fakeExecutor{name: "Jo Dev", email: "jo@example.com"})

	require.Equal(t, "Signed-off-by: Jo Dev <jo@example.com>", p.Trailer())
}

func TestTrailer_EmptyWithoutName(t *testing.T) {
	p := NewSignOffProvider(&fakeExecutor{email: "jo@example.com"})
	require.Equal(t, "", p.Trailer())
}

func TestTrailer_EmptyWithoutEmail(t *testing.T) {
	p := NewSignOffProvider(&fakeExecutor{name: "Jo Dev"})
	require.Equal(t, "", p.Trailer())
}

func TestTrailer_EmptyOnExecutorError(t *testing.T) {
	p := NewSignOffProvider(&fakeExecutor{err: errors.New("git not installed")})
	require.Equal(t, "", p.Trailer())
}

func TestTrailer_CachesSuccessfulLookup(t *testing.T) {
	exec := &fakeExecutor{name: "Jo Dev", email: "jo@example.com"}
	p := NewSignOffProvider(exec)

	first := p.Trailer()
	second := p.Trailer()

	require.Equal(t, first, second)
	require.Equal(t, 1, exec.nameCalls)
}

func TestTrailer_DoesNotCacheFailure(t *testing.T) {
	exec := &fakeExecutor{}
	p := NewSignOffProvider(exec)

	require.Equal(t, "", p.Trailer())

	// Identity configured after the first lookup is picked up.
	exec.name = "Jo Dev"
	exec.email = "jo@example.com"
	require.Equal(t, "Signed-off-by: Jo Dev <jo@example.com>", p.Trailer())
	require.Equal(t, 2, exec.nameCalls)
}
