package git

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/mprpic/commit-editor/internal/log"
	"github.com/mprpic/commit-editor/internal/textbuf"
)

const trailerCacheKey = "signoff-trailer"

// SignOffProvider builds the Signed-off-by trailer from the git identity.
// Lookups shell out to git, so successful results are cached.
type SignOffProvider struct {
	executor Executor
	cache    *cache.Cache
}

// NewSignOffProvider creates a provider backed by the given executor.
func NewSignOffProvider(executor Executor) *SignOffProvider {
	return &SignOffProvider{
		executor: executor,
		cache:    cache.New(5*time.Minute, 10*time.Minute),
	}
}

// Trailer returns "Signed-off-by: Name <email>", or "" when the git identity
// is not configured or cannot be read. Only complete identities are cached,
// so configuring git mid-session is picked up on the next call.
func (p *SignOffProvider) Trailer() string {
	if v, ok := p.cache.Get(trailerCacheKey); ok {
		return v.(string)
	}

	name, err := p.executor.UserName()
	if err != nil || name == "" {
		log.Warn(log.CatGit, "user.name unavailable", "error", err)
		return ""
	}
	email, err := p.executor.UserEmail()
	if err != nil || email == "" {
		log.Warn(log.CatGit, "user.email unavailable", "error", err)
		return ""
	}

	trailer := fmt.Sprintf("%s %s <%s>", textbuf.TrailerPrefix, name, email)
	p.cache.SetDefault(trailerCacheKey, trailer)
	log.Debug(log.CatGit, "sign-off identity resolved", "name", name)
	return trailer
}
