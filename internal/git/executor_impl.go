package git

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/mprpic/commit-editor/internal/log"
)

// Compile-time check that RealExecutor implements Executor.
var _ Executor = (*RealExecutor)(nil)

// RealExecutor implements Executor by executing actual git commands.
type RealExecutor struct {
	workDir string
}

// NewRealExecutor creates a new RealExecutor. workDir may be empty to use
// the process working directory.
func NewRealExecutor(workDir string) *RealExecutor {
	return &RealExecutor{workDir: workDir}
}

// UserName returns `git config --get user.name`.
func (e *RealExecutor) UserName() (string, error) {
	return e.configValue("user.name")
}

// UserEmail returns `git config --get user.email`.
func (e *RealExecutor) UserEmail() (string, error) {
	return e.configValue("user.email")
}

func (e *RealExecutor) configValue(key string) (string, error) {
	start := time.Now()
	defer func() {
		log.Debug(log.CatGit, "config lookup completed", "key", key, "duration", time.Since(start))
	}()

	cmd := exec.Command("git", "config", "--get", key)
	if e.workDir != "" {
		cmd.Dir = e.workDir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		// git config exits 1 with no output when the key is unset.
		if stderr.Len() == 0 {
			log.Debug(log.CatGit, "config key unset", "key", key)
			return "", nil
		}
		err = fmt.Errorf("git config --get %s failed: %s", key, stderr.String())
		log.Error(log.CatGit, "config lookup failed", "key", key, "error", err)
		return "", err
	}

	return strings.TrimSpace(stdout.String()), nil
}
