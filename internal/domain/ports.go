package domain

import "context"

// DocumentLoader finds the first existing candidate under root and parses it.
type DocumentLoader interface {
	Resolve(root string, candidates []string) (*ResolvedDocument, error)
}

// ConfigLoader loads project configuration.
type ConfigLoader interface {
	Load(projectPath string) (ProjectConfig, error)
}

// GitInfo answers questions about the git repository at a path.
type GitInfo interface {
	IsGitRepo(projectPath string) bool
	HooksPath(projectPath string) (string, error)
}

// CommandRunner runs an external command in dir and returns its combined
// output. A missing executable yields an error wrapping ErrCommandNotFound;
// a non-zero exit yields a *CommandError.
type CommandRunner interface {
	Run(ctx context.Context, dir, name string, args ...string) ([]byte, error)
}
