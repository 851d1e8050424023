package git

// Client defines the interface for git operations the release gate needs.
// This enables test doubles for code that depends on git.
type Client interface {
	// Repository inspection
	IsInsideGitRepo(path string) bool
	RepositoryRoot(path string) (string, error)
	CurrentBranch(path string) (string, error)
	IsDetachedHead(path string) (bool, error)

	// Status checks
	ModifiedFiles(path string) ([]string, error)
	IsClean(path string) (bool, error)

	// Tag operations
	TagExists(path, tag string) (bool, error)
	ListTags(path string) ([]string, error)
	CreateTag(path, tag, message string, annotate bool) error
	HeadCommit(path string) (hash, subject string, err error)
}

// DefaultClient is the production implementation that shells out to git
// through a Commander.
type DefaultClient struct {
	commander Commander
}

// NewClient returns a git client backed by the default commander.
func NewClient() Client {
	return &DefaultClient{commander: DefaultCommander}
}

// NewClientWithCommander returns a git client backed by the given commander.
func NewClientWithCommander(c Commander) Client {
	return &DefaultClient{commander: c}
}

func (c *DefaultClient) IsInsideGitRepo(path string) bool {
	return IsInsideGitRepo(c.commander, path)
}

func (c *DefaultClient) RepositoryRoot(path string) (string, error) {
	return RepositoryRoot(c.commander, path)
}

func (c *DefaultClient) CurrentBranch(path string) (string, error) {
	return CurrentBranch(c.commander, path)
}

func (c *DefaultClient) IsDetachedHead(path string) (bool, error) {
	return IsDetachedHead(c.commander, path)
}

func (c *DefaultClient) ModifiedFiles(path string) ([]string, error) {
	return ModifiedFiles(c.commander, path)
}

func (c *DefaultClient) IsClean(path string) (bool, error) {
	return IsClean(c.commander, path)
}

func (c *DefaultClient) TagExists(path, tag string) (bool, error) {
	return TagExists(c.commander, path, tag)
}

func (c *DefaultClient) ListTags(path string) ([]string, error) {
	return ListTags(c.commander, path)
}

func (c *DefaultClient) CreateTag(path, tag, message string, annotate bool) error {
	return CreateTag(c.commander, path, tag, message, annotate)
}

func (c *DefaultClient) HeadCommit(path string) (hash, subject string, err error) {
	return HeadCommit(c.commander, path)
}
