package infra

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v66/github"
	"golang.org/x/oauth2"
)

// ArchivoRemoto is the contract for the remote archival copy of the ledgers.
// Implementations publish a file at a repo path with a commit message.
type ArchivoRemoto interface {
	Publicar(ctx context.Context, path string, content []byte, message string) error
}

// GitHubArchive pushes snapshots and exports to a GitHub repository through
// the contents API. Updates are content-addressed: the current blob SHA is
// fetched first and sent with the new content, so a concurrent update makes
// the push fail instead of silently overwriting. There is no retry — a failed
// push surfaces in the sync result and the next mutation tries again.
type GitHubArchive struct {
	client *github.Client
	owner  string
	repo   string
	branch string
}

// NewGitHubArchive builds a client for repoFull ("owner/name"). The token is
// a bearer credential supplied out-of-band (env/secret configuration).
func NewGitHubArchive(token, repoFull, branch string) (*GitHubArchive, error) {
	owner, name, ok := strings.Cut(repoFull, "/")
	if !ok || owner == "" || name == "" {
		return nil, fmt.Errorf("GITHUB_REPO debe tener el formato owner/nombre, recibido %q", repoFull)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(context.Background(), ts)
	return &GitHubArchive{
		client: github.NewClient(tc),
		owner:  owner,
		repo:   name,
		branch: branch,
	}, nil
}

func (g *GitHubArchive) Publicar(ctx context.Context, path string, content []byte, message string) error {
	opts := &github.RepositoryContentFileOptions{
		Message: github.String(message),
		Content: content,
		Branch:  github.String(g.branch),
	}

	file, _, resp, err := g.client.Repositories.GetContents(ctx, g.owner, g.repo, path,
		&github.RepositoryContentGetOptions{Ref: g.branch})
	switch {
	case err == nil && file != nil:
		// Existing file — update keyed to its current revision marker.
		opts.SHA = github.String(file.GetSHA())
		_, _, err = g.client.Repositories.UpdateFile(ctx, g.owner, g.repo, path, opts)
	case resp != nil && resp.StatusCode == http.StatusNotFound:
		_, _, err = g.client.Repositories.CreateFile(ctx, g.owner, g.repo, path, opts)
	case err != nil:
		return fmt.Errorf("consultar %s: %w", path, err)
	default:
		return fmt.Errorf("consultar %s: la ruta no es un archivo", path)
	}
	if err != nil {
		return fmt.Errorf("publicar %s: %w", path, err)
	}
	return nil
}
