package gist

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"

	"github.com/saint0x/typetour/pkg/log"
)

// Transcript is the content published as a gist
type Transcript struct {
	Description string
	Files       map[string]string
	Public      bool
}

// Client publishes tour transcripts as GitHub gists
type Client struct {
	client *github.Client
	logger *log.Logger
}

// New creates a client authenticated with token
func New(logger *log.Logger, token string) (*Client, error) {
	if token == "" {
		return nil, fmt.Errorf("github token is required")
	}

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(context.Background(), ts)

	return NewWithClient(logger, github.NewClient(tc)), nil
}

// NewAnonymous creates an unauthenticated client, enough to read public gists
func NewAnonymous(logger *log.Logger) *Client {
	return NewWithClient(logger, github.NewClient(nil))
}

// NewWithClient wraps an existing go-github client
func NewWithClient(logger *log.Logger, client *github.Client) *Client {
	if logger == nil {
		logger = log.NewWithWriter(io.Discard, false, false)
	}
	return &Client{
		client: client,
		logger: logger,
	}
}

// Publish creates a gist and returns its HTML URL
func (c *Client) Publish(ctx context.Context, t Transcript) (string, error) {
	if len(t.Files) == 0 {
		return "", fmt.Errorf("transcript has no files")
	}

	files := make(map[github.GistFilename]github.GistFile, len(t.Files))
	for name, content := range t.Files {
		if strings.TrimSpace(content) == "" {
			return "", fmt.Errorf("file %s is empty", name)
		}
		files[github.GistFilename(name)] = github.GistFile{
			Filename: github.String(name),
			Content:  github.String(content),
		}
	}

	c.logger.Debug("Creating gist with %d file(s)", len(files))
	g, _, err := c.client.Gists.Create(ctx, &github.Gist{
		Description: github.String(t.Description),
		Public:      github.Bool(t.Public),
		Files:       files,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create gist: %w", err)
	}

	c.logger.Debug("Created gist %s", g.GetID())
	return g.GetHTMLURL(), nil
}

// Fetch returns the content of one file of a gist
func (c *Client) Fetch(ctx context.Context, id, filename string) (string, error) {
	g, _, err := c.client.Gists.Get(ctx, id)
	if err != nil {
		return "", fmt.Errorf("failed to get gist: %w", err)
	}

	f, ok := g.Files[github.GistFilename(filename)]
	if !ok {
		return "", fmt.Errorf("gist %s has no file %s", id, filename)
	}
	return f.GetContent(), nil
}

// ParseGistURL extracts the gist ID from a gist URL
func ParseGistURL(gistURL string) (string, error) {
	u, err := url.Parse(gistURL)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}
	if u.Host != "gist.github.com" {
		return "", fmt.Errorf("not a gist URL: %s", gistURL)
	}

	// gist.github.com/<id> or gist.github.com/<owner>/<id>
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) == 0 || len(parts) > 2 || parts[len(parts)-1] == "" {
		return "", fmt.Errorf("invalid gist URL format")
	}

	return parts[len(parts)-1], nil
}
