// Package github fetches issues from the GitHub GraphQL API so they can
// be imported onto a board as cards.
package github

import (
	"context"
	"fmt"

	"github.com/machinebox/graphql"
)

// Client is a GitHub GraphQL API client.
type Client struct {
	gql   *graphql.Client
	token string
}

// New creates a client, obtaining an authentication token via Token.
func New() (*Client, error) {
	token, err := Token()
	if err != nil {
		return nil, fmt.Errorf("failed to obtain GitHub token: %w", err)
	}
	return &Client{
		gql:   graphql.NewClient("https://api.github.com/graphql"),
		token: token,
	}, nil
}

// makeRequest executes a GraphQL request with the authorization header set.
func (c *Client) makeRequest(ctx context.Context, req *graphql.Request, resp interface{}) error {
	req.Header.Set("Authorization", "Bearer "+c.token)
	return c.gql.Run(ctx, req, resp)
}

// Issue is one open issue of a repository, reduced to the fields a card
// import needs.
type Issue struct {
	Number int
	Title  string
	URL    string
}

// OpenIssues returns all open issues of owner/name, paging through the
// API until exhausted. Issues come back in ascending creation order so
// imported cards read oldest first.
func (c *Client) OpenIssues(ctx context.Context, owner, name string) ([]Issue, error) {
	var issues []Issue
	cursor := ""

	for {
		req := graphql.NewRequest(`
			query($owner: String!, $name: String!, $cursor: String) {
				repository(owner: $owner, name: $name) {
					issues(first: 100, after: $cursor, states: OPEN, orderBy: {field: CREATED_AT, direction: ASC}) {
						nodes {
							number
							title
							url
						}
						pageInfo {
							hasNextPage
							endCursor
						}
					}
				}
			}
		`)
		req.Var("owner", owner)
		req.Var("name", name)
		if cursor != "" {
			req.Var("cursor", cursor)
		}

		var resp struct {
			Repository *struct {
				Issues struct {
					Nodes []struct {
						Number int    `json:"number"`
						Title  string `json:"title"`
						URL    string `json:"url"`
					} `json:"nodes"`
					PageInfo struct {
						HasNextPage bool   `json:"hasNextPage"`
						EndCursor   string `json:"endCursor"`
					} `json:"pageInfo"`
				} `json:"issues"`
			} `json:"repository"`
		}

		if err := c.makeRequest(ctx, req, &resp); err != nil {
			return nil, fmt.Errorf("failed to fetch issues: %w", err)
		}
		if resp.Repository == nil {
			return nil, fmt.Errorf("repository '%s/%s' not found", owner, name)
		}

		for _, n := range resp.Repository.Issues.Nodes {
			issues = append(issues, Issue{Number: n.Number, Title: n.Title, URL: n.URL})
		}

		if !resp.Repository.Issues.PageInfo.HasNextPage {
			return issues, nil
		}
		cursor = resp.Repository.Issues.PageInfo.EndCursor
	}
}
