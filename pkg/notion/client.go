package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	"github.com/johnquangdev/meeting-notes/pkg/config"
)

// Client is a minimal Notion API client covering page reads/updates,
// database queries and block appends.
type Client struct {
	token   string
	baseURL string
	version string
	client  *http.Client
}

// NewClient creates a Notion client using values from the provided config.
// Pass a nil config to fall back to environment variables.
func NewClient(cfg *config.NotionConfig) *Client {
	var token string
	if cfg != nil {
		token = cfg.Token
	}
	if token == "" {
		token = os.Getenv("NOTION_TOKEN")
	}

	var base string
	if cfg != nil && cfg.BaseURL != "" {
		base = cfg.BaseURL
	} else {
		base = os.Getenv("NOTION_API_URL")
		if base == "" {
			base = "https://api.notion.com/v1"
		}
	}

	version := "2022-06-28"
	if cfg != nil && cfg.Version != "" {
		version = cfg.Version
	}

	return &Client{
		token:   token,
		baseURL: base,
		version: version,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// do issues a single API call, retrying transient failures (429 and 5xx)
// with exponential backoff. Client errors are permanent.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		payload = b
	}

	call := func() error {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Authorization", "Bearer "+c.token)
		req.Header.Set("Notion-Version", c.version)
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return fmt.Errorf("notion returned status %d", resp.StatusCode)
		}
		if resp.StatusCode >= 400 {
			detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
			return backoff.Permanent(fmt.Errorf("notion returned status %d: %s", resp.StatusCode, string(detail)))
		}

		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return backoff.Permanent(fmt.Errorf("failed to decode notion response: %w", err))
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 2 * time.Second
	bo.MaxInterval = 10 * time.Second
	bo.MaxElapsedTime = 30 * time.Second

	return backoff.Retry(call, backoff.WithContext(bo, ctx))
}

// GetPage fetches a page with its property values.
func (c *Client) GetPage(ctx context.Context, pageID string) (*Page, error) {
	var page Page
	if err := c.do(ctx, http.MethodGet, "/pages/"+pageID, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetDatabase fetches a database schema.
func (c *Client) GetDatabase(ctx context.Context, databaseID string) (*Database, error) {
	var db Database
	if err := c.do(ctx, http.MethodGet, "/databases/"+databaseID, nil, &db); err != nil {
		return nil, err
	}
	return &db, nil
}

type queryRequest struct {
	StartCursor string `json:"start_cursor,omitempty"`
}

// QueryResponse is one page of database query results.
type QueryResponse struct {
	Results    []Page `json:"results"`
	HasMore    bool   `json:"has_more"`
	NextCursor string `json:"next_cursor"`
}

// QueryDatabase fetches a single page of database records.
func (c *Client) QueryDatabase(ctx context.Context, databaseID, cursor string) (*QueryResponse, error) {
	var qr QueryResponse
	req := queryRequest{StartCursor: cursor}
	if err := c.do(ctx, http.MethodPost, "/databases/"+databaseID+"/query", req, &qr); err != nil {
		return nil, err
	}
	return &qr, nil
}

// QueryDatabaseAll fetches every record of a database, following pagination.
func (c *Client) QueryDatabaseAll(ctx context.Context, databaseID string) ([]Page, error) {
	var all []Page
	cursor := ""
	for {
		qr, err := c.QueryDatabase(ctx, databaseID, cursor)
		if err != nil {
			return nil, err
		}
		all = append(all, qr.Results...)
		if !qr.HasMore {
			return all, nil
		}
		cursor = qr.NextCursor
	}
}

type updatePageRequest struct {
	Properties map[string]Property `json:"properties"`
}

// UpdatePageRichText replaces the named rich_text property of a page in a
// single call.
func (c *Client) UpdatePageRichText(ctx context.Context, pageID, property string, rt []RichText) error {
	req := updatePageRequest{
		Properties: map[string]Property{
			property: {RichText: rt},
		},
	}
	return c.do(ctx, http.MethodPatch, "/pages/"+pageID, req, nil)
}

// appendBlocksChunk is Notion's per-call block limit.
const appendBlocksChunk = 100

type appendBlocksRequest struct {
	Children []Block `json:"children"`
}

// AppendBlocks appends content blocks to a page, splitting into chunks of
// 100 per API call.
func (c *Client) AppendBlocks(ctx context.Context, pageID string, blocks []Block) error {
	for start := 0; start < len(blocks); start += appendBlocksChunk {
		end := start + appendBlocksChunk
		if end > len(blocks) {
			end = len(blocks)
		}
		req := appendBlocksRequest{Children: blocks[start:end]}
		if err := c.do(ctx, http.MethodPatch, "/blocks/"+pageID+"/children", req, nil); err != nil {
			return err
		}
	}
	return nil
}
