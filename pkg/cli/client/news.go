package client

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"

	"social-news-go/pkg/models"
)

// ListNews retrieves the current news feed
func (c *Client) ListNews(ctx context.Context) ([]models.Link, error) {
	var links []models.Link
	if err := c.doGetRequest(ctx, NewsPath, &links); err != nil {
		return nil, err
	}
	// A JSON null leaves links nil; an empty array does not.
	if links == nil {
		return nil, newDecodeError(fmt.Errorf("news feed is not a list"))
	}
	return links, nil
}

// SubmitLink posts a new link as form fields and returns the server's copy
func (c *Client) SubmitLink(ctx context.Context, link models.Link) (*models.Link, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fields := []struct{ name, value string }{
		{"author", link.Author},
		{"title", link.Title},
		{"url", link.URL},
	}
	for _, f := range fields {
		if err := mw.WriteField(f.name, f.value); err != nil {
			return nil, fmt.Errorf("failed to encode form: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode form: %w", err)
	}

	req, err := c.buildRequest(ctx, http.MethodPost, LinkPath, &body, mw.FormDataContentType())
	if err != nil {
		return nil, err
	}

	var created models.Link
	if err := c.doRequest(req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
