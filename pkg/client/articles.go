package client

import (
	"strconv"
)

// Article is a piece of editorial gardening content
type Article struct {
	ID       uint64 `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	ImageURL string `json:"image_url,omitempty"`
}

// ListArticles retrieves all articles, newest first
func (c *Client) ListArticles() ([]Article, error) {
	resp, err := c.doRequest("GET", "/api/articles", nil)
	if err != nil {
		return nil, err
	}

	var articles []Article
	if err := decodeJSON(resp, &articles); err != nil {
		return nil, err
	}

	return articles, nil
}

// GetArticle retrieves one article by id. A missing article is a
// not_found-kind error.
func (c *Client) GetArticle(id uint64) (*Article, error) {
	resp, err := c.doRequest("GET", "/api/articles/"+strconv.FormatUint(id, 10), nil)
	if err != nil {
		return nil, err
	}

	var article Article
	if err := decodeJSON(resp, &article); err != nil {
		return nil, err
	}

	return &article, nil
}
