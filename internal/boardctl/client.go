// Package boardctl implements an interactive terminal client for the
// board server. It talks to the HTTP API and keeps the access token
// for the current session in memory.
package boardctl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/goboard/internal/common"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type LoginInfo struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        struct {
		ID       int64  `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
	} `json:"user"`
}

type Question struct {
	ID         int64     `json:"id"`
	Subject    string    `json:"subject"`
	Content    string    `json:"content"`
	AuthorID   int64     `json:"author_id"`
	CreateDate time.Time `json:"create_date"`
}

type Answer struct {
	ID         int64     `json:"id"`
	QuestionID int64     `json:"question_id"`
	Content    string    `json:"content"`
	AuthorID   int64     `json:"author_id"`
	CreateDate time.Time `json:"create_date"`
}

type QuestionDetail struct {
	Question
	Answers []Answer `json:"answers"`
}

type QuestionPage struct {
	Total int64      `json:"total"`
	Items []Question `json:"items"`
}

func (c *Client) do(ctx context.Context, method, path, token string, in, out any) error {

	var body io.Reader
	if in != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return err
		}
		body = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return common.ErrorUnauthorized
	case resp.StatusCode == http.StatusConflict:
		return common.ErrorConflict
	case resp.StatusCode == http.StatusNotFound:
		return common.ErrorNotFound
	case resp.StatusCode >= 400:
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (c *Client) Register(ctx context.Context, username, email string, password []byte) error {
	in := map[string]string{
		"username":              username,
		"email":                 email,
		"password":              string(password),
		"password_confirmation": string(password),
	}
	return c.do(ctx, http.MethodPost, "/api/user/create", "", in, nil)
}

func (c *Client) Login(ctx context.Context, username string, password []byte) (*LoginInfo, error) {
	in := map[string]string{"username": username, "password": string(password)}
	out := &LoginInfo{}
	if err := c.do(ctx, http.MethodPost, "/api/user/login", "", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListQuestions(ctx context.Context, page, size int) (*QuestionPage, error) {
	out := &QuestionPage{}
	path := fmt.Sprintf("/api/question/list?page=%d&size=%d", page, size)
	if err := c.do(ctx, http.MethodGet, path, "", nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetQuestion(ctx context.Context, id int64) (*QuestionDetail, error) {
	out := &QuestionDetail{}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/question/detail/%d", id), "", nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AskQuestion(ctx context.Context, token, subject, content string) (*Question, error) {
	in := map[string]string{"subject": subject, "content": content}
	out := &Question{}
	if err := c.do(ctx, http.MethodPost, "/api/question/create", token, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AnswerQuestion(ctx context.Context, token string, questionID int64, content string) (*Answer, error) {
	in := map[string]any{"question_id": questionID, "content": content}
	out := &Answer{}
	if err := c.do(ctx, http.MethodPost, "/api/answer/create", token, in, out); err != nil {
		return nil, err
	}
	return out, nil
}
