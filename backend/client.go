// Package backend is the HTTP client for the PHP API. Every endpoint is a
// `<verb>_<noun>.php` resource returning the `{success, ...}` JSON envelope;
// the contract is fixed and reproduced byte-for-byte in shape, not
// redesigned. Errors map onto the core taxonomy: NetworkError (request never
// produced a response), ServerError (success=false, message surfaced
// verbatim), ErrInvalidResponse (non-2xx or non-JSON body).
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/tnhappykids/appcore/core"
)

type Client struct {
	base   string
	http   *http.Client
	token  string
	logger core.Logger
}

func NewClient(logger core.Logger) *Client {
	return NewClientWith(
		core.Conf.GetString("baseURL"),
		&http.Client{Timeout: core.Conf.GetDuration("requestTimeout")},
		logger,
	)
}

func NewClientWith(base string, httpClient *http.Client, logger core.Logger) *Client {
	return &Client{
		base:   strings.TrimRight(base, "/"),
		http:   httpClient,
		logger: logger,
	}
}

// SetToken attaches the session token to subsequent requests; an empty
// token detaches it (logout).
func (c *Client) SetToken(token string) { c.token = token }

func (c *Client) url(path string, query url.Values) string {
	u := c.base + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// do executes the request and decodes the envelope. The payload is returned
// as raw fields so each endpoint can pick out its entity key; a missing key
// decodes to the zero value (empty list/object), matching the contract.
func (c *Client) do(req *http.Request) (map[string]json.RawMessage, error) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &core.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &core.NetworkError{Err: err}
	}
	// guard the status before attempting any parse
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, errors.Wrapf(core.ErrInvalidResponse, "%s: status %d", req.URL.Path, resp.StatusCode)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, errors.Wrapf(core.ErrInvalidResponse, "%s: decoding body", req.URL.Path)
	}

	var success bool
	if rawOK, ok := raw["success"]; ok {
		if err := json.Unmarshal(rawOK, &success); err != nil {
			return nil, errors.Wrapf(core.ErrInvalidResponse, "%s: decoding success flag", req.URL.Path)
		}
	}
	if !success {
		var msg string
		if rawMsg, ok := raw["message"]; ok {
			_ = json.Unmarshal(rawMsg, &msg)
		}
		return nil, &core.ServerError{Message: msg}
	}
	return raw, nil
}

// unwrap decodes the named payload field into out. Absent keys leave out at
// its zero value: endpoints legitimately omit the entity key on empty
// results.
func unwrap(raw map[string]json.RawMessage, key string, out interface{}) error {
	field, ok := raw[key]
	if !ok || out == nil {
		return nil
	}
	if err := json.Unmarshal(field, out); err != nil {
		return errors.Wrapf(core.ErrInvalidResponse, "decoding %q", key)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, key string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(path, query), nil)
	if err != nil {
		return errors.Wrap(err, "building request")
	}
	raw, err := c.do(req)
	if err != nil {
		return err
	}
	return unwrap(raw, key, out)
}

func (c *Client) postJSON(ctx context.Context, path string, payload interface{}) (map[string]json.RawMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "encoding payload")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(path, nil), bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "building request")
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

func (c *Client) postForm(ctx context.Context, path string, form url.Values) (map[string]json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(path, nil), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "building request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req)
}

// postMultipart uploads a binary field plus scalar fields. filePath may be
// empty when the upload is optional.
func (c *Client) postMultipart(ctx context.Context, path string, fields map[string]string, fileField, filePath string) (map[string]json.RawMessage, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, errors.Wrap(err, "encoding form field")
		}
	}
	if filePath != "" {
		f, err := os.Open(filePath)
		if err != nil {
			return nil, errors.Wrap(err, "opening upload")
		}
		defer f.Close()
		part, err := w.CreateFormFile(fileField, filepath.Base(filePath))
		if err != nil {
			return nil, errors.Wrap(err, "encoding upload")
		}
		if _, err := io.Copy(part, f); err != nil {
			return nil, errors.Wrap(err, "encoding upload")
		}
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrap(err, "encoding form")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(path, nil), &buf)
	if err != nil {
		return nil, errors.Wrap(err, "building request")
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.do(req)
}
