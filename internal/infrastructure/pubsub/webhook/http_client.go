package webhookpubsub

import (
	"io"
	"net/http"
	"strings"
	"time"
)

const userAgent = "ammsim-webhook"

type client struct {
	*http.Client
}

func newHTTPClient(requestTimeout time.Duration) *client {
	return &client{&http.Client{Timeout: requestTimeout}}
}

// post sends the body to url and returns the response status and body.
func (c *client) post(url, bodyString string, header map[string]string) (int, string, error) {
	req, err := http.NewRequest(http.MethodPost, url, strings.NewReader(bodyString))
	if err != nil {
		return 0, "", err
	}

	req.Header.Set("User-Agent", userAgent)
	for key, value := range header {
		req.Header.Set(key, value)
	}

	rs, err := c.Do(req)
	if err != nil {
		return 0, "", err
	}
	defer rs.Body.Close()

	bodyBytes, err := io.ReadAll(rs.Body)
	if err != nil {
		return -1, "", err
	}
	return rs.StatusCode, string(bodyBytes), nil
}
