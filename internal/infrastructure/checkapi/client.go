package checkapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"pwstrength/pkg/httpx"
	"pwstrength/pkg/logx"
	"pwstrength/pkg/rest"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const checkEndpoint = "/api/check"

// ResponseError ответ сервера с кодом не 2xx.
type ResponseError struct {
	StatusCode int
	Body       rest.Error
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("check api: status %d, code %q, supportId %q", e.StatusCode, e.Body.Code, e.Body.SupportID)
}

// Client вызывает авторитетную проверку пароля. Пароль уходит формой,
// в логах он маскируется.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration, opts ...httpx.Option) *Client {
	opts = append([]httpx.Option{httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker())}, opts...)

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Transport: httpx.NewLoggingRoundTripper(http.DefaultTransport, opts...),
			Timeout:   timeout,
		},
	}
}

func (c *Client) Check(ctx context.Context, password string) (rest.CheckResponse, error) {
	form := url.Values{"password": {password}}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+checkEndpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return rest.CheckResponse{}, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return rest.CheckResponse{}, fmt.Errorf("httpClient.Do: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respErr := &ResponseError{StatusCode: resp.StatusCode}
		_ = json.NewDecoder(resp.Body).Decode(&respErr.Body)

		return rest.CheckResponse{}, respErr
	}

	var result rest.CheckResponse

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return rest.CheckResponse{}, fmt.Errorf("json.Decode: %w", err)
	}

	return result, nil
}
