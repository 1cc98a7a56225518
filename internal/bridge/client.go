package bridge

import (
	"fmt"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"
	"github.com/valyala/fasthttp"
)

const defaultTimeout = 10 * time.Second

// ReportRequest is the payload posted to the summary service.
type ReportRequest struct {
	GeneratedAt string         `json:"generated_at"`
	Entries     []SummaryEntry `json:"entries"`
}

// Client forwards summary entries to the external summary service. A failed
// forward never touches the computed model output; the caller reports it as a
// transport failure.
type Client struct {
	baseURL string
	token   string
	timeout time.Duration
	http    *fasthttp.Client
	breaker *gobreaker.CircuitBreaker
}

func NewClient(baseURL, internalToken string) *Client {
	settings := gobreaker.Settings{Name: "summary-bridge"}
	settings.Interval = 60 * time.Second
	settings.Timeout = 60 * time.Second
	settings.ReadyToTrip = func(counts gobreaker.Counts) bool {
		return counts.ConsecutiveFailures >= 3
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   internalToken,
		timeout: defaultTimeout,
		http:    &fasthttp.Client{},
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

// Forward posts the entries to the summary service and returns its decoded
// response. calculationID correlates the forward with the request logs.
func (c *Client) Forward(calculationID string, entries []SummaryEntry) (map[string]any, error) {
	payload := ReportRequest{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Entries:     entries,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode summary report: %w", err)
	}

	result, err := c.breaker.Execute(func() (any, error) {
		return c.post(calculationID, body)
	})
	if err != nil {
		log.Warn().Err(err).Str("calculation_id", calculationID).Msg("summary forward failed")
		return nil, err
	}
	return result.(map[string]any), nil
}

func (c *Client) post(calculationID string, body []byte) (map[string]any, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseURL + "/summary/report")
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.Header.Set("X-Internal-Token", c.token)
	req.Header.Set("X-Calculation-ID", calculationID)
	req.SetBody(body)

	if err := c.http.DoTimeout(req, resp, c.timeout); err != nil {
		return nil, fmt.Errorf("post summary report: %w", err)
	}
	if resp.StatusCode() >= fasthttp.StatusBadRequest {
		return nil, fmt.Errorf("summary service responded %d", resp.StatusCode())
	}

	var decoded map[string]any
	if err := json.Unmarshal(resp.Body(), &decoded); err != nil {
		return nil, fmt.Errorf("decode summary response: %w", err)
	}
	return decoded, nil
}
