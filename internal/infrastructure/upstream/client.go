package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"auditqc/internal/appctx"
	"auditqc/internal/domain/entities"
	"auditqc/internal/platform/retry"
	"auditqc/internal/usecase/interfaces"
	"auditqc/pkg"
)

const defaultBaseURL = "http://localhost:9000"

// Client talks to the QC backend over HTTP.
//
// Each call carries the bearer credential found on ctx; a missing credential
// fails with pkg.ErrUnauthorized before any request is built. Transport
// failures are retried through the bounded retry policy; credential
// rejections never are.
type Client struct {
	baseURL string
	http    *http.Client
	retry   retry.Policy
	logger  *logrus.Logger
}

var _ interfaces.IQCGateway = (*Client)(nil)

// NewClient builds a client from environment variables:
//   - QC_API_BASE_URL (default http://localhost:9000)
//   - QC_API_TIMEOUT_SECONDS (default 30)
func NewClient(logger *logrus.Logger) *Client {
	baseURL := strings.TrimSpace(os.Getenv("QC_API_BASE_URL"))
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := 30 * time.Second
	if v := strings.TrimSpace(os.Getenv("QC_API_TIMEOUT_SECONDS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeout = time.Duration(n) * time.Second
		}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		retry:   retry.NewPolicy(logger),
		logger:  logger,
	}
}

// NewClientWithBaseURL is the test-friendly constructor.
func NewClientWithBaseURL(logger *logrus.Logger, baseURL string, p retry.Policy) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		retry:   p,
		logger:  logger,
	}
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, body any, out any) error {
	credential, ok := appctx.Credential(ctx)
	if !ok {
		return fmt.Errorf("%w: missing credential", pkg.ErrUnauthorized)
	}

	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		payload = b
	}

	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint = endpoint + "?" + params.Encode()
	}

	return c.retry.Do(ctx, method+" "+path, func(ctx context.Context) error {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+credential)
		req.Header.Set("Accept", "application/json")
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return fmt.Errorf("%w: %v", pkg.ErrBadGateway, err)
		}
		defer resp.Body.Close()

		raw, _ := io.ReadAll(resp.Body)
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return mapStatusError(resp.StatusCode, raw)
		}
		if out == nil || len(raw) == 0 {
			return nil
		}
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("%w: undecodable response body: %v", pkg.ErrUpstream, err)
		}
		return nil
	})
}

// wireErrorBody tolerates the two message spellings the backend has used.
type wireErrorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func mapStatusError(statusCode int, raw []byte) error {
	message := ""
	var body wireErrorBody
	if json.Valid(raw) && json.Unmarshal(raw, &body) == nil {
		message = firstNonEmpty(body.Message, body.Error)
	}
	if message == "" {
		// Non-JSON bodies become a generic message wrapping the raw text.
		message = fmt.Sprintf("unexpected upstream response: %s", strings.TrimSpace(string(raw)))
	}

	kind := pkg.ErrUpstream
	switch statusCode {
	case http.StatusUnauthorized:
		kind = pkg.ErrUnauthorized
	case http.StatusNotFound:
		kind = pkg.ErrNotFound
	case http.StatusConflict:
		kind = pkg.ErrConflict
	}
	return &pkg.UpstreamStatusError{StatusCode: statusCode, Message: message, Kind: kind}
}

/* Review job lifecycle */

func (c *Client) SendForReview(ctx context.Context, auditID string) (entities.SendForReviewResult, error) {
	var w wireReviewProgress
	path := "/v1/audits/" + url.PathEscape(auditID) + "/review"
	if err := c.do(ctx, http.MethodPost, path, nil, nil, &w); err != nil {
		return entities.SendForReviewResult{}, err
	}
	return w.toDomain(), nil
}

func (c *Client) GetReviewProgress(ctx context.Context, auditReviewID string) (entities.ReviewProgress, error) {
	var w wireReviewProgress
	path := "/v1/audit-reviews/" + url.PathEscape(auditReviewID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &w); err != nil {
		return entities.ReviewProgress{}, err
	}
	return w.toDomain(), nil
}

func (c *Client) CompleteReview(ctx context.Context, auditID string) (entities.CompleteReviewResult, error) {
	var w wireCompleteResult
	path := "/v1/audits/" + url.PathEscape(auditID) + "/review/complete"
	if err := c.do(ctx, http.MethodPost, path, nil, nil, &w); err != nil {
		return entities.CompleteReviewResult{}, err
	}
	return w.toDomain(), nil
}

func (c *Client) UpdateStatus(ctx context.Context, auditID string, requested entities.AuditStatus) (entities.StatusChange, error) {
	var w wireStatusChange
	path := "/v1/audits/" + url.PathEscape(auditID) + "/status"
	body := wireStatusUpdateRequest{Status: string(requested)}
	if err := c.do(ctx, http.MethodPatch, path, nil, body, &w); err != nil {
		return entities.StatusChange{}, err
	}
	return w.toDomain(), nil
}

/* Shared sub-resources */

func (c *Client) CreateComment(ctx context.Context, draft entities.CommentDraft) (entities.AuditReviewComment, error) {
	var w wireComment
	path := "/v1/audits/" + url.PathEscape(draft.AuditID) + "/steps/" + url.PathEscape(draft.StepID) + "/comments"
	body := wireCommentCreateRequest{Content: draft.Content}
	if err := c.do(ctx, http.MethodPost, path, nil, body, &w); err != nil {
		return entities.AuditReviewComment{}, err
	}
	return w.toDomain(), nil
}

func (c *Client) UpdateComment(ctx context.Context, patch entities.CommentPatch) (entities.AuditReviewComment, error) {
	var w wireComment
	path := "/v1/audits/" + url.PathEscape(patch.AuditID) + "/steps/" + url.PathEscape(patch.StepID) + "/comments/" + url.PathEscape(patch.CommentID)
	body := wireCommentUpdateRequest{Content: patch.Content, Version: patch.Version}
	if err := c.do(ctx, http.MethodPut, path, nil, body, &w); err != nil {
		return entities.AuditReviewComment{}, err
	}
	return w.toDomain(), nil
}

func (c *Client) UpdateFinding(ctx context.Context, patch entities.FindingPatch) (entities.Finding, error) {
	var w wireFinding
	path := "/v1/audits/" + url.PathEscape(patch.AuditID) + "/findings/" + url.PathEscape(patch.QuestionCode)
	if err := c.do(ctx, http.MethodPatch, path, nil, toWireFindingPatch(patch), &w); err != nil {
		return entities.Finding{}, err
	}
	return w.toDomain(), nil
}

/* Reads */

func (c *Client) GetAuditReview(ctx context.Context, auditID string) (entities.AuditReview, error) {
	var w wireAuditReview
	path := "/v1/audits/" + url.PathEscape(auditID) + "/review-detail"
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &w); err != nil {
		return entities.AuditReview{}, err
	}
	return w.toDomain(), nil
}

func filtersToParams(filters []entities.ListFilter) url.Values {
	if len(filters) == 0 {
		return nil
	}
	params := url.Values{}
	for _, f := range filters {
		params.Set(f.Field, f.Value)
	}
	return params
}

func (c *Client) ListAuditReviews(ctx context.Context, filters []entities.ListFilter) ([]entities.AuditReview, error) {
	var env listEnvelope[wireAuditReview]
	if err := c.do(ctx, http.MethodGet, "/v1/audit-reviews", filtersToParams(filters), nil, &env); err != nil {
		return nil, err
	}
	rows := env.rows()
	out := make([]entities.AuditReview, 0, len(rows))
	for _, w := range rows {
		out = append(out, w.toDomain())
	}
	return out, nil
}

func (c *Client) ListFacilities(ctx context.Context, filters []entities.ListFilter) ([]entities.Facility, error) {
	var env listEnvelope[wireFacility]
	if err := c.do(ctx, http.MethodGet, "/v1/facilities", filtersToParams(filters), nil, &env); err != nil {
		return nil, err
	}
	rows := env.rows()
	out := make([]entities.Facility, 0, len(rows))
	for _, w := range rows {
		out = append(out, w.toDomain())
	}
	return out, nil
}

func (c *Client) ListProjects(ctx context.Context, filters []entities.ListFilter) ([]entities.Project, error) {
	var env listEnvelope[wireProject]
	if err := c.do(ctx, http.MethodGet, "/v1/projects", filtersToParams(filters), nil, &env); err != nil {
		return nil, err
	}
	rows := env.rows()
	out := make([]entities.Project, 0, len(rows))
	for _, w := range rows {
		out = append(out, w.toDomain())
	}
	return out, nil
}

func (c *Client) ListUsers(ctx context.Context, filters []entities.ListFilter) ([]entities.User, error) {
	var env listEnvelope[wireUser]
	if err := c.do(ctx, http.MethodGet, "/v1/users", filtersToParams(filters), nil, &env); err != nil {
		return nil, err
	}
	rows := env.rows()
	out := make([]entities.User, 0, len(rows))
	for _, w := range rows {
		out = append(out, w.toDomain())
	}
	return out, nil
}
