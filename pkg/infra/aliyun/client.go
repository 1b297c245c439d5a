package aliyun

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	domain "github.com/NeuralTrust/ImageGuard/pkg/domain/moderation"
	"github.com/NeuralTrust/ImageGuard/pkg/infra/httpx"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fastjson"
)

const (
	DefaultRegion  = "cn-shanghai"
	DefaultService = "baselineCheck"
	DefaultTimeout = 10 * time.Second

	ImageModerationAction = "ImageModeration"
	APIVersion            = "2022-03-02"

	endpointPattern = "https://green-cip.%s.aliyuncs.com"
	timestampLayout = "2006-01-02T15:04:05Z"
	maxBodyInError  = 256
)

type Config struct {
	AccessKeyID     string
	AccessKeySecret string
	Region          string
	// Endpoint overrides the regional endpoint derived from Region.
	Endpoint string
	Service  string
	Timeout  time.Duration
}

func (c Config) EndpointURL() string {
	if c.Endpoint != "" {
		return strings.TrimSuffix(c.Endpoint, "/")
	}
	region := c.Region
	if region == "" {
		region = DefaultRegion
	}
	return fmt.Sprintf(endpointPattern, region)
}

type Option func(*Client)

func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

func WithNonce(nonce func() string) Option {
	return func(c *Client) {
		c.nonce = nonce
	}
}

func WithCircuitBreaker(breaker httpx.CircuitBreaker) Option {
	return func(c *Client) {
		c.breaker = breaker
	}
}

// Client calls the Green content security API. It keeps no per-call state
// and is safe for concurrent use.
type Client struct {
	cfg     Config
	client  httpx.Client
	breaker httpx.CircuitBreaker
	signer  *Signer
	logger  *logrus.Logger
	now     func() time.Time
	nonce   func() string
}

func NewClient(cfg Config, client httpx.Client, logger *logrus.Logger, opts ...Option) *Client {
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		client = httpx.NewFastHTTPClient(httpx.WithTimeout(timeout))
	}
	if cfg.Service == "" {
		cfg.Service = DefaultService
	}
	c := &Client{
		cfg:    cfg,
		client: client,
		signer: NewSigner(cfg.AccessKeySecret),
		logger: logger,
		now:    time.Now,
		nonce:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ClassifyImage runs the ImageModeration action for imageURL. A nil error with
// RiskLevelUnknown means the service answered without a risk level.
func (c *Client) ClassifyImage(ctx context.Context, imageURL string) (domain.Classification, error) {
	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	params, err := c.imageModerationParams(imageURL)
	if err != nil {
		return domain.Classification{}, err
	}
	call, err := c.signer.Sign(params)
	if err != nil {
		return domain.Classification{}, err
	}

	var body []byte
	exchange := func() (err error) {
		body, err = c.post(ctx, call)
		return err
	}
	if c.breaker != nil {
		err = c.breaker.Execute(exchange)
	} else {
		err = exchange()
	}
	if err != nil {
		if errors.Is(err, httpx.ErrCircuitOpen) {
			return domain.Classification{}, fmt.Errorf("%w: %w", ErrTransport, err)
		}
		return domain.Classification{}, err
	}

	result, err := parseImageResult(body)
	if err != nil {
		return domain.Classification{}, err
	}

	c.logger.WithFields(logrus.Fields{
		"request_id": result.RequestID,
		"code":       result.Code,
		"risk_level": result.RiskLevel.String(),
		"labels":     result.Labels,
	}).Info("aliyun green image moderation response")

	return result, nil
}

func (c *Client) imageModerationParams(imageURL string) (map[string]string, error) {
	var serviceParams bytes.Buffer
	enc := json.NewEncoder(&serviceParams)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(map[string]string{"imageUrl": imageURL}); err != nil {
		return nil, fmt.Errorf("%w: encode service parameters: %v", ErrSigning, err)
	}

	return map[string]string{
		"Action":            ImageModerationAction,
		"Version":           APIVersion,
		"AccessKeyId":       c.cfg.AccessKeyID,
		"Format":            "JSON",
		"SignatureMethod":   SignatureMethod,
		"Timestamp":         c.now().UTC().Format(timestampLayout),
		"SignatureVersion":  SignatureVersion,
		"SignatureNonce":    c.nonce(),
		"Service":           c.cfg.Service,
		"ServiceParameters": strings.TrimSuffix(serviceParams.String(), "\n"),
	}, nil
}

func (c *Client) post(ctx context.Context, call SignedCall) ([]byte, error) {
	endpoint := c.cfg.EndpointURL() + "/?" + call.Query()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrTransport, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: truncate(string(body), maxBodyInError)}
	}
	return body, nil
}

func parseImageResult(body []byte) (domain.Classification, error) {
	var p fastjson.Parser
	v, err := p.ParseBytes(body)
	if err != nil {
		return domain.Classification{}, fmt.Errorf("%w: %v", ErrDecoding, err)
	}
	if v.Type() != fastjson.TypeObject {
		return domain.Classification{}, fmt.Errorf("%w: expected JSON object, got %s", ErrDecoding, v.Type())
	}

	result := domain.Classification{
		RequestID: string(v.GetStringBytes("RequestId")),
		Code:      v.GetInt("Code"),
		RiskLevel: domain.ParseRiskLevel(string(v.GetStringBytes("Data", "RiskLevel"))),
	}
	for _, item := range v.GetArray("Data", "Result") {
		if label := item.GetStringBytes("Label"); len(label) > 0 {
			result.Labels = append(result.Labels, string(label))
		}
	}
	return result, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
