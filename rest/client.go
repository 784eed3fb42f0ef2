package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"github.com/s0up4200/thoth/structure"
)

// DefaultEndpoint is the public Thoth export API
const DefaultEndpoint = "https://export.thoth.pub"

// DefaultVersion is the only export API version with structures
const DefaultVersion = "0.4.2"

// Client is a read-only client for the Thoth export API
type Client struct {
	baseURL string
	version string
	http    *resty.Client
	builder *structure.Builder
	logger  zerolog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithVersion selects the export API version
func WithVersion(version string) Option {
	return func(c *Client) {
		c.version = strings.TrimPrefix(version, "v")
	}
}

// WithTimeout sets the request timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.http.SetTimeout(timeout)
		}
	}
}

// NewClient creates an export API client
func NewClient(endpoint string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	c := &Client{
		baseURL: strings.TrimRight(endpoint, "/"),
		version: DefaultVersion,
		http:    resty.New(),
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.version != DefaultVersion {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedVersion, c.version)
	}
	c.http.SetHeader("Accept", "application/json")
	c.builder = structure.NewBuilder(formatters(), endpoints(), structure.WithoutTypeCheck())

	return c, nil
}

func formatters() structure.Formatters {
	return structure.Formatters{
		"Format":        structure.Field("id"),
		"Specification": structure.Field("name"),
		"Platform":      structure.Field("name"),
	}
}

func endpoints() map[string]string {
	return map[string]string{
		"formats":        "Format",
		"format":         "Format",
		"specifications": "Specification",
		"specification":  "Specification",
		"platforms":      "Platform",
		"platform":       "Platform",
	}
}

// Response is a successful export API response
type Response struct {
	Endpoint string
	URL      string
	// Raw is the body as returned by the server
	Raw     string
	builder *structure.Builder
}

// Records returns the body as a list of records
func (r *Response) Records() ([]*structure.Record, error) {
	return r.builder.Records(r.Endpoint, []byte(r.Raw))
}

// Record returns the body as a single record
func (r *Response) Record() (*structure.Record, error) {
	return r.builder.Record(r.Endpoint, []byte(r.Raw))
}

// Structured returns a *structure.Record or a []*structure.Record
func (r *Response) Structured() (any, error) {
	return r.builder.Build(r.Endpoint, []byte(r.Raw))
}

// fetch GETs baseURL+suffix and returns the body of a 200 response
func (c *Client) fetch(ctx context.Context, endpoint, suffix string) (*Response, error) {
	target := c.baseURL + suffix
	request := "GET " + target

	resp, err := c.http.R().SetContext(ctx).Get(target)
	if err != nil {
		return nil, &Error{Request: request, Err: err}
	}

	c.logger.Debug().
		Str("url", target).
		Int("status", resp.StatusCode()).
		Msg("Export API response received")

	if resp.StatusCode() != http.StatusOK {
		return nil, &Error{Request: request, StatusCode: resp.StatusCode(), Body: string(resp.Body())}
	}

	return &Response{
		Endpoint: endpoint,
		URL:      target,
		Raw:      string(resp.Body()),
		builder:  c.builder,
	}, nil
}

// Formats lists the metadata formats Thoth can export
func (c *Client) Formats(ctx context.Context) (*Response, error) {
	return c.fetch(ctx, "formats", "/formats/")
}

// Format fetches one metadata format
func (c *Client) Format(ctx context.Context, id string) (*Response, error) {
	return c.fetch(ctx, "format", "/formats/"+url.PathEscape(id))
}

// Specifications lists the export specifications
func (c *Client) Specifications(ctx context.Context) (*Response, error) {
	return c.fetch(ctx, "specifications", "/specifications/")
}

// Specification fetches one export specification
func (c *Client) Specification(ctx context.Context, id string) (*Response, error) {
	return c.fetch(ctx, "specification", "/specifications/"+url.PathEscape(id))
}

// Platforms lists the distribution platforms
func (c *Client) Platforms(ctx context.Context) (*Response, error) {
	return c.fetch(ctx, "platforms", "/platforms/")
}

// Platform fetches one distribution platform
func (c *Client) Platform(ctx context.Context, id string) (*Response, error) {
	return c.fetch(ctx, "platform", "/platforms/"+url.PathEscape(id))
}

// SpecificationWork renders a work in an export specification. The result
// is the record text, often XML or CSV.
func (c *Client) SpecificationWork(ctx context.Context, specification, workID string) (string, error) {
	res, err := c.fetch(ctx, "specificationWork",
		fmt.Sprintf("/specifications/%s/work/%s", url.PathEscape(specification), url.PathEscape(workID)))
	if err != nil {
		return "", err
	}
	return res.Raw, nil
}

// SpecificationPublisher renders every work of a publisher in an export
// specification.
func (c *Client) SpecificationPublisher(ctx context.Context, specification, publisherID string) (string, error) {
	res, err := c.fetch(ctx, "specificationPublisher",
		fmt.Sprintf("/specifications/%s/publisher/%s", url.PathEscape(specification), url.PathEscape(publisherID)))
	if err != nil {
		return "", err
	}
	return res.Raw, nil
}
