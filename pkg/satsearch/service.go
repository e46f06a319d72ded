package satsearch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/donaldgifford/satsearch-go/internal/metrics"
)

const apiVersion = "v1"

// SearchService defines the SatSearch operations. Service is the
// implementation; the interface exists so callers can substitute mocks.
type SearchService interface {
	SupplierResult(ctx context.Context, creds *Credentials, page int) (*SupplierResult, error)
	Supplier(ctx context.Context, creds *Credentials, id uuid.UUID) (*Supplier, error)
	Suppliers(ctx context.Context, creds *Credentials) ([]Supplier, error)
	Categories(ctx context.Context, creds *Credentials) ([]Category, error)
	AttributeTypes(ctx context.Context, creds *Credentials) ([]AttributeType, error)
	Search(ctx context.Context, creds *Credentials, param *SearchParameter) (*ProductResult, error)
	SearchAll(ctx context.Context, creds *Credentials, param *SearchParameter) ([]Product, error)
	Product(ctx context.Context, creds *Credentials, id uuid.UUID) (*Product, error)
}

// Service implements SearchService. It owns a ClientCache and an
// EntityCache; both live as long as the Service.
type Service struct {
	clients    *ClientCache
	things     *EntityCache
	decoder    Deserializer
	log        *slog.Logger
	httpClient *http.Client
}

// Option configures the Service.
type Option func(*Service)

// WithHTTPClient sets the *http.Client used by every cached APIClient.
// Ignored when WithClientCache is also given.
func WithHTTPClient(hc *http.Client) Option {
	return func(s *Service) {
		s.httpClient = hc
	}
}

// WithClientCache injects a pre-built client cache.
func WithClientCache(c *ClientCache) Option {
	return func(s *Service) {
		s.clients = c
	}
}

// WithEntityCache injects a pre-built entity cache, e.g. to share one
// between services.
func WithEntityCache(c *EntityCache) Option {
	return func(s *Service) {
		s.things = c
	}
}

// WithDeserializer overrides the default JSONDeserializer.
func WithDeserializer(d Deserializer) Option {
	return func(s *Service) {
		s.decoder = d
	}
}

// WithLogger sets the logger. The default discards all output.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		s.log = l
	}
}

// NewService creates a Service.
func NewService(opts ...Option) *Service {
	s := &Service{
		decoder: JSONDeserializer{},
		log:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.clients == nil {
		s.clients = NewClientCache(s.httpClient)
	}
	if s.things == nil {
		s.things = NewEntityCache()
	}
	return s
}

// Clients returns the service's client cache.
func (s *Service) Clients() *ClientCache { return s.clients }

// Entities returns the service's entity cache.
func (s *Service) Entities() *EntityCache { return s.things }

// SupplierResult fetches one page of suppliers. Pages start at 1; smaller
// values request page 1.
func (s *Service) SupplierResult(
	ctx context.Context,
	creds *Credentials,
	page int,
) (*SupplierResult, error) {
	if page < 1 {
		page = 1
	}

	var result *SupplierResult
	path := apiVersion + "/suppliers?page=" + strconv.Itoa(page)
	err := s.get(ctx, creds, "supplier_result", path, func(r io.Reader) error {
		var err error
		result, err = s.decoder.DecodeSupplierResult(r)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Supplier returns the supplier with the given id, from the entity cache
// when it has been fetched before. Fetched suppliers are cached under the
// UUID in the response body.
func (s *Service) Supplier(
	ctx context.Context,
	creds *Credentials,
	id uuid.UUID,
) (*Supplier, error) {
	if creds == nil {
		return nil, errNilCredentials()
	}

	e, err := s.things.GetOrAdd(id, func() (Entity, error) {
		var supplier *Supplier
		path := apiVersion + "/suppliers/" + id.String()
		err := s.get(ctx, creds, "supplier", path, func(r io.Reader) error {
			var err error
			supplier, err = s.decoder.DecodeSupplier(r)
			return err
		})
		if err != nil {
			return nil, err
		}
		return supplier, nil
	})
	if err != nil {
		return nil, err
	}

	supplier, ok := e.(*Supplier)
	if !ok {
		return nil, fmt.Errorf("entity %s is cached as %T, not a supplier", id, e)
	}
	return supplier, nil
}

// Suppliers fetches every page of suppliers, one request at a time, and
// returns them concatenated in page order. The result is not cached.
func (s *Service) Suppliers(ctx context.Context, creds *Credentials) ([]Supplier, error) {
	first, err := s.SupplierResult(ctx, creds, 1)
	if err != nil {
		return nil, err
	}

	suppliers := slices.Clone(first.Data)
	for page := 2; page <= first.LastPage; page++ {
		result, err := s.SupplierResult(ctx, creds, page)
		if err != nil {
			return nil, fmt.Errorf("fetching supplier page %d: %w", page, err)
		}
		suppliers = append(suppliers, result.Data...)
	}

	return suppliers, nil
}

// Categories fetches all categories sorted by name.
func (s *Service) Categories(ctx context.Context, creds *Credentials) ([]Category, error) {
	var categories []Category
	path := apiVersion + "/products/categories"
	err := s.get(ctx, creds, "categories", path, func(r io.Reader) error {
		var err error
		categories, err = s.decoder.DecodeCategories(r)
		return err
	})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(categories, func(a, b Category) int {
		return strings.Compare(a.Name, b.Name)
	})
	return categories, nil
}

// AttributeTypes fetches all attribute types in service order.
func (s *Service) AttributeTypes(
	ctx context.Context,
	creds *Credentials,
) ([]AttributeType, error) {
	var types []AttributeType
	path := apiVersion + "/products/attributes"
	err := s.get(ctx, creds, "attribute_types", path, func(r io.Reader) error {
		var err error
		types, err = s.decoder.DecodeAttributeTypes(r)
		return err
	})
	if err != nil {
		return nil, err
	}
	return types, nil
}

// Search runs a product query. A nil or empty parameter lists products
// without a query string.
func (s *Service) Search(
	ctx context.Context,
	creds *Credentials,
	param *SearchParameter,
) (*ProductResult, error) {
	path := apiVersion + "/products"
	if !param.IsEmpty() {
		path += "?" + param.Encode()
	}

	var result *ProductResult
	err := s.get(ctx, creds, "product_result", path, func(r io.Reader) error {
		var err error
		result, err = s.decoder.DecodeProductResult(r)
		return err
	})
	if err != nil {
		return nil, err
	}

	result.SearchParameter = param
	return result, nil
}

// SearchAll runs param against every result page, starting at page 1, and
// returns the products in page order. param.Page is ignored.
func (s *Service) SearchAll(
	ctx context.Context,
	creds *Credentials,
	param *SearchParameter,
) ([]Product, error) {
	first, err := s.Search(ctx, creds, param.WithPage(1))
	if err != nil {
		return nil, err
	}

	products := slices.Clone(first.Data)
	for page := 2; page <= first.LastPage; page++ {
		result, err := s.Search(ctx, creds, param.WithPage(page))
		if err != nil {
			return nil, fmt.Errorf("fetching product page %d: %w", page, err)
		}
		products = append(products, result.Data...)
	}

	return products, nil
}

// Product returns the product with the given id, from the entity cache when
// it has been fetched before. Fetched products are cached under the UUID in
// the response body.
func (s *Service) Product(
	ctx context.Context,
	creds *Credentials,
	id uuid.UUID,
) (*Product, error) {
	if creds == nil {
		return nil, errNilCredentials()
	}

	e, err := s.things.GetOrAdd(id, func() (Entity, error) {
		var product *Product
		path := apiVersion + "/products/" + id.String()
		err := s.get(ctx, creds, "product", path, func(r io.Reader) error {
			var err error
			product, err = s.decoder.DecodeProduct(r)
			return err
		})
		if err != nil {
			return nil, err
		}
		return product, nil
	})
	if err != nil {
		return nil, err
	}

	product, ok := e.(*Product)
	if !ok {
		return nil, fmt.Errorf("entity %s is cached as %T, not a product", id, e)
	}
	return product, nil
}

// get resolves the client for creds and issues one GET, recording metrics
// and logging the outcome.
func (s *Service) get(
	ctx context.Context,
	creds *Credentials,
	resource string,
	path string,
	decode func(io.Reader) error,
) error {
	if creds == nil {
		return errNilCredentials()
	}

	client, err := s.clients.Get(creds)
	if err != nil {
		return err
	}

	start := time.Now()
	s.log.DebugContext(ctx, "satsearch query starting", "resource", resource, "path", path)

	err = client.Get(ctx, path, decode)
	elapsed := time.Since(start)

	metrics.APIRequestDuration.WithLabelValues(resource).Observe(elapsed.Seconds())
	metrics.APIRequestsTotal.WithLabelValues(resource, outcome(err)).Inc()

	if err != nil {
		s.log.ErrorContext(ctx, "could not retrieve from the SatSearch service",
			"resource", resource,
			"base_uri", client.BaseURL().String(),
			"error", err,
		)
		return fmt.Errorf("retrieving %s: %w", resource, err)
	}

	s.log.DebugContext(ctx, "satsearch query executed",
		"resource", resource,
		"elapsed_ms", elapsed.Milliseconds(),
	)
	return nil
}

func errNilCredentials() error {
	return fmt.Errorf("%w: credentials may not be nil", ErrInvalidCredentials)
}

// outcome classifies err for the requests metric.
func outcome(err error) string {
	var apiErr *APIError
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &apiErr):
		return "status_" + strconv.Itoa(apiErr.StatusCode/100) + "xx"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	case errors.Is(err, ErrDeserialization):
		return "decode_error"
	default:
		return "transport_error"
	}
}
