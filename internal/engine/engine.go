package engine

import (
	"context"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"ovi/geoservices/internal/config"
	"ovi/geoservices/internal/domain"
	"ovi/geoservices/internal/parse"
	"ovi/geoservices/internal/registry"
	"ovi/geoservices/internal/reply"
	"ovi/geoservices/internal/request"
	"ovi/geoservices/internal/transport"
)

const unsupportedMessage = "the given request options are not supported by this service provider"

// Engine is the façade over the vendor geo services: place search and
// details, categories, routing and geocoding. Every operation returns
// a pending reply and runs its network and parse work on a background
// goroutine.
type Engine struct {
	cfg        *config.Config
	client     transport.Client
	categories *registry.CategoryRegistry
	suppliers  *registry.SupplierRegistry
	parser     *parse.Parser

	places   request.PlacesBuilder
	routes   request.RouteBuilder
	geocoder request.GeocodeBuilder

	locale     string
	maxWorkers int

	categoriesFetch *categoriesFetch
}

func New(cfg *config.Config, client transport.Client,
	categories *registry.CategoryRegistry, suppliers *registry.SupplierRegistry) *Engine {

	locale := cfg.Places.Locale
	if locale == "" {
		locale = "en_US"
	}
	maxWorkers := cfg.Places.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = 10
	}

	return &Engine{
		cfg:        cfg,
		client:     client,
		categories: categories,
		suppliers:  suppliers,
		parser:     parse.New(categories, suppliers),
		places: request.PlacesBuilder{
			SearchURL: cfg.Places.SearchURL,
			PlacesURL: cfg.Places.PlacesURL,
		},
		routes: request.RouteBuilder{
			Host:    cfg.Routing.Host,
			Token:   cfg.Routing.Token,
			Referer: cfg.Routing.Referer,
		},
		geocoder: request.GeocodeBuilder{
			Host:    cfg.Geocoding.Host,
			Token:   cfg.Geocoding.Token,
			Referer: cfg.Geocoding.Referer,
			Locale:  locale,
		},
		locale:          locale,
		maxWorkers:      maxWorkers,
		categoriesFetch: &categoriesFetch{},
	}
}

func (e *Engine) Locale() string { return e.locale }

// launch runs one GET against url and completes the reply with the
// decoded body. An empty url errors the reply synchronously, so
// callers never hand out a reply that nothing will finish.
func launch[T any](e *Engine, ctx context.Context, url string, missingKind domain.ErrorKind, decode func([]byte) (T, error)) *reply.Reply[T] {
	r, runCtx := reply.New[T](ctx)

	if url == "" {
		r.SetError(domain.UnsupportedError, unsupportedMessage)
		return r
	}

	handle, err := e.client.Get(runCtx, url, nil)
	if err != nil {
		r.SetError(domain.CommunicationError, err.Error())
		return r
	}

	go func() {
		result, derr := awaitAndDecode(runCtx, handle, missingKind, decode)
		if derr != nil {
			r.SetError(derr.Kind, derr.Message)
			return
		}
		r.SetFinished(result)
	}()

	return r
}

// awaitAndDecode blocks for the transport result and decodes it,
// mapping transport failures onto the error taxonomy.
func awaitAndDecode[T any](ctx context.Context, handle *transport.Handle, missingKind domain.ErrorKind, decode func([]byte) (T, error)) (T, *domain.Error) {
	var zero T

	select {
	case <-ctx.Done():
		handle.Cancel()
		return zero, domain.NewError(domain.CancelError, "request aborted")
	case res := <-handle.Done():
		if res.Err != nil {
			if ctx.Err() != nil {
				return zero, domain.NewError(domain.CancelError, "request aborted")
			}
			return zero, domain.NewError(domain.CommunicationError, res.Err.Error())
		}
		if res.StatusCode == http.StatusNotFound {
			return zero, domain.NewError(missingKind, "the service reported 404 for the request")
		}
		if res.StatusCode >= http.StatusBadRequest {
			return zero, domain.Errorf(domain.CommunicationError, "the service responded with status %d", res.StatusCode)
		}

		result, err := decode(res.Body)
		if err != nil {
			log.Debugf("Decoding response failed: %v", err)
			kind := domain.KindOf(err)
			if kind == domain.UnknownError {
				kind = domain.ParseError
			}
			return zero, domain.NewError(kind, err.Error())
		}
		return result, nil
	}
}

// fetch is the blocking variant of launch used inside fan-out workers.
func (e *Engine) fetch(ctx context.Context, url string) ([]byte, *domain.Error) {
	handle, err := e.client.Get(ctx, url, nil)
	if err != nil {
		return nil, domain.NewError(domain.CommunicationError, err.Error())
	}
	return awaitAndDecode(ctx, handle, domain.CommunicationError, func(body []byte) ([]byte, error) {
		return body, nil
	})
}

func routeDeparture() time.Time {
	return time.Now().UTC()
}
