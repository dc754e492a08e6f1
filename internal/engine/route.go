package engine

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"ovi/geoservices/internal/domain"
	"ovi/geoservices/internal/parse"
	"ovi/geoservices/internal/reply"
	"ovi/geoservices/internal/request"
)

// CalculateRoute computes routes between the query waypoints. Each
// requested optimization is issued as its own request and the route
// lists are merged in optimization order, so a shortest and a fastest
// alternative never race for their position in the result. Aborting
// the reply cancels every request still in flight.
func (e *Engine) CalculateRoute(ctx context.Context, query request.RouteQuery) *reply.Reply[[]domain.Route] {
	query = e.prepareRouteQuery(query)

	if len(query.Optimizations) == 0 {
		query.Optimizations = []domain.RouteOptimization{domain.FastestRoute}
	}

	urls := make([]string, len(query.Optimizations))
	for i, optimization := range query.Optimizations {
		single := query
		single.Optimizations = []domain.RouteOptimization{optimization}
		urls[i] = e.routes.CalculateRoute(single)
	}

	for _, url := range urls {
		if url == "" {
			r, _ := reply.New[[]domain.Route](ctx)
			r.SetError(domain.UnsupportedError, unsupportedMessage)
			return r
		}
	}

	if len(urls) == 1 {
		return launch(e, ctx, urls[0], domain.CommunicationError, parse.Routes)
	}

	r, runCtx := reply.New[[]domain.Route](ctx)
	go func() {
		routes, derr := e.fetchRoutes(runCtx, urls)
		if derr != nil {
			r.SetError(derr.Kind, derr.Message)
			return
		}
		r.SetFinished(routes)
	}()

	return r
}

// UpdateRoute recomputes an existing route from the given position,
// keeping the options of the original query.
func (e *Engine) UpdateRoute(ctx context.Context, route domain.Route, position domain.Coordinate, query request.RouteQuery) *reply.Reply[[]domain.Route] {
	if route.ID == "" {
		r, _ := reply.New[[]domain.Route](ctx)
		r.SetError(domain.BadArgumentError, "route id is empty")
		return r
	}
	if !position.IsValid() {
		r, _ := reply.New[[]domain.Route](ctx)
		r.SetError(domain.BadArgumentError, "position is not a valid coordinate")
		return r
	}

	query = e.prepareRouteQuery(query)

	return launch(e, ctx, e.routes.UpdateRoute(route, position, query), domain.CommunicationError, parse.Routes)
}

func (e *Engine) prepareRouteQuery(query request.RouteQuery) request.RouteQuery {
	if query.Departure.IsZero() {
		query.Departure = routeDeparture()
	}
	if query.Language == "" {
		query.Language = e.locale
	}
	return query
}

// fetchRoutes runs the per-optimization requests in parallel. Requests
// that fail are logged and skipped; the call errors only when every
// request fails.
func (e *Engine) fetchRoutes(ctx context.Context, urls []string) ([]domain.Route, *domain.Error) {
	results := make([][]domain.Route, len(urls))
	failures := 0

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(e.maxWorkers)

	var mu sync.Mutex
	for i, url := range urls {
		i, url := i, url
		g.Go(func() error {
			body, derr := e.fetch(groupCtx, url)
			if derr == nil {
				var err error
				results[i], err = parse.Routes(body)
				if err == nil {
					return nil
				}
				derr = domain.NewError(domain.KindOf(err), err.Error())
			}
			log.Warnf("Route request %d failed: %v", i, derr)
			mu.Lock()
			failures++
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	if ctx.Err() != nil {
		return nil, domain.NewError(domain.CancelError, "request aborted")
	}
	if failures == len(urls) {
		return nil, domain.NewError(domain.CommunicationError, "every route request failed")
	}

	var routes []domain.Route
	for _, result := range results {
		routes = append(routes, result...)
	}
	return routes, nil
}
