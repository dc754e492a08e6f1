package engine

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"ovi/geoservices/internal/domain"
	"ovi/geoservices/internal/reply"
)

// categoriesFetch deduplicates concurrent category initializations.
// The first caller starts the fetch; callers arriving while it is in
// flight share its reply.
type categoriesFetch struct {
	mu       sync.Mutex
	inFlight *reply.Reply[domain.CategoryTree]
	ready    bool
}

// InitializeCategories fetches the category tree. The grouped root
// document is fetched first; the children of each top level group are
// then fetched in parallel and merged under their parent. Child
// fetches that fail are logged and skipped, the operation only errors
// when every fetch fails. The result is cached in the category
// registry for the process lifetime.
func (e *Engine) InitializeCategories(ctx context.Context) *reply.Reply[domain.CategoryTree] {
	e.categoriesFetch.mu.Lock()
	if e.categoriesFetch.ready {
		tree := e.categories.Tree()
		e.categoriesFetch.mu.Unlock()
		r, _ := reply.New[domain.CategoryTree](ctx)
		r.SetFinished(tree)
		return r
	}
	if inFlight := e.categoriesFetch.inFlight; inFlight != nil {
		e.categoriesFetch.mu.Unlock()
		return inFlight
	}

	r, runCtx := reply.New[domain.CategoryTree](ctx)
	e.categoriesFetch.inFlight = r
	e.categoriesFetch.mu.Unlock()

	go func() {
		tree, derr := e.fetchCategoryTree(runCtx)

		e.categoriesFetch.mu.Lock()
		e.categoriesFetch.inFlight = nil
		if derr == nil {
			e.categories.SetTree(tree)
			e.categoriesFetch.ready = true
		}
		e.categoriesFetch.mu.Unlock()

		if derr != nil {
			r.SetError(derr.Kind, derr.Message)
			return
		}
		r.SetFinished(tree)
	}()

	return r
}

func (e *Engine) fetchCategoryTree(ctx context.Context) (domain.CategoryTree, *domain.Error) {
	body, derr := e.fetch(ctx, e.places.CategoriesTree())
	if derr != nil {
		return nil, derr
	}

	tree, err := e.parser.Categories(body)
	if err != nil {
		return nil, domain.NewError(domain.KindOf(err), err.Error())
	}

	rootIDs := tree.ChildIDs("")
	if len(rootIDs) == 0 {
		return tree, nil
	}

	// Fetch each top level group's subtree in parallel and merge the
	// children under their parent. Merging is keyed by the parent id,
	// so the outcome does not depend on completion order.
	type subtree struct {
		parentID string
		tree     domain.CategoryTree
	}

	results := make([]subtree, len(rootIDs))
	failures := 0

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(e.maxWorkers)

	var mu sync.Mutex
	for i, parentID := range rootIDs {
		i, parentID := i, parentID
		g.Go(func() error {
			body, derr := e.fetch(groupCtx, e.places.CategoryChildren(parentID))
			if derr != nil {
				log.Warnf("Fetching children of category %s failed: %v", parentID, derr)
				mu.Lock()
				failures++
				mu.Unlock()
				return nil
			}
			childTree, err := e.parser.Categories(body)
			if err != nil {
				log.Warnf("Parsing children of category %s failed: %v", parentID, err)
				mu.Lock()
				failures++
				mu.Unlock()
				return nil
			}
			results[i] = subtree{parentID: parentID, tree: childTree}
			return nil
		})
	}
	_ = g.Wait()

	if ctx.Err() != nil {
		return nil, domain.NewError(domain.CancelError, "request aborted")
	}
	if failures == len(rootIDs) {
		return nil, domain.NewError(domain.CommunicationError, "fetching category children failed for every group")
	}

	for _, result := range results {
		if result.tree == nil {
			continue
		}
		mergeSubtree(tree, result.parentID, result.tree, "")
	}

	return tree, nil
}

// mergeSubtree grafts the children of sourceParent in source under
// targetParent in target, depth first. Already known ids keep their
// first position.
func mergeSubtree(target domain.CategoryTree, targetParent string, source domain.CategoryTree, sourceParent string) {
	for _, childID := range source.ChildIDs(sourceParent) {
		target.Insert(source.Category(childID), targetParent)
		mergeSubtree(target, childID, source, childID)
	}
}

// Categories returns the direct children of the given parent from the
// cached tree, "" meaning the root.
func (e *Engine) Categories(parentID string) []domain.Category {
	return e.categories.Children(parentID)
}
