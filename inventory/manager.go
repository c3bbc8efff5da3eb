// Package inventory manages stock-keeping items on top of a snapshot repository.
package inventory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"copsis/domain"
	"copsis/util"
)

// Manager is a thread-safe view of the inventory. The snapshot is read once
// when the manager opens and rewritten whole after every mutation.
type Manager struct {
	mu    sync.RWMutex
	repo  domain.InventoryRepository
	items []domain.InventoryItem
	newID func() string
}

// Open loads the inventory from repo. When no snapshot exists yet, seed is
// stored as the initial inventory.
func Open(ctx context.Context, repo domain.InventoryRepository, seed []domain.InventoryItem) (*Manager, error) {
	items, ok, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load inventory: %w", err)
	}
	m := &Manager{repo: repo, newID: util.GenerateUUID}
	if !ok {
		m.items = append([]domain.InventoryItem(nil), seed...)
		if err := repo.Save(ctx, m.items); err != nil {
			return nil, fmt.Errorf("seed inventory: %w", err)
		}
		return m, nil
	}
	m.items = items
	return m, nil
}

// Create stores a new item in front of the list. An empty ID is replaced by a
// generated one and an empty rank defaults to DefaultRank.
func (m *Manager) Create(ctx context.Context, item domain.InventoryItem) (domain.InventoryItem, error) {
	if err := ctx.Err(); err != nil {
		return domain.InventoryItem{}, err
	}
	if item.ID == "" {
		item.ID = m.newID()
	}
	if item.Rank == "" {
		item.Rank = domain.DefaultRank
	}
	if err := domain.ValidateItem(item); err != nil {
		return domain.InventoryItem{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.indexOf(item.ID) >= 0 {
		return domain.InventoryItem{}, domain.NewDuplicateItemError(item.ID)
	}
	next := append([]domain.InventoryItem{item}, m.items...)
	if err := m.commit(ctx, next); err != nil {
		return domain.InventoryItem{}, err
	}
	return item, nil
}

func (m *Manager) Get(ctx context.Context, id string) (domain.InventoryItem, error) {
	if err := ctx.Err(); err != nil {
		return domain.InventoryItem{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	i := m.indexOf(id)
	if i < 0 {
		return domain.InventoryItem{}, domain.NewItemNotFoundError(id)
	}
	return m.items[i], nil
}

// Update replaces the item with the given id, keeping its position.
func (m *Manager) Update(ctx context.Context, id string, item domain.InventoryItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := domain.ValidateItem(item); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return domain.NewItemNotFoundError(id)
	}
	item.ID = id
	next := append([]domain.InventoryItem(nil), m.items...)
	next[i] = item
	return m.commit(ctx, next)
}

func (m *Manager) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return domain.NewItemNotFoundError(id)
	}
	next := make([]domain.InventoryItem, 0, len(m.items)-1)
	next = append(next, m.items[:i]...)
	next = append(next, m.items[i+1:]...)
	return m.commit(ctx, next)
}

// List returns items matching filter. Without SortBy the stored order is kept.
func (m *Manager) List(ctx context.Context, filter domain.ListFilter) ([]domain.InventoryItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	search := strings.ToLower(filter.Search)
	out := make([]domain.InventoryItem, 0, len(m.items))
	for _, it := range m.items {
		if search != "" &&
			!strings.Contains(strings.ToLower(it.Name), search) &&
			!strings.Contains(strings.ToLower(it.Category), search) {
			continue
		}
		if filter.Category != "" && !strings.EqualFold(it.Category, filter.Category) {
			continue
		}
		if filter.Status != "" && !strings.EqualFold(domain.StockStatus(it.Stock), filter.Status) {
			continue
		}
		out = append(out, it)
	}

	desc := filter.Order == "desc"
	switch filter.SortBy {
	case "name":
		sort.SliceStable(out, func(i, j int) bool {
			if desc {
				return out[i].Name > out[j].Name
			}
			return out[i].Name < out[j].Name
		})
	case "stock":
		sort.SliceStable(out, func(i, j int) bool {
			if desc {
				return out[i].Stock > out[j].Stock
			}
			return out[i].Stock < out[j].Stock
		})
	case "category":
		sort.SliceStable(out, func(i, j int) bool {
			if desc {
				return out[i].Category > out[j].Category
			}
			return out[i].Category < out[j].Category
		})
	}

	return out, nil
}

// BulkImport validates items concurrently and stores the valid, non-duplicate
// ones in a single snapshot write. All per-item failures are returned joined.
func (m *Manager) BulkImport(ctx context.Context, items []domain.InventoryItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}

	const maxWorkers = 10

	type job struct {
		pos  int
		item domain.InventoryItem
	}
	type result struct {
		job
		err error
	}

	jobs := make(chan job)
	results := make(chan result, len(items))

	var wg sync.WaitGroup

	worker := func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case j, ok := <-jobs:
				if !ok {
					return
				}
				it := j.item
				if it.ID == "" {
					it.ID = m.newID()
				}
				if it.Rank == "" {
					it.Rank = domain.DefaultRank
				}
				if err := domain.ValidateItem(it); err != nil {
					results <- result{job: job{pos: j.pos, item: it}, err: fmt.Errorf("id=%s: %w", it.ID, err)}
					continue
				}
				results <- result{job: job{pos: j.pos, item: it}}
			}
		}
	}

	nWorkers := maxWorkers
	if len(items) < nWorkers {
		nWorkers = len(items)
	}

	wg.Add(nWorkers)
	for i := 0; i < nWorkers; i++ {
		go worker()
	}

	// feed jobs
	go func() {
		defer close(jobs)
		for i, it := range items {
			select {
			case <-ctx.Done():
				return
			case jobs <- job{pos: i, item: it}:
			}
		}
	}()

	// collect results
	valid := make([]job, 0, len(items))
	var collected error
	received := 0
	for received < len(items) {
		select {
		case <-ctx.Done():
			// wait for workers to stop then return context error
			wg.Wait()
			return ctx.Err()
		case res := <-results:
			received++
			if res.err != nil {
				collected = joinErr(collected, res.err)
				continue
			}
			valid = append(valid, res.job)
		}
	}
	wg.Wait()

	// keep input order for the accepted items
	sort.Slice(valid, func(i, j int) bool { return valid[i].pos < valid[j].pos })

	m.mu.Lock()
	defer m.mu.Unlock()

	seen := make(map[string]struct{}, len(valid))
	next := append([]domain.InventoryItem(nil), m.items...)
	for _, j := range valid {
		it := j.item
		if _, dup := seen[it.ID]; dup || m.indexOf(it.ID) >= 0 {
			collected = joinErr(collected, domain.NewDuplicateItemError(it.ID))
			continue
		}
		seen[it.ID] = struct{}{}
		next = append(next, it)
	}
	if len(next) == len(m.items) {
		return collected
	}
	if err := m.commit(ctx, next); err != nil {
		return joinErr(collected, err)
	}
	return collected
}

// commit saves next and makes it current. Callers hold m.mu.
func (m *Manager) commit(ctx context.Context, next []domain.InventoryItem) error {
	if err := m.repo.Save(ctx, next); err != nil {
		return fmt.Errorf("save inventory: %w", err)
	}
	m.items = next
	return nil
}

func (m *Manager) indexOf(id string) int {
	for i, it := range m.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func joinErr(collected, err error) error {
	if collected == nil {
		return err
	}
	return fmt.Errorf("%v; %w", collected, err)
}
