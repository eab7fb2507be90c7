package slidertable

import (
	"fmt"
	"sort"
	"sync"

	"github.com/henderiw/extent/pkg/domain"
	"github.com/henderiw/extent/pkg/slider"
	"k8s.io/apimachinery/pkg/labels"
)

// Table holds the sliders of one legend, indexed 0..size-1.
type Table interface {
	Get(id int64) (Entry, error)
	Claim(id int64, c slider.Controller, l labels.Set) error
	ClaimDynamic(c slider.Controller, l labels.Set) (int64, error)
	Release(id int64) error
	Update(id int64, l labels.Set) error

	Iterate() *Iterator

	Count() int
	Has(id int64) bool

	IsFree(id int64) bool
	FindFree() (int64, error)

	GetAll() map[int64]Entry
	GetByLabel(selector labels.Selector) map[int64]Entry

	// Move forwards a drag to the slider with the given id.
	Move(id int64, delta float64, h slider.Handle) (bool, error)
	// RemapDomain moves a slider onto a new domain keeping the relative
	// position of its selected extent.
	RemapDomain(id int64, d domain.Domain) error
}

type ValidationFn func(id int64) error

func New(size int64, v ValidationFn) (Table, error) {
	if size <= 0 {
		return nil, fmt.Errorf("size %d must be positive", size)
	}
	return &table{
		m:          new(sync.RWMutex),
		table:      map[int64]Entry{},
		size:       size,
		validateFn: v,
	}, nil
}

type table struct {
	m          *sync.RWMutex
	table      map[int64]Entry
	size       int64
	validateFn ValidationFn
}

func (r *table) validate(id int64) error {
	if id < 0 || id > r.size-1 {
		return fmt.Errorf("id %d is outside the allowed entries: 0-%d", id, r.size-1)
	}
	if r.validateFn != nil {
		if err := r.validateFn(id); err != nil {
			return err
		}
	}
	return nil
}

func (r *table) Get(id int64) (Entry, error) {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.get(id)
}

func (r *table) get(id int64) (Entry, error) {
	if err := r.validate(id); err != nil {
		return nil, err
	}
	e, ok := r.table[id]
	if !ok {
		return nil, fmt.Errorf("no match found for: %d", id)
	}
	return e, nil
}

func (r *table) Claim(id int64, c slider.Controller, l labels.Set) error {
	r.m.Lock()
	defer r.m.Unlock()

	return r.add(id, c, l)
}

func (r *table) ClaimDynamic(c slider.Controller, l labels.Set) (int64, error) {
	r.m.Lock()
	defer r.m.Unlock()

	id, err := r.findFree()
	if err != nil {
		return 0, err
	}
	if err := r.add(id, c, l); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *table) Release(id int64) error {
	r.m.Lock()
	defer r.m.Unlock()

	if err := r.validate(id); err != nil {
		return err
	}
	delete(r.table, id)
	return nil
}

func (r *table) Update(id int64, l labels.Set) error {
	r.m.Lock()
	defer r.m.Unlock()

	e, err := r.get(id)
	if err != nil {
		return err
	}
	r.table[id] = newEntry(id, e.Controller(), l)
	return nil
}

func (r *table) Iterate() *Iterator {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.iterate()
}

func (r *table) iterate() *Iterator {
	keys := make([]int64, 0, len(r.table))
	entries := make(map[int64]Entry, len(r.table))
	for key, e := range r.table {
		keys = append(keys, key)
		entries[key] = e
	}
	sort.Slice(keys, func(i int, j int) bool {
		return keys[i] < keys[j]
	})

	return &Iterator{current: -1, keys: keys, table: entries}
}

func (r *table) Count() int {
	r.m.RLock()
	defer r.m.RUnlock()

	return len(r.table)
}

func (r *table) Has(id int64) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	_, ok := r.table[id]
	return ok
}

func (r *table) IsFree(id int64) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.isFree(id)
}

func (r *table) isFree(id int64) bool {
	_, ok := r.table[id]
	return !ok
}

func (r *table) FindFree() (int64, error) {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.findFree()
}

func (r *table) findFree() (int64, error) {
	for id := int64(0); id < r.size; id++ {
		if !r.isFree(id) {
			continue
		}
		if r.validateFn != nil && r.validateFn(id) != nil {
			continue
		}
		return id, nil
	}
	return 0, fmt.Errorf("no free entry found")
}

func (r *table) add(id int64, c slider.Controller, l labels.Set) error {
	if c == nil {
		return fmt.Errorf("entry %d has no slider", id)
	}
	if err := r.validate(id); err != nil {
		return err
	}
	if !r.isFree(id) {
		return fmt.Errorf("entry %d already exists", id)
	}
	r.table[id] = newEntry(id, c, l)
	return nil
}

func (r *table) GetAll() map[int64]Entry {
	r.m.RLock()
	defer r.m.RUnlock()

	entries := make(map[int64]Entry, len(r.table))
	for id, e := range r.table {
		entries[id] = e
	}
	return entries
}

func (r *table) GetByLabel(selector labels.Selector) map[int64]Entry {
	entries := map[int64]Entry{}

	iter := r.Iterate()
	for iter.Next() {
		if selector.Matches(iter.Value().Labels()) {
			entries[iter.ID()] = iter.Value()
		}
	}
	return entries
}

// the table lock is not held while the controller runs so its callback
// may use the table
func (r *table) Move(id int64, delta float64, h slider.Handle) (bool, error) {
	e, err := r.Get(id)
	if err != nil {
		return false, err
	}
	return e.Controller().Move(delta, h), nil
}

func (r *table) RemapDomain(id int64, d domain.Domain) error {
	e, err := r.Get(id)
	if err != nil {
		return err
	}
	c := e.Controller()
	ext := domain.DomainFromPercent(d, c.Domain(), c.DataExtent())
	return c.Reset(d, ext)
}
