package workload

import (
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"

	"github.com/mythicalcodelabs/yggdrasil/pkg/btree"
)

// ErrUnsupported marks an operation a dictionary cannot express, e.g. an
// ordered bound query on a hash map. The phase is reported as unsupported
// instead of failing the run.
var ErrUnsupported = errors.New("workload: operation not supported by target")

// Dictionary is the common surface the benchmark drives against every
// target.
type Dictionary interface {
	Name() string
	Insert(key, value string) error
	Find(key string) (bool, error)
	// UpperBound returns the smallest stored key strictly greater than key.
	UpperBound(key string) (string, bool, error)
	Iterate(fn func(key, value string) bool) error
	Delete(key string) error
	Close() error
}

// openDictionary builds the named target.
func openDictionary(target string, cfg *Config) (Dictionary, error) {
	switch target {
	case "btree":
		return newTreeDict(cfg.Order), nil
	case "gomap":
		return newGoMapDict(), nil
	case "pebble":
		return newPebbleDict(cfg.DataDir)
	default:
		return nil, fmt.Errorf("unknown target %q", target)
	}
}

// treeDict is the ordered map under test.
type treeDict struct {
	m *btree.Map[string, string]
}

func newTreeDict(order int) *treeDict {
	return &treeDict{m: btree.NewMapWith(btree.MapConfig[string, string]{
		Less:  func(a, b string) bool { return a < b },
		Order: order,
	})}
}

func (d *treeDict) Name() string { return "btree" }

func (d *treeDict) Insert(key, value string) error {
	d.m.InsertOrAssign(key, value)
	return nil
}

func (d *treeDict) Find(key string) (bool, error) {
	return d.m.Contains(key), nil
}

func (d *treeDict) UpperBound(key string) (string, bool, error) {
	c := d.m.UpperBound(key)
	if c == d.m.End() {
		return "", false, nil
	}
	return c.Deref().Key, true, nil
}

func (d *treeDict) Iterate(fn func(key, value string) bool) error {
	items := d.m.Items()
	for it, ok := items.Next(); ok; it, ok = items.Next() {
		if !fn(it.Key, it.Value) {
			break
		}
	}
	return nil
}

func (d *treeDict) Delete(key string) error {
	d.m.Erase(key)
	return nil
}

func (d *treeDict) Close() error {
	d.m.Clear()
	return nil
}

// Tree exposes the underlying map for metrics collection.
func (d *treeDict) Tree() *btree.Map[string, string] { return d.m }

// goMapDict is the built-in hash map baseline. Iteration order is undefined
// and bound queries are unsupported, as the comparison table expects.
type goMapDict struct {
	m map[string]string
}

func newGoMapDict() *goMapDict {
	return &goMapDict{m: make(map[string]string)}
}

func (d *goMapDict) Name() string { return "gomap" }

func (d *goMapDict) Insert(key, value string) error {
	d.m[key] = value
	return nil
}

func (d *goMapDict) Find(key string) (bool, error) {
	_, ok := d.m[key]
	return ok, nil
}

func (d *goMapDict) UpperBound(string) (string, bool, error) {
	return "", false, ErrUnsupported
}

func (d *goMapDict) Iterate(fn func(key, value string) bool) error {
	for k, v := range d.m {
		if !fn(k, v) {
			break
		}
	}
	return nil
}

func (d *goMapDict) Delete(key string) error {
	delete(d.m, key)
	return nil
}

func (d *goMapDict) Close() error {
	d.m = nil
	return nil
}

// pebbleDict is the on-disk LSM baseline.
type pebbleDict struct {
	db  *pebble.DB
	dir string
}

func newPebbleDict(dir string) (*pebbleDict, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open pebble store: %w", err)
	}
	return &pebbleDict{db: db, dir: dir}, nil
}

func (d *pebbleDict) Name() string { return "pebble" }

func (d *pebbleDict) Insert(key, value string) error {
	return d.db.Set([]byte(key), []byte(value), pebble.NoSync)
}

func (d *pebbleDict) Find(key string) (bool, error) {
	_, closer, err := d.db.Get([]byte(key))
	if errors.Is(err, pebble.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, closer.Close()
}

func (d *pebbleDict) UpperBound(key string) (string, bool, error) {
	iter, err := d.db.NewIter(nil)
	if err != nil {
		return "", false, err
	}
	defer iter.Close()
	// SeekGE on key+\x00 lands on the first key strictly greater than key.
	if !iter.SeekGE(append([]byte(key), 0)) {
		return "", false, nil
	}
	return string(iter.Key()), true, nil
}

func (d *pebbleDict) Iterate(fn func(key, value string) bool) error {
	iter, err := d.db.NewIter(nil)
	if err != nil {
		return err
	}
	defer iter.Close()
	for valid := iter.First(); valid; valid = iter.Next() {
		if !fn(string(iter.Key()), string(iter.Value())) {
			break
		}
	}
	return iter.Error()
}

func (d *pebbleDict) Delete(key string) error {
	return d.db.Delete([]byte(key), pebble.NoSync)
}

func (d *pebbleDict) Close() error {
	return d.db.Close()
}
