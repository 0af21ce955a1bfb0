package store

import (
	"encoding/json"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/ayoisaiah/yogi/internal/apperr"
)

const (
	keyExercises  = "exercises"
	keyStories    = "stories"
	keyPracticals = "practicals"
	keySessions   = "sessions"
	keyStoryBooks = "storybooks"
	keyCardSets   = "cardsets"
)

var (
	errReadCollection = &apperr.Error{
		Message: "unable to read %s",
	}

	errWriteCollection = &apperr.Error{
		Message: "unable to save %s",
	}
)

// newUUID generates ids for sessions, story books and card sets.
var newUUID = uuid.NewString

// collection is a JSON array stored under a single key.
type collection[T any] struct {
	kv   KV
	id   func(*T) string
	key  string
	kind string
	mu   sync.Mutex
}

func newCollection[T any](
	kv KV,
	key, kind string,
	id func(*T) string,
) *collection[T] {
	return &collection[T]{
		kv:   kv,
		key:  key,
		kind: kind,
		id:   id,
	}
}

// read returns the stored items, failing when the stored bytes cannot be
// read or decoded.
func (c *collection[T]) read() ([]T, error) {
	b, err := c.kv.Get(c.key)
	if err != nil {
		slog.Error("reading collection failed",
			slog.String("key", c.key),
			slog.Any("error", err),
		)

		return nil, errReadCollection.Fmt(c.key).Wrap(err)
	}

	if len(b) == 0 {
		return nil, nil
	}

	var items []T

	err = json.Unmarshal(b, &items)
	if err != nil {
		slog.Error("decoding collection failed",
			slog.String("key", c.key),
			slog.Any("error", err),
		)

		return nil, errReadCollection.Fmt(c.key).Wrap(err)
	}

	return items, nil
}

// load is read for lookups: an unreadable collection is empty.
func (c *collection[T]) load() []T {
	items, _ := c.read()

	return items
}

func (c *collection[T]) save(items []T) error {
	if items == nil {
		items = []T{}
	}

	b, err := json.Marshal(items)
	if err != nil {
		slog.Error("encoding collection failed",
			slog.String("key", c.key),
			slog.Any("error", err),
		)

		return errWriteCollection.Fmt(c.key).Wrap(err)
	}

	err = c.kv.Set(c.key, b)
	if err != nil {
		slog.Error("writing collection failed",
			slog.String("key", c.key),
			slog.Any("error", err),
		)

		return errWriteCollection.Fmt(c.key).Wrap(err)
	}

	return nil
}

func (c *collection[T]) index(items []T, id string) int {
	return slices.IndexFunc(items, func(item T) bool {
		return c.id(&item) == id
	})
}

func (c *collection[T]) list() []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.load()
}

func (c *collection[T]) get(id string) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := c.load()

	i := c.index(items, id)
	if i == -1 {
		var zero T
		return zero, apperr.NotFound(c.kind, id)
	}

	return items[i], nil
}

// create assigns an id with nextID and appends the item. Nothing is
// written when the existing collection cannot be read.
func (c *collection[T]) create(item T, nextID func([]T) string, setID func(*T, string)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.read()
	if err != nil {
		var zero T
		return zero, err
	}

	setID(&item, nextID(items))

	err = c.save(append(items, item))
	if err != nil {
		var zero T
		return zero, err
	}

	return item, nil
}

// modify applies fn to the stored item in place. The item is saved only
// if fn succeeds.
func (c *collection[T]) modify(id string, fn func(*T) error) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T

	items, err := c.read()
	if err != nil {
		return zero, err
	}

	i := c.index(items, id)
	if i == -1 {
		return zero, apperr.NotFound(c.kind, id)
	}

	updated := items[i]

	err = fn(&updated)
	if err != nil {
		return zero, err
	}

	items[i] = updated

	err = c.save(items)
	if err != nil {
		return zero, err
	}

	return updated, nil
}

// remove deletes the item and reports whether it existed and was saved.
func (c *collection[T]) remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.read()
	if err != nil {
		return false
	}

	i := c.index(items, id)
	if i == -1 {
		return false
	}

	return c.save(slices.Delete(items, i, i+1)) == nil
}

// nextSequentialID returns prefix followed by one more than the highest
// numeric suffix among ids. Ids that do not match are ignored.
func nextSequentialID(prefix string, ids []string) string {
	highest := 0

	for _, id := range ids {
		n, err := strconv.Atoi(strings.TrimPrefix(id, prefix))
		if err != nil || !strings.HasPrefix(id, prefix) {
			continue
		}

		highest = max(highest, n)
	}

	return prefix + strconv.Itoa(highest+1)
}

func idsOf[T any](items []T, id func(*T) string) []string {
	ids := make([]string, len(items))
	for i := range items {
		ids[i] = id(&items[i])
	}

	return ids
}
