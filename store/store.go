// Package store persists cards, sessions, story books and card sets in a
// local key-value file
package store

import (
	"errors"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/yogi/internal/apperr"
	"github.com/ayoisaiah/yogi/internal/osutil"
)

const localBucket = "local"

var errYogiRunning = &apperr.Error{
	Message: "is yogi already running? Only one instance can use the store at a time",
}

var errOpenStore = &apperr.Error{
	Message: "unable to open the store at %s",
}

// Client is a BoltDB database client. All values live in a single bucket.
type Client struct {
	*bolt.DB
}

// Get returns a copy of the value stored under key.
func (c *Client) Get(key string) ([]byte, error) {
	var value []byte

	err := c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(localBucket)).Get([]byte(key))
		if v != nil {
			// bolt values are only valid for the lifetime of the transaction
			value = append([]byte(nil), v...)
		}

		return nil
	})

	return value, err
}

func (c *Client) Set(key string, value []byte) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(localBucket)).Put([]byte(key), value)
	})
}

// Keys returns every key in the store in byte order.
func (c *Client) Keys() ([]string, error) {
	var keys []string

	err := c.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(localBucket)).ForEach(func(k, _ []byte) error {
			keys = append(keys, string(k))
			return nil
		})
	})

	return keys, err
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	db, err := bolt.Open(
		pathToDB,
		osutil.DBPermission,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errYogiRunning
		}

		return nil, errOpenStore.Fmt(pathToDB).Wrap(err)
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection. The bucket is created
// and legacy records are migrated on first use.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	c := &Client{db}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(localBucket))
		if err != nil {
			return err
		}

		return c.migrate(tx)
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return c, nil
}
