package store

import (
	"encoding/json"
	"strconv"

	"go.etcd.io/bbolt"
)

// Records written by older versions stored exercise ids as JSON numbers,
// both on the exercises themselves and inside session orders. Ids are
// strings everywhere now.

// StringifyIDs rewrites the numeric "id" fields of a JSON array of records
// as strings and reports whether anything changed. Input that is not an
// array of objects is returned as is.
func StringifyIDs(b []byte) ([]byte, bool, error) {
	return rewriteRecords(b, func(r map[string]any) bool {
		id, ok := stringifyID(r["id"])
		if ok {
			r["id"] = id
		}

		return ok
	})
}

func stringifyOrders(b []byte) ([]byte, bool, error) {
	return rewriteRecords(b, func(r map[string]any) bool {
		order, ok := r["exercises"].([]any)
		if !ok {
			return false
		}

		changed := false

		for i := range order {
			if id, ok := stringifyID(order[i]); ok {
				order[i] = id
				changed = true
			}
		}

		return changed
	})
}

func rewriteRecords(
	b []byte,
	fn func(r map[string]any) bool,
) ([]byte, bool, error) {
	var records []map[string]any

	if err := json.Unmarshal(b, &records); err != nil {
		// left for the repository to report and degrade
		return b, false, nil
	}

	changed := false

	for _, r := range records {
		if fn(r) {
			changed = true
		}
	}

	if !changed {
		return b, false, nil
	}

	out, err := json.Marshal(records)
	if err != nil {
		return b, false, err
	}

	return out, true, nil
}

// stringifyID converts a numeric JSON id to its string form.
func stringifyID(v any) (string, bool) {
	f, ok := v.(float64)
	if !ok {
		return "", false
	}

	return strconv.FormatFloat(f, 'f', -1, 64), true
}

func migrateKey(
	bucket *bbolt.Bucket,
	key string,
	fn func([]byte) ([]byte, bool, error),
) error {
	v := bucket.Get([]byte(key))
	if v == nil {
		return nil
	}

	out, changed, err := fn(v)
	if err != nil || !changed {
		return err
	}

	return bucket.Put([]byte(key), out)
}

func (c *Client) migrate(tx *bbolt.Tx) error {
	bucket := tx.Bucket([]byte(localBucket))

	err := migrateKey(bucket, keyExercises, StringifyIDs)
	if err != nil {
		return err
	}

	return migrateKey(bucket, keySessions, stringifyOrders)
}
