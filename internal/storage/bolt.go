package storage

import (
	"encoding/json"
	"log"
	"time"

	bolt "github.com/boltdb/bolt"
)

const bucketName = "records"

// BoltAdapter stores every record set as a JSON blob in a single bucket of
// an embedded BoltDB file. No external database process is required.
type BoltAdapter struct {
	db *bolt.DB
}

// OpenBolt opens (or creates) the database file at the given path and
// ensures the records bucket exists.
func OpenBolt(path string) (*BoltAdapter, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltAdapter{db: db}, nil
}

// Close releases the database file lock.
func (a *BoltAdapter) Close() error {
	return a.db.Close()
}

// Load implements Adapter. A blob that fails to decode is logged and
// reported as absent so the caller keeps its default value.
func (a *BoltAdapter) Load(key string, dst any) bool {
	var raw []byte
	a.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket([]byte(bucketName)).Get([]byte(key)); v != nil {
			raw = append([]byte(nil), v...)
		}
		return nil
	})
	if raw == nil {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		log.Printf("storage: discarding undecodable blob under %q: %v", key, err)
		return false
	}
	return true
}

// Save implements Adapter.
func (a *BoltAdapter) Save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return a.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(key), data)
	})
}

// Delete implements Adapter. Deleting an absent key is a no-op in bolt,
// which is exactly the behavior Adapter asks for.
func (a *BoltAdapter) Delete(key string) error {
	return a.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Delete([]byte(key))
	})
}
