/* Copyright 2023 The swtch Authors
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 * http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package store persists machine state for front ends that drive
// switches across process restarts.
//
// The core imposes no persistence; a machine here is just a name for
// an evolving value that some front end (like cmd/swrun) wants to
// pick up where it left off.
package store

import (
	"context"
	"encoding/json"
	"log"
	"time"

	bolt "go.etcd.io/bbolt"
)

// MachineState is what we keep per machine: which switch it runs and
// the value it last reached.
type MachineState struct {
	// Mid is the id for the machine.
	Mid string `json:"id,omitempty"`

	// SwitchName names the switch definition this machine runs.
	SwitchName string `json:"switch,omitempty"`

	// Value is the machine's current value: the next thing to
	// dispatch on.
	Value interface{} `json:"value"`

	// Deleted indicates that this machine has been deleted.
	//
	// Yes, this flag is a hack.
	Deleted bool `json:"-"`
}

// Storage is a type of persistence.
type Storage struct {
	Debug    bool
	filename string
	db       *bolt.DB
}

// NewStorage takes a filename and returns a Storage object.
//
// Nothing is opened yet; see Open.
func NewStorage(filename string) (*Storage, error) {
	return &Storage{
		filename: filename,
	}, nil
}

// Open opens the underlying bolt database.
func (s *Storage) Open(ctx context.Context) error {
	opts := &bolt.Options{
		Timeout: time.Second,
	}

	db, err := bolt.Open(s.filename, 0644, opts)
	if err != nil {
		return err
	}
	s.db = db
	return nil
}

// Close closes the underlying bolt database.
func (s *Storage) Close(ctx context.Context) error {
	if s == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Storage) logf(format string, args ...interface{}) {
	if s == nil {
		return
	}
	if s.Debug {
		log.Printf("BoltDB "+format, args...)
	}
}

// EnsureSwitch makes sure a bucket exists for machines running the
// named switch.
func (s *Storage) EnsureSwitch(ctx context.Context, name string) error {
	if s == nil {
		return nil
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(name))
		return err
	})
}

// RemSwitch removes the named switch's bucket and every machine in
// it.
func (s *Storage) RemSwitch(ctx context.Context, name string) error {
	if s == nil {
		return nil
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.DeleteBucket([]byte(name))
	})
}

// GetMachines returns the states of all machines running the named
// switch.
func (s *Storage) GetMachines(ctx context.Context, name string) ([]*MachineState, error) {
	if s == nil {
		return []*MachineState{}, nil
	}
	mss := make([]*MachineState, 0, 32)
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(name))
		if b == nil {
			return nil
		}
		c := b.Cursor()
		for id, bs := c.First(); id != nil; id, bs = c.Next() {
			var ms MachineState
			if err := json.Unmarshal(bs, &ms); err != nil {
				return err
			}
			ms.Mid = string(id)
			mss = append(mss, &ms)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logf("GetMachines %s found %d machines", name, len(mss))

	if len(mss) == 0 {
		return nil, nil
	}

	return mss, nil
}

// GetMachine returns the state of one machine, or nil if that machine
// isn't stored.
func (s *Storage) GetMachine(ctx context.Context, name, mid string) (*MachineState, error) {
	if s == nil {
		return nil, nil
	}
	var ms *MachineState
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(name))
		if b == nil {
			return nil
		}
		bs := b.Get([]byte(mid))
		if bs == nil {
			return nil
		}
		var found MachineState
		if err := json.Unmarshal(bs, &found); err != nil {
			return err
		}
		found.Mid = mid
		ms = &found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ms, nil
}

// WriteState records the given machine states.
//
// As a machine steps, its state should be written back here.  A state
// with Deleted set removes the machine instead.
func (s *Storage) WriteState(ctx context.Context, name string, mss []*MachineState) error {
	if s == nil {
		return nil
	}

	if 0 == len(mss) {
		return nil
	}

	vals := make(map[string][]byte, len(mss))

	for _, ms := range mss {
		id := ms.Mid
		if ms.Deleted {
			vals[id] = nil
		} else {
			// To save some space, remove id.
			ms = &MachineState{
				SwitchName: ms.SwitchName,
				Value:      ms.Value,
			}
			js, err := json.Marshal(&ms)
			if err != nil {
				return err
			}
			vals[id] = js
		}
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(name))
		if err != nil {
			return err
		}
		for id, bs := range vals {
			var (
				key = []byte(id)
				err error
			)
			if bs == nil {
				err = b.Delete(key)
			} else {
				err = b.Put(key, bs)
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
}
