package database

import (
	"io/ioutil"
	"os"

	"github.com/awesome-cap/hashmap"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/json"
)

// Identity is a stable (id, name) pair keyed by a device identifier,
// so a reloading browser keeps the same player.
type Identity struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	DeviceID string `json:"deviceId"`
}

// IdentityStore keeps identities in a concurrent map and mirrors them
// to a JSON file so they survive server restarts.
type IdentityStore struct {
	path       string
	identities *hashmap.HashMap
}

func NewIdentityStore(path string) *IdentityStore {
	store := &IdentityStore{path: path, identities: hashmap.New()}
	store.load()
	return store
}

// Lookup returns the identity previously stored for the device key.
func (s *IdentityStore) Lookup(deviceID string) (Identity, bool) {
	v, ok := s.identities.Get(deviceID)
	if !ok {
		return Identity{}, false
	}
	return v.(Identity), true
}

// Login persists a new (id, name) pair for the device, generating the
// player id and, if absent, the device id.
func (s *IdentityStore) Login(deviceID, name string) Identity {
	if deviceID == "" {
		deviceID = "device_" + uuid.NewString()
	}
	identity := Identity{
		ID:       "user_" + uuid.NewString(),
		Name:     name,
		DeviceID: deviceID,
	}
	s.identities.Set(deviceID, identity)
	s.save()
	return identity
}

// Logout removes the stored identity for the device.
func (s *IdentityStore) Logout(deviceID string) {
	s.identities.Del(deviceID)
	s.save()
}

func (s *IdentityStore) load() {
	if s.path == "" {
		return
	}
	data, err := ioutil.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Error(err)
		}
		return
	}
	stored := make([]Identity, 0)
	if err := jsoniter.Unmarshal(data, &stored); err != nil {
		log.Error(err)
		return
	}
	for _, identity := range stored {
		s.identities.Set(identity.DeviceID, identity)
	}
}

func (s *IdentityStore) save() {
	if s.path == "" {
		return
	}
	stored := make([]Identity, 0)
	s.identities.Foreach(func(e *hashmap.Entry) {
		stored = append(stored, e.Value().(Identity))
	})
	if err := ioutil.WriteFile(s.path, json.Marshal(stored), 0644); err != nil {
		log.Error(err)
	}
}
