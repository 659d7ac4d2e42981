package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/selamlab/ethio-calendar-bot/internal/models"
)

// UserStore tracks the set of unique bot users.
type UserStore interface {
	// AddUser records a user. It reports whether the user was seen for the
	// first time.
	AddUser(ctx context.Context, userID int64, user models.User) (bool, error)
	// CountUsers returns the number of unique users recorded so far.
	CountUsers(ctx context.Context) (int, error)
}

// JSONStore keeps users in a single JSON file on disk. It is the fallback
// backend when no DATABASE_URL is configured; the file is not durable on
// ephemeral hosting.
type JSONStore struct {
	path string
	mu   sync.RWMutex
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// usersDocument is the on-disk shape: {"users": {"<id>": {"t":…,"u":…,"n":…}}}.
type usersDocument struct {
	Users map[string]models.User `json:"users"`
}

func (s *JSONStore) loadData() (map[string]models.User, error) {
	file, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]models.User{}, nil
		}
		return nil, err
	}
	defer file.Close()

	var doc struct {
		Users json.RawMessage `json:"users"`
	}
	if err := json.NewDecoder(file).Decode(&doc); err != nil {
		return nil, err
	}
	if len(doc.Users) == 0 {
		return map[string]models.User{}, nil
	}

	var users map[string]models.User
	if err := json.Unmarshal(doc.Users, &users); err == nil {
		return users, nil
	}

	// Oldest format: a bare array of user IDs. Converted on the next save;
	// first-seen is unknown for these, 0 marks "existed before tracking".
	var ids []int64
	if err := json.Unmarshal(doc.Users, &ids); err != nil {
		return nil, err
	}
	users = make(map[string]models.User, len(ids))
	for _, id := range ids {
		users[strconv.FormatInt(id, 10)] = models.User{}
	}
	return users, nil
}

func (s *JSONStore) saveData(users map[string]models.User) error {
	dir := filepath.Dir(s.path)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return err
		}
	}

	file, err := os.Create(s.path)
	if err != nil {
		return err
	}
	defer file.Close()

	return json.NewEncoder(file).Encode(usersDocument{Users: users})
}

func (s *JSONStore) AddUser(_ context.Context, userID int64, user models.User) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.loadData()
	if err != nil {
		return false, err
	}

	key := strconv.FormatInt(userID, 10)
	if existing, ok := users[key]; ok {
		// Known user: backfill name fields that arrived empty the first
		// time, keep the original first-seen timestamp.
		changed := false
		if existing.Username == "" && user.Username != "" {
			existing.Username = user.Username
			changed = true
		}
		if existing.FirstName == "" && user.FirstName != "" {
			existing.FirstName = user.FirstName
			changed = true
		}
		if changed {
			users[key] = existing
			if err := s.saveData(users); err != nil {
				return false, err
			}
		}
		return false, nil
	}

	users[key] = user
	if err := s.saveData(users); err != nil {
		return false, err
	}
	return true, nil
}

func (s *JSONStore) CountUsers(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users, err := s.loadData()
	if err != nil {
		return 0, err
	}
	return len(users), nil
}
