package storage

import (
	"sync"
	"time"

	"github.com/SanyamDa/DeadelinesBot/internal/models"
)

// UserRegistry tracks users the bot has talked to. In-memory only; losing
// it on restart costs nothing but a repeated "new user" log line.
type UserRegistry struct {
	mu    sync.RWMutex
	users map[string]*models.User
}

func NewUserRegistry() *UserRegistry {
	return &UserRegistry{users: make(map[string]*models.User)}
}

// Save records a user, stamping registration and activity times.
func (r *UserRegistry) Save(user *models.User) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.RegistrationDate.IsZero() {
		user.RegistrationDate = time.Now()
	}
	user.LastActivity = time.Now()
	r.users[user.ID] = user
}

// Get returns the user with the given ID, or nil if never seen.
func (r *UserRegistry) Get(id string) *models.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.users[id]
}

// Touch bumps the user's last-activity time.
func (r *UserRegistry) Touch(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user, exists := r.users[id]; exists {
		user.LastActivity = time.Now()
	}
}
