package state

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/craftroots/storefront/internal/config"
	"github.com/craftroots/storefront/internal/model"
	"github.com/craftroots/storefront/internal/storage"
)

// Auth owns the session user and the mock registered-account set. Login and
// register sleep a configured latency to mimic a real auth backend; domain
// failures (bad credentials, duplicate email) are boolean results, never
// errors.
type Auth struct {
	mu        sync.Mutex
	user      *model.User
	isLoading bool
	bridge    *storage.Bridge
	log       *slog.Logger
	latency   time.Duration
	avatar    string
	now       func() time.Time
	subs      subscribers[model.AuthState]
}

// NewAuth builds the container and restores a persisted session if one
// parses. Restore is trust-on-read: credentials are not re-validated.
func NewAuth(bridge *storage.Bridge, cfg config.AuthConfig, log *slog.Logger) *Auth {
	a := &Auth{
		bridge:  bridge,
		log:     log,
		latency: cfg.SimulatedLatency,
		avatar:  cfg.DefaultAvatar,
		now:     time.Now,
	}
	var user model.User
	if bridge.Read(model.KeyAuthUser, &user) {
		a.user = &user
		log.Info("session restored", "user_id", user.ID)
	}
	return a
}

// Subscribe registers fn to receive a state snapshot after every committed
// transition. The returned function cancels the subscription.
func (a *Auth) Subscribe(fn func(model.AuthState)) func() {
	return a.subs.add(fn)
}

// State returns a snapshot of the current auth state.
func (a *Auth) State() model.AuthState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.snapshot()
}

// Login matches email and password against the registered accounts. On
// success the public user becomes the persisted session and true is
// returned; on no match the state goes anonymous and false is returned.
func (a *Auth) Login(ctx context.Context, email, password string) bool {
	a.setLoading()
	if !a.simulateRoundTrip(ctx) {
		return a.fail("login cancelled", "email", email)
	}

	a.mu.Lock()
	creds := a.credentials()

	// Emails compare as stored: the lookup is deliberately case-sensitive.
	for _, cred := range creds {
		if cred.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)) != nil {
			continue
		}
		user := cred.User
		a.user = &user
		a.isLoading = false
		a.bridge.Write(model.KeyAuthUser, user)
		snap := a.snapshot()
		a.mu.Unlock()

		a.subs.notify(snap)
		a.log.Info("user logged in", "user_id", user.ID)
		return true
	}
	a.mu.Unlock()
	return a.fail("login rejected", "email", email)
}

// Register creates a new account and immediately logs it in. A duplicate
// exact email fails without touching the registered set.
func (a *Auth) Register(ctx context.Context, name, email, password string) bool {
	a.setLoading()
	if !a.simulateRoundTrip(ctx) {
		return a.fail("register cancelled", "email", email)
	}

	a.mu.Lock()
	creds := a.credentials()
	for _, cred := range creds {
		if cred.Email == email {
			a.mu.Unlock()
			return a.fail("email already registered", "email", email)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		a.mu.Unlock()
		return a.fail("hash password", "error", err)
	}

	user := model.User{
		ID:         uuid.NewString(),
		Name:       name,
		Email:      email,
		Avatar:     a.avatar,
		JoinedDate: a.now().Format("January 2006"),
	}
	creds = append(creds, model.Credential{User: user, PasswordHash: string(hash)})
	a.bridge.Write(model.KeyRegisteredUsers, creds)

	a.user = &user
	a.isLoading = false
	a.bridge.Write(model.KeyAuthUser, user)
	snap := a.snapshot()
	a.mu.Unlock()

	a.subs.notify(snap)
	a.log.Info("user registered", "user_id", user.ID)
	return true
}

// Logout clears the persisted session. The registered account survives.
func (a *Auth) Logout() {
	a.mu.Lock()
	a.user = nil
	a.isLoading = false
	a.bridge.Remove(model.KeyAuthUser)
	snap := a.snapshot()
	a.mu.Unlock()

	a.subs.notify(snap)
}

// credentials reads the registered set. Caller holds the lock.
func (a *Auth) credentials() []model.Credential {
	var creds []model.Credential
	a.bridge.Read(model.KeyRegisteredUsers, &creds)
	return creds
}

func (a *Auth) setLoading() {
	a.mu.Lock()
	a.isLoading = true
	snap := a.snapshot()
	a.mu.Unlock()

	a.subs.notify(snap)
}

func (a *Auth) simulateRoundTrip(ctx context.Context) bool {
	if a.latency <= 0 {
		return true
	}
	select {
	case <-time.After(a.latency):
		return true
	case <-ctx.Done():
		return false
	}
}

// fail transitions to anonymous and returns false.
func (a *Auth) fail(msg string, args ...any) bool {
	a.mu.Lock()
	a.user = nil
	a.isLoading = false
	snap := a.snapshot()
	a.mu.Unlock()

	a.subs.notify(snap)
	a.log.Info(msg, args...)
	return false
}

// snapshot builds the broadcast state. Caller holds the lock.
func (a *Auth) snapshot() model.AuthState {
	var user *model.User
	if a.user != nil {
		u := *a.user
		user = &u
	}
	return model.AuthState{
		User:            user,
		IsLoading:       a.isLoading,
		IsAuthenticated: a.user != nil,
	}
}
