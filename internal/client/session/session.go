// Package session owns the client's authentication state. It is the only
// writer of the persisted token and user record, and it tells subscribers
// (the REPL prompt, the notification poller) when the state flips.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/emsdesk/internal/client/models"
	"github.com/dmitrijs2005/emsdesk/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/emsdesk/internal/dbx"
	"github.com/dmitrijs2005/emsdesk/internal/logging"
	"github.com/golang-jwt/jwt/v5"
)

type State int

const (
	StateAnonymous State = iota
	StateAuthenticated
)

func (s State) String() string {
	if s == StateAuthenticated {
		return "AUTHENTICATED"
	}
	return "ANONYMOUS"
}

const (
	keyToken = "token"
	keyUser  = "user"
)

var (
	// ErrCorruptSession means a non-ROOT user record carries no organization.
	// The stored session has already been cleared when it is returned.
	ErrCorruptSession = errors.New("session is missing its organization, please log in again")
	ErrNoToken        = errors.New("login response carried no token")
)

type Store struct {
	mu      sync.RWMutex
	db      *sql.DB
	repo    metadata.Repository
	log     logging.Logger
	now     func() time.Time
	state   State
	current models.Session
	subs    map[int]chan State
	nextSub int
}

func NewStore(db *sql.DB, log logging.Logger) *Store {
	return &Store{
		db:   db,
		repo: metadata.NewSQLiteRepository(db),
		log:  log,
		now:  time.Now,
		subs: make(map[int]chan State),
	}
}

// Init restores a persisted session. Expired tokens are dropped quietly; a
// corrupt user record is dropped and reported as ErrCorruptSession.
func (s *Store) Init(ctx context.Context) error {
	token, err := s.repo.Get(ctx, keyToken)
	if err != nil {
		return err
	}
	if len(token) == 0 {
		return nil
	}

	raw, err := s.repo.Get(ctx, keyUser)
	if err != nil {
		return err
	}

	var user models.User
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &user); err != nil {
			s.log.Warn(ctx, "discarding unreadable stored user", "error", err)
			return s.clear(ctx)
		}
	}

	if tokenExpired(string(token), s.now()) {
		s.log.Info(ctx, "stored token has expired")
		return s.clear(ctx)
	}

	if !consistent(user) {
		if err := s.clear(ctx); err != nil {
			return err
		}
		return ErrCorruptSession
	}

	s.set(models.Session{Token: string(token), User: user}, StateAuthenticated)
	s.log.Info(ctx, "session restored", "user", user.Username)
	return nil
}

// Begin records a fresh login response and persists it.
func (s *Store) Begin(ctx context.Context, sess models.Session) error {
	if sess.Token == "" {
		return ErrNoToken
	}
	if !consistent(sess.User) {
		if err := s.clear(ctx); err != nil {
			return err
		}
		return ErrCorruptSession
	}

	user, err := json.Marshal(sess.User)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, keyToken, []byte(sess.Token)); err != nil {
			return err
		}
		return repo.Set(ctx, keyUser, user)
	})
	if err != nil {
		return err
	}

	s.set(sess, StateAuthenticated)
	s.log.Info(ctx, "logged in", "user", sess.User.Username)
	return nil
}

// Logout clears the session at the user's request.
func (s *Store) Logout(ctx context.Context) error {
	s.log.Info(ctx, "logged out")
	return s.clear(ctx)
}

// Expire clears the session after the backend rejected the token.
func (s *Store) Expire(ctx context.Context) error {
	if s.State() == StateAnonymous {
		return nil
	}
	s.log.Warn(ctx, "session expired, credentials cleared")
	return s.clear(ctx)
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Store) IsLoggedIn() bool {
	return s.State() == StateAuthenticated
}

// Current returns the active session; ok is false when anonymous.
func (s *Store) Current() (models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, s.state == StateAuthenticated
}

// Subscribe delivers every subsequent state change. Slow readers miss
// intermediate values but always see the latest one. Call cancel to stop.
func (s *Store) Subscribe() (<-chan State, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan State, 1)
	s.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

func (s *Store) clear(ctx context.Context) error {
	err := s.repo.Delete(ctx, keyToken, keyUser)
	s.set(models.Session{}, StateAnonymous)
	return err
}

func (s *Store) set(sess models.Session, st State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := s.state != st
	s.current = sess
	s.state = st
	if !changed {
		return
	}
	for _, ch := range s.subs {
		select {
		case <-ch:
		default:
		}
		ch <- st
	}
}

func consistent(u models.User) bool {
	return u.IsRoot() || u.OrganizationUUID != ""
}

// tokenExpired reads the exp claim without verifying the signature; the
// backend remains the authority. Opaque or exp-less tokens never expire here.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !exp.After(now)
}
