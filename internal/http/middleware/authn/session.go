package authn

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/go-x/slogx"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
)

var ErrSessionNotFound = errors.New("session not found")

const (
	sessionKeyUser = "user"
	sessionKeyNext = "next"
)

// Sessions persists the authenticated identity in a cookie session shared
// by every login method.
type Sessions struct {
	store sessions.Store
	name  string
}

func (s *Sessions) StoreUser(w http.ResponseWriter, r *http.Request, user *User) error {
	sess, err := s.getSession(r)
	if err != nil {
		return errors.WithStack(err)
	}

	sess.Values[sessionKeyUser] = user

	if err := sess.Save(r, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (s *Sessions) RetrieveUser(r *http.Request) (*User, error) {
	sess, err := s.getSession(r)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	user, ok := sess.Values[sessionKeyUser].(*User)
	if !ok || user == nil {
		return nil, errors.WithStack(ErrSessionNotFound)
	}

	return user, nil
}

// StoreNext remembers where to send the user once an external login flow
// completes.
func (s *Sessions) StoreNext(w http.ResponseWriter, r *http.Request, next string) error {
	sess, err := s.getSession(r)
	if err != nil {
		return errors.WithStack(err)
	}

	sess.Values[sessionKeyNext] = next

	if err := sess.Save(r, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (s *Sessions) PopNext(w http.ResponseWriter, r *http.Request) (string, error) {
	sess, err := s.getSession(r)
	if err != nil {
		return "", errors.WithStack(err)
	}

	next, _ := sess.Values[sessionKeyNext].(string)
	if next == "" {
		return "", nil
	}

	delete(sess.Values, sessionKeyNext)

	if err := sess.Save(r, w); err != nil {
		return "", errors.WithStack(err)
	}

	return next, nil
}

func (s *Sessions) Clear(w http.ResponseWriter, r *http.Request) error {
	sess, err := s.getSession(r)
	if err != nil {
		return errors.WithStack(err)
	}

	if sess.IsNew {
		return errors.WithStack(ErrSessionNotFound)
	}

	sess.Values = map[any]any{}
	sess.Options.MaxAge = -1

	if err := sess.Save(r, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// getSession ignores cookies that cannot be decoded anymore (rotated keys for
// example) and starts a fresh session instead.
func (s *Sessions) getSession(r *http.Request) (*sessions.Session, error) {
	sess, err := s.store.Get(r, s.name)
	if err != nil {
		if sess == nil {
			return nil, errors.WithStack(err)
		}

		slog.DebugContext(r.Context(), "discarding invalid session cookie", slogx.Error(err))
	}

	return sess, nil
}

// Authenticate implements [Authenticator].
func (s *Sessions) Authenticate(w http.ResponseWriter, r *http.Request) (*User, error) {
	user, err := s.RetrieveUser(r)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, nil
		}

		return nil, errors.WithStack(err)
	}

	return user, nil
}

func NewSessions(store sessions.Store, name string) *Sessions {
	return &Sessions{
		store: store,
		name:  name,
	}
}

var _ Authenticator = &Sessions{}
