package sessions

import (
	"encoding/gob"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const (
	injectSessionKey = "session"
	sessionDataKey   = "data"
)

type SessionData struct {
	id            string    // session id
	ClientID      string    // stable across resets, keys pending toasts
	IP            string    // client ip address
	UserID        string    // backend user id
	Email         string    // signed-in email
	AccessToken   string    // backend bearer token
	TokenExpiry   time.Time // access token exp claim
	CSRFToken     string    // csrf token
	CSRFExpiresAt time.Time // csrf token expiry
	AuthFormID    string    // open auth modal
	LastSeen      time.Time // last request time
	LoginTime     time.Time // last login time
}

func (s SessionData) ID() string {
	return s.id
}

func (s *SessionData) IsLoggedIn() bool {
	if s.UserID == "" {
		return false
	}
	return s.TokenExpiry.IsZero() || time.Now().Before(s.TokenExpiry)
}

func init() {
	gob.Register(SessionData{})
}

func Get(ctx *fiber.Ctx) SessionData {
	session := ctx.Locals(injectSessionKey).(*session.Session)
	data, _ := session.Get(sessionDataKey).(SessionData)
	data.id = session.ID()
	return data
}

func Set(ctx *fiber.Ctx, data SessionData) {
	session := ctx.Locals(injectSessionKey).(*session.Session)
	session.Set(sessionDataKey, data)
}

// Reset moves the session to a fresh id and stores data under it.
func Reset(ctx *fiber.Ctx, data *SessionData) error {
	sess := ctx.Locals(injectSessionKey).(*session.Session)
	err := sess.Reset()
	if err != nil {
		return err
	}
	data.id = sess.ID()
	sess.Set(sessionDataKey, *data)
	return nil
}

func SessionMiddleware(store *session.Store) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		sess, err := store.Get(ctx)
		if err != nil {
			return err
		}

		ctx.Locals(injectSessionKey, sess)
		if err := ctx.Next(); err != nil {
			return err
		}

		data, ok := sess.Get(sessionDataKey).(SessionData)
		if ok {
			data.LastSeen = time.Now()
			if data.IP == "" {
				data.IP = ctx.IP()
			}
			sess.Set(sessionDataKey, data)
			return sess.Save()
		}

		return nil
	}
}
