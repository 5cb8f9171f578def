package util

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ariebrainware/medi-help/config"
	cache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// Without Redis, sessions issued by this process are tracked in memory so a
// logout or id change still revokes them. Entries live as long as a token.
var (
	localSessions   = cache.New(SessionTTL, time.Hour)
	localSessionsMu sync.Mutex
)

func revokedKey(sessionID string) string {
	return "revoked:" + sessionID
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

func userSessionsKey(userID string) string {
	return "user_sessions:" + userID
}

// removeSessionScript drops one member and deletes the set once it is empty.
const removeSessionScript = `
	local removed = redis.call('SREM', KEYS[1], ARGV[1])
	if removed > 0 then
		if redis.call('SCARD', KEYS[1]) == 0 then
			redis.call('DEL', KEYS[1])
		end
	end
	return removed
`

// StoreSession records an issued session so it can be revoked before its
// token expires. The per-user set has no TTL; it is cleaned up explicitly.
func StoreSession(ctx context.Context, sessionID, userID, role string, ttl time.Duration) error {
	rdb := config.GetRedisClient()
	if rdb == nil {
		localSessionsMu.Lock()
		defer localSessionsMu.Unlock()
		var ids []string
		if v, ok := localSessions.Get(userSessionsKey(userID)); ok {
			ids = v.([]string)
		}
		localSessions.Set(userSessionsKey(userID), append(append([]string(nil), ids...), sessionID), ttl)
		return nil
	}
	if err := rdb.Set(ctx, sessionKey(sessionID), userID+":"+role, ttl).Err(); err != nil {
		return err
	}
	if err := rdb.SAdd(ctx, userSessionsKey(userID), sessionID).Err(); err != nil {
		return err
	}
	return rdb.Persist(ctx, userSessionsKey(userID)).Err()
}

// SessionActive reports whether the session has not been revoked. Without
// Redis a signed token is accepted unless this process revoked it.
func SessionActive(ctx context.Context, sessionID string) (bool, error) {
	rdb := config.GetRedisClient()
	if rdb == nil {
		_, revoked := localSessions.Get(revokedKey(sessionID))
		return !revoked, nil
	}
	n, err := rdb.Exists(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// RemoveSession revokes one session.
func RemoveSession(ctx context.Context, userID, sessionID string) error {
	rdb := config.GetRedisClient()
	if rdb == nil {
		localSessions.Set(revokedKey(sessionID), struct{}{}, cache.DefaultExpiration)
		return nil
	}
	if err := rdb.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return err
	}
	return rdb.Eval(ctx, removeSessionScript, []string{userSessionsKey(userID)}, sessionID).Err()
}

// InvalidateUserSessions revokes every session of userID, used when the
// user's id changes and old tokens must stop working.
func InvalidateUserSessions(ctx context.Context, userID string) error {
	rdb := config.GetRedisClient()
	if rdb == nil {
		localSessionsMu.Lock()
		defer localSessionsMu.Unlock()
		if v, ok := localSessions.Get(userSessionsKey(userID)); ok {
			for _, id := range v.([]string) {
				localSessions.Set(revokedKey(id), struct{}{}, cache.DefaultExpiration)
			}
		}
		localSessions.Delete(userSessionsKey(userID))
		return nil
	}
	members, err := rdb.SMembers(ctx, userSessionsKey(userID)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	for _, id := range members {
		_ = rdb.Del(ctx, sessionKey(id)).Err()
	}
	return rdb.Del(ctx, userSessionsKey(userID)).Err()
}
