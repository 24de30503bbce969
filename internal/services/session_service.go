package services

import (
	"encoding/json"
	"referralvip-backend/internal/database"
	"time"

	"github.com/go-redis/redis/v8"
)

// Session is the transport's multi-step conversation state for one user:
// which command is in flight, which step it is on, and the partial input
// collected so far. Starting a new command overwrites the old session, which
// is how "cancel on new command" works.
type Session struct {
	Command string            `json:"command"`
	Step    string            `json:"step"`
	Data    map[string]string `json:"data,omitempty"`
}

const sessionPrefix = "session:"

// sessionTTL bounds how long an abandoned multi-step flow lingers.
const sessionTTL = 30 * time.Minute

func SetSession(telegramID string, session Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	key := sessionPrefix + telegramID
	return database.RedisClient.Set(database.Ctx, key, data, sessionTTL).Err()
}

// GetSession returns the active session, or nil when the user has none.
func GetSession(telegramID string) (*Session, error) {
	key := sessionPrefix + telegramID
	val, err := database.RedisClient.Get(database.Ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var session Session
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func ClearSession(telegramID string) error {
	key := sessionPrefix + telegramID
	return database.RedisClient.Del(database.Ctx, key).Err()
}
