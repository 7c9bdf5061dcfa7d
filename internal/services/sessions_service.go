package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/ndanilenko/taskboard/internal/models"
)

const (
	sessionKeyPrefix = "session:"
	flashKeyPrefix   = "flash:"

	sessionFieldUserID = "user_id"
	sessionFieldCSRF   = "csrf_token"
)

type sessionServiceImpl struct {
	logger zerolog.Logger
	rdb    *redis.Client
	ttl    time.Duration
}

func NewSessionService(
	logger zerolog.Logger,
	rdb *redis.Client,
	ttl time.Duration,
) SessionService {
	return &sessionServiceImpl{
		logger: logger,
		rdb:    rdb,
		ttl:    ttl,
	}
}

func (s *sessionServiceImpl) Create(ctx context.Context, userID string) (*models.Session, error) {
	session := models.Session{
		UserID: userID,
	}

	sessionUUID, err := uuid.NewV7()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to generate session uuid")
		return nil, err
	}
	session.ID = sessionUUID.String()

	csrfToken, err := generateCSRFToken()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to generate csrf token")
		return nil, err
	}
	session.CSRFToken = csrfToken

	key := sessionKeyPrefix + session.ID
	_, err = s.rdb.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key,
			sessionFieldUserID, session.UserID,
			sessionFieldCSRF, session.CSRFToken)
		pipe.Expire(ctx, key, s.ttl)
		return nil
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to store session")
		return nil, err
	}
	s.logger.Debug().
		Str("session_id", session.ID).
		Msg("stored session")

	s.logger.Info().
		Str("session_id", session.ID).
		Str("user_id", session.UserID).
		Msg("created session")
	return &session, nil
}

func (s *sessionServiceImpl) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	fields, err := s.rdb.HGetAll(ctx, sessionKeyPrefix+sessionID).Result()
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("session_id", sessionID).
			Msg("failed to fetch session")
		return nil, err
	}
	if len(fields) == 0 {
		// Expired sessions vanish with their key, so absence
		// covers both unknown and timed-out tokens.
		return nil, ErrSessionNotFound
	}
	s.logger.Debug().
		Str("session_id", sessionID).
		Msg("fetched session")

	return &models.Session{
		ID:        sessionID,
		UserID:    fields[sessionFieldUserID],
		CSRFToken: fields[sessionFieldCSRF],
	}, nil
}

func (s *sessionServiceImpl) Delete(ctx context.Context, sessionID string) error {
	err := s.rdb.Del(ctx,
		sessionKeyPrefix+sessionID,
		flashKeyPrefix+sessionID,
	).Err()
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("session_id", sessionID).
			Msg("failed to delete session")
		return err
	}

	s.logger.Info().
		Str("session_id", sessionID).
		Msg("deleted session")
	return nil
}

func (s *sessionServiceImpl) PushFlash(ctx context.Context, sessionID, level, message string) error {
	flash, err := json.Marshal(models.Flash{
		Level:   level,
		Message: message,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal flash: %w", err)
	}

	key := flashKeyPrefix + sessionID
	_, err = s.rdb.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, flash)
		pipe.Expire(ctx, key, s.ttl)
		return nil
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("session_id", sessionID).
			Msg("failed to push flash")
		return err
	}
	s.logger.Debug().
		Str("session_id", sessionID).
		Str("level", level).
		Msg("pushed flash")
	return nil
}

func (s *sessionServiceImpl) PopFlashes(ctx context.Context, sessionID string) ([]models.Flash, error) {
	key := flashKeyPrefix + sessionID

	var entries *redis.StringSliceCmd
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		entries = pipe.LRange(ctx, key, 0, -1)
		pipe.Del(ctx, key)
		return nil
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("session_id", sessionID).
			Msg("failed to pop flashes")
		return nil, err
	}

	values := entries.Val()
	if len(values) == 0 {
		return nil, nil
	}

	flashes := make([]models.Flash, 0, len(values))
	for _, value := range values {
		var flash models.Flash
		err = json.Unmarshal([]byte(value), &flash)
		if err != nil {
			s.logger.Error().
				Err(err).
				Str("session_id", sessionID).
				Msg("failed to unmarshal flash")
			continue
		}
		flashes = append(flashes, flash)
	}
	s.logger.Debug().
		Str("session_id", sessionID).
		Int("count", len(flashes)).
		Msg("popped flashes")
	return flashes, nil
}

func generateCSRFToken() (string, error) {
	const length = 32
	bytes := make([]byte, length)
	_, err := rand.Read(bytes)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}
