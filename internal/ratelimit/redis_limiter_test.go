package ratelimit

import (
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/suite"
)

type LimiterTestSuite struct {
	suite.Suite
	mock    redismock.ClientMock
	limiter *RedisLimiter
	key     string
}

func TestLimiterSuite(t *testing.T) {
	suite.Run(t, new(LimiterTestSuite))
}

func (s *LimiterTestSuite) SetupTest() {
	db, mock := redismock.NewClientMock()
	s.mock = mock
	s.limiter = NewRedisLimiter(db, 2, time.Minute)

	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s.limiter.now = func() time.Time { return fixed }
	s.key = s.limiter.windowKey("wager:1")
}

func (s *LimiterTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *LimiterTestSuite) TestAllow_FirstCallOpensWindow() {
	s.mock.ExpectIncr(s.key).SetVal(1)
	s.mock.ExpectExpire(s.key, time.Minute).SetVal(true)

	allowed, err := s.limiter.Allow(s.T().Context(), "wager:1")
	s.Require().NoError(err)
	s.True(allowed)
}

func (s *LimiterTestSuite) TestAllow_WithinLimit() {
	s.mock.ExpectIncr(s.key).SetVal(2)

	allowed, err := s.limiter.Allow(s.T().Context(), "wager:1")
	s.Require().NoError(err)
	s.True(allowed)
}

func (s *LimiterTestSuite) TestAllow_OverLimit() {
	s.mock.ExpectIncr(s.key).SetVal(3)

	allowed, err := s.limiter.Allow(s.T().Context(), "wager:1")
	s.Require().NoError(err)
	s.False(allowed)
}

func (s *LimiterTestSuite) TestAllow_RedisError() {
	s.mock.ExpectIncr(s.key).SetErr(errors.New("connection refused"))

	allowed, err := s.limiter.Allow(s.T().Context(), "wager:1")
	s.Require().Error(err)
	s.False(allowed)
}

func (s *LimiterTestSuite) TestWindowKey() {
	s.Equal("ratelimit:wager:1:29455384", s.key)

	next := s.limiter.now().Add(time.Minute)
	s.limiter.now = func() time.Time { return next }
	s.NotEqual(s.key, s.limiter.windowKey("wager:1"))
}
