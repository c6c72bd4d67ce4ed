package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/tictactoe-client/internal/model"
)

type StoreSuite struct {
	suite.Suite
	mini   *miniredis.Miniredis
	client *redis.Client
	store  *Store
	ctx    context.Context
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.Profile = "alice-laptop"
	cfg.TTL = time.Hour

	s.store = NewWithClient(s.client, cfg)
	s.ctx = context.Background()
}

func (s *StoreSuite) TearDownTest() {
	if s.store != nil {
		_ = s.store.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StoreSuite) TestGetMissing() {
	_, err := s.store.Get(s.ctx, model.GameKeyPreference)
	s.ErrorIs(err, model.ErrPreferenceNotFound)
}

func (s *StoreSuite) TestSetAndGet() {
	s.Require().NoError(s.store.Set(s.ctx, model.GameKeyPreference, "abc123"))

	value, err := s.store.Get(s.ctx, model.GameKeyPreference)
	s.Require().NoError(err)
	s.Equal("abc123", value)
	s.Equal("abc123", s.mini.HGet("tttclient:prefs:alice-laptop", model.GameKeyPreference))
}

func (s *StoreSuite) TestSetRefreshesTTL() {
	s.Require().NoError(s.store.Set(s.ctx, model.GameKeyPreference, "abc123"))

	s.Equal(time.Hour, s.mini.TTL(prefsKey("alice-laptop")))
}

func (s *StoreSuite) TestZeroTTLKeepsForever() {
	cfg := DefaultConfig()
	cfg.Profile = "forever"
	cfg.TTL = 0
	store := NewWithClient(s.client, cfg)

	s.Require().NoError(store.Set(s.ctx, model.GameKeyPreference, "abc123"))
	s.Equal(time.Duration(0), s.mini.TTL(prefsKey("forever")))
}

func (s *StoreSuite) TestProfilesAreIsolated() {
	cfg := DefaultConfig()
	cfg.Profile = "bob-desktop"
	other := NewWithClient(s.client, cfg)

	s.Require().NoError(s.store.Set(s.ctx, model.GameKeyPreference, "abc123"))

	_, err := other.Get(s.ctx, model.GameKeyPreference)
	s.ErrorIs(err, model.ErrPreferenceNotFound)
}

func (s *StoreSuite) TestExternalWriteIsObserved() {
	s.mini.HSet(prefsKey("alice-laptop"), model.GameKeyPreference, "written-elsewhere")

	value, err := s.store.Get(s.ctx, model.GameKeyPreference)
	s.Require().NoError(err)
	s.Equal("written-elsewhere", value)
}

func (s *StoreSuite) TestNewRejectsBadURL() {
	cfg := DefaultConfig()
	cfg.URL = "not-a-url"

	_, err := New(cfg)
	s.Error(err)
}

func (s *StoreSuite) TestNewConnects() {
	cfg := DefaultConfig()
	cfg.URL = "redis://" + s.mini.Addr()

	store, err := New(cfg)
	s.Require().NoError(err)
	s.NoError(store.Close())
}
