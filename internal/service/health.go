package service

import (
	"context"
	"sync/atomic"

	client "talentsync/internal/database/client"
)

type HealthService struct {
	live  atomic.Bool
	ready atomic.Bool
	mongo *client.MongoClient
}

func NewHealthService(mongo *client.MongoClient) *HealthService {
	s := &HealthService{mongo: mongo}
	s.live.Store(true)
	s.ready.Store(false) // 啟動完成後再打開
	return s
}

func (s *HealthService) SetReady(v bool) {
	s.ready.Store(v)
}

func (s *HealthService) IsLive() bool {
	return s.live.Load()
}

// IsReady 啟動完成且 MongoDB 可連線
func (s *HealthService) IsReady(ctx context.Context) bool {
	if !s.ready.Load() {
		return false
	}
	if s.mongo == nil || s.mongo.Client() == nil {
		return true
	}
	return s.mongo.Ping(ctx) == nil
}
