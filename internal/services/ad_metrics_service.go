package services

import (
	"strconv"
	"sync"

	"digitalstore/internal/domain"
	applog "digitalstore/internal/log"
	"digitalstore/internal/repos"
)

func impressionsKey(adID int) string { return "ad_impressions_" + strconv.Itoa(adID) }
func clicksKey(adID int) string      { return "ad_clicks_" + strconv.Itoa(adID) }

// AdMetricsService counts banner impressions and clicks per ad. Counters are
// kept under two KV keys per ad and only ever grow while the ad exists.
// Increments happen under one lock, so concurrent requests never lose a count.
type AdMetricsService struct {
	mu    sync.Mutex
	kv    repos.KV
	cache map[int]domain.AdMetrics
}

func NewAdMetricsService(kv repos.KV) *AdMetricsService {
	return &AdMetricsService{kv: kv, cache: map[int]domain.AdMetrics{}}
}

func (s *AdMetricsService) loadCounter(key string) int {
	var n int
	if !load(s.kv, key, &n) || n < 0 {
		return 0
	}
	return n
}

// metricsLocked returns cached counters, reading them from the store once.
func (s *AdMetricsService) metricsLocked(adID int) domain.AdMetrics {
	if m, ok := s.cache[adID]; ok {
		return m
	}
	m := domain.AdMetrics{
		Impressions: s.loadCounter(impressionsKey(adID)),
		Clicks:      s.loadCounter(clicksKey(adID)),
	}
	s.cache[adID] = m
	return m
}

func (s *AdMetricsService) Metrics(adID int) domain.AdMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.metricsLocked(adID)
}

func (s *AdMetricsService) RecordImpression(adID int) domain.AdMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := s.metricsLocked(adID)
	m.Impressions++
	s.cache[adID] = m
	save(s.kv, impressionsKey(adID), m.Impressions)
	return m
}

// RecordClick counts a click and returns the link the view should open.
func (s *AdMetricsService) RecordClick(ad domain.Ad) domain.ClickResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := s.metricsLocked(ad.ID)
	m.Clicks++
	s.cache[ad.ID] = m
	save(s.kv, clicksKey(ad.ID), m.Clicks)
	return domain.ClickResult{OpenURL: ad.Link, Metrics: m}
}

// Reset forgets an ad's counters so a later ad reusing the id starts at zero.
func (s *AdMetricsService) Reset(adID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.cache, adID)
	for _, key := range []string{impressionsKey(adID), clicksKey(adID)} {
		if err := s.kv.Delete(key); err != nil {
			applog.Error(nil, "store.delete.fail", err, map[string]any{"key": key})
		}
	}
}
