package internal

import (
	"context"
	"fmt"
)

// ScanService builds loaded branch collections
type ScanService struct {
	clientFor func(scope Scope) (GitClient, error)
}

func NewScanService(clientFor func(scope Scope) (GitClient, error)) *ScanService {
	return &ScanService{clientFor: clientFor}
}

// Scan compares every branch in scope against upstream and returns the
// resulting collection, already loaded.
func (s *ScanService) Scan(ctx context.Context, scope Scope, upstream string, ignore *IgnoreMatcher) (*Collection, error) {
	client, err := s.clientFor(scope)
	if err != nil {
		return nil, fmt.Errorf("get git client: %w", err)
	}

	collection := NewCollection(client, scope, upstream, WithIgnoreMatcher(ignore))
	if err := collection.Load(ctx); err != nil {
		return nil, err
	}

	return collection, nil
}

// DescribeService resolves commit identifiers to log summaries
type DescribeService struct {
	client GitClient
	cache  map[string]string
}

func NewDescribeService(client GitClient) *DescribeService {
	return &DescribeService{
		client: client,
		cache:  make(map[string]string),
	}
}

// Describe returns the one-line log summary for a commit identifier. The
// result is cached, so repeated lookups of the same identifier cost one
// query.
func (s *DescribeService) Describe(ctx context.Context, id string) (string, error) {
	if summary, ok := s.cache[id]; ok {
		return summary, nil
	}

	summary, err := s.client.CommitSummary(ctx, id)
	if err != nil {
		return "", fmt.Errorf("describe commit %s: %w", id, err)
	}

	s.cache[id] = summary
	return summary, nil
}
