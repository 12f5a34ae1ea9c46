package clickhouse

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
)

type queryMatcher struct {
	fragment string
}

func (m queryMatcher) Matches(x any) bool {
	q, ok := x.(string)
	return ok && strings.Contains(q, m.fragment)
}

func (m queryMatcher) String() string {
	return fmt.Sprintf("query containing %q", m.fragment)
}

func queryWith(fragment string) gomock.Matcher {
	return queryMatcher{fragment: fragment}
}

func expectObserve(t *testing.T, m *MockMetrics, operation string, wantErr error) *gomock.Call {
	t.Helper()
	return m.EXPECT().
		Observe(operation, gomock.Any(), gomock.AssignableToTypeOf(time.Time{})).
		Do(func(_ string, err error, _ time.Time) {
			if wantErr == nil && err != nil {
				t.Errorf("unexpected error propagated to metrics: %v", err)
			}
			if wantErr != nil && !errors.Is(err, wantErr) {
				t.Errorf("metrics error = %v, want %v", err, wantErr)
			}
		})
}

type mocks struct {
	conn    *MockConn
	rows    *MockRows
	metrics *MockMetrics
}

func newMocks(t *testing.T) (*Repository, mocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := mocks{
		conn:    NewMockConn(ctrl),
		rows:    NewMockRows(ctrl),
		metrics: NewMockMetrics(ctrl),
	}
	return &Repository{conn: m.conn, metrics: m.metrics}, m
}
