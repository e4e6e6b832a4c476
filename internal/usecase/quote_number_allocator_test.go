package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	mock_interfaces "staffdesk/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestQuoteNumberAllocator_SeedsFromStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	repo.EXPECT().MaxQuoteNumber(gomock.Any()).Return(int64(41), nil)

	alloc := NewQuoteNumberAllocator(context.Background(), repo, zap.NewNop())
	require.Equal(t, int64(42), alloc.Next())
	require.Equal(t, int64(43), alloc.Next())
}

func TestQuoteNumberAllocator_EmptyStoreStartsAtOne(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	repo.EXPECT().MaxQuoteNumber(gomock.Any()).Return(int64(0), nil)

	alloc := NewQuoteNumberAllocator(context.Background(), repo, zap.NewNop())
	require.Equal(t, int64(1), alloc.Next())
}

func TestQuoteNumberAllocator_DegradedModeStartsAtOne(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	repo.EXPECT().MaxQuoteNumber(gomock.Any()).Return(int64(0), errors.New("dynamodb down"))

	alloc := NewQuoteNumberAllocator(context.Background(), repo, zap.NewNop())
	require.Equal(t, int64(1), alloc.Next())
}

func TestQuoteNumberAllocator_ConcurrentNextIsUnique(t *testing.T) {
	alloc := NewQuoteNumberAllocator(context.Background(), nil, zap.NewNop())

	const n = 200
	results := make([]int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = alloc.Next()
		}(i)
	}
	wg.Wait()

	seen := make(map[int64]bool, n)
	for _, v := range results {
		require.False(t, seen[v], "duplicate quote number %d", v)
		seen[v] = true
	}
}
