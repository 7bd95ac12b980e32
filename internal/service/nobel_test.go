package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"nobelproxy/internal/logging"
	"nobelproxy/internal/nobelapi"
	apiMocks "nobelproxy/internal/nobelapi/mocks"
)

func setup() (*apiMocks.MockAPI, *bytes.Buffer, NobelService) {
	api := new(apiMocks.MockAPI)
	var buf bytes.Buffer
	return api, &buf, NewNobelService(api, logging.New(&buf, time.UTC))
}

func lastLog(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestFetchPrizeList(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		api, buf, svc := setup()
		prizes := json.RawMessage(`[{"awardYear":"1901"},{"awardYear":"1902"}]`)
		api.On("NobelPrizes", mock.Anything).Return(prizes, nil).Once()

		got, err := svc.FetchPrizeList(ctx)

		require.NoError(t, err)
		assert.Equal(t, prizes, got)
		assert.Zero(t, buf.Len())
		api.AssertExpectations(t)
	})

	t.Run("upstream error is logged and kept", func(t *testing.T) {
		api, buf, svc := setup()
		upstream := &nobelapi.UpstreamError{Endpoint: "nobelPrizes", StatusCode: http.StatusNotFound}
		api.On("NobelPrizes", mock.Anything).Return(nil, upstream).Once()

		_, err := svc.FetchPrizeList(ctx)

		require.Error(t, err)
		var ue *nobelapi.UpstreamError
		assert.True(t, errors.As(err, &ue))

		entry := lastLog(t, buf)
		assert.Equal(t, "ERROR", entry["level"])
		assert.Equal(t, KindUpstreamError, entry["kind"])
		assert.Contains(t, entry["error"], "404")
	})

	t.Run("fetch failure", func(t *testing.T) {
		api, buf, svc := setup()
		api.On("NobelPrizes", mock.Anything).Return(nil, fmt.Errorf("%w: dial tcp: refused", nobelapi.ErrFetchFailure)).Once()

		_, err := svc.FetchPrizeList(ctx)

		assert.ErrorIs(t, err, nobelapi.ErrFetchFailure)
		assert.Equal(t, KindFetchFailure, lastLog(t, buf)["kind"])
	})
}

func TestFetchLaureateByID(t *testing.T) {
	ctx := context.Background()

	t.Run("numeric id reaches upstream once", func(t *testing.T) {
		api, _, svc := setup()
		body := json.RawMessage(`[{"id":"12"}]`)
		api.On("Laureate", mock.Anything, "12").Return(body, nil).Once()

		got, err := svc.FetchLaureateByID(ctx, "12")

		require.NoError(t, err)
		assert.Equal(t, body, got)
		api.AssertNumberOfCalls(t, "Laureate", 1)
	})

	for _, id := range []string{"", "abc", "12abc", "NaN", "Inf", "1 2", "../nobelPrizes"} {
		t.Run(fmt.Sprintf("invalid id %q never reaches upstream", id), func(t *testing.T) {
			api, buf, svc := setup()

			_, err := svc.FetchLaureateByID(ctx, id)

			assert.ErrorIs(t, err, ErrInvalidInput)
			api.AssertNotCalled(t, "Laureate", mock.Anything, mock.Anything)

			entry := lastLog(t, buf)
			assert.Equal(t, KindInvalidInput, entry["kind"])
			assert.Equal(t, id, entry["laureate_id"])
		})
	}

	t.Run("upstream failure logs id", func(t *testing.T) {
		api, buf, svc := setup()
		api.On("Laureate", mock.Anything, "99999").
			Return(nil, &nobelapi.UpstreamError{Endpoint: "laureate", StatusCode: http.StatusNotFound}).Once()

		_, err := svc.FetchLaureateByID(ctx, "99999")

		assert.True(t, nobelapi.IsUpstreamError(err))
		entry := lastLog(t, buf)
		assert.Equal(t, "99999", entry["laureate_id"])
		assert.Equal(t, KindUpstreamError, entry["kind"])
	})
}

func TestIsNumericID(t *testing.T) {
	assert.True(t, IsNumericID("12"))
	assert.True(t, IsNumericID("0"))
	assert.True(t, IsNumericID("1.5"))
	assert.False(t, IsNumericID(""))
	assert.False(t, IsNumericID("abc"))
	assert.False(t, IsNumericID("+Inf"))
	assert.False(t, IsNumericID(" 12"))
	assert.False(t, IsNumericID("0x1A"))
	assert.False(t, IsNumericID("Infinity"))
}

func TestKind(t *testing.T) {
	assert.Equal(t, KindInvalidInput, Kind(ErrInvalidInput))
	assert.Equal(t, KindUpstreamError, Kind(fmt.Errorf("wrap: %w", &nobelapi.UpstreamError{StatusCode: 502})))
	assert.Equal(t, KindFetchFailure, Kind(nobelapi.ErrFetchFailure))
}

func TestNilLogger(t *testing.T) {
	api := new(apiMocks.MockAPI)
	svc := NewNobelService(api, nil)

	_, err := svc.FetchLaureateByID(context.Background(), "x")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
