package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elizabethaxley/astrobotany/internal/domain"
	"github.com/elizabethaxley/astrobotany/internal/handler"
	"github.com/elizabethaxley/astrobotany/internal/plant"
)

// stubPlantService implements plant.Service with function fields so
// each test can script exactly the calls it expects.
type stubPlantService struct {
	observe   func(ctx context.Context, userID string) (*plant.Status, error)
	info      func(ctx context.Context, userID string) (*plant.Details, error)
	water     func(ctx context.Context, userID string) (string, error)
	fertilize func(ctx context.Context, userID string) (string, error)
	shake     func(ctx context.Context, userID string) (string, error)
	pickPetal func(ctx context.Context, userID string) (string, error)
	harvest   func(ctx context.Context, userID, confirmation string) (*plant.HarvestResult, error)
	rename    func(ctx context.Context, userID, name string) (string, error)
}

func (s *stubPlantService) Observe(ctx context.Context, userID string) (*plant.Status, error) {
	return s.observe(ctx, userID)
}

func (s *stubPlantService) Info(ctx context.Context, userID string) (*plant.Details, error) {
	return s.info(ctx, userID)
}

func (s *stubPlantService) Water(ctx context.Context, userID string) (string, error) {
	return s.water(ctx, userID)
}

func (s *stubPlantService) Fertilize(ctx context.Context, userID string) (string, error) {
	return s.fertilize(ctx, userID)
}

func (s *stubPlantService) Shake(ctx context.Context, userID string) (string, error) {
	return s.shake(ctx, userID)
}

func (s *stubPlantService) PickPetal(ctx context.Context, userID string) (string, error) {
	return s.pickPetal(ctx, userID)
}

func (s *stubPlantService) Harvest(ctx context.Context, userID, confirmation string) (*plant.HarvestResult, error) {
	return s.harvest(ctx, userID, confirmation)
}

func (s *stubPlantService) Rename(ctx context.Context, userID, name string) (string, error) {
	return s.rename(ctx, userID, name)
}

func (s *stubPlantService) SettleStale(context.Context, time.Duration, int) (int, error) {
	return 0, nil
}

// doRequest performs the request with the identity header resolved
// into the context, the way the server middleware does.
func doRequest(h http.HandlerFunc, method, target, userID string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	if userID != "" {
		req = req.WithContext(handler.WithUserID(req.Context(), userID))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestPlantHandler_Water(t *testing.T) {
	handler.InitValidator()

	tests := []struct {
		name           string
		userID         string
		waterErr       error
		waterMsg       string
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "Success",
			userID:         "user-1",
			waterMsg:       "You water the plant.",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Missing identity",
			userID:         "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Dead plant",
			userID:         "user-1",
			waterErr:       domain.ErrPlantDead,
			expectedStatus: http.StatusConflict,
			expectedError:  handler.ErrMsgPlantDeadError,
		},
		{
			name:           "Unknown plant",
			userID:         "user-1",
			waterErr:       domain.ErrPlantNotFound,
			expectedStatus: http.StatusNotFound,
			expectedError:  handler.ErrMsgPlantNotFoundError,
		},
		{
			name:           "Database error",
			userID:         "user-1",
			waterErr:       domain.ErrDatabaseError,
			expectedStatus: http.StatusInternalServerError,
			expectedError:  handler.ErrMsgGenericServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubPlantService{
				water: func(_ context.Context, userID string) (string, error) {
					assert.Equal(t, tt.userID, userID)
					if tt.waterErr != nil {
						return "", tt.waterErr
					}
					return tt.waterMsg, nil
				},
			}
			h := handler.NewPlantHandler(svc)

			rec := doRequest(h.Water, http.MethodPost, "/api/v1/plant/water", tt.userID, nil)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedError != "" {
				var resp handler.ErrorResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			}
			if tt.expectedStatus == http.StatusOK {
				var resp handler.SuccessResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.waterMsg, resp.Message)
			}
		})
	}
}

func TestPlantHandler_Harvest_TwoPhase(t *testing.T) {
	handler.InitValidator()

	t.Run("No confirmation returns prompt", func(t *testing.T) {
		svc := &stubPlantService{
			harvest: func(_ context.Context, userID, confirmation string) (*plant.HarvestResult, error) {
				assert.Equal(t, "user-1", userID)
				assert.Empty(t, confirmation)
				return &plant.HarvestResult{
					NeedsConfirmation: true,
					Prompt:            `Type "Goodbye Fred" to send off your plant.`,
				}, nil
			},
		}
		h := handler.NewPlantHandler(svc)

		rec := doRequest(h.Harvest, http.MethodPost, "/api/v1/plant/harvest", "user-1", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp plant.HarvestResult
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.True(t, resp.NeedsConfirmation)
		assert.Contains(t, resp.Prompt, "Goodbye Fred")
	})

	t.Run("Correct phrase harvests", func(t *testing.T) {
		svc := &stubPlantService{
			harvest: func(_ context.Context, _, confirmation string) (*plant.HarvestResult, error) {
				assert.Equal(t, "Goodbye Fred", confirmation)
				return &plant.HarvestResult{
					Message:    "Fred is gone. Generation 2 begins.",
					ScoreBonus: 384,
					Generation: 2,
				}, nil
			},
		}
		h := handler.NewPlantHandler(svc)

		rec := doRequest(h.Harvest, http.MethodPost, "/api/v1/plant/harvest", "user-1",
			handler.HarvestPlantRequest{Confirmation: "Goodbye Fred"})

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp plant.HarvestResult
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.False(t, resp.NeedsConfirmation)
		assert.Equal(t, 384, resp.ScoreBonus)
		assert.Equal(t, 2, resp.Generation)
	})

	t.Run("Wrong phrase rejected", func(t *testing.T) {
		svc := &stubPlantService{
			harvest: func(_ context.Context, _, _ string) (*plant.HarvestResult, error) {
				return nil, domain.ErrConfirmationFailed
			},
		}
		h := handler.NewPlantHandler(svc)

		rec := doRequest(h.Harvest, http.MethodPost, "/api/v1/plant/harvest", "user-1",
			handler.HarvestPlantRequest{Confirmation: "Goodbye Frank"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var resp handler.ErrorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, handler.ErrMsgConfirmationFailedError, resp.Error)
	})

	t.Run("Not harvestable", func(t *testing.T) {
		svc := &stubPlantService{
			harvest: func(_ context.Context, _, _ string) (*plant.HarvestResult, error) {
				return nil, domain.ErrNotHarvestable
			},
		}
		h := handler.NewPlantHandler(svc)

		rec := doRequest(h.Harvest, http.MethodPost, "/api/v1/plant/harvest", "user-1", nil)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestPlantHandler_Rename(t *testing.T) {
	handler.InitValidator()

	t.Run("Success", func(t *testing.T) {
		svc := &stubPlantService{
			rename: func(_ context.Context, userID, name string) (string, error) {
				assert.Equal(t, "user-1", userID)
				assert.Equal(t, "Fred", name)
				return "The plant is now named Fred.", nil
			},
		}
		h := handler.NewPlantHandler(svc)

		rec := doRequest(h.Rename, http.MethodPost, "/api/v1/plant/name", "user-1",
			handler.RenamePlantRequest{Name: "Fred"})

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Empty name fails validation", func(t *testing.T) {
		h := handler.NewPlantHandler(&stubPlantService{})

		rec := doRequest(h.Rename, http.MethodPost, "/api/v1/plant/name", "user-1",
			handler.RenamePlantRequest{Name: ""})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var resp handler.ValidationErrorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Contains(t, resp.Fields, "name")
	})
}

func TestPlantHandler_Observe(t *testing.T) {
	svc := &stubPlantService{
		observe: func(_ context.Context, userID string) (*plant.Status, error) {
			return &plant.Status{
				Name:        "Fred",
				Stage:       "flowering",
				Color:       "indigo",
				WaterLevel:  0.5,
				Score:       120,
				Generation:  1,
				Observation: "You notice your plant looks different.",
			}, nil
		},
	}
	h := handler.NewPlantHandler(svc)

	rec := doRequest(h.Observe, http.MethodGet, "/api/v1/plant", "user-1", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var status plant.Status
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&status))
	assert.Equal(t, "Fred", status.Name)
	assert.Equal(t, "flowering", status.Stage)
	assert.InDelta(t, 0.5, status.WaterLevel, 1e-9)
}
