package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elizabethaxley/astrobotany/internal/domain"
	"github.com/elizabethaxley/astrobotany/internal/handler"
	"github.com/elizabethaxley/astrobotany/internal/session"
)

type stubGardenService struct {
	visit        func(ctx context.Context, viewerID string) ([]domain.VisitEntry, error)
	waterPlant   func(ctx context.Context, actorID, ownerID string) (string, error)
	pickPetal    func(ctx context.Context, actorID, ownerID string) (string, error)
	sendPostcard func(ctx context.Context, fromUserID, toUserID, subject, body string) (string, error)
	inbox        func(ctx context.Context, userID string) ([]domain.Postcard, error)
	readPostcard func(ctx context.Context, userID string, postcardID int64) (*domain.Postcard, error)
	unseenCount  func(ctx context.Context, userID string) (int, error)
}

func (s *stubGardenService) Visit(ctx context.Context, viewerID string) ([]domain.VisitEntry, error) {
	return s.visit(ctx, viewerID)
}

func (s *stubGardenService) WaterPlant(ctx context.Context, actorID, ownerID string) (string, error) {
	return s.waterPlant(ctx, actorID, ownerID)
}

func (s *stubGardenService) PickPetal(ctx context.Context, actorID, ownerID string) (string, error) {
	return s.pickPetal(ctx, actorID, ownerID)
}

func (s *stubGardenService) SendPostcard(ctx context.Context, fromUserID, toUserID, subject, body string) (string, error) {
	return s.sendPostcard(ctx, fromUserID, toUserID, subject, body)
}

func (s *stubGardenService) Inbox(ctx context.Context, userID string) ([]domain.Postcard, error) {
	return s.inbox(ctx, userID)
}

func (s *stubGardenService) ReadPostcard(ctx context.Context, userID string, postcardID int64) (*domain.Postcard, error) {
	return s.readPostcard(ctx, userID, postcardID)
}

func (s *stubGardenService) UnseenCount(ctx context.Context, userID string) (int, error) {
	return s.unseenCount(ctx, userID)
}

// gardenRouter mounts the garden routes the way the server does, so
// chi URL parameters resolve in tests.
func gardenRouter(h *handler.GardenHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/garden", h.List)
	r.Post("/garden/{userID}/water", h.Water)
	r.Post("/garden/{userID}/search", h.Search)
	r.Post("/garden/{userID}/postcard/subject", h.DraftPostcardSubject)
	r.Post("/garden/{userID}/postcard/send", h.SendPostcard)
	return r
}

func TestGardenHandler_Water(t *testing.T) {
	handler.InitValidator()

	tests := []struct {
		name           string
		serviceMsg     string
		serviceErr     error
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "Rewarded watering",
			serviceMsg:     "You water the plant. Its owner gains 25 points.",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Own plant rejected",
			serviceErr:     domain.ErrCannotVisitYourself,
			expectedStatus: http.StatusBadRequest,
			expectedError:  handler.ErrMsgCannotVisitYourselfError,
		},
		{
			name:           "Dead plant",
			serviceErr:     domain.ErrPlantDead,
			expectedStatus: http.StatusConflict,
			expectedError:  handler.ErrMsgPlantDeadError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubGardenService{
				waterPlant: func(_ context.Context, actorID, ownerID string) (string, error) {
					assert.Equal(t, "visitor-1", actorID)
					assert.Equal(t, "owner-1", ownerID)
					if tt.serviceErr != nil {
						return "", tt.serviceErr
					}
					return tt.serviceMsg, nil
				},
			}
			h := handler.NewGardenHandler(svc, nil, nil, session.NewStore(8, time.Minute))
			router := gardenRouter(h)

			rec := doRequest(router.ServeHTTP, http.MethodPost, "/garden/owner-1/water", "visitor-1", nil)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedError != "" {
				var resp handler.ErrorResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			}
		})
	}
}

func TestGardenHandler_PostcardDraftFlow(t *testing.T) {
	handler.InitValidator()

	t.Run("Draft then send carries the subject", func(t *testing.T) {
		svc := &stubGardenService{
			sendPostcard: func(_ context.Context, fromUserID, toUserID, subject, body string) (string, error) {
				assert.Equal(t, "visitor-1", fromUserID)
				assert.Equal(t, "owner-1", toUserID)
				assert.Equal(t, "hello from orbit", subject)
				assert.Equal(t, "your plant is lovely", body)
				return "Postcard sent.", nil
			},
		}
		sessions := session.NewStore(8, time.Minute)
		h := handler.NewGardenHandler(svc, nil, nil, sessions)
		router := gardenRouter(h)

		rec := doRequest(router.ServeHTTP, http.MethodPost, "/garden/owner-1/postcard/subject", "visitor-1",
			handler.PostcardSubjectRequest{Subject: "hello from orbit"})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doRequest(router.ServeHTTP, http.MethodPost, "/garden/owner-1/postcard/send", "visitor-1",
			handler.PostcardSendRequest{Body: "your plant is lovely"})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Send without draft fails on blank subject", func(t *testing.T) {
		svc := &stubGardenService{
			sendPostcard: func(_ context.Context, _, _, subject, _ string) (string, error) {
				assert.Empty(t, subject)
				return "", domain.ErrSubjectRequired
			},
		}
		h := handler.NewGardenHandler(svc, nil, nil, session.NewStore(8, time.Minute))
		router := gardenRouter(h)

		rec := doRequest(router.ServeHTTP, http.MethodPost, "/garden/owner-1/postcard/send", "visitor-1",
			handler.PostcardSendRequest{Body: "hi"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var resp handler.ErrorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, handler.ErrMsgSubjectRequiredError, resp.Error)
	})

	t.Run("Draft is consumed by send", func(t *testing.T) {
		subjects := make([]string, 0, 2)
		svc := &stubGardenService{
			sendPostcard: func(_ context.Context, _, _, subject, _ string) (string, error) {
				subjects = append(subjects, subject)
				if subject == "" {
					return "", domain.ErrSubjectRequired
				}
				return "Postcard sent.", nil
			},
		}
		h := handler.NewGardenHandler(svc, nil, nil, session.NewStore(8, time.Minute))
		router := gardenRouter(h)

		rec := doRequest(router.ServeHTTP, http.MethodPost, "/garden/owner-1/postcard/subject", "visitor-1",
			handler.PostcardSubjectRequest{Subject: "first"})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doRequest(router.ServeHTTP, http.MethodPost, "/garden/owner-1/postcard/send", "visitor-1", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doRequest(router.ServeHTTP, http.MethodPost, "/garden/owner-1/postcard/send", "visitor-1", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		assert.Equal(t, []string{"first", ""}, subjects)
	})
}

func TestMailboxHandler_Read(t *testing.T) {
	t.Run("Marks postcard seen", func(t *testing.T) {
		svc := &stubGardenService{
			readPostcard: func(_ context.Context, userID string, postcardID int64) (*domain.Postcard, error) {
				assert.Equal(t, "user-1", userID)
				assert.Equal(t, int64(7), postcardID)
				return &domain.Postcard{ID: 7, Subject: "hello", IsSeen: true}, nil
			},
		}
		h := handler.NewMailboxHandler(svc)
		r := chi.NewRouter()
		r.Get("/mailbox/{id}", h.Read)

		rec := doRequest(r.ServeHTTP, http.MethodGet, "/mailbox/7", "user-1", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		var pc domain.Postcard
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&pc))
		assert.True(t, pc.IsSeen)
	})

	t.Run("Invalid ID", func(t *testing.T) {
		h := handler.NewMailboxHandler(&stubGardenService{})
		r := chi.NewRouter()
		r.Get("/mailbox/{id}", h.Read)

		rec := doRequest(r.ServeHTTP, http.MethodGet, "/mailbox/abc", "user-1", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Someone else's postcard", func(t *testing.T) {
		svc := &stubGardenService{
			readPostcard: func(_ context.Context, _ string, _ int64) (*domain.Postcard, error) {
				return nil, domain.ErrMailNotFound
			},
		}
		h := handler.NewMailboxHandler(svc)
		r := chi.NewRouter()
		r.Get("/mailbox/{id}", h.Read)

		rec := doRequest(r.ServeHTTP, http.MethodGet, "/mailbox/7", "user-1", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
