package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/domainmarket-backend/internal/domain"
)

func sampleLead() domain.Lead {
	price := int64(250000)
	return domain.Lead{
		ID:         uuid.New(),
		Type:       domain.LeadTypeOffer,
		Name:       "Мария",
		Email:      "maria@example.com",
		DomainName: "бизнес.рф",
		OfferPrice: &price,
		CreatedAt:  time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestWebhook_PostsJSON(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	l := sampleLead()
	err := NewWebhook(srv.URL, time.Second).NotifyLead(context.Background(), l)
	require.NoError(t, err)

	assert.Equal(t, l.ID.String(), got["id"])
	assert.Equal(t, "offer", got["type"])
	assert.Equal(t, "бизнес.рф", got["domainName"])
	assert.Equal(t, float64(250000), got["offerPrice"])
	assert.Equal(t, "2024-06-01T12:00:00Z", got["createdAt"])
	assert.NotContains(t, got, "phone")
}

func TestWebhook_Non2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	err := NewWebhook(srv.URL, time.Second).NotifyLead(context.Background(), sampleLead())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestWebhook_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(time.Second):
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()

	err := NewWebhook(srv.URL, 20*time.Millisecond).NotifyLead(context.Background(), sampleLead())
	assert.Error(t, err)
}

func TestNoop(t *testing.T) {
	assert.NoError(t, Noop{}.NotifyLead(context.Background(), sampleLead()))
}
