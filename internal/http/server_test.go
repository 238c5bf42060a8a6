package http

import (
	"context"
	"encoding/json"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"arogyam-chatbot/internal/retrieval"
	"arogyam-chatbot/pkg"
)

type stubAgent struct {
	lastUser string
	lastMsg  string
	reply    string
}

func (s *stubAgent) Handle(_ context.Context, userID, message string) string {
	s.lastUser = userID
	s.lastMsg = message
	return s.reply
}

type stubRetriever struct {
	hits map[retrieval.Topic][]retrieval.Hit
	err  error
}

func (s *stubRetriever) Search(_ context.Context, topic retrieval.Topic, _ string, _ int) ([]retrieval.Hit, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.hits[topic], nil
}

func newTestServer(agent *stubAgent, r *stubRetriever) *Server {
	return NewServer(agent, r, zap.NewNop())
}

func doRequest(s *Server, method, target, body string) *httptest.ResponseRecorder {
	var req *nethttp.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func TestChatEndpoint(t *testing.T) {
	agent := &stubAgent{reply: "namaste"}
	s := newTestServer(agent, &stubRetriever{})

	rec := doRequest(s, nethttp.MethodPost, "/api/chat", `{"user_id":"alice","message":"hello"}`)

	require.Equal(t, nethttp.StatusOK, rec.Code)
	var resp pkg.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.UserID)
	assert.Equal(t, "namaste", resp.Reply)
	assert.Equal(t, "alice", agent.lastUser)
	assert.Equal(t, "hello", agent.lastMsg)
}

func TestChatEndpointGeneratesUserID(t *testing.T) {
	agent := &stubAgent{reply: "hi"}
	s := newTestServer(agent, &stubRetriever{})

	rec := doRequest(s, nethttp.MethodPost, "/api/chat", `{"message":"hello"}`)

	require.Equal(t, nethttp.StatusOK, rec.Code)
	var resp pkg.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.UserID, "anonymous requests get a generated user id")
	assert.Equal(t, resp.UserID, agent.lastUser)
}

func TestChatEndpointRejectsEmptyMessage(t *testing.T) {
	s := newTestServer(&stubAgent{}, &stubRetriever{})

	rec := doRequest(s, nethttp.MethodPost, "/api/chat", `{"user_id":"alice","message":"   "}`)
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
}

func TestFAQLookup(t *testing.T) {
	r := &stubRetriever{hits: map[retrieval.Topic][]retrieval.Hit{
		retrieval.TopicFAQ: {{ID: 1, Text: "Drink ORS.", Similarity: 0.82}},
	}}
	s := newTestServer(&stubAgent{}, r)

	rec := doRequest(s, nethttp.MethodGet, "/api/faq?query=dehydration", "")

	require.Equal(t, nethttp.StatusOK, rec.Code)
	var resp pkg.LookupResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Drink ORS.", resp.Answer)
	assert.InDelta(t, 0.82, resp.Similarity, 1e-9)
}

func TestFAQLookupNoHit(t *testing.T) {
	s := newTestServer(&stubAgent{}, &stubRetriever{})

	rec := doRequest(s, nethttp.MethodGet, "/api/faq?query=anything", "")

	require.Equal(t, nethttp.StatusOK, rec.Code)
	var resp pkg.LookupResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "No FAQ found. Please consult a doctor.", resp.Answer)
	assert.Zero(t, resp.Similarity)
}

func TestLookupRequiresQuery(t *testing.T) {
	s := newTestServer(&stubAgent{}, &stubRetriever{})
	for _, path := range []string{"/api/faq", "/api/symptoms", "/api/risks", "/api/schemes"} {
		rec := doRequest(s, nethttp.MethodGet, path, "")
		assert.Equal(t, nethttp.StatusBadRequest, rec.Code, path)
	}
}

func TestLookupDegradesRetrievalFailure(t *testing.T) {
	s := newTestServer(&stubAgent{}, &stubRetriever{err: errors.New("db down")})

	rec := doRequest(s, nethttp.MethodGet, "/api/symptoms?query=fever", "")

	require.Equal(t, nethttp.StatusOK, rec.Code)
	var resp pkg.LookupResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "No symptom info found. Please consult a doctor.", resp.Answer)
}

func TestSchemesLookup(t *testing.T) {
	r := &stubRetriever{hits: map[retrieval.Topic][]retrieval.Hit{
		retrieval.TopicScheme: {
			{ID: 1, Text: "Hospital cover", Similarity: 0.9},
			{ID: 2, Text: "Free medicines", Similarity: 0.7},
		},
	}}
	s := newTestServer(&stubAgent{}, r)

	rec := doRequest(s, nethttp.MethodGet, "/api/schemes?query=insurance", "")

	require.Equal(t, nethttp.StatusOK, rec.Code)
	var resp pkg.SchemeListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 2)
	assert.Equal(t, "Hospital cover", resp.Results[0].Purpose)
	assert.Empty(t, resp.Message)
}

func TestSchemesLookupEmpty(t *testing.T) {
	s := newTestServer(&stubAgent{}, &stubRetriever{})

	rec := doRequest(s, nethttp.MethodGet, "/api/schemes?query=unknown", "")

	require.Equal(t, nethttp.StatusOK, rec.Code)
	var resp pkg.SchemeListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Results)
	assert.Equal(t, "No schemes found. Please check government portals.", resp.Message)
}

func TestConsultAndHealth(t *testing.T) {
	s := newTestServer(&stubAgent{}, &stubRetriever{})

	rec := doRequest(s, nethttp.MethodGet, "/api/consult", "")
	require.Equal(t, nethttp.StatusOK, rec.Code)
	var consult pkg.ConsultResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &consult))
	assert.NotEmpty(t, consult.DoctorLink)

	rec = doRequest(s, nethttp.MethodGet, "/healthz", "")
	assert.Equal(t, nethttp.StatusOK, rec.Code)
}
