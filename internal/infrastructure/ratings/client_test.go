package ratings_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"rtanksbot/internal/infrastructure/ratings"
)

func TestClientCandidateURLs(t *testing.T) {
	rq := require.New(t)

	client := ratings.NewClient("https://ratings.example.com", time.Second)

	rq.Equal("https://ratings.example.com/user/TankAce", client.ProfileURL("TankAce"))
	rq.Equal([]string{"https://ratings.example.com/user/Tank%20Ace"},
		client.ProfileCandidates("Tank Ace"))
	rq.Equal([]string{
		"https://ratings.example.com",
		"https://ratings.example.com/rankings",
		"https://ratings.example.com/search?q=Tank+Ace",
	}, client.SearchCandidates("Tank Ace"))
}

func TestClientFetch(t *testing.T) {
	rq := require.New(t)

	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("<html>profile</html>"))
	}))
	defer srv.Close()

	client := ratings.NewClient(srv.URL, 5*time.Second,
		ratings.WithFetchDelay(0, time.Millisecond))

	body, err := client.Fetch(context.Background(), srv.URL+"/user/TankAce")
	rq.NoError(err)
	rq.Equal("<html>profile</html>", body)
	rq.Contains(gotUA, "Mozilla/5.0")
}

func TestClientFetchNonOKStatus(t *testing.T) {
	rq := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := ratings.NewClient(srv.URL, 5*time.Second,
		ratings.WithFetchDelay(0, time.Millisecond))

	_, err := client.Fetch(context.Background(), srv.URL+"/user/Nobody")
	rq.Error(err)
	rq.Contains(err.Error(), "404")
}

func TestClientFetchDelayOverride(t *testing.T) {
	rq := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	client := ratings.NewClient(srv.URL, 5*time.Second,
		ratings.WithFetchDelay(0, 0))

	start := time.Now()

	_, err := client.Fetch(context.Background(), srv.URL)
	rq.NoError(err)
	rq.Less(time.Since(start), 200*time.Millisecond)
}

func TestClientFetchCancelledDuringJitter(t *testing.T) {
	rq := require.New(t)

	client := ratings.NewClient("http://unreachable.invalid", time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Fetch(ctx, "http://unreachable.invalid/user/TankAce")
	rq.ErrorIs(err, context.Canceled)
}

func TestClientPing(t *testing.T) {
	rq := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	client := ratings.NewClient(srv.URL, 5*time.Second)

	latency, status, err := client.Ping(context.Background())
	rq.NoError(err)
	rq.Equal(http.StatusOK, status)
	rq.Greater(latency, time.Duration(0))
}
