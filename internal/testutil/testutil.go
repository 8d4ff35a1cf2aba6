// Package testutil provides test utilities and helpers.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// Upstream is a fake SpaceX API served by httptest.
// Configure it with the Add*/Fail* methods before issuing requests.
type Upstream struct {
	Server *httptest.Server

	mu         sync.Mutex
	launches   []map[string]any
	rockets    map[string]map[string]any
	launchPads map[string]map[string]any
	failures   map[string]int
	raw        map[string]string
	calls      map[string]int
}

// NewUpstream starts a fake upstream that is closed when the test ends.
func NewUpstream(t *testing.T) *Upstream {
	t.Helper()

	u := &Upstream{
		launches:   []map[string]any{},
		rockets:    map[string]map[string]any{},
		launchPads: map[string]map[string]any{},
		failures:   map[string]int{},
		raw:        map[string]string{},
		calls:      map[string]int{},
	}
	u.Server = httptest.NewServer(http.HandlerFunc(u.serve))
	t.Cleanup(u.Server.Close)
	return u
}

// URL returns the base URL of the fake upstream.
func (u *Upstream) URL() string {
	return u.Server.URL
}

// AddLaunch registers a launch returned by /launches.
func (u *Upstream) AddLaunch(rocketID, launchPadID, dateUTC string) *Upstream {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.launches = append(u.launches, map[string]any{
		"rocket":    rocketID,
		"launchpad": launchPadID,
		"date_utc":  dateUTC,
	})
	return u
}

// AddRocket registers a rocket. An empty name is served as JSON null.
func (u *Upstream) AddRocket(id, name string) *Upstream {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.rockets[id] = entity(id, name)
	return u
}

// AddLaunchPad registers a launch pad. An empty name is served as JSON null.
func (u *Upstream) AddLaunchPad(id, name string) *Upstream {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.launchPads[id] = entity(id, name)
	return u
}

// FailPath makes every request to path answer with status.
func (u *Upstream) FailPath(path string, status int) *Upstream {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.failures[path] = status
	return u
}

// RawPath makes every request to path answer 200 with body verbatim.
func (u *Upstream) RawPath(path, body string) *Upstream {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.raw[path] = body
	return u
}

// Calls returns how many requests hit path.
func (u *Upstream) Calls(path string) int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.calls[path]
}

// CallsWithPrefix returns how many requests hit paths starting with prefix.
func (u *Upstream) CallsWithPrefix(prefix string) int {
	u.mu.Lock()
	defer u.mu.Unlock()
	n := 0
	for p, c := range u.calls {
		if strings.HasPrefix(p, prefix) {
			n += c
		}
	}
	return n
}

func (u *Upstream) serve(w http.ResponseWriter, r *http.Request) {
	u.mu.Lock()
	defer u.mu.Unlock()

	path := r.URL.Path
	u.calls[path]++

	if status, ok := u.failures[path]; ok {
		w.WriteHeader(status)
		return
	}
	if body, ok := u.raw[path]; ok {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
		return
	}

	var body any
	switch {
	case path == "/launches":
		body = u.launches
	case path == "/launches/latest":
		w.WriteHeader(http.StatusOK)
		return
	case strings.HasPrefix(path, "/rockets/"):
		rocket, ok := u.rockets[strings.TrimPrefix(path, "/rockets/")]
		if !ok {
			http.NotFound(w, r)
			return
		}
		body = rocket
	case strings.HasPrefix(path, "/launchpads/"):
		pad, ok := u.launchPads[strings.TrimPrefix(path, "/launchpads/")]
		if !ok {
			http.NotFound(w, r)
			return
		}
		body = pad
	default:
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(body)
}

func entity(id, name string) map[string]any {
	e := map[string]any{"id": id, "name": nil}
	if name != "" {
		e["name"] = name
	}
	return e
}
