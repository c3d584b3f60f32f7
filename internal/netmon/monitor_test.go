package netmon

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNew_StartsOnline(t *testing.T) {
	m := New(Options{})
	st := m.Status()
	if !st.IsOnline {
		t.Fatal("monitor must assume online before the first probe")
	}
	if st.LastCheck.IsZero() {
		t.Fatal("expected LastCheck to be initialized")
	}
}

func TestProbe_HealthyServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead {
			t.Errorf("probe should use HEAD, got %s", r.Method)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	m := New(Options{ProbeURL: srv.URL})
	m.Probe(context.Background())

	st := m.Status()
	if !st.IsOnline {
		t.Fatal("expected online after 200 probe")
	}
	if st.IsSlowConnection {
		t.Fatal("local probe should not read as slow")
	}
}

func TestProbe_ServerErrorMarksOffline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	m := New(Options{ProbeURL: srv.URL})
	m.Probe(context.Background())
	if m.Status().IsOnline {
		t.Fatal("5xx probe response should mark offline")
	}
}

func TestProbe_UnreachableMarksOffline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	m := New(Options{ProbeURL: url})
	m.Probe(context.Background())
	if m.Status().IsOnline {
		t.Fatal("unreachable probe target should mark offline")
	}
}

func TestProbe_NoURLKeepsState(t *testing.T) {
	m := New(Options{})
	before := m.Status()
	m.Probe(context.Background())
	after := m.Status()
	if before.IsOnline != after.IsOnline || !before.LastCheck.Equal(after.LastCheck) {
		t.Fatal("probe without a URL must be a no-op")
	}
}

func TestSubscribe_NotifiesAndUnsubscribes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	m := New(Options{ProbeURL: srv.URL})
	var got []Status
	unsub := m.Subscribe(func(s Status) { got = append(got, s) })

	m.Probe(context.Background())
	if len(got) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(got))
	}

	unsub()
	m.Probe(context.Background())
	if len(got) != 1 {
		t.Fatal("unsubscribed listener must not be notified")
	}
}

func TestProbeAPI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	m := New(Options{})
	if !m.ProbeAPI(context.Background(), srv.URL) {
		t.Fatal("expected reachable endpoint to probe true")
	}

	srv.Close()
	if m.ProbeAPI(context.Background(), srv.URL) {
		t.Fatal("expected closed endpoint to probe false")
	}
}
