package postgrest

import (
	"context"
	"errors"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/bondly/bondly/internal/backend"
	"github.com/gofiber/fiber/v2"
)

type recorded struct {
	Method string
	Path   string
	APIKey string
	Auth   string
	Prefer string
	Args   []param
	Body   string
}

// fakeServer is a PostgREST stand-in that records requests and answers with
// a configurable status and body.
type fakeServer struct {
	mu       sync.Mutex
	requests []recorded
	status   int
	reply    any
}

func (f *fakeServer) last(t *testing.T) recorded {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.requests) == 0 {
		t.Fatal("no request recorded")
	}
	return f.requests[len(f.requests)-1]
}

func (f *fakeServer) respond(status int, reply any) {
	f.mu.Lock()
	f.status, f.reply = status, reply
	f.mu.Unlock()
}

func startFake(t *testing.T) (*fakeServer, *Client) {
	t.Helper()
	fake := &fakeServer{status: fiber.StatusOK, reply: []any{}}

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.All("/rest/v1/:table", func(c *fiber.Ctx) error {
		r := recorded{
			Method: c.Method(),
			Path:   c.Path(),
			APIKey: c.Get("apikey"),
			Auth:   c.Get("Authorization"),
			Prefer: c.Get("Prefer"),
			Body:   string(c.Body()),
		}
		c.Context().QueryArgs().VisitAll(func(k, v []byte) {
			r.Args = append(r.Args, param{string(k), string(v)})
		})

		fake.mu.Lock()
		fake.requests = append(fake.requests, r)
		status, reply := fake.status, fake.reply
		fake.mu.Unlock()
		return c.Status(status).JSON(reply)
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })

	client := New(Config{URL: "http://" + ln.Addr().String() + "/", APIKey: "anon-key", AccessToken: "tok", Timeout: 2 * time.Second}, nil)
	return fake, client
}

func TestQueryEncodesFiltersAndHeaders(t *testing.T) {
	fake, client := startFake(t)
	fake.respond(fiber.StatusOK, []map[string]any{{"user_id": "sarah", "full_name": "Sarah Chen"}})

	q := backend.Where(backend.Neq("user_id", "me"), backend.NotIn("user_id", []string{"sarah", "mike"})).
		OrderBy("full_name", false).
		WithLimit(10)
	rows, err := client.Query(context.Background(), "profiles", q)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(rows) != 1 || rows[0].String("full_name") != "Sarah Chen" {
		t.Errorf("rows = %v", rows)
	}

	r := fake.last(t)
	if r.Method != fiber.MethodGet || r.Path != "/rest/v1/profiles" {
		t.Errorf("request = %s %s", r.Method, r.Path)
	}
	if r.APIKey != "anon-key" || r.Auth != "Bearer tok" {
		t.Errorf("headers apikey=%q auth=%q", r.APIKey, r.Auth)
	}
	want := []param{
		{"select", "*"},
		{"user_id", "neq.me"},
		{"user_id", "not.in.(sarah,mike)"},
		{"order", "full_name.asc"},
		{"limit", "10"},
	}
	if len(r.Args) != len(want) {
		t.Fatalf("args = %v, want %v", r.Args, want)
	}
	for i := range want {
		if r.Args[i] != want[i] {
			t.Errorf("arg %d = %v, want %v", i, r.Args[i], want[i])
		}
	}
}

func TestInsertReturnsRepresentation(t *testing.T) {
	fake, client := startFake(t)
	fake.respond(fiber.StatusCreated, []map[string]any{{"id": "m1", "content": "hi", "created_at": "2026-10-14T10:32:00Z"}})

	row, err := client.Insert(context.Background(), "messages", backend.Row{"id": "m1", "content": "hi"})
	if err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if row.String("id") != "m1" {
		t.Errorf("row = %v", row)
	}
	if _, ok := row.Time("created_at"); !ok {
		t.Error("created_at not parsed")
	}

	r := fake.last(t)
	if r.Method != fiber.MethodPost || r.Prefer != "return=representation" {
		t.Errorf("method=%s prefer=%q", r.Method, r.Prefer)
	}
	if r.Body != `{"content":"hi","id":"m1"}` {
		t.Errorf("body = %s", r.Body)
	}
}

func TestUpdateAndDeleteUseFilters(t *testing.T) {
	fake, client := startFake(t)
	fake.respond(fiber.StatusNoContent, nil)

	err := client.Update(context.Background(), "messages",
		backend.Where(backend.In("id", []string{"a", "b"}), backend.Eq("receiver_id", "me")),
		backend.Row{"read": true})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	r := fake.last(t)
	if r.Method != fiber.MethodPatch || r.Body != `{"read":true}` {
		t.Errorf("update request = %+v", r)
	}
	if len(r.Args) != 2 || r.Args[0] != (param{"id", "in.(a,b)"}) || r.Args[1] != (param{"receiver_id", "eq.me"}) {
		t.Errorf("update args = %v", r.Args)
	}

	q := backend.Query{}.AnyOf(
		backend.All(backend.Eq("user_id", "me"), backend.Eq("friend_id", "sarah")),
		backend.All(backend.Eq("user_id", "sarah"), backend.Eq("friend_id", "me")),
	)
	if err := client.Delete(context.Background(), "friendships", q); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	r = fake.last(t)
	if r.Method != fiber.MethodDelete {
		t.Errorf("method = %s", r.Method)
	}
	want := param{"or", "(and(user_id.eq.me,friend_id.eq.sarah),and(user_id.eq.sarah,friend_id.eq.me))"}
	if len(r.Args) != 1 || r.Args[0] != want {
		t.Errorf("delete args = %v, want %v", r.Args, want)
	}
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{fiber.StatusUnauthorized, backend.ErrUnauthorized},
		{fiber.StatusConflict, backend.ErrConflict},
		{fiber.StatusServiceUnavailable, backend.ErrTransient},
		{fiber.StatusBadRequest, backend.ErrRejected},
	}

	fake, client := startFake(t)
	for _, tt := range tests {
		fake.respond(tt.status, map[string]string{"message": "nope", "details": "because"})
		_, err := client.Insert(context.Background(), "friendships", backend.Row{"user_id": "me"})
		if !errors.Is(err, tt.want) {
			t.Errorf("status %d: err = %v, want %v", tt.status, err, tt.want)
		}
		var be *backend.Error
		if !errors.As(err, &be) || be.Status != tt.status || be.Message != "nope: because" {
			t.Errorf("status %d: backend error = %+v", tt.status, be)
		}
	}
}

func TestNetworkFailureIsTransient(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	addr := ln.Addr().String()
	_ = ln.Close()

	client := New(Config{URL: "http://" + addr, APIKey: "k", Timeout: time.Second}, nil)
	_, err = client.Query(context.Background(), "profiles", backend.Query{})
	if !errors.Is(err, backend.ErrTransient) || !backend.IsRetryable(err) {
		t.Errorf("err = %v, want transient", err)
	}
}

func TestCanceledContext(t *testing.T) {
	_, client := startFake(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := client.Query(ctx, "profiles", backend.Query{}); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestEncodeQuoting(t *testing.T) {
	got := encodeQuery(backend.Where(
		backend.In("full_name", []string{"Sarah Chen", "a,b", "plain"}),
		backend.Eq("read", false),
		backend.Gte("created_at", time.Date(2026, 10, 14, 10, 30, 0, 0, time.UTC)),
	).AnyOf(backend.All(backend.Eq("sender_id", "me"))))
	want := []param{
		{"full_name", `in.("Sarah Chen","a,b",plain)`},
		{"read", "eq.false"},
		{"created_at", "gte.2026-10-14T10:30:00Z"},
		{"or", "(sender_id.eq.me)"},
	}
	if len(got) != len(want) {
		t.Fatalf("encodeQuery() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("param %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestEncodeKeysetPage(t *testing.T) {
	got := encodeQuery(backend.Query{}.AnyOf(
		backend.All(backend.Gt("created_at", "2026-10-14T10:30:00Z")),
		backend.All(backend.Eq("created_at", "2026-10-14T10:30:00Z"), backend.Gt("id", "m-9")),
	).OrderBy("created_at", false).ThenBy("id").WithLimit(200))
	want := []param{
		{"or", "(created_at.gt.2026-10-14T10:30:00Z,and(created_at.eq.2026-10-14T10:30:00Z,id.gt.m-9))"},
		{"order", "created_at.asc,id.asc"},
		{"limit", "200"},
	}
	if len(got) != len(want) {
		t.Fatalf("encodeQuery() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("param %d = %v, want %v", i, got[i], want[i])
		}
	}
}
