package contacts

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/bondly/bondly/internal/backend"
	"github.com/bondly/bondly/internal/backend/memory"
	"github.com/bondly/bondly/internal/bus"
	"github.com/bondly/bondly/internal/store"
)

const self = "me"

func demoDirectory(t *testing.T) (*Directory, *memory.Backend) {
	t.Helper()
	be := memory.New()
	memory.SeedDemo(be, self, "Me")
	d := New(self, be, nil, nil, nil)
	if err := d.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return d, be
}

func ids(cs []Contact) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.ID
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func friendshipRows(be *memory.Backend, a, b string) int {
	n := 0
	for _, r := range be.Rows(backend.TableFriendships) {
		u, f := r.String("user_id"), r.String("friend_id")
		if (u == a && f == b) || (u == b && f == a) {
			n++
		}
	}
	return n
}

// failingBackend fails inserts selected by failInsert.
type failingBackend struct {
	backend.Backend
	failInsert func(table string, rec backend.Row) error
}

func (f *failingBackend) Insert(ctx context.Context, table string, rec backend.Row) (backend.Row, error) {
	if f.failInsert != nil {
		if err := f.failInsert(table, rec); err != nil {
			return nil, err
		}
	}
	return f.Backend.Insert(ctx, table, rec)
}

func TestLoad(t *testing.T) {
	d, _ := demoDirectory(t)

	if got := ids(d.Friends()); !equal(got, []string{"mike", "sarah"}) {
		t.Errorf("Friends() = %v, want [mike sarah]", got)
	}
	if got := ids(d.Suggestions()); !equal(got, []string{"alex", "emma", "lisa"}) {
		t.Errorf("Suggestions() = %v, want [alex emma lisa]", got)
	}
	if d.DisplayName("sarah") != "Sarah Chen" {
		t.Errorf("DisplayName(sarah) = %q", d.DisplayName("sarah"))
	}
	if d.DisplayName("stranger") != "stranger" {
		t.Errorf("unknown id should render as itself")
	}
}

func TestSuggestionsCapped(t *testing.T) {
	be := memory.New()
	be.Seed(backend.TableProfiles, backend.Row{"user_id": self, "full_name": "Me"})
	for i := 0; i < 15; i++ {
		id := string(rune('a' + i))
		be.Seed(backend.TableProfiles, backend.Row{"user_id": id, "full_name": "User " + id})
	}
	d := New(self, be, nil, nil, nil)
	if err := d.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	if n := len(d.Suggestions()); n != SuggestionLimit {
		t.Errorf("len(Suggestions()) = %d, want %d", n, SuggestionLimit)
	}
}

func TestAddFriend(t *testing.T) {
	d, be := demoDirectory(t)
	b := bus.New()
	d.bus = b
	events, cancel := b.Subscribe("contacts.", 4)
	defer cancel()

	if err := d.AddFriend(context.Background(), "emma"); err != nil {
		t.Fatalf("AddFriend() error = %v", err)
	}
	if !d.IsFriend("emma") {
		t.Error("emma not a friend after AddFriend")
	}
	for _, c := range d.Suggestions() {
		if c.ID == "emma" {
			t.Error("emma still suggested")
		}
	}
	if n := friendshipRows(be, self, "emma"); n != 2 {
		t.Errorf("friendship rows = %d, want 2", n)
	}

	select {
	case evt := <-events:
		if evt.Kind != bus.KindContactsChanged {
			t.Errorf("kind = %s", evt.Kind)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for contacts.changed")
	}
}

func TestAddFriendIdempotent(t *testing.T) {
	d, be := demoDirectory(t)

	if err := d.AddFriend(context.Background(), "sarah"); err != nil {
		t.Fatalf("AddFriend(existing) error = %v", err)
	}
	if n := be.Calls("insert", backend.TableFriendships); n != 0 {
		t.Errorf("existing friend caused %d inserts", n)
	}

	// A half-written friendship from an earlier attempt conflicts on the
	// first row; the conflict counts as success.
	be.Seed(backend.TableFriendships, backend.Row{"user_id": self, "friend_id": "alex", "status": "accepted"})
	if err := d.AddFriend(context.Background(), "alex"); err != nil {
		t.Fatalf("AddFriend(conflict) error = %v", err)
	}
	if n := friendshipRows(be, self, "alex"); n != 2 {
		t.Errorf("friendship rows = %d, want 2", n)
	}
}

func TestAddFriendUndoesOneSidedEdge(t *testing.T) {
	be := memory.New()
	memory.SeedDemo(be, self, "Me")
	fb := &failingBackend{Backend: be}
	d := New(self, fb, nil, nil, nil)
	if err := d.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	fb.failInsert = func(table string, rec backend.Row) error {
		if rec.String("user_id") == "lisa" {
			return &backend.Error{Op: "insert", Table: table, Status: 503, Kind: backend.ErrTransient}
		}
		return nil
	}
	err := d.AddFriend(context.Background(), "lisa")
	if !errors.Is(err, backend.ErrTransient) {
		t.Fatalf("AddFriend() err = %v, want transient", err)
	}
	if n := friendshipRows(be, self, "lisa"); n != 0 {
		t.Errorf("friendship rows = %d, want 0 after undo", n)
	}
	if d.IsFriend("lisa") {
		t.Error("lisa is a friend after failed add")
	}
	if got := ids(d.Suggestions()); !equal(got, []string{"alex", "emma", "lisa"}) {
		t.Errorf("Suggestions() = %v, want unchanged", got)
	}
}

func TestAddFriendValidation(t *testing.T) {
	d, be := demoDirectory(t)

	for _, id := range []string{"", "  ", self} {
		if err := d.AddFriend(context.Background(), id); !errors.Is(err, ErrInvalidContact) {
			t.Errorf("AddFriend(%q) err = %v, want ErrInvalidContact", id, err)
		}
		if err := d.RemoveFriend(context.Background(), id); !errors.Is(err, ErrInvalidContact) {
			t.Errorf("RemoveFriend(%q) err = %v, want ErrInvalidContact", id, err)
		}
	}
	if be.Calls("insert", backend.TableFriendships) != 0 || be.Calls("delete", backend.TableFriendships) != 0 {
		t.Error("validation failure reached the backend")
	}
}

func TestAddFriendOffline(t *testing.T) {
	d, be := demoDirectory(t)
	be.SetOffline(true)

	if err := d.AddFriend(context.Background(), "emma"); !errors.Is(err, backend.ErrTransient) {
		t.Errorf("err = %v, want transient", err)
	}
	if d.IsFriend("emma") {
		t.Error("state changed on failure")
	}

	be.SetOffline(false)
	if err := d.AddFriend(context.Background(), "emma"); err != nil {
		t.Errorf("directory unusable after failure: %v", err)
	}
}

func TestRemoveFriend(t *testing.T) {
	d, be := demoDirectory(t)

	if err := d.RemoveFriend(context.Background(), "sarah"); err != nil {
		t.Fatalf("RemoveFriend() error = %v", err)
	}
	if d.IsFriend("sarah") {
		t.Error("sarah still a friend")
	}
	if n := friendshipRows(be, self, "sarah"); n != 0 {
		t.Errorf("friendship rows = %d, want 0", n)
	}
	if n := be.Calls("delete", backend.TableFriendships); n != 1 {
		t.Errorf("deletes = %d, want one filtered delete", n)
	}
	found := false
	for _, c := range d.Suggestions() {
		found = found || c.ID == "sarah"
	}
	if !found {
		t.Error("removed friend not eligible as suggestion")
	}
}

func TestLoadFallsBackToCache(t *testing.T) {
	db, err := store.OpenMigrated(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })

	be := memory.New()
	memory.SeedDemo(be, self, "Me")
	if err := New(self, be, db, nil, nil).Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	be.SetOffline(true)
	d := New(self, be, db, nil, nil)
	if err := d.Load(context.Background()); err == nil {
		t.Fatal("Load() offline returned nil error")
	}
	if got := ids(d.Friends()); !equal(got, []string{"mike", "sarah"}) {
		t.Errorf("cached Friends() = %v, want [mike sarah]", got)
	}
}

func TestPresence(t *testing.T) {
	d, _ := demoDirectory(t)

	if got := d.Presence("mike"); got != "Last seen recently" {
		t.Errorf("Presence(mike) = %q", got)
	}
	if !d.SetOnline("mike", true) {
		t.Error("SetOnline() reported no change")
	}
	if got := d.Presence("mike"); got != "Active now" {
		t.Errorf("Presence(mike) = %q after online", got)
	}
	if d.SetOnline("mike", true) {
		t.Error("repeated SetOnline() reported a change")
	}
	if d.SetOnline("nobody", true) {
		t.Error("SetOnline(unknown) reported a change")
	}
	if c, _ := d.Lookup("mike"); c.DisplayName != "Mike Rodriguez" {
		t.Errorf("display name lost: %q", c.DisplayName)
	}
}
