package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestPrefs_RoundTrip(t *testing.T) {
	prefs := openTestStore(t).Prefs()
	ctx := context.Background()

	if err := prefs.Set(ctx, PrefSubject, "Criminal Law"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := prefs.Get(ctx, PrefSubject)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "Criminal Law" {
		t.Errorf("Get = %q, want %q", got, "Criminal Law")
	}
}

func TestPrefs_Overwrite(t *testing.T) {
	prefs := openTestStore(t).Prefs()
	ctx := context.Background()

	for _, v := range []string{"10", "25"} {
		if err := prefs.Set(ctx, PrefQuantity, v); err != nil {
			t.Fatalf("Set %s: %v", v, err)
		}
	}
	got, err := prefs.Get(ctx, PrefQuantity)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "25" {
		t.Errorf("Get = %q, want %q", got, "25")
	}
}

func TestPrefs_Missing(t *testing.T) {
	prefs := openTestStore(t).Prefs()

	_, err := prefs.Get(context.Background(), "never-set")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
