package tests

import (
	"errors"
	"testing"

	"github.com/aretw0/agrocalc/pkg/domain"
	"github.com/aretw0/agrocalc/pkg/ports"
)

// FragmentContractTest is a reusable test suite that verifies if an adapter complies with ports.Fragment.
// newFragment must return a fresh, empty fragment on every call.
func FragmentContractTest(t *testing.T, newFragment func() ports.Fragment) {
	t.Helper()

	t.Run("Set_Get", func(t *testing.T) {
		f := newFragment()
		if got := f.Get(); got != "" {
			t.Fatalf("fresh fragment should be empty, got %q", got)
		}
		f.Set("LIMING_REQUIREMENT")
		if got := f.Get(); got != "LIMING_REQUIREMENT" {
			t.Errorf("Get() = %q, want %q", got, "LIMING_REQUIREMENT")
		}
	})

	t.Run("Notifies_On_Change_Only", func(t *testing.T) {
		f := newFragment()
		var seen []string
		unsubscribe := f.Subscribe(func(v string) { seen = append(seen, v) })

		f.Set("A")
		f.Set("A")
		f.Set("B")
		f.Set("")

		want := []string{"A", "B", ""}
		if len(seen) != len(want) {
			t.Fatalf("expected %d notifications, got %d (%v)", len(want), len(seen), seen)
		}
		for i := range want {
			if seen[i] != want[i] {
				t.Errorf("notification %d = %q, want %q", i, seen[i], want[i])
			}
		}

		unsubscribe()
		f.Set("C")
		if len(seen) != len(want) {
			t.Errorf("listener called after unsubscribe: %v", seen)
		}
	})

	t.Run("Reentrant_Set", func(t *testing.T) {
		// A listener that writes the fragment again must not deadlock; the last write wins.
		f := newFragment()
		f.Subscribe(func(v string) {
			if v == "unknown" {
				f.Set("")
			}
		})
		f.Set("unknown")
		if got := f.Get(); got != "" {
			t.Errorf("Get() = %q, want empty after reentrant reset", got)
		}
	})
}

// CatalogContractTest verifies a ports.Catalog holding exactly the given IDs in order.
func CatalogContractTest(t *testing.T, catalog ports.Catalog, ids []string) {
	t.Helper()

	t.Run("List_Order", func(t *testing.T) {
		modules := catalog.List()
		if len(modules) != len(ids) {
			t.Fatalf("expected %d modules, got %d", len(ids), len(modules))
		}
		for i, m := range modules {
			if m.ID != ids[i] {
				t.Errorf("module %d = %s, want %s", i, m.ID, ids[i])
			}
		}
	})

	t.Run("Descriptors_Match_List", func(t *testing.T) {
		descs := catalog.Descriptors()
		for i, d := range descs {
			if d.ID != ids[i] {
				t.Errorf("descriptor %d = %s, want %s", i, d.ID, ids[i])
			}
		}
	})

	t.Run("Lookup_Success", func(t *testing.T) {
		for _, id := range ids {
			m, err := catalog.Lookup(id)
			if err != nil {
				t.Fatalf("unexpected error looking up %s: %v", id, err)
			}
			if m.ID != id {
				t.Errorf("Lookup(%s) returned %s", id, m.ID)
			}
		}
	})

	t.Run("Lookup_NotFound", func(t *testing.T) {
		_, err := catalog.Lookup("non-existent-module")
		if !errors.Is(err, domain.ErrModuleNotFound) {
			t.Errorf("expected ErrModuleNotFound, got %v", err)
		}
	})
}
