package session

import (
	"testing"

	"github.com/RafaelReds/EcoMarket/internal/domain/model"
)

func TestStore_CreateGetDestroy(t *testing.T) {
	st := NewStore()

	s := st.Create()
	if s.ID == "" {
		t.Fatal("session ID should not be empty")
	}

	got, ok := st.Get(s.ID)
	if !ok || got != s {
		t.Fatal("Get should return the created session")
	}

	st.Destroy(s.ID)
	if _, ok := st.Get(s.ID); ok {
		t.Fatal("session should be gone after Destroy")
	}
}

func TestSession_UserLifecycle(t *testing.T) {
	s := &Session{ID: "s1"}

	if _, ok := s.User(); ok {
		t.Fatal("new session should have no user")
	}

	s.SetUser(Identity{ID: 1, Nombre: "Ana", Rol: model.RoleCliente})
	u, ok := s.User()
	if !ok || u.Nombre != "Ana" {
		t.Fatalf("unexpected user: %+v ok=%v", u, ok)
	}

	s.ClearUser()
	if _, ok := s.User(); ok {
		t.Fatal("user should be cleared")
	}
}

// 同一商品は数量加算、別商品は行追加
func TestSession_AddCartEntry_Merges(t *testing.T) {
	s := &Session{ID: "s1"}

	s.AddCartEntry(1, 3)
	s.AddCartEntry(1, 4)
	s.AddCartEntry(2, 1)

	entries := s.CartEntries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].IDProducto != 1 || entries[0].Cantidad != 7 {
		t.Fatalf("expected merged entry (1, 7), got %+v", entries[0])
	}
	if entries[1].IDProducto != 2 || entries[1].Cantidad != 1 {
		t.Fatalf("expected entry (2, 1), got %+v", entries[1])
	}
}

func TestSession_RemoveCartEntry(t *testing.T) {
	s := &Session{ID: "s1"}
	s.AddCartEntry(1, 2)
	s.AddCartEntry(2, 1)

	s.RemoveCartEntry(1)

	entries := s.CartEntries()
	if len(entries) != 1 || entries[0].IDProducto != 2 {
		t.Fatalf("expected only product 2, got %+v", entries)
	}

	// 存在しない商品の除去は何もしない
	s.RemoveCartEntry(99)
	if len(s.CartEntries()) != 1 {
		t.Fatal("removing an absent product should not change the cart")
	}
}

func TestSession_ClearCart(t *testing.T) {
	s := &Session{ID: "s1"}
	s.AddCartEntry(1, 2)

	s.ClearCart()
	if len(s.CartEntries()) != 0 {
		t.Fatal("cart should be empty after ClearCart")
	}
}

// CartEntriesはコピーを返す。呼び出し側の変更がセッションに波及しない。
func TestSession_CartEntriesIsCopy(t *testing.T) {
	s := &Session{ID: "s1"}
	s.AddCartEntry(1, 2)

	entries := s.CartEntries()
	entries[0].Cantidad = 999

	if got := s.CartEntries()[0].Cantidad; got != 2 {
		t.Fatalf("session cart mutated through the copy: %d", got)
	}
}

func TestSession_FlashIsOneShot(t *testing.T) {
	s := &Session{ID: "s1"}
	s.SetFlash("hola")

	if got := s.TakeFlash(); got != "hola" {
		t.Fatalf("expected flash, got %q", got)
	}
	if got := s.TakeFlash(); got != "" {
		t.Fatalf("flash should be consumed, got %q", got)
	}
}
