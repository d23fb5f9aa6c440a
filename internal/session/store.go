package session

import (
	"sync"

	"github.com/RafaelReds/EcoMarket/internal/domain/model"
	"github.com/google/uuid"
)

// ログイン中ユーザーの情報（Cookieセッションに載せる分だけ）
type Identity struct {
	ID     int64      `json:"id"`
	Nombre string     `json:"nombre"`
	Rol    model.Role `json:"rol"`
}

// カートの1行。確定まで永続化しない。
type CartEntry struct {
	IDProducto int64
	Cantidad   int64
}

// Session は訪問者1人分の状態。
// 同一セッションへの同時リクエストがあり得るのでロックで守る。
type Session struct {
	ID string

	mu    sync.Mutex
	user  *Identity
	cart  []CartEntry
	flash string
}

func (s *Session) User() (Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return Identity{}, false
	}
	return *s.user, true
}

func (s *Session) SetUser(id Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &id
}

func (s *Session) ClearUser() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
}

// CartEntries はカートのコピーを返す（呼び出し側で自由に使える）。
func (s *Session) CartEntries() []CartEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]CartEntry, len(s.cart))
	copy(out, s.cart)
	return out
}

// AddCartEntry は同一商品なら数量を加算し、無ければ末尾に追加する。
// 同じ商品の行が2本できることはない。
func (s *Session) AddCartEntry(productID int64, cantidad int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].IDProducto == productID {
			s.cart[i].Cantidad += cantidad
			return
		}
	}
	s.cart = append(s.cart, CartEntry{IDProducto: productID, Cantidad: cantidad})
}

// RemoveCartEntry は該当商品の行を全て取り除く。
func (s *Session) RemoveCartEntry(productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.cart[:0]
	for _, e := range s.cart {
		if e.IDProducto != productID {
			kept = append(kept, e)
		}
	}
	s.cart = kept
}

func (s *Session) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
}

func (s *Session) SetFlash(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flash = msg
}

// TakeFlash は1回だけ読めるメッセージ。読んだら消える。
func (s *Session) TakeFlash() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg := s.flash
	s.flash = ""
	return msg
}

// Store はプロセス内セッションの置き場。
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Create は新しいセッションを発行する。
func (st *Store) Create() *Session {
	s := &Session{ID: uuid.NewString()}

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()

	return s
}

func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}

// Destroy はログアウト時のセッション破棄。
func (st *Store) Destroy(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}
