package session

import "sync"

// Store はブラウザセッションごとのカートを保存する約束。
// セッションの寿命の間だけ持てばよい（RDBには入れない）。
// 読み書きはリクエスト単位のlast-write-wins（同一セッションの同時更新で
// 片方が上書きされ得るのは許容された制限）。
type Store interface {
	Get(sessionID string) (Cart, bool)
	Set(sessionID string, cart Cart)
	Delete(sessionID string)
}

// MemoryStore はプロセス内メモリのセッションストア。
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string]Cart
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string]Cart)}
}

func (s *MemoryStore) Get(sessionID string) (Cart, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart, ok := s.carts[sessionID]
	if !ok {
		return Cart{}, false
	}
	return cart.Copy(), true
}

func (s *MemoryStore) Set(sessionID string, cart Cart) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[sessionID] = cart.Copy()
}

func (s *MemoryStore) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, sessionID)
}
