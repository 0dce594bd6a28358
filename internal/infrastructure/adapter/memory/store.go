package memory

import (
	"sort"
	"sync"

	"github.com/amirhossein-jamali/voting-escrow/internal/domain/entity"
)

// Store holds escrow tables in process memory.
// Row-level exclusion is left to the account queue in front of it; the store
// applies a commit atomically and keeps operation IDs unique across open
// transactions, like the unique index on escrow_operations.
type Store struct {
	mu         sync.RWMutex
	locks      map[string]*entity.Lock
	operations map[string]*entity.Operation
	reserved   map[string]reservation // operation IDs staged by open transactions
	nextID     uint64
}

type reservation struct {
	tx      *memTx
	account string
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		locks:      make(map[string]*entity.Lock),
		operations: make(map[string]*entity.Operation),
		reserved:   make(map[string]reservation),
	}
}

func (s *Store) getLock(account string) (*entity.Lock, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	lock, ok := s.locks[account]
	if !ok {
		return nil, false
	}
	return lock.Clone(), true
}

func (s *Store) getOperation(operationID string) (*entity.Operation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	op, ok := s.operations[operationID]
	if !ok {
		return nil, false
	}
	return cloneOperation(op), true
}

func (s *Store) listOperations(account string) []*entity.Operation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var ops []*entity.Operation
	for _, op := range s.operations {
		if op.Account == account {
			ops = append(ops, cloneOperation(op))
		}
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i].ID > ops[j].ID })
	return ops
}

// reserve claims an operation ID for tx until it commits or rolls back.
// It returns the account and status of the conflicting record when taken.
func (s *Store) reserve(tx *memTx, op *entity.Operation) (string, string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.operations[op.OperationID]; ok {
		return existing.Account, string(existing.Status), false
	}
	if owner, ok := s.reserved[op.OperationID]; ok {
		return owner.account, "in progress", false
	}
	s.reserved[op.OperationID] = reservation{tx: tx, account: op.Account}
	return "", "", true
}

// release drops the reservations held by tx; callers hold s.mu
func (s *Store) release(tx *memTx) {
	for _, op := range tx.ops {
		if s.reserved[op.OperationID].tx == tx {
			delete(s.reserved, op.OperationID)
		}
	}
}

// apply writes staged rows; callers hold s.mu
func (s *Store) apply(locks map[string]*entity.Lock, ops []*entity.Operation) {
	for account, lock := range locks {
		s.locks[account] = lock.Clone()
	}
	for _, op := range ops {
		if op.ID == 0 {
			s.nextID++
			op.ID = s.nextID
		}
		s.operations[op.OperationID] = cloneOperation(op)
	}
}

func cloneOperation(op *entity.Operation) *entity.Operation {
	return entity.RestoreOperation(*op, op.Amount())
}
