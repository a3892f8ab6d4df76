// Package memrepo хранилище в памяти процесса. Реализует uow.UOW: транзакции выполняются строго
// последовательно, при ошибке состояние откатывается к снимку, сделанному в начале транзакции.
package memrepo

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"github.com/fsdevblog/umbrella-ledger/internal/domain"
	"github.com/fsdevblog/umbrella-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/umbrella-ledger/pkg/uow"
	"github.com/google/uuid"
)

type oddsKey struct {
	matchID   int64
	bookmaker string
	outcome   domain.Outcome
}

type state struct {
	accounts     map[int64]domain.Account
	entries      map[int64]domain.LedgerEntry
	entryByToken map[uuid.UUID]int64
	wagers       map[int64]domain.Wager
	matches      map[int64]domain.Match
	matchByExtID map[string]int64
	odds         map[oddsKey]domain.Odds

	entrySeq int64
	wagerSeq int64
	matchSeq int64
}

func newState() *state {
	return &state{
		accounts:     make(map[int64]domain.Account),
		entries:      make(map[int64]domain.LedgerEntry),
		entryByToken: make(map[uuid.UUID]int64),
		wagers:       make(map[int64]domain.Wager),
		matches:      make(map[int64]domain.Match),
		matchByExtID: make(map[string]int64),
		odds:         make(map[oddsKey]domain.Odds),
	}
}

// clone копирует состояние. Значения в мапах хранятся по значению, указатели внутри них не изменяются
// на месте, поэтому поверхностной копии достаточно.
func (s *state) clone() *state {
	return &state{
		accounts:     maps.Clone(s.accounts),
		entries:      maps.Clone(s.entries),
		entryByToken: maps.Clone(s.entryByToken),
		wagers:       maps.Clone(s.wagers),
		matches:      maps.Clone(s.matches),
		matchByExtID: maps.Clone(s.matchByExtID),
		odds:         maps.Clone(s.odds),
		entrySeq:     s.entrySeq,
		wagerSeq:     s.wagerSeq,
		matchSeq:     s.matchSeq,
	}
}

type Store struct {
	mu sync.Mutex
	st *state
}

func New() *Store {
	return &Store{st: newState()}
}

// Register не поддерживается: репозитории хранилища известны заранее.
func (s *Store) Register(_ uow.RepositoryName, _ uow.RepositoryFactory) error {
	return uow.ErrRegistrationUnsupported
}

// Do выполняет fn эксклюзивно. Если fn вернула ошибку или запаниковала, все изменения откатываются.
func (s *Store) Do(ctx context.Context, fn func(context.Context, uow.TX) error) (err error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr //nolint:wrapcheck
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	committed := false
	defer func() {
		if !committed {
			s.st = snapshot
		}
	}()

	if fnErr := fn(ctx, &transaction{s: s}); fnErr != nil {
		return fnErr
	}
	committed = true
	return nil
}

// GetRepository возвращает репозиторий, каждая операция которого выполняется под блокировкой хранилища.
func (s *Store) GetRepository(name uow.RepositoryName) (uow.Repository, error) {
	return s.repository(name, false)
}

func (s *Store) repository(name uow.RepositoryName, inTx bool) (uow.Repository, error) {
	b := base{s: s, inTx: inTx}
	switch repoargs.RepositoryName(name) {
	case repoargs.AccountRepoName:
		return &AccountRepository{base: b}, nil
	case repoargs.LedgerEntryRepoName:
		return &LedgerEntryRepository{base: b}, nil
	case repoargs.WagerRepoName:
		return &WagerRepository{base: b}, nil
	case repoargs.MatchRepoName:
		return &MatchRepository{base: b}, nil
	default:
		return nil, fmt.Errorf("%w: %s", uow.ErrRepositoryNotRegistered, name)
	}
}

type transaction struct {
	s *Store
}

func (t *transaction) Get(name uow.RepositoryName) (uow.Repository, error) {
	return t.s.repository(name, true)
}

// base общая часть репозиториев. Внутри транзакции блокировка уже захвачена в Store.Do.
type base struct {
	s    *Store
	inTx bool
}

func (b base) with(fn func(st *state) error) error {
	if !b.inTx {
		b.s.mu.Lock()
		defer b.s.mu.Unlock()
	}
	return fn(b.s.st)
}

func notFound(format string, args ...any) error {
	return fmt.Errorf("[memrepo/%s] %w", fmt.Sprintf(format, args...), domain.ErrRecordNotFound)
}

func duplicate(format string, args ...any) error {
	return fmt.Errorf("[memrepo/%s] %w", fmt.Sprintf(format, args...), domain.ErrDuplicateKey)
}
