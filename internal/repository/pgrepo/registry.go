package pgrepo

import (
	"fmt"

	"github.com/fsdevblog/umbrella-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/umbrella-ledger/pkg/uow"
)

// NewUnitOfWork создает unit of work поверх conn и регистрирует в нем все репозитории пакета.
func NewUnitOfWork(conn uow.Conn) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	factories := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.AccountRepoName: func(db uow.DBTX) uow.Repository {
			return NewAccountRepository(db)
		},
		repoargs.LedgerEntryRepoName: func(db uow.DBTX) uow.Repository {
			return NewLedgerEntryRepository(db)
		},
		repoargs.WagerRepoName: func(db uow.DBTX) uow.Repository {
			return NewWagerRepository(db)
		},
		repoargs.MatchRepoName: func(db uow.DBTX) uow.Repository {
			return NewMatchRepository(db)
		},
	}
	for name, factory := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), factory); regErr != nil {
			return nil, fmt.Errorf("init UOW: %w", regErr)
		}
	}
	return unitOfWork, nil
}
