package repoargs

type RepositoryName string

const (
	AccountRepoName     RepositoryName = "account"
	LedgerEntryRepoName RepositoryName = "ledger_entry"
	WagerRepoName       RepositoryName = "wager"
	MatchRepoName       RepositoryName = "match"
)
