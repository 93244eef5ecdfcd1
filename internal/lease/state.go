package lease

import (
	"github.com/amoylab/phongtro/internal/apiserver/database"
)

// contractTransitions lists every contract status change the service makes.
// Contracts are only ever created as drafts; expired is reachable but never
// set automatically.
var contractTransitions = map[database.ContractStatus][]database.ContractStatus{
	database.ContractDraft:  {database.ContractActive, database.ContractTerminated},
	database.ContractActive: {database.ContractTerminated, database.ContractExpired},
}

// CanTransition reports whether a contract may move from one status to another
func CanTransition(from, to database.ContractStatus) bool {
	for _, s := range contractTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// ContractStatusValid reports whether s names a contract status
func ContractStatusValid(s database.ContractStatus) bool {
	switch s {
	case database.ContractDraft, database.ContractActive, database.ContractExpired, database.ContractTerminated:
		return true
	}
	return false
}
