package repository

import (
	"github.com/dcamacho/barkeep-api/internal/domain/ledger"
)

// LedgerStore persists the table-number -> order map across restarts.
// The store is whole-map, last-writer-wins: there is no cross-session
// merging, mirroring the single-terminal design.
type LedgerStore interface {
	Load() (map[int]*ledger.TableOrder, error)
	Save(orders map[int]*ledger.TableOrder) error
}
