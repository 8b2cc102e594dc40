// Package ledgerstore persists the table-order ledger to a JSON file.
// It is the server-side analogue of the sales terminal's local storage:
// a single fixed key, whole-map writes, last writer wins.
package ledgerstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/dcamacho/barkeep-api/internal/domain/ledger"
	domainRepo "github.com/dcamacho/barkeep-api/internal/domain/repository"
)

const ledgerFileName = "table_orders.json"

type fileStore struct {
	path string
}

// NewFileStore creates a ledger store rooted at the given storage
// directory, creating the directory if needed.
func NewFileStore(storagePath string) (domainRepo.LedgerStore, error) {
	if err := os.MkdirAll(storagePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &fileStore{path: filepath.Join(storagePath, ledgerFileName)}, nil
}

// Load reads the persisted map. A missing file is an empty ledger, not
// an error. Table numbers are serialized as string keys so the on-disk
// format stays a plain JSON object.
func (s *fileStore) Load() (map[int]*ledger.TableOrder, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[int]*ledger.TableOrder{}, nil
		}
		return nil, fmt.Errorf("failed to read ledger file: %w", err)
	}

	raw := map[string]*ledger.TableOrder{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode ledger file: %w", err)
	}

	orders := make(map[int]*ledger.TableOrder, len(raw))
	for key, order := range raw {
		table, err := strconv.Atoi(key)
		if err != nil || order == nil {
			continue
		}
		orders[table] = order
	}
	return orders, nil
}

// Save rewrites the whole map atomically via a temp-file rename.
func (s *fileStore) Save(orders map[int]*ledger.TableOrder) error {
	raw := make(map[string]*ledger.TableOrder, len(orders))
	for table, order := range orders {
		raw[strconv.Itoa(table)] = order
	}

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode ledger: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write ledger file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace ledger file: %w", err)
	}
	return nil
}
