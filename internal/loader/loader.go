// Package loader reads purchase-history exports from disk. It belongs to
// the presentation side of the system: the analytics engine itself never
// performs I/O and receives the parsed slice as a constructor argument.
package loader

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dlitvin/warehouse-insights/internal/domain"
)

// LoadFile reads a JSON receipt export and returns its transactions.
func LoadFile(path string) ([]domain.Transaction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loader: read %s: %w", path, err)
	}
	txs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loader: %s: %w", path, err)
	}
	return txs, nil
}

// Parse decodes a JSON document containing an array of transactions.
func Parse(data []byte) ([]domain.Transaction, error) {
	var txs []domain.Transaction
	if err := json.Unmarshal(data, &txs); err != nil {
		return nil, fmt.Errorf("decode transactions: %w", err)
	}
	return txs, nil
}
