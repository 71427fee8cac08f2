package marketdata

import "github.com/bcdannyboy/optionrisk/errs"

// Store is a mapping from asset id to MarketData. It is the exclusive
// owner of its entries and is not safe for concurrent mutation.
type Store struct {
	entries map[string]MarketData
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{entries: make(map[string]MarketData)}
}

// Add inserts md under its asset id, failing if the id already exists.
func (s *Store) Add(md MarketData) error {
	const op = "Store.Add"
	if md.AssetID == "" {
		return errs.InvalidArg(op, "asset id must not be empty")
	}
	if err := md.Validate(); err != nil {
		return err
	}
	if _, exists := s.entries[md.AssetID]; exists {
		return errs.InvalidStateErr(op, "market data for %q already exists, use Update instead", md.AssetID)
	}
	s.entries[md.AssetID] = md
	return nil
}

// Update replaces the entry for md's asset id, failing if it does not
// already exist.
func (s *Store) Update(md MarketData) error {
	const op = "Store.Update"
	if md.AssetID == "" {
		return errs.InvalidArg(op, "asset id must not be empty")
	}
	if err := md.Validate(); err != nil {
		return err
	}
	if _, exists := s.entries[md.AssetID]; !exists {
		return errs.InvalidStateErr(op, "market data for %q does not exist, use Add instead", md.AssetID)
	}
	s.entries[md.AssetID] = md
	return nil
}

// Get returns the MarketData for assetID, failing if it is missing.
func (s *Store) Get(assetID string) (MarketData, error) {
	const op = "Store.Get"
	if assetID == "" {
		return MarketData{}, errs.InvalidArg(op, "asset id must not be empty")
	}
	md, exists := s.entries[assetID]
	if !exists {
		return MarketData{}, errs.InvalidStateErr(op, "market data for %q not found", assetID)
	}
	return md, nil
}

// Has reports whether assetID has an entry.
func (s *Store) Has(assetID string) bool {
	_, exists := s.entries[assetID]
	return exists
}

// Remove deletes the entry for assetID, failing if it does not exist.
func (s *Store) Remove(assetID string) error {
	const op = "Store.Remove"
	if assetID == "" {
		return errs.InvalidArg(op, "asset id must not be empty")
	}
	if _, exists := s.entries[assetID]; !exists {
		return errs.InvalidStateErr(op, "market data for %q not found", assetID)
	}
	delete(s.entries, assetID)
	return nil
}

// Clear removes every entry.
func (s *Store) Clear() {
	s.entries = make(map[string]MarketData)
}

// Size returns the number of entries.
func (s *Store) Size() int {
	return len(s.entries)
}

// Snapshot returns a read-only copy of the underlying mapping.
func (s *Store) Snapshot() map[string]MarketData {
	out := make(map[string]MarketData, len(s.entries))
	for k, v := range s.entries {
		out[k] = v
	}
	return out
}
