package store

import (
	"encoding/json"
	"fmt"

	"github.com/etnz/networth"
	"github.com/rs/zerolog"
)

// LoadResult tells how the stored aggregate was, or was not, recovered.
type LoadResult int

const (
	// Missing: nothing is stored.
	Missing LoadResult = iota
	// Plain: the aggregate was stored as plain JSON.
	Plain
	// Decrypted: the aggregate was sealed and opened with the current passphrase.
	Decrypted
	// Unreadable: the store failed to return the value.
	Unreadable
	// Locked: the value is not JSON and no passphrase is configured.
	Locked
	// Undecryptable: the value cannot be opened with the current passphrase.
	Undecryptable
	// Malformed: the value, or what it decrypts to, is JSON of the wrong shape.
	Malformed
)

var loadResultNames = [...]string{
	Missing:       "missing",
	Plain:         "plain",
	Decrypted:     "decrypted",
	Unreadable:    "unreadable",
	Locked:        "locked",
	Undecryptable: "undecryptable",
	Malformed:     "malformed",
}

func (r LoadResult) String() string {
	if r < 0 || int(r) >= len(loadResultNames) {
		return fmt.Sprintf("LoadResult(%d)", int(r))
	}
	return loadResultNames[r]
}

// Present reports whether an aggregate was recovered.
func (r LoadResult) Present() bool { return r == Plain || r == Decrypted }

// Envelope saves and loads the whole aggregate under DataKey, sealing it when
// a passphrase is stored under PassphraseKey.
//
// Changing the passphrase does not touch the stored aggregate: it keeps the
// protection it had when last saved until the next Save.
type Envelope struct {
	store Store
	log   zerolog.Logger
}

// NewEnvelope returns an Envelope over s. Recovered failures are logged to log.
func NewEnvelope(s Store, log zerolog.Logger) *Envelope {
	return &Envelope{store: s, log: log.With().Str("component", "envelope").Logger()}
}

// Passphrase returns the configured passphrase, if any. An unreadable
// passphrase counts as none.
func (e *Envelope) Passphrase() (string, bool) {
	p, ok, err := e.store.Get(PassphraseKey)
	if err != nil {
		e.log.Warn().Err(err).Msg("cannot read passphrase, encryption is considered disabled")
		return "", false
	}
	if !ok || p == "" {
		return "", false
	}
	return p, true
}

// EncryptionEnabled reports whether Save seals the aggregate.
func (e *Envelope) EncryptionEnabled() bool {
	_, ok := e.Passphrase()
	return ok
}

// SetPassphrase stores the passphrase used by later Save and Load. An empty
// passphrase disables encryption.
func (e *Envelope) SetPassphrase(passphrase string) error {
	if passphrase == "" {
		if err := e.store.Remove(PassphraseKey); err != nil {
			return fmt.Errorf("cannot disable encryption: %w", err)
		}
		return nil
	}
	if err := e.store.Set(PassphraseKey, passphrase); err != nil {
		return fmt.Errorf("cannot store passphrase: %w", err)
	}
	return nil
}

// Save serializes data and stores it, sealed if a passphrase is configured.
func (e *Envelope) Save(data networth.FinancialData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("cannot serialize data: %w", err)
	}
	value := string(raw)
	if p, ok := e.Passphrase(); ok {
		if value, err = seal(p, value); err != nil {
			return fmt.Errorf("cannot encrypt data: %w", err)
		}
	}
	if err := e.store.Set(DataKey, value); err != nil {
		return fmt.Errorf("cannot store data: %w", err)
	}
	return nil
}

// Load returns the stored aggregate, or false when there is none or it cannot
// be recovered. Use Inspect to tell those cases apart.
func (e *Envelope) Load() (networth.FinancialData, bool) {
	data, res := e.Inspect()
	if !res.Present() {
		return networth.FinancialData{}, false
	}
	return data, true
}

// Inspect loads the stored aggregate and tells which stage decided the outcome.
//
// The value is first decoded as plain JSON. If it is not JSON at all, it is
// opened with the configured passphrase and the result decoded. The returned
// data is only meaningful when the result is Present; it never holds nil
// sequences.
func (e *Envelope) Inspect() (networth.FinancialData, LoadResult) {
	raw, ok, err := e.store.Get(DataKey)
	if err != nil {
		e.log.Warn().Err(err).Msg("cannot read stored data")
		return networth.FinancialData{}, Unreadable
	}
	if !ok || raw == "" {
		return networth.FinancialData{}, Missing
	}

	if json.Valid([]byte(raw)) {
		return e.decode(raw, Plain)
	}

	p, ok := e.Passphrase()
	if !ok {
		e.log.Info().Msg("stored data is encrypted but no passphrase is configured")
		return networth.FinancialData{}, Locked
	}
	plain, err := unseal(p, raw)
	if err != nil {
		e.log.Info().Err(err).Msg("stored data cannot be decrypted with the current passphrase")
		return networth.FinancialData{}, Undecryptable
	}
	return e.decode(plain, Decrypted)
}

// decode parses raw as an aggregate, reporting success as res.
func (e *Envelope) decode(raw string, res LoadResult) (networth.FinancialData, LoadResult) {
	var data *networth.FinancialData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		e.log.Warn().Err(err).Stringer("stage", res).Msg("stored data is malformed")
		return networth.FinancialData{}, Malformed
	}
	if data == nil { // a JSON null
		return networth.FinancialData{}, Missing
	}
	return data.Clone(), res
}

// Clear removes the stored aggregate. The passphrase is kept.
func (e *Envelope) Clear() error {
	if err := e.store.Remove(DataKey); err != nil {
		return fmt.Errorf("cannot clear data: %w", err)
	}
	return nil
}
