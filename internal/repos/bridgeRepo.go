package repos

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

const initSchema = `
  CREATE TABLE IF NOT EXISTS bridge (
    address VARCHAR(255) PRIMARY KEY,
    username TEXT NOT NULL,
    client_key TEXT,
    name TEXT,
    registered_time TIMESTAMP,
    last_used_time TIMESTAMP
  );
`

// BridgeCredentials is a user registered with a bridge.
type BridgeCredentials struct {
	Address        string
	Username       string
	ClientKey      string
	Name           string
	RegisteredTime time.Time
	LastUsedTime   *time.Time
}

// BridgeRepo stores the credentials of the bridges huectl has registered with.
type BridgeRepo struct {
	logger *log.Logger
	db     *sql.DB
}

func NewBridgeRepo(logger *log.Logger, db *sql.DB) (*BridgeRepo, error) {

	_, err := db.Exec(initSchema)
	if err != nil {
		return nil, fmt.Errorf("Error initialising bridge schema: %w", err)
	}

	return &BridgeRepo{logger: logger, db: db}, nil
}

// Save stores the credentials, replacing any stored for the same address.
func (r *BridgeRepo) Save(c BridgeCredentials) error {
	_, err := r.db.Exec(`
    INSERT INTO bridge (address, username, client_key, name, registered_time)
    VALUES ($1, $2, $3, $4, $5)
    ON CONFLICT(address) DO UPDATE SET
      username = excluded.username,
      client_key = excluded.client_key,
      name = excluded.name,
      registered_time = excluded.registered_time,
      last_used_time = null`,
		c.Address, c.Username, c.ClientKey, c.Name, c.RegisteredTime)
	if err != nil {
		return fmt.Errorf("Error saving credentials for bridge (%s): %w", c.Address, err)
	}
	r.logger.Debug("saved bridge credentials", "address", c.Address)
	return nil
}

// Get returns the credentials for address, or nil when none are stored.
func (r *BridgeRepo) Get(address string) (*BridgeCredentials, error) {
	row := r.db.QueryRow(`
    SELECT address, username, coalesce(client_key, ''), coalesce(name, ''), registered_time, last_used_time
    FROM bridge
    WHERE address = $1`, address)

	c, err := scanCredentials(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("Error reading credentials for bridge (%s): %w", address, err)
	}
	return c, nil
}

// All returns every stored bridge, most recently used first.
func (r *BridgeRepo) All() ([]BridgeCredentials, error) {
	rows, err := r.db.Query(`
    SELECT address, username, coalesce(client_key, ''), coalesce(name, ''), registered_time, last_used_time
    FROM bridge
    ORDER BY coalesce(last_used_time, registered_time) DESC`)
	if err != nil {
		return nil, fmt.Errorf("Error reading bridges: %w", err)
	}
	defer rows.Close()

	all := []BridgeCredentials{}
	for rows.Next() {
		c, err := scanCredentials(rows)
		if err != nil {
			return nil, fmt.Errorf("Error reading bridges: %w", err)
		}
		all = append(all, *c)
	}
	return all, rows.Err()
}

func (r *BridgeRepo) MarkUsed(address string, at time.Time) error {
	_, err := r.db.Exec("UPDATE bridge SET last_used_time = $1 WHERE address = $2", at, address)
	if err != nil {
		return fmt.Errorf("Error marking bridge (%s) as used: %w", address, err)
	}
	return nil
}

func (r *BridgeRepo) Delete(address string) error {
	_, err := r.db.Exec("DELETE FROM bridge WHERE address = $1", address)
	if err != nil {
		return fmt.Errorf("Error deleting bridge (%s): %w", address, err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCredentials(row scanner) (*BridgeCredentials, error) {
	var (
		c        BridgeCredentials
		lastUsed sql.NullTime
	)
	err := row.Scan(&c.Address, &c.Username, &c.ClientKey, &c.Name, &c.RegisteredTime, &lastUsed)
	if err != nil {
		return nil, err
	}
	if lastUsed.Valid {
		c.LastUsedTime = &lastUsed.Time
	}
	return &c, nil
}
