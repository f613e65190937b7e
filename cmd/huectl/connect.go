package main

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/samber/lo"
	"github.com/wheelibin/huelib/bridge"
	"github.com/wheelibin/huelib/internal/repos"
)

// minMatchScore is the lowest name similarity accepted as a match.
const minMatchScore = 0.5

var errNoBridge = errors.New("no bridge configured, run 'huectl discover' and 'huectl register' first")

func openRepo() (*repos.BridgeRepo, func(), error) {
	db, err := sql.Open("sqlite3", cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	repo, err := repos.NewBridgeRepo(logger, db)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return repo, func() { db.Close() }, nil
}

// credentials returns the address and username to use, from the config when
// both are set, otherwise from the stored bridges.
func credentials() (string, string, error) {
	if cfg.BridgeIP != "" && cfg.Username != "" {
		return cfg.BridgeIP, cfg.Username, nil
	}

	repo, closeRepo, err := openRepo()
	if err != nil {
		return "", "", err
	}
	defer closeRepo()

	var stored *repos.BridgeCredentials
	if cfg.BridgeIP != "" {
		stored, err = repo.Get(cfg.BridgeIP)
	} else {
		var all []repos.BridgeCredentials
		all, err = repo.All()
		if len(all) > 0 {
			stored = &all[0]
		}
	}
	if err != nil {
		return "", "", err
	}
	if stored == nil {
		return "", "", errNoBridge
	}

	if err := repo.MarkUsed(stored.Address, time.Now()); err != nil {
		logger.Warn("unable to update bridge usage", "err", err)
	}
	return stored.Address, stored.Username, nil
}

func connect() (*bridge.Bridge, error) {
	address, username, err := credentials()
	if err != nil {
		return nil, err
	}
	logger.Debug("connecting", "bridge", address)
	return bridge.NewWithTransport(address, username, logger, bridge.NewHTTPTransport(logger, cfg.Timeout)), nil
}

// bestMatch resolves query to an id. An exact id wins, otherwise the most
// similar name.
func bestMatch(query string, namesByID map[string]string) (string, error) {
	if _, ok := namesByID[query]; ok {
		return query, nil
	}

	var bestScore float64
	var bestID string
	for _, id := range lo.Keys(namesByID) {
		score := strutil.Similarity(query, namesByID[id], metrics.NewSorensenDice())
		if score > bestScore || (score == bestScore && score > 0 && id < bestID) {
			bestScore = score
			bestID = id
		}
	}

	if bestScore < minMatchScore {
		return "", fmt.Errorf("nothing matches %q", query)
	}
	logger.Debug("matched name", "query", query, "id", bestID, "name", namesByID[bestID], "score", bestScore)
	return bestID, nil
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 8, 8, 1, ' ', 0)
}
