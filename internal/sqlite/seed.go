// This file implements built-in stack seeding on backend attach.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/casks-mutters/web3-privacy-matrix/pkg/types"
)

// builtInStacks defines the stacks seeded on Attach. Slice order is the
// catalog declaration order; it determines each stack's position.
var builtInStacks = []types.PrivacyStack{
	{
		Key:               types.StackAztec,
		Name:              "Aztec-style zk Rollup",
		Family:            "zk-SNARK privacy L2",
		Description:       "Encrypted L2 state and zero-knowledge proofs over Ethereum.",
		PrivacyLevel:      9,
		SoundnessFocus:    8,
		PerformanceCost:   7,
		DevComplexity:     8,
		EcosystemMaturity: 7,
	},
	{
		Key:               types.StackZama,
		Name:              "Zama-style FHE Compute",
		Family:            "FHE + Web3",
		Description:       "Fully homomorphic encryption over on-chain or off-chain data.",
		PrivacyLevel:      8,
		SoundnessFocus:    9,
		PerformanceCost:   9,
		DevComplexity:     9,
		EcosystemMaturity: 5,
	},
	{
		Key:               types.StackSoundness,
		Name:              "Soundness-first Lab",
		Family:            "Formal verification",
		Description:       "Specification-driven, proof-oriented engineering for Web3 protocols.",
		PrivacyLevel:      6,
		SoundnessFocus:    10,
		PerformanceCost:   6,
		DevComplexity:     7,
		EcosystemMaturity: 8,
	},
}

// seedStacks inserts the built-in stacks if the stacks table is empty.
// Seeding is idempotent: a populated table is left untouched.
func seedStacks(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM stacks").Scan(&count); err != nil {
		return fmt.Errorf("counting stacks: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	for i, s := range builtInStacks {
		_, err = tx.Exec(
			`INSERT INTO stacks (key, name, family, description, privacy_level,
				soundness_focus, performance_cost, dev_complexity, ecosystem_maturity, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			s.Key, s.Name, s.Family, s.Description, s.PrivacyLevel,
			s.SoundnessFocus, s.PerformanceCost, s.DevComplexity, s.EcosystemMaturity, i,
		)
		if err != nil {
			return fmt.Errorf("seeding stack %s: %w", s.Key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed transaction: %w", err)
	}
	return nil
}
