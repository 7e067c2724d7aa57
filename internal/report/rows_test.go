package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casks-mutters/web3-privacy-matrix/pkg/types"
)

func testStacks() []types.PrivacyStack {
	return []types.PrivacyStack{
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
}

func TestBuildRows_BaseFields(t *testing.T) {
	rows := BuildRows(testStacks(), false)
	require.Len(t, rows, 3)

	for _, row := range rows {
		assert.Len(t, row, 8, "rows without score carry exactly the base fields")
		for _, field := range types.FieldOrder() {
			assert.Contains(t, row, field)
		}
		assert.NotContains(t, row, types.FieldCompositeScore)
		assert.NotContains(t, row, "description")
	}

	assert.Equal(t, "aztec", rows[0][types.FieldKey])
	assert.Equal(t, "Aztec-style zk Rollup", rows[0][types.FieldName])
	assert.Equal(t, 9, rows[0][types.FieldPrivacyLevel])
	assert.Equal(t, 5, rows[1][types.FieldEcosystemMaturity])
}

func TestBuildRows_WithScore(t *testing.T) {
	rows := BuildRows(testStacks(), true)
	require.Len(t, rows, 3)

	for _, row := range rows {
		assert.Len(t, row, 9)
	}
	assert.Equal(t, 6.15, rows[0][types.FieldCompositeScore])
	assert.Equal(t, 5.85, rows[1][types.FieldCompositeScore])
	assert.Equal(t, 5.75, rows[2][types.FieldCompositeScore])
}

func TestBuildRows_PreservesOrder(t *testing.T) {
	rows := BuildRows(testStacks(), false)
	require.Len(t, rows, 3)
	assert.Equal(t, "aztec", rows[0][types.FieldKey])
	assert.Equal(t, "zama", rows[1][types.FieldKey])
	assert.Equal(t, "soundness", rows[2][types.FieldKey])
}

func TestBuildRows_Empty(t *testing.T) {
	rows := BuildRows(nil, true)
	assert.NotNil(t, rows, "empty input must produce an empty slice, not nil")
	assert.Len(t, rows, 0)
}

func TestHeaders(t *testing.T) {
	base := Headers(false)
	assert.Equal(t, types.FieldOrder(), base)

	withScore := Headers(true)
	require.Len(t, withScore, 9)
	assert.Equal(t, types.FieldCompositeScore, withScore[8])
}
