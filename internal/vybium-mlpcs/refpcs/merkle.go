// Package refpcs provides a Merkle-tree-backed reference InnerPCS
// implementation: a test-only inner commitment scheme the Batch-PCS
// adapter can be exercised against, grounded on the teacher's MerkleTree
// (previously at internal/vybium-starks-vm/core/merkle.go).
package refpcs

import (
	"crypto/sha256"
	"fmt"
)

// MerkleTree commits to a slice of leaves via sha256, matching the
// teacher's MerkleTree shape but without its primary
// Poseidon-over-a-field-element hash path, which depended on the dropped
// core.NewField/HashBytesToBytes helpers (see DESIGN.md): sha256, the
// teacher's fallback, is the only hash used here, rather than recreating a
// second field-friendly hash.
type MerkleTree struct {
	root   []byte
	leaves [][]byte
	levels [][][]byte
}

// NewMerkleTree builds a tree over data, hashing each leaf and duplicating
// the last node at any odd level.
func NewMerkleTree(data [][]byte) (*MerkleTree, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("refpcs: cannot build a Merkle tree over zero leaves")
	}

	leaves := make([][]byte, len(data))
	for i, item := range data {
		leaves[i] = computeHash(item)
	}

	levels := [][][]byte{leaves}
	currentLevel := leaves

	for len(currentLevel) > 1 {
		nextLevel := make([][]byte, 0, (len(currentLevel)+1)/2)

		for i := 0; i < len(currentLevel); i += 2 {
			var combined []byte
			if i+1 < len(currentLevel) {
				combined = concatHashes(currentLevel[i], currentLevel[i+1])
			} else {
				combined = concatHashes(currentLevel[i], currentLevel[i])
			}
			nextLevel = append(nextLevel, computeHash(combined))
		}

		levels = append(levels, nextLevel)
		currentLevel = nextLevel
	}

	return &MerkleTree{root: currentLevel[0], leaves: leaves, levels: levels}, nil
}

// Root returns the Merkle root.
func (mt *MerkleTree) Root() []byte { return mt.root }

// NumLeaves returns the number of committed leaves.
func (mt *MerkleTree) NumLeaves() int { return len(mt.leaves) }

// ProofNode is one sibling hash along an authentication path.
type ProofNode struct {
	Hash    []byte
	IsRight bool // true if this node is the right child, false if left
}

// Proof produces the authentication path for the leaf at index.
func (mt *MerkleTree) Proof(index int) ([]ProofNode, error) {
	if index < 0 || index >= len(mt.leaves) {
		return nil, fmt.Errorf("refpcs: leaf index %d out of range [0, %d)", index, len(mt.leaves))
	}

	var proof []ProofNode
	currentIndex := index

	for level := 0; level < len(mt.levels)-1; level++ {
		currentLevel := mt.levels[level]

		var siblingIndex int
		var isRight bool
		if currentIndex%2 == 0 {
			siblingIndex = currentIndex + 1
			isRight = true
		} else {
			siblingIndex = currentIndex - 1
			isRight = false
		}

		if siblingIndex < len(currentLevel) {
			proof = append(proof, ProofNode{Hash: currentLevel[siblingIndex], IsRight: isRight})
		} else {
			// The last node of an odd level was hashed with itself.
			proof = append(proof, ProofNode{Hash: currentLevel[currentIndex], IsRight: true})
		}

		currentIndex /= 2
	}

	return proof, nil
}

// VerifyProof checks that leaf, combined with proof, hashes up to root.
func VerifyProof(root []byte, leaf []byte, proof []ProofNode, index int) bool {
	hash := computeHash(leaf)

	for _, node := range proof {
		var combined []byte
		if node.IsRight {
			combined = concatHashes(hash, node.Hash)
		} else {
			combined = concatHashes(node.Hash, hash)
		}
		hash = computeHash(combined)
	}

	return string(hash) == string(root)
}

func concatHashes(a, b []byte) []byte {
	out := make([]byte, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

func computeHash(data []byte) []byte {
	h := sha256.Sum256(data)
	return h[:]
}
