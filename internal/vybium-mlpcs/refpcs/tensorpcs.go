package refpcs

import (
	"fmt"

	"github.com/vybium/vybium-mlpcs/internal/vybium-mlpcs/backend"
	"github.com/vybium/vybium-mlpcs/internal/vybium-mlpcs/field"
	"github.com/vybium/vybium-mlpcs/internal/vybium-mlpcs/polynomial"
	"github.com/vybium/vybium-mlpcs/internal/vybium-mlpcs/transcript"
)

// TensorPCS is a transparent, non-succinct reference implementation of
// pcs.InnerPCS: it commits by Merkle-hashing every packed cell of the
// single polynomial it is given, and proves an evaluation by revealing
// every cell along with its individual Merkle authentication path so the
// verifier can check each one against the commitment and recompute the
// evaluation from the revealed cells. It exists only so the Batch-PCS
// adapter has a concrete inner scheme to run against in tests; a real
// deployment would plug in a succinct scheme (e.g. a sumcheck-based or
// FRI-based one) satisfying the same pcs.InnerPCS contract instead.
type TensorPCS[S field.Scalar[S]] struct {
	nVars int
	width int
	zero  S
	lift  func(S) field.Quartic
}

// New builds a TensorPCS committing polynomials of exactly nVars
// variables, packed at width, over base scalar type S with the given
// embedding into field.Quartic.
func New[S field.Scalar[S]](nVars, width int, zero S, lift func(S) field.Quartic) *TensorPCS[S] {
	return &TensorPCS[S]{nVars: nVars, width: width, zero: zero, lift: lift}
}

func (t *TensorPCS[S]) NVars() int { return t.nVars }

type tensorCommitted[S field.Scalar[S]] struct {
	cells []field.Packed[S]
	tree  *MerkleTree
}

// tensorProof carries every cell plus its individual Merkle authentication
// path, rather than the bare cell list: the verifier checks each cell
// against the commitment via VerifyProof instead of rebuilding the whole
// tree from scratch.
type tensorProof[S field.Scalar[S]] struct {
	cells []field.Packed[S]
	paths [][]ProofNode
}

func cellLeaves[S field.Scalar[S]](cells []field.Packed[S]) [][]byte {
	leaves := make([][]byte, len(cells))
	for i, cell := range cells {
		var buf []byte
		for _, lane := range cell.Lanes() {
			buf = append(buf, lane.Bytes()...)
		}
		leaves[i] = buf
	}
	return leaves
}

// Commit requires exactly one polynomial of NVars() variables and returns
// its Merkle root as the Commitment, keeping every packed cell as the
// prover-side Committed state.
func (t *TensorPCS[S]) Commit(polys []*polynomial.MultilinearExtension[S, field.Quartic]) (any, any, error) {
	if len(polys) != 1 {
		return nil, nil, fmt.Errorf("refpcs: TensorPCS.Commit requires exactly one polynomial, got %d", len(polys))
	}
	poly := polys[0]
	if poly.NVars() != t.nVars {
		return nil, nil, fmt.Errorf("refpcs: TensorPCS configured for %d variables, got %d", t.nVars, poly.NVars())
	}

	numCells := poly.Size() / poly.Width()
	cells := make([]field.Packed[S], numCells)
	for i := 0; i < numCells; i++ {
		cell, err := poly.PackedEvaluateOnHypercube(i)
		if err != nil {
			return nil, nil, err
		}
		cells[i] = cell
	}

	tree, err := NewMerkleTree(cellLeaves(cells))
	if err != nil {
		return nil, nil, err
	}

	return tree.Root(), tensorCommitted[S]{cells: cells, tree: tree}, nil
}

// ProveEvaluation checks only query's length and does not use be: the
// "proof" of a transparent scheme
// is every committed cell, each paired with its own Merkle authentication
// path against the tree built at Commit time, so the verifier checks each
// cell individually instead of rebuilding the whole tree from scratch.
func (t *TensorPCS[S]) ProveEvaluation(
	ch transcript.Challenger,
	committed any,
	polys []*polynomial.MultilinearExtension[S, field.Quartic],
	query []field.Quartic,
	be backend.Backend[S],
) (any, error) {
	state, ok := committed.(tensorCommitted[S])
	if !ok {
		return nil, fmt.Errorf("refpcs: TensorPCS.ProveEvaluation received a Committed value from a different scheme")
	}
	if len(query) != t.nVars {
		return nil, fmt.Errorf("refpcs: TensorPCS expected a %d-variable query, got %d", t.nVars, len(query))
	}
	if state.tree.NumLeaves() != len(state.cells) {
		return nil, fmt.Errorf("refpcs: committed cell count %d disagrees with Merkle tree leaf count %d", len(state.cells), state.tree.NumLeaves())
	}

	paths := make([][]ProofNode, len(state.cells))
	for i := range state.cells {
		path, err := state.tree.Proof(i)
		if err != nil {
			return nil, err
		}
		paths[i] = path
	}
	return tensorProof[S]{cells: state.cells, paths: paths}, nil
}

// VerifyEvaluation checks every revealed cell against commitment via its
// own Merkle authentication path, then recomputes the claimed evaluation
// through be instead of rebuilding a MultilinearExtension directly.
func (t *TensorPCS[S]) VerifyEvaluation(
	ch transcript.Challenger,
	commitment any,
	query []field.Quartic,
	proof any,
	values []field.Quartic,
	be backend.Backend[S],
) error {
	root, ok := commitment.([]byte)
	if !ok {
		return fmt.Errorf("refpcs: TensorPCS.VerifyEvaluation received a Commitment value from a different scheme")
	}
	p, ok := proof.(tensorProof[S])
	if !ok {
		return fmt.Errorf("refpcs: TensorPCS.VerifyEvaluation received a Proof value from a different scheme")
	}
	if len(values) != 1 {
		return fmt.Errorf("refpcs: TensorPCS expects exactly one claimed value, got %d", len(values))
	}
	if len(query) != t.nVars {
		return fmt.Errorf("refpcs: TensorPCS expected a %d-variable query, got %d", t.nVars, len(query))
	}
	numCells := (1 << t.nVars) / t.width
	if len(p.cells) != numCells || len(p.paths) != numCells {
		return fmt.Errorf("refpcs: expected %d revealed cells with paths, got %d cells and %d paths", numCells, len(p.cells), len(p.paths))
	}

	leaves := cellLeaves(p.cells)
	for i, leaf := range leaves {
		if !VerifyProof(root, leaf, p.paths[i], i) {
			return fmt.Errorf("refpcs: cell %d fails its Merkle authentication path against the commitment", i)
		}
	}

	mq, err := be.Query(query)
	if err != nil {
		return err
	}
	got, err := be.InnerProduct(mq, p.cells, t.lift)
	if err != nil {
		return err
	}
	if !got.Equal(values[0]) {
		return fmt.Errorf("refpcs: claimed evaluation does not match the revealed polynomial")
	}
	return nil
}

// ProofSize estimates the serialized size of a TensorPCS proof: every
// cell's lanes, nPolys is ignored since the adapter always delegates a
// single merged polynomial (see pcs.BatchPCS.ProofSize).
func (t *TensorPCS[S]) ProofSize(nPolys int) int {
	numCells := (1 << t.nVars) / t.width
	return numCells * t.width * len(t.zero.Bytes())
}
