package similarity

import (
	"context"

	"gonum.org/v1/gonum/mat"

	"crosscheck/internal/textnorm"
)

// VectorStrategy scores pairs locally: cosine similarity between
// L2-normalized term-frequency vectors over the batch vocabulary.
type VectorStrategy struct{}

func (VectorStrategy) Name() string {
	return "vector"
}

func (VectorStrategy) Limit() int {
	return 0
}

func (VectorStrategy) Score(ctx context.Context, docs []Document) (*Matrix, error) {
	tokens := make([][]string, len(docs))
	vocab := make(map[string]int)
	for i, doc := range docs {
		tokens[i] = textnorm.Tokenize(doc.Text)
		for _, tok := range tokens[i] {
			if _, ok := vocab[tok]; !ok {
				vocab[tok] = len(vocab)
			}
		}
	}

	matrix := NewMatrix(len(docs))

	// A batch with no tokens at all has nothing to compare.
	if len(vocab) == 0 {
		for i := 0; i < len(docs); i++ {
			for j := i; j < len(docs); j++ {
				matrix.SetPair(i, j, 0)
			}
		}
		return matrix, nil
	}

	vectors := make([]*mat.VecDense, len(docs))
	for i := range docs {
		vec := mat.NewVecDense(len(vocab), nil)
		for _, tok := range tokens[i] {
			idx := vocab[tok]
			vec.SetVec(idx, vec.AtVec(idx)+1)
		}
		if norm := mat.Norm(vec, 2); norm > 0 {
			vec.ScaleVec(1/norm, vec)
		}
		vectors[i] = vec
	}

	for i := 0; i < len(docs); i++ {
		for j := i; j < len(docs); j++ {
			matrix.SetPair(i, j, mat.Dot(vectors[i], vectors[j]))
		}
	}

	return matrix, nil
}
