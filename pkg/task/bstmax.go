package task

import (
	"fmt"

	"github.com/matzehuels/caseforge/pkg/corpus"
	"github.com/matzehuels/caseforge/pkg/sampler"
)

// BSTMax draws a value sequence and expects the maximum of depth·value
// over the binary search tree built by inserting the values in order.
// The first value is the root at depth 1; smaller values go left, others
// right.
//
// Case sizes are tiered: warm-up sizes 1..10, then 50, then 2500.
var BSTMax = &Task{
	Name:    "bstmax",
	Summary: "max depth·value in an insertion-order binary search tree",
	Cases:   25,
	Generate: func(idx int, s *sampler.Sampler) (corpus.Case, error) {
		var n int
		switch {
		case idx <= 10:
			n = idx
		case idx <= 20:
			n = 50
		default:
			n = 2500
		}

		values, err := s.Ints(n, 1, 10*n)
		if err != nil {
			return corpus.Case{}, err
		}

		return corpus.Case{
			Input:    []byte(joinInts(values) + "\n"),
			Expected: []byte(fmt.Sprintf("%d\n", bstMaxProduct(values))),
		}, nil
	},
}

type bstNode struct {
	val, depth  int
	left, right *bstNode
}

func (n *bstNode) insert(val int) {
	for {
		if val < n.val {
			if n.left == nil {
				n.left = &bstNode{val: val, depth: n.depth + 1}
				return
			}
			n = n.left
		} else {
			if n.right == nil {
				n.right = &bstNode{val: val, depth: n.depth + 1}
				return
			}
			n = n.right
		}
	}
}

// bstMaxProduct is the reference computation: build the tree, take the
// maximum val·depth over all nodes.
func bstMaxProduct(values []int) int {
	root := &bstNode{val: values[0], depth: 1}
	for _, v := range values[1:] {
		root.insert(v)
	}

	max := root.val * root.depth
	stack := []*bstNode{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if p := n.val * n.depth; p > max {
			max = p
		}
		if n.left != nil {
			stack = append(stack, n.left)
		}
		if n.right != nil {
			stack = append(stack, n.right)
		}
	}
	return max
}
