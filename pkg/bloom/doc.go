// Package bloom provides the descendant filter used by the render tree.
//
// A Filter is a small, fixed-size Bloom filter over node IDs. Every render
// node carries one summarizing its own ID and the IDs of all of its
// descendants, so tree queries can skip whole subtrees with a single bit test:
//
//	if !node.State.Filter.MayContain(target) {
//	    return // target is definitely not below node
//	}
//
// False positives are possible; false negatives are not. Union is a word-wise
// OR, so combining sibling filters is cheap and order-independent.
package bloom
