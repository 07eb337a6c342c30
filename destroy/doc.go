// Package destroy implements the LNS destroy operator: draw up to k
// distinct customers from the tabu.Partition's free set, remove each from
// the current Solution, and push each into the tabu FIFO. The set of
// removed customers becomes the repair workset.
//
// If the free set holds fewer than k customers, destroy clamps to
// whatever is available rather than looping or failing — see
// tabu.Partition.DrawAndTabu.
package destroy
