// Package preprocess turns a raw dataset into the input the similarity
// engine expects: a single connected graph over dense ids.
//
// Steps, each usable on its own:
//
//   - Renumber assigns dense ids to arbitrary node names, by first
//     appearance, node file entries first. The result is deterministic.
//   - LargestComponent keeps the biggest connected component (ties go to the
//     component holding the smallest id) and relabels it densely, keeping
//     relative node order.
//   - ReadNodeLabels reads "node f1 f2 ... class" rows, and RemapLabels turns
//     the class names into dense ints (sorted name order) for the nodes that
//     survived.
//   - WriteEdges and WriteNodes save the transformed dataset as space
//     separated ".edges" and ".nodes" files with a header line.
package preprocess
