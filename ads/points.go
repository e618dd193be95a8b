package ads

// BlockInterval is how many content blocks separate in-content ad slots.
const BlockInterval = 5

// Block describes one direct child of the content container. Only children
// that carry rendered markup (elements) count as content blocks; text and
// comment nodes do not.
type Block struct {
	HasHTML bool
}

// InsertionPoints returns the child indexes an in-content ad is inserted
// before: the 5th, 10th, 15th... content block. Indexes refer to blocks,
// not to content-block ordinals.
func InsertionPoints(blocks []Block) []int {
	var points []int
	count := 0
	for i, b := range blocks {
		if !b.HasHTML {
			continue
		}
		count++
		if count%BlockInterval == 0 {
			points = append(points, i)
		}
	}
	return points
}
