// Package blockbuffer accumulates streaming codec output in a list of
// fixed-size blocks, so that output of unknown final size can be collected
// without reallocate-and-copy growth, then flattened with a single copy pass.
package blockbuffer

const (
	kb = 1024
	mb = 1024 * 1024
)

// blockSizes is the block size schedule, indexed by the number of blocks
// already allocated. Early blocks are small to keep short outputs cheap,
// later blocks grow to bound the block count for large outputs.
var blockSizes = [...]int{
	32 * kb, 64 * kb, 256 * kb, 1 * mb, 4 * mb, 8 * mb, 16 * mb, 16 * mb,
	32 * mb, 32 * mb, 32 * mb, 32 * mb, 64 * mb, 64 * mb, 128 * mb, 128 * mb,
	256 * mb,
}

// blockSize returns the size of the n-th block. Past the end of the schedule
// the size saturates at the last entry.
func blockSize(n int) int {
	if n < len(blockSizes) {
		return blockSizes[n]
	}
	return blockSizes[len(blockSizes)-1]
}

// Buffer is a segmented output buffer. The zero value is ready to use.
//
// Every block except possibly the last is fully written before the next one
// is requested, so the logical length of the accumulated output is always
// the total allocated size minus the unused tail of the last block.
type Buffer struct {
	blocks    [][]byte
	allocated int
}

// InitAndGrow allocates the first block and returns it as the writable
// region. It must be called exactly once, before any Grow.
func (b *Buffer) InitAndGrow() []byte {
	block := make([]byte, blockSizes[0])
	b.blocks = append(b.blocks[:0], block)
	b.allocated = len(block)
	return block
}

// Grow appends the next block per the schedule and returns it as the new
// writable region. The caller must have fully consumed the previously
// returned region: no gaps between blocks are permitted.
func (b *Buffer) Grow() []byte {
	block := make([]byte, blockSize(len(b.blocks)))
	b.blocks = append(b.blocks, block)
	b.allocated += len(block)
	return block
}

// Allocated reports the total capacity allocated across all blocks.
func (b *Buffer) Allocated() int {
	return b.allocated
}

// Finish flattens the accumulated blocks into one contiguous slice and
// releases the block list. availOut is the unused capacity remaining in the
// last writable region handed out by InitAndGrow/Grow.
func (b *Buffer) Finish(availOut int) []byte {
	result := make([]byte, 0, b.allocated-availOut)
	if n := len(b.blocks); n > 0 {
		for _, block := range b.blocks[:n-1] {
			result = append(result, block...)
		}
		last := b.blocks[n-1]
		result = append(result, last[:len(last)-availOut]...)
	}
	b.Cleanup()
	return result
}

// Cleanup drops all blocks without producing output. Safe to call on an
// empty or already finished buffer.
func (b *Buffer) Cleanup() {
	b.blocks = nil
	b.allocated = 0
}
