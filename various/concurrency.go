package various

import (
	"runtime"
	"sync"
)

// KickOffChunkWorkers splits totalItems into contiguous chunks and calls fn
// for each chunk on its own goroutine. It returns once all chunks are done.
// fn must only write to the items of its own chunk.
func KickOffChunkWorkers(totalItems int, fn func(start, end int)) {
	numWorkers := runtime.GOMAXPROCS(0)

	var wg sync.WaitGroup
	var chunkStart int
	chunkSize := (totalItems / numWorkers) + 1
	for i := 0; i < numWorkers; i++ {
		curChunk := chunkSize
		if rem := totalItems - chunkStart; rem < curChunk {
			curChunk = rem
		}
		if curChunk <= 0 {
			break
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			fn(start, end)
		}(chunkStart, chunkStart+curChunk)
		chunkStart += curChunk
	}
	wg.Wait()
}
