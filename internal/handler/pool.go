package handler

import (
	"bytes"
	"sync"
)

// responseBufferSize fits a processed recipe without regrowing
const responseBufferSize = 4096

// bufferPool holds encode buffers shared by respondJSON
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, responseBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

// putBuffer drops oversized buffers so one huge response does not pin memory
func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 16*responseBufferSize {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
