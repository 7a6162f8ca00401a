package splog

import "sync"

const (
	lineBufDefaultCap = 256
	lineBufMaxCap     = 64 << 10
)

// lineBuf stages one finished line plus its terminator so the sink hands the
// destination writer a single Write per line.
type lineBuf struct {
	buf []byte
}

var lineBufPool = sync.Pool{
	New: func() any {
		return &lineBuf{buf: make([]byte, 0, lineBufDefaultCap)}
	},
}

func acquireLineBuf() *lineBuf {
	lb := lineBufPool.Get().(*lineBuf)
	lb.buf = lb.buf[:0]
	return lb
}

func releaseLineBuf(lb *lineBuf) {
	if cap(lb.buf) > lineBufMaxCap {
		lb.buf = make([]byte, 0, lineBufDefaultCap)
	} else {
		lb.buf = lb.buf[:0]
	}
	lineBufPool.Put(lb)
}
