package render

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// CaptureSet is the reflection render target owned by one ball: a cubemap
// texture plus one framebuffer and depth renderbuffer per face. Created once,
// then only its contents are overwritten; the handles never change.
type CaptureSet struct {
	Cubemap uint32
	FBOs    [6]uint32
	Depth   [6]uint32
	Size    int32
}

// Pool recycles CaptureSets across ball churn. A set is either held by
// exactly one live ball or sits on the free list; nothing is ever handed back
// to the driver, so total GPU allocation is bounded by the peak concurrent
// ball count. The free list is LIFO: the most recently retired set is reused
// first.
//
// The allocator is injectable so the bookkeeping can be tested without a GL
// context. NewPool wires the real GL allocator.
type Pool struct {
	size      int32
	free      []*CaptureSet
	alloc     func(size int32) (*CaptureSet, error)
	allocated int
}

// NewPool returns a pool producing sets with square faces of the given size.
func NewPool(size int32) *Pool {
	return &Pool{size: size, alloc: newCaptureSet}
}

func newPoolWithAlloc(size int32, alloc func(int32) (*CaptureSet, error)) *Pool {
	return &Pool{size: size, alloc: alloc}
}

// Acquire pops the most recently released set, or allocates a new one when
// the free list is empty. Allocation failure is unrecoverable for the caller.
func (p *Pool) Acquire() (*CaptureSet, error) {
	if n := len(p.free); n > 0 {
		s := p.free[n-1]
		p.free = p.free[:n-1]
		return s, nil
	}
	s, err := p.alloc(p.size)
	if err != nil {
		return nil, fmt.Errorf("allocate capture set: %w", err)
	}
	p.allocated++
	return s, nil
}

// Release pushes a set back onto the free list. Contents are left as-is: the
// next owner overwrites all six faces with a full capture pass before the
// cubemap is ever sampled.
func (p *Pool) Release(s *CaptureSet) {
	if s == nil {
		return
	}
	p.free = append(p.free, s)
}

// Allocated returns how many sets have ever been created, i.e. the historical
// peak of concurrently held sets.
func (p *Pool) Allocated() int { return p.allocated }

// FreeCount returns the current free-list length.
func (p *Pool) FreeCount() int { return len(p.free) }

// newCaptureSet allocates the GL-side resources: an RGBA8 cubemap and, per
// face, a framebuffer with that face as its color attachment and a fresh
// depth renderbuffer.
func newCaptureSet(size int32) (*CaptureSet, error) {
	s := &CaptureSet{Size: size}

	gl.GenTextures(1, &s.Cubemap)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, s.Cubemap)
	for i := 0; i < 6; i++ {
		gl.TexImage2D(gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(i), 0, gl.RGBA8,
			size, size, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	}
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)

	gl.GenFramebuffers(6, &s.FBOs[0])
	gl.GenRenderbuffers(6, &s.Depth[0])
	for i := 0; i < 6; i++ {
		gl.BindFramebuffer(gl.FRAMEBUFFER, s.FBOs[i])
		gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0,
			gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(i), s.Cubemap, 0)

		gl.BindRenderbuffer(gl.RENDERBUFFER, s.Depth[i])
		gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, size, size)
		gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT,
			gl.RENDERBUFFER, s.Depth[i])

		if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
			return nil, fmt.Errorf("capture framebuffer face %d incomplete: 0x%04x", i, status)
		}
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	if err := glErr("capture set"); err != nil {
		return nil, err
	}
	return s, nil
}
