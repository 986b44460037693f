// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cps

import "sync"

var markerPool = sync.Pool{
	New: func() any { return new(marker) },
}

// marker is the pooled suspension record returned by Perform.
type marker struct {
	op     Operation
	resume func(*marker, Resumed) Resumed
	k      any
}

func (m *marker) Op() Operation            { return m.op }
func (m *marker) Resume(v Resumed) Resumed { return m.resume(m, v) }
func (m *marker) release()                 { releaseMarker(m) }

func acquireMarker() *marker {
	return markerPool.Get().(*marker)
}

func releaseMarker(m *marker) {
	m.op = nil
	m.resume = nil
	m.k = nil
	markerPool.Put(m)
}
