// Copyright 2016 The Gompm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	goio "io"
	"os"
	"path"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Encoder defines encoders; e.g. gob or json
type Encoder interface {
	Encode(e interface{}) error
}

// Decoder defines decoders; e.g. gob or json
type Decoder interface {
	Decode(e interface{}) error
}

// GetEncoder returns a new encoder
func GetEncoder(w goio.Writer, enctype string) Encoder {
	if enctype == "json" {
		return json.NewEncoder(w)
	}
	return gob.NewEncoder(w)
}

// GetDecoder returns a new decoder
func GetDecoder(r goio.Reader, enctype string) Decoder {
	if enctype == "json" {
		return json.NewDecoder(r)
	}
	return gob.NewDecoder(r)
}

// Snapshot holds one output sample: point positions with derived scalar
// fields, the disk state and the total contact force
type Snapshot struct {
	T    float64     // simulated time
	X    [][]float64 // [np][2] point positions
	Q    []float64   // [np] von Mises stress
	Ed   []float64   // [np] deviatoric strain
	Dx   []float64   // disk centre
	Dv   []float64   // disk velocity
	Fsum []float64   // sum of nodal external (contact) forces
}

// NewSnapshot captures the current domain state
func (o *Domain) NewSnapshot(t float64) (s *Snapshot) {
	s = &Snapshot{
		T:    t,
		X:    make([][]float64, o.Np),
		Q:    make([]float64, o.Np),
		Ed:   make([]float64, o.Np),
		Dx:   []float64{o.Disk.X[0], o.Disk.X[1]},
		Dv:   []float64{o.Disk.V[0], o.Disk.V[1]},
		Fsum: o.SumFext(),
	}
	for p := 0; p < o.Np; p++ {
		s.X[p] = []float64{o.Xpt[p][0], o.Xpt[p][1]}
	}
	o.VonMisesStresses(s.Q)
	o.DeviatoricStrains(s.Ed)
	return
}

// SaveSnapshot saves a snapshot to a file which name is set with tidx (time
// output index)
func (o *Domain) SaveSnapshot(tidx int, t float64) (err error) {

	// buffer and encoder
	var buf bytes.Buffer
	enc := GetEncoder(&buf, o.Sim.EncType)

	// encode
	err = enc.Encode(o.NewSnapshot(t))
	if err != nil {
		return chk.Err("cannot encode snapshot %d\n%v", tidx, err)
	}

	// save file
	fn := out_pnt_path(o.Sim.DirOut, o.Sim.Key, o.Sim.EncType, tidx)
	return save_file(fn, &buf)
}

// ReadSnapshot reads a snapshot from a file which name is set with tidx
func ReadSnapshot(dir, fnkey, enctype string, tidx int) (s *Snapshot, err error) {

	// open file
	fn := out_pnt_path(dir, fnkey, enctype, tidx)
	fil, err := os.Open(fn)
	if err != nil {
		return
	}
	defer func() { fil.Close() }()

	// decode
	s = new(Snapshot)
	err = GetDecoder(fil, enctype).Decode(s)
	if err != nil {
		return nil, chk.Err("cannot decode snapshot %d\n%v", tidx, err)
	}
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

func out_pnt_path(dir, fnkey, enctype string, tidx int) string {
	return path.Join(dir, io.Sf("%s_pnt_%010d.%s", fnkey, tidx, enctype))
}

func save_file(filename string, buf *bytes.Buffer) (err error) {
	fil, err := os.Create(filename)
	if err != nil {
		return
	}
	defer func() { err = fil.Close() }()
	_, err = fil.Write(buf.Bytes())
	return
}
