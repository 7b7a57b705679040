// Copyright 2016 The Gompm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// FuncData holds function definition
type FuncData struct {
	Name string     `json:"name"` // name of function. ex: grav, vdisk, etc.
	Type string     `json:"type"` // type of function. ex: cte, rmp
	Prms dbf.Params `json:"prms"` // parameters
}

// FuncsData holds all functions
type FuncsData []*FuncData

// Get returns function by name
//  Note: returns nil if not found
func (o FuncsData) Get(name string) dbf.T {
	if name == "zero" || name == "none" {
		return &dbf.Cte{C: 0}
	}
	for _, f := range o {
		if f.Name == name {
			fcn, err := dbf.New(f.Type, f.Prms)
			if err != nil {
				chk.Panic("cannot get function named %q:\n%v", name, err)
			}
			return fcn
		}
	}
	return nil
}

// String prints one function
func (o FuncData) String() string {
	return io.Sf("{\"name\":%q, \"type\":%q, \"prms\":%v}", o.Name, o.Type, o.Prms)
}

// String prints functions
func (o FuncsData) String() string {
	if len(o) == 0 {
		return "  \"functions\" : []"
	}
	l := "  \"functions\" : [\n"
	for i, f := range o {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("    %v", f)
	}
	l += "\n  ]"
	return l
}
