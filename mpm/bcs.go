// Copyright 2016 The Gompm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpm

// EnforceBCs applies the structural constraints on the mesh edges, after P2G
// and before G2P, over the entire boundary node sets:
//  left/right columns -- slip wall: the horizontal velocity component is
//                        zeroed, vertical sliding is allowed
//  top/bottom rows    -- fixed: both components are zeroed
func (o *Domain) EnforceBCs() {
	for _, n := range o.Grid.LefRig {
		o.Vnod[n][0] = 0
	}
	for _, n := range o.Grid.TopBot {
		o.Vnod[n][0] = 0
		o.Vnod[n][1] = 0
	}
}
