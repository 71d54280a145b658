/* Copyright 2023 The swtch Authors
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 * http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package core

import (
	"sync/atomic"
	"unsafe"
)

// Switcher enables other things to manifest themselves as Switches.
//
// A Switch is itself a Switcher.  An UpdatableSwitch is also a
// Switcher, but it's not itself a Switch.
type Switcher interface {
	Switch() *Switch
}

// Switch makes any Switch a Switcher.
func (s *Switch) Switch() *Switch {
	return s
}

// UpdatableSwitch is a handy Switcher with an underlying Switch that
// can be changed at any time.
//
// A compiled Switch is immutable, so hot-reloading a definition means
// swapping in a whole new Switch.  Dispatchers that go through an
// UpdatableSwitch pick up the swap atomically.
type UpdatableSwitch struct {
	s unsafe.Pointer // *Switch
}

// NewUpdatableSwitch makes one with the given initial switch, which
// can be changed later via SetSwitch.
func NewUpdatableSwitch(s *Switch) *UpdatableSwitch {
	return &UpdatableSwitch{
		s: unsafe.Pointer(s),
	}
}

// SetSwitch atomically changes the underlying switch.
func (u *UpdatableSwitch) SetSwitch(s *Switch) error {
	atomic.StorePointer(&u.s, unsafe.Pointer(s))
	return nil
}

// Switch implements the Switcher interface.
func (u *UpdatableSwitch) Switch() *Switch {
	return (*Switch)(atomic.LoadPointer(&u.s))
}
