// This file is part of Gopherbeeb.
//
// Gopherbeeb is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherbeeb is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherbeeb.  If not, see <https://www.gnu.org/licenses/>.

// Package imageloader is used to specify the binary image that is to be
// loaded into the memory of the emulated BBC Micro.
//
// The Load() function handles loading of data from different sources.
// Currently local files and data over HTTP are supported. Once loaded the
// image can be attached to memory with the Attach() function.
//
// An image is normally a raw dump of the upper part of the address space,
// including the vectors at $FFFA to $FFFF. In that case the image is loaded so
// that its last byte is at $FFFF:
//
//	ld := imageloader.NewLoader("roms/test.bin")
//	err := ld.Load()
//	err = ld.Attach(mem)
//
// If the image should be loaded at a specific address then the Origin field
// should be set and the UseOrigin field set to true.
package imageloader
