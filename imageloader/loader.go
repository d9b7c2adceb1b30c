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

package imageloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/jetsetilly/gopherbeeb/curated"
	"github.com/jetsetilly/gopherbeeb/logger"
)

// Memory is the part of the memory implementation used to attach an image.
type Memory interface {
	Load(origin uint16, data []uint8) error
}

// the size of the address space
const addressSpace = 0x10000

// Loader is used to specify the image to load into memory.
type Loader struct {
	// filename of the image to load. can be a http or https URL
	Filename string

	// the address of the first byte of the image. only used if UseOrigin is
	// true. otherwise the image is loaded so that the last byte is at the top
	// of memory
	Origin    uint16
	UseOrigin bool

	// expected hash of the loaded image. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns a shortened version of the filename.
func (ld Loader) ShortName() string {
	s := path.Base(ld.Filename)
	return strings.TrimSuffix(s, path.Ext(ld.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the image data. Filenames with a valid scheme will use that method to
// load the data.
func (ld *Loader) Load() error {
	if ld.HasLoaded() {
		return nil
	}

	scheme := "file"

	u, err := url.Parse(ld.Filename)
	if err == nil {
		scheme = u.Scheme
	}

	switch scheme {
	case "http", "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return curated.Errorf("imageloader: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf("imageloader: %v", resp.Status)
		}

		ld.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("imageloader: %v", err)
		}

	case "file", "":
		ld.Data, err = os.ReadFile(ld.Filename)
		if err != nil {
			return curated.Errorf("imageloader: %v", err)
		}

	default:
		return curated.Errorf("imageloader: unsupported URL scheme (%s)", scheme)
	}

	if len(ld.Data) == 0 {
		return curated.Errorf("imageloader: empty image (%s)", ld.ShortName())
	}

	hash := fmt.Sprintf("%x", sha1.Sum(ld.Data))

	// check for hash consistency
	if ld.Hash != "" && ld.Hash != hash {
		ld.Data = nil
		return curated.Errorf("imageloader: unexpected hash value")
	}
	ld.Hash = hash

	logger.Logf(logger.Allow, "imageloader", "loaded %s (%d bytes, sha1 %s)", ld.ShortName(), len(ld.Data), hash)

	return nil
}

// LoadAddress returns the address of the first byte of the image.
func (ld Loader) LoadAddress() (uint16, error) {
	if ld.UseOrigin {
		return ld.Origin, nil
	}
	if len(ld.Data) > addressSpace {
		return 0, curated.Errorf("imageloader: image too large (%d bytes)", len(ld.Data))
	}
	return uint16(addressSpace - len(ld.Data)), nil
}

// Attach copies the image into memory. Load() is called if necessary.
func (ld *Loader) Attach(mem Memory) error {
	err := ld.Load()
	if err != nil {
		return err
	}

	origin, err := ld.LoadAddress()
	if err != nil {
		return err
	}

	err = mem.Load(origin, ld.Data)
	if err != nil {
		return curated.Errorf("imageloader: %v", err)
	}

	return nil
}
