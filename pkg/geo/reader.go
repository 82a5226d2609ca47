package geo

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/aukilabs/go-tooling/pkg/errors"

	"github.com/df07/go-terrain-raster/pkg/geometry"
)

// Load reads whitespace-separated "latitude longitude altitude" records,
// one per line, and projects each into a planar point. Blank lines and
// lines starting with '#' are skipped; any other malformed line is an
// error naming its line number.
func Load(r io.Reader, project Projection) ([]geometry.Point, error) {
	var points []geometry.Point

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) != 3 {
			return nil, errors.New("malformed record: want 'lat lon alt'").
				WithTag("line", line).
				WithTag("fields", len(fields))
		}

		lat, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, errors.New("invalid latitude").WithTag("line", line).Wrap(err)
		}
		lon, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, errors.New("invalid longitude").WithTag("line", line).Wrap(err)
		}
		alt, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, errors.New("invalid altitude").WithTag("line", line).Wrap(err)
		}

		x, y, z := project(lon, lat, alt)
		points = append(points, geometry.Point{X: x, Y: y, Z: z})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.New("reading records failed").Wrap(err)
	}

	return points, nil
}

// LoadFile opens path and loads its records through project.
func LoadFile(path string, project Projection) ([]geometry.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.New("opening data file failed").WithTag("path", path).Wrap(err)
	}
	defer f.Close()

	return Load(f, project)
}
