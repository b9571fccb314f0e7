package cloudcover

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// ErrMalformed is returned when grid data does not match its axes or holds
// a non-numeric value.
var ErrMalformed = errors.New("cloudcover: malformed grid")

// Grid is an in-memory cloud fraction grid, rows = latitude, columns =
// longitude.
type Grid struct {
	axes Axes
	data *mat.Dense
}

// NewGrid wraps data, which must have len(axes.Lat) rows and len(axes.Lon)
// columns.
func NewGrid(axes Axes, data *mat.Dense) (*Grid, error) {
	r, c := data.Dims()
	if r != len(axes.Lat) || c != len(axes.Lon) {
		return nil, fmt.Errorf("%w: data is %dx%d, axes are %dx%d", ErrMalformed, r, c, len(axes.Lat), len(axes.Lon))
	}
	return &Grid{axes: axes, data: data}, nil
}

// LoadGrid reads a headerless numeric CSV grid.
func LoadGrid(r io.Reader, axes Axes) (*Grid, error) {
	nr, nc := len(axes.Lat), len(axes.Lon)
	if nr == 0 || nc == 0 {
		return nil, fmt.Errorf("%w: empty axes", ErrMalformed)
	}

	reader := newReader(r, nc)
	data := make([]float64, 0, nr*nc)
	for row := 0; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			if row != nr {
				return nil, fmt.Errorf("%w: %d rows, want %d", ErrMalformed, row, nr)
			}
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		if row >= nr {
			return nil, fmt.Errorf("%w: more than %d rows", ErrMalformed, nr)
		}
		for col, field := range record {
			v, err := parseField(field, row, col)
			if err != nil {
				return nil, err
			}
			data = append(data, v)
		}
	}

	return &Grid{axes: axes, data: mat.NewDense(nr, nc, data)}, nil
}

// LoadGridFile reads the grid stored at path.
func LoadGridFile(path string, axes Axes) (*Grid, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadGrid(file, axes)
}

// Axes returns the grid coordinates.
func (g *Grid) Axes() Axes {
	return g.axes
}

// Fraction returns the value of the grid cell nearest to lat, lon.
func (g *Grid) Fraction(lat, lon float64) (float64, error) {
	row, col := g.axes.Index(lat, lon)
	if row < 0 || col < 0 {
		return 0, fmt.Errorf("no grid cell for (%g, %g)", lat, lon)
	}
	return g.data.At(row, col), nil
}

// FileResolver looks up a single cell by streaming the CSV file at Path.
// Only the rows up to the requested latitude are read, and only the
// requested row is parsed.
type FileResolver struct {
	Path string
	Axes Axes
}

// Fraction opens the file, reads the cell nearest to lat, lon and closes it.
func (f FileResolver) Fraction(lat, lon float64) (float64, error) {
	row, col := f.Axes.Index(lat, lon)
	if row < 0 || col < 0 {
		return 0, fmt.Errorf("no grid cell for (%g, %g)", lat, lon)
	}

	file, err := os.Open(f.Path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	reader := newReader(file, len(f.Axes.Lon))
	for i := 0; ; i++ {
		record, err := reader.Read()
		if err == io.EOF {
			return 0, fmt.Errorf("%w: %d rows, want at least %d", ErrMalformed, i, row+1)
		}
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		if i == row {
			return parseField(record[col], row, col)
		}
	}
}

func newReader(r io.Reader, cols int) *csv.Reader {
	reader := csv.NewReader(bufio.NewReader(r))
	reader.FieldsPerRecord = cols
	reader.ReuseRecord = true
	return reader
}

func parseField(field string, row, col int) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: row %d column %d: %v", ErrMalformed, row, col, err)
	}
	return v, nil
}
