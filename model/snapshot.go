package model

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	snapshotAlive = '1'
	snapshotDead  = '0'

	maxSnapshotLine = 1 << 24
	maxHeaderRows   = 1 << 12
)

// ParseSnapshot reads a board in the flat text format: columns, rows and cell size
// on the first three lines, followed by one line of '0'/'1' characters per row.
func ParseSnapshot(r io.Reader) (*Grid, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxSnapshotLine)

	lineNo := 0
	nextLine := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		lineNo++
		return strings.TrimRight(scanner.Text(), "\r"), true
	}

	var header [3]int
	for i, name := range []string{"columns", "rows", "cell size"} {
		line, ok := nextLine()
		if !ok {
			if err := scanner.Err(); err != nil {
				return nil, scanError(err, "[ParseSnapshot] failed to read header")
			}
			return nil, errors.Wrapf(ErrFormat, "[ParseSnapshot] missing %s header", name)
		}
		v, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			return nil, errors.Wrapf(ErrFormat, "[ParseSnapshot] line %d: %s header %q is not a number", lineNo, name, line)
		}
		header[i] = v
	}

	columns, rows, cellSize := header[0], header[1], header[2]
	if columns <= 0 || rows <= 0 || cellSize < 0 {
		return nil, errors.Wrapf(ErrFormat, "[ParseSnapshot] invalid header %dx%d cell size %d", columns, rows, cellSize)
	}
	if columns > maxSnapshotLine {
		return nil, errors.Wrapf(ErrFormat, "[ParseSnapshot] %d columns exceed the %d character line limit", columns, maxSnapshotLine)
	}

	// rows are read before anything is allocated, so the header alone cannot
	// size the board
	cells := make([][]bool, 0, min(rows, maxHeaderRows))
	for row := range rows {
		line, ok := nextLine()
		if !ok {
			if err := scanner.Err(); err != nil {
				return nil, scanError(err, "[ParseSnapshot] failed to read row %d", row)
			}
			return nil, errors.Wrapf(ErrFormat, "[ParseSnapshot] expected %d rows, got %d", rows, row)
		}
		if len(line) != columns {
			return nil, errors.Wrapf(ErrFormat, "[ParseSnapshot] line %d: expected %d columns, got %d", lineNo, columns, len(line))
		}
		cells = append(cells, make([]bool, columns))
		for col := range columns {
			switch line[col] {
			case snapshotAlive:
				cells[row][col] = true
			case snapshotDead:
			default:
				return nil, errors.Wrapf(ErrFormat, "[ParseSnapshot] line %d column %d: illegal character %q", lineNo, col, line[col])
			}
		}
	}

	// trailing blank lines are tolerated, anything else is a row count mismatch
	for {
		line, ok := nextLine()
		if !ok {
			break
		}
		if strings.TrimSpace(line) != "" {
			return nil, errors.Wrapf(ErrFormat, "[ParseSnapshot] line %d: more than %d rows", lineNo, rows)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, scanError(err, "[ParseSnapshot] failed to read snapshot")
	}

	return &Grid{
		columns:  columns,
		rows:     rows,
		cellSize: cellSize,
		cells:    cells,
		next:     newCells(columns, rows),
	}, nil
}

// scanError reports an over-long line as a format error and anything else as
// a read failure
func scanError(err error, format string, args ...interface{}) error {
	if errors.Is(err, bufio.ErrTooLong) {
		return errors.Wrapf(ErrFormat, format+": line longer than %d characters", append(args, maxSnapshotLine)...)
	}
	return errors.Wrapf(err, format, args...)
}

// WriteSnapshot writes the grid in the format read by ParseSnapshot
func (g *Grid) WriteSnapshot(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d\n%d\n%d\n", g.columns, g.rows, g.cellSize); err != nil {
		return errors.Wrap(err, "[WriteSnapshot] failed to write header")
	}

	line := make([]byte, g.columns+1)
	line[g.columns] = '\n'
	for r := range g.rows {
		for c := range g.columns {
			if g.cells[r][c] {
				line[c] = snapshotAlive
			} else {
				line[c] = snapshotDead
			}
		}
		if _, err := bw.Write(line); err != nil {
			return errors.Wrapf(err, "[WriteSnapshot] failed to write row %d", r)
		}
	}

	return errors.Wrap(bw.Flush(), "[WriteSnapshot] failed to flush")
}

// ReadSnapshotFile loads a board snapshot from disk
func ReadSnapshotFile(filename string) (*Grid, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "[ReadSnapshotFile] failed to open file: %+v", filename)
	}
	defer f.Close()

	g, err := ParseSnapshot(f)
	if err != nil {
		return nil, errors.Wrapf(err, "[ReadSnapshotFile] %s", filename)
	}
	return g, nil
}

// WriteSnapshotFile saves a board snapshot to disk, replacing any existing file
func WriteSnapshotFile(filename string, g *Grid) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "[WriteSnapshotFile] failed to create file: %+v", filename)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "[WriteSnapshotFile] failed to close file: %+v", filename)
		}
	}()

	return g.WriteSnapshot(f)
}
