package timing

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/baditaflorin/go_corpus_bench/internal/core/domain"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// MinColumns is the number of columns every timing row must carry:
// thread count, execution time and total time.
const MinColumns = 3

// Column indexes
const (
	ThreadsColumn   = 0
	ExecutionColumn = 1
	TotalColumn     = 2
)

// ErrEmptyTable is returned when the input contains no data rows.
var ErrEmptyTable = errors.New("timing table has no rows")

// ErrNotDecimal is returned for fields that are not plain decimal numbers,
// such as "nan", "Inf", "1_0" or hex floats.
var ErrNotDecimal = errors.New("not a decimal number")

// ParseError reports a malformed row. Line is 1-based.
type ParseError struct {
	Line  int
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("line %d: field %q: %v", e.Line, e.Field, e.Err)
	}
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse reads whitespace-separated numeric rows from r. Blank lines and lines
// starting with '#' are skipped. Every other line must hold the same number
// of numeric fields, at least MinColumns of them.
func Parse(r io.Reader) (*domain.TimingTable, error) {
	scanner := bufio.NewScanner(r)
	var (
		data    []float64
		rows    int
		cols    int
		lineNum int
	)

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < MinColumns {
			return nil, &ParseError{
				Line: lineNum,
				Err:  errors.Errorf("expected at least %d fields, got %d", MinColumns, len(fields)),
			}
		}
		if rows == 0 {
			cols = len(fields)
		} else if len(fields) != cols {
			return nil, &ParseError{
				Line: lineNum,
				Err:  errors.Errorf("expected %d fields like the first row, got %d", cols, len(fields)),
			}
		}

		for _, field := range fields {
			if !isDecimal(field) {
				return nil, &ParseError{Line: lineNum, Field: field, Err: ErrNotDecimal}
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, &ParseError{Line: lineNum, Field: field, Err: errors.Cause(err)}
			}
			data = append(data, v)
		}
		rows++
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read timing table")
	}
	if rows == 0 {
		return nil, ErrEmptyTable
	}

	return &domain.TimingTable{Data: mat.NewDense(rows, cols, data)}, nil
}

// Load opens and parses the timing table at path.
func Load(path string) (*domain.TimingTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open timing table")
	}
	defer f.Close()

	table, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return table, nil
}

// FormatRow renders row the way it is stored in the timing file.
func FormatRow(row domain.TimingRow) string {
	return strconv.Itoa(row.Threads) + " " +
		strconv.FormatFloat(row.Execution, 'g', -1, 64) + " " +
		strconv.FormatFloat(row.Total, 'g', -1, 64) + "\n"
}

// Append adds row to the timing file at path, creating it when absent.
func Append(path string, row domain.TimingRow) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return errors.Wrap(err, "open timing table for append")
	}

	if _, err := io.WriteString(f, FormatRow(row)); err != nil {
		f.Close()
		return errors.Wrapf(err, "append to %s", path)
	}
	return errors.Wrapf(f.Close(), "close %s", path)
}

// Series returns the x values (thread counts) and the execution and total
// time series exactly as they are plotted.
func Series(table *domain.TimingTable) (xs, execution, total []float64) {
	return table.Column(ThreadsColumn), table.Column(ExecutionColumn), table.Column(TotalColumn)
}

// isDecimal reports whether field contains only a sign, digits, a decimal
// point and an exponent.
func isDecimal(field string) bool {
	for i := 0; i < len(field); i++ {
		switch c := field[i]; {
		case '0' <= c && c <= '9':
		case c == '.' || c == '+' || c == '-' || c == 'e' || c == 'E':
		default:
			return false
		}
	}
	return true
}
