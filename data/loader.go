package data

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/YuminosukeSato/gradlin/pkg/errors"
	"github.com/YuminosukeSato/gradlin/pkg/log"
)

// LoadOption configures Load and LoadReader.
type LoadOption func(*loadConfig)

type loadConfig struct {
	delimiter rune
	comment   rune
	logger    log.Logger
}

func defaultLoadConfig() *loadConfig {
	return &loadConfig{
		delimiter: ',',
		logger:    log.Nop(),
	}
}

// WithDelimiter sets the field separator. The default is ','.
func WithDelimiter(r rune) LoadOption {
	return func(c *loadConfig) {
		c.delimiter = r
	}
}

// WithComment makes lines starting with r be skipped.
func WithComment(r rune) LoadOption {
	return func(c *loadConfig) {
		c.comment = r
	}
}

// WithLoadLogger reports the loaded shape to logger.
func WithLoadLogger(logger log.Logger) LoadOption {
	return func(c *loadConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Load reads a headerless delimited file of numbers.
//
// The first row fixes the column count and every later row must match it.
// A missing or unreadable file yields *errors.IOError, a non-numeric field
// *errors.ParseError and a short or long row *errors.DimensionError.
func Load(path string, opts ...LoadOption) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewIOError("data.Load", path, err)
	}
	defer f.Close()

	ds, err := LoadReader(f, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return ds, nil
}

// LoadReader is Load for an already opened source.
func LoadReader(r io.Reader, opts ...LoadOption) (*Dataset, error) {
	cfg := defaultLoadConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	rd := csv.NewReader(r)
	rd.Comma = cfg.delimiter
	rd.Comment = cfg.comment
	rd.TrimLeadingSpace = true
	// 列数の検査は builder 側で行い、行番号付きの DimensionError を返す
	rd.FieldsPerRecord = -1
	rd.ReuseRecord = true

	b := newBuilder()
	for {
		record, err := rd.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// 引用符の不整合などは内容の問題なので ParseError に分類する
			var ce *csv.ParseError
			if errors.As(err, &ce) {
				return nil, errors.NewParseError(ce.Line, ce.Column, "", ce.Err)
			}
			return nil, errors.NewIOError("data.LoadReader", "", err)
		}
		line, _ := rd.FieldPos(0)

		row := make([]float64, len(record))
		for j, field := range record {
			text := strings.TrimSpace(field)
			v, perr := strconv.ParseFloat(text, 64)
			if perr != nil {
				return nil, errors.NewParseError(line, j+1, text, perr)
			}
			row[j] = v
		}
		if err := b.add(line, row); err != nil {
			return nil, err
		}
	}

	ds, err := b.build()
	if err != nil {
		return nil, err
	}
	cfg.logger.Debug("dataset loaded",
		log.OperationKey, log.OperationLoad,
		log.SamplesKey, ds.Rows(),
		log.FeaturesKey, ds.Cols(),
	)
	return ds, nil
}

// builder accumulates rows into a contiguous buffer.
type builder struct {
	cols int
	rows int
	data []float64
}

func newBuilder() *builder {
	return &builder{}
}

// add appends row; line is used for error reporting only.
func (b *builder) add(line int, row []float64) error {
	if b.rows == 0 {
		if len(row) == 0 {
			return errors.NewValueError("data.Load", "first row has no fields")
		}
		b.cols = len(row)
	} else if len(row) != b.cols {
		return errors.Wrapf(
			errors.NewDimensionError("data.Load", b.cols, len(row), 1),
			"line %d", line,
		)
	}
	b.data = append(b.data, row...)
	b.rows++
	return nil
}

func (b *builder) build() (*Dataset, error) {
	if b.rows == 0 {
		return nil, errors.WithStack(errors.ErrEmptyData)
	}
	return &Dataset{rows: b.rows, cols: b.cols, data: b.data}, nil
}
