package storage

import (
	"context"
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"maskcompare/internal/domain/entity"
	"maskcompare/internal/domain/port"
)

// Колонки CSV с результатами
const (
	ColumnImage               = "image"
	ColumnDicePeopleBaseline  = "dice_people_baseline"
	ColumnDicePeopleImproved  = "dice_people_improved"
	ColumnDiceVehicleBaseline = "dice_vehicle_baseline"
	ColumnDiceVehicleImproved = "dice_vehicle_improved"
)

var (
	ErrMissingColumn = errors.New("missing required column")
	ErrInvalidScore  = errors.New("invalid score")
)

// CSVResultRepository хранилище строк с метриками, прочитанных из CSV
type CSVResultRepository struct {
	rows []entity.ResultRow
}

// LoadCSVResultRepository читает CSV-файл целиком.
func LoadCSVResultRepository(path string) (*CSVResultRepository, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open results csv")
	}
	defer f.Close()

	repo, err := NewCSVResultRepository(f)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return repo, nil
}

// NewCSVResultRepository разбирает CSV с заголовком. Лишние колонки игнорируются.
func NewCSVResultRepository(r io.Reader) (*CSVResultRepository, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "read header")
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	scoreColumns := []string{
		ColumnDicePeopleBaseline,
		ColumnDicePeopleImproved,
		ColumnDiceVehicleBaseline,
		ColumnDiceVehicleImproved,
	}
	for _, name := range append([]string{ColumnImage}, scoreColumns...) {
		if _, ok := index[name]; !ok {
			return nil, errors.Wrap(ErrMissingColumn, name)
		}
	}

	var rows []entity.ResultRow
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}

		row := entity.ResultRow{Image: record[index[ColumnImage]]}
		fields := []*float64{
			&row.DicePeopleBaseline,
			&row.DicePeopleImproved,
			&row.DiceVehicleBaseline,
			&row.DiceVehicleImproved,
		}
		for i, name := range scoreColumns {
			v, perr := parseScore(record[index[name]])
			if perr != nil && row.Err == nil {
				// битая ячейка портит только свою строку
				row.Err = errors.Wrapf(ErrInvalidScore, "line %d column %s: %v", line, name, perr)
			}
			*fields[i] = v
		}

		rows = append(rows, row)
	}

	return &CSVResultRepository{rows: rows}, nil
}

// All возвращает все строки в порядке файла
func (r *CSVResultRepository) All(ctx context.Context) ([]entity.ResultRow, error) {
	_ = ctx
	out := make([]entity.ResultRow, len(r.rows))
	copy(out, r.rows)
	return out, nil
}

// Select возвращает строки для выбранных изображений в порядке файла
func (r *CSVResultRepository) Select(ctx context.Context, names []string) ([]entity.ResultRow, error) {
	_ = ctx
	wanted := make(map[string]struct{}, len(names))
	for _, n := range names {
		wanted[n] = struct{}{}
	}

	var out []entity.ResultRow
	for _, row := range r.rows {
		if _, ok := wanted[row.Image]; ok {
			out = append(out, row)
		}
	}
	return out, nil
}

// naTokens значения, которые pandas по умолчанию читает как NaN.
var naTokens = map[string]struct{}{
	"": {}, "#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {},
	"-NaN": {}, "-nan": {}, "1.#IND": {}, "1.#QNAN": {}, "<NA>": {}, "N/A": {},
	"NA": {}, "NULL": {}, "NaN": {}, "None": {}, "n/a": {}, "nan": {}, "null": {},
}

// parseScore: NA-значения дают NaN; при ошибке разбора тоже возвращается NaN.
func parseScore(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if _, ok := naTokens[s]; ok {
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN(), err
	}
	return v, nil
}

// Проверка реализации интерфейса
var _ port.ResultRepository = (*CSVResultRepository)(nil)
