package parser

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"fitness-tracker/internal/models"
	"fitness-tracker/internal/training"
)

// Parser handles parsing of workout package files
type Parser struct {
	format string
	logger *slog.Logger
}

// NewParser creates a new parser with the specified format
func NewParser(format string, logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Parser{format: format, logger: logger}
}

// ParseFile parses a workout package file
func (p *Parser) ParseFile(filename string) ([]models.WorkoutPackage, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return p.Parse(file)
}

// Parse reads packages from r in the parser's format
func (p *Parser) Parse(r io.Reader) ([]models.WorkoutPackage, error) {
	switch strings.ToLower(p.format) {
	case "csv":
		return p.parseCSV(r)
	case "json":
		return p.parseJSON(r)
	case "log":
		return p.parseLog(r)
	default:
		return nil, fmt.Errorf("unsupported format: %s", p.format)
	}
}

// parseCSV parses rows of the form code,v1,v2,...
func (p *Parser) parseCSV(r io.Reader) ([]models.WorkoutPackage, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // arity differs per workout type
	reader.Comment = '#'
	reader.TrimLeadingSpace = true

	var results []models.WorkoutPackage
	first := true

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				p.logger.Warn("skipping csv record", "line", perr.StartLine, "error", perr.Err)
				first = false
				continue
			}
			return results, fmt.Errorf("failed to read csv: %w", err)
		}
		line, _ := reader.FieldPos(0)

		if first {
			first = false
			if strings.EqualFold(strings.TrimSpace(record[0]), "workout_type") {
				continue
			}
		}

		pkg, err := fieldsToPackage(record)
		if err != nil {
			p.logger.Warn("skipping csv record", "line", line, "error", err)
			continue
		}
		results = append(results, pkg)
	}

	return results, nil
}

// parseJSON accepts either a JSON array of packages or one object per line
func (p *Parser) parseJSON(r io.Reader) ([]models.WorkoutPackage, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	var results []models.WorkoutPackage
	if err := json.Unmarshal(raw, &results); err == nil {
		return results, nil
	}

	return p.parseJSONLines(bytes.NewReader(raw))
}

// parseJSONLines parses newline-delimited JSON
func (p *Parser) parseJSONLines(r io.Reader) ([]models.WorkoutPackage, error) {
	var results []models.WorkoutPackage
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line == "[" || line == "]" {
			continue
		}

		line = strings.TrimSuffix(line, ",")

		var pkg models.WorkoutPackage
		if err := json.Unmarshal([]byte(line), &pkg); err != nil {
			p.logger.Warn("skipping json line", "line", lineNum, "error", err)
			continue
		}
		results = append(results, pkg)
	}

	return results, scanner.Err()
}

// parseLog parses the pipe format: CODE|v1|v2|...
func (p *Parser) parseLog(r io.Reader) ([]models.WorkoutPackage, error) {
	var results []models.WorkoutPackage
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		pkg, err := fieldsToPackage(strings.Split(line, "|"))
		if err != nil {
			p.logger.Warn("skipping log line", "line", lineNum, "error", err)
			continue
		}
		results = append(results, pkg)
	}

	return results, scanner.Err()
}

// fieldsToPackage converts a code followed by numeric fields into a package
func fieldsToPackage(fields []string) (models.WorkoutPackage, error) {
	var pkg models.WorkoutPackage

	pkg.WorkoutType = strings.TrimSpace(fields[0])
	if pkg.WorkoutType == "" {
		return pkg, fmt.Errorf("missing workout_type")
	}

	values, err := ParseValues(fields[1:])
	if err != nil {
		return pkg, err
	}
	pkg.Data = values
	return pkg, nil
}

// ParseValues converts textual readings into numbers
func ParseValues(fields []string) ([]float64, error) {
	values := make([]float64, 0, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("value %d: invalid number %q", i+1, f)
		}
		values = append(values, v)
	}
	return values, nil
}

// SamplePackages returns the reference sensor packages
func SamplePackages() []models.WorkoutPackage {
	return []models.WorkoutPackage{
		{WorkoutType: training.CodeSwimming, Data: []float64{720, 1, 80, 25, 40}},
		{WorkoutType: training.CodeRunning, Data: []float64{15000, 1, 75}},
		{WorkoutType: training.CodeWalking, Data: []float64{9000, 1, 75, 180}},
	}
}

// ValidatePackage checks a package before it reaches the formulas. The
// formulas themselves accept any value, so this is where zero durations and
// heights are caught.
func ValidatePackage(pkg *models.WorkoutPackage) []string {
	var problems []string

	fields, err := training.Fields(pkg.WorkoutType)
	if err != nil {
		return append(problems, fmt.Sprintf("unknown workout_type %q", pkg.WorkoutType))
	}
	if len(pkg.Data) != len(fields) {
		return append(problems, fmt.Sprintf("%s requires %d values, got %d", pkg.WorkoutType, len(fields), len(pkg.Data)))
	}

	// NaN fails every comparison below, so non-finite values are caught first.
	for i, v := range pkg.Data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			problems = append(problems, fmt.Sprintf("%s must be a finite number", fields[i]))
		}
	}
	if len(problems) > 0 {
		return problems
	}

	if pkg.Data[0] < 0 {
		problems = append(problems, "action cannot be negative")
	}
	if pkg.Data[1] <= 0 {
		problems = append(problems, "duration must be positive")
	}
	if pkg.Data[2] <= 0 {
		problems = append(problems, "weight must be positive")
	}

	switch pkg.WorkoutType {
	case training.CodeWalking:
		if pkg.Data[3] <= 0 {
			problems = append(problems, "height must be positive")
		}
	case training.CodeSwimming:
		if pkg.Data[3] < 0 {
			problems = append(problems, "pool_length cannot be negative")
		}
		if pkg.Data[4] < 0 {
			problems = append(problems, "lap_count cannot be negative")
		}
	}

	return problems
}
