package metrics

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
)

type GameRecord struct {
	ID int
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// Writer stores experiment results as CSV files under <root>/<name>/<run id>.
type Writer struct {
	baseDir  string
	runID    string
	compress bool
}

type WriterOption func(w *Writer)

// WithCompression writes zstd compressed files with a .csv.zst suffix.
func WithCompression() WriterOption {
	return func(w *Writer) {
		w.compress = true
	}
}

func NewWriter(root, name string, opts ...WriterOption) (*Writer, error) {
	w := &Writer{runID: uuid.NewString()}
	for _, opt := range opts {
		opt(w)
	}

	w.baseDir = filepath.Join(root, name, w.runID)
	err := os.MkdirAll(w.baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return w, nil
}

func (w *Writer) RunID() string {
	return w.runID
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WritePerftMetrics(records []PerftMetric) error {
	header := []string{"run_id", "game", "depth", "nodes", "duration", "nodes_per_second", "memoized"}
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = []string{
			w.runID,
			r.Game,
			strconv.Itoa(r.Depth),
			strconv.FormatUint(r.Nodes, 10),
			r.Duration.String(),
			strconv.FormatFloat(r.NodesPerSecond(), 'f', 0, 64),
			strconv.FormatBool(r.Memoized),
		}
	}
	return w.write("perft", header, rows)
}

func (w *Writer) WriteSolveMetrics(records []SolveMetric) error {
	header := []string{"run_id", "game", "move", "score", "duration"}
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = []string{w.runID, r.Game, r.Move, strconv.Itoa(r.Score), r.Duration.String()}
	}
	return w.write("solve", header, rows)
}

func (w *Writer) WriteSweepMetrics(records []SweepMetric) error {
	header := []string{"run_id", "game", "depth", "value", "duration"}
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = []string{w.runID, r.Game, strconv.Itoa(r.Depth), strconv.Itoa(r.Value), r.Duration.String()}
	}
	return w.write("sweep", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"run_id", "id", "game", "outcome", "start_time", "end_time", "duration", "total_moves"}
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = []string{
			w.runID,
			strconv.Itoa(r.ID),
			r.Game,
			r.Outcome,
			r.StartTime.Format(time.RFC3339),
			r.EndTime.Format(time.RFC3339),
			r.Duration.String(),
			strconv.Itoa(r.TotalMoves),
		}
	}
	return w.write("game_records", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"run_id", "game", "step", "player", "move", "duration"}
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = []string{
			w.runID,
			strconv.Itoa(r.Game),
			strconv.Itoa(r.Step),
			strconv.Itoa(r.Player),
			r.Move,
			r.Duration.String(),
		}
	}
	return w.write("move_records", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) (err error) {
	path := filepath.Join(w.baseDir, name+".csv")
	if w.compress {
		path += ".zst"
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s file: %w", name, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s file: %w", name, cerr)
		}
	}()

	var out io.Writer = f
	if w.compress {
		enc, encErr := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if encErr != nil {
			return fmt.Errorf("failed to create %s encoder: %w", name, encErr)
		}
		defer func() {
			if cerr := enc.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("failed to compress %s: %w", name, cerr)
			}
		}()
		out = enc
	}

	writer := csv.NewWriter(out)
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}
