package transcriptfile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	pkgai "github.com/johnquangdev/meeting-notes/pkg/ai"
)

// Policy selects how a transcript is picked when several candidates exist.
type Policy string

const (
	// PolicyInteractive asks the operator to choose when more than one
	// candidate exists.
	PolicyInteractive Policy = "interactive"
	// PolicyLatest picks the most recently modified candidate.
	PolicyLatest Policy = "latest"
	// PolicyExplicit picks the candidate with a given file name.
	PolicyExplicit Policy = "explicit"
)

// Candidate is one selectable transcript file.
type Candidate struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// ChooseFunc resolves an interactive selection. It receives the candidate
// list and returns the chosen index.
type ChooseFunc func([]Candidate) (int, error)

// List returns the transcript candidates in dir: .txt files, plus audio
// recordings when includeAudio is set. Candidates are sorted by name so the
// listing is stable.
func List(dir string, includeAudio bool) ([]Candidate, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("transcript directory not found: %s", dir)
	}

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read transcript directory: %w", err)
	}

	var candidates []Candidate
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		name := de.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".txt" && !(includeAudio && pkgai.IsAudioFile(name)) {
			continue
		}
		fi, err := de.Info()
		if err != nil {
			continue
		}
		candidates = append(candidates, Candidate{
			Path:    filepath.Join(dir, name),
			Name:    name,
			Size:    fi.Size(),
			ModTime: fi.ModTime(),
		})
	}

	sort.Slice(candidates, func(i, j int) bool { return candidates[i].Name < candidates[j].Name })
	return candidates, nil
}

// Select picks one candidate according to the policy. It performs no I/O
// itself; interactive selection goes through the injected choose callback.
func Select(candidates []Candidate, policy Policy, name string, choose ChooseFunc) (Candidate, error) {
	if len(candidates) == 0 {
		return Candidate{}, entities.ErrNoTranscriptFiles
	}

	switch policy {
	case PolicyExplicit:
		for _, c := range candidates {
			if c.Name == name {
				return c, nil
			}
		}
		return Candidate{}, fmt.Errorf("specified file not found: %s", name)

	case PolicyLatest:
		best := candidates[0]
		for _, c := range candidates[1:] {
			if c.ModTime.After(best.ModTime) {
				best = c
			}
		}
		return best, nil

	case PolicyInteractive:
		if len(candidates) == 1 {
			return candidates[0], nil
		}
		if choose == nil {
			return Candidate{}, fmt.Errorf("multiple transcript files and no chooser available")
		}
		idx, err := choose(candidates)
		if err != nil {
			return Candidate{}, err
		}
		if idx < 0 || idx >= len(candidates) {
			return Candidate{}, fmt.Errorf("invalid selection %d", idx)
		}
		return candidates[idx], nil

	default:
		return Candidate{}, fmt.Errorf("unknown selection policy %q", policy)
	}
}

// Read loads a transcript file as UTF-8 text. Leading and trailing
// whitespace is trimmed; an empty file is an error.
func Read(path string) (*entities.Transcript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read transcript file: %w", err)
	}

	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat transcript file: %w", err)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return nil, entities.ErrEmptyTranscript
	}

	return &entities.Transcript{
		SourcePath: path,
		Text:       text,
		ByteLen:    len(data),
		ModTime:    fi.ModTime(),
	}, nil
}
