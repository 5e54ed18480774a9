// Package piper implements the TTS Synthesizer by invoking the Piper
// executable as a one-shot subprocess.
//
// Piper is a fast, local neural text-to-speech system. Each synthesis
// stages the request text into a temporary file, feeds it to piper on
// stdin with `--model <path> --output_file <path>`, and reads back the
// generated WAV. The subprocess is bounded by a hard wall-clock
// timeout and every temporary input file is removed when the request
// ends, whichever exit path is taken.
package piper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/google/uuid"

	"github.com/nadzzz/sayd/internal/config"
	"github.com/nadzzz/sayd/internal/message"
	"github.com/nadzzz/sayd/internal/tts"
)

// Synthesizer implements tts.Synthesizer around the Piper executable.
// All fields are resolved once at construction and never mutated, so
// concurrent Synthesize calls share it without locking.
type Synthesizer struct {
	enginePath  string
	modelPath   string
	timeout     time.Duration
	settleDelay time.Duration
	workDir     string
}

// New creates a new Piper synthesizer from config.
func New(cfg config.EngineConfig) *Synthesizer {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Synthesizer{
		enginePath:  cfg.PiperPath,
		modelPath:   cfg.ModelPath,
		timeout:     timeout,
		settleDelay: cfg.SettleDelay,
		workDir:     cfg.WorkDir,
	}
}

// Synthesize runs piper over the given text and returns the WAV output.
//
// The text is staged into a uniquely named temp file that is removed
// before this function returns, success or failure. The output
// artifact is uniquely named per request, verified for existence and
// minimum size, read into the result, and then removed as well.
func (s *Synthesizer) Synthesize(ctx context.Context, text string) (*tts.Result, error) {
	stagedPath, err := s.stageInput(text)
	if err != nil {
		return nil, tts.NewError(tts.KindInternal, fmt.Sprintf("Error: %v", err), err)
	}
	// Cleanup failures never escalate over the primary result.
	defer os.Remove(stagedPath)

	if _, err := os.Stat(s.enginePath); err != nil {
		return nil, tts.NewError(tts.KindEngineUnavailable,
			fmt.Sprintf("Piper executable not found at %s", s.enginePath), err)
	}
	if _, err := os.Stat(s.modelPath); err != nil {
		return nil, tts.NewError(tts.KindEngineUnavailable,
			fmt.Sprintf("Model file not found at %s", s.modelPath), err)
	}

	// Make piper executable on non-Windows hosts. If this fails the
	// invocation is still attempted; it will error naturally if the
	// binary truly isn't executable.
	if runtime.GOOS != "windows" {
		if err := os.Chmod(s.enginePath, 0o755); err != nil {
			slog.Warn("could not make piper executable", "path", s.enginePath, "error", err)
		}
	}

	outputPath := filepath.Join(s.workDir, fmt.Sprintf("output_%s.wav", uuid.New()))
	// The artifact never outlives the request either: the audio is
	// read into the result, and partial output from a killed or failed
	// engine must not accumulate in the work dir.
	defer os.Remove(outputPath)

	if err := s.run(ctx, stagedPath, outputPath); err != nil {
		return nil, err
	}

	info, err := os.Stat(outputPath)
	if err != nil {
		return nil, tts.NewError(tts.KindOutputMissing, "Audio file was not generated", err)
	}
	slog.Debug("piper artifact generated", "path", outputPath, "bytes", info.Size())

	if info.Size() < tts.MinArtifactSize {
		return nil, tts.NewError(tts.KindOutputSuspect,
			"Generated audio file appears to be empty or corrupted", nil)
	}

	// Defensive pause for hosts with laggy file visibility; see config.
	if s.settleDelay > 0 {
		time.Sleep(s.settleDelay)
	}

	audio, err := os.ReadFile(outputPath)
	if err != nil {
		return nil, tts.NewError(tts.KindInternal, fmt.Sprintf("Error: %v", err), err)
	}

	return &tts.Result{Audio: audio, ContentType: "audio/wav"}, nil
}

// stageInput writes text to a uniquely named temporary file (UTF-8)
// and returns its path.
func (s *Synthesizer) stageInput(text string) (string, error) {
	f, err := os.CreateTemp("", "sayd-input-*.txt")
	if err != nil {
		return "", fmt.Errorf("staging input: %w", err)
	}
	if _, err := f.WriteString(text); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("staging input: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("staging input: %w", err)
	}
	return f.Name(), nil
}

// run invokes piper with the staged file as stdin, enforcing the
// wall-clock timeout. The process is killed if the timeout elapses.
func (s *Synthesizer) run(ctx context.Context, stagedPath, outputPath string) error {
	runCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	stdin, err := os.Open(stagedPath)
	if err != nil {
		return tts.NewError(tts.KindInternal, fmt.Sprintf("Error: %v", err), err)
	}
	defer stdin.Close()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(runCtx, s.enginePath,
		"--model", s.modelPath,
		"--output_file", outputPath)
	cmd.Stdin = stdin
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// Don't wait on orphaned descendants holding the stdio pipes open
	// after the engine itself is killed.
	cmd.WaitDelay = 5 * time.Second

	runErr := cmd.Run()

	slog.Debug("piper stdout", "output", stdout.String())
	slog.Debug("piper stderr", "output", stderr.String())

	if runErr == nil {
		return nil
	}

	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		return tts.NewError(tts.KindSynthesisTimeout, "Speech synthesis timed out", runErr)
	}

	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		detail := stderr.String()
		if detail == "" {
			detail = runErr.Error()
		}
		return tts.NewError(tts.KindEngineExecutionFailed,
			fmt.Sprintf("Piper execution failed: %s", detail), runErr)
	}

	return tts.NewError(tts.KindInternal, fmt.Sprintf("Error: %v", runErr), runErr)
}

// CheckEnvironment reports whether the piper binary and model are in
// place. It is read-only: no mutation, no subprocess.
func (s *Synthesizer) CheckEnvironment() *message.EnvironmentReport {
	engineInfo, engineErr := os.Stat(s.enginePath)
	engineFound := engineErr == nil
	_, modelErr := os.Stat(s.modelPath)
	modelFound := modelErr == nil

	// Executable-bit check only applies off Windows. Any execute bit
	// counts — this approximates access(2) without probing as the
	// effective user.
	executable := true
	if runtime.GOOS != "windows" && engineFound {
		executable = engineInfo.Mode().Perm()&0o111 != 0
	}

	status := "unhealthy"
	if engineFound && modelFound && executable {
		status = "healthy"
	}

	wd, _ := os.Getwd()
	var entries []string
	if dirents, err := os.ReadDir("."); err == nil {
		for _, d := range dirents {
			entries = append(entries, d.Name())
		}
	}

	return &message.EnvironmentReport{
		Status:           status,
		EngineFound:      engineFound,
		EngineExecutable: executable,
		ModelFound:       modelFound,
		EnginePath:       s.enginePath,
		ModelPath:        s.modelPath,
		Platform:         runtime.GOOS,
		WorkingDirectory: wd,
		FilesInDirectory: entries,
	}
}

// Close is a no-op — processes are per-request.
func (s *Synthesizer) Close() error { return nil }
