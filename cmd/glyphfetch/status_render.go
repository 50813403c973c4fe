package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"glyphfetch/internal/assets"
)

// statusKind classifies an operator-facing line for labelling and color.
type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

const (
	statusLabelWidth = 20
	statusIndent     = "  "
)

func (k statusKind) label() string {
	switch k {
	case statusOK:
		return "OK"
	case statusWarn:
		return "WARN"
	case statusError:
		return "ERROR"
	default:
		return "INFO"
	}
}

func (k statusKind) color() string {
	switch k {
	case statusOK:
		return ansiGreen
	case statusWarn:
		return ansiYellow
	case statusError:
		return ansiRed
	default:
		return ansiBlue
	}
}

func renderStatusLine(label string, kind statusKind, message string, colorize bool) string {
	statusText := "[" + kind.label() + "]"
	if message != "" {
		statusText += " " + message
	}
	line := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, label+":", statusText)
	if colorize {
		return kind.color() + line + ansiReset
	}
	return line
}

func renderSectionHeader(title string, colorize bool) []string {
	line := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	rule := strings.Repeat("-", len(line))
	if colorize {
		line = ansiBlue + line + ansiReset
		rule = ansiBlue + rule + ansiReset
	}
	return []string{line, rule}
}

func outcomeKind(outcome assets.Outcome) statusKind {
	switch outcome {
	case assets.OutcomeFetched:
		return statusOK
	case assets.OutcomeSkipped:
		return statusInfo
	case assets.OutcomePending:
		return statusWarn
	case assets.OutcomeFailed:
		return statusError
	default:
		return statusInfo
	}
}

func renderItemLine(status assets.ItemStatus, colorize bool) string {
	label := fmt.Sprintf("%s %s", status.Symbol, status.Key)
	message := string(status.Outcome)
	if status.Err != nil {
		message = fmt.Sprintf("%s: %v", status.Outcome, status.Err)
	}
	return renderStatusLine(label, outcomeKind(status.Outcome), message, colorize)
}

func renderSummaryLine(summary assets.Summary, dryRun bool) string {
	if dryRun {
		return fmt.Sprintf("%d present, %d missing", summary.Skipped, summary.Pending)
	}
	line := fmt.Sprintf("fetched %d, skipped %d", summary.Fetched, summary.Skipped)
	if summary.Failed > 0 {
		line += fmt.Sprintf(", failed %d", summary.Failed)
	}
	return line
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
