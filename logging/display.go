package logging

import (
	"bufio"
	"errors"
	"fmt"
	"jsspec/common"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = SuccessColorFG
	InfoStyleBG    = SuccessStyleBG
)

// PrintErrorMessage prints a standard Go error to the console
func PrintErrorMessage(tag string, err error) {
	ErrorStyleBG.Print(tag)
	ErrorColorFG.Println(" " + err.Error())
}

// PrintWarningMessage prints a warning message to the console
func PrintWarningMessage(tag, msg string) {
	WarnStyleBG.Print(tag)
	WarnColorFG.Println(" " + msg)
}

// PrintInfoMessage prints an informational message to the user
func PrintInfoMessage(tag, msg string) {
	InfoStyleBG.Print(tag)
	InfoColorFG.Println(" " + msg)
}

// -----------------------------------------------------------------------------
// This section contains all the display functions for the different kinds of
// messages that can be logged -- these functions are called to print the
// message to the screen.

func (ce *ConfigError) display() {
	PrintErrorMessage(ce.Kind+" Error", errors.New(ce.Message))
}

func (bw *BuildWarning) display() {
	PrintWarningMessage(bw.Kind+" Warning", bw.Message)
}

func (cm *CompileMessage) display() {
	cm.displayBanner()
	fmt.Println(cm.Message)

	if cm.Position != nil && cm.Context != nil && cm.Context.FilePath != "" {
		cm.displayCodeSelection()
	}
}

// displayBanner displays the banner on top of all compilation messages
func (cm *CompileMessage) displayBanner() {
	fmt.Print("\n\n-- ")
	kindStr := "Lowering"
	kindLen := len(kindStr)
	if cm.IsError {
		ErrorStyleBG.Print(kindStr + " Error")
		kindLen += 6
	} else {
		WarnStyleBG.Print(kindStr + " Warning")
		kindLen += 8
	}

	fmt.Print(" ")

	fileName := "<unknown source>"
	if cm.Context != nil && cm.Context.FilePath != "" {
		fileName = filepath.Base(cm.Context.FilePath)
	}

	bannerLen := pterm.GetTerminalWidth() / 2
	if bannerLen > 50 {
		bannerLen = 50
	}
	dashCount := bannerLen - len(fileName) - kindLen - 1
	if dashCount < 3 {
		dashCount = 3
	}

	fmt.Print(strings.Repeat("-", dashCount) + " ")
	InfoColorFG.Println(fileName)
}

// displayCodeSelection displays the selected source lines with their line
// numbers and underlines the selected range.  Unreadable sources are skipped:
// the syntax dump may have outlived the C++ file it was produced from.
func (cm *CompileMessage) displayCodeSelection() {
	pos := cm.Position
	if pos.StartLn < 1 || pos.EndLn < pos.StartLn {
		return
	}

	lines, err := readLines(cm.Context.FilePath, pos.StartLn, pos.EndLn)
	if err != nil {
		return
	}

	indent := commonIndent(lines)
	gutterWidth := len(strconv.Itoa(pos.EndLn)) + 1
	gutter := strings.Repeat(" ", gutterWidth)

	fmt.Println()
	for i, line := range lines {
		line = line[indent:]

		InfoColorFG.Print(fmt.Sprintf("%-*d", gutterWidth, pos.StartLn+i))
		fmt.Println("|  " + line)

		// the underline starts at the start column on the first line and ends
		// at the end column on the last line; lines in between are underlined
		// in full
		start, end := 0, len(line)
		if i == 0 {
			start = clamp(pos.StartCol-indent, 0, end)
		}

		if i == len(lines)-1 {
			end = clamp(pos.EndCol-indent, start, end)
		}

		fmt.Print(gutter + "|  " + strings.Repeat(" ", start))
		ErrorColorFG.Println(strings.Repeat("^", end-start))
	}

	fmt.Println()
}

// readLines reads the lines `startLn` through `endLn` (inclusive, 1-indexed)
// of a file with tabs expanded to four spaces.  Lines past the end of the file
// are empty.
func readLines(path string, startLn, endLn int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lines := make([]string, endLn-startLn+1)
	sc := bufio.NewScanner(f)
	for ln := 1; ln <= endLn && sc.Scan(); ln++ {
		if ln >= startLn {
			lines[ln-startLn] = strings.ReplaceAll(sc.Text(), "\t", "    ")
		}
	}

	return lines, sc.Err()
}

// commonIndent returns the number of leading spaces shared by all the lines
func commonIndent(lines []string) int {
	indent := -1
	for _, line := range lines {
		n := len(line) - len(strings.TrimLeft(line, " "))
		if indent == -1 || n < indent {
			indent = n
		}
	}

	if indent < 0 {
		return 0
	}

	return indent
}

// clamp restricts n to the range [lo, hi]
func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	} else if n > hi {
		return hi
	}

	return n
}

const fatalErrorPostlude = `
This is likely a bug in jsspec.
Please open an issue with the syntax dump that caused it.`

func displayFatalError(msg string) {
	fmt.Print("\n\n")
	ErrorStyleBG.Print("Fatal Error ")
	ErrorColorFG.Println(msg)
	InfoColorFG.Println(fatalErrorPostlude)
}

// -----------------------------------------------------------------------------

// displayCompileHeader displays all the compiler information before starting compilation
func displayCompileHeader(profile string) {
	fmt.Print("jsspec ")
	InfoColorFG.Print("v" + common.JSSpecVersion)
	fmt.Print(" -- profile: ")
	InfoColorFG.Println(profile)
}

// phaseSpinner stores the current phase spinner
var phaseSpinner *pterm.SpinnerPrinter
var currentPhase string
var phaseStartTime time.Time

const maxPhaseLength = len("Emitting")

// displayBeginPhase displays the beginning of a compilation phase
func displayBeginPhase(phase string) {
	currentPhase = phase
	phaseText := phase + "..." + strings.Repeat(" ", maxPhaseLength-len(phase)+2)
	spinner := pterm.DefaultSpinner.WithStyle(pterm.NewStyle(InfoColorFG))

	spinner.SuccessPrinter = &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix: pterm.Prefix{
			Style: SuccessStyleBG,
			Text:  "Done",
		},
	}

	spinner.FailPrinter = &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix: pterm.Prefix{
			Style: ErrorStyleBG,
			Text:  "Fail",
		},
	}

	phaseSpinner, _ = spinner.Start(phaseText)
	phaseStartTime = time.Now()
}

// displayEndPhase displays the end of a compilation phase
func displayEndPhase(success bool) {
	if phaseSpinner != nil {
		if success {
			phaseSpinner.Success(
				currentPhase+strings.Repeat(" ", maxPhaseLength-len(currentPhase)+2),
				fmt.Sprintf("(%.3fs)", time.Since(phaseStartTime).Seconds()),
			)
		} else {
			phaseSpinner.Fail(currentPhase + strings.Repeat(" ", maxPhaseLength-len(currentPhase)+2))
		}

		phaseSpinner = nil
	}
}

// displayCompilationFinished displays a compilation finished message
func displayCompilationFinished(success bool, errorCount, warningCount int) {
	fmt.Print("\n")

	if success {
		SuccessColorFG.Print("All done! ")
	} else {
		ErrorColorFG.Print("Oh no! ")
	}

	fmt.Print("(")
	displayCount(errorCount, "error", ErrorColorFG)
	fmt.Print(", ")
	displayCount(warningCount, "warning", WarnColorFG)
	fmt.Println(")")
}

// displayCount prints a count followed by a correctly pluralized noun.  Zero
// counts are always shown in the success color.
func displayCount(n int, noun string, color pterm.Color) {
	if n == 0 {
		color = SuccessColorFG
	}
	color.Print(n)

	if n == 1 {
		fmt.Print(" " + noun)
	} else {
		fmt.Print(" " + noun + "s")
	}
}
